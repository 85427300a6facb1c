package entity

import "testing"

func TestModel_SetFiresChange(t *testing.T) {
	m := NewModel(map[string]any{"name": "old"})

	var attrEvents, changeEvents int
	var gotValue any
	m.On("change:name", func(args ...any) {
		attrEvents++
		gotValue = args[1]
	})
	m.On("change", func(args ...any) { changeEvents++ })

	m.Set("name", "new")

	if attrEvents != 1 || changeEvents != 1 {
		t.Fatalf("expected 1 attr + 1 change event, got %d/%d", attrEvents, changeEvents)
	}
	if gotValue != "new" {
		t.Errorf("expected new value in args, got %v", gotValue)
	}
	if m.Get("name") != "new" {
		t.Errorf("Get(name) = %v", m.Get("name"))
	}
}

func TestModel_SetUnchangedIsSilent(t *testing.T) {
	m := NewModel(map[string]any{"n": 1})

	fired := 0
	m.On("change", func(args ...any) { fired++ })

	m.Set("n", 1)

	if fired != 0 {
		t.Errorf("expected no event for unchanged value, got %d", fired)
	}
}

func TestModel_SetUncomparableValue(t *testing.T) {
	m := NewModel(map[string]any{"tags": []string{"a"}})

	fired := 0
	m.On("change:tags", func(args ...any) { fired++ })

	m.Set("tags", []string{"a", "b"})
	if fired != 1 {
		t.Fatalf("expected 1 event, got %d", fired)
	}

	// Slices cannot be compared for equality, so they always count as
	// changed.
	same := []string{"a", "b"}
	m.Set("tags", same)
	m.Set("tags", same)
	if fired != 3 {
		t.Errorf("expected uncomparable values to always fire, got %d", fired)
	}

	m.Set("mixed", 1)
	m.Set("mixed", []int{1})
	m.Set("mixed", 1)
	if got := m.Get("mixed"); got != 1 {
		t.Errorf("Get(mixed) = %v", got)
	}
}

func TestModel_Unset(t *testing.T) {
	m := NewModel(map[string]any{"n": 1})

	fired := 0
	m.On("change:n", func(args ...any) { fired++ })

	m.Unset("n")
	m.Unset("n")

	if fired != 1 {
		t.Errorf("expected exactly 1 event, got %d", fired)
	}
	if m.Has("n") {
		t.Error("expected attribute removed")
	}
}

func TestCollection_AddRemove(t *testing.T) {
	c := NewCollection()
	m := NewModel(nil)

	var added, removed int
	c.On("add", func(args ...any) { added++ })
	c.On("remove", func(args ...any) { removed++ })

	c.Add(m)
	c.Remove(m)
	c.Remove(m) // absent, no event

	if added != 1 || removed != 1 {
		t.Errorf("expected 1 add + 1 remove, got %d/%d", added, removed)
	}
	if c.Len() != 0 {
		t.Errorf("expected empty collection, got %d", c.Len())
	}
}

func TestCollection_Reset(t *testing.T) {
	c := NewCollection(NewModel(nil), NewModel(nil))

	fired := 0
	c.On("reset", func(args ...any) { fired++ })

	m := NewModel(nil)
	c.Reset(m)

	if fired != 1 {
		t.Fatalf("expected 1 reset event, got %d", fired)
	}
	if c.Len() != 1 || c.At(0) != m {
		t.Error("expected contents replaced")
	}
}

func TestCollection_At(t *testing.T) {
	c := NewCollection(NewModel(nil))

	if c.At(-1) != nil || c.At(1) != nil {
		t.Error("expected nil for out-of-range index")
	}
	if c.At(0) == nil {
		t.Error("expected model at index 0")
	}
}
