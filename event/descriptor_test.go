package event

import "testing"

func TestNormalize_Map(t *testing.T) {
	got := Normalize(map[string]any{"click .a": "onA"}, nil)

	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}
	if got["click .a"] != "onA" {
		t.Errorf("unexpected entry: %v", got)
	}
}

func TestNormalize_StringMap(t *testing.T) {
	got := Normalize(map[string]string{"click .a": "onA"}, nil)

	if got["click .a"] != "onA" {
		t.Errorf("unexpected entry: %v", got)
	}
}

func TestNormalize_Func(t *testing.T) {
	src := func() map[string]any {
		return map[string]any{"keyup": "onKey"}
	}

	got := Normalize(src, nil)

	if got["keyup"] != "onKey" {
		t.Errorf("unexpected entry: %v", got)
	}
}

func TestNormalize_AbsentSources(t *testing.T) {
	tests := []struct {
		name string
		src  any
	}{
		{"nil", nil},
		{"nil func", (func() map[string]any)(nil)},
		{"non-map", 42},
		{"string", "click"},
		{"empty map", map[string]any{}},
	}

	for _, tt := range tests {
		if got := Normalize(tt.src, nil); got != nil {
			t.Errorf("%s: expected nil map, got %v", tt.name, got)
		}
	}
}

func TestNormalize_UIPlaceholders(t *testing.T) {
	ui := map[string]string{"foo": ".foo", "save-btn": "#save"}

	tests := []struct {
		key  string
		want string
	}{
		{"click @ui.foo", "click .foo"},
		{"click @ui.save-btn", "click #save"},
		{"click @ui.unknown", "click @ui.unknown"},
		{"click .plain", "click .plain"},
		{"change", "change"},
	}

	for _, tt := range tests {
		got := Normalize(map[string]any{tt.key: "h"}, ui)
		if _, ok := got[tt.want]; !ok {
			t.Errorf("key %q: expected normalized key %q, got %v", tt.key, tt.want, got)
		}
	}
}

func TestNormalize_UIPlaceholderValues(t *testing.T) {
	ui := map[string]string{"save": "#save"}

	got := Normalize(map[string]any{
		"click .btn": "@ui.save",
		"change":     "onChange",
	}, ui)

	if got["click .btn"] != "#save" {
		t.Errorf("string value not substituted: %v", got["click .btn"])
	}
	if got["change"] != "onChange" {
		t.Errorf("plain handler name altered: %v", got["change"])
	}
}

func TestNormalizeUIKeys(t *testing.T) {
	base := map[string]string{"list": ".list"}
	table := map[string]string{"item": "@ui.list .item", "other": ".other"}

	got := NormalizeUIKeys(table, base)

	if got["item"] != ".list .item" {
		t.Errorf("expected resolved selector, got %q", got["item"])
	}
	if got["other"] != ".other" {
		t.Errorf("expected untouched selector, got %q", got["other"])
	}
}

func TestMerge_Precedence(t *testing.T) {
	a := DescriptorMap{"click .x": "fromA", "click .a": "a"}
	b := DescriptorMap{"click .x": "fromB", "click .b": "b"}

	got := Merge(a, b)

	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	if got["click .x"] != "fromB" {
		t.Errorf("expected later map to win, got %v", got["click .x"])
	}
}

func TestMerge_AllNil(t *testing.T) {
	if got := Merge(nil, nil); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}
