package view

import (
	"errors"
	"testing"

	"github.com/cornice-ui/cornice/dom"
)

func newRegionView() (*View, *dom.Element) {
	root := dom.NewElement("div")
	body := dom.NewElement("section").AddClass("body")
	root.Append(body)

	v := New(WithElement(root))
	return v, body
}

func TestRegion_ShowView(t *testing.T) {
	owner, body := newRegionView()
	r, err := owner.AddRegion("body", ".body")
	if err != nil {
		t.Fatalf("AddRegion: %v", err)
	}

	child := New()
	if err := r.ShowView(child); err != nil {
		t.Fatalf("ShowView: %v", err)
	}

	if child.Element().Parent() != body {
		t.Error("expected child root appended to the region container")
	}
	if r.CurrentView() != child {
		t.Error("expected region to hold the child")
	}
	if child.ParentNode() != Node(r) {
		t.Error("expected child's back-reference to point at the region")
	}
}

func TestRegion_ShowViewReplacesPrevious(t *testing.T) {
	owner, _ := newRegionView()
	r, _ := owner.AddRegion("body", ".body")

	first := New()
	second := New()
	_ = r.ShowView(first)
	if err := r.ShowView(second); err != nil {
		t.Fatalf("ShowView: %v", err)
	}

	if !first.IsDestroyed() {
		t.Error("expected previous view destroyed")
	}
	if r.CurrentView() != second {
		t.Error("expected region to hold the new view")
	}
}

func TestRegion_ShowViewMovesChildBetweenRegions(t *testing.T) {
	owner, _ := newRegionView()
	owner.Element().Append(dom.NewElement("aside").AddClass("side"))

	r1, _ := owner.AddRegion("body", ".body")
	r2, _ := owner.AddRegion("side", ".side")

	child := New()
	if err := r1.ShowView(child); err != nil {
		t.Fatalf("ShowView r1: %v", err)
	}
	if err := r2.ShowView(child); err != nil {
		t.Fatalf("ShowView r2: %v", err)
	}

	if r1.CurrentView() != nil {
		t.Error("expected the old region's slot released")
	}
	if r2.CurrentView() != child {
		t.Error("expected the new region to hold the child")
	}

	// Emptying the old region must not destroy the moved child.
	r1.Empty()
	if child.IsDestroyed() {
		t.Error("old region destroyed a view it no longer holds")
	}
}

func TestRegion_ShowViewSameChildIsNoOp(t *testing.T) {
	owner, _ := newRegionView()
	r, _ := owner.AddRegion("body", ".body")

	child := New()
	if err := r.ShowView(child); err != nil {
		t.Fatalf("ShowView: %v", err)
	}
	if err := r.ShowView(child); err != nil {
		t.Fatalf("re-ShowView: %v", err)
	}

	if child.IsDestroyed() {
		t.Error("re-showing the held child destroyed it")
	}
	if r.CurrentView() != child {
		t.Error("expected region to still hold the child")
	}
}

func TestRegion_Empty(t *testing.T) {
	owner, _ := newRegionView()
	r, _ := owner.AddRegion("body", ".body")
	child := New()
	_ = r.ShowView(child)

	r.Empty()
	r.Empty() // second call is a no-op

	if !child.IsDestroyed() {
		t.Error("expected child destroyed on Empty")
	}
	if r.CurrentView() != nil {
		t.Error("expected empty region")
	}
}

func TestRegion_ChildDestroyedOutOfBand(t *testing.T) {
	owner, _ := newRegionView()
	r, _ := owner.AddRegion("body", ".body")
	child := New()
	_ = r.ShowView(child)

	child.Destroy()

	if r.CurrentView() != nil {
		t.Error("expected region slot released when the child destroys itself")
	}
}

func TestRegion_AttachPropagation(t *testing.T) {
	owner, _ := newRegionView()
	owner.MarkAttached()
	r, _ := owner.AddRegion("body", ".body")

	child := New()
	_ = r.ShowView(child)

	if !child.IsAttached() {
		t.Error("expected child marked attached when owner is attached")
	}
}

func TestRegion_MissingContainer(t *testing.T) {
	owner, _ := newRegionView()
	r, _ := owner.AddRegion("missing", ".nope")

	if err := r.ShowView(New()); !errors.Is(err, ErrNoElement) {
		t.Errorf("err = %v, want ErrNoElement", err)
	}
}

func TestRegion_ShowDestroyedChild(t *testing.T) {
	owner, _ := newRegionView()
	r, _ := owner.AddRegion("body", ".body")

	child := New()
	child.Destroy()

	if err := r.ShowView(child); !errors.Is(err, ErrDestroyed) {
		t.Errorf("err = %v, want ErrDestroyed", err)
	}
}

func TestRegion_ShowNilChild(t *testing.T) {
	owner, _ := newRegionView()
	r, _ := owner.AddRegion("body", ".body")

	if err := r.ShowView(nil); !errors.Is(err, ErrNilView) {
		t.Errorf("err = %v, want ErrNilView", err)
	}
}

func TestShowChildView(t *testing.T) {
	owner, _ := newRegionView()
	_, _ = owner.AddRegion("body", ".body")

	child := New()
	if err := owner.ShowChildView("body", child); err != nil {
		t.Fatalf("ShowChildView: %v", err)
	}
	if err := owner.ShowChildView("nope", New()); !errors.Is(err, ErrRegionNotFound) {
		t.Errorf("err = %v, want ErrRegionNotFound", err)
	}
}

func TestGetRegion(t *testing.T) {
	owner, _ := newRegionView()
	r, _ := owner.AddRegion("body", ".body")

	got, err := owner.GetRegion("body")
	if err != nil || got != r {
		t.Errorf("GetRegion = %v, %v", got, err)
	}
	if _, err := owner.GetRegion("nope"); !errors.Is(err, ErrRegionNotFound) {
		t.Errorf("err = %v, want ErrRegionNotFound", err)
	}
}

func TestRegion_EventsBubbleToOwner(t *testing.T) {
	owner, _ := newRegionView()
	r, _ := owner.AddRegion("body", ".body")
	child := New()
	_ = r.ShowView(child)

	var got []string
	owner.On("childview:save", func(args ...any) {
		got = append(got, "childview:save")
	})

	child.TriggerMethod("save")

	if len(got) != 1 {
		t.Errorf("expected prefixed event on owner, got %v", got)
	}
}
