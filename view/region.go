package view

import (
	"fmt"

	"github.com/cornice-ui/cornice/dom"
)

// Region is a named sub-container of a view that holds at most one child
// view. A region participates in the ownership chain (it implements Node)
// but is not a first-class view: the parent-chain locator skips it.
type Region struct {
	name     string
	selector string

	// owner is a back-reference to the holding view; cleared on teardown.
	owner *View

	current *View
}

// Name returns the region's name.
func (r *Region) Name() string { return r.name }

// ParentNode returns the owning view, or nil after teardown.
func (r *Region) ParentNode() Node {
	if r.owner == nil {
		return nil
	}
	return r.owner
}

// CurrentView returns the view the region holds, or nil.
func (r *Region) CurrentView() *View { return r.current }

// element resolves the region's container element in the owner's current
// root. An empty selector means the owner's root itself.
func (r *Region) element() *dom.Element {
	if r.owner == nil || r.owner.el == nil {
		return nil
	}
	if r.selector == "" {
		return r.owner.el
	}
	return r.owner.el.Query(r.selector)
}

// ShowView empties the region and installs child: its root element is
// appended to the region's container and its parent back-reference points
// at the region. If the owning view is attached, the child is marked
// attached as well.
func (r *Region) ShowView(child *View) error {
	if child == nil {
		return ErrNilView
	}
	if r.owner != nil {
		if err := r.owner.ensureIntact(); err != nil {
			return err
		}
	}
	if err := child.EnsureIntact(); err != nil {
		return err
	}
	container := r.element()
	if container == nil {
		return fmt.Errorf("region %q: %w", r.name, ErrNoElement)
	}
	if r.current == child {
		return nil
	}

	// A child moving between regions must leave its old slot empty,
	// otherwise the old region would later destroy a view it no longer
	// holds.
	if prev, ok := child.ParentNode().(*Region); ok && prev.current == child {
		prev.current = nil
	}

	r.Empty()

	container.Append(child.Element())
	child.SetParent(r)
	r.current = child
	// A child destroyed out-of-band releases the region's slot.
	child.Once("destroy", func(args ...any) {
		if r.current == child {
			r.current = nil
		}
	})
	if r.owner != nil && r.owner.IsAttached() {
		child.MarkAttached()
	}
	return nil
}

// Empty destroys and releases the region's current view. Emptying an
// empty region is a no-op.
func (r *Region) Empty() {
	if r.current == nil {
		return
	}
	cur := r.current
	r.current = nil
	cur.Destroy()
}

// AddRegion declares a named region whose container is resolved by
// selector in the view's root (empty selector: the root itself). Adding a
// region to a destroyed view fails fast.
func (v *View) AddRegion(name, selector string) (*Region, error) {
	if err := v.ensureIntact(); err != nil {
		return nil, err
	}
	if v.regions == nil {
		v.regions = make(map[string]*Region)
	}
	if _, exists := v.regions[name]; !exists {
		v.regionOrder = append(v.regionOrder, name)
	}
	r := &Region{name: name, selector: selector, owner: v}
	v.regions[name] = r
	return r, nil
}

// GetRegion returns a declared region by name.
func (v *View) GetRegion(name string) (*Region, error) {
	r, ok := v.regions[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrRegionNotFound, name)
	}
	return r, nil
}

// ShowChildView shows child in the named region.
func (v *View) ShowChildView(regionName string, child *View) error {
	r, err := v.GetRegion(regionName)
	if err != nil {
		return err
	}
	return r.ShowView(child)
}
