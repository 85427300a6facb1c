package view

import (
	"fmt"

	"github.com/cornice-ui/cornice/dom"
	"github.com/cornice-ui/cornice/event"
)

// uiRegistry maps symbolic UI names to selectors and caches the elements
// they resolve to. The cache is valid from bind until unbind; rebinding
// against a new root replaces it wholesale.
type uiRegistry struct {
	names map[string]string
	cache map[string]*dom.Element
}

func newUIRegistry(names map[string]string) *uiRegistry {
	u := &uiRegistry{names: make(map[string]string, len(names))}
	for k, v := range names {
		u.names[k] = v
	}
	return u
}

// selectors returns the name table with inter-entry "@ui.<name>"
// references resolved. Used to normalize descriptor maps.
func (u *uiRegistry) selectors() map[string]string {
	return event.NormalizeUIKeys(u.names, u.names)
}

// bind resolves every name against the root and caches the results.
// Names whose selector matches nothing are simply absent from the cache.
func (u *uiRegistry) bind(root *dom.Element) {
	u.cache = make(map[string]*dom.Element, len(u.names))
	if root == nil {
		return
	}
	for name, sel := range u.selectors() {
		if el := root.Query(sel); el != nil {
			u.cache[name] = el
		}
	}
}

// unbind drops the element cache.
func (u *uiRegistry) unbind() {
	u.cache = nil
}

func (u *uiRegistry) bound() bool {
	return u.cache != nil
}

func (u *uiRegistry) get(name string) (*dom.Element, bool) {
	el, ok := u.cache[name]
	return el, ok
}

// UI returns the live element cached under a symbolic UI name. The cache
// is populated lazily from the current root if needed. Calling UI on a
// destroyed view fails with a DestroyedError.
func (v *View) UI(name string) (*dom.Element, error) {
	if err := v.ensureIntact(); err != nil {
		return nil, err
	}
	if v.el == nil {
		return nil, ErrNoElement
	}
	if !v.ui.bound() {
		v.ui.bind(v.el)
	}
	el, ok := v.ui.get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUINotFound, name)
	}
	return el, nil
}

// BindUIElements resolves the view's UI table and every behavior's UI
// table against the current root, replacing any previous caches.
func (v *View) BindUIElements() *View {
	v.ui.bind(v.el)
	for _, ab := range v.behaviors {
		ab.ui.bind(v.el)
	}
	return v
}

// UnbindUIElements invalidates the view's and every behavior's UI caches.
func (v *View) UnbindUIElements() *View {
	v.unbindUIElements()
	return v
}

func (v *View) unbindUIElements() {
	if v.ui != nil {
		v.ui.unbind()
	}
	for _, ab := range v.behaviors {
		ab.ui.unbind()
	}
}
