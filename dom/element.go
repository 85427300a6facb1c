package dom

// Element is a node in the in-memory element tree.
type Element struct {
	tag     string
	id      string
	classes []string
	attrs   map[string]string

	parent   *Element
	children []*Element

	// Delegated handler entries installed by a Binder.
	delegation []delegatedEntry
}

// NewElement creates a detached element with the given tag name.
func NewElement(tag string) *Element {
	return &Element{tag: tag}
}

// Tag returns the element's tag name.
func (el *Element) Tag() string { return el.tag }

// ID returns the element's id, or "" if unset.
func (el *Element) ID() string { return el.id }

// SetID sets the element's id and returns the element.
func (el *Element) SetID(id string) *Element {
	el.id = id
	return el
}

// AddClass adds a class if not already present and returns the element.
func (el *Element) AddClass(class string) *Element {
	for _, c := range el.classes {
		if c == class {
			return el
		}
	}
	el.classes = append(el.classes, class)
	return el
}

// RemoveClass removes a class if present.
func (el *Element) RemoveClass(class string) {
	for i, c := range el.classes {
		if c == class {
			el.classes = append(el.classes[:i], el.classes[i+1:]...)
			return
		}
	}
}

// HasClass reports whether the element carries the class.
func (el *Element) HasClass(class string) bool {
	for _, c := range el.classes {
		if c == class {
			return true
		}
	}
	return false
}

// SetAttr sets an attribute and returns the element.
func (el *Element) SetAttr(key, value string) *Element {
	if el.attrs == nil {
		el.attrs = make(map[string]string)
	}
	el.attrs[key] = value
	return el
}

// Attr returns an attribute value, or "" if unset.
func (el *Element) Attr(key string) string { return el.attrs[key] }

// Parent returns the element's parent, or nil for a detached root.
func (el *Element) Parent() *Element { return el.parent }

// Children returns the element's children. The returned slice is shared;
// callers must not mutate it.
func (el *Element) Children() []*Element { return el.children }

// Append adds child as the last child of el, detaching it from any prior
// parent first, and returns el.
func (el *Element) Append(child *Element) *Element {
	if child == nil || child == el {
		return el
	}
	child.Detach()
	child.parent = el
	el.children = append(el.children, child)
	return el
}

// Detach removes the element from its parent, if any. Its own subtree and
// delegations are untouched.
func (el *Element) Detach() {
	p := el.parent
	if p == nil {
		return
	}
	for i, c := range p.children {
		if c == el {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	el.parent = nil
}

// InTree reports whether other is el or a descendant of el.
func (el *Element) InTree(other *Element) bool {
	for cur := other; cur != nil; cur = cur.parent {
		if cur == el {
			return true
		}
	}
	return false
}

// Query returns the first element in el's subtree (excluding el itself)
// matching the selector, in depth-first order, or nil.
func (el *Element) Query(selector string) *Element {
	sel, err := ParseSelector(selector)
	if err != nil {
		return nil
	}
	return el.query(sel)
}

func (el *Element) query(sel Selector) *Element {
	for _, c := range el.children {
		if sel.Matches(c) {
			return c
		}
		if found := c.query(sel); found != nil {
			return found
		}
	}
	return nil
}

// QueryAll returns every element in el's subtree (excluding el itself)
// matching the selector, in depth-first order.
func (el *Element) QueryAll(selector string) []*Element {
	sel, err := ParseSelector(selector)
	if err != nil {
		return nil
	}
	var out []*Element
	el.queryAll(sel, &out)
	return out
}

func (el *Element) queryAll(sel Selector, out *[]*Element) {
	for _, c := range el.children {
		if sel.Matches(c) {
			*out = append(*out, c)
		}
		c.queryAll(sel, out)
	}
}

// Matches reports whether the element matches the selector string.
func (el *Element) Matches(selector string) bool {
	sel, err := ParseSelector(selector)
	if err != nil {
		return false
	}
	return sel.Matches(el)
}
