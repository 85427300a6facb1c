package dom

import (
	"fmt"
	"strings"
)

// EventHandler is a delegated DOM event handler.
type EventHandler func(*Event)

// DescriptorMap maps "<eventType>" or "<eventType> <selector>" keys to
// handlers, fully resolved by the caller.
type DescriptorMap map[string]EventHandler

// Binder is the DOM-binding primitive the view core depends on. Delegate
// installs a descriptor map on a root element, replacing any delegation
// previously installed for that root; Undelegate removes it.
type Binder interface {
	Delegate(root *Element, events DescriptorMap) error
	Undelegate(root *Element) error
}

// delegatedEntry is one installed handler on a delegation root.
type delegatedEntry struct {
	typ         string
	selector    Selector
	hasSelector bool
	handler     EventHandler
}

// TreeBinder implements Binder against the in-memory element tree. It is
// stateless; delegations live on the root elements themselves, so an
// element keeps its bindings regardless of which binder installed them.
type TreeBinder struct{}

// NewTreeBinder creates a TreeBinder.
func NewTreeBinder() *TreeBinder { return &TreeBinder{} }

// Delegate installs the descriptor map on root. Entries with malformed
// keys or nil handlers are skipped. Any prior delegation for root is
// replaced wholesale, so repeated delegation never stacks handlers.
func (b *TreeBinder) Delegate(root *Element, events DescriptorMap) error {
	if root == nil {
		return ErrNilRoot
	}
	entries := make([]delegatedEntry, 0, len(events))
	var firstErr error
	for key, handler := range events {
		if handler == nil {
			continue
		}
		entry, err := parseDescriptorKey(key)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		entry.handler = handler
		entries = append(entries, entry)
	}
	root.delegation = entries
	return firstErr
}

// Undelegate removes every delegated handler from root.
func (b *TreeBinder) Undelegate(root *Element) error {
	if root == nil {
		return ErrNilRoot
	}
	root.delegation = nil
	return nil
}

// parseDescriptorKey splits "<eventType> <selector>" into its parts. The
// selector is optional; the event type is not.
func parseDescriptorKey(key string) (delegatedEntry, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return delegatedEntry{}, fmt.Errorf("%w: empty descriptor key", ErrBadSelector)
	}
	typ, rest, found := strings.Cut(key, " ")
	entry := delegatedEntry{typ: typ}
	if !found {
		return entry, nil
	}
	sel, err := ParseSelector(rest)
	if err != nil {
		return delegatedEntry{}, fmt.Errorf("descriptor key %q: %w", key, err)
	}
	entry.selector = sel
	entry.hasSelector = true
	return entry, nil
}
