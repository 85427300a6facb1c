package view

// IsRendered reports whether a render pass has completed for the view.
func (v *View) IsRendered() bool { return v.rendered }

// IsAttached reports whether the view's root is in a live tree.
func (v *View) IsAttached() bool { return v.attached }

// IsDestroyed reports whether the view has been destroyed. Once true it
// is permanently true.
func (v *View) IsDestroyed() bool { return v.destroyed }

// ensureIntact guards operations that assume a live DOM presence.
func (v *View) ensureIntact() error {
	if v.destroyed {
		return &DestroyedError{CID: v.cid}
	}
	return nil
}

// EnsureIntact fails with a DestroyedError when the view has been
// destroyed. External collaborators (renderers) use it to guard accesses
// that assume a live view.
func (v *View) EnsureIntact() error {
	return v.ensureIntact()
}

// MarkRendered records a completed render pass and dispatches "render".
// Rendering itself is the external templating collaborator's job.
func (v *View) MarkRendered() *View {
	if v.destroyed {
		return v
	}
	v.rendered = true
	v.TriggerMethod("render", v)
	return v
}

// MarkAttached records insertion into a live tree and dispatches "attach".
func (v *View) MarkAttached() *View {
	if v.destroyed || v.attached {
		return v
	}
	v.attached = true
	v.TriggerMethod("attach", v)
	return v
}

// MarkDetached records removal from the live tree and dispatches "detach".
func (v *View) MarkDetached() *View {
	if v.destroyed || !v.attached {
		return v
	}
	v.attached = false
	v.TriggerMethod("detach", v)
	return v
}

// Destroy moves the view irreversibly to the destroyed state and runs the
// teardown cascade, in strict order: dispatch "before:destroy"; set the
// destroyed flag and clear rendered/attached; unbind the view's and the
// behaviors' UI caches; undelegate and remove the root element from the
// tree; destroy child views (after DOM removal, so subtrees are not
// repainted while emptying); run every behavior's teardown hook; dispatch
// "destroy"; release entity bindings, outbound listeners, and every
// listener bound on the view itself.
//
// Destroy is idempotent: calling it again, at any point, is a no-op that
// never throws and never re-runs side effects. Extra args are forwarded to
// the "before:destroy" and "destroy" dispatches after the view itself.
func (v *View) Destroy(args ...any) *View {
	if v.destroyed {
		return v
	}

	eventArgs := append([]any{v}, args...)
	v.TriggerMethod("before:destroy", eventArgs...)

	v.destroyed = true
	v.rendered = false
	v.attached = false

	v.unbindUIElements()

	if v.el != nil {
		_ = v.binder.Undelegate(v.el)
		v.el.Detach()
	}

	v.destroyChildren()

	for _, ab := range v.snapshotBehaviors() {
		ab.b.Detach()
	}

	v.TriggerMethod("destroy", eventArgs...)

	for _, ab := range v.snapshotBehaviors() {
		if r, ok := ab.b.(Releaser); ok {
			r.Release()
		}
	}

	v.UndelegateEntityEvents()
	v.listening.StopListening()
	v.OffAll()
	v.behaviors = nil
	v.parent = nil

	return v
}

// destroyChildren empties every region, destroying the views they hold.
// The region list is snapshotted; destroying a child may mutate the tree.
func (v *View) destroyChildren() {
	names := make([]string, len(v.regionOrder))
	copy(names, v.regionOrder)
	for _, name := range names {
		if r := v.regions[name]; r != nil {
			r.Empty()
			r.owner = nil
		}
	}
}
