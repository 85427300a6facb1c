package view

// Renderer is the templating collaborator: it renders a view's content
// into its root element. The view core only defines the contract and the
// template-context merge point; rendering itself is external.
type Renderer interface {
	Render(v *View, data map[string]any) error
}

// MixinTemplateContext merges the view's template context over a copy of
// base and returns the result. The context source may be a static
// map[string]any or a func() map[string]any evaluated per call. A nil base
// is treated as empty.
func (v *View) MixinTemplateContext(base map[string]any) map[string]any {
	out := make(map[string]any, len(base))
	for k, val := range base {
		out[k] = val
	}

	var ctx map[string]any
	switch src := v.templateContext.(type) {
	case map[string]any:
		ctx = src
	case func() map[string]any:
		if src != nil {
			ctx = src()
		}
	}
	for k, val := range ctx {
		out[k] = val
	}
	return out
}
