package behavior

import (
	"fmt"
	"sort"

	"github.com/cornice-ui/cornice/view"
)

// Factory builds a behavior instance from per-attachment configuration.
type Factory func(config map[string]any) (view.Behavior, error)

// Registry maps behavior names to factories, mirroring a behaviors-lookup
// table: views name behaviors, the registry supplies instances.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a named factory. Registering an existing name fails.
func (r *Registry) Register(name string, f Factory) error {
	if f == nil {
		return ErrNilFactory
	}
	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	r.factories[name] = f
	return nil
}

// New builds a behavior instance by name.
func (r *Registry) New(name string, config map[string]any) (view.Behavior, error) {
	f, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotRegistered, name)
	}
	return f(config)
}

// Has reports whether the name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.factories[name]
	return ok
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.factories))
	for name := range r.factories {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// defaultRegistry backs the package-level convenience functions.
var defaultRegistry = NewRegistry()

// Register adds a named factory to the default registry.
func Register(name string, f Factory) error {
	return defaultRegistry.Register(name, f)
}

// Resolve builds a behavior from the default registry.
func Resolve(name string, config map[string]any) (view.Behavior, error) {
	return defaultRegistry.New(name, config)
}

// Attach resolves named behaviors from the default registry and attaches
// them to the view in order. It stops at the first failure.
func Attach(v *view.View, names ...string) error {
	for _, name := range names {
		b, err := Resolve(name, nil)
		if err != nil {
			return err
		}
		if err := v.AddBehavior(b); err != nil {
			return err
		}
	}
	return nil
}
