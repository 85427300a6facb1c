package lua

import (
	"fmt"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/cornice-ui/cornice/view"
)

// ScriptBehavior is a view.Behavior backed by a Lua chunk. Each instance
// owns its sandboxed state; the state is closed by Release at the end of
// the owning view's destroy cascade, after script handlers have seen the
// "destroy" dispatch.
type ScriptBehavior struct {
	name   string
	state  *State
	table  *lua.LTable
	config map[string]any

	owner *view.View
}

var (
	_ view.Behavior = (*ScriptBehavior)(nil)
	_ view.Releaser = (*ScriptBehavior)(nil)
)

// Load executes the behavior script at path and wraps its returned table.
func Load(name, path string, config map[string]any) (*ScriptBehavior, error) {
	s := NewState()
	s.L.SetGlobal("config", toLuaValue(s.L, mapOrEmpty(config)))
	ret, err := s.DoFile(path)
	if err != nil {
		s.Close()
		return nil, err
	}
	return wrap(name, s, ret, config)
}

// LoadString executes behavior source directly. Used by tests and
// embedded behavior definitions.
func LoadString(name, source string, config map[string]any) (*ScriptBehavior, error) {
	s := NewState()
	s.L.SetGlobal("config", toLuaValue(s.L, mapOrEmpty(config)))
	ret, err := s.DoString(source)
	if err != nil {
		s.Close()
		return nil, err
	}
	return wrap(name, s, ret, config)
}

func wrap(name string, s *State, ret lua.LValue, config map[string]any) (*ScriptBehavior, error) {
	t, ok := ret.(*lua.LTable)
	if !ok {
		s.Close()
		return nil, fmt.Errorf("%w (%s returned %s)", ErrNoTable, name, ret.Type())
	}
	return &ScriptBehavior{
		name:   name,
		state:  s,
		table:  t,
		config: config,
	}, nil
}

func mapOrEmpty(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}

// Name implements view.Behavior.
func (b *ScriptBehavior) Name() string { return b.name }

// Events implements view.Behavior.
func (b *ScriptBehavior) Events() any { return b.tableField("events") }

// Triggers implements view.Behavior.
func (b *ScriptBehavior) Triggers() any { return b.tableField("triggers") }

// ModelEvents implements view.Behavior.
func (b *ScriptBehavior) ModelEvents() any { return b.tableField("model_events") }

// CollectionEvents implements view.Behavior.
func (b *ScriptBehavior) CollectionEvents() any { return b.tableField("collection_events") }

// UINames implements view.Behavior.
func (b *ScriptBehavior) UINames() map[string]string {
	raw, _ := b.tableField("ui").(map[string]any)
	if len(raw) == 0 {
		return nil
	}
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}

func (b *ScriptBehavior) tableField(name string) any {
	if b.state.Closed() {
		return nil
	}
	v := b.table.RawGetString(name)
	if v == lua.LNil {
		return nil
	}
	return toGoValue(v)
}

// Handler resolves a Lua handler by event name or by its Lua handler name
// ("before:destroy" -> "on_before_destroy"). Descriptor string values name
// table functions directly.
func (b *ScriptBehavior) Handler(name string) (view.Handler, bool) {
	if b.state.Closed() {
		return nil, false
	}
	fn := b.lookupFunction(name)
	if fn == nil {
		fn = b.lookupFunction(HandlerName(name))
	}
	if fn == nil {
		return nil, false
	}
	return func(args ...any) any {
		// A failing script handler must not abort the event cascade.
		ret, err := b.state.Call(fn, args...)
		if err != nil {
			return nil
		}
		return ret
	}, true
}

func (b *ScriptBehavior) lookupFunction(name string) *lua.LFunction {
	if name == "" {
		return nil
	}
	if fn, ok := b.table.RawGetString(name).(*lua.LFunction); ok {
		return fn
	}
	return nil
}

// HandlerName derives the Lua handler name for an event name: colon
// separators become underscores and the result is prefixed with "on_".
func HandlerName(eventName string) string {
	if eventName == "" {
		return ""
	}
	return "on_" + strings.ReplaceAll(eventName, ":", "_")
}

// View returns the owning view, or nil before attachment.
func (b *ScriptBehavior) View() *view.View { return b.owner }

// Attach implements view.Behavior. If the script defines an "attach"
// function it is invoked with no arguments.
func (b *ScriptBehavior) Attach(owner *view.View) {
	b.owner = owner
	if fn := b.lookupFunction("attach"); fn != nil {
		_, _ = b.state.Call(fn)
	}
}

// Detach implements view.Behavior. The script's "detach" function, if
// any, runs here; the Lua state stays open so the subsequent "destroy"
// dispatch can still reach script handlers.
func (b *ScriptBehavior) Detach() {
	if fn := b.lookupFunction("detach"); fn != nil {
		_, _ = b.state.Call(fn)
	}
	b.owner = nil
}

// Release implements view.Releaser: it closes the Lua state. The owning
// view calls it after the destroy dispatch; holders of a never-attached
// behavior call it directly when done.
func (b *ScriptBehavior) Release() {
	b.state.Close()
}
