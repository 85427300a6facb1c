package lua

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// State wraps a sandboxed gopher-lua LState for behavior scripts.
//
// gopher-lua's LState is not goroutine-safe. A State must be driven from
// the single goroutine that runs the owning view tree.
type State struct {
	L      *lua.LState
	closed bool
}

// NewState creates a sandboxed Lua state: only the base, table, string,
// and math libraries are open, and chunk-loading primitives are removed.
func NewState() *State {
	L := lua.NewState(lua.Options{
		SkipOpenLibs: true,
	})

	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	// io, os, debug, and package stay closed; chunk loaders could
	// otherwise pull arbitrary code past the sandbox.
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}

	return &State{L: L}
}

// DoFile executes a Lua file and returns the value it returned.
func (s *State) DoFile(path string) (lua.LValue, error) {
	if s.closed {
		return lua.LNil, ErrStateClosed
	}
	fn, err := s.L.LoadFile(path)
	if err != nil {
		return lua.LNil, fmt.Errorf("loading %s: %w", path, err)
	}
	return s.call(fn)
}

// DoString executes Lua source and returns the value it returned.
func (s *State) DoString(source string) (lua.LValue, error) {
	if s.closed {
		return lua.LNil, ErrStateClosed
	}
	fn, err := s.L.LoadString(source)
	if err != nil {
		return lua.LNil, fmt.Errorf("loading chunk: %w", err)
	}
	return s.call(fn)
}

func (s *State) call(fn *lua.LFunction) (ret lua.LValue, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua execution panicked: %v", r)
		}
	}()

	s.L.Push(fn)
	if err := s.L.PCall(0, 1, nil); err != nil {
		return lua.LNil, err
	}
	ret = s.L.Get(-1)
	s.L.Pop(1)
	return ret, nil
}

// Call invokes a Lua function with the given arguments, converting Go
// values in and the single return value out.
func (s *State) Call(fn *lua.LFunction, args ...any) (any, error) {
	if s.closed {
		return nil, ErrStateClosed
	}
	s.L.Push(fn)
	for _, a := range args {
		s.L.Push(toLuaValue(s.L, a))
	}
	if err := s.L.PCall(len(args), 1, nil); err != nil {
		return nil, err
	}
	ret := s.L.Get(-1)
	s.L.Pop(1)
	return toGoValue(ret), nil
}

// Closed reports whether Close has been called.
func (s *State) Closed() bool { return s.closed }

// Close releases the Lua state. Closing twice is a no-op.
func (s *State) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.L.Close()
}
