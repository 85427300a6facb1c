package lua

import lua "github.com/yuin/gopher-lua"

// toGoValue converts a Lua value to a Go value. Tables become maps or
// slices; functions and other unconvertible values become nil. Circular
// tables are broken at the repeated reference.
func toGoValue(lv lua.LValue) any {
	return toGoValueVisited(lv, make(map[*lua.LTable]bool))
}

func toGoValueVisited(lv lua.LValue, visited map[*lua.LTable]bool) any {
	switch v := lv.(type) {
	case lua.LBool:
		return bool(v)
	case lua.LNumber:
		f := float64(v)
		if f == float64(int64(f)) {
			n := int64(f)
			if int64(int(n)) == n {
				return int(n)
			}
			return n
		}
		return f
	case lua.LString:
		return string(v)
	case *lua.LTable:
		if visited[v] {
			return nil
		}
		visited[v] = true
		return tableToGo(v, visited)
	case *lua.LUserData:
		return v.Value
	default:
		return nil
	}
}

// tableToGo converts a table to a []any when it is a pure 1..n array, and
// a map[string]any otherwise.
func tableToGo(t *lua.LTable, visited map[*lua.LTable]bool) any {
	maxN := 0
	isArray := true
	t.ForEach(func(k, _ lua.LValue) {
		n, ok := k.(lua.LNumber)
		if !ok || float64(n) != float64(int(n)) || int(n) < 1 {
			isArray = false
			return
		}
		if int(n) > maxN {
			maxN = int(n)
		}
	})

	if isArray && maxN > 0 {
		out := make([]any, 0, maxN)
		for i := 1; i <= maxN; i++ {
			out = append(out, toGoValueVisited(t.RawGetInt(i), visited))
		}
		return out
	}

	out := make(map[string]any)
	t.ForEach(func(k, v lua.LValue) {
		if ks, ok := k.(lua.LString); ok {
			out[string(ks)] = toGoValueVisited(v, visited)
		}
	})
	return out
}

// toLuaValue converts a Go value to a Lua value. Unconvertible values
// (views, DOM events) are wrapped as userdata so scripts can pass them
// back to Go unchanged.
func toLuaValue(L *lua.LState, v any) lua.LValue {
	switch g := v.(type) {
	case nil:
		return lua.LNil
	case bool:
		return lua.LBool(g)
	case int:
		return lua.LNumber(g)
	case int64:
		return lua.LNumber(g)
	case float64:
		return lua.LNumber(g)
	case string:
		return lua.LString(g)
	case []any:
		t := L.NewTable()
		for i, item := range g {
			t.RawSetInt(i+1, toLuaValue(L, item))
		}
		return t
	case map[string]any:
		t := L.NewTable()
		for k, item := range g {
			t.RawSetString(k, toLuaValue(L, item))
		}
		return t
	default:
		ud := L.NewUserData()
		ud.Value = v
		return ud
	}
}
