package event

import (
	"regexp"
	"strings"
)

// DescriptorMap maps an event spec ("<domEvent> <selector>" or a bare event
// name) to a handler. Handler values are either a handler-method name
// (string) or a callable supplied by the authoring layer; this package does
// not interpret them beyond carrying them through normalization.
type DescriptorMap map[string]any

// uiPlaceholder matches "@ui.<name>" tokens inside descriptor keys.
var uiPlaceholder = regexp.MustCompile(`@ui\.([a-zA-Z0-9_-]+)`)

// Normalize resolves a raw descriptor source into a DescriptorMap.
//
// The source may be:
//   - nil, which contributes nothing
//   - a DescriptorMap or map[string]any, copied as-is
//   - a map[string]string, widened to a DescriptorMap
//   - a func() map[string]any, evaluated once
//
// Any other source is treated as absent. Keys and string values containing
// "@ui.<name>" placeholders are substituted from the ui table; placeholders
// naming an unknown entry pass through unchanged, which keeps keys that are
// plain event names intact.
func Normalize(src any, ui map[string]string) DescriptorMap {
	raw := resolveSource(src)
	if len(raw) == 0 {
		return nil
	}
	out := make(DescriptorMap, len(raw))
	for key, val := range raw {
		if s, ok := val.(string); ok {
			val = NormalizeUIString(s, ui)
		}
		out[NormalizeUIString(key, ui)] = val
	}
	return out
}

// NormalizeUIString substitutes "@ui.<name>" placeholders in s from the ui
// table. Unknown names are left untouched.
func NormalizeUIString(s string, ui map[string]string) string {
	if len(ui) == 0 || !strings.Contains(s, "@ui.") {
		return s
	}
	return uiPlaceholder.ReplaceAllStringFunc(s, func(tok string) string {
		name := tok[len("@ui."):]
		if sel, ok := ui[name]; ok {
			return sel
		}
		return tok
	})
}

// NormalizeUIKeys substitutes placeholders in every key of a selector table,
// returning a new map. Used to resolve a UI name table whose own values
// reference earlier entries.
func NormalizeUIKeys(table map[string]string, ui map[string]string) map[string]string {
	if len(table) == 0 {
		return nil
	}
	out := make(map[string]string, len(table))
	for name, sel := range table {
		out[name] = NormalizeUIString(sel, ui)
	}
	return out
}

// Merge combines descriptor maps in argument order; a later map's entry
// replaces an earlier one under the same key. Nil maps contribute nothing.
func Merge(maps ...DescriptorMap) DescriptorMap {
	var out DescriptorMap
	for _, m := range maps {
		if len(m) == 0 {
			continue
		}
		if out == nil {
			out = make(DescriptorMap, len(m))
		}
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}

func resolveSource(src any) map[string]any {
	switch v := src.(type) {
	case nil:
		return nil
	case DescriptorMap:
		return v
	case map[string]any:
		return v
	case map[string]string:
		out := make(map[string]any, len(v))
		for k, s := range v {
			out[k] = s
		}
		return out
	case func() map[string]any:
		if v == nil {
			return nil
		}
		return v()
	default:
		// Malformed sources are deliberately treated as absent.
		return nil
	}
}
