package event

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MethodName derives the handler-method name for an event name.
// Colon-separated words are camel-cased and prefixed with "on":
//
//	"render"          -> "onRender"
//	"before:destroy"  -> "onBeforeDestroy"
//	"childview:save"  -> "onChildviewSave"
//
// Non-alphanumeric characters within a word (other than the colon
// separators) are preserved as-is; the derivation only capitalizes the
// first rune of each word.
func MethodName(event string) string {
	if event == "" {
		return ""
	}
	var b strings.Builder
	b.WriteString("on")
	for _, word := range strings.Split(event, ":") {
		if word == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(word[size:])
	}
	return b.String()
}
