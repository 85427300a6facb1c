package event

import "testing"

func TestMethodName(t *testing.T) {
	tests := []struct {
		event string
		want  string
	}{
		{"render", "onRender"},
		{"before:destroy", "onBeforeDestroy"},
		{"childview:save", "onChildviewSave"},
		{"do:it:now", "onDoItNow"},
		{"trig:c", "onTrigC"},
		{"", ""},
		{"a", "onA"},
		{"already:Upper", "onAlreadyUpper"},
		{"double::colon", "onDoubleColon"},
		{"émettre:valeur", "onÉmettreValeur"},
	}

	for _, tt := range tests {
		if got := MethodName(tt.event); got != tt.want {
			t.Errorf("MethodName(%q) = %q, want %q", tt.event, got, tt.want)
		}
	}
}
