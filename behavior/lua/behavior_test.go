package lua

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	glua "github.com/yuin/gopher-lua"

	"github.com/cornice-ui/cornice/behavior"
	"github.com/cornice-ui/cornice/view"
)

func TestLoadString_RequiresTable(t *testing.T) {
	_, err := LoadString("bad", `return 42`, nil)
	if !errors.Is(err, ErrNoTable) {
		t.Fatalf("expected ErrNoTable, got %v", err)
	}
}

func TestLoadString_SyntaxError(t *testing.T) {
	_, err := LoadString("broken", `return {`, nil)
	if err == nil {
		t.Fatal("expected error for malformed source")
	}
}

func TestScriptBehavior_Descriptors(t *testing.T) {
	b, err := LoadString("tooltip", `
		return {
			ui = { trigger = ".tooltip-trigger" },
			events = { ["click @ui.trigger"] = "show" },
			triggers = { ["mouseleave @ui.trigger"] = "tooltip:hide" },
			model_events = { change = "on_change" },
			collection_events = { reset = "on_reset" },
		}
	`, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer b.Release()

	ui := b.UINames()
	if ui["trigger"] != ".tooltip-trigger" {
		t.Errorf("UINames = %v", ui)
	}
	events, ok := b.Events().(map[string]any)
	if !ok || events["click @ui.trigger"] != "show" {
		t.Errorf("Events = %v", b.Events())
	}
	triggers, ok := b.Triggers().(map[string]any)
	if !ok || triggers["mouseleave @ui.trigger"] != "tooltip:hide" {
		t.Errorf("Triggers = %v", b.Triggers())
	}
	if me, ok := b.ModelEvents().(map[string]any); !ok || me["change"] != "on_change" {
		t.Errorf("ModelEvents = %v", b.ModelEvents())
	}
	if ce, ok := b.CollectionEvents().(map[string]any); !ok || ce["reset"] != "on_reset" {
		t.Errorf("CollectionEvents = %v", b.CollectionEvents())
	}
}

func TestScriptBehavior_HandlerNames(t *testing.T) {
	b, err := LoadString("names", `
		return {
			show = function() return "raw" end,
			on_before_destroy = function() return "derived" end,
		}
	`, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer b.Release()

	h, ok := b.Handler("show")
	if !ok {
		t.Fatal("raw name not resolved")
	}
	if got := h(); got != "raw" {
		t.Errorf("raw handler returned %v", got)
	}

	h, ok = b.Handler("before:destroy")
	if !ok {
		t.Fatal("derived name not resolved")
	}
	if got := h(); got != "derived" {
		t.Errorf("derived handler returned %v", got)
	}

	if _, ok := b.Handler("missing"); ok {
		t.Error("unknown name resolved")
	}
}

func TestHandlerName(t *testing.T) {
	tests := []struct {
		event string
		want  string
	}{
		{"destroy", "on_destroy"},
		{"before:destroy", "on_before_destroy"},
		{"item:select:one", "on_item_select_one"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := HandlerName(tt.event); got != tt.want {
			t.Errorf("HandlerName(%q) = %q, want %q", tt.event, got, tt.want)
		}
	}
}

func TestScriptBehavior_ConfigGlobal(t *testing.T) {
	b, err := LoadString("cfg", `
		return {
			delay = function() return config.delay end,
		}
	`, map[string]any{"delay": 250})
	if err != nil {
		t.Fatal(err)
	}
	defer b.Release()

	h, _ := b.Handler("delay")
	if got := h(); got != 250 {
		t.Errorf("config.delay = %v, want 250", got)
	}
}

func TestScriptBehavior_AttachDetachHooks(t *testing.T) {
	b, err := LoadString("hooks", `
		local log = {}
		return {
			attach = function() log[#log+1] = "attach" end,
			detach = function() log[#log+1] = "detach" end,
			trace = function() return table.concat(log, ",") end,
		}
	`, nil)
	if err != nil {
		t.Fatal(err)
	}

	v := view.New()
	b.Attach(v)
	if b.View() != v {
		t.Error("owner not set on attach")
	}
	h, _ := b.Handler("trace")
	if got := h(); got != "attach" {
		t.Errorf("trace after attach = %v", got)
	}

	b.Detach()
	if b.View() != nil {
		t.Error("owner not cleared on detach")
	}
	if b.state.Closed() {
		t.Error("state closed before release")
	}
	h, _ = b.Handler("trace")
	if got := h(); got != "attach,detach" {
		t.Errorf("trace after detach = %v", got)
	}

	b.Release()
	if !b.state.Closed() {
		t.Error("state not closed on release")
	}
	if _, ok := b.Handler("trace"); ok {
		t.Error("handler resolved after close")
	}
}

func TestScriptBehavior_OnView(t *testing.T) {
	b, err := LoadString("counter", `
		local count = 0
		return {
			on_item_select = function()
				count = count + 1
				return count
			end,
		}
	`, nil)
	if err != nil {
		t.Fatal(err)
	}

	v := view.New()
	if err := v.AddBehavior(b); err != nil {
		t.Fatal(err)
	}

	v.TriggerMethod("item:select")
	v.TriggerMethod("item:select")
	h, _ := b.Handler("item:select")
	if got := h(); got != 3 {
		t.Errorf("handler saw %v invocations, want 3", got)
	}

	v.Destroy()
	if !b.state.Closed() {
		t.Error("destroy did not close behavior state")
	}
}

func TestScriptBehavior_Sandbox(t *testing.T) {
	for _, fn := range []string{"dofile", "loadfile", "load", "loadstring"} {
		src := `return { probe = function() return ` + fn + ` == nil end }`
		b, err := LoadString("sandbox", src, nil)
		if err != nil {
			t.Fatal(err)
		}
		h, _ := b.Handler("probe")
		if got := h(); got != true {
			t.Errorf("%s reachable from sandbox", fn)
		}
		b.Release()
	}
}

func TestScriptBehavior_DestroyHandlerRuns(t *testing.T) {
	b, err := LoadString("teardown", `
		return {
			on_destroy = function() mark() end,
		}
	`, nil)
	if err != nil {
		t.Fatal(err)
	}

	marked := false
	b.state.L.SetGlobal("mark", b.state.L.NewFunction(func(L *glua.LState) int {
		marked = true
		return 0
	}))

	v := view.New()
	if err := v.AddBehavior(b); err != nil {
		t.Fatal(err)
	}

	v.Destroy()
	if !marked {
		t.Error("destroy dispatch did not reach the script handler")
	}
	if !b.state.Closed() {
		t.Error("state not closed after the destroy cascade")
	}
}

func writeBehaviorDir(t *testing.T, root, name, manifest, script string) string {
	t.Helper()
	dir := filepath.Join(root, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if manifest != "" {
		if err := os.WriteFile(filepath.Join(dir, behavior.ManifestFileName), []byte(manifest), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if script != "" {
		if err := os.WriteFile(filepath.Join(dir, "behavior.lua"), []byte(script), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestLoader_LoadManifest(t *testing.T) {
	root := t.TempDir()
	writeBehaviorDir(t, root, "tooltip",
		`{"name":"tooltip","version":"1.0.0","configDefaults":{"delay":100}}`,
		`return { delay = function() return config.delay end }`)

	reg := behavior.NewRegistry()
	l := NewLoader(reg, nil)
	m, err := l.LoadManifest(filepath.Join(root, "tooltip"))
	if err != nil {
		t.Fatal(err)
	}
	if m.Name != "tooltip" {
		t.Errorf("manifest name = %q", m.Name)
	}
	if !reg.Has("tooltip") {
		t.Fatal("behavior not registered")
	}

	// Attachment config overrides manifest defaults.
	b, err := reg.New("tooltip", map[string]any{"delay": 500})
	if err != nil {
		t.Fatal(err)
	}
	sb := b.(*ScriptBehavior)
	defer sb.Release()
	h, _ := sb.Handler("delay")
	if got := h(); got != 500 {
		t.Errorf("config.delay = %v, want 500", got)
	}

	// Defaults apply when the attachment leaves them unset.
	b2, err := reg.New("tooltip", nil)
	if err != nil {
		t.Fatal(err)
	}
	sb2 := b2.(*ScriptBehavior)
	defer sb2.Release()
	h2, _ := sb2.Handler("delay")
	if got := h2(); got != 100 {
		t.Errorf("default config.delay = %v, want 100", got)
	}
}

func TestLoader_LoadDir(t *testing.T) {
	root := t.TempDir()
	writeBehaviorDir(t, root, "good",
		`{"name":"good","version":"1.0.0"}`,
		`return {}`)
	writeBehaviorDir(t, root, "no-manifest", "", `return {}`)
	writeBehaviorDir(t, root, "bad-manifest", `{"name":""}`, `return {}`)

	reg := behavior.NewRegistry()
	l := NewLoader(reg, nil)
	n, err := l.LoadDir(root)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("loaded %d behaviors, want 1", n)
	}
	if !reg.Has("good") || reg.Has("bad-manifest") {
		t.Errorf("registry names = %v", reg.Names())
	}
}
