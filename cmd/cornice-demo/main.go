// Package main is an interactive terminal demo of the cornice view layer.
//
// It renders a small task list backed by an element tree, views, and
// behaviors. Keys: up/down select, enter toggles, a adds, d deletes,
// q quits.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/cornice-ui/cornice/behavior"
	luabehavior "github.com/cornice-ui/cornice/behavior/lua"
	"github.com/cornice-ui/cornice/config"
	"github.com/cornice-ui/cornice/dom"
	"github.com/cornice-ui/cornice/entity"
	"github.com/cornice-ui/cornice/view"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "cornice.toml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	log := cfg.NewLogger()

	reg := behavior.NewRegistry()
	loader := luabehavior.NewLoader(reg, log)
	for _, dir := range cfg.BehaviorPaths {
		if _, err := loader.LoadDir(dir); err != nil {
			log.Warn("behavior directory %s: %v", dir, err)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer screen.Fini()

	app := newApp(cfg, reg)
	defer app.root.Destroy()

	for {
		app.draw(screen)
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if !app.handleKey(ev) {
				return 0
			}
		}
	}
}

// app wires the demo's views together: a root view owning a list region,
// and a list view bound to a task collection.
type app struct {
	root     *view.View
	list     *view.View
	tasks    *entity.Collection
	status   *entity.Model
	selected int
}

func newApp(cfg *config.Config, reg *behavior.Registry) *app {
	rootEl := dom.NewElement("div").SetID("app")
	rootEl.Append(dom.NewElement("header"))
	rootEl.Append(dom.NewElement("div").SetID("list"))
	rootEl.Append(dom.NewElement("footer").AddClass("status"))

	a := &app{
		tasks: entity.NewCollection(
			entity.NewModel(map[string]any{"title": "walk the dog", "done": false}),
			entity.NewModel(map[string]any{"title": "water plants", "done": true}),
			entity.NewModel(map[string]any{"title": "read a chapter", "done": false}),
		),
		status: entity.NewModel(map[string]any{"text": "ready"}),
	}

	opts := append(cfg.ViewOptions(),
		view.WithElement(rootEl),
		view.WithModel(a.status),
		view.WithChildViewEvents(map[string]view.Handler{
			"task:toggle": func(args ...any) any {
				a.status.Set("text", "toggled a task")
				return nil
			},
		}),
	)
	a.root = view.New(opts...)
	a.root.MarkRendered().MarkAttached()

	a.list = view.New(
		view.WithCollection(a.tasks),
		view.WithTriggers(map[string]any{
			"click .task": cfg.TriggerSpec("task:toggle"),
		}),
		view.WithCollectionEvents(map[string]any{
			"add":    "onTasksChanged",
			"remove": "onTasksChanged",
		}),
	)
	a.list.Handle("onTaskToggle", func(args ...any) any {
		if len(args) == 2 {
			if e, ok := args[1].(*dom.Event); ok {
				a.toggle(e.CurrentTarget())
			}
		}
		return nil
	})
	a.list.Handle("onTasksChanged", func(args ...any) any {
		a.syncList()
		return nil
	})

	for _, name := range reg.Names() {
		if b, err := reg.New(name, nil); err == nil {
			_ = a.list.AddBehavior(b)
		}
	}

	if r, err := a.root.AddRegion("list", "#list"); err == nil {
		_ = r.ShowView(a.list)
	}
	a.list.DelegateEvents()
	a.list.DelegateEntityEvents()
	a.syncList()
	return a
}

// syncList rebuilds the list view's element children from the collection.
func (a *app) syncList() {
	for _, child := range a.list.Element().Children() {
		child.Detach()
	}
	for i := 0; i < a.tasks.Len(); i++ {
		el := dom.NewElement("div").AddClass("task")
		el.SetAttr("index", fmt.Sprintf("%d", i))
		a.list.Element().Append(el)
	}
	if a.selected >= a.tasks.Len() {
		a.selected = a.tasks.Len() - 1
	}
	if a.selected < 0 {
		a.selected = 0
	}
}

func (a *app) toggle(el *dom.Element) {
	if el == nil {
		return
	}
	var idx int
	if _, err := fmt.Sscanf(el.Attr("index"), "%d", &idx); err != nil {
		return
	}
	if idx < 0 || idx >= a.tasks.Len() {
		return
	}
	m := a.tasks.At(idx)
	done, _ := m.Get("done").(bool)
	m.Set("done", !done)
}

func (a *app) handleKey(ev *tcell.EventKey) bool {
	switch {
	case ev.Key() == tcell.KeyEscape, ev.Rune() == 'q':
		return false
	case ev.Key() == tcell.KeyUp:
		if a.selected > 0 {
			a.selected--
		}
	case ev.Key() == tcell.KeyDown:
		if a.selected < a.tasks.Len()-1 {
			a.selected++
		}
	case ev.Key() == tcell.KeyEnter:
		children := a.list.Element().Children()
		if a.selected < len(children) {
			children[a.selected].Dispatch("click")
		}
	case ev.Rune() == 'a':
		a.tasks.Add(entity.NewModel(map[string]any{
			"title": fmt.Sprintf("task %d", a.tasks.Len()+1),
			"done":  false,
		}))
		a.status.Set("text", "added a task")
	case ev.Rune() == 'd':
		if a.tasks.Len() > 0 {
			a.tasks.Remove(a.tasks.At(a.selected))
			a.status.Set("text", "removed a task")
		}
	}
	return true
}

func (a *app) draw(screen tcell.Screen) {
	screen.Clear()
	plain := tcell.StyleDefault
	bold := plain.Bold(true)

	drawText(screen, 0, 0, bold, "cornice demo")
	drawText(screen, 0, 1, plain, "up/down select  enter toggle  a add  d delete  q quit")

	row := 3
	for i, m := range a.tasks.Models() {
		mark := "[ ]"
		if done, _ := m.Get("done").(bool); done {
			mark = "[x]"
		}
		style := plain
		if i == a.selected {
			style = style.Reverse(true)
		}
		title, _ := m.Get("title").(string)
		drawText(screen, 2, row+i, style, fmt.Sprintf("%s %s", mark, title))
	}

	text, _ := a.status.Get("text").(string)
	drawText(screen, 0, row+a.tasks.Len()+1, plain.Dim(true), text)
	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
