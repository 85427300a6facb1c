// Package lua implements Lua-scripted behaviors.
//
// A scripted behavior is a Lua chunk, executed in a sandboxed state, that
// returns a table describing the behavior:
//
//	return {
//	  ui       = { save = ".save" },
//	  events   = { ["click @ui.save"] = "on_save_click" },
//	  triggers = { ["click .cancel"] = "form:cancel" },
//	  model_events      = { ["change:title"] = "on_title_change" },
//	  collection_events = { reset = "on_reset" },
//
//	  on_save_click = function(...) ... end,
//	  on_render     = function(...) ... end,
//	}
//
// Handler lookup follows the view core's method-event derivation with Lua
// naming: an event "before:destroy" resolves the table function
// "on_before_destroy". String values in the descriptor maps name table
// functions directly.
//
// The Lua state is sandboxed the same way plugins usually are: only the
// base, table, string, and math libraries are open, and chunk/file loading
// primitives are removed. A gopher-lua LState is not goroutine-safe; a
// scripted behavior must only be driven from the single goroutine running
// the view tree.
package lua
