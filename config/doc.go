// Package config loads view-layer configuration from TOML files and
// watches them for changes.
//
// Configuration controls cross-cutting defaults: the child view event
// prefix, trigger DOM event suppression, logging level, and the
// directories scanned for scripted behaviors. A missing config file is
// not an error; defaults apply.
package config
