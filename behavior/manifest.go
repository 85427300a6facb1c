package behavior

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

// Manifest describes a behavior defined outside the binary, typically a
// Lua-scripted one. It lives as behavior.json next to the script.
type Manifest struct {
	// Identity
	Name        string `json:"name"`        // Unique identifier (e.g. "tooltip")
	Version     string `json:"version"`     // Semver (e.g. "1.0.0")
	Description string `json:"description"` // Short description
	Author      string `json:"author"`      // Author name or org

	// Entry point
	Main string `json:"main"` // Relative path to the script (default "behavior.lua")

	// Defaults merged under each attachment's configuration.
	ConfigDefaults map[string]any `json:"configDefaults"`

	// Internal: directory the manifest was loaded from.
	dir string
}

// ManifestFileName is the expected manifest file name.
const ManifestFileName = "behavior.json"

var validBehaviorName = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)

// LoadManifest reads and validates the manifest in dir.
func LoadManifest(dir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestFileName))
	if err != nil {
		return nil, fmt.Errorf("reading manifest in %s: %w", dir, err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidManifest, dir, err)
	}
	m.dir = dir
	if m.Main == "" {
		m.Main = "behavior.lua"
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks required fields and name shape.
func (m *Manifest) Validate() error {
	if m == nil {
		return ErrNilManifest
	}
	if m.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidManifest)
	}
	if !validBehaviorName.MatchString(m.Name) {
		return fmt.Errorf("%w: bad name %q", ErrInvalidManifest, m.Name)
	}
	return nil
}

// ScriptPath returns the absolute path of the behavior's entry script.
func (m *Manifest) ScriptPath() string {
	return filepath.Join(m.dir, m.Main)
}

// Dir returns the directory the manifest was loaded from.
func (m *Manifest) Dir() string { return m.dir }
