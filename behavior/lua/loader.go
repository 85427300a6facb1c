package lua

import (
	"os"
	"path/filepath"

	"github.com/cornice-ui/cornice/behavior"
	"github.com/cornice-ui/cornice/logging"
	"github.com/cornice-ui/cornice/view"
)

// Loader discovers scripted behaviors on disk and registers factories for
// them. Each attachment runs the script in a fresh state, so behavior
// instances never share Lua globals.
type Loader struct {
	registry *behavior.Registry
	log      *logging.Logger
}

// NewLoader creates a loader registering into reg. A nil logger disables
// load logging.
func NewLoader(reg *behavior.Registry, log *logging.Logger) *Loader {
	if log == nil {
		log = logging.Null
	}
	return &Loader{registry: reg, log: log.WithComponent("lua-loader")}
}

// Factory returns a behavior.Factory that instantiates the scripted
// behavior described by the manifest. Manifest config defaults are merged
// under each attachment's configuration.
func Factory(m *behavior.Manifest) behavior.Factory {
	return func(config map[string]any) (view.Behavior, error) {
		merged := make(map[string]any, len(m.ConfigDefaults)+len(config))
		for k, v := range m.ConfigDefaults {
			merged[k] = v
		}
		for k, v := range config {
			merged[k] = v
		}
		return Load(m.Name, m.ScriptPath(), merged)
	}
}

// LoadManifest registers the behavior described by the manifest in dir.
func (l *Loader) LoadManifest(dir string) (*behavior.Manifest, error) {
	m, err := behavior.LoadManifest(dir)
	if err != nil {
		return nil, err
	}
	if err := l.registry.Register(m.Name, Factory(m)); err != nil {
		return nil, err
	}
	l.log.Info("registered behavior %q version %s from %s", m.Name, m.Version, dir)
	return m, nil
}

// LoadDir scans each immediate subdirectory of root for a manifest and
// registers every behavior found. Directories that fail to load are
// logged and skipped; the returned count is the number registered.
func (l *Loader) LoadDir(root string) (int, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return 0, err
	}
	loaded := 0
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		dir := filepath.Join(root, e.Name())
		if _, statErr := os.Stat(filepath.Join(dir, behavior.ManifestFileName)); statErr != nil {
			continue
		}
		if _, err := l.LoadManifest(dir); err != nil {
			l.log.Warn("skipping behavior in %s: %v", dir, err)
			continue
		}
		loaded++
	}
	return loaded, nil
}
