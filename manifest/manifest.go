// Package manifest handles typedast.toml workspace configuration.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Manifest represents a typedast.toml workspace configuration.
type Manifest struct {
	Workspace Workspace `toml:"workspace"`
	Index     Index     `toml:"index"`

	// Dir is the directory containing the typedast.toml file (set at load time).
	Dir string `toml:"-"`
}

// Workspace configures where serialized containers live.
type Workspace struct {
	// Roots are the directories scanned for .typedast containers.
	Roots []string `toml:"roots"`
}

// Index configures the feature index database.
type Index struct {
	DB string `toml:"db"`
}

// Load parses a typedast.toml file from the given directory.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, "typedast.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	m.Dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", dir, err)
	}

	applyDefaults(&m)
	return &m, nil
}

// FindAndLoad walks up from startDir to find a typedast.toml file,
// then loads and returns the manifest. Returns nil if no manifest is found.
func FindAndLoad(startDir string) (*Manifest, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, "typedast.toml")
		if _, err := os.Stat(path); err == nil {
			return Load(dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			return nil, nil
		}
		dir = parent
	}
}

// Default returns the configuration used when no typedast.toml exists:
// dir itself is the only workspace root and the index db lives beneath it.
func Default(dir string) (*Manifest, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", dir, err)
	}
	m := &Manifest{Dir: abs}
	applyDefaults(m)
	return m, nil
}

func applyDefaults(m *Manifest) {
	if len(m.Workspace.Roots) == 0 {
		m.Workspace.Roots = []string{"."}
	}
	if m.Index.DB == "" {
		m.Index.DB = filepath.Join(".typedast", "index.db")
	}
}

// RootPaths returns absolute paths for the configured workspace roots.
func (m *Manifest) RootPaths() []string {
	var paths []string
	for _, r := range m.Workspace.Roots {
		if filepath.IsAbs(r) {
			paths = append(paths, r)
			continue
		}
		paths = append(paths, filepath.Join(m.Dir, r))
	}
	return paths
}

// DBPath returns the absolute path of the feature index database.
func (m *Manifest) DBPath() string {
	if filepath.IsAbs(m.Index.DB) {
		return m.Index.DB
	}
	return filepath.Join(m.Dir, m.Index.DB)
}
