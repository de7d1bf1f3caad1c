package manifest

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadManifest(t *testing.T) {
	// Create a temporary directory with a typedast.toml
	dir := t.TempDir()
	tomlContent := `
[workspace]
roots = ["build/out", "typed"]

[index]
db = "cache/features.db"
`
	if err := os.WriteFile(filepath.Join(dir, "typedast.toml"), []byte(tomlContent), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(m.Workspace.Roots) != 2 {
		t.Fatalf("workspace roots count = %d, want 2", len(m.Workspace.Roots))
	}
	if m.Workspace.Roots[0] != "build/out" {
		t.Errorf("roots[0] = %q, want build/out", m.Workspace.Roots[0])
	}
	if m.Workspace.Roots[1] != "typed" {
		t.Errorf("roots[1] = %q, want typed", m.Workspace.Roots[1])
	}
	if m.Index.DB != "cache/features.db" {
		t.Errorf("index db = %q, want cache/features.db", m.Index.DB)
	}
	if !filepath.IsAbs(m.Dir) {
		t.Errorf("Dir = %q, want an absolute path", m.Dir)
	}
}

func TestLoadManifestDefaults(t *testing.T) {
	dir := t.TempDir()
	tomlContent := `
[workspace]
`
	if err := os.WriteFile(filepath.Join(dir, "typedast.toml"), []byte(tomlContent), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Default root is the manifest directory itself
	if len(m.Workspace.Roots) != 1 || m.Workspace.Roots[0] != "." {
		t.Errorf("default roots = %v, want [.]", m.Workspace.Roots)
	}
	if m.Index.DB != filepath.Join(".typedast", "index.db") {
		t.Errorf("default index db = %q, want .typedast/index.db", m.Index.DB)
	}
}

func TestFindAndLoad(t *testing.T) {
	// Create nested directory structure
	dir := t.TempDir()
	subDir := filepath.Join(dir, "a", "b", "c")
	if err := os.MkdirAll(subDir, 0755); err != nil {
		t.Fatal(err)
	}

	tomlContent := `[workspace]
roots = ["out"]
`
	if err := os.WriteFile(filepath.Join(dir, "typedast.toml"), []byte(tomlContent), 0644); err != nil {
		t.Fatal(err)
	}

	// Should find the manifest when starting from a deep subdirectory
	m, err := FindAndLoad(subDir)
	if err != nil {
		t.Fatalf("FindAndLoad failed: %v", err)
	}
	if m == nil {
		t.Fatal("FindAndLoad returned nil")
	}
	if len(m.Workspace.Roots) != 1 || m.Workspace.Roots[0] != "out" {
		t.Errorf("roots = %v, want [out]", m.Workspace.Roots)
	}
}

func TestFindAndLoadNotFound(t *testing.T) {
	dir := t.TempDir()
	m, err := FindAndLoad(dir)
	if err != nil {
		t.Fatalf("FindAndLoad error: %v", err)
	}
	if m != nil {
		t.Error("expected nil manifest when no typedast.toml exists")
	}
}

func TestDefault(t *testing.T) {
	m, err := Default(t.TempDir())
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}
	if len(m.Workspace.Roots) != 1 || m.Workspace.Roots[0] != "." {
		t.Errorf("roots = %v, want [.]", m.Workspace.Roots)
	}
	if m.Index.DB == "" {
		t.Error("index db is empty, want a default")
	}
	if !filepath.IsAbs(m.Dir) {
		t.Errorf("Dir = %q, want an absolute path", m.Dir)
	}
}

func TestRootPaths(t *testing.T) {
	m := &Manifest{
		Dir: "/work",
		Workspace: Workspace{
			Roots: []string{"out", "/elsewhere/typed"},
		},
	}

	paths := m.RootPaths()
	if len(paths) != 2 {
		t.Fatalf("expected 2 paths, got %d", len(paths))
	}
	if paths[0] != "/work/out" {
		t.Errorf("paths[0] = %q, want /work/out", paths[0])
	}
	if paths[1] != "/elsewhere/typed" {
		t.Errorf("paths[1] = %q, want /elsewhere/typed", paths[1])
	}
}

func TestDBPath(t *testing.T) {
	m := &Manifest{Dir: "/work", Index: Index{DB: "cache/features.db"}}
	if got := m.DBPath(); got != "/work/cache/features.db" {
		t.Errorf("DBPath() = %q, want /work/cache/features.db", got)
	}

	m = &Manifest{Dir: "/work", Index: Index{DB: "/var/idx.db"}}
	if got := m.DBPath(); got != "/var/idx.db" {
		t.Errorf("DBPath() = %q, want /var/idx.db", got)
	}
}
