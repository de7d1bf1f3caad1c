package index

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/jscomp/typedast/ast"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "index.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPutGet(t *testing.T) {
	s := openTestStore(t)
	at := time.Date(2026, 8, 25, 10, 30, 0, 0, time.UTC)
	rec := &Record{
		Path:      "/out/app.typedast",
		Script:    "src/main.js",
		Features:  ast.FeatureSet(0).Add(ast.FeatureConstDeclarations).Add(ast.FeatureArrowFunctions),
		DecodedAt: at,
	}

	if err := s.Put(rec); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := s.Get("/out/app.typedast", "src/main.js")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Features != rec.Features {
		t.Errorf("Features = %v, want %v", got.Features, rec.Features)
	}
	if !got.DecodedAt.Equal(at) {
		t.Errorf("DecodedAt = %v, want %v", got.DecodedAt, at)
	}
}

func TestGetNotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Get("/out/app.typedast", "missing.js")
	if !errors.Is(err, ErrScriptNotFound) {
		t.Errorf("Get error = %v, want ErrScriptNotFound", err)
	}
}

func TestPutReplaces(t *testing.T) {
	s := openTestStore(t)

	first := &Record{Path: "/a", Script: "x.js", Features: ast.FeatureSet(0).Add(ast.FeatureGetter)}
	second := &Record{Path: "/a", Script: "x.js", Features: ast.FeatureSet(0).Add(ast.FeatureSetter)}
	if err := s.Put(first); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := s.Put(second); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := s.Get("/a", "x.js")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Features != second.Features {
		t.Errorf("Features = %v, want %v", got.Features, second.Features)
	}

	all, err := s.All()
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("All() count = %d, want 1", len(all))
	}
}

func TestScriptsWithFeature(t *testing.T) {
	s := openTestStore(t)

	records := []*Record{
		{Path: "/a", Script: "one.js", Features: ast.FeatureSet(0).Add(ast.FeatureGetter).Add(ast.FeatureModules)},
		{Path: "/a", Script: "two.js", Features: ast.FeatureSet(0).Add(ast.FeatureModules)},
		// class_getter_setter contains "getter" as a substring; it must
		// not count as the getter feature.
		{Path: "/b", Script: "three.js", Features: ast.FeatureSet(0).Add(ast.FeatureClassGetterSetter)},
		{Path: "/b", Script: "four.js", Features: 0},
	}
	for _, rec := range records {
		if err := s.Put(rec); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
	}

	got, err := s.ScriptsWithFeature(ast.FeatureGetter)
	if err != nil {
		t.Fatalf("ScriptsWithFeature failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("matches = %d, want 1", len(got))
	}
	if got[0].Script != "one.js" {
		t.Errorf("match = %q, want one.js", got[0].Script)
	}

	got, err = s.ScriptsWithFeature(ast.FeatureModules)
	if err != nil {
		t.Fatalf("ScriptsWithFeature failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("matches = %d, want 2", len(got))
	}
	if got[0].Script != "one.js" || got[1].Script != "two.js" {
		t.Errorf("matches = %q, %q, want one.js, two.js", got[0].Script, got[1].Script)
	}
}

func TestSummary(t *testing.T) {
	s := openTestStore(t)

	records := []*Record{
		{Path: "/a", Script: "one.js", Features: ast.FeatureSet(0).Add(ast.FeatureConstDeclarations).Add(ast.FeatureClasses)},
		{Path: "/a", Script: "two.js", Features: ast.FeatureSet(0).Add(ast.FeatureConstDeclarations)},
		{Path: "/b", Script: "three.js", Features: 0},
	}
	for _, rec := range records {
		if err := s.Put(rec); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
	}

	counts, err := s.Summary()
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	if counts[ast.FeatureConstDeclarations] != 2 {
		t.Errorf("const_declarations count = %d, want 2", counts[ast.FeatureConstDeclarations])
	}
	if counts[ast.FeatureClasses] != 1 {
		t.Errorf("classes count = %d, want 1", counts[ast.FeatureClasses])
	}
	if _, ok := counts[ast.FeatureGetter]; ok {
		t.Error("getter appears in summary, want absent")
	}
}

func TestDeletePath(t *testing.T) {
	s := openTestStore(t)

	records := []*Record{
		{Path: "/a", Script: "one.js", Features: 0},
		{Path: "/a", Script: "two.js", Features: 0},
		{Path: "/b", Script: "three.js", Features: 0},
	}
	for _, rec := range records {
		if err := s.Put(rec); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
	}

	if err := s.DeletePath("/a"); err != nil {
		t.Fatalf("DeletePath failed: %v", err)
	}

	all, err := s.All()
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("All() count = %d, want 1", len(all))
	}
	if all[0].Path != "/b" {
		t.Errorf("remaining path = %q, want /b", all[0].Path)
	}
}

func TestOpenExistingDatabase(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "index.db")

	s, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	rec := &Record{Path: "/a", Script: "one.js", Features: ast.FeatureSet(0).Add(ast.FeatureSuper)}
	if err := s.Put(rec); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// Reopen and read back
	s, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer s.Close()

	got, err := s.Get("/a", "one.js")
	if err != nil {
		t.Fatalf("Get after reopen failed: %v", err)
	}
	if got.Features != rec.Features {
		t.Errorf("Features = %v, want %v", got.Features, rec.Features)
	}
}
