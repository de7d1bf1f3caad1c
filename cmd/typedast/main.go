// typedast - TypedAST container tool: decode, inspect and index .typedast files
//
// Usage:
//   typedast dump [options] <file.typedast>       # decoded trees + feature summaries
//   typedast inspect <file.typedast>              # raw wire view, unknown fields included
//   typedast index [options] [dirs...]            # record script features in the index
//   typedast features [options] [file.typedast]   # feature summaries, or index queries
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tliron/commonlog"

	"github.com/jscomp/typedast/ast"
	"github.com/jscomp/typedast/decoder"
	"github.com/jscomp/typedast/docinfo"
	"github.com/jscomp/typedast/index"
	"github.com/jscomp/typedast/inspect"
	"github.com/jscomp/typedast/manifest"
	"github.com/jscomp/typedast/pool"
	"github.com/jscomp/typedast/wire"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("typedast")

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cmd, args := os.Args[1], os.Args[2:]
	var err error
	switch cmd {
	case "dump":
		err = runDump(args)
	case "inspect":
		err = runInspect(args)
	case "index":
		err = runIndex(args)
	case "features":
		err = runFeatures(args)
	case "help", "-h", "--help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", cmd)
		usage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: typedast <command> [options] [args]\n\n")
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  dump      Decode a container and print script trees with feature summaries\n")
	fmt.Fprintf(os.Stderr, "  inspect   Print the raw wire view of a container, unknown fields included\n")
	fmt.Fprintf(os.Stderr, "  index     Walk directories for .typedast files and record their features\n")
	fmt.Fprintf(os.Stderr, "  features  Print feature summaries, or query the index for a feature\n\n")
	fmt.Fprintf(os.Stderr, "Examples:\n")
	fmt.Fprintf(os.Stderr, "  typedast dump build/app.typedast\n")
	fmt.Fprintf(os.Stderr, "  typedast dump -script src/main.js build/app.typedast\n")
	fmt.Fprintf(os.Stderr, "  typedast inspect build/app.typedast\n")
	fmt.Fprintf(os.Stderr, "  typedast index ./build\n")
	fmt.Fprintf(os.Stderr, "  typedast features build/app.typedast\n")
	fmt.Fprintf(os.Stderr, "  typedast features -feature optional_chaining\n")
}

// configureLogging sets up the commonlog backend. Verbose raises the level
// from notice to debug.
func configureLogging(verbose bool) {
	verbosity := 0
	if verbose {
		verbosity = 2
	}
	commonlog.Configure(verbosity, nil)
}

// ---------------------------------------------------------------------------
// dump
// ---------------------------------------------------------------------------

func runDump(args []string) error {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	verbose := fs.Bool("v", false, "Verbose output")
	script := fs.String("script", "", "Dump only the script parsed from this source file")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: typedast dump [options] <file.typedast>\n\nOptions:\n")
		fs.PrintDefaults()
	}
	fs.Parse(args)
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(1)
	}
	configureLogging(*verbose)

	path := fs.Arg(0)
	c, strs, files, err := loadContainer(path)
	if err != nil {
		return err
	}
	log.Infof("loaded %s: %d scripts, %d strings, %d files", path, len(c.Scripts), strs.Len(), files.Len())

	matched := false
	for i, ls := range c.Scripts {
		d, err := decoder.NewScriptDecoder(ls, strs, files, decoder.WithDocDecoder(docinfo.Codec{}))
		if err != nil {
			return fmt.Errorf("script %d: %w", i, err)
		}
		if *script != "" && d.SourceFile().Name != *script {
			continue
		}
		matched = true

		root, err := d.Decode()
		if err != nil {
			return err
		}
		if i > 0 && *script == "" {
			fmt.Println()
		}
		fmt.Printf("script %s\n", d.SourceFile().Name)
		if url := d.SourceMappingURL(); url != "" {
			fmt.Printf("sourceMappingURL %s\n", url)
		}
		fmt.Print(ast.Dump(root))
		printFeatures(root.Features)
	}
	if *script != "" && !matched {
		return fmt.Errorf("no script for source file %q in %s", *script, path)
	}
	return nil
}

func printFeatures(features ast.FeatureSet) {
	if features.Empty() {
		fmt.Println("features (none)")
		return
	}
	fmt.Println("features")
	for _, name := range features.Names() {
		fmt.Printf("  %s\n", name)
	}
}

// ---------------------------------------------------------------------------
// inspect
// ---------------------------------------------------------------------------

func runInspect(args []string) error {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: typedast inspect <file.typedast>\n")
	}
	fs.Parse(args)
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(1)
	}

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return err
	}
	out, err := inspect.Container(data)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

// ---------------------------------------------------------------------------
// index
// ---------------------------------------------------------------------------

func runIndex(args []string) error {
	fs := flag.NewFlagSet("index", flag.ExitOnError)
	verbose := fs.Bool("v", false, "Verbose output")
	dbPath := fs.String("db", "", "Index database path (overrides typedast.toml)")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: typedast index [options] [dirs...]\n\n")
		fmt.Fprintf(os.Stderr, "Without dirs, the workspace roots from typedast.toml are walked.\n\nOptions:\n")
		fs.PrintDefaults()
	}
	fs.Parse(args)
	configureLogging(*verbose)

	roots := fs.Args()
	db := *dbPath
	if len(roots) == 0 || db == "" {
		m, err := workspaceManifest()
		if err != nil {
			return err
		}
		if len(roots) == 0 {
			roots = m.RootPaths()
		}
		if db == "" {
			db = m.DBPath()
		}
	}

	if err := os.MkdirAll(filepath.Dir(db), 0755); err != nil {
		return err
	}
	store, err := index.Open(db)
	if err != nil {
		return err
	}
	defer store.Close()

	total := 0
	for _, root := range roots {
		n, err := indexTree(store, root)
		if err != nil {
			return err
		}
		total += n
	}
	fmt.Printf("Indexed %d scripts into %s\n", total, db)
	return nil
}

// workspaceManifest finds the nearest typedast.toml, falling back to the
// defaults for the current directory.
func workspaceManifest() (*manifest.Manifest, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	m, err := manifest.FindAndLoad(cwd)
	if err != nil {
		return nil, err
	}
	if m == nil {
		m, err = manifest.Default(cwd)
		if err != nil {
			return nil, err
		}
	}
	return m, nil
}

// indexTree walks root and records every .typedast container found.
func indexTree(store *index.Store, root string) (int, error) {
	count := 0
	err := filepath.Walk(root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.HasSuffix(p, ".typedast") {
			return nil
		}
		n, err := indexFile(store, p)
		if err != nil {
			return err
		}
		count += n
		return nil
	})
	if err != nil {
		return count, fmt.Errorf("walking %q: %w", root, err)
	}
	return count, nil
}

// indexFile decodes every script of one container and records its features.
func indexFile(store *index.Store, path string) (int, error) {
	c, strs, files, err := loadContainer(path)
	if err != nil {
		return 0, err
	}

	count := 0
	for i, ls := range c.Scripts {
		d, err := decoder.NewScriptDecoder(ls, strs, files)
		if err != nil {
			return count, fmt.Errorf("%s script %d: %w", path, i, err)
		}
		root, err := d.Decode()
		if err != nil {
			return count, fmt.Errorf("%s: %w", path, err)
		}
		rec := &index.Record{
			Path:      path,
			Script:    d.SourceFile().Name,
			Features:  root.Features,
			DecodedAt: time.Now(),
		}
		if err := store.Put(rec); err != nil {
			return count, err
		}
		count++
	}
	log.Debugf("indexed %s (%d scripts)", path, count)
	return count, nil
}

// ---------------------------------------------------------------------------
// features
// ---------------------------------------------------------------------------

func runFeatures(args []string) error {
	fs := flag.NewFlagSet("features", flag.ExitOnError)
	verbose := fs.Bool("v", false, "Verbose output")
	feature := fs.String("feature", "", "Query the index for scripts using this feature")
	dbPath := fs.String("db", "", "Index database path (overrides typedast.toml)")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: typedast features [options] [file.typedast]\n\n")
		fmt.Fprintf(os.Stderr, "With a file, prints the feature summary of each script in it.\n")
		fmt.Fprintf(os.Stderr, "With -feature, queries the index instead.\n\nOptions:\n")
		fs.PrintDefaults()
	}
	fs.Parse(args)
	configureLogging(*verbose)

	if *feature != "" {
		return queryFeature(*feature, *dbPath)
	}

	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(1)
	}
	path := fs.Arg(0)
	c, strs, files, err := loadContainer(path)
	if err != nil {
		return err
	}
	for i, ls := range c.Scripts {
		d, err := decoder.NewScriptDecoder(ls, strs, files)
		if err != nil {
			return fmt.Errorf("script %d: %w", i, err)
		}
		root, err := d.Decode()
		if err != nil {
			return err
		}
		if root.Features.Empty() {
			fmt.Printf("%s: (none)\n", d.SourceFile().Name)
		} else {
			fmt.Printf("%s: %s\n", d.SourceFile().Name, root.Features)
		}
	}
	return nil
}

// queryFeature lists the indexed scripts that use the named feature.
func queryFeature(name, dbPath string) error {
	f, ok := ast.FeatureByName(name)
	if !ok {
		return fmt.Errorf("unknown feature %q", name)
	}

	db := dbPath
	if db == "" {
		m, err := workspaceManifest()
		if err != nil {
			return err
		}
		db = m.DBPath()
	}
	if _, err := os.Stat(db); err != nil {
		return fmt.Errorf("no index at %s (run 'typedast index' first)", db)
	}
	store, err := index.Open(db)
	if err != nil {
		return err
	}
	defer store.Close()

	recs, err := store.ScriptsWithFeature(f)
	if err != nil {
		return err
	}
	for _, rec := range recs {
		fmt.Printf("%s\t%s\n", rec.Path, rec.Script)
	}
	log.Infof("%d scripts use %s", len(recs), name)
	return nil
}

// ---------------------------------------------------------------------------
// Shared
// ---------------------------------------------------------------------------

// loadContainer reads and parses a container file and builds its pools.
func loadContainer(path string) (*wire.TypedAST, *pool.StringTable, *pool.FileTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, nil, err
	}
	c, err := wire.ParseTypedAST(data)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	strs, files := pool.FromContainer(c)
	return c, strs, files, nil
}
