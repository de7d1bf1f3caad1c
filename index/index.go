// Package index maintains the feature index: a SQLite database recording
// which language features each decoded script uses.
package index

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/jscomp/typedast/ast"
)

// ErrScriptNotFound indicates the requested script isn't indexed
var ErrScriptNotFound = errors.New("script not found")

// Record is one indexed script: a source file of one container and the
// language features its decoded tree uses.
type Record struct {
	Path      string // container file path
	Script    string // source file name within the container
	Features  ast.FeatureSet
	DecodedAt time.Time
}

// Store handles SQLite storage for script feature records
type Store struct {
	db     *sql.DB
	dbPath string
	mu     sync.Mutex
}

// Open opens the index database, creating it if needed
func Open(dbPath string) (*Store, error) {
	s := &Store{dbPath: dbPath}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	s.db = db

	// Set busy timeout for concurrent access
	_, err = db.Exec("PRAGMA busy_timeout = 5000")
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	// Create table if needed. Feature sets are stored in their canonical
	// comma-separated form.
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS scripts (
		path TEXT NOT NULL,
		script TEXT NOT NULL,
		features TEXT NOT NULL,
		decoded_at TEXT NOT NULL,
		PRIMARY KEY (path, script)
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating table: %w", err)
	}

	return s, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Put records one script's feature summary, replacing any previous record
// for the same container path and script name
func (s *Store) Put(rec *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO scripts (path, script, features, decoded_at) VALUES (?, ?, ?, ?)",
		rec.Path, rec.Script, rec.Features.String(), rec.DecodedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("saving record: %w", err)
	}
	return nil
}

// Get retrieves one script's record
func (s *Store) Get(path, script string) (*Record, error) {
	var features, decodedAt string
	err := s.db.QueryRow(
		"SELECT features, decoded_at FROM scripts WHERE path = ? AND script = ?",
		path, script,
	).Scan(&features, &decodedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrScriptNotFound
		}
		return nil, fmt.Errorf("querying record: %w", err)
	}
	return recordFrom(path, script, features, decodedAt)
}

// ScriptsWithFeature returns every record whose feature set contains f, in
// path then script order. Feature names never contain commas, so wrapping
// the stored form in commas makes the LIKE match exact.
func (s *Store) ScriptsWithFeature(f ast.Feature) ([]*Record, error) {
	rows, err := s.db.Query(
		"SELECT path, script, features, decoded_at FROM scripts WHERE ',' || features || ',' LIKE '%,' || ? || ',%' ORDER BY path, script",
		f.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("querying by feature: %w", err)
	}
	defer rows.Close()

	return collectRecords(rows)
}

// All returns every record in the index, in path then script order
func (s *Store) All() ([]*Record, error) {
	rows, err := s.db.Query("SELECT path, script, features, decoded_at FROM scripts ORDER BY path, script")
	if err != nil {
		return nil, fmt.Errorf("querying all records: %w", err)
	}
	defer rows.Close()

	return collectRecords(rows)
}

// Summary returns the number of indexed scripts using each feature.
// Features no script uses are absent from the map.
func (s *Store) Summary() (map[ast.Feature]int, error) {
	rows, err := s.db.Query("SELECT features FROM scripts")
	if err != nil {
		return nil, fmt.Errorf("querying features: %w", err)
	}
	defer rows.Close()

	counts := make(map[ast.Feature]int)
	for rows.Next() {
		var features string
		if err := rows.Scan(&features); err != nil {
			return nil, fmt.Errorf("scanning features: %w", err)
		}
		set, err := ast.ParseFeatureSet(features)
		if err != nil {
			return nil, fmt.Errorf("parsing stored features: %w", err)
		}
		for _, f := range ast.AllFeatures() {
			if set.Has(f) {
				counts[f]++
			}
		}
	}
	return counts, rows.Err()
}

// DeletePath removes every record of one container path
func (s *Store) DeletePath(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("DELETE FROM scripts WHERE path = ?", path)
	if err != nil {
		return fmt.Errorf("deleting records: %w", err)
	}
	return nil
}

func collectRecords(rows *sql.Rows) ([]*Record, error) {
	var recs []*Record
	for rows.Next() {
		var path, script, features, decodedAt string
		if err := rows.Scan(&path, &script, &features, &decodedAt); err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}
		rec, err := recordFrom(path, script, features, decodedAt)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

func recordFrom(path, script, features, decodedAt string) (*Record, error) {
	set, err := ast.ParseFeatureSet(features)
	if err != nil {
		return nil, fmt.Errorf("parsing stored features: %w", err)
	}
	at, err := time.Parse(time.RFC3339, decodedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing stored timestamp: %w", err)
	}
	return &Record{Path: path, Script: script, Features: set, DecodedAt: at}, nil
}
