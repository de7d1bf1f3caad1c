// Package pool implements the side tables a script stream points into:
// interned strings, source files, and resolved type colors. All pointers
// are 1-based; pointer 0 means absent and is never looked up. Tables are
// immutable after construction, so concurrent readers need no locking.
package pool

import (
	"errors"
	"fmt"

	"github.com/jscomp/typedast/ast"
	"github.com/jscomp/typedast/wire"
)

// ---------------------------------------------------------------------------
// Pool Error Types
// ---------------------------------------------------------------------------

var (
	ErrInvalidStringIndex = errors.New("invalid string pool index")
	ErrInvalidFileIndex   = errors.New("invalid file pool index")
	ErrInvalidColorIndex  = errors.New("invalid color pool index")
)

// ---------------------------------------------------------------------------
// StringTable
// ---------------------------------------------------------------------------

// StringTable is the interned string pool of one container.
type StringTable struct {
	strings []string
}

// NewStringTable builds a table over the given strings. Entry 0 of the slice
// becomes pointer 1.
func NewStringTable(strings []string) *StringTable {
	return &StringTable{strings: strings}
}

// At returns the string at a 1-based pointer. Pointer 0 and out-of-range
// pointers are errors.
func (t *StringTable) At(ptr uint32) (string, error) {
	if ptr == 0 || int(ptr) > len(t.strings) {
		return "", fmt.Errorf("%w: %d of %d", ErrInvalidStringIndex, ptr, len(t.strings))
	}
	return t.strings[ptr-1], nil
}

// Get resolves an optional pointer: 0 means absent and yields "".
func (t *StringTable) Get(ptr uint32) (string, error) {
	if ptr == 0 {
		return "", nil
	}
	return t.At(ptr)
}

// Len returns the number of pooled strings.
func (t *StringTable) Len() int {
	return len(t.strings)
}

// ---------------------------------------------------------------------------
// FileTable
// ---------------------------------------------------------------------------

// FileTable is the source file pool of one container. Every pointer to the
// same entry resolves to the same *ast.SourceFile.
type FileTable struct {
	files []*ast.SourceFile
}

// NewFileTable builds a table over the given files. Entry 0 of the slice
// becomes pointer 1.
func NewFileTable(files []*ast.SourceFile) *FileTable {
	return &FileTable{files: files}
}

// FileTableFromRecords converts wire file records into a table.
func FileTableFromRecords(recs []*wire.SourceFileRecord) *FileTable {
	files := make([]*ast.SourceFile, len(recs))
	for i, rec := range recs {
		kind := ast.FileKindSource
		if rec.Kind == wire.FileRecordExtern {
			kind = ast.FileKindExtern
		}
		files[i] = &ast.SourceFile{Name: rec.Filename, Kind: kind}
	}
	return &FileTable{files: files}
}

// At returns the file at a 1-based pointer. Pointer 0 and out-of-range
// pointers are errors.
func (t *FileTable) At(ptr uint32) (*ast.SourceFile, error) {
	if ptr == 0 || int(ptr) > len(t.files) {
		return nil, fmt.Errorf("%w: %d of %d", ErrInvalidFileIndex, ptr, len(t.files))
	}
	return t.files[ptr-1], nil
}

// Len returns the number of pooled files.
func (t *FileTable) Len() int {
	return len(t.files)
}

// ---------------------------------------------------------------------------
// ColorTable
// ---------------------------------------------------------------------------

// ColorTable is a trivial color resolver over an ordered slice. The decoder
// only depends on its ResolveColor method, so callers with richer type pools
// can supply their own resolver instead.
type ColorTable struct {
	colors []*ast.Color
}

// NewColorTable builds a table over the given colors. Entry 0 of the slice
// becomes pointer 1.
func NewColorTable(colors []*ast.Color) *ColorTable {
	return &ColorTable{colors: colors}
}

// ResolveColor returns the color at a 1-based pointer.
func (t *ColorTable) ResolveColor(index uint32) (*ast.Color, error) {
	if index == 0 || int(index) > len(t.colors) {
		return nil, fmt.Errorf("%w: %d of %d", ErrInvalidColorIndex, index, len(t.colors))
	}
	return t.colors[index-1], nil
}

// Len returns the number of pooled colors.
func (t *ColorTable) Len() int {
	return len(t.colors)
}

// FromContainer builds the string and file tables of a parsed container.
func FromContainer(c *wire.TypedAST) (*StringTable, *FileTable) {
	return NewStringTable(c.StringPool), FileTableFromRecords(c.FilePool)
}
