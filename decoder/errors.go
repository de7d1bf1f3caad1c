package decoder

import (
	"errors"
	"fmt"
)

// ---------------------------------------------------------------------------
// Decode Error Types
// ---------------------------------------------------------------------------

var (
	// ErrUnknownKind reports a node record whose kind is the zero sentinel
	// or outside the enumeration.
	ErrUnknownKind = errors.New("unknown node kind")

	// ErrBadBigInt reports a bigint literal whose pooled text is not a
	// base-10 integer.
	ErrBadBigInt = errors.New("malformed bigint literal")

	// ErrMissingShadow reports a node flagged as hosting a shadow program
	// but carrying no child to rebuild it from.
	ErrMissingShadow = errors.New("shadow host has no children")

	// ErrNoScriptFile reports a script record without a source file pointer.
	ErrNoScriptFile = errors.New("script has no source file")
)

// MalformedScriptError reports that a script could not be decoded. File
// names the script's source file when it is known.
type MalformedScriptError struct {
	File string
	Err  error
}

func (e *MalformedScriptError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("malformed script: %v", e.Err)
	}
	return fmt.Sprintf("malformed script %q: %v", e.File, e.Err)
}

func (e *MalformedScriptError) Unwrap() error {
	return e.Err
}
