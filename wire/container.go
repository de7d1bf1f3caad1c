package wire

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// Field numbers of the TypedAST container message.
const (
	FieldContainerStringPool protowire.Number = 1
	FieldContainerFilePool   protowire.Number = 2
	FieldContainerScript     protowire.Number = 3
)

// Field numbers of the LazyScript message.
const (
	FieldScriptBytes            protowire.Number = 1
	FieldScriptSourceFile       protowire.Number = 2
	FieldScriptSourceMappingURL protowire.Number = 3
)

// Field numbers of the SourceFileRecord message.
const (
	FieldFileFilename protowire.Number = 1
	FieldFileKind     protowire.Number = 2
)

// Values of the SourceFileRecord kind field.
const (
	FileRecordExtern uint32 = 0
	FileRecordSource uint32 = 1
)

// ---------------------------------------------------------------------------
// Container records
// ---------------------------------------------------------------------------

// TypedAST is the top-level container a .typedast file holds:
//
//	field 1: string_pool   repeated bytes            interned strings, in pool order
//	field 2: file_pool     repeated SourceFileRecord source files, in pool order
//	field 3: script        repeated LazyScript       one per serialized script
//
// Pool pointers inside scripts are 1-based indexes into these pools, so the
// first pool entry is pointer 1.
type TypedAST struct {
	StringPool []string
	FilePool   []*SourceFileRecord
	Scripts    []*LazyScript
}

// LazyScript is one script entry of the container. The node stream stays as
// raw bytes so scripts can be decoded on demand and in parallel.
type LazyScript struct {
	// Script holds one serialized AstNode tree.
	Script []byte
	// SourceFile is the 1-based file pool index of the script's file.
	SourceFile uint32
	// SourceMappingURL is carried through untouched; it is not interpreted
	// during decoding.
	SourceMappingURL string
}

// SourceFileRecord describes one file pool entry. Kind is FileRecordExtern
// or FileRecordSource.
type SourceFileRecord struct {
	Filename string
	Kind     uint32
}

// ---------------------------------------------------------------------------
// Parsing
// ---------------------------------------------------------------------------

// ParseTypedAST parses a container. Script node streams are not parsed here;
// each LazyScript keeps its raw bytes.
func ParseTypedAST(data []byte) (*TypedAST, error) {
	c := &TypedAST{}
	r := &fieldReader{buf: data}
	for len(r.buf) > 0 {
		num, typ, tagLen := protowire.ConsumeTag(r.buf)
		if tagLen < 0 {
			return nil, fmt.Errorf("%w: field tag", ErrTruncated)
		}
		r.buf = r.buf[tagLen:]

		switch num {
		case FieldContainerStringPool:
			raw, err := r.bytes(typ, "string_pool")
			if err != nil {
				return nil, err
			}
			c.StringPool = append(c.StringPool, string(raw))
		case FieldContainerFilePool:
			raw, err := r.bytes(typ, "file_pool")
			if err != nil {
				return nil, err
			}
			rec, err := ParseSourceFileRecord(raw)
			if err != nil {
				return nil, err
			}
			c.FilePool = append(c.FilePool, rec)
		case FieldContainerScript:
			raw, err := r.bytes(typ, "script")
			if err != nil {
				return nil, err
			}
			script, err := ParseLazyScript(raw)
			if err != nil {
				return nil, err
			}
			c.Scripts = append(c.Scripts, script)
		default:
			if err := r.skip(num, typ); err != nil {
				return nil, err
			}
		}
	}
	return c, nil
}

// ParseLazyScript parses one script entry.
func ParseLazyScript(data []byte) (*LazyScript, error) {
	s := &LazyScript{}
	r := &fieldReader{buf: data}
	for len(r.buf) > 0 {
		num, typ, tagLen := protowire.ConsumeTag(r.buf)
		if tagLen < 0 {
			return nil, fmt.Errorf("%w: field tag", ErrTruncated)
		}
		r.buf = r.buf[tagLen:]

		switch num {
		case FieldScriptBytes:
			raw, err := r.bytes(typ, "script bytes")
			if err != nil {
				return nil, err
			}
			s.Script = raw
		case FieldScriptSourceFile:
			v, err := r.varint(typ, "script source_file")
			if err != nil {
				return nil, err
			}
			s.SourceFile = uint32(v)
		case FieldScriptSourceMappingURL:
			raw, err := r.bytes(typ, "source_mapping_url")
			if err != nil {
				return nil, err
			}
			s.SourceMappingURL = string(raw)
		default:
			if err := r.skip(num, typ); err != nil {
				return nil, err
			}
		}
	}
	return s, nil
}

// ParseSourceFileRecord parses one file pool entry.
func ParseSourceFileRecord(data []byte) (*SourceFileRecord, error) {
	rec := &SourceFileRecord{}
	r := &fieldReader{buf: data}
	for len(r.buf) > 0 {
		num, typ, tagLen := protowire.ConsumeTag(r.buf)
		if tagLen < 0 {
			return nil, fmt.Errorf("%w: field tag", ErrTruncated)
		}
		r.buf = r.buf[tagLen:]

		switch num {
		case FieldFileFilename:
			raw, err := r.bytes(typ, "filename")
			if err != nil {
				return nil, err
			}
			rec.Filename = string(raw)
		case FieldFileKind:
			v, err := r.varint(typ, "file kind")
			if err != nil {
				return nil, err
			}
			rec.Kind = uint32(v)
		default:
			if err := r.skip(num, typ); err != nil {
				return nil, err
			}
		}
	}
	return rec, nil
}

// ---------------------------------------------------------------------------
// Marshaling
// ---------------------------------------------------------------------------

// AppendTypedAST appends the wire encoding of c to dst.
func AppendTypedAST(dst []byte, c *TypedAST) []byte {
	for _, s := range c.StringPool {
		dst = protowire.AppendTag(dst, FieldContainerStringPool, protowire.BytesType)
		dst = protowire.AppendBytes(dst, []byte(s))
	}
	for _, rec := range c.FilePool {
		dst = protowire.AppendTag(dst, FieldContainerFilePool, protowire.BytesType)
		dst = protowire.AppendBytes(dst, MarshalSourceFileRecord(rec))
	}
	for _, script := range c.Scripts {
		dst = protowire.AppendTag(dst, FieldContainerScript, protowire.BytesType)
		dst = protowire.AppendBytes(dst, MarshalLazyScript(script))
	}
	return dst
}

// MarshalTypedAST returns the wire encoding of c.
func MarshalTypedAST(c *TypedAST) []byte {
	return AppendTypedAST(nil, c)
}

// AppendLazyScript appends the wire encoding of s to dst.
func AppendLazyScript(dst []byte, s *LazyScript) []byte {
	if len(s.Script) > 0 {
		dst = protowire.AppendTag(dst, FieldScriptBytes, protowire.BytesType)
		dst = protowire.AppendBytes(dst, s.Script)
	}
	if s.SourceFile != 0 {
		dst = protowire.AppendTag(dst, FieldScriptSourceFile, protowire.VarintType)
		dst = protowire.AppendVarint(dst, uint64(s.SourceFile))
	}
	if s.SourceMappingURL != "" {
		dst = protowire.AppendTag(dst, FieldScriptSourceMappingURL, protowire.BytesType)
		dst = protowire.AppendBytes(dst, []byte(s.SourceMappingURL))
	}
	return dst
}

// MarshalLazyScript returns the wire encoding of s.
func MarshalLazyScript(s *LazyScript) []byte {
	return AppendLazyScript(nil, s)
}

// AppendSourceFileRecord appends the wire encoding of rec to dst.
func AppendSourceFileRecord(dst []byte, rec *SourceFileRecord) []byte {
	if rec.Filename != "" {
		dst = protowire.AppendTag(dst, FieldFileFilename, protowire.BytesType)
		dst = protowire.AppendBytes(dst, []byte(rec.Filename))
	}
	if rec.Kind != 0 {
		dst = protowire.AppendTag(dst, FieldFileKind, protowire.VarintType)
		dst = protowire.AppendVarint(dst, uint64(rec.Kind))
	}
	return dst
}

// MarshalSourceFileRecord returns the wire encoding of rec.
func MarshalSourceFileRecord(rec *SourceFileRecord) []byte {
	return AppendSourceFileRecord(nil, rec)
}
