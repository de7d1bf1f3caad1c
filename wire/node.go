package wire

import (
	"errors"
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// Field numbers of the AstNode message. These are frozen; together with the
// kind and property enumerations they define the exchange format.
const (
	FieldNodeKind           protowire.Number = 1
	FieldNodeChild          protowire.Number = 2
	FieldNodeStringValue    protowire.Number = 3
	FieldNodeDoubleValue    protowire.Number = 4
	FieldNodeTemplateString protowire.Number = 5
	FieldNodeRelativeLine   protowire.Number = 6
	FieldNodeRelativeColumn protowire.Number = 7
	FieldNodeJSDoc          protowire.Number = 8
	FieldNodeOriginalName   protowire.Number = 9
	FieldNodeType           protowire.Number = 10
	FieldNodeBoolProps      protowire.Number = 11
	FieldNodeSourceFile     protowire.Number = 12
)

// Field numbers of the TemplateStringValue message.
const (
	FieldTemplateCooked protowire.Number = 1
	FieldTemplateRaw    protowire.Number = 2
)

// ---------------------------------------------------------------------------
// Wire Error Types
// ---------------------------------------------------------------------------

var (
	ErrTruncated   = errors.New("truncated wire data")
	ErrBadWireType = errors.New("unexpected wire type")
	ErrTooDeep     = errors.New("node nesting exceeds depth limit")
)

// ---------------------------------------------------------------------------
// AstNode: one serialized node record
// ---------------------------------------------------------------------------

// AstNode is the decoded form of one node record from a script stream,
// still in wire vocabulary: pool pointers instead of strings, position
// deltas instead of positions, a raw property mask. Byte fields are views
// into the parsed buffer and must be treated as read-only.
//
// All pool pointers are 1-based; 0 means absent (for SourceFile, inherit).
type AstNode struct {
	Kind                NodeKind
	Children            []*AstNode
	StringValuePointer  uint32
	DoubleValue         float64
	TemplateStringValue *TemplateStringValue
	RelativeLine        int32
	RelativeColumn      int32
	JSDoc               []byte
	OriginalNamePointer uint32
	Type                uint32
	BooleanProperties   uint64
	SourceFile          uint32
}

// TemplateStringValue carries the two spellings of a template literal
// string piece. A cooked pointer of 0 means the cooked string is absent,
// which happens for illegal escape sequences in tagged templates.
type TemplateStringValue struct {
	CookedStringPointer uint32
	RawStringPointer    uint32
}

// ---------------------------------------------------------------------------
// Parsing
// ---------------------------------------------------------------------------

// fieldReader consumes protobuf wire fields from a buffer.
type fieldReader struct {
	buf []byte
}

func (r *fieldReader) varint(typ protowire.Type, field string) (uint64, error) {
	if typ != protowire.VarintType {
		return 0, fmt.Errorf("%w: %s", ErrBadWireType, field)
	}
	v, n := protowire.ConsumeVarint(r.buf)
	if n < 0 {
		return 0, fmt.Errorf("%w: %s", ErrTruncated, field)
	}
	r.buf = r.buf[n:]
	return v, nil
}

func (r *fieldReader) sint32(typ protowire.Type, field string) (int32, error) {
	v, err := r.varint(typ, field)
	if err != nil {
		return 0, err
	}
	return int32(protowire.DecodeZigZag(v)), nil
}

func (r *fieldReader) fixed64(typ protowire.Type, field string) (uint64, error) {
	if typ != protowire.Fixed64Type {
		return 0, fmt.Errorf("%w: %s", ErrBadWireType, field)
	}
	v, n := protowire.ConsumeFixed64(r.buf)
	if n < 0 {
		return 0, fmt.Errorf("%w: %s", ErrTruncated, field)
	}
	r.buf = r.buf[n:]
	return v, nil
}

func (r *fieldReader) bytes(typ protowire.Type, field string) ([]byte, error) {
	if typ != protowire.BytesType {
		return nil, fmt.Errorf("%w: %s", ErrBadWireType, field)
	}
	v, n := protowire.ConsumeBytes(r.buf)
	if n < 0 {
		return nil, fmt.Errorf("%w: %s", ErrTruncated, field)
	}
	r.buf = r.buf[n:]
	return v, nil
}

// skip consumes an unknown field, whatever its wire type.
func (r *fieldReader) skip(num protowire.Number, typ protowire.Type) error {
	n := protowire.ConsumeFieldValue(num, typ, r.buf)
	if n < 0 {
		return fmt.Errorf("%w: field %d", ErrTruncated, int(num))
	}
	r.buf = r.buf[n:]
	return nil
}

// ParseNode parses one serialized node record, recursing into its children.
// Nesting depth is unbounded; the real limit is stack space.
func ParseNode(data []byte) (*AstNode, error) {
	return parseNode(data, 0, 0)
}

// ParseNodeLimit is ParseNode with an explicit nesting limit. A limit of 0
// means unlimited.
func ParseNodeLimit(data []byte, maxDepth int) (*AstNode, error) {
	return parseNode(data, 0, maxDepth)
}

func parseNode(data []byte, depth, maxDepth int) (*AstNode, error) {
	if maxDepth > 0 && depth >= maxDepth {
		return nil, fmt.Errorf("%w: %d levels", ErrTooDeep, depth)
	}

	n := &AstNode{}
	r := &fieldReader{buf: data}
	for len(r.buf) > 0 {
		num, typ, tagLen := protowire.ConsumeTag(r.buf)
		if tagLen < 0 {
			return nil, fmt.Errorf("%w: field tag", ErrTruncated)
		}
		r.buf = r.buf[tagLen:]

		switch num {
		case FieldNodeKind:
			v, err := r.varint(typ, "kind")
			if err != nil {
				return nil, err
			}
			n.Kind = NodeKind(v)
		case FieldNodeChild:
			raw, err := r.bytes(typ, "child")
			if err != nil {
				return nil, err
			}
			child, err := parseNode(raw, depth+1, maxDepth)
			if err != nil {
				return nil, err
			}
			n.Children = append(n.Children, child)
		case FieldNodeStringValue:
			v, err := r.varint(typ, "string_value_pointer")
			if err != nil {
				return nil, err
			}
			n.StringValuePointer = uint32(v)
		case FieldNodeDoubleValue:
			v, err := r.fixed64(typ, "double_value")
			if err != nil {
				return nil, err
			}
			n.DoubleValue = math.Float64frombits(v)
		case FieldNodeTemplateString:
			raw, err := r.bytes(typ, "template_string_value")
			if err != nil {
				return nil, err
			}
			tsv, err := parseTemplateString(raw)
			if err != nil {
				return nil, err
			}
			n.TemplateStringValue = tsv
		case FieldNodeRelativeLine:
			v, err := r.sint32(typ, "relative_line")
			if err != nil {
				return nil, err
			}
			n.RelativeLine = v
		case FieldNodeRelativeColumn:
			v, err := r.sint32(typ, "relative_column")
			if err != nil {
				return nil, err
			}
			n.RelativeColumn = v
		case FieldNodeJSDoc:
			raw, err := r.bytes(typ, "jsdoc")
			if err != nil {
				return nil, err
			}
			n.JSDoc = raw
		case FieldNodeOriginalName:
			v, err := r.varint(typ, "original_name_pointer")
			if err != nil {
				return nil, err
			}
			n.OriginalNamePointer = uint32(v)
		case FieldNodeType:
			v, err := r.varint(typ, "type")
			if err != nil {
				return nil, err
			}
			n.Type = uint32(v)
		case FieldNodeBoolProps:
			v, err := r.varint(typ, "boolean_properties")
			if err != nil {
				return nil, err
			}
			n.BooleanProperties = v
		case FieldNodeSourceFile:
			v, err := r.varint(typ, "source_file")
			if err != nil {
				return nil, err
			}
			n.SourceFile = uint32(v)
		default:
			if err := r.skip(num, typ); err != nil {
				return nil, err
			}
		}
	}
	return n, nil
}

func parseTemplateString(data []byte) (*TemplateStringValue, error) {
	tsv := &TemplateStringValue{}
	r := &fieldReader{buf: data}
	for len(r.buf) > 0 {
		num, typ, tagLen := protowire.ConsumeTag(r.buf)
		if tagLen < 0 {
			return nil, fmt.Errorf("%w: field tag", ErrTruncated)
		}
		r.buf = r.buf[tagLen:]

		switch num {
		case FieldTemplateCooked:
			v, err := r.varint(typ, "cooked_string_pointer")
			if err != nil {
				return nil, err
			}
			tsv.CookedStringPointer = uint32(v)
		case FieldTemplateRaw:
			v, err := r.varint(typ, "raw_string_pointer")
			if err != nil {
				return nil, err
			}
			tsv.RawStringPointer = uint32(v)
		default:
			if err := r.skip(num, typ); err != nil {
				return nil, err
			}
		}
	}
	return tsv, nil
}
