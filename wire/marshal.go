package wire

import (
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// The Append functions are the encoding half of the codec. They exist for
// producers and for round-trip tests; zero-valued fields are not emitted,
// matching what ParseNode reads back.

// AppendNode appends the wire encoding of n to dst and returns the result.
func AppendNode(dst []byte, n *AstNode) []byte {
	if n.Kind != KindUnspecified {
		dst = protowire.AppendTag(dst, FieldNodeKind, protowire.VarintType)
		dst = protowire.AppendVarint(dst, uint64(n.Kind))
	}
	for _, child := range n.Children {
		dst = protowire.AppendTag(dst, FieldNodeChild, protowire.BytesType)
		dst = protowire.AppendBytes(dst, MarshalNode(child))
	}
	if n.StringValuePointer != 0 {
		dst = protowire.AppendTag(dst, FieldNodeStringValue, protowire.VarintType)
		dst = protowire.AppendVarint(dst, uint64(n.StringValuePointer))
	}
	if math.Float64bits(n.DoubleValue) != 0 {
		dst = protowire.AppendTag(dst, FieldNodeDoubleValue, protowire.Fixed64Type)
		dst = protowire.AppendFixed64(dst, math.Float64bits(n.DoubleValue))
	}
	if n.TemplateStringValue != nil {
		dst = protowire.AppendTag(dst, FieldNodeTemplateString, protowire.BytesType)
		dst = protowire.AppendBytes(dst, MarshalTemplateString(n.TemplateStringValue))
	}
	if n.RelativeLine != 0 {
		dst = protowire.AppendTag(dst, FieldNodeRelativeLine, protowire.VarintType)
		dst = protowire.AppendVarint(dst, protowire.EncodeZigZag(int64(n.RelativeLine)))
	}
	if n.RelativeColumn != 0 {
		dst = protowire.AppendTag(dst, FieldNodeRelativeColumn, protowire.VarintType)
		dst = protowire.AppendVarint(dst, protowire.EncodeZigZag(int64(n.RelativeColumn)))
	}
	if len(n.JSDoc) > 0 {
		dst = protowire.AppendTag(dst, FieldNodeJSDoc, protowire.BytesType)
		dst = protowire.AppendBytes(dst, n.JSDoc)
	}
	if n.OriginalNamePointer != 0 {
		dst = protowire.AppendTag(dst, FieldNodeOriginalName, protowire.VarintType)
		dst = protowire.AppendVarint(dst, uint64(n.OriginalNamePointer))
	}
	if n.Type != 0 {
		dst = protowire.AppendTag(dst, FieldNodeType, protowire.VarintType)
		dst = protowire.AppendVarint(dst, uint64(n.Type))
	}
	if n.BooleanProperties != 0 {
		dst = protowire.AppendTag(dst, FieldNodeBoolProps, protowire.VarintType)
		dst = protowire.AppendVarint(dst, n.BooleanProperties)
	}
	if n.SourceFile != 0 {
		dst = protowire.AppendTag(dst, FieldNodeSourceFile, protowire.VarintType)
		dst = protowire.AppendVarint(dst, uint64(n.SourceFile))
	}
	return dst
}

// MarshalNode returns the wire encoding of n.
func MarshalNode(n *AstNode) []byte {
	return AppendNode(nil, n)
}

// AppendTemplateString appends the wire encoding of t to dst.
func AppendTemplateString(dst []byte, t *TemplateStringValue) []byte {
	if t.CookedStringPointer != 0 {
		dst = protowire.AppendTag(dst, FieldTemplateCooked, protowire.VarintType)
		dst = protowire.AppendVarint(dst, uint64(t.CookedStringPointer))
	}
	if t.RawStringPointer != 0 {
		dst = protowire.AppendTag(dst, FieldTemplateRaw, protowire.VarintType)
		dst = protowire.AppendVarint(dst, uint64(t.RawStringPointer))
	}
	return dst
}

// MarshalTemplateString returns the wire encoding of t.
func MarshalTemplateString(t *TemplateStringValue) []byte {
	return AppendTemplateString(nil, t)
}
