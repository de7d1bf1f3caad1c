// Package ast defines the in-memory JavaScript tree the script decoder
// produces: node tokens, the Node type, source file and type descriptors,
// and the per-script language feature summary.
package ast

import (
	"math/big"

	"github.com/jscomp/typedast/docinfo"
	"github.com/jscomp/typedast/wire"
)

// FileKind distinguishes extern definition files from ordinary sources.
type FileKind uint8

const (
	FileKindExtern FileKind = iota
	FileKindSource
)

// String returns "extern" or "source".
func (k FileKind) String() string {
	if k == FileKindExtern {
		return "extern"
	}
	return "source"
}

// SourceFile identifies one input file. Nodes from the same file share one
// *SourceFile, so identity comparisons are pointer comparisons within a
// decode run.
type SourceFile struct {
	Name string
	Kind FileKind
}

// Color is the resolved type of a node. It is opaque to the decoder; a
// color resolver supplies them from whatever type pool the caller carries.
type Color struct {
	ID        string
	DebugName string
}

// Output-only property bits. The node builder sets these to carry the
// distinctions that separate wire kinds sharing one token (quoted keys,
// postfix increment/decrement). They sit far above the serialized property
// bits and never appear on the wire.
const (
	PropQuoted          wire.NodeProperty = 62
	PropIncrDecrPostfix wire.NodeProperty = 63
)

// Node is one node of a decoded tree.
//
// Children holds ordinary subtrees in source order; a node owns its children
// exclusively. Shadow is separate from Children on purpose: a reconstructed
// shadow program is a standalone tree hanging off its host node, and walking
// Children never enters it.
type Node struct {
	Token    Token
	Children []*Node

	// Position and provenance. Line and Column are absolute; the decoder
	// resolves them from the stream's deltas.
	Line   int
	Column int
	File   *SourceFile

	Color        *Color // nil when untyped
	Props        uint64 // decoded property mask, plus output-only bits
	Doc          *docinfo.Info
	OriginalName string // pre-rename name, "" when none

	// Payload fields; which one is meaningful depends on Token.
	Str       string   // identifier, string literal, key and label text
	Num       float64  // number literal value
	BigInt    *big.Int // bigint literal value
	Cooked    string   // template piece, cooked spelling
	Raw       string   // template piece, raw spelling
	HasCooked bool     // false when the cooked spelling is absent

	// Shadow is the reconstructed host-opaque program of this node, if any.
	Shadow *Node

	// Features is the accumulated language feature summary. It is set on
	// script roots only.
	Features FeatureSet
}

// HasProp reports whether the given property bit is set.
func (n *Node) HasProp(p wire.NodeProperty) bool {
	return n.Props&p.Mask() != 0
}

// IsFunction reports whether this node is a function literal.
func (n *Node) IsFunction() bool {
	return n.Token == TokenFunction
}

// IsArrowFunction reports whether this node is an arrow function.
func (n *Node) IsArrowFunction() bool {
	return n.IsFunction() && n.HasProp(wire.PropArrowFn)
}

// IsAsyncFunction reports whether this node is an async function.
func (n *Node) IsAsyncFunction() bool {
	return n.IsFunction() && n.HasProp(wire.PropAsyncFn)
}

// IsGeneratorFunction reports whether this node is a generator function.
func (n *Node) IsGeneratorFunction() bool {
	return n.IsFunction() && n.HasProp(wire.PropGeneratorFn)
}

// IsAsyncGeneratorFunction reports whether this node is an async generator.
func (n *Node) IsAsyncGeneratorFunction() bool {
	return n.IsAsyncFunction() && n.IsGeneratorFunction()
}

// IsShorthandProperty reports whether this key was written in shorthand
// object-literal form.
func (n *Node) IsShorthandProperty() bool {
	return n.HasProp(wire.PropIsShorthandProperty)
}

// IsQuotedKey reports whether this key was written quoted.
func (n *Node) IsQuotedKey() bool {
	return n.HasProp(PropQuoted)
}

// IsPostfix reports whether an increment or decrement is postfix.
func (n *Node) IsPostfix() bool {
	return n.HasProp(PropIncrDecrPostfix)
}

// HasShadow reports whether this node hosts a shadow program.
func (n *Node) HasShadow() bool {
	return n.Shadow != nil
}
