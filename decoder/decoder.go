// Package decoder rebuilds ast trees from serialized script streams. Each
// ScriptDecoder owns one script of a container and leans on the shared
// pools for strings and files; types and doc blobs are resolved through
// pluggable hooks so callers choose how much of the stream to interpret.
package decoder

import (
	"github.com/jscomp/typedast/ast"
	"github.com/jscomp/typedast/docinfo"
	"github.com/jscomp/typedast/pool"
	"github.com/jscomp/typedast/wire"
)

// ColorResolver supplies resolved types for nodes carrying a type pointer.
// Pointers are 1-based; the resolver is never asked about pointer 0.
type ColorResolver interface {
	ResolveColor(index uint32) (*ast.Color, error)
}

// DocDecoder interprets the documentation blobs attached to nodes.
type DocDecoder interface {
	DecodeDoc(blob []byte) (*docinfo.Info, error)
}

// Option configures a ScriptDecoder.
type Option func(*options)

type options struct {
	colors   ColorResolver
	docs     DocDecoder
	maxDepth int
}

// WithColorResolver attaches type information to decoded nodes. Without a
// resolver, type pointers are dropped and the color-from-cast property bit
// is filtered out of every node.
func WithColorResolver(r ColorResolver) Option {
	return func(o *options) { o.colors = r }
}

// WithDocDecoder decodes documentation blobs onto nodes. Without one, doc
// blobs are dropped.
func WithDocDecoder(d DocDecoder) Option {
	return func(o *options) { o.docs = d }
}

// WithMaxDepth bounds the nesting depth of the serialized tree. Zero means
// unlimited, where the real limit is stack space.
func WithMaxDepth(n int) Option {
	return func(o *options) { o.maxDepth = n }
}

// ScriptDecoder decodes one script of a container into a tree. It is safe
// for concurrent use; every Decode call carries its own cursor state.
type ScriptDecoder struct {
	script  []byte
	file    *ast.SourceFile
	mapping string
	strings *pool.StringTable
	files   *pool.FileTable
	opts    options
}

// NewScriptDecoder prepares a decoder for one script entry. The pools must
// be the ones from the script's own container.
func NewScriptDecoder(script *wire.LazyScript, strings *pool.StringTable, files *pool.FileTable, opts ...Option) (*ScriptDecoder, error) {
	if script.SourceFile == 0 {
		return nil, &MalformedScriptError{Err: ErrNoScriptFile}
	}
	file, err := files.At(script.SourceFile)
	if err != nil {
		return nil, &MalformedScriptError{Err: err}
	}
	d := &ScriptDecoder{
		script:  script.Script,
		file:    file,
		mapping: script.SourceMappingURL,
		strings: strings,
		files:   files,
	}
	for _, opt := range opts {
		opt(&d.opts)
	}
	return d, nil
}

// SourceFile returns the file this script was parsed from.
func (d *ScriptDecoder) SourceFile() *ast.SourceFile {
	return d.file
}

// SourceMappingURL returns the script's source map URL, or "" when none was
// recorded. The URL is carried through the format uninterpreted.
func (d *ScriptDecoder) SourceMappingURL() string {
	return d.mapping
}

// Decode rebuilds the script tree. The returned root is a script node whose
// Features field summarizes the language features of everything outside
// shadow programs. Failures wrap the cause in a MalformedScriptError naming
// the script's file.
func (d *ScriptDecoder) Decode() (*ast.Node, error) {
	r := &runner{d: d}
	root, err := r.run()
	if err != nil {
		return nil, &MalformedScriptError{File: d.file.Name, Err: err}
	}
	return root, nil
}

// filterCastProp drops the color-from-cast bit when no colors are being
// resolved; the property makes no sense on nodes without types.
func (d *ScriptDecoder) filterCastProp(props uint64) uint64 {
	if d.opts.colors != nil {
		return props
	}
	return props &^ wire.PropColorFromCast.Mask()
}

// runner is the mutable state of one Decode call: the feature summary and
// the position cursor the stream's deltas accumulate into. The cursor is
// global across the whole stream in visit order, shadow subtrees included.
type runner struct {
	d              *ScriptDecoder
	features       ast.FeatureSet
	previousLine   int
	previousColumn int
}

func (r *runner) run() (*ast.Node, error) {
	wireRoot, err := wire.ParseNodeLimit(r.d.script, r.d.opts.maxDepth)
	if err != nil {
		return nil, err
	}
	root, err := r.visit(wireRoot, contextNone, r.d.file)
	if err != nil {
		return nil, err
	}
	root.Features = r.features
	return root, nil
}

// visit decodes one record and its subtree. file is the source file the
// subtree inherits unless a record overrides it; context models the direct
// parent for feature classification and is contextNothing inside shadows.
func (r *runner) visit(wn *wire.AstNode, context featureContext, file *ast.SourceFile) (*ast.Node, error) {
	if wn.SourceFile != 0 {
		f, err := r.d.files.At(wn.SourceFile)
		if err != nil {
			return nil, err
		}
		file = f
	}

	currentLine := r.previousLine + int(wn.RelativeLine)
	currentColumn := r.previousColumn + int(wn.RelativeColumn)

	n, err := r.d.buildNode(wn)
	if err != nil {
		return nil, err
	}
	n.File = file
	if wn.Type != 0 && r.d.opts.colors != nil {
		color, err := r.d.opts.colors.ResolveColor(wn.Type)
		if err != nil {
			return nil, err
		}
		n.Color = color
	}
	props := wn.BooleanProperties
	if props != 0 {
		n.Props |= r.d.filterCastProp(props)
	}
	if len(wn.JSDoc) > 0 && r.d.opts.docs != nil {
		doc, err := r.d.opts.docs.DecodeDoc(wn.JSDoc)
		if err != nil {
			return nil, err
		}
		n.Doc = doc
	}
	if wn.OriginalNamePointer != 0 {
		name, err := r.d.strings.At(wn.OriginalNamePointer)
		if err != nil {
			return nil, err
		}
		n.OriginalName = name
	}
	n.Line = currentLine
	n.Column = currentColumn
	r.previousLine = currentLine
	r.previousColumn = currentColumn

	if context != contextNothing {
		r.recordFeatures(context, n)
	}

	newContext := contextFor(context, n)
	if props&wire.PropClosureUnawareShadow.Mask() != 0 {
		// Shadow programs are rebuilt from child 0 with feature recording
		// off: they are never transpiled, so their features must not leak
		// into the script summary.
		if len(wn.Children) == 0 {
			return nil, ErrMissingShadow
		}
		shadowed, err := r.visit(wn.Children[0], contextNothing, file)
		if err != nil {
			return nil, err
		}
		// Only the source part of the shadow is serialized. Rebuild the
		// scaffolding that makes it a standalone tree.
		script := &ast.Node{
			Token: ast.TokenScript,
			File:  file,
			Children: []*ast.Node{
				{Token: ast.TokenExprResult, File: file, Children: []*ast.Node{shadowed}},
			},
		}
		n.Shadow = &ast.Node{Token: ast.TokenRoot, Children: []*ast.Node{script}}
		return n, nil
	}

	for _, child := range wn.Children {
		decoded, err := r.visit(child, newContext, file)
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, decoded)
	}
	return n, nil
}
