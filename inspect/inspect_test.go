package inspect

import (
	"strings"
	"testing"

	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/jscomp/typedast/wire"
)

func TestFileDescriptor(t *testing.T) {
	fd, err := FileDescriptor()
	if err != nil {
		t.Fatalf("FileDescriptor() error: %v", err)
	}

	node := fd.FindMessage("typedast.wire.AstNode")
	if node == nil {
		t.Fatal("AstNode message missing")
	}
	child := node.FindFieldByName("child")
	if child == nil {
		t.Fatal("child field missing")
	}
	if !child.IsRepeated() {
		t.Error("child field is not repeated")
	}
	if got := child.GetMessageType().GetFullyQualifiedName(); got != "typedast.wire.AstNode" {
		t.Errorf("child message type = %s, want typedast.wire.AstNode", got)
	}

	line := node.FindFieldByName("relative_line")
	if line == nil {
		t.Fatal("relative_line field missing")
	}
	if got := line.GetType(); got != descriptorpb.FieldDescriptorProto_TYPE_SINT32 {
		t.Errorf("relative_line type = %v, want TYPE_SINT32", got)
	}

	kind := node.FindFieldByName("kind")
	if kind == nil {
		t.Fatal("kind field missing")
	}
	if got, want := len(kind.GetEnumType().GetValues()), wire.KindCount()+1; got != want {
		t.Errorf("NodeKind enum has %d values, want %d", got, want)
	}
	ev := kind.GetEnumType().FindValueByNumber(int32(wire.KindConstDeclaration))
	if ev == nil || ev.GetName() != "CONST_DECLARATION" {
		t.Errorf("enum value %d = %v, want CONST_DECLARATION", wire.KindConstDeclaration, ev)
	}

	for _, name := range []string{"TypedAST", "LazyScript", "SourceFileRecord", "TemplateStringValue"} {
		if fd.FindMessage("typedast.wire."+name) == nil {
			t.Errorf("%s message missing", name)
		}
	}
}

func TestScriptRendering(t *testing.T) {
	stream := wire.MarshalNode(&wire.AstNode{
		Kind:         wire.KindSourceFile,
		RelativeLine: 1,
		Children: []*wire.AstNode{
			{
				Kind: wire.KindConstDeclaration,
				Children: []*wire.AstNode{
					{Kind: wire.KindIdentifier, StringValuePointer: 1, RelativeColumn: 6},
				},
			},
		},
	})

	got, err := Script(stream)
	if err != nil {
		t.Fatalf("Script() error: %v", err)
	}
	want := strings.Join([]string{
		"kind: SOURCE_FILE",
		"child {",
		"  kind: CONST_DECLARATION",
		"  child {",
		"    kind: IDENTIFIER",
		"    string_value_pointer: 1",
		"    relative_column: 6",
		"  }",
		"}",
		"relative_line: 1",
	}, "\n") + "\n"
	if got != want {
		t.Errorf("Script() =\n%s\nwant:\n%s", got, want)
	}
}

func TestScriptZigZagPositions(t *testing.T) {
	stream := wire.MarshalNode(&wire.AstNode{Kind: wire.KindEmpty, RelativeLine: 3, RelativeColumn: -6})
	got, err := Script(stream)
	if err != nil {
		t.Fatalf("Script() error: %v", err)
	}
	want := "kind: EMPTY\nrelative_line: 3\nrelative_column: -6\n"
	if got != want {
		t.Errorf("Script() = %q, want %q", got, want)
	}
}

func TestScriptValueFields(t *testing.T) {
	tests := []struct {
		name string
		node *wire.AstNode
		want string
	}{
		{
			name: "double",
			node: &wire.AstNode{Kind: wire.KindNumberLiteral, DoubleValue: 2.5},
			want: "kind: NUMBER_LITERAL\ndouble_value: 2.5\n",
		},
		{
			name: "template string",
			node: &wire.AstNode{
				Kind:                wire.KindTemplateLitString,
				TemplateStringValue: &wire.TemplateStringValue{CookedStringPointer: 1, RawStringPointer: 2},
			},
			want: "kind: TEMPLATELIT_STRING\ntemplate_string_value {\n  cooked_string_pointer: 1\n  raw_string_pointer: 2\n}\n",
		},
		{
			name: "doc bytes",
			node: &wire.AstNode{Kind: wire.KindFunctionLiteral, JSDoc: []byte{0xa1, 0x61, 0x64}},
			want: "kind: FUNCTION_LITERAL\njsdoc: 3 bytes a16164\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Script(wire.MarshalNode(tt.node))
			if err != nil {
				t.Fatalf("Script() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Script() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestScriptUnknownFields(t *testing.T) {
	stream := wire.MarshalNode(&wire.AstNode{Kind: wire.KindEmpty})
	stream = protowire.AppendTag(stream, 99, protowire.VarintType)
	stream = protowire.AppendVarint(stream, 7)
	stream = protowire.AppendTag(stream, 98, protowire.BytesType)
	stream = protowire.AppendBytes(stream, []byte("hi"))

	got, err := Script(stream)
	if err != nil {
		t.Fatalf("Script() error: %v", err)
	}
	want := "kind: EMPTY\n98: 2 bytes 6869\n99: 7\n"
	if got != want {
		t.Errorf("Script() = %q, want %q", got, want)
	}
}

func TestScriptUnknownKindValue(t *testing.T) {
	var stream []byte
	stream = protowire.AppendTag(stream, wire.FieldNodeKind, protowire.VarintType)
	stream = protowire.AppendVarint(stream, 999)

	got, err := Script(stream)
	if err != nil {
		t.Fatalf("Script() error: %v", err)
	}
	if want := "kind: 999\n"; got != want {
		t.Errorf("Script() = %q, want %q", got, want)
	}
}

func TestContainerRendering(t *testing.T) {
	script := wire.MarshalNode(&wire.AstNode{Kind: wire.KindSourceFile})
	data := wire.MarshalTypedAST(&wire.TypedAST{
		StringPool: []string{"", "x"},
		FilePool:   []*wire.SourceFileRecord{{Filename: "a.js", Kind: wire.FileRecordSource}},
		Scripts:    []*wire.LazyScript{{Script: script, SourceFile: 1}},
	})

	got, err := Container(data)
	if err != nil {
		t.Fatalf("Container() error: %v", err)
	}
	want := strings.Join([]string{
		`string_pool: ""`,
		`string_pool: "x"`,
		"file_pool {",
		`  filename: "a.js"`,
		"  kind: FILE_RECORD_SOURCE",
		"}",
		"script {",
		"  script {",
		"    kind: SOURCE_FILE",
		"  }",
		"  source_file: 1",
		"}",
	}, "\n") + "\n"
	if got != want {
		t.Errorf("Container() =\n%s\nwant:\n%s", got, want)
	}
}

func TestContainerRawScriptFallback(t *testing.T) {
	data := wire.MarshalTypedAST(&wire.TypedAST{
		Scripts: []*wire.LazyScript{{Script: []byte{0xff}, SourceFile: 2}},
	})

	got, err := Container(data)
	if err != nil {
		t.Fatalf("Container() error: %v", err)
	}
	want := "script {\n  script: 1 bytes ff\n  source_file: 2\n}\n"
	if got != want {
		t.Errorf("Container() = %q, want %q", got, want)
	}
}

func TestMalformedInput(t *testing.T) {
	if _, err := Script([]byte{0xff}); err == nil {
		t.Error("Script() on malformed input: expected error")
	}
	if _, err := Container([]byte{0xff}); err == nil {
		t.Error("Container() on malformed input: expected error")
	}
}
