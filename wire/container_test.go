package wire

import (
	"bytes"
	"reflect"
	"testing"

	"google.golang.org/protobuf/encoding/protowire"
)

func TestTypedASTRoundTrip(t *testing.T) {
	script := MarshalNode(&AstNode{Kind: KindSourceFile, SourceFile: 2})
	c := &TypedAST{
		StringPool: []string{"x", "y"},
		FilePool: []*SourceFileRecord{
			{Filename: "extern.js", Kind: FileRecordExtern},
			{Filename: "main.js", Kind: FileRecordSource},
		},
		Scripts: []*LazyScript{
			{Script: script, SourceFile: 2, SourceMappingURL: "main.js.map"},
		},
	}

	got, err := ParseTypedAST(MarshalTypedAST(c))
	if err != nil {
		t.Fatalf("ParseTypedAST error: %v", err)
	}
	if !reflect.DeepEqual(got, c) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, c)
	}
}

func TestTypedASTPoolOrderPreserved(t *testing.T) {
	c := &TypedAST{StringPool: []string{"", "first", "", "second"}}

	got, err := ParseTypedAST(MarshalTypedAST(c))
	if err != nil {
		t.Fatalf("ParseTypedAST error: %v", err)
	}
	if !reflect.DeepEqual(got.StringPool, c.StringPool) {
		t.Errorf("StringPool = %q, want %q", got.StringPool, c.StringPool)
	}
}

func TestLazyScriptKeepsRawNodeStream(t *testing.T) {
	inner := MarshalNode(&AstNode{
		Kind:     KindSourceFile,
		Children: []*AstNode{{Kind: KindExpressionStatement}},
	})
	s := &LazyScript{Script: inner, SourceFile: 1}

	got, err := ParseLazyScript(MarshalLazyScript(s))
	if err != nil {
		t.Fatalf("ParseLazyScript error: %v", err)
	}
	if !bytes.Equal(got.Script, inner) {
		t.Error("script bytes changed across the container round trip")
	}
	if got.SourceFile != 1 {
		t.Errorf("SourceFile = %d, want 1", got.SourceFile)
	}
}

func TestParseTypedASTEmpty(t *testing.T) {
	got, err := ParseTypedAST(nil)
	if err != nil {
		t.Fatalf("ParseTypedAST error: %v", err)
	}
	if len(got.StringPool) != 0 || len(got.FilePool) != 0 || len(got.Scripts) != 0 {
		t.Errorf("empty input produced non-empty container: %+v", got)
	}
}

func TestParseTypedASTSkipsUnknownFields(t *testing.T) {
	data := MarshalTypedAST(&TypedAST{StringPool: []string{"keep"}})
	data = protowire.AppendTag(data, 9, protowire.VarintType)
	data = protowire.AppendVarint(data, 1)

	got, err := ParseTypedAST(data)
	if err != nil {
		t.Fatalf("ParseTypedAST error: %v", err)
	}
	if len(got.StringPool) != 1 || got.StringPool[0] != "keep" {
		t.Errorf("StringPool = %q, want [keep]", got.StringPool)
	}
}

func TestSourceFileRecordRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		rec  *SourceFileRecord
	}{
		{"extern", &SourceFileRecord{Filename: "lib.d.js", Kind: FileRecordExtern}},
		{"source", &SourceFileRecord{Filename: "app.js", Kind: FileRecordSource}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSourceFileRecord(MarshalSourceFileRecord(tt.rec))
			if err != nil {
				t.Fatalf("ParseSourceFileRecord error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.rec) {
				t.Errorf("round trip = %+v, want %+v", got, tt.rec)
			}
		})
	}
}
