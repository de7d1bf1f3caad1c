package ast

import (
	"testing"

	"github.com/jscomp/typedast/wire"
)

func TestFunctionAccessors(t *testing.T) {
	fn := &Node{Token: TokenFunction, Props: wire.PropArrowFn.Mask()}
	if !fn.IsFunction() {
		t.Error("IsFunction() = false for FUNCTION node")
	}
	if !fn.IsArrowFunction() {
		t.Error("IsArrowFunction() = false with arrow bit set")
	}
	if fn.IsAsyncFunction() {
		t.Error("IsAsyncFunction() = true without async bit")
	}
}

func TestAsyncGeneratorNeedsBothBits(t *testing.T) {
	async := &Node{Token: TokenFunction, Props: wire.PropAsyncFn.Mask()}
	if async.IsAsyncGeneratorFunction() {
		t.Error("async alone reported as async generator")
	}

	gen := &Node{Token: TokenFunction, Props: wire.PropGeneratorFn.Mask()}
	if gen.IsAsyncGeneratorFunction() {
		t.Error("generator alone reported as async generator")
	}

	both := &Node{Token: TokenFunction, Props: wire.PropAsyncFn.Mask() | wire.PropGeneratorFn.Mask()}
	if !both.IsAsyncGeneratorFunction() {
		t.Error("async+generator not reported as async generator")
	}
}

func TestFunctionBitsIgnoredOnOtherTokens(t *testing.T) {
	n := &Node{Token: TokenCall, Props: wire.PropArrowFn.Mask()}
	if n.IsArrowFunction() {
		t.Error("IsArrowFunction() = true on a CALL node")
	}
}

func TestOutputOnlyProps(t *testing.T) {
	key := &Node{Token: TokenStringKey, Props: PropQuoted.Mask()}
	if !key.IsQuotedKey() {
		t.Error("IsQuotedKey() = false with quoted bit set")
	}

	inc := &Node{Token: TokenInc, Props: PropIncrDecrPostfix.Mask()}
	if !inc.IsPostfix() {
		t.Error("IsPostfix() = false with postfix bit set")
	}

	// Output-only bits sit above every serialized bit.
	for _, p := range wire.AllProperties() {
		if p.Mask() == PropQuoted.Mask() || p.Mask() == PropIncrDecrPostfix.Mask() {
			t.Errorf("output-only bit collides with serialized property %v", p)
		}
	}
}

func TestShorthandProperty(t *testing.T) {
	key := &Node{Token: TokenStringKey, Props: wire.PropIsShorthandProperty.Mask()}
	if !key.IsShorthandProperty() {
		t.Error("IsShorthandProperty() = false with shorthand bit set")
	}
}

func TestHasShadow(t *testing.T) {
	n := &Node{Token: TokenCall}
	if n.HasShadow() {
		t.Error("HasShadow() = true without shadow")
	}
	n.Shadow = &Node{Token: TokenRoot}
	if !n.HasShadow() {
		t.Error("HasShadow() = false with shadow attached")
	}
}

func TestFileKindString(t *testing.T) {
	if FileKindExtern.String() != "extern" {
		t.Errorf("FileKindExtern.String() = %q, want %q", FileKindExtern.String(), "extern")
	}
	if FileKindSource.String() != "source" {
		t.Errorf("FileKindSource.String() = %q, want %q", FileKindSource.String(), "source")
	}
}
