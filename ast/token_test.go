package ast

import (
	"strings"
	"testing"
)

func TestAllTokensHaveNames(t *testing.T) {
	for tok := TokenScript; tok <= TokenObjectSpread; tok++ {
		if strings.HasPrefix(tok.String(), "UNKNOWN") {
			t.Errorf("Token %d has no name", uint8(tok))
		}
	}
}

func TestTokenNamesUnique(t *testing.T) {
	seen := make(map[string]Token)
	for _, tok := range AllTokens() {
		name := tok.String()
		if prev, ok := seen[name]; ok {
			t.Errorf("Tokens %d and %d share name %q", uint8(prev), uint8(tok), name)
		}
		seen[name] = tok
	}
}

func TestTokenStringUnknown(t *testing.T) {
	got := Token(255).String()
	if !strings.HasPrefix(got, "UNKNOWN") {
		t.Errorf("Token(255).String() = %q, want UNKNOWN prefix", got)
	}
}

func TestTokenCount(t *testing.T) {
	if TokenCount() != len(AllTokens()) {
		t.Errorf("TokenCount() = %d, want %d", TokenCount(), len(AllTokens()))
	}
	if TokenCount() != int(TokenObjectSpread)+1 {
		t.Errorf("TokenCount() = %d, want %d", TokenCount(), int(TokenObjectSpread)+1)
	}
}
