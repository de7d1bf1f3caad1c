package wire

import (
	"reflect"
	"strings"
	"testing"
)

func TestPropertyMask(t *testing.T) {
	if got := PropArrowFn.Mask(); got != 1<<1 {
		t.Errorf("PropArrowFn.Mask() = %#x, want %#x", got, uint64(1<<1))
	}
	if got := PropClosureUnawareShadow.Mask(); got != 1<<29 {
		t.Errorf("PropClosureUnawareShadow.Mask() = %#x, want %#x", got, uint64(1<<29))
	}
	// Bit 0 is reserved; no property may claim it.
	for _, p := range AllProperties() {
		if p.Mask() == 1 {
			t.Errorf("property %v claims reserved bit 0", p)
		}
	}
}

func TestAllPropertiesNamed(t *testing.T) {
	for _, p := range AllProperties() {
		if strings.HasPrefix(p.String(), "UNKNOWN") {
			t.Errorf("property bit %d has no name", uint8(p))
		}
	}
	if got := len(AllProperties()); got != 29 {
		t.Errorf("len(AllProperties()) = %d, want 29", got)
	}
}

func TestPropertyStringUnknown(t *testing.T) {
	got := NodeProperty(40).String()
	if got != "UNKNOWN(40)" {
		t.Errorf("String() = %q, want %q", got, "UNKNOWN(40)")
	}
}

func TestPropertyNamesFromMask(t *testing.T) {
	mask := PropArrowFn.Mask() | PropGeneratorFn.Mask()
	want := []string{"arrow_fn", "generator_fn"}
	if got := PropertyNames(mask); !reflect.DeepEqual(got, want) {
		t.Errorf("PropertyNames(%#x) = %v, want %v", mask, got, want)
	}
}

func TestPropertyNamesIgnoresUnknownBits(t *testing.T) {
	mask := PropSynthetic.Mask() | 1<<45
	want := []string{"synthetic"}
	if got := PropertyNames(mask); !reflect.DeepEqual(got, want) {
		t.Errorf("PropertyNames(%#x) = %v, want %v", mask, got, want)
	}
}

func TestPropertyNamesEmptyMask(t *testing.T) {
	if got := PropertyNames(0); got != nil {
		t.Errorf("PropertyNames(0) = %v, want nil", got)
	}
}
