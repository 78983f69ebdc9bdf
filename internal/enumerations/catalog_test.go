package enumerations_test

import (
	"testing"

	"github.com/siso-dis/cdis-gateway/internal/enumerations"
)

// TestPduTypeTotality is the enumeration round-trip law from spec.md §8,
// rule 5: for every raw value in the field's width, into(from(raw)) equals
// raw, which implies from(into(from(raw))) equals from(raw).
func TestPduTypeTotality(t *testing.T) {
	for raw := 0; raw <= 0xff; raw++ {
		p := enumerations.PduTypeFrom(uint8(raw))
		if got := p.Into(); got != uint8(raw) {
			t.Errorf("PduType raw %d: Into() = %d, want %d", raw, got, raw)
		}
	}
}

func TestForceIDTotality(t *testing.T) {
	for raw := 0; raw <= 0xff; raw++ {
		f := enumerations.ForceIDFrom(uint8(raw))
		if got := f.Into(); got != uint8(raw) {
			t.Errorf("ForceID raw %d: Into() = %d, want %d", raw, got, raw)
		}
	}
}

func TestEntityKindTotality(t *testing.T) {
	for raw := 0; raw <= 0xff; raw++ {
		k := enumerations.EntityKindFrom(uint8(raw))
		if got := k.Into(); got != uint8(raw) {
			t.Errorf("EntityKind raw %d: Into() = %d, want %d", raw, got, raw)
		}
	}
}

func TestUnspecifiedRendersRawValue(t *testing.T) {
	p := enumerations.PduTypeFrom(250)
	if p.String() != "Unspecified (250)" {
		t.Errorf("expected unspecified rendering, got %q", p.String())
	}
}

func TestDefaultIsFromZero(t *testing.T) {
	var p enumerations.PduType
	if p != enumerations.PduTypeOther {
		t.Errorf("zero value of PduType should equal PduTypeFrom(0) = Other, got %v", p)
	}
}
