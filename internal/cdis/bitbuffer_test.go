package cdis

import "testing"

func TestBitRoundTripMixedWidths(t *testing.T) {
	w := NewBitWriter(nil)
	w.WriteBits(0b101, 3)
	w.WriteBool(true)
	w.WriteBits(0xABCD, 16)
	w.WriteBits(7, 4)
	w.AlignToOctet()

	r := NewBitReader(w.Bytes())
	if v, err := r.ReadBits(3); err != nil || v != 0b101 {
		t.Fatalf("ReadBits(3) = %d, %v", v, err)
	}
	if v, err := r.ReadBool(); err != nil || v != true {
		t.Fatalf("ReadBool() = %v, %v", v, err)
	}
	if v, err := r.ReadBits(16); err != nil || v != 0xABCD {
		t.Fatalf("ReadBits(16) = %x, %v", v, err)
	}
	if v, err := r.ReadBits(4); err != nil || v != 7 {
		t.Fatalf("ReadBits(4) = %d, %v", v, err)
	}
}

func TestBitReaderOutOfBits(t *testing.T) {
	r := NewBitReader([]byte{0xFF})
	if _, err := r.ReadBits(9); err != ErrOutOfBits {
		t.Fatalf("expected ErrOutOfBits, got %v", err)
	}
}

func TestAlignToOctetPadsWithZero(t *testing.T) {
	w := NewBitWriter(nil)
	w.WriteBits(0b11, 2)
	w.AlignToOctet()
	if got, want := w.Bytes()[0], byte(0b11000000); got != want {
		t.Fatalf("padded byte = %08b, want %08b", got, want)
	}
	if w.Cursor() != 8 {
		t.Fatalf("cursor = %d, want 8", w.Cursor())
	}
}
