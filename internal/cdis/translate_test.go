package cdis

import (
	"testing"

	"github.com/go-test/deep"
	"github.com/siso-dis/cdis-gateway/internal/dis"
)

// TestReceiverTranslation is scenario S2: DIS ReceivedPower=-42.5 encodes to
// C-DIS -43 and decodes back to -43.0 (lossy, specified).
func TestReceiverTranslation(t *testing.T) {
	source := dis.Receiver{
		RadioReferenceID:            dis.EntityId{Site: 7, Application: 1, Entity: 2},
		RadioNumber:                 3,
		ReceivedPower:               -42.5,
		TransmitterRadioReferenceID: dis.EntityId{Site: 7, Application: 1, Entity: 9},
	}

	encoded := EncodeReceiver(source)
	if encoded.ReceivedPower != -43 {
		t.Fatalf("ReceivedPower = %d, want -43", encoded.ReceivedPower)
	}

	decoded := encoded.Decode()
	if decoded.ReceivedPower != -43.0 {
		t.Fatalf("decoded ReceivedPower = %v, want -43.0", decoded.ReceivedPower)
	}
	if decoded.RadioReferenceID != source.RadioReferenceID {
		t.Errorf("RadioReferenceID mismatch: got %v want %v", decoded.RadioReferenceID, source.RadioReferenceID)
	}
}

// TestReceiverBitRoundTrip confirms the C-DIS Receiver body, once encoded,
// serializes and parses back identically at the bit level (rule 2).
func TestReceiverBitRoundTrip(t *testing.T) {
	source := dis.Receiver{
		RadioReferenceID:            dis.EntityId{Site: 7, Application: 1, Entity: 2},
		RadioNumber:                 3,
		ReceiverState:               1,
		ReceivedPower:               -42.5,
		TransmitterRadioReferenceID: dis.EntityId{Site: 7, Application: 1, Entity: 9},
		TransmitterRadioNumber:      4,
	}
	pdu, err := Encode(dis.Pdu{Body: source}, PolicyPassthrough)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	w := NewBitWriter(nil)
	Serialize(pdu, w)
	w.AlignToOctet()

	r := NewBitReader(w.Bytes())
	got, err := Parse(r)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if diff := deep.Equal(pdu.Body, got.Body); diff != nil {
		t.Errorf("round trip mismatch: %v", diff)
	}
}

// TestFireTranslationRoundTrip exercises encode -> serialize -> parse ->
// decode for a Fire body with lossless fields.
func TestFireTranslationRoundTrip(t *testing.T) {
	source := dis.NewFire(
		dis.WithFiringEntityID(dis.EntityId{Site: 1, Application: 1, Entity: 10}),
		dis.WithTargetEntityID(dis.EntityId{Site: 2, Application: 1, Entity: 5}),
		dis.WithMunitionExpendableID(dis.EntityId{Site: 1, Application: 1, Entity: 99}),
		dis.WithFireEventID(dis.EventId{Site: 1, Application: 1, Number: 7}),
		dis.WithFireRange(1500.0),
	)

	pdu, err := Encode(dis.Pdu{Body: source}, PolicyPassthrough)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	w := NewBitWriter(nil)
	Serialize(pdu, w)
	w.AlignToOctet()

	got, err := Parse(NewBitReader(w.Bytes()))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if diff := deep.Equal(pdu.Body, got.Body); diff != nil {
		t.Errorf("bit round trip mismatch: %v", diff)
	}

	decoded, err := Decode(got)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	decodedFire := decoded.Body.(dis.Fire)
	if decodedFire.FiringEntityID != source.FiringEntityID {
		t.Errorf("FiringEntityID mismatch: got %v want %v", decodedFire.FiringEntityID, source.FiringEntityID)
	}
	if decodedFire.TargetEntityID != source.TargetEntityID {
		t.Errorf("TargetEntityID mismatch: got %v want %v", decodedFire.TargetEntityID, source.TargetEntityID)
	}
	if decodedFire.Range != source.Range {
		t.Errorf("Range mismatch: got %v want %v", decodedFire.Range, source.Range)
	}
}

// TestUnknownPduPassthroughPolicy is scenario S4: an unsupported DIS body
// either forwards as a Passthrough with identical payload, or is dropped.
func TestUnknownPduPassthroughPolicy(t *testing.T) {
	other := dis.Other{ActualType: 99, RawBytes: []byte{0x01, 0x02, 0x03}}
	pdu := dis.Pdu{Body: other}

	encoded, err := Encode(pdu, PolicyPassthrough)
	if err != nil {
		t.Fatalf("Encode with PolicyPassthrough: %v", err)
	}
	passthrough, ok := encoded.Body.(Passthrough)
	if !ok {
		t.Fatalf("expected Passthrough body, got %T", encoded.Body)
	}
	if diff := deep.Equal(passthrough.RawBytes, other.RawBytes); diff != nil {
		t.Errorf("RawBytes mismatch: %v", diff)
	}

	if _, err := Encode(pdu, PolicyDrop); err != ErrDropped {
		t.Fatalf("Encode with PolicyDrop: got %v, want ErrDropped", err)
	}
}

// TestPassthroughBitRoundTrip confirms a Passthrough body survives
// serialize/parse byte-for-byte.
func TestPassthroughBitRoundTrip(t *testing.T) {
	pdu := wrap(Passthrough{ActualType: 250, RawBytes: []byte{0xDE, 0xAD, 0xBE, 0xEF}})

	w := NewBitWriter(nil)
	Serialize(pdu, w)
	w.AlignToOctet()

	got, err := Parse(NewBitReader(w.Bytes()))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if diff := deep.Equal(pdu.Body, got.Body); diff != nil {
		t.Errorf("round trip mismatch: %v", diff)
	}
}
