package dis

import (
	"testing"

	"github.com/go-test/deep"
)

// TestFireRoundTrip is scenario S1: constructing a Fire PDU, serializing,
// and parsing it back must reproduce an identical record.
func TestFireRoundTrip(t *testing.T) {
	fire := NewFire(
		WithFiringEntityID(EntityId{Site: 1, Application: 1, Entity: 10}),
		WithTargetEntityID(EntityId{Site: 2, Application: 1, Entity: 5}),
		WithMunitionExpendableID(EntityId{Site: 1, Application: 1, Entity: 99}),
		WithFireEventID(EventId{Site: 1, Application: 1, Number: 7}),
		WithFireRange(1500.0),
	)
	pdu := Pdu{Header: Header{ProtocolVersion: ProtocolVersion7, ExerciseID: 1,
		PduType: uint8(fire.BodyType()), Length: HeaderLength + fire.BodyLength()}, Body: fire}

	out, _, err := Serialize(pdu, nil)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	got, remainder, err := Parse(out)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(remainder) != 0 {
		t.Fatalf("expected no remainder, got %d bytes", len(remainder))
	}
	if diff := deep.Equal(pdu, got); diff != nil {
		t.Errorf("round trip mismatch: %v", diff)
	}
}

// TestCommentVariableDatumPadding is scenario S3: a single VariableDatum
// with a 3-octet value pads to a 4-octet word, for a 12-octet record, and
// the resulting body length is 20 (base) + 12.
func TestCommentVariableDatumPadding(t *testing.T) {
	comment := NewComment(
		WithCommentOriginatingID(EntityId{Site: 1, Application: 1, Entity: 1}),
		WithCommentReceivingID(EntityId{Site: 1, Application: 1, Entity: 2}),
		WithVariableDatum(VariableDatum{ID: 0x1000, Value: []byte{0x01, 0x02, 0x03}}),
	)

	if got, want := comment.BodyLength(), uint16(20+12); got != want {
		t.Fatalf("BodyLength() = %d, want %d", got, want)
	}

	pdu := Pdu{Header: Header{ProtocolVersion: ProtocolVersion7,
		PduType: uint8(comment.BodyType()), Length: HeaderLength + comment.BodyLength()}, Body: comment}
	out, _, err := Serialize(pdu, nil)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	got, _, err := Parse(out)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if diff := deep.Equal(pdu, got); diff != nil {
		t.Errorf("round trip mismatch: %v", diff)
	}
}

// TestConcatenationLaw is scenario rule 6: ParseMany on two PDUs
// concatenated back to back must recover both in order with an empty
// remainder.
func TestConcatenationLaw(t *testing.T) {
	fire := NewFire(
		WithFiringEntityID(EntityId{Site: 1, Application: 1, Entity: 10}),
		WithTargetEntityID(EntityId{Site: 2, Application: 1, Entity: 5}),
		WithFireRange(500),
	)
	removeEntity := RemoveEntity{
		OriginatingID: EntityId{Site: 1, Application: 1, Entity: 1},
		ReceivingID:   EntityId{Site: 1, Application: 1, Entity: 2},
		RequestID:     42,
	}

	pdu1 := Pdu{Header: Header{ProtocolVersion: ProtocolVersion7,
		PduType: uint8(fire.BodyType()), Length: HeaderLength + fire.BodyLength()}, Body: fire}
	pdu2 := Pdu{Header: Header{ProtocolVersion: ProtocolVersion7,
		PduType: uint8(removeEntity.BodyType()), Length: HeaderLength + removeEntity.BodyLength()}, Body: removeEntity}

	var out []byte
	out, err := SerializeMany([]Pdu{pdu1, pdu2}, out)
	if err != nil {
		t.Fatalf("SerializeMany: %v", err)
	}

	pdus, remainder, errs := ParseMany(out)
	if len(errs) != 0 {
		t.Fatalf("ParseMany errors: %v", errs)
	}
	if len(remainder) != 0 {
		t.Fatalf("expected no remainder, got %d bytes", len(remainder))
	}
	if len(pdus) != 2 {
		t.Fatalf("expected 2 PDUs, got %d", len(pdus))
	}
	if diff := deep.Equal(pdu1, pdus[0]); diff != nil {
		t.Errorf("first PDU mismatch: %v", diff)
	}
	if diff := deep.Equal(pdu2, pdus[1]); diff != nil {
		t.Errorf("second PDU mismatch: %v", diff)
	}
}

// TestUnknownPduTypePassesThroughAsOther covers the Other escape hatch:
// an unregistered PduType round-trips through Other without losing its
// original type tag or payload.
func TestUnknownPduTypePassesThroughAsOther(t *testing.T) {
	other := Other{
		ActualType: 250, // not in bodyParsers
		RawBytes:   []byte{0xDE, 0xAD, 0xBE, 0xEF},
	}
	pdu := Pdu{Header: Header{ProtocolVersion: ProtocolVersion7}, Body: other}

	out, _, err := Serialize(pdu, nil)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	got, _, err := Parse(out)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	gotOther, ok := got.Body.(Other)
	if !ok {
		t.Fatalf("expected Other body, got %T", got.Body)
	}
	if gotOther.ActualType != other.ActualType {
		t.Errorf("ActualType = %v, want %v", gotOther.ActualType, other.ActualType)
	}
	if diff := deep.Equal(gotOther.RawBytes, other.RawBytes); diff != nil {
		t.Errorf("RawBytes mismatch: %v", diff)
	}
}
