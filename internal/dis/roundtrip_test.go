package dis

import (
	"testing"

	"github.com/go-test/deep"
	"github.com/siso-dis/cdis-gateway/internal/enumerations"
)

// TestBodyRoundTrip exercises the general round-trip law (parse . serialize
// == identity) across the registered body variants; Fire and Comment are
// covered by scenarios_test.go.
func TestBodyRoundTrip(t *testing.T) {
	entityA := EntityId{Site: 1, Application: 2, Entity: 3}
	entityB := EntityId{Site: 1, Application: 2, Entity: 4}

	cases := []struct {
		name string
		body Body
	}{
		{"EntityState", NewEntityState(
			WithEntityStateID(entityA),
			WithForceID(enumerations.ForceIDFriendly),
			WithEntityType(EntityType{Kind: enumerations.EntityKindPlatform, Domain: 1, Country: 225, Category: 1, Subcategory: 1, Specific: 1, Extra: 0}),
			WithEntityLocation(Location{X: 100.5, Y: -200.25, Z: 0}),
			WithArticulationParameter(ArticulationParameter{ParameterTypeDesignator: 1, ChangeIndicator: 0, PartAttachedTo: 0, ParameterType: 11, ParameterValue: 45}),
		)},
		{"Detonation", NewDetonation(WithDetonationResult(3))},
		{"Signal", Signal{
			EntityID:       entityA,
			RadioID:        1,
			EncodingScheme: EncodingScheme{Class: enumerations.EncodingClassRawBinaryData, TypeOrNrMessages: 1, UserProtocolID: 2},
			TDLType:        3,
			SampleRate:     8000,
			Samples:        1,
			Data:           []byte{0x01, 0x02, 0x03, 0x04, 0x05},
		}},
		{"Transmitter", Transmitter{
			EntityID:        entityA,
			RadioID:         2,
			RadioEntityType: EntityType{Kind: enumerations.EntityKindRadio},
			TransmitState:   1,
			Frequency:       30000000,
			Power:           10.5,
			ModulationParameters: []byte{0xAA, 0xBB},
		}},
		{"Receiver", Receiver{
			RadioReferenceID:            EntityId{Site: 7, Application: 1, Entity: 2},
			RadioNumber:                 3,
			ReceiverState:               1,
			ReceivedPower:               -42.5,
			TransmitterRadioReferenceID: EntityId{Site: 7, Application: 1, Entity: 9},
			TransmitterRadioNumber:      1,
		}},
		{"ServiceRequest", ServiceRequest{
			RequestingID:         entityA,
			ServicingID:          entityB,
			ServiceTypeRequested: 2,
			Supplies: []SupplyQuantity{
				{Type: EntityType{Kind: enumerations.EntityKindSupply}, Quantity: 10},
			},
		}},
		{"ResupplyOffer", ResupplyOffer{
			RequestingID: entityA,
			ServicingID:  entityB,
			Supplies: []SupplyQuantity{
				{Type: EntityType{Kind: enumerations.EntityKindSupply}, Quantity: 4},
			},
		}},
		{"ResupplyReceived", ResupplyReceived{RequestingID: entityA, ServicingID: entityB}},
		{"ResupplyCancel", ResupplyCancel{RequestingID: entityA, ServicingID: entityB}},
		{"IsGroupOf", IsGroupOf{
			GroupEntityID:         entityA,
			GroupedEntityCategory: 1,
			Descriptions: []IsGroupOfEntityDescription{
				{EntityID: entityB, Description: [10]byte{1, 2, 3}},
			},
		}},
		{"RemoveEntity", RemoveEntity{OriginatingID: entityA, ReceivingID: entityB, RequestID: 99}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pdu := Pdu{Header: Header{ProtocolVersion: ProtocolVersion7, ExerciseID: 1,
				PduType: uint8(tc.body.BodyType()), Length: HeaderLength + tc.body.BodyLength()}, Body: tc.body}
			out, written, err := Serialize(pdu, nil)
			if err != nil {
				t.Fatalf("Serialize: %v", err)
			}
			if written != len(out) {
				t.Fatalf("written = %d, len(out) = %d", written, len(out))
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
		})
	}
}
