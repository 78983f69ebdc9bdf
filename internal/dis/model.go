// Package dis implements a byte-exact encoder and decoder for the
// uncompressed DIS wire format (IEEE 1278.1 v6/v7), per spec.md §4.B.
package dis

import "github.com/siso-dis/cdis-gateway/internal/enumerations"

// Body is implemented by every PDU body variant. It mirrors the Rust
// BodyInfo trait this codec is descended from (dis-rs/src/common/comment
// /model.rs and siblings).
type Body interface {
	BodyLength() uint16
	BodyType() enumerations.PduType
}

// Interaction is implemented by bodies that name an originating and/or
// receiving entity, per spec.md §3.3.
type Interaction interface {
	Originator() *EntityId
	Receiver() *EntityId
}

// Pdu is a complete protocol data unit: a header plus a body selected by
// the header's PduType, per spec.md §3.2.
type Pdu struct {
	Header Header
	Body   Body
}

// bodyParser parses a single body from a byte slice (which only contains
// this body's bytes, not any following concatenated PDU). The caller knows
// the consumed length from the header, so the parser does not report it.
type bodyParser func(b []byte) (Body, error)

var bodyParsers = map[enumerations.PduType]bodyParser{
	enumerations.PduTypeEntityState:      parseEntityStateBody,
	enumerations.PduTypeFire:             parseFireBody,
	enumerations.PduTypeDetonation:       parseDetonationBody,
	enumerations.PduTypeComment:          parseCommentBody,
	enumerations.PduTypeSignal:           parseSignalBody,
	enumerations.PduTypeTransmitter:      parseTransmitterBody,
	enumerations.PduTypeReceiver:         parseReceiverBody,
	enumerations.PduTypeServiceRequest:   parseServiceRequestBody,
	enumerations.PduTypeResupplyOffer:    parseResupplyOfferBody,
	enumerations.PduTypeResupplyReceived: parseResupplyReceivedBody,
	enumerations.PduTypeResupplyCancel:   parseResupplyCancelBody,
	enumerations.PduTypeIsGroupOf:        parseIsGroupOfBody,
	enumerations.PduTypeRemoveEntity:     parseRemoveEntityBody,
}

// originReceiverOffsets records, for PduTypes known to carry an EntityId
// pair in fixed leading positions even when the concrete body type is not
// implemented, the byte offsets of origin and receiver. This backs the
// Other escape hatch's origin/receiver extraction, per spec.md §4.B — "data,
// not code" per the design note in spec.md §9.
var originReceiverOffsets = map[enumerations.PduType]struct{ Origin, Receiver int }{
	enumerations.PduTypeCollision:      {0, 6},
	enumerations.PduTypeCreateEntity:   {0, 6},
	enumerations.PduTypeStartResume:    {0, 6},
	enumerations.PduTypeStopFreeze:     {0, 6},
	enumerations.PduTypeAcknowledge:    {0, 6},
	enumerations.PduTypeActionRequest:  {0, 6},
	enumerations.PduTypeActionResponse: {0, 6},
	enumerations.PduTypeDataQuery:      {0, 6},
	enumerations.PduTypeSetData:        {0, 6},
	enumerations.PduTypeData:           {0, 6},
	enumerations.PduTypeEventReport:    {0, 6},
}
