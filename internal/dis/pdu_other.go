package dis

import "github.com/siso-dis/cdis-gateway/internal/enumerations"

// Other is the escape hatch for PduTypes not in bodyParsers: it preserves
// the raw body bytes verbatim, plus origin/receiver when the fixed-position
// table in model.go says the type carries them. Ported from
// dis-rs/src/common/other/model.rs, see spec.md §3.3 and §9.
type Other struct {
	// ActualType preserves the original, unsupported PduType tag so that
	// parse-then-serialize round-trips byte-for-byte even though this
	// codec has no dedicated body parser for it.
	ActualType          enumerations.PduType
	OriginatingEntityID *EntityId
	ReceivingEntityID   *EntityId
	RawBytes            []byte
}

func (o Other) BodyLength() uint16 { return uint16(len(o.RawBytes)) }

func (o Other) BodyType() enumerations.PduType { return o.ActualType }

func (o Other) Originator() *EntityId { return o.OriginatingEntityID }
func (o Other) Receiver() *EntityId   { return o.ReceivingEntityID }

func (o Other) serialize(buf []byte) []byte {
	return append(buf, o.RawBytes...)
}
