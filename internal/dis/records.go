package dis

import (
	"encoding/binary"
	"math"

	"github.com/siso-dis/cdis-gateway/internal/enumerations"
)

// EntityId identifies a simulation entity by site, application, and entity
// number, per spec.md §3.4. The zero value is not a valid entity reference
// on the wire (DIS reserves 0xFFFF as "no entity" / "all entities"), but is
// accepted here as any other triple.
type EntityId struct {
	Site        uint16
	Application uint16
	Entity      uint16
}

const entityIdLength = 6

func parseEntityId(b []byte) (EntityId, error) {
	if len(b) < entityIdLength {
		return EntityId{}, ErrTruncated
	}
	return EntityId{
		Site:        binary.BigEndian.Uint16(b[0:2]),
		Application: binary.BigEndian.Uint16(b[2:4]),
		Entity:      binary.BigEndian.Uint16(b[4:6]),
	}, nil
}

func (e EntityId) serialize(buf []byte) []byte {
	var tmp [entityIdLength]byte
	binary.BigEndian.PutUint16(tmp[0:2], e.Site)
	binary.BigEndian.PutUint16(tmp[2:4], e.Application)
	binary.BigEndian.PutUint16(tmp[4:6], e.Entity)
	return append(buf, tmp[:]...)
}

// EventId identifies a simulation event, shaped identically to EntityId.
type EventId struct {
	Site        uint16
	Application uint16
	Number      uint16
}

func parseEventId(b []byte) (EventId, error) {
	id, err := parseEntityId(b)
	if err != nil {
		return EventId{}, err
	}
	return EventId{Site: id.Site, Application: id.Application, Number: id.Entity}, nil
}

func (e EventId) serialize(buf []byte) []byte {
	return EntityId{Site: e.Site, Application: e.Application, Entity: e.Number}.serialize(buf)
}

// EntityType describes the kind of a simulated entity, per spec.md §3.4.
type EntityType struct {
	Kind       enumerations.EntityKind
	Domain     uint8
	Country    uint16
	Category   uint8
	Subcategory uint8
	Specific   uint8
	Extra      uint8
}

const entityTypeLength = 8

func parseEntityType(b []byte) (EntityType, error) {
	if len(b) < entityTypeLength {
		return EntityType{}, ErrTruncated
	}
	return EntityType{
		Kind:        enumerations.EntityKindFrom(b[0]),
		Domain:      b[1],
		Country:     binary.BigEndian.Uint16(b[2:4]),
		Category:    b[4],
		Subcategory: b[5],
		Specific:    b[6],
		Extra:       b[7],
	}, nil
}

func (t EntityType) serialize(buf []byte) []byte {
	var tmp [entityTypeLength]byte
	tmp[0] = t.Kind.Into()
	tmp[1] = t.Domain
	binary.BigEndian.PutUint16(tmp[2:4], t.Country)
	tmp[4] = t.Category
	tmp[5] = t.Subcategory
	tmp[6] = t.Specific
	tmp[7] = t.Extra
	return append(buf, tmp[:]...)
}

// Location is a geocentric position in meters, per spec.md §3.4.
type Location struct {
	X, Y, Z float64
}

const locationLength = 24

func parseLocation(b []byte) (Location, error) {
	if len(b) < locationLength {
		return Location{}, ErrTruncated
	}
	return Location{
		X: math.Float64frombits(binary.BigEndian.Uint64(b[0:8])),
		Y: math.Float64frombits(binary.BigEndian.Uint64(b[8:16])),
		Z: math.Float64frombits(binary.BigEndian.Uint64(b[16:24])),
	}, nil
}

func (l Location) serialize(buf []byte) []byte {
	var tmp [locationLength]byte
	binary.BigEndian.PutUint64(tmp[0:8], math.Float64bits(l.X))
	binary.BigEndian.PutUint64(tmp[8:16], math.Float64bits(l.Y))
	binary.BigEndian.PutUint64(tmp[16:24], math.Float64bits(l.Z))
	return append(buf, tmp[:]...)
}

// VectorF32 is a three-component single-precision vector (velocity,
// acceleration, orientation rates...), per spec.md §3.4.
type VectorF32 struct {
	X, Y, Z float32
}

const vectorF32Length = 12

func parseVectorF32(b []byte) (VectorF32, error) {
	if len(b) < vectorF32Length {
		return VectorF32{}, ErrTruncated
	}
	return VectorF32{
		X: math.Float32frombits(binary.BigEndian.Uint32(b[0:4])),
		Y: math.Float32frombits(binary.BigEndian.Uint32(b[4:8])),
		Z: math.Float32frombits(binary.BigEndian.Uint32(b[8:12])),
	}, nil
}

func (v VectorF32) serialize(buf []byte) []byte {
	var tmp [vectorF32Length]byte
	binary.BigEndian.PutUint32(tmp[0:4], math.Float32bits(v.X))
	binary.BigEndian.PutUint32(tmp[4:8], math.Float32bits(v.Y))
	binary.BigEndian.PutUint32(tmp[8:12], math.Float32bits(v.Z))
	return append(buf, tmp[:]...)
}

// BurstDescriptor describes a munition detonation or fire event, per
// spec.md §3.4.
type BurstDescriptor struct {
	Munition EntityType
	Warhead  uint16
	Fuse     uint16
	Quantity uint16
	Rate     uint16
}

const burstDescriptorLength = entityTypeLength + 8

func parseBurstDescriptor(b []byte) (BurstDescriptor, error) {
	if len(b) < burstDescriptorLength {
		return BurstDescriptor{}, ErrTruncated
	}
	munition, err := parseEntityType(b[0:entityTypeLength])
	if err != nil {
		return BurstDescriptor{}, err
	}
	rest := b[entityTypeLength:]
	return BurstDescriptor{
		Munition: munition,
		Warhead:  binary.BigEndian.Uint16(rest[0:2]),
		Fuse:     binary.BigEndian.Uint16(rest[2:4]),
		Quantity: binary.BigEndian.Uint16(rest[4:6]),
		Rate:     binary.BigEndian.Uint16(rest[6:8]),
	}, nil
}

func (d BurstDescriptor) serialize(buf []byte) []byte {
	buf = d.Munition.serialize(buf)
	var tmp [8]byte
	binary.BigEndian.PutUint16(tmp[0:2], d.Warhead)
	binary.BigEndian.PutUint16(tmp[2:4], d.Fuse)
	binary.BigEndian.PutUint16(tmp[4:6], d.Quantity)
	binary.BigEndian.PutUint16(tmp[6:8], d.Rate)
	return append(buf, tmp[:]...)
}

const baseVariableDatumLength = 8 // 4-octet id + 4-octet length field
const wordOctets = 4              // VariableDatum values pad to a 32-bit word

// VariableDatum is an identifier/value pair whose value is padded to the
// next 32-bit word boundary on the wire, per spec.md §3.4, §4.B, and
// scenario S3 (a 3-octet value pads to 4, for a 12-octet total record).
type VariableDatum struct {
	ID    uint32
	Value []byte
}

func paddedToWord(octets int) int {
	if octets%wordOctets == 0 {
		return octets
	}
	return octets + (wordOctets - octets%wordOctets)
}

func (d VariableDatum) paddedLength() int {
	return baseVariableDatumLength + paddedToWord(len(d.Value))
}

func parseVariableDatum(b []byte) (VariableDatum, int, error) {
	if len(b) < baseVariableDatumLength {
		return VariableDatum{}, 0, ErrTruncated
	}
	id := binary.BigEndian.Uint32(b[0:4])
	lengthBits := binary.BigEndian.Uint32(b[4:8])
	valueOctets := int(lengthBits+7) / 8
	total := baseVariableDatumLength + paddedToWord(valueOctets)
	if len(b) < total {
		return VariableDatum{}, 0, ErrTruncated
	}
	value := make([]byte, valueOctets)
	copy(value, b[baseVariableDatumLength:baseVariableDatumLength+valueOctets])
	return VariableDatum{ID: id, Value: value}, total, nil
}

func (d VariableDatum) serialize(buf []byte) []byte {
	var head [8]byte
	binary.BigEndian.PutUint32(head[0:4], d.ID)
	binary.BigEndian.PutUint32(head[4:8], uint32(len(d.Value)*8))
	buf = append(buf, head[:]...)
	buf = append(buf, d.Value...)
	padding := d.paddedLength() - baseVariableDatumLength - len(d.Value)
	for i := 0; i < padding; i++ {
		buf = append(buf, 0)
	}
	return buf
}

// SupplyQuantity names a supply type and the quantity of it, per
// spec.md §3.4.
type SupplyQuantity struct {
	Type     EntityType
	Quantity float32
}

const supplyQuantityLength = entityTypeLength + 4

func parseSupplyQuantity(b []byte) (SupplyQuantity, error) {
	if len(b) < supplyQuantityLength {
		return SupplyQuantity{}, ErrTruncated
	}
	t, err := parseEntityType(b[0:entityTypeLength])
	if err != nil {
		return SupplyQuantity{}, err
	}
	q := math.Float32frombits(binary.BigEndian.Uint32(b[entityTypeLength : entityTypeLength+4]))
	return SupplyQuantity{Type: t, Quantity: q}, nil
}

func (s SupplyQuantity) serialize(buf []byte) []byte {
	buf = s.Type.serialize(buf)
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], math.Float32bits(s.Quantity))
	return append(buf, tmp[:]...)
}

// EncodingScheme is DIS's packed 16-bit field, split at the record level
// into class plus a class-dependent payload, per spec.md §4.C.
type EncodingScheme struct {
	Class enumerations.EncodingClass
	// Payload meaning depends on Class:
	//   EncodedAudio / RawBinaryData: NumberOfTDLMessages (TypeOrNrMessages) and UserProtocolID
	//   DatabaseIndex:                DatabaseIndex
	TypeOrNrMessages uint16
	UserProtocolID   uint16
}

const encodingSchemeLength = 2

func parseEncodingScheme(b []byte) (EncodingScheme, error) {
	if len(b) < encodingSchemeLength {
		return EncodingScheme{}, ErrTruncated
	}
	raw := binary.BigEndian.Uint16(b[0:2])
	class := enumerations.EncodingClassFrom(uint8(raw >> 14))
	switch class {
	case enumerations.EncodingClassDatabaseIndex:
		return EncodingScheme{Class: class, TypeOrNrMessages: raw & 0x3FFF}, nil
	default:
		return EncodingScheme{
			Class:            class,
			TypeOrNrMessages: (raw >> 7) & 0x7F,
			UserProtocolID:   raw & 0x7F,
		}, nil
	}
}

func (e EncodingScheme) serialize(buf []byte) []byte {
	var raw uint16
	switch e.Class {
	case enumerations.EncodingClassDatabaseIndex:
		raw = uint16(e.Class.Into())<<14 | (e.TypeOrNrMessages & 0x3FFF)
	default:
		raw = uint16(e.Class.Into())<<14 | (e.TypeOrNrMessages&0x7F)<<7 | (e.UserProtocolID & 0x7F)
	}
	var tmp [2]byte
	binary.BigEndian.PutUint16(tmp[:], raw)
	return append(buf, tmp[:]...)
}
