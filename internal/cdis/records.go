package cdis

import (
	"math"

	"github.com/siso-dis/cdis-gateway/internal/dis"
	"github.com/siso-dis/cdis-gateway/internal/enumerations"
)

// EntityId is C-DIS's compressed entity identifier: each DIS u16 field
// becomes a UVINT16, plus a FullForm flag. Site and Application are
// frequently identical across an exercise's entities, so a future caching
// encoder can legitimately set FullForm=false and omit them; this codec
// always emits FullForm=true (full triple present), since the gateway
// pipeline is stateless per spec.md §5 and introducing an inter-PDU site
// cache is out of scope, per spec.md §4.C.
type EntityId struct {
	FullForm    bool
	Site        UVINT16
	Application UVINT16
	Entity      UVINT16
}

func encodeEntityId(id dis.EntityId) EntityId {
	return EntityId{
		FullForm:    true,
		Site:        NewUVINT16(uint32(id.Site)),
		Application: NewUVINT16(uint32(id.Application)),
		Entity:      NewUVINT16(uint32(id.Entity)),
	}
}

func (e EntityId) decode() dis.EntityId {
	return dis.EntityId{
		Site:        uint16(e.Site.Value),
		Application: uint16(e.Application.Value),
		Entity:      uint16(e.Entity.Value),
	}
}

func (e EntityId) write(w *BitWriter) {
	w.WriteBool(e.FullForm)
	e.Site.write(w)
	e.Application.write(w)
	e.Entity.write(w)
}

func readEntityId(r *BitReader) (EntityId, error) {
	full, err := r.ReadBool()
	if err != nil {
		return EntityId{}, err
	}
	site, err := readUVINT16(r)
	if err != nil {
		return EntityId{}, err
	}
	app, err := readUVINT16(r)
	if err != nil {
		return EntityId{}, err
	}
	entity, err := readUVINT16(r)
	if err != nil {
		return EntityId{}, err
	}
	return EntityId{FullForm: full, Site: site, Application: app, Entity: entity}, nil
}

// EventId reuses EntityId's wire shape, as in internal/dis.
type EventId = EntityId

func encodeEventId(id dis.EventId) EventId {
	return encodeEntityId(dis.EntityId{Site: id.Site, Application: id.Application, Entity: id.Number})
}

func (e EventId) decodeEvent() dis.EventId {
	plain := e.decode()
	return dis.EventId{Site: plain.Site, Application: plain.Application, Number: plain.Entity}
}

// EncodingScheme mirrors dis.EncodingScheme's tagged shape: class plus a
// class-dependent payload, per spec.md §4.C.
type EncodingScheme struct {
	Class            enumerations.EncodingClass
	TypeOrNrMessages UVINT16
	UserProtocolID   UVINT16
}

const encodingClassWidth = 2

func encodeEncodingScheme(e dis.EncodingScheme) EncodingScheme {
	return EncodingScheme{
		Class:            e.Class,
		TypeOrNrMessages: NewUVINT16(uint32(e.TypeOrNrMessages)),
		UserProtocolID:   NewUVINT16(uint32(e.UserProtocolID)),
	}
}

func (e EncodingScheme) decode() dis.EncodingScheme {
	return dis.EncodingScheme{
		Class:            e.Class,
		TypeOrNrMessages: uint16(e.TypeOrNrMessages.Value),
		UserProtocolID:   uint16(e.UserProtocolID.Value),
	}
}

func (e EncodingScheme) write(w *BitWriter) {
	w.WriteBits(uint64(e.Class.Into()), encodingClassWidth)
	e.TypeOrNrMessages.write(w)
	if e.Class != enumerations.EncodingClassDatabaseIndex {
		e.UserProtocolID.write(w)
	}
}

func readEncodingScheme(r *BitReader) (EncodingScheme, error) {
	rawClass, err := r.ReadBits(encodingClassWidth)
	if err != nil {
		return EncodingScheme{}, err
	}
	class := enumerations.EncodingClassFrom(uint8(rawClass))
	typeOrNr, err := readUVINT16(r)
	if err != nil {
		return EncodingScheme{}, err
	}
	e := EncodingScheme{Class: class, TypeOrNrMessages: typeOrNr}
	if class != enumerations.EncodingClassDatabaseIndex {
		userProto, err := readUVINT16(r)
		if err != nil {
			return EncodingScheme{}, err
		}
		e.UserProtocolID = userProto
	}
	return e, nil
}

// VariableDatum retains identifier, a bit length, and the value octets
// without DIS's word padding, per spec.md §4.C.
type VariableDatum struct {
	ID        UVINT32
	LengthBits uint32
	Value      []byte
}

const variableDatumLengthWidth = 16

func encodeVariableDatum(d dis.VariableDatum) VariableDatum {
	return VariableDatum{
		ID:         NewUVINT32(uint64(d.ID)),
		LengthBits: uint32(len(d.Value) * 8),
		Value:      append([]byte(nil), d.Value...),
	}
}

func (d VariableDatum) decode() dis.VariableDatum {
	return dis.VariableDatum{ID: uint32(d.ID.Value), Value: append([]byte(nil), d.Value...)}
}

func (d VariableDatum) write(w *BitWriter) {
	d.ID.write(w)
	w.WriteBits(uint64(d.LengthBits), variableDatumLengthWidth)
	for _, b := range d.Value {
		w.WriteBits(uint64(b), 8)
	}
}

func readVariableDatum(r *BitReader) (VariableDatum, error) {
	id, err := readUVINT32(r)
	if err != nil {
		return VariableDatum{}, err
	}
	lengthBits, err := r.ReadBits(variableDatumLengthWidth)
	if err != nil {
		return VariableDatum{}, err
	}
	octets := int(lengthBits+7) / 8
	value := make([]byte, octets)
	for i := 0; i < octets; i++ {
		b, err := r.ReadBits(8)
		if err != nil {
			return VariableDatum{}, err
		}
		value[i] = byte(b)
	}
	return VariableDatum{ID: id, LengthBits: uint32(lengthBits), Value: value}, nil
}

// identityCodec is the all-zero FieldCodec: it applies no scaling, but
// Encode still rounds each value to the nearest integer, so fields that use
// it keep whole units only.
var identityCodec = FieldCodec{}

func float32Bits(v float32) uint32 { return math.Float32bits(v) }
func float32FromBits(v uint32) float32 { return math.Float32frombits(v) }
