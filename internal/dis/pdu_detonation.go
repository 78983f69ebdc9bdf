package dis

import (
	"github.com/siso-dis/cdis-gateway/internal/enumerations"
)

// Detonation reports a munition detonation or non-munition explosive event.
type Detonation struct {
	FiringEntityID              EntityId
	TargetEntityID              EntityId
	MunitionExpendableID        EntityId
	EventID                     EventId
	Velocity                    VectorF32
	Location                    Location
	Descriptor                  BurstDescriptor
	LocationInEntityCoordinates VectorF32
	DetonationResult            uint8
	ArticulationParameters      []ArticulationParameter
}

const detonationFixedLength = entityIdLength*4 + vectorF32Length + locationLength +
	burstDescriptorLength + vectorF32Length + 1 + 1 + 2

func (d Detonation) BodyLength() uint16 {
	return uint16(detonationFixedLength + len(d.ArticulationParameters)*articulationParameterLength)
}

func (d Detonation) BodyType() enumerations.PduType { return enumerations.PduTypeDetonation }

func (d Detonation) Originator() *EntityId { id := d.FiringEntityID; return &id }
func (d Detonation) Receiver() *EntityId   { id := d.TargetEntityID; return &id }

func parseDetonationBody(b []byte) (Body, error) {
	if len(b) < detonationFixedLength {
		return nil, ErrTruncated
	}
	var d Detonation
	var err error
	offset := 0

	d.FiringEntityID, err = parseEntityId(b[offset:])
	if err != nil {
		return nil, err
	}
	offset += entityIdLength

	d.TargetEntityID, err = parseEntityId(b[offset:])
	if err != nil {
		return nil, err
	}
	offset += entityIdLength

	d.MunitionExpendableID, err = parseEntityId(b[offset:])
	if err != nil {
		return nil, err
	}
	offset += entityIdLength

	d.EventID, err = parseEventId(b[offset:])
	if err != nil {
		return nil, err
	}
	offset += entityIdLength

	d.Velocity, err = parseVectorF32(b[offset:])
	if err != nil {
		return nil, err
	}
	offset += vectorF32Length

	d.Location, err = parseLocation(b[offset:])
	if err != nil {
		return nil, err
	}
	offset += locationLength

	d.Descriptor, err = parseBurstDescriptor(b[offset:])
	if err != nil {
		return nil, err
	}
	offset += burstDescriptorLength

	d.LocationInEntityCoordinates, err = parseVectorF32(b[offset:])
	if err != nil {
		return nil, err
	}
	offset += vectorF32Length

	d.DetonationResult = b[offset]
	offset++
	numArticulationParameters := int(b[offset])
	offset++
	offset += 2 // padding

	needed := numArticulationParameters * articulationParameterLength
	if len(b)-offset < needed {
		return nil, ErrTruncated
	}
	if numArticulationParameters > 0 {
		d.ArticulationParameters = make([]ArticulationParameter, numArticulationParameters)
	}
	for i := 0; i < numArticulationParameters; i++ {
		ap, err := parseArticulationParameter(b[offset:])
		if err != nil {
			return nil, err
		}
		d.ArticulationParameters[i] = ap
		offset += articulationParameterLength
	}
	return d, nil
}

func (d Detonation) serialize(buf []byte) []byte {
	buf = d.FiringEntityID.serialize(buf)
	buf = d.TargetEntityID.serialize(buf)
	buf = d.MunitionExpendableID.serialize(buf)
	buf = d.EventID.serialize(buf)
	buf = d.Velocity.serialize(buf)
	buf = d.Location.serialize(buf)
	buf = d.Descriptor.serialize(buf)
	buf = d.LocationInEntityCoordinates.serialize(buf)
	buf = append(buf, d.DetonationResult, uint8(len(d.ArticulationParameters)), 0, 0)
	for _, ap := range d.ArticulationParameters {
		buf = ap.serialize(buf)
	}
	return buf
}
