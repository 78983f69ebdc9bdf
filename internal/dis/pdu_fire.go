package dis

import (
	"encoding/binary"
	"math"

	"github.com/siso-dis/cdis-gateway/internal/enumerations"
)

// Fire reports a weapon firing event, per spec.md §8 scenario S1.
type Fire struct {
	FiringEntityID       EntityId
	TargetEntityID       EntityId
	MunitionExpendableID EntityId
	EventID              EventId
	FireMissionIndex     uint32
	Location             Location
	Descriptor           BurstDescriptor
	Velocity             VectorF32
	Range                float32
}

const fireBodyLength = entityIdLength*3 + entityIdLength /* EventId is shaped like EntityId */ +
	4 + locationLength + burstDescriptorLength + vectorF32Length + 4

func (f Fire) BodyLength() uint16 { return fireBodyLength }

func (f Fire) BodyType() enumerations.PduType { return enumerations.PduTypeFire }

func (f Fire) Originator() *EntityId { id := f.FiringEntityID; return &id }
func (f Fire) Receiver() *EntityId   { id := f.TargetEntityID; return &id }

func parseFireBody(b []byte) (Body, error) {
	if len(b) < fireBodyLength {
		return nil, ErrTruncated
	}
	var f Fire
	var err error
	offset := 0

	f.FiringEntityID, err = parseEntityId(b[offset:])
	if err != nil {
		return nil, err
	}
	offset += entityIdLength

	f.TargetEntityID, err = parseEntityId(b[offset:])
	if err != nil {
		return nil, err
	}
	offset += entityIdLength

	f.MunitionExpendableID, err = parseEntityId(b[offset:])
	if err != nil {
		return nil, err
	}
	offset += entityIdLength

	f.EventID, err = parseEventId(b[offset:])
	if err != nil {
		return nil, err
	}
	offset += entityIdLength

	f.FireMissionIndex = binary.BigEndian.Uint32(b[offset : offset+4])
	offset += 4

	f.Location, err = parseLocation(b[offset:])
	if err != nil {
		return nil, err
	}
	offset += locationLength

	f.Descriptor, err = parseBurstDescriptor(b[offset:])
	if err != nil {
		return nil, err
	}
	offset += burstDescriptorLength

	f.Velocity, err = parseVectorF32(b[offset:])
	if err != nil {
		return nil, err
	}
	offset += vectorF32Length

	f.Range = math.Float32frombits(binary.BigEndian.Uint32(b[offset : offset+4]))

	return f, nil
}

func (f Fire) serialize(buf []byte) []byte {
	buf = f.FiringEntityID.serialize(buf)
	buf = f.TargetEntityID.serialize(buf)
	buf = f.MunitionExpendableID.serialize(buf)
	buf = f.EventID.serialize(buf)
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], f.FireMissionIndex)
	buf = append(buf, tmp[:]...)
	buf = f.Location.serialize(buf)
	buf = f.Descriptor.serialize(buf)
	buf = f.Velocity.serialize(buf)
	binary.BigEndian.PutUint32(tmp[:], math.Float32bits(f.Range))
	buf = append(buf, tmp[:]...)
	return buf
}
