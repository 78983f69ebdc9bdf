package dis

import (
	"encoding/binary"
	"math"

	"github.com/siso-dis/cdis-gateway/internal/enumerations"
)

const transmitterFixedLength = entityIdLength + 2 + entityTypeLength + 1 + 1 + 2 +
	locationLength + vectorF32Length + 8 + 4 + 4 + 8 + 2 + 2 + 1 + 3

// Transmitter describes the state of one radio transmitter, including the
// antenna placement and modulation parameters needed to reproduce its
// signal.
type Transmitter struct {
	EntityID                 EntityId
	RadioID                  uint16
	RadioEntityType          EntityType
	TransmitState            uint8
	InputSource              uint8
	AntennaLocation          Location
	RelativeAntennaLocation  VectorF32
	Frequency                uint64
	TransmitFrequencyBandwidth float32
	Power                    float32
	ModulationType           uint64
	CryptoSystem             uint16
	CryptoKeyID              uint16
	ModulationParameters     []byte
}

func (t Transmitter) BodyLength() uint16 {
	return uint16(transmitterFixedLength + paddedToWord(len(t.ModulationParameters)))
}

func (t Transmitter) BodyType() enumerations.PduType { return enumerations.PduTypeTransmitter }

func (t Transmitter) Originator() *EntityId { id := t.EntityID; return &id }
func (t Transmitter) Receiver() *EntityId   { return nil }

func parseTransmitterBody(b []byte) (Body, error) {
	if len(b) < transmitterFixedLength {
		return nil, ErrTruncated
	}
	var t Transmitter
	var err error
	offset := 0

	t.EntityID, err = parseEntityId(b[offset:])
	if err != nil {
		return nil, err
	}
	offset += entityIdLength

	t.RadioID = binary.BigEndian.Uint16(b[offset : offset+2])
	offset += 2

	t.RadioEntityType, err = parseEntityType(b[offset:])
	if err != nil {
		return nil, err
	}
	offset += entityTypeLength

	t.TransmitState = b[offset]
	offset++
	t.InputSource = b[offset]
	offset++
	offset += 2 // padding

	t.AntennaLocation, err = parseLocation(b[offset:])
	if err != nil {
		return nil, err
	}
	offset += locationLength

	t.RelativeAntennaLocation, err = parseVectorF32(b[offset:])
	if err != nil {
		return nil, err
	}
	offset += vectorF32Length

	t.Frequency = binary.BigEndian.Uint64(b[offset : offset+8])
	offset += 8

	t.TransmitFrequencyBandwidth = math.Float32frombits(binary.BigEndian.Uint32(b[offset : offset+4]))
	offset += 4

	t.Power = math.Float32frombits(binary.BigEndian.Uint32(b[offset : offset+4]))
	offset += 4

	t.ModulationType = binary.BigEndian.Uint64(b[offset : offset+8])
	offset += 8

	t.CryptoSystem = binary.BigEndian.Uint16(b[offset : offset+2])
	offset += 2
	t.CryptoKeyID = binary.BigEndian.Uint16(b[offset : offset+2])
	offset += 2

	modLength := int(b[offset])
	offset++
	offset += 3 // padding

	padded := paddedToWord(modLength)
	if len(b)-offset < padded {
		return nil, ErrTruncated
	}
	t.ModulationParameters = make([]byte, modLength)
	copy(t.ModulationParameters, b[offset:offset+modLength])
	return t, nil
}

func (t Transmitter) serialize(buf []byte) []byte {
	buf = t.EntityID.serialize(buf)
	var tmp2 [2]byte
	binary.BigEndian.PutUint16(tmp2[:], t.RadioID)
	buf = append(buf, tmp2[:]...)
	buf = t.RadioEntityType.serialize(buf)
	buf = append(buf, t.TransmitState, t.InputSource, 0, 0)
	buf = t.AntennaLocation.serialize(buf)
	buf = t.RelativeAntennaLocation.serialize(buf)
	var tmp8 [8]byte
	binary.BigEndian.PutUint64(tmp8[:], t.Frequency)
	buf = append(buf, tmp8[:]...)
	var tmp4 [4]byte
	binary.BigEndian.PutUint32(tmp4[:], math.Float32bits(t.TransmitFrequencyBandwidth))
	buf = append(buf, tmp4[:]...)
	binary.BigEndian.PutUint32(tmp4[:], math.Float32bits(t.Power))
	buf = append(buf, tmp4[:]...)
	binary.BigEndian.PutUint64(tmp8[:], t.ModulationType)
	buf = append(buf, tmp8[:]...)
	binary.BigEndian.PutUint16(tmp2[:], t.CryptoSystem)
	buf = append(buf, tmp2[:]...)
	binary.BigEndian.PutUint16(tmp2[:], t.CryptoKeyID)
	buf = append(buf, tmp2[:]...)
	buf = append(buf, uint8(len(t.ModulationParameters)), 0, 0, 0)
	buf = append(buf, t.ModulationParameters...)
	padding := paddedToWord(len(t.ModulationParameters)) - len(t.ModulationParameters)
	for i := 0; i < padding; i++ {
		buf = append(buf, 0)
	}
	return buf
}
