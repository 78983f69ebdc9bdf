package dis

import (
	"encoding/binary"

	"github.com/siso-dis/cdis-gateway/internal/enumerations"
)

const signalFixedLength = entityIdLength + 2 + encodingSchemeLength + 2 + 4 + 2 + 2

// Signal carries digitized voice, audio, or data traffic from a simulated
// radio, per spec.md §3.3 and §4.C's EncodingScheme translation example.
type Signal struct {
	EntityID       EntityId
	RadioID        uint16
	EncodingScheme EncodingScheme
	TDLType        uint16
	SampleRate     uint32
	Samples        uint16
	Data           []byte
}

func (s Signal) BodyLength() uint16 {
	return uint16(signalFixedLength + paddedToWord(len(s.Data)))
}

func (s Signal) BodyType() enumerations.PduType { return enumerations.PduTypeSignal }

func (s Signal) Originator() *EntityId { id := s.EntityID; return &id }
func (s Signal) Receiver() *EntityId   { return nil }

func parseSignalBody(b []byte) (Body, error) {
	if len(b) < signalFixedLength {
		return nil, ErrTruncated
	}
	var s Signal
	var err error
	offset := 0

	s.EntityID, err = parseEntityId(b[offset:])
	if err != nil {
		return nil, err
	}
	offset += entityIdLength

	s.RadioID = binary.BigEndian.Uint16(b[offset : offset+2])
	offset += 2

	s.EncodingScheme, err = parseEncodingScheme(b[offset:])
	if err != nil {
		return nil, err
	}
	offset += encodingSchemeLength

	s.TDLType = binary.BigEndian.Uint16(b[offset : offset+2])
	offset += 2

	s.SampleRate = binary.BigEndian.Uint32(b[offset : offset+4])
	offset += 4

	dataLengthBits := binary.BigEndian.Uint16(b[offset : offset+2])
	offset += 2

	s.Samples = binary.BigEndian.Uint16(b[offset : offset+2])
	offset += 2

	dataOctets := int(dataLengthBits+7) / 8
	padded := paddedToWord(dataOctets)
	if len(b)-offset < padded {
		return nil, ErrTruncated
	}
	s.Data = make([]byte, dataOctets)
	copy(s.Data, b[offset:offset+dataOctets])
	return s, nil
}

func (s Signal) serialize(buf []byte) []byte {
	buf = s.EntityID.serialize(buf)
	var tmp [2]byte
	binary.BigEndian.PutUint16(tmp[:], s.RadioID)
	buf = append(buf, tmp[:]...)
	buf = s.EncodingScheme.serialize(buf)
	binary.BigEndian.PutUint16(tmp[:], s.TDLType)
	buf = append(buf, tmp[:]...)
	var tmp4 [4]byte
	binary.BigEndian.PutUint32(tmp4[:], s.SampleRate)
	buf = append(buf, tmp4[:]...)
	binary.BigEndian.PutUint16(tmp[:], uint16(len(s.Data)*8))
	buf = append(buf, tmp[:]...)
	binary.BigEndian.PutUint16(tmp[:], s.Samples)
	buf = append(buf, tmp[:]...)
	buf = append(buf, s.Data...)
	padding := paddedToWord(len(s.Data)) - len(s.Data)
	for i := 0; i < padding; i++ {
		buf = append(buf, 0)
	}
	return buf
}
