package dis

import (
	"encoding/binary"
	"math"

	"github.com/siso-dis/cdis-gateway/internal/enumerations"
)

const receiverBodyLength = entityIdLength + 2 + 2 + 2 + 4 + entityIdLength + 2

// Receiver describes the state of one radio receiver. It is the worked
// C-DIS translation example from spec.md §4.C and §8 scenario S2:
// ReceivedPower is lossy on the C-DIS side (rounded to the nearest int16).
type Receiver struct {
	RadioReferenceID            EntityId
	RadioNumber                 uint16
	ReceiverState               uint16
	ReceivedPower                float32
	TransmitterRadioReferenceID EntityId
	TransmitterRadioNumber      uint16
}

func (r Receiver) BodyLength() uint16 { return receiverBodyLength }

func (r Receiver) BodyType() enumerations.PduType { return enumerations.PduTypeReceiver }

func (r Receiver) Originator() *EntityId { id := r.RadioReferenceID; return &id }
func (r Receiver) Receiver() *EntityId   { id := r.TransmitterRadioReferenceID; return &id }

func parseReceiverBody(b []byte) (Body, error) {
	if len(b) < int(receiverBodyLength) {
		return nil, ErrTruncated
	}
	var r Receiver
	var err error
	offset := 0

	r.RadioReferenceID, err = parseEntityId(b[offset:])
	if err != nil {
		return nil, err
	}
	offset += entityIdLength

	r.RadioNumber = binary.BigEndian.Uint16(b[offset : offset+2])
	offset += 2
	r.ReceiverState = binary.BigEndian.Uint16(b[offset : offset+2])
	offset += 2
	offset += 2 // padding

	r.ReceivedPower = math.Float32frombits(binary.BigEndian.Uint32(b[offset : offset+4]))
	offset += 4

	r.TransmitterRadioReferenceID, err = parseEntityId(b[offset:])
	if err != nil {
		return nil, err
	}
	offset += entityIdLength

	r.TransmitterRadioNumber = binary.BigEndian.Uint16(b[offset : offset+2])

	return r, nil
}

func (r Receiver) serialize(buf []byte) []byte {
	buf = r.RadioReferenceID.serialize(buf)
	var tmp2 [2]byte
	binary.BigEndian.PutUint16(tmp2[:], r.RadioNumber)
	buf = append(buf, tmp2[:]...)
	binary.BigEndian.PutUint16(tmp2[:], r.ReceiverState)
	buf = append(buf, tmp2[:]...)
	buf = append(buf, 0, 0)
	var tmp4 [4]byte
	binary.BigEndian.PutUint32(tmp4[:], math.Float32bits(r.ReceivedPower))
	buf = append(buf, tmp4[:]...)
	buf = r.TransmitterRadioReferenceID.serialize(buf)
	binary.BigEndian.PutUint16(tmp2[:], r.TransmitterRadioNumber)
	buf = append(buf, tmp2[:]...)
	return buf
}
