package cdis

import (
	"github.com/siso-dis/cdis-gateway/internal/dis"
	"github.com/siso-dis/cdis-gateway/internal/enumerations"
)

// Receiver is the worked translation example from spec.md §4.C and §8
// scenario S2: ReceivedPower narrows from DIS's f32 to a 16-bit integer via
// FieldCodec.Encode, which resolves to round-half-away-from-zero (see
// DESIGN.md's note on S2's -42.5 -> -43 arithmetic).
type Receiver struct {
	RadioReferenceID            EntityId
	RadioNumber                 UVINT16
	ReceiverState               UVINT16
	ReceivedPower                int16
	TransmitterRadioReferenceID EntityId
	TransmitterRadioNumber      UVINT16
}

func (r Receiver) PduType() enumerations.PduType { return enumerations.PduTypeReceiver }

var receivedPowerCodec = FieldCodec{}

// EncodeReceiver translates a DIS Receiver body into its C-DIS counterpart.
func EncodeReceiver(item dis.Receiver) Receiver {
	return Receiver{
		RadioReferenceID:            encodeEntityId(item.RadioReferenceID),
		RadioNumber:                 NewUVINT16(uint32(item.RadioNumber)),
		ReceiverState:               NewUVINT16(uint32(item.ReceiverState)),
		ReceivedPower:               int16(receivedPowerCodec.Encode(float64(item.ReceivedPower))),
		TransmitterRadioReferenceID: encodeEntityId(item.TransmitterRadioReferenceID),
		TransmitterRadioNumber:      NewUVINT16(uint32(item.TransmitterRadioNumber)),
	}
}

// Decode widens ReceivedPower back to float32, lossy to the nearest whole
// unit per spec.md §8 rule 3.
func (r Receiver) Decode() dis.Receiver {
	return dis.Receiver{
		RadioReferenceID:            r.RadioReferenceID.decode(),
		RadioNumber:                 uint16(r.RadioNumber.Value),
		ReceiverState:               uint16(r.ReceiverState.Value),
		ReceivedPower:               float32(receivedPowerCodec.Decode(int64(r.ReceivedPower))),
		TransmitterRadioReferenceID: r.TransmitterRadioReferenceID.decode(),
		TransmitterRadioNumber:      uint16(r.TransmitterRadioNumber.Value),
	}
}

const receivedPowerWidth = 16

func (r Receiver) write(w *BitWriter) {
	r.RadioReferenceID.write(w)
	r.RadioNumber.write(w)
	r.ReceiverState.write(w)
	w.WriteBits(uint64(uint16(r.ReceivedPower)), receivedPowerWidth)
	r.TransmitterRadioReferenceID.write(w)
	r.TransmitterRadioNumber.write(w)
}

func readReceiver(r *BitReader) (Body, error) {
	var rec Receiver
	var err error
	if rec.RadioReferenceID, err = readEntityId(r); err != nil {
		return nil, err
	}
	if rec.RadioNumber, err = readUVINT16(r); err != nil {
		return nil, err
	}
	if rec.ReceiverState, err = readUVINT16(r); err != nil {
		return nil, err
	}
	raw, err := r.ReadBits(receivedPowerWidth)
	if err != nil {
		return nil, err
	}
	rec.ReceivedPower = int16(uint16(raw))
	if rec.TransmitterRadioReferenceID, err = readEntityId(r); err != nil {
		return nil, err
	}
	if rec.TransmitterRadioNumber, err = readUVINT16(r); err != nil {
		return nil, err
	}
	return rec, nil
}
