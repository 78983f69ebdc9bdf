package cdis

import "github.com/siso-dis/cdis-gateway/internal/enumerations"

// Passthrough carries an unsupported DIS PduType's raw octets unchanged, the
// policy option named in spec.md §4.C and §8 scenario S4: "forward it
// unchanged in a C-DIS Passthrough envelope containing the raw octets."
type Passthrough struct {
	ActualType enumerations.PduType
	RawBytes   []byte
}

func (p Passthrough) PduType() enumerations.PduType { return p.ActualType }

const passthroughLengthWidth = 16

func (p Passthrough) write(w *BitWriter) {
	w.WriteBits(uint64(len(p.RawBytes)), passthroughLengthWidth)
	for _, b := range p.RawBytes {
		w.WriteBits(uint64(b), 8)
	}
}

func readPassthrough(actualType enumerations.PduType, r *BitReader) (Body, error) {
	octets, err := r.ReadBits(passthroughLengthWidth)
	if err != nil {
		return nil, err
	}
	raw := make([]byte, octets)
	for i := range raw {
		b, err := r.ReadBits(8)
		if err != nil {
			return nil, err
		}
		raw[i] = byte(b)
	}
	return Passthrough{ActualType: actualType, RawBytes: raw}, nil
}
