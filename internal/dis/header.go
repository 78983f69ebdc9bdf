package dis

import "encoding/binary"

// HeaderLength is the fixed size, in octets, of a DIS v6/v7 PDU header.
const HeaderLength = 12

// ProtocolVersion distinguishes DIS v6 from v7; the wire encoding and header
// shape are otherwise identical except for the PduStatus octet's presence.
type ProtocolVersion uint8

const (
	ProtocolVersionOther ProtocolVersion = 0
	ProtocolVersion6     ProtocolVersion = 6
	ProtocolVersion7     ProtocolVersion = 7
)

// Header is the 12-octet DIS PDU header common to every body variant, per
// spec.md §3.2.
type Header struct {
	ProtocolVersion ProtocolVersion
	ExerciseID      uint8
	PduType         uint8
	ProtocolFamily  uint8
	// Timestamp is the raw 32-bit DIS timestamp: the low bit selects
	// absolute (1) vs relative (0) timing, the remaining 31 bits are ticks.
	Timestamp uint32
	Length    uint16
	// PduStatus is only meaningful, and only serialized in place of the
	// first of the two padding octets (octet 10), for ProtocolVersion7.
	PduStatus uint8
}

// IsAbsoluteTimestamp reports the DIS timestamp's mode bit.
func (h Header) IsAbsoluteTimestamp() bool {
	return h.Timestamp&0x1 == 1
}

// TimestampTicks returns the 31-bit tick count, discarding the mode bit.
func (h Header) TimestampTicks() uint32 {
	return h.Timestamp >> 1
}

func parseHeader(b []byte) (Header, error) {
	if len(b) < HeaderLength {
		return Header{}, ErrTruncated
	}
	version := ProtocolVersion(b[0])
	h := Header{
		ProtocolVersion: version,
		ExerciseID:      b[1],
		PduType:         b[2],
		ProtocolFamily:  b[3],
		Timestamp:       binary.BigEndian.Uint32(b[4:8]),
		Length:          binary.BigEndian.Uint16(b[8:10]),
	}
	if version == ProtocolVersion7 {
		h.PduStatus = b[10]
	}
	if int(h.Length) > 0 && int(h.Length) < HeaderLength {
		return Header{}, ErrMalformedHeader
	}
	return h, nil
}

func (h Header) serialize(buf []byte) []byte {
	var tmp [HeaderLength]byte
	tmp[0] = uint8(h.ProtocolVersion)
	tmp[1] = h.ExerciseID
	tmp[2] = h.PduType
	tmp[3] = h.ProtocolFamily
	binary.BigEndian.PutUint32(tmp[4:8], h.Timestamp)
	binary.BigEndian.PutUint16(tmp[8:10], h.Length)
	if h.ProtocolVersion == ProtocolVersion7 {
		tmp[10] = h.PduStatus
	}
	return append(buf, tmp[:]...)
}
