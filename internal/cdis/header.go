package cdis

import "github.com/siso-dis/cdis-gateway/internal/enumerations"

// ProtocolVersion is C-DIS's 2-bit header field, distinct from the DIS
// header's 8-bit ProtocolVersion.
type ProtocolVersion uint8

const protocolVersionWidth = 2

// Header is the C-DIS datagram header: version, a full-update-vs
// -differential flag, and a count of concatenated PDUs, per spec.md §3.2.
type Header struct {
	ProtocolVersion ProtocolVersion
	FullUpdate      bool
	PduCount        uint8
}

const pduCountWidth = 8

func (h Header) write(w *BitWriter) {
	w.WriteBits(uint64(h.ProtocolVersion), protocolVersionWidth)
	w.WriteBool(h.FullUpdate)
	w.WriteBits(uint64(h.PduCount), pduCountWidth)
}

func readHeader(r *BitReader) (Header, error) {
	version, err := r.ReadBits(protocolVersionWidth)
	if err != nil {
		return Header{}, err
	}
	full, err := r.ReadBool()
	if err != nil {
		return Header{}, err
	}
	count, err := r.ReadBits(pduCountWidth)
	if err != nil {
		return Header{}, err
	}
	return Header{ProtocolVersion: ProtocolVersion(version), FullUpdate: full, PduCount: uint8(count)}, nil
}

// pduTypeWidth and pduLengthWidth size the per-PDU C-DIS header: PduType
// (8 bits, reusing the DIS enumeration) plus a 16-bit bit length so a reader can skip an unrecognized
// body without decoding it.
const pduTypeWidth = 8
const pduLengthWidth = 16

type pduHeader struct {
	PduType   enumerations.PduType
	LengthBits uint16
}

func (h pduHeader) write(w *BitWriter) {
	w.WriteBits(uint64(h.PduType.Into()), pduTypeWidth)
	w.WriteBits(uint64(h.LengthBits), pduLengthWidth)
}

func readPduHeader(r *BitReader) (pduHeader, error) {
	rawType, err := r.ReadBits(pduTypeWidth)
	if err != nil {
		return pduHeader{}, err
	}
	length, err := r.ReadBits(pduLengthWidth)
	if err != nil {
		return pduHeader{}, err
	}
	return pduHeader{PduType: enumerations.PduTypeFrom(uint8(rawType)), LengthBits: uint16(length)}, nil
}
