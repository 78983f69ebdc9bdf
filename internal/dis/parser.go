package dis

import (
	"github.com/siso-dis/cdis-gateway/internal/enumerations"
)

// Parse consumes exactly one PDU from bytes and returns the remainder, per
// spec.md §4.B. It is header-first: it reads the 12-octet header, validates
// the declared length against the buffer size, then dispatches on PduType
// to a body parser. An unknown PduType yields an Other body, extracting
// origin/receiver from the fixed-position table when the type is known to
// carry them.
func Parse(b []byte) (Pdu, []byte, error) {
	header, err := parseHeader(b)
	if err != nil {
		return Pdu{}, nil, err
	}
	if header.ProtocolVersion != ProtocolVersionOther &&
		header.ProtocolVersion != ProtocolVersion6 &&
		header.ProtocolVersion != ProtocolVersion7 {
		return Pdu{}, nil, ErrUnsupportedVersion
	}
	declared := int(header.Length)
	if declared < HeaderLength || declared > len(b) {
		return Pdu{}, nil, ErrTruncated
	}
	bodyBytes := b[HeaderLength:declared]
	remainder := b[declared:]

	pduType := enumerations.PduTypeFrom(header.PduType)
	if parse, ok := bodyParsers[pduType]; ok {
		body, err := parse(bodyBytes)
		if err != nil {
			return Pdu{}, nil, &MalformedBodyError{Type: pduType, Offset: HeaderLength, Err: err}
		}
		return Pdu{Header: header, Body: body}, remainder, nil
	}

	other := Other{ActualType: pduType, RawBytes: append([]byte(nil), bodyBytes...)}
	if offsets, ok := originReceiverOffsets[pduType]; ok {
		if id, err := parseEntityId(bodyBytes[offsets.Origin:]); err == nil {
			other.OriginatingEntityID = &id
		}
		if id, err := parseEntityId(bodyBytes[offsets.Receiver:]); err == nil {
			other.ReceivingEntityID = &id
		}
	}
	return Pdu{Header: header, Body: other}, remainder, nil
}

// ParseMany greedily parses every concatenated PDU in a datagram, per
// spec.md §4.B and the Concatenation law (S6/rule 6). It stops at the first
// unrecoverable header error and returns everything parsed so far, the
// unparsed remainder, and the errors encountered.
func ParseMany(b []byte) (pdus []Pdu, remainder []byte, errs []error) {
	remainder = b
	for len(remainder) > 0 {
		pdu, rest, err := Parse(remainder)
		if err != nil {
			errs = append(errs, err)
			break
		}
		pdus = append(pdus, pdu)
		remainder = rest
	}
	return pdus, remainder, errs
}
