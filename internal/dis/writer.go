package dis

// Serialize appends pdu's wire representation to out and returns the
// extended slice along with the number of octets written, per spec.md
// §4.B. BodyLength(pdu.Body) always matches what this writes for the body
// portion, satisfying the length-agreement law (rule 4).
func Serialize(pdu Pdu, out []byte) ([]byte, int, error) {
	start := len(out)
	bodyLen := pdu.Body.BodyLength()
	header := pdu.Header
	header.PduType = uint8(pdu.Body.BodyType())
	header.Length = HeaderLength + bodyLen

	out = header.serialize(out)
	out = serializeBody(pdu.Body, out)

	written := len(out) - start
	if written != int(header.Length) {
		return out, written, ErrUnalignable
	}
	return out, written, nil
}

// SerializeMany serializes a sequence of PDUs back to back into a single
// datagram, the inverse of ParseMany.
func SerializeMany(pdus []Pdu, out []byte) ([]byte, error) {
	for _, pdu := range pdus {
		var err error
		out, _, err = Serialize(pdu, out)
		if err != nil {
			return out, err
		}
	}
	return out, nil
}

func serializeBody(body Body, out []byte) []byte {
	switch b := body.(type) {
	case EntityState:
		return b.serialize(out)
	case Fire:
		return b.serialize(out)
	case Detonation:
		return b.serialize(out)
	case Comment:
		return b.serialize(out)
	case Signal:
		return b.serialize(out)
	case Transmitter:
		return b.serialize(out)
	case Receiver:
		return b.serialize(out)
	case ServiceRequest:
		return b.serialize(out)
	case ResupplyOffer:
		return b.serialize(out)
	case ResupplyReceived:
		return b.serialize(out)
	case ResupplyCancel:
		return b.serialize(out)
	case IsGroupOf:
		return b.serialize(out)
	case RemoveEntity:
		return b.serialize(out)
	case Other:
		return b.serialize(out)
	default:
		return out
	}
}
