package cdis

import (
	"fmt"

	"github.com/siso-dis/cdis-gateway/internal/dis"
	"github.com/siso-dis/cdis-gateway/internal/enumerations"
)

// UnknownPolicy selects what happens during Encode to a DIS Other body, or
// any body without a C-DIS translator, per spec.md §4.C and §9's open
// question: forward it as a Passthrough, or drop it and let the caller count
// a rejection.
type UnknownPolicy int

const (
	PolicyPassthrough UnknownPolicy = iota
	PolicyDrop
)

// ErrDropped is returned by Encode when policy is PolicyDrop and the body
// has no C-DIS translator (a DIS Other or any other untranslated type).
var ErrDropped = fmt.Errorf("cdis: unsupported PDU dropped per policy")

// Encode translates a DIS Pdu into its C-DIS counterpart. PolicyDrop returns
// ErrDropped for any body this codec has no translator for; callers treat
// that as a no-op plus a rejected-count increment, per spec.md §8 S4.
func Encode(pdu dis.Pdu, policy UnknownPolicy) (Pdu, error) {
	switch body := pdu.Body.(type) {
	case dis.Fire:
		return wrap(EncodeFire(body)), nil
	case dis.Receiver:
		return wrap(EncodeReceiver(body)), nil
	case dis.RemoveEntity:
		return wrap(EncodeRemoveEntity(body)), nil
	case dis.Other:
		if policy == PolicyDrop {
			return Pdu{}, ErrDropped
		}
		return wrap(Passthrough{ActualType: body.ActualType, RawBytes: append([]byte(nil), body.RawBytes...)}), nil
	default:
		if policy == PolicyDrop {
			return Pdu{}, ErrDropped
		}
		return wrap(Passthrough{ActualType: pdu.Body.BodyType(), RawBytes: rawOctetsOf(pdu)}), nil
	}
}

// rawOctetsOf serializes a DIS body this codec has no dedicated translator
// for, so it can still travel as a Passthrough payload rather than being
// unconditionally dropped.
func rawOctetsOf(pdu dis.Pdu) []byte {
	out, _, err := dis.Serialize(pdu, nil)
	if err != nil {
		return nil
	}
	if len(out) < dis.HeaderLength {
		return nil
	}
	return out[dis.HeaderLength:]
}

func wrap(body Body) Pdu {
	return Pdu{Header: pduHeader{PduType: body.PduType()}, Body: body}
}

// Decode translates a C-DIS Pdu back into its DIS counterpart.
func Decode(pdu Pdu) (dis.Pdu, error) {
	switch body := pdu.Body.(type) {
	case Fire:
		return wrapDis(body.Decode(), enumerations.PduTypeFire), nil
	case Receiver:
		return wrapDis(body.Decode(), enumerations.PduTypeReceiver), nil
	case RemoveEntity:
		return wrapDis(body.Decode(), enumerations.PduTypeRemoveEntity), nil
	case Passthrough:
		other := dis.Other{ActualType: body.ActualType, RawBytes: append([]byte(nil), body.RawBytes...)}
		return wrapDis(other, body.ActualType), nil
	default:
		return dis.Pdu{}, fmt.Errorf("cdis: no decoder for C-DIS body type %T", pdu.Body)
	}
}

func wrapDis(body dis.Body, pduType enumerations.PduType) dis.Pdu {
	return dis.Pdu{
		Header: dis.Header{ProtocolVersion: dis.ProtocolVersion7, PduType: pduType.Into()},
		Body:   body,
	}
}

// Serialize writes pdu's per-PDU header and body into w. The header's
// LengthBits is computed from a dry-run write so a reader can skip the body
// without understanding it.
func Serialize(pdu Pdu, w *BitWriter) {
	dry := NewBitWriter(nil)
	pdu.Body.write(dry)
	header := pdu.Header
	header.LengthBits = uint16(dry.Cursor())
	header.write(w)
	pdu.Body.write(w)
}

// SerializeDatagram writes a C-DIS header followed by every pdu, aligning
// to an octet boundary at the end per spec.md §6.
func SerializeDatagram(header Header, pdus []Pdu) []byte {
	header.PduCount = uint8(len(pdus))
	w := NewBitWriter(nil)
	header.write(w)
	for _, pdu := range pdus {
		Serialize(pdu, w)
	}
	w.AlignToOctet()
	return w.Bytes()
}
