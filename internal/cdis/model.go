package cdis

import "github.com/siso-dis/cdis-gateway/internal/enumerations"

// Body is implemented by every C-DIS PDU body variant.
type Body interface {
	PduType() enumerations.PduType
	write(w *BitWriter)
}

// Pdu is one C-DIS protocol data unit: a per-PDU header plus a body.
type Pdu struct {
	Header pduHeader
	Body   Body
}

type bodyReader func(r *BitReader) (Body, error)

var bodyReaders = map[enumerations.PduType]bodyReader{
	enumerations.PduTypeFire:          readFire,
	enumerations.PduTypeReceiver:      readReceiver,
	enumerations.PduTypeRemoveEntity:  readRemoveEntity,
}
