package dis

import (
	"encoding/binary"

	"github.com/siso-dis/cdis-gateway/internal/enumerations"
)

const removeEntityBodyLength = entityIdLength + entityIdLength + 4

// RemoveEntity requests that the receiving simulation application remove a
// previously created entity from the exercise, per original_source
// dis-rs/src/common/remove_entity/writer.rs (originating_id, receiving_id,
// request_id serialized in that order).
type RemoveEntity struct {
	OriginatingID EntityId
	ReceivingID   EntityId
	RequestID     uint32
}

func (r RemoveEntity) BodyLength() uint16            { return removeEntityBodyLength }
func (r RemoveEntity) BodyType() enumerations.PduType { return enumerations.PduTypeRemoveEntity }

func (r RemoveEntity) Originator() *EntityId { id := r.OriginatingID; return &id }
func (r RemoveEntity) Receiver() *EntityId   { id := r.ReceivingID; return &id }

func parseRemoveEntityBody(b []byte) (Body, error) {
	if len(b) < removeEntityBodyLength {
		return nil, ErrTruncated
	}
	var r RemoveEntity
	var err error
	offset := 0

	r.OriginatingID, err = parseEntityId(b[offset:])
	if err != nil {
		return nil, err
	}
	offset += entityIdLength

	r.ReceivingID, err = parseEntityId(b[offset:])
	if err != nil {
		return nil, err
	}
	offset += entityIdLength

	r.RequestID = binary.BigEndian.Uint32(b[offset : offset+4])
	return r, nil
}

func (r RemoveEntity) serialize(buf []byte) []byte {
	buf = r.OriginatingID.serialize(buf)
	buf = r.ReceivingID.serialize(buf)
	var tmp4 [4]byte
	binary.BigEndian.PutUint32(tmp4[:], r.RequestID)
	return append(buf, tmp4[:]...)
}
