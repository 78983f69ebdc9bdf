package cdis

import (
	"github.com/siso-dis/cdis-gateway/internal/dis"
	"github.com/siso-dis/cdis-gateway/internal/enumerations"
)

// RemoveEntity is the C-DIS counterpart of dis.RemoveEntity, grounded on
// original_source/cdis-assemble/src/remove_entity/writer.rs's field order
// (originating_id, receiving_id, request_id).
type RemoveEntity struct {
	OriginatingID EntityId
	ReceivingID   EntityId
	RequestID     UVINT32
}

func (r RemoveEntity) PduType() enumerations.PduType { return enumerations.PduTypeRemoveEntity }

// EncodeRemoveEntity translates a DIS RemoveEntity body into its C-DIS
// counterpart.
func EncodeRemoveEntity(item dis.RemoveEntity) RemoveEntity {
	return RemoveEntity{
		OriginatingID: encodeEntityId(item.OriginatingID),
		ReceivingID:   encodeEntityId(item.ReceivingID),
		RequestID:     NewUVINT32(uint64(item.RequestID)),
	}
}

// Decode translates this C-DIS RemoveEntity body back into its DIS
// counterpart. This field set is fully lossless.
func (r RemoveEntity) Decode() dis.RemoveEntity {
	return dis.RemoveEntity{
		OriginatingID: r.OriginatingID.decode(),
		ReceivingID:   r.ReceivingID.decode(),
		RequestID:     uint32(r.RequestID.Value),
	}
}

func (r RemoveEntity) write(w *BitWriter) {
	r.OriginatingID.write(w)
	r.ReceivingID.write(w)
	r.RequestID.write(w)
}

func readRemoveEntity(r *BitReader) (Body, error) {
	var re RemoveEntity
	var err error
	if re.OriginatingID, err = readEntityId(r); err != nil {
		return nil, err
	}
	if re.ReceivingID, err = readEntityId(r); err != nil {
		return nil, err
	}
	if re.RequestID, err = readUVINT32(r); err != nil {
		return nil, err
	}
	return re, nil
}
