package dis

import (
	"encoding/binary"

	"github.com/siso-dis/cdis-gateway/internal/enumerations"
)

// baseCommentBodyLength is OriginatingID(6) + ReceivingID(6) +
// NumberOfFixedDatumRecords(4, always 0 for Comment) +
// NumberOfVariableDatumRecords(4), per spec.md §8 scenario S3.
const baseCommentBodyLength = entityIdLength + entityIdLength + 4 + 4

// Comment carries free-form variable datum records between two entities,
// per spec.md §8 scenario S3 (padding law).
type Comment struct {
	OriginatingID        EntityId
	ReceivingID          EntityId
	VariableDatumRecords []VariableDatum
}

func (c Comment) BodyLength() uint16 {
	total := baseCommentBodyLength
	for _, d := range c.VariableDatumRecords {
		total += d.paddedLength()
	}
	return uint16(total)
}

func (c Comment) BodyType() enumerations.PduType { return enumerations.PduTypeComment }

func (c Comment) Originator() *EntityId { id := c.OriginatingID; return &id }
func (c Comment) Receiver() *EntityId   { id := c.ReceivingID; return &id }

func parseCommentBody(b []byte) (Body, error) {
	if len(b) < baseCommentBodyLength {
		return nil, ErrTruncated
	}
	var c Comment
	var err error
	offset := 0

	c.OriginatingID, err = parseEntityId(b[offset:])
	if err != nil {
		return nil, err
	}
	offset += entityIdLength

	c.ReceivingID, err = parseEntityId(b[offset:])
	if err != nil {
		return nil, err
	}
	offset += entityIdLength

	offset += 4 // NumberOfFixedDatumRecords, always 0
	numVariable := int(binary.BigEndian.Uint32(b[offset : offset+4]))
	offset += 4

	if numVariable < 0 || numVariable > (len(b)-offset)/baseVariableDatumLength {
		return nil, ErrTruncated
	}
	c.VariableDatumRecords = make([]VariableDatum, 0, numVariable)
	for i := 0; i < numVariable; i++ {
		if offset >= len(b) {
			return nil, ErrTruncated
		}
		datum, n, err := parseVariableDatum(b[offset:])
		if err != nil {
			return nil, err
		}
		c.VariableDatumRecords = append(c.VariableDatumRecords, datum)
		offset += n
	}
	return c, nil
}

func (c Comment) serialize(buf []byte) []byte {
	buf = c.OriginatingID.serialize(buf)
	buf = c.ReceivingID.serialize(buf)
	var tmp [8]byte
	binary.BigEndian.PutUint32(tmp[0:4], 0)
	binary.BigEndian.PutUint32(tmp[4:8], uint32(len(c.VariableDatumRecords)))
	buf = append(buf, tmp[:]...)
	for _, d := range c.VariableDatumRecords {
		buf = d.serialize(buf)
	}
	return buf
}
