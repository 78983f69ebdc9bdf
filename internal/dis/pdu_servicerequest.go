package dis

import (
	"github.com/siso-dis/cdis-gateway/internal/enumerations"
)

const serviceRequestFixedLength = entityIdLength + entityIdLength + 1 + 1 + 2

// ServiceRequest asks another entity to provide fuel, ammunition, repair,
// or other support, per original_source dis-rs/src/common/service_request
// /writer.rs.
type ServiceRequest struct {
	RequestingID          EntityId
	ServicingID           EntityId
	ServiceTypeRequested  uint8
	Supplies              []SupplyQuantity
}

func (s ServiceRequest) BodyLength() uint16 {
	return uint16(serviceRequestFixedLength + len(s.Supplies)*supplyQuantityLength)
}

func (s ServiceRequest) BodyType() enumerations.PduType { return enumerations.PduTypeServiceRequest }

func (s ServiceRequest) Originator() *EntityId { id := s.RequestingID; return &id }
func (s ServiceRequest) Receiver() *EntityId   { id := s.ServicingID; return &id }

func parseServiceRequestBody(b []byte) (Body, error) {
	if len(b) < serviceRequestFixedLength {
		return nil, ErrTruncated
	}
	var s ServiceRequest
	var err error
	offset := 0

	s.RequestingID, err = parseEntityId(b[offset:])
	if err != nil {
		return nil, err
	}
	offset += entityIdLength

	s.ServicingID, err = parseEntityId(b[offset:])
	if err != nil {
		return nil, err
	}
	offset += entityIdLength

	s.ServiceTypeRequested = b[offset]
	offset++
	numSupplies := int(b[offset])
	offset++
	offset += 2 // padding

	needed := numSupplies * supplyQuantityLength
	if len(b)-offset < needed {
		return nil, ErrTruncated
	}
	s.Supplies = make([]SupplyQuantity, numSupplies)
	for i := 0; i < numSupplies; i++ {
		sq, err := parseSupplyQuantity(b[offset:])
		if err != nil {
			return nil, err
		}
		s.Supplies[i] = sq
		offset += supplyQuantityLength
	}
	return s, nil
}

func (s ServiceRequest) serialize(buf []byte) []byte {
	buf = s.RequestingID.serialize(buf)
	buf = s.ServicingID.serialize(buf)
	buf = append(buf, s.ServiceTypeRequested, uint8(len(s.Supplies)), 0, 0)
	for _, sq := range s.Supplies {
		buf = sq.serialize(buf)
	}
	return buf
}
