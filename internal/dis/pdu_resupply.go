package dis

import "github.com/siso-dis/cdis-gateway/internal/enumerations"

const resupplyFixedLength = entityIdLength + entityIdLength + 1 + 3

// ResupplyOffer is sent by a service to advertise supplies it can provide,
// per original_source dis-rs/src/common/resupply_received/mod.rs (Offer and
// Received share the same wire shape in the original standard).
type ResupplyOffer struct {
	RequestingID EntityId
	ServicingID  EntityId
	Supplies     []SupplyQuantity
}

func (r ResupplyOffer) BodyLength() uint16 {
	return uint16(resupplyFixedLength + len(r.Supplies)*supplyQuantityLength)
}
func (r ResupplyOffer) BodyType() enumerations.PduType { return enumerations.PduTypeResupplyOffer }
func (r ResupplyOffer) Originator() *EntityId          { id := r.RequestingID; return &id }
func (r ResupplyOffer) Receiver() *EntityId            { id := r.ServicingID; return &id }

func parseResupplyOfferBody(b []byte) (Body, error) {
	requestingID, servicingID, supplies, err := parseResupplyShape(b)
	if err != nil {
		return nil, err
	}
	return ResupplyOffer{RequestingID: requestingID, ServicingID: servicingID, Supplies: supplies}, nil
}

func (r ResupplyOffer) serialize(buf []byte) []byte {
	return serializeResupplyShape(r.RequestingID, r.ServicingID, r.Supplies, buf)
}

// ResupplyReceived is sent by a requester to confirm supplies actually
// received, which may differ from what was offered.
type ResupplyReceived struct {
	RequestingID EntityId
	ServicingID  EntityId
	Supplies     []SupplyQuantity
}

func (r ResupplyReceived) BodyLength() uint16 {
	return uint16(resupplyFixedLength + len(r.Supplies)*supplyQuantityLength)
}
func (r ResupplyReceived) BodyType() enumerations.PduType {
	return enumerations.PduTypeResupplyReceived
}
func (r ResupplyReceived) Originator() *EntityId { id := r.RequestingID; return &id }
func (r ResupplyReceived) Receiver() *EntityId   { id := r.ServicingID; return &id }

func parseResupplyReceivedBody(b []byte) (Body, error) {
	requestingID, servicingID, supplies, err := parseResupplyShape(b)
	if err != nil {
		return nil, err
	}
	return ResupplyReceived{RequestingID: requestingID, ServicingID: servicingID, Supplies: supplies}, nil
}

func (r ResupplyReceived) serialize(buf []byte) []byte {
	return serializeResupplyShape(r.RequestingID, r.ServicingID, r.Supplies, buf)
}

// ResupplyCancel terminates a pending resupply with no supply payload.
type ResupplyCancel struct {
	RequestingID EntityId
	ServicingID  EntityId
}

func (r ResupplyCancel) BodyLength() uint16            { return entityIdLength * 2 }
func (r ResupplyCancel) BodyType() enumerations.PduType { return enumerations.PduTypeResupplyCancel }
func (r ResupplyCancel) Originator() *EntityId          { id := r.RequestingID; return &id }
func (r ResupplyCancel) Receiver() *EntityId            { id := r.ServicingID; return &id }

func parseResupplyCancelBody(b []byte) (Body, error) {
	if len(b) < entityIdLength*2 {
		return nil, ErrTruncated
	}
	requestingID, err := parseEntityId(b[0:])
	if err != nil {
		return nil, err
	}
	servicingID, err := parseEntityId(b[entityIdLength:])
	if err != nil {
		return nil, err
	}
	return ResupplyCancel{RequestingID: requestingID, ServicingID: servicingID}, nil
}

func (r ResupplyCancel) serialize(buf []byte) []byte {
	buf = r.RequestingID.serialize(buf)
	buf = r.ServicingID.serialize(buf)
	return buf
}

func parseResupplyShape(b []byte) (requestingID, servicingID EntityId, supplies []SupplyQuantity, err error) {
	if len(b) < resupplyFixedLength {
		return EntityId{}, EntityId{}, nil, ErrTruncated
	}
	offset := 0
	requestingID, err = parseEntityId(b[offset:])
	if err != nil {
		return
	}
	offset += entityIdLength
	servicingID, err = parseEntityId(b[offset:])
	if err != nil {
		return
	}
	offset += entityIdLength
	numSupplies := int(b[offset])
	offset += 4 // count byte + 3 padding

	needed := numSupplies * supplyQuantityLength
	if len(b)-offset < needed {
		err = ErrTruncated
		return
	}
	if numSupplies > 0 {
		supplies = make([]SupplyQuantity, numSupplies)
	}
	for i := 0; i < numSupplies; i++ {
		var sq SupplyQuantity
		sq, err = parseSupplyQuantity(b[offset:])
		if err != nil {
			return
		}
		supplies[i] = sq
		offset += supplyQuantityLength
	}
	return requestingID, servicingID, supplies, nil
}

func serializeResupplyShape(requestingID, servicingID EntityId, supplies []SupplyQuantity, buf []byte) []byte {
	buf = requestingID.serialize(buf)
	buf = servicingID.serialize(buf)
	buf = append(buf, uint8(len(supplies)), 0, 0, 0)
	for _, sq := range supplies {
		buf = sq.serialize(buf)
	}
	return buf
}
