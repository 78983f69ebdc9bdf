package dis

import "github.com/siso-dis/cdis-gateway/internal/enumerations"

const isGroupOfFixedLength = entityIdLength + 1 + 1 + 2

// isGroupOfEntityDescriptionLength covers one grouped-entity's identifier
// plus its 10-octet, group-type-specific description record.
const isGroupOfEntityDescriptionLength = entityIdLength + 10

// IsGroupOfEntityDescription describes one member of a grouped-entity PDU.
// Description is opaque here: its interpretation depends on
// GroupedEntityCategory and is not needed for byte-exact round-tripping.
type IsGroupOfEntityDescription struct {
	EntityID    EntityId
	Description [10]byte
}

func parseIsGroupOfEntityDescription(b []byte) (IsGroupOfEntityDescription, error) {
	if len(b) < isGroupOfEntityDescriptionLength {
		return IsGroupOfEntityDescription{}, ErrTruncated
	}
	id, err := parseEntityId(b)
	if err != nil {
		return IsGroupOfEntityDescription{}, err
	}
	var d IsGroupOfEntityDescription
	d.EntityID = id
	copy(d.Description[:], b[entityIdLength:isGroupOfEntityDescriptionLength])
	return d, nil
}

func (d IsGroupOfEntityDescription) serialize(buf []byte) []byte {
	buf = d.EntityID.serialize(buf)
	return append(buf, d.Description[:]...)
}

// IsGroupOf reports the aggregate behavior of a set of entities represented
// by a single group entity, per spec.md's enumeration of DIS Entity
// Management family PDUs.
type IsGroupOf struct {
	GroupEntityID         EntityId
	GroupedEntityCategory uint8
	Descriptions          []IsGroupOfEntityDescription
}

func (g IsGroupOf) BodyLength() uint16 {
	return uint16(isGroupOfFixedLength + len(g.Descriptions)*isGroupOfEntityDescriptionLength)
}

func (g IsGroupOf) BodyType() enumerations.PduType { return enumerations.PduTypeIsGroupOf }

func (g IsGroupOf) Originator() *EntityId { id := g.GroupEntityID; return &id }
func (g IsGroupOf) Receiver() *EntityId   { return nil }

func parseIsGroupOfBody(b []byte) (Body, error) {
	if len(b) < isGroupOfFixedLength {
		return nil, ErrTruncated
	}
	var g IsGroupOf
	var err error
	offset := 0

	g.GroupEntityID, err = parseEntityId(b[offset:])
	if err != nil {
		return nil, err
	}
	offset += entityIdLength

	g.GroupedEntityCategory = b[offset]
	offset++
	numDescriptions := int(b[offset])
	offset++
	offset += 2 // padding

	needed := numDescriptions * isGroupOfEntityDescriptionLength
	if len(b)-offset < needed {
		return nil, ErrTruncated
	}
	g.Descriptions = make([]IsGroupOfEntityDescription, numDescriptions)
	for i := 0; i < numDescriptions; i++ {
		d, err := parseIsGroupOfEntityDescription(b[offset:])
		if err != nil {
			return nil, err
		}
		g.Descriptions[i] = d
		offset += isGroupOfEntityDescriptionLength
	}
	return g, nil
}

func (g IsGroupOf) serialize(buf []byte) []byte {
	buf = g.GroupEntityID.serialize(buf)
	buf = append(buf, g.GroupedEntityCategory, uint8(len(g.Descriptions)), 0, 0)
	for _, d := range g.Descriptions {
		buf = d.serialize(buf)
	}
	return buf
}
