package dis

import (
	"encoding/binary"

	"github.com/siso-dis/cdis-gateway/internal/enumerations"
)

// DeadReckoningParameters describes how a receiver should extrapolate an
// entity's position between updates.
type DeadReckoningParameters struct {
	Algorithm          uint8
	OtherParameters    [15]byte
	LinearAcceleration VectorF32
	AngularVelocity    VectorF32
}

const deadReckoningParametersLength = 1 + 15 + vectorF32Length + vectorF32Length

func parseDeadReckoningParameters(b []byte) (DeadReckoningParameters, error) {
	if len(b) < deadReckoningParametersLength {
		return DeadReckoningParameters{}, ErrTruncated
	}
	var d DeadReckoningParameters
	d.Algorithm = b[0]
	copy(d.OtherParameters[:], b[1:16])
	var err error
	d.LinearAcceleration, err = parseVectorF32(b[16 : 16+vectorF32Length])
	if err != nil {
		return DeadReckoningParameters{}, err
	}
	d.AngularVelocity, err = parseVectorF32(b[16+vectorF32Length : 16+2*vectorF32Length])
	if err != nil {
		return DeadReckoningParameters{}, err
	}
	return d, nil
}

func (d DeadReckoningParameters) serialize(buf []byte) []byte {
	var head [16]byte
	head[0] = d.Algorithm
	copy(head[1:16], d.OtherParameters[:])
	buf = append(buf, head[:]...)
	buf = d.LinearAcceleration.serialize(buf)
	buf = d.AngularVelocity.serialize(buf)
	return buf
}

// EntityMarking is an 11-character marking string plus its character set.
type EntityMarking struct {
	CharacterSet uint8
	Characters   [11]byte
}

const entityMarkingLength = 1 + 11

func parseEntityMarking(b []byte) (EntityMarking, error) {
	if len(b) < entityMarkingLength {
		return EntityMarking{}, ErrTruncated
	}
	var m EntityMarking
	m.CharacterSet = b[0]
	copy(m.Characters[:], b[1:12])
	return m, nil
}

func (m EntityMarking) serialize(buf []byte) []byte {
	var tmp [entityMarkingLength]byte
	tmp[0] = m.CharacterSet
	copy(tmp[1:12], m.Characters[:])
	return append(buf, tmp[:]...)
}

// ArticulationParameter describes one articulated or attached part of an
// entity (turret traverse, wheel rotation, attached weapon station...).
type ArticulationParameter struct {
	ParameterTypeDesignator uint8
	ChangeIndicator         uint8
	PartAttachedTo          uint16
	ParameterType           uint32
	ParameterValue          uint64
}

const articulationParameterLength = 1 + 1 + 2 + 4 + 8

func parseArticulationParameter(b []byte) (ArticulationParameter, error) {
	if len(b) < articulationParameterLength {
		return ArticulationParameter{}, ErrTruncated
	}
	return ArticulationParameter{
		ParameterTypeDesignator: b[0],
		ChangeIndicator:         b[1],
		PartAttachedTo:          binary.BigEndian.Uint16(b[2:4]),
		ParameterType:           binary.BigEndian.Uint32(b[4:8]),
		ParameterValue:          binary.BigEndian.Uint64(b[8:16]),
	}, nil
}

func (a ArticulationParameter) serialize(buf []byte) []byte {
	var tmp [articulationParameterLength]byte
	tmp[0] = a.ParameterTypeDesignator
	tmp[1] = a.ChangeIndicator
	binary.BigEndian.PutUint16(tmp[2:4], a.PartAttachedTo)
	binary.BigEndian.PutUint32(tmp[4:8], a.ParameterType)
	binary.BigEndian.PutUint64(tmp[8:16], a.ParameterValue)
	return append(buf, tmp[:]...)
}

// EntityState is the most frequently sent DIS PDU: it carries an entity's
// full kinematic and descriptive state.
type EntityState struct {
	EntityID                EntityId
	ForceID                 enumerations.ForceID
	EntityType              EntityType
	AlternativeEntityType   EntityType
	EntityLinearVelocity    VectorF32
	EntityLocation          Location
	EntityOrientation       VectorF32 // Psi, Theta, Phi (radians)
	EntityAppearance        uint32
	DeadReckoningParameters DeadReckoningParameters
	EntityMarking           EntityMarking
	Capabilities            uint32
	ArticulationParameters  []ArticulationParameter
}

const entityStateFixedLength = entityIdLength + 1 + 1 + entityTypeLength*2 +
	vectorF32Length*2 + locationLength + 4 + deadReckoningParametersLength +
	entityMarkingLength + 4

func (e EntityState) BodyLength() uint16 {
	return uint16(entityStateFixedLength + len(e.ArticulationParameters)*articulationParameterLength)
}

func (e EntityState) BodyType() enumerations.PduType { return enumerations.PduTypeEntityState }

func (e EntityState) Originator() *EntityId { id := e.EntityID; return &id }
func (e EntityState) Receiver() *EntityId   { return nil }

func parseEntityStateBody(b []byte) (Body, error) {
	if len(b) < entityStateFixedLength {
		return nil, ErrTruncated
	}
	var e EntityState
	var err error
	offset := 0

	e.EntityID, err = parseEntityId(b[offset:])
	if err != nil {
		return nil, err
	}
	offset += entityIdLength

	e.ForceID = enumerations.ForceIDFrom(b[offset])
	offset++
	numArticulationParameters := int(b[offset])
	offset++

	e.EntityType, err = parseEntityType(b[offset:])
	if err != nil {
		return nil, err
	}
	offset += entityTypeLength

	e.AlternativeEntityType, err = parseEntityType(b[offset:])
	if err != nil {
		return nil, err
	}
	offset += entityTypeLength

	e.EntityLinearVelocity, err = parseVectorF32(b[offset:])
	if err != nil {
		return nil, err
	}
	offset += vectorF32Length

	e.EntityLocation, err = parseLocation(b[offset:])
	if err != nil {
		return nil, err
	}
	offset += locationLength

	e.EntityOrientation, err = parseVectorF32(b[offset:])
	if err != nil {
		return nil, err
	}
	offset += vectorF32Length

	e.EntityAppearance = binary.BigEndian.Uint32(b[offset : offset+4])
	offset += 4

	e.DeadReckoningParameters, err = parseDeadReckoningParameters(b[offset:])
	if err != nil {
		return nil, err
	}
	offset += deadReckoningParametersLength

	e.EntityMarking, err = parseEntityMarking(b[offset:])
	if err != nil {
		return nil, err
	}
	offset += entityMarkingLength

	e.Capabilities = binary.BigEndian.Uint32(b[offset : offset+4])
	offset += 4

	needed := numArticulationParameters * articulationParameterLength
	if len(b)-offset < needed {
		return nil, ErrTruncated
	}
	e.ArticulationParameters = make([]ArticulationParameter, numArticulationParameters)
	for i := 0; i < numArticulationParameters; i++ {
		ap, err := parseArticulationParameter(b[offset:])
		if err != nil {
			return nil, err
		}
		e.ArticulationParameters[i] = ap
		offset += articulationParameterLength
	}
	return e, nil
}

func (e EntityState) serialize(buf []byte) []byte {
	buf = e.EntityID.serialize(buf)
	buf = append(buf, e.ForceID.Into(), uint8(len(e.ArticulationParameters)))
	buf = e.EntityType.serialize(buf)
	buf = e.AlternativeEntityType.serialize(buf)
	buf = e.EntityLinearVelocity.serialize(buf)
	buf = e.EntityLocation.serialize(buf)
	buf = e.EntityOrientation.serialize(buf)
	var appearance [4]byte
	binary.BigEndian.PutUint32(appearance[:], e.EntityAppearance)
	buf = append(buf, appearance[:]...)
	buf = e.DeadReckoningParameters.serialize(buf)
	buf = e.EntityMarking.serialize(buf)
	var capabilities [4]byte
	binary.BigEndian.PutUint32(capabilities[:], e.Capabilities)
	buf = append(buf, capabilities[:]...)
	for _, ap := range e.ArticulationParameters {
		buf = ap.serialize(buf)
	}
	return buf
}
