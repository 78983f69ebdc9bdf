package cdis

import (
	"github.com/siso-dis/cdis-gateway/internal/dis"
	"github.com/siso-dis/cdis-gateway/internal/enumerations"
)

// locationCodec scales a geocentric meters coordinate by 1 (pass-through)
// but truncates to a 32-bit fixed-point representation, trading DIS's f64
// precision for C-DIS's bandwidth budget, per spec.md §3.1.
var locationCodec = FieldCodec{Scaling: 1}

// Fire is the C-DIS Fire PDU body: location, velocity and range are carried
// as 32-bit integers rounded to whole units instead of DIS's f64/f32
// records, and the burst descriptor's warhead, fuse, quantity and rate as
// UVINT16s, per spec.md §4.C.
type Fire struct {
	FiringEntityID       EntityId
	TargetEntityID       EntityId
	MunitionExpendableID EntityId
	EventID              EventId
	FireMissionIndex     UVINT32
	LocationX, LocationY, LocationZ int32
	Warhead, Fuse, Quantity, Rate   UVINT16
	VelocityX, VelocityY, VelocityZ int32
	Range                           int32
}

func (f Fire) PduType() enumerations.PduType { return enumerations.PduTypeFire }

// EncodeFire translates a DIS Fire body into its C-DIS counterpart.
func EncodeFire(item dis.Fire) Fire {
	return Fire{
		FiringEntityID:       encodeEntityId(item.FiringEntityID),
		TargetEntityID:       encodeEntityId(item.TargetEntityID),
		MunitionExpendableID: encodeEntityId(item.MunitionExpendableID),
		EventID:              encodeEventId(item.EventID),
		FireMissionIndex:     NewUVINT32(uint64(item.FireMissionIndex)),
		LocationX:            int32(locationCodec.Encode(item.Location.X)),
		LocationY:            int32(locationCodec.Encode(item.Location.Y)),
		LocationZ:            int32(locationCodec.Encode(item.Location.Z)),
		Warhead:              NewUVINT16(uint32(item.Descriptor.Warhead)),
		Fuse:                 NewUVINT16(uint32(item.Descriptor.Fuse)),
		Quantity:             NewUVINT16(uint32(item.Descriptor.Quantity)),
		Rate:                 NewUVINT16(uint32(item.Descriptor.Rate)),
		VelocityX:            int32(identityCodec.Encode(float64(item.Velocity.X))),
		VelocityY:            int32(identityCodec.Encode(float64(item.Velocity.Y))),
		VelocityZ:            int32(identityCodec.Encode(float64(item.Velocity.Z))),
		Range:                int32(identityCodec.Encode(float64(item.Range))),
	}
}

// Decode translates this C-DIS Fire body back into its DIS counterpart.
// The burst descriptor's munition EntityType is not carried, so it is not
// reconstructible from the compressed form alone (the standard
// assumes a receiver-side catalog lookup keyed by the munition EntityId) and
// is left zero-valued, matching the lossy-field allowance in spec.md §8
// rule 3.
func (f Fire) Decode() dis.Fire {
	return dis.Fire{
		FiringEntityID:       f.FiringEntityID.decode(),
		TargetEntityID:       f.TargetEntityID.decode(),
		MunitionExpendableID: f.MunitionExpendableID.decode(),
		EventID:              f.EventID.decodeEvent(),
		FireMissionIndex:     uint32(f.FireMissionIndex.Value),
		Location: dis.Location{
			X: locationCodec.Decode(int64(f.LocationX)),
			Y: locationCodec.Decode(int64(f.LocationY)),
			Z: locationCodec.Decode(int64(f.LocationZ)),
		},
		Descriptor: dis.BurstDescriptor{
			Warhead:  uint16(f.Warhead.Value),
			Fuse:     uint16(f.Fuse.Value),
			Quantity: uint16(f.Quantity.Value),
			Rate:     uint16(f.Rate.Value),
		},
		Velocity: dis.VectorF32{
			X: float32(identityCodec.Decode(int64(f.VelocityX))),
			Y: float32(identityCodec.Decode(int64(f.VelocityY))),
			Z: float32(identityCodec.Decode(int64(f.VelocityZ))),
		},
		Range: float32(identityCodec.Decode(int64(f.Range))),
	}
}

const (
	fireFixedValueWidth = 32
	fireQuantityWidth   = 16
)

func (f Fire) write(w *BitWriter) {
	f.FiringEntityID.write(w)
	f.TargetEntityID.write(w)
	f.MunitionExpendableID.write(w)
	f.EventID.write(w)
	f.FireMissionIndex.write(w)
	w.WriteBits(uint64(uint32(f.LocationX)), fireFixedValueWidth)
	w.WriteBits(uint64(uint32(f.LocationY)), fireFixedValueWidth)
	w.WriteBits(uint64(uint32(f.LocationZ)), fireFixedValueWidth)
	f.Warhead.write(w)
	f.Fuse.write(w)
	f.Quantity.write(w)
	f.Rate.write(w)
	w.WriteBits(uint64(uint32(f.VelocityX)), fireFixedValueWidth)
	w.WriteBits(uint64(uint32(f.VelocityY)), fireFixedValueWidth)
	w.WriteBits(uint64(uint32(f.VelocityZ)), fireFixedValueWidth)
	w.WriteBits(uint64(uint32(f.Range)), fireFixedValueWidth)
}

func readFire(r *BitReader) (Body, error) {
	var f Fire
	var err error
	if f.FiringEntityID, err = readEntityId(r); err != nil {
		return nil, err
	}
	if f.TargetEntityID, err = readEntityId(r); err != nil {
		return nil, err
	}
	if f.MunitionExpendableID, err = readEntityId(r); err != nil {
		return nil, err
	}
	if f.EventID, err = readEntityId(r); err != nil {
		return nil, err
	}
	if f.FireMissionIndex, err = readUVINT32(r); err != nil {
		return nil, err
	}
	if f.LocationX, err = readFixed32(r); err != nil {
		return nil, err
	}
	if f.LocationY, err = readFixed32(r); err != nil {
		return nil, err
	}
	if f.LocationZ, err = readFixed32(r); err != nil {
		return nil, err
	}
	if f.Warhead, err = readUVINT16(r); err != nil {
		return nil, err
	}
	if f.Fuse, err = readUVINT16(r); err != nil {
		return nil, err
	}
	if f.Quantity, err = readUVINT16(r); err != nil {
		return nil, err
	}
	if f.Rate, err = readUVINT16(r); err != nil {
		return nil, err
	}
	if f.VelocityX, err = readFixed32(r); err != nil {
		return nil, err
	}
	if f.VelocityY, err = readFixed32(r); err != nil {
		return nil, err
	}
	if f.VelocityZ, err = readFixed32(r); err != nil {
		return nil, err
	}
	if f.Range, err = readFixed32(r); err != nil {
		return nil, err
	}
	return f, nil
}

func readFixed32(r *BitReader) (int32, error) {
	v, err := r.ReadBits(fireFixedValueWidth)
	if err != nil {
		return 0, err
	}
	return int32(uint32(v)), nil
}
