package dis

import "github.com/siso-dis/cdis-gateway/internal/enumerations"

// This file holds pure convenience constructors for PDU bodies, in the
// functional-options style used elsewhere in the retrieval pack (see
// marmos91-dittofs's dittoserver_types_builder.go). Parse and Serialize
// never call into it: every body here is fully constructible from a
// literal value record.

// NewFire returns a Fire with the given options applied.
func NewFire(opts ...func(*Fire)) Fire {
	var f Fire
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

func WithFiringEntityID(id EntityId) func(*Fire) {
	return func(f *Fire) { f.FiringEntityID = id }
}

func WithTargetEntityID(id EntityId) func(*Fire) {
	return func(f *Fire) { f.TargetEntityID = id }
}

func WithMunitionExpendableID(id EntityId) func(*Fire) {
	return func(f *Fire) { f.MunitionExpendableID = id }
}

func WithFireEventID(id EventId) func(*Fire) {
	return func(f *Fire) { f.EventID = id }
}

func WithFireRange(r float32) func(*Fire) {
	return func(f *Fire) { f.Range = r }
}

// NewDetonation returns a Detonation with the given options applied.
func NewDetonation(opts ...func(*Detonation)) Detonation {
	var d Detonation
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

func WithDetonationResult(result uint8) func(*Detonation) {
	return func(d *Detonation) { d.DetonationResult = result }
}

// NewComment returns a Comment with the given options applied.
func NewComment(opts ...func(*Comment)) Comment {
	var c Comment
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func WithCommentOriginatingID(id EntityId) func(*Comment) {
	return func(c *Comment) { c.OriginatingID = id }
}

func WithCommentReceivingID(id EntityId) func(*Comment) {
	return func(c *Comment) { c.ReceivingID = id }
}

func WithVariableDatum(datum VariableDatum) func(*Comment) {
	return func(c *Comment) { c.VariableDatumRecords = append(c.VariableDatumRecords, datum) }
}

// NewEntityState returns an EntityState with the given options applied.
func NewEntityState(opts ...func(*EntityState)) EntityState {
	var e EntityState
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

func WithEntityStateID(id EntityId) func(*EntityState) {
	return func(e *EntityState) { e.EntityID = id }
}

func WithForceID(force enumerations.ForceID) func(*EntityState) {
	return func(e *EntityState) { e.ForceID = force }
}

func WithEntityType(t EntityType) func(*EntityState) {
	return func(e *EntityState) { e.EntityType = t }
}

func WithEntityLocation(loc Location) func(*EntityState) {
	return func(e *EntityState) { e.EntityLocation = loc }
}

func WithArticulationParameter(p ArticulationParameter) func(*EntityState) {
	return func(e *EntityState) { e.ArticulationParameters = append(e.ArticulationParameters, p) }
}
