package dis

import (
	"errors"
	"fmt"

	"github.com/siso-dis/cdis-gateway/internal/enumerations"
)

// Sentinel ParseError values, per spec.md §4.B. Use errors.Is to match.
var (
	ErrTruncated         = errors.New("dis: truncated PDU")
	ErrUnsupportedVersion = errors.New("dis: unsupported protocol version")
	ErrMalformedHeader   = errors.New("dis: malformed header")
)

// MalformedBodyError carries the PduType and byte offset at which a body
// parser gave up, per spec.md §4.B's ParseError::MalformedBody variant.
type MalformedBodyError struct {
	Type   enumerations.PduType
	Offset int
	Err    error
}

func (e *MalformedBodyError) Error() string {
	return fmt.Sprintf("dis: malformed body (type=%s offset=%d): %v", e.Type, e.Offset, e.Err)
}

func (e *MalformedBodyError) Unwrap() error { return e.Err }

// SerializeError kinds, per spec.md §4.B.
var ErrUnalignable = errors.New("dis: record does not end on required octet boundary")

// BufferTooSmallError reports that a serialize target buffer could not hold
// the written octets (only relevant for fixed-size destinations; the
// gateway's own Serialize always grows its buffer, but codec consumers
// writing into a fixed-size datagram buffer can return this).
type BufferTooSmallError struct {
	Needed, Available int
}

func (e *BufferTooSmallError) Error() string {
	return fmt.Sprintf("dis: buffer too small: need %d, have %d", e.Needed, e.Available)
}
