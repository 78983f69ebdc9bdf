package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSendDropOldestKeepsNewestUnderOverload is the shape of spec.md §8's
// overload-safety law (rule 7): a producer outrunning a bounded channel
// drops the oldest unread item rather than the newest, and rejected_count
// (asserted indirectly via which items survive) grows monotonically rather
// than the channel growing unbounded.
func TestSendDropOldestKeepsNewestUnderOverload(t *testing.T) {
	ch := make(chan []byte, 2)
	SendDropOldest(EdgeEncoder, ch, []byte("a"))
	SendDropOldest(EdgeEncoder, ch, []byte("b"))
	SendDropOldest(EdgeEncoder, ch, []byte("c"))

	require.Len(t, ch, 2)
	first := <-ch
	second := <-ch
	assert.Equal(t, "b", string(first))
	assert.Equal(t, "c", string(second))
}

func TestSendDropOldestWithSpareCapacity(t *testing.T) {
	ch := make(chan []byte, 4)
	SendDropOldest(EdgeDecoder, ch, []byte("x"))
	require.Len(t, ch, 1)
	assert.Equal(t, "x", string(<-ch))
}
