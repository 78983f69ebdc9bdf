package gateway

import "github.com/siso-dis/cdis-gateway/internal/metrics"

// SendDropOldest enqueues item onto ch. When ch is at capacity the oldest
// unread item is discarded to make room, per spec.md §4.D's channel policy:
// "the producer drops the oldest unread item" rather than the newest, so the
// pipeline prefers fresh traffic under sustained overload. ch must have
// exactly one producer, matching every pipeline edge's SPSC contract.
func SendDropOldest(edge StatEdge, ch chan []byte, item []byte) {
	for {
		select {
		case ch <- item:
			metrics.ChannelDepth.WithLabelValues(string(edge)).Set(float64(len(ch)))
			return
		default:
		}
		select {
		case <-ch:
			metrics.RejectedCount.WithLabelValues(string(edge), "channel_full").Inc()
		default:
			// Another goroutine drained it between our full send attempt and
			// this drop; loop around and retry the send.
		}
	}
}
