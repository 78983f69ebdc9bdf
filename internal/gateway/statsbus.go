package gateway

import (
	"context"
	"sync"
	"time"
)

// StatEdge names one edge of the pipeline topology in spec.md §4.D, used to
// label both StatEvent and the channel_depth metric.
type StatEdge string

const (
	EdgeDISSocket  StatEdge = "dis_socket"
	EdgeCDISSocket StatEdge = "cdis_socket"
	EdgeEncoder    StatEdge = "encoder"
	EdgeDecoder    StatEdge = "decoder"
)

// StatEvent is one observation published on the StatsBus: a task on Edge
// processed Count PDUs (or rejected them, if Rejected is set) at Timestamp.
type StatEvent struct {
	Edge      StatEdge
	Count     int
	Rejected  bool
	Reason    string
	Timestamp time.Time
}

// StatsBus is an in-process broadcast publisher, adapted from
// eventsocket.Server's client-set/broadcast pattern but fanning out to Go
// channels (one per site.Server SSE subscriber) instead of net.Conn sockets.
// A slow subscriber whose buffer is full misses that event but stays
// subscribed, rather than blocking the publishing task, matching the "lossy on slow subscriber" requirement in
// spec.md §4.D.
type StatsBus struct {
	mutex       sync.Mutex
	subscribers map[chan StatEvent]struct{}
}

// NewStatsBus constructs an empty bus ready to publish and subscribe.
func NewStatsBus() *StatsBus {
	return &StatsBus{subscribers: make(map[chan StatEvent]struct{})}
}

// Subscribe registers a new listener channel that receives every StatEvent
// published until ctx is canceled, at which point the channel is removed and
// closed.
func (b *StatsBus) Subscribe(ctx context.Context) <-chan StatEvent {
	ch := make(chan StatEvent, 32)
	b.mutex.Lock()
	b.subscribers[ch] = struct{}{}
	b.mutex.Unlock()

	go func() {
		<-ctx.Done()
		b.mutex.Lock()
		defer b.mutex.Unlock()
		if _, ok := b.subscribers[ch]; ok {
			delete(b.subscribers, ch)
			close(ch)
		}
	}()
	return ch
}

// Publish fans event out to every live subscriber without blocking. A
// subscriber whose buffer is full simply misses the event.
func (b *StatsBus) Publish(event StatEvent) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	for ch := range b.subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}
