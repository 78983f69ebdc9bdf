package gateway

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsBusFanOut(t *testing.T) {
	bus := NewStatsBus()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a := bus.Subscribe(ctx)
	b := bus.Subscribe(ctx)

	bus.Publish(StatEvent{Edge: EdgeEncoder, Count: 3})

	select {
	case got := <-a:
		assert.Equal(t, EdgeEncoder, got.Edge)
		assert.Equal(t, 3, got.Count)
	case <-time.After(time.Second):
		t.Fatal("subscriber a never received event")
	}
	select {
	case got := <-b:
		assert.Equal(t, EdgeEncoder, got.Edge)
	case <-time.After(time.Second):
		t.Fatal("subscriber b never received event")
	}
}

func TestStatsBusSlowSubscriberDoesNotBlockPublish(t *testing.T) {
	bus := NewStatsBus()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slow := bus.Subscribe(ctx)
	_ = slow // never drained

	done := make(chan struct{})
	go func() {
		for i := 0; i < 64; i++ {
			bus.Publish(StatEvent{Edge: EdgeDecoder, Count: i})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked on a slow subscriber")
	}
}

func TestStatsBusUnsubscribeOnContextCancel(t *testing.T) {
	bus := NewStatsBus()
	ctx, cancel := context.WithCancel(context.Background())

	ch := bus.Subscribe(ctx)
	cancel()

	require.Eventually(t, func() bool {
		_, open := <-ch
		return !open
	}, time.Second, 5*time.Millisecond)
}
