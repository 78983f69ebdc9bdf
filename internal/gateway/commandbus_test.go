package gateway

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCommandBusBroadcastsToAllSubscribers(t *testing.T) {
	bus := NewCommandBus()
	a := bus.Subscribe()
	b := bus.Subscribe()
	defer bus.Unsubscribe(a)
	defer bus.Unsubscribe(b)

	bus.Publish(Quit)

	select {
	case cmd := <-a:
		assert.Equal(t, Quit, cmd)
	case <-time.After(time.Second):
		t.Fatal("subscriber a never received Quit")
	}
	select {
	case cmd := <-b:
		assert.Equal(t, Quit, cmd)
	case <-time.After(time.Second):
		t.Fatal("subscriber b never received Quit")
	}
}

func TestCommandBusUnsubscribeClosesChannel(t *testing.T) {
	bus := NewCommandBus()
	ch := bus.Subscribe()
	bus.Unsubscribe(ch)

	_, open := <-ch
	assert.False(t, open)
}
