package gateway

import "sync"

// Command is a message broadcast on the CommandBus. Quit is the only command
// named in spec.md §4.D; it triggers the two-phase shutdown in every task
// that subscribes.
type Command int

const (
	Quit Command = iota
)

// CommandBus is a broadcast publisher for control-plane commands, the same
// client-set/broadcast shape as StatsBus and ultimately eventsocket.Server,
// but carrying Command values instead of FlowEvent/StatEvent.
type CommandBus struct {
	mutex       sync.Mutex
	subscribers map[chan Command]struct{}
}

// NewCommandBus constructs an empty bus.
func NewCommandBus() *CommandBus {
	return &CommandBus{subscribers: make(map[chan Command]struct{})}
}

// Subscribe returns a channel that receives every command published from
// this point forward. Callers select on it alongside their own work, per
// spec.md §4.D's cancellation rule. Unsubscribe removes and closes it.
func (b *CommandBus) Subscribe() chan Command {
	ch := make(chan Command, 1)
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.subscribers[ch] = struct{}{}
	return ch
}

// Unsubscribe removes ch from future broadcasts and closes it. Safe to call
// more than once.
func (b *CommandBus) Unsubscribe(ch chan Command) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	if _, ok := b.subscribers[ch]; ok {
		delete(b.subscribers, ch)
		close(ch)
	}
}

// Publish broadcasts cmd to every subscriber. Quit is a small, closed command
// set, so unlike StatsBus this send does not drop: every subscriber is
// guaranteed to observe every Quit.
func (b *CommandBus) Publish(cmd Command) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	for ch := range b.subscribers {
		ch <- cmd
	}
}
