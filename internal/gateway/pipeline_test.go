package gateway

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRunFatalPublishesQuitOnError exercises spec.md §7's "if it still
// fails, the whole gateway initiates shutdown" rule: a task wrapped with
// runFatal that returns a non-nil error (RunSupervised's backoff ladder
// exhausted) must publish Quit, not merely log the failure.
func TestRunFatalPublishesQuitOnError(t *testing.T) {
	p := &Pipeline{Cmds: NewCommandBus()}
	sub := p.Cmds.Subscribe()
	defer p.Cmds.Unsubscribe(sub)

	p.runFatal(func() error { return errors.New("boom") })

	select {
	case cmd := <-sub:
		assert.Equal(t, Quit, cmd)
	case <-time.After(time.Second):
		t.Fatal("expected Quit to be published after a fatal task error")
	}
}

// TestRunDoesNotPublishQuitOnError covers the non-fatal path: ordinary I/O
// tasks wrapped with run are logged, not escalated to a gateway-wide quit.
func TestRunDoesNotPublishQuitOnError(t *testing.T) {
	p := &Pipeline{Cmds: NewCommandBus()}
	sub := p.Cmds.Subscribe()
	defer p.Cmds.Unsubscribe(sub)

	p.run(func() error { return errors.New("transient") })
	p.wg.Wait()

	select {
	case cmd := <-sub:
		t.Fatalf("did not expect a Quit command, got %v", cmd)
	case <-time.After(50 * time.Millisecond):
	}
}

// TestRunFatalDoesNotDoublePublishOnConcurrentFailures guards quitOnce: two
// simultaneous fatal failures (encoder and decoder both exhausting their
// backoff ladder) must not publish Quit twice to a subscriber that only
// drains it once.
func TestRunFatalDoesNotDoublePublishOnConcurrentFailures(t *testing.T) {
	p := &Pipeline{Cmds: NewCommandBus()}
	sub := p.Cmds.Subscribe()
	defer p.Cmds.Unsubscribe(sub)

	p.runFatal(func() error { return errors.New("encoder exhausted") })
	p.runFatal(func() error { return errors.New("decoder exhausted") })
	p.wg.Wait()

	require.Len(t, sub, 1)
}
