package gateway

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// Shutdown coordinates the two-phase graceful shutdown in spec.md §7:
// (1) stop new ingress by canceling the read-side context, (2) wait for
// in-flight translation work to drain, bounded by Timeout, then cancel the
// write-side context so remaining tasks abort.
type Shutdown struct {
	Timeout time.Duration
	drain   drainGroup
}

// NewShutdown constructs a Shutdown with the given drain timeout.
func NewShutdown(timeout time.Duration) *Shutdown {
	return &Shutdown{Timeout: timeout}
}

// TrackDrain registers one in-flight unit of work that must complete (or be
// abandoned at the timeout) before phase 2 ends. Callers call Add before
// starting work and Done when it finishes.
func (s *Shutdown) TrackDrain(delta int) { s.drain.Add(delta) }

// DrainDone marks one unit of tracked work complete.
func (s *Shutdown) DrainDone() { s.drain.Done() }

// WaitForSignal blocks until SIGINT, SIGTERM, or a Quit arrives on cmds,
// whichever comes first, or until ctx is canceled, then returns.
// Pipeline.Start calls it inline and calls Run once it returns.
func (s *Shutdown) WaitForSignal(ctx context.Context, cmds chan Command) {
	sigC := make(chan os.Signal, 1)
	signal.Notify(sigC, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigC)

	select {
	case sig := <-sigC:
		log.Printf("gateway: received signal %s, shutting down", sig)
	case <-cmds:
		log.Println("gateway: received Quit command, shutting down")
	case <-ctx.Done():
	}
}

// Run executes the two-phase shutdown: it cancels cancelIngress
// immediately (phase 1, stop new reads), waits up to s.Timeout for tracked
// drain work to finish, then cancels cancelAll (phase 2, abort stragglers
// and unblock pending writes).
func (s *Shutdown) Run(cancelIngress, cancelAll context.CancelFunc) {
	cancelIngress()
	if !s.drain.Wait(s.Timeout) {
		log.Printf("gateway: drain timeout (%s) exceeded, aborting remaining tasks", s.Timeout)
	}
	cancelAll()
}
