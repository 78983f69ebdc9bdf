package gateway

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/siso-dis/cdis-gateway/internal/metrics"
)

// TaskState is one state of the per-translation-task state machine in
// spec.md §4.D: Idle -> Running -> Draining -> Stopped.
type TaskState int32

const (
	TaskIdle TaskState = iota
	TaskRunning
	TaskDraining
	TaskStopped
)

func (s TaskState) String() string {
	switch s {
	case TaskIdle:
		return "idle"
	case TaskRunning:
		return "running"
	case TaskDraining:
		return "draining"
	case TaskStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// TaskStateMachine tracks one task's lifecycle with atomic transitions so
// Shutdown and the task's own goroutine can observe and drive it
// concurrently without a lock.
type TaskStateMachine struct {
	state atomic.Int32
}

// NewTaskStateMachine starts a task in TaskIdle.
func NewTaskStateMachine() *TaskStateMachine {
	sm := &TaskStateMachine{}
	sm.state.Store(int32(TaskIdle))
	return sm
}

func (sm *TaskStateMachine) State() TaskState { return TaskState(sm.state.Load()) }

func (sm *TaskStateMachine) enterRunning()  { sm.state.Store(int32(TaskRunning)) }
func (sm *TaskStateMachine) enterDraining() { sm.state.Store(int32(TaskDraining)) }
func (sm *TaskStateMachine) enterStopped()  { sm.state.Store(int32(TaskStopped)) }

// backoffSchedule is the restart delay ladder from spec.md §7: 100ms, 400ms,
// 1.6s, then abort.
var backoffSchedule = []time.Duration{100 * time.Millisecond, 400 * time.Millisecond, 1600 * time.Millisecond}

// RunSupervised runs fn in a loop, restarting it with the backoffSchedule
// delay whenever it returns a non-nil error, up to len(backoffSchedule)
// consecutive failures. When fn returns nil, or ctx has been canceled,
// RunSupervised returns nil without restarting it. Once the
// backoff ladder is exhausted, RunSupervised gives up and returns the last
// error, incrementing metrics.TaskRestarts on every restart.
func RunSupervised(ctx context.Context, name string, fn func(context.Context) error) error {
	var lastErr error
	for attempt := 0; ; attempt++ {
		lastErr = fn(ctx)
		if lastErr == nil || ctx.Err() != nil {
			return nil
		}
		if attempt >= len(backoffSchedule) {
			log.Printf("gateway: task %s exhausted restart budget: %v", name, lastErr)
			return lastErr
		}
		metrics.TaskRestarts.WithLabelValues(name).Inc()
		delay := backoffSchedule[attempt]
		log.Printf("gateway: task %s failed (%v), restarting in %s", name, lastErr, delay)
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil
		}
	}
}

// drainGroup bounds how long Shutdown waits for in-flight work to finish
// before it gives up and lets tasks be abandoned mid-drain, per spec.md §7's
// "wait for in-flight work to drain, bounded by a timeout".
type drainGroup struct {
	wg sync.WaitGroup
}

func (d *drainGroup) Add(n int) { d.wg.Add(n) }
func (d *drainGroup) Done()     { d.wg.Done() }

// Wait blocks until every Add'd task calls Done, or timeout elapses,
// whichever comes first. It reports whether the drain completed cleanly.
func (d *drainGroup) Wait(timeout time.Duration) bool {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return true
	case <-time.After(timeout):
		return false
	}
}
