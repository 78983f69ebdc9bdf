package gateway

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSupervisedStopsCleanlyOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ran := 0
	cancel()

	err := RunSupervised(ctx, "test-task", func(c context.Context) error {
		ran++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, ran)
}

func TestRunSupervisedRestartsUpToBackoffLimitThenGivesUp(t *testing.T) {
	ctx := context.Background()
	attempts := 0
	wantErr := errors.New("boom")

	start := time.Now()
	err := RunSupervised(ctx, "test-task", func(c context.Context) error {
		attempts++
		return wantErr
	})
	elapsed := time.Since(start)

	assert.Equal(t, wantErr, err)
	assert.Equal(t, len(backoffSchedule)+1, attempts)
	assert.GreaterOrEqual(t, elapsed, 100*time.Millisecond)
}

func TestDrainGroupWaitTimesOut(t *testing.T) {
	d := &drainGroup{}
	d.Add(1)
	defer d.Done()

	ok := d.Wait(50 * time.Millisecond)
	assert.False(t, ok)
}

func TestDrainGroupWaitCompletes(t *testing.T) {
	d := &drainGroup{}
	d.Add(1)
	go func() {
		time.Sleep(10 * time.Millisecond)
		d.Done()
	}()

	ok := d.Wait(time.Second)
	assert.True(t, ok)
}
