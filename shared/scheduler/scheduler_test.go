package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"video-library/shared/monitoring"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type summary string

func (s summary) GetSummary() string { return string(s) }

type fakeJob struct {
	runs atomic.Int32
	err  error
}

func (f *fakeJob) Name() string { return "fake" }

func (f *fakeJob) RunOnce(ctx context.Context) (Metrics, error) {
	f.runs.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return summary("did work"), nil
}

func TestRunOnceRecordsOutcome(t *testing.T) {
	monitor := monitoring.NewMonitor()
	job := &fakeJob{}
	s := New("* * * * * *", monitor, job)

	require.NoError(t, s.RunOnce(context.Background()))
	assert.True(t, monitor.IsHealthy())
	assert.Contains(t, monitor.GetStatusSummary(), "did work")

	job.err = errors.New("disk on fire")
	err := s.RunOnce(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, job.err)
	assert.False(t, monitor.IsHealthy())
}

func TestStartRunsOnScheduleAndStops(t *testing.T) {
	defer goleak.VerifyNone(t)

	job := &fakeJob{}
	s := New("* * * * * *", monitoring.NewMonitor(), job)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	assert.Eventually(t, func() bool { return job.runs.Load() > 0 }, 3*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop")
	}
}

func TestStartRejectsBadSchedule(t *testing.T) {
	s := New("not a cron spec", monitoring.NewMonitor(), &fakeJob{})
	err := s.Start(context.Background())
	assert.Error(t, err)
}
