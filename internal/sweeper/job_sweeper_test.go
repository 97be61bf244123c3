package sweeper

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-dao/internal/adapter"
	"github.com/feral-file/ff-dao/internal/mocks"
)

// countingJob counts its runs and optionally blocks until released
type countingJob struct {
	name    string
	runs    atomic.Int32
	release chan struct{}
}

func (j *countingJob) Name() string {
	return j.name
}

func (j *countingJob) Run(ctx context.Context) error {
	j.runs.Add(1)
	if j.release == nil {
		return nil
	}
	select {
	case <-j.release:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func TestRunJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	job := mocks.NewMockJob(ctrl)
	job.EXPECT().Name().Return(JobTokenLocks).AnyTimes()

	s := NewJobSweeper(JobSweeperConfig{WorkerPoolSize: 1}, adapter.NewClock(), Schedule{Spec: "@every 1m", Job: job})

	t.Run("runs the named job", func(t *testing.T) {
		job.EXPECT().Run(gomock.Any()).Return(nil)
		assert.NoError(t, RunJob(ctx, s, JobTokenLocks))
	})

	t.Run("returns the job error", func(t *testing.T) {
		boom := errors.New("boom")
		job.EXPECT().Run(gomock.Any()).Return(boom)
		assert.ErrorIs(t, RunJob(ctx, s, JobTokenLocks), boom)
	})

	t.Run("unknown job", func(t *testing.T) {
		assert.ErrorIs(t, RunJob(ctx, s, "nope"), ErrUnknownJob)
	})

	t.Run("not a job sweeper", func(t *testing.T) {
		other := mocks.NewMockSweeper(ctrl)
		other.EXPECT().Name().Return("other")
		assert.Error(t, RunJob(ctx, other, JobTokenLocks))
	})
}

func TestRunJobAppliesTimeout(t *testing.T) {
	job := &countingJob{name: "slow", release: make(chan struct{})}
	s := NewJobSweeper(JobSweeperConfig{JobTimeout: 20 * time.Millisecond}, adapter.NewClock(), Schedule{Spec: "@every 1m", Job: job})

	err := RunJob(context.Background(), s, "slow")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestDispatchSkipsJobInFlight(t *testing.T) {
	job := &countingJob{name: "blocking", release: make(chan struct{})}
	s := NewJobSweeper(JobSweeperConfig{WorkerPoolSize: 2}, adapter.NewClock(), Schedule{Spec: "@every 1m", Job: job}).(*jobSweeper)
	s.pool = pond.NewPool(2)

	ctx := context.Background()
	s.dispatch(ctx, s.jobs[0])
	require.Eventually(t, func() bool { return job.runs.Load() == 1 }, time.Second, 5*time.Millisecond)

	s.dispatch(ctx, s.jobs[0])
	close(job.release)
	s.pool.StopAndWait()

	assert.Equal(t, int32(1), job.runs.Load())
	assert.False(t, s.jobs[0].inFlight.Load())
}

func TestStartAndStop(t *testing.T) {
	job := &countingJob{name: "tick"}
	s := NewJobSweeper(JobSweeperConfig{WorkerPoolSize: 1}, adapter.NewClock(), Schedule{Spec: "@every 1s", Job: job})

	ctx := context.Background()
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	assert.Eventually(t, func() bool { return job.runs.Load() >= 1 }, 5*time.Second, 50*time.Millisecond)

	stopCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	require.NoError(t, s.Stop(stopCtx))
	assert.NoError(t, <-done)

	// stopping twice is a no-op
	assert.NoError(t, s.Stop(stopCtx))
}

func TestStartRejectsInvalidSchedule(t *testing.T) {
	job := &countingJob{name: "broken"}
	s := NewJobSweeper(JobSweeperConfig{}, adapter.NewClock(), Schedule{Spec: "every now and then", Job: job})

	err := s.Start(context.Background())
	assert.ErrorContains(t, err, "invalid schedule")
}
