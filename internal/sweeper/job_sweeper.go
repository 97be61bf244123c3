package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/feral-file/ff-dao/internal/adapter"
	"github.com/feral-file/ff-dao/internal/logger"
)

// ErrUnknownJob is returned when running a job that is not scheduled
var ErrUnknownJob = errors.New("unknown job")

// JobSweeperConfig holds configuration for the job sweeper
type JobSweeperConfig struct {
	WorkerPoolSize int           // Concurrent jobs
	QueueSize      int           // Job executions waiting for a worker
	JobTimeout     time.Duration // Deadline of a single job execution, 0 for none
}

// Schedule binds a job to a cron spec
type Schedule struct {
	Spec string
	Job  Job
}

type scheduledJob struct {
	Schedule
	inFlight atomic.Bool
}

// jobSweeper runs jobs on cron schedules, each execution submitted to a bounded worker pool.
// An execution is skipped while the previous execution of the same job is still running.
type jobSweeper struct {
	config    JobSweeperConfig
	clock     adapter.Clock
	jobs      []*scheduledJob
	pool      pond.Pool
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewJobSweeper creates a sweeper running the given schedules
func NewJobSweeper(config JobSweeperConfig, clock adapter.Clock, schedules ...Schedule) Sweeper {
	if config.WorkerPoolSize <= 0 {
		config.WorkerPoolSize = 1
	}
	jobs := make([]*scheduledJob, 0, len(schedules))
	for _, s := range schedules {
		jobs = append(jobs, &scheduledJob{Schedule: s})
	}
	return &jobSweeper{
		config:    config,
		clock:     clock,
		jobs:      jobs,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *jobSweeper) Name() string {
	return "job-sweeper"
}

// Start schedules every job and blocks until the context is canceled or Stop is called
func (s *jobSweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh)
	}()

	s.pool = pond.NewPool(
		s.config.WorkerPoolSize,
		pond.WithQueueSize(max(s.config.QueueSize, len(s.jobs))),
		pond.WithContext(ctx),
	)

	scheduler := cron.New(cron.WithLocation(time.UTC), cron.WithLogger(cronLogger{}))
	for _, job := range s.jobs {
		if _, err := scheduler.AddFunc(job.Spec, func() { s.dispatch(ctx, job) }); err != nil {
			s.pool.StopAndWait()
			return fmt.Errorf("invalid schedule %q for job %s: %w", job.Spec, job.Job.Name(), err)
		}
		logger.InfoCtx(ctx, "Scheduled sweeper job", zap.String("job", job.Job.Name()), zap.String("spec", job.Spec))
	}
	scheduler.Start()

	select {
	case <-ctx.Done():
		logger.InfoCtx(ctx, "Job sweeper stopping due to context cancellation", zap.Error(ctx.Err()))
	case <-s.stopChan:
		logger.InfoCtx(ctx, "Job sweeper stop requested")
	}

	<-scheduler.Stop().Done()
	s.pool.StopAndWait()
	return nil
}

// Stop gracefully stops the sweeper with timeout support
func (s *jobSweeper) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	logger.InfoCtx(ctx, "Stopping job sweeper")
	close(s.stopChan)

	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Job sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Job sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}

// dispatch submits one execution of job to the pool unless one is already in flight
func (s *jobSweeper) dispatch(ctx context.Context, job *scheduledJob) {
	if !job.inFlight.CompareAndSwap(false, true) {
		logger.WarnCtx(ctx, "Skipping sweeper job, previous run still in progress", zap.String("job", job.Job.Name()))
		return
	}

	s.pool.Submit(func() {
		defer job.inFlight.Store(false)
		_ = s.execute(ctx, job.Job)
	})
}

func (s *jobSweeper) execute(ctx context.Context, job Job) error {
	if s.config.JobTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.JobTimeout)
		defer cancel()
	}

	start := s.clock.Now()
	err := job.Run(ctx)
	elapsed := s.clock.Since(start)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			logger.ErrorCtx(ctx, fmt.Errorf("sweeper job %s failed: %w", job.Name(), err), zap.Duration("elapsed", elapsed))
		}
		return err
	}

	logger.InfoCtx(ctx, "Sweeper job completed", zap.String("job", job.Name()), zap.Duration("elapsed", elapsed))
	return nil
}

// RunJob runs the named job once in the calling goroutine
func RunJob(ctx context.Context, s Sweeper, name string) error {
	js, ok := s.(*jobSweeper)
	if !ok {
		return fmt.Errorf("%s does not run jobs", s.Name())
	}
	for _, job := range js.jobs {
		if job.Job.Name() == name {
			return js.execute(ctx, job.Job)
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownJob, name)
}

// cronLogger routes cron's own logging to the service logger
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	logger.Default().Sugar().Debugw("cron: "+msg, keysAndValues...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	logger.Default().Sugar().Errorw("cron: "+msg, append(keysAndValues, "error", err)...)
}
