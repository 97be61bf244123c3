package workflows

import (
	"errors"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"

	"github.com/feral-file/ff-dao/internal/domain"
	"github.com/feral-file/ff-dao/internal/logger"
)

// ProposalLifecycleWorkflow is the registered name of the proposal lifecycle workflow
const ProposalLifecycleWorkflow = "ProposalLifecycle"

// WorkerGovernance hosts the workflows that drive proposals through their time-gated transitions
type WorkerGovernance interface {
	// ProposalLifecycle sleeps until each deadline of the proposal and performs the due transition,
	// until the proposal reaches a terminal status
	ProposalLifecycle(ctx workflow.Context, proposalID uint64) error
}

type WorkerGovernanceConfig struct {
	// ActivityTimeout bounds a single activity attempt
	ActivityTimeout time.Duration
	// MaxActivityAttempts bounds retries of an activity, 0 retries until the workflow times out
	MaxActivityAttempts int32
	// MaxIterations bounds the number of transitions performed by one run
	MaxIterations int
}

// DefaultWorkerGovernanceConfig returns the configuration used by worker-governance
func DefaultWorkerGovernanceConfig() WorkerGovernanceConfig {
	return WorkerGovernanceConfig{
		ActivityTimeout:     30 * time.Second,
		MaxActivityAttempts: 10,
		MaxIterations:       16,
	}
}

// workerGovernance is the concrete implementation of WorkerGovernance
type workerGovernance struct {
	config   WorkerGovernanceConfig
	executor Executor
}

// NewWorkerGovernance creates a new governance worker instance
func NewWorkerGovernance(executor Executor, config WorkerGovernanceConfig) WorkerGovernance {
	defaults := DefaultWorkerGovernanceConfig()
	if config.ActivityTimeout <= 0 {
		config.ActivityTimeout = defaults.ActivityTimeout
	}
	if config.MaxIterations <= 0 {
		config.MaxIterations = defaults.MaxIterations
	}
	return &workerGovernance{
		executor: executor,
		config:   config,
	}
}

func (w *workerGovernance) ProposalLifecycle(ctx workflow.Context, proposalID uint64) error {
	logger.InfoWf(ctx, "Starting proposal lifecycle", zap.Uint64("proposal_id", proposalID))

	activityCtx := workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: w.config.ActivityTimeout,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    time.Minute,
			MaximumAttempts:    w.config.MaxActivityAttempts,
		},
	})

	var schedule domain.ProposalSchedule
	if err := workflow.ExecuteActivity(activityCtx, w.executor.GetProposalSchedule, proposalID).Get(activityCtx, &schedule); err != nil {
		logger.ErrorWf(ctx, err, zap.Uint64("proposal_id", proposalID))
		return err
	}

	for range w.config.MaxIterations {
		if schedule.Status.IsTerminal() || schedule.Status == domain.ProposalStatusDraft || schedule.Deadline == nil {
			logger.InfoWf(ctx, "Proposal lifecycle finished",
				zap.Uint64("proposal_id", proposalID),
				zap.String("status", string(schedule.Status)))
			return nil
		}

		// the timelock is armed as soon as the proposal is approved
		var next interface{}
		switch schedule.Status {
		case domain.ProposalStatusApproved:
			next = w.executor.QueueProposal
		case domain.ProposalStatusDiscussion:
			next = w.executor.StartVoting
		case domain.ProposalStatusVoting:
			next = w.executor.EndVoting
		case domain.ProposalStatusQueued:
			next = w.executor.ExecuteProposal
		}

		if schedule.Status != domain.ProposalStatusApproved {
			if wait := schedule.Deadline.Sub(workflow.Now(ctx)); wait > 0 {
				logger.InfoWf(ctx, "Waiting for proposal deadline",
					zap.Uint64("proposal_id", proposalID),
					zap.String("status", string(schedule.Status)),
					zap.Time("deadline", *schedule.Deadline))
				if err := workflow.Sleep(ctx, wait); err != nil {
					return err
				}
			}
		}

		var advanced domain.ProposalSchedule
		err := workflow.ExecuteActivity(activityCtx, next, proposalID).Get(activityCtx, &advanced)
		switch {
		case err == nil:
			schedule = advanced
			logger.InfoWf(ctx, "Proposal advanced",
				zap.Uint64("proposal_id", proposalID),
				zap.String("status", string(schedule.Status)))
			continue
		case isApplicationError(err, ErrorTypeInvalidTransition):
			// moved by someone else meanwhile, e.g. cancelled or advanced through the API
			logger.WarnWf(ctx, "Proposal changed outside the lifecycle workflow",
				zap.Uint64("proposal_id", proposalID),
				zap.Error(err))
		default:
			logger.ErrorWf(ctx, err, zap.Uint64("proposal_id", proposalID))
			return err
		}

		if err := workflow.ExecuteActivity(activityCtx, w.executor.GetProposalSchedule, proposalID).Get(activityCtx, &schedule); err != nil {
			logger.ErrorWf(ctx, err, zap.Uint64("proposal_id", proposalID))
			return err
		}
	}

	logger.WarnWf(ctx, "Proposal lifecycle continuing as new",
		zap.Uint64("proposal_id", proposalID),
		zap.String("status", string(schedule.Status)))
	return workflow.NewContinueAsNewError(ctx, ProposalLifecycleWorkflow, proposalID)
}

func isApplicationError(err error, errType string) bool {
	var appErr *temporal.ApplicationError
	return errors.As(err, &appErr) && appErr.Type() == errType
}
