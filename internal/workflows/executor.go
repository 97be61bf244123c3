package workflows

import (
	"context"
	"errors"
	"fmt"

	"go.temporal.io/sdk/temporal"
	"go.uber.org/zap"

	"github.com/feral-file/ff-dao/internal/adapter"
	"github.com/feral-file/ff-dao/internal/domain"
	"github.com/feral-file/ff-dao/internal/governance"
	"github.com/feral-file/ff-dao/internal/logger"
	"github.com/feral-file/ff-dao/internal/store/schema"
)

// Executor defines the activities of the governance workflows
//
//go:generate mockgen -source=executor.go -destination=../mocks/executor_governance.go -package=mocks -mock_names=Executor=MockGovernanceExecutor
type Executor interface {
	// GetProposalSchedule returns the status of the proposal and when its next transition is due
	GetProposalSchedule(ctx context.Context, proposalID uint64) (*domain.ProposalSchedule, error)

	// StartVoting moves a proposal from discussion to voting
	StartVoting(ctx context.Context, proposalID uint64) (*domain.ProposalSchedule, error)

	// EndVoting settles the vote of a proposal
	EndVoting(ctx context.Context, proposalID uint64) (*domain.ProposalSchedule, error)

	// QueueProposal marks an approved proposal as waiting for its timelock
	QueueProposal(ctx context.Context, proposalID uint64) (*domain.ProposalSchedule, error)

	// ExecuteProposal executes a proposal whose timelock expired
	ExecuteProposal(ctx context.Context, proposalID uint64) (*domain.ProposalSchedule, error)
}

// Application error types reported by the governance activities
const (
	ErrorTypeInvalidTransition = "InvalidTransition"
	ErrorTypeNotFound          = "NotFound"
	ErrorTypeGuardFailure      = "GuardFailure"
)

// executor is the concrete implementation of Executor
type executor struct {
	machine          *governance.StateMachine
	temporalActivity adapter.Activity
}

// NewExecutor creates a new executor instance
func NewExecutor(machine *governance.StateMachine, temporalActivity adapter.Activity) Executor {
	return &executor{
		machine:          machine,
		temporalActivity: temporalActivity,
	}
}

func (e *executor) GetProposalSchedule(ctx context.Context, proposalID uint64) (*domain.ProposalSchedule, error) {
	p, err := e.machine.Get(ctx, proposalID)
	if err != nil {
		return nil, activityError(err)
	}
	return e.schedule(p), nil
}

func (e *executor) StartVoting(ctx context.Context, proposalID uint64) (*domain.ProposalSchedule, error) {
	return e.transition(ctx, proposalID, "start_voting", e.machine.StartVoting)
}

func (e *executor) EndVoting(ctx context.Context, proposalID uint64) (*domain.ProposalSchedule, error) {
	return e.transition(ctx, proposalID, "end_voting", e.machine.EndVoting)
}

func (e *executor) QueueProposal(ctx context.Context, proposalID uint64) (*domain.ProposalSchedule, error) {
	return e.transition(ctx, proposalID, "queue", e.machine.Queue)
}

func (e *executor) ExecuteProposal(ctx context.Context, proposalID uint64) (*domain.ProposalSchedule, error) {
	return e.transition(ctx, proposalID, "execute", e.machine.Execute)
}

type transitionFunc func(ctx context.Context, id uint64, actor string) (*schema.Proposal, error)

func (e *executor) transition(ctx context.Context, proposalID uint64, action string, fn transitionFunc) (*domain.ProposalSchedule, error) {
	actor := e.actor(ctx)
	p, err := fn(ctx, proposalID, actor)
	if err != nil {
		if errors.Is(err, domain.ErrTimeNotElapsed) && e.temporalActivity.IsActivity(ctx) {
			logger.WarnCtx(ctx, "Lifecycle transition attempted before its deadline",
				zap.Uint64("proposal_id", proposalID),
				zap.String("action", action),
				zap.Int32("attempt", e.temporalActivity.GetInfo(ctx).Attempt),
				zap.String("reason", domain.ReasonOf(err)))
		}
		return nil, activityError(err)
	}
	return e.schedule(p), nil
}

func (e *executor) schedule(p *schema.Proposal) *domain.ProposalSchedule {
	return &domain.ProposalSchedule{
		ProposalID: p.ID,
		Status:     p.Status,
		Deadline:   governance.NextDeadline(p, e.machine.Params()),
	}
}

// actor identifies the workflow that drives the transition in the journal
func (e *executor) actor(ctx context.Context) string {
	if !e.temporalActivity.IsActivity(ctx) {
		return "scheduler"
	}
	return "scheduler:" + e.temporalActivity.GetInfo(ctx).WorkflowExecution.ID
}

// activityError turns guard failures into non-retryable application errors.
// A transition requested before its deadline stays retryable since the worker clock may run ahead of the database.
func activityError(err error) error {
	var guard *domain.GuardError
	if !errors.As(err, &guard) || errors.Is(err, domain.ErrTimeNotElapsed) {
		return err
	}

	errType := ErrorTypeGuardFailure
	switch {
	case errors.Is(err, domain.ErrInvalidTransition):
		errType = ErrorTypeInvalidTransition
	case errors.Is(err, domain.ErrNotFound):
		errType = ErrorTypeNotFound
	}
	return temporal.NewNonRetryableApplicationError(guard.Reason, errType, err)
}

// LifecycleWorkflowID returns the workflow id of the lifecycle of a proposal
func LifecycleWorkflowID(proposalID uint64) string {
	return fmt.Sprintf("proposal-lifecycle-%d", proposalID)
}
