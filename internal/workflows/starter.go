package workflows

import (
	"context"
	"errors"
	"fmt"

	"go.temporal.io/api/enums/v1"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"
	"go.uber.org/zap"

	"github.com/feral-file/ff-dao/internal/logger"
	temporalprovider "github.com/feral-file/ff-dao/internal/providers/temporal"
)

// LifecycleStarter starts the lifecycle workflow of a proposal
//
//go:generate mockgen -source=starter.go -destination=../mocks/lifecycle_starter.go -package=mocks -mock_names=LifecycleStarter=MockLifecycleStarter
type LifecycleStarter interface {
	// StartLifecycle starts the workflow, a workflow already running for the proposal is not an error
	StartLifecycle(ctx context.Context, proposalID uint64) error
}

type lifecycleStarter struct {
	orchestrator temporalprovider.TemporalOrchestrator
	taskQueue    string
}

// NewLifecycleStarter creates a starter scheduling workflows on taskQueue
func NewLifecycleStarter(orchestrator temporalprovider.TemporalOrchestrator, taskQueue string) LifecycleStarter {
	return &lifecycleStarter{
		orchestrator: orchestrator,
		taskQueue:    taskQueue,
	}
}

func (s *lifecycleStarter) StartLifecycle(ctx context.Context, proposalID uint64) error {
	options := client.StartWorkflowOptions{
		ID:                    LifecycleWorkflowID(proposalID),
		TaskQueue:             s.taskQueue,
		WorkflowIDReusePolicy: enums.WORKFLOW_ID_REUSE_POLICY_REJECT_DUPLICATE,
	}

	run, err := s.orchestrator.ExecuteWorkflow(ctx, options, ProposalLifecycleWorkflow, proposalID)
	if err != nil {
		var started *serviceerror.WorkflowExecutionAlreadyStarted
		if errors.As(err, &started) {
			logger.DebugCtx(ctx, "Proposal lifecycle already started", zap.Uint64("proposal_id", proposalID))
			return nil
		}
		return fmt.Errorf("failed to start proposal lifecycle: %w", err)
	}

	logger.InfoCtx(ctx, "Proposal lifecycle started",
		zap.Uint64("proposal_id", proposalID),
		zap.String("workflow_id", run.GetID()),
		zap.String("run_id", run.GetRunID()))
	return nil
}
