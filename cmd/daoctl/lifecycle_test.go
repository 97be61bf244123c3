package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	commonpb "go.temporal.io/api/common/v1"
	"go.temporal.io/api/enums/v1"
	workflowpb "go.temporal.io/api/workflow/v1"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func TestLifecycleQuery(t *testing.T) {
	assert.Equal(t, "WorkflowType = 'ProposalLifecycle'", lifecycleQuery(false))
	assert.Equal(t, "WorkflowType = 'ProposalLifecycle' AND ExecutionStatus = 'Running'", lifecycleQuery(true))
}

func TestRenderLifecycleRuns(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	var buf bytes.Buffer
	renderLifecycleRuns(&buf, []*workflowpb.WorkflowExecutionInfo{
		{
			Execution: &commonpb.WorkflowExecution{WorkflowId: "proposal-lifecycle-3", RunId: "run-a"},
			Status:    enums.WORKFLOW_EXECUTION_STATUS_RUNNING,
			StartTime: timestamppb.New(now.Add(-90 * time.Minute)),
		},
		{
			Execution: &commonpb.WorkflowExecution{WorkflowId: "proposal-lifecycle-2", RunId: "run-b"},
			Status:    enums.WORKFLOW_EXECUTION_STATUS_COMPLETED,
			StartTime: timestamppb.New(now.Add(-48 * time.Hour)),
			CloseTime: timestamppb.New(now.Add(-24 * time.Hour)),
		},
	}, now)

	out := buf.String()
	assert.Contains(t, out, "proposal-lifecycle-3")
	assert.Contains(t, out, "Running")
	assert.Contains(t, out, "1h30m0s")
	assert.Contains(t, out, "Completed")
	assert.Contains(t, out, "24h0m0s")
}
