package logger

import (
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"
)

// WorkflowInfo identifies a workflow execution in log entries and Sentry events
type WorkflowInfo struct {
	WorkflowType string
	WorkflowID   string
	RunID        string
	Namespace    string
	TaskQueue    string
}

// Fields returns the zap fields describing the workflow execution
func (i WorkflowInfo) Fields() []zap.Field {
	return []zap.Field{
		zap.String("workflow_type", i.WorkflowType),
		zap.String("workflow_id", i.WorkflowID),
		zap.String("run_id", i.RunID),
		zap.String("namespace", i.Namespace),
		zap.String("task_queue", i.TaskQueue),
	}
}

// GetWorkflowInfo extracts workflow information from workflow.Context
// Returns nil if workflow info is not available
func GetWorkflowInfo(ctx workflow.Context) *WorkflowInfo {
	info := workflow.GetInfo(ctx)
	if info == nil {
		return nil
	}

	workflowTypeName := info.WorkflowType.Name
	if workflowTypeName == "" {
		workflowTypeName = "unknown"
	}

	return &WorkflowInfo{
		WorkflowType: workflowTypeName,
		WorkflowID:   info.WorkflowExecution.ID,
		RunID:        info.WorkflowExecution.RunID,
		Namespace:    info.Namespace,
		TaskQueue:    info.TaskQueueName,
	}
}

// WithWorkflowInfo returns a logger tagged with the workflow execution
func WithWorkflowInfo(info WorkflowInfo) *zap.Logger {
	return log.With(info.Fields()...)
}

// FromWorkflow returns a logger tagged with the workflow execution of ctx
func FromWorkflow(ctx workflow.Context, info *WorkflowInfo) *zap.Logger {
	if info == nil {
		info = GetWorkflowInfo(ctx)
	}
	if info == nil {
		return log
	}
	return WithWorkflowInfo(*info)
}

// InfoWorkflow logs an info message tagged with the workflow execution
func InfoWorkflow(info WorkflowInfo, msg string, fields ...zap.Field) {
	WithWorkflowInfo(info).Info(msg, fields...)
}

// ErrorWorkflow logs an error tagged with the workflow execution
func ErrorWorkflow(info WorkflowInfo, err error, fields ...zap.Field) {
	msg := "error occurred"
	if err != nil {
		msg = err.Error()
	}
	WithWorkflowInfo(info).Error(msg, fields...)
}

// WarnWorkflow logs a warning tagged with the workflow execution
func WarnWorkflow(info WorkflowInfo, msg string, fields ...zap.Field) {
	WithWorkflowInfo(info).Warn(msg, fields...)
}

// DebugWorkflow logs a debug message tagged with the workflow execution
func DebugWorkflow(info WorkflowInfo, msg string, fields ...zap.Field) {
	WithWorkflowInfo(info).Debug(msg, fields...)
}

// InfoWf logs an info message with workflow context (shortcut for workflows)
// Entries are suppressed while the workflow history is replayed.
func InfoWf(ctx workflow.Context, msg string, fields ...zap.Field) {
	if workflow.IsReplaying(ctx) {
		return
	}
	FromWorkflow(ctx, nil).Info(msg, fields...)
}

// ErrorWf logs an error message with workflow context (shortcut for workflows)
func ErrorWf(ctx workflow.Context, err error, fields ...zap.Field) {
	if workflow.IsReplaying(ctx) {
		return
	}
	if info := GetWorkflowInfo(ctx); info != nil {
		ErrorWorkflow(*info, err, fields...)
		return
	}
	Error(err, fields...)
}

// WarnWf logs a warning message with workflow context (shortcut for workflows)
func WarnWf(ctx workflow.Context, msg string, fields ...zap.Field) {
	if workflow.IsReplaying(ctx) {
		return
	}
	FromWorkflow(ctx, nil).Warn(msg, fields...)
}

// DebugWf logs a debug message with workflow context (shortcut for workflows)
func DebugWf(ctx workflow.Context, msg string, fields ...zap.Field) {
	if workflow.IsReplaying(ctx) {
		return
	}
	FromWorkflow(ctx, nil).Debug(msg, fields...)
}
