package temporal

import (
	"context"

	"github.com/getsentry/sentry-go"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/interceptor"
)

// NewSentryActivityInterceptor creates a new Sentry activity interceptor
func NewSentryActivityInterceptor() interceptor.WorkerInterceptor {
	return &SentryActivityInterceptor{
		WorkerInterceptorBase: interceptor.WorkerInterceptorBase{},
	}
}

// SentryActivityInterceptor gives every activity execution its own Sentry hub,
// tagged with the workflow that scheduled it
type SentryActivityInterceptor struct {
	interceptor.WorkerInterceptorBase
}

// InterceptActivity wraps activity execution to inject Sentry hub
func (s *SentryActivityInterceptor) InterceptActivity(ctx context.Context, next interceptor.ActivityInboundInterceptor) interceptor.ActivityInboundInterceptor {
	return &sentryActivityInboundInterceptor{
		ActivityInboundInterceptorBase: interceptor.ActivityInboundInterceptorBase{
			Next: next,
		},
	}
}

type sentryActivityInboundInterceptor struct {
	interceptor.ActivityInboundInterceptorBase
}

// ExecuteActivity attaches a cloned hub to the activity context so logger.*Ctx calls report to Sentry
func (s *sentryActivityInboundInterceptor) ExecuteActivity(ctx context.Context, in *interceptor.ExecuteActivityInput) (interface{}, error) {
	hub := sentry.CurrentHub().Clone()
	if activity.IsActivity(ctx) {
		info := activity.GetInfo(ctx)
		hub.ConfigureScope(func(scope *sentry.Scope) {
			scope.SetTag("activity_type", info.ActivityType.Name)
			scope.SetTag("workflow_type", info.WorkflowType.Name)
			scope.SetTag("workflow_id", info.WorkflowExecution.ID)
		})
	}
	ctx = sentry.SetHubOnContext(ctx, hub)

	return s.Next.ExecuteActivity(ctx, in)
}
