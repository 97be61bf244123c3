package messaging

import (
	"context"

	"go.uber.org/zap"

	"github.com/feral-file/ff-dao/internal/logger"
)

// Publisher defines the interface for publishing domain events to the message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishEvent publishes a domain event to the message broker
	PublishEvent(ctx context.Context, event *Event) error
	// Close closes the connection
	Close()
}

type nopPublisher struct{}

// NewNopPublisher returns a publisher that drops every event, used when no broker is configured
func NewNopPublisher() Publisher {
	return nopPublisher{}
}

func (nopPublisher) PublishEvent(context.Context, *Event) error {
	return nil
}

func (nopPublisher) Close() {}

// PublishAll publishes events in order after their transaction committed.
// Failures are logged and never returned: the state change already happened.
func PublishAll(ctx context.Context, p Publisher, events ...*Event) {
	if p == nil {
		return
	}
	for _, event := range events {
		if event == nil {
			continue
		}
		if err := p.PublishEvent(ctx, event); err != nil {
			logger.WarnCtx(ctx, "Failed to publish domain event",
				zap.Error(err),
				zap.String("event_id", event.ID),
				zap.String("event_type", string(event.Type)),
				zap.String("subject_id", event.SubjectID))
		}
	}
}
