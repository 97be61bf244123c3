package jetstream

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/feral-file/ff-dao/internal/adapter"
	"github.com/feral-file/ff-dao/internal/logger"
	"github.com/feral-file/ff-dao/internal/messaging"
)

const (
	defaultPublishTimeout = 5 * time.Second
	maxPublishAttempts    = 3
)

// Config holds the configuration for NATS JetStream connection
type Config struct {
	URL            string
	StreamName     string
	SubjectPrefix  string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
	PublishTimeout time.Duration
}

type publisher struct {
	nc             adapter.NatsConn
	js             adapter.JetStream
	subjectPrefix  string
	publishTimeout time.Duration
	json           adapter.JSON
	jcs            adapter.JCS
}

// NewPublisher connects to NATS, ensures the event stream exists and returns a publisher
func NewPublisher(ctx context.Context, cfg Config, natsJS adapter.NatsJetStream, jsonAdapter adapter.JSON, jcsAdapter adapter.JCS) (messaging.Publisher, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, js, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	err = js.EnsureStream(ctx, jetstream.StreamConfig{
		Name:       cfg.StreamName,
		Subjects:   []string{cfg.SubjectPrefix + ".>"},
		Storage:    jetstream.FileStorage,
		Retention:  jetstream.LimitsPolicy,
		Duplicates: 2 * time.Minute,
	})
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to ensure stream %s: %w", cfg.StreamName, err)
	}

	timeout := cfg.PublishTimeout
	if timeout <= 0 {
		timeout = defaultPublishTimeout
	}

	return &publisher{
		nc:             nc,
		js:             js,
		subjectPrefix:  cfg.SubjectPrefix,
		publishTimeout: timeout,
		json:           jsonAdapter,
		jcs:            jcsAdapter,
	}, nil
}

// PublishEvent publishes a domain event to NATS JetStream
// The event id is sent as Nats-Msg-Id so retried publishes are deduplicated by the stream.
func (p *publisher) PublishEvent(ctx context.Context, event *messaging.Event) error {
	logger.DebugCtx(ctx, "Publishing NATS event", zap.String("event_id", event.ID), zap.String("type", string(event.Type)))

	data, err := adapter.CanonicalJSON(p.json, p.jcs, event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := nats.NewMsg(p.buildSubject(event))
	msg.Data = data
	msg.Header.Set(jetstream.MsgIDHeader, event.ID)

	operation := func() error {
		pubCtx, cancel := context.WithTimeout(ctx, p.publishTimeout)
		defer cancel()

		_, err := p.js.PublishMsg(pubCtx, msg)
		return err
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 100 * time.Millisecond
	b.MaxInterval = time.Second

	if err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(b, maxPublishAttempts-1), ctx)); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

// buildSubject constructs the NATS subject based on the event
// Format: {prefix}.{event_type}, e.g. dao.events.vote.cast
func (p *publisher) buildSubject(event *messaging.Event) string {
	return fmt.Sprintf("%s.%s", p.subjectPrefix, event.Type)
}

// Close closes the NATS connection
func (p *publisher) Close() {
	if p.nc == nil {
		return
	}

	p.nc.Close()
}
