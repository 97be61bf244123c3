package treasury

import (
	"context"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/ff-dao/internal/adapter"
	"github.com/feral-file/ff-dao/internal/domain"
	"github.com/feral-file/ff-dao/internal/journal"
	"github.com/feral-file/ff-dao/internal/logger"
	"github.com/feral-file/ff-dao/internal/messaging"
	"github.com/feral-file/ff-dao/internal/store"
	"github.com/feral-file/ff-dao/internal/store/schema"
)

// CircuitBreaker is the global halt switch for treasury execution.
// At most one breaker record is active; deactivated records are kept as history.
type CircuitBreaker struct {
	store     store.Store
	clock     adapter.Clock
	publisher messaging.Publisher
	journal   *journal.Recorder
}

// NewCircuitBreaker creates a circuit breaker
func NewCircuitBreaker(st store.Store, clock adapter.Clock, publisher messaging.Publisher, recorder *journal.Recorder) *CircuitBreaker {
	if publisher == nil {
		publisher = messaging.NewNopPublisher()
	}
	return &CircuitBreaker{
		store:     st,
		clock:     clock,
		publisher: publisher,
		journal:   recorder,
	}
}

// IsActive reports whether execution is halted
func (c *CircuitBreaker) IsActive(ctx context.Context) (bool, error) {
	current, err := c.store.GetActiveCircuitBreaker(ctx)
	if err != nil {
		return false, err
	}
	return current != nil, nil
}

// Current returns the active breaker, nil when execution is not halted
func (c *CircuitBreaker) Current(ctx context.Context) (*schema.CircuitBreaker, error) {
	return c.store.GetActiveCircuitBreaker(ctx)
}

// Activate halts treasury execution
func (c *CircuitBreaker) Activate(ctx context.Context, actor, reason string) (*schema.CircuitBreaker, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, domain.NewGuardError(domain.ErrInvalidArgument, "activation reason is required")
	}

	now := c.clock.Now()
	var breaker *schema.CircuitBreaker
	err := c.store.WithTransaction(ctx, func(tx store.Store) error {
		breaker = nil

		current, err := tx.GetActiveCircuitBreakerForUpdate(ctx)
		if err != nil {
			return err
		}
		if current != nil {
			return domain.NewGuardError(domain.ErrInvalidTransition,
				"circuit breaker is already active since %s", current.ActivationTime.UTC().Format(time.RFC3339))
		}

		b := &schema.CircuitBreaker{
			IsActive:       true,
			ActivationTime: now,
			Reason:         reason,
			ActivatedBy:    actor,
		}
		if err := tx.CreateCircuitBreaker(ctx, b); err != nil {
			return err
		}
		if err := c.journal.Record(ctx, tx, journal.Entry{
			SubjectType: schema.SubjectTypeCircuitBreaker,
			SubjectID:   strconv.FormatUint(b.ID, 10),
			Action:      "activate",
			Actor:       actor,
			At:          now,
			Meta:        map[string]any{"reason": reason},
		}); err != nil {
			return err
		}
		breaker = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WarnCtx(ctx, "Circuit breaker activated", zap.String("actor", actor), zap.String("reason", reason))
	messaging.PublishAll(ctx, c.publisher, breakerEvent(messaging.EventCircuitBreakerActivated, breaker, actor, now))
	return breaker, nil
}

// Deactivate resumes treasury execution
func (c *CircuitBreaker) Deactivate(ctx context.Context, actor string) (*schema.CircuitBreaker, error) {
	now := c.clock.Now()
	var breaker *schema.CircuitBreaker
	err := c.store.WithTransaction(ctx, func(tx store.Store) error {
		breaker = nil

		b, err := tx.GetActiveCircuitBreakerForUpdate(ctx)
		if err != nil {
			return err
		}
		if b == nil {
			return domain.NewGuardError(domain.ErrCircuitBreakerInactive, "circuit breaker is not active")
		}

		b.IsActive = false
		b.DeactivationTime = &now
		b.DeactivatedBy = &actor
		if err := tx.UpdateCircuitBreaker(ctx, b); err != nil {
			return err
		}
		if err := c.journal.Record(ctx, tx, journal.Entry{
			SubjectType: schema.SubjectTypeCircuitBreaker,
			SubjectID:   strconv.FormatUint(b.ID, 10),
			Action:      "deactivate",
			Actor:       actor,
			At:          now,
		}); err != nil {
			return err
		}
		breaker = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Circuit breaker deactivated", zap.String("actor", actor), zap.Uint64("breaker_id", breaker.ID))
	messaging.PublishAll(ctx, c.publisher, breakerEvent(messaging.EventCircuitBreakerDeactivated, breaker, actor, now))
	return breaker, nil
}

// History returns breaker records, newest first, and the total count
func (c *CircuitBreaker) History(ctx context.Context, limit int, offset uint64) ([]*schema.CircuitBreaker, uint64, error) {
	return c.store.ListCircuitBreakers(ctx, limit, offset)
}
