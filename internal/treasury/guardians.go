package treasury

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/ff-dao/internal/adapter"
	"github.com/feral-file/ff-dao/internal/domain"
	"github.com/feral-file/ff-dao/internal/journal"
	"github.com/feral-file/ff-dao/internal/logger"
	"github.com/feral-file/ff-dao/internal/store"
	"github.com/feral-file/ff-dao/internal/store/schema"
)

// GuardianRegistry manages guardian appointments and answers role lookups
type GuardianRegistry struct {
	store   store.Store
	params  Params
	clock   adapter.Clock
	journal *journal.Recorder
}

// NewGuardianRegistry creates a guardian registry
func NewGuardianRegistry(st store.Store, params Params, clock adapter.Clock, recorder *journal.Recorder) *GuardianRegistry {
	return &GuardianRegistry{
		store:   st,
		params:  params,
		clock:   clock,
		journal: recorder,
	}
}

// Add appoints userID for the given term. A previously removed guardian is reappointed.
func (r *GuardianRegistry) Add(ctx context.Context, userID string, termStart, termEnd time.Time, actor string) (*schema.Guardian, error) {
	userID, err := domain.NormalizeAddress(userID)
	if err != nil {
		return nil, err
	}
	if !termEnd.After(termStart) {
		return nil, domain.NewGuardError(domain.ErrInvalidArgument, "guardian term must end after it starts")
	}

	now := r.clock.Now()
	var guardian *schema.Guardian
	err = r.store.WithTransaction(ctx, func(tx store.Store) error {
		guardian = nil

		all, err := tx.ListGuardians(ctx)
		if err != nil {
			return err
		}
		var existing *schema.Guardian
		active := 0
		for _, g := range all {
			if g.UserID == userID {
				existing = g
				continue
			}
			if g.IsActive && now.Before(g.TermEnd) {
				active++
			}
		}
		if active >= r.params.GuardianCount {
			return domain.NewGuardError(domain.ErrInvalidArgument, "guardian seats are full: %d of %d", active, r.params.GuardianCount)
		}

		action := "appoint"
		switch {
		case existing == nil:
			existing = &schema.Guardian{
				UserID:    userID,
				TermStart: termStart,
				TermEnd:   termEnd,
				IsActive:  true,
				CreatedAt: now,
			}
			if err := tx.CreateGuardian(ctx, existing); err != nil {
				return err
			}
		case existing.IsActive && now.Before(existing.TermEnd):
			return domain.NewGuardError(domain.ErrAlreadyExists, "%s is already an active guardian", userID)
		default:
			action = "reappoint"
			existing.TermStart = termStart
			existing.TermEnd = termEnd
			existing.IsActive = true
			if err := tx.UpdateGuardian(ctx, existing); err != nil {
				return err
			}
		}

		if err := r.journal.Record(ctx, tx, journal.Entry{
			SubjectType: schema.SubjectTypeGuardian,
			SubjectID:   userID,
			Action:      action,
			Actor:       actor,
			At:          now,
			Meta: map[string]any{
				"term_start": termStart.UTC().Format(time.RFC3339),
				"term_end":   termEnd.UTC().Format(time.RFC3339),
			},
		}); err != nil {
			return err
		}
		guardian = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Guardian appointed", zap.String("user_id", userID), zap.Time("term_end", termEnd))
	return guardian, nil
}

// Deactivate removes userID from the guardian set before the term ends
func (r *GuardianRegistry) Deactivate(ctx context.Context, userID, actor string) (*schema.Guardian, error) {
	userID, err := domain.NormalizeAddress(userID)
	if err != nil {
		return nil, err
	}

	now := r.clock.Now()
	var guardian *schema.Guardian
	err = r.store.WithTransaction(ctx, func(tx store.Store) error {
		guardian = nil

		g, err := tx.GetGuardianByUser(ctx, userID)
		if err != nil {
			return err
		}
		if g == nil {
			return domain.NewGuardError(domain.ErrNotFound, "%s is not a guardian", userID)
		}
		if !g.IsActive {
			return domain.NewGuardError(domain.ErrInvalidTransition, "guardian %s is already inactive", userID)
		}

		g.IsActive = false
		if err := tx.UpdateGuardian(ctx, g); err != nil {
			return err
		}
		if err := r.journal.Record(ctx, tx, journal.Entry{
			SubjectType: schema.SubjectTypeGuardian,
			SubjectID:   userID,
			Action:      "deactivate",
			Actor:       actor,
			At:          now,
		}); err != nil {
			return err
		}
		guardian = g
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Guardian deactivated", zap.String("user_id", userID))
	return guardian, nil
}

// Lookup returns the active guardianship of userID, nil when the user cannot act as guardian
func (r *GuardianRegistry) Lookup(ctx context.Context, userID string) (*schema.Guardian, error) {
	return r.lookup(ctx, r.store, userID)
}

func (r *GuardianRegistry) lookup(ctx context.Context, st store.Store, userID string) (*schema.Guardian, error) {
	userID, err := domain.NormalizeAddress(userID)
	if err != nil {
		// identities that are not wallets never hold a guardianship
		return nil, nil //nolint:nilerr
	}
	g, err := st.GetGuardianByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if g == nil || !g.ActiveAt(r.clock.Now()) {
		return nil, nil
	}
	return g, nil
}

// List returns every guardian, active or not
func (r *GuardianRegistry) List(ctx context.Context) ([]*schema.Guardian, error) {
	return r.store.ListGuardians(ctx)
}
