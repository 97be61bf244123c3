package governance

import (
	"context"
	"math"
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

// TokenLedger manages governance token balances, locks and delegation
type TokenLedger struct {
	store     store.Store
	clock     adapter.Clock
	publisher messaging.Publisher
	journal   *journal.Recorder
}

// NewTokenLedger creates a token ledger
func NewTokenLedger(st store.Store, clock adapter.Clock, publisher messaging.Publisher, recorder *journal.Recorder) *TokenLedger {
	if publisher == nil {
		publisher = messaging.NewNopPublisher()
	}
	return &TokenLedger{
		store:     st,
		clock:     clock,
		publisher: publisher,
		journal:   recorder,
	}
}

// Get returns the token record of a holder
func (l *TokenLedger) Get(ctx context.Context, holder string) (*schema.GovernanceToken, error) {
	holder, err := domain.NormalizeAddress(holder)
	if err != nil {
		return nil, err
	}
	token, err := l.store.GetToken(ctx, holder)
	if err != nil {
		return nil, err
	}
	if token == nil {
		return nil, domain.NewGuardError(domain.ErrNotFound, "%s holds no governance tokens", holder)
	}
	return token, nil
}

// TotalSupply returns the sum of all balances
func (l *TokenLedger) TotalSupply(ctx context.Context) (int64, error) {
	return l.store.GetTotalSupply(ctx)
}

// Mint credits amount to holder, creating the token record on first use
func (l *TokenLedger) Mint(ctx context.Context, holder string, amount int64, actor string) (*schema.GovernanceToken, error) {
	holder, err := domain.NormalizeAddress(holder)
	if err != nil {
		return nil, err
	}
	if amount <= 0 {
		return nil, domain.NewGuardError(domain.ErrInvalidArgument, "mint amount must be positive: %d", amount)
	}

	now := l.clock.Now()
	var token *schema.GovernanceToken
	err = l.store.WithTransaction(ctx, func(tx store.Store) error {
		token = nil

		t, err := l.credit(ctx, tx, holder, amount, now)
		if err != nil {
			return err
		}
		if err := l.journal.Record(ctx, tx, journal.Entry{
			SubjectType: schema.SubjectTypeToken,
			SubjectID:   holder,
			Action:      "mint",
			Actor:       actor,
			At:          now,
			Meta:        map[string]any{"amount": amount, "balance": t.Balance},
		}); err != nil {
			return err
		}
		token = t
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Governance tokens minted", zap.String("holder", holder), zap.Int64("amount", amount))
	return token, nil
}

// Transfer moves amount from one holder to another. Locked tokens cannot be transferred.
func (l *TokenLedger) Transfer(ctx context.Context, from, to string, amount int64) (*schema.GovernanceToken, error) {
	from, err := domain.NormalizeAddress(from)
	if err != nil {
		return nil, err
	}
	to, err = domain.NormalizeAddress(to)
	if err != nil {
		return nil, err
	}
	if amount <= 0 {
		return nil, domain.NewGuardError(domain.ErrInvalidArgument, "transfer amount must be positive: %d", amount)
	}
	if from == to {
		return nil, domain.NewGuardError(domain.ErrInvalidArgument, "cannot transfer to self")
	}

	now := l.clock.Now()
	var sender *schema.GovernanceToken
	err = l.store.WithTransaction(ctx, func(tx store.Store) error {
		sender = nil

		// Lock both rows in a stable order so opposite transfers cannot deadlock
		first, second := from, to
		if second < first {
			first, second = second, first
		}
		locked := map[string]*schema.GovernanceToken{}
		for _, holder := range []string{first, second} {
			t, err := tx.GetTokenForUpdate(ctx, holder)
			if err != nil {
				return err
			}
			locked[holder] = t
		}

		src := locked[from]
		if src == nil {
			return domain.NewGuardError(domain.ErrNoTokens, "%s holds no governance tokens", from)
		}
		if src.LockedAt(now) {
			return domain.NewGuardError(domain.ErrTokenLocked, "tokens of %s are locked until %s", from, src.LockedUntil.UTC().Format(time.RFC3339))
		}
		if src.Balance < amount {
			return domain.NewGuardError(domain.ErrInsufficientBalance,
				"transfer exceeds balance: required %d, available %d", amount, src.Balance)
		}

		src.Balance -= amount
		src.UpdatedAt = now
		if err := tx.UpdateToken(ctx, src); err != nil {
			return err
		}
		if _, err := l.creditLocked(ctx, tx, locked[to], to, amount, now); err != nil {
			return err
		}

		if err := l.journal.Record(ctx, tx, journal.Entry{
			SubjectType: schema.SubjectTypeToken,
			SubjectID:   from,
			Action:      "transfer",
			Actor:       from,
			At:          now,
			Meta:        map[string]any{"to": to, "amount": amount},
		}); err != nil {
			return err
		}
		sender = src
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Governance tokens transferred", zap.String("from", from), zap.String("to", to), zap.Int64("amount", amount))
	messaging.PublishAll(ctx, l.publisher, tokenEvent(messaging.EventTokenTransferred, from, now, map[string]any{
		"to":     to,
		"amount": amount,
	}))
	return sender, nil
}

// Delegate points holder's voting weight to delegate. Locked tokens cannot be delegated.
func (l *TokenLedger) Delegate(ctx context.Context, holder, delegate string) (*schema.GovernanceToken, error) {
	holder, err := domain.NormalizeAddress(holder)
	if err != nil {
		return nil, err
	}
	delegate, err = domain.NormalizeAddress(delegate)
	if err != nil {
		return nil, err
	}
	if holder == delegate {
		return nil, domain.NewGuardError(domain.ErrInvalidArgument, "cannot delegate to self")
	}

	token, err := l.updateToken(ctx, holder, "delegate", func(t *schema.GovernanceToken) error {
		t.DelegatedTo = &delegate
		return nil
	}, true)
	if err != nil {
		return nil, err
	}

	messaging.PublishAll(ctx, l.publisher, tokenEvent(messaging.EventTokenDelegated, holder, l.clock.Now(), map[string]any{
		"delegated_to": delegate,
	}))
	return token, nil
}

// Undelegate clears the delegation of holder
func (l *TokenLedger) Undelegate(ctx context.Context, holder string) (*schema.GovernanceToken, error) {
	holder, err := domain.NormalizeAddress(holder)
	if err != nil {
		return nil, err
	}

	var previous string
	token, err := l.updateToken(ctx, holder, "undelegate", func(t *schema.GovernanceToken) error {
		if t.DelegatedTo == nil {
			return domain.NewGuardError(domain.ErrNotDelegated, "tokens of %s are not delegated", holder)
		}
		previous = *t.DelegatedTo
		t.DelegatedTo = nil
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	messaging.PublishAll(ctx, l.publisher, tokenEvent(messaging.EventTokenUndelegated, holder, l.clock.Now(), map[string]any{
		"previous_delegate": previous,
	}))
	return token, nil
}

// ReleaseExpiredLocks unlocks tokens whose lock window passed and returns their holders
func (l *TokenLedger) ReleaseExpiredLocks(ctx context.Context, limit int) ([]string, error) {
	holders, err := l.store.ReleaseExpiredLocks(ctx, l.clock.Now(), limit)
	if err != nil {
		return nil, err
	}
	if len(holders) > 0 {
		logger.InfoCtx(ctx, "Released expired token locks", zap.Int("count", len(holders)))
	}
	return holders, nil
}

// updateToken applies fn to the locked token of holder and persists it
func (l *TokenLedger) updateToken(ctx context.Context, holder, action string, fn func(t *schema.GovernanceToken) error, refuseLocked bool) (*schema.GovernanceToken, error) {
	now := l.clock.Now()
	var token *schema.GovernanceToken
	err := l.store.WithTransaction(ctx, func(tx store.Store) error {
		token = nil

		t, err := tx.GetTokenForUpdate(ctx, holder)
		if err != nil {
			return err
		}
		if t == nil {
			return domain.NewGuardError(domain.ErrNoTokens, "%s holds no governance tokens", holder)
		}
		if refuseLocked && t.LockedAt(now) {
			return domain.NewGuardError(domain.ErrTokenLocked, "tokens of %s are locked until %s", holder, t.LockedUntil.UTC().Format(time.RFC3339))
		}
		if err := fn(t); err != nil {
			return err
		}
		t.UpdatedAt = now
		if err := tx.UpdateToken(ctx, t); err != nil {
			return err
		}

		meta := map[string]any{}
		if t.DelegatedTo != nil {
			meta["delegated_to"] = *t.DelegatedTo
		}
		if err := l.journal.Record(ctx, tx, journal.Entry{
			SubjectType: schema.SubjectTypeToken,
			SubjectID:   holder,
			Action:      action,
			Actor:       holder,
			At:          now,
			Meta:        meta,
		}); err != nil {
			return err
		}
		token = t
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Governance token updated", zap.String("holder", holder), zap.String("action", action))
	return token, nil
}

// credit locks the holder's token and adds amount, creating the record when missing
func (l *TokenLedger) credit(ctx context.Context, tx store.Store, holder string, amount int64, now time.Time) (*schema.GovernanceToken, error) {
	t, err := tx.GetTokenForUpdate(ctx, holder)
	if err != nil {
		return nil, err
	}
	return l.creditLocked(ctx, tx, t, holder, amount, now)
}

func (l *TokenLedger) creditLocked(ctx context.Context, tx store.Store, t *schema.GovernanceToken, holder string, amount int64, now time.Time) (*schema.GovernanceToken, error) {
	if t == nil {
		t = &schema.GovernanceToken{
			Holder:    holder,
			Balance:   amount,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := tx.CreateToken(ctx, t); err != nil {
			return nil, err
		}
		return t, nil
	}

	if t.Balance > math.MaxInt64-amount {
		return nil, domain.NewGuardError(domain.ErrInvalidArgument, "balance of %s would overflow", holder)
	}
	t.Balance += amount
	t.UpdatedAt = now
	if err := tx.UpdateToken(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}
