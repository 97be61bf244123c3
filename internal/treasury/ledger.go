package treasury

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/feral-file/ff-dao/internal/adapter"
	"github.com/feral-file/ff-dao/internal/domain"
	"github.com/feral-file/ff-dao/internal/journal"
	"github.com/feral-file/ff-dao/internal/logger"
	"github.com/feral-file/ff-dao/internal/messaging"
	"github.com/feral-file/ff-dao/internal/store"
	"github.com/feral-file/ff-dao/internal/store/schema"
)

// Executor applies approved transactions to the treasury balances
//
//go:generate mockgen -source=ledger.go -destination=../mocks/treasury_executor.go -package=mocks -mock_names=Executor=MockExecutor
type Executor interface {
	// Execute applies an APPROVED transaction and marks it EXECUTED, or FAILED when the balances cannot absorb it
	Execute(ctx context.Context, id uint64, actor string) (*schema.TreasuryTransaction, error)
}

// Ledger owns the asset balances and the metric time series
type Ledger struct {
	store     store.Store
	params    Params
	clock     adapter.Clock
	publisher messaging.Publisher
	journal   *journal.Recorder
}

// NewLedger creates a treasury ledger
func NewLedger(st store.Store, params Params, clock adapter.Clock, publisher messaging.Publisher, recorder *journal.Recorder) *Ledger {
	if publisher == nil {
		publisher = messaging.NewNopPublisher()
	}
	return &Ledger{
		store:     st,
		params:    params,
		clock:     clock,
		publisher: publisher,
		journal:   recorder,
	}
}

// executionError marks a failure while mutating balances, as opposed to a refused precondition
type executionError struct {
	cause error
}

func (e *executionError) Error() string {
	return e.cause.Error()
}

func (e *executionError) Unwrap() error {
	return e.cause
}

// Execute applies the balance deltas of an approved transaction, marks it executed
// and appends a metric snapshot, all in one database transaction.
// When the deltas cannot be applied nothing is written and the transaction is marked failed.
func (l *Ledger) Execute(ctx context.Context, id uint64, actor string) (*schema.TreasuryTransaction, error) {
	now := l.clock.Now()
	var (
		executed *schema.TreasuryTransaction
		metric   *schema.TreasuryMetric
	)
	err := l.store.WithTransaction(ctx, func(tx store.Store) error {
		executed, metric = nil, nil

		t, err := tx.GetTransactionForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if t == nil {
			return transactionNotFound(id)
		}
		if t.Status != domain.TransactionStatusApproved {
			return domain.NewGuardError(domain.ErrNotApproved, "transaction %d is in %s status", t.ID, t.Status)
		}

		breaker, err := tx.GetActiveCircuitBreaker(ctx)
		if err != nil {
			return err
		}
		if breaker != nil {
			return breakerActive(breaker)
		}

		if err := applyDeltas(ctx, tx, t, now); err != nil {
			return &executionError{cause: err}
		}

		t.Status = domain.TransactionStatusExecuted
		t.ExecutedAt = &now
		if err := tx.UpdateTransaction(ctx, t); err != nil {
			return err
		}

		m, err := snapshot(ctx, tx, now)
		if err != nil {
			return err
		}

		if err := l.journal.Record(ctx, tx, journal.Entry{
			SubjectType: schema.SubjectTypeTransaction,
			SubjectID:   transactionID(t),
			Action:      "execute",
			Actor:       actor,
			At:          now,
			Meta: map[string]any{
				"from":          domain.TransactionStatusApproved,
				"to":            t.Status,
				"reserve_ratio": m.ReserveRatio.String(),
			},
		}); err != nil {
			return err
		}

		executed, metric = t, m
		return nil
	})
	if err != nil {
		var execErr *executionError
		if errors.As(err, &execErr) {
			return nil, l.fail(ctx, id, actor, execErr.cause)
		}
		logger.DebugCtx(ctx, "Treasury execution refused",
			zap.Uint64("transaction_id", id),
			zap.String("reason", domain.ReasonOf(err)))
		return nil, err
	}

	logger.InfoCtx(ctx, "Treasury transaction executed",
		zap.Uint64("transaction_id", executed.ID),
		zap.String("type", string(executed.TransactionType)),
		zap.String("amount", executed.Amount.String()),
		zap.String("total_value_usd", metric.TotalValueUSD.String()))
	if !metric.IsReserveRatioHealthy(l.params.ReserveRatioTarget) {
		logger.WarnCtx(ctx, "Treasury reserve ratio below target",
			zap.String("reserve_ratio", metric.ReserveRatio.String()),
			zap.String("target", l.params.ReserveRatioTarget.String()))
	}
	messaging.PublishAll(ctx, l.publisher, transactionStatusEvent(executed, domain.TransactionStatusApproved, actor, now))
	return executed, nil
}

// fail marks the transaction FAILED in a compensating transaction and returns ErrExecutionFailed
func (l *Ledger) fail(ctx context.Context, id uint64, actor string, cause error) error {
	reason := cause.Error()
	now := l.clock.Now()

	var failed *schema.TreasuryTransaction
	err := l.store.WithTransaction(ctx, func(tx store.Store) error {
		failed = nil

		t, err := tx.GetTransactionForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if t == nil || t.Status != domain.TransactionStatusApproved {
			return nil
		}

		t.Status = domain.TransactionStatusFailed
		t.FailureReason = &reason
		if err := tx.UpdateTransaction(ctx, t); err != nil {
			return err
		}
		if err := l.journal.Record(ctx, tx, journal.Entry{
			SubjectType: schema.SubjectTypeTransaction,
			SubjectID:   strconv.FormatUint(id, 10),
			Action:      "execution_failed",
			Actor:       actor,
			At:          now,
			Meta:        map[string]any{"reason": reason},
		}); err != nil {
			return err
		}
		failed = t
		return nil
	})
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to mark transaction %d as failed: %w", id, err))
	}

	logger.ErrorCtx(ctx, fmt.Errorf("treasury execution failed: %w", cause), zap.Uint64("transaction_id", id))
	if failed != nil {
		messaging.PublishAll(ctx, l.publisher, transactionStatusEvent(failed, domain.TransactionStatusApproved, actor, now))
	}
	return domain.NewGuardError(domain.ErrExecutionFailed, "transaction %d failed: %s", id, reason)
}

// applyDeltas mutates the balances touched by t. Balance rows are locked in ascending asset order.
func applyDeltas(ctx context.Context, tx store.Store, t *schema.TreasuryTransaction, now time.Time) error {
	switch t.TransactionType {
	case domain.TransactionTypeDeposit, domain.TransactionTypeRevenue:
		return adjustBalance(ctx, tx, t.AssetID, t.Amount, t.USDValue, now)

	case domain.TransactionTypeWithdrawal, domain.TransactionTypeExpense:
		return adjustBalance(ctx, tx, t.AssetID, t.Amount.Neg(), t.USDValue.Neg(), now)

	case domain.TransactionTypeSwap:
		if t.DestinationAssetID == nil || t.DestinationAmount == nil {
			return fmt.Errorf("swap %d has no destination", t.ID)
		}
		// the destination side reuses the source usd value without re-pricing
		source := func() error {
			return adjustBalance(ctx, tx, t.AssetID, t.Amount.Neg(), t.USDValue.Neg(), now)
		}
		destination := func() error {
			return adjustBalance(ctx, tx, *t.DestinationAssetID, *t.DestinationAmount, t.USDValue, now)
		}
		first, second := source, destination
		if *t.DestinationAssetID < t.AssetID {
			first, second = destination, source
		}
		if err := first(); err != nil {
			return err
		}
		return second()
	}

	return nil
}

func adjustBalance(ctx context.Context, tx store.Store, assetID uint64, amount, usdValue decimal.Decimal, now time.Time) error {
	b, err := tx.GetAssetBalanceForUpdate(ctx, assetID)
	if err != nil {
		return err
	}

	next := b.Balance.Add(amount)
	if next.IsNegative() {
		return fmt.Errorf("insufficient balance of asset %d: available %s, required %s", assetID, b.Balance, amount.Neg())
	}
	b.Balance = next
	b.USDValue = b.USDValue.Add(usdValue)
	b.LastUpdated = now
	return tx.UpdateAssetBalance(ctx, b)
}

func snapshot(ctx context.Context, tx store.Store, now time.Time) (*schema.TreasuryMetric, error) {
	balances, err := tx.ListAssetBalances(ctx)
	if err != nil {
		return nil, err
	}
	metric := ComputeMetrics(balances, now)
	if err := tx.CreateMetric(ctx, metric); err != nil {
		return nil, err
	}
	return metric, nil
}

// Balances returns every asset position with its asset
func (l *Ledger) Balances(ctx context.Context) ([]*schema.AssetBalance, error) {
	return l.store.ListAssetBalances(ctx)
}

// Summary aggregates the current balances without persisting a snapshot
func (l *Ledger) Summary(ctx context.Context) (*schema.TreasuryMetric, error) {
	balances, err := l.store.ListAssetBalances(ctx)
	if err != nil {
		return nil, err
	}
	return ComputeMetrics(balances, l.clock.Now()), nil
}

// SnapshotMetrics appends a metric snapshot of the current balances
func (l *Ledger) SnapshotMetrics(ctx context.Context) (*schema.TreasuryMetric, error) {
	var metric *schema.TreasuryMetric
	err := l.store.WithTransaction(ctx, func(tx store.Store) error {
		m, err := snapshot(ctx, tx, l.clock.Now())
		if err != nil {
			return err
		}
		metric = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return metric, nil
}

// LatestMetric returns the most recent snapshot
func (l *Ledger) LatestMetric(ctx context.Context) (*schema.TreasuryMetric, error) {
	metric, err := l.store.GetLatestMetric(ctx)
	if err != nil {
		return nil, err
	}
	if metric == nil {
		return nil, domain.NewGuardError(domain.ErrNotFound, "no treasury metrics available")
	}
	return metric, nil
}

// MetricHistory returns snapshots taken since the given moment, oldest first
func (l *Ledger) MetricHistory(ctx context.Context, since time.Time, limit int) ([]*schema.TreasuryMetric, error) {
	return l.store.ListMetrics(ctx, since, limit)
}

// ReserveRatioTarget returns the configured healthy reserve ratio
func (l *Ledger) ReserveRatioTarget() decimal.Decimal {
	return l.params.ReserveRatioTarget
}

func transactionNotFound(id uint64) error {
	return domain.NewGuardError(domain.ErrNotFound, "transaction %d not found", id)
}

func breakerActive(b *schema.CircuitBreaker) error {
	return domain.NewGuardError(domain.ErrCircuitBreakerActive,
		"circuit breaker active since %s: %s", b.ActivationTime.UTC().Format(time.RFC3339), b.Reason)
}
