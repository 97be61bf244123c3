package sweeper

import (
	"context"
	"errors"
	"fmt"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/feral-file/ff-dao/internal/domain"
	"github.com/feral-file/ff-dao/internal/governance"
	"github.com/feral-file/ff-dao/internal/logger"
	"github.com/feral-file/ff-dao/internal/store"
	"github.com/feral-file/ff-dao/internal/store/schema"
	"github.com/feral-file/ff-dao/internal/treasury"
)

// Job names, also the keys of the sweeper schedules
const (
	JobProposalDeadlines  = "proposal-deadlines"
	JobTreasurySettlement = "treasury-settlement"
	JobTokenLocks         = "token-locks"
	JobTreasuryMetrics    = "treasury-metrics"
)

// sweeperActor is the journal identity of changes made by the sweeper
const sweeperActor = "sweeper"

// batchLimit defaults a non-positive batch size and caps it at the store's list limit
func batchLimit(size int) int {
	if size <= 0 {
		return store.DEFAULT_LIST_LIMIT
	}
	return min(size, store.MAX_LIST_LIMIT)
}

// refused reports whether err is a guard failure caused by a concurrent change, e.g. a lifecycle
// workflow or an API caller advancing the same entity first
func refused(err error) bool {
	var guard *domain.GuardError
	return errors.As(err, &guard)
}

// proposalDeadlinesJob performs the due time-gated transition of every proposal whose deadline passed
type proposalDeadlinesJob struct {
	machine   *governance.StateMachine
	batchSize int
}

// NewProposalDeadlinesJob creates the proposal deadlines job
func NewProposalDeadlinesJob(machine *governance.StateMachine, batchSize int) Job {
	return &proposalDeadlinesJob{machine: machine, batchSize: batchLimit(batchSize)}
}

func (j *proposalDeadlinesJob) Name() string {
	return JobProposalDeadlines
}

func (j *proposalDeadlinesJob) Run(ctx context.Context) error {
	due, err := j.machine.DueProposals(ctx, j.batchSize)
	if err != nil {
		return fmt.Errorf("failed to list due proposals: %w", err)
	}

	var errs []error
	advanced := 0
	for _, p := range due {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		next, err := j.machine.Advance(ctx, p.ID, sweeperActor)
		switch {
		case err == nil:
			if next.Status != p.Status {
				advanced++
			}
		case refused(err):
			logger.DebugCtx(ctx, "Proposal transition skipped",
				zap.Uint64("proposal_id", p.ID),
				zap.String("reason", domain.ReasonOf(err)))
		default:
			errs = append(errs, fmt.Errorf("proposal %d: %w", p.ID, err))
		}
	}

	if len(due) > 0 {
		logger.InfoCtx(ctx, "Advanced due proposals", zap.Int("due", len(due)), zap.Int("advanced", advanced))
	}
	return errors.Join(errs...)
}

// treasurySettlementJob executes APPROVED transactions left behind by a halted or failed execution
// and settles PENDING transactions whose decisions already meet a threshold
type treasurySettlementJob struct {
	engine    *treasury.GuardianApprovalEngine
	breaker   *treasury.CircuitBreaker
	params    treasury.Params
	batchSize int
}

// NewTreasurySettlementJob creates the treasury settlement job
func NewTreasurySettlementJob(engine *treasury.GuardianApprovalEngine, breaker *treasury.CircuitBreaker, params treasury.Params, batchSize int) Job {
	return &treasurySettlementJob{engine: engine, breaker: breaker, params: params, batchSize: batchLimit(batchSize)}
}

func (j *treasurySettlementJob) Name() string {
	return JobTreasurySettlement
}

func (j *treasurySettlementJob) Run(ctx context.Context) error {
	active, err := j.breaker.IsActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to check circuit breaker: %w", err)
	}
	if active {
		logger.InfoCtx(ctx, "Circuit breaker active, treasury settlement skipped")
		return nil
	}

	transactions, _, err := j.engine.List(ctx, store.TransactionQueryFilter{
		Statuses: []domain.TransactionStatus{domain.TransactionStatusApproved, domain.TransactionStatusPending},
		Limit:    j.batchSize,
	})
	if err != nil {
		return fmt.Errorf("failed to list unsettled transactions: %w", err)
	}

	settleable := lo.Filter(transactions, func(t *schema.TreasuryTransaction, _ int) bool {
		return t.Status == domain.TransactionStatusApproved ||
			t.ApprovalCount >= j.params.MultisigThreshold ||
			t.RejectionCount >= j.params.RejectionThreshold
	})

	var errs []error
	for _, t := range settleable {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		settled, err := j.engine.Settle(ctx, t.ID, sweeperActor)
		switch {
		case err == nil:
			logger.InfoCtx(ctx, "Treasury transaction settled by sweeper",
				zap.Uint64("transaction_id", t.ID),
				zap.String("status", string(settled.Status)))
		case errors.Is(err, domain.ErrExecutionFailed):
			// already marked FAILED and reported by the ledger
		case refused(err):
			logger.DebugCtx(ctx, "Treasury settlement skipped",
				zap.Uint64("transaction_id", t.ID),
				zap.String("reason", domain.ReasonOf(err)))
		default:
			errs = append(errs, fmt.Errorf("transaction %d: %w", t.ID, err))
		}
	}
	return errors.Join(errs...)
}

// tokenLocksJob releases governance token locks whose lock period elapsed
type tokenLocksJob struct {
	tokens    *governance.TokenLedger
	batchSize int
}

// NewTokenLocksJob creates the token locks job
func NewTokenLocksJob(tokens *governance.TokenLedger, batchSize int) Job {
	return &tokenLocksJob{tokens: tokens, batchSize: batchLimit(batchSize)}
}

func (j *tokenLocksJob) Name() string {
	return JobTokenLocks
}

func (j *tokenLocksJob) Run(ctx context.Context) error {
	total := 0
	for {
		released, err := j.tokens.ReleaseExpiredLocks(ctx, j.batchSize)
		if err != nil {
			return fmt.Errorf("failed to release expired locks: %w", err)
		}
		total += len(released)
		if len(released) == 0 || len(released) < j.batchSize || ctx.Err() != nil {
			break
		}
	}

	logger.DebugCtx(ctx, "Token lock sweep finished", zap.Int("released", total))
	return nil
}

// treasuryMetricsJob appends a metric snapshot and reports reserve and allocation drift
type treasuryMetricsJob struct {
	ledger     *treasury.Ledger
	strategies *treasury.AllocationStrategies
}

// NewTreasuryMetricsJob creates the treasury metrics job
func NewTreasuryMetricsJob(ledger *treasury.Ledger, strategies *treasury.AllocationStrategies) Job {
	return &treasuryMetricsJob{ledger: ledger, strategies: strategies}
}

func (j *treasuryMetricsJob) Name() string {
	return JobTreasuryMetrics
}

func (j *treasuryMetricsJob) Run(ctx context.Context) error {
	metric, err := j.ledger.SnapshotMetrics(ctx)
	if err != nil {
		return fmt.Errorf("failed to snapshot treasury metrics: %w", err)
	}
	if !metric.IsReserveRatioHealthy(j.ledger.ReserveRatioTarget()) {
		logger.WarnCtx(ctx, "Treasury reserve ratio below target",
			zap.String("reserve_ratio", metric.ReserveRatio.String()),
			zap.String("target", j.ledger.ReserveRatioTarget().String()))
	}

	strategy, err := j.strategies.Active(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load allocation strategy: %w", err)
	}

	balances, err := j.ledger.Balances(ctx)
	if err != nil {
		return fmt.Errorf("failed to list balances: %w", err)
	}
	for _, d := range treasury.AllocationDrift(balances, strategy) {
		if !d.NeedsRebalance {
			continue
		}
		logger.WarnCtx(ctx, "Treasury allocation drifted from strategy",
			zap.String("strategy", strategy.Name),
			zap.String("asset_type", string(d.AssetType)),
			zap.String("target", d.Target.String()),
			zap.String("actual", d.Actual.String()),
			zap.String("deviation", d.Deviation.String()))
	}
	return nil
}
