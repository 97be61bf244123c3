package treasury

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-dao/internal/adapter"
	"github.com/feral-file/ff-dao/internal/domain"
	"github.com/feral-file/ff-dao/internal/journal"
	"github.com/feral-file/ff-dao/internal/store"
	"github.com/feral-file/ff-dao/internal/store/pgtest"
	"github.com/feral-file/ff-dao/internal/store/schema"
	"github.com/feral-file/ff-dao/internal/types"
)

// countingExecutor counts the executions that reach the ledger
type countingExecutor struct {
	ledger *Ledger
	calls  atomic.Int32
}

func (c *countingExecutor) Execute(ctx context.Context, id uint64, actor string) (*schema.TreasuryTransaction, error) {
	c.calls.Add(1)
	return c.ledger.Execute(ctx, id, actor)
}

type treasury struct {
	store    store.Store
	clock    *adapter.FixedClock
	executor *countingExecutor
	ledger   *Ledger
	engine   *GuardianApprovalEngine
	breaker  *CircuitBreaker
	assets   *AssetRegistry
}

func newTreasury(t *testing.T) *treasury {
	db := pgtest.Shared(t)
	st := store.NewPGStore(db.DB)
	clock := &adapter.FixedClock{At: testNow}
	recorder := journal.NewRecorder(adapter.NewJSON(), adapter.NewJCS())
	params := DefaultParams()

	ledger := NewLedger(st, params, clock, nil, recorder)
	executor := &countingExecutor{ledger: ledger}
	guardians := NewGuardianRegistry(st, params, clock, recorder)

	ctx := context.Background()
	for i := 1; i <= params.GuardianCount; i++ {
		_, err := guardians.Add(ctx, guardianAddr(i), testNow.Add(-time.Hour), testNow.Add(365*24*time.Hour), "0xadmin")
		require.NoError(t, err)
	}

	return &treasury{
		store:    st,
		clock:    clock,
		executor: executor,
		ledger:   ledger,
		engine:   NewGuardianApprovalEngine(st, params, clock, guardians, executor, nil, recorder),
		breaker:  NewCircuitBreaker(st, clock, nil, recorder),
		assets:   NewAssetRegistry(st, clock),
	}
}

func (tr *treasury) asset(t *testing.T, symbol string, assetType domain.AssetType) *schema.Asset {
	a, err := tr.assets.Create(context.Background(), CreateAssetInput{Name: symbol, Symbol: symbol, AssetType: assetType, Decimals: 18})
	require.NoError(t, err)
	return a
}

func (tr *treasury) propose(t *testing.T, input ProposeInput) *schema.TreasuryTransaction {
	if input.Proposer == "" {
		input.Proposer = proposerAddr
	}
	tx, err := tr.engine.Propose(context.Background(), input)
	require.NoError(t, err)
	return tx
}

// approve submits approvals from guardians first..last
func (tr *treasury) approve(t *testing.T, id uint64, first, last int) {
	for i := first; i <= last; i++ {
		_, err := tr.engine.SubmitApproval(context.Background(), id, guardianAddr(i), true, "")
		require.NoError(t, err)
	}
}

func (tr *treasury) balance(t *testing.T, assetID uint64) *schema.AssetBalance {
	balances, err := tr.ledger.Balances(context.Background())
	require.NoError(t, err)
	for _, b := range balances {
		if b.AssetID == assetID {
			return b
		}
	}
	return &schema.AssetBalance{AssetID: assetID}
}

func TestConcurrentApprovalsExecuteOnce(t *testing.T) {
	ctx := context.Background()
	tr := newTreasury(t)
	eth := tr.asset(t, "ETH", domain.AssetTypeCrypto)

	tx := tr.propose(t, ProposeInput{
		AssetID:         eth.ID,
		Amount:          dec("100"),
		USDValue:        dec("300000"),
		TransactionType: domain.TransactionTypeDeposit,
		Description:     "grant inflow",
	})
	tr.approve(t, tx.ID, 1, 3)

	var (
		wg         sync.WaitGroup
		accepted   atomic.Int32
		notPending atomic.Int32
	)
	for i := 4; i <= 9; i++ {
		wg.Add(1)
		go func(guardian string) {
			defer wg.Done()
			_, err := tr.engine.SubmitApproval(ctx, tx.ID, guardian, true, "")
			switch {
			case err == nil:
				accepted.Add(1)
			case errors.Is(err, domain.ErrNotPending):
				notPending.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(guardianAddr(i))
	}
	wg.Wait()

	assert.EqualValues(t, 1, tr.executor.calls.Load())
	assert.EqualValues(t, 2, accepted.Load())
	assert.EqualValues(t, 4, notPending.Load())

	final, err := tr.engine.Get(ctx, tx.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionStatusExecuted, final.Status)
	assert.Equal(t, 5, final.ApprovalCount)
	assert.True(t, dec("100").Equal(tr.balance(t, eth.ID).Balance))

	approvals, err := tr.engine.Approvals(ctx, tx.ID)
	require.NoError(t, err)
	assert.Len(t, approvals, 5)
}

func TestRejectionThreshold(t *testing.T) {
	ctx := context.Background()
	tr := newTreasury(t)
	usdc := tr.asset(t, "USDC", domain.AssetTypeStable)

	tx := tr.propose(t, ProposeInput{
		AssetID:         usdc.ID,
		Amount:          dec("5000"),
		USDValue:        dec("5000"),
		TransactionType: domain.TransactionTypeExpense,
		Description:     "audit invoice",
	})

	tr.approve(t, tx.ID, 1, 4)
	for i := 5; i <= 8; i++ {
		res, err := tr.engine.SubmitApproval(ctx, tx.ID, guardianAddr(i), false, "too expensive")
		require.NoError(t, err)
		assert.Equal(t, domain.TransactionStatusPending, res.Transaction.Status)
	}

	res, err := tr.engine.SubmitApproval(ctx, tx.ID, guardianAddr(9), false, "")
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionStatusRejected, res.Transaction.Status)
	assert.Equal(t, 4, res.Transaction.ApprovalCount)
	assert.Equal(t, 5, res.Transaction.RejectionCount)
	assert.Zero(t, tr.executor.calls.Load())

	_, err = tr.engine.SubmitApproval(ctx, tx.ID, guardianAddr(1), true, "")
	assert.ErrorIs(t, err, domain.ErrNotPending)
}

func TestSwapPreservesTotalValue(t *testing.T) {
	ctx := context.Background()
	tr := newTreasury(t)
	eth := tr.asset(t, "ETH", domain.AssetTypeCrypto)
	usdc := tr.asset(t, "USDC", domain.AssetTypeStable)

	deposit := tr.propose(t, ProposeInput{
		AssetID:         eth.ID,
		Amount:          dec("10"),
		USDValue:        dec("30000"),
		TransactionType: domain.TransactionTypeDeposit,
	})
	tr.approve(t, deposit.ID, 1, 5)

	before, err := tr.ledger.Summary(ctx)
	require.NoError(t, err)
	assert.True(t, dec("30000").Equal(before.TotalValueUSD))

	swap := tr.propose(t, ProposeInput{
		AssetID:            eth.ID,
		Amount:             dec("4"),
		USDValue:           dec("12000"),
		TransactionType:    domain.TransactionTypeSwap,
		DestinationAssetID: &usdc.ID,
		DestinationAmount:  types.Ptr(dec("11950")),
	})
	tr.approve(t, swap.ID, 1, 5)

	after, err := tr.ledger.Summary(ctx)
	require.NoError(t, err)
	assert.True(t, before.TotalValueUSD.Equal(after.TotalValueUSD), "total value %s", after.TotalValueUSD)
	assert.True(t, dec("0.4").Equal(after.ReserveRatio))

	assert.True(t, dec("6").Equal(tr.balance(t, eth.ID).Balance))
	assert.True(t, dec("11950").Equal(tr.balance(t, usdc.ID).Balance))

	latest, err := tr.ledger.LatestMetric(ctx)
	require.NoError(t, err)
	assert.True(t, after.TotalValueUSD.Equal(latest.TotalValueUSD))
}

func TestOverdrawnWithdrawalFails(t *testing.T) {
	ctx := context.Background()
	tr := newTreasury(t)
	usdc := tr.asset(t, "USDC", domain.AssetTypeStable)

	tx := tr.propose(t, ProposeInput{
		AssetID:         usdc.ID,
		Amount:          dec("1"),
		USDValue:        dec("1"),
		TransactionType: domain.TransactionTypeWithdrawal,
	})
	tr.approve(t, tx.ID, 1, 4)

	res, err := tr.engine.SubmitApproval(ctx, tx.ID, guardianAddr(5), true, "")
	assert.ErrorIs(t, err, domain.ErrExecutionFailed)
	require.NotNil(t, res)

	final, err := tr.engine.Get(ctx, tx.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionStatusFailed, final.Status)
	require.NotNil(t, final.FailureReason)
	assert.Contains(t, *final.FailureReason, "insufficient balance")
	assert.True(t, decimal.Zero.Equal(tr.balance(t, usdc.ID).Balance))

	_, err = tr.ledger.LatestMetric(ctx)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCircuitBreakerHoldsThenSettles(t *testing.T) {
	ctx := context.Background()
	tr := newTreasury(t)
	eth := tr.asset(t, "ETH", domain.AssetTypeCrypto)

	_, err := tr.breaker.Activate(ctx, guardianAddr(1), "key rotation")
	require.NoError(t, err)

	tx := tr.propose(t, ProposeInput{
		AssetID:         eth.ID,
		Amount:          dec("1"),
		USDValue:        dec("3000"),
		TransactionType: domain.TransactionTypeDeposit,
	})
	tr.approve(t, tx.ID, 1, 6)

	held, err := tr.engine.Get(ctx, tx.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionStatusPending, held.Status)
	assert.Equal(t, 6, held.ApprovalCount)
	assert.Zero(t, tr.executor.calls.Load())

	_, err = tr.breaker.Deactivate(ctx, guardianAddr(2))
	require.NoError(t, err)

	settled, err := tr.engine.Settle(ctx, tx.ID, "sweeper")
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionStatusExecuted, settled.Status)
	assert.EqualValues(t, 1, tr.executor.calls.Load())

	_, err = tr.engine.Settle(ctx, tx.ID, "sweeper")
	assert.ErrorIs(t, err, domain.ErrNotPending)

	history, total, err := tr.breaker.History(ctx, 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, history, 1)
	assert.False(t, history[0].IsActive)

	entries, _, err := tr.store.ListJournal(ctx, store.JournalQueryFilter{
		SubjectTypes: []schema.SubjectType{schema.SubjectTypeTransaction},
		SubjectIDs:   []string{transactionID(settled)},
		Limit:        50,
	})
	require.NoError(t, err)
	var actions []string
	for _, e := range entries {
		actions = append(actions, e.Action)
	}
	assert.Contains(t, actions, "approved")
	assert.Contains(t, actions, "execute")
}
