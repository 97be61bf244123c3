package executor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-dao/internal/adapter"
	"github.com/feral-file/ff-dao/internal/domain"
	"github.com/feral-file/ff-dao/internal/governance"
	"github.com/feral-file/ff-dao/internal/journal"
	"github.com/feral-file/ff-dao/internal/mocks"
	"github.com/feral-file/ff-dao/internal/store"
	"github.com/feral-file/ff-dao/internal/store/schema"
	"github.com/feral-file/ff-dao/internal/treasury"
)

var testNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

const proposer = "0x00000000000000000000000000000000000000aa"

type fixture struct {
	store     *mocks.MockStore
	lifecycle *mocks.MockLifecycleStarter
	executor  Executor
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	st := mocks.NewMockStore(ctrl)
	st.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(tx store.Store) error) error {
			return fn(st)
		}).AnyTimes()
	st.EXPECT().AppendJournal(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	pub := mocks.NewMockPublisher(ctrl)
	pub.EXPECT().PublishEvent(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	clock := &adapter.FixedClock{At: testNow}
	recorder := journal.NewRecorder(adapter.NewJSON(), adapter.NewJCS())
	lifecycle := mocks.NewMockLifecycleStarter(ctrl)

	return &fixture{
		store:     st,
		lifecycle: lifecycle,
		executor: NewExecutor(Services{
			Store:      st,
			Proposals:  governance.NewStateMachine(st, governance.DefaultParams(), clock, adapter.NewJSON(), pub, recorder),
			Ledger:     treasury.NewLedger(st, treasury.DefaultParams(), clock, pub, recorder),
			Breaker:    treasury.NewCircuitBreaker(st, clock, pub, recorder),
			Strategies: treasury.NewAllocationStrategies(st, clock, recorder),
			Lifecycle:  lifecycle,
		}),
	}
}

func TestStartDiscussion(t *testing.T) {
	ctx := context.Background()
	draft := func() *schema.Proposal {
		return &schema.Proposal{ID: 3, Proposer: proposer, Status: domain.ProposalStatusDraft}
	}

	t.Run("starts the lifecycle workflow", func(t *testing.T) {
		f := newFixture(t)
		f.store.EXPECT().GetProposalForUpdate(ctx, uint64(3)).Return(draft(), nil)
		f.store.EXPECT().UpdateProposal(ctx, gomock.Any()).Return(nil)
		f.lifecycle.EXPECT().StartLifecycle(ctx, uint64(3)).Return(nil)

		result, err := f.executor.StartDiscussion(ctx, 3, proposer)
		require.NoError(t, err)
		assert.Equal(t, domain.ProposalStatusDiscussion, result.Status)
		require.NotNil(t, result.NextDeadline)
		assert.Equal(t, testNow.Add(domain.DEFAULT_DISCUSSION_PERIOD), *result.NextDeadline)
	})

	t.Run("workflow failure is not surfaced", func(t *testing.T) {
		f := newFixture(t)
		f.store.EXPECT().GetProposalForUpdate(ctx, uint64(3)).Return(draft(), nil)
		f.store.EXPECT().UpdateProposal(ctx, gomock.Any()).Return(nil)
		f.lifecycle.EXPECT().StartLifecycle(ctx, uint64(3)).Return(errors.New("temporal unavailable"))

		result, err := f.executor.StartDiscussion(ctx, 3, proposer)
		require.NoError(t, err)
		assert.Equal(t, domain.ProposalStatusDiscussion, result.Status)
	})

	t.Run("refusal skips the workflow", func(t *testing.T) {
		f := newFixture(t)
		f.store.EXPECT().GetProposalForUpdate(ctx, uint64(3)).Return(draft(), nil)

		_, err := f.executor.StartDiscussion(ctx, 3, "0x00000000000000000000000000000000000000bb")
		assert.ErrorIs(t, err, domain.ErrNotAuthorized)
	})
}

func TestCancelProposal(t *testing.T) {
	ctx := context.Background()
	approved := func() *schema.Proposal {
		return &schema.Proposal{ID: 4, Proposer: proposer, Status: domain.ProposalStatusApproved}
	}

	t.Run("passed proposal needs the emergency flag", func(t *testing.T) {
		f := newFixture(t)
		f.store.EXPECT().GetProposal(ctx, uint64(4)).Return(approved(), nil)

		_, err := f.executor.CancelProposal(ctx, 4, proposer, false)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
		assert.Contains(t, domain.ReasonOf(err), "emergency")
	})

	t.Run("emergency cancel without an authorizer", func(t *testing.T) {
		f := newFixture(t)
		f.store.EXPECT().GetProposalForUpdate(ctx, uint64(4)).Return(approved(), nil)

		_, err := f.executor.CancelProposal(ctx, 4, proposer, true)
		assert.ErrorIs(t, err, domain.ErrNotImplemented)
	})

	t.Run("draft is cancelled by its proposer", func(t *testing.T) {
		f := newFixture(t)
		draft := func() *schema.Proposal {
			return &schema.Proposal{ID: 4, Proposer: proposer, Status: domain.ProposalStatusDraft}
		}
		f.store.EXPECT().GetProposal(ctx, uint64(4)).Return(draft(), nil)
		f.store.EXPECT().GetProposalForUpdate(ctx, uint64(4)).Return(draft(), nil)
		f.store.EXPECT().UpdateProposal(ctx, gomock.Any()).Return(nil)

		result, err := f.executor.CancelProposal(ctx, 4, proposer, false)
		require.NoError(t, err)
		assert.Equal(t, domain.ProposalStatusCancelled, result.Status)
		assert.Nil(t, result.NextDeadline)
	})

	t.Run("unknown proposal", func(t *testing.T) {
		f := newFixture(t)
		f.store.EXPECT().GetProposal(ctx, uint64(4)).Return(nil, nil)

		_, err := f.executor.CancelProposal(ctx, 4, proposer, false)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestListStrategiesReportsDriftOfActiveStrategy(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.store.EXPECT().ListAllocationStrategies(ctx).Return([]*schema.AllocationStrategy{
		{
			ID:                 1,
			Name:               "conservative",
			IsActive:           true,
			RebalanceThreshold: decimal.NewFromInt(5),
			Allocations: []schema.AssetAllocation{
				{AssetType: domain.AssetTypeStable, TargetPercentage: decimal.NewFromInt(50)},
				{AssetType: domain.AssetTypeCrypto, TargetPercentage: decimal.NewFromInt(50)},
			},
		},
		{ID: 2, Name: "aggressive"},
	}, nil)
	f.store.EXPECT().ListAssetBalances(ctx).Return([]*schema.AssetBalance{
		{USDValue: decimal.NewFromInt(300), Asset: schema.Asset{AssetType: domain.AssetTypeStable, IsStable: true}},
		{USDValue: decimal.NewFromInt(700), Asset: schema.Asset{AssetType: domain.AssetTypeCrypto}},
	}, nil)

	result, err := f.executor.ListStrategies(ctx)
	require.NoError(t, err)
	require.Len(t, result, 2)

	require.Len(t, result[0].Drift, 2)
	assert.True(t, result[0].Drift[0].Deviation.Equal(decimal.NewFromInt(-20)))
	assert.True(t, result[0].Drift[0].NeedsRebalance)
	assert.Empty(t, result[1].Drift)
}

func TestGetCircuitBreaker(t *testing.T) {
	ctx := context.Background()

	t.Run("inactive", func(t *testing.T) {
		f := newFixture(t)
		f.store.EXPECT().GetActiveCircuitBreaker(ctx).Return(nil, nil)

		result, err := f.executor.GetCircuitBreaker(ctx)
		require.NoError(t, err)
		assert.False(t, result.Active)
		assert.Nil(t, result.Current)
	})

	t.Run("active", func(t *testing.T) {
		f := newFixture(t)
		f.store.EXPECT().GetActiveCircuitBreaker(ctx).Return(&schema.CircuitBreaker{
			ID:             2,
			IsActive:       true,
			ActivationTime: testNow,
			Reason:         "oracle incident",
			ActivatedBy:    "admin",
		}, nil)

		result, err := f.executor.GetCircuitBreaker(ctx)
		require.NoError(t, err)
		assert.True(t, result.Active)
		require.NotNil(t, result.Current)
		assert.Equal(t, "oracle incident", result.Current.Reason)
	})
}

func TestGetJournal(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	anchor := int64(10)
	filter := store.JournalQueryFilter{
		SubjectTypes: []schema.SubjectType{schema.SubjectTypeProposal},
		Anchor:       &anchor,
		Limit:        2,
	}

	f.store.EXPECT().ListJournal(ctx, filter).Return([]*schema.GovernanceJournal{
		{Cursor: 11, SubjectType: schema.SubjectTypeProposal, SubjectID: "1", Action: "create"},
		{Cursor: 12, SubjectType: schema.SubjectTypeProposal, SubjectID: "1", Action: "start_discussion"},
	}, uint64(5), nil)

	result, err := f.executor.GetJournal(ctx, filter.SubjectTypes, nil, &anchor, 2)
	require.NoError(t, err)
	require.Len(t, result.Entries, 2)
	require.NotNil(t, result.NextAnchor)
	assert.Equal(t, int64(12), *result.NextAnchor)
	assert.Equal(t, uint64(5), result.Total)
}
