package store

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/feral-file/ff-dao/internal/domain"
	"github.com/feral-file/ff-dao/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

func buildTestProposal(proposer string, status domain.ProposalStatus) *schema.Proposal {
	return &schema.Proposal{
		Title:       "Fund the community grants round",
		Description: "Allocate treasury funds to the Q3 grants round",
		Proposer:    proposer,
		Status:      status,
		Metadata:    datatypes.JSON(`{"category":"grants"}`),
	}
}

func buildTestAsset(symbol string, assetType domain.AssetType, stable bool) *schema.Asset {
	return &schema.Asset{
		Name:      symbol + " asset",
		Symbol:    symbol,
		AssetType: assetType,
		Decimals:  18,
		IsStable:  stable,
	}
}

func buildTestGuardian(userID string, now time.Time) *schema.Guardian {
	return &schema.Guardian{
		UserID:    userID,
		TermStart: now.Add(-24 * time.Hour),
		TermEnd:   now.Add(365 * 24 * time.Hour),
		IsActive:  true,
	}
}

func buildTestTransaction(assetID uint64, txType domain.TransactionType) *schema.TreasuryTransaction {
	return &schema.TreasuryTransaction{
		AssetID:         assetID,
		Amount:          decimal.RequireFromString("10.5"),
		USDValue:        decimal.RequireFromString("1050.00"),
		TransactionType: txType,
		Status:          domain.TransactionStatusPending,
		Description:     "operational expense",
		Proposer:        "0x1111111111111111111111111111111111111111",
	}
}

func ptr[T any](v T) *T {
	return &v
}

// =============================================================================
// Test: Proposals
// =============================================================================

func testProposals(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("create, get and update proposal", func(t *testing.T) {
		proposal := buildTestProposal("0xaaaa", domain.ProposalStatusDraft)
		require.NoError(t, store.CreateProposal(ctx, proposal))
		require.NotZero(t, proposal.ID)

		got, err := store.GetProposal(ctx, proposal.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, proposal.Title, got.Title)
		assert.Equal(t, domain.ProposalStatusDraft, got.Status)
		assert.JSONEq(t, `{"category":"grants"}`, string(got.Metadata))

		got.Status = domain.ProposalStatusDiscussion
		got.DiscussionStartTime = &now
		require.NoError(t, store.UpdateProposal(ctx, got))

		locked, err := store.GetProposalForUpdate(ctx, proposal.ID)
		require.NoError(t, err)
		require.NotNil(t, locked)
		assert.Equal(t, domain.ProposalStatusDiscussion, locked.Status)
		require.NotNil(t, locked.DiscussionStartTime)
		assert.WithinDuration(t, now, *locked.DiscussionStartTime, time.Millisecond)
	})

	t.Run("missing proposal returns nil", func(t *testing.T) {
		got, err := store.GetProposal(ctx, 999999)
		require.NoError(t, err)
		assert.Nil(t, got)

		locked, err := store.GetProposalForUpdate(ctx, 999999)
		require.NoError(t, err)
		assert.Nil(t, locked)
	})

	t.Run("list proposals filters by status and proposer", func(t *testing.T) {
		for i := range 3 {
			require.NoError(t, store.CreateProposal(ctx, buildTestProposal(fmt.Sprintf("0xlist%d", i), domain.ProposalStatusVoting)))
		}
		require.NoError(t, store.CreateProposal(ctx, buildTestProposal("0xlist0", domain.ProposalStatusRejected)))

		voting, total, err := store.ListProposals(ctx, ProposalQueryFilter{
			Statuses: []domain.ProposalStatus{domain.ProposalStatusVoting},
			Limit:    2,
		})
		require.NoError(t, err)
		assert.Equal(t, uint64(3), total)
		assert.Len(t, voting, 2)
		assert.Greater(t, voting[0].ID, voting[1].ID)

		byProposer, total, err := store.ListProposals(ctx, ProposalQueryFilter{Proposer: ptr("0xlist0")})
		require.NoError(t, err)
		assert.Equal(t, uint64(2), total)
		assert.Len(t, byProposer, 2)
	})

	t.Run("list due proposals", func(t *testing.T) {
		discussionPeriod := 14 * 24 * time.Hour

		dueDiscussion := buildTestProposal("0xdue", domain.ProposalStatusDiscussion)
		dueDiscussion.DiscussionStartTime = ptr(now.Add(-discussionPeriod - time.Minute))
		require.NoError(t, store.CreateProposal(ctx, dueDiscussion))

		freshDiscussion := buildTestProposal("0xdue", domain.ProposalStatusDiscussion)
		freshDiscussion.DiscussionStartTime = ptr(now.Add(-time.Hour))
		require.NoError(t, store.CreateProposal(ctx, freshDiscussion))

		dueVoting := buildTestProposal("0xdue", domain.ProposalStatusVoting)
		dueVoting.VotingEndTime = ptr(now.Add(-time.Minute))
		require.NoError(t, store.CreateProposal(ctx, dueVoting))

		dueQueued := buildTestProposal("0xdue", domain.ProposalStatusQueued)
		dueQueued.ExecutionTime = ptr(now.Add(-time.Minute))
		require.NoError(t, store.CreateProposal(ctx, dueQueued))

		lockedApproved := buildTestProposal("0xdue", domain.ProposalStatusApproved)
		lockedApproved.ExecutionTime = ptr(now.Add(time.Hour))
		require.NoError(t, store.CreateProposal(ctx, lockedApproved))

		due, err := store.ListDueProposals(ctx, DueProposalsFilter{
			Now:              now,
			DiscussionPeriod: discussionPeriod,
		})
		require.NoError(t, err)

		ids := make([]uint64, 0, len(due))
		for _, p := range due {
			ids = append(ids, p.ID)
		}
		assert.Contains(t, ids, dueDiscussion.ID)
		assert.Contains(t, ids, dueVoting.ID)
		assert.Contains(t, ids, dueQueued.ID)
		assert.NotContains(t, ids, freshDiscussion.ID)
		assert.NotContains(t, ids, lockedApproved.ID)
	})
}

// =============================================================================
// Test: Votes and comments
// =============================================================================

func testVotes(t *testing.T, store Store) {
	ctx := context.Background()

	proposal := buildTestProposal("0xaaaa", domain.ProposalStatusVoting)
	require.NoError(t, store.CreateProposal(ctx, proposal))

	t.Run("create and list votes", func(t *testing.T) {
		require.NoError(t, store.CreateVote(ctx, &schema.Vote{ProposalID: proposal.ID, Voter: "0xv1", VoteCount: 5, VoteCost: 25, IsFor: true}))
		require.NoError(t, store.CreateVote(ctx, &schema.Vote{ProposalID: proposal.ID, Voter: "0xv2", VoteCount: 3, VoteCost: 9, IsFor: false}))

		votes, err := store.ListVotes(ctx, proposal.ID)
		require.NoError(t, err)
		require.Len(t, votes, 2)
		assert.Equal(t, "0xv1", votes[0].Voter)

		vote, err := store.GetVote(ctx, proposal.ID, "0xv2")
		require.NoError(t, err)
		require.NotNil(t, vote)
		assert.Equal(t, int64(9), vote.VoteCost)
		assert.False(t, vote.IsFor)

		missing, err := store.GetVote(ctx, proposal.ID, "0xnobody")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("duplicate vote is rejected", func(t *testing.T) {
		err := store.WithTransaction(ctx, func(tx Store) error {
			return tx.CreateVote(ctx, &schema.Vote{ProposalID: proposal.ID, Voter: "0xv1", VoteCount: 1, VoteCost: 1, IsFor: true})
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrAlreadyVoted)
	})

	t.Run("comments are listed oldest first", func(t *testing.T) {
		for i := range 3 {
			require.NoError(t, store.CreateComment(ctx, &schema.ProposalComment{
				ProposalID: proposal.ID,
				Author:     "0xv1",
				Content:    fmt.Sprintf("comment %d", i),
			}))
		}

		comments, total, err := store.ListComments(ctx, proposal.ID, 2, 1)
		require.NoError(t, err)
		assert.Equal(t, uint64(3), total)
		require.Len(t, comments, 2)
		assert.Equal(t, "comment 1", comments[0].Content)
		assert.Equal(t, "comment 2", comments[1].Content)
	})
}

// =============================================================================
// Test: Governance tokens
// =============================================================================

func testGovernanceTokens(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("create, lock and update token", func(t *testing.T) {
		token := &schema.GovernanceToken{Holder: "0xholder1", Balance: 100}
		require.NoError(t, store.CreateToken(ctx, token))

		locked, err := store.GetTokenForUpdate(ctx, "0xholder1")
		require.NoError(t, err)
		require.NotNil(t, locked)
		assert.Equal(t, int64(100), locked.Balance)

		until := now.Add(30 * 24 * time.Hour)
		locked.Balance = 75
		locked.IsLocked = true
		locked.LockedUntil = &until
		locked.DelegatedTo = ptr("0xdelegate")
		require.NoError(t, store.UpdateToken(ctx, locked))

		got, err := store.GetToken(ctx, "0xholder1")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, int64(75), got.Balance)
		assert.True(t, got.LockedAt(now))
		assert.Equal(t, "0xdelegate", *got.DelegatedTo)
	})

	t.Run("duplicate holder is rejected", func(t *testing.T) {
		err := store.WithTransaction(ctx, func(tx Store) error {
			return tx.CreateToken(ctx, &schema.GovernanceToken{Holder: "0xholder1", Balance: 1})
		})
		assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	})

	t.Run("negative balance violates the check constraint", func(t *testing.T) {
		err := store.WithTransaction(ctx, func(tx Store) error {
			token, err := tx.GetTokenForUpdate(ctx, "0xholder1")
			if err != nil {
				return err
			}
			token.Balance = -1
			return tx.UpdateToken(ctx, token)
		})
		require.Error(t, err)

		got, err := store.GetToken(ctx, "0xholder1")
		require.NoError(t, err)
		assert.Equal(t, int64(75), got.Balance)
	})

	t.Run("total supply sums balances", func(t *testing.T) {
		require.NoError(t, store.CreateToken(ctx, &schema.GovernanceToken{Holder: "0xholder2", Balance: 25}))

		supply, err := store.GetTotalSupply(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(100), supply)
	})

	t.Run("release expired locks", func(t *testing.T) {
		expired := now.Add(-time.Minute)
		future := now.Add(time.Hour)
		require.NoError(t, store.CreateToken(ctx, &schema.GovernanceToken{Holder: "0xexpired", Balance: 1, IsLocked: true, LockedUntil: &expired}))
		require.NoError(t, store.CreateToken(ctx, &schema.GovernanceToken{Holder: "0xstill", Balance: 1, IsLocked: true, LockedUntil: &future}))

		holders, err := store.ReleaseExpiredLocks(ctx, now, 100)
		require.NoError(t, err)
		assert.Equal(t, []string{"0xexpired"}, holders)

		released, err := store.GetToken(ctx, "0xexpired")
		require.NoError(t, err)
		assert.False(t, released.IsLocked)
		assert.Nil(t, released.LockedUntil)

		still, err := store.GetToken(ctx, "0xstill")
		require.NoError(t, err)
		assert.True(t, still.IsLocked)
	})
}

// =============================================================================
// Test: Membership
// =============================================================================

func testMembership(t *testing.T, store Store) {
	ctx := context.Background()
	wallet := "0x52908400098527886E0F7030069857D2E4169EE7"

	member := &schema.Member{WalletAddress: wallet, DisplayName: "alice", VerificationStatus: domain.VerificationStatusUnverified}
	require.NoError(t, store.CreateMember(ctx, member))

	t.Run("duplicate wallet is rejected", func(t *testing.T) {
		err := store.WithTransaction(ctx, func(tx Store) error {
			return tx.CreateMember(ctx, &schema.Member{WalletAddress: wallet, VerificationStatus: domain.VerificationStatusUnverified})
		})
		assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	})

	t.Run("verification request lifecycle", func(t *testing.T) {
		request := &schema.VerificationRequest{MemberID: member.ID, Status: domain.VerificationRequestPendingReview, Evidence: "ipfs://evidence"}
		require.NoError(t, store.CreateVerificationRequest(ctx, request))

		open, err := store.GetOpenVerificationRequest(ctx, member.ID)
		require.NoError(t, err)
		require.NotNil(t, open)
		assert.Equal(t, request.ID, open.ID)

		locked, err := store.GetVerificationRequestForUpdate(ctx, request.ID)
		require.NoError(t, err)
		require.NotNil(t, locked)
		locked.Status = domain.VerificationRequestApproved
		locked.ReviewedBy = ptr("0xreviewer")
		require.NoError(t, store.UpdateVerificationRequest(ctx, locked))

		open, err = store.GetOpenVerificationRequest(ctx, member.ID)
		require.NoError(t, err)
		assert.Nil(t, open)

		m, err := store.GetMemberForUpdate(ctx, member.ID)
		require.NoError(t, err)
		m.VerificationStatus = domain.VerificationStatusVerified
		m.ReputationScore += 10
		require.NoError(t, store.UpdateMember(ctx, m))

		got, err := store.GetMemberByWallet(ctx, wallet)
		require.NoError(t, err)
		assert.Equal(t, domain.VerificationStatusVerified, got.VerificationStatus)
		assert.Equal(t, 10, got.ReputationScore)
	})
}

// =============================================================================
// Test: Guardians
// =============================================================================

func testGuardians(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Now().UTC()

	guardian := buildTestGuardian("0xguardian1", now)
	require.NoError(t, store.CreateGuardian(ctx, guardian))

	got, err := store.GetGuardianByUser(ctx, "0xguardian1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.ActiveAt(now))

	got.IsActive = false
	require.NoError(t, store.UpdateGuardian(ctx, got))

	got, err = store.GetGuardianByUser(ctx, "0xguardian1")
	require.NoError(t, err)
	assert.False(t, got.ActiveAt(now))

	missing, err := store.GetGuardianByUser(ctx, "0xnobody")
	require.NoError(t, err)
	assert.Nil(t, missing)

	err = store.WithTransaction(ctx, func(tx Store) error {
		return tx.CreateGuardian(ctx, buildTestGuardian("0xguardian1", now))
	})
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)

	guardians, err := store.ListGuardians(ctx)
	require.NoError(t, err)
	assert.Len(t, guardians, 1)
}

// =============================================================================
// Test: Assets and balances
// =============================================================================

func testAssetBalances(t *testing.T, store Store) {
	ctx := context.Background()

	usdc := buildTestAsset("USDC", domain.AssetTypeStable, true)
	require.NoError(t, store.CreateAsset(ctx, usdc))
	eth := buildTestAsset("ETH", domain.AssetTypeCrypto, false)
	require.NoError(t, store.CreateAsset(ctx, eth))

	t.Run("balance row is created on first lock", func(t *testing.T) {
		balance, err := store.GetAssetBalanceForUpdate(ctx, usdc.ID)
		require.NoError(t, err)
		require.NotNil(t, balance)
		assert.True(t, balance.Balance.IsZero())

		balance.Balance = balance.Balance.Add(decimal.RequireFromString("100.25"))
		balance.USDValue = balance.USDValue.Add(decimal.RequireFromString("100.25"))
		require.NoError(t, store.UpdateAssetBalance(ctx, balance))

		again, err := store.GetAssetBalanceForUpdate(ctx, usdc.ID)
		require.NoError(t, err)
		assert.Equal(t, balance.ID, again.ID)
		assert.True(t, again.Balance.Equal(decimal.RequireFromString("100.25")))
	})

	t.Run("list balances preloads assets", func(t *testing.T) {
		_, err := store.GetAssetBalanceForUpdate(ctx, eth.ID)
		require.NoError(t, err)

		balances, err := store.ListAssetBalances(ctx)
		require.NoError(t, err)
		require.Len(t, balances, 2)
		assert.Equal(t, "USDC", balances[0].Asset.Symbol)
		assert.True(t, balances[0].Asset.IsStable)
		assert.Equal(t, "ETH", balances[1].Asset.Symbol)
	})

	t.Run("duplicate symbol is rejected", func(t *testing.T) {
		err := store.WithTransaction(ctx, func(tx Store) error {
			return tx.CreateAsset(ctx, buildTestAsset("ETH", domain.AssetTypeCrypto, false))
		})
		assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	})
}

// =============================================================================
// Test: Treasury transactions and approvals
// =============================================================================

func testTreasuryTransactions(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Now().UTC()

	asset := buildTestAsset("DAI", domain.AssetTypeStable, true)
	require.NoError(t, store.CreateAsset(ctx, asset))
	g1 := buildTestGuardian("0xg1", now)
	require.NoError(t, store.CreateGuardian(ctx, g1))
	g2 := buildTestGuardian("0xg2", now)
	require.NoError(t, store.CreateGuardian(ctx, g2))

	transaction := buildTestTransaction(asset.ID, domain.TransactionTypeExpense)
	require.NoError(t, store.CreateTransaction(ctx, transaction))
	other := buildTestTransaction(asset.ID, domain.TransactionTypeDeposit)
	require.NoError(t, store.CreateTransaction(ctx, other))

	t.Run("get transaction preloads asset", func(t *testing.T) {
		got, err := store.GetTransaction(ctx, transaction.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "DAI", got.Asset.Symbol)
		assert.Nil(t, got.DestinationAsset)
		assert.True(t, got.Amount.Equal(decimal.RequireFromString("10.5")))
	})

	t.Run("approvals are counted per decision", func(t *testing.T) {
		require.NoError(t, store.CreateApproval(ctx, &schema.TransactionApproval{TransactionID: transaction.ID, GuardianID: g1.ID, Approved: true}))
		require.NoError(t, store.CreateApproval(ctx, &schema.TransactionApproval{TransactionID: transaction.ID, GuardianID: g2.ID, Approved: false, Comment: "too large"}))

		approved, rejected, err := store.CountApprovals(ctx, transaction.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, approved)
		assert.Equal(t, 1, rejected)

		approval, err := store.GetApproval(ctx, transaction.ID, g2.ID)
		require.NoError(t, err)
		require.NotNil(t, approval)
		assert.Equal(t, "too large", approval.Comment)

		approvals, err := store.ListApprovals(ctx, transaction.ID)
		require.NoError(t, err)
		assert.Len(t, approvals, 2)
	})

	t.Run("duplicate approval is rejected", func(t *testing.T) {
		err := store.WithTransaction(ctx, func(tx Store) error {
			return tx.CreateApproval(ctx, &schema.TransactionApproval{TransactionID: transaction.ID, GuardianID: g1.ID, Approved: true})
		})
		assert.ErrorIs(t, err, domain.ErrDuplicateApproval)
	})

	t.Run("pending transactions exclude decided ones", func(t *testing.T) {
		pending, err := store.ListPendingTransactionsForGuardian(ctx, g1.ID, 10)
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, other.ID, pending[0].ID)
	})

	t.Run("update and list by status", func(t *testing.T) {
		locked, err := store.GetTransactionForUpdate(ctx, other.ID)
		require.NoError(t, err)
		locked.Status = domain.TransactionStatusExecuted
		locked.ExecutedAt = &now
		require.NoError(t, store.UpdateTransaction(ctx, locked))

		executed, total, err := store.ListTransactions(ctx, TransactionQueryFilter{
			Statuses: []domain.TransactionStatus{domain.TransactionStatusExecuted},
		})
		require.NoError(t, err)
		assert.Equal(t, uint64(1), total)
		require.Len(t, executed, 1)
		assert.Equal(t, other.ID, executed[0].ID)

		byAsset, total, err := store.ListTransactions(ctx, TransactionQueryFilter{AssetID: &asset.ID})
		require.NoError(t, err)
		assert.Equal(t, uint64(2), total)
		assert.Len(t, byAsset, 2)
	})
}

// =============================================================================
// Test: Metrics, circuit breaker, allocation
// =============================================================================

func testTreasuryMetrics(t *testing.T, store Store) {
	ctx := context.Background()
	base := time.Now().UTC().Add(-time.Hour)

	for i := range 3 {
		require.NoError(t, store.CreateMetric(ctx, &schema.TreasuryMetric{
			Timestamp:              base.Add(time.Duration(i) * time.Minute),
			TotalValueUSD:          decimal.NewFromInt(int64(100 * (i + 1))),
			StableAssetsValueUSD:   decimal.NewFromInt(50),
			VolatileAssetsValueUSD: decimal.NewFromInt(int64(100*(i+1) - 50)),
			ReserveRatio:           decimal.NewFromInt(50).Div(decimal.NewFromInt(int64(100 * (i + 1)))).Round(4),
		}))
	}

	latest, err := store.GetLatestMetric(ctx)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.True(t, latest.TotalValueUSD.Equal(decimal.NewFromInt(300)))

	history, err := store.ListMetrics(ctx, base.Add(time.Minute), 10)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.True(t, history[0].Timestamp.Before(history[1].Timestamp))
}

func testCircuitBreakers(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Now().UTC()

	active, err := store.GetActiveCircuitBreaker(ctx)
	require.NoError(t, err)
	assert.Nil(t, active)

	breaker := &schema.CircuitBreaker{IsActive: true, ActivationTime: now, Reason: "oracle anomaly", ActivatedBy: "0xadmin"}
	require.NoError(t, store.CreateCircuitBreaker(ctx, breaker))

	err = store.WithTransaction(ctx, func(tx Store) error {
		return tx.CreateCircuitBreaker(ctx, &schema.CircuitBreaker{IsActive: true, ActivationTime: now, Reason: "again", ActivatedBy: "0xadmin"})
	})
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)

	locked, err := store.GetActiveCircuitBreakerForUpdate(ctx)
	require.NoError(t, err)
	require.NotNil(t, locked)
	locked.IsActive = false
	locked.DeactivationTime = &now
	locked.DeactivatedBy = ptr("0xadmin")
	require.NoError(t, store.UpdateCircuitBreaker(ctx, locked))

	active, err = store.GetActiveCircuitBreaker(ctx)
	require.NoError(t, err)
	assert.Nil(t, active)

	require.NoError(t, store.CreateCircuitBreaker(ctx, &schema.CircuitBreaker{IsActive: true, ActivationTime: now.Add(time.Minute), Reason: "second", ActivatedBy: "0xadmin"}))

	history, total, err := store.ListCircuitBreakers(ctx, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), total)
	require.Len(t, history, 2)
	assert.Equal(t, "second", history[0].Reason)
}

func testAllocationStrategies(t *testing.T, store Store) {
	ctx := context.Background()

	conservative := &schema.AllocationStrategy{
		Name:                      "conservative",
		MinStableAssetsPercentage: decimal.NewFromInt(60),
		MaxSingleAssetPercentage:  decimal.NewFromInt(20),
		RebalanceThreshold:        decimal.NewFromInt(5),
		Allocations: []schema.AssetAllocation{
			{AssetType: domain.AssetTypeStable, TargetPercentage: decimal.NewFromInt(60)},
			{AssetType: domain.AssetTypeCrypto, TargetPercentage: decimal.NewFromInt(40)},
		},
	}
	require.NoError(t, store.CreateAllocationStrategy(ctx, conservative))
	growth := &schema.AllocationStrategy{
		Name:                      "growth",
		MinStableAssetsPercentage: decimal.NewFromInt(30),
		MaxSingleAssetPercentage:  decimal.NewFromInt(30),
		RebalanceThreshold:        decimal.NewFromInt(10),
	}
	require.NoError(t, store.CreateAllocationStrategy(ctx, growth))

	got, err := store.GetAllocationStrategy(ctx, conservative.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Len(t, got.Allocations, 2)

	require.NoError(t, store.ActivateAllocationStrategy(ctx, conservative.ID))
	require.NoError(t, store.ActivateAllocationStrategy(ctx, growth.ID))

	active, err := store.GetActiveAllocationStrategy(ctx)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, "growth", active.Name)

	strategies, err := store.ListAllocationStrategies(ctx)
	require.NoError(t, err)
	require.Len(t, strategies, 2)
	assert.False(t, strategies[0].IsActive)
	assert.True(t, strategies[1].IsActive)

	err = store.ActivateAllocationStrategy(ctx, 999999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// =============================================================================
// Test: Journal
// =============================================================================

func testJournal(t *testing.T, store Store) {
	ctx := context.Background()

	for i := range 4 {
		subjectType := schema.SubjectTypeProposal
		if i%2 == 1 {
			subjectType = schema.SubjectTypeTransaction
		}
		require.NoError(t, store.AppendJournal(ctx, &schema.GovernanceJournal{
			SubjectType: subjectType,
			SubjectID:   fmt.Sprintf("%d", i),
			Action:      "test",
			Actor:       "0xactor",
			ChangedAt:   time.Now().UTC(),
			Meta:        datatypes.JSON(`{"i":` + fmt.Sprintf("%d", i) + `}`),
		}))
	}

	all, total, err := store.ListJournal(ctx, JournalQueryFilter{})
	require.NoError(t, err)
	assert.Equal(t, uint64(4), total)
	require.Len(t, all, 4)

	proposals, total, err := store.ListJournal(ctx, JournalQueryFilter{SubjectTypes: []schema.SubjectType{schema.SubjectTypeProposal}})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), total)
	assert.Len(t, proposals, 2)

	after, _, err := store.ListJournal(ctx, JournalQueryFilter{Anchor: &all[1].Cursor, Limit: 10})
	require.NoError(t, err)
	require.Len(t, after, 2)
	assert.Equal(t, all[2].Cursor, after[0].Cursor)
}

// =============================================================================
// Concurrency tests (committed data)
// =============================================================================

func testConcurrentDuplicateVotes(t *testing.T, store Store) {
	ctx := context.Background()

	proposal := buildTestProposal("0xaaaa", domain.ProposalStatusVoting)
	require.NoError(t, store.CreateProposal(ctx, proposal))

	const attempts = 10
	var (
		wg         sync.WaitGroup
		successes  atomic.Int32
		duplicates atomic.Int32
	)
	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := store.WithTransaction(ctx, func(tx Store) error {
				return tx.CreateVote(ctx, &schema.Vote{ProposalID: proposal.ID, Voter: "0xsame", VoteCount: 1, VoteCost: 1, IsFor: true})
			})
			switch {
			case err == nil:
				successes.Add(1)
			case assert.ErrorIs(t, err, domain.ErrAlreadyVoted):
				duplicates.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), successes.Load())
	assert.Equal(t, int32(attempts-1), duplicates.Load())
}

func testConcurrentTokenUpdates(t *testing.T, store Store) {
	ctx := context.Background()
	require.NoError(t, store.CreateToken(ctx, &schema.GovernanceToken{Holder: "0xcounter", Balance: 0}))

	const workers = 20
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := store.WithTransaction(ctx, func(tx Store) error {
				token, err := tx.GetTokenForUpdate(ctx, "0xcounter")
				if err != nil {
					return err
				}
				token.Balance++
				return tx.UpdateToken(ctx, token)
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	token, err := store.GetToken(ctx, "0xcounter")
	require.NoError(t, err)
	assert.Equal(t, int64(workers), token.Balance)
}

func testConcurrentCircuitBreakerActivation(t *testing.T, store Store) {
	ctx := context.Background()

	const attempts = 5
	var (
		wg        sync.WaitGroup
		successes atomic.Int32
	)
	for i := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := store.CreateCircuitBreaker(ctx, &schema.CircuitBreaker{
				IsActive:       true,
				ActivationTime: time.Now().UTC(),
				Reason:         fmt.Sprintf("attempt %d", i),
				ActivatedBy:    "0xadmin",
			})
			if err == nil {
				successes.Add(1)
				return
			}
			assert.ErrorIs(t, err, domain.ErrAlreadyExists)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), successes.Load())
}

// =============================================================================
// Test Runner
// =============================================================================

// RunStoreTests runs all store tests with the provided store factory
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"Proposals", testProposals},
		{"Votes", testVotes},
		{"GovernanceTokens", testGovernanceTokens},
		{"Membership", testMembership},
		{"Guardians", testGuardians},
		{"AssetBalances", testAssetBalances},
		{"TreasuryTransactions", testTreasuryTransactions},
		{"TreasuryMetrics", testTreasuryMetrics},
		{"CircuitBreakers", testCircuitBreakers},
		{"AllocationStrategies", testAllocationStrategies},
		{"Journal", testJournal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			tt.fn(t, store)
		})
	}
}

// RunConcurrencyTests runs the tests that exercise row locks and unique indexes across connections
func RunConcurrencyTests(t *testing.T, initDB func(t *testing.T) Store) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"ConcurrentDuplicateVotes", testConcurrentDuplicateVotes},
		{"ConcurrentTokenUpdates", testConcurrentTokenUpdates},
		{"ConcurrentCircuitBreakerActivation", testConcurrentCircuitBreakerActivation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			tt.fn(t, store)
		})
	}
}
