package governance

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-dao/internal/adapter"
	"github.com/feral-file/ff-dao/internal/domain"
	"github.com/feral-file/ff-dao/internal/journal"
	"github.com/feral-file/ff-dao/internal/store"
	"github.com/feral-file/ff-dao/internal/store/pgtest"
	"github.com/feral-file/ff-dao/internal/store/schema"
)

type engines struct {
	store  store.Store
	clock  *adapter.FixedClock
	params Params
	sm     *StateMachine
	voting *VotingEngine
	tokens *TokenLedger
}

func newEngines(t *testing.T, params Params) *engines {
	db := pgtest.Shared(t)
	st := store.NewPGStore(db.DB)
	clock := &adapter.FixedClock{At: testNow}
	recorder := journal.NewRecorder(adapter.NewJSON(), adapter.NewJCS())

	return &engines{
		store:  st,
		clock:  clock,
		params: params,
		sm:     NewStateMachine(st, params, clock, adapter.NewJSON(), nil, recorder),
		voting: NewVotingEngine(st, params, clock, nil, recorder),
		tokens: NewTokenLedger(st, clock, nil, recorder),
	}
}

// openVoting drafts a proposal and drives it into the voting phase
func (e *engines) openVoting(t *testing.T, ctx context.Context, title string) *schema.Proposal {
	p, err := e.sm.Create(ctx, CreateProposalInput{Proposer: proposerAddr, Title: title, Description: "integration"})
	require.NoError(t, err)

	_, err = e.sm.StartDiscussion(ctx, p.ID, proposerAddr)
	require.NoError(t, err)

	e.clock.Advance(e.params.DiscussionPeriod)
	p, err = e.sm.StartVoting(ctx, p.ID, "")
	require.NoError(t, err)
	return p
}

func TestConcurrentDuplicateVotesYieldSingleVote(t *testing.T) {
	ctx := context.Background()
	e := newEngines(t, DefaultParams())

	_, err := e.tokens.Mint(ctx, proposerAddr, 1000, "test")
	require.NoError(t, err)
	_, err = e.tokens.Mint(ctx, voterAddr, 10000, "test")
	require.NoError(t, err)

	p := e.openVoting(t, ctx, "duplicate votes")

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
			_, err := e.voting.CastVote(ctx, CastVoteInput{ProposalID: p.ID, Voter: voterAddr, VoteCount: 5, IsFor: true})
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

	votes, err := e.store.ListVotes(ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, votes, 1)

	token, err := e.store.GetToken(ctx, voterAddr)
	require.NoError(t, err)
	assert.Equal(t, int64(10000-25), token.Balance)
	assert.True(t, token.IsLocked)

	p, err = e.store.GetProposal(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), p.TotalVotesFor)
}

func TestConcurrentVotesKeepTallyAndBalances(t *testing.T) {
	ctx := context.Background()
	e := newEngines(t, DefaultParams())

	const voters = 20
	_, err := e.tokens.Mint(ctx, proposerAddr, 1000, "test")
	require.NoError(t, err)
	for i := 1; i <= voters; i++ {
		_, err := e.tokens.Mint(ctx, testAddress(i), 100, "test")
		require.NoError(t, err)
	}

	first := e.openVoting(t, ctx, "first")
	second := e.openVoting(t, ctx, "second")

	// 7 votes cost 49 and 8 votes cost 64: a balance of 100 covers only one of them
	var (
		wg           sync.WaitGroup
		successes    atomic.Int32
		insufficient atomic.Int32
	)
	for i := 1; i <= voters; i++ {
		for _, cast := range []CastVoteInput{
			{ProposalID: first.ID, Voter: testAddress(i), VoteCount: 7, IsFor: i%3 != 0},
			{ProposalID: second.ID, Voter: testAddress(i), VoteCount: 8, IsFor: i%2 == 0},
		} {
			wg.Add(1)
			go func(input CastVoteInput) {
				defer wg.Done()
				_, err := e.voting.CastVote(ctx, input)
				switch {
				case err == nil:
					successes.Add(1)
				case assert.ErrorIs(t, err, domain.ErrInsufficientBalance):
					insufficient.Add(1)
				}
			}(cast)
		}
	}
	wg.Wait()

	assert.Equal(t, int32(voters), successes.Load())
	assert.Equal(t, int32(voters), insufficient.Load())

	for i := 1; i <= voters; i++ {
		token, err := e.store.GetToken(ctx, testAddress(i))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, token.Balance, int64(0))
		assert.Contains(t, []int64{100 - 49, 100 - 64}, token.Balance)
	}

	for _, id := range []uint64{first.ID, second.ID} {
		p, err := e.store.GetProposal(ctx, id)
		require.NoError(t, err)
		votes, err := e.store.ListVotes(ctx, id)
		require.NoError(t, err)

		var sumFor, sumAgainst int64
		for _, v := range votes {
			if v.IsFor {
				sumFor += v.VoteCount
			} else {
				sumAgainst += v.VoteCount
			}
		}
		assert.Equal(t, sumFor, p.TotalVotesFor)
		assert.Equal(t, sumAgainst, p.TotalVotesAgainst)
	}
}

func TestProposalLifecycleEndToEnd(t *testing.T) {
	ctx := context.Background()
	params := DefaultParams()
	params.QuorumPercentage = 5
	e := newEngines(t, params)

	_, err := e.tokens.Mint(ctx, proposerAddr, 100, "test")
	require.NoError(t, err)
	for i := 1; i <= 4; i++ {
		_, err := e.tokens.Mint(ctx, testAddress(i), 100, "test")
		require.NoError(t, err)
	}

	p := e.openVoting(t, ctx, "lifecycle")
	assert.Equal(t, int64(500), p.TotalVotingPower)

	// 30 for, 5 against: 35 >= 25 quorum and 85.71% approval
	for i := 1; i <= 3; i++ {
		_, err := e.voting.CastVote(ctx, CastVoteInput{ProposalID: p.ID, Voter: testAddress(i), VoteCount: 10, IsFor: true})
		require.NoError(t, err)
	}
	_, err = e.voting.CastVote(ctx, CastVoteInput{ProposalID: p.ID, Voter: testAddress(4), VoteCount: 5, IsFor: false})
	require.NoError(t, err)

	_, err = e.sm.EndVoting(ctx, p.ID, "")
	assert.ErrorIs(t, err, domain.ErrTimeNotElapsed)

	e.clock.Advance(params.VotingPeriod)
	p, err = e.sm.EndVoting(ctx, p.ID, "")
	require.NoError(t, err)
	assert.Equal(t, domain.ProposalStatusApproved, p.Status)
	assert.Equal(t, int64(30), p.TotalVotesFor)
	assert.Equal(t, int64(5), p.TotalVotesAgainst)

	_, err = e.sm.Execute(ctx, p.ID, "")
	assert.ErrorIs(t, err, domain.ErrTimeNotElapsed)

	e.clock.Advance(params.Timelock)
	p, err = e.sm.Execute(ctx, p.ID, "")
	require.NoError(t, err)
	assert.Equal(t, domain.ProposalStatusExecuted, p.Status)

	entries, _, err := e.store.ListJournal(ctx, store.JournalQueryFilter{
		SubjectTypes: []schema.SubjectType{schema.SubjectTypeProposal},
	})
	require.NoError(t, err)
	var actions []string
	for _, entry := range entries {
		actions = append(actions, entry.Action)
	}
	assert.Equal(t, []string{"create", "start_discussion", "start_voting", "end_voting", "execute"}, actions)

	_, err = e.tokens.Transfer(ctx, testAddress(1), testAddress(2), 1)
	assert.ErrorIs(t, err, domain.ErrTokenLocked)

	e.clock.Advance(params.LockPeriod)
	released, err := e.tokens.ReleaseExpiredLocks(ctx, 100)
	require.NoError(t, err)
	assert.Len(t, released, 4)

	_, err = e.tokens.Transfer(ctx, testAddress(1), testAddress(2), 1)
	assert.NoError(t, err)
}
