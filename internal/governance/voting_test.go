package governance

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-dao/internal/domain"
	"github.com/feral-file/ff-dao/internal/store/schema"
)

func votingOpen() *schema.Proposal {
	return &schema.Proposal{
		ID:               1,
		Status:           domain.ProposalStatusVoting,
		TotalVotingPower: 100,
		VotingEndTime:    timePtr(testNow.Add(24 * time.Hour)),
	}
}

func TestCastVotePreconditions(t *testing.T) {
	ctx := context.Background()

	t.Run("not voting phase", func(t *testing.T) {
		f := newFixture(t)
		p := votingOpen()
		p.Status = domain.ProposalStatusDiscussion
		f.store.EXPECT().GetProposalForUpdate(ctx, uint64(1)).Return(p, nil)

		_, err := f.votingEngine().CastVote(ctx, CastVoteInput{ProposalID: 1, Voter: voterAddr, VoteCount: 1, IsFor: true})
		assert.ErrorIs(t, err, domain.ErrNotVotingPhase)
	})

	t.Run("already voted wins over missing tokens", func(t *testing.T) {
		f := newFixture(t)
		f.store.EXPECT().GetProposalForUpdate(ctx, uint64(1)).Return(votingOpen(), nil)
		f.store.EXPECT().GetVote(ctx, uint64(1), voterAddr).Return(&schema.Vote{ID: 5}, nil)

		_, err := f.votingEngine().CastVote(ctx, CastVoteInput{ProposalID: 1, Voter: voterAddr, VoteCount: 1, IsFor: true})
		assert.ErrorIs(t, err, domain.ErrAlreadyVoted)
	})

	t.Run("no tokens", func(t *testing.T) {
		f := newFixture(t)
		f.store.EXPECT().GetProposalForUpdate(ctx, uint64(1)).Return(votingOpen(), nil)
		f.store.EXPECT().GetVote(ctx, uint64(1), voterAddr).Return(nil, nil)
		f.store.EXPECT().GetTokenForUpdate(ctx, voterAddr).Return(nil, nil)

		_, err := f.votingEngine().CastVote(ctx, CastVoteInput{ProposalID: 1, Voter: voterAddr, VoteCount: 1, IsFor: true})
		assert.ErrorIs(t, err, domain.ErrNoTokens)
	})

	t.Run("insufficient balance wins over power cap", func(t *testing.T) {
		f := newFixture(t)
		p := votingOpen()
		p.TotalVotingPower = 10
		f.store.EXPECT().GetProposalForUpdate(ctx, uint64(1)).Return(p, nil)
		f.store.EXPECT().GetVote(ctx, uint64(1), voterAddr).Return(nil, nil)
		f.store.EXPECT().GetTokenForUpdate(ctx, voterAddr).Return(&schema.GovernanceToken{Holder: voterAddr, Balance: 100}, nil)

		_, err := f.votingEngine().CastVote(ctx, CastVoteInput{ProposalID: 1, Voter: voterAddr, VoteCount: 11, IsFor: true})
		assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
		assert.Equal(t, "vote cost exceeds balance: required 121, available 100", domain.ReasonOf(err))
	})

	t.Run("exceeds power cap", func(t *testing.T) {
		f := newFixture(t)
		f.store.EXPECT().GetProposalForUpdate(ctx, uint64(1)).Return(votingOpen(), nil)
		f.store.EXPECT().GetVote(ctx, uint64(1), voterAddr).Return(nil, nil)
		f.store.EXPECT().GetTokenForUpdate(ctx, voterAddr).Return(&schema.GovernanceToken{Holder: voterAddr, Balance: 1000}, nil)

		_, err := f.votingEngine().CastVote(ctx, CastVoteInput{ProposalID: 1, Voter: voterAddr, VoteCount: 26, IsFor: true})
		assert.ErrorIs(t, err, domain.ErrExceedsPowerCap)
	})

	t.Run("oversized count on a closed proposal", func(t *testing.T) {
		f := newFixture(t)
		p := votingOpen()
		p.Status = domain.ProposalStatusDraft
		f.store.EXPECT().GetProposalForUpdate(ctx, uint64(1)).Return(p, nil)

		_, err := f.votingEngine().CastVote(ctx, CastVoteInput{ProposalID: 1, Voter: voterAddr, VoteCount: maxVoteCount + 1, IsFor: true})
		assert.ErrorIs(t, err, domain.ErrNotVotingPhase)
	})

	t.Run("oversized count is unaffordable", func(t *testing.T) {
		f := newFixture(t)
		f.store.EXPECT().GetProposalForUpdate(ctx, uint64(1)).Return(votingOpen(), nil)
		f.store.EXPECT().GetVote(ctx, uint64(1), voterAddr).Return(nil, nil)
		f.store.EXPECT().GetTokenForUpdate(ctx, voterAddr).Return(&schema.GovernanceToken{Holder: voterAddr, Balance: 1000}, nil)

		_, err := f.votingEngine().CastVote(ctx, CastVoteInput{ProposalID: 1, Voter: voterAddr, VoteCount: maxVoteCount + 1, IsFor: true})
		assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
		assert.NotErrorIs(t, err, domain.ErrInvalidArgument)
	})

	t.Run("non-positive vote count", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.votingEngine().CastVote(ctx, CastVoteInput{ProposalID: 1, Voter: voterAddr, VoteCount: 0, IsFor: true})
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})

	t.Run("proposal not found", func(t *testing.T) {
		f := newFixture(t)
		f.store.EXPECT().GetProposalForUpdate(ctx, uint64(1)).Return(nil, nil)
		_, err := f.votingEngine().CastVote(ctx, CastVoteInput{ProposalID: 1, Voter: voterAddr, VoteCount: 1, IsFor: true})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestCastVoteSuccess(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	p := votingOpen()
	token := &schema.GovernanceToken{ID: 7, Holder: voterAddr, Balance: 100}

	gomock.InOrder(
		f.store.EXPECT().GetProposalForUpdate(ctx, uint64(1)).Return(p, nil),
		f.store.EXPECT().GetVote(ctx, uint64(1), voterAddr).Return(nil, nil),
		f.store.EXPECT().GetTokenForUpdate(ctx, voterAddr).Return(token, nil),
		f.store.EXPECT().CreateVote(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, v *schema.Vote) error {
				assert.Equal(t, int64(10), v.VoteCount)
				assert.Equal(t, int64(100), v.VoteCost)
				return nil
			}),
		f.store.EXPECT().UpdateToken(ctx, token).Return(nil),
		f.store.EXPECT().ListVotes(ctx, uint64(1)).Return([]*schema.Vote{
			{Voter: otherAddr, VoteCount: 4, IsFor: false},
			{Voter: voterAddr, VoteCount: 10, IsFor: true},
		}, nil),
		f.store.EXPECT().UpdateProposal(ctx, p).Return(nil),
	)

	vote, err := f.votingEngine().CastVote(ctx, CastVoteInput{ProposalID: 1, Voter: voterAddr, VoteCount: 10, IsFor: true})
	require.NoError(t, err)
	assert.Equal(t, voterAddr, vote.Voter)

	assert.Equal(t, int64(0), token.Balance)
	assert.True(t, token.IsLocked)
	require.NotNil(t, token.LockedUntil)
	assert.Equal(t, testNow.Add(f.params.LockPeriod), *token.LockedUntil)

	assert.Equal(t, int64(10), p.TotalVotesFor)
	assert.Equal(t, int64(4), p.TotalVotesAgainst)
}

func TestListVotes(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.store.EXPECT().GetProposal(ctx, uint64(2)).Return(nil, nil)
	_, err := f.votingEngine().ListVotes(ctx, 2)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	f.store.EXPECT().GetProposal(ctx, uint64(1)).Return(&schema.Proposal{ID: 1}, nil)
	f.store.EXPECT().ListVotes(ctx, uint64(1)).Return([]*schema.Vote{{ID: 1}}, nil)
	votes, err := f.votingEngine().ListVotes(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, votes, 1)
}
