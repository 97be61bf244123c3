package governance

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/feral-file/ff-dao/internal/adapter"
	"github.com/feral-file/ff-dao/internal/domain"
	"github.com/feral-file/ff-dao/internal/journal"
	"github.com/feral-file/ff-dao/internal/logger"
	"github.com/feral-file/ff-dao/internal/messaging"
	"github.com/feral-file/ff-dao/internal/store"
	"github.com/feral-file/ff-dao/internal/store/schema"
)

// CastVoteInput holds a quadratic vote
type CastVoteInput struct {
	ProposalID uint64
	Voter      string
	VoteCount  int64
	IsFor      bool
}

// VotingEngine validates quadratic votes and debits their cost from the voter's tokens
type VotingEngine struct {
	store     store.Store
	params    Params
	clock     adapter.Clock
	publisher messaging.Publisher
	journal   *journal.Recorder
}

// NewVotingEngine creates a voting engine
func NewVotingEngine(st store.Store, params Params, clock adapter.Clock, publisher messaging.Publisher, recorder *journal.Recorder) *VotingEngine {
	if publisher == nil {
		publisher = messaging.NewNopPublisher()
	}
	return &VotingEngine{
		store:     st,
		params:    params,
		clock:     clock,
		publisher: publisher,
		journal:   recorder,
	}
}

// CastVote records a vote, debits its cost, locks the voter's token and refreshes the tally.
// The proposal row is locked before the token row; every effect commits together.
func (e *VotingEngine) CastVote(ctx context.Context, input CastVoteInput) (*schema.Vote, error) {
	voter, err := domain.NormalizeAddress(input.Voter)
	if err != nil {
		return nil, err
	}
	if input.VoteCount <= 0 {
		return nil, domain.NewGuardError(domain.ErrInvalidArgument, "vote count must be positive: %d", input.VoteCount)
	}

	now := e.clock.Now()
	var vote *schema.Vote
	err = e.store.WithTransaction(ctx, func(tx store.Store) error {
		vote = nil

		p, err := tx.GetProposalForUpdate(ctx, input.ProposalID)
		if err != nil {
			return err
		}
		if p == nil {
			return notFound(input.ProposalID)
		}
		if p.Status != domain.ProposalStatusVoting {
			return domain.NewGuardError(domain.ErrNotVotingPhase, "proposal %d is in %s status", p.ID, p.Status)
		}

		existing, err := tx.GetVote(ctx, p.ID, voter)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.NewGuardError(domain.ErrAlreadyVoted, "%s already voted on proposal %d", voter, p.ID)
		}

		token, err := tx.GetTokenForUpdate(ctx, voter)
		if err != nil {
			return err
		}
		if token == nil {
			return domain.NewGuardError(domain.ErrNoTokens, "%s holds no governance tokens", voter)
		}

		// a count whose square overflows can never be covered by any balance
		cost, err := VoteCost(input.VoteCount)
		if err != nil {
			return domain.NewGuardError(domain.ErrInsufficientBalance,
				"vote cost exceeds balance: vote count %d, available %d", input.VoteCount, token.Balance)
		}
		if cost > token.Balance {
			return domain.NewGuardError(domain.ErrInsufficientBalance,
				"vote cost exceeds balance: required %d, available %d", cost, token.Balance)
		}

		if ExceedsPowerCap(input.VoteCount, p.TotalVotingPower, e.params) {
			return domain.NewGuardError(domain.ErrExceedsPowerCap,
				"vote count %d exceeds %d%% of total voting power %d",
				input.VoteCount, e.params.MaxVotingPowerPercentage, p.TotalVotingPower)
		}

		v := &schema.Vote{
			ProposalID: p.ID,
			Voter:      voter,
			VoteCount:  input.VoteCount,
			VoteCost:   cost,
			IsFor:      input.IsFor,
			CreatedAt:  now,
		}
		if err := tx.CreateVote(ctx, v); err != nil {
			return err
		}

		lockedUntil := now.Add(e.params.LockPeriod)
		token.Balance -= cost
		token.IsLocked = true
		token.LockedUntil = &lockedUntil
		token.UpdatedAt = now
		if err := tx.UpdateToken(ctx, token); err != nil {
			return err
		}

		if err := RecomputeTally(ctx, tx, p); err != nil {
			return err
		}
		p.UpdatedAt = now
		if err := tx.UpdateProposal(ctx, p); err != nil {
			return err
		}

		if err := e.journal.Record(ctx, tx, journal.Entry{
			SubjectType: schema.SubjectTypeVote,
			SubjectID:   strconv.FormatUint(p.ID, 10),
			Action:      "cast_vote",
			Actor:       voter,
			At:          now,
			Meta: map[string]any{
				"vote_count":          v.VoteCount,
				"vote_cost":           v.VoteCost,
				"is_for":              v.IsFor,
				"total_votes_for":     p.TotalVotesFor,
				"total_votes_against": p.TotalVotesAgainst,
			},
		}); err != nil {
			return err
		}

		vote = v
		return nil
	})
	if err != nil {
		logger.DebugCtx(ctx, "Vote refused",
			zap.Uint64("proposal_id", input.ProposalID),
			zap.String("voter", voter),
			zap.String("reason", domain.ReasonOf(err)))
		return nil, err
	}

	logger.InfoCtx(ctx, "Vote cast",
		zap.Uint64("proposal_id", vote.ProposalID),
		zap.String("voter", voter),
		zap.Int64("vote_count", vote.VoteCount),
		zap.Bool("is_for", vote.IsFor))
	messaging.PublishAll(ctx, e.publisher, voteCastEvent(vote, now))
	return vote, nil
}

// ListVotes returns the votes of a proposal
func (e *VotingEngine) ListVotes(ctx context.Context, proposalID uint64) ([]*schema.Vote, error) {
	p, err := e.store.GetProposal(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, notFound(proposalID)
	}
	return e.store.ListVotes(ctx, proposalID)
}
