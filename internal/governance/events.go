package governance

import (
	"strconv"
	"time"

	"github.com/feral-file/ff-dao/internal/domain"
	"github.com/feral-file/ff-dao/internal/messaging"
	"github.com/feral-file/ff-dao/internal/store/schema"
)

func proposalID(p *schema.Proposal) string {
	return strconv.FormatUint(p.ID, 10)
}

func proposalCreatedEvent(p *schema.Proposal, at time.Time) *messaging.Event {
	return messaging.NewEvent(messaging.EventProposalCreated, proposalID(p), p.Proposer, at, map[string]any{
		"title":  p.Title,
		"status": p.Status,
	})
}

func proposalStatusEvent(p *schema.Proposal, from domain.ProposalStatus, actor string, at time.Time) *messaging.Event {
	data := map[string]any{
		"from": from,
		"to":   p.Status,
	}
	if p.Status == domain.ProposalStatusApproved || p.Status == domain.ProposalStatusRejected {
		data["total_votes_for"] = p.TotalVotesFor
		data["total_votes_against"] = p.TotalVotesAgainst
		data["total_voting_power"] = p.TotalVotingPower
	}
	return messaging.NewEvent(messaging.EventProposalStatusChanged, proposalID(p), actor, at, data)
}

func voteCastEvent(v *schema.Vote, at time.Time) *messaging.Event {
	return messaging.NewEvent(messaging.EventVoteCast, strconv.FormatUint(v.ProposalID, 10), v.Voter, at, map[string]any{
		"vote_count": v.VoteCount,
		"vote_cost":  v.VoteCost,
		"is_for":     v.IsFor,
	})
}

func tokenEvent(eventType messaging.EventType, holder string, at time.Time, data map[string]any) *messaging.Event {
	return messaging.NewEvent(eventType, holder, holder, at, data)
}
