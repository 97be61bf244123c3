package governance

import (
	"fmt"
	"math"
	"math/big"
	"time"

	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-dao/internal/domain"
	"github.com/feral-file/ff-dao/internal/store/schema"
)

// maxVoteCount is the largest count whose square fits in an int64
const maxVoteCount = 3037000499

// VoteCost returns the quadratic cost of casting n votes
func VoteCost(n int64) (int64, error) {
	if n < 0 {
		return 0, domain.NewGuardError(domain.ErrInvalidArgument, "vote count must not be negative: %d", n)
	}
	if n > maxVoteCount {
		return 0, domain.NewGuardError(domain.ErrInvalidArgument, "vote count too large: %d", n)
	}
	return n * n, nil
}

// Outcome is the result of settling a closed vote
type Outcome struct {
	QuorumReached bool
	// ApprovalPercentage is votes for over participating votes, for display only
	ApprovalPercentage decimal.Decimal
	Approved           bool
}

// Status returns the proposal status the outcome resolves to
func (o Outcome) Status() domain.ProposalStatus {
	if o.Approved {
		return domain.ProposalStatusApproved
	}
	return domain.ProposalStatusRejected
}

// String describes the outcome for logs and CLI output
func (o Outcome) String() string {
	return fmt.Sprintf("quorum=%t approval=%s%% approved=%t", o.QuorumReached, o.ApprovalPercentage.StringFixed(2), o.Approved)
}

// Settle computes quorum and approval in integer arithmetic
func Settle(votesFor, votesAgainst, totalVotingPower int64, params Params) Outcome {
	total := votesFor + votesAgainst

	// (for+against)*100 >= power*quorum
	quorum := cmpProducts(total, 100, totalVotingPower, params.QuorumPercentage) >= 0

	approvalPct := decimal.Zero
	if total > 0 {
		approvalPct = decimal.NewFromInt(votesFor).
			Mul(decimal.NewFromInt(100)).
			DivRound(decimal.NewFromInt(total), 2)
	}

	// for*100 >= threshold*(for+against)
	approved := quorum && total > 0 &&
		cmpProducts(votesFor, 100, params.ApprovalThreshold, total) >= 0

	return Outcome{
		QuorumReached:      quorum,
		ApprovalPercentage: approvalPct,
		Approved:           approved,
	}
}

// ExceedsPowerCap reports whether voteCount is above the single-voter share of totalVotingPower
func ExceedsPowerCap(voteCount, totalVotingPower int64, params Params) bool {
	return cmpProducts(voteCount, 100, totalVotingPower, params.MaxVotingPowerPercentage) > 0
}

// MeetsProposerShare reports whether balance is at least the required share of supply
func MeetsProposerShare(balance, totalSupply int64, params Params) bool {
	if totalSupply <= 0 {
		return false
	}
	return cmpProducts(balance, 100, totalSupply, params.ProposerMinSharePercentage) >= 0
}

// NextDeadline returns when the next time-gated transition of the proposal becomes legal.
// Nil for drafts and terminal proposals.
func NextDeadline(p *schema.Proposal, params Params) *time.Time {
	switch p.Status {
	case domain.ProposalStatusDiscussion:
		if p.DiscussionStartTime == nil {
			return nil
		}
		t := p.DiscussionStartTime.Add(params.DiscussionPeriod)
		return &t
	case domain.ProposalStatusVoting:
		return p.VotingEndTime
	case domain.ProposalStatusApproved, domain.ProposalStatusQueued:
		return p.ExecutionTime
	default:
		return nil
	}
}

// cmpProducts compares a*b with c*d without overflowing
func cmpProducts(a, b, c, d int64) int {
	if fitsProduct(a, b) && fitsProduct(c, d) {
		x, y := a*b, c*d
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		default:
			return 0
		}
	}
	x := new(big.Int).Mul(big.NewInt(a), big.NewInt(b))
	y := new(big.Int).Mul(big.NewInt(c), big.NewInt(d))
	return x.Cmp(y)
}

func fitsProduct(a, b int64) bool {
	if a == 0 || b == 0 {
		return true
	}
	abs := func(v int64) uint64 {
		if v < 0 {
			return uint64(-(v + 1)) + 1
		}
		return uint64(v)
	}
	return abs(a) <= math.MaxInt64/abs(b)
}
