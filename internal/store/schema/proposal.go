package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/feral-file/ff-dao/internal/domain"
)

// Proposal represents the proposals table - governance proposals and their vote tallies
type Proposal struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Title is the short headline of the proposal
	Title string `gorm:"column:title;not null;type:text"`
	// Description is the full proposal body
	Description string `gorm:"column:description;not null;type:text"`
	// Proposer is the identity (wallet address) that created the proposal
	Proposer string `gorm:"column:proposer;not null;type:text;index"`
	// Status is the current lifecycle phase
	Status domain.ProposalStatus `gorm:"column:status;not null;type:text;index"`
	// Metadata holds free-form proposal attributes (links, execution payload, tags)
	Metadata datatypes.JSON `gorm:"column:metadata;type:jsonb"`
	// DiscussionStartTime is set when the proposal enters discussion
	DiscussionStartTime *time.Time `gorm:"column:discussion_start_time;type:timestamptz"`
	// VotingStartTime is set when the proposal enters voting
	VotingStartTime *time.Time `gorm:"column:voting_start_time;type:timestamptz"`
	// VotingEndTime is the earliest moment voting may be closed
	VotingEndTime *time.Time `gorm:"column:voting_end_time;type:timestamptz"`
	// ExecutionTime is the timelock expiry while approved, then the actual execution moment
	ExecutionTime *time.Time `gorm:"column:execution_time;type:timestamptz"`
	// TotalVotesFor is the sum of vote_count over all votes in favour
	TotalVotesFor int64 `gorm:"column:total_votes_for;not null;default:0"`
	// TotalVotesAgainst is the sum of vote_count over all votes against
	TotalVotesAgainst int64 `gorm:"column:total_votes_against;not null;default:0"`
	// TotalVotingPower is the token supply snapshot taken when voting started
	TotalVotingPower int64 `gorm:"column:total_voting_power;not null;default:0"`
	// CreatedAt is the timestamp when the proposal was drafted
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp of the last modification
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Proposal model
func (Proposal) TableName() string {
	return "proposals"
}

// TotalVotes returns the combined participation of the proposal
func (p *Proposal) TotalVotes() int64 {
	return p.TotalVotesFor + p.TotalVotesAgainst
}
