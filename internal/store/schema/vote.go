package schema

import "time"

// Vote represents the votes table - one quadratic vote per (proposal, voter)
type Vote struct {
	ID         uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	ProposalID uint64 `gorm:"column:proposal_id;not null;uniqueIndex:idx_votes_proposal_voter,priority:1"`
	Voter      string `gorm:"column:voter;not null;type:text;uniqueIndex:idx_votes_proposal_voter,priority:2"`
	// VoteCount is the number of votes cast, counted towards the tally
	VoteCount int64 `gorm:"column:vote_count;not null"`
	// VoteCost is VoteCount squared, debited from the voter's token balance
	VoteCost  int64     `gorm:"column:vote_cost;not null"`
	IsFor     bool      `gorm:"column:is_for;not null"`
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`

	// Associations
	Proposal Proposal `gorm:"foreignKey:ProposalID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Vote model
func (Vote) TableName() string {
	return "votes"
}
