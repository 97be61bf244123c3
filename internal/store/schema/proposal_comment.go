package schema

import "time"

// ProposalComment represents the proposal_comments table - discussion thread of a proposal
type ProposalComment struct {
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	ProposalID uint64    `gorm:"column:proposal_id;not null;index"`
	Author     string    `gorm:"column:author;not null;type:text"`
	Content    string    `gorm:"column:content;not null;type:text"`
	CreatedAt  time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt  time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

func (ProposalComment) TableName() string {
	return "proposal_comments"
}
