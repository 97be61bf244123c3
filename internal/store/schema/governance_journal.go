package schema

import (
	"time"

	"gorm.io/datatypes"
)

// SubjectType represents the type of entity that changed
type SubjectType string

const (
	// SubjectTypeProposal indicates a proposal lifecycle change
	SubjectTypeProposal SubjectType = "proposal"
	// SubjectTypeVote indicates a vote was cast
	SubjectTypeVote SubjectType = "vote"
	// SubjectTypeToken indicates a governance token balance, lock or delegation change
	SubjectTypeToken SubjectType = "token"
	// SubjectTypeMember indicates a membership or verification change
	SubjectTypeMember SubjectType = "member"
	// SubjectTypeTransaction indicates a treasury transaction change
	SubjectTypeTransaction SubjectType = "transaction"
	// SubjectTypeCircuitBreaker indicates a circuit breaker activation or reset
	SubjectTypeCircuitBreaker SubjectType = "circuit_breaker"
	// SubjectTypeGuardian indicates a guardian appointment or removal
	SubjectTypeGuardian SubjectType = "guardian"
	// SubjectTypeAllocationStrategy indicates an allocation strategy activation
	SubjectTypeAllocationStrategy SubjectType = "allocation_strategy"
)

// GovernanceJournal represents the governance_journal table - append-only audit log of state changes
type GovernanceJournal struct {
	// Cursor is an auto-incrementing sequence number for efficient pagination and ordering
	Cursor int64 `gorm:"column:\"cursor\";primaryKey;autoIncrement"`
	// SubjectType identifies what kind of entity changed
	SubjectType SubjectType `gorm:"column:subject_type;not null;type:text;index:idx_journal_subject,priority:1"`
	// SubjectID is the identifier of the changed entity
	SubjectID string `gorm:"column:subject_id;not null;type:text;index:idx_journal_subject,priority:2"`
	// Action is the operation that caused the change (e.g. "start_voting", "approval_submitted")
	Action string `gorm:"column:action;not null;type:text"`
	// Actor is the identity that performed the operation, empty for scheduler driven changes
	Actor string `gorm:"column:actor;not null;default:'';type:text"`
	// ChangedAt is the timestamp when the change occurred
	ChangedAt time.Time `gorm:"column:changed_at;not null;default:now();type:timestamptz"`
	// Meta contains canonical JSON describing the change
	Meta datatypes.JSON `gorm:"column:meta;type:jsonb"`
}

// TableName specifies the table name for the GovernanceJournal model
func (GovernanceJournal) TableName() string {
	return "governance_journal"
}
