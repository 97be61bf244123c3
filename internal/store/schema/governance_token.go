package schema

import "time"

// GovernanceToken represents the governance_tokens table - voting credits held by a member
type GovernanceToken struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Holder is the identity (wallet address) owning the balance
	Holder string `gorm:"column:holder;not null;uniqueIndex;type:text"`
	// Balance is the spendable credit amount, never negative
	Balance int64 `gorm:"column:balance;not null;default:0;check:balance >= 0"`
	// IsLocked is set after voting and cleared once LockedUntil passes
	IsLocked bool `gorm:"column:is_locked;not null;default:false"`
	// LockedUntil is the end of the current lock window
	LockedUntil *time.Time `gorm:"column:locked_until;type:timestamptz"`
	// DelegatedTo is a weak reference to the delegate identity
	DelegatedTo *string `gorm:"column:delegated_to;type:text"`
	// CreatedAt is the timestamp when the holder first received tokens
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp of the last balance or lock change
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the GovernanceToken model
func (GovernanceToken) TableName() string {
	return "governance_tokens"
}

// LockedAt reports whether the token is locked at the given moment
func (t *GovernanceToken) LockedAt(now time.Time) bool {
	return t.IsLocked && t.LockedUntil != nil && t.LockedUntil.After(now)
}
