package schema

import "time"

// Guardian represents the guardians table - members entitled to approve treasury transactions
type Guardian struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// UserID is the identity holding the guardianship (one-to-one)
	UserID string `gorm:"column:user_id;not null;uniqueIndex;type:text"`
	// TermStart is the beginning of the guardian term
	TermStart time.Time `gorm:"column:term_start;not null;type:timestamptz"`
	// TermEnd is the end of the guardian term
	TermEnd time.Time `gorm:"column:term_end;not null;type:timestamptz"`
	// IsActive is cleared when the guardian is removed before the term ends
	IsActive bool `gorm:"column:is_active;not null"`
	// CreatedAt is the timestamp when the guardian was appointed
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Guardian model
func (Guardian) TableName() string {
	return "guardians"
}

// ActiveAt reports whether the guardian can act at the given moment
func (g *Guardian) ActiveAt(now time.Time) bool {
	return g.IsActive && !now.Before(g.TermStart) && now.Before(g.TermEnd)
}
