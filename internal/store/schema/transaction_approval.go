package schema

import "time"

// TransactionApproval represents the transaction_approvals table - one guardian decision per transaction
type TransactionApproval struct {
	ID            uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	TransactionID uint64 `gorm:"column:transaction_id;not null;uniqueIndex:idx_approvals_transaction_guardian,priority:1"`
	GuardianID    uint64 `gorm:"column:guardian_id;not null;uniqueIndex:idx_approvals_transaction_guardian,priority:2"`
	// Approved is false for a rejection
	Approved  bool      `gorm:"column:approved;not null"`
	Comment   string    `gorm:"column:comment;not null;default:'';type:text"`
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`

	// Associations
	Transaction TreasuryTransaction `gorm:"foreignKey:TransactionID;constraint:OnDelete:CASCADE"`
	Guardian    Guardian            `gorm:"foreignKey:GuardianID;constraint:OnDelete:CASCADE"`
}

func (TransactionApproval) TableName() string {
	return "transaction_approvals"
}
