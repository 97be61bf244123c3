package schema

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-dao/internal/domain"
)

// TreasuryTransaction represents the treasury_transactions table - intents to move treasury funds
type TreasuryTransaction struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// AssetID references the source asset
	AssetID uint64 `gorm:"column:asset_id;not null;index"`
	// Amount is the quantity of the source asset moved
	Amount decimal.Decimal `gorm:"column:amount;not null;type:numeric(78,18)"`
	// USDValue is the USD valuation of the movement, applied to both sides of a swap
	USDValue decimal.Decimal `gorm:"column:usd_value;not null;type:numeric(36,2)"`
	// TransactionType selects the balance delta rule applied on execution
	TransactionType domain.TransactionType `gorm:"column:transaction_type;not null;type:text"`
	// Status is the settlement status; it only moves forward
	Status domain.TransactionStatus `gorm:"column:status;not null;type:text;index"`
	// DestinationAssetID references the asset received by a swap
	DestinationAssetID *uint64 `gorm:"column:destination_asset_id"`
	// DestinationAmount is the quantity of the destination asset received by a swap
	DestinationAmount *decimal.Decimal `gorm:"column:destination_amount;type:numeric(78,18)"`
	// Description explains the purpose of the transaction
	Description string `gorm:"column:description;not null;default:'';type:text"`
	// Proposer is the identity that submitted the transaction
	Proposer string `gorm:"column:proposer;not null;type:text"`
	// ProposalID optionally links the transaction to the governance proposal that mandated it
	ProposalID *uint64 `gorm:"column:proposal_id"`
	// ApprovalCount is the number of approving guardian decisions
	ApprovalCount int `gorm:"column:approval_count;not null;default:0"`
	// RejectionCount is the number of rejecting guardian decisions
	RejectionCount int `gorm:"column:rejection_count;not null;default:0"`
	// FailureReason records why execution failed
	FailureReason *string   `gorm:"column:failure_reason;type:text"`
	CreatedAt     time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// ExecutedAt is set when the ledger applied the transaction
	ExecutedAt *time.Time `gorm:"column:executed_at;type:timestamptz"`

	// Associations
	Asset            Asset  `gorm:"foreignKey:AssetID"`
	DestinationAsset *Asset `gorm:"foreignKey:DestinationAssetID"`
}

// TableName specifies the table name for the TreasuryTransaction model
func (TreasuryTransaction) TableName() string {
	return "treasury_transactions"
}
