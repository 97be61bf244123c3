package schema

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssetBalance represents the asset_balances table - one treasury position per asset
type AssetBalance struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// AssetID references the held asset
	AssetID uint64 `gorm:"column:asset_id;not null;uniqueIndex"`
	// Balance is the held quantity in asset units
	Balance decimal.Decimal `gorm:"column:balance;not null;type:numeric(78,18);default:0"`
	// USDValue is the book value of the position in USD
	USDValue decimal.Decimal `gorm:"column:usd_value;not null;type:numeric(36,2);default:0"`
	// LastUpdated is the timestamp of the last ledger mutation
	LastUpdated time.Time `gorm:"column:last_updated;not null;default:now();type:timestamptz"`

	// Associations
	Asset Asset `gorm:"foreignKey:AssetID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the AssetBalance model
func (AssetBalance) TableName() string {
	return "asset_balances"
}
