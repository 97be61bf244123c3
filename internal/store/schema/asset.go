package schema

import (
	"time"

	"github.com/feral-file/ff-dao/internal/domain"
)

// Asset represents the assets table - instruments the treasury can hold
type Asset struct {
	// ID is the internal database primary key
	ID     uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	Name   string `gorm:"column:name;not null;type:text"`
	Symbol string `gorm:"column:symbol;not null;uniqueIndex;type:text"`
	// AssetType is the class of the asset (crypto, stable, nft, ...)
	AssetType domain.AssetType `gorm:"column:asset_type;not null;type:text"`
	// ContractAddress is the on-chain contract for tokenized assets
	ContractAddress *string `gorm:"column:contract_address;type:text"`
	// Chain is the CAIP-2 network of the contract
	Chain    *string `gorm:"column:chain;type:text"`
	Decimals int     `gorm:"column:decimals;not null"`
	// RiskScore is an operator-assigned score from 0 (safe) to 100
	RiskScore int `gorm:"column:risk_score;not null;default:0"`
	// IsStable marks low-volatility assets counted towards the reserve ratio
	IsStable  bool      `gorm:"column:is_stable;not null;default:false"`
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Asset model
func (Asset) TableName() string {
	return "assets"
}
