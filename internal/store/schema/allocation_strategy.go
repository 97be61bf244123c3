package schema

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-dao/internal/domain"
)

// AllocationStrategy represents the allocation_strategies table - target treasury composition
type AllocationStrategy struct {
	ID          uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	Name        string `gorm:"column:name;not null;uniqueIndex;type:text"`
	Description string `gorm:"column:description;not null;default:'';type:text"`
	// IsActive marks the single strategy currently in force
	IsActive bool `gorm:"column:is_active;not null;default:false"`
	// MinStableAssetsPercentage is the lowest acceptable share of stable assets
	MinStableAssetsPercentage decimal.Decimal `gorm:"column:min_stable_assets_percentage;not null;type:numeric(5,2)"`
	// MaxSingleAssetPercentage caps the share of any one asset
	MaxSingleAssetPercentage decimal.Decimal `gorm:"column:max_single_asset_percentage;not null;type:numeric(5,2)"`
	// RebalanceThreshold is the drift (in percentage points) that triggers rebalancing
	RebalanceThreshold decimal.Decimal `gorm:"column:rebalance_threshold;not null;type:numeric(5,2)"`
	CreatedAt          time.Time       `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt          time.Time       `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	Allocations []AssetAllocation `gorm:"foreignKey:StrategyID;constraint:OnDelete:CASCADE"`
}

func (AllocationStrategy) TableName() string {
	return "allocation_strategies"
}

// AssetAllocation represents the asset_allocations table - per asset type targets of a strategy
type AssetAllocation struct {
	ID               uint64           `gorm:"column:id;primaryKey;autoIncrement"`
	StrategyID       uint64           `gorm:"column:strategy_id;not null;uniqueIndex:idx_allocations_strategy_type,priority:1"`
	AssetType        domain.AssetType `gorm:"column:asset_type;not null;type:text;uniqueIndex:idx_allocations_strategy_type,priority:2"`
	TargetPercentage decimal.Decimal  `gorm:"column:target_percentage;not null;type:numeric(5,2)"`
}

func (AssetAllocation) TableName() string {
	return "asset_allocations"
}
