package schema

import (
	"time"

	"github.com/shopspring/decimal"
)

// TreasuryMetric represents the treasury_metrics table - append-only snapshots of treasury composition
type TreasuryMetric struct {
	ID                     uint64          `gorm:"column:id;primaryKey;autoIncrement"`
	Timestamp              time.Time       `gorm:"column:timestamp;not null;default:now();type:timestamptz;index"`
	TotalValueUSD          decimal.Decimal `gorm:"column:total_value_usd;not null;type:numeric(36,2)"`
	StableAssetsValueUSD   decimal.Decimal `gorm:"column:stable_assets_value_usd;not null;type:numeric(36,2)"`
	VolatileAssetsValueUSD decimal.Decimal `gorm:"column:volatile_assets_value_usd;not null;type:numeric(36,2)"`
	// ReserveRatio is stable value over total value, 0 for an empty treasury
	ReserveRatio decimal.Decimal `gorm:"column:reserve_ratio;not null;type:numeric(5,4)"`
}

func (TreasuryMetric) TableName() string {
	return "treasury_metrics"
}

// IsReserveRatioHealthy reports whether the reserve ratio meets the target
func (m *TreasuryMetric) IsReserveRatioHealthy(target decimal.Decimal) bool {
	return m.ReserveRatio.GreaterThanOrEqual(target)
}
