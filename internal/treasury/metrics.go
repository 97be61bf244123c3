package treasury

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-dao/internal/domain"
	"github.com/feral-file/ff-dao/internal/store/schema"
)

const reserveRatioPlaces = 4

// ComputeMetrics aggregates balances into a treasury snapshot taken at the given moment.
// Stable value counts assets flagged is_stable; the reserve ratio is 0 for an empty treasury.
func ComputeMetrics(balances []*schema.AssetBalance, at time.Time) *schema.TreasuryMetric {
	total := decimal.Zero
	stable := decimal.Zero
	for _, b := range balances {
		total = total.Add(b.USDValue)
		if b.Asset.IsStable {
			stable = stable.Add(b.USDValue)
		}
	}

	return &schema.TreasuryMetric{
		Timestamp:              at,
		TotalValueUSD:          total,
		StableAssetsValueUSD:   stable,
		VolatileAssetsValueUSD: total.Sub(stable),
		ReserveRatio:           reserveRatio(stable, total),
	}
}

func reserveRatio(stable, total decimal.Decimal) decimal.Decimal {
	if !total.IsPositive() || !stable.IsPositive() {
		return decimal.Zero
	}
	ratio := stable.DivRound(total, reserveRatioPlaces)
	one := decimal.NewFromInt(1)
	if ratio.GreaterThan(one) {
		return one
	}
	return ratio
}

// Drift is the deviation of one asset type from its allocation target, in percentage points
type Drift struct {
	AssetType domain.AssetType `json:"asset_type"`
	Target    decimal.Decimal  `json:"target_percentage"`
	Actual    decimal.Decimal  `json:"actual_percentage"`
	// Deviation is actual minus target
	Deviation decimal.Decimal `json:"deviation"`
	// NeedsRebalance is set when the absolute deviation exceeds the strategy threshold
	NeedsRebalance bool `json:"needs_rebalance"`
}

// AllocationDrift compares the current composition with the strategy targets
func AllocationDrift(balances []*schema.AssetBalance, strategy *schema.AllocationStrategy) []Drift {
	if strategy == nil {
		return nil
	}

	total := decimal.Zero
	byType := make(map[domain.AssetType]decimal.Decimal)
	for _, b := range balances {
		total = total.Add(b.USDValue)
		byType[b.Asset.AssetType] = byType[b.Asset.AssetType].Add(b.USDValue)
	}

	hundred := decimal.NewFromInt(100)
	drifts := make([]Drift, 0, len(strategy.Allocations))
	for _, a := range strategy.Allocations {
		actual := decimal.Zero
		if total.IsPositive() {
			actual = byType[a.AssetType].Mul(hundred).DivRound(total, 2)
		}
		deviation := actual.Sub(a.TargetPercentage)
		drifts = append(drifts, Drift{
			AssetType:      a.AssetType,
			Target:         a.TargetPercentage,
			Actual:         actual,
			Deviation:      deviation,
			NeedsRebalance: deviation.Abs().GreaterThan(strategy.RebalanceThreshold),
		})
	}
	return drifts
}
