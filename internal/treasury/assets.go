package treasury

import (
	"context"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/feral-file/ff-dao/internal/adapter"
	"github.com/feral-file/ff-dao/internal/domain"
	"github.com/feral-file/ff-dao/internal/journal"
	"github.com/feral-file/ff-dao/internal/logger"
	"github.com/feral-file/ff-dao/internal/store"
	"github.com/feral-file/ff-dao/internal/store/schema"
	"github.com/feral-file/ff-dao/internal/types"
)

const maxAssetDecimals = 36

// CreateAssetInput describes an instrument the treasury can hold
type CreateAssetInput struct {
	Name            string
	Symbol          string
	AssetType       domain.AssetType
	ContractAddress *string
	Chain           *string
	Decimals        int
	RiskScore       int
	IsStable        bool
}

// AssetRegistry manages the assets known to the treasury
type AssetRegistry struct {
	store store.Store
	clock adapter.Clock
}

// NewAssetRegistry creates an asset registry
func NewAssetRegistry(st store.Store, clock adapter.Clock) *AssetRegistry {
	return &AssetRegistry{store: st, clock: clock}
}

// Create registers an asset. Stable-class assets always count towards the reserve.
func (r *AssetRegistry) Create(ctx context.Context, input CreateAssetInput) (*schema.Asset, error) {
	name := strings.TrimSpace(input.Name)
	symbol := strings.ToUpper(strings.TrimSpace(input.Symbol))
	if name == "" || symbol == "" {
		return nil, domain.NewGuardError(domain.ErrInvalidArgument, "asset name and symbol are required")
	}
	if !input.AssetType.Valid() {
		return nil, domain.NewGuardError(domain.ErrInvalidArgument, "unknown asset type: %s", input.AssetType)
	}
	if input.Decimals < 0 || input.Decimals > maxAssetDecimals {
		return nil, domain.NewGuardError(domain.ErrInvalidArgument, "decimals must be between 0 and %d: %d", maxAssetDecimals, input.Decimals)
	}
	if input.RiskScore < 0 || input.RiskScore > 100 {
		return nil, domain.NewGuardError(domain.ErrInvalidArgument, "risk score must be between 0 and 100: %d", input.RiskScore)
	}

	asset := &schema.Asset{
		Name:      name,
		Symbol:    symbol,
		AssetType: input.AssetType,
		Chain:     input.Chain,
		Decimals:  input.Decimals,
		RiskScore: input.RiskScore,
		IsStable:  input.IsStable || input.AssetType == domain.AssetTypeStable,
		CreatedAt: r.clock.Now(),
	}
	if !types.StringNilOrEmpty(input.ContractAddress) {
		contract, err := domain.NormalizeAddress(*input.ContractAddress)
		if err != nil {
			return nil, err
		}
		asset.ContractAddress = &contract
	}

	if err := r.store.CreateAsset(ctx, asset); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Asset registered", zap.String("symbol", symbol), zap.Uint64("asset_id", asset.ID))
	return asset, nil
}

// Get returns an asset by ID
func (r *AssetRegistry) Get(ctx context.Context, id uint64) (*schema.Asset, error) {
	asset, err := r.store.GetAsset(ctx, id)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, domain.NewGuardError(domain.ErrNotFound, "asset %d not found", id)
	}
	return asset, nil
}

// List returns every asset
func (r *AssetRegistry) List(ctx context.Context) ([]*schema.Asset, error) {
	return r.store.ListAssets(ctx)
}

// CreateStrategyInput describes a target treasury composition
type CreateStrategyInput struct {
	Name                      string
	Description               string
	MinStableAssetsPercentage decimal.Decimal
	MaxSingleAssetPercentage  decimal.Decimal
	RebalanceThreshold        decimal.Decimal
	// Targets maps asset types to their target share; the shares add up to 100
	Targets map[domain.AssetType]decimal.Decimal
}

// AllocationStrategies manages target compositions, of which at most one is active
type AllocationStrategies struct {
	store   store.Store
	clock   adapter.Clock
	journal *journal.Recorder
}

// NewAllocationStrategies creates the allocation strategy service
func NewAllocationStrategies(st store.Store, clock adapter.Clock, recorder *journal.Recorder) *AllocationStrategies {
	return &AllocationStrategies{store: st, clock: clock, journal: recorder}
}

// Create stores an inactive strategy
func (a *AllocationStrategies) Create(ctx context.Context, input CreateStrategyInput) (*schema.AllocationStrategy, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.NewGuardError(domain.ErrInvalidArgument, "strategy name is required")
	}
	for label, v := range map[string]decimal.Decimal{
		"min stable assets percentage": input.MinStableAssetsPercentage,
		"max single asset percentage":  input.MaxSingleAssetPercentage,
		"rebalance threshold":          input.RebalanceThreshold,
	} {
		if !isPercentage(v) {
			return nil, domain.NewGuardError(domain.ErrInvalidArgument, "%s must be between 0 and 100: %s", label, v)
		}
	}
	if len(input.Targets) == 0 {
		return nil, domain.NewGuardError(domain.ErrInvalidArgument, "strategy needs at least one allocation target")
	}

	now := a.clock.Now()
	strategy := &schema.AllocationStrategy{
		Name:                      name,
		Description:               strings.TrimSpace(input.Description),
		MinStableAssetsPercentage: input.MinStableAssetsPercentage,
		MaxSingleAssetPercentage:  input.MaxSingleAssetPercentage,
		RebalanceThreshold:        input.RebalanceThreshold,
		CreatedAt:                 now,
		UpdatedAt:                 now,
	}

	sum := decimal.Zero
	for _, assetType := range slices.Sorted(maps.Keys(input.Targets)) {
		target := input.Targets[assetType]
		if !assetType.Valid() {
			return nil, domain.NewGuardError(domain.ErrInvalidArgument, "unknown asset type: %s", assetType)
		}
		if !isPercentage(target) {
			return nil, domain.NewGuardError(domain.ErrInvalidArgument, "target for %s must be between 0 and 100: %s", assetType, target)
		}
		sum = sum.Add(target)
		strategy.Allocations = append(strategy.Allocations, schema.AssetAllocation{
			AssetType:        assetType,
			TargetPercentage: target,
		})
	}
	if !sum.Equal(decimal.NewFromInt(100)) {
		return nil, domain.NewGuardError(domain.ErrInvalidArgument, "allocation targets must add up to 100: %s", sum)
	}

	if err := a.store.CreateAllocationStrategy(ctx, strategy); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Allocation strategy created", zap.String("name", name), zap.Uint64("strategy_id", strategy.ID))
	return strategy, nil
}

// Activate makes the strategy the only active one
func (a *AllocationStrategies) Activate(ctx context.Context, id uint64, actor string) (*schema.AllocationStrategy, error) {
	var strategy *schema.AllocationStrategy
	err := a.store.WithTransaction(ctx, func(tx store.Store) error {
		strategy = nil

		s, err := tx.GetAllocationStrategy(ctx, id)
		if err != nil {
			return err
		}
		if s == nil {
			return domain.NewGuardError(domain.ErrNotFound, "allocation strategy %d not found", id)
		}
		if err := tx.ActivateAllocationStrategy(ctx, id); err != nil {
			return err
		}
		if err := a.journal.Record(ctx, tx, journal.Entry{
			SubjectType: schema.SubjectTypeAllocationStrategy,
			SubjectID:   strconv.FormatUint(id, 10),
			Action:      "activate_strategy",
			Actor:       actor,
			At:          a.clock.Now(),
			Meta:        map[string]any{"name": s.Name},
		}); err != nil {
			return err
		}
		s.IsActive = true
		strategy = s
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Allocation strategy activated", zap.Uint64("strategy_id", id), zap.String("actor", actor))
	return strategy, nil
}

// Active returns the strategy in force
func (a *AllocationStrategies) Active(ctx context.Context) (*schema.AllocationStrategy, error) {
	strategy, err := a.store.GetActiveAllocationStrategy(ctx)
	if err != nil {
		return nil, err
	}
	if strategy == nil {
		return nil, domain.NewGuardError(domain.ErrNotFound, "no active allocation strategy")
	}
	return strategy, nil
}

// List returns every strategy with its allocations
func (a *AllocationStrategies) List(ctx context.Context) ([]*schema.AllocationStrategy, error) {
	return a.store.ListAllocationStrategies(ctx)
}

func isPercentage(v decimal.Decimal) bool {
	return !v.IsNegative() && v.LessThanOrEqual(decimal.NewFromInt(100))
}
