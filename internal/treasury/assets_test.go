package treasury

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-dao/internal/domain"
	"github.com/feral-file/ff-dao/internal/store/schema"
	"github.com/feral-file/ff-dao/internal/types"
)

func TestCreateAsset(t *testing.T) {
	ctx := context.Background()

	t.Run("stable type counts as reserve", func(t *testing.T) {
		f := newFixture(t)
		f.store.EXPECT().CreateAsset(gomock.Any(), gomock.Any()).Return(nil)

		asset, err := NewAssetRegistry(f.store, f.clock).Create(ctx, CreateAssetInput{
			Name:            "USD Coin",
			Symbol:          " usdc ",
			AssetType:       domain.AssetTypeStable,
			ContractAddress: types.Ptr("0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"),
			Decimals:        6,
		})
		require.NoError(t, err)
		assert.Equal(t, "USDC", asset.Symbol)
		assert.True(t, asset.IsStable)
		require.NotNil(t, asset.ContractAddress)
		assert.Equal(t, "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", *asset.ContractAddress)
	})

	t.Run("empty contract is dropped", func(t *testing.T) {
		f := newFixture(t)
		f.store.EXPECT().CreateAsset(gomock.Any(), gomock.Any()).Return(nil)

		asset, err := NewAssetRegistry(f.store, f.clock).Create(ctx, CreateAssetInput{
			Name:            "Ether",
			Symbol:          "ETH",
			AssetType:       domain.AssetTypeCrypto,
			ContractAddress: types.Ptr(""),
			Decimals:        18,
		})
		require.NoError(t, err)
		assert.Nil(t, asset.ContractAddress)
		assert.False(t, asset.IsStable)
	})

	invalid := []struct {
		name  string
		input CreateAssetInput
	}{
		{"missing symbol", CreateAssetInput{Name: "x", AssetType: domain.AssetTypeCrypto}},
		{"unknown type", CreateAssetInput{Name: "x", Symbol: "X", AssetType: "meme"}},
		{"decimals", CreateAssetInput{Name: "x", Symbol: "X", AssetType: domain.AssetTypeCrypto, Decimals: 37}},
		{"risk score", CreateAssetInput{Name: "x", Symbol: "X", AssetType: domain.AssetTypeCrypto, RiskScore: 101}},
		{"contract", CreateAssetInput{Name: "x", Symbol: "X", AssetType: domain.AssetTypeToken, ContractAddress: types.Ptr("0x12")}},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			_, err := NewAssetRegistry(f.store, f.clock).Create(ctx, tt.input)
			assert.ErrorIs(t, err, domain.ErrInvalidArgument)
		})
	}
}

func TestCreateAllocationStrategy(t *testing.T) {
	ctx := context.Background()
	base := func() CreateStrategyInput {
		return CreateStrategyInput{
			Name:                      "Balanced",
			MinStableAssetsPercentage: dec("30"),
			MaxSingleAssetPercentage:  dec("50"),
			RebalanceThreshold:        dec("5"),
			Targets: map[domain.AssetType]decimal.Decimal{
				domain.AssetTypeStable: dec("40"),
				domain.AssetTypeCrypto: dec("45.5"),
				domain.AssetTypeNFT:    dec("14.5"),
			},
		}
	}

	t.Run("creates with sorted allocations", func(t *testing.T) {
		f := newFixture(t)
		f.store.EXPECT().CreateAllocationStrategy(gomock.Any(), gomock.Any()).Return(nil)

		s, err := NewAllocationStrategies(f.store, f.clock, f.recorder()).Create(ctx, base())
		require.NoError(t, err)
		require.Len(t, s.Allocations, 3)
		assert.Equal(t, domain.AssetTypeCrypto, s.Allocations[0].AssetType)
		assert.Equal(t, domain.AssetTypeNFT, s.Allocations[1].AssetType)
		assert.Equal(t, domain.AssetTypeStable, s.Allocations[2].AssetType)
		assert.False(t, s.IsActive)
	})

	invalid := map[string]func(*CreateStrategyInput){
		"targets below 100": func(in *CreateStrategyInput) { in.Targets[domain.AssetTypeNFT] = dec("10") },
		"targets above 100": func(in *CreateStrategyInput) { in.Targets[domain.AssetTypeBond] = dec("1") },
		"negative target":   func(in *CreateStrategyInput) { in.Targets[domain.AssetTypeBond] = dec("-1") },
		"unknown type":      func(in *CreateStrategyInput) { in.Targets["art"] = dec("0") },
		"no targets":        func(in *CreateStrategyInput) { in.Targets = nil },
		"threshold":         func(in *CreateStrategyInput) { in.RebalanceThreshold = dec("101") },
		"name":              func(in *CreateStrategyInput) { in.Name = "" },
	}
	for name, mutate := range invalid {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t)
			input := base()
			mutate(&input)
			_, err := NewAllocationStrategies(f.store, f.clock, f.recorder()).Create(ctx, input)
			assert.ErrorIs(t, err, domain.ErrInvalidArgument)
		})
	}
}

func TestActivateAllocationStrategy(t *testing.T) {
	ctx := context.Background()

	t.Run("activates", func(t *testing.T) {
		f := newFixture(t)
		f.store.EXPECT().GetAllocationStrategy(gomock.Any(), uint64(3)).Return(&schema.AllocationStrategy{ID: 3, Name: "Balanced"}, nil)
		f.store.EXPECT().ActivateAllocationStrategy(gomock.Any(), uint64(3)).Return(nil)

		s, err := NewAllocationStrategies(f.store, f.clock, f.recorder()).Activate(ctx, 3, "0xadmin")
		require.NoError(t, err)
		assert.True(t, s.IsActive)
	})

	t.Run("unknown", func(t *testing.T) {
		f := newFixture(t)
		f.store.EXPECT().GetAllocationStrategy(gomock.Any(), uint64(3)).Return(nil, nil)

		_, err := NewAllocationStrategies(f.store, f.clock, f.recorder()).Activate(ctx, 3, "0xadmin")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("no active strategy", func(t *testing.T) {
		f := newFixture(t)
		f.store.EXPECT().GetActiveAllocationStrategy(gomock.Any()).Return(nil, nil)

		_, err := NewAllocationStrategies(f.store, f.clock, f.recorder()).Active(ctx)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
