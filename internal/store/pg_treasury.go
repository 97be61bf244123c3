package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"

	"github.com/feral-file/ff-dao/internal/domain"
	"github.com/feral-file/ff-dao/internal/store/schema"
)

// =============================================================================
// Assets and balances
// =============================================================================

// CreateAsset inserts an asset
func (s *pgStore) CreateAsset(ctx context.Context, asset *schema.Asset) error {
	if err := s.db.WithContext(ctx).Create(asset).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.NewGuardError(domain.ErrAlreadyExists, "asset already exists: %s", asset.Symbol)
		}
		return fmt.Errorf("failed to create asset: %w", err)
	}
	return nil
}

// GetAsset retrieves an asset by ID
func (s *pgStore) GetAsset(ctx context.Context, id uint64) (*schema.Asset, error) {
	asset, err := firstOrNil[schema.Asset](ctx, s.db, func(db *gorm.DB) *gorm.DB {
		return db.Where("id = ?", id)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}
	return asset, nil
}

// ListAssets retrieves every asset
func (s *pgStore) ListAssets(ctx context.Context) ([]*schema.Asset, error) {
	var assets []*schema.Asset
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&assets).Error; err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	return assets, nil
}

// GetAssetBalanceForUpdate retrieves the balance row of an asset and locks it.
// The row is created with zero balance on first use.
func (s *pgStore) GetAssetBalanceForUpdate(ctx context.Context, assetID uint64) (*schema.AssetBalance, error) {
	empty := schema.AssetBalance{
		AssetID:     assetID,
		Balance:     decimal.Zero,
		USDValue:    decimal.Zero,
		LastUpdated: time.Now().UTC(),
	}
	err := s.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "asset_id"}},
			DoNothing: true,
		}).
		Create(&empty).Error
	if err != nil {
		return nil, fmt.Errorf("failed to ensure asset balance: %w", err)
	}

	var balance schema.AssetBalance
	if err := forUpdate(s.db.WithContext(ctx)).Where("asset_id = ?", assetID).First(&balance).Error; err != nil {
		return nil, fmt.Errorf("failed to lock asset balance: %w", err)
	}
	return &balance, nil
}

// UpdateAssetBalance persists a balance row
func (s *pgStore) UpdateAssetBalance(ctx context.Context, balance *schema.AssetBalance) error {
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Save(balance).Error; err != nil {
		return fmt.Errorf("failed to update asset balance: %w", err)
	}
	return nil
}

// ListAssetBalances retrieves every balance row with its asset
func (s *pgStore) ListAssetBalances(ctx context.Context) ([]*schema.AssetBalance, error) {
	var balances []*schema.AssetBalance
	if err := s.db.WithContext(ctx).Preload("Asset").Order("asset_id ASC").Find(&balances).Error; err != nil {
		return nil, fmt.Errorf("failed to list asset balances: %w", err)
	}
	return balances, nil
}

// =============================================================================
// Treasury transactions
// =============================================================================

// CreateTransaction inserts a treasury transaction
func (s *pgStore) CreateTransaction(ctx context.Context, transaction *schema.TreasuryTransaction) error {
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// GetTransaction retrieves a transaction by ID with its assets
func (s *pgStore) GetTransaction(ctx context.Context, id uint64) (*schema.TreasuryTransaction, error) {
	transaction, err := firstOrNil[schema.TreasuryTransaction](ctx, s.db, func(db *gorm.DB) *gorm.DB {
		return db.Preload("Asset").Preload("DestinationAsset").Where("id = ?", id)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return transaction, nil
}

// GetTransactionForUpdate retrieves a transaction by ID and locks its row
func (s *pgStore) GetTransactionForUpdate(ctx context.Context, id uint64) (*schema.TreasuryTransaction, error) {
	var transaction schema.TreasuryTransaction
	if err := forUpdate(s.db.WithContext(ctx)).Where("id = ?", id).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to lock transaction: %w", err)
	}
	return &transaction, nil
}

// UpdateTransaction persists every column of a transaction
func (s *pgStore) UpdateTransaction(ctx context.Context, transaction *schema.TreasuryTransaction) error {
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Save(transaction).Error; err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	return nil
}

// ListTransactions retrieves transactions matching the filter, newest first
func (s *pgStore) ListTransactions(ctx context.Context, filter TransactionQueryFilter) ([]*schema.TreasuryTransaction, uint64, error) {
	query := s.db.WithContext(ctx).Model(&schema.TreasuryTransaction{})
	if len(filter.Statuses) > 0 {
		query = query.Where("status IN ?", filter.Statuses)
	}
	if filter.AssetID != nil {
		query = query.Where("asset_id = ? OR destination_asset_id = ?", *filter.AssetID, *filter.AssetID)
	}
	if filter.Proposer != nil {
		query = query.Where("proposer = ?", *filter.Proposer)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	var transactions []*schema.TreasuryTransaction
	err := query.
		Preload("Asset").
		Preload("DestinationAsset").
		Order("id DESC").
		Limit(normalizeLimit(filter.Limit)).
		Offset(int(filter.Offset)). //nolint:gosec,G115
		Find(&transactions).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, uint64(total), nil //nolint:gosec,G115
}

// ListPendingTransactionsForGuardian retrieves pending transactions without a decision from the guardian
func (s *pgStore) ListPendingTransactionsForGuardian(ctx context.Context, guardianID uint64, limit int) ([]*schema.TreasuryTransaction, error) {
	var transactions []*schema.TreasuryTransaction
	err := s.db.WithContext(ctx).
		Preload("Asset").
		Preload("DestinationAsset").
		Where("status = ?", domain.TransactionStatusPending).
		Where(`NOT EXISTS (
			SELECT 1 FROM transaction_approvals a
			WHERE a.transaction_id = treasury_transactions.id AND a.guardian_id = ?
		)`, guardianID).
		Order("id ASC").
		Limit(normalizeLimit(limit)).
		Find(&transactions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list pending transactions: %w", err)
	}
	return transactions, nil
}

// CreateApproval inserts a guardian decision
func (s *pgStore) CreateApproval(ctx context.Context, approval *schema.TransactionApproval) error {
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(approval).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.NewGuardError(domain.ErrDuplicateApproval,
				"guardian %d already decided on transaction %d", approval.GuardianID, approval.TransactionID)
		}
		return fmt.Errorf("failed to create approval: %w", err)
	}
	return nil
}

// GetApproval retrieves the decision of a guardian on a transaction
func (s *pgStore) GetApproval(ctx context.Context, transactionID, guardianID uint64) (*schema.TransactionApproval, error) {
	var approval schema.TransactionApproval
	err := s.db.WithContext(ctx).
		Where("transaction_id = ? AND guardian_id = ?", transactionID, guardianID).
		First(&approval).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get approval: %w", err)
	}
	return &approval, nil
}

// CountApprovals returns the number of approving and rejecting decisions on a transaction
func (s *pgStore) CountApprovals(ctx context.Context, transactionID uint64) (int, int, error) {
	var rows []struct {
		Approved bool
		Count    int
	}
	err := s.db.WithContext(ctx).
		Model(&schema.TransactionApproval{}).
		Select("approved, COUNT(*) AS count").
		Where("transaction_id = ?", transactionID).
		Group("approved").
		Scan(&rows).Error
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count approvals: %w", err)
	}

	var approved, rejected int
	for _, r := range rows {
		if r.Approved {
			approved = r.Count
		} else {
			rejected = r.Count
		}
	}
	return approved, rejected, nil
}

// ListApprovals retrieves every decision on a transaction
func (s *pgStore) ListApprovals(ctx context.Context, transactionID uint64) ([]*schema.TransactionApproval, error) {
	var approvals []*schema.TransactionApproval
	err := s.db.WithContext(ctx).
		Where("transaction_id = ?", transactionID).
		Order("id ASC").
		Find(&approvals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list approvals: %w", err)
	}
	return approvals, nil
}

// =============================================================================
// Metrics
// =============================================================================

// CreateMetric appends a treasury metric snapshot
func (s *pgStore) CreateMetric(ctx context.Context, metric *schema.TreasuryMetric) error {
	if err := s.db.WithContext(ctx).Create(metric).Error; err != nil {
		return fmt.Errorf("failed to create treasury metric: %w", err)
	}
	return nil
}

// GetLatestMetric retrieves the most recent snapshot
func (s *pgStore) GetLatestMetric(ctx context.Context) (*schema.TreasuryMetric, error) {
	var metric schema.TreasuryMetric
	err := s.db.WithContext(ctx).Order(`"timestamp" DESC, id DESC`).First(&metric).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest treasury metric: %w", err)
	}
	return &metric, nil
}

// ListMetrics retrieves snapshots taken at or after since
func (s *pgStore) ListMetrics(ctx context.Context, since time.Time, limit int) ([]*schema.TreasuryMetric, error) {
	var metrics []*schema.TreasuryMetric
	err := s.db.WithContext(ctx).
		Where(`"timestamp" >= ?`, since).
		Order(`"timestamp" ASC, id ASC`).
		Limit(normalizeLimit(limit)).
		Find(&metrics).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list treasury metrics: %w", err)
	}
	return metrics, nil
}

// =============================================================================
// Circuit breaker
// =============================================================================

// GetActiveCircuitBreaker retrieves the current breaker
func (s *pgStore) GetActiveCircuitBreaker(ctx context.Context) (*schema.CircuitBreaker, error) {
	var breaker schema.CircuitBreaker
	err := s.db.WithContext(ctx).Clauses(dbresolver.Write).Where("is_active").First(&breaker).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active circuit breaker: %w", err)
	}
	return &breaker, nil
}

// GetActiveCircuitBreakerForUpdate retrieves the current breaker and locks its row
func (s *pgStore) GetActiveCircuitBreakerForUpdate(ctx context.Context) (*schema.CircuitBreaker, error) {
	var breaker schema.CircuitBreaker
	err := forUpdate(s.db.WithContext(ctx)).Where("is_active").First(&breaker).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to lock active circuit breaker: %w", err)
	}
	return &breaker, nil
}

// CreateCircuitBreaker inserts a breaker record
func (s *pgStore) CreateCircuitBreaker(ctx context.Context, breaker *schema.CircuitBreaker) error {
	if err := s.db.WithContext(ctx).Create(breaker).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.NewGuardError(domain.ErrAlreadyExists, "a circuit breaker is already active")
		}
		return fmt.Errorf("failed to create circuit breaker: %w", err)
	}
	return nil
}

// UpdateCircuitBreaker persists a breaker record
func (s *pgStore) UpdateCircuitBreaker(ctx context.Context, breaker *schema.CircuitBreaker) error {
	if err := s.db.WithContext(ctx).Save(breaker).Error; err != nil {
		return fmt.Errorf("failed to update circuit breaker: %w", err)
	}
	return nil
}

// ListCircuitBreakers retrieves breaker history, newest first
func (s *pgStore) ListCircuitBreakers(ctx context.Context, limit int, offset uint64) ([]*schema.CircuitBreaker, uint64, error) {
	query := s.db.WithContext(ctx).Model(&schema.CircuitBreaker{})

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count circuit breakers: %w", err)
	}

	var breakers []*schema.CircuitBreaker
	err := query.
		Order("activation_time DESC, id DESC").
		Limit(normalizeLimit(limit)).
		Offset(int(offset)). //nolint:gosec,G115
		Find(&breakers).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list circuit breakers: %w", err)
	}
	return breakers, uint64(total), nil //nolint:gosec,G115
}

// =============================================================================
// Allocation strategies
// =============================================================================

// CreateAllocationStrategy inserts a strategy with its allocations
func (s *pgStore) CreateAllocationStrategy(ctx context.Context, strategy *schema.AllocationStrategy) error {
	if err := s.db.WithContext(ctx).Create(strategy).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.NewGuardError(domain.ErrAlreadyExists, "allocation strategy already exists: %s", strategy.Name)
		}
		return fmt.Errorf("failed to create allocation strategy: %w", err)
	}
	return nil
}

// GetAllocationStrategy retrieves a strategy with its allocations
func (s *pgStore) GetAllocationStrategy(ctx context.Context, id uint64) (*schema.AllocationStrategy, error) {
	strategy, err := firstOrNil[schema.AllocationStrategy](ctx, s.db, func(db *gorm.DB) *gorm.DB {
		return db.Preload("Allocations").Where("id = ?", id)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get allocation strategy: %w", err)
	}
	return strategy, nil
}

// GetActiveAllocationStrategy retrieves the strategy in force
func (s *pgStore) GetActiveAllocationStrategy(ctx context.Context) (*schema.AllocationStrategy, error) {
	var strategy schema.AllocationStrategy
	err := s.db.WithContext(ctx).Preload("Allocations").Where("is_active").First(&strategy).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active allocation strategy: %w", err)
	}
	return &strategy, nil
}

// ListAllocationStrategies retrieves every strategy with its allocations
func (s *pgStore) ListAllocationStrategies(ctx context.Context) ([]*schema.AllocationStrategy, error) {
	var strategies []*schema.AllocationStrategy
	if err := s.db.WithContext(ctx).Preload("Allocations").Order("id ASC").Find(&strategies).Error; err != nil {
		return nil, fmt.Errorf("failed to list allocation strategies: %w", err)
	}
	return strategies, nil
}

// ActivateAllocationStrategy deactivates every other strategy and activates the given one
func (s *pgStore) ActivateAllocationStrategy(ctx context.Context, id uint64) error {
	return s.transaction(ctx, func(tx *pgStore) error {
		now := time.Now().UTC()
		err := tx.db.WithContext(ctx).
			Model(&schema.AllocationStrategy{}).
			Where("is_active AND id <> ?", id).
			Updates(map[string]any{"is_active": false, "updated_at": now}).Error
		if err != nil {
			return fmt.Errorf("failed to deactivate allocation strategies: %w", err)
		}

		result := tx.db.WithContext(ctx).
			Model(&schema.AllocationStrategy{}).
			Where("id = ?", id).
			Updates(map[string]any{"is_active": true, "updated_at": now})
		if result.Error != nil {
			return fmt.Errorf("failed to activate allocation strategy: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.NewGuardError(domain.ErrNotFound, "allocation strategy %d not found", id)
		}
		return nil
	})
}
