package dto

import (
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-dao/internal/domain"
	"github.com/feral-file/ff-dao/internal/store/schema"
)

// GuardianResponse represents a treasury guardian seat
type GuardianResponse struct {
	ID        uint64    `json:"id"`
	UserID    string    `json:"user_id"`
	TermStart time.Time `json:"term_start"`
	TermEnd   time.Time `json:"term_end"`
	IsActive  bool      `json:"is_active"`
}

// AssetResponse represents an asset the treasury can hold
type AssetResponse struct {
	ID              uint64           `json:"id"`
	Name            string           `json:"name"`
	Symbol          string           `json:"symbol"`
	AssetType       domain.AssetType `json:"asset_type"`
	ContractAddress *string          `json:"contract_address,omitempty"`
	Chain           *string          `json:"chain,omitempty"`
	Decimals        int              `json:"decimals"`
	RiskScore       int              `json:"risk_score"`
	IsStable        bool             `json:"is_stable"`
}

// BalanceResponse represents a treasury position
type BalanceResponse struct {
	Asset       AssetResponse   `json:"asset"`
	Balance     decimal.Decimal `json:"balance"`
	USDValue    decimal.Decimal `json:"usd_value"`
	LastUpdated time.Time       `json:"last_updated"`
}

// TransactionResponse represents a treasury transaction
type TransactionResponse struct {
	ID                 uint64                   `json:"id"`
	AssetID            uint64                   `json:"asset_id"`
	Amount             decimal.Decimal          `json:"amount"`
	USDValue           decimal.Decimal          `json:"usd_value"`
	TransactionType    domain.TransactionType   `json:"transaction_type"`
	Status             domain.TransactionStatus `json:"status"`
	DestinationAssetID *uint64                  `json:"destination_asset_id,omitempty"`
	DestinationAmount  *decimal.Decimal         `json:"destination_amount,omitempty"`
	Description        string                   `json:"description"`
	Proposer           string                   `json:"proposer"`
	ProposalID         *uint64                  `json:"proposal_id,omitempty"`
	ApprovalCount      int                      `json:"approval_count"`
	RejectionCount     int                      `json:"rejection_count"`
	FailureReason      *string                  `json:"failure_reason,omitempty"`
	CreatedAt          time.Time                `json:"created_at"`
	ExecutedAt         *time.Time               `json:"executed_at,omitempty"`
}

// TransactionListResponse represents a paginated list of treasury transactions
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"items"`
	Offset       *uint64               `json:"offset,omitempty"`
	Total        uint64                `json:"total"`
}

// ApprovalResponse represents a guardian decision
type ApprovalResponse struct {
	ID            uint64    `json:"id"`
	TransactionID uint64    `json:"transaction_id"`
	GuardianID    uint64    `json:"guardian_id"`
	Approved      bool      `json:"approved"`
	Comment       string    `json:"comment,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// SubmitApprovalResponse is the recorded decision with the resulting transaction
type SubmitApprovalResponse struct {
	Approval    ApprovalResponse    `json:"approval"`
	Transaction TransactionResponse `json:"transaction"`
}

// MetricResponse represents a treasury metric snapshot
type MetricResponse struct {
	Timestamp              time.Time       `json:"timestamp"`
	TotalValueUSD          decimal.Decimal `json:"total_value_usd"`
	StableAssetsValueUSD   decimal.Decimal `json:"stable_assets_value_usd"`
	VolatileAssetsValueUSD decimal.Decimal `json:"volatile_assets_value_usd"`
	ReserveRatio           decimal.Decimal `json:"reserve_ratio"`
	ReserveRatioHealthy    bool            `json:"reserve_ratio_healthy"`
}

// CircuitBreakerResponse represents a halt of treasury execution
type CircuitBreakerResponse struct {
	ID               uint64     `json:"id"`
	IsActive         bool       `json:"is_active"`
	ActivationTime   time.Time  `json:"activation_time"`
	DeactivationTime *time.Time `json:"deactivation_time,omitempty"`
	Reason           string     `json:"reason"`
	ActivatedBy      string     `json:"activated_by"`
	DeactivatedBy    *string    `json:"deactivated_by,omitempty"`
}

// CircuitBreakerStatusResponse reports whether execution is halted
type CircuitBreakerStatusResponse struct {
	Active  bool                    `json:"active"`
	Current *CircuitBreakerResponse `json:"current,omitempty"`
}

// AllocationResponse is the target share of an asset type
type AllocationResponse struct {
	AssetType        domain.AssetType `json:"asset_type"`
	TargetPercentage decimal.Decimal  `json:"target_percentage"`
}

// StrategyResponse represents an allocation strategy
type StrategyResponse struct {
	ID                        uint64               `json:"id"`
	Name                      string               `json:"name"`
	Description               string               `json:"description"`
	IsActive                  bool                 `json:"is_active"`
	MinStableAssetsPercentage decimal.Decimal      `json:"min_stable_assets_percentage"`
	MaxSingleAssetPercentage  decimal.Decimal      `json:"max_single_asset_percentage"`
	RebalanceThreshold        decimal.Decimal      `json:"rebalance_threshold"`
	Allocations               []AllocationResponse `json:"allocations"`
	// Drift compares the current composition with the targets, only set for the active strategy
	Drift []DriftResponse `json:"drift,omitempty"`
}

// DriftResponse compares the current share of an asset type with its target
type DriftResponse struct {
	AssetType      domain.AssetType `json:"asset_type"`
	Target         decimal.Decimal  `json:"target_percentage"`
	Actual         decimal.Decimal  `json:"actual_percentage"`
	Deviation      decimal.Decimal  `json:"deviation"`
	NeedsRebalance bool             `json:"needs_rebalance"`
}

// MapGuardianToDTO maps a schema.Guardian to GuardianResponse
func MapGuardianToDTO(g *schema.Guardian) *GuardianResponse {
	return &GuardianResponse{
		ID:        g.ID,
		UserID:    g.UserID,
		TermStart: g.TermStart,
		TermEnd:   g.TermEnd,
		IsActive:  g.IsActive,
	}
}

// MapAssetToDTO maps a schema.Asset to AssetResponse
func MapAssetToDTO(a *schema.Asset) *AssetResponse {
	return &AssetResponse{
		ID:              a.ID,
		Name:            a.Name,
		Symbol:          a.Symbol,
		AssetType:       a.AssetType,
		ContractAddress: a.ContractAddress,
		Chain:           a.Chain,
		Decimals:        a.Decimals,
		RiskScore:       a.RiskScore,
		IsStable:        a.IsStable,
	}
}

// MapBalancesToDTO maps asset balances to their responses
func MapBalancesToDTO(balances []*schema.AssetBalance) []BalanceResponse {
	return lo.Map(balances, func(b *schema.AssetBalance, _ int) BalanceResponse {
		return BalanceResponse{
			Asset:       *MapAssetToDTO(&b.Asset),
			Balance:     b.Balance,
			USDValue:    b.USDValue,
			LastUpdated: b.LastUpdated,
		}
	})
}

// MapTransactionToDTO maps a schema.TreasuryTransaction to TransactionResponse
func MapTransactionToDTO(t *schema.TreasuryTransaction) *TransactionResponse {
	return &TransactionResponse{
		ID:                 t.ID,
		AssetID:            t.AssetID,
		Amount:             t.Amount,
		USDValue:           t.USDValue,
		TransactionType:    t.TransactionType,
		Status:             t.Status,
		DestinationAssetID: t.DestinationAssetID,
		DestinationAmount:  t.DestinationAmount,
		Description:        t.Description,
		Proposer:           t.Proposer,
		ProposalID:         t.ProposalID,
		ApprovalCount:      t.ApprovalCount,
		RejectionCount:     t.RejectionCount,
		FailureReason:      t.FailureReason,
		CreatedAt:          t.CreatedAt,
		ExecutedAt:         t.ExecutedAt,
	}
}

// MapTransactionsToDTO maps transactions to their responses
func MapTransactionsToDTO(transactions []*schema.TreasuryTransaction) []TransactionResponse {
	return lo.Map(transactions, func(t *schema.TreasuryTransaction, _ int) TransactionResponse {
		return *MapTransactionToDTO(t)
	})
}

// MapApprovalToDTO maps a schema.TransactionApproval to ApprovalResponse
func MapApprovalToDTO(a *schema.TransactionApproval) *ApprovalResponse {
	return &ApprovalResponse{
		ID:            a.ID,
		TransactionID: a.TransactionID,
		GuardianID:    a.GuardianID,
		Approved:      a.Approved,
		Comment:       a.Comment,
		CreatedAt:     a.CreatedAt,
	}
}

// MapMetricToDTO maps a schema.TreasuryMetric to MetricResponse
func MapMetricToDTO(m *schema.TreasuryMetric, reserveTarget decimal.Decimal) *MetricResponse {
	return &MetricResponse{
		Timestamp:              m.Timestamp,
		TotalValueUSD:          m.TotalValueUSD,
		StableAssetsValueUSD:   m.StableAssetsValueUSD,
		VolatileAssetsValueUSD: m.VolatileAssetsValueUSD,
		ReserveRatio:           m.ReserveRatio,
		ReserveRatioHealthy:    m.IsReserveRatioHealthy(reserveTarget),
	}
}

// MapCircuitBreakerToDTO maps a schema.CircuitBreaker to CircuitBreakerResponse
func MapCircuitBreakerToDTO(b *schema.CircuitBreaker) *CircuitBreakerResponse {
	return &CircuitBreakerResponse{
		ID:               b.ID,
		IsActive:         b.IsActive,
		ActivationTime:   b.ActivationTime,
		DeactivationTime: b.DeactivationTime,
		Reason:           b.Reason,
		ActivatedBy:      b.ActivatedBy,
		DeactivatedBy:    b.DeactivatedBy,
	}
}

// MapStrategyToDTO maps a schema.AllocationStrategy to StrategyResponse
func MapStrategyToDTO(s *schema.AllocationStrategy) *StrategyResponse {
	return &StrategyResponse{
		ID:                        s.ID,
		Name:                      s.Name,
		Description:               s.Description,
		IsActive:                  s.IsActive,
		MinStableAssetsPercentage: s.MinStableAssetsPercentage,
		MaxSingleAssetPercentage:  s.MaxSingleAssetPercentage,
		RebalanceThreshold:        s.RebalanceThreshold,
		Allocations: lo.Map(s.Allocations, func(a schema.AssetAllocation, _ int) AllocationResponse {
			return AllocationResponse{AssetType: a.AssetType, TargetPercentage: a.TargetPercentage}
		}),
	}
}
