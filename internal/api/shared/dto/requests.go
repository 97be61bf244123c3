package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-dao/internal/api/shared/constants"
	apierrors "github.com/feral-file/ff-dao/internal/api/shared/errors"
	"github.com/feral-file/ff-dao/internal/domain"
)

// CreateProposalRequest represents the request body for creating a proposal
type CreateProposalRequest struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// Validate validates the request body
func (r *CreateProposalRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return apierrors.NewValidationError("title is required")
	}
	if strings.TrimSpace(r.Description) == "" {
		return apierrors.NewValidationError("description is required")
	}
	return nil
}

// CancelProposalRequest represents the request body for cancelling a proposal
type CancelProposalRequest struct {
	// Emergency must be set to cancel a proposal that already passed
	Emergency bool `json:"emergency"`
}

// CastVoteRequest represents the request body for casting a vote
type CastVoteRequest struct {
	VoteCount int64 `json:"vote_count"`
	IsFor     *bool `json:"is_for"`
}

// Validate validates the request body
func (r *CastVoteRequest) Validate() error {
	if r.VoteCount <= 0 {
		return apierrors.NewValidationError("vote_count must be positive")
	}
	if r.IsFor == nil {
		return apierrors.NewValidationError("is_for is required")
	}
	return nil
}

// AddCommentRequest represents the request body for commenting on a proposal
type AddCommentRequest struct {
	Content string `json:"content"`
}

// Validate validates the request body
func (r *AddCommentRequest) Validate() error {
	if strings.TrimSpace(r.Content) == "" {
		return apierrors.NewValidationError("content is required")
	}
	return nil
}

// MintRequest represents the request body for crediting governance tokens
type MintRequest struct {
	Amount int64 `json:"amount"`
}

// Validate validates the request body
func (r *MintRequest) Validate() error {
	if r.Amount <= 0 {
		return apierrors.NewValidationError("amount must be positive")
	}
	return nil
}

// TransferRequest represents the request body for transferring governance tokens
type TransferRequest struct {
	To     string `json:"to"`
	Amount int64  `json:"amount"`
}

// Validate validates the request body
func (r *TransferRequest) Validate() error {
	if strings.TrimSpace(r.To) == "" {
		return apierrors.NewValidationError("to is required")
	}
	if r.Amount <= 0 {
		return apierrors.NewValidationError("amount must be positive")
	}
	return nil
}

// DelegateRequest represents the request body for delegating voting power
type DelegateRequest struct {
	Delegate string `json:"delegate"`
}

// Validate validates the request body
func (r *DelegateRequest) Validate() error {
	if strings.TrimSpace(r.Delegate) == "" {
		return apierrors.NewValidationError("delegate is required")
	}
	return nil
}

// RegisterMemberRequest represents the request body for registering the caller as a member
type RegisterMemberRequest struct {
	DisplayName string `json:"display_name"`
}

// RequestVerificationRequest represents the request body for requesting identity verification
type RequestVerificationRequest struct {
	Evidence string `json:"evidence"`
}

// Validate validates the request body
func (r *RequestVerificationRequest) Validate() error {
	if strings.TrimSpace(r.Evidence) == "" {
		return apierrors.NewValidationError("evidence is required")
	}
	if len(r.Evidence) > constants.MAX_EVIDENCE_LENGTH {
		return apierrors.NewValidationError(fmt.Sprintf("evidence exceeds %d characters", constants.MAX_EVIDENCE_LENGTH))
	}
	return nil
}

// RejectVerificationRequest represents the request body for rejecting a verification request
type RejectVerificationRequest struct {
	Reason string `json:"reason"`
}

// Validate validates the request body
func (r *RejectVerificationRequest) Validate() error {
	if strings.TrimSpace(r.Reason) == "" {
		return apierrors.NewValidationError("reason is required")
	}
	return nil
}

// AddGuardianRequest represents the request body for appointing a guardian
type AddGuardianRequest struct {
	UserID    string    `json:"user_id"`
	TermStart time.Time `json:"term_start"`
	TermEnd   time.Time `json:"term_end"`
}

// Validate validates the request body
func (r *AddGuardianRequest) Validate() error {
	if strings.TrimSpace(r.UserID) == "" {
		return apierrors.NewValidationError("user_id is required")
	}
	if r.TermStart.IsZero() || r.TermEnd.IsZero() {
		return apierrors.NewValidationError("term_start and term_end are required")
	}
	return nil
}

// CreateAssetRequest represents the request body for registering an asset
type CreateAssetRequest struct {
	Name            string           `json:"name"`
	Symbol          string           `json:"symbol"`
	AssetType       domain.AssetType `json:"asset_type"`
	ContractAddress *string          `json:"contract_address,omitempty"`
	Chain           *string          `json:"chain,omitempty"`
	Decimals        int              `json:"decimals"`
	RiskScore       int              `json:"risk_score"`
	IsStable        bool             `json:"is_stable"`
}

// Validate validates the request body
func (r *CreateAssetRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" || strings.TrimSpace(r.Symbol) == "" {
		return apierrors.NewValidationError("name and symbol are required")
	}
	if !r.AssetType.Valid() {
		return apierrors.NewValidationError(fmt.Sprintf("invalid asset_type: %s", r.AssetType))
	}
	return nil
}

// ProposeTransactionRequest represents the request body for proposing a treasury transaction
type ProposeTransactionRequest struct {
	AssetID            uint64                 `json:"asset_id"`
	Amount             decimal.Decimal        `json:"amount"`
	USDValue           decimal.Decimal        `json:"usd_value"`
	TransactionType    domain.TransactionType `json:"transaction_type"`
	DestinationAssetID *uint64                `json:"destination_asset_id,omitempty"`
	DestinationAmount  *decimal.Decimal       `json:"destination_amount,omitempty"`
	Description        string                 `json:"description"`
	ProposalID         *uint64                `json:"proposal_id,omitempty"`
}

// Validate validates the request body
func (r *ProposeTransactionRequest) Validate() error {
	if r.AssetID == 0 {
		return apierrors.NewValidationError("asset_id is required")
	}
	if !r.TransactionType.Valid() {
		return apierrors.NewValidationError(fmt.Sprintf("invalid transaction_type: %s", r.TransactionType))
	}
	if !r.Amount.IsPositive() {
		return apierrors.NewValidationError("amount must be positive")
	}
	return nil
}

// SubmitApprovalRequest represents the request body for a guardian decision
type SubmitApprovalRequest struct {
	Approved *bool  `json:"approved"`
	Comment  string `json:"comment,omitempty"`
}

// Validate validates the request body
func (r *SubmitApprovalRequest) Validate() error {
	if r.Approved == nil {
		return apierrors.NewValidationError("approved is required")
	}
	return nil
}

// ActivateCircuitBreakerRequest represents the request body for halting treasury execution
type ActivateCircuitBreakerRequest struct {
	Reason string `json:"reason"`
}

// Validate validates the request body
func (r *ActivateCircuitBreakerRequest) Validate() error {
	if strings.TrimSpace(r.Reason) == "" {
		return apierrors.NewValidationError("reason is required")
	}
	return nil
}

// CreateStrategyRequest represents the request body for creating an allocation strategy
type CreateStrategyRequest struct {
	Name                      string               `json:"name"`
	Description               string               `json:"description"`
	MinStableAssetsPercentage decimal.Decimal      `json:"min_stable_assets_percentage"`
	MaxSingleAssetPercentage  decimal.Decimal      `json:"max_single_asset_percentage"`
	RebalanceThreshold        decimal.Decimal      `json:"rebalance_threshold"`
	Allocations               []AllocationResponse `json:"allocations"`
}

// Validate validates the request body
func (r *CreateStrategyRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return apierrors.NewValidationError("name is required")
	}
	if len(r.Allocations) == 0 {
		return apierrors.NewValidationError("allocations are required")
	}

	seen := make(map[domain.AssetType]bool, len(r.Allocations))
	for _, a := range r.Allocations {
		if !a.AssetType.Valid() {
			return apierrors.NewValidationError(fmt.Sprintf("invalid asset_type: %s", a.AssetType))
		}
		if seen[a.AssetType] {
			return apierrors.NewValidationError(fmt.Sprintf("duplicate allocation for %s", a.AssetType))
		}
		seen[a.AssetType] = true
	}
	return nil
}

// Targets returns the allocations keyed by asset type
func (r *CreateStrategyRequest) Targets() map[domain.AssetType]decimal.Decimal {
	targets := make(map[domain.AssetType]decimal.Decimal, len(r.Allocations))
	for _, a := range r.Allocations {
		targets[a.AssetType] = a.TargetPercentage
	}
	return targets
}
