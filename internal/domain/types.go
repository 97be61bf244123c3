package domain

import (
	"slices"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// ProposalStatus represents the lifecycle phase of a governance proposal
type ProposalStatus string

const (
	ProposalStatusDraft      ProposalStatus = "draft"
	ProposalStatusDiscussion ProposalStatus = "discussion"
	ProposalStatusVoting     ProposalStatus = "voting"
	ProposalStatusApproved   ProposalStatus = "approved"
	ProposalStatusRejected   ProposalStatus = "rejected"
	ProposalStatusQueued     ProposalStatus = "queued"
	ProposalStatusExecuted   ProposalStatus = "executed"
	ProposalStatusCancelled  ProposalStatus = "cancelled"
)

// Valid checks if the proposal status is known
func (s ProposalStatus) Valid() bool {
	switch s {
	case ProposalStatusDraft,
		ProposalStatusDiscussion,
		ProposalStatusVoting,
		ProposalStatusApproved,
		ProposalStatusRejected,
		ProposalStatusQueued,
		ProposalStatusExecuted,
		ProposalStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is possible from the status
func (s ProposalStatus) IsTerminal() bool {
	return s == ProposalStatusExecuted || s == ProposalStatusRejected || s == ProposalStatusCancelled
}

// AwaitsExecution reports whether the proposal passed the vote and waits for its timelock
func (s ProposalStatus) AwaitsExecution() bool {
	return s == ProposalStatusApproved || s == ProposalStatusQueued
}

// TransactionType represents the kind of treasury transaction
type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "deposit"
	TransactionTypeWithdrawal TransactionType = "withdrawal"
	TransactionTypeSwap       TransactionType = "swap"
	TransactionTypeInvestment TransactionType = "investment"
	TransactionTypeExpense    TransactionType = "expense"
	TransactionTypeRevenue    TransactionType = "revenue"
	TransactionTypeOther      TransactionType = "other"
)

// Valid checks if the transaction type is known
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeDeposit,
		TransactionTypeWithdrawal,
		TransactionTypeSwap,
		TransactionTypeInvestment,
		TransactionTypeExpense,
		TransactionTypeRevenue,
		TransactionTypeOther:
		return true
	}
	return false
}

// TransactionStatus represents the settlement status of a treasury transaction
type TransactionStatus string

const (
	TransactionStatusPending  TransactionStatus = "pending"
	TransactionStatusApproved TransactionStatus = "approved"
	TransactionStatusRejected TransactionStatus = "rejected"
	TransactionStatusExecuted TransactionStatus = "executed"
	TransactionStatusFailed   TransactionStatus = "failed"
)

// Valid checks if the transaction status is known
func (s TransactionStatus) Valid() bool {
	switch s {
	case TransactionStatusPending,
		TransactionStatusApproved,
		TransactionStatusRejected,
		TransactionStatusExecuted,
		TransactionStatusFailed:
		return true
	}
	return false
}

// IsTerminal reports whether the transaction status can no longer change
func (s TransactionStatus) IsTerminal() bool {
	return s == TransactionStatusExecuted || s == TransactionStatusFailed || s == TransactionStatusRejected
}

// AssetType represents the class of a treasury asset
type AssetType string

const (
	AssetTypeCrypto     AssetType = "crypto"
	AssetTypeStable     AssetType = "stable"
	AssetTypeToken      AssetType = "token"
	AssetTypeNFT        AssetType = "nft"
	AssetTypeRealEstate AssetType = "real_estate"
	AssetTypeEquity     AssetType = "equity"
	AssetTypeBond       AssetType = "bond"
	AssetTypeOther      AssetType = "other"
)

var assetTypes = []AssetType{
	AssetTypeCrypto,
	AssetTypeStable,
	AssetTypeToken,
	AssetTypeNFT,
	AssetTypeRealEstate,
	AssetTypeEquity,
	AssetTypeBond,
	AssetTypeOther,
}

// Valid checks if the asset type is known
func (t AssetType) Valid() bool {
	return slices.Contains(assetTypes, t)
}

// VerificationStatus represents the identity verification state of a member
type VerificationStatus string

const (
	VerificationStatusUnverified VerificationStatus = "unverified"
	VerificationStatusPending    VerificationStatus = "pending"
	VerificationStatusVerified   VerificationStatus = "verified"
	VerificationStatusRejected   VerificationStatus = "rejected"
)

// VerificationRequestStatus represents the review state of a verification request
type VerificationRequestStatus string

const (
	VerificationRequestPendingReview  VerificationRequestStatus = "pending_review"
	VerificationRequestApproved       VerificationRequestStatus = "approved"
	VerificationRequestRejected       VerificationRequestStatus = "rejected"
	VerificationRequestAdditionalInfo VerificationRequestStatus = "additional_info"
)

// IsOpen reports whether the request is still waiting for a reviewer decision
func (s VerificationRequestStatus) IsOpen() bool {
	return s == VerificationRequestPendingReview || s == VerificationRequestAdditionalInfo
}

// NormalizeAddress validates a hex wallet address and returns its EIP-55 checksum form
func NormalizeAddress(address string) (string, error) {
	address = strings.TrimSpace(address)
	if !common.IsHexAddress(address) {
		return "", NewGuardError(ErrInvalidArgument, "invalid wallet address: %s", address)
	}
	return common.HexToAddress(address).Hex(), nil
}
