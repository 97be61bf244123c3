package treasury

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-dao/internal/config"
	"github.com/feral-file/ff-dao/internal/domain"
)

// Params holds the multisig and reserve parameters passed to the treasury engines
type Params struct {
	// MultisigThreshold is the number of approving guardians that releases a transaction
	MultisigThreshold int
	// RejectionThreshold is the number of rejecting guardians that rejects a transaction
	RejectionThreshold int
	// GuardianCount is the maximum number of concurrently active guardians
	GuardianCount int
	// ReserveRatioTarget is the minimum healthy share of stable assets
	ReserveRatioTarget decimal.Decimal
}

// DefaultParams returns the production defaults
func DefaultParams() Params {
	return Params{
		MultisigThreshold:  domain.DEFAULT_MULTISIG_THRESHOLD,
		RejectionThreshold: domain.DEFAULT_REJECTION_THRESHOLD,
		GuardianCount:      domain.DEFAULT_GUARDIAN_COUNT,
		ReserveRatioTarget: decimal.RequireFromString(domain.DEFAULT_RESERVE_RATIO),
	}
}

// ParamsFromConfig converts the treasury configuration section
func ParamsFromConfig(cfg config.TreasuryConfig) Params {
	return Params{
		MultisigThreshold:  cfg.MultisigThreshold,
		RejectionThreshold: cfg.RejectionThreshold,
		GuardianCount:      cfg.GuardianCount,
		ReserveRatioTarget: decimal.NewFromFloat(cfg.ReserveRatio).Round(4),
	}
}

// Validate checks that the thresholds are reachable with the configured guardian count
func (p Params) Validate() error {
	var errs []error
	if p.GuardianCount <= 0 {
		errs = append(errs, fmt.Errorf("guardian count must be positive: %d", p.GuardianCount))
	}
	if p.MultisigThreshold <= 0 || p.MultisigThreshold > p.GuardianCount {
		errs = append(errs, fmt.Errorf("multisig threshold must be between 1 and %d: %d", p.GuardianCount, p.MultisigThreshold))
	}
	if p.RejectionThreshold <= 0 || p.RejectionThreshold > p.GuardianCount {
		errs = append(errs, fmt.Errorf("rejection threshold must be between 1 and %d: %d", p.GuardianCount, p.RejectionThreshold))
	}
	if p.ReserveRatioTarget.IsNegative() || p.ReserveRatioTarget.GreaterThan(decimal.NewFromInt(1)) {
		errs = append(errs, fmt.Errorf("reserve ratio target must be between 0 and 1: %s", p.ReserveRatioTarget))
	}
	return errors.Join(errs...)
}
