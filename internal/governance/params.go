package governance

import (
	"errors"
	"fmt"
	"time"

	"github.com/feral-file/ff-dao/internal/config"
	"github.com/feral-file/ff-dao/internal/domain"
)

// Params holds the lifecycle and voting parameters passed to the engines
type Params struct {
	DiscussionPeriod time.Duration
	VotingPeriod     time.Duration
	Timelock         time.Duration
	// LockPeriod is how long a voter's token stays locked after voting
	LockPeriod time.Duration
	// QuorumPercentage is the share of total voting power that must participate
	QuorumPercentage int64
	// ApprovalThreshold is the share of participating votes that must be in favour
	ApprovalThreshold int64
	// MaxVotingPowerPercentage caps a single vote as a share of total voting power
	MaxVotingPowerPercentage int64
	// ProposerMinSharePercentage is the share of supply a proposer must hold
	ProposerMinSharePercentage int64
}

// DefaultParams returns the production defaults
func DefaultParams() Params {
	return Params{
		DiscussionPeriod:           domain.DEFAULT_DISCUSSION_PERIOD,
		VotingPeriod:               domain.DEFAULT_VOTING_PERIOD,
		Timelock:                   domain.DEFAULT_TIMELOCK,
		LockPeriod:                 domain.DEFAULT_TOKEN_LOCK_PERIOD,
		QuorumPercentage:           domain.DEFAULT_QUORUM_PERCENTAGE,
		ApprovalThreshold:          domain.DEFAULT_APPROVAL_THRESHOLD,
		MaxVotingPowerPercentage:   domain.DEFAULT_MAX_VOTING_POWER_PERCENTAGE,
		ProposerMinSharePercentage: domain.DEFAULT_PROPOSER_MIN_SHARE,
	}
}

// ParamsFromConfig converts the governance configuration section
func ParamsFromConfig(cfg config.GovernanceConfig) Params {
	return Params{
		DiscussionPeriod:           cfg.DiscussionPeriod,
		VotingPeriod:               cfg.VotingPeriod,
		Timelock:                   cfg.Timelock,
		LockPeriod:                 cfg.LockPeriod,
		QuorumPercentage:           cfg.QuorumPercentage,
		ApprovalThreshold:          cfg.ApprovalThreshold,
		MaxVotingPowerPercentage:   cfg.MaxVotingPowerPercentage,
		ProposerMinSharePercentage: cfg.ProposerMinSharePercentage,
	}
}

// Validate checks that every parameter is within range
func (p Params) Validate() error {
	var errs []error
	if p.DiscussionPeriod < 0 {
		errs = append(errs, fmt.Errorf("discussion period must not be negative: %s", p.DiscussionPeriod))
	}
	if p.VotingPeriod <= 0 {
		errs = append(errs, fmt.Errorf("voting period must be positive: %s", p.VotingPeriod))
	}
	if p.Timelock < 0 {
		errs = append(errs, fmt.Errorf("timelock must not be negative: %s", p.Timelock))
	}
	if p.LockPeriod < 0 {
		errs = append(errs, fmt.Errorf("lock period must not be negative: %s", p.LockPeriod))
	}
	if !isPercentage(p.QuorumPercentage) {
		errs = append(errs, fmt.Errorf("quorum percentage out of range: %d", p.QuorumPercentage))
	}
	if p.ApprovalThreshold <= 0 || p.ApprovalThreshold > 100 {
		errs = append(errs, fmt.Errorf("approval threshold out of range: %d", p.ApprovalThreshold))
	}
	if p.MaxVotingPowerPercentage <= 0 || p.MaxVotingPowerPercentage > 100 {
		errs = append(errs, fmt.Errorf("max voting power percentage out of range: %d", p.MaxVotingPowerPercentage))
	}
	if !isPercentage(p.ProposerMinSharePercentage) {
		errs = append(errs, fmt.Errorf("proposer min share percentage out of range: %d", p.ProposerMinSharePercentage))
	}
	return errors.Join(errs...)
}

func isPercentage(v int64) bool {
	return v >= 0 && v <= 100
}
