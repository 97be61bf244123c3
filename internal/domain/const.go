package domain

import "time"

const (
	// Governance defaults
	DEFAULT_DISCUSSION_PERIOD           = 14 * 24 * time.Hour
	DEFAULT_VOTING_PERIOD               = 7 * 24 * time.Hour
	DEFAULT_TIMELOCK                    = 48 * time.Hour
	DEFAULT_QUORUM_PERCENTAGE           = 45
	DEFAULT_APPROVAL_THRESHOLD          = 70
	DEFAULT_MAX_VOTING_POWER_PERCENTAGE = 25
	DEFAULT_TOKEN_LOCK_PERIOD           = 30 * 24 * time.Hour
	DEFAULT_PROPOSER_MIN_SHARE          = 1

	// Treasury defaults
	DEFAULT_MULTISIG_THRESHOLD  = 5
	DEFAULT_REJECTION_THRESHOLD = 5
	DEFAULT_GUARDIAN_COUNT      = 9
	DEFAULT_RESERVE_RATIO       = "0.3"

	// Reputation granted when a member passes identity verification
	VERIFICATION_REPUTATION_BONUS = 10
)
