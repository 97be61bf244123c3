package domain

import "time"

// ProposalSchedule is the lifecycle position of a proposal as seen by the scheduler
type ProposalSchedule struct {
	ProposalID uint64         `json:"proposal_id"`
	Status     ProposalStatus `json:"status"`
	// Deadline is when the next time-gated transition becomes legal, nil when none is pending
	Deadline *time.Time `json:"deadline,omitempty"`
}
