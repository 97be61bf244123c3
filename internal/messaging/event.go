package messaging

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// EventType is the dotted name of a domain event, also the suffix of its broker subject
type EventType string

const (
	EventProposalCreated       EventType = "proposal.created"
	EventProposalStatusChanged EventType = "proposal.status_changed"
	EventVoteCast              EventType = "vote.cast"
	EventTokenDelegated        EventType = "token.delegated"
	EventTokenUndelegated      EventType = "token.undelegated"
	EventTokenTransferred      EventType = "token.transferred"
	EventMemberVerification    EventType = "member.verification_changed"

	EventTransactionProposed          EventType = "transaction.proposed"
	EventTransactionApprovalSubmitted EventType = "transaction.approval_submitted"
	EventTransactionStatusChanged     EventType = "transaction.status_changed"
	EventCircuitBreakerActivated      EventType = "circuit_breaker.activated"
	EventCircuitBreakerDeactivated    EventType = "circuit_breaker.deactivated"
)

// Event is a domain event emitted after a state change committed
type Event struct {
	// ID is a ULID, sortable by occurrence and used for broker deduplication
	ID         string         `json:"id"`
	Type       EventType      `json:"type"`
	SubjectID  string         `json:"subject_id"`
	Actor      string         `json:"actor,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
	Data       map[string]any `json:"data,omitempty"`
}

// NewEvent creates an event stamped with a fresh ULID for the given moment
func NewEvent(eventType EventType, subjectID, actor string, occurredAt time.Time, data map[string]any) *Event {
	return &Event{
		ID:         ulid.MustNew(ulid.Timestamp(occurredAt), ulid.DefaultEntropy()).String(),
		Type:       eventType,
		SubjectID:  subjectID,
		Actor:      actor,
		OccurredAt: occurredAt,
		Data:       data,
	}
}
