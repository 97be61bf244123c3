package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTransition is returned when the entity is in the wrong state for the requested action
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrTimeNotElapsed is returned when a time-gated transition is requested before its window opens
	ErrTimeNotElapsed = errors.New("time window not elapsed")

	// ErrNotAuthorized is returned when the actor lacks the required role or ownership
	ErrNotAuthorized = errors.New("not authorized")

	// ErrNotVotingPhase is returned when a vote is cast on a proposal that is not in voting
	ErrNotVotingPhase = errors.New("proposal is not in voting phase")

	// ErrAlreadyVoted is returned when the voter already has a vote on the proposal
	ErrAlreadyVoted = errors.New("already voted")

	// ErrNoTokens is returned when the voter holds no governance token record
	ErrNoTokens = errors.New("no governance tokens")

	// ErrInsufficientBalance is returned when a token balance cannot cover a debit
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInsufficientTokens is returned when a proposer holds less than the required share of supply
	ErrInsufficientTokens = errors.New("insufficient tokens")

	// ErrExceedsPowerCap is returned when a single vote exceeds the maximum voting power share
	ErrExceedsPowerCap = errors.New("exceeds voting power cap")

	// ErrTokenLocked is returned when a locked token is transferred or delegated
	ErrTokenLocked = errors.New("token is locked")

	// ErrNotDelegated is returned when undelegating a token that has no delegate
	ErrNotDelegated = errors.New("token is not delegated")

	// ErrNotPending is returned when an approval targets a transaction that is no longer pending
	ErrNotPending = errors.New("transaction is not pending")

	// ErrNotGuardian is returned when the actor does not hold an active guardianship
	ErrNotGuardian = errors.New("not an active guardian")

	// ErrDuplicateApproval is returned when a guardian already decided on the transaction
	ErrDuplicateApproval = errors.New("duplicate approval")

	// ErrNotApproved is returned when executing a transaction that is not approved
	ErrNotApproved = errors.New("transaction is not approved")

	// ErrCircuitBreakerActive is returned when the global halt switch blocks execution
	ErrCircuitBreakerActive = errors.New("circuit breaker is active")

	// ErrCircuitBreakerInactive is returned when deactivating a breaker that is not active
	ErrCircuitBreakerInactive = errors.New("circuit breaker is not active")

	// ErrExecutionFailed is returned when applying a transaction to the treasury ledger fails
	ErrExecutionFailed = errors.New("execution failed")

	// ErrNotImplemented is returned for capabilities that are intentionally left unimplemented
	ErrNotImplemented = errors.New("not implemented")

	// ErrNotFound is returned when the requested entity does not exist
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned when creating an entity that violates a uniqueness rule
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidArgument is returned when an input fails validation
	ErrInvalidArgument = errors.New("invalid argument")
)

// GuardError is a precondition failure carrying a human-readable reason.
// The reason is deterministic for the same inputs.
type GuardError struct {
	Kind   error
	Reason string
}

// NewGuardError creates a guard error of the given kind with a formatted reason
func NewGuardError(kind error, format string, args ...any) *GuardError {
	return &GuardError{
		Kind:   kind,
		Reason: fmt.Sprintf(format, args...),
	}
}

func (e *GuardError) Error() string {
	if e.Reason == "" {
		return e.Kind.Error()
	}
	return e.Reason
}

func (e *GuardError) Unwrap() error {
	return e.Kind
}

// ReasonOf returns the human-readable reason for err
func ReasonOf(err error) string {
	var guard *GuardError
	if errors.As(err, &guard) {
		return guard.Reason
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
