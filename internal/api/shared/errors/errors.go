package errors

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/feral-file/ff-dao/internal/domain"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	ErrCodeBadRequest       ErrorCode = "bad_request"
	ErrCodeNotFound         ErrorCode = "not_found"
	ErrCodeValidationFailed ErrorCode = "validation_failed"
	ErrCodeUnauthorized     ErrorCode = "unauthorized"
	ErrCodeForbidden        ErrorCode = "forbidden"
	ErrCodeConflict         ErrorCode = "conflict"
	ErrCodeUnprocessable    ErrorCode = "unprocessable"
	ErrCodeLocked           ErrorCode = "locked"
	ErrCodeRateLimited      ErrorCode = "rate_limited"

	// Server errors (5xx)
	ErrCodeInternalError  ErrorCode = "internal_error"
	ErrCodeExecutionError ErrorCode = "execution_failed"
	ErrCodeNotImplemented ErrorCode = "not_implemented"
)

// APIError represents a structured API error that carries error code and details
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	jsonErr, _ := json.Marshal(e)
	return string(jsonErr)
}

// Error constructors for common error types
func NewBadRequestError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeBadRequest,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewNotFoundError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeNotFound,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewValidationError(details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeValidationFailed,
		Message: "Validation failed",
		Details: strings.Join(details, ", "),
	}
}

func NewUnauthorizedError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeUnauthorized,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewForbiddenError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeForbidden,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewRateLimitedError(details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeRateLimited,
		Message: "Too many requests",
		Details: strings.Join(details, ", "),
	}
}

func NewInternalError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeInternalError,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

// status pairs a domain error kind with its HTTP rendering
type status struct {
	kind    error
	code    int
	errCode ErrorCode
	message string
}

// domainStatuses is checked in order, the first kind matched by errors.Is wins
var domainStatuses = []status{
	{domain.ErrNotFound, http.StatusNotFound, ErrCodeNotFound, "Not found"},
	{domain.ErrInvalidArgument, http.StatusBadRequest, ErrCodeValidationFailed, "Validation failed"},
	{domain.ErrNotAuthorized, http.StatusForbidden, ErrCodeForbidden, "Not authorized"},
	{domain.ErrNotGuardian, http.StatusForbidden, ErrCodeForbidden, "Not an active guardian"},
	{domain.ErrInvalidTransition, http.StatusConflict, ErrCodeConflict, "Invalid transition"},
	{domain.ErrTimeNotElapsed, http.StatusConflict, ErrCodeConflict, "Time window not elapsed"},
	{domain.ErrNotVotingPhase, http.StatusConflict, ErrCodeConflict, "Proposal is not in voting phase"},
	{domain.ErrNotPending, http.StatusConflict, ErrCodeConflict, "Transaction is not pending"},
	{domain.ErrNotApproved, http.StatusConflict, ErrCodeConflict, "Transaction is not approved"},
	{domain.ErrAlreadyVoted, http.StatusConflict, ErrCodeConflict, "Already voted"},
	{domain.ErrDuplicateApproval, http.StatusConflict, ErrCodeConflict, "Duplicate approval"},
	{domain.ErrAlreadyExists, http.StatusConflict, ErrCodeConflict, "Already exists"},
	{domain.ErrCircuitBreakerInactive, http.StatusConflict, ErrCodeConflict, "Circuit breaker is not active"},
	{domain.ErrTokenLocked, http.StatusConflict, ErrCodeConflict, "Tokens are locked"},
	{domain.ErrNotDelegated, http.StatusConflict, ErrCodeConflict, "Tokens are not delegated"},
	{domain.ErrInsufficientBalance, http.StatusUnprocessableEntity, ErrCodeUnprocessable, "Insufficient balance"},
	{domain.ErrInsufficientTokens, http.StatusUnprocessableEntity, ErrCodeUnprocessable, "Insufficient tokens"},
	{domain.ErrNoTokens, http.StatusUnprocessableEntity, ErrCodeUnprocessable, "No governance tokens"},
	{domain.ErrExceedsPowerCap, http.StatusUnprocessableEntity, ErrCodeUnprocessable, "Exceeds voting power cap"},
	{domain.ErrCircuitBreakerActive, http.StatusLocked, ErrCodeLocked, "Circuit breaker is active"},
	{domain.ErrNotImplemented, http.StatusNotImplemented, ErrCodeNotImplemented, "Not implemented"},
	{domain.ErrExecutionFailed, http.StatusInternalServerError, ErrCodeExecutionError, "Execution failed"},
}

// FromError maps err to an HTTP status and the API error rendered to the client.
// Guard failures carry their reason as details; anything else is an internal error whose cause is not exposed.
func FromError(err error) (int, *APIError) {
	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		switch apiErr.Code {
		case ErrCodeNotFound:
			return http.StatusNotFound, apiErr
		case ErrCodeUnauthorized:
			return http.StatusUnauthorized, apiErr
		case ErrCodeForbidden:
			return http.StatusForbidden, apiErr
		case ErrCodeBadRequest, ErrCodeValidationFailed:
			return http.StatusBadRequest, apiErr
		default:
			return http.StatusInternalServerError, apiErr
		}
	}

	for _, s := range domainStatuses {
		if stderrors.Is(err, s.kind) {
			return s.code, &APIError{
				Code:    s.errCode,
				Message: s.message,
				Details: domain.ReasonOf(err),
			}
		}
	}
	return http.StatusInternalServerError, NewInternalError("Internal server error")
}
