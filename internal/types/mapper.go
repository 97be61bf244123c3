package types

import (
	"fmt"
	"strings"

	"github.com/feral-file/ff-dao/internal/domain"
)

// ParseProposalStatuses converts a comma separated list into proposal statuses
func ParseProposalStatuses(csv string) ([]domain.ProposalStatus, error) {
	var statuses []domain.ProposalStatus
	for _, part := range splitCSV(csv) {
		status := domain.ProposalStatus(strings.ToLower(part))
		if !status.Valid() {
			return nil, fmt.Errorf("unknown proposal status: %s", part)
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

// ParseTransactionStatuses converts a comma separated list into transaction statuses
func ParseTransactionStatuses(csv string) ([]domain.TransactionStatus, error) {
	var statuses []domain.TransactionStatus
	for _, part := range splitCSV(csv) {
		status := domain.TransactionStatus(strings.ToLower(part))
		if !status.Valid() {
			return nil, fmt.Errorf("unknown transaction status: %s", part)
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

// TransactionStatusToAction returns the journal action recorded for a transaction status change
func TransactionStatusToAction(status domain.TransactionStatus) string {
	switch status {
	case domain.TransactionStatusApproved:
		return "approved"
	case domain.TransactionStatusRejected:
		return "rejected"
	case domain.TransactionStatusExecuted:
		return "executed"
	case domain.TransactionStatusFailed:
		return "failed"
	default:
		return "proposed"
	}
}

func splitCSV(csv string) []string {
	var parts []string
	for _, part := range strings.Split(csv, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}
