package treasury

import (
	"strconv"
	"time"

	"github.com/feral-file/ff-dao/internal/domain"
	"github.com/feral-file/ff-dao/internal/messaging"
	"github.com/feral-file/ff-dao/internal/store/schema"
)

func transactionID(t *schema.TreasuryTransaction) string {
	return strconv.FormatUint(t.ID, 10)
}

func transactionProposedEvent(t *schema.TreasuryTransaction, at time.Time) *messaging.Event {
	return messaging.NewEvent(messaging.EventTransactionProposed, transactionID(t), t.Proposer, at, map[string]any{
		"asset_id":         t.AssetID,
		"amount":           t.Amount.String(),
		"usd_value":        t.USDValue.String(),
		"transaction_type": t.TransactionType,
	})
}

func approvalSubmittedEvent(t *schema.TreasuryTransaction, a *schema.TransactionApproval, guardian string, at time.Time) *messaging.Event {
	return messaging.NewEvent(messaging.EventTransactionApprovalSubmitted, transactionID(t), guardian, at, map[string]any{
		"approved":        a.Approved,
		"approval_count":  t.ApprovalCount,
		"rejection_count": t.RejectionCount,
	})
}

func transactionStatusEvent(t *schema.TreasuryTransaction, from domain.TransactionStatus, actor string, at time.Time) *messaging.Event {
	data := map[string]any{
		"from": from,
		"to":   t.Status,
	}
	if t.FailureReason != nil {
		data["failure_reason"] = *t.FailureReason
	}
	return messaging.NewEvent(messaging.EventTransactionStatusChanged, transactionID(t), actor, at, data)
}

func breakerEvent(eventType messaging.EventType, b *schema.CircuitBreaker, actor string, at time.Time) *messaging.Event {
	return messaging.NewEvent(eventType, strconv.FormatUint(b.ID, 10), actor, at, map[string]any{
		"reason": b.Reason,
	})
}
