package treasury

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/feral-file/ff-dao/internal/adapter"
	"github.com/feral-file/ff-dao/internal/domain"
	"github.com/feral-file/ff-dao/internal/journal"
	"github.com/feral-file/ff-dao/internal/logger"
	"github.com/feral-file/ff-dao/internal/messaging"
	"github.com/feral-file/ff-dao/internal/store"
	"github.com/feral-file/ff-dao/internal/store/schema"
	"github.com/feral-file/ff-dao/internal/types"
)

const maxCommentLength = 2000

// ProposeInput describes a new treasury transaction
type ProposeInput struct {
	AssetID         uint64
	Amount          decimal.Decimal
	USDValue        decimal.Decimal
	TransactionType domain.TransactionType
	// DestinationAssetID and DestinationAmount are required for swaps and refused otherwise
	DestinationAssetID *uint64
	DestinationAmount  *decimal.Decimal
	Description        string
	Proposer           string
	// ProposalID links the transaction to the executed governance proposal that mandated it
	ProposalID *uint64
}

// ApprovalResult is the decision recorded by SubmitApproval with the resulting transaction state
type ApprovalResult struct {
	Approval    *schema.TransactionApproval
	Transaction *schema.TreasuryTransaction
}

// GuardianApprovalEngine collects guardian decisions on treasury transactions and
// hands a transaction to the executor once the multisig threshold is reached
type GuardianApprovalEngine struct {
	store     store.Store
	params    Params
	clock     adapter.Clock
	guardians *GuardianRegistry
	executor  Executor
	publisher messaging.Publisher
	journal   *journal.Recorder
}

// NewGuardianApprovalEngine creates an approval engine
func NewGuardianApprovalEngine(
	st store.Store,
	params Params,
	clock adapter.Clock,
	guardians *GuardianRegistry,
	executor Executor,
	publisher messaging.Publisher,
	recorder *journal.Recorder,
) *GuardianApprovalEngine {
	if publisher == nil {
		publisher = messaging.NewNopPublisher()
	}
	return &GuardianApprovalEngine{
		store:     st,
		params:    params,
		clock:     clock,
		guardians: guardians,
		executor:  executor,
		publisher: publisher,
		journal:   recorder,
	}
}

// Propose creates a PENDING transaction awaiting guardian decisions
func (e *GuardianApprovalEngine) Propose(ctx context.Context, input ProposeInput) (*schema.TreasuryTransaction, error) {
	proposer, err := domain.NormalizeAddress(input.Proposer)
	if err != nil {
		return nil, err
	}
	if err := validateProposal(input); err != nil {
		return nil, err
	}

	now := e.clock.Now()
	t := &schema.TreasuryTransaction{
		AssetID:            input.AssetID,
		Amount:             input.Amount,
		USDValue:           input.USDValue,
		TransactionType:    input.TransactionType,
		Status:             domain.TransactionStatusPending,
		DestinationAssetID: input.DestinationAssetID,
		DestinationAmount:  input.DestinationAmount,
		Description:        strings.TrimSpace(input.Description),
		Proposer:           proposer,
		ProposalID:         input.ProposalID,
		CreatedAt:          now,
	}

	err = e.store.WithTransaction(ctx, func(tx store.Store) error {
		t.ID = 0

		asset, err := tx.GetAsset(ctx, input.AssetID)
		if err != nil {
			return err
		}
		if asset == nil {
			return domain.NewGuardError(domain.ErrInvalidArgument, "asset %d does not exist", input.AssetID)
		}
		if input.DestinationAssetID != nil {
			destination, err := tx.GetAsset(ctx, *input.DestinationAssetID)
			if err != nil {
				return err
			}
			if destination == nil {
				return domain.NewGuardError(domain.ErrInvalidArgument, "destination asset %d does not exist", *input.DestinationAssetID)
			}
		}
		if input.ProposalID != nil {
			p, err := tx.GetProposal(ctx, *input.ProposalID)
			if err != nil {
				return err
			}
			if p == nil || p.Status != domain.ProposalStatusExecuted {
				return domain.NewGuardError(domain.ErrInvalidArgument, "proposal %d is not an executed proposal", *input.ProposalID)
			}
		}

		if err := tx.CreateTransaction(ctx, t); err != nil {
			return err
		}
		return e.journal.Record(ctx, tx, journal.Entry{
			SubjectType: schema.SubjectTypeTransaction,
			SubjectID:   transactionID(t),
			Action:      "propose",
			Actor:       proposer,
			At:          now,
			Meta: map[string]any{
				"type":      t.TransactionType,
				"amount":    t.Amount.String(),
				"usd_value": t.USDValue.String(),
			},
		})
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Treasury transaction proposed",
		zap.Uint64("transaction_id", t.ID),
		zap.String("type", string(t.TransactionType)),
		zap.String("proposer", proposer))
	messaging.PublishAll(ctx, e.publisher, transactionProposedEvent(t, now))
	return t, nil
}

func validateProposal(input ProposeInput) error {
	if !input.TransactionType.Valid() {
		return domain.NewGuardError(domain.ErrInvalidArgument, "unknown transaction type: %s", input.TransactionType)
	}
	if !input.Amount.IsPositive() {
		return domain.NewGuardError(domain.ErrInvalidArgument, "amount must be positive: %s", input.Amount)
	}
	if input.USDValue.IsNegative() {
		return domain.NewGuardError(domain.ErrInvalidArgument, "usd value must not be negative: %s", input.USDValue)
	}

	isSwap := input.TransactionType == domain.TransactionTypeSwap
	hasDestination := input.DestinationAssetID != nil || input.DestinationAmount != nil
	switch {
	case isSwap && (input.DestinationAssetID == nil || input.DestinationAmount == nil):
		return domain.NewGuardError(domain.ErrInvalidArgument, "swap requires a destination asset and amount")
	case isSwap && *input.DestinationAssetID == input.AssetID:
		return domain.NewGuardError(domain.ErrInvalidArgument, "swap destination must differ from the source asset")
	case isSwap && !input.DestinationAmount.IsPositive():
		return domain.NewGuardError(domain.ErrInvalidArgument, "destination amount must be positive: %s", input.DestinationAmount)
	case !isSwap && hasDestination:
		return domain.NewGuardError(domain.ErrInvalidArgument, "only swaps take a destination")
	}
	return nil
}

// SubmitApproval records the decision of a guardian. The submission that brings the approvals
// to the multisig threshold moves the transaction to APPROVED and executes it; exactly one
// submission can perform that move because it happens under the transaction row lock.
func (e *GuardianApprovalEngine) SubmitApproval(ctx context.Context, id uint64, guardianUser string, approved bool, comment string) (*ApprovalResult, error) {
	comment = strings.TrimSpace(comment)
	if len(comment) > maxCommentLength {
		return nil, domain.NewGuardError(domain.ErrInvalidArgument, "comment exceeds %d characters", maxCommentLength)
	}

	now := e.clock.Now()
	var (
		result *ApprovalResult
		from   domain.TransactionStatus
		winner bool
	)
	err := e.store.WithTransaction(ctx, func(tx store.Store) error {
		result, winner = nil, false

		t, err := tx.GetTransactionForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if t == nil {
			return transactionNotFound(id)
		}
		if t.Status != domain.TransactionStatusPending {
			return domain.NewGuardError(domain.ErrNotPending, "transaction %d is in %s status", t.ID, t.Status)
		}

		guardian, err := e.guardians.lookup(ctx, tx, guardianUser)
		if err != nil {
			return err
		}
		if guardian == nil {
			return domain.NewGuardError(domain.ErrNotGuardian, "%s is not an active guardian", guardianUser)
		}

		existing, err := tx.GetApproval(ctx, t.ID, guardian.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.NewGuardError(domain.ErrDuplicateApproval, "guardian %s already decided on transaction %d", guardian.UserID, t.ID)
		}

		approval := &schema.TransactionApproval{
			TransactionID: t.ID,
			GuardianID:    guardian.ID,
			Approved:      approved,
			Comment:       comment,
			CreatedAt:     now,
		}
		if err := tx.CreateApproval(ctx, approval); err != nil {
			return err
		}

		from = t.Status
		winner, err = e.evaluate(ctx, tx, t)
		if err != nil {
			return err
		}
		if err := tx.UpdateTransaction(ctx, t); err != nil {
			return err
		}

		if err := e.journal.Record(ctx, tx, journal.Entry{
			SubjectType: schema.SubjectTypeTransaction,
			SubjectID:   transactionID(t),
			Action:      "submit_approval",
			Actor:       guardian.UserID,
			At:          now,
			Meta: map[string]any{
				"approved":        approved,
				"approval_count":  t.ApprovalCount,
				"rejection_count": t.RejectionCount,
				"status":          t.Status,
			},
		}); err != nil {
			return err
		}

		result = &ApprovalResult{Approval: approval, Transaction: t}
		return nil
	})
	if err != nil {
		logger.DebugCtx(ctx, "Guardian approval refused",
			zap.Uint64("transaction_id", id),
			zap.String("guardian", guardianUser),
			zap.String("reason", domain.ReasonOf(err)))
		return nil, err
	}

	t := result.Transaction
	logger.InfoCtx(ctx, "Guardian decision recorded",
		zap.Uint64("transaction_id", t.ID),
		zap.Bool("approved", approved),
		zap.Int("approval_count", t.ApprovalCount),
		zap.Int("rejection_count", t.RejectionCount))

	events := []*messaging.Event{approvalSubmittedEvent(t, result.Approval, guardianUser, now)}
	if t.Status != from {
		events = append(events, transactionStatusEvent(t, from, guardianUser, now))
	}
	messaging.PublishAll(ctx, e.publisher, events...)

	if winner {
		executed, err := e.executor.Execute(ctx, t.ID, guardianUser)
		if err != nil {
			return result, err
		}
		result.Transaction = executed
	}
	return result, nil
}

// evaluate recounts the decisions on a locked PENDING transaction and applies the thresholds.
// It reports whether the transaction moved to APPROVED and must be executed by the caller.
func (e *GuardianApprovalEngine) evaluate(ctx context.Context, tx store.Store, t *schema.TreasuryTransaction) (bool, error) {
	approvals, rejections, err := tx.CountApprovals(ctx, t.ID)
	if err != nil {
		return false, err
	}
	t.ApprovalCount = approvals
	t.RejectionCount = rejections

	if approvals >= e.params.MultisigThreshold {
		breaker, err := tx.GetActiveCircuitBreaker(ctx)
		if err != nil {
			return false, err
		}
		if breaker == nil {
			t.Status = domain.TransactionStatusApproved
			return true, nil
		}
		logger.WarnCtx(ctx, "Multisig threshold reached while circuit breaker is active",
			zap.Uint64("transaction_id", t.ID),
			zap.Uint64("breaker_id", breaker.ID))
	}

	// rejections still settle a halted transaction
	if rejections >= e.params.RejectionThreshold {
		t.Status = domain.TransactionStatusRejected
	}
	return false, nil
}

// Settle re-evaluates a PENDING transaction whose decisions already meet a threshold,
// which happens when the threshold was reached while the circuit breaker was active.
// An APPROVED transaction left behind by a halted execution is executed again.
func (e *GuardianApprovalEngine) Settle(ctx context.Context, id uint64, actor string) (*schema.TreasuryTransaction, error) {
	now := e.clock.Now()
	var (
		settled *schema.TreasuryTransaction
		from    domain.TransactionStatus
		winner  bool
	)
	err := e.store.WithTransaction(ctx, func(tx store.Store) error {
		settled, winner = nil, false

		t, err := tx.GetTransactionForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if t == nil {
			return transactionNotFound(id)
		}

		from = t.Status
		switch t.Status {
		case domain.TransactionStatusApproved:
			winner = true
			settled = t
			return nil
		case domain.TransactionStatusPending:
		default:
			return domain.NewGuardError(domain.ErrNotPending, "transaction %d is in %s status", t.ID, t.Status)
		}

		winner, err = e.evaluate(ctx, tx, t)
		if err != nil {
			return err
		}
		if t.Status != from {
			if err := tx.UpdateTransaction(ctx, t); err != nil {
				return err
			}
			if err := e.journal.Record(ctx, tx, journal.Entry{
				SubjectType: schema.SubjectTypeTransaction,
				SubjectID:   transactionID(t),
				Action:      types.TransactionStatusToAction(t.Status),
				Actor:       actor,
				At:          now,
				Meta:        map[string]any{"from": from, "to": t.Status},
			}); err != nil {
				return err
			}
		}
		settled = t
		return nil
	})
	if err != nil {
		return nil, err
	}

	if settled.Status != from {
		logger.InfoCtx(ctx, "Treasury transaction settled",
			zap.Uint64("transaction_id", settled.ID),
			zap.String("status", string(settled.Status)))
		messaging.PublishAll(ctx, e.publisher, transactionStatusEvent(settled, from, actor, now))
	}
	if winner {
		return e.executor.Execute(ctx, settled.ID, actor)
	}
	return settled, nil
}

// Cancel rejects a PENDING or APPROVED transaction on behalf of its proposer or an active guardian
func (e *GuardianApprovalEngine) Cancel(ctx context.Context, id uint64, actor string) (*schema.TreasuryTransaction, error) {
	now := e.clock.Now()
	var (
		cancelled *schema.TreasuryTransaction
		from      domain.TransactionStatus
	)
	err := e.store.WithTransaction(ctx, func(tx store.Store) error {
		cancelled = nil

		t, err := tx.GetTransactionForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if t == nil {
			return transactionNotFound(id)
		}

		if !strings.EqualFold(t.Proposer, actor) {
			guardian, err := e.guardians.lookup(ctx, tx, actor)
			if err != nil {
				return err
			}
			if guardian == nil {
				return domain.NewGuardError(domain.ErrNotAuthorized, "only guardians or the proposer can cancel transaction %d", t.ID)
			}
		}
		if t.Status != domain.TransactionStatusPending && t.Status != domain.TransactionStatusApproved {
			return domain.NewGuardError(domain.ErrInvalidTransition, "cannot cancel transaction %d in %s status", t.ID, t.Status)
		}

		from = t.Status
		t.Status = domain.TransactionStatusRejected
		if err := tx.UpdateTransaction(ctx, t); err != nil {
			return err
		}
		if err := e.journal.Record(ctx, tx, journal.Entry{
			SubjectType: schema.SubjectTypeTransaction,
			SubjectID:   transactionID(t),
			Action:      "cancel",
			Actor:       actor,
			At:          now,
			Meta:        map[string]any{"from": from, "to": t.Status},
		}); err != nil {
			return err
		}
		cancelled = t
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Treasury transaction cancelled", zap.Uint64("transaction_id", id), zap.String("actor", actor))
	messaging.PublishAll(ctx, e.publisher, transactionStatusEvent(cancelled, from, actor, now))
	return cancelled, nil
}

// Get returns a transaction with its assets
func (e *GuardianApprovalEngine) Get(ctx context.Context, id uint64) (*schema.TreasuryTransaction, error) {
	t, err := e.store.GetTransaction(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, transactionNotFound(id)
	}
	return t, nil
}

// List returns transactions matching the filter and the total count
func (e *GuardianApprovalEngine) List(ctx context.Context, filter store.TransactionQueryFilter) ([]*schema.TreasuryTransaction, uint64, error) {
	return e.store.ListTransactions(ctx, filter)
}

// Approvals returns every decision on a transaction
func (e *GuardianApprovalEngine) Approvals(ctx context.Context, id uint64) ([]*schema.TransactionApproval, error) {
	return e.store.ListApprovals(ctx, id)
}

// PendingForGuardian returns the PENDING transactions the guardian has not decided on yet
func (e *GuardianApprovalEngine) PendingForGuardian(ctx context.Context, guardianUser string, limit int) ([]*schema.TreasuryTransaction, error) {
	guardian, err := e.guardians.Lookup(ctx, guardianUser)
	if err != nil {
		return nil, err
	}
	if guardian == nil {
		return nil, domain.NewGuardError(domain.ErrNotGuardian, "%s is not an active guardian", guardianUser)
	}
	return e.store.ListPendingTransactionsForGuardian(ctx, guardian.ID, limit)
}
