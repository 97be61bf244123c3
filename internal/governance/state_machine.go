package governance

import (
	"context"
	"strings"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/feral-file/ff-dao/internal/adapter"
	"github.com/feral-file/ff-dao/internal/domain"
	"github.com/feral-file/ff-dao/internal/journal"
	"github.com/feral-file/ff-dao/internal/logger"
	"github.com/feral-file/ff-dao/internal/messaging"
	"github.com/feral-file/ff-dao/internal/store"
	"github.com/feral-file/ff-dao/internal/store/schema"
)

// EmergencyAuthorizer decides whether an approved proposal may be cancelled.
// It returns nil to authorize, or a guard error explaining the refusal.
//
//go:generate mockgen -source=state_machine.go -destination=../mocks/emergency_authorizer.go -package=mocks -mock_names=EmergencyAuthorizer=MockEmergencyAuthorizer
type EmergencyAuthorizer interface {
	AuthorizeEmergencyCancel(ctx context.Context, proposal *schema.Proposal, actor string) error
}

// CreateProposalInput holds the fields of a new proposal
type CreateProposalInput struct {
	Proposer    string
	Title       string
	Description string
	Metadata    map[string]any
}

// StateMachine governs proposal phase transitions
type StateMachine struct {
	store     store.Store
	params    Params
	clock     adapter.Clock
	json      adapter.JSON
	publisher messaging.Publisher
	journal   *journal.Recorder
	emergency EmergencyAuthorizer
}

// Option configures optional collaborators of the state machine
type Option func(*StateMachine)

// WithEmergencyAuthorizer enables cancellation of approved proposals
func WithEmergencyAuthorizer(a EmergencyAuthorizer) Option {
	return func(m *StateMachine) {
		m.emergency = a
	}
}

// NewStateMachine creates a proposal state machine
func NewStateMachine(st store.Store, params Params, clock adapter.Clock, jsonAdapter adapter.JSON, publisher messaging.Publisher, recorder *journal.Recorder, opts ...Option) *StateMachine {
	if publisher == nil {
		publisher = messaging.NewNopPublisher()
	}
	m := &StateMachine{
		store:     st,
		params:    params,
		clock:     clock,
		json:      jsonAdapter,
		publisher: publisher,
		journal:   recorder,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Params returns the parameters the state machine was built with
func (m *StateMachine) Params() Params {
	return m.params
}

// Create drafts a new proposal. The proposer must hold the minimum share of supply.
func (m *StateMachine) Create(ctx context.Context, input CreateProposalInput) (*schema.Proposal, error) {
	proposer, err := domain.NormalizeAddress(input.Proposer)
	if err != nil {
		return nil, err
	}
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domain.NewGuardError(domain.ErrInvalidArgument, "title is required")
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, domain.NewGuardError(domain.ErrInvalidArgument, "description is required")
	}

	var metadata datatypes.JSON
	if len(input.Metadata) > 0 {
		raw, err := m.json.Marshal(input.Metadata)
		if err != nil {
			return nil, domain.NewGuardError(domain.ErrInvalidArgument, "invalid metadata: %v", err)
		}
		metadata = datatypes.JSON(raw)
	}

	now := m.clock.Now()
	var proposal *schema.Proposal
	err = m.store.WithTransaction(ctx, func(tx store.Store) error {
		proposal = nil

		supply, err := tx.GetTotalSupply(ctx)
		if err != nil {
			return err
		}
		token, err := tx.GetToken(ctx, proposer)
		if err != nil {
			return err
		}
		var balance int64
		if token != nil {
			balance = token.Balance
		}
		if !MeetsProposerShare(balance, supply, m.params) {
			return domain.NewGuardError(domain.ErrInsufficientTokens,
				"proposer holds %d of %d tokens, at least %d%% required",
				balance, supply, m.params.ProposerMinSharePercentage)
		}

		p := &schema.Proposal{
			Title:       title,
			Description: input.Description,
			Proposer:    proposer,
			Status:      domain.ProposalStatusDraft,
			Metadata:    metadata,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := tx.CreateProposal(ctx, p); err != nil {
			return err
		}
		if err := m.journal.Record(ctx, tx, journal.Entry{
			SubjectType: schema.SubjectTypeProposal,
			SubjectID:   proposalID(p),
			Action:      "create",
			Actor:       proposer,
			At:          now,
			Meta:        map[string]any{"status": p.Status},
		}); err != nil {
			return err
		}
		proposal = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Proposal created", zap.Uint64("proposal_id", proposal.ID), zap.String("proposer", proposer))
	messaging.PublishAll(ctx, m.publisher, proposalCreatedEvent(proposal, now))
	return proposal, nil
}

// Get returns a proposal by id
func (m *StateMachine) Get(ctx context.Context, id uint64) (*schema.Proposal, error) {
	p, err := m.store.GetProposal(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, notFound(id)
	}
	return p, nil
}

// List returns proposals matching the filter with the total count
func (m *StateMachine) List(ctx context.Context, filter store.ProposalQueryFilter) ([]*schema.Proposal, uint64, error) {
	return m.store.ListProposals(ctx, filter)
}

// StartDiscussion opens discussion on a draft. Only the proposer may do this.
func (m *StateMachine) StartDiscussion(ctx context.Context, id uint64, actor string) (*schema.Proposal, error) {
	return m.transition(ctx, id, actor, "start_discussion", func(_ store.Store, p *schema.Proposal, now time.Time) error {
		if p.Status != domain.ProposalStatusDraft {
			return invalidTransition("start discussion", p)
		}
		if !sameIdentity(actor, p.Proposer) {
			return domain.NewGuardError(domain.ErrNotAuthorized, "only the proposer can start discussion")
		}
		p.DiscussionStartTime = &now
		p.Status = domain.ProposalStatusDiscussion
		return nil
	})
}

// StartVoting opens voting once the discussion period elapsed and snapshots the total voting power
func (m *StateMachine) StartVoting(ctx context.Context, id uint64, actor string) (*schema.Proposal, error) {
	return m.transition(ctx, id, actor, "start_voting", func(tx store.Store, p *schema.Proposal, now time.Time) error {
		if p.Status != domain.ProposalStatusDiscussion {
			return invalidTransition("start voting", p)
		}
		opensAt := NextDeadline(p, m.params)
		if opensAt == nil || now.Before(*opensAt) {
			return timeNotElapsed("discussion period", opensAt)
		}

		supply, err := tx.GetTotalSupply(ctx)
		if err != nil {
			return err
		}
		end := now.Add(m.params.VotingPeriod)
		p.TotalVotingPower = supply
		p.VotingStartTime = &now
		p.VotingEndTime = &end
		p.Status = domain.ProposalStatusVoting
		return nil
	})
}

// EndVoting closes voting and settles the proposal as approved or rejected
func (m *StateMachine) EndVoting(ctx context.Context, id uint64, actor string) (*schema.Proposal, error) {
	return m.transition(ctx, id, actor, "end_voting", func(tx store.Store, p *schema.Proposal, now time.Time) error {
		if p.Status != domain.ProposalStatusVoting {
			return invalidTransition("end voting", p)
		}
		if p.VotingEndTime == nil || now.Before(*p.VotingEndTime) {
			return timeNotElapsed("voting period", p.VotingEndTime)
		}

		if err := RecomputeTally(ctx, tx, p); err != nil {
			return err
		}

		outcome := Settle(p.TotalVotesFor, p.TotalVotesAgainst, p.TotalVotingPower, m.params)
		p.Status = outcome.Status()
		if outcome.Approved {
			executeAt := now.Add(m.params.Timelock)
			p.ExecutionTime = &executeAt
		}

		logger.InfoCtx(ctx, "Proposal vote settled",
			zap.Uint64("proposal_id", p.ID),
			zap.Bool("quorum_reached", outcome.QuorumReached),
			zap.String("approval_percentage", outcome.ApprovalPercentage.String()),
			zap.String("status", string(p.Status)))
		return nil
	})
}

// Queue marks an approved proposal as scheduled for execution after its timelock
func (m *StateMachine) Queue(ctx context.Context, id uint64, actor string) (*schema.Proposal, error) {
	return m.transition(ctx, id, actor, "queue", func(_ store.Store, p *schema.Proposal, _ time.Time) error {
		if p.Status != domain.ProposalStatusApproved {
			return invalidTransition("queue", p)
		}
		p.Status = domain.ProposalStatusQueued
		return nil
	})
}

// Execute marks a proposal executed once its timelock expired
func (m *StateMachine) Execute(ctx context.Context, id uint64, actor string) (*schema.Proposal, error) {
	return m.transition(ctx, id, actor, "execute", func(_ store.Store, p *schema.Proposal, now time.Time) error {
		if !p.Status.AwaitsExecution() {
			return invalidTransition("execute", p)
		}
		if p.ExecutionTime == nil || now.Before(*p.ExecutionTime) {
			return timeNotElapsed("timelock", p.ExecutionTime)
		}
		p.ExecutionTime = &now
		p.Status = domain.ProposalStatusExecuted
		return nil
	})
}

// Cancel cancels a proposal. Drafts and proposals in discussion can be cancelled by their proposer;
// approved proposals need the emergency authorizer.
func (m *StateMachine) Cancel(ctx context.Context, id uint64, actor string) (*schema.Proposal, error) {
	return m.transition(ctx, id, actor, "cancel", func(_ store.Store, p *schema.Proposal, _ time.Time) error {
		switch p.Status {
		case domain.ProposalStatusDraft, domain.ProposalStatusDiscussion:
			if !sameIdentity(actor, p.Proposer) {
				return domain.NewGuardError(domain.ErrNotAuthorized, "only the proposer can cancel proposal %d", p.ID)
			}
		case domain.ProposalStatusApproved, domain.ProposalStatusQueued:
			if m.emergency == nil {
				return domain.NewGuardError(domain.ErrNotImplemented, "emergency cancellation of %s proposals is not available", p.Status)
			}
			if err := m.emergency.AuthorizeEmergencyCancel(ctx, p, actor); err != nil {
				return err
			}
		default:
			return invalidTransition("cancel", p)
		}
		p.Status = domain.ProposalStatusCancelled
		return nil
	})
}

// Advance performs the time-gated transition that is due for the proposal, if any.
// It returns the proposal unchanged when nothing is due.
func (m *StateMachine) Advance(ctx context.Context, id uint64, actor string) (*schema.Proposal, error) {
	p, err := m.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	deadline := NextDeadline(p, m.params)
	if deadline == nil || m.clock.Now().Before(*deadline) {
		return p, nil
	}

	switch p.Status {
	case domain.ProposalStatusDiscussion:
		return m.StartVoting(ctx, id, actor)
	case domain.ProposalStatusVoting:
		return m.EndVoting(ctx, id, actor)
	default:
		return m.Execute(ctx, id, actor)
	}
}

// DueProposals returns proposals whose next time-gated transition is legal now
func (m *StateMachine) DueProposals(ctx context.Context, limit int) ([]*schema.Proposal, error) {
	return m.store.ListDueProposals(ctx, store.DueProposalsFilter{
		Now:              m.clock.Now(),
		DiscussionPeriod: m.params.DiscussionPeriod,
		Limit:            limit,
	})
}

// RecomputeTally reloads the proposal under lock and rebuilds its counters from the votes
func (m *StateMachine) RecomputeTally(ctx context.Context, id uint64) (*schema.Proposal, error) {
	var proposal *schema.Proposal
	err := m.store.WithTransaction(ctx, func(tx store.Store) error {
		proposal = nil

		p, err := tx.GetProposalForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if p == nil {
			return notFound(id)
		}
		if err := RecomputeTally(ctx, tx, p); err != nil {
			return err
		}
		p.UpdatedAt = m.clock.Now()
		if err := tx.UpdateProposal(ctx, p); err != nil {
			return err
		}
		proposal = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return proposal, nil
}

// RecomputeTally sets the proposal counters to the sums of vote counts partitioned by side.
// The caller must hold the proposal row lock in tx and persist the proposal.
func RecomputeTally(ctx context.Context, tx store.Store, p *schema.Proposal) error {
	votes, err := tx.ListVotes(ctx, p.ID)
	if err != nil {
		return err
	}
	inFavour, against := lo.FilterReject(votes, func(v *schema.Vote, _ int) bool {
		return v.IsFor
	})
	count := func(v *schema.Vote) int64 { return v.VoteCount }
	p.TotalVotesFor = lo.SumBy(inFavour, count)
	p.TotalVotesAgainst = lo.SumBy(against, count)
	return nil
}

// AddComment appends a comment to the discussion thread of a proposal
func (m *StateMachine) AddComment(ctx context.Context, id uint64, author, content string) (*schema.ProposalComment, error) {
	author, err := domain.NormalizeAddress(author)
	if err != nil {
		return nil, err
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domain.NewGuardError(domain.ErrInvalidArgument, "comment content is required")
	}
	if _, err := m.Get(ctx, id); err != nil {
		return nil, err
	}

	now := m.clock.Now()
	comment := &schema.ProposalComment{
		ProposalID: id,
		Author:     author,
		Content:    content,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := m.store.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListComments returns the discussion thread of a proposal
func (m *StateMachine) ListComments(ctx context.Context, id uint64, limit int, offset uint64) ([]*schema.ProposalComment, uint64, error) {
	if _, err := m.Get(ctx, id); err != nil {
		return nil, 0, err
	}
	return m.store.ListComments(ctx, id, limit, offset)
}

type transitionFunc func(tx store.Store, p *schema.Proposal, now time.Time) error

// transition applies fn to the locked proposal and persists it with a journal entry.
// The status change event is published after commit.
func (m *StateMachine) transition(ctx context.Context, id uint64, actor, action string, fn transitionFunc) (*schema.Proposal, error) {
	var (
		proposal *schema.Proposal
		from     domain.ProposalStatus
	)
	now := m.clock.Now()

	err := m.store.WithTransaction(ctx, func(tx store.Store) error {
		proposal = nil

		p, err := tx.GetProposalForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if p == nil {
			return notFound(id)
		}

		from = p.Status
		if err := fn(tx, p, now); err != nil {
			return err
		}
		p.UpdatedAt = now

		if err := tx.UpdateProposal(ctx, p); err != nil {
			return err
		}
		if err := m.journal.Record(ctx, tx, journal.Entry{
			SubjectType: schema.SubjectTypeProposal,
			SubjectID:   proposalID(p),
			Action:      action,
			Actor:       actor,
			At:          now,
			Meta:        map[string]any{"from": from, "to": p.Status},
		}); err != nil {
			return err
		}
		proposal = p
		return nil
	})
	if err != nil {
		logger.DebugCtx(ctx, "Proposal transition refused",
			zap.Uint64("proposal_id", id),
			zap.String("action", action),
			zap.String("reason", domain.ReasonOf(err)))
		return nil, err
	}

	logger.InfoCtx(ctx, "Proposal transitioned",
		zap.Uint64("proposal_id", proposal.ID),
		zap.String("action", action),
		zap.String("from", string(from)),
		zap.String("to", string(proposal.Status)))
	messaging.PublishAll(ctx, m.publisher, proposalStatusEvent(proposal, from, actor, now))
	return proposal, nil
}

func notFound(id uint64) error {
	return domain.NewGuardError(domain.ErrNotFound, "proposal %d not found", id)
}

func invalidTransition(action string, p *schema.Proposal) error {
	return domain.NewGuardError(domain.ErrInvalidTransition, "cannot %s proposal %d in %s status", action, p.ID, p.Status)
}

func timeNotElapsed(window string, until *time.Time) error {
	if until == nil {
		return domain.NewGuardError(domain.ErrTimeNotElapsed, "%s has not started", window)
	}
	return domain.NewGuardError(domain.ErrTimeNotElapsed, "%s ends at %s", window, until.UTC().Format(time.RFC3339))
}

// sameIdentity compares wallet identities case-insensitively
func sameIdentity(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
