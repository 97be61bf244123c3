package executor

import (
	"context"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/feral-file/ff-dao/internal/api/shared/dto"
	"github.com/feral-file/ff-dao/internal/domain"
	"github.com/feral-file/ff-dao/internal/governance"
	"github.com/feral-file/ff-dao/internal/logger"
	"github.com/feral-file/ff-dao/internal/membership"
	"github.com/feral-file/ff-dao/internal/store"
	"github.com/feral-file/ff-dao/internal/store/schema"
	"github.com/feral-file/ff-dao/internal/treasury"
	"github.com/feral-file/ff-dao/internal/workflows"
)

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/mock_api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// Proposals
	CreateProposal(ctx context.Context, proposer string, req dto.CreateProposalRequest) (*dto.ProposalResponse, error)
	GetProposal(ctx context.Context, id uint64) (*dto.ProposalResponse, error)
	ListProposals(ctx context.Context, statuses []domain.ProposalStatus, proposer *string, limit int, offset uint64) (*dto.ProposalListResponse, error)
	StartDiscussion(ctx context.Context, id uint64, actor string) (*dto.ProposalResponse, error)
	StartVoting(ctx context.Context, id uint64, actor string) (*dto.ProposalResponse, error)
	EndVoting(ctx context.Context, id uint64, actor string) (*dto.ProposalResponse, error)
	ExecuteProposal(ctx context.Context, id uint64, actor string) (*dto.ProposalResponse, error)
	CancelProposal(ctx context.Context, id uint64, actor string, emergency bool) (*dto.ProposalResponse, error)

	// Votes and comments
	CastVote(ctx context.Context, proposalID uint64, voter string, req dto.CastVoteRequest) (*dto.VoteResponse, error)
	ListVotes(ctx context.Context, proposalID uint64) ([]dto.VoteResponse, error)
	AddComment(ctx context.Context, proposalID uint64, author string, content string) (*dto.CommentResponse, error)
	ListComments(ctx context.Context, proposalID uint64, limit int, offset uint64) (*dto.CommentListResponse, error)

	// Governance tokens
	GetToken(ctx context.Context, holder string) (*dto.TokenResponse, error)
	MintTokens(ctx context.Context, holder string, amount int64, actor string) (*dto.TokenResponse, error)
	TransferTokens(ctx context.Context, from string, to string, amount int64) (*dto.TokenResponse, error)
	Delegate(ctx context.Context, holder string, delegate string) (*dto.TokenResponse, error)
	Undelegate(ctx context.Context, holder string) (*dto.TokenResponse, error)

	// Members
	RegisterMember(ctx context.Context, wallet string, displayName string) (*dto.MemberResponse, error)
	GetMember(ctx context.Context, wallet string) (*dto.MemberResponse, error)
	RequestVerification(ctx context.Context, wallet string, evidence string) (*dto.VerificationResponse, error)
	ApproveVerification(ctx context.Context, requestID uint64, reviewer string) (*dto.MemberResponse, error)
	RejectVerification(ctx context.Context, requestID uint64, reviewer string, reason string) (*dto.MemberResponse, error)
	RequestAdditionalInfo(ctx context.Context, requestID uint64, reviewer string) (*dto.MemberResponse, error)

	// Guardians and assets
	AddGuardian(ctx context.Context, req dto.AddGuardianRequest, actor string) (*dto.GuardianResponse, error)
	DeactivateGuardian(ctx context.Context, userID string, actor string) (*dto.GuardianResponse, error)
	ListGuardians(ctx context.Context) ([]dto.GuardianResponse, error)
	CreateAsset(ctx context.Context, req dto.CreateAssetRequest) (*dto.AssetResponse, error)
	ListAssets(ctx context.Context) ([]dto.AssetResponse, error)

	// Treasury
	GetBalances(ctx context.Context) ([]dto.BalanceResponse, error)
	ProposeTransaction(ctx context.Context, proposer string, req dto.ProposeTransactionRequest) (*dto.TransactionResponse, error)
	GetTransaction(ctx context.Context, id uint64) (*dto.TransactionResponse, error)
	ListTransactions(ctx context.Context, statuses []domain.TransactionStatus, limit int, offset uint64) (*dto.TransactionListResponse, error)
	PendingTransactions(ctx context.Context, guardian string, limit int) ([]dto.TransactionResponse, error)
	ListApprovals(ctx context.Context, id uint64) ([]dto.ApprovalResponse, error)
	SubmitApproval(ctx context.Context, id uint64, guardian string, req dto.SubmitApprovalRequest) (*dto.SubmitApprovalResponse, error)
	ExecuteTransaction(ctx context.Context, id uint64, actor string) (*dto.TransactionResponse, error)
	CancelTransaction(ctx context.Context, id uint64, actor string) (*dto.TransactionResponse, error)
	LatestMetric(ctx context.Context) (*dto.MetricResponse, error)
	MetricHistory(ctx context.Context, since time.Time, limit int) ([]dto.MetricResponse, error)

	// Circuit breaker and allocation strategies
	GetCircuitBreaker(ctx context.Context) (*dto.CircuitBreakerStatusResponse, error)
	ActivateCircuitBreaker(ctx context.Context, actor string, reason string) (*dto.CircuitBreakerResponse, error)
	DeactivateCircuitBreaker(ctx context.Context, actor string) (*dto.CircuitBreakerResponse, error)
	CircuitBreakerHistory(ctx context.Context, limit int, offset uint64) ([]dto.CircuitBreakerResponse, error)
	CreateStrategy(ctx context.Context, req dto.CreateStrategyRequest) (*dto.StrategyResponse, error)
	ListStrategies(ctx context.Context) ([]dto.StrategyResponse, error)
	ActivateStrategy(ctx context.Context, id uint64, actor string) (*dto.StrategyResponse, error)

	// GetJournal retrieves journal entries after the anchor
	GetJournal(ctx context.Context, subjectTypes []schema.SubjectType, subjectIDs []string, anchor *int64, limit int) (*dto.JournalListResponse, error)
}

// Services holds the domain services the executor delegates to
type Services struct {
	Store      store.Store
	Proposals  *governance.StateMachine
	Votes      *governance.VotingEngine
	Tokens     *governance.TokenLedger
	Members    *membership.Service
	Guardians  *treasury.GuardianRegistry
	Approvals  *treasury.GuardianApprovalEngine
	Ledger     *treasury.Ledger
	Breaker    *treasury.CircuitBreaker
	Assets     *treasury.AssetRegistry
	Strategies *treasury.AllocationStrategies
	// Lifecycle starts the lifecycle workflow of proposals entering discussion, nil when disabled
	Lifecycle workflows.LifecycleStarter
}

type executor struct {
	Services
}

func NewExecutor(services Services) Executor {
	return &executor{Services: services}
}

func (e *executor) proposal(p *schema.Proposal) *dto.ProposalResponse {
	return dto.MapProposalToDTO(p, governance.NextDeadline(p, e.Proposals.Params()))
}

func (e *executor) CreateProposal(ctx context.Context, proposer string, req dto.CreateProposalRequest) (*dto.ProposalResponse, error) {
	p, err := e.Proposals.Create(ctx, governance.CreateProposalInput{
		Proposer:    proposer,
		Title:       req.Title,
		Description: req.Description,
		Metadata:    req.Metadata,
	})
	if err != nil {
		return nil, err
	}
	return e.proposal(p), nil
}

func (e *executor) GetProposal(ctx context.Context, id uint64) (*dto.ProposalResponse, error) {
	p, err := e.Proposals.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return e.proposal(p), nil
}

func (e *executor) ListProposals(ctx context.Context, statuses []domain.ProposalStatus, proposer *string, limit int, offset uint64) (*dto.ProposalListResponse, error) {
	proposals, total, err := e.Proposals.List(ctx, store.ProposalQueryFilter{
		Statuses: statuses,
		Proposer: proposer,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return nil, err
	}

	return &dto.ProposalListResponse{
		Proposals: lo.Map(proposals, func(p *schema.Proposal, _ int) dto.ProposalResponse {
			return *e.proposal(p)
		}),
		Offset: dto.NextOffset(offset, len(proposals), total),
		Total:  total,
	}, nil
}

func (e *executor) StartDiscussion(ctx context.Context, id uint64, actor string) (*dto.ProposalResponse, error) {
	p, err := e.Proposals.StartDiscussion(ctx, id, actor)
	if err != nil {
		return nil, err
	}

	// the sweeper still advances the proposal when the workflow cannot be started
	if e.Lifecycle != nil {
		if err := e.Lifecycle.StartLifecycle(ctx, p.ID); err != nil {
			logger.ErrorCtx(ctx, err, zap.Uint64("proposal_id", p.ID))
		}
	}
	return e.proposal(p), nil
}

func (e *executor) StartVoting(ctx context.Context, id uint64, actor string) (*dto.ProposalResponse, error) {
	p, err := e.Proposals.StartVoting(ctx, id, actor)
	if err != nil {
		return nil, err
	}
	return e.proposal(p), nil
}

func (e *executor) EndVoting(ctx context.Context, id uint64, actor string) (*dto.ProposalResponse, error) {
	p, err := e.Proposals.EndVoting(ctx, id, actor)
	if err != nil {
		return nil, err
	}
	return e.proposal(p), nil
}

func (e *executor) ExecuteProposal(ctx context.Context, id uint64, actor string) (*dto.ProposalResponse, error) {
	p, err := e.Proposals.Execute(ctx, id, actor)
	if err != nil {
		return nil, err
	}
	return e.proposal(p), nil
}

func (e *executor) CancelProposal(ctx context.Context, id uint64, actor string, emergency bool) (*dto.ProposalResponse, error) {
	if !emergency {
		current, err := e.Proposals.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if current.Status.AwaitsExecution() {
			return nil, domain.NewGuardError(domain.ErrInvalidTransition,
				"proposal %d is %s, cancelling it requires the emergency flag", id, current.Status)
		}
	}

	p, err := e.Proposals.Cancel(ctx, id, actor)
	if err != nil {
		return nil, err
	}
	return e.proposal(p), nil
}

func (e *executor) CastVote(ctx context.Context, proposalID uint64, voter string, req dto.CastVoteRequest) (*dto.VoteResponse, error) {
	vote, err := e.Votes.CastVote(ctx, governance.CastVoteInput{
		ProposalID: proposalID,
		Voter:      voter,
		VoteCount:  req.VoteCount,
		IsFor:      lo.FromPtr(req.IsFor),
	})
	if err != nil {
		return nil, err
	}
	return dto.MapVoteToDTO(vote), nil
}

func (e *executor) ListVotes(ctx context.Context, proposalID uint64) ([]dto.VoteResponse, error) {
	if _, err := e.Proposals.Get(ctx, proposalID); err != nil {
		return nil, err
	}
	votes, err := e.Votes.ListVotes(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	return dto.MapVotesToDTO(votes), nil
}

func (e *executor) AddComment(ctx context.Context, proposalID uint64, author string, content string) (*dto.CommentResponse, error) {
	comment, err := e.Proposals.AddComment(ctx, proposalID, author, content)
	if err != nil {
		return nil, err
	}
	return dto.MapCommentToDTO(comment), nil
}

func (e *executor) ListComments(ctx context.Context, proposalID uint64, limit int, offset uint64) (*dto.CommentListResponse, error) {
	comments, total, err := e.Proposals.ListComments(ctx, proposalID, limit, offset)
	if err != nil {
		return nil, err
	}
	return &dto.CommentListResponse{
		Comments: lo.Map(comments, func(c *schema.ProposalComment, _ int) dto.CommentResponse {
			return *dto.MapCommentToDTO(c)
		}),
		Offset: dto.NextOffset(offset, len(comments), total),
		Total:  total,
	}, nil
}

func (e *executor) GetToken(ctx context.Context, holder string) (*dto.TokenResponse, error) {
	return tokenResponse(e.Tokens.Get(ctx, holder))
}

func (e *executor) MintTokens(ctx context.Context, holder string, amount int64, actor string) (*dto.TokenResponse, error) {
	return tokenResponse(e.Tokens.Mint(ctx, holder, amount, actor))
}

func (e *executor) TransferTokens(ctx context.Context, from string, to string, amount int64) (*dto.TokenResponse, error) {
	return tokenResponse(e.Tokens.Transfer(ctx, from, to, amount))
}

func (e *executor) Delegate(ctx context.Context, holder string, delegate string) (*dto.TokenResponse, error) {
	return tokenResponse(e.Tokens.Delegate(ctx, holder, delegate))
}

func (e *executor) Undelegate(ctx context.Context, holder string) (*dto.TokenResponse, error) {
	return tokenResponse(e.Tokens.Undelegate(ctx, holder))
}

func tokenResponse(t *schema.GovernanceToken, err error) (*dto.TokenResponse, error) {
	if err != nil {
		return nil, err
	}
	return dto.MapTokenToDTO(t), nil
}

func (e *executor) RegisterMember(ctx context.Context, wallet string, displayName string) (*dto.MemberResponse, error) {
	return memberResponse(e.Members.Register(ctx, wallet, displayName))
}

func (e *executor) GetMember(ctx context.Context, wallet string) (*dto.MemberResponse, error) {
	return memberResponse(e.Members.Get(ctx, wallet))
}

func (e *executor) RequestVerification(ctx context.Context, wallet string, evidence string) (*dto.VerificationResponse, error) {
	request, err := e.Members.RequestVerification(ctx, wallet, evidence)
	if err != nil {
		return nil, err
	}
	return dto.MapVerificationToDTO(request), nil
}

func (e *executor) ApproveVerification(ctx context.Context, requestID uint64, reviewer string) (*dto.MemberResponse, error) {
	return memberResponse(e.Members.ApproveVerification(ctx, requestID, reviewer))
}

func (e *executor) RejectVerification(ctx context.Context, requestID uint64, reviewer string, reason string) (*dto.MemberResponse, error) {
	return memberResponse(e.Members.RejectVerification(ctx, requestID, reviewer, reason))
}

func (e *executor) RequestAdditionalInfo(ctx context.Context, requestID uint64, reviewer string) (*dto.MemberResponse, error) {
	return memberResponse(e.Members.RequestAdditionalInfo(ctx, requestID, reviewer))
}

func memberResponse(m *schema.Member, err error) (*dto.MemberResponse, error) {
	if err != nil {
		return nil, err
	}
	return dto.MapMemberToDTO(m), nil
}

func (e *executor) AddGuardian(ctx context.Context, req dto.AddGuardianRequest, actor string) (*dto.GuardianResponse, error) {
	g, err := e.Guardians.Add(ctx, req.UserID, req.TermStart, req.TermEnd, actor)
	if err != nil {
		return nil, err
	}
	return dto.MapGuardianToDTO(g), nil
}

func (e *executor) DeactivateGuardian(ctx context.Context, userID string, actor string) (*dto.GuardianResponse, error) {
	g, err := e.Guardians.Deactivate(ctx, userID, actor)
	if err != nil {
		return nil, err
	}
	return dto.MapGuardianToDTO(g), nil
}

func (e *executor) ListGuardians(ctx context.Context) ([]dto.GuardianResponse, error) {
	guardians, err := e.Guardians.List(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Map(guardians, func(g *schema.Guardian, _ int) dto.GuardianResponse {
		return *dto.MapGuardianToDTO(g)
	}), nil
}

func (e *executor) CreateAsset(ctx context.Context, req dto.CreateAssetRequest) (*dto.AssetResponse, error) {
	asset, err := e.Assets.Create(ctx, treasury.CreateAssetInput{
		Name:            req.Name,
		Symbol:          req.Symbol,
		AssetType:       req.AssetType,
		ContractAddress: req.ContractAddress,
		Chain:           req.Chain,
		Decimals:        req.Decimals,
		RiskScore:       req.RiskScore,
		IsStable:        req.IsStable,
	})
	if err != nil {
		return nil, err
	}
	return dto.MapAssetToDTO(asset), nil
}

func (e *executor) ListAssets(ctx context.Context) ([]dto.AssetResponse, error) {
	assets, err := e.Assets.List(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Map(assets, func(a *schema.Asset, _ int) dto.AssetResponse {
		return *dto.MapAssetToDTO(a)
	}), nil
}

func (e *executor) GetBalances(ctx context.Context) ([]dto.BalanceResponse, error) {
	balances, err := e.Ledger.Balances(ctx)
	if err != nil {
		return nil, err
	}
	return dto.MapBalancesToDTO(balances), nil
}

func (e *executor) ProposeTransaction(ctx context.Context, proposer string, req dto.ProposeTransactionRequest) (*dto.TransactionResponse, error) {
	return transactionResponse(e.Approvals.Propose(ctx, treasury.ProposeInput{
		AssetID:            req.AssetID,
		Amount:             req.Amount,
		USDValue:           req.USDValue,
		TransactionType:    req.TransactionType,
		DestinationAssetID: req.DestinationAssetID,
		DestinationAmount:  req.DestinationAmount,
		Description:        req.Description,
		Proposer:           proposer,
		ProposalID:         req.ProposalID,
	}))
}

func (e *executor) GetTransaction(ctx context.Context, id uint64) (*dto.TransactionResponse, error) {
	return transactionResponse(e.Approvals.Get(ctx, id))
}

func (e *executor) ListTransactions(ctx context.Context, statuses []domain.TransactionStatus, limit int, offset uint64) (*dto.TransactionListResponse, error) {
	transactions, total, err := e.Approvals.List(ctx, store.TransactionQueryFilter{
		Statuses: statuses,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return nil, err
	}
	return &dto.TransactionListResponse{
		Transactions: dto.MapTransactionsToDTO(transactions),
		Offset:       dto.NextOffset(offset, len(transactions), total),
		Total:        total,
	}, nil
}

func (e *executor) PendingTransactions(ctx context.Context, guardian string, limit int) ([]dto.TransactionResponse, error) {
	transactions, err := e.Approvals.PendingForGuardian(ctx, guardian, limit)
	if err != nil {
		return nil, err
	}
	return dto.MapTransactionsToDTO(transactions), nil
}

func (e *executor) ListApprovals(ctx context.Context, id uint64) ([]dto.ApprovalResponse, error) {
	if _, err := e.Approvals.Get(ctx, id); err != nil {
		return nil, err
	}
	approvals, err := e.Approvals.Approvals(ctx, id)
	if err != nil {
		return nil, err
	}
	return lo.Map(approvals, func(a *schema.TransactionApproval, _ int) dto.ApprovalResponse {
		return *dto.MapApprovalToDTO(a)
	}), nil
}

func (e *executor) SubmitApproval(ctx context.Context, id uint64, guardian string, req dto.SubmitApprovalRequest) (*dto.SubmitApprovalResponse, error) {
	result, err := e.Approvals.SubmitApproval(ctx, id, guardian, lo.FromPtr(req.Approved), req.Comment)
	if err != nil {
		return nil, err
	}
	return &dto.SubmitApprovalResponse{
		Approval:    *dto.MapApprovalToDTO(result.Approval),
		Transaction: *dto.MapTransactionToDTO(result.Transaction),
	}, nil
}

func (e *executor) ExecuteTransaction(ctx context.Context, id uint64, actor string) (*dto.TransactionResponse, error) {
	return transactionResponse(e.Ledger.Execute(ctx, id, actor))
}

func (e *executor) CancelTransaction(ctx context.Context, id uint64, actor string) (*dto.TransactionResponse, error) {
	return transactionResponse(e.Approvals.Cancel(ctx, id, actor))
}

func transactionResponse(t *schema.TreasuryTransaction, err error) (*dto.TransactionResponse, error) {
	if err != nil {
		return nil, err
	}
	return dto.MapTransactionToDTO(t), nil
}

func (e *executor) LatestMetric(ctx context.Context) (*dto.MetricResponse, error) {
	metric, err := e.Ledger.LatestMetric(ctx)
	if err != nil {
		return nil, err
	}
	return dto.MapMetricToDTO(metric, e.Ledger.ReserveRatioTarget()), nil
}

func (e *executor) MetricHistory(ctx context.Context, since time.Time, limit int) ([]dto.MetricResponse, error) {
	metrics, err := e.Ledger.MetricHistory(ctx, since, limit)
	if err != nil {
		return nil, err
	}
	target := e.Ledger.ReserveRatioTarget()
	return lo.Map(metrics, func(m *schema.TreasuryMetric, _ int) dto.MetricResponse {
		return *dto.MapMetricToDTO(m, target)
	}), nil
}

func (e *executor) GetCircuitBreaker(ctx context.Context) (*dto.CircuitBreakerStatusResponse, error) {
	current, err := e.Breaker.Current(ctx)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return &dto.CircuitBreakerStatusResponse{Active: false}, nil
	}
	return &dto.CircuitBreakerStatusResponse{
		Active:  true,
		Current: dto.MapCircuitBreakerToDTO(current),
	}, nil
}

func (e *executor) ActivateCircuitBreaker(ctx context.Context, actor string, reason string) (*dto.CircuitBreakerResponse, error) {
	b, err := e.Breaker.Activate(ctx, actor, reason)
	if err != nil {
		return nil, err
	}
	return dto.MapCircuitBreakerToDTO(b), nil
}

func (e *executor) DeactivateCircuitBreaker(ctx context.Context, actor string) (*dto.CircuitBreakerResponse, error) {
	b, err := e.Breaker.Deactivate(ctx, actor)
	if err != nil {
		return nil, err
	}
	return dto.MapCircuitBreakerToDTO(b), nil
}

func (e *executor) CircuitBreakerHistory(ctx context.Context, limit int, offset uint64) ([]dto.CircuitBreakerResponse, error) {
	history, _, err := e.Breaker.History(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return lo.Map(history, func(b *schema.CircuitBreaker, _ int) dto.CircuitBreakerResponse {
		return *dto.MapCircuitBreakerToDTO(b)
	}), nil
}

func (e *executor) CreateStrategy(ctx context.Context, req dto.CreateStrategyRequest) (*dto.StrategyResponse, error) {
	s, err := e.Strategies.Create(ctx, treasury.CreateStrategyInput{
		Name:                      req.Name,
		Description:               req.Description,
		MinStableAssetsPercentage: req.MinStableAssetsPercentage,
		MaxSingleAssetPercentage:  req.MaxSingleAssetPercentage,
		RebalanceThreshold:        req.RebalanceThreshold,
		Targets:                   req.Targets(),
	})
	if err != nil {
		return nil, err
	}
	return dto.MapStrategyToDTO(s), nil
}

// ListStrategies returns every strategy, the active one with its drift from the current balances
func (e *executor) ListStrategies(ctx context.Context) ([]dto.StrategyResponse, error) {
	strategies, err := e.Strategies.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.StrategyResponse, 0, len(strategies))
	for _, s := range strategies {
		response := dto.MapStrategyToDTO(s)
		if s.IsActive {
			balances, err := e.Ledger.Balances(ctx)
			if err != nil {
				return nil, err
			}
			response.Drift = mapDrift(treasury.AllocationDrift(balances, s))
		}
		responses = append(responses, *response)
	}
	return responses, nil
}

func (e *executor) ActivateStrategy(ctx context.Context, id uint64, actor string) (*dto.StrategyResponse, error) {
	s, err := e.Strategies.Activate(ctx, id, actor)
	if err != nil {
		return nil, err
	}
	return dto.MapStrategyToDTO(s), nil
}

func mapDrift(drift []treasury.Drift) []dto.DriftResponse {
	return lo.Map(drift, func(d treasury.Drift, _ int) dto.DriftResponse {
		return dto.DriftResponse{
			AssetType:      d.AssetType,
			Target:         d.Target,
			Actual:         d.Actual,
			Deviation:      d.Deviation,
			NeedsRebalance: d.NeedsRebalance,
		}
	})
}

func (e *executor) GetJournal(ctx context.Context, subjectTypes []schema.SubjectType, subjectIDs []string, anchor *int64, limit int) (*dto.JournalListResponse, error) {
	entries, total, err := e.Store.ListJournal(ctx, store.JournalQueryFilter{
		SubjectTypes: subjectTypes,
		SubjectIDs:   subjectIDs,
		Anchor:       anchor,
		Limit:        limit,
	})
	if err != nil {
		return nil, err
	}

	response := &dto.JournalListResponse{
		Entries: lo.Map(entries, func(entry *schema.GovernanceJournal, _ int) dto.JournalEntryResponse {
			return *dto.MapJournalEntryToDTO(entry)
		}),
		Total: total,
	}
	if len(entries) == limit && limit > 0 {
		last := entries[len(entries)-1].Cursor
		response.NextAnchor = &last
	}
	return response, nil
}
