package rest

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-dao/internal/adapter"
	"github.com/feral-file/ff-dao/internal/api/middleware"
	"github.com/feral-file/ff-dao/internal/api/shared/dto"
	"github.com/feral-file/ff-dao/internal/api/shared/executor"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)

	// CreateProposal creates a DRAFT proposal owned by the caller
	// POST /api/v1/proposals
	CreateProposal(c *gin.Context)
	// GetProposal retrieves a proposal with its next deadline
	// GET /api/v1/proposals/:id
	GetProposal(c *gin.Context)
	// ListProposals lists proposals
	// GET /api/v1/proposals?status=<status>&proposer=<proposer>&limit=<limit>&offset=<offset>
	ListProposals(c *gin.Context)
	// StartDiscussion moves a DRAFT proposal into discussion
	// POST /api/v1/proposals/:id/discussion
	StartDiscussion(c *gin.Context)
	// StartVoting opens voting once the discussion period elapsed
	// POST /api/v1/proposals/:id/voting
	StartVoting(c *gin.Context)
	// EndVoting settles the vote once the voting period elapsed
	// POST /api/v1/proposals/:id/tally
	EndVoting(c *gin.Context)
	// ExecuteProposal executes an approved proposal once the timelock elapsed
	// POST /api/v1/proposals/:id/execute
	ExecuteProposal(c *gin.Context)
	// CancelProposal cancels a proposal, passed proposals need the emergency flag
	// POST /api/v1/proposals/:id/cancel
	CancelProposal(c *gin.Context)
	// CastVote casts the caller's quadratic vote
	// POST /api/v1/proposals/:id/votes
	CastVote(c *gin.Context)
	// ListVotes lists the votes of a proposal
	// GET /api/v1/proposals/:id/votes
	ListVotes(c *gin.Context)
	// AddComment adds a discussion comment
	// POST /api/v1/proposals/:id/comments
	AddComment(c *gin.Context)
	// ListComments lists discussion comments
	// GET /api/v1/proposals/:id/comments?limit=<limit>&offset=<offset>
	ListComments(c *gin.Context)

	// GetToken retrieves the governance token record of a holder
	// GET /api/v1/tokens/:holder
	GetToken(c *gin.Context)
	// MintTokens credits governance tokens to a holder (admin)
	// POST /api/v1/tokens/:holder/mint
	MintTokens(c *gin.Context)
	// TransferTokens transfers tokens from the caller
	// POST /api/v1/tokens/transfer
	TransferTokens(c *gin.Context)
	// Delegate delegates the caller's tokens
	// POST /api/v1/tokens/delegate
	Delegate(c *gin.Context)
	// Undelegate clears the caller's delegation
	// POST /api/v1/tokens/undelegate
	Undelegate(c *gin.Context)

	// RegisterMember registers the caller's wallet as a member
	// POST /api/v1/members
	RegisterMember(c *gin.Context)
	// GetMember retrieves a member by wallet
	// GET /api/v1/members/:wallet
	GetMember(c *gin.Context)
	// RequestVerification requests identity verification for the caller
	// POST /api/v1/members/verification
	RequestVerification(c *gin.Context)
	// ApproveVerification approves a verification request (admin)
	// POST /api/v1/verifications/:id/approve
	ApproveVerification(c *gin.Context)
	// RejectVerification rejects a verification request (admin)
	// POST /api/v1/verifications/:id/reject
	RejectVerification(c *gin.Context)
	// RequestAdditionalInfo asks the member for more evidence (admin)
	// POST /api/v1/verifications/:id/request-info
	RequestAdditionalInfo(c *gin.Context)

	// AddGuardian appoints a guardian (admin)
	// POST /api/v1/guardians
	AddGuardian(c *gin.Context)
	// DeactivateGuardian removes a guardian before the term ends (admin)
	// POST /api/v1/guardians/:user_id/deactivate
	DeactivateGuardian(c *gin.Context)
	// ListGuardians lists guardians
	// GET /api/v1/guardians
	ListGuardians(c *gin.Context)
	// CreateAsset registers a treasury asset (admin)
	// POST /api/v1/assets
	CreateAsset(c *gin.Context)
	// ListAssets lists treasury assets
	// GET /api/v1/assets
	ListAssets(c *gin.Context)

	// GetBalances lists treasury balances
	// GET /api/v1/treasury/balances
	GetBalances(c *gin.Context)
	// ProposeTransaction proposes a treasury transaction
	// POST /api/v1/treasury/transactions
	ProposeTransaction(c *gin.Context)
	// GetTransaction retrieves a treasury transaction
	// GET /api/v1/treasury/transactions/:id
	GetTransaction(c *gin.Context)
	// ListTransactions lists treasury transactions
	// GET /api/v1/treasury/transactions?status=<status>&limit=<limit>&offset=<offset>
	ListTransactions(c *gin.Context)
	// PendingTransactions lists the pending transactions the calling guardian has not decided
	// GET /api/v1/treasury/transactions/pending
	PendingTransactions(c *gin.Context)
	// ListApprovals lists the guardian decisions of a transaction
	// GET /api/v1/treasury/transactions/:id/approvals
	ListApprovals(c *gin.Context)
	// SubmitApproval records the calling guardian's decision
	// POST /api/v1/treasury/transactions/:id/approvals
	SubmitApproval(c *gin.Context)
	// ExecuteTransaction executes an approved transaction (admin)
	// POST /api/v1/treasury/transactions/:id/execute
	ExecuteTransaction(c *gin.Context)
	// CancelTransaction cancels a transaction
	// POST /api/v1/treasury/transactions/:id/cancel
	CancelTransaction(c *gin.Context)
	// LatestMetric retrieves the latest treasury metric snapshot
	// GET /api/v1/treasury/metrics/latest
	LatestMetric(c *gin.Context)
	// MetricHistory lists treasury metric snapshots
	// GET /api/v1/treasury/metrics?since=<timestamp>&limit=<limit>
	MetricHistory(c *gin.Context)

	// GetCircuitBreaker reports whether treasury execution is halted
	// GET /api/v1/circuit-breaker
	GetCircuitBreaker(c *gin.Context)
	// CircuitBreakerHistory lists past activations
	// GET /api/v1/circuit-breaker/history
	CircuitBreakerHistory(c *gin.Context)
	// ActivateCircuitBreaker halts treasury execution (admin)
	// POST /api/v1/circuit-breaker/activate
	ActivateCircuitBreaker(c *gin.Context)
	// DeactivateCircuitBreaker resumes treasury execution (admin)
	// POST /api/v1/circuit-breaker/deactivate
	DeactivateCircuitBreaker(c *gin.Context)
	// CreateStrategy creates an allocation strategy (admin)
	// POST /api/v1/allocation-strategies
	CreateStrategy(c *gin.Context)
	// ListStrategies lists allocation strategies
	// GET /api/v1/allocation-strategies
	ListStrategies(c *gin.Context)
	// ActivateStrategy activates an allocation strategy (admin)
	// POST /api/v1/allocation-strategies/:id/activate
	ActivateStrategy(c *gin.Context)

	// GetJournal retrieves the governance journal
	// GET /api/v1/journal?subject_type=<type>&subject_id=<id>&anchor=<cursor>&limit=<limit>
	GetJournal(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	clock    adapter.Clock
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(clock adapter.Clock, exec executor.Executor) Handler {
	return &handler{
		clock:    clock,
		executor: exec,
	}
}

type validatable interface {
	Validate() error
}

// bindJSON binds and validates the request body, responding on failure
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return false
	}
	if v, ok := req.(validatable); ok {
		if err := v.Validate(); err != nil {
			respondError(c, err)
			return false
		}
	}
	return true
}

// bindOptionalJSON binds a request body that may be omitted
func bindOptionalJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		respondBadRequest(c, "Invalid request body", err.Error())
		return false
	}
	return true
}

// idParam parses the :id path parameter, responding on failure
func idParam(c *gin.Context) (uint64, bool) {
	id, err := parseID(c, "id")
	if err != nil {
		respondBadRequest(c, "Invalid ID", err.Error())
		return 0, false
	}
	return id, true
}

// respond sends the executor result or its error
func respond[T any](c *gin.Context, status int, result T, err error) {
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(status, result)
}

func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:  "ok",
		Service: "ff-dao-api",
	})
}

func (h *handler) CreateProposal(c *gin.Context) {
	var req dto.CreateProposalRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.executor.CreateProposal(c.Request.Context(), middleware.Actor(c), req)
	respond(c, http.StatusCreated, result, err)
}

func (h *handler) GetProposal(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	result, err := h.executor.GetProposal(c.Request.Context(), id)
	respond(c, http.StatusOK, result, err)
}

func (h *handler) ListProposals(c *gin.Context) {
	params, err := ParseListProposalsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}
	result, err := h.executor.ListProposals(c.Request.Context(), params.Statuses, params.Proposer, params.Limit, params.Offset)
	respond(c, http.StatusOK, result, err)
}

func (h *handler) StartDiscussion(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	result, err := h.executor.StartDiscussion(c.Request.Context(), id, middleware.Actor(c))
	respond(c, http.StatusOK, result, err)
}

func (h *handler) StartVoting(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	result, err := h.executor.StartVoting(c.Request.Context(), id, middleware.Actor(c))
	respond(c, http.StatusOK, result, err)
}

func (h *handler) EndVoting(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	result, err := h.executor.EndVoting(c.Request.Context(), id, middleware.Actor(c))
	respond(c, http.StatusOK, result, err)
}

func (h *handler) ExecuteProposal(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	result, err := h.executor.ExecuteProposal(c.Request.Context(), id, middleware.Actor(c))
	respond(c, http.StatusOK, result, err)
}

func (h *handler) CancelProposal(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.CancelProposalRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	result, err := h.executor.CancelProposal(c.Request.Context(), id, middleware.Actor(c), req.Emergency)
	respond(c, http.StatusOK, result, err)
}

func (h *handler) CastVote(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.CastVoteRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.executor.CastVote(c.Request.Context(), id, middleware.Actor(c), req)
	respond(c, http.StatusCreated, result, err)
}

func (h *handler) ListVotes(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	result, err := h.executor.ListVotes(c.Request.Context(), id)
	respond(c, http.StatusOK, result, err)
}

func (h *handler) AddComment(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.AddCommentRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.executor.AddComment(c.Request.Context(), id, middleware.Actor(c), req.Content)
	respond(c, http.StatusCreated, result, err)
}

func (h *handler) ListComments(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	params, err := ParsePaginationQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}
	result, err := h.executor.ListComments(c.Request.Context(), id, params.Limit, params.Offset)
	respond(c, http.StatusOK, result, err)
}

func (h *handler) GetToken(c *gin.Context) {
	result, err := h.executor.GetToken(c.Request.Context(), c.Param("holder"))
	respond(c, http.StatusOK, result, err)
}

func (h *handler) MintTokens(c *gin.Context) {
	var req dto.MintRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.executor.MintTokens(c.Request.Context(), c.Param("holder"), req.Amount, middleware.Actor(c))
	respond(c, http.StatusOK, result, err)
}

func (h *handler) TransferTokens(c *gin.Context) {
	var req dto.TransferRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.executor.TransferTokens(c.Request.Context(), middleware.Actor(c), req.To, req.Amount)
	respond(c, http.StatusOK, result, err)
}

func (h *handler) Delegate(c *gin.Context) {
	var req dto.DelegateRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.executor.Delegate(c.Request.Context(), middleware.Actor(c), req.Delegate)
	respond(c, http.StatusOK, result, err)
}

func (h *handler) Undelegate(c *gin.Context) {
	result, err := h.executor.Undelegate(c.Request.Context(), middleware.Actor(c))
	respond(c, http.StatusOK, result, err)
}

func (h *handler) RegisterMember(c *gin.Context) {
	var req dto.RegisterMemberRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	result, err := h.executor.RegisterMember(c.Request.Context(), middleware.Actor(c), strings.TrimSpace(req.DisplayName))
	respond(c, http.StatusCreated, result, err)
}

func (h *handler) GetMember(c *gin.Context) {
	result, err := h.executor.GetMember(c.Request.Context(), c.Param("wallet"))
	respond(c, http.StatusOK, result, err)
}

func (h *handler) RequestVerification(c *gin.Context) {
	var req dto.RequestVerificationRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.executor.RequestVerification(c.Request.Context(), middleware.Actor(c), req.Evidence)
	respond(c, http.StatusCreated, result, err)
}

func (h *handler) ApproveVerification(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	result, err := h.executor.ApproveVerification(c.Request.Context(), id, middleware.Actor(c))
	respond(c, http.StatusOK, result, err)
}

func (h *handler) RejectVerification(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.RejectVerificationRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.executor.RejectVerification(c.Request.Context(), id, middleware.Actor(c), req.Reason)
	respond(c, http.StatusOK, result, err)
}

func (h *handler) RequestAdditionalInfo(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	result, err := h.executor.RequestAdditionalInfo(c.Request.Context(), id, middleware.Actor(c))
	respond(c, http.StatusOK, result, err)
}

func (h *handler) AddGuardian(c *gin.Context) {
	var req dto.AddGuardianRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.executor.AddGuardian(c.Request.Context(), req, middleware.Actor(c))
	respond(c, http.StatusCreated, result, err)
}

func (h *handler) DeactivateGuardian(c *gin.Context) {
	result, err := h.executor.DeactivateGuardian(c.Request.Context(), c.Param("user_id"), middleware.Actor(c))
	respond(c, http.StatusOK, result, err)
}

func (h *handler) ListGuardians(c *gin.Context) {
	result, err := h.executor.ListGuardians(c.Request.Context())
	respond(c, http.StatusOK, result, err)
}

func (h *handler) CreateAsset(c *gin.Context) {
	var req dto.CreateAssetRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.executor.CreateAsset(c.Request.Context(), req)
	respond(c, http.StatusCreated, result, err)
}

func (h *handler) ListAssets(c *gin.Context) {
	result, err := h.executor.ListAssets(c.Request.Context())
	respond(c, http.StatusOK, result, err)
}

func (h *handler) GetBalances(c *gin.Context) {
	result, err := h.executor.GetBalances(c.Request.Context())
	respond(c, http.StatusOK, result, err)
}

func (h *handler) ProposeTransaction(c *gin.Context) {
	var req dto.ProposeTransactionRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.executor.ProposeTransaction(c.Request.Context(), middleware.Actor(c), req)
	respond(c, http.StatusCreated, result, err)
}

func (h *handler) GetTransaction(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	result, err := h.executor.GetTransaction(c.Request.Context(), id)
	respond(c, http.StatusOK, result, err)
}

func (h *handler) ListTransactions(c *gin.Context) {
	params, err := ParseListTransactionsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}
	result, err := h.executor.ListTransactions(c.Request.Context(), params.Statuses, params.Limit, params.Offset)
	respond(c, http.StatusOK, result, err)
}

func (h *handler) PendingTransactions(c *gin.Context) {
	params, err := ParsePaginationQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}
	result, err := h.executor.PendingTransactions(c.Request.Context(), middleware.Actor(c), params.Limit)
	respond(c, http.StatusOK, result, err)
}

func (h *handler) ListApprovals(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	result, err := h.executor.ListApprovals(c.Request.Context(), id)
	respond(c, http.StatusOK, result, err)
}

func (h *handler) SubmitApproval(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.SubmitApprovalRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.executor.SubmitApproval(c.Request.Context(), id, middleware.Actor(c), req)
	respond(c, http.StatusCreated, result, err)
}

func (h *handler) ExecuteTransaction(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	result, err := h.executor.ExecuteTransaction(c.Request.Context(), id, middleware.Actor(c))
	respond(c, http.StatusOK, result, err)
}

func (h *handler) CancelTransaction(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	result, err := h.executor.CancelTransaction(c.Request.Context(), id, middleware.Actor(c))
	respond(c, http.StatusOK, result, err)
}

func (h *handler) LatestMetric(c *gin.Context) {
	result, err := h.executor.LatestMetric(c.Request.Context())
	respond(c, http.StatusOK, result, err)
}

func (h *handler) MetricHistory(c *gin.Context) {
	since, limit, err := ParseMetricHistoryQuery(c, h.clock.Now())
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}
	result, err := h.executor.MetricHistory(c.Request.Context(), since, limit)
	respond(c, http.StatusOK, result, err)
}

func (h *handler) GetCircuitBreaker(c *gin.Context) {
	result, err := h.executor.GetCircuitBreaker(c.Request.Context())
	respond(c, http.StatusOK, result, err)
}

func (h *handler) CircuitBreakerHistory(c *gin.Context) {
	params, err := ParsePaginationQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}
	result, err := h.executor.CircuitBreakerHistory(c.Request.Context(), params.Limit, params.Offset)
	respond(c, http.StatusOK, result, err)
}

func (h *handler) ActivateCircuitBreaker(c *gin.Context) {
	var req dto.ActivateCircuitBreakerRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.executor.ActivateCircuitBreaker(c.Request.Context(), middleware.Actor(c), req.Reason)
	respond(c, http.StatusOK, result, err)
}

func (h *handler) DeactivateCircuitBreaker(c *gin.Context) {
	result, err := h.executor.DeactivateCircuitBreaker(c.Request.Context(), middleware.Actor(c))
	respond(c, http.StatusOK, result, err)
}

func (h *handler) CreateStrategy(c *gin.Context) {
	var req dto.CreateStrategyRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.executor.CreateStrategy(c.Request.Context(), req)
	respond(c, http.StatusCreated, result, err)
}

func (h *handler) ListStrategies(c *gin.Context) {
	result, err := h.executor.ListStrategies(c.Request.Context())
	respond(c, http.StatusOK, result, err)
}

func (h *handler) ActivateStrategy(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	result, err := h.executor.ActivateStrategy(c.Request.Context(), id, middleware.Actor(c))
	respond(c, http.StatusOK, result, err)
}

func (h *handler) GetJournal(c *gin.Context) {
	params, err := ParseGetJournalQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}
	result, err := h.executor.GetJournal(c.Request.Context(), params.SubjectTypes, params.SubjectIDs, params.Anchor, params.Limit)
	respond(c, http.StatusOK, result, err)
}
