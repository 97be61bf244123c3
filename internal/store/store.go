package store

//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore

import (
	"context"
	"time"

	"github.com/feral-file/ff-dao/internal/domain"
	"github.com/feral-file/ff-dao/internal/store/schema"
)

// ProposalQueryFilter represents filters for listing proposals
type ProposalQueryFilter struct {
	Statuses []domain.ProposalStatus
	Proposer *string
	Limit    int
	Offset   uint64
}

// DueProposalsFilter selects proposals whose next time-gated transition is legal at Now
type DueProposalsFilter struct {
	Now              time.Time
	DiscussionPeriod time.Duration
	Limit            int
}

// TransactionQueryFilter represents filters for listing treasury transactions
type TransactionQueryFilter struct {
	Statuses []domain.TransactionStatus
	AssetID  *uint64
	Proposer *string
	Limit    int
	Offset   uint64
}

// JournalQueryFilter represents filters for the governance journal
type JournalQueryFilter struct {
	SubjectTypes []schema.SubjectType
	SubjectIDs   []string
	// Anchor returns entries with a cursor strictly greater than the anchor
	Anchor *int64
	Limit  int
}

// Store defines the interface for database operations
type Store interface {
	// WithTransaction runs fn inside a database transaction. Nested calls reuse the outer transaction.
	// Serialization failures and deadlocks are retried with exponential backoff.
	WithTransaction(ctx context.Context, fn func(tx Store) error) error

	// =============================================================================
	// Proposals
	// =============================================================================

	// CreateProposal inserts a new proposal
	CreateProposal(ctx context.Context, proposal *schema.Proposal) error
	// GetProposal retrieves a proposal by ID, nil when it does not exist
	GetProposal(ctx context.Context, id uint64) (*schema.Proposal, error)
	// GetProposalForUpdate retrieves a proposal by ID holding a row lock until the transaction ends
	GetProposalForUpdate(ctx context.Context, id uint64) (*schema.Proposal, error)
	// UpdateProposal persists every column of the proposal
	UpdateProposal(ctx context.Context, proposal *schema.Proposal) error
	// ListProposals retrieves proposals matching the filter and the total count
	ListProposals(ctx context.Context, filter ProposalQueryFilter) ([]*schema.Proposal, uint64, error)
	// ListDueProposals retrieves proposals whose next time-gated transition can run
	ListDueProposals(ctx context.Context, filter DueProposalsFilter) ([]*schema.Proposal, error)

	// CreateVote inserts a vote, domain.ErrAlreadyVoted when the voter already voted on the proposal
	CreateVote(ctx context.Context, vote *schema.Vote) error
	// GetVote retrieves the vote of a voter on a proposal, nil when absent
	GetVote(ctx context.Context, proposalID uint64, voter string) (*schema.Vote, error)
	// ListVotes retrieves every vote cast on a proposal
	ListVotes(ctx context.Context, proposalID uint64) ([]*schema.Vote, error)

	// CreateComment inserts a discussion comment
	CreateComment(ctx context.Context, comment *schema.ProposalComment) error
	// ListComments retrieves comments of a proposal, oldest first, and the total count
	ListComments(ctx context.Context, proposalID uint64, limit int, offset uint64) ([]*schema.ProposalComment, uint64, error)

	// =============================================================================
	// Governance tokens
	// =============================================================================

	// GetToken retrieves the token record of a holder, nil when absent
	GetToken(ctx context.Context, holder string) (*schema.GovernanceToken, error)
	// GetTokenForUpdate retrieves the token record of a holder holding a row lock
	GetTokenForUpdate(ctx context.Context, holder string) (*schema.GovernanceToken, error)
	// CreateToken inserts a token record, domain.ErrAlreadyExists when the holder already has one
	CreateToken(ctx context.Context, token *schema.GovernanceToken) error
	// UpdateToken persists balance, lock and delegation of a token record
	UpdateToken(ctx context.Context, token *schema.GovernanceToken) error
	// GetTotalSupply returns the sum of all token balances
	GetTotalSupply(ctx context.Context) (int64, error)
	// ReleaseExpiredLocks unlocks tokens whose lock expired at now and returns their holders
	ReleaseExpiredLocks(ctx context.Context, now time.Time, limit int) ([]string, error)

	// =============================================================================
	// Membership
	// =============================================================================

	// CreateMember inserts a member, domain.ErrAlreadyExists for a registered wallet
	CreateMember(ctx context.Context, member *schema.Member) error
	// GetMemberByWallet retrieves a member by wallet address, nil when absent
	GetMemberByWallet(ctx context.Context, wallet string) (*schema.Member, error)
	// GetMemberForUpdate retrieves a member by ID holding a row lock
	GetMemberForUpdate(ctx context.Context, id uint64) (*schema.Member, error)
	// UpdateMember persists a member
	UpdateMember(ctx context.Context, member *schema.Member) error
	// CreateVerificationRequest inserts a verification request
	CreateVerificationRequest(ctx context.Context, request *schema.VerificationRequest) error
	// GetOpenVerificationRequest retrieves the open request of a member, nil when none is open
	GetOpenVerificationRequest(ctx context.Context, memberID uint64) (*schema.VerificationRequest, error)
	// GetVerificationRequestForUpdate retrieves a verification request holding a row lock
	GetVerificationRequestForUpdate(ctx context.Context, id uint64) (*schema.VerificationRequest, error)
	// UpdateVerificationRequest persists a verification request
	UpdateVerificationRequest(ctx context.Context, request *schema.VerificationRequest) error

	// =============================================================================
	// Guardians
	// =============================================================================

	// CreateGuardian inserts a guardian, domain.ErrAlreadyExists when the user already has a guardianship
	CreateGuardian(ctx context.Context, guardian *schema.Guardian) error
	// GetGuardianByUser retrieves the guardianship of a user, nil when absent
	GetGuardianByUser(ctx context.Context, userID string) (*schema.Guardian, error)
	// UpdateGuardian persists a guardian
	UpdateGuardian(ctx context.Context, guardian *schema.Guardian) error
	// ListGuardians retrieves every guardian ordered by ID
	ListGuardians(ctx context.Context) ([]*schema.Guardian, error)

	// =============================================================================
	// Assets and balances
	// =============================================================================

	// CreateAsset inserts an asset, domain.ErrAlreadyExists for a known symbol
	CreateAsset(ctx context.Context, asset *schema.Asset) error
	// GetAsset retrieves an asset by ID, nil when absent
	GetAsset(ctx context.Context, id uint64) (*schema.Asset, error)
	// ListAssets retrieves every asset ordered by ID
	ListAssets(ctx context.Context) ([]*schema.Asset, error)
	// GetAssetBalanceForUpdate retrieves the balance row of an asset holding a row lock, creating an empty one first if needed
	GetAssetBalanceForUpdate(ctx context.Context, assetID uint64) (*schema.AssetBalance, error)
	// UpdateAssetBalance persists a balance row
	UpdateAssetBalance(ctx context.Context, balance *schema.AssetBalance) error
	// ListAssetBalances retrieves every balance row with its asset
	ListAssetBalances(ctx context.Context) ([]*schema.AssetBalance, error)

	// =============================================================================
	// Treasury transactions
	// =============================================================================

	// CreateTransaction inserts a treasury transaction
	CreateTransaction(ctx context.Context, transaction *schema.TreasuryTransaction) error
	// GetTransaction retrieves a transaction by ID, nil when absent
	GetTransaction(ctx context.Context, id uint64) (*schema.TreasuryTransaction, error)
	// GetTransactionForUpdate retrieves a transaction by ID holding a row lock
	GetTransactionForUpdate(ctx context.Context, id uint64) (*schema.TreasuryTransaction, error)
	// UpdateTransaction persists every column of a transaction
	UpdateTransaction(ctx context.Context, transaction *schema.TreasuryTransaction) error
	// ListTransactions retrieves transactions matching the filter and the total count
	ListTransactions(ctx context.Context, filter TransactionQueryFilter) ([]*schema.TreasuryTransaction, uint64, error)
	// ListPendingTransactionsForGuardian retrieves pending transactions the guardian has not decided on yet
	ListPendingTransactionsForGuardian(ctx context.Context, guardianID uint64, limit int) ([]*schema.TreasuryTransaction, error)

	// CreateApproval inserts a guardian decision, domain.ErrDuplicateApproval when the guardian already decided
	CreateApproval(ctx context.Context, approval *schema.TransactionApproval) error
	// GetApproval retrieves the decision of a guardian on a transaction, nil when absent
	GetApproval(ctx context.Context, transactionID, guardianID uint64) (*schema.TransactionApproval, error)
	// CountApprovals returns the number of approving and rejecting decisions on a transaction
	CountApprovals(ctx context.Context, transactionID uint64) (approved int, rejected int, err error)
	// ListApprovals retrieves every decision on a transaction
	ListApprovals(ctx context.Context, transactionID uint64) ([]*schema.TransactionApproval, error)

	// =============================================================================
	// Metrics, circuit breaker and allocation
	// =============================================================================

	// CreateMetric appends a treasury metric snapshot
	CreateMetric(ctx context.Context, metric *schema.TreasuryMetric) error
	// GetLatestMetric retrieves the most recent snapshot, nil when none exists
	GetLatestMetric(ctx context.Context) (*schema.TreasuryMetric, error)
	// ListMetrics retrieves snapshots taken at or after since, oldest first
	ListMetrics(ctx context.Context, since time.Time, limit int) ([]*schema.TreasuryMetric, error)

	// GetActiveCircuitBreaker retrieves the current breaker, nil when none is active
	GetActiveCircuitBreaker(ctx context.Context) (*schema.CircuitBreaker, error)
	// GetActiveCircuitBreakerForUpdate retrieves the current breaker holding a row lock
	GetActiveCircuitBreakerForUpdate(ctx context.Context) (*schema.CircuitBreaker, error)
	// CreateCircuitBreaker inserts a breaker record, domain.ErrAlreadyExists when another one is active
	CreateCircuitBreaker(ctx context.Context, breaker *schema.CircuitBreaker) error
	// UpdateCircuitBreaker persists a breaker record
	UpdateCircuitBreaker(ctx context.Context, breaker *schema.CircuitBreaker) error
	// ListCircuitBreakers retrieves breaker history, newest first, and the total count
	ListCircuitBreakers(ctx context.Context, limit int, offset uint64) ([]*schema.CircuitBreaker, uint64, error)

	// CreateAllocationStrategy inserts a strategy with its allocations
	CreateAllocationStrategy(ctx context.Context, strategy *schema.AllocationStrategy) error
	// GetAllocationStrategy retrieves a strategy with its allocations, nil when absent
	GetAllocationStrategy(ctx context.Context, id uint64) (*schema.AllocationStrategy, error)
	// GetActiveAllocationStrategy retrieves the strategy in force, nil when none is active
	GetActiveAllocationStrategy(ctx context.Context) (*schema.AllocationStrategy, error)
	// ListAllocationStrategies retrieves every strategy with its allocations
	ListAllocationStrategies(ctx context.Context) ([]*schema.AllocationStrategy, error)
	// ActivateAllocationStrategy makes the strategy the only active one
	ActivateAllocationStrategy(ctx context.Context, id uint64) error

	// =============================================================================
	// Journal
	// =============================================================================

	// AppendJournal appends an audit entry
	AppendJournal(ctx context.Context, entry *schema.GovernanceJournal) error
	// ListJournal retrieves audit entries ordered by cursor and the total count
	ListJournal(ctx context.Context, filter JournalQueryFilter) ([]*schema.GovernanceJournal, uint64, error)
}
