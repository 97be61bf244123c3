package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"

	"github.com/feral-file/ff-dao/internal/domain"
	"github.com/feral-file/ff-dao/internal/logger"
	"github.com/feral-file/ff-dao/internal/store/schema"
)

const (
	// DEFAULT_LIST_LIMIT is applied when a list filter carries no limit
	DEFAULT_LIST_LIMIT = 50
	// MAX_LIST_LIMIT caps list queries
	MAX_LIST_LIMIT = 500

	// maxTxRetries bounds retries of serialization failures and deadlocks
	maxTxRetries = 5

	pgCodeSerializationFailure = "40001"
	pgCodeDeadlockDetected     = "40P01"
	pgCodeUniqueViolation      = "23505"
)

type pgStore struct {
	db   *gorm.DB
	inTx bool
}

func hasDBResolver(db *gorm.DB) bool {
	return db != nil && db.Callback().Query().Get("gorm:db_resolver") != nil
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// If any of the pool settings are 0 or empty, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// RegisterReadReplica routes read-only queries to the replica DSN while writes,
// locking reads and transactions stay on the primary
func RegisterReadReplica(db *gorm.DB, replica gorm.Dialector) error {
	if err := db.Use(dbresolver.Register(dbresolver.Config{
		Replicas: []gorm.Dialector{replica},
		Policy:   dbresolver.RandomPolicy{},
	})); err != nil {
		return fmt.Errorf("failed to register read replica: %w", err)
	}
	return nil
}

// WithTransaction runs fn inside a database transaction
func (s *pgStore) WithTransaction(ctx context.Context, fn func(tx Store) error) error {
	return s.transaction(ctx, func(tx *pgStore) error {
		return fn(tx)
	})
}

func (s *pgStore) transaction(ctx context.Context, fn func(tx *pgStore) error) error {
	if s.inTx {
		return fn(s)
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 20 * time.Millisecond
	b.MaxInterval = 500 * time.Millisecond
	b.MaxElapsedTime = 5 * time.Second

	operation := func() error {
		err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return fn(&pgStore{db: tx, inTx: true})
		})
		if err != nil && !isRetryableTxError(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	notify := func(err error, d time.Duration) {
		logger.WarnCtx(ctx, "Retrying transaction after conflict", zap.Error(err), zap.Duration("backoff", d))
	}

	return backoff.RetryNotify(operation, backoff.WithContext(backoff.WithMaxRetries(b, maxTxRetries), ctx), notify)
}

// isRetryableTxError reports whether the transaction failed on a serialization conflict or deadlock
func isRetryableTxError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgCodeSerializationFailure || pgErr.Code == pgCodeDeadlockDetected
}

// isUniqueViolation reports whether err is a unique constraint violation,
// whether or not the dialector translated it
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgCodeUniqueViolation
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DEFAULT_LIST_LIMIT
	}
	return min(limit, MAX_LIST_LIMIT)
}

// firstOrNil runs a First query and maps a missing record to a nil result.
// With a read replica registered, a miss is retried on the primary since the replica can lag behind.
func firstOrNil[T any](ctx context.Context, db *gorm.DB, query func(db *gorm.DB) *gorm.DB) (*T, error) {
	var out T
	err := query(db.WithContext(ctx)).First(&out).Error
	if err == nil {
		return &out, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if !hasDBResolver(db) {
		return nil, nil
	}

	err = query(db.WithContext(ctx).Clauses(dbresolver.Write)).First(&out).Error
	if err == nil {
		return &out, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return nil, err
}

func forUpdate(db *gorm.DB) *gorm.DB {
	return db.Clauses(clause.Locking{Strength: "UPDATE"})
}

// =============================================================================
// Proposals
// =============================================================================

// CreateProposal inserts a new proposal
func (s *pgStore) CreateProposal(ctx context.Context, proposal *schema.Proposal) error {
	if err := s.db.WithContext(ctx).Create(proposal).Error; err != nil {
		return fmt.Errorf("failed to create proposal: %w", err)
	}
	return nil
}

// GetProposal retrieves a proposal by ID
func (s *pgStore) GetProposal(ctx context.Context, id uint64) (*schema.Proposal, error) {
	proposal, err := firstOrNil[schema.Proposal](ctx, s.db, func(db *gorm.DB) *gorm.DB {
		return db.Where("id = ?", id)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get proposal: %w", err)
	}
	return proposal, nil
}

// GetProposalForUpdate retrieves a proposal by ID and locks its row
func (s *pgStore) GetProposalForUpdate(ctx context.Context, id uint64) (*schema.Proposal, error) {
	var proposal schema.Proposal
	err := forUpdate(s.db.WithContext(ctx)).Where("id = ?", id).First(&proposal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to lock proposal: %w", err)
	}
	return &proposal, nil
}

// UpdateProposal persists every column of the proposal
func (s *pgStore) UpdateProposal(ctx context.Context, proposal *schema.Proposal) error {
	if err := s.db.WithContext(ctx).Save(proposal).Error; err != nil {
		return fmt.Errorf("failed to update proposal: %w", err)
	}
	return nil
}

// ListProposals retrieves proposals matching the filter, newest first
func (s *pgStore) ListProposals(ctx context.Context, filter ProposalQueryFilter) ([]*schema.Proposal, uint64, error) {
	query := s.db.WithContext(ctx).Model(&schema.Proposal{})
	if len(filter.Statuses) > 0 {
		query = query.Where("status IN ?", filter.Statuses)
	}
	if filter.Proposer != nil {
		query = query.Where("proposer = ?", *filter.Proposer)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count proposals: %w", err)
	}

	var proposals []*schema.Proposal
	err := query.
		Order("id DESC").
		Limit(normalizeLimit(filter.Limit)).
		Offset(int(filter.Offset)). //nolint:gosec,G115
		Find(&proposals).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list proposals: %w", err)
	}

	return proposals, uint64(total), nil //nolint:gosec,G115
}

// ListDueProposals retrieves proposals whose discussion period elapsed, whose voting window closed,
// or whose timelock expired at filter.Now
func (s *pgStore) ListDueProposals(ctx context.Context, filter DueProposalsFilter) ([]*schema.Proposal, error) {
	var proposals []*schema.Proposal
	err := s.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where(`(status = ? AND discussion_start_time <= ?)
			OR (status = ? AND voting_end_time <= ?)
			OR (status IN ? AND execution_time <= ?)`,
			domain.ProposalStatusDiscussion, filter.Now.Add(-filter.DiscussionPeriod),
			domain.ProposalStatusVoting, filter.Now,
			[]domain.ProposalStatus{domain.ProposalStatusApproved, domain.ProposalStatusQueued}, filter.Now,
		).
		Order("id ASC").
		Limit(normalizeLimit(filter.Limit)).
		Find(&proposals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list due proposals: %w", err)
	}
	return proposals, nil
}

// CreateVote inserts a vote
func (s *pgStore) CreateVote(ctx context.Context, vote *schema.Vote) error {
	err := s.db.WithContext(ctx).Omit(clause.Associations).Create(vote).Error
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewGuardError(domain.ErrAlreadyVoted, "voter %s already voted on proposal %d", vote.Voter, vote.ProposalID)
		}
		return fmt.Errorf("failed to create vote: %w", err)
	}
	return nil
}

// GetVote retrieves the vote of a voter on a proposal
func (s *pgStore) GetVote(ctx context.Context, proposalID uint64, voter string) (*schema.Vote, error) {
	var vote schema.Vote
	err := s.db.WithContext(ctx).Where("proposal_id = ? AND voter = ?", proposalID, voter).First(&vote).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get vote: %w", err)
	}
	return &vote, nil
}

// ListVotes retrieves every vote cast on a proposal
func (s *pgStore) ListVotes(ctx context.Context, proposalID uint64) ([]*schema.Vote, error) {
	var votes []*schema.Vote
	if err := s.db.WithContext(ctx).Where("proposal_id = ?", proposalID).Order("id ASC").Find(&votes).Error; err != nil {
		return nil, fmt.Errorf("failed to list votes: %w", err)
	}
	return votes, nil
}

// CreateComment inserts a discussion comment
func (s *pgStore) CreateComment(ctx context.Context, comment *schema.ProposalComment) error {
	if err := s.db.WithContext(ctx).Create(comment).Error; err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

// ListComments retrieves comments of a proposal, oldest first
func (s *pgStore) ListComments(ctx context.Context, proposalID uint64, limit int, offset uint64) ([]*schema.ProposalComment, uint64, error) {
	query := s.db.WithContext(ctx).Model(&schema.ProposalComment{}).Where("proposal_id = ?", proposalID)

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count comments: %w", err)
	}

	var comments []*schema.ProposalComment
	err := query.
		Order("created_at ASC, id ASC").
		Limit(normalizeLimit(limit)).
		Offset(int(offset)). //nolint:gosec,G115
		Find(&comments).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, uint64(total), nil //nolint:gosec,G115
}

// =============================================================================
// Governance tokens
// =============================================================================

// GetToken retrieves the token record of a holder
func (s *pgStore) GetToken(ctx context.Context, holder string) (*schema.GovernanceToken, error) {
	token, err := firstOrNil[schema.GovernanceToken](ctx, s.db, func(db *gorm.DB) *gorm.DB {
		return db.Where("holder = ?", holder)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get token: %w", err)
	}
	return token, nil
}

// GetTokenForUpdate retrieves the token record of a holder and locks its row
func (s *pgStore) GetTokenForUpdate(ctx context.Context, holder string) (*schema.GovernanceToken, error) {
	var token schema.GovernanceToken
	err := forUpdate(s.db.WithContext(ctx)).Where("holder = ?", holder).First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to lock token: %w", err)
	}
	return &token, nil
}

// CreateToken inserts a token record
func (s *pgStore) CreateToken(ctx context.Context, token *schema.GovernanceToken) error {
	if err := s.db.WithContext(ctx).Create(token).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.NewGuardError(domain.ErrAlreadyExists, "token record already exists for %s", token.Holder)
		}
		return fmt.Errorf("failed to create token: %w", err)
	}
	return nil
}

// UpdateToken persists a token record
func (s *pgStore) UpdateToken(ctx context.Context, token *schema.GovernanceToken) error {
	if err := s.db.WithContext(ctx).Save(token).Error; err != nil {
		return fmt.Errorf("failed to update token: %w", err)
	}
	return nil
}

// GetTotalSupply returns the sum of all token balances
func (s *pgStore) GetTotalSupply(ctx context.Context) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&schema.GovernanceToken{}).
		Select("COALESCE(SUM(balance), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to get total supply: %w", err)
	}
	return total, nil
}

// ReleaseExpiredLocks unlocks up to limit tokens whose lock expired.
// Rows locked by in-flight votes are skipped and picked up by the next run.
func (s *pgStore) ReleaseExpiredLocks(ctx context.Context, now time.Time, limit int) ([]string, error) {
	var holders []string
	err := s.transaction(ctx, func(tx *pgStore) error {
		holders = nil

		var tokens []schema.GovernanceToken
		err := tx.db.WithContext(ctx).
			Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
			Where("is_locked AND (locked_until IS NULL OR locked_until <= ?)", now).
			Order("id ASC").
			Limit(normalizeLimit(limit)).
			Find(&tokens).Error
		if err != nil {
			return fmt.Errorf("failed to select expired locks: %w", err)
		}
		if len(tokens) == 0 {
			return nil
		}

		ids := make([]uint64, 0, len(tokens))
		for _, t := range tokens {
			ids = append(ids, t.ID)
			holders = append(holders, t.Holder)
		}

		err = tx.db.WithContext(ctx).
			Model(&schema.GovernanceToken{}).
			Where("id IN ?", ids).
			Updates(map[string]any{
				"is_locked":    false,
				"locked_until": nil,
				"updated_at":   now,
			}).Error
		if err != nil {
			return fmt.Errorf("failed to release locks: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return holders, nil
}
