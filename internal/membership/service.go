package membership

import (
	"context"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/ff-dao/internal/adapter"
	"github.com/feral-file/ff-dao/internal/domain"
	"github.com/feral-file/ff-dao/internal/journal"
	"github.com/feral-file/ff-dao/internal/logger"
	"github.com/feral-file/ff-dao/internal/messaging"
	"github.com/feral-file/ff-dao/internal/store"
	"github.com/feral-file/ff-dao/internal/store/schema"
)

const maxDisplayNameLength = 100

// Service manages DAO members and their identity verification
type Service struct {
	store     store.Store
	clock     adapter.Clock
	publisher messaging.Publisher
	journal   *journal.Recorder
}

// NewService creates a membership service
func NewService(st store.Store, clock adapter.Clock, publisher messaging.Publisher, recorder *journal.Recorder) *Service {
	if publisher == nil {
		publisher = messaging.NewNopPublisher()
	}
	return &Service{
		store:     st,
		clock:     clock,
		publisher: publisher,
		journal:   recorder,
	}
}

// Register creates an unverified member for wallet
func (s *Service) Register(ctx context.Context, wallet, displayName string) (*schema.Member, error) {
	wallet, err := domain.NormalizeAddress(wallet)
	if err != nil {
		return nil, err
	}
	displayName = strings.TrimSpace(displayName)
	if len(displayName) > maxDisplayNameLength {
		return nil, domain.NewGuardError(domain.ErrInvalidArgument, "display name exceeds %d characters", maxDisplayNameLength)
	}

	now := s.clock.Now()
	member := &schema.Member{
		WalletAddress:      wallet,
		DisplayName:        displayName,
		VerificationStatus: domain.VerificationStatusUnverified,
		JoinDate:           now,
	}
	err = s.store.WithTransaction(ctx, func(tx store.Store) error {
		member.ID = 0
		if err := tx.CreateMember(ctx, member); err != nil {
			return err
		}
		return s.journal.Record(ctx, tx, journal.Entry{
			SubjectType: schema.SubjectTypeMember,
			SubjectID:   wallet,
			Action:      "register",
			Actor:       wallet,
			At:          now,
		})
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Member registered", zap.String("wallet", wallet))
	return member, nil
}

// Get returns the member registered with wallet
func (s *Service) Get(ctx context.Context, wallet string) (*schema.Member, error) {
	wallet, err := domain.NormalizeAddress(wallet)
	if err != nil {
		return nil, err
	}
	member, err := s.store.GetMemberByWallet(ctx, wallet)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, memberNotFound(wallet)
	}
	return member, nil
}

// RequestVerification submits evidence for review and moves the member to pending.
// Evidence sent while a reviewer asked for more information reopens that request.
func (s *Service) RequestVerification(ctx context.Context, wallet, evidence string) (*schema.VerificationRequest, error) {
	wallet, err := domain.NormalizeAddress(wallet)
	if err != nil {
		return nil, err
	}
	evidence = strings.TrimSpace(evidence)
	if evidence == "" {
		return nil, domain.NewGuardError(domain.ErrInvalidArgument, "verification evidence is required")
	}

	existing, err := s.store.GetMemberByWallet(ctx, wallet)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, memberNotFound(wallet)
	}

	now := s.clock.Now()
	var request *schema.VerificationRequest
	err = s.store.WithTransaction(ctx, func(tx store.Store) error {
		request = nil

		member, err := tx.GetMemberForUpdate(ctx, existing.ID)
		if err != nil {
			return err
		}
		if member == nil {
			return memberNotFound(wallet)
		}
		if member.VerificationStatus == domain.VerificationStatusVerified {
			return domain.NewGuardError(domain.ErrInvalidTransition, "member %s is already verified", wallet)
		}

		open, err := tx.GetOpenVerificationRequest(ctx, member.ID)
		if err != nil {
			return err
		}
		switch {
		case open == nil:
			request = &schema.VerificationRequest{
				MemberID:  member.ID,
				Status:    domain.VerificationRequestPendingReview,
				Evidence:  evidence,
				CreatedAt: now,
			}
			if err := tx.CreateVerificationRequest(ctx, request); err != nil {
				return err
			}
		case open.Status == domain.VerificationRequestAdditionalInfo:
			open.Status = domain.VerificationRequestPendingReview
			open.Evidence = evidence
			if err := tx.UpdateVerificationRequest(ctx, open); err != nil {
				return err
			}
			request = open
		default:
			return domain.NewGuardError(domain.ErrAlreadyExists, "verification request %d of %s is awaiting review", open.ID, wallet)
		}

		member.VerificationStatus = domain.VerificationStatusPending
		if err := tx.UpdateMember(ctx, member); err != nil {
			return err
		}
		return s.journal.Record(ctx, tx, journal.Entry{
			SubjectType: schema.SubjectTypeMember,
			SubjectID:   wallet,
			Action:      "request_verification",
			Actor:       wallet,
			At:          now,
			Meta:        map[string]any{"request_id": request.ID},
		})
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Verification requested", zap.String("wallet", wallet), zap.Uint64("request_id", request.ID))
	messaging.PublishAll(ctx, s.publisher, verificationEvent(wallet, wallet, domain.VerificationStatusPending, request, now))
	return request, nil
}

// ApproveVerification verifies the member behind the request and grants the reputation bonus
func (s *Service) ApproveVerification(ctx context.Context, requestID uint64, reviewer string) (*schema.Member, error) {
	return s.review(ctx, requestID, reviewer, "approve_verification", func(request *schema.VerificationRequest, member *schema.Member) error {
		request.Status = domain.VerificationRequestApproved
		member.VerificationStatus = domain.VerificationStatusVerified
		member.ReputationScore += domain.VERIFICATION_REPUTATION_BONUS
		return nil
	})
}

// RejectVerification rejects the request with a reason and marks the member rejected
func (s *Service) RejectVerification(ctx context.Context, requestID uint64, reviewer, reason string) (*schema.Member, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, domain.NewGuardError(domain.ErrInvalidArgument, "rejection reason is required")
	}
	return s.review(ctx, requestID, reviewer, "reject_verification", func(request *schema.VerificationRequest, member *schema.Member) error {
		request.Status = domain.VerificationRequestRejected
		request.RejectionReason = &reason
		member.VerificationStatus = domain.VerificationStatusRejected
		return nil
	})
}

// RequestAdditionalInfo sends a pending request back to the member for more evidence
func (s *Service) RequestAdditionalInfo(ctx context.Context, requestID uint64, reviewer string) (*schema.Member, error) {
	return s.review(ctx, requestID, reviewer, "request_additional_info", func(request *schema.VerificationRequest, _ *schema.Member) error {
		if request.Status != domain.VerificationRequestPendingReview {
			return domain.NewGuardError(domain.ErrInvalidTransition, "verification request %d is in %s status", request.ID, request.Status)
		}
		request.Status = domain.VerificationRequestAdditionalInfo
		return nil
	})
}

type reviewFunc func(request *schema.VerificationRequest, member *schema.Member) error

// review locks the request then its member, applies fn and records the decision
func (s *Service) review(ctx context.Context, requestID uint64, reviewer, action string, fn reviewFunc) (*schema.Member, error) {
	reviewer = strings.TrimSpace(reviewer)
	if reviewer == "" {
		return nil, domain.NewGuardError(domain.ErrNotAuthorized, "reviewer identity is required")
	}

	now := s.clock.Now()
	var (
		member  *schema.Member
		request *schema.VerificationRequest
	)
	err := s.store.WithTransaction(ctx, func(tx store.Store) error {
		member, request = nil, nil

		r, err := tx.GetVerificationRequestForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		if r == nil {
			return domain.NewGuardError(domain.ErrNotFound, "verification request %d not found", requestID)
		}
		if !r.Status.IsOpen() {
			return domain.NewGuardError(domain.ErrInvalidTransition, "verification request %d is already %s", r.ID, r.Status)
		}

		m, err := tx.GetMemberForUpdate(ctx, r.MemberID)
		if err != nil {
			return err
		}
		if m == nil {
			return domain.NewGuardError(domain.ErrNotFound, "member %d not found", r.MemberID)
		}
		if strings.EqualFold(m.WalletAddress, reviewer) {
			return domain.NewGuardError(domain.ErrNotAuthorized, "members cannot review their own verification")
		}

		if err := fn(r, m); err != nil {
			return err
		}
		r.ReviewedBy = &reviewer
		r.ReviewedAt = &now
		if err := tx.UpdateVerificationRequest(ctx, r); err != nil {
			return err
		}
		if err := tx.UpdateMember(ctx, m); err != nil {
			return err
		}

		if err := s.journal.Record(ctx, tx, journal.Entry{
			SubjectType: schema.SubjectTypeMember,
			SubjectID:   m.WalletAddress,
			Action:      action,
			Actor:       reviewer,
			At:          now,
			Meta: map[string]any{
				"request_id":     r.ID,
				"request_status": r.Status,
			},
		}); err != nil {
			return err
		}

		member, request = m, r
		return nil
	})
	if err != nil {
		logger.DebugCtx(ctx, "Verification review refused",
			zap.Uint64("request_id", requestID),
			zap.String("action", action),
			zap.String("reason", domain.ReasonOf(err)))
		return nil, err
	}

	logger.InfoCtx(ctx, "Verification reviewed",
		zap.Uint64("request_id", requestID),
		zap.String("action", action),
		zap.String("status", string(member.VerificationStatus)))
	messaging.PublishAll(ctx, s.publisher, verificationEvent(member.WalletAddress, reviewer, member.VerificationStatus, request, now))
	return member, nil
}

func memberNotFound(wallet string) error {
	return domain.NewGuardError(domain.ErrNotFound, "member %s not found", wallet)
}

func verificationEvent(wallet, actor string, status domain.VerificationStatus, request *schema.VerificationRequest, at time.Time) *messaging.Event {
	return messaging.NewEvent(messaging.EventMemberVerification, wallet, actor, at, map[string]any{
		"status":         status,
		"request_id":     strconv.FormatUint(request.ID, 10),
		"request_status": request.Status,
	})
}
