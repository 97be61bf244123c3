package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/ff-dao/internal/domain"
	"github.com/feral-file/ff-dao/internal/store/schema"
)

// CreateMember inserts a member
func (s *pgStore) CreateMember(ctx context.Context, member *schema.Member) error {
	if err := s.db.WithContext(ctx).Create(member).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.NewGuardError(domain.ErrAlreadyExists, "member already registered: %s", member.WalletAddress)
		}
		return fmt.Errorf("failed to create member: %w", err)
	}
	return nil
}

// GetMemberByWallet retrieves a member by wallet address
func (s *pgStore) GetMemberByWallet(ctx context.Context, wallet string) (*schema.Member, error) {
	member, err := firstOrNil[schema.Member](ctx, s.db, func(db *gorm.DB) *gorm.DB {
		return db.Where("wallet_address = ?", wallet)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	return member, nil
}

// GetMemberForUpdate retrieves a member by ID and locks its row
func (s *pgStore) GetMemberForUpdate(ctx context.Context, id uint64) (*schema.Member, error) {
	var member schema.Member
	if err := forUpdate(s.db.WithContext(ctx)).Where("id = ?", id).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to lock member: %w", err)
	}
	return &member, nil
}

// UpdateMember persists a member
func (s *pgStore) UpdateMember(ctx context.Context, member *schema.Member) error {
	if err := s.db.WithContext(ctx).Save(member).Error; err != nil {
		return fmt.Errorf("failed to update member: %w", err)
	}
	return nil
}

// CreateVerificationRequest inserts a verification request
func (s *pgStore) CreateVerificationRequest(ctx context.Context, request *schema.VerificationRequest) error {
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(request).Error; err != nil {
		return fmt.Errorf("failed to create verification request: %w", err)
	}
	return nil
}

// GetOpenVerificationRequest retrieves the open request of a member
func (s *pgStore) GetOpenVerificationRequest(ctx context.Context, memberID uint64) (*schema.VerificationRequest, error) {
	var request schema.VerificationRequest
	err := s.db.WithContext(ctx).
		Where("member_id = ? AND status IN ?", memberID, []domain.VerificationRequestStatus{
			domain.VerificationRequestPendingReview,
			domain.VerificationRequestAdditionalInfo,
		}).
		Order("id DESC").
		First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get open verification request: %w", err)
	}
	return &request, nil
}

// GetVerificationRequestForUpdate retrieves a verification request and locks its row
func (s *pgStore) GetVerificationRequestForUpdate(ctx context.Context, id uint64) (*schema.VerificationRequest, error) {
	var request schema.VerificationRequest
	if err := forUpdate(s.db.WithContext(ctx)).Where("id = ?", id).First(&request).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to lock verification request: %w", err)
	}
	return &request, nil
}

// UpdateVerificationRequest persists a verification request
func (s *pgStore) UpdateVerificationRequest(ctx context.Context, request *schema.VerificationRequest) error {
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Save(request).Error; err != nil {
		return fmt.Errorf("failed to update verification request: %w", err)
	}
	return nil
}

// CreateGuardian inserts a guardian
func (s *pgStore) CreateGuardian(ctx context.Context, guardian *schema.Guardian) error {
	if err := s.db.WithContext(ctx).Create(guardian).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.NewGuardError(domain.ErrAlreadyExists, "guardian already exists for user %s", guardian.UserID)
		}
		return fmt.Errorf("failed to create guardian: %w", err)
	}
	return nil
}

// GetGuardianByUser retrieves the guardianship of a user
func (s *pgStore) GetGuardianByUser(ctx context.Context, userID string) (*schema.Guardian, error) {
	guardian, err := firstOrNil[schema.Guardian](ctx, s.db, func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get guardian: %w", err)
	}
	return guardian, nil
}

// UpdateGuardian persists a guardian
func (s *pgStore) UpdateGuardian(ctx context.Context, guardian *schema.Guardian) error {
	if err := s.db.WithContext(ctx).Save(guardian).Error; err != nil {
		return fmt.Errorf("failed to update guardian: %w", err)
	}
	return nil
}

// ListGuardians retrieves every guardian
func (s *pgStore) ListGuardians(ctx context.Context) ([]*schema.Guardian, error) {
	var guardians []*schema.Guardian
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&guardians).Error; err != nil {
		return nil, fmt.Errorf("failed to list guardians: %w", err)
	}
	return guardians, nil
}
