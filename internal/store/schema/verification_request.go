package schema

import (
	"time"

	"github.com/feral-file/ff-dao/internal/domain"
)

// VerificationRequest represents the verification_requests table - identity review submissions
type VerificationRequest struct {
	ID       uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	MemberID uint64 `gorm:"column:member_id;not null;index"`
	// Status is the review state of the request
	Status domain.VerificationRequestStatus `gorm:"column:status;not null;type:text"`
	// Evidence is the submitter-provided proof (document reference, attestation link)
	Evidence        string     `gorm:"column:evidence;not null;default:'';type:text"`
	RejectionReason *string    `gorm:"column:rejection_reason;type:text"`
	ReviewedBy      *string    `gorm:"column:reviewed_by;type:text"`
	CreatedAt       time.Time  `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	ReviewedAt      *time.Time `gorm:"column:reviewed_at;type:timestamptz"`

	// Associations
	Member Member `gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE"`
}

func (VerificationRequest) TableName() string {
	return "verification_requests"
}
