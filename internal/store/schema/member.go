package schema

import (
	"time"

	"github.com/feral-file/ff-dao/internal/domain"
)

// Member represents the members table - DAO participants identified by wallet
type Member struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// WalletAddress is the EIP-55 checksummed wallet of the member
	WalletAddress string `gorm:"column:wallet_address;not null;uniqueIndex;type:text"`
	// DisplayName is an optional human-readable name
	DisplayName string `gorm:"column:display_name;not null;default:'';type:text"`
	// VerificationStatus is the identity verification state
	VerificationStatus domain.VerificationStatus `gorm:"column:verification_status;not null;type:text;default:'unverified'"`
	// ReputationScore grows with verified participation
	ReputationScore int `gorm:"column:reputation_score;not null;default:0"`
	// JoinDate is the timestamp when the member registered
	JoinDate time.Time `gorm:"column:join_date;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Member model
func (Member) TableName() string {
	return "members"
}
