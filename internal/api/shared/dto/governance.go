package dto

import (
	"encoding/json"
	"time"

	"github.com/samber/lo"

	"github.com/feral-file/ff-dao/internal/domain"
	"github.com/feral-file/ff-dao/internal/store/schema"
)

// ProposalResponse represents a governance proposal
type ProposalResponse struct {
	ID                  uint64                `json:"id"`
	Title               string                `json:"title"`
	Description         string                `json:"description"`
	Proposer            string                `json:"proposer"`
	Status              domain.ProposalStatus `json:"status"`
	Metadata            json.RawMessage       `json:"metadata,omitempty"`
	DiscussionStartTime *time.Time            `json:"discussion_start_time,omitempty"`
	VotingStartTime     *time.Time            `json:"voting_start_time,omitempty"`
	VotingEndTime       *time.Time            `json:"voting_end_time,omitempty"`
	ExecutionTime       *time.Time            `json:"execution_time,omitempty"`
	TotalVotesFor       int64                 `json:"total_votes_for"`
	TotalVotesAgainst   int64                 `json:"total_votes_against"`
	TotalVotingPower    int64                 `json:"total_voting_power"`
	// NextDeadline is when the next time-gated transition becomes legal
	NextDeadline *time.Time `json:"next_deadline,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// ProposalListResponse represents a paginated list of proposals
type ProposalListResponse struct {
	Proposals []ProposalResponse `json:"items"`
	Offset    *uint64            `json:"offset,omitempty"` // Offset for the next page
	Total     uint64             `json:"total"`
}

// VoteResponse represents a quadratic vote
type VoteResponse struct {
	ID         uint64    `json:"id"`
	ProposalID uint64    `json:"proposal_id"`
	Voter      string    `json:"voter"`
	VoteCount  int64     `json:"vote_count"`
	VoteCost   int64     `json:"vote_cost"`
	IsFor      bool      `json:"is_for"`
	CreatedAt  time.Time `json:"created_at"`
}

// CommentResponse represents a discussion comment
type CommentResponse struct {
	ID         uint64    `json:"id"`
	ProposalID uint64    `json:"proposal_id"`
	Author     string    `json:"author"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

// CommentListResponse represents a paginated list of comments
type CommentListResponse struct {
	Comments []CommentResponse `json:"items"`
	Offset   *uint64           `json:"offset,omitempty"`
	Total    uint64            `json:"total"`
}

// TokenResponse represents the governance token record of a holder
type TokenResponse struct {
	Holder      string     `json:"holder"`
	Balance     int64      `json:"balance"`
	IsLocked    bool       `json:"is_locked"`
	LockedUntil *time.Time `json:"locked_until,omitempty"`
	DelegatedTo *string    `json:"delegated_to,omitempty"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// MemberResponse represents a DAO member
type MemberResponse struct {
	ID                 uint64                    `json:"id"`
	WalletAddress      string                    `json:"wallet_address"`
	DisplayName        string                    `json:"display_name"`
	VerificationStatus domain.VerificationStatus `json:"verification_status"`
	ReputationScore    int                       `json:"reputation_score"`
	JoinDate           time.Time                 `json:"join_date"`
}

// VerificationResponse represents an identity verification request
type VerificationResponse struct {
	ID              uint64                           `json:"id"`
	MemberID        uint64                           `json:"member_id"`
	Status          domain.VerificationRequestStatus `json:"status"`
	RejectionReason *string                          `json:"rejection_reason,omitempty"`
	ReviewedBy      *string                          `json:"reviewed_by,omitempty"`
	CreatedAt       time.Time                        `json:"created_at"`
	ReviewedAt      *time.Time                       `json:"reviewed_at,omitempty"`
}

// MapProposalToDTO maps a schema.Proposal to ProposalResponse
func MapProposalToDTO(p *schema.Proposal, nextDeadline *time.Time) *ProposalResponse {
	dto := &ProposalResponse{
		ID:                  p.ID,
		Title:               p.Title,
		Description:         p.Description,
		Proposer:            p.Proposer,
		Status:              p.Status,
		DiscussionStartTime: p.DiscussionStartTime,
		VotingStartTime:     p.VotingStartTime,
		VotingEndTime:       p.VotingEndTime,
		ExecutionTime:       p.ExecutionTime,
		TotalVotesFor:       p.TotalVotesFor,
		TotalVotesAgainst:   p.TotalVotesAgainst,
		TotalVotingPower:    p.TotalVotingPower,
		NextDeadline:        nextDeadline,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}

	if len(p.Metadata) > 0 {
		dto.Metadata = json.RawMessage(p.Metadata)
	}

	return dto
}

// MapVoteToDTO maps a schema.Vote to VoteResponse
func MapVoteToDTO(v *schema.Vote) *VoteResponse {
	return &VoteResponse{
		ID:         v.ID,
		ProposalID: v.ProposalID,
		Voter:      v.Voter,
		VoteCount:  v.VoteCount,
		VoteCost:   v.VoteCost,
		IsFor:      v.IsFor,
		CreatedAt:  v.CreatedAt,
	}
}

// MapVotesToDTO maps votes to their responses
func MapVotesToDTO(votes []*schema.Vote) []VoteResponse {
	return lo.Map(votes, func(v *schema.Vote, _ int) VoteResponse {
		return *MapVoteToDTO(v)
	})
}

// MapCommentToDTO maps a schema.ProposalComment to CommentResponse
func MapCommentToDTO(c *schema.ProposalComment) *CommentResponse {
	return &CommentResponse{
		ID:         c.ID,
		ProposalID: c.ProposalID,
		Author:     c.Author,
		Content:    c.Content,
		CreatedAt:  c.CreatedAt,
	}
}

// MapTokenToDTO maps a schema.GovernanceToken to TokenResponse
func MapTokenToDTO(t *schema.GovernanceToken) *TokenResponse {
	return &TokenResponse{
		Holder:      t.Holder,
		Balance:     t.Balance,
		IsLocked:    t.IsLocked,
		LockedUntil: t.LockedUntil,
		DelegatedTo: t.DelegatedTo,
		UpdatedAt:   t.UpdatedAt,
	}
}

// MapMemberToDTO maps a schema.Member to MemberResponse
func MapMemberToDTO(m *schema.Member) *MemberResponse {
	return &MemberResponse{
		ID:                 m.ID,
		WalletAddress:      m.WalletAddress,
		DisplayName:        m.DisplayName,
		VerificationStatus: m.VerificationStatus,
		ReputationScore:    m.ReputationScore,
		JoinDate:           m.JoinDate,
	}
}

// MapVerificationToDTO maps a schema.VerificationRequest to VerificationResponse.
// The evidence is never returned.
func MapVerificationToDTO(r *schema.VerificationRequest) *VerificationResponse {
	return &VerificationResponse{
		ID:              r.ID,
		MemberID:        r.MemberID,
		Status:          r.Status,
		RejectionReason: r.RejectionReason,
		ReviewedBy:      r.ReviewedBy,
		CreatedAt:       r.CreatedAt,
		ReviewedAt:      r.ReviewedAt,
	}
}
