package membership

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-dao/internal/adapter"
	"github.com/feral-file/ff-dao/internal/domain"
	"github.com/feral-file/ff-dao/internal/journal"
	"github.com/feral-file/ff-dao/internal/mocks"
	"github.com/feral-file/ff-dao/internal/store"
	"github.com/feral-file/ff-dao/internal/store/schema"
)

const (
	memberWallet = "0x1111111111111111111111111111111111111111"
	reviewer     = "0x9999999999999999999999999999999999999999"
)

var testNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func setupService(t *testing.T) (*Service, *mocks.MockStore) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	st := mocks.NewMockStore(ctrl)
	st.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(tx store.Store) error) error {
			return fn(st)
		}).AnyTimes()
	st.EXPECT().AppendJournal(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	pub := mocks.NewMockPublisher(ctrl)
	pub.EXPECT().PublishEvent(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	recorder := journal.NewRecorder(adapter.NewJSON(), adapter.NewJCS())
	return NewService(st, &adapter.FixedClock{At: testNow}, pub, recorder), st
}

func member(status domain.VerificationStatus) *schema.Member {
	return &schema.Member{
		ID:                 7,
		WalletAddress:      memberWallet,
		VerificationStatus: status,
		JoinDate:           testNow.Add(-24 * time.Hour),
	}
}

func TestRegister(t *testing.T) {
	t.Run("normalizes wallet", func(t *testing.T) {
		svc, st := setupService(t)
		lower := "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"

		st.EXPECT().CreateMember(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, m *schema.Member) error {
				m.ID = 1
				return nil
			})

		m, err := svc.Register(context.Background(), lower, "  Alice ")
		require.NoError(t, err)
		assert.Equal(t, "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", m.WalletAddress)
		assert.Equal(t, "Alice", m.DisplayName)
		assert.Equal(t, domain.VerificationStatusUnverified, m.VerificationStatus)
		assert.Equal(t, testNow, m.JoinDate)
	})

	t.Run("invalid wallet", func(t *testing.T) {
		svc, _ := setupService(t)

		_, err := svc.Register(context.Background(), "not-a-wallet", "")
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})

	t.Run("already registered", func(t *testing.T) {
		svc, st := setupService(t)

		st.EXPECT().CreateMember(gomock.Any(), gomock.Any()).
			Return(domain.NewGuardError(domain.ErrAlreadyExists, "member already registered: %s", memberWallet))

		_, err := svc.Register(context.Background(), memberWallet, "")
		assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	})
}

func TestGetMember(t *testing.T) {
	svc, st := setupService(t)

	st.EXPECT().GetMemberByWallet(gomock.Any(), memberWallet).Return(nil, nil)
	_, err := svc.Get(context.Background(), memberWallet)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	st.EXPECT().GetMemberByWallet(gomock.Any(), memberWallet).Return(member(domain.VerificationStatusUnverified), nil)
	m, err := svc.Get(context.Background(), memberWallet)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), m.ID)
}

func TestRequestVerification(t *testing.T) {
	ctx := context.Background()

	t.Run("creates request and marks member pending", func(t *testing.T) {
		svc, st := setupService(t)
		m := member(domain.VerificationStatusUnverified)

		st.EXPECT().GetMemberByWallet(gomock.Any(), memberWallet).Return(m, nil)
		st.EXPECT().GetMemberForUpdate(gomock.Any(), uint64(7)).Return(m, nil)
		st.EXPECT().GetOpenVerificationRequest(gomock.Any(), uint64(7)).Return(nil, nil)
		st.EXPECT().CreateVerificationRequest(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *schema.VerificationRequest) error {
				r.ID = 3
				return nil
			})
		st.EXPECT().UpdateMember(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, updated *schema.Member) error {
				assert.Equal(t, domain.VerificationStatusPending, updated.VerificationStatus)
				return nil
			})

		r, err := svc.RequestVerification(ctx, memberWallet, "ipfs://evidence")
		require.NoError(t, err)
		assert.Equal(t, uint64(3), r.ID)
		assert.Equal(t, domain.VerificationRequestPendingReview, r.Status)
		assert.Equal(t, "ipfs://evidence", r.Evidence)
	})

	t.Run("reopens request awaiting information", func(t *testing.T) {
		svc, st := setupService(t)
		m := member(domain.VerificationStatusPending)
		open := &schema.VerificationRequest{ID: 3, MemberID: 7, Status: domain.VerificationRequestAdditionalInfo, Evidence: "old"}

		st.EXPECT().GetMemberByWallet(gomock.Any(), memberWallet).Return(m, nil)
		st.EXPECT().GetMemberForUpdate(gomock.Any(), uint64(7)).Return(m, nil)
		st.EXPECT().GetOpenVerificationRequest(gomock.Any(), uint64(7)).Return(open, nil)
		st.EXPECT().UpdateVerificationRequest(gomock.Any(), open).Return(nil)
		st.EXPECT().UpdateMember(gomock.Any(), m).Return(nil)

		r, err := svc.RequestVerification(ctx, memberWallet, "new evidence")
		require.NoError(t, err)
		assert.Equal(t, domain.VerificationRequestPendingReview, r.Status)
		assert.Equal(t, "new evidence", r.Evidence)
	})

	t.Run("request awaiting review", func(t *testing.T) {
		svc, st := setupService(t)
		m := member(domain.VerificationStatusPending)

		st.EXPECT().GetMemberByWallet(gomock.Any(), memberWallet).Return(m, nil)
		st.EXPECT().GetMemberForUpdate(gomock.Any(), uint64(7)).Return(m, nil)
		st.EXPECT().GetOpenVerificationRequest(gomock.Any(), uint64(7)).
			Return(&schema.VerificationRequest{ID: 3, MemberID: 7, Status: domain.VerificationRequestPendingReview}, nil)

		_, err := svc.RequestVerification(ctx, memberWallet, "again")
		assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	})

	t.Run("already verified", func(t *testing.T) {
		svc, st := setupService(t)
		m := member(domain.VerificationStatusVerified)

		st.EXPECT().GetMemberByWallet(gomock.Any(), memberWallet).Return(m, nil)
		st.EXPECT().GetMemberForUpdate(gomock.Any(), uint64(7)).Return(m, nil)

		_, err := svc.RequestVerification(ctx, memberWallet, "evidence")
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("unknown member", func(t *testing.T) {
		svc, st := setupService(t)

		st.EXPECT().GetMemberByWallet(gomock.Any(), memberWallet).Return(nil, nil)

		_, err := svc.RequestVerification(ctx, memberWallet, "evidence")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("missing evidence", func(t *testing.T) {
		svc, _ := setupService(t)

		_, err := svc.RequestVerification(ctx, memberWallet, "   ")
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})
}

func TestReviewVerification(t *testing.T) {
	ctx := context.Background()
	pending := func() *schema.VerificationRequest {
		return &schema.VerificationRequest{ID: 3, MemberID: 7, Status: domain.VerificationRequestPendingReview}
	}

	t.Run("approve grants reputation", func(t *testing.T) {
		svc, st := setupService(t)
		m := member(domain.VerificationStatusPending)
		m.ReputationScore = 5
		r := pending()

		st.EXPECT().GetVerificationRequestForUpdate(gomock.Any(), uint64(3)).Return(r, nil)
		st.EXPECT().GetMemberForUpdate(gomock.Any(), uint64(7)).Return(m, nil)
		st.EXPECT().UpdateVerificationRequest(gomock.Any(), r).Return(nil)
		st.EXPECT().UpdateMember(gomock.Any(), m).Return(nil)

		updated, err := svc.ApproveVerification(ctx, 3, reviewer)
		require.NoError(t, err)
		assert.Equal(t, domain.VerificationStatusVerified, updated.VerificationStatus)
		assert.Equal(t, 5+domain.VERIFICATION_REPUTATION_BONUS, updated.ReputationScore)
		assert.Equal(t, domain.VerificationRequestApproved, r.Status)
		require.NotNil(t, r.ReviewedBy)
		assert.Equal(t, reviewer, *r.ReviewedBy)
		assert.Equal(t, testNow, *r.ReviewedAt)
	})

	t.Run("reject records reason", func(t *testing.T) {
		svc, st := setupService(t)
		m := member(domain.VerificationStatusPending)
		r := pending()

		st.EXPECT().GetVerificationRequestForUpdate(gomock.Any(), uint64(3)).Return(r, nil)
		st.EXPECT().GetMemberForUpdate(gomock.Any(), uint64(7)).Return(m, nil)
		st.EXPECT().UpdateVerificationRequest(gomock.Any(), r).Return(nil)
		st.EXPECT().UpdateMember(gomock.Any(), m).Return(nil)

		updated, err := svc.RejectVerification(ctx, 3, reviewer, "document expired")
		require.NoError(t, err)
		assert.Equal(t, domain.VerificationStatusRejected, updated.VerificationStatus)
		assert.Equal(t, 0, updated.ReputationScore)
		require.NotNil(t, r.RejectionReason)
		assert.Equal(t, "document expired", *r.RejectionReason)
	})

	t.Run("reject requires reason", func(t *testing.T) {
		svc, _ := setupService(t)

		_, err := svc.RejectVerification(ctx, 3, reviewer, "")
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})

	t.Run("request additional info keeps member pending", func(t *testing.T) {
		svc, st := setupService(t)
		m := member(domain.VerificationStatusPending)
		r := pending()

		st.EXPECT().GetVerificationRequestForUpdate(gomock.Any(), uint64(3)).Return(r, nil)
		st.EXPECT().GetMemberForUpdate(gomock.Any(), uint64(7)).Return(m, nil)
		st.EXPECT().UpdateVerificationRequest(gomock.Any(), r).Return(nil)
		st.EXPECT().UpdateMember(gomock.Any(), m).Return(nil)

		updated, err := svc.RequestAdditionalInfo(ctx, 3, reviewer)
		require.NoError(t, err)
		assert.Equal(t, domain.VerificationStatusPending, updated.VerificationStatus)
		assert.Equal(t, domain.VerificationRequestAdditionalInfo, r.Status)
	})

	t.Run("additional info twice", func(t *testing.T) {
		svc, st := setupService(t)
		r := pending()
		r.Status = domain.VerificationRequestAdditionalInfo

		st.EXPECT().GetVerificationRequestForUpdate(gomock.Any(), uint64(3)).Return(r, nil)
		st.EXPECT().GetMemberForUpdate(gomock.Any(), uint64(7)).Return(member(domain.VerificationStatusPending), nil)

		_, err := svc.RequestAdditionalInfo(ctx, 3, reviewer)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("closed request", func(t *testing.T) {
		svc, st := setupService(t)
		r := pending()
		r.Status = domain.VerificationRequestApproved

		st.EXPECT().GetVerificationRequestForUpdate(gomock.Any(), uint64(3)).Return(r, nil)

		_, err := svc.ApproveVerification(ctx, 3, reviewer)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("self review", func(t *testing.T) {
		svc, st := setupService(t)

		st.EXPECT().GetVerificationRequestForUpdate(gomock.Any(), uint64(3)).Return(pending(), nil)
		st.EXPECT().GetMemberForUpdate(gomock.Any(), uint64(7)).Return(member(domain.VerificationStatusPending), nil)

		_, err := svc.ApproveVerification(ctx, 3, memberWallet)
		assert.ErrorIs(t, err, domain.ErrNotAuthorized)
	})

	t.Run("unknown request", func(t *testing.T) {
		svc, st := setupService(t)

		st.EXPECT().GetVerificationRequestForUpdate(gomock.Any(), uint64(3)).Return(nil, nil)

		_, err := svc.ApproveVerification(ctx, 3, reviewer)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("missing reviewer", func(t *testing.T) {
		svc, _ := setupService(t)

		_, err := svc.ApproveVerification(ctx, 3, "")
		assert.ErrorIs(t, err, domain.ErrNotAuthorized)
	})
}
