package treasury

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-dao/internal/adapter"
	"github.com/feral-file/ff-dao/internal/domain"
	"github.com/feral-file/ff-dao/internal/journal"
	"github.com/feral-file/ff-dao/internal/mocks"
	"github.com/feral-file/ff-dao/internal/store"
	"github.com/feral-file/ff-dao/internal/store/schema"
)

const proposerAddr = "0x1111111111111111111111111111111111111111"

var testNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

// guardianAddr returns the wallet of the i-th test guardian
func guardianAddr(i int) string {
	return fmt.Sprintf("0x%040d", 9000+i)
}

func activeGuardian(i int) *schema.Guardian {
	return &schema.Guardian{
		ID:        uint64(i), //nolint:gosec,G115
		UserID:    guardianAddr(i),
		TermStart: testNow.Add(-24 * time.Hour),
		TermEnd:   testNow.Add(365 * 24 * time.Hour),
		IsActive:  true,
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type fixture struct {
	ctrl      *gomock.Controller
	store     *mocks.MockStore
	publisher *mocks.MockPublisher
	executor  *mocks.MockExecutor
	clock     *adapter.FixedClock
	params    Params
}

func newFixture(t *testing.T) *fixture {
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

	return &fixture{
		ctrl:      ctrl,
		store:     st,
		publisher: pub,
		executor:  mocks.NewMockExecutor(ctrl),
		clock:     &adapter.FixedClock{At: testNow},
		params:    DefaultParams(),
	}
}

func (f *fixture) recorder() *journal.Recorder {
	return journal.NewRecorder(adapter.NewJSON(), adapter.NewJCS())
}

func (f *fixture) registry() *GuardianRegistry {
	return NewGuardianRegistry(f.store, f.params, f.clock, f.recorder())
}

func (f *fixture) engine() *GuardianApprovalEngine {
	return NewGuardianApprovalEngine(f.store, f.params, f.clock, f.registry(), f.executor, f.publisher, f.recorder())
}

func (f *fixture) ledger() *Ledger {
	return NewLedger(f.store, f.params, f.clock, f.publisher, f.recorder())
}

func (f *fixture) breaker() *CircuitBreaker {
	return NewCircuitBreaker(f.store, f.clock, f.publisher, f.recorder())
}

func pendingTransaction(txType domain.TransactionType) *schema.TreasuryTransaction {
	return &schema.TreasuryTransaction{
		ID:              42,
		AssetID:         1,
		Amount:          dec("100"),
		USDValue:        dec("250.50"),
		TransactionType: txType,
		Status:          domain.TransactionStatusPending,
		Proposer:        proposerAddr,
		CreatedAt:       testNow.Add(-time.Hour),
	}
}
