package governance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/feral-file/ff-dao/internal/adapter"
	"github.com/feral-file/ff-dao/internal/journal"
	"github.com/feral-file/ff-dao/internal/mocks"
	"github.com/feral-file/ff-dao/internal/store"
)

const (
	proposerAddr = "0x1111111111111111111111111111111111111111"
	voterAddr    = "0x2222222222222222222222222222222222222222"
	otherAddr    = "0x3333333333333333333333333333333333333333"
)

var testNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

// testAddress returns a distinct checksummed-stable address for index i
func testAddress(i int) string {
	return fmt.Sprintf("0x%040d", i)
}

type fixture struct {
	ctrl      *gomock.Controller
	store     *mocks.MockStore
	publisher *mocks.MockPublisher
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
		clock:     &adapter.FixedClock{At: testNow},
		params:    DefaultParams(),
	}
}

func (f *fixture) recorder() *journal.Recorder {
	return journal.NewRecorder(adapter.NewJSON(), adapter.NewJCS())
}

func (f *fixture) stateMachine(opts ...Option) *StateMachine {
	return NewStateMachine(f.store, f.params, f.clock, adapter.NewJSON(), f.publisher, f.recorder(), opts...)
}

func (f *fixture) votingEngine() *VotingEngine {
	return NewVotingEngine(f.store, f.params, f.clock, f.publisher, f.recorder())
}

func (f *fixture) tokenLedger() *TokenLedger {
	return NewTokenLedger(f.store, f.clock, f.publisher, f.recorder())
}

func timePtr(t time.Time) *time.Time {
	return &t
}
