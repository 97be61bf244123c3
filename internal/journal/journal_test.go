package journal

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-dao/internal/adapter"
	"github.com/feral-file/ff-dao/internal/mocks"
	"github.com/feral-file/ff-dao/internal/store/schema"
)

func TestRecordCanonicalizesMeta(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	at := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	var appended *schema.GovernanceJournal
	st.EXPECT().AppendJournal(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *schema.GovernanceJournal) error {
			appended = entry
			return nil
		})

	r := NewRecorder(adapter.NewJSON(), adapter.NewJCS())
	err := r.Record(context.Background(), st, Entry{
		SubjectType: schema.SubjectTypeProposal,
		SubjectID:   "7",
		Action:      "start_voting",
		Actor:       "0x1111111111111111111111111111111111111111",
		At:          at,
		Meta:        map[string]any{"to": "voting", "from": "discussion"},
	})
	require.NoError(t, err)
	require.NotNil(t, appended)

	assert.Equal(t, schema.SubjectTypeProposal, appended.SubjectType)
	assert.Equal(t, "7", appended.SubjectID)
	assert.Equal(t, "start_voting", appended.Action)
	assert.Equal(t, at, appended.ChangedAt)
	assert.JSONEq(t, `{"from":"discussion","to":"voting"}`, string(appended.Meta))
	assert.Equal(t, `{"from":"discussion","to":"voting"}`, string(appended.Meta))
}

func TestRecordWithoutMeta(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	st.EXPECT().AppendJournal(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *schema.GovernanceJournal) error {
			assert.Nil(t, entry.Meta)
			return nil
		})

	r := NewRecorder(adapter.NewJSON(), adapter.NewJCS())
	require.NoError(t, r.Record(context.Background(), st, Entry{SubjectType: schema.SubjectTypeToken, SubjectID: "x", Action: "mint"}))
}

func TestNilRecorder(t *testing.T) {
	var r *Recorder
	assert.NoError(t, r.Record(context.Background(), nil, Entry{}))
}
