package messaging

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	event := NewEvent(EventVoteCast, "12", "0xabc", at, map[string]any{"vote_count": 5})

	id, err := ulid.Parse(event.ID)
	require.NoError(t, err)
	assert.Equal(t, ulid.Timestamp(at), id.Time())
	assert.Equal(t, EventVoteCast, event.Type)
	assert.Equal(t, "12", event.SubjectID)
	assert.Equal(t, "0xabc", event.Actor)
	assert.Equal(t, at, event.OccurredAt)
	assert.Equal(t, 5, event.Data["vote_count"])

	other := NewEvent(EventVoteCast, "12", "0xabc", at, nil)
	assert.NotEqual(t, event.ID, other.ID)
}

type recordingPublisher struct {
	published []*Event
	failOn    EventType
}

func (r *recordingPublisher) PublishEvent(_ context.Context, event *Event) error {
	if event.Type == r.failOn {
		return errors.New("broker unavailable")
	}
	r.published = append(r.published, event)
	return nil
}

func (r *recordingPublisher) Close() {}

func TestPublishAllContinuesAfterFailure(t *testing.T) {
	now := time.Now()
	pub := &recordingPublisher{failOn: EventProposalStatusChanged}

	PublishAll(context.Background(), pub,
		NewEvent(EventProposalStatusChanged, "1", "", now, nil),
		nil,
		NewEvent(EventVoteCast, "1", "0xabc", now, nil),
	)

	require.Len(t, pub.published, 1)
	assert.Equal(t, EventVoteCast, pub.published[0].Type)
}

func TestPublishAllNilPublisher(t *testing.T) {
	assert.NotPanics(t, func() {
		PublishAll(context.Background(), nil, NewEvent(EventVoteCast, "1", "", time.Now(), nil))
	})
	assert.NoError(t, NewNopPublisher().PublishEvent(context.Background(), nil))
}
