package jetstream

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-dao/internal/adapter"
	"github.com/feral-file/ff-dao/internal/messaging"
	"github.com/feral-file/ff-dao/internal/mocks"
)

type publisherMocks struct {
	ctrl   *gomock.Controller
	natsJS *mocks.MockNatsJetStream
	conn   *mocks.MockNatsConn
	js     *mocks.MockJetStream
}

func setupPublisherMocks(t *testing.T) *publisherMocks {
	ctrl := gomock.NewController(t)
	return &publisherMocks{
		ctrl:   ctrl,
		natsJS: mocks.NewMockNatsJetStream(ctrl),
		conn:   mocks.NewMockNatsConn(ctrl),
		js:     mocks.NewMockJetStream(ctrl),
	}
}

func testConfig() Config {
	return Config{
		URL:            "nats://localhost:4222",
		StreamName:     "DAO_EVENTS",
		SubjectPrefix:  "dao.events",
		MaxReconnects:  3,
		ReconnectWait:  time.Second,
		ConnectionName: "ff-dao-test",
		PublishTimeout: time.Second,
	}
}

func newTestPublisher(t *testing.T, m *publisherMocks) messaging.Publisher {
	m.natsJS.EXPECT().
		Connect("nats://localhost:4222", gomock.Any()).
		Return(m.conn, m.js, nil)
	m.js.EXPECT().
		EnsureStream(gomock.Any(), gomock.Any()).
		Return(nil)

	p, err := NewPublisher(context.Background(), testConfig(), m.natsJS, adapter.NewJSON(), adapter.NewJCS())
	require.NoError(t, err)
	return p
}

func TestNewPublisher(t *testing.T) {
	t.Run("ensures stream", func(t *testing.T) {
		m := setupPublisherMocks(t)
		defer m.ctrl.Finish()

		m.natsJS.EXPECT().
			Connect("nats://localhost:4222", gomock.Any()).
			Return(m.conn, m.js, nil)
		m.js.EXPECT().
			EnsureStream(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, cfg jetstream.StreamConfig) error {
				assert.Equal(t, "DAO_EVENTS", cfg.Name)
				assert.Equal(t, []string{"dao.events.>"}, cfg.Subjects)
				assert.Equal(t, 2*time.Minute, cfg.Duplicates)
				return nil
			})

		p, err := NewPublisher(context.Background(), testConfig(), m.natsJS, adapter.NewJSON(), adapter.NewJCS())
		require.NoError(t, err)
		assert.NotNil(t, p)
	})

	t.Run("connect failure", func(t *testing.T) {
		m := setupPublisherMocks(t)
		defer m.ctrl.Finish()

		m.natsJS.EXPECT().
			Connect(gomock.Any(), gomock.Any()).
			Return(nil, nil, errors.New("no servers available"))

		p, err := NewPublisher(context.Background(), testConfig(), m.natsJS, adapter.NewJSON(), adapter.NewJCS())
		assert.Error(t, err)
		assert.Nil(t, p)
	})

	t.Run("stream failure closes connection", func(t *testing.T) {
		m := setupPublisherMocks(t)
		defer m.ctrl.Finish()

		m.natsJS.EXPECT().
			Connect(gomock.Any(), gomock.Any()).
			Return(m.conn, m.js, nil)
		m.js.EXPECT().
			EnsureStream(gomock.Any(), gomock.Any()).
			Return(errors.New("insufficient resources"))
		m.conn.EXPECT().Close()

		p, err := NewPublisher(context.Background(), testConfig(), m.natsJS, adapter.NewJSON(), adapter.NewJCS())
		assert.ErrorContains(t, err, "DAO_EVENTS")
		assert.Nil(t, p)
	})
}

func TestPublishEvent(t *testing.T) {
	occurredAt := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	event := messaging.NewEvent(messaging.EventVoteCast, "42", "0x1111111111111111111111111111111111111111", occurredAt,
		map[string]any{"vote_count": 5, "is_for": true})

	t.Run("publishes canonical payload with dedup header", func(t *testing.T) {
		m := setupPublisherMocks(t)
		defer m.ctrl.Finish()
		p := newTestPublisher(t, m)

		m.js.EXPECT().
			PublishMsg(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg *nats.Msg, _ ...jetstream.PublishOpt) (*jetstream.PubAck, error) {
				assert.Equal(t, "dao.events.vote.cast", msg.Subject)
				assert.Equal(t, event.ID, msg.Header.Get(jetstream.MsgIDHeader))
				assert.Contains(t, string(msg.Data), `"data":{"is_for":true,"vote_count":5}`)
				assert.Contains(t, string(msg.Data), `"type":"vote.cast"`)
				return &jetstream.PubAck{Stream: "DAO_EVENTS", Sequence: 1}, nil
			})

		require.NoError(t, p.PublishEvent(context.Background(), event))
	})

	t.Run("retries transient failure", func(t *testing.T) {
		m := setupPublisherMocks(t)
		defer m.ctrl.Finish()
		p := newTestPublisher(t, m)

		gomock.InOrder(
			m.js.EXPECT().PublishMsg(gomock.Any(), gomock.Any()).Return(nil, nats.ErrTimeout),
			m.js.EXPECT().PublishMsg(gomock.Any(), gomock.Any()).Return(&jetstream.PubAck{Sequence: 2}, nil),
		)

		assert.NoError(t, p.PublishEvent(context.Background(), event))
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		m := setupPublisherMocks(t)
		defer m.ctrl.Finish()
		p := newTestPublisher(t, m)

		m.js.EXPECT().
			PublishMsg(gomock.Any(), gomock.Any()).
			Return(nil, nats.ErrNoResponders).
			Times(maxPublishAttempts)

		err := p.PublishEvent(context.Background(), event)
		assert.ErrorIs(t, err, nats.ErrNoResponders)
	})

	t.Run("cancelled context stops retries", func(t *testing.T) {
		m := setupPublisherMocks(t)
		defer m.ctrl.Finish()
		p := newTestPublisher(t, m)

		ctx, cancel := context.WithCancel(context.Background())
		m.js.EXPECT().
			PublishMsg(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *nats.Msg, _ ...jetstream.PublishOpt) (*jetstream.PubAck, error) {
				cancel()
				return nil, nats.ErrTimeout
			})

		assert.Error(t, p.PublishEvent(ctx, event))
	})
}

func TestPublisherClose(t *testing.T) {
	m := setupPublisherMocks(t)
	defer m.ctrl.Finish()
	p := newTestPublisher(t, m)

	m.conn.EXPECT().Close()
	p.Close()
}
