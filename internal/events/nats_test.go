package events_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/dynect/internal/events"
	"github.com/fivetwenty-io/dynect/pkg/dynect"
)

var errConnClosed = errors.New("connection closed")

type publishedMessage struct {
	subject string
	data    []byte
}

// MockConn for testing.
type MockConn struct {
	messages    []publishedMessage
	publishErr  error
	flushErr    error
	drained     bool
	hadDeadline bool
}

func (c *MockConn) Publish(subject string, data []byte) error {
	if c.publishErr != nil {
		return c.publishErr
	}

	c.messages = append(c.messages, publishedMessage{subject: subject, data: data})

	return nil
}

func (c *MockConn) FlushWithContext(ctx context.Context) error {
	_, c.hadDeadline = ctx.Deadline()

	return c.flushErr
}

func (c *MockConn) Drain() error {
	c.drained = true

	return nil
}

func TestNATSPublisher_Publish(t *testing.T) {
	t.Parallel()

	event := &dynect.ChangeEvent{
		Action:     dynect.ActionCreate,
		Resource:   dynect.ResourceARecord,
		Zone:       "example.com",
		FQDN:       "www.example.com",
		RecordType: dynect.RecordTypeA,
		Value:      "192.0.2.10",
		Time:       time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC),
	}

	t.Run("publishes json on resource subject", func(t *testing.T) {
		t.Parallel()

		conn := &MockConn{}
		publisher := events.NewNATSPublisher(conn, "")

		require.NoError(t, publisher.Publish(context.Background(), event))
		require.Len(t, conn.messages, 1)
		assert.Equal(t, "dynect.changes.arecord.create", conn.messages[0].subject)
		assert.True(t, conn.hadDeadline)

		var decoded dynect.ChangeEvent
		require.NoError(t, json.Unmarshal(conn.messages[0].data, &decoded))
		assert.Equal(t, *event, decoded)
	})

	t.Run("custom prefix", func(t *testing.T) {
		t.Parallel()

		publisher := events.NewNATSPublisher(&MockConn{}, "dns.prod.")
		assert.Equal(t, "dns.prod.zone.publish", publisher.Subject(&dynect.ChangeEvent{
			Action:   dynect.ActionPublish,
			Resource: dynect.ResourceZone,
		}))
	})

	t.Run("publish error", func(t *testing.T) {
		t.Parallel()

		publisher := events.NewNATSPublisher(&MockConn{publishErr: errConnClosed}, "")
		require.ErrorIs(t, publisher.Publish(context.Background(), event), errConnClosed)
	})

	t.Run("flush error", func(t *testing.T) {
		t.Parallel()

		publisher := events.NewNATSPublisher(&MockConn{flushErr: context.DeadlineExceeded}, "")
		require.ErrorIs(t, publisher.Publish(context.Background(), event), context.DeadlineExceeded)
	})

	t.Run("nil event", func(t *testing.T) {
		t.Parallel()

		publisher := events.NewNATSPublisher(&MockConn{}, "")
		require.ErrorIs(t, publisher.Publish(context.Background(), nil), events.ErrNilEvent)
	})
}

func TestNATSPublisher_Close(t *testing.T) {
	t.Parallel()

	conn := &MockConn{}
	publisher := events.NewNATSPublisher(conn, "")

	require.NoError(t, publisher.Close())
	assert.True(t, conn.drained)
}

func TestConnect(t *testing.T) {
	t.Parallel()

	_, err := events.Connect(nil)
	require.ErrorIs(t, err, events.ErrNATSURLRequired)

	_, err = events.Connect(&events.NATSConfig{})
	require.ErrorIs(t, err, events.ErrNATSURLRequired)

	_, err = events.Connect(&events.NATSConfig{URL: "nats://127.0.0.1:1", ConnectTimeout: 100 * time.Millisecond})
	require.Error(t, err)
}
