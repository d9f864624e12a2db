// Package events publishes change events to NATS.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/fivetwenty-io/dynect/internal/constants"
	"github.com/fivetwenty-io/dynect/pkg/dynect"
)

// Static errors for err113 compliance.
var (
	ErrNATSURLRequired = errors.New("NATS URL is required")
	ErrNilEvent        = errors.New("change event is nil")
)

// Conn is the subset of *nats.Conn used by the publisher.
type Conn interface {
	Publish(subject string, data []byte) error
	FlushWithContext(ctx context.Context) error
	Drain() error
}

// NATSConfig configures the NATS connection.
type NATSConfig struct {
	// URL is the NATS server URL, e.g. nats://127.0.0.1:4222.
	URL string
	// SubjectPrefix is prepended to every subject. Defaults to "dynect.changes".
	SubjectPrefix string
	// Name identifies the connection on the server.
	Name string
	// ConnectTimeout bounds the initial connect and each flush.
	ConnectTimeout time.Duration
}

// NATSPublisher implements dynect.EventPublisher on a NATS connection.
type NATSPublisher struct {
	conn    Conn
	prefix  string
	timeout time.Duration
}

var _ dynect.EventPublisher = (*NATSPublisher)(nil)

// Connect dials NATS and returns a publisher owning the connection.
func Connect(config *NATSConfig) (*NATSPublisher, error) {
	if config == nil || config.URL == "" {
		return nil, ErrNATSURLRequired
	}

	timeout := config.ConnectTimeout
	if timeout <= 0 {
		timeout = constants.EventConnectTimeout
	}

	name := config.Name
	if name == "" {
		name = constants.DefaultUserAgent
	}

	conn, err := nats.Connect(config.URL, nats.Name(name), nats.Timeout(timeout))
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS at %s: %w", config.URL, err)
	}

	publisher := NewNATSPublisher(conn, config.SubjectPrefix)
	publisher.timeout = timeout

	return publisher, nil
}

// NewNATSPublisher wraps an existing connection.
func NewNATSPublisher(conn Conn, subjectPrefix string) *NATSPublisher {
	prefix := strings.Trim(subjectPrefix, ".")
	if prefix == "" {
		prefix = constants.DefaultEventSubject
	}

	return &NATSPublisher{
		conn:    conn,
		prefix:  prefix,
		timeout: constants.EventConnectTimeout,
	}
}

// Subject returns <prefix>.<resource>.<action>, with the resource lowercased.
func (p *NATSPublisher) Subject(event *dynect.ChangeEvent) string {
	return p.prefix + "." + strings.ToLower(event.Resource) + "." + string(event.Action)
}

// Publish sends event as JSON and waits for the server to acknowledge it.
func (p *NATSPublisher) Publish(ctx context.Context, event *dynect.ChangeEvent) error {
	if event == nil {
		return ErrNilEvent
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encoding change event: %w", err)
	}

	subject := p.Subject(event)

	err = p.conn.Publish(subject, data)
	if err != nil {
		return fmt.Errorf("publishing to %s: %w", subject, err)
	}

	// FlushWithContext refuses contexts without a deadline.
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	err = p.conn.FlushWithContext(ctx)
	if err != nil {
		return fmt.Errorf("flushing %s: %w", subject, err)
	}

	return nil
}

// Close drains and closes the connection.
func (p *NATSPublisher) Close() error {
	err := p.conn.Drain()
	if err != nil {
		return fmt.Errorf("draining NATS connection: %w", err)
	}

	return nil
}
