package dynect

import (
	"context"
	"time"
)

// SessionClient manages the API session token.
type SessionClient interface {
	Login(ctx context.Context) bool
	Logout(ctx context.Context) bool
	Authenticated() bool
}

// Executor issues raw calls against the API.
type Executor interface {
	// Execute sends verb to <endpoint>/<resource>/ and returns the parsed
	// envelope, or nil when the call failed or the body was not JSON.
	Execute(ctx context.Context, resource string, verb Verb, payload Payload) *RawResponse
	// LastResult returns the raw body of the most recent Execute call.
	LastResult() string
}

// ZonesClient defines operations on zones.
type ZonesClient interface {
	Create(ctx context.Context, contact, name string, ttl int) bool
	Delete(ctx context.Context, zone string) bool
	Publish(ctx context.Context, zone string) bool
	Freeze(ctx context.Context, zone string) bool
	Thaw(ctx context.Context, zone string) bool
	Get(ctx context.Context, zone string) (*Zone, bool)
	List(ctx context.Context) ([]string, bool)
}

// NodesClient defines operations on nodes.
type NodesClient interface {
	Delete(ctx context.Context, zone, fqdn string) bool
	List(ctx context.Context, zone, fqdn string) ([]string, bool)
}

// ARecordsClient defines operations on A records.
type ARecordsClient interface {
	Add(ctx context.Context, zone, fqdn, address string, ttl int) bool
	Delete(ctx context.Context, zone, fqdn, id string) bool
	Get(ctx context.Context, zone, fqdn, id string) (*ARecord, bool)
	List(ctx context.Context, zone, fqdn string) ([]string, bool)
}

// CNAMERecordsClient defines operations on CNAME records.
type CNAMERecordsClient interface {
	Add(ctx context.Context, zone, fqdn, cname string, ttl int) bool
	Delete(ctx context.Context, zone, fqdn, id string) bool
	Get(ctx context.Context, zone, fqdn, id string) (*CNAMERecord, bool)
	List(ctx context.Context, zone, fqdn string) ([]string, bool)
}

// ResourceClients provides access to the resource-specific clients.
type ResourceClients interface {
	Zones() ZonesClient
	Nodes() NodesClient
	ARecords() ARecordsClient
	CNAMERecords() CNAMERecordsClient
}

// Client is a Dynect API client bound to one session.
//
// A Client is not safe for concurrent use: the session token and the last
// raw result are shared mutable state. Use one client per logical session.
type Client interface {
	SessionClient
	Executor
	ResourceClients
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// EventPublisher receives a ChangeEvent after each successful mutating call.
type EventPublisher interface {
	Publish(ctx context.Context, event *ChangeEvent) error
}

// Config represents client configuration for building a Client.
type Config struct {
	// APIEndpoint is the base URL of the REST API. dynclient.New falls back to
	// https://api2.dynect.net/REST when empty, trims a trailing slash, and adds
	// "https://" when no scheme is present.
	APIEndpoint string

	// Credentials are sent verbatim to the Session endpoint on Login.
	Credentials Credentials

	// HTTPTimeout bounds each request. Zero uses the default of 30 seconds.
	HTTPTimeout time.Duration
	// UserAgent overrides the default User-Agent header.
	UserAgent string
	// Debug enables request/response logging when a Logger is provided.
	Debug bool
	// Logger is an optional structured logger used by the client and transport.
	Logger Logger
	// Events is an optional publisher notified of successful changes.
	Events EventPublisher
}
