package client

import (
	"context"
	"errors"
	"time"

	"github.com/fivetwenty-io/dynect/internal/auth"
	"github.com/fivetwenty-io/dynect/internal/http"
	"github.com/fivetwenty-io/dynect/pkg/dynect"
)

// Static errors for err113 compliance.
var (
	ErrAPIEndpointRequired = errors.New("API endpoint is required")
)

// Client implements the dynect.Client interface.
type Client struct {
	httpClient   *http.Client
	tokenManager *auth.SessionTokenManager
	credentials  dynect.Credentials
	baseURL      string
	logger       dynect.Logger
	events       dynect.EventPublisher
	now          func() time.Time

	// Raw body of the most recent Execute call.
	lastResult string

	// Resource clients
	zones        *ZonesClient
	nodes        *NodesClient
	aRecords     *ARecordsClient
	cnameRecords *CNAMERecordsClient
}

var _ dynect.Client = (*Client)(nil)

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *dynect.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	return httpOpts
}

// New creates a client for config.APIEndpoint. The endpoint is used as given;
// normalisation happens in dynclient.New.
func New(config *dynect.Config) (*Client, error) {
	if config.APIEndpoint == "" {
		return nil, ErrAPIEndpointRequired
	}

	tokenManager := auth.NewSessionTokenManager()
	httpClient := http.NewClient(config.APIEndpoint, tokenManager, createHTTPClientOptions(config)...)

	logger := config.Logger
	if logger == nil {
		logger = noopLogger{}
	}

	client := &Client{
		httpClient:   httpClient,
		tokenManager: tokenManager,
		credentials:  config.Credentials,
		baseURL:      httpClient.BaseURL(),
		logger:       logger,
		events:       config.Events,
		now:          time.Now,
	}

	client.initializeResourceClients()

	return client, nil
}

func (c *Client) initializeResourceClients() {
	c.zones = NewZonesClient(c)
	c.nodes = NewNodesClient(c)
	c.aRecords = NewARecordsClient(c)
	c.cnameRecords = NewCNAMERecordsClient(c)
}

// BaseURL returns the endpoint the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Execute sends one call to <endpoint>/<resource>/. It never returns an
// error: transport failures, empty bodies and invalid JSON all yield nil.
// The payload is only sent when it has at least one entry.
func (c *Client) Execute(ctx context.Context, resource string, verb dynect.Verb, payload dynect.Payload) *dynect.RawResponse {
	c.lastResult = ""

	if resource == "" {
		c.logger.Warn("Rejected API call without resource", map[string]interface{}{
			"verb": string(verb),
		})

		return nil
	}

	if !verb.Valid() {
		c.logger.Warn("Rejected API call with unsupported verb", map[string]interface{}{
			"resource": resource,
			"verb":     string(verb),
		})

		return nil
	}

	req := &http.Request{
		Method: string(verb),
		Path:   "/" + resource + "/",
	}

	if len(payload) > 0 {
		req.Body = payload
	}

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		c.logger.Error("API call failed", map[string]interface{}{
			"resource": resource,
			"verb":     string(verb),
			"error":    err.Error(),
		})

		return nil
	}

	c.lastResult = string(resp.Body)

	result, err := dynect.ParseResponse(resp.Body)
	if err != nil {
		c.logger.Warn("Could not parse API response", map[string]interface{}{
			"resource":    resource,
			"verb":        string(verb),
			"status_code": resp.StatusCode,
			"error":       err.Error(),
		})

		return nil
	}

	if !result.Success() {
		c.logger.Debug("API call unsuccessful", map[string]interface{}{
			"resource":    resource,
			"verb":        string(verb),
			"status_code": resp.StatusCode,
			"status":      result.Status,
			"messages":    result.Messages(),
		})
	}

	return result
}

// LastResult returns the raw body of the most recent Execute call, or "" when
// that call never reached the server.
func (c *Client) LastResult() string {
	return c.lastResult
}

// Login posts the credentials to the Session resource and stores the issued
// token. A failed login leaves any previous token in place.
func (c *Client) Login(ctx context.Context) bool {
	resp := c.Execute(ctx, dynect.ResourceSession, dynect.VerbPost, c.credentials.Payload())
	if !resp.Success() {
		c.logger.Warn("Login failed", map[string]interface{}{
			"customer": c.credentials.CustomerName,
			"user":     c.credentials.UserName,
			"messages": resp.Messages(),
		})

		return false
	}

	// A success without a usable token still counts as a login; later calls
	// then go out unauthenticated.
	session, _ := dynect.DecodeData[dynect.SessionData](resp)
	c.tokenManager.SetToken(session.Token, session.Version)

	c.logger.Debug("Logged in", map[string]interface{}{
		"customer":    c.credentials.CustomerName,
		"user":        c.credentials.UserName,
		"api_version": session.Version,
	})

	return true
}

// Logout ends the session on the server. The local token is kept.
func (c *Client) Logout(ctx context.Context) bool {
	return c.Execute(ctx, dynect.ResourceSession, dynect.VerbDelete, nil).Success()
}

// Authenticated reports whether a session token is held.
func (c *Client) Authenticated() bool {
	return c.tokenManager.Authenticated()
}

// Zones returns the zones client.
func (c *Client) Zones() dynect.ZonesClient {
	return c.zones
}

// Nodes returns the nodes client.
func (c *Client) Nodes() dynect.NodesClient {
	return c.nodes
}

// ARecords returns the A records client.
func (c *Client) ARecords() dynect.ARecordsClient {
	return c.aRecords
}

// CNAMERecords returns the CNAME records client.
func (c *Client) CNAMERecords() dynect.CNAMERecordsClient {
	return c.cnameRecords
}

// emit hands event to the configured publisher. Publisher failures are
// logged only.
func (c *Client) emit(ctx context.Context, event *dynect.ChangeEvent) {
	if c.events == nil {
		return
	}

	event.Time = c.now().UTC()

	err := c.events.Publish(ctx, event)
	if err != nil {
		c.logger.Warn("Failed to publish change event", map[string]interface{}{
			"action":   string(event.Action),
			"resource": event.Resource,
			"zone":     event.Zone,
			"error":    err.Error(),
		})
	}
}

// noopLogger discards everything.
type noopLogger struct{}

func (noopLogger) Debug(string, map[string]interface{}) {}
func (noopLogger) Info(string, map[string]interface{})  {}
func (noopLogger) Warn(string, map[string]interface{})  {}
func (noopLogger) Error(string, map[string]interface{}) {}
