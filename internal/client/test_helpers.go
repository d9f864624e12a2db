package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/fivetwenty-io/dynect/pkg/dynect"
)

// Test static errors.
var (
	ErrTestSomeError = errors.New("some error")
)

// TestCredentials are the credentials every test client logs in with.
var TestCredentials = dynect.Credentials{
	CustomerName: "acme",
	UserName:     "api-user",
	Password:     "s3cret",
}

// TestTime is the clock of test clients.
var TestTime = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

// NewTestClient creates a new test client with the given base URL.
func NewTestClient(baseURL string) *Client {
	client, err := New(&dynect.Config{
		APIEndpoint: baseURL,
		Credentials: TestCredentials,
	})
	if err != nil {
		panic(err)
	}

	client.now = func() time.Time { return TestTime }

	return client
}

// RecordedRequest is one request received by a FakeServer.
type RecordedRequest struct {
	Method      string
	Path        string
	AuthToken   string
	HasToken    bool
	ContentType string
	RawBody     string
	Body        map[string]interface{}
}

// FakeResponse is a canned reply of a FakeServer.
type FakeResponse struct {
	StatusCode int
	Body       string
}

// FakeServer is a minimal stand-in for the REST API. Routes are keyed by
// method and path; unknown routes get a 404 failure envelope.
type FakeServer struct {
	*httptest.Server

	mutex    sync.Mutex
	routes   map[string]FakeResponse
	requests []RecordedRequest
}

// NewFakeServer starts a FakeServer that is closed with the test.
func NewFakeServer(t *testing.T) *FakeServer {
	t.Helper()

	fake := &FakeServer{routes: make(map[string]FakeResponse)}
	fake.Server = httptest.NewServer(http.HandlerFunc(fake.handle))
	t.Cleanup(fake.Close)

	return fake
}

// On registers a reply for method and path.
func (f *FakeServer) On(method, path string, statusCode int, body string) *FakeServer {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	f.routes[method+" "+path] = FakeResponse{StatusCode: statusCode, Body: body}

	return f
}

// OnSuccess registers a 200 success envelope carrying data.
func (f *FakeServer) OnSuccess(method, path string, data interface{}) *FakeServer {
	envelope, err := json.Marshal(map[string]interface{}{
		"status": "success",
		"data":   data,
		"job_id": 1,
		"msgs":   []interface{}{},
	})
	if err != nil {
		panic(err)
	}

	return f.On(method, path, http.StatusOK, string(envelope))
}

// OnLogin registers a successful login that issues token.
func (f *FakeServer) OnLogin(token string) *FakeServer {
	return f.OnSuccess(http.MethodPost, "/REST/Session/", map[string]interface{}{
		"token":   token,
		"version": "3.7.0",
	})
}

// OnLogout registers a successful logout.
func (f *FakeServer) OnLogout() *FakeServer {
	return f.OnSuccess(http.MethodDelete, "/REST/Session/", map[string]interface{}{})
}

// Requests returns every request received so far.
func (f *FakeServer) Requests() []RecordedRequest {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	requests := make([]RecordedRequest, len(f.requests))
	copy(requests, f.requests)

	return requests
}

// LastRequest returns the most recent request.
func (f *FakeServer) LastRequest() RecordedRequest {
	requests := f.Requests()
	if len(requests) == 0 {
		return RecordedRequest{}
	}

	return requests[len(requests)-1]
}

// APIURL is the endpoint test clients are pointed at.
func (f *FakeServer) APIURL() string {
	return f.URL + "/REST"
}

func (f *FakeServer) handle(writer http.ResponseWriter, request *http.Request) {
	raw, _ := io.ReadAll(request.Body)

	recorded := RecordedRequest{
		Method:      request.Method,
		Path:        request.URL.Path,
		ContentType: request.Header.Get("Content-Type"),
		RawBody:     string(raw),
	}

	if values, ok := request.Header["Auth-Token"]; ok && len(values) > 0 {
		recorded.HasToken = true
		recorded.AuthToken = values[0]
	}

	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &recorded.Body)
	}

	f.mutex.Lock()
	f.requests = append(f.requests, recorded)
	route, ok := f.routes[request.Method+" "+request.URL.Path]
	f.mutex.Unlock()

	writer.Header().Set("Content-Type", "application/json")

	if !ok {
		writer.WriteHeader(http.StatusNotFound)
		_, _ = writer.Write([]byte(`{"status":"failure","data":{},"job_id":2,` +
			`"msgs":[{"INFO":"not found","SOURCE":"BLL","ERR_CD":"NOT_FOUND","LVL":"ERROR"}]}`))

		return
	}

	writer.WriteHeader(route.StatusCode)
	_, _ = writer.Write([]byte(route.Body))
}

// RecordingPublisher collects published change events.
type RecordingPublisher struct {
	mutex  sync.Mutex
	events []dynect.ChangeEvent
	err    error
}

// NewRecordingPublisher creates a publisher that fails every call with err
// when err is non-nil.
func NewRecordingPublisher(err error) *RecordingPublisher {
	return &RecordingPublisher{err: err}
}

// Publish implements dynect.EventPublisher.
func (p *RecordingPublisher) Publish(ctx context.Context, event *dynect.ChangeEvent) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.events = append(p.events, *event)

	return p.err
}

// Events returns the events published so far.
func (p *RecordingPublisher) Events() []dynect.ChangeEvent {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	events := make([]dynect.ChangeEvent, len(p.events))
	copy(events, p.events)

	return events
}

// MockLogger for testing.
type MockLogger struct {
	mutex    sync.Mutex
	messages []string
}

func (l *MockLogger) record(msg string) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.messages = append(l.messages, msg)
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) { l.record(msg) }
func (l *MockLogger) Info(msg string, fields map[string]interface{})  { l.record(msg) }
func (l *MockLogger) Warn(msg string, fields map[string]interface{})  { l.record(msg) }
func (l *MockLogger) Error(msg string, fields map[string]interface{}) { l.record(msg) }

// Messages returns the logged messages.
func (l *MockLogger) Messages() []string {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	messages := make([]string, len(l.messages))
	copy(messages, l.messages)

	return messages
}
