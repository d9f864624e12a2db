package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	dynhttp "github.com/fivetwenty-io/dynect/internal/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTokenUnavailable = errors.New("token unavailable")

// MockTokenManager for testing.
type MockTokenManager struct {
	token string
	err   error
}

func (m *MockTokenManager) GetToken(ctx context.Context) (string, error) {
	return m.token, m.err
}

// MockLogger for testing.
type MockLogger struct {
	logs []map[string]interface{}
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "debug", "msg": msg, "fields": fields})
}

func (l *MockLogger) Info(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "info", "msg": msg, "fields": fields})
}

func (l *MockLogger) Warn(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "warn", "msg": msg, "fields": fields})
}

func (l *MockLogger) Error(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "error", "msg": msg, "fields": fields})
}

func (l *MockLogger) messages() []string {
	messages := make([]string, 0, len(l.logs))
	for _, entry := range l.logs {
		messages = append(messages, entry["msg"].(string))
	}

	return messages
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()

	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/REST/Zone/", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "T123", request.Header.Get("Auth-Token"))
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))
			assert.Equal(t, "application/json", request.Header.Get("Accept"))
			assert.Equal(t, "dynect-go", request.Header.Get("User-Agent"))

			body, _ := io.ReadAll(request.Body)
			assert.Empty(t, body)

			_, _ = writer.Write([]byte(`{"status":"success","data":[]}`))
		}))
		defer server.Close()

		client := dynhttp.NewClient(server.URL+"/REST", &MockTokenManager{token: "T123"})

		resp, err := client.Do(context.Background(), &dynhttp.Request{Method: "GET", Path: "/Zone/"})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.JSONEq(t, `{"status":"success","data":[]}`, string(resp.Body))
	})

	t.Run("no auth header without token", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_, present := request.Header["Auth-Token"]
			assert.False(t, present)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := dynhttp.NewClient(server.URL, &MockTokenManager{})

		_, err := client.Do(context.Background(), &dynhttp.Request{Method: "GET", Path: "/Zone/"})
		require.NoError(t, err)
	})

	t.Run("request with body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			var body map[string]interface{}

			err := json.NewDecoder(request.Body).Decode(&body)
			assert.NoError(t, err)
			assert.Equal(t, "example.com", body["zone"])
			assert.InDelta(t, 3600, body["ttl"], 0)

			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := dynhttp.NewClient(server.URL, nil)

		resp, err := client.Do(context.Background(), &dynhttp.Request{
			Method: "POST",
			Path:   "/Zone/example.com/",
			Body:   map[string]interface{}{"zone": "example.com", "ttl": 3600},
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("error status is not an error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusBadRequest)
			_, _ = writer.Write([]byte(`{"status":"failure","data":{}}`))
		}))
		defer server.Close()

		client := dynhttp.NewClient(server.URL, nil)

		resp, err := client.Do(context.Background(), &dynhttp.Request{Method: "GET", Path: "/Zone/missing.com/"})
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
		assert.JSONEq(t, `{"status":"failure","data":{}}`, string(resp.Body))
	})

	t.Run("server error is returned without retrying", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++

			writer.WriteHeader(http.StatusInternalServerError)
			_, _ = writer.Write([]byte(`{"status":"failure"}`))
		}))
		defer server.Close()

		client := dynhttp.NewClient(server.URL, nil)

		resp, err := client.Do(context.Background(), &dynhttp.Request{Method: "PUT", Path: "/Zone/example.com/"})
		require.NoError(t, err)
		assert.Equal(t, 500, resp.StatusCode)
		assert.JSONEq(t, `{"status":"failure"}`, string(resp.Body))
		assert.Equal(t, 1, attempts)
	})

	t.Run("custom user agent", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "dynect-cli/1.0", request.Header.Get("User-Agent"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := dynhttp.NewClient(server.URL, nil, dynhttp.WithUserAgent("dynect-cli/1.0"))

		_, err := client.Do(context.Background(), &dynhttp.Request{Method: "GET", Path: "/Zone/"})
		require.NoError(t, err)
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte(`{"status":"success"}`))
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := dynhttp.NewClient(server.URL, &MockTokenManager{token: "secret-token"},
			dynhttp.WithLogger(logger), dynhttp.WithDebug(true))

		_, err := client.Do(context.Background(), &dynhttp.Request{Method: "GET", Path: "/Zone/"})
		require.NoError(t, err)

		assert.Contains(t, logger.messages(), "HTTP Request")
		assert.Contains(t, logger.messages(), "HTTP Response")

		for _, entry := range logger.logs {
			assert.NotContains(t, entry["fields"], "secret-token")
		}
	})

	t.Run("logger without debug stays quiet", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := dynhttp.NewClient(server.URL, nil, dynhttp.WithLogger(logger))

		_, err := client.Do(context.Background(), &dynhttp.Request{Method: "GET", Path: "/Zone/"})
		require.NoError(t, err)
		assert.Empty(t, logger.logs)
	})
}

func TestClient_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing method", func(t *testing.T) {
		t.Parallel()

		client := dynhttp.NewClient("http://127.0.0.1", nil)

		_, err := client.Do(context.Background(), &dynhttp.Request{Path: "/Zone/"})
		require.ErrorIs(t, err, dynhttp.ErrMethodRequired)
	})

	t.Run("token manager failure", func(t *testing.T) {
		t.Parallel()

		client := dynhttp.NewClient("http://127.0.0.1", &MockTokenManager{err: errTokenUnavailable})

		_, err := client.Do(context.Background(), &dynhttp.Request{Method: "GET", Path: "/Zone/"})
		require.ErrorIs(t, err, errTokenUnavailable)
	})

	t.Run("connection refused", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {}))
		url := server.URL
		server.Close()

		client := dynhttp.NewClient(url, nil, dynhttp.WithTimeout(time.Second))

		resp, err := client.Do(context.Background(), &dynhttp.Request{Method: "GET", Path: "/Zone/"})
		require.Error(t, err)
		assert.Nil(t, resp)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		client := dynhttp.NewClient(server.URL, nil)

		_, err := client.Do(ctx, &dynhttp.Request{Method: "GET", Path: "/Zone/"})
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("unencodable body", func(t *testing.T) {
		t.Parallel()

		client := dynhttp.NewClient("http://127.0.0.1", nil)

		_, err := client.Do(context.Background(), &dynhttp.Request{
			Method: "POST",
			Path:   "/Zone/",
			Body:   map[string]interface{}{"bad": make(chan int)},
		})
		require.Error(t, err)
	})
}

func TestClient_BaseURL(t *testing.T) {
	t.Parallel()

	client := dynhttp.NewClient("https://api2.dynect.net/REST/", nil)
	assert.Equal(t, "https://api2.dynect.net/REST", client.BaseURL())
}
