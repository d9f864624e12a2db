package commands_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/dynect/cmd/dynect/commands"
	"github.com/fivetwenty-io/dynect/internal/client"
	"github.com/fivetwenty-io/dynect/internal/constants"
	"github.com/fivetwenty-io/dynect/pkg/recordsync"
)

func methodsAndPaths(requests []client.RecordedRequest) []string {
	calls := make([]string, 0, len(requests))
	for _, req := range requests {
		calls = append(calls, req.Method+" "+req.Path)
	}

	return calls
}

func TestNewSyncCommand(t *testing.T) {
	cmd := commands.NewSyncCommand()

	for _, name := range []string{"upsert", "delete", "exists"} {
		assert.NotNil(t, findSubcommand(cmd, name), name)
	}

	assert.NotNil(t, cmd.PersistentFlags().Lookup("no-publish"))
}

func TestSyncUpsert(t *testing.T) {
	t.Run("creates missing record and publishes", func(t *testing.T) {
		server := newFakeAPI(t).
			OnSuccess(http.MethodPost, "/REST/ARecord/example.com/www.example.com/", map[string]interface{}{}).
			OnSuccess(http.MethodPut, "/REST/Zone/example.com/", map[string]interface{}{})

		_, _, err := run(t, server, "sync", "upsert", "example.com", "www.example.com", "a", "192.0.2.10", "--ttl", "300")
		require.NoError(t, err)

		assert.Equal(t, []string{
			"POST /REST/Session/",
			"GET /REST/ARecord/example.com/www.example.com/",
			"POST /REST/ARecord/example.com/www.example.com/",
			"PUT /REST/Zone/example.com/",
			"DELETE /REST/Session/",
		}, methodsAndPaths(server.Requests()))
	})

	t.Run("no publish", func(t *testing.T) {
		server := newFakeAPI(t).
			OnSuccess(http.MethodPost, "/REST/ARecord/example.com/www.example.com/", map[string]interface{}{})

		_, _, err := run(t, server, "sync", "upsert", "--no-publish", "example.com", "www.example.com", "A", "192.0.2.10")
		require.NoError(t, err)
		assert.NotContains(t, methodsAndPaths(server.Requests()), "PUT /REST/Zone/example.com/")
	})

	t.Run("record in place", func(t *testing.T) {
		server := newFakeAPI(t).
			OnSuccess(http.MethodGet, "/REST/CNAMERecord/example.com/docs.example.com/", []string{
				"/REST/CNAMERecord/example.com/docs.example.com/7",
			}).
			OnSuccess(http.MethodGet, "/REST/CNAMERecord/example.com/docs.example.com/7/", map[string]interface{}{
				"zone": "example.com", "fqdn": "docs.example.com", "record_type": "CNAME", "record_id": 7, "ttl": 600,
				"rdata": map[string]interface{}{"cname": "pages.example.net."},
			})

		_, _, err := run(t, server, "sync", "upsert", "example.com", "docs.example.com", "CNAME", "pages.example.net")
		require.NoError(t, err)
		assert.Len(t, server.Requests(), 4)
	})

	t.Run("unsupported type", func(t *testing.T) {
		server := newFakeAPI(t)

		_, _, err := run(t, server, "sync", "upsert", "example.com", "www.example.com", "MX", "mail.example.com")
		require.ErrorIs(t, err, constants.ErrUnsupportedRecord)
		assert.Empty(t, server.Requests())
	})

	t.Run("negative ttl", func(t *testing.T) {
		server := newFakeAPI(t)

		_, _, err := run(t, server, "sync", "upsert", "example.com", "www.example.com", "A", "192.0.2.10", "--ttl", "-1")
		require.ErrorIs(t, err, recordsync.ErrInvalidRecord)
		assert.Empty(t, server.Requests())
	})
}

func TestSyncDelete(t *testing.T) {
	t.Run("nothing to delete", func(t *testing.T) {
		server := newFakeAPI(t)

		_, _, err := run(t, server, "sync", "delete", "example.com", "www.example.com", "A")
		require.ErrorIs(t, err, recordsync.ErrRecordNotFound)
	})

	t.Run("deletes every record", func(t *testing.T) {
		server := newFakeAPI(t).
			OnSuccess(http.MethodGet, "/REST/ARecord/example.com/www.example.com/", []string{
				"/REST/ARecord/example.com/www.example.com/42",
				"/REST/ARecord/example.com/www.example.com/43",
			}).
			OnSuccess(http.MethodDelete, "/REST/ARecord/example.com/www.example.com/42/", map[string]interface{}{}).
			OnSuccess(http.MethodDelete, "/REST/ARecord/example.com/www.example.com/43/", map[string]interface{}{}).
			OnSuccess(http.MethodPut, "/REST/Zone/example.com/", map[string]interface{}{})

		stdout, _, err := run(t, server, "sync", "delete", "example.com", "www.example.com", "A")
		require.NoError(t, err)
		assert.Contains(t, stdout, "Delete www.example.com A")
		assert.Len(t, server.Requests(), 6)
	})
}

func TestSyncExists(t *testing.T) {
	server := newFakeAPI(t)

	stdout, _, err := run(t, server, "-o", "json", "sync", "exists", "example.com", "www.example.com", "A")
	require.NoError(t, err)
	assert.JSONEq(t, `{"zone":"example.com","fqdn":"www.example.com","type":"A","exists":false}`, stdout)
}
