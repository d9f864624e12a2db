//go:build integration

package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type changeResult struct {
	Action string `json:"action"`
	Target string `json:"target"`
	Status string `json:"status"`
}

// TestZoneWorkflow creates a zone, adds records, publishes and deletes it.
func TestZoneWorkflow(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	runner := NewCommandRunner(config, t)

	_, stderr, err := runner.Run("login")
	require.NoError(t, err, "Failed to log in: %s", stderr)

	zone := config.GenerateTestZone("workflow")

	defer runner.CleanupZone(zone)

	var result changeResult
	require.NoError(t, runner.RunJSON(&result, "zones", "create", config.Contact, zone))
	assert.Equal(t, "success", result.Status)

	var zones []string
	require.NoError(t, runner.RunJSON(&zones, "zones", "list"))
	assert.Contains(t, zones, zone)

	www := "www." + zone

	_, stderr, err = runner.Run("arecords", "add", zone, www, "192.0.2.10", "--ttl", "300")
	require.NoError(t, err, "Failed to add A record: %s", stderr)

	_, stderr, err = runner.Run("cnames", "add", zone, "docs."+zone, www)
	require.NoError(t, err, "Failed to add CNAME record: %s", stderr)

	require.NoError(t, runner.RunJSON(&result, "zones", "publish", zone))

	var ids []string
	require.NoError(t, runner.RunJSON(&ids, "arecords", "list", zone, www))
	require.Len(t, ids, 1)

	_, stderr, err = runner.Run("sync", "upsert", zone, www, "A", "192.0.2.20")
	require.NoError(t, err, "Failed to upsert A record: %s", stderr)

	var nodes []string
	require.NoError(t, runner.RunJSON(&nodes, "nodes", "list", zone))
	assert.Contains(t, nodes, www)

	_, stderr, err = runner.Run("zones", "freeze", zone)
	require.NoError(t, err, "Failed to freeze zone: %s", stderr)

	_, stderr, err = runner.Run("zones", "thaw", zone)
	require.NoError(t, err, "Failed to thaw zone: %s", stderr)

	require.NoError(t, runner.RunJSON(&result, "zones", "delete", zone))
	assert.Equal(t, "delete", result.Action)
}

// TestLogin_BadCredentials checks that rejected credentials fail the command.
func TestLogin_BadCredentials(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	bad := *config
	bad.Password = "definitely-not-the-password"

	runner := NewCommandRunner(&bad, t)

	_, stderr, err := runner.Run("login")
	require.Error(t, err)
	assert.Contains(t, stderr, "login failed")
}
