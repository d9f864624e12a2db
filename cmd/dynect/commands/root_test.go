package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/dynect/cmd/dynect/commands"
	"github.com/fivetwenty-io/dynect/internal/constants"
)

func TestNewRootCommand(t *testing.T) {
	cmd := commands.NewRootCommand("dev", "none", "unknown")

	assert.Equal(t, "dynect", cmd.Use)
	assert.True(t, cmd.SilenceUsage)
	assert.True(t, cmd.SilenceErrors)

	for _, name := range []string{"version", "login", "config", "zones", "nodes", "arecords", "cnames", "sync"} {
		assert.NotNil(t, findSubcommand(cmd, name), name)
	}

	for _, name := range []string{
		"config", "api", "customer", "username", "password", "output",
		"verbose", "no-color", "timeout", "nats-url", "nats-subject",
	} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}

	outputFlag := cmd.PersistentFlags().Lookup("output")
	require.NotNil(t, outputFlag)
	assert.Equal(t, constants.FormatTable, outputFlag.DefValue)
	assert.Equal(t, constants.DefaultEventSubject, cmd.PersistentFlags().Lookup("nats-subject").DefValue)
}

func TestRootCommand_InvalidOutput(t *testing.T) {
	_, _, err := executeCommand(t, "--output", "xml", "version")
	require.ErrorIs(t, err, constants.ErrInvalidOutputFormat)
}

func TestVersionCommand(t *testing.T) {
	t.Run("table", func(t *testing.T) {
		stdout, _, err := executeCommand(t, "version")
		require.NoError(t, err)
		assert.Contains(t, stdout, "1.2.3")
		assert.Contains(t, stdout, "abc123")
	})

	t.Run("json", func(t *testing.T) {
		stdout, _, err := executeCommand(t, "--output", "json", "version")
		require.NoError(t, err)
		assert.JSONEq(t, `{"version":"1.2.3","commit":"abc123","built":"2024-03-01"}`, stdout)
	})

	t.Run("yaml", func(t *testing.T) {
		stdout, _, err := executeCommand(t, "-o", "yaml", "version")
		require.NoError(t, err)
		assert.YAMLEq(t, "version: 1.2.3\ncommit: abc123\nbuilt: \"2024-03-01\"\n", stdout)
	})
}
