package commands_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/dynect/cmd/dynect/commands"
	"github.com/fivetwenty-io/dynect/internal/client"
)

// findSubcommand finds a subcommand by name within a cobra command.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

// newFakeAPI starts a fake API that accepts logins and logouts.
func newFakeAPI(t *testing.T) *client.FakeServer {
	t.Helper()

	return client.NewFakeServer(t).OnLogin("T123").OnLogout()
}

// executeCommand runs the CLI with a fresh viper instance and a config file
// in a temporary directory. It returns stdout and stderr.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	return executeWithConfig(t, filepath.Join(t.TempDir(), "config.yml"), args...)
}

// executeWithConfig runs the CLI against an existing config file path.
func executeWithConfig(t *testing.T, configFile string, args ...string) (string, string, error) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	rootCmd := commands.NewRootCommand("1.2.3", "abc123", "2024-03-01")

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(&bytes.Buffer{})
	rootCmd.SetArgs(append([]string{"--config", configFile}, args...))

	err := rootCmd.Execute()

	return stdout.String(), stderr.String(), err
}

// apiArgs returns the flags pointing the CLI at server with test credentials.
func apiArgs(server *client.FakeServer) []string {
	return []string{
		"--api", server.APIURL(),
		"--customer", client.TestCredentials.CustomerName,
		"--username", client.TestCredentials.UserName,
		"--password", client.TestCredentials.Password,
	}
}

// run executes args against server.
func run(t *testing.T, server *client.FakeServer, args ...string) (string, string, error) {
	t.Helper()

	return executeCommand(t, append(apiArgs(server), args...)...)
}
