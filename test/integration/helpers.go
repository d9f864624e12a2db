//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"
)

// TestConfig holds configuration for integration tests.
type TestConfig struct {
	APIEndpoint string
	Customer    string
	UserName    string
	Password    string
	Contact     string
	ZoneSuffix  string
	BinaryPath  string
	Verbose     bool
}

// LoadTestConfig loads configuration from environment variables.
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		APIEndpoint: os.Getenv("DYNECT_API"),
		Customer:    os.Getenv("DYNECT_CUSTOMER"),
		UserName:    os.Getenv("DYNECT_USERNAME"),
		Password:    os.Getenv("DYNECT_PASSWORD"),
		Contact:     os.Getenv("DYNECT_TEST_CONTACT"),
		ZoneSuffix:  os.Getenv("DYNECT_TEST_ZONE_SUFFIX"),
		BinaryPath:  getBinaryPath(),
		Verbose:     os.Getenv("DYNECT_VERBOSE") == "true",
	}
}

// getBinaryPath determines the path to the dynect binary.
func getBinaryPath() string {
	if path := os.Getenv("DYNECT_BINARY_PATH"); path != "" {
		return path
	}

	candidates := []string{
		"../../dynect",
		"./dynect",
		"../dynect",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "dynect"
}

// SkipIfMissingConfig skips the test unless credentials and a scratch zone
// suffix are configured.
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.Customer == "" || config.UserName == "" || config.Password == "" {
		t.Skip("DYNECT_CUSTOMER, DYNECT_USERNAME or DYNECT_PASSWORD not set, skipping integration test")
	}

	if config.Contact == "" || config.ZoneSuffix == "" {
		t.Skip("DYNECT_TEST_CONTACT or DYNECT_TEST_ZONE_SUFFIX not set, skipping integration test")
	}

	if _, err := exec.LookPath(config.BinaryPath); err != nil {
		t.Skipf("dynect binary not found at %s, skipping integration test", config.BinaryPath)
	}
}

// CommandRunner runs dynect commands against the live API.
type CommandRunner struct {
	config *TestConfig
	t      *testing.T
}

// NewCommandRunner creates a new command runner.
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	return &CommandRunner{
		config: config,
		t:      t,
	}
}

// Run executes a dynect command and returns its output.
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	args = append([]string{"--no-color"}, args...)
	if runner.config.APIEndpoint != "" {
		args = append([]string{"--api", runner.config.APIEndpoint}, args...)
	}

	cmd := exec.Command(runner.config.BinaryPath, args...)
	cmd.Env = append(os.Environ(),
		"DYNECT_CUSTOMER="+runner.config.Customer,
		"DYNECT_USERNAME="+runner.config.UserName,
		"DYNECT_PASSWORD="+runner.config.Password,
	)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.BinaryPath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// RunJSON runs a command with JSON output and decodes stdout into target.
func (runner *CommandRunner) RunJSON(target interface{}, args ...string) error {
	stdout, stderr, err := runner.Run(append([]string{"--output", "json"}, args...)...)
	if err != nil {
		return fmt.Errorf("%w: %s", err, stderr)
	}

	return json.Unmarshal([]byte(stdout), target)
}

// GenerateTestZone creates a unique zone name below the scratch suffix.
func (config *TestConfig) GenerateTestZone(prefix string) string {
	return fmt.Sprintf("%s-%d.%s", prefix, time.Now().Unix(), strings.TrimPrefix(config.ZoneSuffix, "."))
}

// CleanupZone deletes a test zone, ignoring failures.
func (runner *CommandRunner) CleanupZone(zone string) {
	stdout, stderr, err := runner.Run("zones", "delete", zone)
	if err != nil && runner.config.Verbose {
		runner.t.Logf("Cleanup warning for zone %s: %s\nStderr: %s", zone, stdout, stderr)
	}
}
