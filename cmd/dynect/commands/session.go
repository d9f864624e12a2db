package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/fivetwenty-io/dynect/internal/constants"
	"github.com/fivetwenty-io/dynect/internal/events"
	"github.com/fivetwenty-io/dynect/pkg/dynclient"
	"github.com/fivetwenty-io/dynect/pkg/dynect"
)

// sessionFunc runs with a logged-in client.
type sessionFunc func(ctx context.Context, client dynect.Client) error

// newLogger builds the CLI logger. Logs go to stderr so structured output
// on stdout stays parseable.
func newLogger(cmd *cobra.Command) *Logger {
	return NewLogger(cmd.ErrOrStderr(), viper.GetBool("verbose"))
}

// newClient builds an API client from the effective configuration.
func newClient(cmd *cobra.Command, logger *Logger, publisher dynect.EventPublisher) (dynect.Client, error) {
	config := loadConfig()

	if config.Password == "" && config.CustomerName != "" && config.UserName != "" {
		password, err := promptPassword(cmd)
		if err != nil {
			return nil, err
		}

		config.Password = password
	}

	credentials, err := credentialsFromConfig(config)
	if err != nil {
		return nil, err
	}

	clientConfig := &dynect.Config{
		APIEndpoint: config.API,
		Credentials: credentials,
		HTTPTimeout: commandTimeout(),
		UserAgent:   constants.DefaultUserAgent + "-cli",
		Debug:       viper.GetBool("verbose"),
		Logger:      logger,
		Events:      publisher,
	}

	client, err := dynclient.New(clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// promptPassword reads the password from the terminal when the command's
// input is one.
func promptPassword(cmd *cobra.Command) (string, error) {
	input, ok := cmd.InOrStdin().(*os.File)
	if !ok {
		return "", nil
	}

	fd := int(input.Fd()) //nolint:gosec // file descriptors fit in int
	if !term.IsTerminal(fd) {
		return "", nil
	}

	_, _ = fmt.Fprint(cmd.ErrOrStderr(), "Password: ")

	passwordBytes, err := term.ReadPassword(fd)

	_, _ = fmt.Fprintln(cmd.ErrOrStderr())

	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	return string(passwordBytes), nil
}

// newPublisher connects to NATS when a URL is configured.
func newPublisher(logger *Logger) (*events.NATSPublisher, error) {
	natsURL := viper.GetString("nats-url")
	if natsURL == "" {
		return nil, nil //nolint:nilnil // no publisher configured
	}

	publisher, err := events.Connect(&events.NATSConfig{
		URL:           natsURL,
		SubjectPrefix: viper.GetString("nats-subject"),
		Name:          constants.DefaultUserAgent + "-cli",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect event publisher: %w", err)
	}

	logger.Debug("Publishing change events", map[string]interface{}{"url": natsURL})

	return publisher, nil
}

// withSession logs in, runs fn and logs out again.
func withSession(cmd *cobra.Command, fn sessionFunc) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger := newLogger(cmd)

	publisher, err := newPublisher(logger)
	if err != nil {
		return err
	}

	var eventPublisher dynect.EventPublisher
	if publisher != nil {
		eventPublisher = publisher

		defer func() {
			closeErr := publisher.Close()
			if closeErr != nil {
				logger.Warn("Failed to close event publisher", map[string]interface{}{"error": closeErr.Error()})
			}
		}()
	}

	client, err := newClient(cmd, logger, eventPublisher)
	if err != nil {
		return err
	}

	if !client.Login(ctx) {
		config := loadConfig()

		return failure(constants.ErrLoginFailed, config.CustomerName+"/"+config.UserName, client.LastResult())
	}

	defer func() {
		logoutCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), constants.ShortHTTPTimeout)
		defer cancel()

		if !client.Logout(logoutCtx) {
			logger.Warn(constants.ErrLogoutFailed.Error(), map[string]interface{}{"body": client.LastResult()})
		}
	}()

	return fn(ctx, client)
}

// commandTimeout is the configured HTTP timeout or the default.
func commandTimeout() time.Duration {
	timeout := viper.GetDuration("timeout")
	if timeout <= 0 {
		return constants.DefaultHTTPTimeout
	}

	return timeout
}
