// Package dynclient provides the main entry point for creating Dynect API clients.
package dynclient

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/fivetwenty-io/dynect/internal/client"
	"github.com/fivetwenty-io/dynect/internal/constants"
	"github.com/fivetwenty-io/dynect/pkg/dynect"
)

// New creates a new Dynect API client. The returned client holds no session
// until Login succeeds.
func New(config *dynect.Config) (dynect.Client, error) {
	if config == nil {
		return nil, dynect.ErrConfigRequired
	}

	apiEndpoint, err := NormalizeEndpoint(config.APIEndpoint)
	if err != nil {
		return nil, err
	}

	resolved := *config
	resolved.APIEndpoint = apiEndpoint

	apiClient, err := client.New(&resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// NewWithCredentials creates a client for the default endpoint.
func NewWithCredentials(customerName, userName, password string) (dynect.Client, error) {
	return New(&dynect.Config{
		Credentials: dynect.Credentials{
			CustomerName: customerName,
			UserName:     userName,
			Password:     password,
		},
	})
}

// NewWithEndpoint creates a client for endpoint with the given credentials.
func NewWithEndpoint(endpoint string, credentials dynect.Credentials) (dynect.Client, error) {
	return New(&dynect.Config{
		APIEndpoint: endpoint,
		Credentials: credentials,
	})
}

// NormalizeEndpoint applies the endpoint defaults: an empty endpoint becomes
// https://api2.dynect.net/REST, a trailing slash is dropped and a missing
// scheme becomes https.
func NormalizeEndpoint(endpoint string) (string, error) {
	apiEndpoint := strings.TrimSuffix(strings.TrimSpace(endpoint), "/")
	if apiEndpoint == "" {
		return constants.DefaultAPIEndpoint, nil
	}

	if !strings.HasPrefix(apiEndpoint, "http://") && !strings.HasPrefix(apiEndpoint, "https://") {
		apiEndpoint = "https://" + apiEndpoint
	}

	parsed, err := url.Parse(apiEndpoint)
	if err != nil {
		return "", fmt.Errorf("%w: %w", dynect.ErrInvalidEndpoint, err)
	}

	if parsed.Host == "" {
		return "", fmt.Errorf("%w: %q has no host", dynect.ErrInvalidEndpoint, endpoint)
	}

	return apiEndpoint, nil
}
