package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// API endpoint defaults.
const (
	// DefaultAPIEndpoint is the production Dynect REST endpoint.
	DefaultAPIEndpoint = "https://api2.dynect.net/REST"

	// URIPrefix is the path prefix the API uses in resource URIs it returns.
	URIPrefix = "/REST/"

	// DefaultUserAgent is sent when no user agent is configured.
	DefaultUserAgent = "dynect-go"
)

// HTTP headers and content types.
const (
	// HeaderAuthToken carries the session token on authenticated requests.
	HeaderAuthToken = "Auth-Token"

	// HeaderContentType is the content type header.
	HeaderContentType = "Content-Type"

	// HeaderAccept is the accept header.
	HeaderAccept = "Accept"

	// HeaderUserAgent is the user agent header.
	HeaderUserAgent = "User-Agent"

	// ContentTypeJSON is the media type for every request.
	ContentTypeJSON = "application/json"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Record defaults.
const (
	// DefaultZoneTTL is the default TTL for newly created zones.
	DefaultZoneTTL = 3600

	// DefaultRecordTTL lets the zone default apply to new records.
	DefaultRecordTTL = 0
)

// Response status values.
const (
	// StatusSuccess is the envelope status of a successful call.
	StatusSuccess = "success"

	// StatusFailure is the envelope status of a failed call.
	StatusFailure = "failure"
)

// Format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for table output format.
	FormatTable = "table"

	// JSONIndentSize is the number of spaces for JSON and YAML indentation.
	JSONIndentSize = 2
)

// Event constants.
const (
	// DefaultEventSubject is the NATS subject prefix for change events.
	DefaultEventSubject = "dynect.changes"

	// EventConnectTimeout bounds the NATS connection attempt.
	EventConnectTimeout = 5 * time.Second
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"
)

// Validation and limits.
const (
	// TwoArgumentsRequired indicates commands requiring exactly 2 arguments.
	TwoArgumentsRequired = 2

	// ThreeArgumentsRequired indicates commands requiring exactly 3 arguments.
	ThreeArgumentsRequired = 3

	// FourArgumentsRequired indicates commands requiring exactly 4 arguments.
	FourArgumentsRequired = 4

	// MaxErrorBodyLength truncates response bodies echoed into log fields.
	MaxErrorBodyLength = 512
)
