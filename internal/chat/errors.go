package chat

import "errors"

var (
	// ErrNoEndpoint indicates no webhook endpoint is configured.
	ErrNoEndpoint = errors.New("chat endpoint not configured")

	// ErrUnavailable indicates the webhook could not be reached.
	ErrUnavailable = errors.New("chat webhook unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("chat request timed out")

	// ErrBadStatus indicates the webhook answered with a non-2xx status.
	ErrBadStatus = errors.New("chat webhook returned error status")
)
