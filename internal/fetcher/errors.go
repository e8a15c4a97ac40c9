package fetcher

import "errors"

// Fetch outcomes other than success. Callers branch on them with errors.Is.
var (
	// ErrNetwork is returned when the request could not be completed.
	ErrNetwork = errors.New("network error")

	// ErrTimeout is returned when the request exceeded the client timeout
	// or its context deadline.
	ErrTimeout = errors.New("request timed out")

	// ErrStatus is returned for responses outside the 2xx range.
	ErrStatus = errors.New("unexpected HTTP status")

	// ErrTooLarge is returned when the response body exceeds MaxBodySize.
	ErrTooLarge = errors.New("response body too large")
)
