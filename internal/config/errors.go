package config

import "errors"

// Validation errors returned by Config.Validate.
var (
	// ErrNotFound is wrapped by NotFoundError when a local input file is missing.
	ErrNotFound = errors.New("file does not exist")

	// ErrInvalidURL is returned when --url is not an absolute http(s) URL.
	ErrInvalidURL = errors.New("invalid url: must be an absolute http or https URL")

	// ErrInvalidTimeout is returned when the timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidFormat is returned for an unknown --format value.
	ErrInvalidFormat = errors.New("invalid format: must be json or markdown")
)

// NotFoundError names the local file that could not be found.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return e.Path + " does not exist"
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}
