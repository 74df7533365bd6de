package client

import (
	"errors"

	sserrors "github.com/shopstyle/shopstyle-go/client/internal/errors"
)

// ErrEmptyAPIKey is returned by New when no API key is supplied.
var ErrEmptyAPIKey = errors.New("api key cannot be empty")

// StatusError is returned when the API answers with a non-2xx status.
type StatusError = sserrors.StatusError

// IsRecoverable reports whether err is a StatusError that may succeed on a
// later attempt (408, 429, 5xx). Retrying is left to the caller.
func IsRecoverable(err error) bool { return sserrors.IsRecoverable(err) }

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int { return sserrors.StatusCode(err) }
