// Package errors describes failures reported by the ShopStyle API itself.
// Network-level failures are not represented here; they reach callers exactly
// as the HTTP transport produced them.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCategory tells callers whether repeating the request could succeed.
// The SDK never retries on its own.
type ErrorCategory int

const (
	// Recoverable statuses may succeed later: 408, 429 and 5xx.
	Recoverable ErrorCategory = iota

	// Irrecoverable statuses will fail again unchanged: other 4xx.
	Irrecoverable
)

// String returns a human-readable representation of the error category.
func (c ErrorCategory) String() string {
	switch c {
	case Recoverable:
		return "Recoverable"
	case Irrecoverable:
		return "Irrecoverable"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// StatusError is returned when the upstream answers with a non-2xx status.
type StatusError struct {
	Method     string
	URL        string // full request URL, including the pid API key
	StatusCode int
	Body       string // truncated response body for debugging
}

// maxBodyLen bounds how much of an error body is retained.
const maxBodyLen = 512

// NewStatusError builds a StatusError, truncating body to a loggable size.
func NewStatusError(method, url string, statusCode int, body []byte) *StatusError {
	if len(body) > maxBodyLen {
		body = body[:maxBodyLen]
	}
	return &StatusError{
		Method:     method,
		URL:        url,
		StatusCode: statusCode,
		Body:       string(body),
	}
}

// Error implements the error interface. The pid value is masked.
func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: HTTP %d", e.Method, RedactURL(e.URL), e.StatusCode)
}

// RedactURL masks the value of every pid query parameter in rawURL.
func RedactURL(rawURL string) string {
	base, query, ok := strings.Cut(rawURL, "?")
	if !ok {
		return rawURL
	}
	parts := strings.Split(query, "&")
	for i, p := range parts {
		if strings.HasPrefix(p, "pid=") {
			parts[i] = "pid=REDACTED"
		}
	}
	return base + "?" + strings.Join(parts, "&")
}

// Category classifies the status code.
func (e *StatusError) Category() ErrorCategory {
	switch {
	case e.StatusCode == 408, e.StatusCode == 429:
		return Recoverable
	case e.StatusCode >= 400 && e.StatusCode < 500:
		return Irrecoverable
	default:
		return Recoverable
	}
}

// IsRecoverable reports whether err carries a StatusError whose status may
// succeed on a later attempt.
func IsRecoverable(err error) bool {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Category() == Recoverable
	}
	return false
}

// StatusCode extracts the HTTP status from err, or 0 when err is not a StatusError.
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}
