package mentorhub

import (
	"fmt"
	"strings"
)

// APIError describes a failed backend operation. Non-2xx responses and
// transport-level failures both surface as *APIError so callers handle a
// single failure kind; StatusCode is 0 when no response was received.
type APIError struct {
	Op         string // operation label, e.g. "fetch students columns"
	StatusCode int
	Body       []byte // raw response body, nil for transport failures
	cause      error
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("failed to %s: %v", e.Op, e.cause)
	}
	snippet := responseSnippet(e.Body)
	if snippet == "" {
		return fmt.Sprintf("failed to %s: status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("failed to %s: status %d: %s", e.Op, e.StatusCode, snippet)
}

// Unwrap exposes the transport cause, if any, for errors.Is/As chains.
func (e *APIError) Unwrap() error { return e.cause }

// newStatusError reports a response outside the 2xx range.
func newStatusError(op string, status int, body []byte) *APIError {
	return &APIError{Op: op, StatusCode: status, Body: body}
}

// newTransportError reports a request that produced no response at all.
func newTransportError(op string, err error) *APIError {
	return &APIError{Op: op, cause: err}
}

// responseSnippet truncates the body for error messages.
func responseSnippet(body []byte) string {
	const maxLen = 512
	s := strings.TrimSpace(string(body))
	if len(s) > maxLen {
		return s[:maxLen] + "..."
	}
	return s
}
