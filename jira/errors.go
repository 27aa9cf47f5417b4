package jira

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ConfigError reports invalid client options.
type ConfigError string

// Error implements the error interface.
func (e ConfigError) Error() string { return "jira config: " + string(e) }

// HTTPError is returned for any non-2xx response. It carries the status code
// and the raw response body so callers can diagnose the failure.
type HTTPError struct {
	StatusCode int
	Method     string
	URL        string
	Body       []byte
}

// Error renders the error, preferring JIRA's own error messages when the body
// contains them.
func (e *HTTPError) Error() string {
	msg := jiraErrorText(e.Body)
	if msg == "" {
		msg = string(trim(e.Body, 256))
	}
	if msg == "" {
		return fmt.Sprintf("jira: %s %s: status %d", e.Method, e.URL, e.StatusCode)
	}
	return fmt.Sprintf("jira: %s %s: status %d: %s", e.Method, e.URL, e.StatusCode, msg)
}

// DecodeError is returned when a 2xx response body is not well-formed JSON.
type DecodeError struct {
	Err  error
	Body []byte
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("jira: decode response: %v", e.Err)
}

// Unwrap returns the underlying JSON error.
func (e *DecodeError) Unwrap() error { return e.Err }

// jiraErrorText extracts "errorMessages" and "errors" from a JIRA error
// payload. It returns "" if the body is not such a payload.
func jiraErrorText(body []byte) string {
	var payload struct {
		ErrorMessages []string          `json:"errorMessages"`
		Errors        map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}

	parts := payload.ErrorMessages
	for field, msg := range payload.Errors {
		parts = append(parts, field+": "+msg)
	}
	return strings.Join(parts, "; ")
}

// trim returns at most n bytes of b.
func trim(b []byte, n int) []byte {
	if len(b) <= n {
		return b
	}
	return b[:n]
}
