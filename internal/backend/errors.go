package backend

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSessionExpired is returned for any backend call that comes back 401.
// The gateway also fires its OnSessionExpired hook once per failing call so
// the UI can route to the session-expired view.
var ErrSessionExpired = errors.New("session expired")

// ValidationError carries the field errors from a 400 response body of the
// form {"errors": {"field": ["msg", ...]}}. Callers render these inline next
// to the originating form fields instead of surfacing a blocking dialog.
type ValidationError struct {
	Fields map[string][]string `json:"errors"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msgs := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(msgs, "; ")))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// APIError is any other non-2xx response from the backend.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Message)
}
