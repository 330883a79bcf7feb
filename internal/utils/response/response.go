// Package response provides helpers for writing consistent JSON HTTP responses.
//
// Every handler sends JSON back to the client. Rather than repeating the
// same three lines (set header, set status, encode JSON) in every handler,
// we centralise them here, together with the response envelopes.
package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ─────────────────────────────────────────────────────────────────────────────
// Response is the standard envelope returned for error cases:
//
//	{ "status": "error", "error": "Unknown command", "request_id": "…" }
//
// ─────────────────────────────────────────────────────────────────────────────
type Response struct {
	Status    string `json:"status"` // "ok" or "error"
	Error     string `json:"error"`  // human-readable error detail
	RequestID string `json:"request_id,omitempty"`
}

// CommandResult is the success envelope of POST /api/commands:
//
//	{ "status": "ok", "feedback": "Edited Tutor: …", "request_id": "…" }
type CommandResult struct {
	Status    string `json:"status"`
	Feedback  string `json:"feedback"`
	ShowHelp  bool   `json:"show_help,omitempty"`
	Exit      bool   `json:"exit,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// Status string constants, so a typo is caught by the compiler.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// ─────────────────────────────────────────────────────────────────────────────
// WriteJSON writes a JSON-encoded response with the given HTTP status code.
//
// IMPORTANT ORDER: Header() → WriteHeader() → body writes.
// Once WriteHeader is called (or the first Write), headers are locked.
// ─────────────────────────────────────────────────────────────────────────────
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// GeneralError wraps any Go error into the standard Response shape.
func GeneralError(err error) Response {
	return Response{
		Status: StatusError,
		Error:  err.Error(),
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// ValidationError converts a slice of validator.FieldError values into
// a single human-readable Response.
//
// Example output:
//
//	{ "status": "error", "error": "field Command is required" }
//
// ─────────────────────────────────────────────────────────────────────────────
func ValidationError(errs validator.ValidationErrors) Response {
	var errMessages []string

	for _, e := range errs {
		switch e.ActualTag() {
		case "required":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is required", e.Field()))
		case "max":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must be at most %s characters", e.Field(), e.Param()))
		default:
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is invalid", e.Field()))
		}
	}

	return Response{
		Status: StatusError,
		Error:  strings.Join(errMessages, ", "),
	}
}

// WithRequestID returns r tagged with id.
func (r Response) WithRequestID(id string) Response {
	r.RequestID = id
	return r
}
