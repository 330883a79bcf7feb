// Package tutor contains the HTTP handlers of the tuthub JSON API.
//
// HANDLER PATTERN: THE CLOSURE / FACTORY PATTERN
// ─────────────────────────────────────────────────
// Each exported function receives its dependency (an Executor) once, at
// route registration, and returns the http.HandlerFunc the router calls on
// every request:
//
//	router.HandleFunc("POST /api/commands", tutor.Command(app))
//
// The API speaks the same command language as the REPL, so every write
// goes through logic.Logic and its mutex; the handlers never touch the
// model directly.
package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/tuthub/tuthub/internal/apperrors"
	"github.com/tuthub/tuthub/internal/command"
	"github.com/tuthub/tuthub/internal/parser"
	domain "github.com/tuthub/tuthub/internal/tutor"
	"github.com/tuthub/tuthub/internal/types"
	"github.com/tuthub/tuthub/internal/utils/response"
)

// RequestIDHeader carries the per-request ID back to the client.
const RequestIDHeader = "X-Request-ID"

// MaxCommandBody caps the bytes read from a POST /api/commands body.
const MaxCommandBody = 64 << 10

// Executor is what the handlers need from logic.Logic.
type Executor interface {
	Execute(ctx context.Context, text string) (command.Result, error)
	FilteredTutors() []domain.Tutor
}

// CommandRequest is the body of POST /api/commands.
type CommandRequest struct {
	Command string `json:"command" validate:"required,max=2000"`
}

var validate = validator.New()

// newRequestID tags the response and returns a logger carrying the ID.
func newRequestID(w http.ResponseWriter, r *http.Request) (string, *slog.Logger) {
	id := uuid.NewString()
	w.Header().Set(RequestIDHeader, id)
	return id, slog.Default().With(
		slog.String("request_id", id),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
	)
}

// ─────────────────────────────────────────────────────────────────────────────
// List handles GET /api/tutors
// Returns the displayed list (after the last find, list or sort).
//
// Success response (200 OK):
//
//	[
//	  { "index": 1, "name": "Alice Pauline", "student_id": "A0000001A", ... },
//	  ...
//	]
//
// Returns an empty array [] (not null) when nothing is displayed.
// ─────────────────────────────────────────────────────────────────────────────
func List(app Executor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, log := newRequestID(w, r)
		log.Info("listing tutors")

		response.WriteJSON(w, http.StatusOK, types.FromTutors(app.FilteredTutors()))
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// GetByIndex handles GET /api/tutors/{index}
// Fetches one tutor by its one-based position in the displayed list, the
// same position edit, delete and comment use.
//
// Error responses:
//
//	400 Bad Request  - index is not a positive integer
//	404 Not Found    - index is past the end of the displayed list
//
// ─────────────────────────────────────────────────────────────────────────────
func GetByIndex(app Executor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := r.PathValue("index")
		id, log := newRequestID(w, r)
		log.Info("getting a tutor", slog.String("index", raw))

		index, err := parser.ParseIndex(raw)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(err).WithRequestID(id))
			return
		}

		shown := types.FromTutors(app.FilteredTutors())
		if index.ZeroBased() >= len(shown) {
			response.WriteJSON(w, http.StatusNotFound,
				response.GeneralError(errors.New(command.MessageInvalidTutorIndex)).WithRequestID(id))
			return
		}

		response.WriteJSON(w, http.StatusOK, shown[index.ZeroBased()])
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Command handles POST /api/commands
// Runs one line of the command language.
//
// Request body (JSON):
//
//	{ "command": "edit 1 p/91234567" }
//
// Success response (200 OK):
//
//	{ "status": "ok", "feedback": "Edited Tutor: …", "request_id": "…" }
//
// Error responses:
//
//	400 Bad Request  - empty body, malformed JSON, bad command
//	404 Not Found    - the index is not in the displayed list
//	409 Conflict     - the tutor already exists
//	413 Too Large    - the body is over MaxCommandBody bytes
//	422 Unprocessable - a field value breaks its rule
//	500 Internal     - the change could not be saved
//
// ─────────────────────────────────────────────────────────────────────────────
func Command(app Executor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, log := newRequestID(w, r)

		// ── Step 1: Decode the JSON body ──────────────────────────────
		r.Body = http.MaxBytesReader(w, r.Body, MaxCommandBody)

		var req CommandRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.WriteJSON(w, http.StatusRequestEntityTooLarge,
				response.GeneralError(fmt.Errorf("request body is larger than %d bytes", tooLarge.Limit)).WithRequestID(id))
			return
		}
		if errors.Is(err, io.EOF) {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("request body is empty")).WithRequestID(id))
			return
		}
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(err).WithRequestID(id))
			return
		}

		// ── Step 2: Validate ──────────────────────────────────────────
		if err := validate.Struct(req); err != nil {
			var validateErrs validator.ValidationErrors
			if errors.As(err, &validateErrs) {
				response.WriteJSON(w, http.StatusBadRequest,
					response.ValidationError(validateErrs).WithRequestID(id))
				return
			}
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(err).WithRequestID(id))
			return
		}

		// ── Step 3: Run it ────────────────────────────────────────────
		log.Info("running command", slog.String("command", req.Command))
		result, err := app.Execute(r.Context(), req.Command)
		if err != nil {
			status := statusFor(err)
			if status == http.StatusInternalServerError {
				log.Error("command failed", slog.String("error", err.Error()))
			}
			response.WriteJSON(w, status, response.GeneralError(err).WithRequestID(id))
			return
		}

		response.WriteJSON(w, http.StatusOK, response.CommandResult{
			Status:    response.StatusOK,
			Feedback:  result.Feedback,
			ShowHelp:  result.ShowHelp,
			Exit:      result.Exit,
			RequestID: id,
		})
	}
}

// statusFor maps a command error onto an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrConstraintViolation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, apperrors.ErrIndexOutOfRange), errors.Is(err, apperrors.ErrTutorNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicateTutor):
		return http.StatusConflict
	case apperrors.IsUserError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
