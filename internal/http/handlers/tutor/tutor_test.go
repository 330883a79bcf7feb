package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuthub/tuthub/internal/command"
	"github.com/tuthub/tuthub/internal/logic"
	"github.com/tuthub/tuthub/internal/model"
	domain "github.com/tuthub/tuthub/internal/tutor"
	"github.com/tuthub/tuthub/internal/storage/yamlfile"
	"github.com/tuthub/tuthub/internal/tutor/tutortest"
	"github.com/tuthub/tuthub/internal/types"
	"github.com/tuthub/tuthub/internal/utils/response"
)

func newRouter(t *testing.T, app Executor) *http.ServeMux {
	t.Helper()
	router := http.NewServeMux()
	router.HandleFunc("GET /api/tutors", List(app))
	router.HandleFunc("GET /api/tutors/{index}", GetByIndex(app))
	router.HandleFunc("POST /api/commands", Command(app))
	return router
}

func typicalApp(t *testing.T) *logic.Logic {
	t.Helper()
	store, err := yamlfile.New(filepath.Join(t.TempDir(), "tuthub.yaml"))
	require.NoError(t, err)
	m, err := model.NewWithTutors(tutortest.Typical())
	require.NoError(t, err)
	return logic.New(m, store, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func do(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, path, reader))
	return rec
}

func TestList(t *testing.T) {
	rec := do(t, newRouter(t, typicalApp(t)), http.MethodGet, "/api/tutors", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))

	var got []types.Tutor
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got, 4)
	assert.Equal(t, 2, got[1].Index)
	assert.Equal(t, "A0000002B", got[1].StudentID)
}

func TestGetByIndex(t *testing.T) {
	router := newRouter(t, typicalApp(t))

	rec := do(t, router, http.MethodGet, "/api/tutors/3", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got types.Tutor
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "Carl Kurz", got.Name)

	tests := map[string]int{
		"/api/tutors/0":   http.StatusBadRequest,
		"/api/tutors/abc": http.StatusBadRequest,
		"/api/tutors/5":   http.StatusNotFound,
	}
	for path, status := range tests {
		t.Run(path, func(t *testing.T) {
			rec := do(t, router, http.MethodGet, path, "")
			assert.Equal(t, status, rec.Code)

			var body response.Response
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, response.StatusError, body.Status)
			assert.Equal(t, rec.Header().Get(RequestIDHeader), body.RequestID)
		})
	}
}

func TestCommand_Success(t *testing.T) {
	app := typicalApp(t)
	router := newRouter(t, app)

	rec := do(t, router, http.MethodPost, "/api/commands", `{"command": "edit 1 n/Alice Tan"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body response.CommandResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, response.StatusOK, body.Status)
	assert.True(t, strings.HasPrefix(body.Feedback, "Edited Tutor: Alice Tan;"))
	assert.Equal(t, rec.Header().Get(RequestIDHeader), body.RequestID)

	assert.Equal(t, "Alice Tan", app.Tutors()[0].Name().String())
}

func TestCommand_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
		error  string
	}{
		{"empty body", "", http.StatusBadRequest, "request body is empty"},
		{"malformed json", `{"command":`, http.StatusBadRequest, ""},
		{"missing command", `{}`, http.StatusBadRequest, "field Command is required"},
		{"unknown command", `{"command": "fly"}`, http.StatusBadRequest, "Unknown command"},
		{"constraint", `{"command": "edit 1 y/9"}`, http.StatusUnprocessableEntity, domain.YearConstraints},
		{"out of range", `{"command": "edit 9 n/Bob"}`, http.StatusNotFound, command.MessageInvalidTutorIndex},
		{"duplicate", `{"command": "edit 1 s/A0000002B"}`, http.StatusConflict, "This tutor already exists in Tuthub."},
		{"no fields", `{"command": "edit 1"}`, http.StatusBadRequest, command.MessageNotEdited},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, newRouter(t, typicalApp(t)), http.MethodPost, "/api/commands", tt.body)
			assert.Equal(t, tt.status, rec.Code)

			var body response.Response
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, response.StatusError, body.Status)
			if tt.error != "" {
				assert.Equal(t, tt.error, body.Error)
			}
		})
	}
}

func TestCommand_BodyTooLarge(t *testing.T) {
	app := typicalApp(t)
	body := `{"command": "comment 1 c/` + strings.Repeat("a", MaxCommandBody) + `"}`

	rec := do(t, newRouter(t, app), http.MethodPost, "/api/commands", body)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	var got response.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, response.StatusError, got.Status)
	assert.Equal(t, fmt.Sprintf("request body is larger than %d bytes", MaxCommandBody), got.Error)
	assert.True(t, app.Tutors()[0].Equal(tutortest.Alice()))
}

type failingExecutor struct{}

func (failingExecutor) Execute(context.Context, string) (command.Result, error) {
	return command.Result{}, errors.New("could not save data: disk full")
}

func (failingExecutor) FilteredTutors() []domain.Tutor { return nil }

func TestCommand_InfrastructureFailure(t *testing.T) {
	router := newRouter(t, failingExecutor{})

	rec := do(t, router, http.MethodPost, "/api/commands", `{"command": "list"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	// nothing displayed still encodes as []
	rec = do(t, router, http.MethodGet, "/api/tutors", "")
	assert.Equal(t, "[]\n", rec.Body.String())
}
