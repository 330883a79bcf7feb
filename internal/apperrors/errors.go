// Package apperrors defines the error kinds a tuthub command can fail with.
//
// Every failure a user can cause (bad input, unknown index, duplicate
// tutor) is reported as an *Error whose message is shown verbatim. The
// Kind field is a sentinel so callers branch with errors.Is:
//
//	if errors.Is(err, apperrors.ErrDuplicateTutor) { ... }
//
// Anything that is not an *Error (disk full, corrupt database) is an
// infrastructure failure and is wrapped with fmt.Errorf by the layer that
// hit it.
package apperrors

import "errors"

// Error kinds.
var (
	ErrConstraintViolation = errors.New("constraint violation")
	ErrIndexOutOfRange     = errors.New("index out of range")
	ErrDuplicateTutor      = errors.New("duplicate tutor")
	ErrTutorNotFound       = errors.New("tutor not found")
	ErrNoFieldsEdited      = errors.New("no fields edited")
	ErrInvalidCommand      = errors.New("invalid command")
	ErrUnknownCommand      = errors.New("unknown command")
)

var userKinds = []error{
	ErrConstraintViolation,
	ErrIndexOutOfRange,
	ErrDuplicateTutor,
	ErrTutorNotFound,
	ErrNoFieldsEdited,
	ErrInvalidCommand,
	ErrUnknownCommand,
}

// Error is a command-level failure carrying a human-readable message.
type Error struct {
	Kind    error  // one of the Err* kinds above, for errors.Is
	Op      string // operation that failed, e.g. "tutor.NewStudentID"
	Message string // shown to the user as is
}

// Error returns the user-facing message.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the kind to errors.Is / errors.As.
func (e *Error) Unwrap() error {
	return e.Kind
}

// New creates an *Error.
func New(kind error, op, message string) *Error {
	return &Error{Kind: kind, Op: op, Message: message}
}

// IsUserError reports whether err was caused by user input rather than by
// the environment.
func IsUserError(err error) bool {
	for _, kind := range userKinds {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}

// Op returns the operation recorded on err, or "" when err is not an *Error.
func Op(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Op
	}
	return ""
}
