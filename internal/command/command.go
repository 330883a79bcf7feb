// Package command implements the tuthub commands.
//
// A command is built by package parser from validated input and then run
// against a model.Model. Every check a command makes happens before it
// mutates the model, so a failed command leaves the collection untouched.
package command

import (
	"fmt"

	"github.com/tuthub/tuthub/internal/apperrors"
	"github.com/tuthub/tuthub/internal/model"
	"github.com/tuthub/tuthub/internal/tutor"
)

// Shared messages.
const (
	MessageInvalidTutorIndex = "The tutor index provided is invalid"
	MessageInvalidIndex      = "Index is not a non-zero unsigned integer."
	MessageTutorsListed      = "%d tutors listed!"
)

// Result is what a successful command reports back.
type Result struct {
	Feedback string
	ShowHelp bool // the user asked for the command summary
	Exit     bool // the session should end
	Mutated  bool // the stored list changed and must be saved
}

// Command is one executable user command.
type Command interface {
	Execute(m model.Model) (Result, error)
}

// Index is a position in the displayed tutor list.
type Index struct {
	zeroBased int
}

// IndexFromOneBased converts the position the user typed.
func IndexFromOneBased(n int) (Index, error) {
	if n < 1 {
		return Index{}, apperrors.New(apperrors.ErrInvalidCommand, "command.IndexFromOneBased", MessageInvalidIndex)
	}
	return Index{zeroBased: n - 1}, nil
}

func (i Index) ZeroBased() int { return i.zeroBased }
func (i Index) OneBased() int  { return i.zeroBased + 1 }

func (i Index) String() string { return fmt.Sprint(i.OneBased()) }

// resolve looks index up in the displayed list.
func resolve(m model.Model, index Index, op string) (tutor.Tutor, error) {
	shown := m.FilteredTutors()
	if index.ZeroBased() >= len(shown) {
		return tutor.Tutor{}, apperrors.New(apperrors.ErrIndexOutOfRange, op, MessageInvalidTutorIndex)
	}
	return shown[index.ZeroBased()], nil
}
