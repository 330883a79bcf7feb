package command

import (
	"fmt"

	"github.com/tuthub/tuthub/internal/apperrors"
	"github.com/tuthub/tuthub/internal/model"
)

const EditWord = "edit"

const EditUsage = EditWord + ": Edits the details of the tutor identified by the index number used in the " +
	"displayed tutor list. Existing values will be overwritten by the input values.\n" +
	"Parameters: INDEX (must be a positive integer) [n/NAME] [p/PHONE] [e/EMAIL] [m/MODULE] [y/YEAR] " +
	"[s/STUDENT ID] [tn/TEACHING NOMINATIONS] [t/TAG]...\n" +
	"Example: " + EditWord + " 1 p/91234567 e/johndoe@example.com"

const (
	MessageEditTutorSuccess = "Edited Tutor: %s"
	MessageNotEdited        = "At least one field to edit must be provided."
)

// EditCommand overwrites fields of a displayed tutor.
type EditCommand struct {
	index      Index
	descriptor *EditTutorDescriptor
}

// NewEditCommand keeps its own copy of descriptor, so the caller may keep
// mutating theirs.
func NewEditCommand(index Index, descriptor *EditTutorDescriptor) (*EditCommand, error) {
	if descriptor == nil {
		return nil, apperrors.New(apperrors.ErrInvalidCommand, "command.NewEditCommand", "edit descriptor is required")
	}
	if !descriptor.IsAnyFieldEdited() {
		return nil, apperrors.New(apperrors.ErrNoFieldsEdited, "command.NewEditCommand", MessageNotEdited)
	}
	return &EditCommand{index: index, descriptor: descriptor.Clone()}, nil
}

// Execute resolves the index against the displayed list, overlays the
// descriptor and replaces the tutor in place. A changed student ID that
// collides with another tutor is rejected before anything is written.
func (c *EditCommand) Execute(m model.Model) (Result, error) {
	target, err := resolve(m, c.index, "command.Edit")
	if err != nil {
		return Result{}, err
	}

	edited, err := ApplyEdits(target, c.descriptor)
	if err != nil {
		return Result{}, err
	}
	if !target.IsSameTutor(edited) && m.HasTutor(edited) {
		return Result{}, apperrors.New(apperrors.ErrDuplicateTutor, "command.Edit", model.MessageDuplicateTutor)
	}

	if err := m.SetTutor(target, edited); err != nil {
		return Result{}, err
	}
	m.UpdateFilter(model.ShowAll)

	return Result{Feedback: fmt.Sprintf(MessageEditTutorSuccess, edited), Mutated: true}, nil
}

// Equal reports whether both commands edit the same index the same way.
func (c *EditCommand) Equal(other *EditCommand) bool {
	if other == nil {
		return false
	}
	return c.index == other.index && c.descriptor.Equal(other.descriptor)
}
