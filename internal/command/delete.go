package command

import (
	"fmt"

	"github.com/tuthub/tuthub/internal/model"
)

const DeleteWord = "delete"

const DeleteUsage = DeleteWord + ": Deletes the tutor identified by the index number used in the displayed tutor list.\n" +
	"Parameters: INDEX (must be a positive integer)\n" +
	"Example: " + DeleteWord + " 1"

const MessageDeleteTutorSuccess = "Deleted Tutor: %s"

// DeleteCommand removes a displayed tutor.
type DeleteCommand struct {
	index Index
}

func NewDeleteCommand(index Index) *DeleteCommand {
	return &DeleteCommand{index: index}
}

func (c *DeleteCommand) Execute(m model.Model) (Result, error) {
	target, err := resolve(m, c.index, "command.Delete")
	if err != nil {
		return Result{}, err
	}
	if err := m.DeleteTutor(target); err != nil {
		return Result{}, err
	}
	return Result{Feedback: fmt.Sprintf(MessageDeleteTutorSuccess, target), Mutated: true}, nil
}
