package command

import (
	"fmt"

	"github.com/tuthub/tuthub/internal/apperrors"
	"github.com/tuthub/tuthub/internal/model"
	"github.com/tuthub/tuthub/internal/tutor"
)

const AddWord = "add"

const AddUsage = AddWord + ": Adds a tutor to Tuthub. " +
	"Parameters: n/NAME p/PHONE e/EMAIL m/MODULE y/YEAR s/STUDENT ID [tn/TEACHING NOMINATIONS] [t/TAG]...\n" +
	"Example: " + AddWord + " n/John Doe p/98765432 e/johnd@example.com m/CS2100 y/3 s/A1234567X t/friends"

const MessageAddSuccess = "New tutor added: %s"

// AddCommand appends a new tutor.
type AddCommand struct {
	toAdd tutor.Tutor
}

func NewAddCommand(t tutor.Tutor) *AddCommand {
	return &AddCommand{toAdd: t}
}

func (c *AddCommand) Execute(m model.Model) (Result, error) {
	if m.HasTutor(c.toAdd) {
		return Result{}, apperrors.New(apperrors.ErrDuplicateTutor, "command.Add", model.MessageDuplicateTutor)
	}
	if err := m.AddTutor(c.toAdd); err != nil {
		return Result{}, err
	}
	return Result{Feedback: fmt.Sprintf(MessageAddSuccess, c.toAdd), Mutated: true}, nil
}
