package command

import (
	"strings"

	"github.com/tuthub/tuthub/internal/model"
)

const (
	ListWord  = "list"
	ClearWord = "clear"
	HelpWord  = "help"
	ExitWord  = "exit"
)

const (
	ListUsage  = ListWord + ": Lists all tutors."
	ClearUsage = ClearWord + ": Removes every tutor from Tuthub."
	HelpUsage  = HelpWord + ": Shows the usage of every command."
	ExitUsage  = ExitWord + ": Exits Tuthub."
)

const (
	MessageListSuccess  = "Listed all tutors"
	MessageClearSuccess = "Tuthub has been cleared!"
	MessageExit         = "Exiting Tuthub as requested ..."
)

// ListCommand shows every tutor.
type ListCommand struct{}

func (ListCommand) Execute(m model.Model) (Result, error) {
	m.UpdateFilter(model.ShowAll)
	return Result{Feedback: MessageListSuccess}, nil
}

// ClearCommand empties the collection.
type ClearCommand struct{}

func (ClearCommand) Execute(m model.Model) (Result, error) {
	if err := m.ResetTutors(nil); err != nil {
		return Result{}, err
	}
	m.UpdateFilter(model.ShowAll)
	return Result{Feedback: MessageClearSuccess, Mutated: true}, nil
}

// HelpCommand lists the usage of every command.
type HelpCommand struct{}

func (HelpCommand) Execute(model.Model) (Result, error) {
	return Result{Feedback: strings.Join(Usages(), "\n\n"), ShowHelp: true}, nil
}

// ExitCommand ends the session.
type ExitCommand struct{}

func (ExitCommand) Execute(model.Model) (Result, error) {
	return Result{Feedback: MessageExit, Exit: true}, nil
}

// Usages returns the usage text of every command in display order.
func Usages() []string {
	return []string{
		AddUsage, EditUsage, CommentUsage, DeleteUsage, FindUsage, FindByModuleUsage,
		ListUsage, SortUsage, ClearUsage, HelpUsage, ExitUsage,
	}
}
