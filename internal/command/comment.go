package command

import (
	"fmt"

	"github.com/tuthub/tuthub/internal/model"
	"github.com/tuthub/tuthub/internal/tutor"
)

const CommentWord = "comment"

const CommentUsage = CommentWord + ": Replaces the comment of the tutor identified by the index number used in " +
	"the displayed tutor list. An empty comment removes it.\n" +
	"Parameters: INDEX (must be a positive integer) c/COMMENT\n" +
	"Example: " + CommentWord + " 1 c/Punctual and well prepared"

const (
	MessageAddCommentSuccess    = "Added comment to Tutor: %s"
	MessageDeleteCommentSuccess = "Removed comment from Tutor: %s"
)

// CommentCommand sets the comment of a displayed tutor. It is the only
// command that changes a comment.
type CommentCommand struct {
	index   Index
	comment tutor.Comment
}

func NewCommentCommand(index Index, comment tutor.Comment) *CommentCommand {
	return &CommentCommand{index: index, comment: comment}
}

func (c *CommentCommand) Execute(m model.Model) (Result, error) {
	target, err := resolve(m, c.index, "command.Comment")
	if err != nil {
		return Result{}, err
	}

	details := target.Details()
	details.Comment = c.comment
	edited, err := tutor.New(details)
	if err != nil {
		return Result{}, err
	}

	if err := m.SetTutor(target, edited); err != nil {
		return Result{}, err
	}
	m.UpdateFilter(model.ShowAll)

	message := MessageAddCommentSuccess
	if c.comment.IsEmpty() {
		message = MessageDeleteCommentSuccess
	}
	return Result{Feedback: fmt.Sprintf(message, edited), Mutated: true}, nil
}
