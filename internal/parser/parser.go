// Package parser turns a line of user input into a command.Command.
//
// Input has the shape
//
//	COMMAND_WORD [PREAMBLE] [PREFIX/VALUE]...
//
// e.g. "edit 2 p/91234567 t/friends". Field values are validated through
// the tutor value-object constructors, so a command never receives an
// invalid value, and an edit without any field is rejected here before an
// EditCommand is built.
package parser

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/tuthub/tuthub/internal/apperrors"
	"github.com/tuthub/tuthub/internal/command"
	"github.com/tuthub/tuthub/internal/tutor"
)

// Messages.
const (
	MessageInvalidCommandFormat = "Invalid command format!\n%s"
	MessageUnknownCommand       = "Unknown command"
)

// Parse reads one line of input.
func Parse(input string) (command.Command, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, invalidFormat("parser.Parse", command.HelpUsage)
	}

	word, args := input, ""
	if i := strings.IndexFunc(input, unicode.IsSpace); i >= 0 {
		word, args = input[:i], strings.TrimSpace(input[i:])
	}

	switch word {
	case command.AddWord:
		return parseAdd(args)
	case command.EditWord:
		return parseEdit(args)
	case command.CommentWord:
		return parseComment(args)
	case command.DeleteWord:
		return parseDelete(args)
	case command.FindWord:
		return parseFind(args)
	case command.FindByModuleWord:
		return parseFindByModule(args)
	case command.SortWord:
		return parseSort(args)
	case command.ListWord:
		return command.ListCommand{}, nil
	case command.ClearWord:
		return command.ClearCommand{}, nil
	case command.HelpWord:
		return command.HelpCommand{}, nil
	case command.ExitWord:
		return command.ExitCommand{}, nil
	default:
		return nil, apperrors.New(apperrors.ErrUnknownCommand, "parser.Parse", MessageUnknownCommand)
	}
}

// ParseIndex reads a one-based index.
func ParseIndex(raw string) (command.Index, error) {
	raw = strings.TrimSpace(raw)
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || strings.HasPrefix(raw, "+") {
		return command.Index{}, apperrors.New(apperrors.ErrInvalidCommand, "parser.ParseIndex", command.MessageInvalidIndex)
	}
	return command.IndexFromOneBased(n)
}

func invalidFormat(op, usage string) error {
	return apperrors.New(apperrors.ErrInvalidCommand, op, fmt.Sprintf(MessageInvalidCommandFormat, usage))
}

// parseTags validates every raw tag.
func parseTags(raws []string) ([]tutor.Tag, error) {
	tags := make([]tutor.Tag, 0, len(raws))
	for _, raw := range raws {
		tag, err := tutor.NewTag(raw)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// parseOptional runs construct on the value for p, if any.
func parseOptional[T any](args ArgumentMultimap, p Prefix, construct func(string) (T, error)) (*T, error) {
	raw, ok := args.Value(p)
	if !ok {
		return nil, nil
	}
	v, err := construct(raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
