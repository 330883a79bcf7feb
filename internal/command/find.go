package command

import (
	"fmt"
	"slices"
	"strings"

	"github.com/tuthub/tuthub/internal/model"
	"github.com/tuthub/tuthub/internal/tutor"
)

const (
	FindWord         = "find"
	FindByModuleWord = "findmodule"
)

const FindUsage = FindWord + ": Finds all tutors whose names contain any of the specified keywords " +
	"(case-insensitive) and displays them as a list with index numbers.\n" +
	"Parameters: KEYWORD [MORE_KEYWORDS]...\n" +
	"Example: " + FindWord + " alice bob charlie"

const FindByModuleUsage = FindByModuleWord + ": Finds all tutors whose module contains any of the specified " +
	"keywords (case-insensitive) and displays them as a list with index numbers.\n" +
	"Parameters: KEYWORD [MORE_KEYWORDS]...\n" +
	"Example: " + FindByModuleWord + " cs2100 cs2105"

// NameContainsKeywords matches tutors with a name word equal to any
// keyword, ignoring case.
type NameContainsKeywords struct {
	Keywords []string
}

func (p NameContainsKeywords) Matches(t tutor.Tutor) bool {
	words := strings.Fields(t.Name().String())
	return slices.ContainsFunc(p.Keywords, func(keyword string) bool {
		return slices.ContainsFunc(words, func(word string) bool {
			return strings.EqualFold(word, keyword)
		})
	})
}

// ModuleContainsKeyword matches tutors whose module contains any keyword,
// ignoring case.
type ModuleContainsKeyword struct {
	Keywords []string
}

func (p ModuleContainsKeyword) Matches(t tutor.Tutor) bool {
	return slices.ContainsFunc(p.Keywords, t.Module().Contains)
}

// Matcher is a named, comparable filter.
type Matcher interface {
	Matches(t tutor.Tutor) bool
}

// FindCommand narrows the displayed list.
type FindCommand struct {
	matcher Matcher
}

func NewFindCommand(matcher Matcher) *FindCommand {
	return &FindCommand{matcher: matcher}
}

func (c *FindCommand) Execute(m model.Model) (Result, error) {
	m.UpdateFilter(c.matcher.Matches)
	return Result{Feedback: fmt.Sprintf(MessageTutorsListed, len(m.FilteredTutors()))}, nil
}
