package command

import (
	"cmp"
	"fmt"

	"github.com/tuthub/tuthub/internal/model"
	"github.com/tuthub/tuthub/internal/tutor"
)

const SortWord = "sort"

const SortUsage = SortWord + ": Sorts the tutor list by teaching nominations or year, in ascending (a) " +
	"or descending (d) order.\n" +
	"Parameters: ORDER (a or d) tn/ or y/\n" +
	"Example: " + SortWord + " d tn/"

const MessageSortSuccess = "Sorted tutors by %s in %s order"

// SortKey names the field tutors are ordered by.
type SortKey string

const (
	SortByNomination SortKey = "teaching nominations"
	SortByYear       SortKey = "year"
)

// SortCommand reorders the whole collection. The sort is stable, so
// tutors with equal keys keep their relative order.
type SortCommand struct {
	key        SortKey
	descending bool
}

func NewSortCommand(key SortKey, descending bool) *SortCommand {
	return &SortCommand{key: key, descending: descending}
}

func (c *SortCommand) Execute(m model.Model) (Result, error) {
	value := func(t tutor.Tutor) int { return t.Nomination().Int() }
	if c.key == SortByYear {
		value = func(t tutor.Tutor) int { return t.Year().Int() }
	}

	order := "ascending"
	compare := func(a, b tutor.Tutor) int { return cmp.Compare(value(a), value(b)) }
	if c.descending {
		order = "descending"
		compare = func(a, b tutor.Tutor) int { return cmp.Compare(value(b), value(a)) }
	}

	m.SortTutors(compare)
	m.UpdateFilter(model.ShowAll)
	return Result{Feedback: fmt.Sprintf(MessageSortSuccess, c.key, order), Mutated: true}, nil
}
