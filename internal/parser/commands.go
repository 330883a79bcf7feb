package parser

import (
	"errors"
	"strings"

	"github.com/tuthub/tuthub/internal/apperrors"
	"github.com/tuthub/tuthub/internal/command"
	"github.com/tuthub/tuthub/internal/tutor"
)

const defaultNomination = "0"

func parseAdd(args string) (command.Command, error) {
	const op = "parser.Add"

	am := Tokenize(args, PrefixName, PrefixPhone, PrefixEmail, PrefixModule, PrefixYear,
		PrefixStudentID, PrefixNomination, PrefixTag)
	if am.Preamble() != "" {
		return nil, invalidFormat(op, command.AddUsage)
	}
	for _, p := range []Prefix{PrefixName, PrefixPhone, PrefixEmail, PrefixModule, PrefixYear, PrefixStudentID} {
		if !am.Has(p) {
			return nil, invalidFormat(op, command.AddUsage)
		}
	}

	var (
		d   tutor.Details
		err error
	)
	raw := func(p Prefix) string {
		v, _ := am.Value(p)
		return v
	}
	if d.Name, err = tutor.NewName(raw(PrefixName)); err != nil {
		return nil, err
	}
	if d.Phone, err = tutor.NewPhone(raw(PrefixPhone)); err != nil {
		return nil, err
	}
	if d.Email, err = tutor.NewEmail(raw(PrefixEmail)); err != nil {
		return nil, err
	}
	if d.Module, err = tutor.NewModule(raw(PrefixModule)); err != nil {
		return nil, err
	}
	if d.Year, err = tutor.NewYear(raw(PrefixYear)); err != nil {
		return nil, err
	}
	if d.StudentID, err = tutor.NewStudentID(raw(PrefixStudentID)); err != nil {
		return nil, err
	}

	nomination := defaultNomination
	if v, ok := am.Value(PrefixNomination); ok {
		nomination = v
	}
	if d.Nomination, err = tutor.NewTeachingNomination(nomination); err != nil {
		return nil, err
	}
	if d.Tags, err = parseTags(am.AllValues(PrefixTag)); err != nil {
		return nil, err
	}

	t, err := tutor.New(d)
	if err != nil {
		return nil, err
	}
	return command.NewAddCommand(t), nil
}

func parseEdit(args string) (command.Command, error) {
	const op = "parser.Edit"

	am := Tokenize(args, PrefixName, PrefixPhone, PrefixEmail, PrefixModule, PrefixYear,
		PrefixStudentID, PrefixNomination, PrefixTag)
	index, err := ParseIndex(am.Preamble())
	if err != nil {
		return nil, invalidFormat(op, command.EditUsage)
	}

	d := &command.EditTutorDescriptor{}
	if err := stageFields(am, d); err != nil {
		return nil, err
	}

	if am.Has(PrefixTag) {
		tags, err := parseTagsForEdit(am.AllValues(PrefixTag))
		if err != nil {
			return nil, err
		}
		d.SetTags(tags)
	}

	if !d.IsAnyFieldEdited() {
		return nil, apperrors.New(apperrors.ErrNoFieldsEdited, op, command.MessageNotEdited)
	}
	return command.NewEditCommand(index, d)
}

// stageFields copies every single-valued field present in am into d.
func stageFields(am ArgumentMultimap, d *command.EditTutorDescriptor) error {
	name, err := parseOptional(am, PrefixName, tutor.NewName)
	if err != nil {
		return err
	}
	phone, err := parseOptional(am, PrefixPhone, tutor.NewPhone)
	if err != nil {
		return err
	}
	email, err := parseOptional(am, PrefixEmail, tutor.NewEmail)
	if err != nil {
		return err
	}
	module, err := parseOptional(am, PrefixModule, tutor.NewModule)
	if err != nil {
		return err
	}
	year, err := parseOptional(am, PrefixYear, tutor.NewYear)
	if err != nil {
		return err
	}
	id, err := parseOptional(am, PrefixStudentID, tutor.NewStudentID)
	if err != nil {
		return err
	}
	nomination, err := parseOptional(am, PrefixNomination, tutor.NewTeachingNomination)
	if err != nil {
		return err
	}

	d.SetName(name)
	d.SetPhone(phone)
	d.SetEmail(email)
	d.SetModule(module)
	d.SetYear(year)
	d.SetStudentID(id)
	d.SetNomination(nomination)
	return nil
}

// parseTagsForEdit treats a lone empty "t/" as "remove every tag".
func parseTagsForEdit(raws []string) ([]tutor.Tag, error) {
	if len(raws) == 1 && raws[0] == "" {
		return []tutor.Tag{}, nil
	}
	return parseTags(raws)
}

func parseDelete(args string) (command.Command, error) {
	index, err := ParseIndex(args)
	if err != nil {
		return nil, invalidFormat("parser.Delete", command.DeleteUsage)
	}
	return command.NewDeleteCommand(index), nil
}

func parseComment(args string) (command.Command, error) {
	const op = "parser.Comment"

	am := Tokenize(args, PrefixComment)
	index, err := ParseIndex(am.Preamble())
	if err != nil || !am.Has(PrefixComment) {
		return nil, invalidFormat(op, command.CommentUsage)
	}

	raw, _ := am.Value(PrefixComment)
	comment, err := tutor.NewComment(raw)
	if err != nil {
		return nil, err
	}
	return command.NewCommentCommand(index, comment), nil
}

func parseFind(args string) (command.Command, error) {
	keywords := strings.Fields(args)
	if len(keywords) == 0 {
		return nil, invalidFormat("parser.Find", command.FindUsage)
	}
	return command.NewFindCommand(command.NameContainsKeywords{Keywords: keywords}), nil
}

func parseFindByModule(args string) (command.Command, error) {
	keywords := strings.Fields(args)
	if len(keywords) == 0 {
		return nil, invalidFormat("parser.FindByModule", command.FindByModuleUsage)
	}
	return command.NewFindCommand(command.ModuleContainsKeyword{Keywords: keywords}), nil
}

var errBadSort = errors.New("sort needs a or d and exactly one empty tn/ or y/")

func parseSort(args string) (command.Command, error) {
	key, descending, err := sortOptions(args)
	if err != nil {
		return nil, invalidFormat("parser.Sort", command.SortUsage)
	}
	return command.NewSortCommand(key, descending), nil
}

func sortOptions(args string) (command.SortKey, bool, error) {
	am := Tokenize(args, PrefixNomination, PrefixYear)

	var descending bool
	switch am.Preamble() {
	case "a":
	case "d":
		descending = true
	default:
		return "", false, errBadSort
	}

	byNomination, byYear := am.Has(PrefixNomination), am.Has(PrefixYear)
	if byNomination == byYear {
		return "", false, errBadSort
	}
	key, prefix := command.SortByYear, PrefixYear
	if byNomination {
		key, prefix = command.SortByNomination, PrefixNomination
	}
	if vs := am.AllValues(prefix); len(vs) != 1 || vs[0] != "" {
		return "", false, errBadSort
	}
	return key, descending, nil
}
