// Package types holds the plain data structures shared by the storage
// backends and the HTTP layer. Keeping them here lets both import the same
// shape without depending on each other.
package types

import (
	"fmt"

	"github.com/tuthub/tuthub/internal/tutor"
)

// Tutor is the stored and wire form of a tutor.Tutor: every field is a
// plain string so it encodes to JSON and YAML without custom marshalers.
//
// Struct tags:
//
//  1. json:"..." / yaml:"..." control the key names in each encoding.
//  2. validate:"..." are checked by the shared validator from package
//     tutor, so the custom studentid and modulecode rules are available.
//
// Index is only filled in for HTTP responses, where it is the one-based
// position in the displayed list.
type Tutor struct {
	Index      int      `json:"index,omitempty" yaml:"-"`
	Name       string   `json:"name"                yaml:"name"                validate:"required"`
	Phone      string   `json:"phone"               yaml:"phone"               validate:"required"`
	Email      string   `json:"email"               yaml:"email"               validate:"required"`
	Module     string   `json:"module"              yaml:"module"              validate:"required,modulecode"`
	Year       string   `json:"year"                yaml:"year"                validate:"required"`
	StudentID  string   `json:"student_id"          yaml:"student_id"          validate:"required,studentid"`
	Comment    string   `json:"comment,omitempty"   yaml:"comment,omitempty"`
	Nomination string   `json:"teaching_nominations" yaml:"teaching_nominations" validate:"required"`
	Tags       []string `json:"tags"                yaml:"tags,omitempty"`
}

// FromTutor flattens t.
func FromTutor(t tutor.Tutor) Tutor {
	raw := make([]string, 0, len(t.Tags()))
	for _, tag := range t.Tags() {
		raw = append(raw, tag.String())
	}
	return Tutor{
		Name:       t.Name().String(),
		Phone:      t.Phone().String(),
		Email:      t.Email().String(),
		Module:     t.Module().String(),
		Year:       t.Year().String(),
		StudentID:  t.StudentID().String(),
		Comment:    t.Comment().String(),
		Nomination: t.Nomination().String(),
		Tags:       raw,
	}
}

// FromTutors flattens a list, numbering entries from one.
func FromTutors(tutors []tutor.Tutor) []Tutor {
	out := make([]Tutor, 0, len(tutors))
	for i, t := range tutors {
		dto := FromTutor(t)
		dto.Index = i + 1
		out = append(out, dto)
	}
	return out
}

// ToTutor rebuilds the tutor through the value-object constructors, so a
// stored record that breaks any field rule is rejected.
func (s Tutor) ToTutor() (tutor.Tutor, error) {
	if err := tutor.Validator().Struct(s); err != nil {
		return tutor.Tutor{}, fmt.Errorf("ToTutor: validate %q: %w", s.StudentID, err)
	}

	var (
		d   tutor.Details
		err error
	)
	if d.Name, err = tutor.NewName(s.Name); err != nil {
		return tutor.Tutor{}, fmt.Errorf("ToTutor: name: %w", err)
	}
	if d.Phone, err = tutor.NewPhone(s.Phone); err != nil {
		return tutor.Tutor{}, fmt.Errorf("ToTutor: phone: %w", err)
	}
	if d.Email, err = tutor.NewEmail(s.Email); err != nil {
		return tutor.Tutor{}, fmt.Errorf("ToTutor: email: %w", err)
	}
	if d.Module, err = tutor.NewModule(s.Module); err != nil {
		return tutor.Tutor{}, fmt.Errorf("ToTutor: module: %w", err)
	}
	if d.Year, err = tutor.NewYear(s.Year); err != nil {
		return tutor.Tutor{}, fmt.Errorf("ToTutor: year: %w", err)
	}
	if d.StudentID, err = tutor.NewStudentID(s.StudentID); err != nil {
		return tutor.Tutor{}, fmt.Errorf("ToTutor: student id: %w", err)
	}
	if d.Comment, err = tutor.NewComment(s.Comment); err != nil {
		return tutor.Tutor{}, fmt.Errorf("ToTutor: comment: %w", err)
	}
	if d.Nomination, err = tutor.NewTeachingNomination(s.Nomination); err != nil {
		return tutor.Tutor{}, fmt.Errorf("ToTutor: teaching nominations: %w", err)
	}
	for _, raw := range s.Tags {
		tag, err := tutor.NewTag(raw)
		if err != nil {
			return tutor.Tutor{}, fmt.Errorf("ToTutor: tag: %w", err)
		}
		d.Tags = append(d.Tags, tag)
	}
	t, err := tutor.New(d)
	if err != nil {
		return tutor.Tutor{}, fmt.Errorf("ToTutor: %w", err)
	}
	return t, nil
}

// ToTutors converts every record, stopping at the first bad one.
func ToTutors(records []Tutor) ([]tutor.Tutor, error) {
	out := make([]tutor.Tutor, 0, len(records))
	for i, r := range records {
		t, err := r.ToTutor()
		if err != nil {
			return nil, fmt.Errorf("ToTutors: record %d: %w", i+1, err)
		}
		out = append(out, t)
	}
	return out, nil
}
