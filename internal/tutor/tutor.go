// Package tutor holds the tutor record and the value objects it is made of.
//
// Every value object (Name, Phone, StudentID, ...) wraps one unexported
// payload. The only way to build a non-zero one is its NewX constructor,
// which runs the type's single validation rule. Value objects are
// comparable with == and usable as map keys.
//
// Tutor is immutable: there are no setters, and the tag set is copied on
// the way in and on the way out. An edit builds a fresh Tutor.
package tutor

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tuthub/tuthub/internal/apperrors"
)

// Details is the plain bundle of fields a Tutor is built from.
type Details struct {
	Name       Name
	Phone      Phone
	Email      Email
	Module     Module
	Year       Year
	StudentID  StudentID
	Comment    Comment
	Nomination TeachingNomination
	Tags       []Tag
}

// Tutor is one tutor candidate tracked by tuthub.
type Tutor struct {
	name       Name
	phone      Phone
	email      Email
	module     Module
	year       Year
	studentID  StudentID
	comment    Comment
	nomination TeachingNomination
	tags       map[Tag]struct{}
}

// MessageMissingField reports a required field left at its zero value.
const MessageMissingField = "A tutor must have a %s"

// New builds a Tutor from d. Duplicate tags collapse into one.
//
// Every field except the comment and the tags must hold a value made by
// its constructor; a zero value object is rejected with
// apperrors.ErrConstraintViolation, and so is a zero Tag.
func New(d Details) (Tutor, error) {
	if field, ok := missingField(d); ok {
		return Tutor{}, apperrors.New(apperrors.ErrConstraintViolation, "tutor.New",
			fmt.Sprintf(MessageMissingField, field))
	}

	tags := make(map[Tag]struct{}, len(d.Tags))
	for _, tag := range d.Tags {
		tags[tag] = struct{}{}
	}
	return Tutor{
		name:       d.Name,
		phone:      d.Phone,
		email:      d.Email,
		module:     d.Module,
		year:       d.Year,
		studentID:  d.StudentID,
		comment:    d.Comment,
		nomination: d.Nomination,
		tags:       tags,
	}, nil
}

// missingField names the first required field of d that is unset.
func missingField(d Details) (string, bool) {
	switch {
	case d.Name == (Name{}):
		return "name", true
	case d.Phone == (Phone{}):
		return "phone", true
	case d.Email == (Email{}):
		return "email", true
	case d.Module == (Module{}):
		return "module", true
	case d.Year == (Year{}):
		return "year", true
	case d.StudentID == (StudentID{}):
		return "student ID", true
	case d.Nomination == (TeachingNomination{}):
		return "teaching nomination count", true
	}
	for _, tag := range d.Tags {
		if tag == (Tag{}) {
			return "name for every tag", true
		}
	}
	return "", false
}

// IsComplete reports whether t was built by New. The zero Tutor is not.
func (t Tutor) IsComplete() bool {
	_, missing := missingField(t.Details())
	return !missing
}

func (t Tutor) Name() Name                     { return t.name }
func (t Tutor) Phone() Phone                   { return t.phone }
func (t Tutor) Email() Email                   { return t.email }
func (t Tutor) Module() Module                 { return t.module }
func (t Tutor) Year() Year                     { return t.year }
func (t Tutor) StudentID() StudentID           { return t.studentID }
func (t Tutor) Comment() Comment               { return t.comment }
func (t Tutor) Nomination() TeachingNomination { return t.nomination }

// Tags returns the tag set sorted by name. The slice is a fresh copy.
func (t Tutor) Tags() []Tag {
	tags := make([]Tag, 0, len(t.tags))
	for tag := range t.tags {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].value < tags[j].value })
	return tags
}

// HasTag reports whether the tutor carries tag.
func (t Tutor) HasTag(tag Tag) bool {
	_, ok := t.tags[tag]
	return ok
}

// Details returns a copy of the tutor's fields.
func (t Tutor) Details() Details {
	return Details{
		Name:       t.name,
		Phone:      t.phone,
		Email:      t.email,
		Module:     t.module,
		Year:       t.year,
		StudentID:  t.studentID,
		Comment:    t.comment,
		Nomination: t.nomination,
		Tags:       t.Tags(),
	}
}

// IsSameTutor reports whether t and other are the same person, which is
// decided by student ID alone. It is weaker than Equal and drives
// duplicate detection.
func (t Tutor) IsSameTutor(other Tutor) bool {
	return t.studentID == other.studentID
}

// Equal reports whether every field and the tag set match.
func (t Tutor) Equal(other Tutor) bool {
	if t.name != other.name ||
		t.phone != other.phone ||
		t.email != other.email ||
		t.module != other.module ||
		t.year != other.year ||
		t.studentID != other.studentID ||
		t.comment != other.comment ||
		t.nomination != other.nomination ||
		len(t.tags) != len(other.tags) {
		return false
	}
	for tag := range t.tags {
		if _, ok := other.tags[tag]; !ok {
			return false
		}
	}
	return true
}

func (t Tutor) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s; Phone: %s; Email: %s; Module: %s; Year: %s; Student ID: %s; Teaching Nominations: %s",
		t.name, t.phone, t.email, t.module, t.year, t.studentID, t.nomination)
	if !t.comment.IsEmpty() {
		fmt.Fprintf(&b, "; Comment: %s", t.comment)
	}
	if len(t.tags) > 0 {
		b.WriteString("; Tags: ")
		for _, tag := range t.Tags() {
			fmt.Fprintf(&b, "[%s]", tag)
		}
	}
	return b.String()
}
