package tutor

import (
	"strconv"
	"strings"
)

// Constraint messages.
const (
	NameConstraints       = "Names should only contain alphanumeric characters and spaces, and it should not be blank"
	PhoneConstraints      = "Phone numbers should only contain numbers, and it should be between 3 and 15 digits long"
	EmailConstraints      = "Emails should be of the format local-part@domain and adhere to the usual constraints"
	ModuleConstraints     = "Modules should start with 2-3 letters, followed by 4 digits and an optional letter"
	YearConstraints       = "Year should be a single number from 1 to 6"
	NominationConstraints = "Teaching nominations should be a non-negative whole number of at most 3 digits"
	CommentConstraints    = "Comments should be at most 500 characters long"
	TagConstraints        = "Tags names should be alphanumeric"
)

// One validator tag per field type.
const (
	nameTag       = "required,max=100,tutorname"
	phoneTag      = "required,number,min=3,max=15"
	emailTag      = "required,max=254,email"
	moduleTag     = "required,modulecode"
	yearTag       = "required,oneof=1 2 3 4 5 6"
	nominationTag = "required,number,max=3"
	commentTag    = "max=500"
	tagTag        = "required,alphanum"
)

// ── Name ───────────────────────────────────────────────────────────────────

// Name is a tutor's full name.
type Name struct {
	value string
}

// NewName validates raw and wraps it.
func NewName(raw string) (Name, error) {
	if !IsValidName(raw) {
		return Name{}, constraint("tutor.NewName", NameConstraints)
	}
	return Name{value: raw}, nil
}

// IsValidName reports whether raw is a non-blank run of letters, digits
// and spaces that does not start with a space.
func IsValidName(raw string) bool {
	return matches(raw, nameTag)
}

func (n Name) String() string { return n.value }

// ── Phone ──────────────────────────────────────────────────────────────────

// Phone is a contact number made of digits only.
type Phone struct {
	value string
}

// NewPhone validates raw and wraps it.
func NewPhone(raw string) (Phone, error) {
	if !IsValidPhone(raw) {
		return Phone{}, constraint("tutor.NewPhone", PhoneConstraints)
	}
	return Phone{value: raw}, nil
}

// IsValidPhone reports whether raw is 3 to 15 digits.
func IsValidPhone(raw string) bool {
	return matches(raw, phoneTag)
}

func (p Phone) String() string { return p.value }

// ── Email ──────────────────────────────────────────────────────────────────

// Email is a contact address.
type Email struct {
	value string
}

// NewEmail validates raw and wraps it.
func NewEmail(raw string) (Email, error) {
	if !IsValidEmail(raw) {
		return Email{}, constraint("tutor.NewEmail", EmailConstraints)
	}
	return Email{value: raw}, nil
}

// IsValidEmail reports whether raw is a syntactically valid address.
func IsValidEmail(raw string) bool {
	return matches(raw, emailTag)
}

func (e Email) String() string { return e.value }

// ── Module ─────────────────────────────────────────────────────────────────

// Module is the code of the module a tutor applies for, e.g. CS2103T.
type Module struct {
	value string
}

// NewModule validates raw and wraps it.
func NewModule(raw string) (Module, error) {
	if !IsValidModule(raw) {
		return Module{}, constraint("tutor.NewModule", ModuleConstraints)
	}
	return Module{value: raw}, nil
}

// IsValidModule reports whether raw looks like a module code.
func IsValidModule(raw string) bool {
	return matches(raw, moduleTag)
}

// Contains reports whether keyword occurs in the module code, ignoring case.
func (m Module) Contains(keyword string) bool {
	return strings.Contains(strings.ToLower(m.value), strings.ToLower(keyword))
}

func (m Module) String() string { return m.value }

// ── Year ───────────────────────────────────────────────────────────────────

// Year is the tutor's year of study.
type Year struct {
	value string
}

// NewYear validates raw and wraps it.
func NewYear(raw string) (Year, error) {
	if !IsValidYear(raw) {
		return Year{}, constraint("tutor.NewYear", YearConstraints)
	}
	return Year{value: raw}, nil
}

// IsValidYear reports whether raw is one of "1".."6".
func IsValidYear(raw string) bool {
	return matches(raw, yearTag)
}

// Int returns the numeric year, 0 for the zero Year.
func (y Year) Int() int {
	n, _ := strconv.Atoi(y.value)
	return n
}

func (y Year) String() string { return y.value }

// ── TeachingNomination ─────────────────────────────────────────────────────

// TeachingNomination counts the teaching award nominations a tutor has
// received.
type TeachingNomination struct {
	value string
}

// NewTeachingNomination validates raw and wraps it.
func NewTeachingNomination(raw string) (TeachingNomination, error) {
	if !IsValidTeachingNomination(raw) {
		return TeachingNomination{}, constraint("tutor.NewTeachingNomination", NominationConstraints)
	}
	return TeachingNomination{value: raw}, nil
}

// IsValidTeachingNomination reports whether raw is 1 to 3 digits.
func IsValidTeachingNomination(raw string) bool {
	return matches(raw, nominationTag)
}

// Int returns the nomination count.
func (t TeachingNomination) Int() int {
	n, _ := strconv.Atoi(t.value)
	return n
}

func (t TeachingNomination) String() string { return t.value }

// ── Comment ────────────────────────────────────────────────────────────────

// Comment is free-form text about a tutor. The empty Comment means no
// comment has been recorded.
type Comment struct {
	value string
}

// NewComment validates raw and wraps it.
func NewComment(raw string) (Comment, error) {
	if !IsValidComment(raw) {
		return Comment{}, constraint("tutor.NewComment", CommentConstraints)
	}
	return Comment{value: raw}, nil
}

// IsValidComment reports whether raw fits in a comment.
func IsValidComment(raw string) bool {
	return matches(raw, commentTag)
}

// IsEmpty reports whether no comment is recorded.
func (c Comment) IsEmpty() bool { return c.value == "" }

func (c Comment) String() string { return c.value }

// ── Tag ────────────────────────────────────────────────────────────────────

// Tag is a single-word label.
type Tag struct {
	value string
}

// NewTag validates raw and wraps it.
func NewTag(raw string) (Tag, error) {
	if !IsValidTag(raw) {
		return Tag{}, constraint("tutor.NewTag", TagConstraints)
	}
	return Tag{value: raw}, nil
}

// IsValidTag reports whether raw is a non-empty ASCII alphanumeric word.
func IsValidTag(raw string) bool {
	return matches(raw, tagTag)
}

func (t Tag) String() string { return t.value }
