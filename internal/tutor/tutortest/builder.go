// Package tutortest builds tutors for tests.
package tutortest

import (
	"github.com/tuthub/tuthub/internal/tutor"
)

// Default field values used by NewBuilder.
const (
	DefaultName       = "Amy Bee"
	DefaultPhone      = "85355255"
	DefaultEmail      = "amy@gmail.com"
	DefaultModule     = "CS2100"
	DefaultYear       = "3"
	DefaultStudentID  = "A1234567X"
	DefaultNomination = "0"
)

// Builder accumulates raw field values and panics on Build if any of them
// is invalid: a bad fixture is a broken test, not a runtime condition.
type Builder struct {
	name, phone, email, module, year, studentID, comment, nomination string
	tags                                                             []string
}

// NewBuilder starts from the default tutor.
func NewBuilder() *Builder {
	return &Builder{
		name:       DefaultName,
		phone:      DefaultPhone,
		email:      DefaultEmail,
		module:     DefaultModule,
		year:       DefaultYear,
		studentID:  DefaultStudentID,
		nomination: DefaultNomination,
	}
}

// From starts from an existing tutor.
func From(t tutor.Tutor) *Builder {
	b := &Builder{
		name:       t.Name().String(),
		phone:      t.Phone().String(),
		email:      t.Email().String(),
		module:     t.Module().String(),
		year:       t.Year().String(),
		studentID:  t.StudentID().String(),
		comment:    t.Comment().String(),
		nomination: t.Nomination().String(),
	}
	for _, tag := range t.Tags() {
		b.tags = append(b.tags, tag.String())
	}
	return b
}

func (b *Builder) WithName(v string) *Builder       { b.name = v; return b }
func (b *Builder) WithPhone(v string) *Builder      { b.phone = v; return b }
func (b *Builder) WithEmail(v string) *Builder      { b.email = v; return b }
func (b *Builder) WithModule(v string) *Builder     { b.module = v; return b }
func (b *Builder) WithYear(v string) *Builder       { b.year = v; return b }
func (b *Builder) WithStudentID(v string) *Builder  { b.studentID = v; return b }
func (b *Builder) WithComment(v string) *Builder    { b.comment = v; return b }
func (b *Builder) WithNomination(v string) *Builder { b.nomination = v; return b }

// WithTags replaces the tag list.
func (b *Builder) WithTags(tags ...string) *Builder {
	b.tags = append([]string(nil), tags...)
	return b
}

// Build constructs the tutor.
func (b *Builder) Build() tutor.Tutor {
	d := tutor.Details{
		Name:       must(tutor.NewName(b.name)),
		Phone:      must(tutor.NewPhone(b.phone)),
		Email:      must(tutor.NewEmail(b.email)),
		Module:     must(tutor.NewModule(b.module)),
		Year:       must(tutor.NewYear(b.year)),
		StudentID:  must(tutor.NewStudentID(b.studentID)),
		Comment:    must(tutor.NewComment(b.comment)),
		Nomination: must(tutor.NewTeachingNomination(b.nomination)),
	}
	for _, raw := range b.tags {
		d.Tags = append(d.Tags, must(tutor.NewTag(raw)))
	}
	return must(tutor.New(d))
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Sample tutors.
func Alice() tutor.Tutor {
	return NewBuilder().WithName("Alice Pauline").WithPhone("94351253").
		WithEmail("alice@example.com").WithModule("CS2103T").WithYear("3").
		WithStudentID("A0000001A").WithNomination("1").WithTags("friends").Build()
}

func Benson() tutor.Tutor {
	return NewBuilder().WithName("Benson Meier").WithPhone("98765432").
		WithEmail("johnd@example.com").WithModule("CS2100").WithYear("2").
		WithStudentID("A0000002B").WithNomination("3").WithComment("Great at explaining").
		WithTags("owesMoney", "friends").Build()
}

func Carl() tutor.Tutor {
	return NewBuilder().WithName("Carl Kurz").WithPhone("95352563").
		WithEmail("heinz@example.com").WithModule("CS1101S").WithYear("4").
		WithStudentID("A0000003C").WithNomination("0").Build()
}

func Daniel() tutor.Tutor {
	return NewBuilder().WithName("Daniel Meier").WithPhone("87652533").
		WithEmail("cornelia@example.com").WithModule("MA1521").WithYear("1").
		WithStudentID("A0000004D").WithNomination("2").WithTags("friends").Build()
}

// Typical returns the sample tutors in a fixed order.
func Typical() []tutor.Tutor {
	return []tutor.Tutor{Alice(), Benson(), Carl(), Daniel()}
}
