package command

import (
	"sort"

	"github.com/tuthub/tuthub/internal/tutor"
)

// EditTutorDescriptor stages the fields an edit should overwrite. Each slot
// is absent (nil) until set; absent slots keep the tutor's current value.
// The zero value edits nothing.
//
// There is no comment slot. Comments change only through CommentCommand.
type EditTutorDescriptor struct {
	name       *tutor.Name
	phone      *tutor.Phone
	email      *tutor.Email
	module     *tutor.Module
	year       *tutor.Year
	studentID  *tutor.StudentID
	nomination *tutor.TeachingNomination
	tags       map[tutor.Tag]struct{}
}

// Clone returns a copy whose tag set is independent of d's.
func (d *EditTutorDescriptor) Clone() *EditTutorDescriptor {
	c := &EditTutorDescriptor{}
	c.SetName(d.name)
	c.SetPhone(d.phone)
	c.SetEmail(d.email)
	c.SetModule(d.module)
	c.SetYear(d.year)
	c.SetStudentID(d.studentID)
	c.SetNomination(d.nomination)
	if tags, ok := d.Tags(); ok {
		c.SetTags(tags)
	}
	return c
}

// IsAnyFieldEdited reports whether at least one slot is set.
func (d *EditTutorDescriptor) IsAnyFieldEdited() bool {
	return d.name != nil || d.phone != nil || d.email != nil || d.module != nil ||
		d.year != nil || d.studentID != nil || d.nomination != nil || d.tags != nil
}

// Setters store a copy of the value; nil clears the slot.

func (d *EditTutorDescriptor) SetName(v *tutor.Name)                     { d.name = clonePtr(v) }
func (d *EditTutorDescriptor) SetPhone(v *tutor.Phone)                   { d.phone = clonePtr(v) }
func (d *EditTutorDescriptor) SetEmail(v *tutor.Email)                   { d.email = clonePtr(v) }
func (d *EditTutorDescriptor) SetModule(v *tutor.Module)                 { d.module = clonePtr(v) }
func (d *EditTutorDescriptor) SetYear(v *tutor.Year)                     { d.year = clonePtr(v) }
func (d *EditTutorDescriptor) SetStudentID(v *tutor.StudentID)           { d.studentID = clonePtr(v) }
func (d *EditTutorDescriptor) SetNomination(v *tutor.TeachingNomination) { d.nomination = clonePtr(v) }

// SetTags replaces the tag slot with a copy of tags. A nil slice clears
// the slot; an empty non-nil slice means "remove every tag".
func (d *EditTutorDescriptor) SetTags(tags []tutor.Tag) {
	if tags == nil {
		d.tags = nil
		return
	}
	d.tags = make(map[tutor.Tag]struct{}, len(tags))
	for _, tag := range tags {
		d.tags[tag] = struct{}{}
	}
}

func (d *EditTutorDescriptor) Name() (tutor.Name, bool)           { return deref(d.name) }
func (d *EditTutorDescriptor) Phone() (tutor.Phone, bool)         { return deref(d.phone) }
func (d *EditTutorDescriptor) Email() (tutor.Email, bool)         { return deref(d.email) }
func (d *EditTutorDescriptor) Module() (tutor.Module, bool)       { return deref(d.module) }
func (d *EditTutorDescriptor) Year() (tutor.Year, bool)           { return deref(d.year) }
func (d *EditTutorDescriptor) StudentID() (tutor.StudentID, bool) { return deref(d.studentID) }
func (d *EditTutorDescriptor) Nomination() (tutor.TeachingNomination, bool) {
	return deref(d.nomination)
}

// Tags returns a sorted copy of the staged tag set.
func (d *EditTutorDescriptor) Tags() ([]tutor.Tag, bool) {
	if d.tags == nil {
		return nil, false
	}
	tags := make([]tutor.Tag, 0, len(d.tags))
	for tag := range d.tags {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].String() < tags[j].String() })
	return tags, true
}

// Equal compares what the getters report, not how the slots are stored.
func (d *EditTutorDescriptor) Equal(other *EditTutorDescriptor) bool {
	if d == other {
		return true
	}
	if d == nil || other == nil {
		return false
	}
	return slotEqual(d.name, other.name) &&
		slotEqual(d.phone, other.phone) &&
		slotEqual(d.email, other.email) &&
		slotEqual(d.module, other.module) &&
		slotEqual(d.year, other.year) &&
		slotEqual(d.studentID, other.studentID) &&
		slotEqual(d.nomination, other.nomination) &&
		tagsEqual(d, other)
}

// ApplyEdits returns target with every set slot of d overlaid. The
// comment always carries over from target. A slot holding a zero value
// object fails like any other incomplete tutor.
func ApplyEdits(target tutor.Tutor, d *EditTutorDescriptor) (tutor.Tutor, error) {
	details := target.Details()
	if v, ok := d.Name(); ok {
		details.Name = v
	}
	if v, ok := d.Phone(); ok {
		details.Phone = v
	}
	if v, ok := d.Email(); ok {
		details.Email = v
	}
	if v, ok := d.Module(); ok {
		details.Module = v
	}
	if v, ok := d.Year(); ok {
		details.Year = v
	}
	if v, ok := d.StudentID(); ok {
		details.StudentID = v
	}
	if v, ok := d.Nomination(); ok {
		details.Nomination = v
	}
	if v, ok := d.Tags(); ok {
		details.Tags = v
	}
	details.Comment = target.Comment()
	return tutor.New(details)
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func deref[T any](v *T) (T, bool) {
	if v == nil {
		var zero T
		return zero, false
	}
	return *v, true
}

func slotEqual[T comparable](a, b *T) bool {
	av, aok := deref(a)
	bv, bok := deref(b)
	return aok == bok && av == bv
}

func tagsEqual(a, b *EditTutorDescriptor) bool {
	at, aok := a.Tags()
	bt, bok := b.Tags()
	if aok != bok || len(at) != len(bt) {
		return false
	}
	for i := range at {
		if at[i] != bt[i] {
			return false
		}
	}
	return true
}
