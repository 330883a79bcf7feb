package command

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuthub/tuthub/internal/apperrors"
	"github.com/tuthub/tuthub/internal/tutor"
	"github.com/tuthub/tuthub/internal/tutor/tutortest"
)

func mustTag(t *testing.T, raw string) tutor.Tag {
	t.Helper()
	tag, err := tutor.NewTag(raw)
	require.NoError(t, err)
	return tag
}

func mustName(t *testing.T, raw string) *tutor.Name {
	t.Helper()
	name, err := tutor.NewName(raw)
	require.NoError(t, err)
	return &name
}

func mustStudentID(t *testing.T, raw string) *tutor.StudentID {
	t.Helper()
	id, err := tutor.NewStudentID(raw)
	require.NoError(t, err)
	return &id
}

func TestDescriptor_IsAnyFieldEdited(t *testing.T) {
	assert.False(t, (&EditTutorDescriptor{}).IsAnyFieldEdited())

	phone, _ := tutor.NewPhone("91234567")
	email, _ := tutor.NewEmail("x@example.com")
	module, _ := tutor.NewModule("CS2040")
	year, _ := tutor.NewYear("2")
	nomination, _ := tutor.NewTeachingNomination("5")

	setters := map[string]func(d *EditTutorDescriptor){
		"name":       func(d *EditTutorDescriptor) { d.SetName(mustName(t, "Bob")) },
		"phone":      func(d *EditTutorDescriptor) { d.SetPhone(&phone) },
		"email":      func(d *EditTutorDescriptor) { d.SetEmail(&email) },
		"module":     func(d *EditTutorDescriptor) { d.SetModule(&module) },
		"year":       func(d *EditTutorDescriptor) { d.SetYear(&year) },
		"student id": func(d *EditTutorDescriptor) { d.SetStudentID(mustStudentID(t, "A7654321B")) },
		"nomination": func(d *EditTutorDescriptor) { d.SetNomination(&nomination) },
		"tags":       func(d *EditTutorDescriptor) { d.SetTags([]tutor.Tag{}) },
	}
	for field, set := range setters {
		t.Run(field, func(t *testing.T) {
			d := &EditTutorDescriptor{}
			set(d)
			assert.True(t, d.IsAnyFieldEdited())
		})
	}
}

func TestDescriptor_SetNilClearsSlot(t *testing.T) {
	d := &EditTutorDescriptor{}
	d.SetName(mustName(t, "Bob"))
	d.SetTags([]tutor.Tag{mustTag(t, "x")})

	d.SetName(nil)
	d.SetTags(nil)

	_, ok := d.Name()
	assert.False(t, ok)
	_, ok = d.Tags()
	assert.False(t, ok)
	assert.False(t, d.IsAnyFieldEdited())
}

func TestDescriptor_CloneCopiesTags(t *testing.T) {
	original := &EditTutorDescriptor{}
	original.SetName(mustName(t, "Bob"))
	original.SetTags([]tutor.Tag{mustTag(t, "friends")})

	clone := original.Clone()
	assert.True(t, clone.Equal(original))

	clone.SetTags([]tutor.Tag{mustTag(t, "friends"), mustTag(t, "colleague")})
	returned, _ := clone.Tags()
	returned[0] = mustTag(t, "mutated")

	tags, ok := original.Tags()
	require.True(t, ok)
	assert.Equal(t, []tutor.Tag{mustTag(t, "friends")}, tags)
	assert.False(t, clone.Equal(original))
}

func TestDescriptor_SetterCopiesValue(t *testing.T) {
	name := mustName(t, "Bob")
	d := &EditTutorDescriptor{}
	d.SetName(name)

	*name = *mustName(t, "Changed")

	got, ok := d.Name()
	require.True(t, ok)
	assert.Equal(t, "Bob", got.String())
}

func TestDescriptor_Equal(t *testing.T) {
	a := &EditTutorDescriptor{}
	b := &EditTutorDescriptor{}
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(nil))

	// different pointers, same projected value
	a.SetName(mustName(t, "Bob"))
	b.SetName(mustName(t, "Bob"))
	assert.True(t, a.Equal(b))

	// tag order does not matter
	a.SetTags([]tutor.Tag{mustTag(t, "x"), mustTag(t, "y")})
	b.SetTags([]tutor.Tag{mustTag(t, "y"), mustTag(t, "x")})
	assert.True(t, a.Equal(b))

	// empty tag set differs from absent
	a.SetTags([]tutor.Tag{})
	b.SetTags(nil)
	assert.False(t, a.Equal(b))
}

func TestApplyEdits(t *testing.T) {
	benson := tutortest.Benson()

	d := &EditTutorDescriptor{}
	d.SetName(mustName(t, "Benson Tan"))
	d.SetTags([]tutor.Tag{})

	edited, err := ApplyEdits(benson, d)
	require.NoError(t, err)

	expected := tutortest.From(benson).WithName("Benson Tan").WithTags().Build()
	assert.True(t, edited.Equal(expected))
	assert.Equal(t, benson.Comment(), edited.Comment())
	assert.True(t, benson.IsSameTutor(edited))
}

func TestApplyEdits_EmptyDescriptorKeepsTutor(t *testing.T) {
	alice := tutortest.Alice()
	edited, err := ApplyEdits(alice, &EditTutorDescriptor{})
	require.NoError(t, err)
	assert.True(t, edited.Equal(alice))
}

func TestApplyEdits_ZeroValueSlotFails(t *testing.T) {
	d := &EditTutorDescriptor{}
	d.SetName(&tutor.Name{})

	_, err := ApplyEdits(tutortest.Alice(), d)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConstraintViolation))
}
