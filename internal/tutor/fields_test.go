package tutor

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tuthub/tuthub/internal/apperrors"
)

func TestFieldPredicates(t *testing.T) {
	tests := []struct {
		field   string
		isValid func(string) bool
		valid   []string
		invalid []string
	}{
		{
			field:   "name",
			isValid: IsValidName,
			valid:   []string{"peter jack", "12345", "peter the 2nd", "Capital Tan", "David Roger Jackson Ray Jr 2nd"},
			invalid: []string{"", " ", "^", "peter*", " leading space"},
		},
		{
			field:   "phone",
			isValid: IsValidPhone,
			valid:   []string{"911", "93121534", "124293842033123"},
			invalid: []string{"", "91", "phone", "9011p041", "9312 1534", "1242938420331234"},
		},
		{
			field:   "email",
			isValid: IsValidEmail,
			valid:   []string{"PeterJack_1190@example.com", "a@bc.com", "test.user+tag@example.co"},
			invalid: []string{"", "@example.com", "peterjackexample.com", "peterjack@", "peter jack@example.com"},
		},
		{
			field:   "module",
			isValid: IsValidModule,
			valid:   []string{"CS2103T", "cs2100", "MA1521", "GEA1000"},
			invalid: []string{"", "CS210", "C2100", "CSCS2100", "CS2100TT", "2100CS"},
		},
		{
			field:   "year",
			isValid: IsValidYear,
			valid:   []string{"1", "3", "6"},
			invalid: []string{"", "0", "7", "01", "one", "-1"},
		},
		{
			field:   "teaching nomination",
			isValid: IsValidTeachingNomination,
			valid:   []string{"0", "7", "42", "999"},
			invalid: []string{"", "-1", "1000", "1.5", "two"},
		},
		{
			field:   "comment",
			isValid: IsValidComment,
			valid:   []string{"", "Good with juniors", strings.Repeat("x", 500)},
			invalid: []string{strings.Repeat("x", 501)},
		},
		{
			field:   "tag",
			isValid: IsValidTag,
			valid:   []string{"friends", "TA2022", "x"},
			invalid: []string{"", "two words", "no-dash", "#1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			for _, raw := range tt.valid {
				assert.True(t, tt.isValid(raw), "expected %q to be a valid %s", raw, tt.field)
			}
			for _, raw := range tt.invalid {
				assert.False(t, tt.isValid(raw), "expected %q to be an invalid %s", raw, tt.field)
			}
		})
	}
}

func TestConstructors_ReturnConstraintMessage(t *testing.T) {
	_, err := NewName("@@")
	assert.True(t, errors.Is(err, apperrors.ErrConstraintViolation))
	assert.Equal(t, NameConstraints, err.Error())

	_, err = NewPhone("12")
	assert.Equal(t, PhoneConstraints, err.Error())

	_, err = NewEmail("nope")
	assert.Equal(t, EmailConstraints, err.Error())

	_, err = NewModule("CS")
	assert.Equal(t, ModuleConstraints, err.Error())

	_, err = NewYear("9")
	assert.Equal(t, YearConstraints, err.Error())

	_, err = NewTeachingNomination("x")
	assert.Equal(t, NominationConstraints, err.Error())

	_, err = NewComment(strings.Repeat("y", 501))
	assert.Equal(t, CommentConstraints, err.Error())

	_, err = NewTag("a b")
	assert.Equal(t, TagConstraints, err.Error())
}

func TestNumericAccessors(t *testing.T) {
	year, err := NewYear("4")
	assert.NoError(t, err)
	assert.Equal(t, 4, year.Int())
	assert.Equal(t, "4", year.String())

	nominations, err := NewTeachingNomination("12")
	assert.NoError(t, err)
	assert.Equal(t, 12, nominations.Int())
}

func TestModule_Contains(t *testing.T) {
	module, err := NewModule("CS2100")
	assert.NoError(t, err)
	assert.True(t, module.Contains("cs2100"))
	assert.True(t, module.Contains("cs21"))
	assert.False(t, module.Contains("cs2105"))
}
