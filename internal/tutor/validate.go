package tutor

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/tuthub/tuthub/internal/apperrors"
)

// Patterns behind the custom validator tags. The rest of the rules use
// validator's baked-in tags (number, email, alphanum, oneof, ...).
var (
	nameRegex      = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} ]*$`)
	moduleRegex    = regexp.MustCompile(`^[A-Za-z]{2,3}\d{4}[A-Za-z]?$`)
	studentIDRegex = regexp.MustCompile(`^A\d{7}[A-Z]$`)
)

// validate is shared by every value object. A *validator.Validate caches
// struct and tag metadata and is safe for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	custom := map[string]*regexp.Regexp{
		"tutorname":  nameRegex,
		"modulecode": moduleRegex,
		"studentid":  studentIDRegex,
	}
	for tag, re := range custom {
		re := re
		// RegisterValidation only fails on an empty or baked-in tag name.
		if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return re.MatchString(fl.Field().String())
		}); err != nil {
			panic(err)
		}
	}
	return v
}

// Validator exposes the shared instance with the tutor tags registered, so
// DTOs elsewhere can use `validate:"studentid"` and friends.
func Validator() *validator.Validate {
	return validate
}

func matches(raw, tag string) bool {
	return validate.Var(raw, tag) == nil
}

func constraint(op, message string) error {
	return apperrors.New(apperrors.ErrConstraintViolation, op, message)
}
