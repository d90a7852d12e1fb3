package checkin

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks that each metric lies within its semantic range.
// The store itself accepts any values; callers that want strict input
// (such as the tool surface) validate before constructing a check-in.
func Validate(m Metrics) error {
	err := validate.Struct(m)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, fmt.Sprintf("%s must be %s %s", fe.Field(), describeTag(fe.Tag()), fe.Param()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(problems, "; "))
}

func describeTag(tag string) string {
	switch tag {
	case "min":
		return "at least"
	case "max":
		return "at most"
	default:
		return tag
	}
}
