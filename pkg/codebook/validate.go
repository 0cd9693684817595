package codebook

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var varnameRe = regexp.MustCompile(`^[a-z0-9_]*$`)

// validate checks record invariants. A validator caches struct metadata and
// is safe for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("varname", func(fl validator.FieldLevel) bool {
		return varnameRe.MatchString(fl.Field().String())
	})
	return v
}

// InvalidRecordError lists the invariants a record violates.
type InvalidRecordError struct {
	Record   string
	Problems []string
	Err      error
}

func (e *InvalidRecordError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Record, strings.Join(e.Problems, "; "))
}

func (e *InvalidRecordError) Unwrap() error { return e.Err }

func check(record string, v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate %s: %w", record, err)
	}
	problems := make([]string, len(fieldErrs))
	for i, fe := range fieldErrs {
		problems[i] = describe(fe)
	}
	return &InvalidRecordError{Record: record, Problems: problems, Err: err}
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "varname":
		return field + " can only contain lowercase alphanumeric characters and underscores"
	case "max":
		return fmt.Sprintf("%s can not use more than %s characters", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "unique":
		return fmt.Sprintf("%s must have a unique %s", field, strings.ToLower(fe.Param()))
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed the %s check", field, fe.Tag())
	}
}
