package validation

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/deppfellow/geometria-api/internal/errs"
	"github.com/deppfellow/geometria-api/internal/geometry"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request payload types that know how to
// validate themselves.
type Validatable interface {
	Validate() error
}

// CustomValidationError represents a single validation issue for a
// specific field that cannot be expressed via validator tags.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator returns the shared validator with the API's custom tags:
//
//   - finite_number: the string parses as a finite number
//   - positive_number: the string parses as a number strictly greater than zero
//
// Field names in errors come from the `query` tag so they match what the
// client sent.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})

		mustRegister(v, "finite_number", func(fl validator.FieldLevel) bool {
			_, ok := geometry.ParseNumber(fl.Field().String())
			return ok
		})
		mustRegister(v, "positive_number", func(fl validator.FieldLevel) bool {
			n, ok := geometry.ParseNumber(fl.Field().String())
			return ok && n > 0
		})

		validate = v
	})

	return validate
}

var queryBinder = &echo.DefaultBinder{}

// mustRegister panics when a tag cannot be registered, which only happens
// for an invalid tag name.
func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %q: %v", tag, err))
	}
}

// BindAndValidate binds the query string into payload and validates it.
//
// Flow:
//  1. BindQueryParams populates the request struct from the query string
//     only; a request body never takes part.
//  2. payload.Validate() applies validation rules.
//  3. Returns *errs.HTTPError (400) with field-level errors if validation fails.
//
// payload must be a pointer to a struct.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := queryBinder.BindQueryParams(c, payload); err != nil {
		return errs.ValidationError(bindErrorMessage(err))
	}

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		code := errs.CodeInvalidParameter
		return errs.NewBadRequestError(msg, &code, fieldErrors)
	}

	return nil
}

// bindErrorMessage extracts the client-facing part of an Echo bind error.
func bindErrorMessage(err error) error {
	if he, ok := err.(*echo.HTTPError); ok {
		if msg, ok := he.Message.(string); ok {
			return fmt.Errorf("%s", msg)
		}
	}
	return err
}

// validateStruct calls v.Validate() and extracts field errors if validation fails.
func validateStruct(v Validatable) (string, []errs.FieldError) {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return "", nil
}

// extractValidationError converts validator and custom errors into field
// errors. The returned message is the first error phrased for the client.
func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	switch e := err.(type) {
	case validator.ValidationErrors:
		for _, fe := range e {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: fe.Field(),
				Error: tagMessage(fe),
			})
		}

	case CustomValidationErrors:
		for _, ce := range e {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: ce.Field,
				Error: ce.Message,
			})
		}

	default:
		return err.Error(), []errs.FieldError{}
	}

	if len(fieldErrors) == 0 {
		return "Validation failed", []errs.FieldError{}
	}

	first := fieldErrors[0]
	return fmt.Sprintf("El parámetro '%s' %s", first.Field, first.Error), fieldErrors
}

// tagMessage maps a failed tag to its message. Absent and non-numeric
// values share one message, non-positive values get another.
func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "finite_number":
		return geometry.ReasonNotANumber.Message()

	case "positive_number":
		return geometry.ReasonNotPositive.Message()

	case "oneof":
		return fmt.Sprintf("debe ser uno de: %s", fe.Param())

	default:
		if fe.Param() != "" {
			return fmt.Sprintf("%s: %s:%s", fe.Field(), fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("%s: %s", fe.Field(), fe.Tag())
	}
}

// DimensionRules is the rule set every geometric dimension must satisfy.
const DimensionRules = "required,finite_number,positive_number"

// ValidateParam checks a single raw value against rules. It returns nil
// when the value passes.
func ValidateParam(name, raw, rules string) *CustomValidationError {
	err := Validator().Var(raw, rules)
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
		return &CustomValidationError{Field: name, Message: tagMessage(ves[0])}
	}

	return &CustomValidationError{Field: name, Message: err.Error()}
}
