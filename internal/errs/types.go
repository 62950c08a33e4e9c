package errs

import "strings"

// FieldError is a parameter-level validation error.
//
//	{ "campo": "lado", "error": "debe ser un número válido" }
type FieldError struct {
	Field string `json:"campo"`
	Error string `json:"error"`
}

// HTTPError is the main error type for API responses.
//
// It implements the `error` interface and is serialized directly to JSON:
//   - Message: the human-readable "error" field every failure carries.
//   - Detail: optional "mensaje" with additional context.
//   - Documentation: optional pointer to the API docs.
//   - Code: machine-friendly code (e.g. "INVALID_PARAMETER").
//   - Status: HTTP status code, not serialized.
//   - Errors: per-parameter validation errors.
type HTTPError struct {
	Message       string       `json:"error"`
	Detail        string       `json:"mensaje,omitempty"`
	Documentation string       `json:"documentacion,omitempty"`
	Code          string       `json:"codigo"`
	Status        int          `json:"-"`
	Errors        []FieldError `json:"errores,omitempty"`
}

// Error makes *HTTPError satisfy the built-in `error` interface.
func (e *HTTPError) Error() string {
	if e.Detail != "" {
		return e.Message + ": " + e.Detail
	}
	return e.Message
}

// Is reports whether target is also an *HTTPError with the same code.
// A target with an empty code matches any *HTTPError.
func (e *HTTPError) Is(target error) bool {
	t, ok := target.(*HTTPError)
	if !ok {
		return false
	}
	return t.Code == "" || t.Code == e.Code
}

// WithMessage returns a copy of this HTTPError with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	cp := *e
	cp.Message = message
	return &cp
}

// WithDetail returns a copy of this HTTPError with Detail replaced.
func (e *HTTPError) WithDetail(detail string) *HTTPError {
	cp := *e
	cp.Detail = detail
	return &cp
}

// MakeUpperCaseWithUnderscores converts a string into UPPER_CASE_WITH_UNDERSCORES.
//
//	"Bad Request" -> "BAD_REQUEST"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
