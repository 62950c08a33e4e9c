package errs

import (
	"fmt"
	"net/http"
)

const (
	// CodeInvalidParameter marks a missing, non-numeric or non-positive parameter.
	CodeInvalidParameter = "INVALID_PARAMETER"

	// DocumentationPath is where clients are pointed when a route does not exist.
	DocumentationPath = "/swagger"
)

func statusCode(status int) string {
	return MakeUpperCaseWithUnderscores(http.StatusText(status))
}

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// code is optional; when nil it defaults to "BAD_REQUEST".
func NewBadRequestError(message string, code *string, errors []FieldError) *HTTPError {
	formattedCode := statusCode(http.StatusBadRequest)
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Message: message,
		Code:    formattedCode,
		Status:  http.StatusBadRequest,
		Errors:  errors,
	}
}

// NewInvalidParameterError creates the 400 returned when a parameter fails
// validation. The message names the parameter.
func NewInvalidParameterError(param, reason string) *HTTPError {
	code := CodeInvalidParameter
	return NewBadRequestError(
		fmt.Sprintf("El parámetro '%s' %s", param, reason),
		&code,
		[]FieldError{{Field: param, Error: reason}},
	)
}

// NewNotFoundError creates the 404 returned for unmatched routes.
func NewNotFoundError() *HTTPError {
	return &HTTPError{
		Message:       "Endpoint no encontrado",
		Detail:        "La ruta solicitada no existe en esta API",
		Documentation: DocumentationPath,
		Code:          statusCode(http.StatusNotFound),
		Status:        http.StatusNotFound,
	}
}

// NewMethodNotAllowedError creates a 405 for a known path requested with
// an unsupported method.
func NewMethodNotAllowedError() *HTTPError {
	return &HTTPError{
		Message:       "Método no permitido",
		Detail:        "La ruta solicitada solo admite peticiones GET",
		Documentation: DocumentationPath,
		Code:          statusCode(http.StatusMethodNotAllowed),
		Status:        http.StatusMethodNotAllowed,
	}
}

// NewTooManyRequestsError creates a 429 returned by the rate limiter.
func NewTooManyRequestsError() *HTTPError {
	return &HTTPError{
		Message: "Demasiadas solicitudes",
		Detail:  "Se superó el límite de solicitudes, intente de nuevo más tarde",
		Code:    statusCode(http.StatusTooManyRequests),
		Status:  http.StatusTooManyRequests,
	}
}

// NewInternalServerError creates a 500. detail is exposed as "mensaje".
func NewInternalServerError(detail string) *HTTPError {
	return &HTTPError{
		Message: "Error interno del servidor",
		Detail:  detail,
		Code:    statusCode(http.StatusInternalServerError),
		Status:  http.StatusInternalServerError,
	}
}

// NewHTTPError creates an error for any other status, using the status
// text as both message and code.
func NewHTTPError(status int, message string) *HTTPError {
	if message == "" {
		message = http.StatusText(status)
	}
	return &HTTPError{
		Message: message,
		Code:    statusCode(status),
		Status:  status,
	}
}

// ValidationError converts a generic validation error into a 400.
func ValidationError(err error) *HTTPError {
	return NewBadRequestError("Validación fallida: "+err.Error(), nil, nil)
}
