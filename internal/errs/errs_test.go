package errs

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "NOT_FOUND", MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound)))
}

func TestNewInvalidParameterError(t *testing.T) {
	err := NewInvalidParameterError("lado", "debe ser un número positivo")

	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, CodeInvalidParameter, err.Code)
	assert.Equal(t, "El parámetro 'lado' debe ser un número positivo", err.Message)
	assert.Equal(t, []FieldError{{Field: "lado", Error: "debe ser un número positivo"}}, err.Errors)
}

func TestNewNotFoundError_JSON(t *testing.T) {
	b, err := json.Marshal(NewNotFoundError())
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(b, &body))

	assert.Equal(t, "Endpoint no encontrado", body["error"])
	assert.Equal(t, "La ruta solicitada no existe en esta API", body["mensaje"])
	assert.Equal(t, "/swagger", body["documentacion"])
	assert.NotContains(t, body, "status")
	assert.NotContains(t, body, "errores")
}

func TestNewInternalServerError(t *testing.T) {
	err := NewInternalServerError("boom")
	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.Equal(t, "Error interno del servidor", err.Message)
	assert.Equal(t, "Error interno del servidor: boom", err.Error())
}

func TestHTTPError_Is(t *testing.T) {
	wrapped := errors.Wrap(NewTooManyRequestsError(), "limiter")

	assert.True(t, errors.Is(wrapped, &HTTPError{}))
	assert.True(t, errors.Is(wrapped, &HTTPError{Code: "TOO_MANY_REQUESTS"}))
	assert.False(t, errors.Is(wrapped, &HTTPError{Code: "NOT_FOUND"}))
}

func TestHTTPError_CopiesDoNotMutate(t *testing.T) {
	base := NewHTTPError(http.StatusServiceUnavailable, "")
	changed := base.WithMessage("otro").WithDetail("detalle")

	assert.Equal(t, "Service Unavailable", base.Message)
	assert.Empty(t, base.Detail)
	assert.Equal(t, "otro", changed.Message)
	assert.Equal(t, "detalle", changed.Detail)
	assert.Equal(t, "SERVICE_UNAVAILABLE", changed.Code)
}
