package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/geometria-api/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rectangleQuery struct {
	Base   string `query:"base" validate:"required,finite_number,positive_number"`
	Height string `query:"altura" validate:"required,finite_number,positive_number"`
}

func (r *rectangleQuery) Validate() error {
	return Validator().Struct(r)
}

func newContext(target string) echo.Context {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestValidateParam(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr string
	}{
		{name: "valid", raw: "3.5"},
		{name: "absent", raw: "", wantErr: "debe ser un número válido"},
		{name: "not a number", raw: "abc", wantErr: "debe ser un número válido"},
		{name: "infinite", raw: "+Inf", wantErr: "debe ser un número válido"},
		{name: "zero", raw: "0", wantErr: "debe ser un número positivo"},
		{name: "negative", raw: "-5", wantErr: "debe ser un número positivo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateParam("lado", tt.raw, DimensionRules)
			if tt.wantErr == "" {
				assert.Nil(t, got)
				return
			}

			require.NotNil(t, got)
			assert.Equal(t, "lado", got.Field)
			assert.Equal(t, tt.wantErr, got.Message)
		})
	}
}

func TestBindAndValidate_Valid(t *testing.T) {
	req := &rectangleQuery{}
	err := BindAndValidate(newContext("/?base=3&altura=4"), req)

	require.NoError(t, err)
	assert.Equal(t, "3", req.Base)
	assert.Equal(t, "4", req.Height)
}

func TestBindAndValidate_FieldErrorsUseQueryNames(t *testing.T) {
	err := BindAndValidate(newContext("/?base=abc&altura=-1"), &rectangleQuery{})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, errs.CodeInvalidParameter, httpErr.Code)
	assert.Equal(t, "El parámetro 'base' debe ser un número válido", httpErr.Message)
	assert.Equal(t, []errs.FieldError{
		{Field: "base", Error: "debe ser un número válido"},
		{Field: "altura", Error: "debe ser un número positivo"},
	}, httpErr.Errors)
}

type customQuery struct {
	errs CustomValidationErrors
}

func (c *customQuery) Validate() error {
	if len(c.errs) == 0 {
		return nil
	}
	return c.errs
}

func TestBindAndValidate_CustomErrors(t *testing.T) {
	q := &customQuery{errs: CustomValidationErrors{{Field: "radio", Message: "debe ser un número positivo"}}}
	err := BindAndValidate(newContext("/"), q)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, "El parámetro 'radio' debe ser un número positivo", httpErr.Message)

	assert.NoError(t, BindAndValidate(newContext("/"), &customQuery{}))
}

func TestBindAndValidate_IgnoresBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?base=3&altura=4", strings.NewReader(`{"base":"-1","altura":"x"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := echo.New().NewContext(req, httptest.NewRecorder())

	q := &rectangleQuery{}
	require.NoError(t, BindAndValidate(c, q))
	assert.Equal(t, "3", q.Base)
	assert.Equal(t, "4", q.Height)
}

func TestMustRegister_PanicsOnInvalidTag(t *testing.T) {
	assert.Panics(t, func() {
		mustRegister(validator.New(), "", func(validator.FieldLevel) bool { return true })
	})
}
