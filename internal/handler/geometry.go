package handler

import (
	"net/http"

	"github.com/deppfellow/geometria-api/internal/geometry"
	"github.com/deppfellow/geometria-api/internal/server"
	"github.com/deppfellow/geometria-api/internal/service"
	"github.com/deppfellow/geometria-api/internal/validation"
	"github.com/labstack/echo/v4"
)

// CalculationRequest carries the raw query values of a calculation.
// Only the dimensions the calculation declares are validated; unrelated
// query parameters are ignored.
type CalculationRequest struct {
	Side   string `query:"lado"`
	Base   string `query:"base"`
	Height string `query:"altura"`
	Radius string `query:"radio"`

	calc   geometry.Calculation
	values map[geometry.Param]float64
}

func newCalculationRequest(calc geometry.Calculation) func() *CalculationRequest {
	return func() *CalculationRequest {
		return &CalculationRequest{calc: calc}
	}
}

func (r *CalculationRequest) raw(p geometry.Param) string {
	switch p {
	case geometry.Side:
		return r.Side
	case geometry.Base:
		return r.Base
	case geometry.Height:
		return r.Height
	case geometry.Radius:
		return r.Radius
	}
	return ""
}

// Validate checks every declared dimension, collecting one error per
// failing parameter, and keeps the parsed values on success.
func (r *CalculationRequest) Validate() error {
	var failures validation.CustomValidationErrors
	values := make(map[geometry.Param]float64, len(r.calc.Params))

	for _, p := range r.calc.Params {
		raw := r.raw(p)
		if fe := validation.ValidateParam(string(p), raw, validation.DimensionRules); fe != nil {
			failures = append(failures, *fe)
			continue
		}

		v, _ := geometry.ParseNumber(raw)
		values[p] = v
	}

	if len(failures) > 0 {
		return failures
	}

	r.values = values
	return nil
}

// Values returns the parsed dimensions. It is empty until Validate succeeds.
func (r *CalculationRequest) Values() map[geometry.Param]float64 {
	return r.values
}

// GeometryHandler serves the calculation endpoints.
type GeometryHandler struct {
	Handler
	services *service.Services
}

func NewGeometryHandler(s *server.Server, services *service.Services) *GeometryHandler {
	return &GeometryHandler{
		Handler:  NewHandler(s),
		services: services,
	}
}

// Calculate returns the endpoint for one catalog calculation.
func (h *GeometryHandler) Calculate(calc geometry.Calculation) echo.HandlerFunc {
	return Handle[*CalculationRequest, *geometry.Result](
		h.Handler,
		func(c echo.Context, req *CalculationRequest) (*geometry.Result, error) {
			return h.services.Geometry.Calculate(c.Request().Context(), calc, req.Values())
		},
		http.StatusOK,
		newCalculationRequest(calc),
	)
}
