package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/geometria-api/internal/errs"
	"github.com/deppfellow/geometria-api/internal/geometry"
	"github.com/deppfellow/geometria-api/internal/middleware"
	"github.com/deppfellow/geometria-api/internal/server"
)

// GeometryService runs catalog calculations.
type GeometryService struct {
	server *server.Server
}

func NewGeometryService(s *server.Server) *GeometryService {
	return &GeometryService{server: s}
}

// Calculate evaluates calc over values.
//
// Invalid dimensions become a 400 INVALID_PARAMETER error and a result
// that does not fit in a float64 becomes a 500.
func (gs *GeometryService) Calculate(ctx context.Context, calc geometry.Calculation, values map[geometry.Param]float64) (*geometry.Result, error) {
	logger := middleware.LoggerFromContext(ctx)

	result, err := geometry.Request{Calculation: calc, Values: values}.Evaluate()
	if err != nil {
		var invalid *geometry.InvalidParameterError
		switch {
		case errors.As(err, &invalid):
			return nil, errs.NewInvalidParameterError(string(invalid.Param), invalid.Reason.Message())
		case errors.Is(err, geometry.ErrNonFiniteResult):
			return nil, errs.NewInternalServerError(err.Error())
		default:
			return nil, fmt.Errorf("failed to calculate %s: %w", calc, err)
		}
	}

	logger.Debug().
		Str("calculation", calc.String()).
		Float64("result", result.Value).
		Msg("calculation completed")

	return result, nil
}

// SelfCheck evaluates a calculation with a known answer. It is used by
// the health endpoint.
func (gs *GeometryService) SelfCheck(ctx context.Context) error {
	calc, ok := geometry.Lookup(geometry.Volume, geometry.Cube)
	if !ok {
		return errors.New("cube volume is not registered")
	}

	result, err := gs.Calculate(ctx, calc, map[geometry.Param]float64{geometry.Side: 3})
	if err != nil {
		return err
	}
	if result.Value != 27 {
		return fmt.Errorf("cube volume of side 3 = %v, want 27", result.Value)
	}

	return nil
}
