package geometry

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Reason classifies why a parameter was rejected.
type Reason string

const (
	// ReasonNotANumber covers absent, empty, non-numeric and non-finite input.
	ReasonNotANumber Reason = "not_a_number"

	// ReasonNotPositive covers numeric input that is zero or negative.
	ReasonNotPositive Reason = "not_positive"
)

// Message returns the client-facing wording for the reason.
func (r Reason) Message() string {
	switch r {
	case ReasonNotPositive:
		return "debe ser un número positivo"
	default:
		return "debe ser un número válido"
	}
}

// InvalidParameterError is returned when a dimension fails validation.
type InvalidParameterError struct {
	Param  Param
	Reason Reason
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("El parámetro '%s' %s", e.Param, e.Reason.Message())
}

// ParseNumber parses raw as a finite float64.
//
// Surrounding whitespace is ignored. Trailing garbage ("5abc"), NaN,
// infinities and values outside the float64 range are rejected.
func ParseNumber(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}

	return v, true
}

// ParseParameter turns the raw value of param into a dimension that
// satisfies the calculator's precondition: finite and strictly positive.
func ParseParameter(param Param, raw string) (float64, error) {
	v, ok := ParseNumber(raw)
	if !ok {
		return 0, &InvalidParameterError{Param: param, Reason: ReasonNotANumber}
	}

	if err := checkDimension(param, v); err != nil {
		return 0, err
	}

	return v, nil
}

func checkDimension(param Param, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &InvalidParameterError{Param: param, Reason: ReasonNotANumber}
	}
	if v <= 0 {
		return &InvalidParameterError{Param: param, Reason: ReasonNotPositive}
	}
	return nil
}
