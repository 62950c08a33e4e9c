package geometry

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ErrNonFiniteResult is returned when a formula overflows float64.
var ErrNonFiniteResult = errors.New("el resultado excede el rango numérico representable")

// Calculation describes one supported (operation, shape) pair.
type Calculation struct {
	Operation Operation
	Shape     Shape

	// Label is the display name echoed as "figura".
	Label string

	// Params lists the required dimensions in the order they are passed
	// to the formula and echoed in the response.
	Params []Param

	// Formula is the fixed human-readable formula string.
	Formula string

	// Summary is a one-line description used by the API documentation.
	Summary string

	compute func(v []float64) float64
}

// Path returns the route for the calculation relative to the API prefix.
func (c Calculation) Path() string {
	return "/" + string(c.Operation) + "/" + string(c.Shape)
}

// String implements fmt.Stringer.
func (c Calculation) String() string {
	return string(c.Operation) + "/" + string(c.Shape)
}

var catalog = []Calculation{
	{
		Operation: Area, Shape: Square, Label: "Cuadrado",
		Params: []Param{Side}, Formula: "A = lado²",
		Summary: "Calcula el área de un cuadrado",
		compute: func(v []float64) float64 { return SquareArea(v[0]) },
	},
	{
		Operation: Area, Shape: Rectangle, Label: "Rectángulo",
		Params: []Param{Base, Height}, Formula: "A = base × altura",
		Summary: "Calcula el área de un rectángulo",
		compute: func(v []float64) float64 { return RectangleArea(v[0], v[1]) },
	},
	{
		Operation: Area, Shape: Circle, Label: "Círculo",
		Params: []Param{Radius}, Formula: "A = π × r²",
		Summary: "Calcula el área de un círculo",
		compute: func(v []float64) float64 { return CircleArea(v[0]) },
	},
	{
		Operation: Perimeter, Shape: Square, Label: "Cuadrado",
		Params: []Param{Side}, Formula: "P = 4 × lado",
		Summary: "Calcula el perímetro de un cuadrado",
		compute: func(v []float64) float64 { return SquarePerimeter(v[0]) },
	},
	{
		Operation: Perimeter, Shape: Rectangle, Label: "Rectángulo",
		Params: []Param{Base, Height}, Formula: "P = 2 × (base + altura)",
		Summary: "Calcula el perímetro de un rectángulo",
		compute: func(v []float64) float64 { return RectanglePerimeter(v[0], v[1]) },
	},
	{
		Operation: Perimeter, Shape: Circle, Label: "Círculo",
		Params: []Param{Radius}, Formula: "P = 2 × π × r",
		Summary: "Calcula el perímetro de un círculo",
		compute: func(v []float64) float64 { return CirclePerimeter(v[0]) },
	},
	{
		Operation: Volume, Shape: Cube, Label: "Cubo",
		Params: []Param{Side}, Formula: "V = lado³",
		Summary: "Calcula el volumen de un cubo",
		compute: func(v []float64) float64 { return CubeVolume(v[0]) },
	},
	{
		Operation: Volume, Shape: Sphere, Label: "Esfera",
		Params: []Param{Radius}, Formula: "V = (4/3) × π × r³",
		Summary: "Calcula el volumen de una esfera",
		compute: func(v []float64) float64 { return SphereVolume(v[0]) },
	},
	{
		Operation: Volume, Shape: Cylinder, Label: "Cilindro",
		Params: []Param{Radius, Height}, Formula: "V = π × r² × h",
		Summary: "Calcula el volumen de un cilindro",
		compute: func(v []float64) float64 { return CylinderVolume(v[0], v[1]) },
	},
}

// Catalog returns every supported calculation, grouped by operation in
// the order area, perimetro, volumen. The returned slice is a copy.
func Catalog() []Calculation {
	out := make([]Calculation, len(catalog))
	copy(out, catalog)
	return out
}

// Operations returns the operations in catalog order.
func Operations() []Operation {
	return []Operation{Area, Perimeter, Volume}
}

// Lookup finds the calculation for an (operation, shape) pair.
func Lookup(op Operation, shape Shape) (Calculation, bool) {
	for _, c := range catalog {
		if c.Operation == op && c.Shape == shape {
			return c, true
		}
	}
	return Calculation{}, false
}

// Request is a single calculation call with its dimensions.
type Request struct {
	Calculation Calculation
	Values      map[Param]float64
}

// Evaluate validates every dimension and only then runs the formula.
//
// Missing or invalid dimensions yield *InvalidParameterError and the
// formula is never called. A result that overflows to ±Inf yields
// ErrNonFiniteResult.
func (c Calculation) Evaluate(values map[Param]float64) (*Result, error) {
	if c.compute == nil {
		return nil, fmt.Errorf("calculation %s is not registered", c)
	}

	args := make([]float64, len(c.Params))
	inputs := make([]Input, len(c.Params))
	for i, p := range c.Params {
		v, ok := values[p]
		if !ok {
			return nil, &InvalidParameterError{Param: p, Reason: ReasonNotANumber}
		}
		if err := checkDimension(p, v); err != nil {
			return nil, err
		}
		args[i] = v
		inputs[i] = Input{Param: p, Value: v}
	}

	value := c.compute(args)
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, ErrNonFiniteResult
	}

	return &Result{
		Label:     c.Label,
		Inputs:    inputs,
		Operation: c.Operation,
		Value:     value,
		Formula:   c.Formula,
	}, nil
}

// Evaluate runs the request's calculation.
func (r Request) Evaluate() (*Result, error) {
	return r.Calculation.Evaluate(r.Values)
}

// Input is an echoed dimension.
type Input struct {
	Param Param
	Value float64
}

// Result is the outcome of a calculation.
type Result struct {
	Label     string
	Inputs    []Input
	Operation Operation
	Value     float64
	Formula   string
}

// Input returns the echoed value of p.
func (r *Result) Input(p Param) (float64, bool) {
	for _, in := range r.Inputs {
		if in.Param == p {
			return in.Value, true
		}
	}
	return 0, false
}

// MarshalJSON writes the result as
//
//	{"figura": ..., <inputs>..., "<operation>": ..., "formula": ...}
//
// keeping the keys in that order.
func (r *Result) MarshalJSON() ([]byte, error) {
	fields := orderedmap.New[string, any](orderedmap.WithCapacity[string, any](len(r.Inputs) + 3))

	fields.Set("figura", r.Label)
	for _, in := range r.Inputs {
		fields.Set(string(in.Param), in.Value)
	}
	fields.Set(string(r.Operation), r.Value)
	fields.Set("formula", r.Formula)

	return json.Marshal(fields)
}
