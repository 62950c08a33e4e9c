// Package geometry holds the formulas behind every endpoint of the API.
//
// It is the single canonical calculator: pure functions over float64
// values, a catalog describing which (operation, shape) pairs exist,
// and the parsing rules that turn raw query values into dimensions.
// Nothing in this package knows about HTTP.
package geometry

import "math"

// Shape identifies a figure by the path segment used to address it.
type Shape string

const (
	Square    Shape = "cuadrado"
	Rectangle Shape = "rectangulo"
	Circle    Shape = "circulo"
	Cube      Shape = "cubo"
	Sphere    Shape = "esfera"
	Cylinder  Shape = "cilindro"
)

// Operation identifies what is computed for a shape. The value doubles as
// the JSON key holding the result.
type Operation string

const (
	Area      Operation = "area"
	Perimeter Operation = "perimetro"
	Volume    Operation = "volumen"
)

// Param is the name of a dimension as it appears in the query string and
// in the echoed response.
type Param string

const (
	Side   Param = "lado"
	Base   Param = "base"
	Height Param = "altura"
	Radius Param = "radio"
)

// SquareArea returns side².
func SquareArea(side float64) float64 {
	return side * side
}

// SquarePerimeter returns 4 × side.
func SquarePerimeter(side float64) float64 {
	return 4 * side
}

// RectangleArea returns base × height.
func RectangleArea(base, height float64) float64 {
	return base * height
}

// RectanglePerimeter returns 2 × (base + height).
func RectanglePerimeter(base, height float64) float64 {
	return 2 * (base + height)
}

// CircleArea returns π × r².
func CircleArea(radius float64) float64 {
	return math.Pi * radius * radius
}

// CirclePerimeter returns 2 × π × r.
func CirclePerimeter(radius float64) float64 {
	return 2 * math.Pi * radius
}

// CubeVolume returns side³.
func CubeVolume(side float64) float64 {
	return side * side * side
}

// SphereVolume returns (4/3) × π × r³.
func SphereVolume(radius float64) float64 {
	return (4.0 / 3.0) * math.Pi * radius * radius * radius
}

// CylinderVolume returns π × r² × h.
func CylinderVolume(radius, height float64) float64 {
	return math.Pi * radius * radius * height
}
