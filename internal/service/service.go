// Package service contains the business logic.
//
// It sits between the handler layer and the geometry calculator: it
// receives validated dimensions, runs the calculation and maps domain
// failures to API errors.
package service
