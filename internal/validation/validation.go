// Package validation contains the logic for validating request data.
//
// It uses the `validator` library to enforce rules declared in struct
// tags and turns failures into the API's 400 error shape.
package validation
