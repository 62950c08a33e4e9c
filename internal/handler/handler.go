// Package handler is the first layer after the router.
//
// It binds and validates requests with the validation package, calls
// the service layer and writes JSON responses.
package handler

// APIPrefix is the path every calculation route lives under.
const APIPrefix = "/api/Geometria"

// DocsPath and DocsJSONPath are where the API documentation is served.
const (
	DocsPath     = "/swagger"
	DocsJSONPath = "/swagger.json"
)
