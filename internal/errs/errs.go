// Package errs defines the error shapes returned by the API.
//
// Every failure a client can observe is an *HTTPError, so the JSON body
// is always built from the same structure whatever layer produced it.
package errs
