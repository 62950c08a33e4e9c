// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns such as
// request correlation, logging, CORS, security headers, rate limiting,
// tracing and panic recovery, plus the global error handler.
package middleware
