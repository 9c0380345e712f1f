// Package errs defines the error shape returned to API clients.
//
// Every failure that leaves the HTTP layer is an *HTTPError, serialized
// as JSON by the global error handler so clients receive consistent,
// actionable messages.
package errs
