// Package handler is the first layer after the router.
//
// It binds and validates requests through the validation package,
// calls the appropriate service, and writes the response. It acts
// as the interface between HTTP and the business logic.
package handler
