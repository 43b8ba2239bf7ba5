// Package handler is the entry point for business logic after the router.
//
// It binds and validates requests through the validation package, calls
// the service layer, and maps domain errors to errs.HTTPError values that
// the global error handler renders.
package handler
