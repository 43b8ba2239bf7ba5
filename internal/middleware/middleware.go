// Package middleware holds the echo middleware shared by every route:
// request IDs, request-scoped logging, access logs, CORS, panic recovery,
// New Relic tracing and the global JSON error handler.
package middleware
