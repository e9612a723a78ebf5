// Package api implements the authenticated HTTP client for the daemon's REST
// surface.
//
// Every exported call is a thin binding over two primitives: an authenticated
// GET returning a decoded JSON document, and an authenticated POST that
// additionally normalizes intentionally empty response bodies to NoContent.
// Payloads are untyped Value trees with defensive get-or-default accessors, so
// callers treat missing or mistyped fields as absent rather than failing.
//
// Failures collapse into a closed taxonomy: ErrTransport for network errors,
// StatusError for non-2xx responses, and ErrDecode for bodies that are not
// valid JSON. Commands branch on these kinds instead of parsing messages.
package api
