package api

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport marks network-level failures: connection refused, DNS,
	// TLS handshake, or an interrupted body read.
	ErrTransport = errors.New("transport failure")

	// ErrDecode marks response bodies that are not valid JSON. Missing
	// fields inside a well-formed document never produce this error.
	ErrDecode = errors.New("decode response")
)

// StatusError reports a non-2xx response from the daemon.
type StatusError struct {
	Status int
	Method string
	Path   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("daemon returned status %d for %s %s", e.Status, e.Method, e.Path)
}
