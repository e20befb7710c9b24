// Package server runs the HTTP transport.
//
// It owns the listener lifecycle: startup, serving until the context is
// cancelled, and graceful shutdown that lets in-flight requests finish.
package server
