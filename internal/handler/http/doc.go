// Package http implements the REST transport of the blog API.
//
// It wires chi routes to the service layer and owns everything that is
// specific to HTTP: request body decoding (JSON and form encodings), the
// bearer-token middleware that resolves the requester, error-to-status
// mapping, access logging, trace ids and Prometheus request metrics.
package http
