// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while reading a request. Callers can match
// against them with [errors.Is].
var (
	// ErrMalformedBody is returned when the request body cannot be parsed in
	// the declared encoding, or a JSON body is not an object.
	ErrMalformedBody = errors.New("malformed request body")

	// ErrUnsupportedMediaType is returned for a request body whose
	// Content-Type is neither JSON nor a form encoding.
	ErrUnsupportedMediaType = errors.New("unsupported media type")

	// ErrInvalidPostID is returned when the {id} route parameter does not
	// fit an int64. The route pattern already rejects non-digits.
	ErrInvalidPostID = errors.New("invalid post id")
)
