// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package urlaux

import "net/http"

// ErrorHandlers is the optional interface a Config may implement to
// supply fallback handlers alongside its patterns. These stand in for
// the conventionally named handler attributes a router reads off a URL
// configuration. A nil handler means the configuration does not
// customize that case.
//
// Decoration never touches these handlers: a Decorated wrapper forwards
// them from the underlying configuration unchanged, so a router sees the
// same fallbacks whether or not the configuration is wrapped.
type ErrorHandlers interface {
	// NotFoundHandler returns the handler for requests that match no
	// pattern, or nil.
	NotFoundHandler() http.Handler

	// ErrorHandler returns the handler for requests that fail
	// internally, or nil.
	ErrorHandler() http.Handler
}

// NotFoundHandler returns c's not-found handler if c supplies one, or
// nil. This is how a router should read the convention: it behaves
// uniformly whether or not c implements ErrorHandlers.
func NotFoundHandler(c Config) http.Handler {
	if eh, ok := c.(ErrorHandlers); ok {
		return eh.NotFoundHandler()
	}

	return nil
}

// ErrorHandler returns c's internal-error handler if c supplies one, or
// nil.
func ErrorHandler(c Config) http.Handler {
	if eh, ok := c.(ErrorHandlers); ok {
		return eh.ErrorHandler()
	}

	return nil
}
