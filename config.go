// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package urlaux

import "net/http"

// Config is the contract for a URL configuration: something that can
// produce an ordered list of patterns. This is the entire read surface a
// resolver needs from a configuration, together with the optional
// ErrorHandlers interface.
//
// Patterns returns the pattern list in declaration order. Implementations
// are free to build the list on every call; callers must not assume that
// successive calls return the same slice. Any error is a fatal
// configuration error: a configuration that cannot produce its patterns
// cannot be routed.
type Config interface {
	Patterns() ([]Pattern, error)
}

// PatternList is a bare pattern sequence usable directly as a Config.
type PatternList []Pattern

// Patterns returns the list itself.
func (pl PatternList) Patterns() ([]Pattern, error) {
	return pl, nil
}

var _ Config = PatternList(nil)

// ConfigFunc is a function adapter for Config. It is useful for
// configurations that must be built lazily, for example to break an
// initialization cycle between packages that include each other.
type ConfigFunc func() ([]Pattern, error)

// Patterns invokes this function and returns the results.
func (f ConfigFunc) Patterns() ([]Pattern, error) {
	return f()
}

var _ Config = ConfigFunc(nil)

// URLConf is a basic URL configuration: a pattern list plus the optional
// fallback handlers a consuming router conventionally reads alongside it.
type URLConf struct {
	// URLPatterns is the configuration's pattern list, in match order.
	URLPatterns []Pattern

	// NotFound is the optional handler for requests that match no
	// pattern. Exposed through ErrorHandlers; never decorated.
	NotFound http.Handler

	// Error is the optional handler for requests that fail internally.
	// Exposed through ErrorHandlers; never decorated.
	Error http.Handler
}

// Patterns returns the URLPatterns field.
func (u URLConf) Patterns() ([]Pattern, error) {
	return u.URLPatterns, nil
}

// NotFoundHandler returns the NotFound field.
func (u URLConf) NotFoundHandler() http.Handler {
	return u.NotFound
}

// ErrorHandler returns the Error field.
func (u URLConf) ErrorHandler() http.Handler {
	return u.Error
}

var _ Config = URLConf{}
var _ ErrorHandlers = URLConf{}
