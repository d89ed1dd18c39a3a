// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package urlaux

import (
	"fmt"
	"net/http"
)

// Pattern is a node in a URL configuration. There are exactly two kinds:
// a Route, which binds a match expression to a handler, and a Mount,
// which defers a subtree of the URL space to a nested configuration.
//
// Patterns are plain data. The match expression is owned by whatever
// router consumes the configuration; this package copies it through
// without interpreting it. Both kinds are used as values, never as
// pointers.
type Pattern interface {
	// isPattern restricts implementations to this package so that the
	// two kinds can be matched exhaustively.
	isPattern()
}

// Route is a leaf pattern: a match expression bound to a handler.
type Route struct {
	// Pattern is the match expression source for this route.
	Pattern string

	// Handler is invoked when this route matches. Decoration replaces
	// this field with the composed handler and leaves everything else
	// untouched.
	Handler http.Handler

	// Name optionally identifies this route for reverse lookup.
	Name string

	// Defaults are extra arguments conventionally supplied to the
	// handler by the consuming router. Decoration carries the same map
	// through; it is shared, not copied.
	Defaults map[string]string
}

func (Route) isPattern() {}

// Mount is a resolver pattern: a match expression that hands the rest of
// the URL to a nested configuration.
type Mount struct {
	// Pattern is the match expression source for this mount point.
	Pattern string

	// URLConf references the nested configuration. It may be a Config,
	// a registered name, or a raw []Pattern; see Registry.Resolve for
	// the accepted kinds. The reference is not validated until the
	// nested configuration is first walked.
	URLConf interface{}

	// Defaults are extra arguments passed down to the nested
	// configuration. Shared through decoration like Route.Defaults.
	Defaults map[string]string

	// AppName is the application namespace of the nested configuration,
	// or empty.
	AppName string

	// Namespace is the instance namespace of the nested configuration,
	// or empty.
	Namespace string
}

func (Mount) isPattern() {}

// UnknownPatternError indicates a Pattern of a kind this package does not
// recognize, such as a *Route where a Route value was expected. Rather
// than guess at the node's shape, decoration reports it.
type UnknownPatternError struct {
	// Pattern is the offending node.
	Pattern Pattern
}

// Error fulfills the error interface.
func (e *UnknownPatternError) Error() string {
	return fmt.Sprintf("unknown pattern kind: %T", e.Pattern)
}
