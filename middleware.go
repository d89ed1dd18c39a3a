// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package urlaux

import (
	"fmt"
	"net/http"
)

// Middleware represents a bundle of decorators for HTTP handlers.
// Decorator and Chain implement this interface, as does
// justinas/alice.Chain.
type Middleware interface {
	Then(http.Handler) http.Handler
}

// Decorator applies decoration to a single http.Handler: it accepts a
// handler and returns a handler that wraps it.
type Decorator func(http.Handler) http.Handler

// Then implements Middleware.
func (d Decorator) Then(next http.Handler) http.Handler {
	return d(next)
}

var _ Middleware = Decorator(nil)

// Chain is an immutable ordered sequence of decorators. This type is
// essentially a bundle of middleware for the handlers in a URL
// configuration.
type Chain struct {
	d []Decorator
}

// NewChain creates a chain from a sequence of decorators. The decorators
// always execute in the order presented here: the first decorator is the
// outermost wrapper around whatever handler the chain is applied to.
func NewChain(d ...Decorator) Chain {
	return Chain{
		d: append([]Decorator{}, d...),
	}
}

// Append adds additional decorators to this chain, and returns the new
// chain. This chain is not modified. If more has zero length, this chain
// is returned.
func (c Chain) Append(more ...Decorator) Chain {
	if len(more) > 0 {
		return Chain{
			d: append(
				append([]Decorator{}, c.d...),
				more...,
			),
		}
	}

	return c
}

// Extend is like Append, except that the additional decorators come from
// another chain.
func (c Chain) Extend(more Chain) Chain {
	return c.Append(more.d...)
}

// Len returns the count of decorators in this chain.
func (c Chain) Len() int {
	return len(c.d)
}

// Then applies the given sequence of decorators to the next handler.
// Decorators are applied in reverse order, so that the order of
// execution matches the order supplied to this chain: for NewChain(d1,
// d2) the result behaves as d1(d2(next)), and d1 sees the request first.
//
// An empty chain returns next as is.
func (c Chain) Then(next http.Handler) http.Handler {
	for i := len(c.d) - 1; i >= 0; i-- {
		next = c.d[i](next)
	}

	return next
}

var _ Middleware = Chain{}

// AsChain normalizes the various shapes a decorator set may take into a
// Chain. A single decorator is treated as a one-element sequence.
// Accepted shapes:
//
//   - nil, which yields the empty chain
//   - Decorator and bare func(http.Handler) http.Handler values
//   - []Decorator and []func(http.Handler) http.Handler
//   - Chain, returned as is
//   - any other Middleware implementation, including justinas/alice.Chain
//   - []Middleware
//
// Anything else produces an *UnsupportedDecoratorsError.
func AsChain(v interface{}) (Chain, error) {
	switch d := v.(type) {
	case nil:
		return Chain{}, nil

	case Chain:
		return d, nil

	case Decorator:
		return NewChain(d), nil

	case func(http.Handler) http.Handler:
		return NewChain(d), nil

	case []Decorator:
		return NewChain(d...), nil

	case []func(http.Handler) http.Handler:
		c := Chain{d: make([]Decorator, 0, len(d))}
		for _, f := range d {
			c.d = append(c.d, f)
		}

		return c, nil

	case Middleware:
		return NewChain(d.Then), nil

	case []Middleware:
		c := Chain{d: make([]Decorator, 0, len(d))}
		for _, m := range d {
			c.d = append(c.d, m.Then)
		}

		return c, nil

	default:
		return Chain{}, &UnsupportedDecoratorsError{Value: v}
	}
}

// UnsupportedDecoratorsError indicates a value that AsChain cannot
// interpret as a decorator or a sequence of decorators.
type UnsupportedDecoratorsError struct {
	// Value is the rejected value.
	Value interface{}
}

// Error fulfills the error interface.
func (e *UnsupportedDecoratorsError) Error() string {
	return fmt.Sprintf("cannot interpret %T as decorators", e.Value)
}
