// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package urlaux

import (
	"net/http"
	"sync"
)

// Decorated wraps a URL configuration so that a chain of decorators is
// applied to every route handler the configuration yields, no matter how
// deeply nested. It is itself a Config, so wrapped configurations can be
// mounted, registered, and wrapped again like any other.
//
// Decoration is lazy. Creating a Decorated does not touch the target:
// the target is resolved on first use, and decorators are applied each
// time Patterns is called. Mounts are not descended into eagerly.
// Instead, each mount's target is rewrapped in its own Decorated
// carrying the same chain, so decoration follows the routing tree only
// as far as it is actually traversed.
type Decorated struct {
	target   interface{}
	chain    Chain
	registry *Registry

	resolveOnce sync.Once
	module      Config
	err         error
}

// NewDecorated wraps a target URL configuration with a decorator chain.
// The target may be any value the registry's Resolve accepts: a Config,
// a registered name, or a []Pattern. A nil registry means Default().
//
// The target is not resolved here. An unknown name or an unsupported
// target value surfaces later, from Resolve or Patterns.
func NewDecorated(target interface{}, chain Chain, registry *Registry) *Decorated {
	if registry == nil {
		registry = Default()
	}

	return &Decorated{
		target:   target,
		chain:    chain,
		registry: registry,
	}
}

// Resolve returns the underlying Config this instance wraps. The first
// call resolves the target through the registry, and every subsequent
// call returns that same result, even if the registry has changed since.
func (d *Decorated) Resolve() (Config, error) {
	d.resolveOnce.Do(func() {
		d.module, d.err = d.registry.Resolve(d.target)
	})

	return d.module, d.err
}

// Patterns returns the target's patterns with this instance's chain
// applied. Each call re-reads the target's patterns and decorates them
// afresh, so targets whose pattern lists change between calls are
// honored. The returned slice is the caller's to keep: route handlers
// are newly wrapped, and mounts point at newly created child Decorated
// values, on every call.
func (d *Decorated) Patterns() ([]Pattern, error) {
	module, err := d.Resolve()
	if err != nil {
		return nil, err
	}

	patterns, err := module.Patterns()
	if err != nil {
		return nil, err
	}

	decorated := make([]Pattern, 0, len(patterns))
	for _, p := range patterns {
		dp, err := d.DecoratePattern(p)
		if err != nil {
			return nil, err
		}

		decorated = append(decorated, dp)
	}

	return decorated, nil
}

// DecoratePattern applies this instance's chain to a single pattern.
// A Route has its handler wrapped by the chain. A Mount keeps its
// handler-free fields and has its target rewrapped in a child Decorated
// with the same chain and registry, which defers decoration of the
// subtree until that child's Patterns is called. A pattern of any other
// kind produces an *UnknownPatternError.
func (d *Decorated) DecoratePattern(p Pattern) (Pattern, error) {
	switch p := p.(type) {
	case Route:
		p.Handler = d.chain.Then(p.Handler)
		return p, nil

	case Mount:
		p.URLConf = NewDecorated(p.URLConf, d.chain, d.registry)
		return p, nil

	default:
		return nil, &UnknownPatternError{Pattern: p}
	}
}

// NotFoundHandler returns the target's not found handler, if the target
// provides one. The handler is forwarded as is, without decoration. A
// target that cannot be resolved, or that provides no such handler,
// yields nil.
func (d *Decorated) NotFoundHandler() http.Handler {
	module, err := d.Resolve()
	if err != nil {
		return nil
	}

	return NotFoundHandler(module)
}

// ErrorHandler returns the target's error handler, if the target
// provides one. The handler is forwarded as is, without decoration. A
// target that cannot be resolved, or that provides no such handler,
// yields nil.
func (d *Decorated) ErrorHandler() http.Handler {
	module, err := d.Resolve()
	if err != nil {
		return nil
	}

	return ErrorHandler(module)
}

var _ Config = (*Decorated)(nil)
var _ ErrorHandlers = (*Decorated)(nil)
