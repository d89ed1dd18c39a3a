// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package include

import (
	"errors"

	"github.com/xmidt-org/urlaux"
)

var (
	// ErrMissingNamespace indicates that an application name was supplied
	// without a namespace. An instance namespace is required whenever an
	// application namespace is set explicitly.
	ErrMissingNamespace = errors.New("include: a namespace is required when an application name is given")

	// ErrNamespaceConflict indicates that a namespace was supplied both
	// through WithNamespace and by an App target that carries its own.
	ErrNamespaceConflict = errors.New("include: cannot override the namespace of a target that supplies its own")
)

// App is an include target that carries its own application namespace,
// the way reusable applications publish their URL configurations. The
// application name always comes from the target in this form, and an
// App may also fix its instance namespace outright.
type App struct {
	// URLConf is the wrapped target. It may be any value the registry
	// accepts: a urlaux.Config, a registered name, or a []urlaux.Pattern.
	URLConf interface{}

	// AppName is the application namespace this target serves under.
	AppName string

	// Namespace optionally fixes the instance namespace. A target that
	// sets this cannot be combined with WithNamespace.
	Namespace string
}

// Included is a wrapped URL configuration together with the namespace
// information the mounting code needs.
type Included struct {
	// URLConf is the wrapped configuration. Reading its patterns yields
	// the target's patterns with the decorators applied.
	URLConf *urlaux.Decorated

	// AppName is the application namespace, or empty.
	AppName string

	// Namespace is the effective instance namespace, or empty. When no
	// namespace was given explicitly, this falls back to AppName.
	Namespace string
}

// At places this included configuration under a path pattern, yielding
// a mount that can appear in an enclosing pattern list.
func (i Included) At(pattern string) urlaux.Mount {
	return urlaux.Mount{
		Pattern:   pattern,
		URLConf:   i.URLConf,
		AppName:   i.AppName,
		Namespace: i.Namespace,
	}
}

type options struct {
	namespace string
	appName   string
	registry  *urlaux.Registry
}

// Option is a configurable option for New and Must.
type Option interface {
	apply(*options)
}

type optionFunc func(*options)

func (of optionFunc) apply(o *options) { of(o) }

// WithNamespace sets the instance namespace of the included
// configuration.
func WithNamespace(namespace string) Option {
	return optionFunc(func(o *options) {
		o.namespace = namespace
	})
}

// WithAppName sets the application namespace of the included
// configuration. Setting an application name requires WithNamespace as
// well. An App target supplies its own application name, which takes
// precedence over this option.
func WithAppName(appName string) Option {
	return optionFunc(func(o *options) {
		o.appName = appName
	})
}

// WithRegistry sets the registry used to resolve the target. By default
// the target resolves through urlaux.Default().
func WithRegistry(r *urlaux.Registry) Option {
	return optionFunc(func(o *options) {
		o.registry = r
	})
}

// New wraps an include target so that the given decorators are applied
// to every route handler reachable through it, however deeply nested.
//
// The target may be a urlaux.Config, a name registered with a registry,
// a []urlaux.Pattern, or an App carrying one of those along with its
// namespace information. The decorators may take any shape
// urlaux.AsChain accepts; nil means no decoration.
//
// The target is not resolved or validated here. Only the decorators and
// the namespace information are checked, so an unknown registered name
// surfaces later, when the wrapped configuration is first read.
func New(target interface{}, decorators interface{}, opts ...Option) (Included, error) {
	var o options
	for _, opt := range opts {
		opt.apply(&o)
	}

	if o.appName != "" && o.namespace == "" {
		return Included{}, ErrMissingNamespace
	}

	chain, err := urlaux.AsChain(decorators)
	if err != nil {
		return Included{}, err
	}

	urlconf := target
	appName, namespace := o.appName, o.namespace
	if app, ok := target.(App); ok {
		urlconf = app.URLConf
		appName = app.AppName
		if app.Namespace != "" {
			if namespace != "" {
				return Included{}, ErrNamespaceConflict
			}

			namespace = app.Namespace
		}
	}

	if namespace == "" {
		namespace = appName
	}

	return Included{
		URLConf:   urlaux.NewDecorated(urlconf, chain, o.registry),
		AppName:   appName,
		Namespace: namespace,
	}, nil
}

// Must is like New, but panics on error. It is intended for the
// package-level variable declarations URL configurations usually live
// in, where an invalid include is a programming error.
func Must(target interface{}, decorators interface{}, opts ...Option) Included {
	i, err := New(target, decorators, opts...)
	if err != nil {
		panic(err)
	}

	return i
}
