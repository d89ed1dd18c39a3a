// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package urlaux implements decorated includes for URL configuration trees:
a way of applying a set of handler decorators uniformly to every handler
reachable under an included URL configuration, including handlers in
nested includes.

A URL configuration is an ordered list of Pattern nodes. A Route binds a
match expression to an http.Handler. A Mount hands a subtree of the URL
space to a nested configuration, referenced by value or by registered
name. This package never matches or dispatches anything: the pattern
expressions are copied through verbatim for whatever router consumes the
tree.

The Decorated type wraps a configuration so that walking it yields the
same tree with every handler decorated. Decoration is lazy: nested
configurations are not touched until their branch of the tree is walked,
and string references are not resolved until first use. The include
subpackage builds Decorated wrappers with the argument conventions an
include call is expected to have.
*/
package urlaux
