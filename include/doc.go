// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package include wraps URL configurations for mounting so that a set of
decorators is applied to every route handler reachable through them,
including the handlers of nested mounts.

The New function accepts an include target and the decorators to apply,
and produces an Included that can be placed under a path with At:

  protected, err := include.New(
    "accounts.urls",
    requireAuth,
    include.WithNamespace("accounts"),
  )
  if err != nil {
    // handle the configuration error
  }

  root := urlaux.PatternList{
    protected.At("/accounts/"),
  }

Must is the panicking variant, convenient for the package-level variable
declarations URL configurations usually live in:

  var root = urlaux.PatternList{
    include.Must("accounts.urls", requireAuth, include.WithNamespace("accounts")).At("/accounts/"),
  }

Decoration is lazy and recursive: nothing is resolved or wrapped until
the configuration's patterns are actually read, and targets mounted
inside the wrapped configuration are wrapped with the same decorators.
See the urlaux package for the details of that contract.
*/
package include
