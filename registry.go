// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package urlaux

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// NotRegisteredError indicates that a name has no Config registered
// under it.
type NotRegisteredError struct {
	// Name is the name that was looked up.
	Name string
}

// Error fulfills the error interface.
func (e *NotRegisteredError) Error() string {
	return fmt.Sprintf("no URL configuration registered under %q", e.Name)
}

// UnsupportedTargetError indicates a value that Resolve cannot interpret
// as a URL configuration.
type UnsupportedTargetError struct {
	// Target is the rejected value.
	Target interface{}
}

// Error fulfills the error interface.
func (e *UnsupportedTargetError) Error() string {
	return fmt.Sprintf("cannot interpret %T as a URL configuration", e.Target)
}

// Registry is a set of named URL configurations. Names stand in for
// configurations wherever a Mount target or an include target is
// expected, which lets configurations refer to each other without the
// packages that define them importing each other.
//
// A Registry is safe for concurrent use. The zero value is not usable.
// Use NewRegistry, or the package-level functions that operate on the
// default registry.
type Registry struct {
	lock    sync.RWMutex
	configs map[string]Config
}

// NewRegistry creates an empty, usable Registry.
func NewRegistry() *Registry {
	return &Registry{
		configs: make(map[string]Config),
	}
}

// Register associates a Config with a name. The name must be nonempty,
// the Config must be non-nil, and the name must not already be taken.
func (r *Registry) Register(name string, c Config) error {
	if len(name) == 0 {
		return errors.New("a URL configuration name cannot be empty")
	} else if c == nil {
		return fmt.Errorf("a nil Config cannot be registered under %q", name)
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	if _, exists := r.configs[name]; exists {
		return fmt.Errorf("a URL configuration is already registered under %q", name)
	}

	r.configs[name] = c
	return nil
}

// MustRegister is like Register, but panics on error. It is intended
// for registrations performed from package init functions.
func (r *Registry) MustRegister(name string, c Config) {
	if err := r.Register(name, c); err != nil {
		panic(err)
	}
}

// Lookup returns the Config registered under name. It returns a
// *NotRegisteredError if name is unknown.
func (r *Registry) Lookup(name string) (Config, error) {
	r.lock.RLock()
	c, exists := r.configs[name]
	r.lock.RUnlock()

	if !exists {
		return nil, &NotRegisteredError{Name: name}
	}

	return c, nil
}

// Names returns the sorted names of all registered configurations.
func (r *Registry) Names() []string {
	r.lock.RLock()
	names := make([]string, 0, len(r.configs))
	for name := range r.configs {
		names = append(names, name)
	}
	r.lock.RUnlock()

	sort.Strings(names)
	return names
}

// Resolve interprets a target value as a Config. Accepted shapes:
//
//   - Config, including *Decorated, returned as is
//   - string, resolved through Lookup
//   - []Pattern, wrapped in a PatternList
//
// Anything else produces an *UnsupportedTargetError.
func (r *Registry) Resolve(target interface{}) (Config, error) {
	switch t := target.(type) {
	case Config:
		return t, nil

	case string:
		return r.Lookup(t)

	case []Pattern:
		return PatternList(t), nil

	default:
		return nil, &UnsupportedTargetError{Target: target}
	}
}

var defaultRegistry = NewRegistry()

// Default returns the registry used by the package-level Register,
// MustRegister, Lookup, and Names functions. This is also the registry
// a Decorated falls back to when it was created without one.
func Default() *Registry {
	return defaultRegistry
}

// Register associates a Config with a name in the default registry.
func Register(name string, c Config) error {
	return defaultRegistry.Register(name, c)
}

// MustRegister is like Register, but panics on error.
func MustRegister(name string, c Config) {
	defaultRegistry.MustRegister(name, c)
}

// Lookup returns the Config registered under name in the default
// registry.
func Lookup(name string) (Config, error) {
	return defaultRegistry.Lookup(name)
}

// Names returns the sorted names of all configurations in the default
// registry.
func Names() []string {
	return defaultRegistry.Names()
}
