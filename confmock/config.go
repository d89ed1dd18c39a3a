// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package confmock

import (
	"net/http"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/xmidt-org/urlaux"
)

// PatternsMethodName is the name of the urlaux.Config.Patterns method.
// Used to start expectation chains.
const PatternsMethodName = "Patterns"

// NotFoundHandlerMethodName is the name of the urlaux.ErrorHandlers.NotFoundHandler method.
const NotFoundHandlerMethodName = "NotFoundHandler"

// ErrorHandlerMethodName is the name of the urlaux.ErrorHandlers.ErrorHandler method.
const ErrorHandlerMethodName = "ErrorHandler"

// Config is a mocked urlaux.Config.  Instances should be created with
// NewConfig or NewConfigSuite.
//
// This type alters the Mock API slightly, since each instance is tied
// to a mock.TestingT instance.
type Config struct {
	mock.Mock

	t mock.TestingT
}

// NewConfig returns a mock urlaux.Config for the given test.
func NewConfig(t mock.TestingT) *Config {
	c := new(Config)
	c.Test(t)
	return c
}

// NewConfigSuite returns a mock urlaux.Config for the given suite.
func NewConfigSuite(s suite.TestingSuite) *Config {
	return NewConfig(s.T())
}

// Test changes the test instance on this mock.
func (m *Config) Test(t mock.TestingT) {
	m.Mock.Test(t)
	m.t = t
}

// Patterns implements urlaux.Config and is driven by the mock's expectations.
func (m *Config) Patterns() ([]urlaux.Pattern, error) {
	arguments := m.Called()

	var (
		first, _ = arguments.Get(0).([]urlaux.Pattern)
		err, _   = arguments.Get(1).(error)
	)

	return first, err
}

// OnPatterns starts a *mock.Call fluent chain for defining a Patterns
// expectation.
func (m *Config) OnPatterns() *mock.Call {
	return m.On(PatternsMethodName)
}

// AssertExpectations uses the TestingT instance set at construction or with Test
// to assert all the calls have been executed.
func (m *Config) AssertExpectations() {
	m.Mock.AssertExpectations(m.t)
}

var _ urlaux.Config = (*Config)(nil)

// HandlerConfig is a mocked urlaux.Config that also mocks the optional
// urlaux.ErrorHandlers interface.  Typical construction is:
//
//   func(t *testing.T) {
//     hc := &HandlerConfig{
//       Config: NewConfig(t),
//     }
//   }
type HandlerConfig struct {
	*Config
}

// NotFoundHandler implements urlaux.ErrorHandlers and is driven by this mock's expectations.
func (m *HandlerConfig) NotFoundHandler() http.Handler {
	arguments := m.Called()
	h, _ := arguments.Get(0).(http.Handler)
	return h
}

// OnNotFoundHandler starts a fluent chain for defining a NotFoundHandler expectation.
func (m *HandlerConfig) OnNotFoundHandler() *mock.Call {
	return m.On(NotFoundHandlerMethodName)
}

// ErrorHandler implements urlaux.ErrorHandlers and is driven by this mock's expectations.
func (m *HandlerConfig) ErrorHandler() http.Handler {
	arguments := m.Called()
	h, _ := arguments.Get(0).(http.Handler)
	return h
}

// OnErrorHandler starts a fluent chain for defining an ErrorHandler expectation.
func (m *HandlerConfig) OnErrorHandler() *mock.Call {
	return m.On(ErrorHandlerMethodName)
}

var _ urlaux.Config = (*HandlerConfig)(nil)
var _ urlaux.ErrorHandlers = (*HandlerConfig)(nil)
