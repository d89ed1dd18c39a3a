// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package urlaux

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xmidt-org/httpaux"
)

func testPatternListPatterns(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		pl = PatternList{
			Route{Pattern: "status", Handler: httpaux.ConstantHandler{StatusCode: 299}},
			Mount{Pattern: "api/", URLConf: "api.urls"},
		}
	)

	patterns, err := pl.Patterns()
	require.NoError(err)
	assert.Equal([]Pattern(pl), patterns)
}

func testPatternListEmpty(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		pl PatternList
	)

	patterns, err := pl.Patterns()
	require.NoError(err)
	assert.Empty(patterns)
}

func TestPatternList(t *testing.T) {
	t.Run("Patterns", testPatternListPatterns)
	t.Run("Empty", testPatternListEmpty)
}

func testConfigFuncPatterns(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		expected = []Pattern{
			Route{Pattern: "status", Handler: httpaux.ConstantHandler{StatusCode: 299}},
		}

		cf = ConfigFunc(func() ([]Pattern, error) {
			return expected, nil
		})
	)

	patterns, err := cf.Patterns()
	require.NoError(err)
	assert.Equal(expected, patterns)
}

func testConfigFuncError(t *testing.T) {
	var (
		assert = assert.New(t)

		expectedErr = errors.New("expected")

		cf = ConfigFunc(func() ([]Pattern, error) {
			return nil, expectedErr
		})
	)

	patterns, err := cf.Patterns()
	assert.Nil(patterns)
	assert.Equal(expectedErr, err)
}

func TestConfigFunc(t *testing.T) {
	t.Run("Patterns", testConfigFuncPatterns)
	t.Run("Error", testConfigFuncError)
}

func TestURLConf(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		notFound = httpaux.ConstantHandler{StatusCode: 404}
		onError  = httpaux.ConstantHandler{StatusCode: 500}

		uc = URLConf{
			URLPatterns: []Pattern{
				Route{Pattern: "status", Handler: httpaux.ConstantHandler{StatusCode: 299}},
			},
			NotFound: notFound,
			Error:    onError,
		}
	)

	patterns, err := uc.Patterns()
	require.NoError(err)
	assert.Equal(uc.URLPatterns, patterns)

	assert.Equal(notFound, uc.NotFoundHandler())
	assert.Equal(onError, uc.ErrorHandler())
}

func testHandlerForConfigWithHandlers(t *testing.T) {
	var (
		assert = assert.New(t)

		notFound = httpaux.ConstantHandler{StatusCode: 404}
		onError  = httpaux.ConstantHandler{StatusCode: 500}

		uc = URLConf{
			NotFound: notFound,
			Error:    onError,
		}
	)

	assert.Equal(notFound, NotFoundHandler(uc))
	assert.Equal(onError, ErrorHandler(uc))
}

func testHandlerForConfigWithoutHandlers(t *testing.T) {
	var (
		assert = assert.New(t)

		pl PatternList
	)

	assert.Nil(NotFoundHandler(pl))
	assert.Nil(ErrorHandler(pl))
}

func testHandlerForConfigUnset(t *testing.T) {
	var (
		assert = assert.New(t)

		uc URLConf
	)

	assert.Nil(NotFoundHandler(uc))
	assert.Nil(ErrorHandler(uc))
}

func TestHandlerHelpers(t *testing.T) {
	t.Run("WithHandlers", testHandlerForConfigWithHandlers)
	t.Run("WithoutHandlers", testHandlerForConfigWithoutHandlers)
	t.Run("Unset", testHandlerForConfigUnset)
}
