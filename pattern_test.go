// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package urlaux

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xmidt-org/httpaux"
)

// unknownPattern is a pattern kind this package does not define.
type unknownPattern struct{}

func (unknownPattern) isPattern() {}

func testDecoratePatternUnknownKind(t *testing.T) {
	var (
		assert = assert.New(t)

		d = NewDecorated(PatternList{}, NewChain(), nil)
	)

	p, err := d.DecoratePattern(unknownPattern{})
	assert.Nil(p)
	assert.IsType((*UnknownPatternError)(nil), err)
	assert.Contains(err.Error(), "unknownPattern")
}

func testDecoratePatternPointerRoute(t *testing.T) {
	var (
		assert = assert.New(t)

		d = NewDecorated(PatternList{}, NewChain(), nil)
	)

	// routes are decorated by value, not through pointers
	p, err := d.DecoratePattern(&Route{Pattern: "status"})
	assert.Nil(p)
	assert.IsType((*UnknownPatternError)(nil), err)
}

func testDecoratePatternPropagation(t *testing.T) {
	var (
		assert = assert.New(t)

		d = NewDecorated(
			PatternList{
				Route{Pattern: "status", Handler: httpaux.ConstantHandler{StatusCode: 299}},
				unknownPattern{},
			},
			NewChain(),
			nil,
		)
	)

	p, err := d.Patterns()
	assert.Nil(p)
	assert.IsType((*UnknownPatternError)(nil), err)
}

func TestDecoratePattern(t *testing.T) {
	t.Run("UnknownKind", testDecoratePatternUnknownKind)
	t.Run("PointerRoute", testDecoratePatternPointerRoute)
	t.Run("Propagation", testDecoratePatternPropagation)
}

func TestUnknownPatternError(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		err = &UnknownPatternError{Pattern: unknownPattern{}}
	)

	require.NotEmpty(err.Error())
	assert.Contains(err.Error(), "unknownPattern")
}
