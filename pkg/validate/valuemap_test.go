// Copyright 2025 The gomeasure Authors
//
// SPDX-License-Identifier: Apache-2.0

package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	gmerrors "github.com/gomeasure/gomeasure/pkg/errors"
)

func TestMapRoundTrip(t *testing.T) {
	m := MustMap(map[bool]any{true: "ON", false: "OFF"})

	for _, value := range []bool{true, false} {
		wire, err := m.ToWire(value)
		assert.NoError(t, err)
		back, err := m.FromWire(wire.(string))
		assert.NoError(t, err)
		assert.Equal(t, value, back, "round trip")
	}
}

func TestMapIntTokens(t *testing.T) {
	m := MustMap(map[bool]any{true: 1, false: 0})

	wire, err := m.ToWire(true)
	assert.NoError(t, err)
	assert.Equal(t, 1, wire)

	// Responses arrive as text and match the token's string form.
	v, err := m.FromWire("0")
	assert.NoError(t, err)
	assert.Equal(t, false, v)
}

func TestMapUnknownValue(t *testing.T) {
	m := MustMap(map[string]any{"SINE": "SIN", "SQUARE": "SQU"})

	_, err := m.ToWire("TRIANGLE")
	assert.Error(t, err)
	var setErr *gmerrors.DiscreteSetError
	assert.ErrorAs(t, err, &setErr)

	_, err = m.FromWire("RAMP")
	assert.Error(t, err)
	var parseErr *gmerrors.ResponseParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestMapRejectsWrongValueType(t *testing.T) {
	// Maps are bound to properties through the Mapper interface, so the
	// logical type is only checked at translation time.
	_, err := BooleanToInt.ToWire("ON")
	var setErr *gmerrors.DiscreteSetError
	assert.ErrorAs(t, err, &setErr)
}

func TestMapRejectsCollidingTokens(t *testing.T) {
	_, err := NewMap(map[string]any{"A": 1, "B": 1})
	assert.Error(t, err)
}

func TestMapDomain(t *testing.T) {
	m := MustMap(map[bool]any{true: 1, false: 0})
	assert.ElementsMatch(t, []bool{true, false}, m.Domain())
}
