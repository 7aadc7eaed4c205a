// Copyright 2025 The gomeasure Authors
//
// SPDX-License-Identifier: Apache-2.0

package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	gmerrors "github.com/gomeasure/gomeasure/pkg/errors"
)

func TestStrictRange(t *testing.T) {
	limits := []float64{0, 40}

	v, err := StrictRange(10.5, limits)
	assert.NoError(t, err)
	assert.Equal(t, 10.5, v)

	// Bounds are inclusive.
	v, err = StrictRange(0.0, limits)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, v)
	v, err = StrictRange(40.0, limits)
	assert.NoError(t, err)
	assert.Equal(t, 40.0, v)

	_, err = StrictRange(41.0, limits)
	assert.Error(t, err)
	var rangeErr *gmerrors.RangeError
	assert.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, 41.0, rangeErr.Value)
	assert.Equal(t, 0.0, rangeErr.Min)
	assert.Equal(t, 40.0, rangeErr.Max)

	_, err = StrictRange(-0.1, limits)
	assert.Error(t, err)
}

func TestStrictRangeSwappedBounds(t *testing.T) {
	v, err := StrictRange(3.0, []float64{10, 0})
	assert.NoError(t, err)
	assert.Equal(t, 3.0, v)

	_, err = StrictRange(11.0, []float64{10, 0})
	assert.Error(t, err)
}

func TestStrictRangeBadDomain(t *testing.T) {
	// A malformed range domain is a declaration bug, not a set-membership
	// failure.
	var domErr *gmerrors.DomainError

	_, err := StrictRange(1.0, []float64{0, 1, 2})
	assert.ErrorAs(t, err, &domErr)
	_, err = StrictRange(1.0, nil)
	assert.ErrorAs(t, err, &domErr)
	_, err = TruncatedRange(1.0, []float64{5})
	assert.ErrorAs(t, err, &domErr)
}

func TestStrictRangeInt(t *testing.T) {
	v, err := StrictRange(7, []int{1, 50000})
	assert.NoError(t, err)
	assert.Equal(t, 7, v)

	_, err = StrictRange(0, []int{1, 50000})
	assert.Error(t, err)
}

func TestTruncatedRange(t *testing.T) {
	limits := []float64{0, 10}

	v, err := TruncatedRange(5.0, limits)
	assert.NoError(t, err)
	assert.Equal(t, 5.0, v)

	v, err = TruncatedRange(15.0, limits)
	assert.NoError(t, err)
	assert.Equal(t, 10.0, v)

	v, err = TruncatedRange(-3.0, limits)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, v)
}

func TestStrictSet(t *testing.T) {
	ranges := []string{"LOW", "MED", "HIGH"}

	v, err := StrictSet("MED", ranges)
	assert.NoError(t, err)
	assert.Equal(t, "MED", v)

	_, err = StrictSet("BOGUS", ranges)
	assert.Error(t, err)
	var setErr *gmerrors.DiscreteSetError
	assert.ErrorAs(t, err, &setErr)

	// Membership is case sensitive.
	_, err = StrictSet("med", ranges)
	assert.Error(t, err)
}

func TestStrictSetEmpty(t *testing.T) {
	_, err := StrictSet("MED", nil)
	assert.Error(t, err)
	assert.ErrorIs(t, err, gmerrors.ErrEmptySet)
}

func TestNearestSet(t *testing.T) {
	ranges := []float64{0.02, 0.2, 2, 20, 200}

	v, err := NearestSet(1.8, ranges)
	assert.NoError(t, err)
	assert.Equal(t, 2.0, v)

	// Exact member maps to itself.
	v, err = NearestSet(20.0, ranges)
	assert.NoError(t, err)
	assert.Equal(t, 20.0, v)

	// Tie resolves to the lower member.
	v, err = NearestSet(3.0, []float64{2, 4})
	assert.NoError(t, err)
	assert.Equal(t, 2.0, v)

	_, err = NearestSet(3.0, nil)
	assert.Error(t, err)
	assert.ErrorIs(t, err, gmerrors.ErrEmptySet)
}
