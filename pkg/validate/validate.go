// Copyright 2025 The gomeasure Authors
//
// SPDX-License-Identifier: Apache-2.0

// Package validate provides the pure value validators and bidirectional
// value maps applied by property descriptors before a command is
// formatted and after a response is parsed.
package validate

import (
	"fmt"
	"math"

	"github.com/gomeasure/gomeasure/pkg/errors"
)

// Number covers the numeric types accepted by range and nearest-match
// validation.
type Number interface {
	~int | ~int64 | ~float64
}

// Func checks a candidate against the declared domain and returns the
// value to transmit. The domain slice holds [min, max] for range
// validators and the full membership list for discrete sets.
type Func[T any] func(value T, values []T) (T, error)

// StrictRange returns value unchanged when it lies inside the inclusive
// range [values[0], values[1]].
func StrictRange[T Number](value T, values []T) (T, error) {
	min, max, err := rangeBounds(values)
	if err != nil {
		return value, err
	}
	if value < min || value > max {
		return value, errors.NewRangeError(float64(value), float64(min), float64(max))
	}
	return value, nil
}

// TruncatedRange clamps value to the inclusive range [values[0], values[1]].
func TruncatedRange[T Number](value T, values []T) (T, error) {
	min, max, err := rangeBounds(values)
	if err != nil {
		return value, err
	}
	if value < min {
		return min, nil
	}
	if value > max {
		return max, nil
	}
	return value, nil
}

func rangeBounds[T Number](values []T) (T, T, error) {
	var zero T
	if len(values) != 2 {
		return zero, zero, errors.NewDomainError(nil,
			fmt.Sprintf("range requires [min, max], got %d values", len(values)))
	}
	if values[1] < values[0] {
		return values[1], values[0], nil
	}
	return values[0], values[1], nil
}

// StrictSet returns value unchanged when it is a member of values.
// Membership is by value equality.
func StrictSet[T comparable](value T, values []T) (T, error) {
	if len(values) == 0 {
		return value, errors.NewDiscreteSetError(errors.ErrEmptySet, fmt.Sprintf("%v", value))
	}
	for _, v := range values {
		if v == value {
			return value, nil
		}
	}
	return value, errors.NewDiscreteSetError(nil,
		fmt.Sprintf("value %v not in discrete set %v", value, values))
}

// NearestSet returns the member of values closest to value by absolute
// difference. On a tie the lower member wins.
func NearestSet[T Number](value T, values []T) (T, error) {
	var zero T
	if len(values) == 0 {
		return zero, errors.NewDiscreteSetError(errors.ErrEmptySet, fmt.Sprintf("%v", value))
	}
	best := values[0]
	bestDiff := math.Abs(float64(values[0]) - float64(value))
	for _, v := range values[1:] {
		diff := math.Abs(float64(v) - float64(value))
		if diff < bestDiff || (diff == bestDiff && v < best) {
			best = v
			bestDiff = diff
		}
	}
	return best, nil
}
