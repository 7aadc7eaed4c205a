// Copyright 2025 The gomeasure Authors
//
// SPDX-License-Identifier: Apache-2.0

package validate

import (
	"fmt"

	"github.com/gomeasure/gomeasure/pkg/errors"
)

// Mapper translates between logical property values and their wire
// tokens. Properties hold a Mapper so a bool property can carry a
// bool-keyed Map while slice-typed properties carry none; the concrete
// value types are checked at translation time.
type Mapper interface {
	ToWire(value any) (any, error)
	FromWire(token string) (any, error)
}

// Map is a bijective translation table between logical values and wire
// tokens, applied after validation on write and inverted on read.
// Responses are matched against the string form of the wire token.
type Map[T comparable] struct {
	forward map[T]any
	reverse map[string]T
}

// NewMap builds a Map from logical-to-wire pairs. Two logical values
// sharing a wire token is a driver configuration bug and fails here.
func NewMap[T comparable](pairs map[T]any) (*Map[T], error) {
	m := &Map[T]{
		forward: make(map[T]any, len(pairs)),
		reverse: make(map[string]T, len(pairs)),
	}
	for value, wire := range pairs {
		token := fmt.Sprint(wire)
		if prev, ok := m.reverse[token]; ok {
			return nil, fmt.Errorf("wire token %q mapped by both %v and %v", token, prev, value)
		}
		m.forward[value] = wire
		m.reverse[token] = value
	}
	return m, nil
}

// MustMap is NewMap for package-level driver declarations.
func MustMap[T comparable](pairs map[T]any) *Map[T] {
	m, err := NewMap(pairs)
	if err != nil {
		panic(err)
	}
	return m
}

// ToWire translates a logical value to its wire token.
func (m *Map[T]) ToWire(value any) (any, error) {
	v, ok := value.(T)
	if !ok {
		return nil, errors.NewDiscreteSetError(nil,
			fmt.Sprintf("value %v has type %T, map expects %T", value, value, *new(T)))
	}
	wire, ok := m.forward[v]
	if !ok {
		return nil, errors.NewDiscreteSetError(nil, fmt.Sprintf("value %v not in value map", value))
	}
	return wire, nil
}

// FromWire translates a received token back to its logical value.
func (m *Map[T]) FromWire(token string) (any, error) {
	value, ok := m.reverse[token]
	if !ok {
		return nil, errors.NewResponseParseError(nil,
			fmt.Sprintf("token %q not in value map", token))
	}
	return value, nil
}

// Domain returns the logical values covered by the map, for use as a
// discrete-set validation domain.
func (m *Map[T]) Domain() []T {
	values := make([]T, 0, len(m.forward))
	for v := range m.forward {
		values = append(values, v)
	}
	return values
}

var _ Mapper = (*Map[bool])(nil)

// Predefined maps shared by instrument definitions.
var (
	BooleanToInt   = MustMap(map[bool]any{true: 1, false: 0})
	BooleanToOnOff = MustMap(map[bool]any{true: "ON", false: "OFF"})
)
