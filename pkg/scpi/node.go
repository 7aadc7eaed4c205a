// Copyright 2025 The gomeasure Authors
//
// SPDX-License-Identifier: Apache-2.0

// Package scpi implements the command-binding engine shared by all
// instrument drivers: typed property descriptors bound to query/write
// command templates, an addressable node hierarchy (instrument, channel,
// command group) with textual placeholder resolution, and error-queue
// checking composed around reads and writes.
package scpi

// Node is an addressable endpoint owning property descriptors. The root
// node (Instrument) performs transport I/O; non-root nodes substitute
// their own placeholders and delegate to their parent, so substitutions
// compose outward-to-inward when nodes are nested.
type Node interface {
	Write(command string) error
	Read() (string, error)
	ReadBytes(count int) (data []byte, err error)
	Ask(command string) (response string, err error)

	// Placeholders maps this node's placeholder tokens to identity text.
	Placeholders() map[string]string

	CheckErrors() ([]ErrorEntry, error)
	CheckGetErrors() error
	CheckSetErrors() error

	propertyValues(name string) (any, bool)
	propertyMap(name string) (any, bool)
}

// Identifiable is implemented by nodes that answer *IDN?.
type Identifiable interface {
	ID() (string, error)
}

// ErrorQueue is implemented by nodes that can drain an instrument
// error queue.
type ErrorQueue interface {
	CheckErrors() ([]ErrorEntry, error)
}

// overrides is the per-instance shadow storage for dynamic properties.
// Package-level property declarations are shared across all instances of
// a driver type and are never mutated; an override set here shadows the
// declaration for this node only.
type overrides struct {
	values map[string]any
	maps   map[string]any
}

// SetPropertyValues overrides the validation domain of the named dynamic
// property on this node instance.
func (o *overrides) SetPropertyValues(name string, values any) {
	if o.values == nil {
		o.values = make(map[string]any)
	}
	o.values[name] = values
}

// SetPropertyMap overrides the value map of the named dynamic property
// on this node instance.
func (o *overrides) SetPropertyMap(name string, m any) {
	if o.maps == nil {
		o.maps = make(map[string]any)
	}
	o.maps[name] = m
}

func (o *overrides) propertyValues(name string) (any, bool) {
	v, ok := o.values[name]
	return v, ok
}

func (o *overrides) propertyMap(name string) (any, bool) {
	m, ok := o.maps[name]
	return m, ok
}
