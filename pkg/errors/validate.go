// Copyright 2025 The gomeasure Authors
//
// SPDX-License-Identifier: Apache-2.0

package errors

import "fmt"

var (
	ErrEmptySet = fmt.Errorf("discrete set is empty")
)

// RangeError reports a candidate value outside a declared numeric range.
// It is raised locally, before anything is transmitted.
type RangeError struct {
	Value float64
	Min   float64
	Max   float64
}

func NewRangeError(value, min, max float64) *RangeError {
	return &RangeError{Value: value, Min: min, Max: max}
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("validate: value %g outside range [%g, %g]", e.Value, e.Min, e.Max)
}

// DiscreteSetError reports a candidate value not contained in a declared
// discrete set.
type DiscreteSetError struct {
	msg string
	err error
}

func NewDiscreteSetError(e error, msg string) *DiscreteSetError {
	return &DiscreteSetError{msg: msg, err: e}
}

func (e *DiscreteSetError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("validate: %q - %v", e.msg, e.err)
	} else {
		return fmt.Sprintf("validate: %q", e.msg)
	}
}

func (e *DiscreteSetError) Unwrap() error {
	return e.err
}

// DomainError reports a misdeclared validation domain, such as a range
// domain without exactly two values. A driver authoring bug, raised
// before anything is transmitted.
type DomainError struct {
	msg string
	err error
}

func NewDomainError(e error, msg string) *DomainError {
	return &DomainError{msg: msg, err: e}
}

func (e *DomainError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("validate: %q - %v", e.msg, e.err)
	} else {
		return fmt.Sprintf("validate: %q", e.msg)
	}
}

func (e *DomainError) Unwrap() error {
	return e.err
}
