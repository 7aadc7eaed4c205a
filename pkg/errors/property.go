// Copyright 2025 The gomeasure Authors
//
// SPDX-License-Identifier: Apache-2.0

package errors

import "fmt"

var (
	ErrNotReadable = func(name string) error {
		return NewPropertyError(nil, fmt.Sprintf("property %q has no query command", name))
	}
	ErrNotWritable = func(name string) error {
		return NewPropertyError(nil, fmt.Sprintf("property %q has no write command", name))
	}
)

// PropertyError reports misuse of a property descriptor: reading a
// write-only setting or writing a read-only measurement.
type PropertyError struct {
	msg string
	err error
}

func NewPropertyError(e error, msg string) *PropertyError {
	return &PropertyError{msg: msg, err: e}
}

func (e *PropertyError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("property: %q - %v", e.msg, e.err)
	} else {
		return fmt.Sprintf("property: %q", e.msg)
	}
}

func (e *PropertyError) Unwrap() error {
	return e.err
}

// ResponseParseError reports an instrument response that could not be
// coerced to the property's declared type. Distinct from transport
// failures: the round trip succeeded, the payload did not.
type ResponseParseError struct {
	msg string
	err error
}

func NewResponseParseError(e error, msg string) *ResponseParseError {
	return &ResponseParseError{msg: msg, err: e}
}

func (e *ResponseParseError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("response: %q - %v", e.msg, e.err)
	} else {
		return fmt.Sprintf("response: %q", e.msg)
	}
}

func (e *ResponseParseError) Unwrap() error {
	return e.err
}
