// Copyright 2025 The gomeasure Authors
//
// SPDX-License-Identifier: Apache-2.0

package errors

import "fmt"

var (
	ErrNoResponse = fmt.Errorf("no response scripted for command")
	ErrClosed     = fmt.Errorf("transport is closed")
)

// TransportError reports a link failure. It is surfaced to the caller
// unchanged; the engine performs no retries.
type TransportError struct {
	msg string
	err error
}

func NewTransportError(e error, msg string) *TransportError {
	return &TransportError{msg: msg, err: e}
}

func (e *TransportError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("transport: %q - %v", e.msg, e.err)
	} else {
		return fmt.Sprintf("transport: %q", e.msg)
	}
}

func (e *TransportError) Unwrap() error {
	return e.err
}

// TransportTimeoutError reports that a read did not complete within the
// transport's configured deadline.
type TransportTimeoutError struct {
	msg string
	err error
}

func NewTransportTimeoutError(e error, msg string) *TransportTimeoutError {
	return &TransportTimeoutError{msg: msg, err: e}
}

func (e *TransportTimeoutError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("transport: timeout: %q - %v", e.msg, e.err)
	} else {
		return fmt.Sprintf("transport: timeout: %q", e.msg)
	}
}

func (e *TransportTimeoutError) Unwrap() error {
	return e.err
}
