// Copyright 2025 The gomeasure Authors
//
// SPDX-License-Identifier: Apache-2.0

package errors

import "fmt"

// ErrorQueueOverflowError reports that draining the instrument's error
// queue did not reach the "no error" sentinel within the configured
// iteration bound.
type ErrorQueueOverflowError struct {
	Limit int
}

func NewErrorQueueOverflowError(limit int) *ErrorQueueOverflowError {
	return &ErrorQueueOverflowError{Limit: limit}
}

func (e *ErrorQueueOverflowError) Error() string {
	return fmt.Sprintf("instrument: error queue not drained after %d queries", e.Limit)
}

// InstrumentReportedError carries a non-zero entry from the instrument's
// error queue. The engine only logs queue entries; callers opt in to
// raising this through the error-check hooks.
type InstrumentReportedError struct {
	Code    int
	Message string
}

func NewInstrumentReportedError(code int, message string) *InstrumentReportedError {
	return &InstrumentReportedError{Code: code, Message: message}
}

func (e *InstrumentReportedError) Error() string {
	return fmt.Sprintf("instrument: error %d: %q", e.Code, e.Message)
}
