// Copyright 2025 The gomeasure Authors
//
// SPDX-License-Identifier: Apache-2.0

package errors

import "fmt"

// TemplateError reports a malformed command template: an unresolved
// placeholder token reaching the transport, or a write template without
// exactly one value slot. These are driver authoring bugs and are never
// retried.
type TemplateError struct {
	msg string
	err error
}

func NewTemplateError(e error, msg string) *TemplateError {
	return &TemplateError{msg: msg, err: e}
}

func (e *TemplateError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("template: %q - %v", e.msg, e.err)
	} else {
		return fmt.Sprintf("template: %q", e.msg)
	}
}

func (e *TemplateError) Unwrap() error {
	return e.err
}
