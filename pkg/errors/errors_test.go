// Copyright 2025 The gomeasure Authors
//
// SPDX-License-Identifier: Apache-2.0

package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrappersExposeCause(t *testing.T) {
	cause := fmt.Errorf("boom")

	assert.ErrorIs(t, NewDiscreteSetError(cause, "set"), cause)
	assert.ErrorIs(t, NewDomainError(cause, "domain"), cause)
	assert.ErrorIs(t, NewPropertyError(cause, "property"), cause)
	assert.ErrorIs(t, NewResponseParseError(cause, "response"), cause)
	assert.ErrorIs(t, NewTemplateError(cause, "template"), cause)
	assert.ErrorIs(t, NewTransportError(cause, "link"), cause)
	assert.ErrorIs(t, NewTransportTimeoutError(cause, "read"), cause)
}

func TestSentinelSurvivesWrapping(t *testing.T) {
	err := NewDiscreteSetError(ErrEmptySet, "true")
	assert.ErrorIs(t, err, ErrEmptySet)

	var setErr *DiscreteSetError
	assert.ErrorAs(t, err, &setErr)
}

func TestErrorRendering(t *testing.T) {
	assert.Equal(t, `template: "ABOR"`, NewTemplateError(nil, "ABOR").Error())
	assert.Equal(t,
		"validate: value 41 outside range [0, 40]",
		NewRangeError(41, 0, 40).Error())
	assert.Equal(t,
		`instrument: error -222: "Data out of range"`,
		NewInstrumentReportedError(-222, "Data out of range").Error())
}
