// Copyright 2025 The gomeasure Authors
//
// SPDX-License-Identifier: Apache-2.0

package scpi

import (
	"testing"

	"github.com/stretchr/testify/assert"

	gmerrors "github.com/gomeasure/gomeasure/pkg/errors"
	"github.com/gomeasure/gomeasure/pkg/transport"
)

func TestCheckErrorsEmptyQueue(t *testing.T) {
	inst, stub := testInstrument(transport.TxRx("SYST:ERR?", `0,"No error"`))

	entries, err := inst.CheckErrors()
	assert.NoError(t, err)
	assert.Empty(t, entries)
	assert.NoError(t, stub.Done())
}

func TestCheckErrorsCollectsInOrder(t *testing.T) {
	inst, stub := testInstrument(
		transport.TxRx("SYST:ERR?", `-113,"Undefined header"`),
		transport.TxRx("SYST:ERR?", `-222,"Data out of range"`),
		transport.TxRx("SYST:ERR?", `0,"No error"`),
	)

	entries, err := inst.CheckErrors()
	assert.NoError(t, err)
	assert.Equal(t, []ErrorEntry{
		{Code: -113, Message: "Undefined header"},
		{Code: -222, Message: "Data out of range"},
	}, entries)
	assert.NoError(t, stub.Done())
}

func TestCheckErrorsOverflow(t *testing.T) {
	// A stuck instrument repeats the same entry forever. Exactly
	// ErrorLimit queries are issued, then the drain gives up.
	script := make([]transport.Exchange, 0, 5)
	for i := 0; i < 5; i++ {
		script = append(script, transport.TxRx("SYST:ERR?", `-350,"Queue overflow"`))
	}
	inst, stub := testInstrument(script...)
	inst.ErrorLimit = 5

	entries, err := inst.CheckErrors()
	var overflow *gmerrors.ErrorQueueOverflowError
	assert.ErrorAs(t, err, &overflow)
	assert.Equal(t, 5, overflow.Limit)
	assert.Len(t, entries, 5)
	assert.Len(t, stub.Trace, 5)
	assert.NoError(t, stub.Done())
}

func TestCheckErrorsCustomCommand(t *testing.T) {
	inst, stub := testInstrument(transport.TxRx("SYSTem:ERRor:NEXT?", `0,"No error"`))
	inst.ErrorCommand = "SYSTem:ERRor:NEXT?"

	_, err := inst.CheckErrors()
	assert.NoError(t, err)
	assert.NoError(t, stub.Done())
}

func TestCheckErrorsMalformedEntry(t *testing.T) {
	inst, _ := testInstrument(transport.TxRx("SYST:ERR?", "not an entry"))

	_, err := inst.CheckErrors()
	var parseErr *gmerrors.ResponseParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestCheckSetErrorsWithoutHookOnlyLogs(t *testing.T) {
	inst, stub := testInstrument(
		transport.TxRx("SYST:ERR?", `-113,"Undefined header"`),
		transport.TxRx("SYST:ERR?", `0,"No error"`),
	)

	assert.NoError(t, inst.CheckSetErrors())
	assert.NoError(t, stub.Done())
}

func TestRaiseAll(t *testing.T) {
	assert.NoError(t, RaiseAll(nil))

	err := RaiseAll([]ErrorEntry{
		{Code: -420, Message: "Query UNTERMINATED"},
		{Code: -113, Message: "Undefined header"},
	})
	var instErr *gmerrors.InstrumentReportedError
	assert.ErrorAs(t, err, &instErr)
	assert.Equal(t, -420, instErr.Code)
}

func TestParseErrorEntry(t *testing.T) {
	entry, err := parseErrorEntry(`-113,"Undefined header"`)
	assert.NoError(t, err)
	assert.Equal(t, ErrorEntry{Code: -113, Message: "Undefined header"}, entry)

	// Unquoted and padded variants occur in the wild.
	entry, err = parseErrorEntry(` 0 , No error`)
	assert.NoError(t, err)
	assert.Equal(t, ErrorEntry{Code: 0, Message: "No error"}, entry)

	// Messages may contain commas; only the first splits.
	entry, err = parseErrorEntry(`-222,"Data out of range, clipped"`)
	assert.NoError(t, err)
	assert.Equal(t, -222, entry.Code)
	assert.Equal(t, "Data out of range, clipped", entry.Message)
}
