// Copyright 2025 The gomeasure Authors
//
// SPDX-License-Identifier: Apache-2.0

package keithley

import (
	"testing"

	"github.com/stretchr/testify/assert"

	gmerrors "github.com/gomeasure/gomeasure/pkg/errors"
	"github.com/gomeasure/gomeasure/pkg/transport"
)

const noError = `0,"No error"`

func TestInit(t *testing.T) {
	stub := transport.NewStub(
		transport.Tx("*RST"),
		transport.Tx("*CLS"),
		transport.TxRx("SYST:ERR?", noError),
	)
	k := New2400(stub)

	assert.NoError(t, k.Init())
	assert.NoError(t, stub.Done())
}

func TestSuitableRanges(t *testing.T) {
	r, err := SuitableVoltageRange(1.5)
	assert.NoError(t, err)
	assert.Equal(t, 2.0, r)

	// Negative levels range by magnitude.
	r, err = SuitableVoltageRange(-150)
	assert.NoError(t, err)
	assert.Equal(t, 200.0, r)

	r, err = SuitableCurrentRange(5e-9)
	assert.NoError(t, err)
	assert.Equal(t, 10e-9, r)

	_, err = SuitableVoltageRange(300)
	var rangeErr *gmerrors.RangeError
	assert.ErrorAs(t, err, &rangeErr)
}

func TestConfigureVoltageSource(t *testing.T) {
	stub := transport.NewStub(
		transport.Tx(":SOUR:FUNC VOLT"),
		transport.TxRx("SYST:ERR?", noError),
		transport.Tx(":SOUR:VOLT:MODE FIX"),
		transport.TxRx("SYST:ERR?", noError),
		transport.Tx(":SOUR:VOLT:RANG 2"),
		transport.TxRx("SYST:ERR?", noError),
		transport.Tx(":SENS:CURR:PROT 0.01"),
		transport.TxRx("SYST:ERR?", noError),
		transport.Tx(":SYST:RSEN 0"),
		transport.TxRx("SYST:ERR?", noError),
		transport.Tx(":SENS:FUNC \"CURR\""),
		transport.TxRx("SYST:ERR?", noError),
		transport.Tx(":SOUR:VOLT 1.5"),
		transport.TxRx("SYST:ERR?", noError),
	)
	k := New2400(stub)

	assert.NoError(t, k.ConfigureVoltageSource(1.5, 0.01, false))
	assert.NoError(t, stub.Done())
}

func TestConfigureStopsOnReportedError(t *testing.T) {
	stub := transport.NewStub(
		transport.Tx(":SOUR:FUNC CURR"),
		transport.TxRx("SYST:ERR?", `-113,"Undefined header"`),
		transport.TxRx("SYST:ERR?", noError),
	)
	k := New2400(stub)

	err := k.ConfigureCurrentSource(0.001, 10, true)
	assert.Error(t, err)
	var instErr *gmerrors.InstrumentReportedError
	assert.ErrorAs(t, err, &instErr)
	assert.Equal(t, -113, instErr.Code)

	// The sequence stops at the failing step.
	assert.NoError(t, stub.Done())
}

func TestReadSource(t *testing.T) {
	stub := transport.NewStub(
		transport.TxRx(":READ?", "+1.500E+00,+2.500E-03,+9.910E+37,+1.000E+03,+2.150E+04"),
	)
	k := New2400(stub)

	v, i, err := k.ReadSource()
	assert.NoError(t, err)
	assert.Equal(t, 1.5, v)
	assert.Equal(t, 0.0025, i)
	assert.NoError(t, stub.Done())
}

func TestReadSourceMalformed(t *testing.T) {
	stub := transport.NewStub(transport.TxRx(":READ?", "singleton"))
	k := New2400(stub)

	_, _, err := k.ReadSource()
	var parseErr *gmerrors.ResponseParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestSourceSetpointChecked(t *testing.T) {
	stub := transport.NewStub(
		transport.Tx(":SOUR:VOLT 2"),
		transport.TxRx("SYST:ERR?", noError),
	)
	k := New2400(stub)

	assert.NoError(t, k.SetSourceVoltage(2))
	assert.NoError(t, stub.Done())
}
