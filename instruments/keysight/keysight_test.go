// Copyright 2025 The gomeasure Authors
//
// SPDX-License-Identifier: Apache-2.0

package keysight

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gomeasure/gomeasure/pkg/catalog"
	gmerrors "github.com/gomeasure/gomeasure/pkg/errors"
	"github.com/gomeasure/gomeasure/pkg/transport"
)

func TestE36312AChannelAddressing(t *testing.T) {
	stub := transport.NewStub(
		transport.Tx("VOLT 5.5, (@1)"),
		transport.TxRx("VOLT? (@1)", "5.5"),
		transport.Tx("CURR 0.25, (@2)"),
		transport.TxRx("MEAS:CURRent? (@3)", "2.5E-01"),
	)
	supply := NewE36312A(stub)

	assert.NoError(t, supply.Ch1.SetVoltageSetpoint(5.5))
	v, err := supply.Ch1.VoltageSetpoint()
	assert.NoError(t, err)
	assert.Equal(t, 5.5, v)

	assert.NoError(t, supply.Ch2.SetCurrentLimit(0.25))
	i, err := supply.Ch3.MeasureCurrent()
	assert.NoError(t, err)
	assert.Equal(t, 0.25, i)
	assert.NoError(t, stub.Done())
}

func TestE36312AChannelLimits(t *testing.T) {
	stub := transport.NewStub(transport.Tx("VOLT 20, (@2)"))
	supply := NewE36312A(stub)

	// Channel 1 is the 6 V output, channels 2 and 3 go to 25 V.
	var rangeErr *gmerrors.RangeError
	err := supply.Ch1.SetVoltageSetpoint(20)
	assert.ErrorAs(t, err, &rangeErr)
	assert.NoError(t, supply.Ch2.SetVoltageSetpoint(20))

	err = supply.Ch2.SetCurrentLimit(2)
	assert.ErrorAs(t, err, &rangeErr)
	assert.NoError(t, stub.Done())
}

func TestE36312AOutputSwitch(t *testing.T) {
	stub := transport.NewStub(
		transport.Tx("OUTPut 1, (@1)"),
		transport.TxRx("OUTPut? (@1)", "1"),
		transport.Tx("OUTPut 0, (@1)"),
	)
	supply := NewE36312A(stub)

	assert.NoError(t, supply.Ch1.SetOutputEnabled(true))
	on, err := supply.Ch1.OutputEnabled()
	assert.NoError(t, err)
	assert.True(t, on)
	assert.NoError(t, supply.Ch1.SetOutputEnabled(false))
	assert.NoError(t, stub.Done())
}

func TestE36311ALimits(t *testing.T) {
	supply := NewE36311A(transport.NewStub())

	var rangeErr *gmerrors.RangeError
	assert.ErrorAs(t, supply.Ch1.SetVoltageSetpoint(7), &rangeErr)
	assert.ErrorAs(t, supply.Ch3.SetCurrentLimit(1.5), &rangeErr)
}

func TestApplyProfile(t *testing.T) {
	cat := catalog.New()
	assert.NoError(t, cat.Load("testdata/widerange.yaml"))
	profile, ok := cat.Profile("E36312A")
	assert.True(t, ok)

	stub := transport.NewStub(transport.Tx("VOLT 30, (@1)"))
	supply := NewE36312A(stub)
	supply.ApplyProfile(profile)

	assert.NoError(t, supply.Ch1.SetVoltageSetpoint(30))
	assert.NoError(t, stub.Done())
}
