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

func TestInstrumentDefaults(t *testing.T) {
	inst, _ := testInstrument()

	assert.Equal(t, "Acme PSU-1", inst.Name)
	assert.Equal(t, "SYST:ERR?", inst.ErrorCommand)
	assert.Equal(t, ErrorQueueLimit, inst.ErrorLimit)
	assert.Nil(t, inst.Placeholders())
}

func TestInstrumentExplicitName(t *testing.T) {
	inst := NewInstrument(transport.NewFreeStub(), Config{Name: "bench-psu"})
	assert.Equal(t, "bench-psu", inst.Name)
}

func TestCommonCommands(t *testing.T) {
	inst, stub := testInstrument(
		transport.TxRx("*IDN?", "Acme,PSU-1,SN1234,1.0"),
		transport.Tx("*RST"),
		transport.Tx("*CLS"),
		transport.TxRx("*STB?", "32"),
		transport.TxRx("*OPC?", "1"),
		transport.TxRx("*OPT?", "0"),
	)

	id, err := inst.ID()
	assert.NoError(t, err)
	assert.Equal(t, "Acme,PSU-1,SN1234,1.0", id)
	assert.NoError(t, inst.Reset())
	assert.NoError(t, inst.Clear())
	status, err := inst.Status()
	assert.NoError(t, err)
	assert.Equal(t, 32, status)
	assert.NoError(t, inst.Complete())
	options, err := inst.Options()
	assert.NoError(t, err)
	assert.Equal(t, "0", options)
	assert.NoError(t, stub.Done())
}

func TestStatusParseFailure(t *testing.T) {
	inst, _ := testInstrument(transport.TxRx("*STB?", "garbage"))

	_, err := inst.Status()
	var parseErr *gmerrors.ResponseParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestAskWithoutResponse(t *testing.T) {
	inst, _ := testInstrument(transport.Tx("VOLT?"))

	_, err := inst.Ask("VOLT?")
	assert.Error(t, err)
	assert.ErrorIs(t, err, gmerrors.ErrNoResponse)
}
