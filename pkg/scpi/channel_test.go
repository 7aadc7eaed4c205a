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

func TestChannelIdentity(t *testing.T) {
	inst, _ := testInstrument()

	ch := NewChannel(inst, 2)
	assert.Equal(t, "2", ch.ID())
	assert.Equal(t, map[string]string{"ch": "2"}, ch.Placeholders())

	// Non-integer identities render with %v.
	named := NewChannel(inst, "A")
	assert.Equal(t, "A", named.ID())
}

func TestChannelSubstitutesOnce(t *testing.T) {
	inst, stub := testInstrument(
		transport.TxRx("CURR? (@2)", "0.25"),
		transport.Tx("CURR 1.5, (@2)"),
	)
	ch := NewChannel(inst, 2)

	response, err := ch.Ask("CURR? (@{ch})")
	assert.NoError(t, err)
	assert.Equal(t, "0.25", response)
	assert.NoError(t, ch.Write("CURR 1.5, (@{ch})"))
	assert.NoError(t, stub.Done())
}

func TestChannelPassesLiteralCommands(t *testing.T) {
	// A command already carrying the literal identity is forwarded
	// unchanged: substitution never rescans replaced text.
	inst, stub := testInstrument(transport.Tx("CURR 1.5, (@2)"))
	ch := NewChannel(inst, 2)

	assert.NoError(t, ch.Write("CURR 1.5, (@2)"))
	assert.NoError(t, stub.Done())
}

func TestNestedChannels(t *testing.T) {
	// Tokens resolve outward-to-inward: the inner node substitutes
	// first, the outer resolves what remains.
	inst, stub := testInstrument(transport.TxRx("SLOT1:CURR? (@4)", "0.1"))
	slot := NewChannel(inst, 1).WithPlaceholder("slot", "1")
	ch := NewChannel(slot, 4)

	_, err := ch.Ask("SLOT{slot}:CURR? (@{ch})")
	assert.NoError(t, err)
	assert.NoError(t, stub.Done())
}

func TestChannelMultiplePlaceholders(t *testing.T) {
	inst, stub := testInstrument(transport.TxRx("SELECT:MATH3?", "1"))
	ch := NewChannel(inst, 3).WithPlaceholder("ctype", "MATH")

	response, err := ch.Ask("SELECT:{ctype}{ch}?")
	assert.NoError(t, err)
	assert.Equal(t, "1", response)
	assert.NoError(t, stub.Done())
}

func TestUnresolvedPlaceholderRejected(t *testing.T) {
	inst, stub := testInstrument()
	ch := NewChannel(inst, 2)

	err := ch.Write("SELECT:{ctype}{ch} 1")
	var tmplErr *gmerrors.TemplateError
	assert.ErrorAs(t, err, &tmplErr)

	_, err = inst.Ask("CURR? (@{ch})")
	assert.ErrorAs(t, err, &tmplErr)

	// Rejected before transmission.
	assert.Empty(t, stub.Trace)
}

func TestGroupForwardsVerbatim(t *testing.T) {
	inst, stub := testInstrument(
		transport.TxRx("TRIGger:A:MODe?", "AUTO"),
		transport.Tx("TRIGger:FORCe"),
	)
	group := NewGroup(inst, "trigger")

	assert.Nil(t, group.Placeholders())
	response, err := group.Ask("TRIGger:A:MODe?")
	assert.NoError(t, err)
	assert.Equal(t, "AUTO", response)
	assert.NoError(t, group.Write("TRIGger:FORCe"))
	assert.NoError(t, stub.Done())
}

func TestGroupUnderChannelSubstitutes(t *testing.T) {
	inst, stub := testInstrument(transport.TxRx("CH1:SCAle?", "0.5"))
	ch := NewChannel(inst, 1).WithPlaceholder("ctype", "CH")
	group := NewGroup(ch, "vertical")

	response, err := group.Ask("{ctype}{ch}:SCAle?")
	assert.NoError(t, err)
	assert.Equal(t, "0.5", response)
	assert.NoError(t, stub.Done())
}

func TestChannelDelegatesErrorChecks(t *testing.T) {
	inst, stub := testInstrument(
		transport.TxRx("SYST:ERR?", `-113,"Undefined header"`),
		transport.TxRx("SYST:ERR?", `0,"No error"`),
	)
	ch := NewChannel(inst, 2)

	entries, err := ch.CheckErrors()
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.NoError(t, stub.Done())
}
