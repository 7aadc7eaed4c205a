// Copyright 2025 The gomeasure Authors
//
// SPDX-License-Identifier: Apache-2.0

package scpi

import (
	"testing"

	"github.com/stretchr/testify/assert"

	gmerrors "github.com/gomeasure/gomeasure/pkg/errors"
)

func TestInsertPlaceholders(t *testing.T) {
	repl := map[string]string{"ch": "2"}

	assert.Equal(t, "CURR? (@2)", InsertPlaceholders("CURR? (@{ch})", repl))
	assert.Equal(t, "CURR 1.5, (@2)", InsertPlaceholders("CURR 1.5, (@{ch})", repl))

	// Commands without tokens pass through untouched.
	assert.Equal(t, "*IDN?", InsertPlaceholders("*IDN?", repl))

	// Unknown tokens are left for outer nodes.
	assert.Equal(t, "SELECT:{ctype}2?", InsertPlaceholders("SELECT:{ctype}{ch}?", repl))
}

func TestInsertPlaceholdersIdempotent(t *testing.T) {
	repl := map[string]string{"ch": "2"}

	once := InsertPlaceholders("CURR? (@{ch})", repl)
	assert.Equal(t, once, InsertPlaceholders(once, repl))
}

func TestInsertPlaceholdersMultiToken(t *testing.T) {
	repl := map[string]string{"ch": "3", "ctype": "MATH"}

	assert.Equal(t, "MATH3:DEFine?", InsertPlaceholders("{ctype}{ch}:DEFine?", repl))
}

func TestResidualPlaceholder(t *testing.T) {
	tok, found := residualPlaceholder("SELECT:{ctype}2?")
	assert.True(t, found)
	assert.Equal(t, "{ctype}", tok)

	_, found = residualPlaceholder("SELECT:CH2?")
	assert.False(t, found)
}

func TestFormatWrite(t *testing.T) {
	command, err := FormatWrite("VOLT %g", 10.5)
	assert.NoError(t, err)
	assert.Equal(t, "VOLT 10.5", command)

	command, err = FormatWrite("OUTP %d", 1)
	assert.NoError(t, err)
	assert.Equal(t, "OUTP 1", command)

	command, err = FormatWrite("CURR:RANG %s", "MED")
	assert.NoError(t, err)
	assert.Equal(t, "CURR:RANG MED", command)
}

func TestFormatWriteSlotCount(t *testing.T) {
	var tmplErr *gmerrors.TemplateError

	_, err := FormatWrite("ABOR", 1)
	assert.Error(t, err)
	assert.ErrorAs(t, err, &tmplErr)

	_, err = FormatWrite("APPL %g, %g", 1.0)
	assert.Error(t, err)
	assert.ErrorAs(t, err, &tmplErr)

	// Literal %% is not a value slot.
	command, err := FormatWrite("DISP:CONT %d%%", 80)
	assert.NoError(t, err)
	assert.Equal(t, "DISP:CONT 80%", command)
}

func TestFormatWriteVerbMismatch(t *testing.T) {
	// A numeric template cannot carry a string wire token; the mangled
	// rendering must not reach the transport.
	_, err := FormatWrite("OUTP %d", "ON")
	var tmplErr *gmerrors.TemplateError
	assert.ErrorAs(t, err, &tmplErr)
}
