// Copyright 2025 The gomeasure Authors
//
// SPDX-License-Identifier: Apache-2.0

// Package keysight provides drivers for Keysight bench power supplies.
package keysight

import (
	"github.com/gomeasure/gomeasure/pkg/scpi"
	"github.com/gomeasure/gomeasure/pkg/validate"
)

// Channel property declarations, shared by every supply instance.
// Voltage and current limits are dynamic: the model-specific ranges are
// applied per channel by the instrument constructors.
var (
	voltageSetpoint = scpi.Property[float64]{
		Name:      "voltage_setpoint",
		Query:     "VOLT? (@{ch})",
		Command:   "VOLT %g, (@{ch})",
		Validator: validate.StrictRange[float64],
		Values:    []float64{0, 1},
		Dynamic:   true,
	}

	currentLimit = scpi.Property[float64]{
		Name:      "current_limit",
		Query:     "CURR? (@{ch})",
		Command:   "CURR %g, (@{ch})",
		Validator: validate.StrictRange[float64],
		Values:    []float64{0, 1},
		Dynamic:   true,
	}

	voltageMeasure = scpi.Property[float64]{
		Name:  "voltage_measure",
		Query: "MEASure:VOLTage? (@{ch})",
	}

	currentMeasure = scpi.Property[float64]{
		Name:  "current_measure",
		Query: "MEAS:CURRent? (@{ch})",
	}

	outputEnabled = scpi.Property[bool]{
		Name:      "output_enabled",
		Query:     "OUTPut? (@{ch})",
		Command:   "OUTPut %d, (@{ch})",
		Validator: validate.StrictSet[bool],
		Values:    []bool{true, false},
		Map:       validate.BooleanToInt,
	}
)

// VoltageChannel is one output of a multi-output supply, addressed with
// the (@<ch>) channel-list notation.
type VoltageChannel struct {
	*scpi.Channel
}

func newVoltageChannel(parent scpi.Node, id int) VoltageChannel {
	return VoltageChannel{Channel: scpi.NewChannel(parent, id)}
}

// VoltageSetpoint returns the programmed output voltage.
func (c VoltageChannel) VoltageSetpoint() (float64, error) {
	return voltageSetpoint.Get(c.Channel)
}

// SetVoltageSetpoint programs the output voltage, range depends on the
// channel.
func (c VoltageChannel) SetVoltageSetpoint(volts float64) error {
	return voltageSetpoint.Set(c.Channel, volts)
}

// CurrentLimit returns the programmed current limit.
func (c VoltageChannel) CurrentLimit() (float64, error) {
	return currentLimit.Get(c.Channel)
}

// SetCurrentLimit programs the current limit, range depends on the
// channel.
func (c VoltageChannel) SetCurrentLimit(amps float64) error {
	return currentLimit.Set(c.Channel, amps)
}

// MeasureVoltage measures the actual output voltage.
func (c VoltageChannel) MeasureVoltage() (float64, error) {
	return voltageMeasure.Get(c.Channel)
}

// MeasureCurrent measures the actual output current.
func (c VoltageChannel) MeasureCurrent() (float64, error) {
	return currentMeasure.Get(c.Channel)
}

// OutputEnabled reports whether the channel output is on.
func (c VoltageChannel) OutputEnabled() (bool, error) {
	return outputEnabled.Get(c.Channel)
}

// SetOutputEnabled switches the channel output.
func (c VoltageChannel) SetOutputEnabled(on bool) error {
	return outputEnabled.Set(c.Channel, on)
}

// SetVoltageLimits overrides the voltage setpoint range for this channel.
func (c VoltageChannel) SetVoltageLimits(min, max float64) {
	c.SetPropertyValues(voltageSetpoint.Name, []float64{min, max})
}

// SetCurrentLimits overrides the current limit range for this channel.
func (c VoltageChannel) SetCurrentLimits(min, max float64) {
	c.SetPropertyValues(currentLimit.Name, []float64{min, max})
}
