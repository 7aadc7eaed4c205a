// Copyright 2025 The gomeasure Authors
//
// SPDX-License-Identifier: Apache-2.0

// Package kikusui provides drivers for Kikusui PLZ-5W electronic loads.
package kikusui

import (
	"github.com/gomeasure/gomeasure/pkg/scpi"
	"github.com/gomeasure/gomeasure/pkg/transport"
	"github.com/gomeasure/gomeasure/pkg/validate"
)

// Current range selector values.
const (
	RangeLow    = "LOW"
	RangeMedium = "MED"
	RangeHigh   = "HIGH"
)

var (
	currentSetpoint = scpi.Property[float64]{
		Name:      "current_setpoint",
		Query:     "CURR?",
		Command:   "CURR %g",
		Validator: validate.StrictRange[float64],
		Values:    []float64{0, 1},
		Dynamic:   true,
	}

	currentRange = scpi.Property[string]{
		Name:      "current_range",
		Query:     "CURR:RANG?",
		Command:   "CURR:RANG %s",
		Validator: validate.StrictSet[string],
		Values:    []string{RangeLow, RangeMedium, RangeHigh},
	}

	voltageMeasure = scpi.Property[float64]{
		Name:  "voltage_measure",
		Query: "MEASure:VOLTage:DC?",
	}

	currentMeasure = scpi.Property[float64]{
		Name:  "current_measure",
		Query: "MEAS:CURRent:DC?",
	}

	powerMeasure = scpi.Property[float64]{
		Name:  "power_measure",
		Query: "MEAS:POW:DC?",
	}

	outputEnabled = scpi.Property[bool]{
		Name:      "output_enabled",
		Query:     "OUTP?",
		Command:   "OUTP %d",
		Validator: validate.StrictSet[bool],
		Values:    []bool{true, false},
		Map:       validate.BooleanToInt,
	}
)

// PLZ is the command surface shared by the PLZ-5W electronic load
// series. The maximum sink current depends on the model, so the
// constructors override the current setpoint range per instance.
type PLZ struct {
	*scpi.Instrument
}

// NewPLZ1205W builds a driver for the 1205 W / 240 A load.
func NewPLZ1205W(tr transport.Transport) *PLZ {
	return newPLZ(tr, scpi.Config{Manufacturer: "Kikusui", Model: "PLZ1205W"}, 240)
}

// NewPLZ334WL builds a driver for the 330 W / 66 A low-voltage load.
func NewPLZ334WL(tr transport.Transport) *PLZ {
	return newPLZ(tr, scpi.Config{Manufacturer: "Kikusui", Model: "PLZ334WL"}, 66)
}

func newPLZ(tr transport.Transport, config scpi.Config, maxCurrent float64) *PLZ {
	load := &PLZ{Instrument: scpi.NewInstrument(tr, config)}
	load.SetPropertyValues(currentSetpoint.Name, []float64{0, maxCurrent})
	return load
}

// CurrentSetpoint returns the programmed sink current.
func (l *PLZ) CurrentSetpoint() (float64, error) {
	return currentSetpoint.Get(l.Instrument)
}

// SetCurrentSetpoint programs the sink current in amps.
func (l *PLZ) SetCurrentSetpoint(amps float64) error {
	return currentSetpoint.Set(l.Instrument, amps)
}

// CurrentRange returns the active current range selector.
func (l *PLZ) CurrentRange() (string, error) {
	return currentRange.Get(l.Instrument)
}

// SetCurrentRange selects the current range: LOW, MED or HIGH.
func (l *PLZ) SetCurrentRange(r string) error {
	return currentRange.Set(l.Instrument, r)
}

// MeasureVoltage measures the DC voltage at the load terminals.
func (l *PLZ) MeasureVoltage() (float64, error) {
	return voltageMeasure.Get(l.Instrument)
}

// MeasureCurrent measures the DC sink current.
func (l *PLZ) MeasureCurrent() (float64, error) {
	return currentMeasure.Get(l.Instrument)
}

// MeasurePower measures the dissipated DC power.
func (l *PLZ) MeasurePower() (float64, error) {
	return powerMeasure.Get(l.Instrument)
}

// OutputEnabled reports whether the load input is on.
func (l *PLZ) OutputEnabled() (bool, error) {
	return outputEnabled.Get(l.Instrument)
}

// SetOutputEnabled switches the load input.
func (l *PLZ) SetOutputEnabled(on bool) error {
	return outputEnabled.Set(l.Instrument, on)
}

// Abort stops a running sequence or trigger operation.
func (l *PLZ) Abort() error {
	return l.Write("ABOR")
}

// SetCurrentRangeFromLoad selects the smallest range that still covers
// the requested sink current.
func (l *PLZ) SetCurrentRangeFromLoad(amps float64) error {
	r := RangeMedium
	switch {
	case amps < 1:
		r = RangeLow
	case amps > 10:
		r = RangeHigh
	}
	return l.SetCurrentRange(r)
}

// QuickLoad picks a matching current range, programs the setpoint and
// enables the input in one step.
func (l *PLZ) QuickLoad(amps float64) error {
	if err := l.SetCurrentRangeFromLoad(amps); err != nil {
		return err
	}
	if err := l.SetCurrentSetpoint(amps); err != nil {
		return err
	}
	return l.SetOutputEnabled(true)
}
