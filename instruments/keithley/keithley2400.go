// Copyright 2025 The gomeasure Authors
//
// SPDX-License-Identifier: Apache-2.0

// Package keithley provides drivers for Keithley source measure units.
package keithley

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	gmerrors "github.com/gomeasure/gomeasure/pkg/errors"
	"github.com/gomeasure/gomeasure/pkg/scpi"
	"github.com/gomeasure/gomeasure/pkg/transport"
	"github.com/gomeasure/gomeasure/pkg/validate"
)

var (
	// Fixed measurement ranges of the 2400, in volts and amps.
	voltageRanges = []float64{0.02, 0.2, 2, 20, 200}
	currentRanges = []float64{10e-9, 100e-9, 1e-6, 10e-6, 100e-6, 1e-3, 10e-3, 100e-3, 1}
)

var (
	sourceVoltage = scpi.Property[float64]{
		Name:      "source_voltage",
		Query:     ":SOUR:VOLT?",
		Command:   ":SOUR:VOLT %g",
		Validator: validate.StrictRange[float64],
		Values:    []float64{-210, 210},
		CheckSet:  true,
	}

	sourceCurrent = scpi.Property[float64]{
		Name:      "source_current",
		Query:     ":SOUR:CURR?",
		Command:   ":SOUR:CURR %g",
		Validator: validate.StrictRange[float64],
		Values:    []float64{-1.05, 1.05},
		CheckSet:  true,
	}

	complianceVoltage = scpi.Property[float64]{
		Name:      "compliance_voltage",
		Query:     ":SENS:VOLT:PROT?",
		Command:   ":SENS:VOLT:PROT %g",
		Validator: validate.StrictRange[float64],
		Values:    []float64{-210, 210},
	}

	complianceCurrent = scpi.Property[float64]{
		Name:      "compliance_current",
		Query:     ":SENS:CURR:PROT?",
		Command:   ":SENS:CURR:PROT %g",
		Validator: validate.StrictRange[float64],
		Values:    []float64{-1.05, 1.05},
	}

	outputEnabled = scpi.Property[bool]{
		Name:      "output_enabled",
		Query:     ":OUTP?",
		Command:   ":OUTP %d",
		Validator: validate.StrictSet[bool],
		Values:    []bool{true, false},
		Map:       validate.BooleanToInt,
	}
)

// Model2400 drives the 2400 SourceMeter. Configuration sequences raise
// every entry the instrument reports after a write, so a miswired setup
// fails at the step that caused it.
type Model2400 struct {
	*scpi.Instrument
}

func New2400(tr transport.Transport) *Model2400 {
	inst := scpi.NewInstrument(tr, scpi.Config{Manufacturer: "Keithley", Model: "2400"})
	inst.OnSetErrors = scpi.RaiseAll
	return &Model2400{Instrument: inst}
}

// Init resets the unit and clears stale error queue entries.
func (k *Model2400) Init() error {
	if err := k.Reset(); err != nil {
		return errors.Wrap(err, "init: reset")
	}
	if err := k.Clear(); err != nil {
		return errors.Wrap(err, "init: clear status")
	}
	if _, err := k.CheckErrors(); err != nil {
		return errors.Wrap(err, "init: drain error queue")
	}
	return nil
}

func (k *Model2400) SourceVoltage() (float64, error) { return sourceVoltage.Get(k.Instrument) }
func (k *Model2400) SetSourceVoltage(volts float64) error {
	return sourceVoltage.Set(k.Instrument, volts)
}
func (k *Model2400) SourceCurrent() (float64, error) { return sourceCurrent.Get(k.Instrument) }
func (k *Model2400) SetSourceCurrent(amps float64) error {
	return sourceCurrent.Set(k.Instrument, amps)
}

func (k *Model2400) ComplianceVoltage() (float64, error) {
	return complianceVoltage.Get(k.Instrument)
}
func (k *Model2400) SetComplianceVoltage(volts float64) error {
	return complianceVoltage.Set(k.Instrument, volts)
}
func (k *Model2400) ComplianceCurrent() (float64, error) {
	return complianceCurrent.Get(k.Instrument)
}
func (k *Model2400) SetComplianceCurrent(amps float64) error {
	return complianceCurrent.Set(k.Instrument, amps)
}

func (k *Model2400) OutputEnabled() (bool, error) { return outputEnabled.Get(k.Instrument) }
func (k *Model2400) SetOutputEnabled(on bool) error {
	return outputEnabled.Set(k.Instrument, on)
}

// ConfigureVoltageSource sets up the unit to source a voltage with a
// current compliance limit, on the smallest fixed range covering the
// level. Remote (4-wire) sensing is optional.
func (k *Model2400) ConfigureVoltageSource(level, compliance float64, remote bool) error {
	rng, err := SuitableVoltageRange(level)
	if err != nil {
		return errors.Wrap(err, "configure voltage source")
	}
	steps := []string{
		":SOUR:FUNC VOLT",
		":SOUR:VOLT:MODE FIX",
		fmt.Sprintf(":SOUR:VOLT:RANG %g", rng),
		fmt.Sprintf(":SENS:CURR:PROT %g", compliance),
		fmt.Sprintf(":SYST:RSEN %d", boolDigit(remote)),
		":SENS:FUNC \"CURR\"",
	}
	if err := k.writeChecked(steps); err != nil {
		return errors.Wrap(err, "configure voltage source")
	}
	return errors.Wrap(k.SetSourceVoltage(level), "configure voltage source")
}

// ConfigureCurrentSource sets up the unit to source a current with a
// voltage compliance limit, on the smallest fixed range covering the
// level.
func (k *Model2400) ConfigureCurrentSource(level, compliance float64, remote bool) error {
	rng, err := SuitableCurrentRange(level)
	if err != nil {
		return errors.Wrap(err, "configure current source")
	}
	steps := []string{
		":SOUR:FUNC CURR",
		":SOUR:CURR:MODE FIX",
		fmt.Sprintf(":SOUR:CURR:RANG %g", rng),
		fmt.Sprintf(":SENS:VOLT:PROT %g", compliance),
		fmt.Sprintf(":SYST:RSEN %d", boolDigit(remote)),
		":SENS:FUNC \"VOLT\"",
	}
	if err := k.writeChecked(steps); err != nil {
		return errors.Wrap(err, "configure current source")
	}
	return errors.Wrap(k.SetSourceCurrent(level), "configure current source")
}

// ConfigureAutoRange switches both source and sense ranging to auto.
func (k *Model2400) ConfigureAutoRange() error {
	steps := []string{
		":SOUR:VOLT:RANG:AUTO 1",
		":SOUR:CURR:RANG:AUTO 1",
		":SENS:VOLT:RANG:AUTO 1",
		":SENS:CURR:RANG:AUTO 1",
	}
	return errors.Wrap(k.writeChecked(steps), "configure auto range")
}

// ReadSource triggers a reading and returns the measured voltage and
// current. The :READ? response carries voltage, current, resistance,
// time and status fields in order.
func (k *Model2400) ReadSource() (voltage, current float64, err error) {
	response, err := k.Ask(":READ?")
	if err != nil {
		return 0, 0, errors.Wrap(err, "read source")
	}
	fields := strings.Split(strings.TrimSpace(response), ",")
	if len(fields) < 2 {
		return 0, 0, gmerrors.NewResponseParseError(nil,
			fmt.Sprintf("read response %q", response))
	}
	voltage, err = strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	if err != nil {
		return 0, 0, gmerrors.NewResponseParseError(err,
			fmt.Sprintf("read voltage field %q", fields[0]))
	}
	current, err = strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if err != nil {
		return 0, 0, gmerrors.NewResponseParseError(err,
			fmt.Sprintf("read current field %q", fields[1]))
	}
	return voltage, current, nil
}

// writeChecked sends each command and drains the error queue after it,
// raising the first reported entry.
func (k *Model2400) writeChecked(commands []string) error {
	for _, command := range commands {
		if err := k.Write(command); err != nil {
			return err
		}
		entries, err := k.CheckErrors()
		if err != nil {
			return err
		}
		if err := scpi.RaiseAll(entries); err != nil {
			return errors.Wrap(err, command)
		}
	}
	return nil
}

// SuitableVoltageRange returns the smallest fixed voltage range that
// covers the level.
func SuitableVoltageRange(level float64) (float64, error) {
	return suitableRange(voltageRanges, level)
}

// SuitableCurrentRange returns the smallest fixed current range that
// covers the level.
func SuitableCurrentRange(level float64) (float64, error) {
	return suitableRange(currentRanges, level)
}

func suitableRange(ranges []float64, level float64) (float64, error) {
	if level < 0 {
		level = -level
	}
	for _, r := range ranges {
		if level <= r {
			return r, nil
		}
	}
	return 0, gmerrors.NewRangeError(level, 0, ranges[len(ranges)-1])
}

func boolDigit(b bool) int {
	if b {
		return 1
	}
	return 0
}
