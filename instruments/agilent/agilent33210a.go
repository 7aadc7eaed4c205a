// Copyright 2025 The gomeasure Authors
//
// SPDX-License-Identifier: Apache-2.0

// Package agilent provides drivers for Agilent signal sources.
package agilent

import (
	"github.com/gomeasure/gomeasure/pkg/scpi"
	"github.com/gomeasure/gomeasure/pkg/transport"
	"github.com/gomeasure/gomeasure/pkg/validate"
)

// Output waveform shapes.
const (
	ShapeSinusoid = "SINUSOID"
	ShapeSquare   = "SQUARE"
	ShapeRamp     = "RAMP"
	ShapePulse    = "PULSE"
	ShapeNoise    = "NOISE"
	ShapeDC       = "DC"
)

// Burst gating modes.
const (
	BurstTriggered = "TRIG"
	BurstGated     = "GAT"
)

// Trigger sources.
const (
	TriggerImmediate = "IMM"
	TriggerExternal  = "EXT"
	TriggerBus       = "BUS"
)

var (
	shape = scpi.Property[string]{
		Name:      "shape",
		Query:     "FUNC?",
		Command:   "FUNC %s",
		Validator: validate.StrictSet[string],
		Values: []string{ShapeSinusoid, ShapeSquare, ShapeRamp,
			ShapePulse, ShapeNoise, ShapeDC},
	}

	frequency = scpi.Property[float64]{
		Name:      "frequency",
		Query:     "FREQ?",
		Command:   "FREQ %g",
		Validator: validate.StrictRange[float64],
		Values:    []float64{1e-6, 10e6},
	}

	amplitude = scpi.Property[float64]{
		Name:      "amplitude",
		Query:     "VOLT?",
		Command:   "VOLT %g",
		Validator: validate.StrictRange[float64],
		Values:    []float64{10e-3, 10},
	}

	offset = scpi.Property[float64]{
		Name:      "offset",
		Query:     "VOLT:OFFS?",
		Command:   "VOLT:OFFS %g",
		Validator: validate.StrictRange[float64],
		Values:    []float64{-4.99, 4.99},
	}

	outputEnabled = scpi.Property[bool]{
		Name:      "output_enabled",
		Query:     "OUTP?",
		Command:   "OUTP %s",
		Validator: validate.StrictSet[bool],
		Values:    []bool{true, false},
		Map:       validate.BooleanToOnOff,
	}

	burstEnabled = scpi.Property[bool]{
		Name:      "burst_enabled",
		Query:     "BURS:STAT?",
		Command:   "BURS:STAT %s",
		Validator: validate.StrictSet[bool],
		Values:    []bool{true, false},
		Map:       validate.BooleanToOnOff,
	}

	burstMode = scpi.Property[string]{
		Name:      "burst_mode",
		Query:     "BURS:MODE?",
		Command:   "BURS:MODE %s",
		Validator: validate.StrictSet[string],
		Values:    []string{BurstTriggered, BurstGated},
	}

	burstNCycles = scpi.Property[int]{
		Name:      "burst_ncycles",
		Query:     "BURS:NCYC?",
		Command:   "BURS:NCYC %d",
		Validator: validate.StrictRange[int],
		Values:    []int{1, 50000},
	}

	triggerSource = scpi.Property[string]{
		Name:      "trigger_source",
		Query:     "TRIG:SOUR?",
		Command:   "TRIG:SOUR %s",
		Validator: validate.StrictSet[string],
		Values:    []string{TriggerImmediate, TriggerExternal, TriggerBus},
	}

	displayText = scpi.Property[string]{
		Name:    "display_text",
		Command: `DISP:TEXT "%s"`,
	}
)

// A33210A drives the 10 MHz function/arbitrary waveform generator.
type A33210A struct {
	*scpi.Instrument
}

func New33210A(tr transport.Transport) *A33210A {
	return &A33210A{
		Instrument: scpi.NewInstrument(tr, scpi.Config{Manufacturer: "Agilent", Model: "33210A"}),
	}
}

func (g *A33210A) Shape() (string, error)      { return shape.Get(g.Instrument) }
func (g *A33210A) SetShape(s string) error     { return shape.Set(g.Instrument, s) }
func (g *A33210A) Frequency() (float64, error) { return frequency.Get(g.Instrument) }
func (g *A33210A) SetFrequency(hz float64) error {
	return frequency.Set(g.Instrument, hz)
}
func (g *A33210A) Amplitude() (float64, error) { return amplitude.Get(g.Instrument) }
func (g *A33210A) SetAmplitude(volts float64) error {
	return amplitude.Set(g.Instrument, volts)
}
func (g *A33210A) Offset() (float64, error) { return offset.Get(g.Instrument) }
func (g *A33210A) SetOffset(volts float64) error {
	return offset.Set(g.Instrument, volts)
}

func (g *A33210A) OutputEnabled() (bool, error) { return outputEnabled.Get(g.Instrument) }
func (g *A33210A) SetOutputEnabled(on bool) error {
	return outputEnabled.Set(g.Instrument, on)
}

func (g *A33210A) BurstEnabled() (bool, error) { return burstEnabled.Get(g.Instrument) }
func (g *A33210A) SetBurstEnabled(on bool) error {
	return burstEnabled.Set(g.Instrument, on)
}
func (g *A33210A) BurstMode() (string, error)  { return burstMode.Get(g.Instrument) }
func (g *A33210A) SetBurstMode(m string) error { return burstMode.Set(g.Instrument, m) }
func (g *A33210A) BurstNCycles() (int, error)  { return burstNCycles.Get(g.Instrument) }
func (g *A33210A) SetBurstNCycles(n int) error {
	return burstNCycles.Set(g.Instrument, n)
}

func (g *A33210A) TriggerSource() (string, error) { return triggerSource.Get(g.Instrument) }
func (g *A33210A) SetTriggerSource(src string) error {
	return triggerSource.Set(g.Instrument, src)
}

// SetDisplayText shows a message on the front panel.
func (g *A33210A) SetDisplayText(text string) error {
	return displayText.Set(g.Instrument, text)
}

// Trigger issues a bus trigger.
func (g *A33210A) Trigger() error {
	return g.Write("*TRG")
}

// Beep sounds the front-panel beeper once.
func (g *A33210A) Beep() error {
	return g.Write("SYST:BEEP")
}
