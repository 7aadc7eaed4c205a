// Copyright 2025 The gomeasure Authors
//
// SPDX-License-Identifier: Apache-2.0

// Package tektronix provides drivers for Tektronix MSO-series
// oscilloscopes.
package tektronix

import (
	"github.com/gomeasure/gomeasure/pkg/scpi"
	"github.com/gomeasure/gomeasure/pkg/validate"
)

// Channel kind prefixes: an MSO addresses analog, math and reference
// channels through the same command trees, distinguished by prefix.
const (
	KindAnalog    = "CH"
	KindMath      = "MATH"
	KindReference = "REF"
)

// Math waveform functions.
const (
	MathAdd      = "ADD"
	MathSubtract = "SUB"
	MathMultiply = "MULT"
	MathDivide   = "DIV"
	MathFFT      = "FFT"
)

var (
	channelEnabled = scpi.Property[bool]{
		Name:      "channel_enabled",
		Query:     "SELECT:{ctype}{ch}?",
		Command:   "SELECT:{ctype}{ch} %d",
		Validator: validate.StrictSet[bool],
		Values:    []bool{true, false},
		Map:       validate.BooleanToInt,
	}

	channelScale = scpi.Property[float64]{
		Name:      "channel_scale",
		Query:     "{ctype}{ch}:SCAle?",
		Command:   "{ctype}{ch}:SCAle %g",
		Validator: validate.StrictRange[float64],
		Values:    []float64{1e-3, 10},
	}

	channelPosition = scpi.Property[float64]{
		Name:      "channel_position",
		Query:     "{ctype}{ch}:POSition?",
		Command:   "{ctype}{ch}:POSition %g",
		Validator: validate.StrictRange[float64],
		Values:    []float64{-5, 5},
	}

	channelLabel = scpi.Property[string]{
		Name:    "channel_label",
		Query:   "{ctype}{ch}:LABel:NAMe?",
		Command: `{ctype}{ch}:LABel:NAMe "%s"`,
	}

	mathFunction = scpi.Property[string]{
		Name:      "math_function",
		Query:     "{ctype}{ch}:DEFine?",
		Command:   "{ctype}{ch}:DEFine %s",
		Validator: validate.StrictSet[string],
		Values:    []string{MathAdd, MathSubtract, MathMultiply, MathDivide, MathFFT},
	}
)

// ScopeChannel is one displayable waveform source. The {ctype} token
// carries the kind prefix and {ch} the number, so one set of property
// templates serves CH1, MATH2 and REF3 alike.
type ScopeChannel struct {
	*scpi.Channel

	Kind string
}

func newScopeChannel(parent scpi.Node, kind string, number int) ScopeChannel {
	ch := scpi.NewChannel(parent, number).WithPlaceholder("ctype", kind)
	return ScopeChannel{Channel: ch, Kind: kind}
}

// Enabled reports whether the channel is shown on the display.
func (c ScopeChannel) Enabled() (bool, error) {
	return channelEnabled.Get(c.Channel)
}

// SetEnabled shows or hides the channel.
func (c ScopeChannel) SetEnabled(on bool) error {
	return channelEnabled.Set(c.Channel, on)
}

// Scale returns the vertical scale in units per division.
func (c ScopeChannel) Scale() (float64, error) {
	return channelScale.Get(c.Channel)
}

// SetScale sets the vertical scale in units per division.
func (c ScopeChannel) SetScale(perDiv float64) error {
	return channelScale.Set(c.Channel, perDiv)
}

// Position returns the vertical position in divisions.
func (c ScopeChannel) Position() (float64, error) {
	return channelPosition.Get(c.Channel)
}

// SetPosition sets the vertical position in divisions.
func (c ScopeChannel) SetPosition(divs float64) error {
	return channelPosition.Set(c.Channel, divs)
}

// Label returns the on-screen channel label.
func (c ScopeChannel) Label() (string, error) {
	return channelLabel.Get(c.Channel)
}

// SetLabel sets the on-screen channel label.
func (c ScopeChannel) SetLabel(label string) error {
	return channelLabel.Set(c.Channel, label)
}

// MathChannel is a computed waveform slot.
type MathChannel struct {
	ScopeChannel
}

func newMathChannel(parent scpi.Node, number int) MathChannel {
	return MathChannel{ScopeChannel: newScopeChannel(parent, KindMath, number)}
}

// Function returns the math waveform definition.
func (c MathChannel) Function() (string, error) {
	return mathFunction.Get(c.Channel)
}

// SetFunction selects the math waveform definition.
func (c MathChannel) SetFunction(fn string) error {
	return mathFunction.Set(c.Channel, fn)
}
