// Copyright 2025 The gomeasure Authors
//
// SPDX-License-Identifier: Apache-2.0

package tektronix

import (
	"github.com/gomeasure/gomeasure/pkg/scpi"
	"github.com/gomeasure/gomeasure/pkg/validate"
)

// Roll-mode settings.
const (
	RollAuto = "AUTO"
	RollOn   = "ON"
	RollOff  = "OFF"
)

var (
	horizontalScale = scpi.Property[float64]{
		Name:    "horizontal_scale",
		Query:   "HORizontal:SCAle?",
		Command: "HORizontal:SCAle %g",
	}

	horizontalSampleRate = scpi.Property[float64]{
		Name:    "horizontal_sample_rate",
		Query:   "HORizontal:SAMPLERate?",
		Command: "HORizontal:SAMPLERate %g",
	}

	horizontalPosition = scpi.Property[float64]{
		Name:      "horizontal_position",
		Query:     "HORizontal:POSition?",
		Command:   "HORizontal:POSition %g",
		Validator: validate.StrictRange[float64],
		Values:    []float64{0, 100},
	}

	horizontalDelayEnabled = scpi.Property[bool]{
		Name:      "horizontal_delay_enabled",
		Query:     "HORizontal:DELay:MODe?",
		Command:   "HORizontal:DELay:MODe %d",
		Validator: validate.StrictSet[bool],
		Values:    []bool{true, false},
		Map:       validate.BooleanToInt,
	}

	horizontalDelayTime = scpi.Property[float64]{
		Name:    "horizontal_delay_time",
		Query:   "HORizontal:DELay:TIMe?",
		Command: "HORizontal:DELay:TIMe %g",
	}

	horizontalRollMode = scpi.Property[string]{
		Name:      "horizontal_roll_mode",
		Query:     "HORizontal:ROLL?",
		Command:   "HORizontal:ROLL %s",
		Validator: validate.StrictSet[string],
		Values:    []string{RollAuto, RollOn, RollOff},
	}

	horizontalDivisions = scpi.Property[float64]{
		Name:  "horizontal_divisions",
		Query: "HORizontal:DIVisions?",
	}

	acquisitionDuration = scpi.Property[float64]{
		Name:  "acquisition_duration",
		Query: "HORizontal:ACQDURATION?",
	}
)

// Horizontal groups the timebase subsystem.
type Horizontal struct {
	*scpi.Group
}

func newHorizontal(parent scpi.Node) *Horizontal {
	return &Horizontal{Group: scpi.NewGroup(parent, "horizontal")}
}

// Scale is the horizontal scale in seconds per division.
func (h *Horizontal) Scale() (float64, error) { return horizontalScale.Get(h.Group) }
func (h *Horizontal) SetScale(seconds float64) error {
	return horizontalScale.Set(h.Group, seconds)
}

func (h *Horizontal) SampleRate() (float64, error) { return horizontalSampleRate.Get(h.Group) }
func (h *Horizontal) SetSampleRate(rate float64) error {
	return horizontalSampleRate.Set(h.Group, rate)
}

// Position is the trigger point position as a percentage of the record,
// 0 to 100.
func (h *Horizontal) Position() (float64, error) { return horizontalPosition.Get(h.Group) }
func (h *Horizontal) SetPosition(percent float64) error {
	return horizontalPosition.Set(h.Group, percent)
}

func (h *Horizontal) DelayEnabled() (bool, error) { return horizontalDelayEnabled.Get(h.Group) }
func (h *Horizontal) SetDelayEnabled(on bool) error {
	return horizontalDelayEnabled.Set(h.Group, on)
}

func (h *Horizontal) DelayTime() (float64, error) { return horizontalDelayTime.Get(h.Group) }
func (h *Horizontal) SetDelayTime(seconds float64) error {
	return horizontalDelayTime.Set(h.Group, seconds)
}

func (h *Horizontal) RollMode() (string, error)  { return horizontalRollMode.Get(h.Group) }
func (h *Horizontal) SetRollMode(m string) error { return horizontalRollMode.Set(h.Group, m) }

// Divisions returns the number of horizontal graticule divisions.
func (h *Horizontal) Divisions() (float64, error) { return horizontalDivisions.Get(h.Group) }

// AcquisitionDuration returns the timebase duration in seconds.
func (h *Horizontal) AcquisitionDuration() (float64, error) {
	return acquisitionDuration.Get(h.Group)
}
