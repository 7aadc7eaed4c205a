// Copyright 2025 The gomeasure Authors
//
// SPDX-License-Identifier: Apache-2.0

package tektronix

import (
	"github.com/gomeasure/gomeasure/pkg/scpi"
	"github.com/gomeasure/gomeasure/pkg/validate"
)

// Graticule styles.
const (
	GridFull = "FULL"
	GridAxes = "AXES"
	GridNone = "NONE"
)

var (
	gridStyle = scpi.Property[string]{
		Name:      "grid_style",
		Query:     "DISplay:WAVEView1:STYle?",
		Command:   "DISplay:WAVEView1:STYle %s",
		Validator: validate.StrictSet[string],
		Values:    []string{GridFull, GridAxes, GridNone},
	}

	waveformIntensity = scpi.Property[float64]{
		Name:      "waveform_intensity",
		Query:     "DISplay:WAVEView1:INTENSITy:WAVEform?",
		Command:   "DISplay:WAVEView1:INTENSITy:WAVEform %g",
		Validator: validate.StrictRange[float64],
		Values:    []float64{0, 100},
	}
)

// Display groups the waveform-view display subsystem.
type Display struct {
	*scpi.Group
}

func newDisplay(parent scpi.Node) *Display {
	return &Display{Group: scpi.NewGroup(parent, "display")}
}

func (d *Display) GridStyle() (string, error)  { return gridStyle.Get(d.Group) }
func (d *Display) SetGridStyle(s string) error { return gridStyle.Set(d.Group, s) }

func (d *Display) WaveformIntensity() (float64, error) {
	return waveformIntensity.Get(d.Group)
}

// SetWaveformIntensity sets the waveform intensity in percent.
func (d *Display) SetWaveformIntensity(percent float64) error {
	return waveformIntensity.Set(d.Group, percent)
}
