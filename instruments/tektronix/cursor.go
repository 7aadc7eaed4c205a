// Copyright 2025 The gomeasure Authors
//
// SPDX-License-Identifier: Apache-2.0

package tektronix

import (
	"github.com/gomeasure/gomeasure/pkg/scpi"
	"github.com/gomeasure/gomeasure/pkg/validate"
)

// Cursor functions and tracking modes.
const (
	CursorOff      = "OFF"
	CursorHBars    = "HBARS"
	CursorVBars    = "VBARS"
	CursorScreen   = "SCREEN"
	CursorWaveform = "WAVEFORM"

	CursorIndependent = "INDEPENDENT"
	CursorTrack       = "TRACK"
)

var (
	cursorFunction = scpi.Property[string]{
		Name:      "cursor_function",
		Query:     "CURSor:FUNCtion?",
		Command:   "CURSor:FUNCtion %s",
		Validator: validate.StrictSet[string],
		Values: []string{CursorOff, CursorHBars, CursorVBars, CursorScreen,
			CursorWaveform},
	}

	cursorMode = scpi.Property[string]{
		Name:      "cursor_mode",
		Query:     "CURSor:MODe?",
		Command:   "CURSor:MODe %s",
		Validator: validate.StrictSet[string],
		Values:    []string{CursorIndependent, CursorTrack},
	}

	cursorEnabled = scpi.Property[bool]{
		Name:      "cursor_enabled",
		Query:     "CURSor:STATE?",
		Command:   "CURSor:STATE %d",
		Validator: validate.StrictSet[bool],
		Values:    []bool{true, false},
		Map:       validate.BooleanToInt,
	}

	hbarsPosition1 = scpi.Property[float64]{
		Name:    "hbars_position1",
		Query:   "CURSor:HBArs:POSITION1?",
		Command: "CURSor:HBArs:POSITION1 %g",
	}

	hbarsPosition2 = scpi.Property[float64]{
		Name:    "hbars_position2",
		Query:   "CURSor:HBArs:POSITION2?",
		Command: "CURSor:HBArs:POSITION2 %g",
	}

	hbarsDelta = scpi.Property[float64]{
		Name:  "hbars_delta",
		Query: "CURSor:HBArs:DELTa?",
	}

	vbarsPosition1 = scpi.Property[float64]{
		Name:    "vbars_position1",
		Query:   "CURSor:VBArs:POSITION1?",
		Command: "CURSor:VBArs:POSITION1 %g",
	}

	vbarsPosition2 = scpi.Property[float64]{
		Name:    "vbars_position2",
		Query:   "CURSor:VBArs:POSITION2?",
		Command: "CURSor:VBArs:POSITION2 %g",
	}

	vbarsDelta = scpi.Property[float64]{
		Name:  "vbars_delta",
		Query: "CURSor:VBArs:DELTa?",
	}
)

// Cursor groups the measurement cursor subsystem.
type Cursor struct {
	*scpi.Group
}

func newCursor(parent scpi.Node) *Cursor {
	return &Cursor{Group: scpi.NewGroup(parent, "cursor")}
}

func (c *Cursor) Function() (string, error)  { return cursorFunction.Get(c.Group) }
func (c *Cursor) SetFunction(f string) error { return cursorFunction.Set(c.Group, f) }

func (c *Cursor) Mode() (string, error)  { return cursorMode.Get(c.Group) }
func (c *Cursor) SetMode(m string) error { return cursorMode.Set(c.Group, m) }

func (c *Cursor) Enabled() (bool, error)   { return cursorEnabled.Get(c.Group) }
func (c *Cursor) SetEnabled(on bool) error { return cursorEnabled.Set(c.Group, on) }

// HBarsPosition1 is the first horizontal bar position in vertical units.
func (c *Cursor) HBarsPosition1() (float64, error) { return hbarsPosition1.Get(c.Group) }
func (c *Cursor) SetHBarsPosition1(v float64) error {
	return hbarsPosition1.Set(c.Group, v)
}

func (c *Cursor) HBarsPosition2() (float64, error) { return hbarsPosition2.Get(c.Group) }
func (c *Cursor) SetHBarsPosition2(v float64) error {
	return hbarsPosition2.Set(c.Group, v)
}

// HBarsDelta returns the difference between the two horizontal bars.
func (c *Cursor) HBarsDelta() (float64, error) { return hbarsDelta.Get(c.Group) }

func (c *Cursor) VBarsPosition1() (float64, error) { return vbarsPosition1.Get(c.Group) }
func (c *Cursor) SetVBarsPosition1(v float64) error {
	return vbarsPosition1.Set(c.Group, v)
}

func (c *Cursor) VBarsPosition2() (float64, error) { return vbarsPosition2.Get(c.Group) }
func (c *Cursor) SetVBarsPosition2(v float64) error {
	return vbarsPosition2.Set(c.Group, v)
}

// VBarsDelta returns the time between the two vertical bars.
func (c *Cursor) VBarsDelta() (float64, error) { return vbarsDelta.Get(c.Group) }
