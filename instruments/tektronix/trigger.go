// Copyright 2025 The gomeasure Authors
//
// SPDX-License-Identifier: Apache-2.0

package tektronix

import (
	"github.com/gomeasure/gomeasure/pkg/scpi"
	"github.com/gomeasure/gomeasure/pkg/validate"
)

// Trigger modes and A-event edge parameters.
const (
	TriggerAuto   = "AUTO"
	TriggerNormal = "NORMAL"

	SlopeRise   = "RISE"
	SlopeFall   = "FALL"
	SlopeEither = "EITHER"

	CouplingDC          = "DC"
	CouplingHFReject    = "HFREJ"
	CouplingLFReject    = "LFREJ"
	CouplingNoiseReject = "NOISEREJ"
)

var (
	triggerMode = scpi.Property[string]{
		Name:      "trigger_mode",
		Query:     "TRIGger:A:MODe?",
		Command:   "TRIGger:A:MODe %s",
		Validator: validate.StrictSet[string],
		Values:    []string{TriggerAuto, TriggerNormal},
	}

	triggerEdgeSlope = scpi.Property[string]{
		Name:      "trigger_edge_slope",
		Query:     "TRIGger:A:EDGE:SLOpe?",
		Command:   "TRIGger:A:EDGE:SLOpe %s",
		Validator: validate.StrictSet[string],
		Values:    []string{SlopeRise, SlopeFall, SlopeEither},
	}

	triggerEdgeCoupling = scpi.Property[string]{
		Name:      "trigger_edge_coupling",
		Query:     "TRIGger:A:EDGE:COUPling?",
		Command:   "TRIGger:A:EDGE:COUPling %s",
		Validator: validate.StrictSet[string],
		Values: []string{CouplingDC, CouplingHFReject, CouplingLFReject,
			CouplingNoiseReject},
	}

	triggerEdgeSource = scpi.Property[string]{
		Name:    "trigger_edge_source",
		Query:   "TRIGger:A:EDGE:SOUrce?",
		Command: "TRIGger:A:EDGE:SOUrce %s",
	}

	triggerLevel = scpi.Property[float64]{
		Name:      "trigger_level",
		Query:     "TRIGger:A:LEVel?",
		Command:   "TRIGger:A:LEVel %g",
		Validator: validate.StrictRange[float64],
		Values:    []float64{-50, 50},
	}

	triggerHoldoff = scpi.Property[float64]{
		Name:      "trigger_holdoff",
		Query:     "TRIGger:A:HOLDoff:TIMe?",
		Command:   "TRIGger:A:HOLDoff:TIMe %g",
		Validator: validate.StrictRange[float64],
		Values:    []float64{0, 10},
	}

	triggerState = scpi.Property[string]{
		Name:  "trigger_state",
		Query: "TRIGger:STATE?",
	}
)

// Trigger groups the A-event trigger subsystem.
type Trigger struct {
	*scpi.Group
}

func newTrigger(parent scpi.Node) *Trigger {
	return &Trigger{Group: scpi.NewGroup(parent, "trigger")}
}

func (t *Trigger) Mode() (string, error)  { return triggerMode.Get(t.Group) }
func (t *Trigger) SetMode(m string) error { return triggerMode.Set(t.Group, m) }

func (t *Trigger) EdgeSlope() (string, error)  { return triggerEdgeSlope.Get(t.Group) }
func (t *Trigger) SetEdgeSlope(s string) error { return triggerEdgeSlope.Set(t.Group, s) }

func (t *Trigger) EdgeCoupling() (string, error) { return triggerEdgeCoupling.Get(t.Group) }
func (t *Trigger) SetEdgeCoupling(c string) error {
	return triggerEdgeCoupling.Set(t.Group, c)
}

func (t *Trigger) EdgeSource() (string, error) { return triggerEdgeSource.Get(t.Group) }

// SetEdgeSource selects the trigger source, typically a channel identity
// such as "CH1".
func (t *Trigger) SetEdgeSource(src string) error {
	return triggerEdgeSource.Set(t.Group, src)
}

func (t *Trigger) Level() (float64, error) { return triggerLevel.Get(t.Group) }
func (t *Trigger) SetLevel(volts float64) error {
	return triggerLevel.Set(t.Group, volts)
}

func (t *Trigger) Holdoff() (float64, error) { return triggerHoldoff.Get(t.Group) }
func (t *Trigger) SetHoldoff(seconds float64) error {
	return triggerHoldoff.Set(t.Group, seconds)
}

// State returns the current trigger system state (READY, TRIGGER, ...).
func (t *Trigger) State() (string, error) { return triggerState.Get(t.Group) }

// Force makes the scope trigger immediately regardless of conditions.
func (t *Trigger) Force() error {
	return t.Write("TRIGger:FORCe")
}
