// Copyright 2025 The gomeasure Authors
//
// SPDX-License-Identifier: Apache-2.0

package tektronix

import (
	"fmt"
	"strconv"
	"strings"

	gmerrors "github.com/gomeasure/gomeasure/pkg/errors"
	"github.com/gomeasure/gomeasure/pkg/scpi"
	"github.com/gomeasure/gomeasure/pkg/validate"
)

// Measurement gating settings.
const (
	GateOff    = "OFF"
	GateScreen = "SCREEN"
	GateCursor = "CURSOR"
	GateLogic  = "LOGIC"
	GateSearch = "SEARCH"
	GateTime   = "TIME"
)

var (
	measGating = scpi.Property[string]{
		Name:      "measurement_gating",
		Query:     "MEASUrement:GATing?",
		Command:   "MEASUrement:GATing %s",
		Validator: validate.StrictSet[string],
		Values:    []string{GateOff, GateScreen, GateCursor, GateLogic, GateSearch, GateTime},
	}

	measGatingStart = scpi.Property[float64]{
		Name:    "measurement_gating_start",
		Query:   "MEASUrement:GATing:STARTtime?",
		Command: "MEASUrement:GATing:STARTtime %g",
	}

	measGatingEnd = scpi.Property[float64]{
		Name:    "measurement_gating_end",
		Query:   "MEASUrement:GATing:ENDtime?",
		Command: "MEASUrement:GATing:ENDtime %g",
	}

	measList = scpi.Property[[]string]{
		Name:  "measurement_list",
		Query: "MEASUrement:LIST?",
	}
)

// MeasurementStats holds the accumulated statistics of one measurement
// badge across all acquisitions.
type MeasurementStats struct {
	Mean       float64
	Min        float64
	Max        float64
	StdDev     float64
	Population int
}

// Measurement groups the automatic measurement subsystem. Badges are
// addressed by identifiers of the form "MEAS1".
type Measurement struct {
	*scpi.Group
}

func newMeasurement(parent scpi.Node) *Measurement {
	return &Measurement{Group: scpi.NewGroup(parent, "measurement")}
}

func (m *Measurement) Gating() (string, error)  { return measGating.Get(m.Group) }
func (m *Measurement) SetGating(g string) error { return measGating.Set(m.Group, g) }

func (m *Measurement) GatingStart() (float64, error) { return measGatingStart.Get(m.Group) }
func (m *Measurement) SetGatingStart(seconds float64) error {
	return measGatingStart.Set(m.Group, seconds)
}

func (m *Measurement) GatingEnd() (float64, error) { return measGatingEnd.Get(m.Group) }
func (m *Measurement) SetGatingEnd(seconds float64) error {
	return measGatingEnd.Set(m.Group, seconds)
}

// List returns the identifiers of the active measurement badges.
func (m *Measurement) List() ([]string, error) { return measList.Get(m.Group) }

// Add creates a new measurement badge.
func (m *Measurement) Add(id string) error {
	return m.Write(fmt.Sprintf("MEASUrement:ADDNew %q", id))
}

// Delete removes one measurement badge.
func (m *Measurement) Delete(id string) error {
	return m.Write(fmt.Sprintf("MEASUrement:DELete %q", id))
}

// DeleteAll removes every measurement badge.
func (m *Measurement) DeleteAll() error {
	return m.Write("MEASUrement:DELete ALL")
}

// Configure assigns a measurement type and sources to a badge. source2
// may be empty for single-source measurements.
func (m *Measurement) Configure(id, measType, source1, source2 string) error {
	if err := m.Write(fmt.Sprintf("MEASUrement:%s:TYPe %s", id, measType)); err != nil {
		return err
	}
	if err := m.Write(fmt.Sprintf("MEASUrement:%s:SOUrce1 %s", id, source1)); err != nil {
		return err
	}
	if source2 != "" {
		return m.Write(fmt.Sprintf("MEASUrement:%s:SOUrce2 %s", id, source2))
	}
	return nil
}

// Value returns the mean of a badge over the current acquisition.
func (m *Measurement) Value(id string) (float64, error) {
	return m.askFloat(fmt.Sprintf("MEASUrement:%s:RESUlts:CURRentacq:MEAN?", id))
}

// Statistics returns the all-acquisition statistics of a badge.
func (m *Measurement) Statistics(id string) (MeasurementStats, error) {
	var stats MeasurementStats
	var err error
	prefix := fmt.Sprintf("MEASUrement:%s:RESUlts:ALLAcqs", id)
	if stats.Mean, err = m.askFloat(prefix + ":MEAN?"); err != nil {
		return stats, err
	}
	if stats.Min, err = m.askFloat(prefix + ":MINimum?"); err != nil {
		return stats, err
	}
	if stats.Max, err = m.askFloat(prefix + ":MAXimum?"); err != nil {
		return stats, err
	}
	if stats.StdDev, err = m.askFloat(prefix + ":STDDev?"); err != nil {
		return stats, err
	}
	population, err := m.askFloat(prefix + ":POPUlation?")
	if err != nil {
		return stats, err
	}
	stats.Population = int(population)
	return stats, nil
}

func (m *Measurement) askFloat(query string) (float64, error) {
	response, err := m.Ask(query)
	if err != nil {
		return 0, err
	}
	response = strings.TrimSpace(response)
	value, err := strconv.ParseFloat(response, 64)
	if err != nil {
		return 0, gmerrors.NewResponseParseError(err, fmt.Sprintf("response %q", response))
	}
	return value, nil
}
