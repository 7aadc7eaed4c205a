// Copyright 2025 The gomeasure Authors
//
// SPDX-License-Identifier: Apache-2.0

package keysight

import (
	"github.com/gomeasure/gomeasure/pkg/catalog"
	"github.com/gomeasure/gomeasure/pkg/scpi"
	"github.com/gomeasure/gomeasure/pkg/transport"
)

// E36312A is a triple-output bench power supply: 6 V/5 A on channel 1
// and 25 V/1 A on channels 2 and 3.
//
//	supply := keysight.NewE36312A(tr)
//	supply.Ch1.SetVoltageSetpoint(10)
//	supply.Ch1.SetCurrentLimit(0.1)
//	supply.Ch1.SetOutputEnabled(true)
//	v, err := supply.Ch1.MeasureVoltage()
type E36312A struct {
	*scpi.Instrument

	Ch1 VoltageChannel
	Ch2 VoltageChannel
	Ch3 VoltageChannel

	Channels []VoltageChannel
}

func NewE36312A(tr transport.Transport) *E36312A {
	inst := scpi.NewInstrument(tr, scpi.Config{Manufacturer: "Keysight", Model: "E36312A"})
	supply := &E36312A{
		Instrument: inst,
		Ch1:        newVoltageChannel(inst, 1),
		Ch2:        newVoltageChannel(inst, 2),
		Ch3:        newVoltageChannel(inst, 3),
	}
	supply.Channels = []VoltageChannel{supply.Ch1, supply.Ch2, supply.Ch3}

	supply.Ch1.SetVoltageLimits(0, 6)
	supply.Ch1.SetCurrentLimits(0, 5)
	supply.Ch2.SetVoltageLimits(0, 25)
	supply.Ch2.SetCurrentLimits(0, 1)
	supply.Ch3.SetVoltageLimits(0, 25)
	supply.Ch3.SetCurrentLimits(0, 1)
	return supply
}

// ApplyProfile replaces the built-in channel limits with the ones from a
// catalog profile.
func (s *E36312A) ApplyProfile(profile *catalog.Profile) {
	for i, ch := range s.Channels {
		if cp, ok := profile.Channel(i + 1); ok {
			ch.SetVoltageLimits(cp.Voltage[0], cp.Voltage[1])
			ch.SetCurrentLimits(cp.Current[0], cp.Current[1])
		}
	}
}
