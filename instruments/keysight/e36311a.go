// Copyright 2025 The gomeasure Authors
//
// SPDX-License-Identifier: Apache-2.0

package keysight

import (
	"github.com/gomeasure/gomeasure/pkg/scpi"
	"github.com/gomeasure/gomeasure/pkg/transport"
)

// E36311A is a triple-output bench power supply: 6 V/5 A on channel 1
// and 25 V/1 A on channels 2 and 3. Same command surface as the E36312A,
// different front-end hardware.
type E36311A struct {
	*scpi.Instrument

	Ch1 VoltageChannel
	Ch2 VoltageChannel
	Ch3 VoltageChannel

	Channels []VoltageChannel
}

func NewE36311A(tr transport.Transport) *E36311A {
	inst := scpi.NewInstrument(tr, scpi.Config{Manufacturer: "Keysight", Model: "E36311A"})
	supply := &E36311A{
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
