// Copyright 2025 The gomeasure Authors
//
// SPDX-License-Identifier: Apache-2.0

package tektronix

import (
	"fmt"

	gmerrors "github.com/gomeasure/gomeasure/pkg/errors"
	"github.com/gomeasure/gomeasure/pkg/scpi"
	"github.com/gomeasure/gomeasure/pkg/transport"
)

// MSO is a mixed-signal oscilloscope of the MSO 5 series. Analog
// channel count varies per model; math and reference slots are four on
// all of them.
type MSO struct {
	*scpi.Instrument

	Channels []ScopeChannel
	Math     []MathChannel
	Ref      []ScopeChannel

	Trigger     *Trigger
	Acquisition *Acquisition
	Horizontal  *Horizontal
	Cursor      *Cursor
	Measurement *Measurement
	Waveform    *WaveformTransfer
	Display     *Display
}

// NewMSO54 builds a driver for the 4-channel MSO54.
func NewMSO54(tr transport.Transport) *MSO {
	return newMSO(tr, scpi.Config{Manufacturer: "Tektronix", Model: "MSO54"}, 4)
}

// NewMSO58 builds a driver for the 8-channel MSO58.
func NewMSO58(tr transport.Transport) *MSO {
	return newMSO(tr, scpi.Config{Manufacturer: "Tektronix", Model: "MSO58"}, 8)
}

func newMSO(tr transport.Transport, config scpi.Config, analogChannels int) *MSO {
	inst := scpi.NewInstrument(tr, config)
	scope := &MSO{
		Instrument:  inst,
		Trigger:     newTrigger(inst),
		Acquisition: newAcquisition(inst),
		Horizontal:  newHorizontal(inst),
		Cursor:      newCursor(inst),
		Measurement: newMeasurement(inst),
		Waveform:    newWaveformTransfer(inst),
		Display:     newDisplay(inst),
	}
	for i := 0; i < analogChannels; i++ {
		scope.Channels = append(scope.Channels, newScopeChannel(inst, KindAnalog, i+1))
	}
	for i := 0; i < 4; i++ {
		scope.Math = append(scope.Math, newMathChannel(inst, i+1))
		scope.Ref = append(scope.Ref, newScopeChannel(inst, KindReference, i+1))
	}
	return scope
}

// Ch returns the analog channel with the given 1-based number.
func (s *MSO) Ch(number int) (ScopeChannel, error) {
	if number < 1 || number > len(s.Channels) {
		return ScopeChannel{}, gmerrors.NewRangeError(float64(number), 1, float64(len(s.Channels)))
	}
	return s.Channels[number-1], nil
}

// AcquireWaveform configures a transfer of the full record of one
// analog channel and returns the raw curve data.
func (s *MSO) AcquireWaveform(channel int) ([]byte, error) {
	ch, err := s.Ch(channel)
	if err != nil {
		return nil, err
	}
	if err := s.Waveform.SetSource(fmt.Sprintf("%s%s", ch.Kind, ch.ID())); err != nil {
		return nil, err
	}
	if err := s.Waveform.SetEncoding(EncodingRIBinary); err != nil {
		return nil, err
	}
	return s.Waveform.Curve()
}
