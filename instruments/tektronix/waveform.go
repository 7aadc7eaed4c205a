// Copyright 2025 The gomeasure Authors
//
// SPDX-License-Identifier: Apache-2.0

package tektronix

import (
	"github.com/gomeasure/gomeasure/pkg/scpi"
	"github.com/gomeasure/gomeasure/pkg/validate"
)

// Waveform data encodings.
const (
	EncodingASCII        = "ASCII"
	EncodingBinary       = "BINARY"
	EncodingRIBinary     = "RIBINARY"
	EncodingSRIBinary    = "SRIBINARY"
	EncodingFastest      = "FASTEST"
	EncodingFloatFastest = "FPBINARY"
)

var (
	dataSource = scpi.Property[string]{
		Name:    "data_source",
		Query:   "DATa:SOUrce?",
		Command: "DATa:SOUrce %s",
	}

	dataEncoding = scpi.Property[string]{
		Name:      "data_encoding",
		Query:     "DATa:ENCdg?",
		Command:   "DATa:ENCdg %s",
		Validator: validate.StrictSet[string],
		Values: []string{EncodingASCII, EncodingBinary, EncodingRIBinary,
			EncodingSRIBinary, EncodingFastest, EncodingFloatFastest},
	}

	dataStart = scpi.Property[int]{
		Name:      "data_start",
		Query:     "DATa:STARt?",
		Command:   "DATa:STARt %d",
		Validator: validate.StrictRange[int],
		Values:    []int{1, 2147483647},
	}

	dataStop = scpi.Property[int]{
		Name:      "data_stop",
		Query:     "DATa:STOP?",
		Command:   "DATa:STOP %d",
		Validator: validate.StrictRange[int],
		Values:    []int{1, 2147483647},
	}

	dataWidth = scpi.Property[int]{
		Name:      "data_width",
		Query:     "WFMOutpre:BYT_Nr?",
		Command:   "WFMOutpre:BYT_Nr %d",
		Validator: validate.StrictSet[int],
		Values:    []int{1, 2, 4, 8},
	}
)

// WaveformTransfer groups the DATa/CURVe subsystem that moves waveform
// records off the scope.
type WaveformTransfer struct {
	*scpi.Group
}

func newWaveformTransfer(parent scpi.Node) *WaveformTransfer {
	return &WaveformTransfer{Group: scpi.NewGroup(parent, "waveform")}
}

func (w *WaveformTransfer) Source() (string, error) { return dataSource.Get(w.Group) }

// SetSource selects the waveform to transfer, e.g. "CH1".
func (w *WaveformTransfer) SetSource(src string) error {
	return dataSource.Set(w.Group, src)
}

func (w *WaveformTransfer) Encoding() (string, error)  { return dataEncoding.Get(w.Group) }
func (w *WaveformTransfer) SetEncoding(e string) error { return dataEncoding.Set(w.Group, e) }

func (w *WaveformTransfer) Start() (int, error)  { return dataStart.Get(w.Group) }
func (w *WaveformTransfer) SetStart(n int) error { return dataStart.Set(w.Group, n) }
func (w *WaveformTransfer) Stop() (int, error)   { return dataStop.Get(w.Group) }
func (w *WaveformTransfer) SetStop(n int) error  { return dataStop.Set(w.Group, n) }

func (w *WaveformTransfer) Width() (int, error) { return dataWidth.Get(w.Group) }

// SetWidth sets the transfer sample width in bytes.
func (w *WaveformTransfer) SetWidth(bytes int) error { return dataWidth.Set(w.Group, bytes) }

// Preamble returns the outgoing waveform preamble describing scale and
// record layout of the next curve.
func (w *WaveformTransfer) Preamble() (string, error) {
	return w.Ask("WFMOutpre?")
}

// Curve transfers the selected waveform record as a raw binary block.
func (w *WaveformTransfer) Curve() ([]byte, error) {
	if err := w.Write("CURVe?"); err != nil {
		return nil, err
	}
	return scpi.ReadBlock(w.Group)
}
