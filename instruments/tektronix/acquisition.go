// Copyright 2025 The gomeasure Authors
//
// SPDX-License-Identifier: Apache-2.0

package tektronix

import (
	"github.com/gomeasure/gomeasure/pkg/scpi"
	"github.com/gomeasure/gomeasure/pkg/validate"
)

// Acquisition modes.
const (
	AcquireSample     = "SAMPLE"
	AcquirePeakDetect = "PEAKDETECT"
	AcquireHiRes      = "HIRES"
	AcquireAverage    = "AVERAGE"
	AcquireEnvelope   = "ENVELOPE"
)

var (
	acquireMode = scpi.Property[string]{
		Name:      "acquire_mode",
		Query:     "ACQuire:MODe?",
		Command:   "ACQuire:MODe %s",
		Validator: validate.StrictSet[string],
		Values: []string{AcquireSample, AcquirePeakDetect, AcquireHiRes,
			AcquireAverage, AcquireEnvelope},
	}

	acquireRunning = scpi.Property[bool]{
		Name:      "acquire_running",
		Query:     "ACQuire:STATE?",
		Command:   "ACQuire:STATE %d",
		Validator: validate.StrictSet[bool],
		Values:    []bool{true, false},
		Map:       validate.BooleanToInt,
	}

	acquireAverages = scpi.Property[int]{
		Name:      "acquire_averages",
		Query:     "ACQuire:NUMAVg?",
		Command:   "ACQuire:NUMAVg %d",
		Validator: validate.StrictSet[int],
		Values:    []int{2, 4, 8, 16, 32, 64, 128, 256, 512},
	}

	fastAcqEnabled = scpi.Property[bool]{
		Name:      "fastacq_enabled",
		Query:     "ACQuire:FASTAcq:STATE?",
		Command:   "ACQuire:FASTAcq:STATE %d",
		Validator: validate.StrictSet[bool],
		Values:    []bool{true, false},
		Map:       validate.BooleanToInt,
	}

	maxSampleRate = scpi.Property[float64]{
		Name:  "max_sample_rate",
		Query: "ACQuire:MAXSamplerate?",
	}
)

// Acquisition groups the acquisition subsystem.
type Acquisition struct {
	*scpi.Group
}

func newAcquisition(parent scpi.Node) *Acquisition {
	return &Acquisition{Group: scpi.NewGroup(parent, "acquisition")}
}

func (a *Acquisition) Mode() (string, error)  { return acquireMode.Get(a.Group) }
func (a *Acquisition) SetMode(m string) error { return acquireMode.Set(a.Group, m) }

func (a *Acquisition) Running() (bool, error) { return acquireRunning.Get(a.Group) }

// SetRunning starts or stops acquisitions.
func (a *Acquisition) SetRunning(on bool) error { return acquireRunning.Set(a.Group, on) }

func (a *Acquisition) Averages() (int, error) { return acquireAverages.Get(a.Group) }

// SetAverages sets the waveform count of average mode, powers of two
// from 2 to 512.
func (a *Acquisition) SetAverages(n int) error { return acquireAverages.Set(a.Group, n) }

func (a *Acquisition) FastAcqEnabled() (bool, error) { return fastAcqEnabled.Get(a.Group) }
func (a *Acquisition) SetFastAcqEnabled(on bool) error {
	return fastAcqEnabled.Set(a.Group, on)
}

// MaxSampleRate returns the maximum real-time sample rate in samples
// per second.
func (a *Acquisition) MaxSampleRate() (float64, error) {
	return maxSampleRate.Get(a.Group)
}
