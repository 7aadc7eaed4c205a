// Copyright 2025 The gomeasure Authors
//
// SPDX-License-Identifier: Apache-2.0

package scpi

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	gmerrors "github.com/gomeasure/gomeasure/pkg/errors"
	"github.com/gomeasure/gomeasure/pkg/transport"
)

var ErrorQueueLimit = 10

// Config identifies an instrument model. Name defaults to
// "<Manufacturer> <Model>".
type Config struct {
	Manufacturer string
	Model        string
	Name         string
}

// Instrument is the root node. It owns the transport exclusively; every
// get/set is one blocking round trip, and concurrent use from multiple
// goroutines requires external serialization.
type Instrument struct {
	Config
	overrides

	// ErrorCommand queries the next entry of the instrument's error
	// queue. ErrorLimit bounds queue draining against a misbehaving
	// instrument.
	ErrorCommand string
	ErrorLimit   int

	// OnGetErrors and OnSetErrors, when set, decide whether entries
	// found by a post-get/post-set check are raised. Unset, entries are
	// only logged.
	OnGetErrors func([]ErrorEntry) error
	OnSetErrors func([]ErrorEntry) error

	tr transport.Transport
}

func NewInstrument(tr transport.Transport, cfg Config) *Instrument {
	if cfg.Name == "" {
		cfg.Name = strings.TrimSpace(cfg.Manufacturer + " " + cfg.Model)
	}
	return &Instrument{
		Config:       cfg,
		ErrorCommand: "SYST:ERR?",
		ErrorLimit:   ErrorQueueLimit,
		tr:           tr,
	}
}

// Transport exposes the owned transport, for teardown by the caller.
func (in *Instrument) Transport() transport.Transport {
	return in.tr
}

func (in *Instrument) Placeholders() map[string]string {
	return nil
}

func (in *Instrument) Write(command string) error {
	command = InsertPlaceholders(command, in.Placeholders())
	if tok, ok := residualPlaceholder(command); ok {
		return gmerrors.NewTemplateError(nil,
			fmt.Sprintf("unresolved placeholder %s in %q", tok, command))
	}
	slog.Debug(fmt.Sprintf("%s: -> %q", in.Name, command))
	return in.tr.Write(command)
}

func (in *Instrument) Read() (string, error) {
	response, err := in.tr.Read()
	if err != nil {
		return "", err
	}
	slog.Debug(fmt.Sprintf("%s: <- %q", in.Name, response))
	return response, nil
}

func (in *Instrument) ReadBytes(count int) ([]byte, error) {
	return in.tr.ReadBytes(count)
}

// Ask writes a query and reads its response, using the transport's
// combined primitive when available.
func (in *Instrument) Ask(command string) (string, error) {
	command = InsertPlaceholders(command, in.Placeholders())
	if tok, ok := residualPlaceholder(command); ok {
		return "", gmerrors.NewTemplateError(nil,
			fmt.Sprintf("unresolved placeholder %s in %q", tok, command))
	}
	if q, ok := in.tr.(transport.Querier); ok {
		slog.Debug(fmt.Sprintf("%s: -> %q", in.Name, command))
		response, err := q.Query(command)
		if err != nil {
			return "", err
		}
		slog.Debug(fmt.Sprintf("%s: <- %q", in.Name, response))
		return response, nil
	}
	if err := in.Write(command); err != nil {
		return "", err
	}
	return in.Read()
}

// Common IEEE-488.2 commands.

// ID returns the identification string (*IDN?).
func (in *Instrument) ID() (string, error) {
	return in.Ask("*IDN?")
}

// Reset restores the instrument's power-on state (*RST).
func (in *Instrument) Reset() error {
	return in.Write("*RST")
}

// Clear clears status and error registers (*CLS).
func (in *Instrument) Clear() error {
	return in.Write("*CLS")
}

// Status returns the status byte register (*STB?).
func (in *Instrument) Status() (int, error) {
	response, err := in.Ask("*STB?")
	if err != nil {
		return 0, err
	}
	status, err := strconv.Atoi(strings.TrimSpace(response))
	if err != nil {
		return 0, gmerrors.NewResponseParseError(err, fmt.Sprintf("status byte %q", response))
	}
	return status, nil
}

// Complete blocks until all pending operations finish (*OPC?).
func (in *Instrument) Complete() error {
	_, err := in.Ask("*OPC?")
	return err
}

// Options returns the installed-options string (*OPT?).
func (in *Instrument) Options() (string, error) {
	return in.Ask("*OPT?")
}
