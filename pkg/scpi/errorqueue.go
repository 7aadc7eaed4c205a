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
)

// ErrorEntry is one entry of the instrument's error queue, FIFO as
// returned by the instrument. Code 0 is the "no error" sentinel.
type ErrorEntry struct {
	Code    int
	Message string
}

func (e ErrorEntry) String() string {
	return fmt.Sprintf("%d,%q", e.Code, e.Message)
}

// parseErrorEntry parses a SYST:ERR? response such as
// `-113,"Undefined header"`.
func parseErrorEntry(response string) (ErrorEntry, error) {
	codeText, message, found := strings.Cut(response, ",")
	if !found {
		return ErrorEntry{}, gmerrors.NewResponseParseError(nil,
			fmt.Sprintf("error queue entry %q", response))
	}
	code, err := strconv.Atoi(strings.TrimSpace(codeText))
	if err != nil {
		return ErrorEntry{}, gmerrors.NewResponseParseError(err,
			fmt.Sprintf("error queue entry %q", response))
	}
	return ErrorEntry{Code: code, Message: strings.Trim(strings.TrimSpace(message), `"`)}, nil
}

// CheckErrors drains the error queue, logging and collecting every
// non-zero entry until the sentinel is seen. Draining more than
// ErrorLimit entries fails with an overflow error, with the entries
// read so far.
func (in *Instrument) CheckErrors() ([]ErrorEntry, error) {
	var entries []ErrorEntry
	for i := 0; i < in.ErrorLimit; i++ {
		response, err := in.Ask(in.ErrorCommand)
		if err != nil {
			return entries, err
		}
		entry, err := parseErrorEntry(strings.TrimSpace(response))
		if err != nil {
			return entries, err
		}
		if entry.Code == 0 {
			return entries, nil
		}
		slog.Warn(fmt.Sprintf("%s: error queue: %s", in.Name, entry))
		entries = append(entries, entry)
	}
	return entries, gmerrors.NewErrorQueueOverflowError(in.ErrorLimit)
}

// CheckGetErrors runs after a property get when the descriptor requests
// it. Without an OnGetErrors hook, entries are logged only.
func (in *Instrument) CheckGetErrors() error {
	entries, err := in.CheckErrors()
	if err != nil {
		return err
	}
	if in.OnGetErrors != nil {
		return in.OnGetErrors(entries)
	}
	return nil
}

// CheckSetErrors runs after a property set when the descriptor requests
// it. Without an OnSetErrors hook, entries are logged only.
func (in *Instrument) CheckSetErrors() error {
	entries, err := in.CheckErrors()
	if err != nil {
		return err
	}
	if in.OnSetErrors != nil {
		return in.OnSetErrors(entries)
	}
	return nil
}

// RaiseAll is a ready-made error-check hook raising the first entry as
// an instrument-reported error.
func RaiseAll(entries []ErrorEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return gmerrors.NewInstrumentReportedError(entries[0].Code, entries[0].Message)
}
