// Copyright 2025 The gomeasure Authors
//
// SPDX-License-Identifier: Apache-2.0

// Package transport provides the byte-level link to an instrument. A
// Transport carries ASCII commands and responses; termination sequences
// are appended on write and trimmed on read here, never by the engine.
package transport

import (
	"fmt"
	"strings"

	"github.com/gomeasure/gomeasure/pkg/errors"
)

type Transport interface {
	Write(command string) (err error)
	Read() (response string, err error)
	ReadBytes(count int) (data []byte, err error)
	Close() error
}

// Querier is implemented by transports that support an atomic
// write-then-read round trip.
type Querier interface {
	Query(command string) (response string, err error)
}

// Exchange is one scripted request/response pair for the Stub transport.
type Exchange struct {
	Command     string
	Response    string
	hasResponse bool
}

// Tx scripts a command with no response (a plain write).
func Tx(command string) Exchange {
	return Exchange{Command: command}
}

// TxRx scripts a query and the response the instrument returns for it.
func TxRx(command, response string) Exchange {
	return Exchange{Command: command, Response: response, hasResponse: true}
}

// Stub is an in-memory transport for driver tests. With a script it
// asserts the exact wire traffic; without one it accepts any write and
// serves responses pushed with PushResponse. All writes are kept in
// Trace in transmission order.
type Stub struct {
	Trace []string

	script   []Exchange
	scripted bool
	pos      int
	queue    []string
	closed   bool
}

func NewStub(script ...Exchange) *Stub {
	return &Stub{script: script, scripted: true}
}

// NewFreeStub returns a Stub without a script.
func NewFreeStub() *Stub {
	return &Stub{}
}

func (s *Stub) Write(command string) error {
	if s.closed {
		return errors.NewTransportError(errors.ErrClosed, command)
	}
	s.Trace = append(s.Trace, command)
	if !s.scripted {
		return nil
	}
	if s.pos >= len(s.script) {
		return errors.NewTransportError(nil, fmt.Sprintf("unscripted command %q", command))
	}
	e := s.script[s.pos]
	s.pos++
	if command != e.Command {
		return errors.NewTransportError(nil,
			fmt.Sprintf("sent %q, script expects %q", command, e.Command))
	}
	if e.hasResponse {
		s.queue = append(s.queue, e.Response)
	}
	return nil
}

func (s *Stub) Read() (string, error) {
	if s.closed {
		return "", errors.NewTransportError(errors.ErrClosed, "read")
	}
	if len(s.queue) == 0 {
		return "", errors.NewTransportError(errors.ErrNoResponse, "read")
	}
	r := s.queue[0]
	s.queue = s.queue[1:]
	return r, nil
}

func (s *Stub) ReadBytes(count int) ([]byte, error) {
	if len(s.queue) == 0 {
		return nil, errors.NewTransportError(errors.ErrNoResponse, "read bytes")
	}
	data := []byte(s.queue[0])
	if count < 0 || count >= len(data) {
		s.queue = s.queue[1:]
		return data, nil
	}
	s.queue[0] = string(data[count:])
	return data[:count], nil
}

// PushResponse queues a response for an unscripted Stub.
func (s *Stub) PushResponse(response string) {
	s.queue = append(s.queue, response)
}

func (s *Stub) Close() error {
	s.closed = true
	return nil
}

// Done reports whether the whole script was consumed.
func (s *Stub) Done() error {
	if !s.scripted || s.pos == len(s.script) {
		return nil
	}
	remaining := make([]string, 0, len(s.script)-s.pos)
	for _, e := range s.script[s.pos:] {
		remaining = append(remaining, e.Command)
	}
	return fmt.Errorf("script not consumed, remaining: %s", strings.Join(remaining, ", "))
}

// Reset clears trace, queue and script position.
func (s *Stub) Reset() {
	s.Trace = nil
	s.queue = nil
	s.pos = 0
}
