// Copyright 2025 The gomeasure Authors
//
// SPDX-License-Identifier: Apache-2.0

package transport

import (
	"bufio"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/tarm/serial"

	"github.com/gomeasure/gomeasure/pkg/errors"
)

// SerialConfig selects the port and line settings for a serial link.
// Instruments on RS-232 almost universally run 8N1.
type SerialConfig struct {
	Port        string
	Baud        int
	ReadTimeout time.Duration
}

// Serial talks to an instrument over an RS-232 or USB-serial link.
type Serial struct {
	WriteTermination string
	ReadTermination  string

	cfg    SerialConfig
	port   *serial.Port
	reader *bufio.Reader
}

// OpenSerial opens the configured port.
func OpenSerial(cfg SerialConfig) (*Serial, error) {
	if cfg.Baud == 0 {
		cfg.Baud = 9600
	}
	if cfg.ReadTimeout == 0 {
		cfg.ReadTimeout = 10 * time.Second
	}
	port, err := serial.OpenPort(&serial.Config{
		Name:        cfg.Port,
		Baud:        cfg.Baud,
		Size:        8,
		Parity:      serial.ParityNone,
		StopBits:    serial.Stop1,
		ReadTimeout: cfg.ReadTimeout,
	})
	if err != nil {
		return nil, errors.NewTransportError(err, fmt.Sprintf("open %s", cfg.Port))
	}
	slog.Info(fmt.Sprintf("Serial: Connect: %s (%d baud)", cfg.Port, cfg.Baud))
	return &Serial{
		WriteTermination: "\n",
		ReadTermination:  "\n",
		cfg:              cfg,
		port:             port,
		reader:           bufio.NewReader(port),
	}, nil
}

func (s *Serial) Write(command string) error {
	if s.port == nil {
		return errors.NewTransportError(errors.ErrClosed, command)
	}
	slog.Debug(fmt.Sprintf("Serial: -> %q", command))
	if _, err := s.port.Write([]byte(command + s.WriteTermination)); err != nil {
		return errors.NewTransportError(err, fmt.Sprintf("write %q", command))
	}
	return nil
}

func (s *Serial) Read() (string, error) {
	if s.port == nil {
		return "", errors.NewTransportError(errors.ErrClosed, "read")
	}
	line, err := s.reader.ReadString(s.ReadTermination[len(s.ReadTermination)-1])
	if err != nil {
		// tarm/serial signals an expired ReadTimeout as io.EOF.
		return "", errors.NewTransportTimeoutError(err, "read")
	}
	line = strings.TrimSuffix(line, s.ReadTermination)
	line = strings.TrimSuffix(line, "\r")
	slog.Debug(fmt.Sprintf("Serial: <- %q", line))
	return line, nil
}

func (s *Serial) ReadBytes(count int) ([]byte, error) {
	if s.port == nil {
		return nil, errors.NewTransportError(errors.ErrClosed, "read bytes")
	}
	if count < 0 {
		var data []byte
		buf := make([]byte, 4096)
		for {
			n, err := s.reader.Read(buf)
			data = append(data, buf[:n]...)
			if err != nil || n == 0 {
				if len(data) > 0 {
					return data, nil
				}
				return nil, errors.NewTransportTimeoutError(err, "read until done")
			}
		}
	}
	data := make([]byte, count)
	read := 0
	for read < count {
		n, err := s.reader.Read(data[read:])
		read += n
		if err != nil {
			return nil, errors.NewTransportTimeoutError(err, fmt.Sprintf("read %d bytes", count))
		}
	}
	return data, nil
}

func (s *Serial) Close() error {
	if s.port == nil {
		return nil
	}
	slog.Info(fmt.Sprintf("Serial: Disconnect: %s", s.cfg.Port))
	err := s.port.Close()
	s.port = nil
	s.reader = nil
	return err
}
