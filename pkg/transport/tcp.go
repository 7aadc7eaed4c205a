// Copyright 2025 The gomeasure Authors
//
// SPDX-License-Identifier: Apache-2.0

package transport

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strings"
	"time"

	"github.com/gomeasure/gomeasure/pkg/errors"
)

var (
	tcpDialTimeout = 5 * time.Second
	tcpReadTimeout = 10 * time.Second
)

// TCP talks to an instrument over a raw socket (the LAN service most
// SCPI instruments expose on port 5025). One connection per instrument;
// command/response pairing assumes no concurrent use.
type TCP struct {
	Addr             string
	WriteTermination string
	ReadTermination  string
	Timeout          time.Duration

	conn   net.Conn
	reader *bufio.Reader
}

// DialTCP connects to addr (host:port).
func DialTCP(addr string) (*TCP, error) {
	t := &TCP{
		Addr:             addr,
		WriteTermination: "\n",
		ReadTermination:  "\n",
		Timeout:          tcpReadTimeout,
	}
	conn, err := net.DialTimeout("tcp", addr, tcpDialTimeout)
	if err != nil {
		return nil, errors.NewTransportError(err, fmt.Sprintf("dial %s", addr))
	}
	slog.Info(fmt.Sprintf("TCP: Connect: %s", addr))
	t.conn = conn
	t.reader = bufio.NewReader(conn)
	return t, nil
}

func (t *TCP) Write(command string) error {
	if t.conn == nil {
		return errors.NewTransportError(errors.ErrClosed, command)
	}
	t.conn.SetWriteDeadline(time.Now().Add(t.Timeout))
	slog.Debug(fmt.Sprintf("TCP: -> %q", command))
	if _, err := io.WriteString(t.conn, command+t.WriteTermination); err != nil {
		return t.wrap(err, fmt.Sprintf("write %q", command))
	}
	return nil
}

func (t *TCP) Read() (string, error) {
	if t.conn == nil {
		return "", errors.NewTransportError(errors.ErrClosed, "read")
	}
	t.conn.SetReadDeadline(time.Now().Add(t.Timeout))
	line, err := t.reader.ReadString(t.ReadTermination[len(t.ReadTermination)-1])
	if err != nil {
		return "", t.wrap(err, "read")
	}
	line = strings.TrimSuffix(line, t.ReadTermination)
	line = strings.TrimSuffix(line, "\r")
	slog.Debug(fmt.Sprintf("TCP: <- %q", line))
	return line, nil
}

func (t *TCP) ReadBytes(count int) ([]byte, error) {
	if t.conn == nil {
		return nil, errors.NewTransportError(errors.ErrClosed, "read bytes")
	}
	t.conn.SetReadDeadline(time.Now().Add(t.Timeout))
	if count >= 0 {
		data := make([]byte, count)
		if _, err := io.ReadFull(t.reader, data); err != nil {
			return nil, t.wrap(err, fmt.Sprintf("read %d bytes", count))
		}
		return data, nil
	}
	// count == -1: drain until the link stops delivering.
	var data []byte
	buf := make([]byte, 4096)
	for {
		n, err := t.reader.Read(buf)
		data = append(data, buf[:n]...)
		if err != nil {
			if len(data) > 0 {
				return data, nil
			}
			return nil, t.wrap(err, "read until done")
		}
		t.conn.SetReadDeadline(time.Now().Add(t.Timeout))
	}
}

// Query performs the write/read round trip on the single connection.
func (t *TCP) Query(command string) (string, error) {
	if err := t.Write(command); err != nil {
		return "", err
	}
	return t.Read()
}

func (t *TCP) Close() error {
	if t.conn == nil {
		return nil
	}
	slog.Info(fmt.Sprintf("TCP: Disconnect: %s", t.Addr))
	err := t.conn.Close()
	t.conn = nil
	t.reader = nil
	return err
}

func (t *TCP) wrap(err error, msg string) error {
	if ne, ok := err.(net.Error); ok && ne.Timeout() {
		return errors.NewTransportTimeoutError(err, msg)
	}
	return errors.NewTransportError(err, msg)
}
