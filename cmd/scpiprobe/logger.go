// Copyright 2025 The gomeasure Authors
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"io"
	"log"
	"log/slog"
	"os"
)

// plainLogHandler prints "LEVEL: message" lines without timestamps or
// attribute rendering, keeping wire traces readable on a terminal.
type plainLogHandler struct {
	slog.Handler
	out *log.Logger
}

func newPlainLogHandler(w io.Writer, level slog.Leveler) *plainLogHandler {
	return &plainLogHandler{
		Handler: slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}),
		out:     log.New(w, "", 0),
	}
}

func (h *plainLogHandler) Handle(_ context.Context, r slog.Record) error {
	h.out.Println(r.Level.String()+":", r.Message)
	return nil
}

// NewLogger maps the -logger flag (0..4, debug..error) onto a slog
// level and returns a logger writing to stderr.
func NewLogger(level int) *slog.Logger {
	var l slog.Level
	switch {
	case level <= 1:
		l = slog.LevelDebug
	case level == 2:
		l = slog.LevelInfo
	case level == 3:
		l = slog.LevelWarn
	default:
		l = slog.LevelError
	}
	return slog.New(newPlainLogHandler(os.Stderr, l))
}
