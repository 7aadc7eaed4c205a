// Copyright 2025 The gomeasure Authors
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainLogHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newPlainLogHandler(&buf, slog.LevelInfo))

	logger.Info("connected")
	logger.Debug("suppressed")

	assert.Equal(t, "INFO: connected\n", buf.String())
}
