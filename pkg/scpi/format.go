// Copyright 2025 The gomeasure Authors
//
// SPDX-License-Identifier: Apache-2.0

package scpi

import (
	"fmt"
	"regexp"
	"strings"

	gmerrors "github.com/gomeasure/gomeasure/pkg/errors"
)

// Placeholder tokens are named substrings of the form {name} resolved to
// a node's identity before transmission. Resolution is purely textual.
var placeholderPattern = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// InsertPlaceholders resolves every placeholder present in repl in a
// single pass. Tokens not covered by repl are left for outer nodes;
// replacement text is never rescanned, so resolution is idempotent.
func InsertPlaceholders(command string, repl map[string]string) string {
	if len(repl) == 0 || !strings.Contains(command, "{") {
		return command
	}
	return placeholderPattern.ReplaceAllStringFunc(command, func(tok string) string {
		if value, ok := repl[tok[1:len(tok)-1]]; ok {
			return value
		}
		return tok
	})
}

// residualPlaceholder returns the first unresolved placeholder token, if
// any. Called at the root before transmission.
func residualPlaceholder(command string) (string, bool) {
	tok := placeholderPattern.FindString(command)
	return tok, tok != ""
}

// verbCount counts printf-style value slots in a template, ignoring the
// literal %%.
func verbCount(template string) int {
	count := 0
	for i := 0; i < len(template); i++ {
		if template[i] != '%' {
			continue
		}
		if i+1 < len(template) && template[i+1] == '%' {
			i++
			continue
		}
		count++
	}
	return count
}

// FormatWrite renders a write template and a formatted, mapped value
// into the literal command string. A write template carries exactly one
// value slot.
func FormatWrite(template string, wire any) (string, error) {
	if n := verbCount(template); n != 1 {
		return "", gmerrors.NewTemplateError(nil,
			fmt.Sprintf("write template %q has %d value slots, want 1", template, n))
	}
	command := fmt.Sprintf(template, wire)
	// fmt reports a verb/value mismatch inline, e.g. "%!d(string=ON)".
	if strings.Contains(command, "%!") {
		return "", gmerrors.NewTemplateError(nil,
			fmt.Sprintf("value %v (%T) does not fit template %q", wire, wire, template))
	}
	return command, nil
}
