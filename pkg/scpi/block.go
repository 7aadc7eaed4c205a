// Copyright 2025 The gomeasure Authors
//
// SPDX-License-Identifier: Apache-2.0

package scpi

import (
	"fmt"
	"strconv"

	gmerrors "github.com/gomeasure/gomeasure/pkg/errors"
)

// ReadBlock reads an IEEE-488.2 binary block from the node: a '#'
// marker, one digit giving the length-field width, the payload length,
// then the payload. A zero digit announces an indefinite-length block,
// read until the link indicates completion.
func ReadBlock(n Node) ([]byte, error) {
	head, err := n.ReadBytes(2)
	if err != nil {
		return nil, err
	}
	if len(head) < 2 || head[0] != '#' {
		return nil, gmerrors.NewResponseParseError(nil,
			fmt.Sprintf("binary block header %q", head))
	}
	digits := int(head[1] - '0')
	if digits == 0 {
		return n.ReadBytes(-1)
	}
	if digits < 0 || digits > 9 {
		return nil, gmerrors.NewResponseParseError(nil,
			fmt.Sprintf("binary block length digit %q", head[1]))
	}
	lengthField, err := n.ReadBytes(digits)
	if err != nil {
		return nil, err
	}
	size, err := strconv.Atoi(string(lengthField))
	if err != nil {
		return nil, gmerrors.NewResponseParseError(err,
			fmt.Sprintf("binary block length %q", lengthField))
	}
	return n.ReadBytes(size)
}
