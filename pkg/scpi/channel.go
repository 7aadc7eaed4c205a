// Copyright 2025 The gomeasure Authors
//
// SPDX-License-Identifier: Apache-2.0

package scpi

import (
	"fmt"
	"maps"
)

// DefaultPlaceholder is the token channels resolve to their identity
// when no other token is configured.
const DefaultPlaceholder = "ch"

// Channel is an addressable sub-component of an instrument (one output
// of a multi-output supply, one input of a scope). It substitutes its
// own placeholder tokens into a command exactly once, then delegates the
// substituted string to its parent unchanged.
type Channel struct {
	overrides

	parent Node
	id     string
	tokens map[string]string
}

// NewChannel creates a channel with the given identity bound to the
// default {ch} placeholder. The identity is rendered with %v.
func NewChannel(parent Node, id any) *Channel {
	identity := fmt.Sprint(id)
	return &Channel{
		parent: parent,
		id:     identity,
		tokens: map[string]string{DefaultPlaceholder: identity},
	}
}

// WithPlaceholder binds an additional named placeholder resolved
// together with {ch} in one pass, e.g. a channel-type prefix. It returns
// the channel for chaining during construction.
func (c *Channel) WithPlaceholder(token, value string) *Channel {
	c.tokens[token] = value
	return c
}

// ID returns the channel identity as used in commands.
func (c *Channel) ID() string {
	return c.id
}

func (c *Channel) Placeholders() map[string]string {
	return maps.Clone(c.tokens)
}

func (c *Channel) insertID(command string) string {
	return InsertPlaceholders(command, c.tokens)
}

func (c *Channel) Write(command string) error {
	return c.parent.Write(c.insertID(command))
}

func (c *Channel) Read() (string, error) {
	return c.parent.Read()
}

func (c *Channel) ReadBytes(count int) ([]byte, error) {
	return c.parent.ReadBytes(count)
}

func (c *Channel) Ask(command string) (string, error) {
	return c.parent.Ask(c.insertID(command))
}

func (c *Channel) CheckErrors() ([]ErrorEntry, error) {
	return c.parent.CheckErrors()
}

func (c *Channel) CheckGetErrors() error {
	return c.parent.CheckGetErrors()
}

func (c *Channel) CheckSetErrors() error {
	return c.parent.CheckSetErrors()
}
