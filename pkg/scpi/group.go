// Copyright 2025 The gomeasure Authors
//
// SPDX-License-Identifier: Apache-2.0

package scpi

// Group namespaces a slice of a large instrument's command set (a
// scope's trigger or acquisition subsystem) without representing an
// addressable sub-component. It substitutes nothing and forwards all
// I/O verbatim to its parent.
type Group struct {
	overrides

	parent Node
	name   string
}

func NewGroup(parent Node, name string) *Group {
	return &Group{parent: parent, name: name}
}

func (g *Group) Name() string {
	return g.name
}

func (g *Group) Placeholders() map[string]string {
	return nil
}

func (g *Group) Write(command string) error {
	return g.parent.Write(command)
}

func (g *Group) Read() (string, error) {
	return g.parent.Read()
}

func (g *Group) ReadBytes(count int) ([]byte, error) {
	return g.parent.ReadBytes(count)
}

func (g *Group) Ask(command string) (string, error) {
	return g.parent.Ask(command)
}

func (g *Group) CheckErrors() ([]ErrorEntry, error) {
	return g.parent.CheckErrors()
}

func (g *Group) CheckGetErrors() error {
	return g.parent.CheckGetErrors()
}

func (g *Group) CheckSetErrors() error {
	return g.parent.CheckSetErrors()
}
