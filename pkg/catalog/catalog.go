// Copyright 2025 The gomeasure Authors
//
// SPDX-License-Identifier: Apache-2.0

// Package catalog loads per-model instrument profiles from YAML files.
// Profiles carry the physical limits (channel voltage/current ranges)
// that drivers apply as dynamic property overrides, so limit data can
// live next to a deployment instead of in code.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gomeasure/gomeasure/pkg/scpi"
)

// Limits is an inclusive [min, max] range.
type Limits [2]float64

type ChannelProfile struct {
	ID      int    `yaml:"id"`
	Voltage Limits `yaml:"voltage"`
	Current Limits `yaml:"current"`
}

type Profile struct {
	Manufacturer string           `yaml:"manufacturer"`
	Model        string           `yaml:"model"`
	Name         string           `yaml:"name"`
	Channels     []ChannelProfile `yaml:"channels"`
}

// Config renders the profile as an instrument configuration record.
func (p *Profile) Config() scpi.Config {
	return scpi.Config{Manufacturer: p.Manufacturer, Model: p.Model, Name: p.Name}
}

// Channel returns the profile of the channel with the given id.
func (p *Profile) Channel(id int) (ChannelProfile, bool) {
	for _, ch := range p.Channels {
		if ch.ID == id {
			return ch, true
		}
	}
	return ChannelProfile{}, false
}

// Catalog indexes profiles by model.
type Catalog struct {
	profiles map[string]*Profile
}

func New() *Catalog {
	return &Catalog{profiles: make(map[string]*Profile)}
}

// LoadDir loads every .yaml/.yml file in dir. A missing directory is not
// an error, just an empty catalog.
func (c *Catalog) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read profile directory %s: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		if err := c.Load(filepath.Join(dir, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

// Load loads a single profile file.
func (c *Catalog) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read profile %s: %w", path, err)
	}
	var profile Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return fmt.Errorf("parse profile %s: %w", path, err)
	}
	if profile.Model == "" {
		return fmt.Errorf("profile %s has no model", path)
	}
	c.profiles[profile.Model] = &profile
	return nil
}

// Profile returns the profile for a model.
func (c *Catalog) Profile(model string) (*Profile, bool) {
	p, ok := c.profiles[model]
	return p, ok
}

// Models lists the loaded model names.
func (c *Catalog) Models() []string {
	models := make([]string, 0, len(c.profiles))
	for model := range c.profiles {
		models = append(models, model)
	}
	return models
}
