// Copyright 2025 The gomeasure Authors
//
// SPDX-License-Identifier: Apache-2.0

package scpi

import (
	"fmt"
	"strconv"
	"strings"

	gmerrors "github.com/gomeasure/gomeasure/pkg/errors"
	"github.com/gomeasure/gomeasure/pkg/validate"
)

// Property binds a named instrument property to a query/write command
// pair. A control declares both templates, a measurement only Query, a
// setting only Command. Declarations are package-level and shared across
// all instances of a driver type; Dynamic properties may have Values and
// Map shadowed per node instance (physical limits differ by model and
// channel).
//
// Supported primitive types: float64, int, bool, string, and the
// comma-delimited multi-value forms []float64 and []string.
type Property[T any] struct {
	Name    string
	Query   string
	Command string

	Validator validate.Func[T]
	Values    []T
	Map       validate.Mapper
	Dynamic   bool

	CheckGet bool
	CheckSet bool
}

// Get renders the query, performs the round trip through the node chain
// and parses the response into T.
func (p Property[T]) Get(n Node) (T, error) {
	var zero T
	if p.Query == "" {
		return zero, gmerrors.ErrNotReadable(p.Name)
	}
	response, err := n.Ask(p.Query)
	if err != nil {
		return zero, err
	}
	response = strings.TrimSpace(response)

	var value T
	if m := p.mapFor(n); m != nil {
		var raw any
		raw, err = m.FromWire(response)
		if err != nil {
			return zero, err
		}
		var ok bool
		if value, ok = raw.(T); !ok {
			return zero, gmerrors.NewResponseParseError(nil,
				fmt.Sprintf("map for %q yields %T, property holds %T", p.Name, raw, zero))
		}
	} else {
		value, err = parseResponse[T](response)
	}
	if err != nil {
		return zero, err
	}
	if p.CheckGet {
		if err := n.CheckGetErrors(); err != nil {
			return zero, err
		}
	}
	return value, nil
}

// Set validates the candidate against the (possibly overridden) domain,
// maps it to its wire form, renders the write command and transmits it.
// Nothing is sent when validation fails.
func (p Property[T]) Set(n Node, value T) error {
	if p.Command == "" {
		return gmerrors.ErrNotWritable(p.Name)
	}
	values, err := p.valuesFor(n)
	if err != nil {
		return err
	}
	if p.Validator != nil {
		value, err = p.Validator(value, values)
		if err != nil {
			return err
		}
	}
	var wire any = value
	if m := p.mapFor(n); m != nil {
		wire, err = m.ToWire(value)
		if err != nil {
			return err
		}
	}
	command, err := FormatWrite(p.Command, wire)
	if err != nil {
		return err
	}
	if err := n.Write(command); err != nil {
		return err
	}
	if p.CheckSet {
		return n.CheckSetErrors()
	}
	return nil
}

func (p Property[T]) valuesFor(n Node) ([]T, error) {
	if p.Dynamic {
		if ov, ok := n.propertyValues(p.Name); ok {
			values, ok := ov.([]T)
			if !ok {
				return nil, gmerrors.NewPropertyError(nil,
					fmt.Sprintf("values override for %q has type %T", p.Name, ov))
			}
			return values, nil
		}
	}
	return p.Values, nil
}

func (p Property[T]) mapFor(n Node) validate.Mapper {
	if p.Dynamic {
		if om, ok := n.propertyMap(p.Name); ok {
			if m, ok := om.(validate.Mapper); ok {
				return m
			}
		}
	}
	return p.Map
}

func parseResponse[T any](response string) (T, error) {
	var zero T
	var parsed any
	var err error
	switch any(zero).(type) {
	case float64:
		parsed, err = strconv.ParseFloat(response, 64)
	case int:
		// Instruments answer integer queries in exponent notation too.
		var f float64
		f, err = strconv.ParseFloat(response, 64)
		parsed = int(f)
	case bool:
		parsed, err = parseBool(response)
	case string:
		parsed = response
	case []float64:
		parsed, err = parseFloatList(response)
	case []string:
		fields := strings.Split(response, ",")
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		parsed = fields
	default:
		err = fmt.Errorf("unsupported property type %T", zero)
	}
	if err != nil {
		return zero, gmerrors.NewResponseParseError(err, fmt.Sprintf("response %q", response))
	}
	return parsed.(T), nil
}

func parseBool(response string) (bool, error) {
	switch strings.ToUpper(response) {
	case "1", "ON", "TRUE":
		return true, nil
	case "0", "OFF", "FALSE":
		return false, nil
	}
	return false, fmt.Errorf("not a boolean token: %q", response)
}

func parseFloatList(response string) ([]float64, error) {
	fields := strings.Split(response, ",")
	values := make([]float64, len(fields))
	for i, field := range fields {
		f, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, err
		}
		values[i] = f
	}
	return values, nil
}
