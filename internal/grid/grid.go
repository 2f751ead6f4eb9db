// Package grid reads NWS gridpoint variables and answers "which value applies
// at time T" questions against their irregular validTime intervals.
package grid

import (
	"bytes"
	"encoding/json"
	"fmt"

	"noaa-forecast/internal/types"
)

// Gridpoint variable names used by the forecast
const (
	VarMaxTemperature            = "maxTemperature"
	VarMinTemperature            = "minTemperature"
	VarIceAccumulation           = "iceAccumulation"
	VarQuantitativePrecipitation = "quantitativePrecipitation"
	VarWindGust                  = "windGust"
	VarRelativeHumidity          = "relativeHumidity"
)

// Sample is one entry of a variable's values list
type Sample struct {
	ValidTime string       `json:"validTime"`
	Value     types.Number `json:"value"`
}

// Variable is a named quantity with a unit tag and irregular samples. Samples
// are neither assumed sorted nor contiguous.
type Variable struct {
	UOM    string   `json:"uom"`
	Values []Sample `json:"values"`
}

// Grid maps variable names to their series
type Grid map[string]*Variable

// Parse decodes the properties object of a gridpoints document. Keys that do
// not hold a values list (updateTime, elevation, weather strings...) are
// ignored, and samples that cannot be decoded are dropped individually.
func Parse(properties []byte) (Grid, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(properties, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode grid properties: %w", err)
	}

	g := make(Grid, len(raw))
	for name, msg := range raw {
		msg = bytes.TrimSpace(msg)
		if len(msg) == 0 || msg[0] != '{' {
			continue
		}

		var v struct {
			UOM    string            `json:"uom"`
			Values []json.RawMessage `json:"values"`
		}
		if err := json.Unmarshal(msg, &v); err != nil || v.Values == nil {
			continue
		}

		variable := &Variable{UOM: v.UOM, Values: make([]Sample, 0, len(v.Values))}
		for _, rawSample := range v.Values {
			var s Sample
			if err := json.Unmarshal(rawSample, &s); err != nil {
				continue
			}
			variable.Values = append(variable.Values, s)
		}
		g[name] = variable
	}

	return g, nil
}

// Variable returns the named variable, or nil
func (g Grid) Variable(name string) *Variable {
	if g == nil {
		return nil
	}
	return g[name]
}

// UOM returns the unit tag of the named variable, or "" when it is absent
func (g Grid) UOM(name string) string {
	if v := g.Variable(name); v != nil {
		return v.UOM
	}
	return ""
}

// Index builds a lookup index for the named variable. A missing variable
// yields a nil *Index, which answers every query with "not found".
func (g Grid) Index(name string) *Index {
	v := g.Variable(name)
	if v == nil {
		return nil
	}
	return NewIndex(v)
}
