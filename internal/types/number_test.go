package types

import (
	"encoding/json"
	"testing"
)

func TestNumber_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  float64
		wantValid bool
	}{
		{name: "plain number", input: `42`, expected: 42, wantValid: true},
		{name: "negative decimal", input: `-3.75`, expected: -3.75, wantValid: true},
		{name: "exponent", input: `2.5e2`, expected: 250, wantValid: true},
		{name: "null", input: `null`},
		{name: "quoted number", input: `"8.5"`, expected: 8.5, wantValid: true},
		{name: "quoted with unit", input: `"12 mph"`, expected: 12, wantValid: true},
		{name: "dangling exponent", input: `"1e"`, expected: 1, wantValid: true},
		{name: "range reads its lower bound", input: `"10-20"`, expected: 10, wantValid: true},
		{name: "quoted text", input: `"abc"`},
		{name: "lone sign", input: `"-"`},
		{name: "empty string", input: `""`},
		{name: "array", input: `[1]`},
		{name: "boolean", input: `true`},
		{name: "out of range", input: `1e400`},
		{name: "wrapped value", input: `{"unitCode": "wmoUnit:percent", "value": 30}`, expected: 30, wantValid: true},
		{name: "wrapped quoted value", input: `{"value": "7 mm"}`, expected: 7, wantValid: true},
		{name: "wrapped null", input: `{"value": null}`},
		{name: "object without value", input: `{"unitCode": "wmoUnit:percent"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewNumber(-1)
			if err := json.Unmarshal([]byte(tt.input), &n); err != nil {
				t.Fatalf("Unmarshal(%s) returned error: %v", tt.input, err)
			}

			got, ok := n.Float()
			if ok != tt.wantValid {
				t.Fatalf("Unmarshal(%s) valid = %v, want %v", tt.input, ok, tt.wantValid)
			}
			if ok && got != tt.expected {
				t.Errorf("Unmarshal(%s) = %v, want %v", tt.input, got, tt.expected)
			}
			if !ok && n.Ptr() != nil {
				t.Errorf("Ptr() of invalid number = %v, want nil", *n.Ptr())
			}
		})
	}
}

func TestNumber_InStruct(t *testing.T) {
	var period struct {
		Temperature Number `json:"temperature"`
		Humidity    Number `json:"relativeHumidity"`
		Gust        Number `json:"windGust"`
	}

	data := `{"temperature": "41", "relativeHumidity": {"value": 68}, "windGust": "gusty"}`
	if err := json.Unmarshal([]byte(data), &period); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}

	if v := period.Temperature.Ptr(); v == nil || *v != 41 {
		t.Errorf("temperature = %v, want 41", v)
	}
	if v := period.Humidity.Ptr(); v == nil || *v != 68 {
		t.Errorf("relativeHumidity = %v, want 68", v)
	}
	if period.Gust.Valid {
		t.Errorf("windGust = %v, want invalid", period.Gust.Value)
	}
}

func TestNumber_MarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		n        Number
		expected string
	}{
		{name: "valid", n: NewNumber(0.15), expected: `0.15`},
		{name: "zero is still a value", n: NewNumber(0), expected: `0`},
		{name: "invalid", n: Number{}, expected: `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.n)
			if err != nil {
				t.Fatalf("Marshal returned error: %v", err)
			}
			if string(got) != tt.expected {
				t.Errorf("Marshal = %s, want %s", got, tt.expected)
			}
		})
	}
}
