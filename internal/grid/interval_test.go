package grid

import (
	"errors"
	"testing"
	"time"
)

func TestParseInterval(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantStart    time.Time
		wantDuration time.Duration
		wantErr      error
		wantAnyErr   bool
	}{
		{
			name:         "hours",
			input:        "2025-08-29T10:00:00-04:00/PT3H",
			wantStart:    time.Date(2025, 8, 29, 14, 0, 0, 0, time.UTC),
			wantDuration: 3 * time.Hour,
		},
		{
			name:         "one day",
			input:        "2025-08-29T00:00:00+00:00/P1D",
			wantStart:    time.Date(2025, 8, 29, 0, 0, 0, 0, time.UTC),
			wantDuration: 24 * time.Hour,
		},
		{
			name:         "days and hours",
			input:        "2025-08-29T06:00:00+00:00/P1DT6H",
			wantStart:    time.Date(2025, 8, 29, 6, 0, 0, 0, time.UTC),
			wantDuration: 30 * time.Hour,
		},
		{
			name:         "explicit end instant",
			input:        "2025-08-29T06:00:00+00:00/2025-08-29T08:30:00+00:00",
			wantStart:    time.Date(2025, 8, 29, 6, 0, 0, 0, time.UTC),
			wantDuration: 150 * time.Minute,
		},
		{
			name:    "missing duration",
			input:   "2025-08-29T06:00:00+00:00",
			wantErr: ErrMalformedValidTime,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: ErrMalformedValidTime,
		},
		{
			name:    "bad start",
			input:   "yesterday/PT1H",
			wantErr: ErrMalformedValidTime,
		},
		{
			name:       "bad duration",
			input:      "2025-08-29T06:00:00+00:00/PXQ",
			wantAnyErr: true,
		},
		{
			name:    "zero duration",
			input:   "2025-08-29T06:00:00+00:00/PT0H",
			wantErr: ErrInvalidDuration,
		},
		{
			name:    "end before start",
			input:   "2025-08-29T06:00:00+00:00/2025-08-29T05:00:00+00:00",
			wantErr: ErrInvalidDuration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInterval(tt.input)
			if tt.wantAnyErr {
				if err == nil {
					t.Fatalf("ParseInterval(%q) expected error, got %+v", tt.input, got)
				}
				return
			}
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseInterval(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseInterval(%q) unexpected error: %v", tt.input, err)
			}
			if !got.Start.Equal(tt.wantStart) {
				t.Errorf("Start = %v, want %v", got.Start, tt.wantStart)
			}
			if got.Duration != tt.wantDuration {
				t.Errorf("Duration = %v, want %v", got.Duration, tt.wantDuration)
			}
		})
	}
}

func TestInterval_ContainsIsHalfOpen(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	i := Interval{Start: start, Duration: time.Hour}

	if !i.Contains(start) {
		t.Error("interval does not contain its start")
	}
	if !i.Contains(start.Add(59 * time.Minute)) {
		t.Error("interval does not contain an inner instant")
	}
	if i.Contains(start.Add(time.Hour)) {
		t.Error("interval contains its end")
	}
	if i.Contains(start.Add(-time.Second)) {
		t.Error("interval contains an instant before its start")
	}
}

func TestSameDay(t *testing.T) {
	eastern := time.FixedZone("EST", -5*60*60)
	day := time.Date(2025, 1, 1, 6, 0, 0, 0, eastern)

	tests := []struct {
		name     string
		sample   time.Time
		expected bool
	}{
		{name: "same local day", sample: time.Date(2025, 1, 1, 23, 0, 0, 0, eastern), expected: true},
		{name: "utc next day is still local today", sample: time.Date(2025, 1, 2, 3, 0, 0, 0, time.UTC), expected: true},
		{name: "utc same day is local yesterday", sample: time.Date(2025, 1, 1, 2, 0, 0, 0, time.UTC), expected: false},
		{name: "next local day", sample: time.Date(2025, 1, 2, 0, 0, 0, 0, eastern), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameDay(tt.sample, day); got != tt.expected {
				t.Errorf("SameDay(%v, %v) = %v, want %v", tt.sample, day, got, tt.expected)
			}
		})
	}
}
