package grid

import (
	"fmt"
	"testing"
	"time"

	"noaa-forecast/internal/types"
)

func sample(validTime string, value float64) Sample {
	return Sample{ValidTime: validTime, Value: types.NewNumber(value)}
}

func TestIndex_ValueAtContiguousSeries(t *testing.T) {
	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	durations := []int{1, 3, 2, 6, 12}

	v := &Variable{UOM: "wmoUnit:degC"}
	cursor := start
	for i, hours := range durations {
		v.Values = append(v.Values, sample(fmt.Sprintf("%s/PT%dH", cursor.Format(time.RFC3339), hours), float64(i)))
		cursor = cursor.Add(time.Duration(hours) * time.Hour)
	}
	end := cursor

	ix := NewIndex(v)

	// every minute-aligned instant inside the span resolves to its covering sample
	cursor = start
	for i, hours := range durations {
		sampleEnd := cursor.Add(time.Duration(hours) * time.Hour)
		for ts := cursor; ts.Before(sampleEnd); ts = ts.Add(30 * time.Minute) {
			got, ok := ix.ValueAt(ts)
			if !ok || got != float64(i) {
				t.Fatalf("ValueAt(%v) = %v, %v; want %v, true", ts, got, ok, i)
			}
		}
		cursor = sampleEnd
	}

	for _, ts := range []time.Time{start.Add(-time.Minute), end, end.Add(time.Hour)} {
		if got, ok := ix.ValueAt(ts); ok {
			t.Errorf("ValueAt(%v) = %v outside the covered span", ts, got)
		}
	}
}

func TestIndex_ValueAt(t *testing.T) {
	target := time.Date(2025, 8, 29, 11, 0, 0, 0, time.FixedZone("EDT", -4*60*60))

	tests := []struct {
		name      string
		values    []Sample
		expected  float64
		wantFound bool
	}{
		{
			name: "overlap resolves to the first sample in sequence",
			values: []Sample{
				sample("2025-08-29T10:00:00-04:00/PT3H", 7),
				sample("2025-08-29T11:00:00-04:00/PT1H", 9),
			},
			expected:  7,
			wantFound: true,
		},
		{
			name: "unsorted samples",
			values: []Sample{
				sample("2025-08-29T16:00:00-04:00/PT1H", 1),
				sample("2025-08-29T14:00:00+00:00/PT2H", 2),
			},
			expected:  2,
			wantFound: true,
		},
		{
			name: "malformed samples are skipped and the scan continues",
			values: []Sample{
				sample("garbage", 1),
				sample("2025-08-29T10:00:00-04:00/PT0H", 2),
				sample("2025-08-29T10:00:00-04:00", 3),
				{ValidTime: "2025-08-29T10:00:00-04:00/PT2H"},
				sample("2025-08-29T10:00:00-04:00/PT2H", 4),
			},
			expected:  4,
			wantFound: true,
		},
		{
			name: "gap",
			values: []Sample{
				sample("2025-08-29T08:00:00-04:00/PT3H", 1),
				sample("2025-08-29T12:00:00-04:00/PT3H", 2),
			},
			wantFound: false,
		},
		{
			name:      "no samples",
			values:    nil,
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ix := NewIndex(&Variable{Values: tt.values})
			got, ok := ix.ValueAt(target)
			if ok != tt.wantFound {
				t.Fatalf("ValueAt found = %v, want %v", ok, tt.wantFound)
			}
			if ok && got != tt.expected {
				t.Errorf("ValueAt = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIndex_Accumulate(t *testing.T) {
	day := time.Date(2025, 1, 15, 6, 0, 0, 0, time.FixedZone("EST", -5*60*60))

	tests := []struct {
		name      string
		values    []Sample
		expected  float64
		wantFound bool
	}{
		{
			name: "same calendar day sums",
			values: []Sample{
				sample("2025-01-15T01:00:00-05:00/PT6H", 1.0),
				sample("2025-01-15T13:00:00-05:00/PT6H", 2.5),
			},
			expected:  3.5,
			wantFound: true,
		},
		{
			name:      "empty list is not found rather than zero",
			values:    nil,
			wantFound: false,
		},
		{
			name: "confirmed zero is found",
			values: []Sample{
				sample("2025-01-15T01:00:00-05:00/PT6H", 0),
			},
			expected:  0,
			wantFound: true,
		},
		{
			name: "other days are ignored",
			values: []Sample{
				sample("2025-01-14T19:00:00-05:00/PT6H", 4),
				sample("2025-01-15T19:00:00-05:00/PT6H", 1.5),
				sample("2025-01-16T01:00:00-05:00/PT6H", 8),
			},
			expected:  1.5,
			wantFound: true,
		},
		{
			name: "calendar day follows the target's offset",
			values: []Sample{
				// 2025-01-16T03:00Z is 22:00 on the 15th in EST
				sample("2025-01-16T03:00:00+00:00/PT6H", 2),
				// 2025-01-15T03:00Z is 22:00 on the 14th in EST
				sample("2025-01-15T03:00:00+00:00/PT6H", 5),
			},
			expected:  2,
			wantFound: true,
		},
		{
			name: "no sample starts on the day",
			values: []Sample{
				sample("2025-01-17T01:00:00-05:00/PT6H", 1),
			},
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ix := NewIndex(&Variable{Values: tt.values})
			got, ok := ix.Accumulate(day)
			if ok != tt.wantFound {
				t.Fatalf("Accumulate found = %v, want %v", ok, tt.wantFound)
			}
			if ok && got != tt.expected {
				t.Errorf("Accumulate = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIndex_DayMax(t *testing.T) {
	day := time.Date(2025, 1, 15, 6, 0, 0, 0, time.UTC)
	ix := NewIndex(&Variable{Values: []Sample{
		sample("2025-01-15T00:00:00+00:00/PT1H", 18.5),
		sample("2025-01-15T01:00:00+00:00/PT1H", 37.04),
		sample("2025-01-15T02:00:00+00:00/PT1H", 24.1),
		sample("2025-01-16T00:00:00+00:00/PT1H", 90),
	}})

	got, ok := ix.Lookup(day, DayMax)
	if !ok || got != 37.04 {
		t.Errorf("Lookup(DayMax) = %v, %v; want 37.04, true", got, ok)
	}
}

func TestIndex_NilAndZeroTime(t *testing.T) {
	var ix *Index
	for _, mode := range []Mode{Point, DayTotal, DayMax} {
		if _, ok := ix.Lookup(time.Now(), mode); ok {
			t.Errorf("nil index found a value in %s mode", mode)
		}
	}

	populated := NewIndex(&Variable{Values: []Sample{sample("2025-01-15T00:00:00+00:00/PT1H", 1)}})
	if _, ok := populated.Lookup(time.Time{}, DayTotal); ok {
		t.Error("zero time found a value")
	}
	if _, ok := populated.Lookup(time.Now(), Mode(42)); ok {
		t.Error("unknown mode found a value")
	}
}
