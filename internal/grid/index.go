package grid

import (
	"time"

	"gonum.org/v1/gonum/floats"
)

// Mode selects how Lookup resolves a timestamp against the samples
type Mode int

const (
	// Point returns the value of the first sample whose interval contains T.
	Point Mode = iota
	// DayTotal sums every sample that starts on T's calendar day.
	DayTotal
	// DayMax takes the largest sample that starts on T's calendar day.
	DayMax
)

func (m Mode) String() string {
	switch m {
	case Point:
		return "point"
	case DayTotal:
		return "day-total"
	case DayMax:
		return "day-max"
	default:
		return "unknown"
	}
}

type entry struct {
	interval Interval
	value    float64
}

// Index answers lookups over one variable. It is unit-agnostic; callers apply
// the variable's UOM to the raw result. An Index is immutable once built.
type Index struct {
	uom     string
	entries []entry
	skipped int
}

// NewIndex parses every sample of v, dropping those with a malformed
// validTime, a non-positive duration, or no numeric value. Sequence order is
// preserved because it breaks ties between overlapping intervals.
func NewIndex(v *Variable) *Index {
	ix := &Index{}
	if v == nil {
		return ix
	}

	ix.uom = v.UOM
	ix.entries = make([]entry, 0, len(v.Values))
	for _, s := range v.Values {
		value, ok := s.Value.Float()
		if !ok {
			ix.skipped++
			continue
		}
		interval, err := ParseInterval(s.ValidTime)
		if err != nil {
			ix.skipped++
			continue
		}
		ix.entries = append(ix.entries, entry{interval: interval, value: value})
	}
	return ix
}

// UOM is the unit tag of the indexed variable
func (ix *Index) UOM() string {
	if ix == nil {
		return ""
	}
	return ix.uom
}

// Len is the number of usable samples
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.entries)
}

// Skipped is the number of samples dropped as malformed
func (ix *Index) Skipped() int {
	if ix == nil {
		return 0
	}
	return ix.skipped
}

// Lookup resolves t in the given mode. The boolean is false when no sample
// applies, which is distinct from a resolved zero.
func (ix *Index) Lookup(t time.Time, mode Mode) (float64, bool) {
	if ix == nil || t.IsZero() {
		return 0, false
	}

	switch mode {
	case Point:
		for _, e := range ix.entries {
			if e.interval.Contains(t) {
				return e.value, true
			}
		}
		return 0, false
	case DayTotal, DayMax:
		values := ix.sameDay(t)
		if len(values) == 0 {
			return 0, false
		}
		if mode == DayMax {
			return floats.Max(values), true
		}
		return floats.Sum(values), true
	default:
		return 0, false
	}
}

// ValueAt is Lookup in Point mode
func (ix *Index) ValueAt(t time.Time) (float64, bool) {
	return ix.Lookup(t, Point)
}

// Accumulate is Lookup in DayTotal mode
func (ix *Index) Accumulate(day time.Time) (float64, bool) {
	return ix.Lookup(day, DayTotal)
}

func (ix *Index) sameDay(day time.Time) []float64 {
	var values []float64
	for _, e := range ix.entries {
		if SameDay(e.interval.Start, day) {
			values = append(values, e.value)
		}
	}
	return values
}
