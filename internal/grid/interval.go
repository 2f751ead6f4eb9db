package grid

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sosodev/duration"
)

var (
	ErrMalformedValidTime = errors.New("malformed validTime")
	ErrInvalidDuration    = errors.New("interval duration must be positive")
)

// Interval is the span a grid sample applies to. NWS encodes it as an ISO 8601
// interval, "2025-08-29T10:00:00-04:00/PT3H". The end may also be written as an
// instant ("start/end").
type Interval struct {
	Start    time.Time
	Duration time.Duration
}

// End is the first instant after the interval
func (i Interval) End() time.Time {
	return i.Start.Add(i.Duration)
}

// Contains reports whether t falls in [Start, End)
func (i Interval) Contains(t time.Time) bool {
	return !t.Before(i.Start) && t.Before(i.End())
}

// ParseInterval parses an ISO 8601 "start/duration" or "start/end" interval
func ParseInterval(validTime string) (Interval, error) {
	parts := strings.Split(strings.TrimSpace(validTime), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Interval{}, fmt.Errorf("%w: %q", ErrMalformedValidTime, validTime)
	}

	start, err := time.Parse(time.RFC3339, parts[0])
	if err != nil {
		return Interval{}, fmt.Errorf("%w: start %q: %v", ErrMalformedValidTime, parts[0], err)
	}

	var length time.Duration
	if strings.HasPrefix(strings.ToUpper(parts[1]), "P") {
		d, err := duration.Parse(strings.ToUpper(parts[1]))
		if err != nil {
			return Interval{}, fmt.Errorf("%w: duration %q: %v", ErrMalformedValidTime, parts[1], err)
		}
		length = d.ToTimeDuration()
	} else {
		end, err := time.Parse(time.RFC3339, parts[1])
		if err != nil {
			return Interval{}, fmt.Errorf("%w: end %q: %v", ErrMalformedValidTime, parts[1], err)
		}
		length = end.Sub(start)
	}

	if length <= 0 {
		return Interval{}, fmt.Errorf("%w: %q", ErrInvalidDuration, validTime)
	}

	return Interval{Start: start, Duration: length}, nil
}

// SameDay reports whether a and b share a calendar date in b's zone
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.In(b.Location()).Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
