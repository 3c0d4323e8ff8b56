package punch

import (
	"fmt"
	"time"
)

// TimeOfDay is a clock position expressed as seconds since midnight. Only
// the clock position of a punch matters for classification; the date
// component is discarded.
type TimeOfDay int

// ParseTimeOfDay parses a "15:04:05" clock string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04:05", s)
	if err != nil {
		return 0, fmt.Errorf("parse time of day %q: %w", s, err)
	}
	return TimeOfDay(t.Hour()*3600 + t.Minute()*60 + t.Second()), nil
}

func timeOfDay(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*3600 + t.Minute()*60 + t.Second())
}

// Checkpoint is one expected clock event with its tolerance window.
type Checkpoint struct {
	Label     Status
	At        TimeOfDay
	Tolerance time.Duration
}

// contains reports whether tod falls within the checkpoint window,
// inclusive on both ends.
func (c Checkpoint) contains(tod TimeOfDay) bool {
	tol := TimeOfDay(c.Tolerance / time.Second)
	return tod >= c.At-tol && tod <= c.At+tol
}

// Schedule is the ordered list of checkpoints a punch is tested against.
// Order is significant: the first window containing the punch time wins.
type Schedule struct {
	Checkpoints []Checkpoint
}

// Classify assigns a status to a timestamp. The zero time maps to
// Incompleto; a clock position inside no window maps to Irregular.
func (s Schedule) Classify(t time.Time) Status {
	if t.IsZero() {
		return StatusIncomplete
	}
	tod := timeOfDay(t)
	for _, cp := range s.Checkpoints {
		if cp.contains(tod) {
			return cp.Label
		}
	}
	return StatusIrregular
}

// ClassifyAll returns a copy of punches with Status derived from Timestamp.
func (s Schedule) ClassifyAll(punches []Punch) []Punch {
	out := make([]Punch, len(punches))
	for i, p := range punches {
		p.Status = s.Classify(p.Timestamp)
		out[i] = p
	}
	return out
}
