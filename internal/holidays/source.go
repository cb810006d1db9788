package holidays

import (
	"fmt"
	"sort"
	"time"

	"github.com/AshCoder05/Holiday-Planner-Tool/pkg/dateutil"
)

// Set is a set of distinct calendar dates, keyed by UTC midnight.
type Set map[time.Time]struct{}

// NewSet creates a Set from the given dates
func NewSet(dates ...time.Time) Set {
	s := make(Set, len(dates))
	for _, d := range dates {
		s.Add(d)
	}
	return s
}

// Add inserts a date, normalizing it to UTC midnight
func (s Set) Add(t time.Time) {
	s[dateutil.DateOnly(t)] = struct{}{}
}

// Contains reports whether the set holds the given date
func (s Set) Contains(t time.Time) bool {
	_, ok := s[dateutil.DateOnly(t)]
	return ok
}

// Dates returns the dates in ascending order
func (s Set) Dates() []time.Time {
	dates := make([]time.Time, 0, len(s))
	for d := range s {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// Source supplies a set of public holiday dates. Sources may return
// dates outside the target year; filtering is the calendar builder's
// responsibility, not the source's.
type Source interface {
	Holidays() (Set, error)
}

// ParseError reports that a holiday source failed to produce a usable
// set of dates. Individual malformed records are skipped with a warning
// instead; ParseError is reserved for failures of the source as a whole.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse holiday source %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
