package planner

import (
	"time"

	"go.uber.org/zap"

	"github.com/AshCoder05/Holiday-Planner-Tool/internal/holidays"
	"github.com/AshCoder05/Holiday-Planner-Tool/pkg/dateutil"
)

// DayStatus classifies a calendar date
type DayStatus int

const (
	StatusWorking DayStatus = iota + 1
	StatusOff
)

func (s DayStatus) String() string {
	switch s {
	case StatusWorking:
		return "working"
	case StatusOff:
		return "off"
	default:
		return "unknown"
	}
}

// Day is one classified date of the year. The classification never
// changes after the calendar is built; leave simulation uses transient
// overrides instead of mutating it.
type Day struct {
	Date   time.Time
	Status DayStatus
}

// WorkingDays is the set of weekdays the user normally works
type WorkingDays map[time.Weekday]struct{}

// NewWorkingDays creates a WorkingDays set from a weekday list
func NewWorkingDays(days []time.Weekday) WorkingDays {
	w := make(WorkingDays, len(days))
	for _, d := range days {
		w[d] = struct{}{}
	}
	return w
}

// Contains reports whether the weekday is a working day
func (w WorkingDays) Contains(d time.Weekday) bool {
	_, ok := w[d]
	return ok
}

// YearCalendar holds the full classification of one year, ordered by
// date: Days[0] is Jan 1, the last entry is Dec 31.
type YearCalendar struct {
	Year int
	Days []Day
}

// ConfigError reports a configuration under which planning would be
// meaningless. It is never recovered from.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "invalid planner configuration: " + e.Reason
}

// BuildYear classifies every date of the year. A date is Off when its
// weekday is outside the working set or it is a declared holiday;
// otherwise it is Working. Holidays outside the target year are ignored
// with a warning.
func BuildYear(year int, working WorkingDays, holidaySet holidays.Set, logger *zap.Logger) (*YearCalendar, error) {
	if year <= 0 {
		return nil, &ConfigError{Reason: "year must be positive"}
	}
	if len(working) == 0 {
		return nil, &ConfigError{Reason: "working day set is empty"}
	}

	outOfYear := 0
	for date := range holidaySet {
		if date.Year() != year {
			outOfYear++
		}
	}
	if outOfYear > 0 {
		logger.Warn("Ignoring holidays outside the target year",
			zap.Int("year", year),
			zap.Int("ignored", outOfYear))
	}

	calendar := &YearCalendar{
		Year: year,
		Days: make([]Day, 0, dateutil.DaysInYear(year)),
	}

	for d := dateutil.Date(year, time.January, 1); d.Year() == year; d = d.AddDate(0, 0, 1) {
		status := StatusWorking
		if !working.Contains(d.Weekday()) || holidaySet.Contains(d) {
			status = StatusOff
		}
		calendar.Days = append(calendar.Days, Day{Date: d, Status: status})
	}

	return calendar, nil
}

// OffCount returns the number of Off days in the year
func (c *YearCalendar) OffCount() int {
	count := 0
	for _, day := range c.Days {
		if day.Status == StatusOff {
			count++
		}
	}
	return count
}

// ScheduledWorkdays returns how many dates of the year fall on a
// working weekday, before holidays are taken into account. This is the
// denominator for the attendance impact of a single leave day.
func ScheduledWorkdays(year int, working WorkingDays) int {
	count := 0
	for d := dateutil.Date(year, time.January, 1); d.Year() == year; d = d.AddDate(0, 0, 1) {
		if working.Contains(d.Weekday()) {
			count++
		}
	}
	return count
}
