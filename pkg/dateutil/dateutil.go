package dateutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date returns the UTC midnight time for the given calendar date
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DateOnly truncates a time to UTC midnight of the same calendar date.
// All dates handled by the planner are normalized through this, so they
// compare with == and work as map keys.
func DateOnly(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}

// IsSameDay returns true if two times fall on the same calendar date
func IsSameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// IsLeapYear reports whether the year has a Feb 29
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns 365 or 366
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// ParseDate parses a date string in the supported input formats
func ParseDate(dateStr string) (time.Time, error) {
	formats := []string{
		"2006-01-02",
		"02.01.2006",
		"2006/01/02",
		"2006-01-02T15:04:05",
		"2006-01-02T15:04:05Z",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return DateOnly(t), nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date format: %q", dateStr)
}

// WeekdayFromMondayIndex converts a Monday-based weekday index
// (0=Mon .. 6=Sun, the convention of the --working-days flag)
// to a time.Weekday.
func WeekdayFromMondayIndex(idx int) (time.Weekday, error) {
	if idx < 0 || idx > 6 {
		return 0, fmt.Errorf("weekday index out of range: %d", idx)
	}
	if idx == 6 {
		return time.Sunday, nil
	}
	return time.Weekday(idx + 1), nil
}

// MondayIndex converts a time.Weekday back to the 0=Mon .. 6=Sun index
func MondayIndex(w time.Weekday) int {
	if w == time.Sunday {
		return 6
	}
	return int(w) - 1
}

// ParseWeekdays parses a comma-separated list of Monday-based weekday
// indices, e.g. "0,1,2,3,4" for Mon-Fri.
func ParseWeekdays(s string) ([]time.Weekday, error) {
	var days []time.Weekday
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		idx, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid weekday index %q: %w", part, err)
		}
		day, err := WeekdayFromMondayIndex(idx)
		if err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	return days, nil
}
