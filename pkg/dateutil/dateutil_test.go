package dateutil

import (
	"testing"
	"time"
)

func TestDateOnly(t *testing.T) {
	input := time.Date(2025, 1, 15, 14, 30, 45, 123456789, time.Local)
	expected := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	result := DateOnly(input)

	if !result.Equal(expected) {
		t.Errorf("DateOnly(%v) = %v, want %v", input, result, expected)
	}
}

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{2024, true},
		{2025, false},
		{2000, true},
		{1900, false},
		{2100, false},
		{2400, true},
	}

	for _, tt := range tests {
		if got := IsLeapYear(tt.year); got != tt.want {
			t.Errorf("IsLeapYear(%d) = %v, want %v", tt.year, got, tt.want)
		}
	}
}

func TestDaysInYear(t *testing.T) {
	if got := DaysInYear(2024); got != 366 {
		t.Errorf("DaysInYear(2024) = %d, want 366", got)
	}
	if got := DaysInYear(2025); got != 365 {
		t.Errorf("DaysInYear(2025) = %d, want 365", got)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			"ISO format YYYY-MM-DD",
			"2025-01-15",
			Date(2025, 1, 15),
			false,
		},
		{
			"dotted format DD.MM.YYYY",
			"15.01.2025",
			Date(2025, 1, 15),
			false,
		},
		{
			"ISO with time truncates to date",
			"2025-01-15T10:30:00",
			Date(2025, 1, 15),
			false,
		},
		{
			"garbage input",
			"not-a-date",
			time.Time{},
			true,
		},
		{
			"empty string",
			"",
			time.Time{},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseDate(tt.input)

			if (err != nil) != tt.wantErr {
				t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}

			if !tt.wantErr && !result.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, result, tt.want)
			}
		})
	}
}

func TestWeekdayFromMondayIndex(t *testing.T) {
	tests := []struct {
		name    string
		idx     int
		want    time.Weekday
		wantErr bool
	}{
		{"0 is Monday", 0, time.Monday, false},
		{"4 is Friday", 4, time.Friday, false},
		{"5 is Saturday", 5, time.Saturday, false},
		{"6 is Sunday", 6, time.Sunday, false},
		{"negative is invalid", -1, 0, true},
		{"7 is invalid", 7, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := WeekdayFromMondayIndex(tt.idx)

			if (err != nil) != tt.wantErr {
				t.Errorf("WeekdayFromMondayIndex(%d) error = %v, wantErr %v", tt.idx, err, tt.wantErr)
				return
			}

			if !tt.wantErr && got != tt.want {
				t.Errorf("WeekdayFromMondayIndex(%d) = %v, want %v", tt.idx, got, tt.want)
			}
		})
	}
}

func TestMondayIndexRoundTrip(t *testing.T) {
	for idx := 0; idx <= 6; idx++ {
		day, err := WeekdayFromMondayIndex(idx)
		if err != nil {
			t.Fatalf("WeekdayFromMondayIndex(%d) error = %v", idx, err)
		}
		if got := MondayIndex(day); got != idx {
			t.Errorf("MondayIndex(%v) = %d, want %d", day, got, idx)
		}
	}
}

func TestParseWeekdays(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []time.Weekday
		wantErr bool
	}{
		{
			"default working week",
			"0,1,2,3,4",
			[]time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
			false,
		},
		{
			"with spaces",
			"0, 1, 2",
			[]time.Weekday{time.Monday, time.Tuesday, time.Wednesday},
			false,
		},
		{
			"six day week",
			"0,1,2,3,4,5",
			[]time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday},
			false,
		},
		{
			"non-numeric entry",
			"0,mon,2",
			nil,
			true,
		},
		{
			"out of range entry",
			"0,9",
			nil,
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWeekdays(tt.input)

			if (err != nil) != tt.wantErr {
				t.Errorf("ParseWeekdays(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}

			if len(got) != len(tt.want) {
				t.Fatalf("ParseWeekdays(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ParseWeekdays(%q)[%d] = %v, want %v", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}
