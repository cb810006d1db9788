package holidays

import (
	"fmt"
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/de"
	"github.com/rickar/cal/v2/gb"
	"github.com/rickar/cal/v2/us"
	"go.uber.org/zap"

	"github.com/AshCoder05/Holiday-Planner-Tool/pkg/dateutil"
)

// regionHolidays maps supported region codes to their holiday definitions
var regionHolidays = map[string][]*cal.Holiday{
	"us": us.Holidays,
	"gb": gb.Holidays,
	"de": de.Holidays,
}

// RegionSource produces the public holidays of a built-in region for a
// single year, for users who have no ICS or CSV file at hand.
type RegionSource struct {
	region   string
	year     int
	calendar *cal.BusinessCalendar
	logger   *zap.Logger
}

// NewRegionSource creates a RegionSource for the given region code.
// Supported regions: us, gb, de.
func NewRegionSource(region string, year int, logger *zap.Logger) (*RegionSource, error) {
	defs, ok := regionHolidays[region]
	if !ok {
		return nil, fmt.Errorf("unsupported region: %q", region)
	}

	calendar := cal.NewBusinessCalendar()
	calendar.AddHoliday(defs...)

	return &RegionSource{
		region:   region,
		year:     year,
		calendar: calendar,
		logger:   logger,
	}, nil
}

// Holidays returns every date of the year that is an actual or observed
// public holiday in the region. Observed dates are included because the
// day off is granted on the observed date, not the nominal one.
func (s *RegionSource) Holidays() (Set, error) {
	holidays := make(Set)

	for d := dateutil.Date(s.year, time.January, 1); d.Year() == s.year; d = d.AddDate(0, 0, 1) {
		actual, observed, _ := s.calendar.IsHoliday(d)
		if actual || observed {
			holidays.Add(d)
		}
	}

	s.logger.Info("Region holidays generated",
		zap.String("region", s.region),
		zap.Int("year", s.year),
		zap.Int("dates", len(holidays)))

	return holidays, nil
}
