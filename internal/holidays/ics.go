package holidays

import (
	"os"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"
)

// ICSSource reads holiday dates from an iCalendar file. Every VEVENT
// contributes its start date; events without a parseable DTSTART are
// skipped with a warning.
type ICSSource struct {
	filePath string
	logger   *zap.Logger
}

// NewICSSource creates a new ICSSource
func NewICSSource(filePath string, logger *zap.Logger) *ICSSource {
	return &ICSSource{
		filePath: filePath,
		logger:   logger,
	}
}

// Holidays parses the ICS file and returns the event start dates
func (s *ICSSource) Holidays() (Set, error) {
	file, err := os.Open(s.filePath)
	if err != nil {
		return nil, &ParseError{Source: s.filePath, Err: err}
	}
	defer file.Close()

	cal, err := ics.ParseCalendar(file)
	if err != nil {
		return nil, &ParseError{Source: s.filePath, Err: err}
	}

	holidays := make(Set)
	skipped := 0

	for _, event := range cal.Events() {
		// All-day events are the common case for holiday feeds
		start, err := event.GetAllDayStartAt()
		if err != nil {
			start, err = event.GetStartAt()
		}
		if err != nil {
			s.logger.Warn("Skipping event without usable start date",
				zap.String("file", s.filePath),
				zap.String("uid", event.Id()),
				zap.Error(err))
			skipped++
			continue
		}

		holidays.Add(start)
	}

	s.logger.Info("ICS holidays loaded",
		zap.String("file", s.filePath),
		zap.Int("dates", len(holidays)),
		zap.Int("skipped", skipped))

	return holidays, nil
}
