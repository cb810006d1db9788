package holidays

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"go.uber.org/zap"

	"github.com/AshCoder05/Holiday-Planner-Tool/pkg/dateutil"
)

// CSV parsing backends
const (
	CSVBackendStandard = "standard"
	CSVBackendStrict   = "strict"
)

// CSVSource reads holiday dates from a CSV file.
//
// The standard backend treats the first column of every row as a date
// and silently skips rows that do not parse (header rows included).
// The strict backend requires a header with a "date" column and fails
// on the first malformed record.
type CSVSource struct {
	filePath string
	backend  string
	logger   *zap.Logger
}

// csvHoliday is the row shape for the strict backend
type csvHoliday struct {
	Date string `csv:"date"`
	Name string `csv:"name"`
}

// NewCSVSource creates a new CSVSource
func NewCSVSource(filePath, backend string, logger *zap.Logger) *CSVSource {
	if backend == "" {
		backend = CSVBackendStandard
	}
	return &CSVSource{
		filePath: filePath,
		backend:  backend,
		logger:   logger,
	}
}

// Holidays parses the CSV file using the configured backend
func (s *CSVSource) Holidays() (Set, error) {
	switch s.backend {
	case CSVBackendStandard:
		return s.parseStandard()
	case CSVBackendStrict:
		return s.parseStrict()
	default:
		return nil, fmt.Errorf("unknown csv backend: %s", s.backend)
	}
}

func (s *CSVSource) parseStandard() (Set, error) {
	file, err := os.Open(s.filePath)
	if err != nil {
		return nil, &ParseError{Source: s.filePath, Err: err}
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	holidays := make(Set)
	skipped := 0

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			s.logger.Warn("Skipping unreadable CSV row",
				zap.String("file", s.filePath),
				zap.Error(err))
			skipped++
			continue
		}
		if len(record) == 0 {
			continue
		}

		date, err := dateutil.ParseDate(record[0])
		if err != nil {
			s.logger.Warn("Skipping CSV row with invalid date",
				zap.String("file", s.filePath),
				zap.String("value", record[0]))
			skipped++
			continue
		}

		holidays.Add(date)
	}

	s.logger.Info("CSV holidays loaded",
		zap.String("file", s.filePath),
		zap.String("backend", s.backend),
		zap.Int("dates", len(holidays)),
		zap.Int("skipped", skipped))

	return holidays, nil
}

func (s *CSVSource) parseStrict() (Set, error) {
	file, err := os.Open(s.filePath)
	if err != nil {
		return nil, &ParseError{Source: s.filePath, Err: err}
	}
	defer file.Close()

	var rows []csvHoliday
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, &ParseError{Source: s.filePath, Err: err}
	}

	holidays := make(Set)
	for i, row := range rows {
		date, err := dateutil.ParseDate(row.Date)
		if err != nil {
			return nil, &ParseError{
				Source: s.filePath,
				Err:    fmt.Errorf("row %d: %w", i+1, err),
			}
		}
		holidays.Add(date)
	}

	s.logger.Info("CSV holidays loaded",
		zap.String("file", s.filePath),
		zap.String("backend", s.backend),
		zap.Int("dates", len(holidays)))

	return holidays, nil
}
