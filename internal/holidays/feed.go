package holidays

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/AshCoder05/Holiday-Planner-Tool/pkg/dateutil"
)

const defaultHTTPTimeout = 10 * time.Second

// feedHoliday is one entry of a nager.date-style public holiday feed
type feedHoliday struct {
	Date      string `json:"date"`
	LocalName string `json:"localName"`
	Name      string `json:"name"`
}

// FeedSource fetches a year's public holidays from a JSON feed.
// The URL may contain a {year} placeholder, e.g.
// https://date.nager.at/api/v3/PublicHolidays/{year}/DE
type FeedSource struct {
	url        string
	year       int
	httpClient *http.Client
	logger     *zap.Logger

	cacheMu sync.RWMutex
	cache   map[int]Set // year → fetched set
}

// NewFeedSource creates a new FeedSource
func NewFeedSource(url string, year int, logger *zap.Logger) *FeedSource {
	return &FeedSource{
		url:  url,
		year: year,
		httpClient: &http.Client{
			Timeout: defaultHTTPTimeout,
		},
		logger: logger,
		cache:  make(map[int]Set),
	}
}

// Holidays fetches the feed, serving repeat calls from the year cache
func (s *FeedSource) Holidays() (Set, error) {
	s.cacheMu.RLock()
	if cached, ok := s.cache[s.year]; ok {
		s.cacheMu.RUnlock()
		s.logger.Debug("Using cached feed data", zap.Int("year", s.year))
		return cached, nil
	}
	s.cacheMu.RUnlock()

	holidays, err := s.fetchYear(s.year)
	if err != nil {
		return nil, err
	}

	s.cacheMu.Lock()
	s.cache[s.year] = holidays
	s.cacheMu.Unlock()

	return holidays, nil
}

func (s *FeedSource) fetchYear(year int) (Set, error) {
	url := strings.ReplaceAll(s.url, "{year}", strconv.Itoa(year))

	s.logger.Info("Fetching holiday feed",
		zap.String("url", url),
		zap.Int("year", year))

	resp, err := s.httpClient.Get(url)
	if err != nil {
		return nil, &ParseError{Source: url, Err: fmt.Errorf("failed to fetch feed: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &ParseError{Source: url, Err: fmt.Errorf("feed returned status %d", resp.StatusCode)}
	}

	var entries []feedHoliday
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, &ParseError{Source: url, Err: fmt.Errorf("failed to decode feed JSON: %w", err)}
	}

	holidays := make(Set)
	skipped := 0

	for _, entry := range entries {
		date, err := dateutil.ParseDate(entry.Date)
		if err != nil {
			s.logger.Warn("Skipping feed entry with invalid date",
				zap.String("date", entry.Date),
				zap.String("name", entry.Name))
			skipped++
			continue
		}
		holidays.Add(date)
	}

	s.logger.Info("Holiday feed loaded",
		zap.Int("year", year),
		zap.Int("dates", len(holidays)),
		zap.Int("skipped", skipped))

	return holidays, nil
}
