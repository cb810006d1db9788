package holidays

import (
	"go.uber.org/zap"
)

// Multi combines several holiday sources into one set (union of dates).
// A failing source is skipped with a warning as long as at least one
// source succeeds; if every source fails, the last error is returned.
type Multi struct {
	sources []Source
	logger  *zap.Logger
}

// NewMulti creates a new Multi over the given sources
func NewMulti(logger *zap.Logger, sources ...Source) *Multi {
	return &Multi{
		sources: sources,
		logger:  logger,
	}
}

// Holidays returns the union of all source dates
func (m *Multi) Holidays() (Set, error) {
	combined := make(Set)
	succeeded := 0
	var lastErr error

	for _, source := range m.sources {
		holidays, err := source.Holidays()
		if err != nil {
			m.logger.Warn("Holiday source failed, continuing with remaining sources",
				zap.Error(err))
			lastErr = err
			continue
		}

		for date := range holidays {
			combined[date] = struct{}{}
		}
		succeeded++
	}

	if succeeded == 0 && lastErr != nil {
		return nil, lastErr
	}

	return combined, nil
}
