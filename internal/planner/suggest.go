package planner

import "time"

// Suggestion is a working day whose conversion to leave would, on its
// own, produce an off-day block meeting the threshold.
type Suggestion struct {
	LeaveDay time.Time
	Block    OffBlock
}

// Suggest evaluates every working day of the year in date order and
// reports those whose simulated conversion to Off yields a containing
// block of at least threshold days. Each simulation is independent;
// overrides never compound, so every suggestion assumes exactly one
// leave day is taken in isolation.
func Suggest(c *YearCalendar, threshold int) ([]Suggestion, error) {
	if threshold < 1 {
		return nil, &ConfigError{Reason: "threshold must be at least 1"}
	}

	var suggestions []Suggestion

	for i, day := range c.Days {
		if day.Status != StatusWorking {
			continue
		}
		// A working day can only bridge or extend a run if a neighboring
		// day is already off.
		if !c.adjacentOff(i) {
			continue
		}

		block := c.blockAround(i)
		if block.Length >= threshold {
			suggestions = append(suggestions, Suggestion{
				LeaveDay: day.Date,
				Block:    block,
			})
		}
	}

	return suggestions, nil
}

func (c *YearCalendar) adjacentOff(idx int) bool {
	if idx > 0 && c.Days[idx-1].Status == StatusOff {
		return true
	}
	if idx < len(c.Days)-1 && c.Days[idx+1].Status == StatusOff {
		return true
	}
	return false
}
