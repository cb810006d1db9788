package planner

import "time"

// OffBlock is a maximal run of consecutive Off days
type OffBlock struct {
	Start  time.Time
	End    time.Time
	Length int
}

// Contains reports whether the date falls inside the block
func (b OffBlock) Contains(date time.Time) bool {
	return !date.Before(b.Start) && !date.After(b.End)
}

// Scan extracts the maximal contiguous Off runs from the calendar in a
// single pass. Runs touching Jan 1 or Dec 31 are reported as-is; no
// cross-year extension is attempted.
func Scan(c *YearCalendar) []OffBlock {
	var blocks []OffBlock
	start := -1

	for i, day := range c.Days {
		if day.Status == StatusOff {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			blocks = append(blocks, OffBlock{
				Start:  c.Days[start].Date,
				End:    c.Days[i-1].Date,
				Length: i - start,
			})
			start = -1
		}
	}

	if start >= 0 {
		last := len(c.Days) - 1
		blocks = append(blocks, OffBlock{
			Start:  c.Days[start].Date,
			End:    c.Days[last].Date,
			Length: last - start + 1,
		})
	}

	return blocks
}

// blockAround computes the maximal Off run that would contain Days[idx]
// if that day were Off, by walking left and right from idx. The base
// classification is read only, never mutated, so this doubles as the
// one-day leave simulation.
func (c *YearCalendar) blockAround(idx int) OffBlock {
	lo := idx
	for lo > 0 && c.Days[lo-1].Status == StatusOff {
		lo--
	}

	hi := idx
	for hi < len(c.Days)-1 && c.Days[hi+1].Status == StatusOff {
		hi++
	}

	return OffBlock{
		Start:  c.Days[lo].Date,
		End:    c.Days[hi].Date,
		Length: hi - lo + 1,
	}
}
