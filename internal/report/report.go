// Package report renders planner results for humans and machines. The
// core emits suggestions; everything about their presentation lives
// here.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/AshCoder05/Holiday-Planner-Tool/internal/planner"
)

const dateFormat = "2006-01-02"

// Renderer writes human-readable planner output
type Renderer struct {
	w io.Writer
}

// NewRenderer creates a Renderer writing to w
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// Suggestions prints the leave suggestions as a bullet list. impactPct
// is the attendance reduction of a single leave day in percent; pass 0
// to omit the impact line.
func (r *Renderer) Suggestions(suggestions []planner.Suggestion, impactPct float64) {
	fmt.Fprintf(r.w, "\nLong Holiday Suggestions:\n")

	if len(suggestions) == 0 {
		fmt.Fprintln(r.w, "No potential long holiday suggestions found for the given parameters.")
		return
	}

	for _, s := range suggestions {
		fmt.Fprintf(r.w, "• Take leave on %s %s to extend your break from %s to %s (Total %d days off).\n",
			shortWeekday(s.LeaveDay),
			s.LeaveDay.Format(dateFormat),
			s.Block.Start.Format(dateFormat),
			s.Block.End.Format(dateFormat),
			s.Block.Length)
		if impactPct > 0 {
			fmt.Fprintf(r.w, "  (This will reduce your attendance by approximately %.2f%%.)\n", impactPct)
		}
	}
}

// Blocks prints the baseline off-day blocks of the year
func (r *Renderer) Blocks(cal *planner.YearCalendar, blocks []planner.OffBlock) {
	fmt.Fprintf(r.w, "\nOff-day blocks for %d:\n", cal.Year)

	for _, b := range blocks {
		fmt.Fprintf(r.w, "  %s %s .. %s %s  (%d days)\n",
			shortWeekday(b.Start), b.Start.Format(dateFormat),
			shortWeekday(b.End), b.End.Format(dateFormat),
			b.Length)
	}

	fmt.Fprintf(r.w, "\nTotal: %d blocks, %d off days of %d.\n",
		len(blocks), cal.OffCount(), len(cal.Days))
}

func shortWeekday(t time.Time) string {
	return t.Format("Mon")
}

// Plan is the machine-readable form of a planning run
type Plan struct {
	Year        int              `json:"year"`
	Threshold   int              `json:"threshold"`
	GeneratedAt string           `json:"generated_at"`
	Suggestions []PlanSuggestion `json:"suggestions"`
}

// PlanSuggestion is one suggestion in the JSON export
type PlanSuggestion struct {
	LeaveDay    string `json:"leave_day"`
	Weekday     string `json:"weekday"`
	BlockStart  string `json:"block_start"`
	BlockEnd    string `json:"block_end"`
	BlockLength int    `json:"block_length"`
}

// NewPlan converts suggestions into their export form
func NewPlan(year, threshold int, suggestions []planner.Suggestion) *Plan {
	plan := &Plan{
		Year:        year,
		Threshold:   threshold,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Suggestions: make([]PlanSuggestion, 0, len(suggestions)),
	}

	for _, s := range suggestions {
		plan.Suggestions = append(plan.Suggestions, PlanSuggestion{
			LeaveDay:    s.LeaveDay.Format(dateFormat),
			Weekday:     s.LeaveDay.Weekday().String(),
			BlockStart:  s.Block.Start.Format(dateFormat),
			BlockEnd:    s.Block.End.Format(dateFormat),
			BlockLength: s.Block.Length,
		})
	}

	return plan
}

// WriteJSON writes the plan as indented JSON
func (p *Plan) WriteJSON(w io.Writer) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal plan: %w", err)
	}

	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write plan: %w", err)
	}
	return nil
}

// Save writes the plan to a file
func (p *Plan) Save(path string) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal plan: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write plan file: %w", err)
	}
	return nil
}
