package simulator

import (
	"fmt"

	"github.com/alejandrodnm/airdropsim/internal/domain"
)

// History is the append-only, day-indexed sequence of results of one run.
// Only the simulator appends; consumers get values or copies.
type History struct {
	days []domain.DayResult
}

func newHistory(capacity int) *History {
	return &History{days: make([]domain.DayResult, 0, capacity)}
}

func (h *History) append(r domain.DayResult) {
	if r.Day != len(h.days)+1 {
		panic(fmt.Sprintf("simulator: appending day %d after day %d", r.Day, len(h.days)))
	}
	h.days = append(h.days, r)
}

// Len returns the number of days produced.
func (h *History) Len() int {
	return len(h.days)
}

// At returns the result of a 1-based day. Reading a day that has not been
// produced yet is a programming error and panics.
func (h *History) At(day int) domain.DayResult {
	if day < 1 || day > len(h.days) {
		panic(fmt.Sprintf("simulator: day %d not produced (have %d)", day, len(h.days)))
	}
	return h.days[day-1]
}

// Last returns the most recent day, if any.
func (h *History) Last() (domain.DayResult, bool) {
	if len(h.days) == 0 {
		return domain.DayResult{}, false
	}
	return h.days[len(h.days)-1], true
}

// All returns a copy of the full sequence ordered by day.
func (h *History) All() []domain.DayResult {
	out := make([]domain.DayResult, len(h.days))
	copy(out, h.days)
	return out
}
