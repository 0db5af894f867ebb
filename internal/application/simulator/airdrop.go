package simulator

import "github.com/alejandrodnm/airdropsim/internal/domain"

// CohortSource exposes the node cohorts created per day.
type CohortSource interface {
	Created(day int) float64
}

// AirdropDay is the reward accrued on one day.
type AirdropDay struct {
	Today      float64
	Cumulative float64
}

// AirdropEngine sums the rewards of every cohort still inside its reward window.
//
// Only the last domain.RewardWindowDays activated cohorts can pay, so a day
// scans at most that many cohorts, oldest first. Visiting them in ascending
// creation order keeps the float sum identical to a full history scan.
type AirdropEngine struct {
	delay      int
	cumulative float64
}

// NewAirdropEngine creates an engine for validated settings.
func NewAirdropEngine(s domain.Settings) *AirdropEngine {
	return &AirdropEngine{delay: s.NodeActivationDelay}
}

// Accrue computes the airdrop total of the given day and adds it to the running total.
// Cohorts created on day p pay rate(day - (p+delay) + 1) while that active day is in 1..50.
func (e *AirdropEngine) Accrue(day int, cohorts CohortSource) AirdropDay {
	newest := day - e.delay
	oldest := max(1, newest-domain.RewardWindowDays+1)

	today := 0.0
	for p := oldest; p <= newest; p++ {
		n := cohorts.Created(p)
		if n == 0 {
			continue
		}
		activeDay := day - (p + e.delay) + 1
		today += domain.RateForActiveDay(activeDay) * n
	}

	e.cumulative += today
	return AirdropDay{Today: today, Cumulative: e.cumulative}
}
