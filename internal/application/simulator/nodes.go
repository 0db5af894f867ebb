package simulator

import (
	"fmt"
	"math"

	"github.com/alejandrodnm/airdropsim/internal/domain"
)

// NodeDay is the node lifecycle snapshot produced for one day.
// Counts are whole numbers held in float64: under compounding policies they
// leave the int64 range long before capital stops being finite.
type NodeDay struct {
	Pool           float64 // loss amount available for conversion today
	NewNodes       float64
	Carryover      float64
	Waiting        float64
	Active         float64
	Expired        float64
	NewlyActivated float64
}

// NodeTracker converts daily losses into insurance node cohorts and keeps
// running totals so a day only revisits the cohorts still waiting.
//
// A cohort created on day p is waiting on days p..p+delay-1, activates on
// p+delay and is reported expired on p+expiry.
type NodeTracker struct {
	nodeCost      float64
	delay         int
	expiry        int
	rollCarryover bool

	cohorts []float64 // cohorts[p-1] = nodes created on day p, append-only

	totalCreated float64
	totalExpired float64
	carryover    float64
}

// NewNodeTracker creates a tracker for validated settings.
func NewNodeTracker(s domain.Settings) *NodeTracker {
	return &NodeTracker{
		nodeCost:      s.NodeCost,
		delay:         s.NodeActivationDelay,
		expiry:        s.NodeExpiryDays,
		rollCarryover: s.RollCarryover,
	}
}

// Days returns how many days have been recorded.
func (t *NodeTracker) Days() int {
	return len(t.cohorts)
}

// Created returns the size of the cohort created on day p, or 0 when p is
// outside the recorded history.
func (t *NodeTracker) Created(p int) float64 {
	if p < 1 || p > len(t.cohorts) {
		return 0
	}
	return t.cohorts[p-1]
}

// Record registers the signed total loss of the next day and returns that day's counts.
func (t *NodeTracker) Record(totalLoss float64) (NodeDay, error) {
	day := len(t.cohorts) + 1

	pool := math.Abs(totalLoss)
	if t.rollCarryover {
		pool += t.carryover
	}
	if math.IsNaN(pool) || math.IsInf(pool, 0) {
		return NodeDay{}, fmt.Errorf("%w: insurance pool is not finite on day %d", ErrNumericOverflow, day)
	}

	// Mod first so that nodes*cost + carryover reproduces the pool.
	carry := math.Mod(pool, t.nodeCost)
	created := math.Round((pool - carry) / t.nodeCost)
	if math.IsInf(created, 0) || math.IsInf(t.totalCreated+created, 0) {
		return NodeDay{}, fmt.Errorf("%w: node count is not finite on day %d", ErrNumericOverflow, day)
	}

	t.cohorts = append(t.cohorts, created)
	t.carryover = carry
	t.totalCreated += created

	newlyActivated := t.Created(day - t.delay)
	expired := t.Created(day - t.expiry)
	t.totalExpired += expired

	waiting := t.waitingOn(day)

	return NodeDay{
		Pool:           pool,
		NewNodes:       created,
		Carryover:      carry,
		Waiting:        waiting,
		Active:         t.totalCreated - waiting - t.totalExpired,
		Expired:        expired,
		NewlyActivated: newlyActivated,
	}, nil
}

// waitingOn sums the cohorts created in (day-delay, day], oldest first.
// Summing the window directly keeps it exact instead of drifting with large counts.
func (t *NodeTracker) waitingOn(day int) float64 {
	waiting := 0.0
	for p := max(1, day-t.delay+1); p <= day; p++ {
		waiting += t.Created(p)
	}
	return waiting
}

// TotalCreated returns the number of nodes created so far.
func (t *NodeTracker) TotalCreated() float64 {
	return t.totalCreated
}
