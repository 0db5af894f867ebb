package simulator

import "math"

// MaxClaimStage is the last rung of the claim ladder; after it the stage resets to 1.
const MaxClaimStage = 15

// ClaimDay is the claim decision for one day.
type ClaimDay struct {
	Stage         int
	Amount        float64
	BalanceBefore float64
	BalanceAfter  float64
}

// ClaimScheduler stages lump-sum claims against the accumulated airdrop
// balance using a doubling threshold ladder: stage n claims 2^(n-1).
//
// Everything day d needs is the previous day's state plus day d's airdrop,
// so the schedule is a single forward pass.
type ClaimScheduler struct {
	stage     int // 0 until the first Step
	lastClaim float64
	balance   float64 // balance after the previous day's claim
}

// NewClaimScheduler creates a scheduler with an empty balance.
func NewClaimScheduler() *ClaimScheduler {
	return &ClaimScheduler{}
}

// Step advances one day with that day's airdrop total.
func (c *ClaimScheduler) Step(airdropToday float64) ClaimDay {
	switch {
	case c.stage == 0:
		c.stage = 1
	case c.lastClaim > 0:
		if c.stage >= MaxClaimStage {
			c.stage = 1
		} else {
			c.stage++
		}
	}

	threshold := ClaimThreshold(c.stage)
	before := c.balance + airdropToday

	amount := 0.0
	if before >= threshold {
		amount = threshold
	}
	after := before - amount

	c.balance = after
	c.lastClaim = amount

	return ClaimDay{
		Stage:         c.stage,
		Amount:        amount,
		BalanceBefore: before,
		BalanceAfter:  after,
	}
}

// ClaimThreshold returns 2^(stage-1).
func ClaimThreshold(stage int) float64 {
	return math.Ldexp(1, stage-1)
}
