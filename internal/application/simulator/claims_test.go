package simulator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClaimThreshold(t *testing.T) {
	assert.Equal(t, 1.0, ClaimThreshold(1))
	assert.Equal(t, 2.0, ClaimThreshold(2))
	assert.Equal(t, 16384.0, ClaimThreshold(MaxClaimStage))
}

func TestClaimScheduler_Ladder(t *testing.T) {
	c := NewClaimScheduler()

	steps := []struct {
		airdrop float64
		want    ClaimDay
	}{
		{0, ClaimDay{Stage: 1, Amount: 0, BalanceBefore: 0, BalanceAfter: 0}},
		{1, ClaimDay{Stage: 1, Amount: 1, BalanceBefore: 1, BalanceAfter: 0}},
		{0, ClaimDay{Stage: 2, Amount: 0, BalanceBefore: 0, BalanceAfter: 0}},   // avanza porque ayer hubo claim
		{5, ClaimDay{Stage: 2, Amount: 2, BalanceBefore: 5, BalanceAfter: 3}},   // se mantiene: ayer no hubo claim
		{0, ClaimDay{Stage: 3, Amount: 0, BalanceBefore: 3, BalanceAfter: 3}},   // 3 < 4
		{1, ClaimDay{Stage: 3, Amount: 4, BalanceBefore: 4, BalanceAfter: 0}},
		{0.5, ClaimDay{Stage: 4, Amount: 0, BalanceBefore: 0.5, BalanceAfter: 0.5}},
	}

	for i, st := range steps {
		got := c.Step(st.airdrop)
		assert.Equal(t, st.want, got, "step %d", i+1)
	}
}

func TestClaimScheduler_WrapsAfterMaxStage(t *testing.T) {
	c := NewClaimScheduler()

	for day := 1; day <= MaxClaimStage; day++ {
		got := c.Step(1e9)
		assert.Equal(t, day, got.Stage)
		assert.Equal(t, ClaimThreshold(day), got.Amount)
	}

	got := c.Step(1e9)
	assert.Equal(t, 1, got.Stage)
	assert.Equal(t, 1.0, got.Amount)
}

func TestClaimScheduler_BalanceIdentity(t *testing.T) {
	c := NewClaimScheduler()
	prevAfter := 0.0
	for day := 1; day <= 200; day++ {
		airdrop := float64(day%9) * 0.37
		got := c.Step(airdrop)

		assert.Equal(t, prevAfter+airdrop, got.BalanceBefore)
		assert.Equal(t, got.BalanceBefore-got.Amount, got.BalanceAfter)
		assert.LessOrEqual(t, got.Amount, got.BalanceBefore)
		assert.GreaterOrEqual(t, got.BalanceAfter, 0.0)
		assert.GreaterOrEqual(t, got.Stage, 1)
		assert.LessOrEqual(t, got.Stage, MaxClaimStage)
		prevAfter = got.BalanceAfter
	}
}
