package simulator

import (
	"math"
	"testing"

	"github.com/alejandrodnm/airdropsim/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trackerWith(delay, expiry int, roll bool) *NodeTracker {
	s := domain.DefaultSettings()
	s.NodeActivationDelay = delay
	s.NodeExpiryDays = expiry
	s.RollCarryover = roll
	return NewNodeTracker(s)
}

func TestNodeTracker_ConversionAndCarryover(t *testing.T) {
	tr := trackerWith(3, 50, false)

	d1, err := tr.Record(-81)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d1.NewNodes)
	assert.InDelta(t, 81.0, d1.Carryover, 1e-9)
	assert.InDelta(t, 81.0, d1.Pool, 1e-9)

	d2, err := tr.Record(-250)
	require.NoError(t, err)
	assert.Equal(t, 2.0, d2.NewNodes)
	assert.InDelta(t, 50.0, d2.Carryover, 1e-9)

	// sin roll-forward el remanente de ayer no cuenta
	assert.InDelta(t, 250.0, d2.Pool, 1e-9)
}

func TestNodeTracker_ConversionIdentity(t *testing.T) {
	tr := trackerWith(3, 50, false)
	for _, loss := range []float64{0, 99.999, 100, 141.0209, 12345.678, 1e12 + 0.5} {
		d, err := tr.Record(-loss)
		require.NoError(t, err)
		assert.Equal(t, math.Floor(loss/100), d.NewNodes, "loss %v", loss)
		assert.InDelta(t, loss, d.NewNodes*100+d.Carryover, 1e-6, "loss %v", loss)
		assert.GreaterOrEqual(t, d.Carryover, 0.0)
		assert.Less(t, d.Carryover, 100.0)
	}
}

// delay=3, expiry=5; cohorts of 1, 2 and 3 nodes on days 1..3, nothing after.
func TestNodeTracker_Windows(t *testing.T) {
	tr := trackerWith(3, 5, false)
	losses := []float64{-100, -200, -300, 0, 0, 0, 0, 0}

	type want struct{ waiting, active, expired, newly float64 }
	expected := []want{
		{1, 0, 0, 0},
		{3, 0, 0, 0},
		{6, 0, 0, 0},
		{5, 1, 0, 1},
		{3, 3, 0, 2},
		{0, 5, 1, 3},
		{0, 3, 2, 0},
		{0, 0, 3, 0},
	}

	for i, loss := range losses {
		d, err := tr.Record(loss)
		require.NoError(t, err)
		w := expected[i]
		assert.Equal(t, w.waiting, d.Waiting, "day %d waiting", i+1)
		assert.Equal(t, w.active, d.Active, "day %d active", i+1)
		assert.Equal(t, w.expired, d.Expired, "day %d expired", i+1)
		assert.Equal(t, w.newly, d.NewlyActivated, "day %d newly activated", i+1)
	}

	assert.Equal(t, 6.0, tr.TotalCreated())
	assert.Equal(t, 8, tr.Days())
}

func TestNodeTracker_RollCarryover(t *testing.T) {
	rolled := trackerWith(3, 50, true)
	_, err := rolled.Record(-60)
	require.NoError(t, err)
	d, err := rolled.Record(-60)
	require.NoError(t, err)
	assert.Equal(t, 1.0, d.NewNodes)
	assert.InDelta(t, 120.0, d.Pool, 1e-9)
	assert.InDelta(t, 20.0, d.Carryover, 1e-9)

	discarded := trackerWith(3, 50, false)
	_, err = discarded.Record(-60)
	require.NoError(t, err)
	d, err = discarded.Record(-60)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d.NewNodes)
	assert.InDelta(t, 60.0, d.Carryover, 1e-9)
}

// Conteos por encima de int64 siguen siendo enteros exactos en float64.
func TestNodeTracker_CountsBeyondInt64(t *testing.T) {
	tr := trackerWith(3, 50, false)

	for day := 1; day <= 5; day++ {
		d, err := tr.Record(-1e300)
		require.NoError(t, err)
		assert.Greater(t, d.NewNodes, float64(math.MaxInt64))
		assert.Equal(t, math.Trunc(d.NewNodes), d.NewNodes)
		assert.InEpsilon(t, 1e300, d.NewNodes*100+d.Carryover, 1e-12)
	}

	d, err := tr.Record(0)
	require.NoError(t, err)
	assert.Equal(t, tr.Created(4)+tr.Created(5)+tr.Created(6), d.Waiting)
	assert.Equal(t, tr.TotalCreated()-d.Waiting, d.Active)
}

func TestNodeTracker_NonFiniteAborts(t *testing.T) {
	tr := trackerWith(3, 50, false)
	_, err := tr.Record(math.Inf(-1))
	assert.ErrorIs(t, err, ErrNumericOverflow)
	_, err = tr.Record(math.NaN())
	assert.ErrorIs(t, err, ErrNumericOverflow)

	s := domain.DefaultSettings()
	s.NodeCost = 1e-10
	_, err = NewNodeTracker(s).Record(-1e300)
	assert.ErrorIs(t, err, ErrNumericOverflow)

	// un error no deja el día registrado
	assert.Equal(t, 0, tr.Days())
}

func TestNodeTracker_CreatedOutOfRange(t *testing.T) {
	tr := trackerWith(3, 50, false)
	_, err := tr.Record(-500)
	require.NoError(t, err)

	assert.Equal(t, 5.0, tr.Created(1))
	assert.Equal(t, 0.0, tr.Created(0))
	assert.Equal(t, 0.0, tr.Created(-2))
	assert.Equal(t, 0.0, tr.Created(2))
}
