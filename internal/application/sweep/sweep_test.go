package sweep_test

import (
	"context"
	"testing"

	"github.com/alejandrodnm/airdropsim/internal/application/simulator"
	"github.com/alejandrodnm/airdropsim/internal/application/sweep"
	"github.com/alejandrodnm/airdropsim/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slowSettings() domain.Settings {
	s := domain.DefaultSettings()
	s.InitialInvestment = 1_000_000
	s.WinCount = 1
	return s
}

func TestWinCountGrid(t *testing.T) {
	grid := sweep.WinCountGrid(domain.DefaultSettings(), []int{1, 2, 3})
	require.Len(t, grid, 3)
	assert.Equal(t, "win=2 loss=90", grid[1].Name)
	assert.Equal(t, 3, grid[2].Settings.WinCount)
	assert.Equal(t, 90, grid[2].Settings.LossCount)
}

func TestRun_MatchesSequentialRuns(t *testing.T) {
	scenarios := sweep.WinCountGrid(slowSettings(), []int{0, 1, 2, 3, 4, 5})
	checkpoints := []int{30, 60}

	got := sweep.Run(context.Background(), scenarios, 90, checkpoints, 3)
	require.Len(t, got, len(scenarios))

	for i, sc := range scenarios {
		sim, err := simulator.New(sc.Settings, 90)
		require.NoError(t, err)
		h, err := sim.Run()
		require.NoError(t, err)

		require.NoError(t, got[i].Err)
		assert.Equal(t, sc.Name, got[i].Name)
		assert.Equal(t, domain.Summarize(h.All(), checkpoints), got[i].Summary)
	}
}

func TestRun_FailedScenarioDoesNotAffectOthers(t *testing.T) {
	bad := domain.DefaultSettings()
	bad.NodeCost = 0

	huge := domain.DefaultSettings()
	huge.InitialInvestment = 1e300

	scenarios := []sweep.Scenario{
		{Name: "ok", Settings: slowSettings()},
		{Name: "invalid", Settings: bad},
		{Name: "overflow", Settings: huge},
		{Name: "default", Settings: domain.DefaultSettings()},
	}

	got := sweep.Run(context.Background(), scenarios, 150, nil, 0)
	require.Len(t, got, 4)

	assert.NoError(t, got[0].Err)
	assert.Equal(t, 150, got[0].Summary.Days)
	assert.ErrorIs(t, got[1].Err, domain.ErrInvalidConfig)
	assert.ErrorIs(t, got[2].Err, simulator.ErrNumericOverflow)
	assert.NoError(t, got[3].Err)
	assert.Equal(t, 150, got[3].Summary.Days)
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got := sweep.Run(ctx, sweep.WinCountGrid(slowSettings(), []int{1, 2}), 30, nil, 2)
	for _, o := range got {
		assert.ErrorIs(t, o.Err, context.Canceled)
	}
}

func TestRun_Empty(t *testing.T) {
	assert.Empty(t, sweep.Run(context.Background(), nil, 30, nil, 2))
}
