package simulator

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/alejandrodnm/airdropsim/internal/domain"
)

// ErrNumericOverflow aborts a run whose capital or node counts stop being finite float64 values.
var ErrNumericOverflow = errors.New("numeric overflow")

// Simulator is the capital ledger: it runs the day loop and assembles each DayResult.
type Simulator struct {
	settings domain.Settings
	days     int
}

// New validates the settings and the horizon before any day is computed.
func New(settings domain.Settings, days int) (*Simulator, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("simulator.New: %w", err)
	}
	if err := domain.ValidateHorizon(days); err != nil {
		return nil, fmt.Errorf("simulator.New: %w", err)
	}
	return &Simulator{settings: settings, days: days}, nil
}

// Settings returns the settings the simulator was built with.
func (s *Simulator) Settings() domain.Settings {
	return s.settings
}

// Days returns the configured horizon.
func (s *Simulator) Days() int {
	return s.days
}

// run holds the mutable state of a single execution.
type run struct {
	settings domain.Settings
	nodes    *NodeTracker
	airdrop  *AirdropEngine
	claims   *ClaimScheduler
	history  *History
}

// Run executes the whole horizon. Every call starts from day 1 with fresh state,
// so two runs with the same settings produce identical histories.
func (s *Simulator) Run() (*History, error) {
	r := &run{
		settings: s.settings,
		nodes:    NewNodeTracker(s.settings),
		airdrop:  NewAirdropEngine(s.settings),
		claims:   NewClaimScheduler(),
		history:  newHistory(s.days),
	}

	for day := 1; day <= s.days; day++ {
		result, err := r.step(day)
		if err != nil {
			return nil, fmt.Errorf("simulator.Run: %w", err)
		}
		r.history.append(result)
	}

	last, _ := r.history.Last()
	slog.Info("simulation complete",
		"days", s.days,
		"end_capital", fmt.Sprintf("%.2f", last.EndCapital),
		"cumulative_airdrop", fmt.Sprintf("%.2f", last.CumulativeAirdrop),
		"active_nodes", last.ActiveNodes,
		"total_nodes", r.nodes.TotalCreated(),
	)
	return r.history, nil
}

// step computes one day. The airdrop only reads cohorts created before today,
// so it and the claim are settled first and the claim can feed today's capital.
func (r *run) step(day int) (domain.DayResult, error) {
	s := r.settings

	airdrop := r.airdrop.Accrue(day, r.nodes)
	claim := r.claims.Step(airdrop.Today)

	startCapital := s.CapitalSeed()
	cumulativeClaim := 0.0
	if prev, ok := r.history.Last(); ok {
		startCapital = prev.EndCapital
		cumulativeClaim = prev.CumulativeClaim
	}
	cumulativeClaim += claim.Amount

	capitalPlusClaim := startCapital + cumulativeClaim
	seed := capitalPlusClaim * s.WinProfitRate

	totalProfit := seed * float64(s.WinCount)
	totalLoss := -(seed * math.Abs(s.LossRate) * float64(s.LossCount))
	dailyPnL := totalProfit + totalLoss

	dailyFee := seed * s.MonthlyFeeRate * s.DailyFeeRate
	selfReferral := dailyFee * s.SelfReferralRate
	netPnL := dailyPnL - dailyFee + selfReferral
	endCapital := startCapital + netPnL

	if math.IsInf(endCapital, 0) || math.IsNaN(endCapital) {
		return domain.DayResult{}, fmt.Errorf("%w: capital is not finite on day %d", ErrNumericOverflow, day)
	}

	nodes, err := r.nodes.Record(totalLoss)
	if err != nil {
		return domain.DayResult{}, err
	}

	if nodes.NewlyActivated > 0 {
		slog.Debug("nodes activated", "day", day, "count", nodes.NewlyActivated, "active", nodes.Active)
	}
	if claim.Amount > 0 {
		slog.Debug("claim paid", "day", day, "stage", claim.Stage, "amount", claim.Amount)
	}

	return domain.DayResult{
		Day:                 day,
		CapitalPlusClaim:    capitalPlusClaim,
		StartCapital:        startCapital,
		CumulativeClaim:     cumulativeClaim,
		Seed:                seed,
		WinCount:            s.WinCount,
		LossCount:           s.LossCount,
		TotalProfit:         totalProfit,
		TotalLoss:           totalLoss,
		DailyPnL:            dailyPnL,
		DailyFee:            dailyFee,
		SelfReferral:        selfReferral,
		NetPnL:              netPnL,
		EndCapital:          endCapital,
		InsurancePool:       nodes.Pool,
		NewNodesToday:       nodes.NewNodes,
		CarryoverLoss:       nodes.Carryover,
		WaitingNodes:        nodes.Waiting,
		ActiveNodes:         nodes.Active,
		ExpiredNodes:        nodes.Expired,
		NewlyActivatedNodes: nodes.NewlyActivated,
		TodayAirdropTotal:   airdrop.Today,
		CumulativeAirdrop:   airdrop.Cumulative,
		TotalCapital:        endCapital + airdrop.Cumulative,
		ClaimStageIndex:     claim.Stage,
		TodayClaimAmount:    claim.Amount,
		BalanceBeforeClaim:  claim.BalanceBefore,
		BalanceAfterClaim:   claim.BalanceAfter,
	}, nil
}
