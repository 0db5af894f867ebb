package sweep

// sweep.go: worker pool para correr variantes de la simulación en paralelo.
//
// Cada variante es una corrida independiente y determinista; el orden de salida
// es el de entrada aunque los workers terminen en cualquier orden. No se ordena
// ni se elige ninguna variante: sólo se reportan lado a lado.

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/alejandrodnm/airdropsim/internal/application/simulator"
	"github.com/alejandrodnm/airdropsim/internal/domain"
)

// Scenario es una variante con nombre de la configuración base.
type Scenario struct {
	Name     string
	Settings domain.Settings
}

// WinCountGrid genera una variante por cada número de trades ganadores.
func WinCountGrid(base domain.Settings, winCounts []int) []Scenario {
	out := make([]Scenario, 0, len(winCounts))
	for _, w := range winCounts {
		s := base
		s.WinCount = w
		out = append(out, Scenario{
			Name:     fmt.Sprintf("win=%d loss=%d", w, s.LossCount),
			Settings: s,
		})
	}
	return out
}

// Run corre todas las variantes con el mismo horizonte y devuelve un resultado por variante,
// en el mismo orden. Si workers <= 0 usa runtime.NumCPU().
func Run(ctx context.Context, scenarios []Scenario, days int, checkpoints []int, workers int) []domain.ScenarioOutcome {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	type result struct {
		idx     int
		outcome domain.ScenarioOutcome
	}

	workCh := make(chan int, len(scenarios))
	resultCh := make(chan result, len(scenarios))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range workCh {
				resultCh <- result{idx: idx, outcome: runOne(ctx, scenarios[idx], days, checkpoints)}
			}
		}()
	}

	for i := range scenarios {
		workCh <- i
	}
	close(workCh)

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	out := make([]domain.ScenarioOutcome, len(scenarios))
	failed := 0
	for r := range resultCh {
		out[r.idx] = r.outcome
		if r.outcome.Err != nil {
			failed++
		}
	}

	slog.Debug("sweep complete",
		"scenarios", len(scenarios),
		"failed", failed,
		"workers", workers,
	)

	return out
}

func runOne(ctx context.Context, sc Scenario, days int, checkpoints []int) domain.ScenarioOutcome {
	out := domain.ScenarioOutcome{Name: sc.Name}

	if err := ctx.Err(); err != nil {
		out.Err = err
		return out
	}

	sim, err := simulator.New(sc.Settings, days)
	if err != nil {
		out.Err = err
		return out
	}
	h, err := sim.Run()
	if err != nil {
		slog.Debug("scenario aborted", "scenario", sc.Name, "err", err)
		out.Err = err
		return out
	}

	out.Summary = domain.Summarize(h.All(), checkpoints)
	return out
}
