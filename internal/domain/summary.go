package domain

// DefaultCheckpoints son los días que el resumen detalla por defecto.
var DefaultCheckpoints = []int{30, 60, 90, 120}

// Checkpoint es el estado resumido de un día intermedio.
type Checkpoint struct {
	Day               int
	TotalCapital      float64
	ActiveNodes       float64
	CumulativeAirdrop float64
}

// Summary resume una corrida completa.
type Summary struct {
	Days              int
	InitialCapital    float64 // StartCapital del día 1
	FinalEndCapital   float64
	FinalTotalCapital float64
	NetProfit         float64 // FinalEndCapital − InitialCapital
	CumulativeAirdrop float64
	CumulativeClaim   float64
	ActiveNodes       float64
	ExpiredNodes      float64 // expirados el último día
	TotalNodesCreated float64
	Checkpoints       []Checkpoint
}

// Summarize calcula el resumen de una secuencia de resultados ordenada por día.
// Los checkpoints fuera del horizonte se omiten.
func Summarize(results []DayResult, checkpoints []int) Summary {
	if len(results) == 0 {
		return Summary{}
	}

	first := results[0]
	last := results[len(results)-1]

	s := Summary{
		Days:              len(results),
		InitialCapital:    first.StartCapital,
		FinalEndCapital:   last.EndCapital,
		FinalTotalCapital: last.TotalCapital,
		NetProfit:         last.EndCapital - first.StartCapital,
		CumulativeAirdrop: last.CumulativeAirdrop,
		CumulativeClaim:   last.CumulativeClaim,
		ActiveNodes:       last.ActiveNodes,
		ExpiredNodes:      last.ExpiredNodes,
	}
	for _, r := range results {
		s.TotalNodesCreated += r.NewNodesToday
	}

	for _, day := range checkpoints {
		if day < 1 || day > len(results) {
			continue
		}
		r := results[day-1]
		s.Checkpoints = append(s.Checkpoints, Checkpoint{
			Day:               r.Day,
			TotalCapital:      r.TotalCapital,
			ActiveNodes:       r.ActiveNodes,
			CumulativeAirdrop: r.CumulativeAirdrop,
		})
	}
	return s
}

// ScenarioOutcome es el resumen de una variante dentro de un barrido.
// Err no es nil si la variante abortó (p. ej. desbordamiento numérico).
type ScenarioOutcome struct {
	Name    string
	Summary Summary
	Err     error
}
