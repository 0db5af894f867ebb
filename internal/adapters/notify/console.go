package notify

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/alejandrodnm/airdropsim/internal/adapters/export"
	"github.com/alejandrodnm/airdropsim/internal/domain"
	"github.com/olekukonko/tablewriter"
)

// Console implementa ports.Renderer.
type Console struct {
	out         io.Writer
	rows        int
	checkpoints []int
}

// NewConsole crea un renderer que escribe a stdout.
func NewConsole(rows int, checkpoints []int) *Console {
	return NewConsoleWriter(os.Stdout, rows, checkpoints)
}

// NewConsoleWriter crea un renderer para tests.
func NewConsoleWriter(w io.Writer, rows int, checkpoints []int) *Console {
	return &Console{out: w, rows: rows, checkpoints: checkpoints}
}

// Render imprime los primeros días, el resumen y los checkpoints.
func (c *Console) Render(_ context.Context, results []domain.DayResult) error {
	if len(results) == 0 {
		fmt.Fprintln(c.out, "no days simulated")
		return nil
	}

	c.printDays(results)

	summary := domain.Summarize(results, c.checkpoints)
	c.printSummary(summary)
	c.printCheckpoints(summary.Checkpoints)

	return nil
}

// printDays imprime la tabla diaria limitada a c.rows filas.
func (c *Console) printDays(results []domain.DayResult) {
	shown := results
	if c.rows > 0 && len(shown) > c.rows {
		shown = shown[:c.rows]
	}

	fmt.Fprintf(c.out, "\n=== DAILY LEDGER (first %d of %d days) ===\n", len(shown), len(results))

	table := tablewriter.NewWriter(c.out)
	table.Header("Day", "Start", "Seed", "Net PnL", "End", "New", "Wait", "Active", "Exp", "Airdrop", "Cum Airdrop", "Stage", "Claim", "Total")

	for _, d := range shown {
		table.Append(
			strconv.Itoa(d.Day),
			export.Amount(d.StartCapital),
			export.Amount(d.Seed),
			export.Amount(d.NetPnL),
			export.Amount(d.EndCapital),
			export.Count(d.NewNodesToday),
			export.Count(d.WaitingNodes),
			export.Count(d.ActiveNodes),
			export.Count(d.ExpiredNodes),
			export.Amount(d.TodayAirdropTotal),
			export.Amount(d.CumulativeAirdrop),
			strconv.Itoa(d.ClaimStageIndex),
			export.Amount(d.TodayClaimAmount),
			export.Amount(d.TotalCapital),
		)
	}
	table.Render()
}

// printSummary imprime el estado final de la corrida.
func (c *Console) printSummary(s domain.Summary) {
	fmt.Fprintf(c.out, "\n=== SUMMARY (%d days) ===\n", s.Days)
	fmt.Fprintf(c.out, "  Initial capital:     $%s\n", export.Amount(s.InitialCapital))
	fmt.Fprintf(c.out, "  Final capital:       $%s\n", export.Amount(s.FinalEndCapital))
	fmt.Fprintf(c.out, "  Net profit:          $%s\n", export.Amount(s.NetProfit))
	fmt.Fprintf(c.out, "  Cumulative airdrop:  $%s\n", export.Amount(s.CumulativeAirdrop))
	fmt.Fprintf(c.out, "  Cumulative claim:    $%s\n", export.Amount(s.CumulativeClaim))
	fmt.Fprintf(c.out, "  Total capital:       $%s\n", export.Amount(s.FinalTotalCapital))
	fmt.Fprintf(c.out, "  Nodes created:       %s\n", export.Count(s.TotalNodesCreated))
	fmt.Fprintf(c.out, "  Active nodes:        %s\n", export.Count(s.ActiveNodes))
}

// printCheckpoints imprime sólo los checkpoints dentro del horizonte.
func (c *Console) printCheckpoints(cps []domain.Checkpoint) {
	if len(cps) == 0 {
		return
	}

	fmt.Fprintf(c.out, "\n=== CHECKPOINTS ===\n")

	table := tablewriter.NewWriter(c.out)
	table.Header("Day", "Total capital", "Active nodes", "Cum airdrop")
	for _, cp := range cps {
		table.Append(
			strconv.Itoa(cp.Day),
			export.Amount(cp.TotalCapital),
			export.Count(cp.ActiveNodes),
			export.Amount(cp.CumulativeAirdrop),
		)
	}
	table.Render()
	fmt.Fprintln(c.out)
}

// PrintRuns imprime las corridas archivadas, más recientes primero.
func (c *Console) PrintRuns(runs []domain.RunRecord) {
	if len(runs) == 0 {
		fmt.Fprintln(c.out, "\n  No archived runs. Use --save to archive one.")
		return
	}

	fmt.Fprintf(c.out, "\n=== ARCHIVED RUNS (%d) ===\n", len(runs))

	table := tablewriter.NewWriter(c.out)
	table.Header("ID", "Created", "Days", "Investment", "W/L", "Total capital", "Cum airdrop", "Active")
	for _, r := range runs {
		table.Append(
			shortID(r.ID),
			r.CreatedAt.Format("2006-01-02 15:04"),
			strconv.Itoa(r.Days),
			export.Amount(r.Settings.InitialInvestment),
			fmt.Sprintf("%d/%d", r.Settings.WinCount, r.Settings.LossCount),
			export.Amount(r.FinalTotalCapital),
			export.Amount(r.CumulativeAirdrop),
			export.Count(r.ActiveNodes),
		)
	}
	table.Render()
	fmt.Fprintln(c.out)
}

// PrintSweep imprime una fila por variante del barrido.
func (c *Console) PrintSweep(outcomes []domain.ScenarioOutcome) {
	fmt.Fprintf(c.out, "\n=== SWEEP (%d scenarios) ===\n", len(outcomes))

	table := tablewriter.NewWriter(c.out)
	table.Header("Scenario", "Final capital", "Net profit", "Cum airdrop", "Active", "Total capital")
	for _, o := range outcomes {
		if o.Err != nil {
			table.Append(o.Name, "ERROR", o.Err.Error(), "-", "-", "-")
			continue
		}
		s := o.Summary
		table.Append(
			o.Name,
			export.Amount(s.FinalEndCapital),
			export.Amount(s.NetProfit),
			export.Amount(s.CumulativeAirdrop),
			export.Count(s.ActiveNodes),
			export.Amount(s.FinalTotalCapital),
		)
	}
	table.Render()
	fmt.Fprintln(c.out)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
