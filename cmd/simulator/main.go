package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alejandrodnm/airdropsim/config"
	"github.com/alejandrodnm/airdropsim/internal/adapters/export"
	"github.com/alejandrodnm/airdropsim/internal/adapters/notify"
	"github.com/alejandrodnm/airdropsim/internal/adapters/storage"
	"github.com/alejandrodnm/airdropsim/internal/application/simulator"
	"github.com/alejandrodnm/airdropsim/internal/application/sweep"
	"github.com/alejandrodnm/airdropsim/internal/ports"
	"github.com/lmittmann/tint"
	flag "github.com/spf13/pflag"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to config file")
	days := flag.Int("days", 0, "days to simulate (overrides config)")
	investment := flag.Float64("initial-investment", 0, "initial investment (overrides config)")
	winCount := flag.Int("win-count", 0, "winning trades per day (overrides config)")
	lossCount := flag.Int("loss-count", 0, "losing trades per day (overrides config)")
	rollCarryover := flag.Bool("roll-carryover", false, "carry the unconverted remainder into the next day's node pool")
	rows := flag.Int("rows", 0, "daily rows to print (overrides config)")
	csvPath := flag.String("csv", "", "write every day to this CSV file")
	save := flag.Bool("save", false, "archive the run in SQLite")
	history := flag.Bool("history", false, "list archived runs and exit")
	show := flag.String("show", "", "print an archived run by id and exit")
	sweepWins := flag.IntSlice("sweep-win-counts", nil, "run one scenario per win count in parallel and compare them")
	verbose := flag.Bool("verbose", false, "set log level to debug")
	logFormat := flag.String("format", "", "log format: text|json|pretty (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "err", err, "path", *configPath)
		os.Exit(1)
	}

	if *verbose {
		cfg.Log.Level = "debug"
	}
	if *logFormat != "" {
		cfg.Log.Format = *logFormat
	}
	setupLogger(cfg.Log)

	// Los flags sólo pisan la config si se pasaron explícitamente
	if flag.CommandLine.Changed("days") {
		cfg.Simulation.Days = *days
	}
	if flag.CommandLine.Changed("initial-investment") {
		cfg.Simulation.InitialInvestment = *investment
	}
	if flag.CommandLine.Changed("win-count") {
		cfg.Simulation.WinCount = *winCount
	}
	if flag.CommandLine.Changed("loss-count") {
		cfg.Simulation.LossCount = *lossCount
	}
	if flag.CommandLine.Changed("roll-carryover") {
		cfg.Simulation.RollCarryover = *rollCarryover
	}
	if *rows > 0 {
		cfg.Output.TableRows = *rows
	}
	if *csvPath != "" {
		cfg.Output.CSVPath = *csvPath
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	console := notify.NewConsole(cfg.Output.TableRows, cfg.Output.Checkpoints)

	if *history || *show != "" {
		if err := runArchive(ctx, cfg, console, *history, *show); err != nil {
			slog.Error("archive command failed", "err", err)
			os.Exit(1)
		}
		return
	}

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	slog.Info("airdropsim starting",
		"config", *configPath,
		"days", cfg.Simulation.Days,
		"initial_investment", cfg.Simulation.InitialInvestment,
		"win_count", cfg.Simulation.WinCount,
		"loss_count", cfg.Simulation.LossCount,
		"roll_carryover", cfg.Simulation.RollCarryover,
	)

	if len(*sweepWins) > 0 {
		scenarios := sweep.WinCountGrid(cfg.Settings(), *sweepWins)
		outcomes := sweep.Run(ctx, scenarios, cfg.Simulation.Days, cfg.Output.Checkpoints, 0)
		console.PrintSweep(outcomes)
		return
	}

	if err := run(ctx, cfg, console, *save); err != nil {
		slog.Error("simulation failed", "err", err)
		os.Exit(1)
	}
}

// run ejecuta la simulación, la presenta y opcionalmente la exporta y archiva.
func run(ctx context.Context, cfg *config.Config, console *notify.Console, save bool) error {
	sim, err := simulator.New(cfg.Settings(), cfg.Simulation.Days)
	if err != nil {
		return err
	}

	start := time.Now()
	hist, err := sim.Run()
	if err != nil {
		return err
	}
	results := hist.All()
	slog.Debug("run finished", "days", sim.Days(), "elapsed", time.Since(start))

	var renderer ports.Renderer = console
	if err := renderer.Render(ctx, results); err != nil {
		return err
	}

	if cfg.Output.CSVPath != "" {
		if err := export.WriteFile(ctx, cfg.Output.CSVPath, results); err != nil {
			return err
		}
		slog.Info("csv written", "path", cfg.Output.CSVPath, "rows", len(results))
	}

	if !save {
		return nil
	}

	archive, err := openArchive(cfg)
	if err != nil {
		return err
	}
	defer archive.Close()

	rec, err := archive.SaveRun(ctx, sim.Settings(), results)
	if err != nil {
		return err
	}
	slog.Info("run archived", "id", rec.ID, "dsn", cfg.Storage.DSN)
	return nil
}

func openArchive(cfg *config.Config) (ports.RunArchive, error) {
	store, err := storage.NewSQLiteStorage(cfg.Storage.DSN, nil)
	if err != nil {
		return nil, err
	}
	return store, nil
}

func setupLogger(cfg config.LogConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	var handler slog.Handler
	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	case "pretty":
		handler = tint.NewHandler(os.Stdout, &tint.Options{Level: level, TimeFormat: time.TimeOnly})
	default:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(handler))
}
