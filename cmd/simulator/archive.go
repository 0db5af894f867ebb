package main

import (
	"context"
	"log/slog"

	"github.com/alejandrodnm/airdropsim/config"
	"github.com/alejandrodnm/airdropsim/internal/adapters/notify"
)

const historyLimit = 20

// runArchive lista las corridas archivadas o reimprime una de ellas.
func runArchive(ctx context.Context, cfg *config.Config, console *notify.Console, list bool, runID string) error {
	archive, err := openArchive(cfg)
	if err != nil {
		return err
	}
	defer archive.Close()

	if list {
		runs, err := archive.ListRuns(ctx, historyLimit)
		if err != nil {
			return err
		}
		console.PrintRuns(runs)
	}

	if runID == "" {
		return nil
	}

	days, err := archive.GetRunDays(ctx, runID)
	if err != nil {
		return err
	}
	slog.Info("archived run loaded", "id", runID, "days", len(days))
	return console.Render(ctx, days)
}
