package storage

// sqlite.go: archivo de corridas terminadas.
//
//   - `runs`: una fila por corrida con la configuración (JSON) y los totales finales.
//   - `day_results`: una fila por día simulado, clave (run_id, day).
//
// Las corridas son deterministas: guardar la misma configuración dos veces
// produce dos filas con los mismos días y distinto id.

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/alejandrodnm/airdropsim/internal/domain"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
    id                  TEXT PRIMARY KEY,
    created_at          INTEGER NOT NULL,
    days                INTEGER NOT NULL,
    settings            TEXT    NOT NULL,
    final_total_capital REAL    NOT NULL DEFAULT 0,
    cumulative_airdrop  REAL    NOT NULL DEFAULT 0,
    active_nodes        REAL    NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS day_results (
    run_id                TEXT    NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
    day                   INTEGER NOT NULL,
    capital_plus_claim    REAL    NOT NULL,
    start_capital         REAL    NOT NULL,
    cumulative_claim      REAL    NOT NULL,
    seed                  REAL    NOT NULL,
    win_count             INTEGER NOT NULL,
    loss_count            INTEGER NOT NULL,
    total_profit          REAL    NOT NULL,
    total_loss            REAL    NOT NULL,
    daily_pnl             REAL    NOT NULL,
    daily_fee             REAL    NOT NULL,
    self_referral         REAL    NOT NULL,
    net_pnl               REAL    NOT NULL,
    end_capital           REAL    NOT NULL,
    insurance_pool        REAL    NOT NULL,
    new_nodes_today       REAL    NOT NULL,
    carryover_loss        REAL    NOT NULL,
    waiting_nodes         REAL    NOT NULL,
    active_nodes          REAL    NOT NULL,
    expired_nodes         REAL    NOT NULL,
    newly_activated_nodes REAL    NOT NULL,
    today_airdrop_total   REAL    NOT NULL,
    cumulative_airdrop    REAL    NOT NULL,
    total_capital         REAL    NOT NULL,
    claim_stage_index     INTEGER NOT NULL,
    today_claim_amount    REAL    NOT NULL,
    balance_before_claim  REAL    NOT NULL,
    balance_after_claim   REAL    NOT NULL,
    PRIMARY KEY (run_id, day)
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
`

// ErrRunNotFound se devuelve cuando el id no existe en el archivo.
var ErrRunNotFound = errors.New("run not found")

// SQLiteStorage implementa ports.RunArchive usando SQLite (pure Go, sin CGo).
type SQLiteStorage struct {
	db    *sql.DB
	clock clockwork.Clock
}

// NewSQLiteStorage abre (o crea) la base de datos en la ruta dada y aplica el schema.
// Con clock nil se usa el reloj real.
func NewSQLiteStorage(path string, clock clockwork.Clock) (*SQLiteStorage, error) {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage.NewSQLiteStorage: open %q: %w", path, err)
	}
	db.SetMaxOpenConns(1) // SQLite es single-writer
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage.NewSQLiteStorage: apply schema: %w", err)
	}

	return &SQLiteStorage{db: db, clock: clock}, nil
}

// SaveRun guarda la corrida y todos sus días en una transacción.
func (s *SQLiteStorage) SaveRun(ctx context.Context, settings domain.Settings, results []domain.DayResult) (domain.RunRecord, error) {
	if len(results) == 0 {
		return domain.RunRecord{}, fmt.Errorf("storage.SaveRun: empty run")
	}

	settingsJSON, err := json.Marshal(settings)
	if err != nil {
		return domain.RunRecord{}, fmt.Errorf("storage.SaveRun: encode settings: %w", err)
	}

	last := results[len(results)-1]
	rec := domain.RunRecord{
		ID:                uuid.NewString(),
		CreatedAt:         s.clock.Now().UTC(),
		Days:              len(results),
		Settings:          settings,
		FinalTotalCapital: last.TotalCapital,
		CumulativeAirdrop: last.CumulativeAirdrop,
		ActiveNodes:       last.ActiveNodes,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.RunRecord{}, fmt.Errorf("storage.SaveRun: begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO runs (id, created_at, days, settings, final_total_capital, cumulative_airdrop, active_nodes)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.CreatedAt.UnixNano(), rec.Days, string(settingsJSON),
		rec.FinalTotalCapital, rec.CumulativeAirdrop, rec.ActiveNodes,
	); err != nil {
		return domain.RunRecord{}, fmt.Errorf("storage.SaveRun: insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO day_results
			(run_id, day, capital_plus_claim, start_capital, cumulative_claim, seed,
			 win_count, loss_count, total_profit, total_loss, daily_pnl, daily_fee,
			 self_referral, net_pnl, end_capital, insurance_pool, new_nodes_today,
			 carryover_loss, waiting_nodes, active_nodes, expired_nodes,
			 newly_activated_nodes, today_airdrop_total, cumulative_airdrop,
			 total_capital, claim_stage_index, today_claim_amount,
			 balance_before_claim, balance_after_claim)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return domain.RunRecord{}, fmt.Errorf("storage.SaveRun: prepare: %w", err)
	}
	defer stmt.Close()

	for _, d := range results {
		if _, err := stmt.ExecContext(ctx,
			rec.ID, d.Day,
			d.CapitalPlusClaim, d.StartCapital, d.CumulativeClaim, d.Seed,
			d.WinCount, d.LossCount, d.TotalProfit, d.TotalLoss, d.DailyPnL, d.DailyFee,
			d.SelfReferral, d.NetPnL, d.EndCapital, d.InsurancePool, d.NewNodesToday,
			d.CarryoverLoss, d.WaitingNodes, d.ActiveNodes, d.ExpiredNodes,
			d.NewlyActivatedNodes, d.TodayAirdropTotal, d.CumulativeAirdrop,
			d.TotalCapital, d.ClaimStageIndex, d.TodayClaimAmount,
			d.BalanceBeforeClaim, d.BalanceAfterClaim,
		); err != nil {
			return domain.RunRecord{}, fmt.Errorf("storage.SaveRun: insert day %d: %w", d.Day, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return domain.RunRecord{}, fmt.Errorf("storage.SaveRun: commit: %w", err)
	}
	return rec, nil
}

// ListRuns devuelve hasta limit corridas, las más recientes primero. limit <= 0 = todas.
func (s *SQLiteStorage) ListRuns(ctx context.Context, limit int) ([]domain.RunRecord, error) {
	if limit <= 0 {
		limit = -1 // sin límite en SQLite
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, days, settings, final_total_capital, cumulative_airdrop, active_nodes
		FROM runs
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("storage.ListRuns: query: %w", err)
	}
	defer rows.Close()

	var runs []domain.RunRecord
	for rows.Next() {
		var rec domain.RunRecord
		var createdAt int64
		var settingsJSON string

		if err := rows.Scan(
			&rec.ID,
			&createdAt,
			&rec.Days,
			&settingsJSON,
			&rec.FinalTotalCapital,
			&rec.CumulativeAirdrop,
			&rec.ActiveNodes,
		); err != nil {
			return nil, fmt.Errorf("storage.ListRuns: scan row: %w", err)
		}
		if err := json.Unmarshal([]byte(settingsJSON), &rec.Settings); err != nil {
			return nil, fmt.Errorf("storage.ListRuns: decode settings of %s: %w", rec.ID, err)
		}
		rec.CreatedAt = time.Unix(0, createdAt).UTC()
		runs = append(runs, rec)
	}

	return runs, rows.Err()
}

// GetRunDays devuelve los días de una corrida ordenados por día.
func (s *SQLiteStorage) GetRunDays(ctx context.Context, runID string) ([]domain.DayResult, error) {
	var exists int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM runs WHERE id = ?`, runID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage.GetRunDays: %s: %w", runID, ErrRunNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("storage.GetRunDays: lookup run: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT day, capital_plus_claim, start_capital, cumulative_claim, seed,
		       win_count, loss_count, total_profit, total_loss, daily_pnl, daily_fee,
		       self_referral, net_pnl, end_capital, insurance_pool, new_nodes_today,
		       carryover_loss, waiting_nodes, active_nodes, expired_nodes,
		       newly_activated_nodes, today_airdrop_total, cumulative_airdrop,
		       total_capital, claim_stage_index, today_claim_amount,
		       balance_before_claim, balance_after_claim
		FROM day_results
		WHERE run_id = ?
		ORDER BY day ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("storage.GetRunDays: query: %w", err)
	}
	defer rows.Close()

	var days []domain.DayResult
	for rows.Next() {
		var d domain.DayResult
		if err := rows.Scan(
			&d.Day, &d.CapitalPlusClaim, &d.StartCapital, &d.CumulativeClaim, &d.Seed,
			&d.WinCount, &d.LossCount, &d.TotalProfit, &d.TotalLoss, &d.DailyPnL, &d.DailyFee,
			&d.SelfReferral, &d.NetPnL, &d.EndCapital, &d.InsurancePool, &d.NewNodesToday,
			&d.CarryoverLoss, &d.WaitingNodes, &d.ActiveNodes, &d.ExpiredNodes,
			&d.NewlyActivatedNodes, &d.TodayAirdropTotal, &d.CumulativeAirdrop,
			&d.TotalCapital, &d.ClaimStageIndex, &d.TodayClaimAmount,
			&d.BalanceBeforeClaim, &d.BalanceAfterClaim,
		); err != nil {
			return nil, fmt.Errorf("storage.GetRunDays: scan row: %w", err)
		}
		days = append(days, d)
	}

	return days, rows.Err()
}

// Close cierra la conexión a la base de datos.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}
