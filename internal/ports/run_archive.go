package ports

import (
	"context"

	"github.com/alejandrodnm/airdropsim/internal/domain"
)

// RunArchive persiste corridas terminadas para poder compararlas después.
type RunArchive interface {
	// SaveRun guarda la configuración y todos los días de una corrida.
	SaveRun(ctx context.Context, settings domain.Settings, results []domain.DayResult) (domain.RunRecord, error)

	// ListRuns devuelve las corridas más recientes primero.
	ListRuns(ctx context.Context, limit int) ([]domain.RunRecord, error)

	// GetRunDays devuelve los días de una corrida ordenados por día.
	GetRunDays(ctx context.Context, runID string) ([]domain.DayResult, error)

	// Close cierra la conexión a la base de datos limpiamente.
	Close() error
}
