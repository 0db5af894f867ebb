package ports

import (
	"context"

	"github.com/alejandrodnm/airdropsim/internal/domain"
)

// Renderer presenta el historial de una corrida.
type Renderer interface {
	// Render recibe los días en orden; no debe modificar el slice.
	Render(ctx context.Context, results []domain.DayResult) error
}
