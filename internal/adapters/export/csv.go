package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/alejandrodnm/airdropsim/internal/domain"
)

// CSVWriter implementa ports.Renderer escribiendo una fila por día.
type CSVWriter struct {
	out io.Writer
}

// NewCSVWriter crea un exportador sobre w. El llamador es dueño de w.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{out: w}
}

// Render escribe la cabecera y todos los días.
func (c *CSVWriter) Render(ctx context.Context, results []domain.DayResult) error {
	w := csv.NewWriter(c.out)

	if err := w.Write(Columns); err != nil {
		return fmt.Errorf("export.Render: header: %w", err)
	}
	for _, d := range results {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("export.Render: %w", err)
		}
		if err := w.Write(Row(d)); err != nil {
			return fmt.Errorf("export.Render: day %d: %w", d.Day, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("export.Render: flush: %w", err)
	}
	return nil
}

// WriteFile crea (o trunca) path y escribe la corrida completa en CSV.
// Un error al cerrar el archivo se devuelve: es donde aparecen los fallos de disco.
func WriteFile(ctx context.Context, path string, results []domain.DayResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export.WriteFile: create %q: %w", path, err)
	}
	return writeAndClose(ctx, f, results)
}

func writeAndClose(ctx context.Context, w io.WriteCloser, results []domain.DayResult) error {
	if err := NewCSVWriter(w).Render(ctx, results); err != nil {
		_ = w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("export.WriteFile: close: %w", err)
	}
	return nil
}
