package sheetstore

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/yt-prospector/internal/models"
)

// Writer maintains the header invariant of the target sheet and appends
// enrichment records below it. Appends are serialized so concurrent callers
// cannot race on row order.
type Writer struct {
	mu    sync.Mutex
	store Store
}

// NewWriter creates a writer over the given store.
func NewWriter(store Store) *Writer {
	return &Writer{store: store}
}

// EnsureSchema guarantees row 1 equals models.SheetSchema. A missing header is
// inserted; a mismatching one is deleted and replaced. Data rows below row 1
// are never touched. Idempotent: a correct header is left alone.
func (w *Writer) EnsureSchema(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	row, err := w.store.ReadRow(ctx, 1)
	if err != nil {
		return fmt.Errorf("reading header row: %w", err)
	}

	if slices.Equal(row, models.SheetSchema) {
		return nil
	}

	if len(row) > 0 {
		if err := w.store.DeleteRow(ctx, 1); err != nil {
			return fmt.Errorf("removing stale header row: %w", err)
		}
	}
	if err := w.store.InsertRow(ctx, 1, headerRow()); err != nil {
		return fmt.Errorf("inserting header row: %w", err)
	}
	return nil
}

// Append adds the record as a new trailing row. Appends are unconditional:
// repeated runs over the same channel produce duplicate rows.
func (w *Writer) Append(ctx context.Context, record models.EnrichmentRecord) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.store.AppendRow(ctx, record.Row()); err != nil {
		return fmt.Errorf("appending record for %q: %w", record.Title, err)
	}
	return nil
}

func headerRow() []any {
	row := make([]any, len(models.SheetSchema))
	for i, name := range models.SheetSchema {
		row[i] = name
	}
	return row
}
