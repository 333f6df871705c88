package sheetstore

import (
	"context"
	"errors"
)

// ErrStoreNotFound is returned when the target spreadsheet does not exist or
// is not reachable under the configured ID.
var ErrStoreNotFound = errors.New("spreadsheet not found")

// Store is a row-oriented tabular store. Rows are 1-based; row 1 is reserved
// for the header. ReadRow returns an empty slice for a row with no values.
type Store interface {
	ReadRow(ctx context.Context, row int64) ([]string, error)
	InsertRow(ctx context.Context, row int64, values []any) error
	DeleteRow(ctx context.Context, row int64) error
	AppendRow(ctx context.Context, values []any) error
}
