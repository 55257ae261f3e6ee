package driven

import (
	"context"

	"github.com/radix-labs/radix-cli/internal/core/domain"
)

// HistoryStore persists past conversions for the history command.
// The converter itself never touches it; only the CLI records and reads.
type HistoryStore interface {
	// Record stores one conversion. An empty ID is filled in.
	Record(ctx context.Context, c domain.Conversion) error

	// Recent returns up to limit conversions, newest first.
	Recent(ctx context.Context, limit int) ([]domain.Conversion, error)

	// Clear removes all recorded conversions.
	Clear(ctx context.Context) error

	// Close releases the underlying storage.
	Close() error
}
