package ports

import (
	"context"

	"github.com/hookhub/hookhub/internal/domain"
)

// HookSource supplies catalog entries
type HookSource interface {
	// Load returns every hook the source holds, in source order
	Load(ctx context.Context) ([]domain.Hook, error)

	// Name identifies the source in logs and `catalog info`
	Name() string
}

// HookStore is a writable catalog backing a HookSource
type HookStore interface {
	HookSource

	// Replace swaps the whole catalog for hooks atomically
	Replace(ctx context.Context, hooks []domain.Hook) error

	// Close releases the underlying database
	Close() error
}
