package repository

import (
	"context"

	"github.com/osse101/RocksBot_Go/internal/domain"
)

// Progression defines the interface for per-user progression records.
type Progression interface {
	// GetOrCreate atomically inserts a default record when the key is absent
	// and returns the stored record. Repeated calls never create duplicates.
	GetOrCreate(ctx context.Context, key domain.UserKey) (*domain.UserProgression, error)

	// PartialUpdate writes only the fields set in patch.
	// Returns domain.ErrUserNotFound when no record exists for key.
	PartialUpdate(ctx context.Context, key domain.UserKey, patch domain.ProgressionPatch) error
}
