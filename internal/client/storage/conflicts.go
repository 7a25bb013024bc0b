package storage

import (
	"context"

	"github.com/iudanet/gridsync/internal/models"
)

// ConflictStorage defines interface for persisting open conflicts
type ConflictStorage interface {
	// SaveConflict stores or replaces a conflict by ID
	SaveConflict(ctx context.Context, conflict *models.SyncConflict) error

	// DeleteConflict removes a conflict
	// Deleting a missing conflict is not an error
	DeleteConflict(ctx context.Context, id string) error

	// LoadConflicts returns all stored conflicts ordered by detection time
	LoadConflicts(ctx context.Context) ([]*models.SyncConflict, error)

	// ClearConflicts removes all stored conflicts
	ClearConflicts(ctx context.Context) error
}
