package storage

import (
	"context"

	"github.com/iudanet/gridsync/internal/models"
)

// OperationStorage defines interface for persisting pending sync operations
// so that queued edits survive client restarts
type OperationStorage interface {
	// SaveOperation stores or replaces an operation by ID
	SaveOperation(ctx context.Context, op *models.SyncOperation) error

	// DeleteOperation removes an operation
	// Deleting a missing operation is not an error
	DeleteOperation(ctx context.Context, id string) error

	// LoadOperations returns all stored operations ordered by creation time
	LoadOperations(ctx context.Context) ([]*models.SyncOperation, error)

	// ClearOperations removes all stored operations
	ClearOperations(ctx context.Context) error
}
