package sync

import (
	"context"

	"github.com/iudanet/gridsync/internal/client/api"
	"github.com/iudanet/gridsync/internal/models"
)

//go:generate moq -out transport_mock.go . Transport

// Transport доставляет операции и решения конфликтов на сервер.
// SendOperation возвращает *api.ConflictError, если сервер сообщил о конфликте.
type Transport interface {
	SendOperation(ctx context.Context, op *models.SyncOperation) error
	ResolveConflict(ctx context.Context, conflictID string, resolved models.Payload) error
}

var _ Transport = (*api.Client)(nil)
