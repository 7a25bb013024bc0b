package api

import (
	"fmt"

	"github.com/iudanet/gridsync/internal/models"
)

// ConflictError сервер принял запрос, но сообщил о конкурентном изменении.
// Это мягкий отказ: операция должна ждать разрешения конфликта, а не повторяться.
type ConflictError struct {
	RemoteData  models.Payload
	Description string
	Severity    models.Severity
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("server reported conflict: %s", e.Description)
}
