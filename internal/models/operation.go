package models

import (
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
)

// OperationKind тип операции синхронизации
type OperationKind string

const (
	OperationCreate OperationKind = "create"
	OperationUpdate OperationKind = "update"
	OperationDelete OperationKind = "delete"
)

// Valid проверяет, что тип операции известен
func (k OperationKind) Valid() bool {
	switch k {
	case OperationCreate, OperationUpdate, OperationDelete:
		return true
	}
	return false
}

// Priority приоритет операции в очереди.
// high обходит задержку батчинга и запускает немедленную синхронизацию.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityNormal Priority = "normal"
	PriorityLow    Priority = "low"
)

// Rank возвращает числовой вес приоритета (больше = раньше в очереди)
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityNormal:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// Valid проверяет, что приоритет известен
func (p Priority) Valid() bool {
	return p.Rank() > 0
}

// OperationStatus состояние операции в очереди
type OperationStatus string

const (
	StatusPending   OperationStatus = "pending"
	StatusInFlight  OperationStatus = "in-flight"
	StatusCompleted OperationStatus = "completed"
	StatusFailed    OperationStatus = "failed"
	// StatusHeld операция ждет разрешения конфликта и не попадает в drain
	StatusHeld OperationStatus = "held"
)

// SyncOperation представляет одно локальное изменение, ожидающее доставки на сервер.
type SyncOperation struct {
	Payload    Payload         `json:"payload"`    // Payload данные операции (cell_edit, specification_edit, ...)
	ID         string          `json:"id"`         // ID уникальный идентификатор: kind + itemId + ULID
	Kind       OperationKind   `json:"kind"`       // Kind create/update/delete
	ItemID     string          `json:"itemId"`     // ItemID идентификатор целевой сущности
	Priority   Priority        `json:"priority"`   // Priority high/normal/low
	Status     OperationStatus `json:"status"`     // Status pending/in-flight/completed/failed/held
	CreatedAt  int64           `json:"createdAt"`  // CreatedAt время создания в миллисекундах
	RetryCount int             `json:"retryCount"` // RetryCount количество неудачных попыток доставки
}

// NewOperation создает новую pending операцию с уникальным ID
func NewOperation(kind OperationKind, itemID string, payload Payload, priority Priority, now time.Time) *SyncOperation {
	return &SyncOperation{
		ID:        NewOperationID(kind, itemID, now),
		Kind:      kind,
		ItemID:    itemID,
		Payload:   payload,
		CreatedAt: now.UnixMilli(),
		Priority:  priority,
		Status:    StatusPending,
	}
}

// NewOperationID строит идентификатор операции из типа, id элемента и времени создания.
// ULID содержит миллисекунды и монотонную энтропию, поэтому быстрые
// повторные правки одного элемента получают разные ID.
func NewOperationID(kind OperationKind, itemID string, now time.Time) string {
	id := ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy())
	return fmt.Sprintf("%s_%s_%s", kind, itemID, id.String())
}

// Clone создает глубокую копию операции
func (o *SyncOperation) Clone() *SyncOperation {
	clone := *o
	clone.Payload = o.Payload.Clone()
	return &clone
}
