// Package events доставляет уведомления движка синхронизации внешнему наблюдателю (UI).
package events

import (
	"sync"

	"github.com/iudanet/gridsync/internal/models"
)

//go:generate moq -out listener_mock.go . Listener

// Listener получатель событий синхронизации.
// Одновременно активен только один Listener: повторная подписка заменяет предыдущую.
type Listener interface {
	// OnStatusChange вызывается при каждой смене статуса (повтор того же статуса не сообщается)
	OnStatusChange(status models.SyncStatus)

	// OnConflictDetected вызывается при регистрации конфликта
	OnConflictDetected(conflict *models.SyncConflict)

	// OnDataUpdated вызывается при применении входящих данных из realtime канала
	OnDataUpdated(payload models.Payload)

	// OnIntegrityViolation вызывается, когда payload не прошел проверку целостности
	OnIntegrityViolation(check models.DataIntegrityCheck, payload models.Payload)

	// OnOperationFailed вызывается, когда операция удалена из очереди без доставки
	OnOperationFailed(op *models.SyncOperation, err error)
}

// Handlers адаптер Listener на функциях. Незаданные поля пропускаются.
type Handlers struct {
	StatusChange       func(status models.SyncStatus)
	ConflictDetected   func(conflict *models.SyncConflict)
	DataUpdated        func(payload models.Payload)
	IntegrityViolation func(check models.DataIntegrityCheck, payload models.Payload)
	OperationFailed    func(op *models.SyncOperation, err error)
}

var _ Listener = Handlers{}

func (h Handlers) OnStatusChange(status models.SyncStatus) {
	if h.StatusChange != nil {
		h.StatusChange(status)
	}
}

func (h Handlers) OnConflictDetected(conflict *models.SyncConflict) {
	if h.ConflictDetected != nil {
		h.ConflictDetected(conflict)
	}
}

func (h Handlers) OnDataUpdated(payload models.Payload) {
	if h.DataUpdated != nil {
		h.DataUpdated(payload)
	}
}

func (h Handlers) OnIntegrityViolation(check models.DataIntegrityCheck, payload models.Payload) {
	if h.IntegrityViolation != nil {
		h.IntegrityViolation(check, payload)
	}
}

func (h Handlers) OnOperationFailed(op *models.SyncOperation, err error) {
	if h.OperationFailed != nil {
		h.OperationFailed(op, err)
	}
}

// Broadcaster хранит текущего Listener и рассылает ему события.
// Без подписчика события отбрасываются.
type Broadcaster struct {
	listener Listener
	mu       sync.RWMutex
}

// NewBroadcaster создает Broadcaster без подписчика
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{}
}

// Subscribe устанавливает Listener, заменяя предыдущего. nil отписывает.
func (b *Broadcaster) Subscribe(l Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listener = l
}

func (b *Broadcaster) current() Listener {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.listener
}

func (b *Broadcaster) StatusChanged(status models.SyncStatus) {
	if l := b.current(); l != nil {
		l.OnStatusChange(status)
	}
}

func (b *Broadcaster) ConflictDetected(conflict *models.SyncConflict) {
	if l := b.current(); l != nil {
		l.OnConflictDetected(conflict.Clone())
	}
}

func (b *Broadcaster) DataUpdated(payload models.Payload) {
	if l := b.current(); l != nil {
		l.OnDataUpdated(payload.Clone())
	}
}

func (b *Broadcaster) IntegrityViolation(check models.DataIntegrityCheck, payload models.Payload) {
	if l := b.current(); l != nil {
		l.OnIntegrityViolation(check, payload.Clone())
	}
}

func (b *Broadcaster) OperationFailed(op *models.SyncOperation, err error) {
	if l := b.current(); l != nil {
		l.OnOperationFailed(op.Clone(), err)
	}
}
