// Package queue реализует очередь операций синхронизации с приоритетами.
package queue

import (
	"sort"
	"sync"

	"github.com/iudanet/gridsync/internal/models"
)

// entry операция и порядковый номер вставки (для стабильной сортировки)
type entry struct {
	op  *models.SyncOperation
	seq uint64
}

// Queue упорядоченная по приоритету коллекция ожидающих операций.
// Ключ - ID операции. Queue владеет счетчиками попыток и статусами.
type Queue struct {
	items   map[string]*entry // map[id]entry
	nextSeq uint64
	mu      sync.RWMutex
}

// New создает пустую очередь
func New() *Queue {
	return &Queue{
		items: make(map[string]*entry),
	}
}

// Enqueue добавляет операцию или заменяет существующую с тем же ID.
// Замененная операция сохраняет исходную позицию вставки.
func (q *Queue) Enqueue(op *models.SyncOperation) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if existing, ok := q.items[op.ID]; ok {
		existing.op = op.Clone()
		return
	}

	q.items[op.ID] = &entry{op: op.Clone(), seq: q.nextSeq}
	q.nextSeq++
}

// DrainSnapshot возвращает копии операций, готовых к отправке (pending и failed),
// отсортированные по приоритету (high > normal > low), при равенстве - по порядку вставки.
// Операции in-flight и held не возвращаются.
func (q *Queue) DrainSnapshot() []*models.SyncOperation {
	q.mu.RLock()
	defer q.mu.RUnlock()

	entries := make([]*entry, 0, len(q.items))
	for _, e := range q.items {
		if e.op.Status == models.StatusPending || e.op.Status == models.StatusFailed {
			entries = append(entries, e)
		}
	}

	sortEntries(entries)

	result := make([]*models.SyncOperation, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.op.Clone())
	}
	return result
}

// All возвращает копии всех операций в порядке DrainSnapshot, независимо от статуса
func (q *Queue) All() []*models.SyncOperation {
	q.mu.RLock()
	defer q.mu.RUnlock()

	entries := make([]*entry, 0, len(q.items))
	for _, e := range q.items {
		entries = append(entries, e)
	}
	sortEntries(entries)

	result := make([]*models.SyncOperation, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.op.Clone())
	}
	return result
}

// Get возвращает копию операции по ID или nil
func (q *Queue) Get(id string) *models.SyncOperation {
	q.mu.RLock()
	defer q.mu.RUnlock()

	e, ok := q.items[id]
	if !ok {
		return nil
	}
	return e.op.Clone()
}

// SetStatus меняет статус операции. Возвращает false, если операции нет.
func (q *Queue) SetStatus(id string, status models.OperationStatus) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	e, ok := q.items[id]
	if !ok {
		return false
	}
	e.op.Status = status
	return true
}

// MarkFailed помечает операцию как failed и увеличивает счетчик попыток.
// Возвращает новое значение счетчика и false, если операции нет.
func (q *Queue) MarkFailed(id string) (int, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	e, ok := q.items[id]
	if !ok {
		return 0, false
	}
	e.op.Status = models.StatusFailed
	e.op.RetryCount++
	return e.op.RetryCount, true
}

// Remove безусловно удаляет операцию. Возвращает true, если она была в очереди.
func (q *Queue) Remove(id string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if _, ok := q.items[id]; !ok {
		return false
	}
	delete(q.items, id)
	return true
}

// Size возвращает количество операций в очереди (любого статуса)
func (q *Queue) Size() int {
	q.mu.RLock()
	defer q.mu.RUnlock()

	return len(q.items)
}

// Clear удаляет все операции
func (q *Queue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.items = make(map[string]*entry)
}

func sortEntries(entries []*entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		ri, rj := entries[i].op.Priority.Rank(), entries[j].op.Priority.Rank()
		if ri != rj {
			return ri > rj
		}
		return entries[i].seq < entries[j].seq
	})
}
