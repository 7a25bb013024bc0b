// Package clock содержит гибридные логические часы для меток времени правок.
package clock

import (
	"sync"
	"time"
)

// Hybrid выдает строго возрастающие метки времени в миллисекундах.
// Метка не меньше физического времени и больше любой ранее выданной
// или наблюдаемой метки (правило Лампорта поверх часов системы).
type Hybrid struct {
	physical func() time.Time
	last     int64 // последняя выданная или наблюдаемая метка, мс
	mu       sync.Mutex
}

// New создает часы поверх физических часов physical (обычно time.Now)
func New(physical func() time.Time) *Hybrid {
	if physical == nil {
		physical = time.Now
	}
	return &Hybrid{physical: physical}
}

// Now возвращает следующую метку. Две правки в одну миллисекунду
// получают разные метки.
func (h *Hybrid) Now() time.Time {
	h.mu.Lock()
	defer h.mu.Unlock()

	ms := h.physical().UnixMilli()
	if ms <= h.last {
		ms = h.last + 1
	}
	h.last = ms
	return time.UnixMilli(ms)
}

// Observe учитывает удаленную метку: следующая локальная метка будет больше нее.
// Используется при получении изменений от сервера.
func (h *Hybrid) Observe(remote int64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if remote > h.last {
		h.last = remote
	}
}

// Last возвращает последнюю выданную или наблюдаемую метку без ее изменения
func (h *Hybrid) Last() int64 {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.last
}
