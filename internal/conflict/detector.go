// Package conflict обнаруживает и разрешает конфликты между локальными
// правками и конкурентными изменениями на сервере.
package conflict

import (
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/gridsync/internal/models"
)

// Detector обнаруживает устаревшие локальные правки.
// Это оптимистичная эвристика: ловит только правки, про которые клиент
// сам знает, что они старше последней синхронизации. Остальные конфликты
// сообщает сервер.
type Detector struct {
	now func() time.Time
}

// NewDetector создает детектор с системными часами
func NewDetector() *Detector {
	return &Detector{now: time.Now}
}

// NewDetectorWithClock создает детектор с заданными часами (для тестов)
func NewDetectorWithClock(now func() time.Time) *Detector {
	return &Detector{now: now}
}

// Detect возвращает timestamp_conflict, если lastModified в payload строго
// меньше lastSyncedAt. Иначе nil. RemoteData не заполняется - при
// необходимости вызывающий загружает её сам.
func (d *Detector) Detect(operationID string, payload models.Payload, lastSyncedAt int64) *models.SyncConflict {
	lastModified, ok := payload.Int64("lastModified")
	if !ok {
		return nil
	}

	if lastModified >= lastSyncedAt {
		return nil
	}

	return &models.SyncConflict{
		ID:          uuid.New().String(),
		OperationID: operationID,
		Type:        models.ConflictTimestamp,
		LocalData:   payload.Clone(),
		RemoteData:  nil,
		DetectedAt:  d.now(),
		Description: "Local data is older than last sync",
		Severity:    models.SeverityMedium,
	}
}
