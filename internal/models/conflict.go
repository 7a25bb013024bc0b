package models

import "time"

// ConflictType тип конфликта
type ConflictType string

const (
	// ConflictTimestamp локальная правка старше последней синхронизации
	ConflictTimestamp ConflictType = "timestamp_conflict"
	// ConflictData сервер сообщил о конкурентном изменении
	ConflictData ConflictType = "data_conflict"
)

// Severity важность конфликта
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// ParseSeverity возвращает severity или medium для неизвестных значений
func ParseSeverity(s string) Severity {
	switch Severity(s) {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return Severity(s)
	}
	return SeverityMedium
}

// SyncConflict представляет обнаруженное или полученное от сервера столкновение правок.
type SyncConflict struct {
	DetectedAt  time.Time    `json:"detectedAt"`
	LocalData   Payload      `json:"localData"`
	RemoteData  Payload      `json:"remoteData"`            // RemoteData может быть nil (загружается позже)
	ID          string       `json:"id"`                    // ID уникальный идентификатор (UUID)
	OperationID string       `json:"operationId,omitempty"` // OperationID обратная ссылка на операцию
	Type        ConflictType `json:"type"`
	Description string       `json:"description"`
	Severity    Severity     `json:"severity"`
}

// Clone создает глубокую копию конфликта
func (c *SyncConflict) Clone() *SyncConflict {
	clone := *c
	clone.LocalData = c.LocalData.Clone()
	clone.RemoteData = c.RemoteData.Clone()
	return &clone
}

// ResolutionStrategy политика выбора итогового значения
type ResolutionStrategy string

const (
	StrategyUseLocal  ResolutionStrategy = "use_local"
	StrategyUseRemote ResolutionStrategy = "use_remote"
	StrategyMerge     ResolutionStrategy = "merge"
	StrategyManual    ResolutionStrategy = "manual"
)

// ConflictResolution входные данные для разрешения конфликта
type ConflictResolution struct {
	ManualData Payload            `json:"manualData,omitempty"` // ManualData обязательно для strategy=manual
	Strategy   ResolutionStrategy `json:"strategy"`
	Reason     string             `json:"reason,omitempty"`
}

// DataIntegrityCheck результат проверки целостности payload
type DataIntegrityCheck struct {
	CheckedAt  time.Time `json:"checkedAt"`
	Violations []string  `json:"violations"`
	IsValid    bool      `json:"isValid"`
}
