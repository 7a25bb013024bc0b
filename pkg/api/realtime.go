package api

// Типы сообщений realtime канала
const (
	MessageDataUpdate       = "data_update"
	MessageConflictDetected = "conflict_detected"
	MessageSyncStatus       = "sync_status"
)

// RealtimeConflict конфликт, присланный сервером через realtime канал
type RealtimeConflict struct {
	LocalData   map[string]any `json:"localData"`
	RemoteData  map[string]any `json:"remoteData"`
	ID          string         `json:"id,omitempty"`
	OperationID string         `json:"operationId,omitempty"`
	Type        string         `json:"type,omitempty"`
	Description string         `json:"description"`
	Severity    string         `json:"severity,omitempty"`
}

// RealtimeMessage сообщение realtime канала. Набор заполненных полей зависит от Type.
type RealtimeMessage struct {
	Data      map[string]any    `json:"data,omitempty"`     // data_update
	Conflict  *RealtimeConflict `json:"conflict,omitempty"` // conflict_detected
	Type      string            `json:"type"`
	Status    string            `json:"status,omitempty"` // sync_status
	Timestamp int64             `json:"timestamp,omitempty"`
}
