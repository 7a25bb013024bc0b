package models

// SyncStatus общее состояние синхронизации
type SyncStatus string

const (
	SyncIdle         SyncStatus = "idle"
	SyncConnected    SyncStatus = "connected"
	SyncDisconnected SyncStatus = "disconnected"
	SyncSyncing      SyncStatus = "syncing"
	SyncSynced       SyncStatus = "synced"
	SyncError        SyncStatus = "error"
)

// ParseSyncStatus проверяет значение статуса, пришедшее извне (realtime канал)
func ParseSyncStatus(s string) (SyncStatus, bool) {
	switch SyncStatus(s) {
	case SyncIdle, SyncConnected, SyncDisconnected, SyncSyncing, SyncSynced, SyncError:
		return SyncStatus(s), true
	}
	return "", false
}

// StatusSnapshot текущее состояние движка для UI
type StatusSnapshot struct {
	Status            SyncStatus `json:"status"`
	QueueSize         int        `json:"queueSize"`
	ConflictCount     int        `json:"conflictCount"`
	LastSyncTimestamp int64      `json:"lastSyncTimestamp"`
}
