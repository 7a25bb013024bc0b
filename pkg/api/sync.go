package api

// Эндпоинты синхронизации. Маршрут операции выбирается по типу payload.
const (
	EndpointCellEdit          = "/api/v1/sync/cell"
	EndpointSpecificationEdit = "/api/v1/sync/specification"
	EndpointItemCreate        = "/api/v1/sync/items/create"
	EndpointItemDelete        = "/api/v1/sync/items/delete"
	EndpointGeneric           = "/api/v1/sync/generic"
	EndpointResolveConflict   = "/api/v1/sync/resolve-conflict"
	EndpointRealtime          = "/api/v1/realtime"
	EndpointHealth            = "/api/v1/health"
)

// HeaderPayloadChecksum заголовок с BLAKE2b-256 (hex) от JSON поля data
const HeaderPayloadChecksum = "X-Payload-Checksum"

// OperationRequest тело запроса отправки одной операции
type OperationRequest struct {
	Data      map[string]any `json:"data"`
	Operation string         `json:"operation"` // create/update/delete
	ItemID    string         `json:"itemId"`
	Timestamp int64          `json:"timestamp"`
}

// ConflictInfo описание конфликта, обнаруженного сервером
type ConflictInfo struct {
	RemoteData  map[string]any `json:"remoteData"`
	Description string         `json:"description"`
	Severity    string         `json:"severity,omitempty"`
}

// OperationResponse ответ сервера на операцию.
// Наличие Conflict означает мягкий отказ: операция не применена.
type OperationResponse struct {
	Conflict  *ConflictInfo `json:"conflict,omitempty"`
	Status    string        `json:"status,omitempty"`
	Timestamp int64         `json:"timestamp,omitempty"`
}

// ResolveConflictRequest тело запроса разрешения конфликта
type ResolveConflictRequest struct {
	ResolvedData map[string]any `json:"resolvedData"`
	ConflictID   string         `json:"conflictId"`
	Timestamp    int64          `json:"timestamp"`
}

// ResolveConflictResponse подтверждение разрешения конфликта
type ResolveConflictResponse struct {
	Status    string `json:"status"`
	Timestamp int64  `json:"timestamp"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
