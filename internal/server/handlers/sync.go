package handlers

import (
	"crypto/subtle"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/iudanet/gridsync/internal/crypto"
	"github.com/iudanet/gridsync/internal/models"
	"github.com/iudanet/gridsync/internal/server/storage"
	"github.com/iudanet/gridsync/internal/validation"
	"github.com/iudanet/gridsync/pkg/api"
)

// maxRequestBody ограничение размера тела запроса синхронизации
const maxRequestBody = 1 << 20

// Broadcaster рассылает realtime сообщения соединениям пользователя
type Broadcaster interface {
	Broadcast(userID string, msg api.RealtimeMessage)
}

// operationRequest api.OperationRequest с исходными байтами data для проверки checksum
type operationRequest struct {
	Operation string          `json:"operation"`
	ItemID    string          `json:"itemId"`
	Data      json.RawMessage `json:"data"`
	Timestamp int64           `json:"timestamp"`
}

// SyncHandler handles synchronization requests
type SyncHandler struct {
	logger  *slog.Logger
	storage storage.ItemStorage
	hub     Broadcaster
	now     func() time.Time
}

// NewSyncHandler creates a new sync handler
func NewSyncHandler(logger *slog.Logger, storage storage.ItemStorage, hub Broadcaster) *SyncHandler {
	return &SyncHandler{
		logger:  logger,
		storage: storage,
		hub:     hub,
		now:     time.Now,
	}
}

// Register добавляет маршруты синхронизации в mux
func (h *SyncHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST "+api.EndpointCellEdit, h.HandleOperation(models.PayloadCellEdit))
	mux.HandleFunc("POST "+api.EndpointSpecificationEdit, h.HandleOperation(models.PayloadSpecificationEdit))
	mux.HandleFunc("POST "+api.EndpointItemCreate, h.HandleOperation(models.PayloadItemCreate))
	mux.HandleFunc("POST "+api.EndpointItemDelete, h.HandleOperation(models.PayloadItemDelete))
	mux.HandleFunc("POST "+api.EndpointGeneric, h.HandleOperation(""))
	mux.HandleFunc("POST "+api.EndpointResolveConflict, h.HandleResolveConflict)
}

// TargetKey возвращает ключ цели правки: конфликты определяются по цели, а не по строке целиком
func TargetKey(itemID string, data models.Payload) string {
	switch data.Type() {
	case models.PayloadCellEdit:
		if col := data.String("columnId"); col != "" {
			return itemID + "/" + col
		}
	case models.PayloadSpecificationEdit:
		if idx, ok := data.Int64("specIndex"); ok {
			return fmt.Sprintf("%s/spec/%d/%s", itemID, idx, data.String("key"))
		}
	}
	return itemID
}

// HandleOperation обрабатывает POST операции одного типа payload.
// Пустой payloadType принимает любой тип (generic эндпоинт).
func (h *SyncHandler) HandleOperation(payloadType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := GetUserID(ctx)
		if !ok {
			h.logger.Error("User ID not found in context")
			WriteError(w, h.logger, http.StatusUnauthorized, "unauthorized")
			return
		}

		var req operationRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&req); err != nil {
			h.logger.Warn("Failed to decode operation request", "error", err)
			WriteError(w, h.logger, http.StatusBadRequest, "invalid request body")
			return
		}

		var data models.Payload
		if len(req.Data) > 0 {
			if err := json.Unmarshal(req.Data, &data); err != nil {
				h.logger.Warn("Failed to decode operation data", "error", err)
				WriteError(w, h.logger, http.StatusBadRequest, "invalid data")
				return
			}
		}

		if msg := checkOperation(req, data, payloadType); msg != "" {
			h.logger.Warn("Rejected operation", "user_id", userID, "reason", msg)
			WriteError(w, h.logger, http.StatusBadRequest, msg)
			return
		}

		if sum := r.Header.Get(api.HeaderPayloadChecksum); sum != "" && !checksumMatches(req.Data, data, sum) {
			h.logger.Warn("Payload checksum mismatch", "user_id", userID, "item_id", req.ItemID)
			WriteError(w, h.logger, http.StatusBadRequest, "payload checksum mismatch")
			return
		}

		if check := validation.CheckAt(data, h.now()); !check.IsValid {
			h.logger.Warn("Operation failed integrity check", "user_id", userID, "violations", check.Violations)
			WriteError(w, h.logger, http.StatusUnprocessableEntity, strings.Join(check.Violations, "; "))
			return
		}

		timestamp := req.Timestamp
		if timestamp <= 0 {
			timestamp = h.now().UnixMilli()
		}

		if data.Type() == models.PayloadItemDelete || req.Operation == string(models.OperationDelete) {
			h.applyDelete(w, r, userID, req.ItemID, data, timestamp)
			return
		}

		item := &storage.Item{
			UserID:    userID,
			ItemID:    req.ItemID,
			Target:    TargetKey(req.ItemID, data),
			Type:      data.Type(),
			Data:      data,
			Timestamp: timestamp,
		}

		saved, current, err := h.storage.SaveItem(ctx, item)
		if err != nil {
			h.logger.Error("Failed to save item", "error", err, "user_id", userID, "target", item.Target)
			WriteError(w, h.logger, http.StatusInternalServerError, "internal server error")
			return
		}

		if !saved {
			h.logger.Info("Operation conflicts with newer server value",
				"user_id", userID,
				"target", item.Target,
				"incoming", timestamp,
				"stored", current.Timestamp)

			WriteJSON(w, h.logger, http.StatusOK, api.OperationResponse{
				Conflict: &api.ConflictInfo{
					Description: fmt.Sprintf("%s was changed on the server after this edit", item.Target),
					Severity:    string(conflictSeverity(current)),
					RemoteData:  current.Data,
				},
				Timestamp: current.Timestamp,
			})
			return
		}

		h.logger.Debug("Operation applied", "user_id", userID, "target", item.Target, "timestamp", timestamp)

		h.hub.Broadcast(userID, api.RealtimeMessage{
			Type:      api.MessageDataUpdate,
			Data:      data,
			Timestamp: timestamp,
		})

		WriteJSON(w, h.logger, http.StatusOK, api.OperationResponse{Status: "ok", Timestamp: timestamp})
	}
}

func (h *SyncHandler) applyDelete(w http.ResponseWriter, r *http.Request, userID, itemID string, data models.Payload, timestamp int64) {
	n, err := h.storage.DeleteItem(r.Context(), userID, itemID, timestamp)
	if err != nil {
		h.logger.Error("Failed to delete item", "error", err, "user_id", userID, "item_id", itemID)
		WriteError(w, h.logger, http.StatusInternalServerError, "internal server error")
		return
	}

	h.logger.Debug("Item deleted", "user_id", userID, "item_id", itemID, "targets", n)

	h.hub.Broadcast(userID, api.RealtimeMessage{
		Type:      api.MessageDataUpdate,
		Data:      data,
		Timestamp: timestamp,
	})

	WriteJSON(w, h.logger, http.StatusOK, api.OperationResponse{Status: "ok", Timestamp: timestamp})
}

// HandleResolveConflict обрабатывает POST /api/v1/sync/resolve-conflict.
// Итоговые данные сохраняются безусловно.
func (h *SyncHandler) HandleResolveConflict(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.logger.Error("User ID not found in context")
		WriteError(w, h.logger, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req api.ResolveConflictRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&req); err != nil {
		h.logger.Warn("Failed to decode resolve request", "error", err)
		WriteError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.ConflictID == "" {
		WriteError(w, h.logger, http.StatusBadRequest, "conflictId is required")
		return
	}
	data := models.Payload(req.ResolvedData)
	if data == nil {
		WriteError(w, h.logger, http.StatusBadRequest, "resolvedData is required")
		return
	}

	itemID := resolvedItemID(data)
	if itemID == "" {
		WriteError(w, h.logger, http.StatusBadRequest, "resolvedData must contain rowId or itemId")
		return
	}

	timestamp := req.Timestamp
	if timestamp <= 0 {
		timestamp = h.now().UnixMilli()
	}
	target := TargetKey(itemID, data)

	item := &storage.Item{
		UserID:    userID,
		ItemID:    itemID,
		Target:    target,
		Type:      data.Type(),
		Data:      data,
		Timestamp: timestamp,
	}
	if err := h.storage.PutItem(ctx, item); err != nil {
		h.logger.Error("Failed to store resolved item", "error", err, "user_id", userID, "target", target)
		WriteError(w, h.logger, http.StatusInternalServerError, "internal server error")
		return
	}

	resolution := &storage.Resolution{
		ConflictID: req.ConflictID,
		UserID:     userID,
		Target:     target,
		Data:       data,
		Timestamp:  timestamp,
		CreatedAt:  h.now(),
	}
	if err := h.storage.SaveResolution(ctx, resolution); err != nil {
		// Данные уже сохранены, журнал разрешений вторичен
		h.logger.Error("Failed to record resolution", "error", err, "conflict_id", req.ConflictID)
	}

	h.logger.Info("Conflict resolved", "user_id", userID, "conflict_id", req.ConflictID, "target", target)

	h.hub.Broadcast(userID, api.RealtimeMessage{
		Type:      api.MessageDataUpdate,
		Data:      data,
		Timestamp: timestamp,
	})

	WriteJSON(w, h.logger, http.StatusOK, api.ResolveConflictResponse{Status: "resolved", Timestamp: timestamp})
}

// checkOperation возвращает причину отказа или пустую строку
func checkOperation(req operationRequest, data models.Payload, payloadType string) string {
	switch models.OperationKind(req.Operation) {
	case models.OperationCreate, models.OperationUpdate, models.OperationDelete:
	default:
		return fmt.Sprintf("unknown operation %q", req.Operation)
	}
	if req.ItemID == "" {
		return "itemId is required"
	}
	if data == nil {
		return "data is required"
	}
	if payloadType != "" && data.Type() != payloadType {
		return fmt.Sprintf("payload type %q does not match endpoint (%s)", data.Type(), payloadType)
	}
	return ""
}

// checksumMatches сверяет checksum с исходными байтами data, затем с каноничной сериализацией
func checksumMatches(raw []byte, data models.Payload, sum string) bool {
	if subtle.ConstantTimeCompare([]byte(crypto.ChecksumBytes(raw)), []byte(sum)) == 1 {
		return true
	}
	return crypto.VerifyChecksum(data, sum) == nil
}

// conflictSeverity правки спецификаций важнее правок ячеек
func conflictSeverity(current *storage.Item) models.Severity {
	switch current.Type {
	case models.PayloadSpecificationEdit, models.PayloadItemDelete:
		return models.SeverityHigh
	case models.PayloadCellEdit:
		return models.SeverityMedium
	}
	return models.SeverityLow
}

func resolvedItemID(data models.Payload) string {
	for _, key := range []string{"rowId", "itemId", "id"} {
		if v := data.String(key); v != "" {
			return v
		}
	}
	return ""
}
