package handlers

import (
	"log/slog"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/iudanet/gridsync/pkg/api"
)

// WriteJSON пишет ответ в JSON с указанным статусом
func WriteJSON(w http.ResponseWriter, logger *slog.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// WriteError пишет api.ErrorResponse. message попадает в текст ошибки на клиенте.
func WriteError(w http.ResponseWriter, logger *slog.Logger, status int, message string) {
	WriteJSON(w, logger, status, api.ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
	})
}
