package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/coder/websocket"
	"github.com/goccy/go-json"

	"github.com/iudanet/gridsync/pkg/api"
)

const (
	// hubSendBuffer сообщений в очереди одного соединения до отключения медленного клиента
	hubSendBuffer = 64
	// hubWriteTimeout таймаут записи одного сообщения
	hubWriteTimeout = 10 * time.Second
)

// hubConn одно realtime соединение пользователя
type hubConn struct {
	send        chan []byte
	closeReason string
	closeStatus websocket.StatusCode
	closed      atomic.Bool
}

// Hub держит realtime соединения и рассылает сообщения всем соединениям пользователя
type Hub struct {
	logger *slog.Logger
	conns  map[string]map[*hubConn]struct{}
	mu     sync.RWMutex
	closed atomic.Bool
}

// NewHub создает пустой Hub
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger: logger,
		conns:  make(map[string]map[*hubConn]struct{}),
	}
}

// ServeHTTP обрабатывает GET /api/v1/realtime.
// Ожидает user_id в контексте (AuthMiddleware).
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		h.logger.Error("User ID not found in context")
		WriteError(w, h.logger, http.StatusUnauthorized, "unauthorized")
		return
	}
	if h.closed.Load() {
		WriteError(w, h.logger, http.StatusServiceUnavailable, "server is shutting down")
		return
	}

	ws, err := websocket.Accept(w, r, nil)
	if err != nil {
		// Accept уже ответил клиенту
		h.logger.Warn("Failed to accept websocket", "error", err, "user_id", userID)
		return
	}

	c := &hubConn{send: make(chan []byte, hubSendBuffer)}
	h.register(userID, c)
	defer h.unregister(userID, c)

	h.logger.Info("Realtime client connected", "user_id", userID)

	// Входящие сообщения не ожидаются: CloseRead отвечает на ping/close
	ctx := ws.CloseRead(r.Context())

	for {
		select {
		case <-ctx.Done():
			h.logger.Info("Realtime client disconnected", "user_id", userID)
			_ = ws.Close(websocket.StatusNormalClosure, "")
			return
		case msg, ok := <-c.send:
			if !ok {
				h.logger.Info("Closing realtime connection", "user_id", userID, "reason", c.closeReason)
				_ = ws.Close(c.closeStatus, c.closeReason)
				return
			}
			if err := h.write(ctx, ws, msg); err != nil {
				h.logger.Warn("Failed to write realtime message", "error", err, "user_id", userID)
				_ = ws.CloseNow()
				return
			}
		}
	}
}

func (h *Hub) write(ctx context.Context, ws *websocket.Conn, msg []byte) error {
	ctx, cancel := context.WithTimeout(ctx, hubWriteTimeout)
	defer cancel()
	return ws.Write(ctx, websocket.MessageText, msg)
}

func (h *Hub) register(userID string, c *hubConn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.conns[userID]
	if !ok {
		set = make(map[*hubConn]struct{})
		h.conns[userID] = set
	}
	set[c] = struct{}{}
}

func (h *Hub) unregister(userID string, c *hubConn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set := h.conns[userID]
	delete(set, c)
	if len(set) == 0 {
		delete(h.conns, userID)
	}
}

// Broadcast отправляет сообщение всем соединениям пользователя.
// Соединение с переполненной очередью отключается.
func (h *Hub) Broadcast(userID string, msg api.RealtimeMessage) {
	if h.closed.Load() {
		return
	}

	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error("Failed to marshal realtime message", "error", err, "type", msg.Type)
		return
	}

	h.mu.RLock()
	targets := make([]*hubConn, 0, len(h.conns[userID]))
	for c := range h.conns[userID] {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	for _, c := range targets {
		h.trySend(userID, c, data)
	}
}

func (h *Hub) trySend(userID string, c *hubConn, data []byte) {
	// send закрывается только под mu, поэтому проверка и отправка под RLock
	h.mu.RLock()
	defer h.mu.RUnlock()

	if c.closed.Load() {
		return
	}

	select {
	case c.send <- data:
	default:
		h.logger.Warn("Realtime client too slow, dropping connection", "user_id", userID)
		go h.disconnect(c, websocket.StatusPolicyViolation, "connection too slow")
	}
}

// disconnect закрывает очередь соединения; писатель закроет websocket
func (h *Hub) disconnect(c *hubConn, status websocket.StatusCode, reason string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if c.closed.CompareAndSwap(false, true) {
		c.closeStatus = status
		c.closeReason = reason
		close(c.send)
	}
}

// Connections возвращает количество открытых соединений пользователя
func (h *Hub) Connections(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns[userID])
}

// Close отключает все соединения. Новые подключения отклоняются.
func (h *Hub) Close() {
	if !h.closed.CompareAndSwap(false, true) {
		return
	}

	h.mu.RLock()
	all := make([]*hubConn, 0)
	for _, set := range h.conns {
		for c := range set {
			all = append(all, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range all {
		h.disconnect(c, websocket.StatusGoingAway, "server shutdown")
	}
}
