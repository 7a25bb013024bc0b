// Package realtime поддерживает постоянное WebSocket соединение с сервером
// и передает входящие сообщения обработчику.
package realtime

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/goccy/go-json"

	"github.com/iudanet/gridsync/pkg/api"
)

// DefaultReconnectDelay пауза перед повторным подключением по умолчанию
const DefaultReconnectDelay = 5 * time.Second

// readLimit максимальный размер входящего сообщения
const readLimit = 1 << 20

// ErrChannelClosed канал уже закрыт
var ErrChannelClosed = errors.New("realtime channel closed")

//go:generate moq -out handler_mock.go . Handler

// Handler получает события жизненного цикла соединения и входящие сообщения.
// Вызовы идут из одной горутины канала и не пересекаются.
type Handler interface {
	OnOpen()
	OnMessage(msg api.RealtimeMessage)
	OnClose(err error)
}

// Channel одно постоянное соединение с фиксированной задержкой переподключения
type Channel struct {
	handler        Handler
	logger         *slog.Logger
	cancel         context.CancelFunc
	done           chan struct{}
	url            string
	authToken      string
	reconnectDelay time.Duration
	mu             sync.Mutex
	closed         bool
}

// Option настраивает Channel
type Option func(*Channel)

// WithLogger задает логгер канала
func WithLogger(logger *slog.Logger) Option {
	return func(c *Channel) {
		c.logger = logger
	}
}

// WithReconnectDelay задает паузу между попытками подключения
func WithReconnectDelay(d time.Duration) Option {
	return func(c *Channel) {
		if d > 0 {
			c.reconnectDelay = d
		}
	}
}

// NewChannel создает канал. Соединение устанавливается в Start.
func NewChannel(url, authToken string, handler Handler, opts ...Option) *Channel {
	c := &Channel{
		url:            url,
		authToken:      authToken,
		handler:        handler,
		reconnectDelay: DefaultReconnectDelay,
		logger:         slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start запускает цикл подключения в отдельной горутине.
// Повторный вызов для уже запущенного канала ничего не делает.
func (c *Channel) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrChannelClosed
	}
	if c.cancel != nil {
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.done = make(chan struct{})

	go c.run(ctx)
	return nil
}

// Close останавливает переподключение, закрывает соединение и ждет завершения цикла.
// Идемпотентен.
func (c *Channel) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	cancel, done := c.cancel, c.done
	c.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (c *Channel) run(ctx context.Context) {
	defer close(c.done)

	for {
		err := c.connect(ctx)
		if ctx.Err() != nil {
			return
		}

		c.logger.Warn("realtime connection closed", "url", c.url, "error", err, "reconnect_in", c.reconnectDelay)
		c.handler.OnClose(err)

		// Фиксированная пауза перед переподключением
		timer := time.NewTimer(c.reconnectDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
	}
}

// connect устанавливает одно соединение и читает из него до разрыва
func (c *Channel) connect(ctx context.Context) error {
	header := http.Header{}
	if c.authToken != "" {
		header.Set("Authorization", "Bearer "+c.authToken)
	}

	conn, _, err := websocket.Dial(ctx, c.url, &websocket.DialOptions{HTTPHeader: header})
	if err != nil {
		return fmt.Errorf("failed to dial %s: %w", c.url, err)
	}
	defer func() {
		_ = conn.CloseNow()
	}()
	conn.SetReadLimit(readLimit)

	c.logger.Info("realtime connection established", "url", c.url)
	c.handler.OnOpen()

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			if ctx.Err() != nil {
				_ = conn.Close(websocket.StatusNormalClosure, "client shutdown")
			}
			return fmt.Errorf("failed to read message: %w", err)
		}

		var msg api.RealtimeMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			// Битое сообщение не должно рвать соединение
			c.logger.Warn("dropping malformed realtime message", "error", err, "size", len(data))
			continue
		}

		c.handler.OnMessage(msg)
	}
}
