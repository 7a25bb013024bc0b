package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/iudanet/gridsync/internal/server/handlers"
	"github.com/iudanet/gridsync/internal/server/jwt"
	"github.com/iudanet/gridsync/internal/server/middleware"
	"github.com/iudanet/gridsync/internal/server/storage/sqlite"
	"github.com/iudanet/gridsync/internal/validation"
	"github.com/iudanet/gridsync/pkg/api"
)

// Значения по умолчанию
const (
	DefaultAddr            = ":8080"
	DefaultDBPath          = "gridsync-server.db"
	DefaultRateLimit       = 600
	DefaultRateWindow      = time.Minute
	DefaultShutdownTimeout = 10 * time.Second
)

// Config настройки сервера
type Config struct {
	Addr            string
	DBPath          string
	JWTSecret       string
	Version         string
	TokenTTL        time.Duration
	RateWindow      time.Duration
	ShutdownTimeout time.Duration
	RateLimit       int
}

// Validate проверяет конфигурацию и подставляет значения по умолчанию
func (c *Config) Validate() error {
	if err := validation.ValidateSecret(c.JWTSecret); err != nil {
		return fmt.Errorf("invalid jwt secret: %w", err)
	}
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
	if c.DBPath == "" {
		c.DBPath = DefaultDBPath
	}
	if c.RateLimit <= 0 {
		c.RateLimit = DefaultRateLimit
	}
	if c.RateWindow <= 0 {
		c.RateWindow = DefaultRateWindow
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = DefaultShutdownTimeout
	}
	return nil
}

// Server эталонный сервер синхронизации: REST эндпоинты, realtime канал и SQLite хранилище
type Server struct {
	logger  *slog.Logger
	storage *sqlite.Storage
	tokens  *jwt.Service
	hub     *handlers.Hub
	limiter *middleware.RateLimiter
	http    *http.Server
	cfg     Config
}

// New открывает хранилище и собирает обработчики
func New(ctx context.Context, cfg Config, logger *slog.Logger) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	store, err := sqlite.New(ctx, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	s := &Server{
		logger:  logger,
		storage: store,
		tokens:  jwt.NewService(cfg.JWTSecret, cfg.TokenTTL),
		hub:     handlers.NewHub(logger),
		limiter: middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow, logger),
		cfg:     cfg,
	}
	s.http = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
	return s, nil
}

// Tokens возвращает JWT сервис (выпуск токенов для клиентов)
func (s *Server) Tokens() *jwt.Service {
	return s.tokens
}

// Handler собирает маршруты и цепочку middleware.
// Цепочка: recovery -> logging -> auth -> rate limit -> handlers.
// Health check доступен без токена.
func (s *Server) Handler() http.Handler {
	protected := http.NewServeMux()
	handlers.NewSyncHandler(s.logger, s.storage, s.hub).Register(protected)
	protected.Handle("GET "+api.EndpointRealtime, s.hub)

	authed := middleware.AuthMiddleware(s.logger, s.tokens)(
		middleware.RateLimitMiddleware(s.limiter, s.logger)(protected),
	)

	root := http.NewServeMux()
	root.HandleFunc("GET "+api.EndpointHealth, handlers.NewHealthHandler(s.logger, s.storage, s.cfg.Version).Health)
	root.Handle("/", authed)

	return middleware.RecoveryMiddleware(s.logger)(
		middleware.LoggingMiddleware(s.logger, api.EndpointHealth)(root),
	)
}

// Run слушает адрес до отмены ctx, затем корректно останавливается
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve обслуживает соединения ln до отмены ctx
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("Server listening", "addr", ln.Addr().String(), "version", s.cfg.Version)
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		return s.shutdown()
	})

	return g.Wait()
}

func (s *Server) shutdown() error {
	s.logger.Info("Shutting down server")

	// Hijacked websocket соединения Shutdown не ждет, закрываем их явно
	s.hub.Close()

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown http server: %w", err)
	}
	return nil
}

// Close освобождает ресурсы сервера. Вызывается после Run.
func (s *Server) Close() error {
	s.hub.Close()
	s.limiter.Stop()
	if err := s.storage.Close(); err != nil {
		return fmt.Errorf("failed to close storage: %w", err)
	}
	return nil
}
