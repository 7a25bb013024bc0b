package server

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientapi "github.com/iudanet/gridsync/internal/client/api"
	"github.com/iudanet/gridsync/internal/models"
	"github.com/iudanet/gridsync/internal/server/handlers"
	"github.com/iudanet/gridsync/pkg/api"
)

func setupServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s, err := New(context.Background(), Config{
		DBPath:    filepath.Join(t.TempDir(), "server.db"),
		JWTSecret: "test-secret-0123456789",
		Version:   "test",
	}, logger)
	require.NoError(t, err)

	srv := httptest.NewServer(s.Handler())
	t.Cleanup(func() {
		s.hub.Close()
		srv.Close()
		_ = s.Close()
	})
	return s, srv
}

func issueToken(t *testing.T, s *Server, userID string) string {
	t.Helper()
	token, _, err := s.Tokens().GenerateAccessToken(userID, userID)
	require.NoError(t, err)
	return token
}

func TestConfig_Validate(t *testing.T) {
	t.Run("secret is required", func(t *testing.T) {
		cfg := Config{}
		assert.Error(t, cfg.Validate())
	})

	t.Run("short secret is rejected", func(t *testing.T) {
		cfg := Config{JWTSecret: "secret"}
		assert.Error(t, cfg.Validate())
	})

	t.Run("defaults are applied", func(t *testing.T) {
		cfg := Config{JWTSecret: "a-long-enough-secret"}
		require.NoError(t, cfg.Validate())

		assert.Equal(t, DefaultAddr, cfg.Addr)
		assert.Equal(t, DefaultDBPath, cfg.DBPath)
		assert.Equal(t, DefaultRateLimit, cfg.RateLimit)
		assert.Equal(t, DefaultRateWindow, cfg.RateWindow)
		assert.Equal(t, DefaultShutdownTimeout, cfg.ShutdownTimeout)
	})
}

func TestServer_HealthIsPublic(t *testing.T) {
	_, srv := setupServer(t)

	resp, err := http.Get(srv.URL + api.EndpointHealth)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var health handlers.HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "test", health.Version)
}

func TestServer_SyncRequiresToken(t *testing.T) {
	_, srv := setupServer(t)

	resp, err := http.Post(srv.URL+api.EndpointCellEdit, "application/json", strings.NewReader(`{}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestServer_ClientRoundTrip(t *testing.T) {
	s, srv := setupServer(t)
	ctx := context.Background()

	client := clientapi.NewClient(srv.URL, issueToken(t, s, "user-1"), 5*time.Second)

	now := time.Now()
	newer := models.NewOperation(models.OperationUpdate, "row-1",
		models.NewCellEditPayload("row-1", "name", "server value", now.UnixMilli()),
		models.PriorityNormal, now)
	require.NoError(t, client.SendOperation(ctx, newer))

	// Более старая правка той же ячейки конфликтует
	older := models.NewOperation(models.OperationUpdate, "row-1",
		models.NewCellEditPayload("row-1", "name", "stale value", now.Add(-time.Minute).UnixMilli()),
		models.PriorityNormal, now.Add(-time.Minute))
	err := client.SendOperation(ctx, older)

	var conflictErr *clientapi.ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, models.SeverityMedium, conflictErr.Severity)
	assert.Equal(t, "server value", conflictErr.RemoteData["value"])

	// Разрешение конфликта записывается безусловно
	resolved := models.NewCellEditPayload("row-1", "name", "merged", now.UnixMilli())
	require.NoError(t, client.ResolveConflict(ctx, "conflict-1", resolved))

	item, err := s.storage.GetItem(ctx, "user-1", "row-1/name")
	require.NoError(t, err)
	assert.Equal(t, "merged", item.Data["value"])
}

func TestServer_RealtimeDeliversUpdates(t *testing.T) {
	s, srv := setupServer(t)
	token := issueToken(t, s, "user-1")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + api.EndpointRealtime
	conn, _, err := websocket.Dial(ctx, wsURL, &websocket.DialOptions{
		HTTPHeader: http.Header{"Authorization": []string{"Bearer " + token}},
	})
	require.NoError(t, err)
	defer func() { _ = conn.CloseNow() }()

	require.Eventually(t, func() bool { return s.hub.Connections("user-1") == 1 }, 2*time.Second, 10*time.Millisecond)

	client := clientapi.NewClient(srv.URL, token, 5*time.Second)
	now := time.Now()
	op := models.NewOperation(models.OperationUpdate, "row-7",
		models.NewSpecificationEditPayload("row-7", 0, "material", "steel", now.UnixMilli()),
		models.PriorityHigh, now)
	require.NoError(t, client.SendOperation(ctx, op))

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg api.RealtimeMessage
	require.NoError(t, json.Unmarshal(data, &msg))
	assert.Equal(t, api.MessageDataUpdate, msg.Type)
	assert.Equal(t, "row-7", msg.Data["rowId"])
	assert.Equal(t, "steel", msg.Data["value"])
}

func TestServer_RealtimeRequiresToken(t *testing.T) {
	_, srv := setupServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + api.EndpointRealtime
	_, resp, err := websocket.Dial(ctx, wsURL, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestServer_ServeStopsOnCancel(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s, err := New(context.Background(), Config{
		DBPath:    filepath.Join(t.TempDir(), "server.db"),
		JWTSecret: "test-secret-0123456789",
	}, logger)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + api.EndpointHealth)
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
