package sync

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gridsync/internal/client/api"
	"github.com/iudanet/gridsync/internal/client/config"
	"github.com/iudanet/gridsync/internal/client/events"
	"github.com/iudanet/gridsync/internal/client/storage"
	"github.com/iudanet/gridsync/internal/client/storage/boltdb"
	"github.com/iudanet/gridsync/internal/clock"
	"github.com/iudanet/gridsync/internal/models"
	pkgapi "github.com/iudanet/gridsync/pkg/api"
)

const testNow = int64(1_700_000_000_000)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.AuthToken = "token"
	cfg.EnableRealtime = false
	cfg.PollingInterval = time.Hour
	// Повторы уровня движка не должны срабатывать во время тестов
	cfg.RetryBaseDelay = time.Hour
	cfg.RetryMaxDelay = time.Hour
	return cfg
}

func testClock() time.Time {
	return time.UnixMilli(testNow)
}

func newTestEngine(t *testing.T, cfg *config.Config, transport Transport, opts ...Option) *Engine {
	t.Helper()

	opts = append([]Option{
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithClock(testClock),
	}, opts...)

	engine, err := New(cfg, transport, opts...)
	require.NoError(t, err)
	t.Cleanup(engine.Destroy)
	return engine
}

func okTransport() *TransportMock {
	return &TransportMock{
		SendOperationFunc: func(ctx context.Context, op *models.SyncOperation) error {
			return nil
		},
		ResolveConflictFunc: func(ctx context.Context, conflictID string, resolved models.Payload) error {
			return nil
		},
	}
}

// recorder собирает события Listener
type recorder struct {
	statuses   []models.SyncStatus
	conflicts  []*models.SyncConflict
	updates    []models.Payload
	violations []models.DataIntegrityCheck
	failed     []*models.SyncOperation
	mu         sync.Mutex
}

func (r *recorder) handlers() events.Handlers {
	return events.Handlers{
		StatusChange: func(s models.SyncStatus) {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.statuses = append(r.statuses, s)
		},
		ConflictDetected: func(c *models.SyncConflict) {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.conflicts = append(r.conflicts, c)
		},
		DataUpdated: func(p models.Payload) {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.updates = append(r.updates, p)
		},
		IntegrityViolation: func(check models.DataIntegrityCheck, p models.Payload) {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.violations = append(r.violations, check)
		},
		OperationFailed: func(op *models.SyncOperation, err error) {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.failed = append(r.failed, op)
		},
	}
}

func (r *recorder) statusList() []models.SyncStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.SyncStatus(nil), r.statuses...)
}

func validCellEdit(rowID string) models.Payload {
	return models.NewCellEditPayload(rowID, "time_2024_01", models.CellValue{Planned: true}, testNow)
}

func TestNew_Validation(t *testing.T) {
	_, err := New(nil, okTransport())
	assert.Error(t, err)

	cfg := testConfig()
	cfg.BatchSize = 0
	_, err = New(cfg, okTransport())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "batch_size")

	_, err = New(testConfig(), nil)
	assert.Error(t, err)
}

func TestEnqueue_RejectsUnknownKindAndPriority(t *testing.T) {
	engine := newTestEngine(t, testConfig(), okTransport())

	_, err := engine.Enqueue("upsert", "row-1", validCellEdit("row-1"), models.PriorityNormal)
	assert.ErrorIs(t, err, ErrInvalidOperation)

	_, err = engine.Enqueue(models.OperationUpdate, "row-1", validCellEdit("row-1"), "urgent")
	assert.ErrorIs(t, err, ErrInvalidOperation)

	assert.Equal(t, 0, engine.Status().QueueSize)
}

func TestProcessQueue_Success(t *testing.T) {
	transport := okTransport()
	engine := newTestEngine(t, testConfig(), transport)
	rec := &recorder{}
	engine.Subscribe(rec.handlers())

	op, err := engine.EnqueueCellEdit("row-1", "time_2024_01", models.CellValue{Planned: true}, models.PriorityNormal)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, op.Status)
	assert.Equal(t, models.PayloadCellEdit, op.Payload.Type())

	_, err = engine.EnqueueSpecificationEdit("row-1", 0, "brand", "ACME", models.PriorityLow)
	require.NoError(t, err)

	// Обычный приоритет не запускает синхронизацию сам
	assert.Equal(t, 2, engine.Status().QueueSize)
	assert.Empty(t, transport.SendOperationCalls())

	require.NoError(t, engine.ProcessQueue(context.Background()))

	assert.Len(t, transport.SendOperationCalls(), 2)
	snapshot := engine.Status()
	assert.Equal(t, models.SyncSynced, snapshot.Status)
	assert.Equal(t, 0, snapshot.QueueSize)
	assert.Equal(t, testNow, snapshot.LastSyncTimestamp)
	assert.Equal(t, []models.SyncStatus{models.SyncSyncing, models.SyncSynced}, rec.statusList())

	// Пустая очередь - no-op без смены статуса
	require.NoError(t, engine.ProcessQueue(context.Background()))
	assert.Len(t, rec.statusList(), 2)
}

func TestProcessQueue_BatchesByPriority(t *testing.T) {
	// Операции восстанавливаются из хранилища, чтобы high приоритет
	// не запускал немедленную синхронизацию
	inserted := []struct {
		id       string
		priority models.Priority
	}{
		{"a", models.PriorityLow},
		{"b", models.PriorityHigh},
		{"c", models.PriorityNormal},
		{"d", models.PriorityHigh},
		{"e", models.PriorityNormal},
		{"f", models.PriorityLow},
		{"g", models.PriorityHigh},
	}
	expected := []string{"b", "d", "g", "c", "e", "a", "f"}

	stored := make([]*models.SyncOperation, 0, len(inserted))
	for i, in := range inserted {
		stored = append(stored, &models.SyncOperation{
			ID:        in.id,
			Kind:      models.OperationUpdate,
			ItemID:    in.id,
			Payload:   models.Payload{"type": "row_reorder"},
			Priority:  in.priority,
			Status:    models.StatusPending,
			CreatedAt: testNow + int64(i),
		})
	}
	store := newStoreMock(stored, nil, 0)

	var (
		mu          sync.Mutex
		startOrder  []string
		inFlight    int
		maxInFlight int
	)
	transport := &TransportMock{
		SendOperationFunc: func(ctx context.Context, op *models.SyncOperation) error {
			mu.Lock()
			startOrder = append(startOrder, op.ID)
			inFlight++
			maxInFlight = max(maxInFlight, inFlight)
			mu.Unlock()

			time.Sleep(10 * time.Millisecond)

			mu.Lock()
			inFlight--
			mu.Unlock()
			return nil
		},
	}

	cfg := testConfig()
	cfg.BatchSize = 3
	engine := newTestEngine(t, cfg, transport, WithStore(store))
	require.Equal(t, 7, engine.Status().QueueSize)

	require.NoError(t, engine.ProcessQueue(context.Background()))

	require.Len(t, startOrder, 7)
	assert.LessOrEqual(t, maxInFlight, 3)

	// ⌈7/3⌉ = 3 пакета: внутри пакета порядок произвольный,
	// но пакеты идут строго по приоритету
	position := make(map[string]int, len(expected))
	for i, id := range expected {
		position[id] = i
	}
	for seq, id := range startOrder {
		assert.Equal(t, position[id]/3, seq/3, "operation %s dispatched in wrong batch", id)
	}

	assert.Equal(t, 0, engine.Status().QueueSize)
	assert.Len(t, store.DeleteOperationCalls(), 7)
}

func TestProcessQueue_DropsAfterMaxRetries(t *testing.T) {
	transportErr := errors.New("server error (503): unavailable")
	transport := &TransportMock{
		SendOperationFunc: func(ctx context.Context, op *models.SyncOperation) error {
			return transportErr
		},
	}
	cfg := testConfig()
	cfg.MaxRetries = 3
	engine := newTestEngine(t, cfg, transport)
	rec := &recorder{}
	engine.Subscribe(rec.handlers())

	_, err := engine.Enqueue(models.OperationCreate, "row-1",
		models.Payload{"type": models.PayloadItemCreate}, models.PriorityNormal)
	require.NoError(t, err)

	// Ошибка транспорта не является ошибкой движка
	require.NoError(t, engine.ProcessQueue(context.Background()))
	ops := engine.Operations()
	require.Len(t, ops, 1)
	assert.Equal(t, models.StatusFailed, ops[0].Status)
	assert.Equal(t, 1, ops[0].RetryCount)
	assert.Equal(t, models.SyncSynced, engine.Status().Status)

	require.NoError(t, engine.ProcessQueue(context.Background()))
	require.NoError(t, engine.ProcessQueue(context.Background()))

	assert.Len(t, transport.SendOperationCalls(), 3)
	assert.Equal(t, 0, engine.Status().QueueSize)
	require.Len(t, rec.failed, 1)
	assert.Equal(t, 3, rec.failed[0].RetryCount)

	// Удаленная операция больше не отправляется
	require.NoError(t, engine.ProcessQueue(context.Background()))
	assert.Len(t, transport.SendOperationCalls(), 3)
}

func TestProcessQueue_DropsInvalidPayload(t *testing.T) {
	transport := okTransport()
	engine := newTestEngine(t, testConfig(), transport)
	rec := &recorder{}
	engine.Subscribe(rec.handlers())

	_, err := engine.Enqueue(models.OperationUpdate, "row-1",
		models.Payload{"type": models.PayloadCellEdit, "rowId": "row-1", "value": "x"}, models.PriorityNormal)
	require.NoError(t, err)

	require.NoError(t, engine.ProcessQueue(context.Background()))

	assert.Empty(t, transport.SendOperationCalls())
	assert.Equal(t, 0, engine.Status().QueueSize)
	require.Len(t, rec.violations, 1)
	assert.False(t, rec.violations[0].IsValid)
	assert.Contains(t, rec.violations[0].Violations, "columnId is required")
}

func TestProcessQueue_ValidationDisabled(t *testing.T) {
	transport := okTransport()
	cfg := testConfig()
	cfg.EnableDataValidation = false
	engine := newTestEngine(t, cfg, transport)

	_, err := engine.Enqueue(models.OperationUpdate, "row-1",
		models.Payload{"type": models.PayloadCellEdit}, models.PriorityNormal)
	require.NoError(t, err)

	require.NoError(t, engine.ProcessQueue(context.Background()))
	assert.Len(t, transport.SendOperationCalls(), 1)
}

func TestEnqueue_OptimisticHighPriorityDrainsImmediately(t *testing.T) {
	transport := okTransport()
	cfg := testConfig()
	cfg.EnableOptimisticUpdates = true
	engine := newTestEngine(t, cfg, transport)
	rec := &recorder{}
	engine.Subscribe(rec.handlers())

	require.Equal(t, models.SyncIdle, engine.Status().Status)

	_, err := engine.EnqueueCellEdit("row-1", "time_2024_01", models.CellValue{Actual: true}, models.PriorityHigh)
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		return engine.Status().QueueSize == 0 && engine.Status().Status == models.SyncSynced
	}, 2*time.Second, 10*time.Millisecond)

	assert.Len(t, transport.SendOperationCalls(), 1)
	assert.Equal(t, []models.SyncStatus{models.SyncSyncing, models.SyncSynced}, rec.statusList())
}

func TestForceSync_ServerConflict(t *testing.T) {
	transport := &TransportMock{
		SendOperationFunc: func(ctx context.Context, op *models.SyncOperation) error {
			return &api.ConflictError{
				Description: "cell changed by another user",
				Severity:    models.SeverityHigh,
				RemoteData:  models.Payload{"type": models.PayloadCellEdit, "value": "remote"},
			}
		},
	}
	engine := newTestEngine(t, testConfig(), transport)
	rec := &recorder{}
	engine.Subscribe(rec.handlers())

	op, err := engine.Enqueue(models.OperationUpdate, "row-1", validCellEdit("row-1"), models.PriorityNormal)
	require.NoError(t, err)

	err = engine.ForceSync(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "cell changed by another user")

	conflicts := engine.Conflicts()
	require.Len(t, conflicts, 1)
	assert.Equal(t, models.ConflictData, conflicts[0].Type)
	assert.Equal(t, op.ID, conflicts[0].OperationID)
	assert.Equal(t, models.SeverityHigh, conflicts[0].Severity)
	assert.Equal(t, "remote", conflicts[0].RemoteData.String("value"))
	assert.Equal(t, validCellEdit("row-1"), conflicts[0].LocalData)
	require.Len(t, rec.conflicts, 1)

	// Операция удерживается до разрешения и повторно не отправляется
	ops := engine.Operations()
	require.Len(t, ops, 1)
	assert.Equal(t, models.StatusHeld, ops[0].Status)

	require.NoError(t, engine.ForceSync(context.Background()))
	assert.Len(t, transport.SendOperationCalls(), 1)
	assert.Equal(t, 1, engine.Status().ConflictCount)
}

func TestResolveConflict_UseLocal(t *testing.T) {
	resolveErr := errors.New("server error (500): boom")
	failResolve := true

	transport := &TransportMock{
		SendOperationFunc: func(ctx context.Context, op *models.SyncOperation) error {
			return &api.ConflictError{Description: "changed", RemoteData: models.Payload{"value": "remote"}}
		},
		ResolveConflictFunc: func(ctx context.Context, conflictID string, resolved models.Payload) error {
			if failResolve {
				return resolveErr
			}
			return nil
		},
	}
	engine := newTestEngine(t, testConfig(), transport)
	rec := &recorder{}
	engine.Subscribe(rec.handlers())

	_, err := engine.Enqueue(models.OperationUpdate, "row-1", validCellEdit("row-1"), models.PriorityNormal)
	require.NoError(t, err)
	require.ErrorIs(t, engine.ForceSync(context.Background()), ErrConflict)

	c := engine.Conflicts()[0]
	resolution := models.ConflictResolution{Strategy: models.StrategyUseLocal, Reason: "mine is right"}

	// Ошибка транспорта оставляет конфликт на месте
	_, err = engine.ResolveConflict(context.Background(), c.ID, resolution)
	require.Error(t, err)
	assert.ErrorIs(t, err, resolveErr)
	assert.Len(t, engine.Conflicts(), 1)
	assert.Equal(t, 1, engine.Status().QueueSize)

	failResolve = false
	resolved, err := engine.ResolveConflict(context.Background(), c.ID, resolution)
	require.NoError(t, err)
	assert.Equal(t, c.LocalData, resolved)

	calls := transport.ResolveConflictCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, c.ID, calls[1].ConflictID)
	assert.Equal(t, c.LocalData, calls[1].Resolved)

	assert.Empty(t, engine.Conflicts())
	assert.Equal(t, 0, engine.Status().QueueSize)
	require.Len(t, rec.updates, 1)
}

func TestResolveConflict_Errors(t *testing.T) {
	transport := &TransportMock{
		SendOperationFunc: func(ctx context.Context, op *models.SyncOperation) error {
			return &api.ConflictError{Description: "changed"}
		},
		ResolveConflictFunc: func(ctx context.Context, conflictID string, resolved models.Payload) error {
			return nil
		},
	}
	engine := newTestEngine(t, testConfig(), transport)

	_, err := engine.ResolveConflict(context.Background(), "missing", models.ConflictResolution{Strategy: models.StrategyUseLocal})
	assert.ErrorIs(t, err, ErrConflictNotFound)

	_, err = engine.Enqueue(models.OperationUpdate, "row-1", validCellEdit("row-1"), models.PriorityNormal)
	require.NoError(t, err)
	require.Error(t, engine.ForceSync(context.Background()))
	id := engine.Conflicts()[0].ID

	_, err = engine.ResolveConflict(context.Background(), id, models.ConflictResolution{Strategy: "coin_flip"})
	assert.ErrorContains(t, err, "unknown resolution strategy")

	// remoteData сервер не прислал
	_, err = engine.ResolveConflict(context.Background(), id, models.ConflictResolution{Strategy: models.StrategyUseRemote})
	assert.Error(t, err)

	_, err = engine.ResolveConflict(context.Background(), id, models.ConflictResolution{Strategy: models.StrategyManual})
	assert.Error(t, err)

	assert.Empty(t, transport.ResolveConflictCalls())
	assert.Len(t, engine.Conflicts(), 1)
}

func TestProcessQueue_LocalTimestampConflict(t *testing.T) {
	transport := okTransport()
	engine := newTestEngine(t, testConfig(), transport)

	engine.HandleRealtimeMessage(pkgapi.RealtimeMessage{Type: pkgapi.MessageSyncStatus, Timestamp: 5000})

	_, err := engine.Enqueue(models.OperationCreate, "row-1",
		models.Payload{"type": models.PayloadItemCreate, "lastModified": int64(1000)}, models.PriorityNormal)
	require.NoError(t, err)

	err = engine.ProcessQueue(context.Background())
	require.ErrorIs(t, err, ErrConflict)

	conflicts := engine.Conflicts()
	require.Len(t, conflicts, 1)
	assert.Equal(t, models.ConflictTimestamp, conflicts[0].Type)
	assert.Nil(t, conflicts[0].RemoteData)
	assert.Empty(t, transport.SendOperationCalls())
}

func TestProcessQueue_ConflictDetectionDisabled(t *testing.T) {
	transport := okTransport()
	cfg := testConfig()
	cfg.EnableConflictResolution = false
	engine := newTestEngine(t, cfg, transport)

	engine.HandleRealtimeMessage(pkgapi.RealtimeMessage{Type: pkgapi.MessageSyncStatus, Timestamp: 5000})
	_, err := engine.Enqueue(models.OperationCreate, "row-1",
		models.Payload{"type": models.PayloadItemCreate, "lastModified": int64(1000)}, models.PriorityNormal)
	require.NoError(t, err)

	require.NoError(t, engine.ProcessQueue(context.Background()))
	assert.Len(t, transport.SendOperationCalls(), 1)
	assert.Empty(t, engine.Conflicts())
}

func TestProcessQueue_NoOverlappingDrains(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	transport := &TransportMock{
		SendOperationFunc: func(ctx context.Context, op *models.SyncOperation) error {
			close(started)
			<-release
			return nil
		},
	}
	engine := newTestEngine(t, testConfig(), transport)

	_, err := engine.Enqueue(models.OperationUpdate, "row-1", validCellEdit("row-1"), models.PriorityNormal)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		done <- engine.ProcessQueue(context.Background())
	}()
	<-started

	// Повторный вызов во время синхронизации - no-op
	assert.NoError(t, engine.ForceSync(context.Background()))
	assert.Equal(t, models.SyncSyncing, engine.Status().Status)

	close(release)
	require.NoError(t, <-done)
	assert.Len(t, transport.SendOperationCalls(), 1)
}

func TestProcessQueue_EngineFailureSchedulesRetry(t *testing.T) {
	transport := okTransport()
	engine := newTestEngine(t, testConfig(), transport)
	rec := &recorder{}
	engine.Subscribe(rec.handlers())

	_, err := engine.Enqueue(models.OperationUpdate, "row-1", validCellEdit("row-1"), models.PriorityNormal)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = engine.ProcessQueue(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, models.SyncError, engine.Status().Status)

	engine.mu.Lock()
	assert.NotNil(t, engine.retryTimer)
	assert.Equal(t, 1, engine.attempt)
	engine.mu.Unlock()

	// Операция осталась в очереди и уходит при следующей попытке
	assert.Equal(t, 1, engine.Status().QueueSize)
	require.NoError(t, engine.ProcessQueue(context.Background()))

	engine.mu.Lock()
	assert.Nil(t, engine.retryTimer)
	assert.Equal(t, 0, engine.attempt)
	engine.mu.Unlock()

	assert.Equal(t, []models.SyncStatus{
		models.SyncSyncing, models.SyncError, models.SyncSyncing, models.SyncSynced,
	}, rec.statusList())
}

func TestProcessQueue_RecoversTransportPanic(t *testing.T) {
	transport := &TransportMock{
		SendOperationFunc: func(ctx context.Context, op *models.SyncOperation) error {
			panic("nil map")
		},
	}
	engine := newTestEngine(t, testConfig(), transport)

	_, err := engine.Enqueue(models.OperationUpdate, "row-1", validCellEdit("row-1"), models.PriorityNormal)
	require.NoError(t, err)

	err = engine.ProcessQueue(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panic while processing operation")
	assert.Equal(t, models.SyncError, engine.Status().Status)
	assert.Equal(t, models.StatusPending, engine.Operations()[0].Status)
}

func TestRetryDelay(t *testing.T) {
	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{attempt: 0, want: time.Second},
		{attempt: 1, want: 2 * time.Second},
		{attempt: 4, want: 16 * time.Second},
		{attempt: 5, want: 30 * time.Second},
		{attempt: 100, want: 30 * time.Second},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RetryDelay(time.Second, 30*time.Second, tt.attempt), "attempt %d", tt.attempt)
	}
}

func TestClearQueues(t *testing.T) {
	transport := &TransportMock{
		SendOperationFunc: func(ctx context.Context, op *models.SyncOperation) error {
			if op.ItemID == "row-conflict" {
				return &api.ConflictError{Description: "changed"}
			}
			return errors.New("offline")
		},
	}
	engine := newTestEngine(t, testConfig(), transport)

	_, err := engine.Enqueue(models.OperationUpdate, "row-conflict", validCellEdit("row-conflict"), models.PriorityNormal)
	require.NoError(t, err)
	_, err = engine.Enqueue(models.OperationUpdate, "row-2", validCellEdit("row-2"), models.PriorityNormal)
	require.NoError(t, err)

	require.ErrorIs(t, engine.ProcessQueue(context.Background()), ErrConflict)
	require.Equal(t, 2, engine.Status().QueueSize)
	require.Equal(t, 1, engine.Status().ConflictCount)

	// Очистка конфликтов удаляет и удерживаемую операцию
	require.NoError(t, engine.ClearConflictQueue())
	assert.Equal(t, 0, engine.Status().ConflictCount)
	assert.Equal(t, 1, engine.Status().QueueSize)

	require.NoError(t, engine.ClearSyncQueue())
	assert.Equal(t, 0, engine.Status().QueueSize)
}

func TestDestroy(t *testing.T) {
	transport := &TransportMock{
		SendOperationFunc: func(ctx context.Context, op *models.SyncOperation) error {
			return &api.ConflictError{Description: "changed"}
		},
	}
	engine := newTestEngine(t, testConfig(), transport)
	rec := &recorder{}
	engine.Subscribe(rec.handlers())

	_, err := engine.Enqueue(models.OperationUpdate, "row-1", validCellEdit("row-1"), models.PriorityNormal)
	require.NoError(t, err)
	_, err = engine.Enqueue(models.OperationUpdate, "row-2", validCellEdit("row-2"), models.PriorityLow)
	require.NoError(t, err)
	require.Error(t, engine.ForceSync(context.Background()))
	require.NotZero(t, engine.Status().ConflictCount)

	engine.Destroy()
	assert.NotPanics(t, engine.Destroy)

	assert.Equal(t, models.StatusSnapshot{Status: models.SyncIdle}, engine.Status())
	assert.Empty(t, engine.Conflicts())
	assert.Empty(t, engine.Operations())

	_, err = engine.Enqueue(models.OperationUpdate, "row-3", validCellEdit("row-3"), models.PriorityNormal)
	assert.ErrorIs(t, err, ErrEngineDestroyed)
	assert.ErrorIs(t, engine.ProcessQueue(context.Background()), ErrEngineDestroyed)
	assert.ErrorIs(t, engine.Start(context.Background()), ErrEngineDestroyed)

	// После Destroy события не доставляются
	statuses := len(rec.statusList())
	engine.HandleRealtimeMessage(pkgapi.RealtimeMessage{Type: pkgapi.MessageSyncStatus, Status: "error"})
	engine.OnOpen()
	assert.Len(t, rec.statusList(), statuses)
}

func TestDestroy_ConcurrentEnqueueLeavesQueueEmpty(t *testing.T) {
	engine := newTestEngine(t, testConfig(), okTransport())

	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			for j := 0; j < 50; j++ {
				if _, err := engine.Enqueue(models.OperationUpdate, "row-1", validCellEdit("row-1"), models.PriorityLow); err != nil {
					assert.ErrorIs(t, err, ErrEngineDestroyed)
					return
				}
			}
		}()
	}

	close(start)
	engine.Destroy()
	wg.Wait()

	assert.Zero(t, engine.Status().QueueSize)
	assert.Empty(t, engine.Operations())
}

func TestEngine_PersistsStateAcrossRestart(t *testing.T) {
	ctx := context.Background()
	store, err := boltdb.New(ctx, filepath.Join(t.TempDir(), "gridsync.db"))
	require.NoError(t, err)
	defer func() {
		require.NoError(t, store.Close())
	}()

	transport := &TransportMock{
		SendOperationFunc: func(ctx context.Context, op *models.SyncOperation) error {
			if op.ItemID == "row-conflict" {
				return &api.ConflictError{Description: "changed", RemoteData: models.Payload{"value": "remote"}}
			}
			return errors.New("offline")
		},
		ResolveConflictFunc: func(ctx context.Context, conflictID string, resolved models.Payload) error {
			return nil
		},
	}

	first := newTestEngine(t, testConfig(), transport, WithStore(store))
	_, err = first.Enqueue(models.OperationUpdate, "row-conflict", validCellEdit("row-conflict"), models.PriorityNormal)
	require.NoError(t, err)
	_, err = first.Enqueue(models.OperationUpdate, "row-offline", validCellEdit("row-offline"), models.PriorityNormal)
	require.NoError(t, err)
	require.ErrorIs(t, first.ProcessQueue(ctx), ErrConflict)
	first.Destroy()

	// Новый движок поднимает очередь, конфликт и время синхронизации
	second := newTestEngine(t, testConfig(), transport, WithStore(store))
	snapshot := second.Status()
	assert.Equal(t, 2, snapshot.QueueSize)
	assert.Equal(t, 1, snapshot.ConflictCount)
	assert.Equal(t, testNow, snapshot.LastSyncTimestamp)

	byItem := make(map[string]*models.SyncOperation)
	for _, op := range second.Operations() {
		byItem[op.ItemID] = op
	}
	assert.Equal(t, models.StatusHeld, byItem["row-conflict"].Status)
	assert.Equal(t, models.StatusFailed, byItem["row-offline"].Status)
	assert.Equal(t, 1, byItem["row-offline"].RetryCount)

	c := second.Conflicts()[0]
	_, err = second.ResolveConflict(ctx, c.ID, models.ConflictResolution{Strategy: models.StrategyUseRemote})
	require.NoError(t, err)

	ops, err := store.LoadOperations(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, "row-offline", ops[0].ItemID)

	conflicts, err := store.LoadConflicts(ctx)
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestNew_RestoreFailure(t *testing.T) {
	store := newStoreMock(nil, nil, 0)
	store.LoadOperationsFunc = func(ctx context.Context) ([]*models.SyncOperation, error) {
		return nil, storage.ErrStorageClosed
	}

	_, err := New(testConfig(), okTransport(), WithStore(store))
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
	assert.Contains(t, err.Error(), "failed to restore sync queue")
}

func TestNew_RestoresInFlightAsPending(t *testing.T) {
	store := newStoreMock([]*models.SyncOperation{{
		ID:       "op-1",
		Kind:     models.OperationUpdate,
		Payload:  validCellEdit("row-1"),
		Priority: models.PriorityNormal,
		Status:   models.StatusInFlight,
	}}, nil, 42)

	engine := newTestEngine(t, testConfig(), okTransport(), WithStore(store))

	ops := engine.Operations()
	require.Len(t, ops, 1)
	assert.Equal(t, models.StatusPending, ops[0].Status)
	assert.Equal(t, int64(42), engine.Status().LastSyncTimestamp)
}

func TestEditClock_TimestampsIncreaseAndFollowServer(t *testing.T) {
	engine := newTestEngine(t, testConfig(), okTransport(), WithEditClock(clock.New(testClock)))

	first, err := engine.EnqueueCellEdit("row-1", "name", "a", models.PriorityNormal)
	require.NoError(t, err)
	second, err := engine.EnqueueSpecificationEdit("row-1", 0, "material", "steel", models.PriorityNormal)
	require.NoError(t, err)

	// Правки в одну миллисекунду получают разные метки
	assert.Equal(t, testNow, first.CreatedAt)
	assert.Equal(t, testNow+1, second.CreatedAt)
	assert.Equal(t, second.CreatedAt, second.Payload["timestamp"])

	// Метка сервера из будущего сдвигает часы правок
	engine.HandleRealtimeMessage(pkgapi.RealtimeMessage{
		Type:      pkgapi.MessageSyncStatus,
		Status:    string(models.SyncSynced),
		Timestamp: testNow + 5_000,
	})

	third, err := engine.EnqueueCellEdit("row-2", "name", "b", models.PriorityNormal)
	require.NoError(t, err)
	assert.Equal(t, testNow+5_001, third.CreatedAt)
}

func TestEditClock_RestoredStateAdvancesClock(t *testing.T) {
	store := newStoreMock([]*models.SyncOperation{{
		ID:        "op-1",
		Kind:      models.OperationUpdate,
		Payload:   validCellEdit("row-1"),
		Priority:  models.PriorityNormal,
		Status:    models.StatusPending,
		CreatedAt: testNow + 100,
	}}, nil, testNow+50)

	engine := newTestEngine(t, testConfig(), okTransport(), WithStore(store), WithEditClock(clock.New(testClock)))

	op, err := engine.EnqueueCellEdit("row-2", "name", "x", models.PriorityLow)
	require.NoError(t, err)
	assert.Equal(t, testNow+101, op.CreatedAt)
}

// newStoreMock возвращает StoreMock с заданным начальным состоянием и no-op записью
func newStoreMock(ops []*models.SyncOperation, conflicts []*models.SyncConflict, lastSync int64) *storage.StoreMock {
	return &storage.StoreMock{
		LoadOperationsFunc: func(ctx context.Context) ([]*models.SyncOperation, error) {
			return ops, nil
		},
		LoadConflictsFunc: func(ctx context.Context) ([]*models.SyncConflict, error) {
			return conflicts, nil
		},
		GetLastSyncTimestampFunc: func(ctx context.Context) (int64, error) {
			return lastSync, nil
		},
		SaveOperationFunc: func(ctx context.Context, op *models.SyncOperation) error {
			return nil
		},
		DeleteOperationFunc: func(ctx context.Context, id string) error {
			return nil
		},
		ClearOperationsFunc: func(ctx context.Context) error {
			return nil
		},
		SaveConflictFunc: func(ctx context.Context, conflict *models.SyncConflict) error {
			return nil
		},
		DeleteConflictFunc: func(ctx context.Context, id string) error {
			return nil
		},
		ClearConflictsFunc: func(ctx context.Context) error {
			return nil
		},
		SaveLastSyncTimestampFunc: func(ctx context.Context, timestamp int64) error {
			return nil
		},
	}
}
