// Package sync доставляет локальные правки на сервер и обрабатывает
// входящие изменения: очередь с приоритетами, пакетная отправка,
// повторы с экспоненциальной задержкой, конфликты и realtime канал.
package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/iudanet/gridsync/internal/client/api"
	"github.com/iudanet/gridsync/internal/client/config"
	"github.com/iudanet/gridsync/internal/client/events"
	"github.com/iudanet/gridsync/internal/client/queue"
	"github.com/iudanet/gridsync/internal/client/realtime"
	"github.com/iudanet/gridsync/internal/client/storage"
	"github.com/iudanet/gridsync/internal/clock"
	"github.com/iudanet/gridsync/internal/conflict"
	"github.com/iudanet/gridsync/internal/models"
	"github.com/iudanet/gridsync/internal/validation"
)

var _ realtime.Handler = (*Engine)(nil)

// Engine координирует очередь, проверки, транспорт и realtime канал.
// Очередь и набор конфликтов принадлежат движку на все время его жизни.
type Engine struct {
	ctx        context.Context
	cfg        *config.Config
	transport  Transport
	store      storage.Store
	logger     *slog.Logger
	now        func() time.Time
	stamps     *clock.Hybrid
	queue      *queue.Queue
	detector   *conflict.Detector
	events     *events.Broadcaster
	channel    *realtime.Channel
	retryTimer *time.Timer
	cancel     context.CancelFunc
	status     models.SyncStatus
	conflicts  []*models.SyncConflict
	lastSync   int64
	attempt    int
	mu         sync.Mutex
	draining   bool
	started    bool
	destroyed  bool
}

// Option настраивает Engine
type Option func(*Engine)

// WithLogger задает логгер движка
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithStore включает сохранение очереди, конфликтов и времени синхронизации
func WithStore(store storage.Store) Option {
	return func(e *Engine) {
		e.store = store
	}
}

// WithClock подменяет часы (для тестов)
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithEditClock задает часы для меток времени правок.
// Метки строго возрастают и учитывают метки, полученные от сервера.
func WithEditClock(h *clock.Hybrid) Option {
	return func(e *Engine) {
		e.stamps = h
	}
}

// New создает движок. Конфигурация проверяется целиком.
// Если задано хранилище, из него восстанавливаются очередь, конфликты
// и время последней синхронизации.
func New(cfg *config.Config, transport Transport, opts ...Option) (*Engine, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if transport == nil {
		return nil, errors.New("transport is required")
	}

	ctx, cancel := context.WithCancel(context.Background())
	e := &Engine{
		ctx:       ctx,
		cancel:    cancel,
		cfg:       cfg,
		transport: transport,
		logger:    slog.Default(),
		now:       time.Now,
		queue:     queue.New(),
		events:    events.NewBroadcaster(),
		status:    models.SyncIdle,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.detector = conflict.NewDetectorWithClock(e.now)

	if e.store != nil {
		if err := e.restore(ctx); err != nil {
			cancel()
			return nil, err
		}
	}

	return e, nil
}

// restore загружает сохраненное состояние.
// Операции, прерванные во время отправки, возвращаются в pending.
func (e *Engine) restore(ctx context.Context) error {
	ops, err := e.store.LoadOperations(ctx)
	if err != nil {
		return fmt.Errorf("failed to restore sync queue: %w", err)
	}
	for _, op := range ops {
		if op.Status == models.StatusInFlight {
			op.Status = models.StatusPending
		}
		e.queue.Enqueue(op)
		e.observe(op.CreatedAt)
	}

	conflicts, err := e.store.LoadConflicts(ctx)
	if err != nil {
		return fmt.Errorf("failed to restore conflicts: %w", err)
	}
	e.conflicts = conflicts

	lastSync, err := e.store.GetLastSyncTimestamp(ctx)
	if err != nil {
		return fmt.Errorf("failed to restore last sync timestamp: %w", err)
	}
	e.lastSync = lastSync
	e.observe(lastSync)

	e.logger.Debug("Restored sync state",
		"operations", len(ops),
		"conflicts", len(conflicts),
		"last_sync", lastSync)
	return nil
}

// Start запускает периодическую синхронизацию и realtime канал.
// Фоновые задачи останавливаются по отмене ctx или в Destroy.
func (e *Engine) Start(ctx context.Context) error {
	e.mu.Lock()
	if e.destroyed {
		e.mu.Unlock()
		return ErrEngineDestroyed
	}
	if e.started {
		e.mu.Unlock()
		return nil
	}
	e.started = true

	var channel *realtime.Channel
	if e.cfg.EnableRealtime {
		channel = realtime.NewChannel(e.cfg.RealtimeURL, e.cfg.AuthToken, e,
			realtime.WithLogger(e.logger),
			realtime.WithReconnectDelay(e.cfg.ReconnectDelay))
		e.channel = channel
	}
	e.mu.Unlock()

	go e.poll(ctx)

	if channel != nil {
		if err := channel.Start(ctx); err != nil {
			return fmt.Errorf("failed to start realtime channel: %w", err)
		}
	}

	// Восстановленные операции отправляем сразу
	if e.queue.Size() > 0 {
		e.triggerDrain()
	}

	e.logger.Info("Sync engine started",
		"polling_interval", e.cfg.PollingInterval,
		"realtime", e.cfg.EnableRealtime)
	return nil
}

func (e *Engine) poll(ctx context.Context) {
	ticker := time.NewTicker(e.cfg.PollingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-e.ctx.Done():
			return
		case <-ticker.C:
			if err := e.ProcessQueue(e.ctx); err != nil && !errors.Is(err, ErrConflict) {
				e.logger.Warn("Scheduled sync failed", "error", err)
			}
		}
	}
}

// triggerDrain запускает внеочередную синхронизацию в фоне
func (e *Engine) triggerDrain() {
	go func() {
		if err := e.ProcessQueue(e.ctx); err != nil && !errors.Is(err, ErrConflict) {
			e.logger.Warn("Immediate sync failed", "error", err)
		}
	}()
}

// Subscribe устанавливает получателя событий, заменяя предыдущего
func (e *Engine) Subscribe(l events.Listener) {
	e.events.Subscribe(l)
}

// Enqueue ставит правку в очередь. Высокий приоритет или оптимистичный
// режим запускают отправку немедленно, не дожидаясь опроса.
func (e *Engine) Enqueue(kind models.OperationKind, itemID string, payload models.Payload, priority models.Priority) (*models.SyncOperation, error) {
	return e.enqueueAt(kind, itemID, payload, priority, e.editTime())
}

func (e *Engine) enqueueAt(kind models.OperationKind, itemID string, payload models.Payload, priority models.Priority, at time.Time) (*models.SyncOperation, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidOperation, kind)
	}
	if !priority.Valid() {
		return nil, fmt.Errorf("%w: unknown priority %q", ErrInvalidOperation, priority)
	}

	op := models.NewOperation(kind, itemID, payload.Clone(), priority, at)

	// Проверка и постановка в очередь под одной блокировкой с Destroy
	e.mu.Lock()
	if e.destroyed {
		e.mu.Unlock()
		return nil, ErrEngineDestroyed
	}
	e.queue.Enqueue(op)
	e.mu.Unlock()

	e.persistOperation(op.ID)

	e.logger.Debug("Operation enqueued",
		"operation_id", op.ID,
		"type", op.Payload.Type(),
		"priority", op.Priority)

	if priority == models.PriorityHigh || e.cfg.EnableOptimisticUpdates {
		e.triggerDrain()
	}

	return op.Clone(), nil
}

// EnqueueCellEdit ставит в очередь правку ячейки таблицы
func (e *Engine) EnqueueCellEdit(rowID, columnID string, value any, priority models.Priority) (*models.SyncOperation, error) {
	at := e.editTime()
	payload := models.NewCellEditPayload(rowID, columnID, value, at.UnixMilli())
	return e.enqueueAt(models.OperationUpdate, rowID, payload, priority, at)
}

// EnqueueSpecificationEdit ставит в очередь правку спецификации строки
func (e *Engine) EnqueueSpecificationEdit(rowID string, specIndex int, key, value string, priority models.Priority) (*models.SyncOperation, error) {
	at := e.editTime()
	payload := models.NewSpecificationEditPayload(rowID, specIndex, key, value, at.UnixMilli())
	return e.enqueueAt(models.OperationUpdate, rowID, payload, priority, at)
}

// editTime метка времени новой правки
func (e *Engine) editTime() time.Time {
	if e.stamps != nil {
		return e.stamps.Now()
	}
	return e.now()
}

// observe сдвигает часы правок за удаленную метку
func (e *Engine) observe(ts int64) {
	if e.stamps != nil && ts > 0 {
		e.stamps.Observe(ts)
	}
}

// Status возвращает текущее состояние движка
func (e *Engine) Status() models.StatusSnapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	return models.StatusSnapshot{
		Status:            e.status,
		QueueSize:         e.queue.Size(),
		ConflictCount:     len(e.conflicts),
		LastSyncTimestamp: e.lastSync,
	}
}

// Operations возвращает копии всех операций очереди в порядке отправки
func (e *Engine) Operations() []*models.SyncOperation {
	return e.queue.All()
}

// Conflicts возвращает копии открытых конфликтов в порядке обнаружения
func (e *Engine) Conflicts() []*models.SyncConflict {
	e.mu.Lock()
	defer e.mu.Unlock()

	result := make([]*models.SyncConflict, 0, len(e.conflicts))
	for _, c := range e.conflicts {
		result = append(result, c.Clone())
	}
	return result
}

// ForceSync запускает синхронизацию вручную.
// Если синхронизация уже идет, вызов ничего не делает.
func (e *Engine) ForceSync(ctx context.Context) error {
	e.logger.Info("Manual sync requested")
	return e.ProcessQueue(ctx)
}

// ProcessQueue отправляет все готовые операции пакетами по BatchSize.
// Пакеты идут последовательно, операции внутри пакета - параллельно.
// Возвращает ошибку уровня движка либо объединение ошибок ErrConflict.
func (e *Engine) ProcessQueue(ctx context.Context) error {
	e.mu.Lock()
	if e.destroyed {
		e.mu.Unlock()
		return ErrEngineDestroyed
	}
	if e.draining || e.queue.Size() == 0 {
		e.mu.Unlock()
		return nil
	}
	ops := e.queue.DrainSnapshot()
	if len(ops) == 0 {
		e.mu.Unlock()
		return nil
	}
	e.draining = true
	lastSync := e.lastSync
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		e.draining = false
		e.mu.Unlock()
	}()

	e.setStatus(models.SyncSyncing)
	e.logger.Info("Processing sync queue", "operations", len(ops), "batch_size", e.cfg.BatchSize)

	var conflictErrs []error
	var mu sync.Mutex

	for start := 0; start < len(ops); start += e.cfg.BatchSize {
		if err := ctx.Err(); err != nil {
			return e.fail(fmt.Errorf("sync interrupted: %w", err))
		}

		end := min(start+e.cfg.BatchSize, len(ops))
		batch := ops[start:end]
		e.logger.Debug("Processing batch", "from", start, "size", len(batch))

		// Ошибка одной операции не отменяет остальные: errgroup без контекста,
		// в Go возвращается только ошибка уровня движка.
		var g errgroup.Group
		for _, op := range batch {
			g.Go(func() error {
				conflictErr, err := e.processOperation(ctx, op, lastSync)
				if conflictErr != nil {
					mu.Lock()
					conflictErrs = append(conflictErrs, conflictErr)
					mu.Unlock()
				}
				return err
			})
		}
		if err := g.Wait(); err != nil {
			return e.fail(err)
		}
	}

	e.mu.Lock()
	if e.destroyed {
		e.mu.Unlock()
		return nil
	}
	e.lastSync = e.now().UnixMilli()
	e.attempt = 0
	if e.retryTimer != nil {
		e.retryTimer.Stop()
		e.retryTimer = nil
	}
	lastSync = e.lastSync
	e.mu.Unlock()

	e.saveLastSync(lastSync)
	e.setStatus(models.SyncSynced)

	e.logger.Info("Sync queue processed",
		"operations", len(ops),
		"conflicts", len(conflictErrs),
		"remaining", e.queue.Size())

	return errors.Join(conflictErrs...)
}

// processOperation проводит одну операцию через проверку целостности,
// детектор конфликтов и транспорт. Первое значение - ошибка конфликта,
// второе - ошибка уровня движка.
func (e *Engine) processOperation(ctx context.Context, op *models.SyncOperation, lastSync int64) (conflictErr, err error) {
	if !e.queue.SetStatus(op.ID, models.StatusInFlight) {
		// Операцию удалили во время синхронизации
		return nil, nil
	}

	defer func() {
		if r := recover(); r != nil {
			e.queue.SetStatus(op.ID, models.StatusPending)
			err = fmt.Errorf("panic while processing operation %s: %v", op.ID, r)
		}
	}()

	// 1. Проверка целостности
	if e.cfg.EnableDataValidation {
		check := validation.CheckAt(op.Payload, e.now())
		if !check.IsValid {
			e.logger.Warn("Dropping operation with invalid payload",
				"operation_id", op.ID,
				"violations", check.Violations)
			e.dropOperation(op.ID)
			e.events.IntegrityViolation(check, op.Payload)
			return nil, nil
		}
	}

	// 2. Локальная проверка на устаревшую правку
	if e.cfg.EnableConflictResolution {
		if c := e.detector.Detect(op.ID, op.Payload, lastSync); c != nil {
			e.fileConflict(c)
			return conflictError(c), nil
		}
	}

	// 3. Отправка
	sendErr := e.transport.SendOperation(ctx, op)
	if sendErr == nil {
		e.queue.SetStatus(op.ID, models.StatusCompleted)
		e.dropOperation(op.ID)
		e.logger.Debug("Operation delivered", "operation_id", op.ID)
		return nil, nil
	}

	var serverConflict *api.ConflictError
	if errors.As(sendErr, &serverConflict) {
		c := &models.SyncConflict{
			ID:          uuid.New().String(),
			OperationID: op.ID,
			Type:        models.ConflictData,
			LocalData:   op.Payload.Clone(),
			RemoteData:  serverConflict.RemoteData.Clone(),
			DetectedAt:  e.now(),
			Description: serverConflict.Description,
			Severity:    serverConflict.Severity,
		}
		e.fileConflict(c)
		return conflictError(c), nil
	}

	if ctx.Err() != nil {
		// Прерванная отправка не считается попыткой
		e.queue.SetStatus(op.ID, models.StatusPending)
		return nil, fmt.Errorf("operation %s interrupted: %w", op.ID, ctx.Err())
	}

	// 4. Ошибка транспорта: считаем попытку
	retries, ok := e.queue.MarkFailed(op.ID)
	if !ok {
		return nil, nil
	}
	if retries >= e.cfg.MaxRetries {
		e.logger.Warn("Dropping operation after max retries",
			"operation_id", op.ID,
			"retries", retries,
			"error", sendErr)
		e.dropOperation(op.ID)
		failed := op.Clone()
		failed.Status = models.StatusFailed
		failed.RetryCount = retries
		e.events.OperationFailed(failed, sendErr)
		return nil, nil
	}

	e.logger.Debug("Operation delivery failed, will retry",
		"operation_id", op.ID,
		"retries", retries,
		"error", sendErr)
	e.persistOperation(op.ID)
	return nil, nil
}

func conflictError(c *models.SyncConflict) error {
	return fmt.Errorf("%w: %s", ErrConflict, c.Description)
}

// fail переводит движок в error и планирует повтор с экспоненциальной задержкой
func (e *Engine) fail(err error) error {
	e.logger.Error("Sync failed", "error", err)
	e.setStatus(models.SyncError)
	e.scheduleRetry()
	return err
}

func (e *Engine) scheduleRetry() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.destroyed {
		return
	}

	delay := RetryDelay(e.cfg.RetryBaseDelay, e.cfg.RetryMaxDelay, e.attempt)
	e.attempt++

	if e.retryTimer != nil {
		e.retryTimer.Stop()
	}
	e.retryTimer = time.AfterFunc(delay, func() {
		if err := e.ProcessQueue(e.ctx); err != nil && !errors.Is(err, ErrConflict) {
			e.logger.Warn("Retry sync failed", "error", err)
		}
	})

	e.logger.Info("Sync retry scheduled", "delay", delay, "attempt", e.attempt)
}

// RetryDelay возвращает min(base * 2^attempt, maxDelay)
func RetryDelay(base, maxDelay time.Duration, attempt int) time.Duration {
	delay := base
	for i := 0; i < attempt && delay < maxDelay; i++ {
		delay *= 2
	}
	return min(delay, maxDelay)
}

// fileConflict добавляет конфликт в набор, удерживает связанную операцию
// и сообщает подписчику
func (e *Engine) fileConflict(c *models.SyncConflict) {
	e.mu.Lock()
	if e.destroyed {
		e.mu.Unlock()
		return
	}
	replaced := false
	for i, existing := range e.conflicts {
		if existing.ID == c.ID {
			e.conflicts[i] = c
			replaced = true
			break
		}
	}
	if !replaced {
		e.conflicts = append(e.conflicts, c)
	}
	e.mu.Unlock()

	if c.OperationID != "" && e.queue.SetStatus(c.OperationID, models.StatusHeld) {
		e.persistOperation(c.OperationID)
	}
	if e.store != nil {
		if err := e.store.SaveConflict(e.ctx, c); err != nil {
			e.logger.Warn("Failed to persist conflict", "conflict_id", c.ID, "error", err)
		}
	}

	e.logger.Info("Conflict detected",
		"conflict_id", c.ID,
		"operation_id", c.OperationID,
		"type", c.Type,
		"severity", c.Severity)
	e.events.ConflictDetected(c)
}

// ResolveConflict вычисляет итоговые данные выбранной стратегией и отправляет
// их на сервер. Конфликт и удерживаемая им операция удаляются только после
// успешного ответа.
func (e *Engine) ResolveConflict(ctx context.Context, conflictID string, resolution models.ConflictResolution) (models.Payload, error) {
	e.mu.Lock()
	if e.destroyed {
		e.mu.Unlock()
		return nil, ErrEngineDestroyed
	}
	var c *models.SyncConflict
	for _, existing := range e.conflicts {
		if existing.ID == conflictID {
			c = existing.Clone()
			break
		}
	}
	e.mu.Unlock()

	if c == nil {
		return nil, fmt.Errorf("%w: %s", ErrConflictNotFound, conflictID)
	}

	resolved, err := conflict.Resolve(c, resolution)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve conflict %s: %w", conflictID, err)
	}

	if err := e.transport.ResolveConflict(ctx, conflictID, resolved); err != nil {
		return nil, fmt.Errorf("failed to submit resolution for conflict %s: %w", conflictID, err)
	}

	e.removeConflict(conflictID)
	if c.OperationID != "" {
		e.dropOperation(c.OperationID)
	}

	e.logger.Info("Conflict resolved",
		"conflict_id", conflictID,
		"strategy", resolution.Strategy,
		"reason", resolution.Reason)
	e.events.DataUpdated(resolved)

	return resolved.Clone(), nil
}

func (e *Engine) removeConflict(id string) {
	e.mu.Lock()
	for i, c := range e.conflicts {
		if c.ID == id {
			e.conflicts = append(e.conflicts[:i], e.conflicts[i+1:]...)
			break
		}
	}
	e.mu.Unlock()

	if e.store != nil {
		if err := e.store.DeleteConflict(e.ctx, id); err != nil {
			e.logger.Warn("Failed to delete persisted conflict", "conflict_id", id, "error", err)
		}
	}
}

// ClearSyncQueue удаляет все операции из очереди и хранилища
func (e *Engine) ClearSyncQueue() error {
	e.queue.Clear()
	if e.store != nil {
		if err := e.store.ClearOperations(e.ctx); err != nil {
			return fmt.Errorf("failed to clear persisted operations: %w", err)
		}
	}
	e.logger.Info("Sync queue cleared")
	return nil
}

// ClearConflictQueue удаляет все конфликты вместе с удерживаемыми ими операциями
func (e *Engine) ClearConflictQueue() error {
	e.mu.Lock()
	conflicts := e.conflicts
	e.conflicts = nil
	e.mu.Unlock()

	for _, c := range conflicts {
		if c.OperationID != "" {
			e.dropOperation(c.OperationID)
		}
	}
	if e.store != nil {
		if err := e.store.ClearConflicts(e.ctx); err != nil {
			return fmt.Errorf("failed to clear persisted conflicts: %w", err)
		}
	}
	e.logger.Info("Conflict queue cleared", "count", len(conflicts))
	return nil
}

// Destroy останавливает таймеры и realtime канал, очищает очередь и конфликты
// в памяти и отписывает получателя событий. Сохраненное состояние не трогается.
// Повторный вызов ничего не делает. Не вызывать из обработчиков Listener.
func (e *Engine) Destroy() {
	e.mu.Lock()
	if e.destroyed {
		e.mu.Unlock()
		return
	}
	e.destroyed = true
	if e.retryTimer != nil {
		e.retryTimer.Stop()
		e.retryTimer = nil
	}
	channel := e.channel
	e.channel = nil
	e.conflicts = nil
	e.lastSync = 0
	e.attempt = 0
	e.status = models.SyncIdle
	e.queue.Clear()
	e.mu.Unlock()

	e.cancel()
	if channel != nil {
		channel.Close()
	}
	e.events.Subscribe(nil)

	e.logger.Info("Sync engine destroyed")
}

// setStatus меняет статус и уведомляет подписчика. Повтор того же статуса игнорируется.
func (e *Engine) setStatus(status models.SyncStatus) {
	e.mu.Lock()
	if e.destroyed || e.status == status {
		e.mu.Unlock()
		return
	}
	e.status = status
	e.mu.Unlock()

	e.logger.Debug("Sync status changed", "status", status)
	e.events.StatusChanged(status)
}

// persistOperation сохраняет текущее состояние операции из очереди
func (e *Engine) persistOperation(id string) {
	if e.store == nil {
		return
	}
	op := e.queue.Get(id)
	if op == nil {
		return
	}
	if err := e.store.SaveOperation(e.ctx, op); err != nil {
		e.logger.Warn("Failed to persist operation", "operation_id", id, "error", err)
	}
}

// dropOperation удаляет операцию из очереди и хранилища
func (e *Engine) dropOperation(id string) {
	e.queue.Remove(id)
	if e.store == nil {
		return
	}
	if err := e.store.DeleteOperation(e.ctx, id); err != nil {
		e.logger.Warn("Failed to delete persisted operation", "operation_id", id, "error", err)
	}
}

func (e *Engine) saveLastSync(ts int64) {
	if e.store == nil {
		return
	}
	if err := e.store.SaveLastSyncTimestamp(e.ctx, ts); err != nil {
		e.logger.Warn("Failed to save last sync timestamp", "error", err)
	}
}

