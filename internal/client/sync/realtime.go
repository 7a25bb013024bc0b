package sync

import (
	"github.com/google/uuid"

	"github.com/iudanet/gridsync/internal/models"
	"github.com/iudanet/gridsync/internal/validation"
	"github.com/iudanet/gridsync/pkg/api"
)

// OnOpen вызывается realtime каналом после подключения
func (e *Engine) OnOpen() {
	e.setStatus(models.SyncConnected)
}

// OnClose вызывается realtime каналом при разрыве соединения
func (e *Engine) OnClose(err error) {
	e.setStatus(models.SyncDisconnected)
}

// OnMessage передает сообщение realtime канала в HandleRealtimeMessage
func (e *Engine) OnMessage(msg api.RealtimeMessage) {
	e.HandleRealtimeMessage(msg)
}

// HandleRealtimeMessage обрабатывает входящее сообщение по его типу.
// Входящие данные проходят те же проверки, что и исходящие.
func (e *Engine) HandleRealtimeMessage(msg api.RealtimeMessage) {
	e.mu.Lock()
	destroyed := e.destroyed
	e.mu.Unlock()
	if destroyed {
		return
	}

	switch msg.Type {
	case api.MessageDataUpdate:
		e.handleDataUpdate(msg)
	case api.MessageConflictDetected:
		e.handleConflictMessage(msg)
	case api.MessageSyncStatus:
		e.handleSyncStatus(msg)
	default:
		e.logger.Warn("Ignoring realtime message of unknown type", "type", msg.Type)
	}
}

func (e *Engine) handleDataUpdate(msg api.RealtimeMessage) {
	if msg.Data == nil {
		e.logger.Warn("Dropping data update without data")
		return
	}
	payload := models.Payload(msg.Data)
	e.observe(msg.Timestamp)

	if e.cfg.EnableDataValidation {
		check := validation.CheckAt(payload, e.now())
		if !check.IsValid {
			e.logger.Warn("Dropping inbound update with invalid payload", "violations", check.Violations)
			e.events.IntegrityViolation(check, payload)
			return
		}
	}

	if e.cfg.EnableConflictResolution {
		e.mu.Lock()
		lastSync := e.lastSync
		e.mu.Unlock()

		if c := e.detector.Detect("", payload, lastSync); c != nil {
			// Обновление не применяется до разрешения конфликта
			e.fileConflict(c)
			return
		}
	}

	e.logger.Debug("Applying inbound update", "type", payload.Type())
	e.events.DataUpdated(payload)
}

func (e *Engine) handleConflictMessage(msg api.RealtimeMessage) {
	if msg.Conflict == nil {
		e.logger.Warn("Dropping conflict message without conflict")
		return
	}
	rc := msg.Conflict

	c := &models.SyncConflict{
		ID:          rc.ID,
		OperationID: rc.OperationID,
		Type:        models.ConflictType(rc.Type),
		LocalData:   models.Payload(rc.LocalData).Clone(),
		RemoteData:  models.Payload(rc.RemoteData).Clone(),
		DetectedAt:  e.now(),
		Description: rc.Description,
		Severity:    models.ParseSeverity(rc.Severity),
	}
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.Type != models.ConflictTimestamp {
		c.Type = models.ConflictData
	}

	e.fileConflict(c)
}

func (e *Engine) handleSyncStatus(msg api.RealtimeMessage) {
	e.observe(msg.Timestamp)
	if msg.Timestamp > 0 {
		e.mu.Lock()
		e.lastSync = msg.Timestamp
		e.mu.Unlock()
		e.saveLastSync(msg.Timestamp)
	}

	if msg.Status == "" {
		return
	}
	status, ok := models.ParseSyncStatus(msg.Status)
	if !ok {
		e.logger.Warn("Ignoring unknown sync status", "status", msg.Status)
		return
	}
	e.setStatus(status)
}
