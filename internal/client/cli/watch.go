package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/iudanet/gridsync/internal/client/events"
	"github.com/iudanet/gridsync/internal/conflict"
	"github.com/iudanet/gridsync/internal/models"
)

// watchListener печатает события движка по одной строке
func (c *Cli) watchListener() events.Listener {
	return events.Handlers{
		StatusChange: func(status models.SyncStatus) {
			c.io.Printf("[status] %s\n", status)
		},
		ConflictDetected: func(cf *models.SyncConflict) {
			c.io.Printf("[conflict] %s %s\n", cf.ID, conflict.Summary(cf))
		},
		DataUpdated: func(payload models.Payload) {
			c.io.Printf("[update] %s %s\n", payload.Type(), conflict.FormatValue(payload))
		},
		IntegrityViolation: func(check models.DataIntegrityCheck, payload models.Payload) {
			c.io.Printf("[invalid] %s: %s\n", payload.Type(), strings.Join(check.Violations, "; "))
		},
		OperationFailed: func(op *models.SyncOperation, err error) {
			c.io.Printf("[failed] %s: %v\n", op.ID, err)
		},
	}
}

// runWatch запускает движок и печатает события до отмены ctx
func (c *Cli) runWatch(ctx context.Context) error {
	c.engine.Subscribe(c.watchListener())

	if err := c.engine.Start(ctx); err != nil {
		return fmt.Errorf("failed to start sync engine: %w", err)
	}

	c.io.Println("Watching for changes. Press Ctrl+C to stop.")
	<-ctx.Done()
	c.io.Println("Stopped.")
	return nil
}
