package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/gridsync/internal/client/sync"
	"github.com/iudanet/gridsync/internal/conflict"
)

func (c *Cli) runSync(ctx context.Context) error {
	before := c.engine.Status()
	if before.QueueSize == 0 {
		c.io.Println("Nothing to synchronize.")
		return nil
	}

	c.io.Printf("Synchronizing %d queued operation(s)...\n", before.QueueSize)

	err := c.engine.ForceSync(ctx)
	after := c.engine.Status()

	if err != nil && !errors.Is(err, sync.ErrConflict) {
		return fmt.Errorf("synchronization failed: %w", err)
	}

	c.io.Println()
	c.io.Printf("Status:     %s\n", after.Status)
	c.io.Printf("Remaining:  %d\n", after.QueueSize)
	c.io.Printf("Conflicts:  %d\n", after.ConflictCount)

	if err != nil {
		// Конфликты не ошибка механизма, но команда завершается неуспешно
		c.io.Println()
		c.io.Println("Conflicts detected:")
		for _, cf := range c.engine.Conflicts() {
			c.io.Printf("  %s  %s\n", cf.ID, conflict.Summary(cf))
		}
		c.io.Println("Run 'gridsync resolve <conflict-id> --strategy <strategy>' to resolve.")
		return fmt.Errorf("synchronization finished with conflicts: %w", err)
	}

	c.io.Println("✓ Synchronization completed")
	return nil
}
