package cli

import (
	"time"
)

func (c *Cli) runStatus() error {
	snapshot := c.engine.Status()

	c.io.Println("=== Sync Status ===")
	c.io.Println()
	c.io.Printf("Status:     %s\n", snapshot.Status)
	c.io.Printf("Queue:      %d operation(s)\n", snapshot.QueueSize)
	c.io.Printf("Conflicts:  %d\n", snapshot.ConflictCount)

	if snapshot.LastSyncTimestamp > 0 {
		lastSync := time.UnixMilli(snapshot.LastSyncTimestamp)
		c.io.Printf("Last sync:  %s\n", lastSync.Format(time.RFC3339))
	} else {
		c.io.Println("Last sync:  never")
	}

	ops := c.engine.Operations()
	if len(ops) == 0 {
		return nil
	}

	c.io.Println()
	c.io.Println("Pending operations (in send order):")
	for _, op := range ops {
		c.io.Printf("  %-8s %-7s %-8s retries=%d  %s\n",
			op.Status, op.Priority, op.Payload.Type(), op.RetryCount, op.ID)
	}

	return nil
}
