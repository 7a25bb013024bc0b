package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-json"

	"github.com/iudanet/gridsync/internal/conflict"
	"github.com/iudanet/gridsync/internal/models"
)

// ResolveOptions параметры команды resolve
type ResolveOptions struct {
	Strategy string
	Data     string // Data JSON объект для стратегии manual
	Reason   string
}

func (c *Cli) runConflicts() error {
	conflicts := c.engine.Conflicts()
	if len(conflicts) == 0 {
		c.io.Println("No conflicts.")
		return nil
	}

	c.io.Printf("=== Conflicts (%d) ===\n", len(conflicts))
	for _, cf := range conflicts {
		c.io.Println()
		c.io.Printf("ID:        %s\n", cf.ID)
		c.io.Printf("Type:      %s (%s)\n", cf.Type, cf.Severity)
		if cf.OperationID != "" {
			c.io.Printf("Operation: %s\n", cf.OperationID)
		}
		c.io.Printf("Detected:  %s\n", cf.DetectedAt.Format("2006-01-02 15:04:05"))
		c.io.Printf("Summary:   %s\n", conflict.Summary(cf))
	}
	return nil
}

// ParseResolution собирает ConflictResolution из флагов
func ParseResolution(opts ResolveOptions) (models.ConflictResolution, error) {
	res := models.ConflictResolution{
		Strategy: models.ResolutionStrategy(strings.ToLower(opts.Strategy)),
		Reason:   opts.Reason,
	}

	switch res.Strategy {
	case models.StrategyUseLocal, models.StrategyUseRemote, models.StrategyMerge:
	case models.StrategyManual:
		if opts.Data == "" {
			return res, fmt.Errorf("strategy manual requires --data")
		}
		var data models.Payload
		if err := json.Unmarshal([]byte(opts.Data), &data); err != nil {
			return res, fmt.Errorf("failed to parse --data: %w", err)
		}
		res.ManualData = data
	default:
		return res, fmt.Errorf("unknown strategy %q: use use_local, use_remote, merge or manual", opts.Strategy)
	}

	return res, nil
}

func (c *Cli) runResolve(ctx context.Context, conflictID string, opts ResolveOptions) error {
	resolution, err := ParseResolution(opts)
	if err != nil {
		return err
	}

	resolved, err := c.engine.ResolveConflict(ctx, conflictID, resolution)
	if err != nil {
		return fmt.Errorf("failed to resolve conflict %s: %w", conflictID, err)
	}

	c.io.Printf("✓ Conflict %s resolved with %s\n", conflictID, resolution.Strategy)
	c.io.Printf("Result: %s\n", conflict.FormatValue(resolved))
	return nil
}

func (c *Cli) runClearQueue() error {
	n := len(c.engine.Operations())
	if err := c.engine.ClearSyncQueue(); err != nil {
		return fmt.Errorf("failed to clear sync queue: %w", err)
	}
	c.io.Printf("✓ Removed %d queued operation(s)\n", n)
	return nil
}

func (c *Cli) runClearConflicts() error {
	n := len(c.engine.Conflicts())
	if err := c.engine.ClearConflictQueue(); err != nil {
		return fmt.Errorf("failed to clear conflicts: %w", err)
	}
	c.io.Printf("✓ Removed %d conflict(s)\n", n)
	return nil
}
