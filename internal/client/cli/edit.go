package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/iudanet/gridsync/internal/models"
)

// EditOptions общие параметры команд правки
type EditOptions struct {
	Priority models.Priority
	Sync     bool // Sync отправить очередь сразу после постановки
}

func (c *Cli) runEditCell(ctx context.Context, args []string, opts EditOptions) error {
	if len(args) != 3 {
		return fmt.Errorf("usage: edit-cell <row-id> <column-id> <value>")
	}
	rowID, columnID := args[0], args[1]

	value, err := ParseCellValue(columnID, args[2])
	if err != nil {
		return err
	}

	op, err := c.engine.EnqueueCellEdit(rowID, columnID, value, opts.Priority)
	if err != nil {
		return fmt.Errorf("failed to queue cell edit: %w", err)
	}
	c.io.Printf("Queued %s (%s priority)\n", op.ID, op.Priority)

	return c.afterEdit(ctx, opts)
}

func (c *Cli) runEditSpec(ctx context.Context, args []string, opts EditOptions) error {
	if len(args) != 4 {
		return fmt.Errorf("usage: edit-spec <row-id> <spec-index> <key> <value>")
	}

	specIndex, err := strconv.Atoi(args[1])
	if err != nil || specIndex < 0 {
		return fmt.Errorf("spec index must be a non-negative integer, got %q", args[1])
	}

	op, err := c.engine.EnqueueSpecificationEdit(args[0], specIndex, args[2], args[3], opts.Priority)
	if err != nil {
		return fmt.Errorf("failed to queue specification edit: %w", err)
	}
	c.io.Printf("Queued %s (%s priority)\n", op.ID, op.Priority)

	return c.afterEdit(ctx, opts)
}

func (c *Cli) afterEdit(ctx context.Context, opts EditOptions) error {
	if !opts.Sync {
		c.io.Println("Run 'gridsync sync' to send queued changes.")
		return nil
	}
	return c.runSync(ctx)
}
