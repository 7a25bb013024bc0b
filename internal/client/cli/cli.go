package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/iudanet/gridsync/internal/client/events"
	"github.com/iudanet/gridsync/internal/client/iocli"
	"github.com/iudanet/gridsync/internal/models"
)

//go:generate moq -out engine_mock.go . Engine

// Engine операции движка синхронизации, которые использует CLI.
// sync.Engine реализует его целиком.
type Engine interface {
	Start(ctx context.Context) error
	Subscribe(l events.Listener)
	EnqueueCellEdit(rowID, columnID string, value any, priority models.Priority) (*models.SyncOperation, error)
	EnqueueSpecificationEdit(rowID string, specIndex int, key, value string, priority models.Priority) (*models.SyncOperation, error)
	ForceSync(ctx context.Context) error
	Status() models.StatusSnapshot
	Operations() []*models.SyncOperation
	Conflicts() []*models.SyncConflict
	ResolveConflict(ctx context.Context, conflictID string, resolution models.ConflictResolution) (models.Payload, error)
	ClearSyncQueue() error
	ClearConflictQueue() error
	Destroy()
}

// Cli выполняет команды поверх движка синхронизации
type Cli struct {
	io     iocli.IO
	engine Engine
}

// New создает Cli
func New(io iocli.IO, engine Engine) *Cli {
	return &Cli{
		io:     io,
		engine: engine,
	}
}

// ParseCellValue разбирает значение ячейки из командной строки.
// Для колонок периодов принимается planned, actual, planned+actual или "-".
// Для остальных колонок целые и дробные числа и true/false приводятся
// к типу, прочее остается строкой.
func ParseCellValue(columnID, raw string) (any, error) {
	if strings.HasPrefix(columnID, models.PeriodColumnPrefix) {
		var v models.CellValue
		switch strings.ToLower(strings.TrimSpace(raw)) {
		case "-", "none", "":
		case "planned":
			v.Planned = true
		case "actual":
			v.Actual = true
		case "planned+actual", "both":
			v.Planned = true
			v.Actual = true
		default:
			return nil, fmt.Errorf("invalid period value %q: use planned, actual, planned+actual or -", raw)
		}
		return v, nil
	}

	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return i, nil
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f, nil
	}
	if b, err := strconv.ParseBool(raw); err == nil {
		return b, nil
	}
	return raw, nil
}

// ParsePriority проверяет приоритет из флага
func ParsePriority(raw string) (models.Priority, error) {
	p := models.Priority(strings.ToLower(raw))
	if !p.Valid() {
		return "", fmt.Errorf("invalid priority %q: use high, normal or low", raw)
	}
	return p, nil
}
