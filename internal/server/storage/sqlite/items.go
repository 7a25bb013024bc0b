package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"github.com/iudanet/gridsync/internal/server/storage"
)

var _ storage.ItemStorage = (*Storage)(nil)

// SaveItem stores the item unless the stored value for the same target is newer.
// Equal timestamps are accepted (last write wins).
func (s *Storage) SaveItem(ctx context.Context, item *storage.Item) (bool, *storage.Item, error) {
	data, err := json.Marshal(item.Data)
	if err != nil {
		return false, nil, fmt.Errorf("failed to marshal item data: %w", err)
	}

	// Обновление выполняется только если входящая версия не старше сохраненной
	query := `
		INSERT INTO items (user_id, target, item_id, type, data, timestamp, deleted, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id, target) DO UPDATE SET
			item_id = excluded.item_id,
			type = excluded.type,
			data = excluded.data,
			timestamp = excluded.timestamp,
			deleted = excluded.deleted,
			updated_at = excluded.updated_at
		WHERE excluded.timestamp >= items.timestamp
	`

	res, err := s.db.ExecContext(ctx, query,
		item.UserID,
		item.Target,
		item.ItemID,
		item.Type,
		string(data),
		item.Timestamp,
		boolToInt(item.Deleted),
		time.Now().Unix(),
	)
	if err != nil {
		return false, nil, fmt.Errorf("failed to save item: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, nil, fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected > 0 {
		return true, nil, nil
	}

	current, err := s.GetItem(ctx, item.UserID, item.Target)
	if err != nil {
		return false, nil, fmt.Errorf("failed to load current item: %w", err)
	}
	return false, current, nil
}

// PutItem stores the item unconditionally
func (s *Storage) PutItem(ctx context.Context, item *storage.Item) error {
	data, err := json.Marshal(item.Data)
	if err != nil {
		return fmt.Errorf("failed to marshal item data: %w", err)
	}

	query := `
		INSERT INTO items (user_id, target, item_id, type, data, timestamp, deleted, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id, target) DO UPDATE SET
			item_id = excluded.item_id,
			type = excluded.type,
			data = excluded.data,
			timestamp = excluded.timestamp,
			deleted = excluded.deleted,
			updated_at = excluded.updated_at
	`

	_, err = s.db.ExecContext(ctx, query,
		item.UserID,
		item.Target,
		item.ItemID,
		item.Type,
		string(data),
		item.Timestamp,
		boolToInt(item.Deleted),
		time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to put item: %w", err)
	}
	return nil
}

// GetItem retrieves the stored value for a target, including deleted ones
func (s *Storage) GetItem(ctx context.Context, userID, target string) (*storage.Item, error) {
	query := `
		SELECT user_id, target, item_id, type, data, timestamp, deleted, updated_at
		FROM items
		WHERE user_id = ? AND target = ?
	`

	item := &storage.Item{}
	var data string
	var deleted int
	var updatedAt int64

	err := s.db.QueryRowContext(ctx, query, userID, target).Scan(
		&item.UserID,
		&item.Target,
		&item.ItemID,
		&item.Type,
		&data,
		&item.Timestamp,
		&deleted,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	if err := json.Unmarshal([]byte(data), &item.Data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item data: %w", err)
	}
	item.Deleted = intToBool(deleted)
	item.UpdatedAt = unixToTime(updatedAt)

	return item, nil
}

// DeleteItem marks every target of the item deleted unless it was changed after timestamp
func (s *Storage) DeleteItem(ctx context.Context, userID, itemID string, timestamp int64) (int, error) {
	query := `
		UPDATE items
		SET deleted = 1, timestamp = ?, updated_at = ?
		WHERE user_id = ? AND item_id = ? AND deleted = 0 AND timestamp <= ?
	`

	res, err := s.db.ExecContext(ctx, query, timestamp, time.Now().Unix(), userID, itemID, timestamp)
	if err != nil {
		return 0, fmt.Errorf("failed to delete item: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return int(affected), nil
}

// SaveResolution records a conflict resolution, replacing an earlier record for the same conflict
func (s *Storage) SaveResolution(ctx context.Context, r *storage.Resolution) error {
	data, err := json.Marshal(r.Data)
	if err != nil {
		return fmt.Errorf("failed to marshal resolution data: %w", err)
	}

	createdAt := r.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	query := `
		INSERT OR REPLACE INTO resolutions (conflict_id, user_id, target, data, timestamp, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	if _, err := s.db.ExecContext(ctx, query,
		r.ConflictID,
		r.UserID,
		r.Target,
		string(data),
		r.Timestamp,
		createdAt.Unix(),
	); err != nil {
		return fmt.Errorf("failed to save resolution: %w", err)
	}
	return nil
}

// boolToInt converts bool to int for SQLite storage
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts int from SQLite to bool
func intToBool(i int) bool {
	return i != 0
}

// unixToTime converts Unix timestamp to time.Time
func unixToTime(unix int64) time.Time {
	return time.Unix(unix, 0)
}
