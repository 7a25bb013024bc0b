package storage

import (
	"context"
	"time"
)

// Item последнее принятое значение одной цели правки.
// Target ключ цели: строка и колонка для ячейки, строка и индекс для спецификации,
// иначе сам ItemID.
type Item struct {
	Data      map[string]any
	UpdatedAt time.Time
	UserID    string
	ItemID    string
	Target    string
	Type      string
	Timestamp int64
	Deleted   bool
}

// Resolution запись о разрешенном конфликте
type Resolution struct {
	Data       map[string]any
	CreatedAt  time.Time
	ConflictID string
	UserID     string
	Target     string
	Timestamp  int64
}

// ItemStorage defines interface for synchronized item persistence
type ItemStorage interface {
	// SaveItem stores the item unless the stored value for the same target is newer.
	// Returns saved=false and the stored item when the incoming timestamp is older.
	SaveItem(ctx context.Context, item *Item) (saved bool, current *Item, err error)

	// PutItem stores the item unconditionally (used for conflict resolutions)
	PutItem(ctx context.Context, item *Item) error

	// GetItem retrieves the stored value for a target
	// Returns ErrItemNotFound if nothing is stored
	GetItem(ctx context.Context, userID, target string) (*Item, error)

	// DeleteItem marks every target of the item deleted if it is not newer than timestamp.
	// Returns the number of targets marked.
	DeleteItem(ctx context.Context, userID, itemID string, timestamp int64) (int, error)

	// SaveResolution records a conflict resolution.
	// Repeated resolution of the same conflict replaces the record.
	SaveResolution(ctx context.Context, r *Resolution) error
}
