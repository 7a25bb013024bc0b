package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gridsync/internal/server/storage"
)

func setupTestStorage(t *testing.T) *Storage {
	t.Helper()

	// Используем in-memory database для тестов
	s, err := New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

func cellItem(userID, value string, ts int64) *storage.Item {
	return &storage.Item{
		UserID: userID,
		ItemID: "row-1",
		Target: "row-1/name",
		Type:   "cell_edit",
		Data: map[string]any{
			"type":      "cell_edit",
			"rowId":     "row-1",
			"columnId":  "name",
			"value":     value,
			"timestamp": ts,
		},
		Timestamp: ts,
	}
}

func TestStorage_SaveItem(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		first     *storage.Item
		second    *storage.Item
		wantSaved bool
		wantValue string
	}{
		{
			name:      "newer value replaces stored",
			first:     cellItem("user-1", "old", 100),
			second:    cellItem("user-1", "new", 200),
			wantSaved: true,
			wantValue: "new",
		},
		{
			name:      "equal timestamp wins",
			first:     cellItem("user-1", "old", 100),
			second:    cellItem("user-1", "same-time", 100),
			wantSaved: true,
			wantValue: "same-time",
		},
		{
			name:      "older value is rejected",
			first:     cellItem("user-1", "server", 200),
			second:    cellItem("user-1", "stale", 100),
			wantSaved: false,
			wantValue: "server",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := setupTestStorage(t)

			saved, current, err := s.SaveItem(ctx, tt.first)
			require.NoError(t, err)
			require.True(t, saved)
			assert.Nil(t, current)

			saved, current, err = s.SaveItem(ctx, tt.second)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSaved, saved)

			if !tt.wantSaved {
				require.NotNil(t, current)
				assert.Equal(t, tt.wantValue, current.Data["value"])
				assert.Equal(t, tt.first.Timestamp, current.Timestamp)
			}

			stored, err := s.GetItem(ctx, "user-1", "row-1/name")
			require.NoError(t, err)
			assert.Equal(t, tt.wantValue, stored.Data["value"])
		})
	}
}

func TestStorage_SaveItem_UsersIsolated(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	saved, _, err := s.SaveItem(ctx, cellItem("user-1", "a", 200))
	require.NoError(t, err)
	require.True(t, saved)

	// Старая правка другого пользователя не конфликтует
	saved, _, err = s.SaveItem(ctx, cellItem("user-2", "b", 100))
	require.NoError(t, err)
	assert.True(t, saved)

	item, err := s.GetItem(ctx, "user-2", "row-1/name")
	require.NoError(t, err)
	assert.Equal(t, "b", item.Data["value"])
	assert.Equal(t, "user-2", item.UserID)
	assert.Equal(t, "row-1", item.ItemID)
	assert.Equal(t, "cell_edit", item.Type)
	assert.False(t, item.Deleted)
}

func TestStorage_GetItem_NotFound(t *testing.T) {
	s := setupTestStorage(t)

	_, err := s.GetItem(context.Background(), "user-1", "missing")
	assert.ErrorIs(t, err, storage.ErrItemNotFound)
}

func TestStorage_PutItem_Unconditional(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	_, _, err := s.SaveItem(ctx, cellItem("user-1", "server", 500))
	require.NoError(t, err)

	require.NoError(t, s.PutItem(ctx, cellItem("user-1", "resolved", 100)))

	item, err := s.GetItem(ctx, "user-1", "row-1/name")
	require.NoError(t, err)
	assert.Equal(t, "resolved", item.Data["value"])
	assert.Equal(t, int64(100), item.Timestamp)
}

func TestStorage_DeleteItem(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	older := cellItem("user-1", "a", 100)
	newer := cellItem("user-1", "b", 300)
	newer.Target = "row-1/status"
	other := cellItem("user-1", "c", 100)
	other.ItemID = "row-2"
	other.Target = "row-2/name"

	for _, item := range []*storage.Item{older, newer, other} {
		_, _, err := s.SaveItem(ctx, item)
		require.NoError(t, err)
	}

	n, err := s.DeleteItem(ctx, "user-1", "row-1", 200)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	item, err := s.GetItem(ctx, "user-1", "row-1/name")
	require.NoError(t, err)
	assert.True(t, item.Deleted)
	assert.Equal(t, int64(200), item.Timestamp)

	// Правка, сделанная после удаления, сохраняется
	item, err = s.GetItem(ctx, "user-1", "row-1/status")
	require.NoError(t, err)
	assert.False(t, item.Deleted)

	item, err = s.GetItem(ctx, "user-1", "row-2/name")
	require.NoError(t, err)
	assert.False(t, item.Deleted)

	// Повторное удаление ничего не меняет
	n, err = s.DeleteItem(ctx, "user-1", "row-1", 200)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestStorage_SaveResolution(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	r := &storage.Resolution{
		ConflictID: "conflict-1",
		UserID:     "user-1",
		Target:     "row-1/name",
		Data:       map[string]any{"value": "first"},
		Timestamp:  100,
	}
	require.NoError(t, s.SaveResolution(ctx, r))

	r.Data = map[string]any{"value": "second"}
	r.Timestamp = 200
	require.NoError(t, s.SaveResolution(ctx, r))

	var count int
	var data string
	var ts int64
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), MAX(data), MAX(timestamp) FROM resolutions WHERE user_id = ? AND conflict_id = ?`,
		"user-1", "conflict-1",
	).Scan(&count, &data, &ts)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.JSONEq(t, `{"value":"second"}`, data)
	assert.Equal(t, int64(200), ts)
}

func TestStorage_FileDatabaseSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "server.db")

	s, err := New(ctx, dbPath)
	require.NoError(t, err)
	_, _, err = s.SaveItem(ctx, cellItem("user-1", "kept", 100))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	// Миграции повторно не применяются, данные на месте
	s, err = New(ctx, dbPath)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	require.NoError(t, s.Ping(ctx))
	item, err := s.GetItem(ctx, "user-1", "row-1/name")
	require.NoError(t, err)
	assert.Equal(t, "kept", item.Data["value"])
}
