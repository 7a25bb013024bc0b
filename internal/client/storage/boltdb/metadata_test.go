package boltdb

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/gridsync/internal/client/storage"
)

// createTestStorage создает временное BoltDB хранилище с buckets
func createTestStorage(t *testing.T) (*Storage, func()) {
	t.Helper()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "gridsync_test.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)

	cleanup := func() {
		require.NoError(t, store.Close())
		require.NoError(t, os.RemoveAll(tmpDir))
	}

	return store, cleanup
}

func TestLastSyncTimestamp_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	// До первой синхронизации
	ts, err := store.GetLastSyncTimestamp(ctx)
	require.NoError(t, err)
	assert.Zero(t, ts)

	drainedAt := time.Date(2024, 3, 15, 9, 30, 0, 123_000_000, time.UTC).UnixMilli()
	require.NoError(t, store.SaveLastSyncTimestamp(ctx, drainedAt))

	got, err := store.GetLastSyncTimestamp(ctx)
	require.NoError(t, err)
	assert.Equal(t, drainedAt, got)

	// Следующая отправка перезаписывает значение
	next := drainedAt + 30_000
	require.NoError(t, store.SaveLastSyncTimestamp(ctx, next))

	got, err = store.GetLastSyncTimestamp(ctx)
	require.NoError(t, err)
	assert.Equal(t, next, got)
}

func TestLastSyncTimestamp_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "gridsync_test.db")
	drainedAt := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC).UnixMilli()

	first, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, first.SaveLastSyncTimestamp(ctx, drainedAt))
	require.NoError(t, first.Close())

	second, err := New(ctx, dbPath)
	require.NoError(t, err)
	defer func() { require.NoError(t, second.Close()) }()

	got, err := second.GetLastSyncTimestamp(ctx)
	require.NoError(t, err)
	assert.Equal(t, drainedAt, got)
}

func TestLastSyncTimestamp_ClosedStorage(t *testing.T) {
	ctx := context.Background()
	store, err := New(ctx, filepath.Join(t.TempDir(), "gridsync_test.db"))
	require.NoError(t, err)
	require.NoError(t, store.Close())

	assert.ErrorIs(t, store.SaveLastSyncTimestamp(ctx, 42), storage.ErrStorageClosed)

	ts, err := store.GetLastSyncTimestamp(ctx)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
	assert.Zero(t, ts)

	// Повторный Close не падает
	assert.NoError(t, store.Close())
}

func TestLastSyncTimestamp_BucketMissing(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	require.NoError(t, store.db.Update(func(tx *bbolt.Tx) error {
		return tx.DeleteBucket(bucketMetadata)
	}))

	_, err := store.GetLastSyncTimestamp(ctx)
	assert.ErrorIs(t, err, errMetadataBucketMissing)

	assert.ErrorIs(t, store.SaveLastSyncTimestamp(ctx, 42), errMetadataBucketMissing)
}
