package boltdb

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/gridsync/internal/client/storage"
)

var keyLastSyncTimestamp = []byte("last_sync_timestamp")

var errMetadataBucketMissing = errors.New("metadata bucket not found")

// SaveLastSyncTimestamp сохраняет время (unix ms) последней успешной отправки очереди
func (s *Storage) SaveLastSyncTimestamp(ctx context.Context, timestamp int64) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return errMetadataBucketMissing
		}

		buf := make([]byte, 8)
		binary.BigEndian.PutUint64(buf, uint64(timestamp))
		if err := bucket.Put(keyLastSyncTimestamp, buf); err != nil {
			return fmt.Errorf("failed to save last sync timestamp: %w", err)
		}
		return nil
	})
}

// GetLastSyncTimestamp возвращает время последней синхронизации.
// 0 означает, что синхронизаций еще не было.
func (s *Storage) GetLastSyncTimestamp(ctx context.Context) (int64, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	var timestamp int64
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return errMetadataBucketMissing
		}

		buf := bucket.Get(keyLastSyncTimestamp)
		if len(buf) != 8 {
			return nil
		}
		timestamp = int64(binary.BigEndian.Uint64(buf))
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to get last sync timestamp: %w", err)
	}

	return timestamp, nil
}
