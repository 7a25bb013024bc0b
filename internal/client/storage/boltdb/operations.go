package boltdb

import (
	"context"
	"fmt"
	"sort"

	"github.com/goccy/go-json"
	"go.etcd.io/bbolt"

	"github.com/iudanet/gridsync/internal/client/storage"
	"github.com/iudanet/gridsync/internal/models"
)

// SaveOperation stores or replaces a pending operation in BoltDB
func (s *Storage) SaveOperation(ctx context.Context, op *models.SyncOperation) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	// Сериализуем операцию в JSON
	data, err := json.Marshal(op)
	if err != nil {
		return fmt.Errorf("failed to marshal operation: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(bucketOperations)
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}

		// Сохраняем по ключу ID
		if err := bucket.Put([]byte(op.ID), data); err != nil {
			return fmt.Errorf("failed to save operation: %w", err)
		}
		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// DeleteOperation removes an operation from BoltDB
func (s *Storage) DeleteOperation(ctx context.Context, id string) error {
	return s.deleteKey(bucketOperations, id)
}

// LoadOperations returns all stored operations ordered by creation time
func (s *Storage) LoadOperations(ctx context.Context) ([]*models.SyncOperation, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	ops := make([]*models.SyncOperation, 0)

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketOperations)
		if bucket == nil {
			// Нет bucket - возвращаем пустой массив
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var op models.SyncOperation
			if err := json.Unmarshal(v, &op); err != nil {
				return fmt.Errorf("failed to unmarshal operation %s: %w", k, err)
			}
			ops = append(ops, &op)
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to load operations: %w", err)
	}

	// ID содержит ULID, поэтому при равном времени порядок по ID совпадает с порядком создания
	sort.SliceStable(ops, func(i, j int) bool {
		if ops[i].CreatedAt != ops[j].CreatedAt {
			return ops[i].CreatedAt < ops[j].CreatedAt
		}
		return ops[i].ID < ops[j].ID
	})

	return ops, nil
}

// ClearOperations removes all stored operations
func (s *Storage) ClearOperations(ctx context.Context) error {
	return s.clearBucket(bucketOperations)
}
