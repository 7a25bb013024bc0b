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

// SaveConflict stores or replaces an open conflict in BoltDB
func (s *Storage) SaveConflict(ctx context.Context, conflict *models.SyncConflict) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(conflict)
	if err != nil {
		return fmt.Errorf("failed to marshal conflict: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(bucketConflicts)
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		return bucket.Put([]byte(conflict.ID), data)
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// DeleteConflict removes a conflict from BoltDB
func (s *Storage) DeleteConflict(ctx context.Context, id string) error {
	return s.deleteKey(bucketConflicts, id)
}

// LoadConflicts returns all stored conflicts ordered by detection time
func (s *Storage) LoadConflicts(ctx context.Context) ([]*models.SyncConflict, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	conflicts := make([]*models.SyncConflict, 0)

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketConflicts)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var c models.SyncConflict
			if err := json.Unmarshal(v, &c); err != nil {
				return fmt.Errorf("failed to unmarshal conflict %s: %w", k, err)
			}
			conflicts = append(conflicts, &c)
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to load conflicts: %w", err)
	}

	sort.SliceStable(conflicts, func(i, j int) bool {
		return conflicts[i].DetectedAt.Before(conflicts[j].DetectedAt)
	})

	return conflicts, nil
}

// ClearConflicts removes all stored conflicts
func (s *Storage) ClearConflicts(ctx context.Context) error {
	return s.clearBucket(bucketConflicts)
}
