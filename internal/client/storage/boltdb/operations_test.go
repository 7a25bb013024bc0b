package boltdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gridsync/internal/models"
)

func TestSaveAndLoadOperations(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	// Пустое хранилище возвращает пустой срез, а не nil
	ops, err := store.LoadOperations(ctx)
	require.NoError(t, err)
	assert.NotNil(t, ops)
	assert.Empty(t, ops)

	later := models.NewOperation(models.OperationUpdate, "row-2",
		models.NewCellEditPayload("row-2", "time_2024_02", models.CellValue{Planned: true}, 2000),
		models.PriorityLow, time.UnixMilli(2000))
	earlier := models.NewOperation(models.OperationUpdate, "row-1",
		models.NewSpecificationEditPayload("row-1", 0, "brand", "ACME", 1000),
		models.PriorityHigh, time.UnixMilli(1000))

	require.NoError(t, store.SaveOperation(ctx, later))
	require.NoError(t, store.SaveOperation(ctx, earlier))

	ops, err = store.LoadOperations(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 2)

	// Порядок по времени создания
	assert.Equal(t, earlier.ID, ops[0].ID)
	assert.Equal(t, later.ID, ops[1].ID)

	assert.Equal(t, models.PayloadSpecificationEdit, ops[0].Payload.Type())
	assert.Equal(t, "ACME", ops[0].Payload.String("value"))
	ts, ok := ops[0].Payload.Int64("timestamp")
	assert.True(t, ok)
	assert.Equal(t, int64(1000), ts)

	value, ok := ops[1].Payload["value"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, value["planned"])
	assert.Equal(t, false, value["actual"])
}

func TestSaveOperation_Replaces(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	op := models.NewOperation(models.OperationUpdate, "row-1",
		models.Payload{"type": models.PayloadCellEdit}, models.PriorityNormal, time.UnixMilli(1000))
	require.NoError(t, store.SaveOperation(ctx, op))

	op.Status = models.StatusFailed
	op.RetryCount = 2
	require.NoError(t, store.SaveOperation(ctx, op))

	ops, err := store.LoadOperations(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, models.StatusFailed, ops[0].Status)
	assert.Equal(t, 2, ops[0].RetryCount)
}

func TestDeleteOperation(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	op := models.NewOperation(models.OperationDelete, "row-9",
		models.Payload{"type": models.PayloadItemDelete}, models.PriorityNormal, time.UnixMilli(1000))
	require.NoError(t, store.SaveOperation(ctx, op))

	require.NoError(t, store.DeleteOperation(ctx, op.ID))
	// Повторное удаление не ошибка
	require.NoError(t, store.DeleteOperation(ctx, op.ID))

	ops, err := store.LoadOperations(ctx)
	require.NoError(t, err)
	assert.Empty(t, ops)
}

func TestClearOperations(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	for i := range 5 {
		op := models.NewOperation(models.OperationUpdate, "row", models.Payload{"n": i},
			models.PriorityNormal, time.UnixMilli(int64(1000+i)))
		require.NoError(t, store.SaveOperation(ctx, op))
	}

	require.NoError(t, store.ClearOperations(ctx))

	ops, err := store.LoadOperations(ctx)
	require.NoError(t, err)
	assert.Empty(t, ops)

	// После очистки bucket снова доступен для записи
	op := models.NewOperation(models.OperationUpdate, "row", nil, models.PriorityNormal, time.UnixMilli(1))
	require.NoError(t, store.SaveOperation(ctx, op))
}
