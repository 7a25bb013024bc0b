package conflict

import (
	"fmt"

	"github.com/iudanet/gridsync/internal/models"
)

// Resolve вычисляет итоговый payload для конфликта по выбранной стратегии.
// Отправку результата на сервер и удаление конфликта выполняет движок.
func Resolve(c *models.SyncConflict, resolution models.ConflictResolution) (models.Payload, error) {
	switch resolution.Strategy {
	case models.StrategyUseLocal:
		return c.LocalData.Clone(), nil

	case models.StrategyUseRemote:
		if c.RemoteData == nil {
			return nil, ErrRemoteDataMissing
		}
		return c.RemoteData.Clone(), nil

	case models.StrategyManual:
		if resolution.ManualData == nil {
			return nil, ErrManualDataMissing
		}
		return resolution.ManualData.Clone(), nil

	case models.StrategyMerge:
		return Merge(c.LocalData, c.RemoteData), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, resolution.Strategy)
	}
}

// Merge объединяет локальные и удаленные данные в зависимости от типа payload.
// Без удаленных данных возвращается локальная версия.
func Merge(local, remote models.Payload) models.Payload {
	if remote == nil {
		return local.Clone()
	}

	switch local.Type() {
	case models.PayloadCellEdit:
		return MergeCellEdit(local, remote)
	case models.PayloadSpecificationEdit:
		return MergeSpecificationEdit(local, remote)
	default:
		return local.Clone()
	}
}

// MergeCellEdit last-writer-wins на уровне всей записи:
// побеждает payload с большим timestamp, при равенстве - локальный.
func MergeCellEdit(local, remote models.Payload) models.Payload {
	localTS, _ := local.Int64("timestamp")
	remoteTS, _ := remote.Int64("timestamp")

	if remoteTS > localTS {
		return remote.Clone()
	}
	return local.Clone()
}

// MergeSpecificationEdit поверхностное слияние: локальные поля перекрывают
// удаленные, timestamp = max(local, remote).
func MergeSpecificationEdit(local, remote models.Payload) models.Payload {
	merged := remote.Clone()
	if merged == nil {
		merged = make(models.Payload, len(local))
	}
	for k, v := range local.Clone() {
		merged[k] = v
	}

	localTS, _ := local.Int64("timestamp")
	remoteTS, _ := remote.Int64("timestamp")
	merged["timestamp"] = max(localTS, remoteTS)

	return merged
}
