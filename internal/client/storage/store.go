package storage

//go:generate moq -out store_mock.go . Store

// Store объединяет все хранилища, которые использует движок синхронизации.
// boltdb.Storage реализует его целиком.
type Store interface {
	OperationStorage
	ConflictStorage
	MetadataStorage
}
