package sync

import "errors"

var (
	// ErrConflict операция не доставлена из-за конфликта и ждет разрешения
	ErrConflict = errors.New("sync conflict detected")

	// ErrConflictNotFound конфликт с указанным ID отсутствует
	ErrConflictNotFound = errors.New("conflict not found")

	// ErrEngineDestroyed движок уже остановлен через Destroy
	ErrEngineDestroyed = errors.New("sync engine destroyed")

	// ErrInvalidOperation неизвестный тип операции или приоритет
	ErrInvalidOperation = errors.New("invalid operation")
)
