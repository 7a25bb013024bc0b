package crypto

import (
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"github.com/goccy/go-json"
	"golang.org/x/crypto/blake2b"
)

// Checksum вычисляет BLAKE2b-256 от JSON представления данных и возвращает hex строку.
// Ключи map сериализуются в отсортированном порядке, поэтому клиент и сервер
// получают одинаковый результат для одинаковых данных.
func Checksum(data map[string]any) (string, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("failed to marshal payload: %w", err)
	}
	return ChecksumBytes(raw), nil
}

// ChecksumBytes вычисляет BLAKE2b-256 от произвольных байт
func ChecksumBytes(raw []byte) string {
	sum := blake2b.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

// VerifyChecksum проверяет, что checksum соответствует данным.
// Сравнение выполняется за постоянное время.
func VerifyChecksum(data map[string]any, checksum string) error {
	if checksum == "" {
		return fmt.Errorf("checksum cannot be empty")
	}

	computed, err := Checksum(data)
	if err != nil {
		return fmt.Errorf("failed to compute checksum: %w", err)
	}

	if subtle.ConstantTimeCompare([]byte(computed), []byte(checksum)) != 1 {
		return fmt.Errorf("payload checksum mismatch")
	}

	return nil
}
