package validation

import (
	"fmt"
	"regexp"
)

// UserIDPattern допустимый формат идентификатора пользователя в токене.
// Латинские буквы, цифры и символы _ . @ -
var UserIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_.@-]+$`)

const (
	// MinUserIDLen минимальная длина user id
	MinUserIDLen = 3
	// MaxUserIDLen максимальная длина user id
	MaxUserIDLen = 64
	// MinSecretLen минимальная длина секрета подписи токенов
	MinSecretLen = 16
)

// ValidateUserID проверяет идентификатор пользователя, для которого выпускается токен
func ValidateUserID(userID string) error {
	if userID == "" {
		return fmt.Errorf("user id cannot be empty")
	}

	if len(userID) < MinUserIDLen {
		return fmt.Errorf("user id must be at least %d characters long", MinUserIDLen)
	}

	if len(userID) > MaxUserIDLen {
		return fmt.Errorf("user id must not exceed %d characters", MaxUserIDLen)
	}

	if !UserIDPattern.MatchString(userID) {
		return fmt.Errorf("user id can only contain letters, numbers, and the characters _ . @ -")
	}

	return nil
}

// ValidateSecret проверяет минимальные требования к секрету подписи JWT
func ValidateSecret(secret string) error {
	if secret == "" {
		return fmt.Errorf("secret cannot be empty")
	}

	if len(secret) < MinSecretLen {
		return fmt.Errorf("secret must be at least %d characters long", MinSecretLen)
	}

	return nil
}
