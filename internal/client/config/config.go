package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvAuthToken переменная окружения, переопределяющая auth_token из файла
const EnvAuthToken = "GRIDSYNC_AUTH_TOKEN"

// DefaultFileName имя конфигурационного файла по умолчанию
const DefaultFileName = "gridsync.yaml"

// Config конфигурация движка синхронизации.
// Все поля проверяются Validate до создания движка.
type Config struct {
	RealtimeURL              string        `yaml:"realtime_url"`
	APIBaseURL               string        `yaml:"api_base_url"`
	AuthToken                string        `yaml:"auth_token"`
	DBPath                   string        `yaml:"db_path,omitempty"`
	PollingInterval          time.Duration `yaml:"polling_interval"`
	RetryBaseDelay           time.Duration `yaml:"retry_base_delay"`
	RetryMaxDelay            time.Duration `yaml:"retry_max_delay"`
	ReconnectDelay           time.Duration `yaml:"reconnect_delay"`
	RequestTimeout           time.Duration `yaml:"request_timeout"`
	MaxRetries               int           `yaml:"max_retries"`
	BatchSize                int           `yaml:"batch_size"`
	EnableRealtime           bool          `yaml:"enable_realtime"`
	EnableConflictResolution bool          `yaml:"enable_conflict_resolution"`
	EnableOptimisticUpdates  bool          `yaml:"enable_optimistic_updates"`
	EnableDataValidation     bool          `yaml:"enable_data_validation"`
}

// Default возвращает конфигурацию по умолчанию для локального сервера
func Default() *Config {
	return &Config{
		EnableRealtime:           true,
		RealtimeURL:              "ws://localhost:8080/api/v1/realtime",
		PollingInterval:          30 * time.Second,
		EnableConflictResolution: true,
		EnableOptimisticUpdates:  false,
		EnableDataValidation:     true,
		MaxRetries:               3,
		BatchSize:                10,
		APIBaseURL:               "http://localhost:8080",
		RetryBaseDelay:           time.Second,
		RetryMaxDelay:            30 * time.Second,
		ReconnectDelay:           5 * time.Second,
		RequestTimeout:           30 * time.Second,
	}
}

// Load читает YAML файл поверх значений по умолчанию.
// Отсутствующий файл не ошибка: возвращаются значения по умолчанию.
// Переменная GRIDSYNC_AUTH_TOKEN имеет приоритет над auth_token из файла.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// используем значения по умолчанию
	default:
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if token := os.Getenv(EnvAuthToken); token != "" {
		cfg.AuthToken = token
	}

	return cfg, nil
}

// Save записывает конфигурацию в YAML файл.
// Файл может содержать токен, поэтому права 0600.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate проверяет, что все обязательные параметры заданы и корректны
func (c *Config) Validate() error {
	var errs []error

	if err := validateURL(c.APIBaseURL, "http", "https"); err != nil {
		errs = append(errs, fmt.Errorf("api_base_url: %w", err))
	}
	if c.EnableRealtime {
		if err := validateURL(c.RealtimeURL, "ws", "wss", "http", "https"); err != nil {
			errs = append(errs, fmt.Errorf("realtime_url: %w", err))
		}
	}
	if c.AuthToken == "" {
		errs = append(errs, errors.New("auth_token: must not be empty"))
	}
	if c.PollingInterval <= 0 {
		errs = append(errs, errors.New("polling_interval: must be positive"))
	}
	if c.MaxRetries < 1 {
		errs = append(errs, errors.New("max_retries: must be at least 1"))
	}
	if c.BatchSize < 1 {
		errs = append(errs, errors.New("batch_size: must be at least 1"))
	}
	if c.RetryBaseDelay <= 0 {
		errs = append(errs, errors.New("retry_base_delay: must be positive"))
	}
	if c.RetryMaxDelay < c.RetryBaseDelay {
		errs = append(errs, errors.New("retry_max_delay: must not be less than retry_base_delay"))
	}
	if c.ReconnectDelay <= 0 {
		errs = append(errs, errors.New("reconnect_delay: must be positive"))
	}
	if c.RequestTimeout <= 0 {
		errs = append(errs, errors.New("request_timeout: must be positive"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

func validateURL(raw string, schemes ...string) error {
	if raw == "" {
		return errors.New("must not be empty")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("failed to parse: %w", err)
	}
	if u.Host == "" {
		return fmt.Errorf("host is missing in %q", raw)
	}
	for _, s := range schemes {
		if u.Scheme == s {
			return nil
		}
	}
	return fmt.Errorf("unsupported scheme %q", u.Scheme)
}
