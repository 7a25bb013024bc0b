package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/iudanet/gridsync/internal/crypto"
	"github.com/iudanet/gridsync/internal/models"
	"github.com/iudanet/gridsync/pkg/api"
)

// DefaultTimeout таймаут HTTP запросов по умолчанию
const DefaultTimeout = 30 * time.Second

// Client представляет HTTP клиент для взаимодействия с сервером синхронизации
type Client struct {
	httpClient *http.Client
	now        func() time.Time
	baseURL    string
	authToken  string
}

// NewClient создает новый API клиент.
// authToken передается в заголовке Authorization: Bearer.
func NewClient(baseURL, authToken string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:   baseURL,
		authToken: authToken,
		now:       time.Now,
		httpClient: &http.Client{
			Timeout: timeout,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// EndpointFor возвращает эндпоинт для типа payload.
// Неизвестные типы уходят на общий эндпоинт.
func EndpointFor(payloadType string) string {
	switch payloadType {
	case models.PayloadCellEdit:
		return api.EndpointCellEdit
	case models.PayloadSpecificationEdit:
		return api.EndpointSpecificationEdit
	case models.PayloadItemCreate:
		return api.EndpointItemCreate
	case models.PayloadItemDelete:
		return api.EndpointItemDelete
	default:
		return api.EndpointGeneric
	}
}

// SendOperation отправляет операцию на эндпоинт, выбранный по типу payload.
// Если сервер ответил 2xx с описанием конфликта, возвращается *ConflictError.
func (c *Client) SendOperation(ctx context.Context, op *models.SyncOperation) error {
	req := api.OperationRequest{
		Operation: string(op.Kind),
		ItemID:    op.ItemID,
		Data:      op.Payload,
		Timestamp: op.CreatedAt,
	}

	checksum, err := crypto.Checksum(req.Data)
	if err != nil {
		return fmt.Errorf("failed to compute payload checksum: %w", err)
	}

	var resp api.OperationResponse
	headers := map[string]string{api.HeaderPayloadChecksum: checksum}
	if err := c.doRequest(ctx, http.MethodPost, EndpointFor(op.Payload.Type()), headers, req, &resp); err != nil {
		return fmt.Errorf("sync operation %s failed: %w", op.ID, err)
	}

	if resp.Conflict != nil {
		return &ConflictError{
			Description: resp.Conflict.Description,
			Severity:    models.ParseSeverity(resp.Conflict.Severity),
			RemoteData:  resp.Conflict.RemoteData,
		}
	}

	return nil
}

// ResolveConflict отправляет итоговые данные разрешенного конфликта
func (c *Client) ResolveConflict(ctx context.Context, conflictID string, resolved models.Payload) error {
	req := api.ResolveConflictRequest{
		ConflictID:   conflictID,
		ResolvedData: resolved,
		Timestamp:    c.now().UnixMilli(),
	}

	var resp api.ResolveConflictResponse
	if err := c.doRequest(ctx, http.MethodPost, api.EndpointResolveConflict, nil, req, &resp); err != nil {
		return fmt.Errorf("resolve conflict request failed: %w", err)
	}
	return nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path string, headers map[string]string, body, result any) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, errResp.Message)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	// Декодируем успешный ответ
	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
