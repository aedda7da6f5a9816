// Package client реализует клиент HTTP API подписок и локальное
// состояние коллекции для потребителей (Store).
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/mrivera-hn/subtrack/internal/models"
)

// APIError описывает структурированную ошибку, возвращённую сервером.
// Details заполнен только для ошибок валидации.
type APIError struct {
	StatusCode int
	Message    string
	Details    map[string]string
}

// Error возвращает короткое человеко-читаемое описание ошибки.
func (e *APIError) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.StatusCode)
}

// NotFound сообщает, что сервер ответил 404.
func (e *APIError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// Client выполняет запросы к HTTP API подписок.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New создаёт новый клиент API. baseURL указывается с префиксом маршрутов,
// например http://localhost:8080/api/v1.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	// Сквозной идентификатор, чтобы находить запрос клиента в логах сервера.
	req.Header.Set("X-Request-Id", uuid.NewString())
	return req, nil
}

// do выполняет запрос и декодирует успешный ответ в out (если out != nil).
// Неуспешный статус превращается в *APIError, сетевые сбои оборачиваются как есть.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: resp.Status}
		var body struct {
			Error   string            `json:"error"`
			Details map[string]string `json:"details"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
			apiErr.Message = body.Error
			apiErr.Details = body.Details
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response %s %s: %w", req.Method, req.URL.Path, err)
	}
	return nil
}

// List возвращает все подписки в порядке, заданном сервером (новые первыми).
func (c *Client) List(ctx context.Context) ([]models.Subscription, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/subscriptions", nil)
	if err != nil {
		return nil, err
	}
	var subs []models.Subscription
	if err := c.do(req, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

// Get возвращает подписку по ID.
func (c *Client) Get(ctx context.Context, id int) (*models.Subscription, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/subscriptions/"+strconv.Itoa(id), nil)
	if err != nil {
		return nil, err
	}
	var sub models.Subscription
	if err := c.do(req, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// Create отправляет запрос на создание и возвращает созданную запись целиком.
func (c *Client) Create(ctx context.Context, in models.DummyCreateEntry) (*models.Subscription, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/subscriptions", in)
	if err != nil {
		return nil, err
	}
	var sub models.Subscription
	if err := c.do(req, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// Update отправляет частичное обновление и возвращает обновлённую запись целиком.
func (c *Client) Update(ctx context.Context, id int, in models.DummyUpdateEntry) (*models.Subscription, error) {
	req, err := c.newRequest(ctx, http.MethodPut, "/subscriptions/"+strconv.Itoa(id), in)
	if err != nil {
		return nil, err
	}
	var sub models.Subscription
	if err := c.do(req, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// Delete удаляет подписку по ID. Ответ 204 без тела считается успехом.
func (c *Client) Delete(ctx context.Context, id int) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "/subscriptions/"+strconv.Itoa(id), nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}
