package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/iudanet/movieshelf/pkg/api"
)

// TokenSource выдаёт актуальный access token для авторизованных запросов
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[*response]
	tokens     TokenSource
	logger     *slog.Logger
	baseURL    string
}

// response тело и код ответа, прошедшего через circuit breaker
type response struct {
	body   []byte
	status int
}

// Option настраивает Client
type Option func(*Client)

// WithHTTPClient заменяет http.Client (например, в тестах)
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout задаёт таймаут одного запроса
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// NewClient создает новый API клиент
func NewClient(baseURL string, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
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

	for _, opt := range opts {
		opt(c)
	}

	c.breaker = gobreaker.NewCircuitBreaker[*response](gobreaker.Settings{
		Name:        "movieshelf-api",
		MaxRequests: 1,
		Timeout:     15 * time.Second,
		// Открываем после 3 подряд неудачных попыток связаться с сервером
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		// Ответы 4xx означают, что сервер жив
		IsSuccessful: func(err error) bool {
			return err == nil || !IsConnectivity(err)
		},
		IsExcluded: func(err error) bool {
			return errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("Circuit breaker state changed",
				slog.String("name", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
		},
	})

	return c
}

// SetTokenSource задаёт источник access token
func (c *Client) SetTokenSource(ts TokenSource) {
	c.tokens = ts
}

// BaseURL возвращает адрес сервера
func (c *Client) BaseURL() string {
	return c.baseURL
}

// BreakerState возвращает состояние circuit breaker: closed, half-open, open
func (c *Client) BreakerState() string {
	return c.breaker.State().String()
}

// doRequest выполняет HTTP запрос без авторизации
func (c *Client) doRequest(ctx context.Context, method, path string, body, result any) error {
	return c.do(ctx, method, path, "", body, result)
}

// doAuthRequest выполняет HTTP запрос с access token из TokenSource
func (c *Client) doAuthRequest(ctx context.Context, method, path string, body, result any) error {
	if c.tokens == nil {
		return fmt.Errorf("%w: not logged in", ErrUnauthorized)
	}

	token, err := c.tokens.AccessToken(ctx)
	if err != nil {
		return fmt.Errorf("failed to get access token: %w", err)
	}

	return c.do(ctx, method, path, token, body, result)
}

func (c *Client) do(ctx context.Context, method, path, token string, body, result any) error {
	var payload []byte
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		payload = jsonData
	}

	resp, err := c.breaker.Execute(func() (*response, error) {
		return c.roundTrip(ctx, method, path, token, payload)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			c.logger.DebugContext(ctx, "Request rejected by circuit breaker",
				slog.String("method", method),
				slog.String("path", path))
			return fmt.Errorf("%w: %w", ErrConnectivity, err)
		}
		return err
	}

	// Декодируем успешный ответ
	if result != nil && len(resp.body) > 0 {
		if err := json.Unmarshal(resp.body, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// roundTrip отправляет запрос и классифицирует ответ.
// Ответ вне 2xx возвращается как *StatusError.
func (c *Client) roundTrip(ctx context.Context, method, path, token string, payload []byte) (*response, error) {
	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil && errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, &connectivityError{err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &connectivityError{err: fmt.Errorf("failed to read response body: %w", err)}
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := &StatusError{StatusCode: resp.StatusCode}
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil {
			statusErr.Message = errResp.Error
			if errResp.Message != "" {
				statusErr.Message = errResp.Message
			}
		} else {
			statusErr.Message = string(respBody)
		}
		return nil, statusErr
	}

	return &response{status: resp.StatusCode, body: respBody}, nil
}
