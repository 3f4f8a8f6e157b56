package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Классы ошибок удалённого сервиса. Ошибки клиента оборачивают один из них.
var (
	// ErrConnectivity сеть недоступна, таймаут, ответ 5xx или открыт circuit breaker
	ErrConnectivity = errors.New("remote service unreachable")
	// ErrValidation сервер отклонил данные (400, 422)
	ErrValidation = errors.New("validation failed")
	// ErrNotFound запись не найдена на сервере (404)
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized нет или истёк токен (401, 403)
	ErrUnauthorized = errors.New("unauthorized")
	// ErrConflict запись уже существует (409)
	ErrConflict = errors.New("conflict")
)

// StatusError ответ сервера с кодом вне 2xx
type StatusError struct {
	Message    string
	StatusCode int
}

// Error implements error
func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server error (%d)", e.StatusCode)
	}
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}

// Unwrap сопоставляет код ответа классу ошибки
func (e *StatusError) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusBadRequest, e.StatusCode == http.StatusUnprocessableEntity:
		return ErrValidation
	case e.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case e.StatusCode == http.StatusUnauthorized, e.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	case e.StatusCode == http.StatusConflict:
		return ErrConflict
	case e.StatusCode == http.StatusTooManyRequests, e.StatusCode >= 500:
		return ErrConnectivity
	default:
		return nil
	}
}

// connectivityError транспортная ошибка: соединение, DNS, таймаут
type connectivityError struct {
	err error
}

func (e *connectivityError) Error() string { return "request failed: " + e.err.Error() }

func (e *connectivityError) Unwrap() []error { return []error{ErrConnectivity, e.err} }

// IsConnectivity возвращает true, если ошибка означает недоступность сервиса
func IsConnectivity(err error) bool {
	return errors.Is(err, ErrConnectivity)
}
