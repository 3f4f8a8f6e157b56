package api

import (
	"encoding/json"
	"time"

	"github.com/iudanet/movieshelf/internal/models"
)

// MessageType тип сообщения канала живых обновлений
type MessageType string

const (
	// TypeStartGeneration команда клиента: запустить генератор
	TypeStartGeneration MessageType = "start_generation"
	// TypeStopGeneration команда клиента: остановить генератор
	TypeStopGeneration MessageType = "stop_generation"
	// TypeMovieCreated событие сервера: создан новый фильм
	TypeMovieCreated MessageType = "movie_created"
	// TypeGenerationState событие сервера: текущее состояние генератора
	TypeGenerationState MessageType = "generation_state"
	// TypeError событие сервера: команда не распознана
	TypeError MessageType = "error"
)

// Message конверт сообщения websocket канала
type Message struct {
	Timestamp time.Time       `json:"timestamp"`
	Type      MessageType     `json:"type"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

// MovieCreatedPayload полезная нагрузка события movie_created
type MovieCreatedPayload struct {
	Movie *models.Movie `json:"movie"`
}

// GenerationStatePayload полезная нагрузка события generation_state
type GenerationStatePayload struct {
	State string `json:"state"` // idle | generating
}

// ErrorPayload полезная нагрузка события error
type ErrorPayload struct {
	Message string `json:"message"`
}

// NewMessage создает сообщение с сериализованной полезной нагрузкой
func NewMessage(msgType MessageType, payload any) (*Message, error) {
	var raw json.RawMessage
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		raw = b
	}

	return &Message{
		Type:      msgType,
		Timestamp: time.Now().UTC(),
		Payload:   raw,
	}, nil
}

// UnmarshalPayload десериализует полезную нагрузку в v
func (m *Message) UnmarshalPayload(v any) error {
	if len(m.Payload) == 0 {
		return nil
	}
	return json.Unmarshal(m.Payload, v)
}
