package models

import "time"

// OperationKind тип отложенной операции
type OperationKind string

const (
	OpCreate OperationKind = "CREATE"
	OpUpdate OperationKind = "UPDATE"
	OpDelete OperationKind = "DELETE"
)

// OperationStatusPending единственный статус операции в очереди
const OperationStatusPending = "pending"

// PendingOperation представляет мутацию, выполненную локально и ещё не
// подтверждённую сервером. Очередь обрабатывается строго в порядке добавления.
type PendingOperation struct {
	CreatedAt time.Time     `json:"created_at"`           // CreatedAt время постановки в очередь
	Movie     *Movie        `json:"movie,omitempty"`      // Movie данные для CREATE/UPDATE
	ID        string        `json:"id"`                   // ID уникальный идентификатор операции (UUID)
	Kind      OperationKind `json:"kind"`                 // Kind CREATE | UPDATE | DELETE
	DependsOn string        `json:"depends_on,omitempty"` // DependsOn ID операции CREATE, от которой зависит эта
	Status    string        `json:"status"`               // Status всегда "pending"
	MovieID   int64         `json:"movie_id,omitempty"`   // MovieID цель UPDATE/DELETE
	TempID    int64         `json:"temp_id,omitempty"`    // TempID временный ID, выданный при CREATE
	Seq       uint64        `json:"seq"`                  // Seq порядковый номер в очереди
}

// Target возвращает ID записи, к которой относится операция
func (op *PendingOperation) Target() int64 {
	if op.Kind == OpCreate {
		return op.TempID
	}
	return op.MovieID
}

// Clone создает глубокую копию операции
func (op *PendingOperation) Clone() *PendingOperation {
	if op == nil {
		return nil
	}
	c := *op
	c.Movie = op.Movie.Clone()
	return &c
}
