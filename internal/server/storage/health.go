package storage

import "context"

// Pinger проверяет доступность хранилища
type Pinger interface {
	Ping(ctx context.Context) error
}
