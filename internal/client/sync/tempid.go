package sync

import "sync"

// TempIDGenerator выдаёт временные ID для записей, созданных без связи с сервером.
// Временные ID отрицательные и монотонно убывают, поэтому никогда не
// пересекаются с ID, которые назначает сервер.
type TempIDGenerator struct {
	counter int64      // модуль последнего выданного ID
	mu      sync.Mutex // мьютекс для потокобезопасности
}

// NewTempIDGenerator создает генератор, продолжающий счёт с last.
// last это модуль последнего выданного ID, сохранённый между запусками.
func NewTempIDGenerator(last int64) *TempIDGenerator {
	if last < 0 {
		last = -last
	}
	return &TempIDGenerator{counter: last}
}

// Next возвращает следующий временный ID, для которого taken вернул false.
// taken проверяет, занят ли ID в локальной реплике.
func (g *TempIDGenerator) Next(taken func(id int64) bool) int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	for {
		g.counter++
		id := -g.counter
		if taken == nil || !taken(id) {
			return id
		}
	}
}

// Observe учитывает уже существующий временный ID (например, загруженный из реплики),
// чтобы следующие ID не совпали с ним. Аналог Update у часов Лампорта.
func (g *TempIDGenerator) Observe(id int64) {
	if id >= 0 {
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if -id > g.counter {
		g.counter = -id
	}
}

// Last возвращает модуль последнего выданного ID
func (g *TempIDGenerator) Last() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.counter
}
