package models

import (
	"strconv"
	"time"
)

// Movie представляет запись каталога фильмов.
// Положительный ID назначается сервером, отрицательный ID временный и
// выдаётся клиентом для записей, созданных без связи с сервером.
type Movie struct {
	Title       string  `json:"title" validate:"required,max=255"`          // Title название фильма
	Director    string  `json:"director" validate:"required,max=255"`       // Director имя режиссёра
	ReleaseDate string  `json:"releaseDate" validate:"omitempty,date"`      // ReleaseDate дата выхода в формате YYYY-MM-DD
	Description string  `json:"description" validate:"required"`            // Description описание
	Poster      string  `json:"poster,omitempty" validate:"omitempty,url"`  // Poster ссылка на постер
	Trailer     string  `json:"trailer,omitempty" validate:"omitempty,url"` // Trailer опциональная ссылка на трейлер
	ID          int64   `json:"id"`                                         // ID идентификатор записи
	Rating      float64 `json:"rating" validate:"gte=0,lte=10"`             // Rating рейтинг 0..10
	IsOffline   bool    `json:"isOffline,omitempty"`                        // IsOffline запись не подтверждена сервером
}

// ReleaseDateLayout формат даты выхода фильма
const ReleaseDateLayout = "2006-01-02"

// Классификация по году выхода
const (
	ClassOldie  = "oldie"
	ClassIconic = "iconic"
	ClassNewGen = "new gen"
)

// HasTemporaryID возвращает true, если ID записи выдан клиентом локально
func (m *Movie) HasTemporaryID() bool {
	return m.ID < 0
}

// ReleaseYear возвращает год выхода или 0, если дата не разбирается
func (m *Movie) ReleaseYear() int {
	if t, err := time.Parse(ReleaseDateLayout, m.ReleaseDate); err == nil {
		return t.Year()
	}
	// допускаем просто год
	if len(m.ReleaseDate) >= 4 {
		if y, err := strconv.Atoi(m.ReleaseDate[:4]); err == nil {
			return y
		}
	}
	return 0
}

// Classification возвращает категорию фильма по году выхода:
// до 1980 "oldie", 1980-2010 "iconic", позже "new gen".
func (m *Movie) Classification() string {
	year := m.ReleaseYear()
	switch {
	case year < 1980:
		return ClassOldie
	case year <= 2010:
		return ClassIconic
	default:
		return ClassNewGen
	}
}

// Clone создает копию записи
func (m *Movie) Clone() *Movie {
	if m == nil {
		return nil
	}
	c := *m
	return &c
}
