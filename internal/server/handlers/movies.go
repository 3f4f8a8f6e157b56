package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/iudanet/movieshelf/internal/models"
	"github.com/iudanet/movieshelf/internal/server/storage"
	"github.com/iudanet/movieshelf/internal/validation"
	"github.com/iudanet/movieshelf/pkg/api"
)

// MaxPageSize максимальный размер страницы списка фильмов
const MaxPageSize = 100

// MovieNotifier получает фильмы, созданные через API
type MovieNotifier interface {
	PublishMovie(movie *models.Movie)
}

// MovieHandler обрабатывает CRUD запросы каталога
type MovieHandler struct {
	logger   *slog.Logger
	movies   storage.MovieStorage
	notifier MovieNotifier
}

// NewMovieHandler создает handler каталога. notifier может быть nil.
func NewMovieHandler(logger *slog.Logger, movies storage.MovieStorage, notifier MovieNotifier) *MovieHandler {
	return &MovieHandler{
		logger:   logger,
		movies:   movies,
		notifier: notifier,
	}
}

// List обрабатывает GET /api/v1/movies
func (h *MovieHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter, err := parseMovieFilter(r)
	if err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	movies, total, err := h.movies.ListMovies(ctx, filter)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list movies", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, api.MovieListResponse{
		Movies: movies,
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}, http.StatusOK)
}

// Get обрабатывает GET /api/v1/movies/{id}
func (h *MovieHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := movieID(r)
	if err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	movie, err := h.movies.GetMovie(ctx, id)
	if err != nil {
		h.storageError(w, r, err, "failed to get movie")
		return
	}

	sendJSON(h.logger, w, movie, http.StatusOK)
}

// Create обрабатывает POST /api/v1/movies
func (h *MovieHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var movie models.Movie
	if err := decodeJSON(w, r, &movie); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}
	movie.ID = 0
	movie.IsOffline = false

	if err := validation.ValidateMovie(&movie); err != nil {
		h.logger.WarnContext(ctx, "invalid movie", slog.Any("error", err))
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.movies.CreateMovie(ctx, &movie)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create movie", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "movie created",
		slog.Int64("movie_id", created.ID),
		slog.String("title", created.Title))

	if h.notifier != nil {
		h.notifier.PublishMovie(created)
	}

	sendJSON(h.logger, w, created, http.StatusCreated)
}

// Update обрабатывает PUT /api/v1/movies/{id}
func (h *MovieHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := movieID(r)
	if err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	var movie models.Movie
	if err := decodeJSON(w, r, &movie); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}
	movie.ID = id
	movie.IsOffline = false

	if err := validation.ValidateMovie(&movie); err != nil {
		h.logger.WarnContext(ctx, "invalid movie", slog.Int64("movie_id", id), slog.Any("error", err))
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.movies.UpdateMovie(ctx, &movie)
	if err != nil {
		h.storageError(w, r, err, "failed to update movie")
		return
	}

	sendJSON(h.logger, w, updated, http.StatusOK)
}

// Delete обрабатывает DELETE /api/v1/movies/{id}
func (h *MovieHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := movieID(r)
	if err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.movies.DeleteMovie(ctx, id); err != nil {
		h.storageError(w, r, err, "failed to delete movie")
		return
	}

	h.logger.InfoContext(ctx, "movie deleted", slog.Int64("movie_id", id))

	w.WriteHeader(http.StatusNoContent)
}

func (h *MovieHandler) storageError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	if errors.Is(err, storage.ErrMovieNotFound) {
		sendError(h.logger, w, "movie not found", http.StatusNotFound)
		return
	}
	h.logger.ErrorContext(r.Context(), msg, slog.Any("error", err))
	sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
}

// movieID разбирает положительный ID фильма из пути
func movieID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid movie id")
	}
	return id, nil
}

// parseMovieFilter разбирает параметры title, director, sort, order, limit, offset
func parseMovieFilter(r *http.Request) (storage.MovieFilter, error) {
	q := r.URL.Query()

	filter := storage.MovieFilter{
		Title:    q.Get("title"),
		Director: q.Get("director"),
		SortBy:   storage.SortByID,
	}

	switch sortBy := q.Get("sort"); sortBy {
	case "":
	case api.SortTitle:
		filter.SortBy = storage.SortByTitle
	case api.SortRating:
		filter.SortBy = storage.SortByRating
	default:
		return filter, fmt.Errorf("sort must be one of: %s, %s", api.SortTitle, api.SortRating)
	}

	switch order := q.Get("order"); order {
	case "", api.OrderAsc:
	case api.OrderDesc:
		filter.Desc = true
	default:
		return filter, fmt.Errorf("order must be one of: %s, %s", api.OrderAsc, api.OrderDesc)
	}

	var err error
	if filter.Limit, err = nonNegativeInt(q.Get("limit"), "limit"); err != nil {
		return filter, err
	}
	if filter.Offset, err = nonNegativeInt(q.Get("offset"), "offset"); err != nil {
		return filter, err
	}
	if filter.Limit == 0 || filter.Limit > MaxPageSize {
		filter.Limit = MaxPageSize
	}

	return filter, nil
}

func nonNegativeInt(value, name string) (int, error) {
	if value == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer", name)
	}
	return n, nil
}
