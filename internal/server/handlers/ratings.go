package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/movieshelf/internal/models"
	"github.com/iudanet/movieshelf/internal/server/storage"
	"github.com/iudanet/movieshelf/internal/validation"
	"github.com/iudanet/movieshelf/pkg/api"
)

// RatingHandler обрабатывает пользовательские оценки фильмов
type RatingHandler struct {
	logger  *slog.Logger
	ratings storage.RatingStorage
	now     func() time.Time
}

// NewRatingHandler создает handler оценок
func NewRatingHandler(logger *slog.Logger, ratings storage.RatingStorage) *RatingHandler {
	return &RatingHandler{
		logger:  logger,
		ratings: ratings,
		now:     time.Now,
	}
}

// Rate обрабатывает PUT /api/v1/movies/{id}/rating
func (h *RatingHandler) Rate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := movieID(r)
	if err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	var req api.RatingRequest
	if err := decodeJSON(w, r, &req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := validation.ValidateStruct(&req); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	rating := &models.Rating{
		UserID:    userID,
		MovieID:   id,
		Score:     req.Score,
		UpdatedAt: h.now().UTC(),
	}

	if err := h.ratings.SetRating(ctx, rating); err != nil {
		if errors.Is(err, storage.ErrMovieNotFound) {
			sendError(h.logger, w, "movie not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to save rating", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	summary, err := h.ratings.GetRatingSummary(ctx, id)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get rating summary", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, api.RatingResponse{
		MovieID:   id,
		Score:     rating.Score,
		UpdatedAt: rating.UpdatedAt,
		Average:   summary.Average,
		Votes:     summary.Votes,
	}, http.StatusOK)
}

// Mine обрабатывает GET /api/v1/me/ratings
func (h *RatingHandler) Mine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	ratings, err := h.ratings.GetUserRatings(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get user ratings", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, ratings, http.StatusOK)
}
