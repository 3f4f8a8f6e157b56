package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/iudanet/movieshelf/internal/models"
	"github.com/iudanet/movieshelf/pkg/api"
)

// Health проверяет доступность сервиса
func (c *Client) Health(ctx context.Context) error {
	var resp api.HealthResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/health", nil, &resp); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	return nil
}

// ListMovies возвращает страницу каталога с сервера
func (c *Client) ListMovies(ctx context.Context, q api.MovieQuery) (*api.MovieListResponse, error) {
	params := url.Values{}
	if q.Title != "" {
		params.Set("title", q.Title)
	}
	if q.Director != "" {
		params.Set("director", q.Director)
	}
	if q.Sort != "" {
		params.Set("sort", q.Sort)
	}
	if q.Order != "" {
		params.Set("order", q.Order)
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Offset > 0 {
		params.Set("offset", strconv.Itoa(q.Offset))
	}

	path := "/api/v1/movies"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var resp api.MovieListResponse
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("list movies request failed: %w", err)
	}
	return &resp, nil
}

// GetMovie получает фильм по ID
func (c *Client) GetMovie(ctx context.Context, id int64) (*models.Movie, error) {
	var movie models.Movie
	if err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/api/v1/movies/%d", id), nil, &movie); err != nil {
		return nil, fmt.Errorf("get movie request failed: %w", err)
	}
	return &movie, nil
}

// CreateMovie создает фильм, сервер назначает ID
func (c *Client) CreateMovie(ctx context.Context, movie *models.Movie) (*models.Movie, error) {
	payload := movie.Clone()
	payload.ID = 0
	payload.IsOffline = false

	var created models.Movie
	if err := c.doAuthRequest(ctx, http.MethodPost, "/api/v1/movies", payload, &created); err != nil {
		return nil, fmt.Errorf("create movie request failed: %w", err)
	}
	return &created, nil
}

// UpdateMovie заменяет поля фильма с указанным ID
func (c *Client) UpdateMovie(ctx context.Context, id int64, movie *models.Movie) (*models.Movie, error) {
	payload := movie.Clone()
	payload.ID = id
	payload.IsOffline = false

	var updated models.Movie
	if err := c.doAuthRequest(ctx, http.MethodPut, fmt.Sprintf("/api/v1/movies/%d", id), payload, &updated); err != nil {
		return nil, fmt.Errorf("update movie request failed: %w", err)
	}
	return &updated, nil
}

// DeleteMovie удаляет фильм
func (c *Client) DeleteMovie(ctx context.Context, id int64) error {
	if err := c.doAuthRequest(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/movies/%d", id), nil, nil); err != nil {
		return fmt.Errorf("delete movie request failed: %w", err)
	}
	return nil
}

// RateMovie ставит оценку фильму от имени текущего пользователя
func (c *Client) RateMovie(ctx context.Context, id int64, score float64) (*api.RatingResponse, error) {
	var resp api.RatingResponse
	req := api.RatingRequest{Score: score}
	if err := c.doAuthRequest(ctx, http.MethodPut, fmt.Sprintf("/api/v1/movies/%d/rating", id), req, &resp); err != nil {
		return nil, fmt.Errorf("rate movie request failed: %w", err)
	}
	return &resp, nil
}

// MyRatings возвращает оценки текущего пользователя
func (c *Client) MyRatings(ctx context.Context) ([]*models.Rating, error) {
	var ratings []*models.Rating
	if err := c.doAuthRequest(ctx, http.MethodGet, "/api/v1/me/ratings", nil, &ratings); err != nil {
		return nil, fmt.Errorf("get ratings request failed: %w", err)
	}
	return ratings, nil
}
