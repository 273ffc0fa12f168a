package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/moviemaster/mvx/internal/models"
)

// Movies retrieves the full catalog listing. Browsing is public; no
// credential is required.
func (c *Client) Movies(ctx context.Context) ([]models.Movie, error) {
	var movies []models.Movie
	if err := c.do(ctx, http.MethodGet, "/movies", nil, &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

// Movie retrieves a single catalog entry by ID.
func (c *Client) Movie(ctx context.Context, id string) (*models.Movie, error) {
	var movie models.Movie
	if err := c.do(ctx, http.MethodGet, "/movies/"+url.PathEscape(id), nil, &movie); err != nil {
		return nil, err
	}
	return &movie, nil
}

// SearchMovies queries the catalog with text, genre, and rating filters.
func (c *Client) SearchMovies(ctx context.Context, query models.SearchQuery) ([]models.Movie, error) {
	params := url.Values{}
	if query.Text != "" {
		params.Set("q", query.Text)
	}
	if len(query.Genres) > 0 {
		params.Set("genres", strings.Join(query.Genres, ","))
	}
	if query.MinRating > 0 {
		params.Set("minRating", strconv.Itoa(query.MinRating))
	}

	path := "/movies/search"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var movies []models.Movie
	if err := c.do(ctx, http.MethodGet, path, nil, &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

// MyMovies retrieves the movies owned by the current principal.
func (c *Client) MyMovies(ctx context.Context) ([]models.Movie, error) {
	var movies []models.Movie
	if err := c.do(ctx, http.MethodGet, "/my-movies", nil, &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

// CreateMovie adds a new catalog entry owned by the current principal.
func (c *Client) CreateMovie(ctx context.Context, draft models.MovieDraft) (*models.Movie, error) {
	if err := draft.Validate(); err != nil {
		return nil, fmt.Errorf("invalid movie: %w", err)
	}

	var movie models.Movie
	if err := c.do(ctx, http.MethodPost, "/movies", draft, &movie); err != nil {
		return nil, err
	}
	return &movie, nil
}

// UpdateMovie patches an existing catalog entry. Ownership is enforced by the
// backend; the views additionally gate the affordance.
func (c *Client) UpdateMovie(ctx context.Context, id string, draft models.MovieDraft) (*models.Movie, error) {
	if err := draft.Validate(); err != nil {
		return nil, fmt.Errorf("invalid movie: %w", err)
	}

	var movie models.Movie
	if err := c.do(ctx, http.MethodPatch, "/movies/"+url.PathEscape(id), draft, &movie); err != nil {
		return nil, err
	}
	return &movie, nil
}

// DeleteMovie removes a catalog entry.
func (c *Client) DeleteMovie(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/movies/"+url.PathEscape(id), nil, nil)
}
