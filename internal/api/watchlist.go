package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/moviemaster/mvx/internal/models"
)

// Watchlist retrieves the current principal's watchlist entries. Order is
// backend arrival order; the views overlay the client-local display order.
func (c *Client) Watchlist(ctx context.Context) ([]models.WatchlistEntry, error) {
	var entries []models.WatchlistEntry
	if err := c.do(ctx, http.MethodGet, "/watchlist", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// watchlistAdd is the payload for POST /watchlist.
type watchlistAdd struct {
	MovieID string `json:"movieId"`
}

// AddToWatchlist queues a movie on the current principal's watchlist.
func (c *Client) AddToWatchlist(ctx context.Context, movieID string) (*models.WatchlistEntry, error) {
	var entry models.WatchlistEntry
	if err := c.do(ctx, http.MethodPost, "/watchlist", watchlistAdd{MovieID: movieID}, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// RemoveFromWatchlist deletes a watchlist entry by its entry ID.
func (c *Client) RemoveFromWatchlist(ctx context.Context, entryID string) error {
	return c.do(ctx, http.MethodDelete, "/watchlist/"+url.PathEscape(entryID), nil, nil)
}
