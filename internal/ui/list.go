package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/moviemaster/mvx/internal/models"
)

var (
	_ list.Item = movieItem{}
	_ list.Item = watchlistItem{}
)

// movieItem wraps [models.Movie] to implement [list.Item].
type movieItem struct {
	movie models.Movie
}

func (i movieItem) FilterValue() string { return i.movie.Title }
func (i movieItem) Title() string       { return i.movie.Title }
func (i movieItem) Description() string {
	desc := fmt.Sprintf("%d/10", i.movie.Rating)
	if i.movie.Genre != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.movie.Genre)
	}
	if i.movie.ReleaseDate != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.movie.ReleaseDate)
	}
	return desc
}

// watchlistItem wraps [models.WatchlistEntry] to implement [list.Item].
type watchlistItem struct {
	entry models.WatchlistEntry
}

func (i watchlistItem) FilterValue() string { return i.entry.MovieTitle }
func (i watchlistItem) Title() string       { return i.entry.MovieTitle }
func (i watchlistItem) Description() string {
	if i.entry.MovieGenre == "" {
		return "queued"
	}
	return i.entry.MovieGenre
}
