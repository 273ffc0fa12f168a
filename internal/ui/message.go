package ui

import (
	"github.com/moviemaster/mvx/internal/models"
	"github.com/moviemaster/mvx/internal/session"
)

// sessionChangedMsg carries a fresh session snapshot pumped from the session
// context's observer into the Elm loop.
type sessionChangedMsg struct {
	session session.Session
}

// signalMsg carries an application signal (watchlist change, theme change)
// pumped from the signal bus.
type signalMsg struct {
	event string
}

// Fetch results carry the generation token of the request that produced them;
// results from a superseded request are discarded in Update.

type moviesFetchedMsg struct {
	gen    int
	movies []models.Movie
	err    error
}

type movieFetchedMsg struct {
	gen   int
	movie *models.Movie
	err   error
}

type watchlistFetchedMsg struct {
	gen     int
	entries []models.WatchlistEntry
	err     error
}

type watchlistMutatedMsg struct {
	err error
}

type movieDeletedMsg struct {
	err error
}

type signInResultMsg struct {
	principal *models.Principal
	err       error
}
