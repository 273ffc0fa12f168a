package models

import "time"

// Movie represents a catalog entry as served by the backend API.
type Movie struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	PosterURL   string    `json:"posterUrl"`
	Genre       string    `json:"genre"`
	ReleaseDate string    `json:"releaseDate"`
	Rating      int       `json:"rating"`
	Summary     string    `json:"summary"`
	OwnerID     string    `json:"ownerId"`
	AddedAt     time.Time `json:"addedAt"`
}

// OwnedBy reports whether p may mutate or delete the movie.
//
// The backend enforces ownership too; this gates the client-side affordances.
func (m *Movie) OwnedBy(p *Principal) bool {
	if m == nil || p == nil {
		return false
	}
	return m.OwnerID != "" && m.OwnerID == p.ID
}

// MovieDraft is the payload for creating or updating a movie.
type MovieDraft struct {
	Title       string `json:"title"`
	PosterURL   string `json:"posterUrl"`
	Genre       string `json:"genre"`
	ReleaseDate string `json:"releaseDate"`
	Rating      int    `json:"rating"`
	Summary     string `json:"summary"`
}

// Validate checks draft fields against the catalog's constraints.
func (d *MovieDraft) Validate() error {
	if d.Title == "" {
		return errEmptyTitle
	}
	if d.Rating < 1 || d.Rating > 10 {
		return errRatingRange
	}
	return nil
}

// SearchQuery holds the filters for GET /movies/search.
type SearchQuery struct {
	Text      string
	Genres    []string
	MinRating int
}

// WatchlistEntry represents a movie queued on the current user's watchlist.
//
// Position is client-local display order, not backend state.
type WatchlistEntry struct {
	ID          string `json:"id"`
	MovieID     string `json:"movieId"`
	MovieTitle  string `json:"movieTitle"`
	MoviePoster string `json:"moviePoster"`
	MovieGenre  string `json:"movieGenre"`
	OwnerID     string `json:"ownerId"`
	Position    int    `json:"-"`
}
