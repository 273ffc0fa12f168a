package main

import (
	"context"
	"fmt"

	"github.com/moviemaster/mvx/internal/formatter"
	"github.com/moviemaster/mvx/internal/models"
	"github.com/moviemaster/mvx/internal/shared"
	"github.com/urfave/cli/v3"
)

// MoviesList prints or exports the catalog listing.
func (r *Runner) MoviesList(ctx context.Context, cmd *cli.Command) error {
	movies, err := r.api.Movies(ctx)
	if err != nil {
		return err
	}

	if format := cmd.String("export"); format != "" {
		return r.exportMovies(movies, format, cmd.String("output"))
	}

	if cmd.Bool("json") {
		return r.writeJSON(movies, cmd.Bool("pretty"))
	}

	r.writePlainHeader(fmt.Sprintf("Catalog (%d movies)", len(movies)))
	for _, movie := range movies {
		r.writePlain("%s  %s (%d/10)\n", movie.ID, movie.Title, movie.Rating)
	}
	return nil
}

// MoviesGet prints a single movie.
func (r *Runner) MoviesGet(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: movie id", shared.ErrMissingArgument)
	}

	movie, err := r.api.Movie(ctx, id)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(movie, cmd.Bool("pretty"))
	}

	r.writePlainHeader(movie.Title)
	r.writePlain("Genre:    %s\n", movie.Genre)
	r.writePlain("Released: %s\n", movie.ReleaseDate)
	r.writePlain("Rating:   %d/10\n", movie.Rating)
	if movie.Summary != "" {
		r.writePlainln("%s", movie.Summary)
	}

	if movie.OwnedBy(r.awaitSession(ctx).Identity) {
		r.writePlain("\nYou own this entry.\n")
	}
	return nil
}

// MoviesSearch queries the catalog with optional genre and rating filters.
func (r *Runner) MoviesSearch(ctx context.Context, cmd *cli.Command) error {
	query := models.SearchQuery{
		Text:      cmd.StringArg("query"),
		Genres:    cmd.StringSlice("genre"),
		MinRating: int(cmd.Int("min-rating")),
	}

	movies, err := r.api.SearchMovies(ctx, query)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(movies, true)
	}

	r.writePlainHeader(fmt.Sprintf("Search results (%d)", len(movies)))
	for _, movie := range movies {
		r.writePlain("%s  %s (%d/10)\n", movie.ID, movie.Title, movie.Rating)
	}
	return nil
}

// MoviesMine lists the signed-in user's catalog entries.
func (r *Runner) MoviesMine(ctx context.Context, cmd *cli.Command) error {
	if !r.awaitSession(ctx).Authenticated() {
		return fmt.Errorf("%w: sign in first", shared.ErrNotAuthenticated)
	}

	movies, err := r.api.MyMovies(ctx)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(movies, true)
	}

	r.writePlainHeader(fmt.Sprintf("My movies (%d)", len(movies)))
	for _, movie := range movies {
		r.writePlain("%s  %s (%d/10)\n", movie.ID, movie.Title, movie.Rating)
	}
	return nil
}

// MoviesAdd creates a catalog entry owned by the signed-in user.
func (r *Runner) MoviesAdd(ctx context.Context, cmd *cli.Command) error {
	if !r.awaitSession(ctx).Authenticated() {
		return fmt.Errorf("%w: sign in first", shared.ErrNotAuthenticated)
	}

	draft := models.MovieDraft{
		Title:       cmd.String("title"),
		PosterURL:   cmd.String("poster"),
		Genre:       cmd.String("genre"),
		ReleaseDate: cmd.String("released"),
		Rating:      int(cmd.Int("rating")),
		Summary:     cmd.String("summary"),
	}

	movie, err := r.api.CreateMovie(ctx, draft)
	if err != nil {
		return err
	}

	return r.writePlain("✓ Added %s (%s)\n", movie.Title, movie.ID)
}

// MoviesUpdate patches an owned catalog entry, carrying unset flags over from
// the current entry.
func (r *Runner) MoviesUpdate(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: movie id", shared.ErrMissingArgument)
	}

	snap := r.awaitSession(ctx)
	if !snap.Authenticated() {
		return fmt.Errorf("%w: sign in first", shared.ErrNotAuthenticated)
	}

	current, err := r.api.Movie(ctx, id)
	if err != nil {
		return err
	}

	if !current.OwnedBy(snap.Identity) {
		return fmt.Errorf("%w: you do not own this entry", shared.ErrUnauthorized)
	}

	draft := models.MovieDraft{
		Title:       current.Title,
		PosterURL:   current.PosterURL,
		Genre:       current.Genre,
		ReleaseDate: current.ReleaseDate,
		Rating:      current.Rating,
		Summary:     current.Summary,
	}

	if cmd.IsSet("title") {
		draft.Title = cmd.String("title")
	}
	if cmd.IsSet("poster") {
		draft.PosterURL = cmd.String("poster")
	}
	if cmd.IsSet("genre") {
		draft.Genre = cmd.String("genre")
	}
	if cmd.IsSet("released") {
		draft.ReleaseDate = cmd.String("released")
	}
	if cmd.IsSet("rating") {
		draft.Rating = int(cmd.Int("rating"))
	}
	if cmd.IsSet("summary") {
		draft.Summary = cmd.String("summary")
	}

	movie, err := r.api.UpdateMovie(ctx, id, draft)
	if err != nil {
		return err
	}

	return r.writePlain("✓ Updated %s\n", movie.Title)
}

// MoviesDelete removes an owned catalog entry.
func (r *Runner) MoviesDelete(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: movie id", shared.ErrMissingArgument)
	}

	snap := r.awaitSession(ctx)
	if !snap.Authenticated() {
		return fmt.Errorf("%w: sign in first", shared.ErrNotAuthenticated)
	}

	current, err := r.api.Movie(ctx, id)
	if err != nil {
		return err
	}

	if !current.OwnedBy(snap.Identity) {
		return fmt.Errorf("%w: you do not own this entry", shared.ErrUnauthorized)
	}

	if err := r.api.DeleteMovie(ctx, id); err != nil {
		return err
	}

	return r.writePlain("✓ Deleted %s\n", current.Title)
}

func (r *Runner) exportMovies(movies []models.Movie, format, output string) error {
	switch format {
	case "csv":
		path, err := formatter.WriteCSVExport(movies, output)
		if err != nil {
			return err
		}
		return r.writePlain("✓ Exported %d movies to %s\n", len(movies), path)
	case "text", "txt":
		path, err := formatter.WriteTextExport("Movie Catalog", movies, output)
		if err != nil {
			return err
		}
		return r.writePlain("✓ Exported %d movies to %s\n", len(movies), path)
	case "markdown", "md":
		data, err := formatter.MoviesToMarkdown("Movie Catalog", movies)
		if err != nil {
			return err
		}
		return r.writePlain("%s", string(data))
	default:
		return fmt.Errorf("%w: unknown export format %q", shared.ErrInvalidFlag, format)
	}
}
