package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/moviemaster/mvx/internal/models"
	"github.com/moviemaster/mvx/internal/shared"
	"github.com/moviemaster/mvx/internal/signals"
	"github.com/urfave/cli/v3"
)

// WatchlistList shows the watchlist in client-local display order.
func (r *Runner) WatchlistList(ctx context.Context, cmd *cli.Command) error {
	snap := r.awaitSession(ctx)
	if !snap.Authenticated() {
		return fmt.Errorf("%w: sign in first", shared.ErrNotAuthenticated)
	}

	entries, err := r.orderedWatchlist(ctx, snap.Identity.ID)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(entries, true)
	}

	r.writePlainHeader(fmt.Sprintf("Watchlist (%d queued)", len(entries)))
	for i, entry := range entries {
		r.writePlain("%2d. %s  %s\n", i+1, entry.ID, entry.MovieTitle)
	}
	return nil
}

// WatchlistAdd queues a movie and appends it to the display order.
func (r *Runner) WatchlistAdd(ctx context.Context, cmd *cli.Command) error {
	movieID := cmd.StringArg("movie-id")
	if movieID == "" {
		return fmt.Errorf("%w: movie id", shared.ErrMissingArgument)
	}

	snap := r.awaitSession(ctx)
	if !snap.Authenticated() {
		return fmt.Errorf("%w: sign in first", shared.ErrNotAuthenticated)
	}

	entry, err := r.api.AddToWatchlist(ctx, movieID)
	if err != nil {
		return err
	}

	if err := r.order.Append(snap.Identity.ID, entry.ID); err != nil {
		r.logger.Warn("failed to record display order", "error", err)
	}

	r.bus.Emit(signals.WatchlistChanged)
	return r.writePlain("✓ Queued %s\n", entry.MovieTitle)
}

// WatchlistRemove deletes an entry and drops it from the display order.
func (r *Runner) WatchlistRemove(ctx context.Context, cmd *cli.Command) error {
	entryID := cmd.StringArg("entry-id")
	if entryID == "" {
		return fmt.Errorf("%w: entry id", shared.ErrMissingArgument)
	}

	snap := r.awaitSession(ctx)
	if !snap.Authenticated() {
		return fmt.Errorf("%w: sign in first", shared.ErrNotAuthenticated)
	}

	if err := r.api.RemoveFromWatchlist(ctx, entryID); err != nil {
		return err
	}

	if err := r.order.Remove(entryID); err != nil {
		r.logger.Warn("failed to update display order", "error", err)
	}

	r.bus.Emit(signals.WatchlistChanged)
	return r.writePlain("✓ Removed from watchlist\n")
}

// WatchlistMove repositions an entry within the display order.
func (r *Runner) WatchlistMove(ctx context.Context, cmd *cli.Command) error {
	entryID := cmd.StringArg("entry-id")
	if entryID == "" {
		return fmt.Errorf("%w: entry id", shared.ErrMissingArgument)
	}
	target := int(cmd.Int("to"))

	snap := r.awaitSession(ctx)
	if !snap.Authenticated() {
		return fmt.Errorf("%w: sign in first", shared.ErrNotAuthenticated)
	}

	entries, err := r.orderedWatchlist(ctx, snap.Identity.ID)
	if err != nil {
		return err
	}

	idx := -1
	for i, entry := range entries {
		if entry.ID == entryID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return fmt.Errorf("%w: entry %s", shared.ErrNotFound, entryID)
	}

	if target < 1 || target > len(entries) {
		return fmt.Errorf("%w: position must be between 1 and %d", shared.ErrInvalidArgument, len(entries))
	}

	moved := entries[idx]
	entries = append(entries[:idx], entries[idx+1:]...)
	rest := make([]models.WatchlistEntry, 0, len(entries)+1)
	rest = append(rest, entries[:target-1]...)
	rest = append(rest, moved)
	rest = append(rest, entries[target-1:]...)

	ids := make([]string, len(rest))
	for i, entry := range rest {
		ids[i] = entry.ID
	}

	if err := r.order.SetPositions(snap.Identity.ID, ids); err != nil {
		return err
	}

	r.bus.Emit(signals.WatchlistChanged)
	return r.writePlain("✓ Moved %s to position %d\n", moved.MovieTitle, target)
}

// orderedWatchlist fetches the watchlist and overlays the persisted display
// order. Entries without a position keep backend arrival order at the end.
func (r *Runner) orderedWatchlist(ctx context.Context, ownerID string) ([]models.WatchlistEntry, error) {
	entries, err := r.api.Watchlist(ctx)
	if err != nil {
		return nil, err
	}

	positions, err := r.order.Positions(ownerID)
	if err != nil {
		return nil, err
	}

	for i := range entries {
		if pos, ok := positions[entries[i].ID]; ok {
			entries[i].Position = pos
		} else {
			entries[i].Position = 1<<30 + i
		}
	}
	sort.SliceStable(entries, func(a, b int) bool {
		return entries[a].Position < entries[b].Position
	})

	return entries, nil
}
