package store

import (
	"database/sql"
	"fmt"
)

// OrderRepository persists the client-local watchlist display order.
//
// The backend does not define a watchlist ordering; positions live only in
// this store and are reapplied to fetched entries at render time.
type OrderRepository struct {
	db *sql.DB
}

// NewOrderRepository creates a new [OrderRepository] with the given database connection
func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Append records a new entry at the end of the owner's display order.
func (r *OrderRepository) Append(ownerID, entryID string) error {
	position, err := NextSequence(r.db, "watchlist_order")
	if err != nil {
		return fmt.Errorf("failed to generate position: %w", err)
	}

	query := `
		INSERT INTO watchlist_order (entry_id, owner_id, position) VALUES (?, ?, ?)
		ON CONFLICT(entry_id) DO UPDATE SET position = excluded.position
	`

	if _, err := r.db.Exec(query, entryID, ownerID, position); err != nil {
		return fmt.Errorf("failed to insert order entry: %w", err)
	}

	return nil
}

// Remove drops an entry from the display order. Removing an unknown entry is
// not an error.
func (r *OrderRepository) Remove(entryID string) error {
	if _, err := r.db.Exec("DELETE FROM watchlist_order WHERE entry_id = ?", entryID); err != nil {
		return fmt.Errorf("failed to delete order entry: %w", err)
	}
	return nil
}

// Positions returns the owner's entry positions keyed by entry ID.
func (r *OrderRepository) Positions(ownerID string) (map[string]int, error) {
	rows, err := r.db.Query("SELECT entry_id, position FROM watchlist_order WHERE owner_id = ?", ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query order: %w", err)
	}
	defer rows.Close()

	positions := make(map[string]int)
	for rows.Next() {
		var entryID string
		var position int
		if err := rows.Scan(&entryID, &position); err != nil {
			return nil, fmt.Errorf("failed to scan order entry: %w", err)
		}
		positions[entryID] = position
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return positions, nil
}

// SetPositions replaces the owner's display order with the given sequence of
// entry IDs, first to last.
func (r *OrderRepository) SetPositions(ownerID string, entryIDs []string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM watchlist_order WHERE owner_id = ?", ownerID); err != nil {
		return fmt.Errorf("failed to clear order: %w", err)
	}

	for i, entryID := range entryIDs {
		if _, err := tx.Exec("INSERT INTO watchlist_order (entry_id, owner_id, position) VALUES (?, ?, ?)", entryID, ownerID, i+1); err != nil {
			return fmt.Errorf("failed to insert order entry: %w", err)
		}
	}

	return tx.Commit()
}
