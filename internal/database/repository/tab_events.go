package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jask/fitnesstrack/internal/database"
)

// DefaultEventRetention is how many tab events are kept when no limit is
// configured.
const DefaultEventRetention = 1000

// TabEventRepo keeps a bounded log of tab switches.
type TabEventRepo struct {
	db   *sql.DB
	keep int
}

// NewTabEventRepo keeps the newest keep events; keep <= 0 means
// DefaultEventRetention.
func NewTabEventRepo(db *sql.DB, keep int) *TabEventRepo {
	if keep <= 0 {
		keep = DefaultEventRetention
	}
	return &TabEventRepo{db: db, keep: keep}
}

// NewTabEvent builds an event with a fresh id.
func NewTabEvent(from, to string, at time.Time) TabEvent {
	return TabEvent{ID: uuid.NewString(), From: from, To: to, CreatedAt: at}
}

// Add appends e and drops events past the retention limit in the same
// transaction.
func (r *TabEventRepo) Add(ctx context.Context, e TabEvent) error {
	return database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
	INSERT INTO tab_events(id, from_tab, to_tab, created_at)
	VALUES (?, ?, ?, ?)
	`, e.ID, e.From, e.To, e.CreatedAt); err != nil {
			return fmt.Errorf("insert tab event: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `
	DELETE FROM tab_events WHERE rowid NOT IN (
	 SELECT rowid FROM tab_events ORDER BY created_at DESC, rowid DESC LIMIT ?
	)
	`, r.keep); err != nil {
			return fmt.Errorf("trim tab events: %w", err)
		}
		return nil
	})
}

// ListRecent returns up to limit events, newest first.
func (r *TabEventRepo) ListRecent(ctx context.Context, limit int) ([]TabEvent, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, from_tab, to_tab, created_at FROM tab_events
	ORDER BY created_at DESC, rowid DESC
	LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []TabEvent
	for rows.Next() {
		var e TabEvent
		if err := rows.Scan(&e.ID, &e.From, &e.To, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// CountByTab returns how many times each tab was switched to.
func (r *TabEventRepo) CountByTab(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT to_tab, COUNT(*) FROM tab_events GROUP BY to_tab`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := map[string]int{}
	for rows.Next() {
		var tab string
		var n int
		if err := rows.Scan(&tab, &n); err != nil {
			return nil, err
		}
		out[tab] = n
	}
	return out, rows.Err()
}
