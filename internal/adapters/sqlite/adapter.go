// Package sqlite provides a SQLite-backed implementation of the history store port.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ewilliams-labs/moodtunes/internal/core/domain"
	"github.com/ewilliams-labs/moodtunes/internal/core/ports"
	_ "github.com/mattn/go-sqlite3" // Import the driver anonymously
)

// Adapter implements the history store port for SQLite
type Adapter struct {
	db *sql.DB
}

var _ ports.HistoryStore = (*Adapter)(nil)

// NewAdapter creates a connection and runs the schema migration
func NewAdapter(storagePath string) (*Adapter, error) {
	db, err := sql.Open("sqlite3", storagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}

	// :memory: databases are per connection
	db.SetMaxOpenConns(1)

	// Verify connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite db: %w", err)
	}

	adapter := &Adapter{db: db}

	if err := adapter.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return adapter, nil
}

// Close ensures the DB connection is closed gracefully
func (a *Adapter) Close() error {
	return a.db.Close()
}

func (a *Adapter) Append(ctx context.Context, e domain.SessionLogEntry) error {
	var query sql.NullString
	if e.Query != nil {
		query = sql.NullString{String: *e.Query, Valid: true}
	}

	if _, err := a.db.ExecContext(ctx,
		`INSERT INTO session_history (logged_at, user_name, search_query, playlist) VALUES (?, ?, ?, ?)`,
		e.Timestamp, e.User, query, e.Playlist,
	); err != nil {
		return fmt.Errorf("failed to save session entry: %w", err)
	}
	return nil
}

func (a *Adapter) List(ctx context.Context) ([]domain.SessionLogEntry, error) {
	rows, err := a.db.QueryContext(ctx, `
		SELECT logged_at, user_name, search_query, playlist
		FROM session_history
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to load session history: %w", err)
	}
	defer rows.Close()

	entries := []domain.SessionLogEntry{}
	for rows.Next() {
		var e domain.SessionLogEntry
		var query sql.NullString
		if err := rows.Scan(&e.Timestamp, &e.User, &query, &e.Playlist); err != nil {
			return nil, fmt.Errorf("failed to scan session entry: %w", err)
		}
		if query.Valid {
			q := query.String
			e.Query = &q
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate session history: %w", err)
	}

	return entries, nil
}

func (a *Adapter) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS session_history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		logged_at TEXT NOT NULL,
		user_name TEXT NOT NULL,
		search_query TEXT,
		playlist TEXT NOT NULL DEFAULT 'None',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	_, err := a.db.Exec(query)
	return err
}
