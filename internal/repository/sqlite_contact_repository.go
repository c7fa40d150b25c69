package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/odionmurphy/Murphy-Portfolio/internal/model"
)

const createContactsTable = `
CREATE TABLE IF NOT EXISTS contacts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT,
	email TEXT,
	message TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
)`

// SQLiteContactRepository is the SQLite implementation of ContactRepository.
type SQLiteContactRepository struct {
	db *sql.DB
}

var _ ContactRepository = (*SQLiteContactRepository)(nil)

// NewSQLiteContactRepository opens (or creates) the database at path and
// bootstraps the contacts table. The pool is capped at a single connection:
// SQLite is a single-writer store and one connection serializes all inserts.
func NewSQLiteContactRepository(path string) (*SQLiteContactRepository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(createContactsTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("create contacts table: %w", err)
	}
	return &SQLiteContactRepository{db: db}, nil
}

// Close releases the underlying database handle.
func (r *SQLiteContactRepository) Close() error {
	return r.db.Close()
}

// Insert stores a new contacts row. The id and created_at come back from the
// RETURNING clause so the returned message reflects exactly what was written.
func (r *SQLiteContactRepository) Insert(ctx context.Context, name, email, message string) (*model.ContactMessage, error) {
	m := &model.ContactMessage{
		Name:    name,
		Email:   email,
		Message: message,
	}

	var createdAt any
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO contacts (name, email, message) VALUES (?, ?, ?)
		 RETURNING id, created_at`,
		name, email, message,
	).Scan(&m.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("insert contact: %w", err)
	}

	m.CreatedAt, err = parseTimestamp(createdAt)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// ListDescending returns all contacts ordered by id descending.
func (r *SQLiteContactRepository) ListDescending(ctx context.Context) ([]*model.ContactMessage, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, email, message, created_at FROM contacts ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	var messages []*model.ContactMessage
	for rows.Next() {
		var m model.ContactMessage
		var createdAt any
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &createdAt); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		if m.CreatedAt, err = parseTimestamp(createdAt); err != nil {
			return nil, err
		}
		messages = append(messages, &m)
	}
	return messages, rows.Err()
}

// parseTimestamp normalizes a scanned created_at value. CURRENT_TIMESTAMP is
// stored as UTC text; depending on the driver's decltype handling the value
// arrives as time.Time, string or []byte.
func parseTimestamp(v any) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t.UTC(), nil
	case string:
		return parseTimestampText(t)
	case []byte:
		return parseTimestampText(string(t))
	default:
		return time.Time{}, fmt.Errorf("unexpected created_at type %T", v)
	}
}

func parseTimestampText(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339Nano, time.RFC3339} {
		if ts, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unexpected created_at value %q", s)
}
