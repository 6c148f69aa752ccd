// Package store persists content records in a local SQLite database.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"contentforge/internal/core"
)

// ErrNotFound is returned when a record id does not exist.
var ErrNotFound = fmt.Errorf("content record not found")

// Store represents the SQLite-backed content store.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (creating if needed) the database under dataDir.
func NewStore(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "contentforge.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initialize(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return store, nil
}

func (s *Store) initialize() error {
	contentTable := `
	CREATE TABLE IF NOT EXISTS content_records (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		content_type TEXT NOT NULL,
		topic TEXT,
		title TEXT,
		outline TEXT,
		content TEXT,
		keywords TEXT,
		meta_description TEXT,
		platform TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`

	userIndex := `
	CREATE INDEX IF NOT EXISTS idx_content_records_user
	ON content_records (user_id, created_at);`

	for _, stmt := range []string{contentTable, userIndex} {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRecord inserts or replaces a content record.
func (s *Store) SaveRecord(record core.ContentRecord) error {
	outline, err := json.Marshal(record.Outline)
	if err != nil {
		return fmt.Errorf("failed to marshal outline: %w", err)
	}
	keywords, err := json.Marshal(record.Keywords)
	if err != nil {
		return fmt.Errorf("failed to marshal keywords: %w", err)
	}

	query := `
	INSERT OR REPLACE INTO content_records
	(id, user_id, content_type, topic, title, outline, content, keywords, meta_description, platform, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = s.db.Exec(query,
		record.ID,
		record.UserID,
		string(record.ContentType),
		record.Topic,
		record.Title,
		string(outline),
		record.Content,
		string(keywords),
		record.MetaDescription,
		string(record.Platform),
		record.CreatedAt,
		record.UpdatedAt,
	)
	return err
}

// GetRecord retrieves a record by id.
func (s *Store) GetRecord(id string) (*core.ContentRecord, error) {
	query := `
	SELECT id, user_id, content_type, topic, title, outline, content, keywords, meta_description, platform, created_at, updated_at
	FROM content_records WHERE id = ?`

	record, err := scanRecord(s.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get record: %w", err)
	}
	return record, nil
}

// ListRecords returns a user's records, newest first.
func (s *Store) ListRecords(userID string, limit int) ([]core.ContentRecord, error) {
	query := `
	SELECT id, user_id, content_type, topic, title, outline, content, keywords, meta_description, platform, created_at, updated_at
	FROM content_records WHERE user_id = ? ORDER BY created_at DESC`
	args := []any{userID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	defer rows.Close()

	var records []core.ContentRecord
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, *record)
	}
	return records, rows.Err()
}

// DeleteRecord removes a record by id.
func (s *Store) DeleteRecord(id string) error {
	result, err := s.db.Exec(`DELETE FROM content_records WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// CountRecordsSince counts a user's records created at or after the
// given time. Used for plan usage enforcement.
func (s *Store) CountRecordsSince(userID string, since time.Time) (int, error) {
	var count int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM content_records WHERE user_id = ? AND created_at >= ?`,
		userID, since,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*core.ContentRecord, error) {
	var record core.ContentRecord
	var contentType, platform, outline, keywords string

	err := row.Scan(
		&record.ID,
		&record.UserID,
		&contentType,
		&record.Topic,
		&record.Title,
		&outline,
		&record.Content,
		&keywords,
		&record.MetaDescription,
		&platform,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	record.ContentType = core.ContentType(contentType)
	record.Platform = core.Platform(platform)
	if outline != "" {
		if err := json.Unmarshal([]byte(outline), &record.Outline); err != nil {
			return nil, fmt.Errorf("failed to unmarshal outline: %w", err)
		}
	}
	if keywords != "" {
		if err := json.Unmarshal([]byte(keywords), &record.Keywords); err != nil {
			return nil, fmt.Errorf("failed to unmarshal keywords: %w", err)
		}
	}
	return &record, nil
}
