package internal

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS messages (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id TEXT NOT NULL,
	role TEXT NOT NULL CHECK(role IN ('user','assistant','system')),
	content TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_session_created ON messages(session_id, created_at);
`

// Store is the SQLite-backed conversation log. Every call reflects the
// latest committed state; there is no in-memory cache.
type Store struct {
	db   *sql.DB
	path string
}

// OpenStore opens (or creates) the conversation database at the given path,
// ensuring the parent directory exists and the schema is in place.
func OpenStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, &StorageError{Op: "open", Path: path, Err: err}
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, &StorageError{Op: "open", Path: path, Err: err}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &StorageError{Op: "open", Path: path, Err: err}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, &StorageError{Op: "open", Path: path, Err: fmt.Errorf("init schema: %w", err)}
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Add appends one message with a server-assigned timestamp. The caller does
// not retry automatically on failure.
func (s *Store) Add(ctx context.Context, sessionID, role, content string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO messages(session_id, role, content) VALUES(?, ?, ?)`,
		sessionID, role, content,
	)
	if err != nil {
		return &StorageError{Op: "write", Path: s.path, Err: err}
	}
	return nil
}

// Fetch returns up to limit of the most recently added messages for the
// session, ordered oldest-first by (created_at, id). A session with no
// messages yields an empty slice, not an error. A non-positive limit falls
// back to the default history window.
func (s *Store) Fetch(ctx context.Context, sessionID string, limit int) ([]Message, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	// Select the newest rows, then flip back to insertion order.
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, session_id, role, content, created_at FROM (
			SELECT id, session_id, role, content, created_at
			FROM messages
			WHERE session_id = ?
			ORDER BY created_at DESC, id DESC
			LIMIT ?
		) ORDER BY created_at ASC, id ASC`,
		sessionID, limit,
	)
	if err != nil {
		return nil, &StorageError{Op: "read", Path: s.path, Err: err}
	}
	defer rows.Close()

	var messages []Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.SessionID, &m.Role, &m.Content, &m.CreatedAt); err != nil {
			return nil, &StorageError{Op: "read", Path: s.path, Err: err}
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "read", Path: s.path, Err: err}
	}

	return messages, nil
}

// Clear deletes all messages for the session. Clearing an empty session
// succeeds silently.
func (s *Store) Clear(ctx context.Context, sessionID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM messages WHERE session_id = ?`, sessionID)
	if err != nil {
		return &StorageError{Op: "clear", Path: s.path, Err: err}
	}
	return nil
}
