// Package store persists conversation messages.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/jyotimcanitrr/Your-AI-Doctor-Application/internal/domain"
)

// Store is the conversation store used by the orchestrator. Messages are
// append-only: there is no update or delete operation.
type Store interface {
	// AppendMessage inserts a new message for userID with a fresh id and an
	// insertion timestamp that is non-decreasing per store instance.
	AppendMessage(ctx context.Context, userID string, role domain.Role, text string) (*domain.Message, error)

	// History returns all messages for userID, oldest first. An identity
	// with no messages yields an empty slice, not an error.
	History(ctx context.Context, userID string) ([]domain.Message, error)

	Close() error
}

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB

	// Guards lastTs so assigned timestamps never go backwards even if the
	// wall clock does.
	mu     sync.Mutex
	lastTs time.Time
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore creates a new SQLite store.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// For in-memory SQLite, multiple connections create separate databases.
	// Keep a single connection to avoid schema/data disappearing across goroutines.
	if dsn == ":memory:" || strings.Contains(dsn, "mode=memory") {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return s, nil
}

// migrate runs database migrations.
func (s *SQLiteStore) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS messages (
			message_id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			role TEXT NOT NULL,
			content TEXT NOT NULL,
			created_at DATETIME NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_messages_user ON messages(user_id, created_at)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\n%s", err, m)
		}
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// AppendMessage inserts a new message. The timestamp is assigned here, under
// a lock, so it never decreases within this store instance.
func (s *SQLiteStore) AppendMessage(ctx context.Context, userID string, role domain.Role, text string) (*domain.Message, error) {
	msg := &domain.Message{
		MessageID: uuid.New().String(),
		UserID:    userID,
		Role:      role,
		Content:   text,
		CreatedAt: s.nextTimestamp(),
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO messages (message_id, user_id, role, content, created_at) VALUES (?, ?, ?, ?, ?)`,
		msg.MessageID, msg.UserID, msg.Role, msg.Content, msg.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("store unavailable: %w", err)
	}
	return msg, nil
}

// History retrieves all messages for a user, oldest first. Ties on
// created_at resolve by insertion order.
func (s *SQLiteStore) History(ctx context.Context, userID string) ([]domain.Message, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT message_id, user_id, role, content, created_at FROM messages
		 WHERE user_id = ? ORDER BY created_at ASC, rowid ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("store unavailable: %w", err)
	}
	defer rows.Close()

	messages := []domain.Message{}
	for rows.Next() {
		var msg domain.Message
		if err := rows.Scan(&msg.MessageID, &msg.UserID, &msg.Role, &msg.Content, &msg.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}

func (s *SQLiteStore) nextTimestamp() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	if now.Before(s.lastTs) {
		now = s.lastTs
	}
	s.lastTs = now
	return now
}
