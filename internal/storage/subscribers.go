package storage

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Subscribers manages the broadcast destination list: one chat id per row,
// inserted on first contact and never updated or removed.
type Subscribers struct {
	db *sqlx.DB
}

// NewSubscribers wraps the shared connection.
func NewSubscribers(db *sqlx.DB) *Subscribers {
	return &Subscribers{db: db}
}

// List returns every subscribed chat id.
func (s *Subscribers) List(ctx context.Context) ([]int64, error) {
	var ids []int64
	if err := s.db.SelectContext(ctx, &ids, `SELECT id FROM chats`); err != nil {
		return nil, wrap("list subscribers", err)
	}
	return ids, nil
}

// Has reports whether the chat id is already subscribed. The chats table
// carries no unique constraint, so callers must check before Add.
func (s *Subscribers) Has(ctx context.Context, chatID int64) (bool, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, `SELECT count(*) FROM chats WHERE id = $1`, chatID); err != nil {
		return false, wrap("check subscriber", err)
	}
	return n > 0, nil
}

// Add inserts the chat id without guarding against duplicates.
func (s *Subscribers) Add(ctx context.Context, chatID int64) error {
	if _, err := s.db.ExecContext(ctx, `INSERT INTO chats (id) VALUES ($1)`, chatID); err != nil {
		return wrap("add subscriber", err)
	}
	return nil
}
