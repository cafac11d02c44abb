// AngelaMos | 2026
// repository.go

package message

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/angelamos/realty/internal/core"
)

type Repository interface {
	Create(ctx context.Context, m *Message) error
	GetByID(ctx context.Context, id int64) (*Message, error)
	ListForUser(ctx context.Context, email string) ([]Message, error)
	ListConversation(ctx context.Context, a, b string) ([]Message, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, m *Message) error {
	query := `
		INSERT INTO messages (sender, recipient, content)
		VALUES ($1, $2, $3)
		RETURNING id, timestamp`

	err := r.db.GetContext(ctx, m, query, m.Sender, m.Recipient, m.Content)
	if err != nil {
		return fmt.Errorf("create message: %w", err)
	}

	return nil
}

func (r *repository) GetByID(
	ctx context.Context,
	id int64,
) (*Message, error) {
	query := `
		SELECT id, sender, recipient, content, timestamp
		FROM messages
		WHERE id = $1`

	var m Message
	err := r.db.GetContext(ctx, &m, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get message: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get message: %w", err)
	}

	return &m, nil
}

func (r *repository) ListForUser(
	ctx context.Context,
	email string,
) ([]Message, error) {
	query := `
		SELECT id, sender, recipient, content, timestamp
		FROM messages
		WHERE sender = $1 OR recipient = $1
		ORDER BY timestamp DESC`

	var messages []Message
	if err := r.db.SelectContext(ctx, &messages, query, email); err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	return messages, nil
}

func (r *repository) ListConversation(
	ctx context.Context,
	a, b string,
) ([]Message, error) {
	query := `
		SELECT id, sender, recipient, content, timestamp
		FROM messages
		WHERE (sender = $1 AND recipient = $2)
		   OR (sender = $2 AND recipient = $1)
		ORDER BY timestamp ASC`

	var messages []Message
	if err := r.db.SelectContext(ctx, &messages, query, a, b); err != nil {
		return nil, fmt.Errorf("list conversation: %w", err)
	}

	return messages, nil
}
