package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ConversationRepository handles conversation history operations.
type ConversationRepository struct {
	pool *pgxpool.Pool
}

// Upsert stores the history for a context, replacing any previous
// version.
func (r *ConversationRepository) Upsert(ctx context.Context, contextID string, history []byte) error {
	query := `
		INSERT INTO conversations (context_id, history, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (context_id)
		DO UPDATE SET history = EXCLUDED.history, updated_at = NOW()
	`
	_, err := r.pool.Exec(ctx, query, contextID, history)
	if err != nil {
		return fmt.Errorf("upserting conversation: %w", err)
	}
	return nil
}

// Get retrieves the stored history for a context.
func (r *ConversationRepository) Get(ctx context.Context, contextID string) (*Conversation, error) {
	query := `
		SELECT context_id, history, updated_at
		FROM conversations
		WHERE context_id = $1
	`
	var conv Conversation
	err := r.pool.QueryRow(ctx, query, contextID).Scan(
		&conv.ContextID,
		&conv.History,
		&conv.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying conversation: %w", err)
	}
	return &conv, nil
}

// Delete removes the stored history for a context.
func (r *ConversationRepository) Delete(ctx context.Context, contextID string) error {
	query := `DELETE FROM conversations WHERE context_id = $1`
	if _, err := r.pool.Exec(ctx, query, contextID); err != nil {
		return fmt.Errorf("deleting conversation: %w", err)
	}
	return nil
}
