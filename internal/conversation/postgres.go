package conversation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/moodmatch/moodmatch-agent/internal/a2a"
	"github.com/moodmatch/moodmatch-agent/internal/db"
)

// conversationRepo is the slice of the database layer the store uses.
type conversationRepo interface {
	Get(ctx context.Context, contextID string) (*db.Conversation, error)
	Upsert(ctx context.Context, contextID string, history []byte) error
}

// PostgresStore keeps conversations in PostgreSQL.
type PostgresStore struct {
	conversations conversationRepo
	limit         int
}

// NewPostgresStore creates a database-backed conversation store.
func NewPostgresStore(database *db.DB) *PostgresStore {
	return &PostgresStore{
		conversations: database.Conversations(),
		limit:         maxHistory,
	}
}

// History returns the stored messages for a context, or nil when the
// conversation is unknown.
func (s *PostgresStore) History(ctx context.Context, contextID string) ([]a2a.Message, error) {
	conv, err := s.conversations.Get(ctx, contextID)
	if errors.Is(err, db.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var history []a2a.Message
	if err := json.Unmarshal(conv.History, &history); err != nil {
		return nil, fmt.Errorf("decoding conversation %s: %w", contextID, err)
	}
	return history, nil
}

// Save replaces the history for a context, keeping only the most
// recent messages.
func (s *PostgresStore) Save(ctx context.Context, contextID string, history []a2a.Message) error {
	raw, err := json.Marshal(trim(history, s.limit))
	if err != nil {
		return fmt.Errorf("encoding conversation %s: %w", contextID, err)
	}
	return s.conversations.Upsert(ctx, contextID, raw)
}

var _ Store = (*PostgresStore)(nil)
