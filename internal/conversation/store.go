// Package conversation stores per-context message history.
package conversation

import (
	"context"
	"sync"
	"time"

	"github.com/moodmatch/moodmatch-agent/internal/a2a"
)

const (
	// defaultTTL is how long an idle conversation is kept.
	defaultTTL = 24 * time.Hour

	// maxHistory caps the number of messages kept per conversation.
	maxHistory = 50
)

// Store keeps conversation history per context ID.
type Store interface {
	History(ctx context.Context, contextID string) ([]a2a.Message, error)
	Save(ctx context.Context, contextID string, history []a2a.Message) error
}

// MemoryStore keeps conversations in memory.
type MemoryStore struct {
	mu            sync.RWMutex
	conversations map[string]*memoryEntry
	ttl           time.Duration
	limit         int
}

type memoryEntry struct {
	history   []a2a.Message
	updatedAt time.Time
}

// NewMemoryStore creates an in-memory conversation store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		conversations: make(map[string]*memoryEntry),
		ttl:           defaultTTL,
		limit:         maxHistory,
	}
}

// History returns the stored messages for a context, or nil when the
// conversation is unknown or has expired.
func (s *MemoryStore) History(_ context.Context, contextID string) ([]a2a.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.conversations[contextID]
	if !ok || time.Since(entry.updatedAt) > s.ttl {
		return nil, nil
	}

	out := make([]a2a.Message, len(entry.history))
	copy(out, entry.history)
	return out, nil
}

// Save replaces the history for a context, keeping only the most
// recent messages.
func (s *MemoryStore) Save(_ context.Context, contextID string, history []a2a.Message) error {
	history = trim(history, s.limit)

	stored := make([]a2a.Message, len(history))
	copy(stored, history)

	s.mu.Lock()
	s.conversations[contextID] = &memoryEntry{
		history:   stored,
		updatedAt: time.Now(),
	}
	s.mu.Unlock()
	return nil
}

func trim(history []a2a.Message, limit int) []a2a.Message {
	if len(history) > limit {
		return history[len(history)-limit:]
	}
	return history
}

var _ Store = (*MemoryStore)(nil)
