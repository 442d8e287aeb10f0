package conversation

import (
	"context"
	"fmt"
	"testing"

	"github.com/moodmatch/moodmatch-agent/internal/a2a"
	"github.com/moodmatch/moodmatch-agent/internal/db"
)

type fakeRepo struct {
	rows map[string][]byte
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rows: make(map[string][]byte)}
}

func (f *fakeRepo) Get(_ context.Context, contextID string) (*db.Conversation, error) {
	history, ok := f.rows[contextID]
	if !ok {
		return nil, db.ErrNotFound
	}
	return &db.Conversation{ContextID: contextID, History: history}, nil
}

func (f *fakeRepo) Upsert(_ context.Context, contextID string, history []byte) error {
	f.rows[contextID] = history
	return nil
}

func newPostgresTestStore() (*PostgresStore, *fakeRepo) {
	repo := newFakeRepo()
	return &PostgresStore{conversations: repo, limit: maxHistory}, repo
}

func TestPostgresStoreRoundTrip(t *testing.T) {
	store, _ := newPostgresTestStore()
	ctx := context.Background()

	history := []a2a.Message{userMessage("hello"), userMessage("again")}
	if err := store.Save(ctx, "ctx-1", history); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	got, err := store.History(ctx, "ctx-1")
	if err != nil {
		t.Fatalf("History error: %v", err)
	}
	if len(got) != 2 || got[0].Parts[0].Text != "hello" {
		t.Errorf("history = %+v", got)
	}

	// Unknown contexts come back empty without error.
	got, err = store.History(ctx, "nope")
	if err != nil || got != nil {
		t.Errorf("unknown context = %v, %v", got, err)
	}
}

func TestPostgresStoreOverwrites(t *testing.T) {
	store, _ := newPostgresTestStore()
	ctx := context.Background()

	if err := store.Save(ctx, "ctx-1", []a2a.Message{userMessage("old")}); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if err := store.Save(ctx, "ctx-1", []a2a.Message{userMessage("new")}); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	got, _ := store.History(ctx, "ctx-1")
	if len(got) != 1 || got[0].Parts[0].Text != "new" {
		t.Errorf("history = %+v, want only the latest save", got)
	}
}

func TestPostgresStoreCapsHistory(t *testing.T) {
	store, _ := newPostgresTestStore()
	store.limit = 3
	ctx := context.Background()

	var history []a2a.Message
	for i := 0; i < 5; i++ {
		history = append(history, userMessage(fmt.Sprintf("m%d", i)))
	}
	if err := store.Save(ctx, "ctx-1", history); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	got, _ := store.History(ctx, "ctx-1")
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].Parts[0].Text != "m2" {
		t.Errorf("first kept = %q, want m2", got[0].Parts[0].Text)
	}
}

func TestPostgresStoreBadStoredHistory(t *testing.T) {
	store, repo := newPostgresTestStore()
	repo.rows["ctx-1"] = []byte("{not json")

	if _, err := store.History(context.Background(), "ctx-1"); err == nil {
		t.Error("expected error for undecodable history")
	}
}
