package conversation

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/moodmatch/moodmatch-agent/internal/a2a"
)

func userMessage(text string) a2a.Message {
	return a2a.Message{
		Role:      a2a.RoleUser,
		Parts:     []a2a.MessagePart{a2a.TextPart(text)},
		MessageID: "msg-" + text,
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
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

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore()
	store.ttl = 10 * time.Millisecond
	ctx := context.Background()

	if err := store.Save(ctx, "ctx-1", []a2a.Message{userMessage("hi")}); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	time.Sleep(20 * time.Millisecond)

	got, err := store.History(ctx, "ctx-1")
	if err != nil {
		t.Fatalf("History error: %v", err)
	}
	if got != nil {
		t.Errorf("expired history = %+v, want nil", got)
	}
}

func TestMemoryStoreCapsHistory(t *testing.T) {
	store := NewMemoryStore()
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
	// Oldest messages are dropped first.
	if got[0].Parts[0].Text != "m2" {
		t.Errorf("first kept = %q, want m2", got[0].Parts[0].Text)
	}
}

func TestRedisStoreRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	store := NewRedisStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	ctx := context.Background()

	history := []a2a.Message{userMessage("hello")}
	if err := store.Save(ctx, "ctx-1", history); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	got, err := store.History(ctx, "ctx-1")
	if err != nil {
		t.Fatalf("History error: %v", err)
	}
	if len(got) != 1 || got[0].Parts[0].Text != "hello" {
		t.Errorf("history = %+v", got)
	}

	got, err = store.History(ctx, "nope")
	if err != nil || got != nil {
		t.Errorf("unknown context = %v, %v", got, err)
	}
}

func TestRedisStoreExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	store := NewRedisStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	ctx := context.Background()

	if err := store.Save(ctx, "ctx-1", []a2a.Message{userMessage("hi")}); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	mr.FastForward(defaultTTL + time.Minute)

	got, err := store.History(ctx, "ctx-1")
	if err != nil {
		t.Fatalf("History error: %v", err)
	}
	if got != nil {
		t.Errorf("expired history = %+v, want nil", got)
	}
}
