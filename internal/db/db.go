// Package db provides optional PostgreSQL persistence for completed
// tasks and conversation history.
package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Common errors.
var (
	ErrNotFound = errors.New("not found")
)

// DB wraps a PostgreSQL connection pool.
type DB struct {
	pool *pgxpool.Pool
}

// New creates a new database connection pool and ensures the schema
// exists.
func New(ctx context.Context, databaseURL string) (*DB, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing database URL: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	db := &DB{pool: pool}
	if err := db.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return db, nil
}

// Close closes the database connection pool.
func (db *DB) Close() {
	db.pool.Close()
}

// Pool returns the underlying connection pool for advanced operations.
func (db *DB) Pool() *pgxpool.Pool {
	return db.pool
}

// Recommendations returns a RecommendationRepository.
func (db *DB) Recommendations() *RecommendationRepository {
	return &RecommendationRepository{pool: db.pool}
}

// Conversations returns a ConversationRepository.
func (db *DB) Conversations() *ConversationRepository {
	return &ConversationRepository{pool: db.pool}
}

// RecordTask stores a record of a completed task. Satisfies the
// agent's task recorder.
func (db *DB) RecordTask(ctx context.Context, taskID, contextID, moodLabel string, intensity int, hasMusic, hasMovie, hasBook bool) error {
	return db.Recommendations().Create(ctx, &Recommendation{
		ID:        uuid.NewString(),
		TaskID:    taskID,
		ContextID: contextID,
		Mood:      moodLabel,
		Intensity: intensity,
		HasMusic:  hasMusic,
		HasMovie:  hasMovie,
		HasBook:   hasBook,
	})
}

// ensureSchema creates the tables if they do not exist yet.
func (db *DB) ensureSchema(ctx context.Context) error {
	schema := `
		CREATE TABLE IF NOT EXISTS recommendations (
			id         TEXT PRIMARY KEY,
			task_id    TEXT NOT NULL,
			context_id TEXT NOT NULL,
			mood       TEXT NOT NULL,
			intensity  INT NOT NULL,
			has_music  BOOLEAN NOT NULL,
			has_movie  BOOLEAN NOT NULL,
			has_book   BOOLEAN NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE TABLE IF NOT EXISTS conversations (
			context_id TEXT PRIMARY KEY,
			history    JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
	`
	if _, err := db.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensuring schema: %w", err)
	}
	return nil
}
