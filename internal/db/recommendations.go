package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RecommendationRepository handles recommendation record operations.
type RecommendationRepository struct {
	pool *pgxpool.Pool
}

// Create inserts a new recommendation record.
func (r *RecommendationRepository) Create(ctx context.Context, rec *Recommendation) error {
	query := `
		INSERT INTO recommendations (id, task_id, context_id, mood, intensity, has_music, has_movie, has_book)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.pool.Exec(ctx, query,
		rec.ID,
		rec.TaskID,
		rec.ContextID,
		rec.Mood,
		rec.Intensity,
		rec.HasMusic,
		rec.HasMovie,
		rec.HasBook,
	)
	if err != nil {
		return fmt.Errorf("inserting recommendation: %w", err)
	}
	return nil
}

// ListRecent returns the most recent recommendation records.
func (r *RecommendationRepository) ListRecent(ctx context.Context, limit int) ([]Recommendation, error) {
	query := `
		SELECT id, task_id, context_id, mood, intensity, has_music, has_movie, has_book, created_at
		FROM recommendations
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("querying recommendations: %w", err)
	}
	defer rows.Close()

	var recs []Recommendation
	for rows.Next() {
		var rec Recommendation
		err := rows.Scan(
			&rec.ID,
			&rec.TaskID,
			&rec.ContextID,
			&rec.Mood,
			&rec.Intensity,
			&rec.HasMusic,
			&rec.HasMovie,
			&rec.HasBook,
			&rec.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning recommendation: %w", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating recommendations: %w", err)
	}
	return recs, nil
}

// CountByMood returns how many recommendations were generated per
// mood label.
func (r *RecommendationRepository) CountByMood(ctx context.Context) (map[string]int, error) {
	query := `
		SELECT mood, COUNT(*)
		FROM recommendations
		GROUP BY mood
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying mood counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var mood string
		var count int
		if err := rows.Scan(&mood, &count); err != nil {
			return nil, fmt.Errorf("scanning mood count: %w", err)
		}
		counts[mood] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating mood counts: %w", err)
	}
	return counts, nil
}
