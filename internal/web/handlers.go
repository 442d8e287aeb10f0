package web

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/moodmatch/moodmatch-agent/internal/a2a"
	"github.com/moodmatch/moodmatch-agent/internal/db"
)

const (
	agentName    = "MoodMatch A2A Agent"
	agentVersion = "1.0.0"

	statsRecentLimit = 20
)

// StatsSource reports persisted recommendation statistics. May be nil
// when the agent runs without a database.
type StatsSource interface {
	ListRecent(ctx context.Context, limit int) ([]db.Recommendation, error)
	CountByMood(ctx context.Context) (map[string]int, error)
}

// Handlers holds the HTTP handlers for the agent endpoints.
type Handlers struct {
	agent *a2a.Agent
	rpc   *a2a.Handler
	stats StatsSource
}

// NewHandlers creates handlers for the given agent. The stats source
// is optional.
func NewHandlers(agent *a2a.Agent, stats StatsSource) *Handlers {
	return &Handlers{
		agent: agent,
		rpc:   a2a.NewHandler(agent),
		stats: stats,
	}
}

// A2A serves the JSON-RPC protocol endpoint.
func (h *Handlers) A2A(w http.ResponseWriter, r *http.Request) {
	h.rpc.ServeHTTP(w, r)
}

// Health reports service status.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":      "healthy",
		"agent":       agentName,
		"version":     agentVersion,
		"agent_ready": h.agent != nil,
	})
}

// AgentCard serves the agent's capability card.
func (h *Handlers) AgentCard(w http.ResponseWriter, r *http.Request) {
	card := map[string]any{
		"name":        agentName,
		"description": "Mood-based recommendation agent that suggests music, movies, and books using AI mood analysis",
		"version":     agentVersion,
		"capabilities": map[string]any{
			"streaming":         false,
			"pushNotifications": false,
		},
		"defaultInputModes":  []string{"text"},
		"defaultOutputModes": []string{"text", "data"},
		"skills": []map[string]any{
			{
				"id":          "mood_recommendations",
				"name":        "Mood-based media recommendations",
				"description": "Analyzes the user's mood from free text and recommends matching music, a movie, and a book",
				"examples": []string{
					"I just got promoted and I'm over the moon!",
					"Feeling really drained after this week.",
				},
			},
		},
		"endpoints": map[string]string{
			"a2a":    "/a2a/moodmatch",
			"health": "/health",
		},
	}
	writeJSON(w, http.StatusOK, card)
}

// Stats reports how many recommendations were generated per mood and
// the most recent tasks. Available only with database persistence.
func (h *Handlers) Stats(w http.ResponseWriter, r *http.Request) {
	if h.stats == nil {
		writeJSON(w, http.StatusNotFound, map[string]any{
			"error": "statistics require database persistence",
		})
		return
	}

	counts, err := h.stats.CountByMood(r.Context())
	if err != nil {
		log.Printf("web: loading mood counts failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "loading statistics failed"})
		return
	}

	records, err := h.stats.ListRecent(r.Context(), statsRecentLimit)
	if err != nil {
		log.Printf("web: loading recent recommendations failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "loading statistics failed"})
		return
	}

	total := 0
	for _, n := range counts {
		total += n
	}

	recent := make([]map[string]any, len(records))
	for i, rec := range records {
		recent[i] = map[string]any{
			"task_id":    rec.TaskID,
			"mood":       rec.Mood,
			"intensity":  rec.Intensity,
			"has_music":  rec.HasMusic,
			"has_movie":  rec.HasMovie,
			"has_book":   rec.HasBook,
			"created_at": rec.CreatedAt,
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"total":   total,
		"by_mood": counts,
		"recent":  recent,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("web: encoding response failed: %v", err)
	}
}
