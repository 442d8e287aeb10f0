package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/moodmatch/moodmatch-agent/internal/db"
)

type fakeStats struct {
	recent []db.Recommendation
	counts map[string]int
}

func (f *fakeStats) ListRecent(ctx context.Context, limit int) ([]db.Recommendation, error) {
	return f.recent, nil
}

func (f *fakeStats) CountByMood(ctx context.Context) (map[string]int, error) {
	return f.counts, nil
}

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	// A nil agent is enough to exercise routing, health, and the
	// protocol-level error paths.
	srv := NewServer(ServerConfig{Agent: nil})
	ts := httptest.NewServer(srv.router)
	t.Cleanup(ts.Close)
	return ts
}

func TestHealthEndpoint(t *testing.T) {
	ts := testServer(t)

	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body["status"] != "healthy" {
		t.Errorf("status field = %v", body["status"])
	}
	if body["agent_ready"] != false {
		t.Errorf("agent_ready = %v, want false for nil agent", body["agent_ready"])
	}
}

func TestAgentCardEndpoint(t *testing.T) {
	ts := testServer(t)

	resp, err := http.Get(ts.URL + "/agent-card")
	if err != nil {
		t.Fatalf("GET /agent-card: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var card map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&card); err != nil {
		t.Fatalf("decoding card: %v", err)
	}
	if card["name"] != agentName {
		t.Errorf("name = %v", card["name"])
	}
	if _, ok := card["skills"]; !ok {
		t.Error("card missing skills")
	}
}

func TestA2AEndpointRejectsBadJSON(t *testing.T) {
	ts := testServer(t)

	resp, err := http.Post(ts.URL+"/a2a/moodmatch", "application/json", strings.NewReader("{broken"))
	if err != nil {
		t.Fatalf("POST /a2a/moodmatch: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestStatsEndpoint(t *testing.T) {
	stats := &fakeStats{
		recent: []db.Recommendation{
			{TaskID: "task-1", Mood: "happy", Intensity: 8, HasMusic: true, HasMovie: true, HasBook: false, CreatedAt: time.Now()},
		},
		counts: map[string]int{"happy": 3, "sad": 1},
	}
	srv := NewServer(ServerConfig{Agent: nil, Stats: stats})
	ts := httptest.NewServer(srv.router)
	t.Cleanup(ts.Close)

	resp, err := http.Get(ts.URL + "/stats")
	if err != nil {
		t.Fatalf("GET /stats: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var body struct {
		Total  int            `json:"total"`
		ByMood map[string]int `json:"by_mood"`
		Recent []struct {
			TaskID string `json:"task_id"`
			Mood   string `json:"mood"`
		} `json:"recent"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Total != 4 {
		t.Errorf("total = %d, want 4", body.Total)
	}
	if body.ByMood["happy"] != 3 {
		t.Errorf("by_mood = %v", body.ByMood)
	}
	if len(body.Recent) != 1 || body.Recent[0].TaskID != "task-1" || body.Recent[0].Mood != "happy" {
		t.Errorf("recent = %+v", body.Recent)
	}
}

func TestStatsEndpointWithoutDatabase(t *testing.T) {
	ts := testServer(t)

	resp, err := http.Get(ts.URL + "/stats")
	if err != nil {
		t.Fatalf("GET /stats: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestCORSPreflight(t *testing.T) {
	ts := testServer(t)

	req, _ := http.NewRequest(http.MethodOptions, ts.URL+"/a2a/moodmatch", nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("OPTIONS: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("status = %d, want 204", resp.StatusCode)
	}
	if resp.Header.Get("Access-Control-Allow-Origin") != "*" {
		t.Errorf("missing CORS header")
	}
}
