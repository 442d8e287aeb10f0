package a2a

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/moodmatch/moodmatch-agent/internal/analyzer"
	"github.com/moodmatch/moodmatch-agent/internal/book"
	"github.com/moodmatch/moodmatch-agent/internal/movie"
	"github.com/moodmatch/moodmatch-agent/internal/music"
	"github.com/moodmatch/moodmatch-agent/internal/recommend"
)

type stubAnalyzer struct {
	analysis *analyzer.Analysis
	err      error
}

func (s *stubAnalyzer) Analyze(ctx context.Context, message string) (*analyzer.Analysis, error) {
	return s.analysis, s.err
}

type stubRecommender struct {
	result *recommend.Result
	err    error
}

func (s *stubRecommender) Recommend(ctx context.Context, analysis *analyzer.Analysis) (*recommend.Result, error) {
	return s.result, s.err
}

func testAgent() *Agent {
	analysis := &analyzer.Analysis{PrimaryMood: "happy", Intensity: 8, ImmediateNeed: analyzer.NeedMatch, Confidence: 0.95}
	result := &recommend.Result{
		Analysis: analysis,
		Music:    &music.Recommendation{Title: "Happy Hits", Platform: "spotify", URL: "https://open.spotify.com/x"},
		Movie:    &movie.Recommendation{Title: "Paddington 2", Year: 2017, Rating: 8.2},
		Book:     &book.Recommendation{Title: "The Midnight Library", Author: "Matt Haig", ReadingTime: "6h", URLs: map[string]string{"google_books": "https://books.google.com/x"}},
		Summary:  "happy picks",
	}
	return NewAgent(&stubAnalyzer{analysis: analysis}, &stubRecommender{result: result}, nil, nil)
}

func postRPC(t *testing.T, handler http.Handler, body string) (*httptest.ResponseRecorder, Response) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/a2a/moodmatch", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	var resp Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return w, resp
}

func TestHandlerMessageSend(t *testing.T) {
	handler := NewHandler(testAgent())

	w, resp := postRPC(t, handler, `{
		"jsonrpc": "2.0",
		"id": "req-1",
		"method": "message/send",
		"params": {
			"contextId": "ctx-1",
			"taskId": "task-1",
			"messages": [{"role": "user", "parts": [{"kind": "text", "text": "I aced my exam today!"}]}]
		}
	}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if resp.Error != nil {
		t.Fatalf("unexpected error: %+v", resp.Error)
	}
	if string(resp.ID) != `"req-1"` {
		t.Errorf("id = %s, want req-1", resp.ID)
	}

	result := resp.Result
	if result.TaskID != "task-1" || result.ContextID != "ctx-1" {
		t.Errorf("ids = %s/%s, want task-1/ctx-1", result.TaskID, result.ContextID)
	}
	if result.Status.State != StateCompleted {
		t.Errorf("state = %s, want completed", result.Status.State)
	}
	if result.Kind != "task" {
		t.Errorf("kind = %q, want task", result.Kind)
	}
	names := make([]string, len(result.Artifacts))
	for i, a := range result.Artifacts {
		names[i] = a.Name
	}
	want := []string{"mood_analysis", "music_recommendation", "movie_recommendation", "book_recommendation"}
	if len(names) != len(want) {
		t.Fatalf("artifacts = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("artifact[%d] = %q, want %q", i, names[i], want[i])
		}
	}
	// History carries the user turn plus the agent reply.
	if len(result.History) != 2 || result.History[0].Role != RoleUser || result.History[1].Role != RoleAgent {
		t.Errorf("history = %+v", result.History)
	}
	reply := result.History[1].Parts[0].Text
	for _, want := range []string{"Happy Hits", "Paddington 2 (2017)", "The Midnight Library", "quite happy"} {
		if !strings.Contains(reply, want) {
			t.Errorf("reply missing %q", want)
		}
	}
}

func TestHandlerExecuteMethod(t *testing.T) {
	handler := NewHandler(testAgent())

	w, resp := postRPC(t, handler, `{
		"jsonrpc": "2.0",
		"id": 7,
		"method": "execute",
		"params": {"messages": [{"role": "user", "parts": [{"kind": "text", "text": "feeling good"}]}]}
	}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if string(resp.ID) != "7" {
		t.Errorf("id = %s, want 7", resp.ID)
	}
	// Missing ids get generated.
	if resp.Result.TaskID == "" || resp.Result.ContextID == "" {
		t.Error("missing generated task/context ids")
	}
}

func TestHandlerErrors(t *testing.T) {
	handler := NewHandler(testAgent())

	tests := []struct {
		name       string
		body       string
		wantCode   int
		wantStatus int
	}{
		{
			name:       "invalid json",
			body:       `{not json`,
			wantCode:   CodeParseError,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "wrong version",
			body:       `{"jsonrpc": "1.0", "id": 1, "method": "execute", "params": {}}`,
			wantCode:   CodeInvalidRequest,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing id",
			body:       `{"jsonrpc": "2.0", "method": "execute", "params": {}}`,
			wantCode:   CodeInvalidRequest,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown method",
			body:       `{"jsonrpc": "2.0", "id": 1, "method": "tasks/list", "params": {}}`,
			wantCode:   CodeMethodNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "missing params",
			body:       `{"jsonrpc": "2.0", "id": 1, "method": "execute"}`,
			wantCode:   CodeInvalidParams,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "no messages",
			body:       `{"jsonrpc": "2.0", "id": 1, "method": "message/send", "params": {"messages": []}}`,
			wantCode:   CodeInvalidParams,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, resp := postRPC(t, handler, tt.body)
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if resp.Error == nil {
				t.Fatal("expected error response")
			}
			if resp.Error.Code != tt.wantCode {
				t.Errorf("code = %d, want %d", resp.Error.Code, tt.wantCode)
			}
		})
	}
}

func TestProcessMessagesNoUserText(t *testing.T) {
	agent := testAgent()

	result := agent.ProcessMessages(context.Background(), &Params{
		Messages: []Message{{Role: RoleAgent, Parts: []MessagePart{TextPart("hi")}}},
	})
	if result.Status.State != StateFailed {
		t.Errorf("state = %s, want failed", result.Status.State)
	}
	if result.Status.Message != "No user message found to process" {
		t.Errorf("message = %q", result.Status.Message)
	}
	if len(result.Artifacts) != 0 {
		t.Errorf("artifacts = %v, want none", result.Artifacts)
	}
}

func TestProcessMessagesAnalyzerFailure(t *testing.T) {
	agent := NewAgent(
		&stubAnalyzer{err: errors.New("llm unavailable")},
		&stubRecommender{},
		nil, nil,
	)

	result := agent.ProcessMessages(context.Background(), &Params{
		Messages: []Message{{Role: RoleUser, Parts: []MessagePart{TextPart("hello")}}},
	})
	if result.Status.State != StateFailed {
		t.Errorf("state = %s, want failed", result.Status.State)
	}
	if !strings.Contains(result.Status.Message, "Failed to analyze mood") {
		t.Errorf("message = %q", result.Status.Message)
	}
}

func TestProcessMessagesRecommenderFailure(t *testing.T) {
	agent := NewAgent(
		&stubAnalyzer{analysis: &analyzer.Analysis{PrimaryMood: "sad", Intensity: 5, ImmediateNeed: analyzer.NeedProcess}},
		&stubRecommender{err: recommend.ErrNoRecommendations},
		nil, nil,
	)

	result := agent.ProcessMessages(context.Background(), &Params{
		Messages: []Message{{Role: RoleUser, Parts: []MessagePart{TextPart("rough day")}}},
	})
	if result.Status.State != StateFailed {
		t.Errorf("state = %s, want failed", result.Status.State)
	}
}

func TestExtractUserText(t *testing.T) {
	messages := []Message{
		{Role: RoleSystem, Parts: []MessagePart{TextPart("ignored")}},
		{Role: RoleUser, Parts: []MessagePart{TextPart("first"), DataPart(map[string]any{"x": 1})}},
		{Role: RoleAgent, Parts: []MessagePart{TextPart("also ignored")}},
		{Role: RoleUser, Parts: []MessagePart{TextPart("second")}},
	}
	if got := extractUserText(messages); got != "first second" {
		t.Errorf("extractUserText = %q, want %q", got, "first second")
	}
}
