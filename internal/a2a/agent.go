package a2a

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/moodmatch/moodmatch-agent/internal/analyzer"
	"github.com/moodmatch/moodmatch-agent/internal/recommend"
)

// MoodAnalyzer classifies a user message into a mood analysis.
type MoodAnalyzer interface {
	Analyze(ctx context.Context, message string) (*analyzer.Analysis, error)
}

// Recommender turns a mood analysis into media recommendations.
type Recommender interface {
	Recommend(ctx context.Context, analysis *analyzer.Analysis) (*recommend.Result, error)
}

// HistoryStore keeps conversation history per context. May be nil.
type HistoryStore interface {
	History(ctx context.Context, contextID string) ([]Message, error)
	Save(ctx context.Context, contextID string, history []Message) error
}

// TaskRecorder persists completed tasks. May be nil.
type TaskRecorder interface {
	RecordTask(ctx context.Context, taskID, contextID, moodLabel string, intensity int, hasMusic, hasMovie, hasBook bool) error
}

// Agent processes A2A messages into mood-based recommendations.
type Agent struct {
	analyzer    MoodAnalyzer
	recommender Recommender
	history     HistoryStore
	recorder    TaskRecorder
}

// NewAgent creates an agent. The history store and task recorder are
// optional.
func NewAgent(moodAnalyzer MoodAnalyzer, recommender Recommender, history HistoryStore, recorder TaskRecorder) *Agent {
	return &Agent{
		analyzer:    moodAnalyzer,
		recommender: recommender,
		history:     history,
		recorder:    recorder,
	}
}

// ProcessMessages analyzes the user's messages and returns a task
// result with recommendation artifacts. Processing failures become a
// failed task result rather than an error.
func (a *Agent) ProcessMessages(ctx context.Context, params *Params) *TaskResult {
	contextID := params.ContextID
	if contextID == "" {
		contextID = uuid.NewString()
	}
	taskID := params.TaskID
	if taskID == "" {
		taskID = uuid.NewString()
	}

	log.Printf("a2a: processing task %s in context %s", taskID, contextID)

	text := extractUserText(params.Messages)
	if text == "" {
		return a.failedResult(contextID, taskID, "No user message found to process")
	}

	analysis, err := a.analyzer.Analyze(ctx, text)
	if err != nil {
		log.Printf("a2a: mood analysis failed: %v", err)
		return a.failedResult(contextID, taskID, fmt.Sprintf("Failed to analyze mood: %v", err))
	}

	result, err := a.recommender.Recommend(ctx, analysis)
	if err != nil {
		log.Printf("a2a: recommendation failed: %v", err)
		return a.failedResult(contextID, taskID, "Unable to generate recommendations at this time. Please try again.")
	}

	response := NewAgentMessage(contextID, taskID, TextPart(renderResponse(result)))
	history := buildHistory(params.Messages, response)
	a.saveHistory(ctx, contextID, history)
	a.recordTask(ctx, taskID, contextID, result)

	return &TaskResult{
		TaskID:    taskID,
		ContextID: contextID,
		Status: TaskStatus{
			State:     StateCompleted,
			Timestamp: time.Now().UTC(),
			Message:   "Recommendations generated successfully",
		},
		Artifacts: buildArtifacts(result),
		History:   history,
		Kind:      "task",
	}
}

func (a *Agent) saveHistory(ctx context.Context, contextID string, history []Message) {
	if a.history == nil {
		return
	}
	if err := a.history.Save(ctx, contextID, history); err != nil {
		log.Printf("a2a: saving history for context %s failed: %v", contextID, err)
	}
}

func (a *Agent) recordTask(ctx context.Context, taskID, contextID string, result *recommend.Result) {
	if a.recorder == nil {
		return
	}
	err := a.recorder.RecordTask(ctx, taskID, contextID,
		result.Analysis.PrimaryMood, result.Analysis.Intensity,
		result.Music != nil, result.Movie != nil, result.Book != nil)
	if err != nil {
		log.Printf("a2a: recording task %s failed: %v", taskID, err)
	}
}

func (a *Agent) failedResult(contextID, taskID, message string) *TaskResult {
	log.Printf("a2a: task %s failed: %s", taskID, message)

	apology := fmt.Sprintf(
		"I apologize, but I encountered an issue: %s\n\nPlease try again or rephrase your message.", message)

	return &TaskResult{
		TaskID:    taskID,
		ContextID: contextID,
		Status: TaskStatus{
			State:     StateFailed,
			Timestamp: time.Now().UTC(),
			Message:   message,
		},
		Artifacts: []Artifact{},
		History:   []Message{NewAgentMessage(contextID, taskID, TextPart(apology))},
		Kind:      "task",
	}
}

// extractUserText concatenates the text parts of all user messages.
func extractUserText(messages []Message) string {
	var parts []string
	for _, msg := range messages {
		if msg.Role != RoleUser {
			continue
		}
		for _, part := range msg.Parts {
			if part.Kind == KindText && part.Text != "" {
				parts = append(parts, part.Text)
			}
		}
	}
	return strings.Join(parts, " ")
}

// buildHistory keeps the user messages and appends the agent response.
func buildHistory(messages []Message, response Message) []Message {
	history := make([]Message, 0, len(messages)+1)
	for _, msg := range messages {
		if msg.Role == RoleUser {
			history = append(history, msg)
		}
	}
	return append(history, response)
}

func buildArtifacts(result *recommend.Result) []Artifact {
	artifacts := []Artifact{
		NewArtifact("mood_analysis", DataPart(result.Analysis)),
	}
	if result.Music != nil {
		artifacts = append(artifacts, NewArtifact("music_recommendation", DataPart(result.Music)))
	}
	if result.Movie != nil {
		artifacts = append(artifacts, NewArtifact("movie_recommendation", DataPart(result.Movie)))
	}
	if result.Book != nil {
		artifacts = append(artifacts, NewArtifact("book_recommendation", DataPart(result.Book)))
	}
	return artifacts
}

// renderResponse formats the recommendations as a friendly text reply.
func renderResponse(result *recommend.Result) string {
	analysis := result.Analysis
	label := strings.ToLower(analysis.PrimaryMood)

	var b strings.Builder

	if analysis.Intensity >= 7 {
		fmt.Fprintf(&b, "I can sense you're feeling quite %s right now. ", label)
	} else {
		fmt.Fprintf(&b, "I understand you're feeling %s. ", label)
	}

	switch analysis.ImmediateNeed {
	case analyzer.NeedEscape:
		b.WriteString("Let me help you find some great ways to escape and shift your perspective.")
	case analyzer.NeedProcess:
		b.WriteString("Here are some thoughtful recommendations to help you process these feelings.")
	case analyzer.NeedUplift:
		b.WriteString("I've found some uplifting options to help improve your mood.")
	case analyzer.NeedCalm:
		b.WriteString("These recommendations should help you find some calm and peace.")
	case analyzer.NeedMatch:
		b.WriteString("Here are some perfect matches for your current mood.")
	case analyzer.NeedChannel:
		b.WriteString("These recommendations will help you channel that energy productively.")
	default:
		b.WriteString("Here are some personalized recommendations for you.")
	}
	b.WriteString("\n\n")

	if m := result.Music; m != nil {
		fmt.Fprintf(&b, "🎵 **Music**: %s\n", m.Title)
		fmt.Fprintf(&b, "   %s\n", m.MoodMatch)
		fmt.Fprintf(&b, "   Perfect for: %s\n", m.UseCase)
		if m.Duration != "" {
			fmt.Fprintf(&b, "   Duration: %s\n", m.Duration)
		}
		fmt.Fprintf(&b, "   🔗 [Listen here](%s)\n\n", m.URL)
	}

	if m := result.Movie; m != nil {
		fmt.Fprintf(&b, "🎬 **Movie**: %s", m.Title)
		if m.Year > 0 {
			fmt.Fprintf(&b, " (%d)", m.Year)
		}
		b.WriteString("\n")
		fmt.Fprintf(&b, "   %s\n", m.MoodMatch)
		fmt.Fprintf(&b, "   %s\n", m.Why)
		if len(m.Genres) > 0 {
			fmt.Fprintf(&b, "   Genres: %s\n", strings.Join(m.Genres, ", "))
		}
		if m.Rating > 0 {
			fmt.Fprintf(&b, "   Rating: %.1f/10\n", m.Rating)
		}
		fmt.Fprintf(&b, "   🔗 [Watch here](%s)\n\n", m.URL)
	}

	if bk := result.Book; bk != nil {
		fmt.Fprintf(&b, "📚 **Book**: %s\n", bk.Title)
		if bk.Author != "" {
			fmt.Fprintf(&b, "   by %s\n", bk.Author)
		}
		fmt.Fprintf(&b, "   %s\n", bk.MoodMatch)
		fmt.Fprintf(&b, "   %s\n", bk.Why)
		fmt.Fprintf(&b, "   Reading time: %s\n", bk.ReadingTime)
		if bk.Rating > 0 {
			fmt.Fprintf(&b, "   Rating: %.1f/5\n", bk.Rating)
		}
		if url := bk.URLs["google_books"]; url != "" {
			fmt.Fprintf(&b, "   🔗 [Find it here](%s)\n\n", url)
		}
	}

	b.WriteString("\n💙 I hope these recommendations help! Let me know if you'd like different suggestions.")
	return b.String()
}
