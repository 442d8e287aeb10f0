package recommend

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/moodmatch/moodmatch-agent/internal/analyzer"
	"github.com/moodmatch/moodmatch-agent/internal/book"
	"github.com/moodmatch/moodmatch-agent/internal/mood"
	"github.com/moodmatch/moodmatch-agent/internal/movie"
	"github.com/moodmatch/moodmatch-agent/internal/music"
)

type stubMusic struct {
	rec *music.Recommendation
	err error
}

func (s *stubMusic) Recommend(ctx context.Context, analysis *analyzer.Analysis, profile mood.Profile) (*music.Recommendation, error) {
	return s.rec, s.err
}

type stubMovie struct {
	rec   *movie.Recommendation
	err   error
	panic bool
}

func (s *stubMovie) Recommend(ctx context.Context, analysis *analyzer.Analysis, profile mood.Profile) (*movie.Recommendation, error) {
	if s.panic {
		panic("movie stub exploded")
	}
	return s.rec, s.err
}

type stubBook struct {
	rec *book.Recommendation
	err error
}

func (s *stubBook) Recommend(ctx context.Context, analysis *analyzer.Analysis, profile mood.Profile) (*book.Recommendation, error) {
	return s.rec, s.err
}

func sadAnalysis() *analyzer.Analysis {
	return &analyzer.Analysis{PrimaryMood: "sad", Intensity: 6, ImmediateNeed: analyzer.NeedProcess, Confidence: 0.9}
}

func TestRecommendAllProviders(t *testing.T) {
	svc := NewService(
		&stubMusic{rec: &music.Recommendation{Title: "Sad Songs", Platform: "spotify"}},
		&stubMovie{rec: &movie.Recommendation{Title: "Manchester by the Sea", Year: 2016}},
		&stubBook{rec: &book.Recommendation{Title: "The Kite Runner", Author: "Khaled Hosseini"}},
	)

	result, err := svc.Recommend(context.Background(), sadAnalysis())
	if err != nil {
		t.Fatalf("Recommend error: %v", err)
	}
	if result.Music == nil || result.Movie == nil || result.Book == nil {
		t.Fatalf("missing recommendations: %+v", result)
	}
	want := "For your sad mood (intensity: 6/10) to help you process your feelings, " +
		"we recommend music from spotify, a 2016 film and a book by Khaled Hosseini."
	if result.Summary != want {
		t.Errorf("summary = %q, want %q", result.Summary, want)
	}
}

func TestRecommendIsolatesProviderFailures(t *testing.T) {
	svc := NewService(
		&stubMusic{err: errors.New("spotify down")},
		&stubMovie{rec: &movie.Recommendation{Title: "Arrival", Year: 2016}},
		&stubBook{err: errors.New("books down")},
	)

	result, err := svc.Recommend(context.Background(), sadAnalysis())
	if err != nil {
		t.Fatalf("Recommend error: %v", err)
	}
	if result.Music != nil || result.Book != nil {
		t.Error("failed providers should yield nil recommendations")
	}
	if result.Movie == nil || result.Movie.Title != "Arrival" {
		t.Errorf("movie = %+v, want Arrival", result.Movie)
	}
	if !strings.Contains(result.Summary, "we recommend a 2016 film.") {
		t.Errorf("summary = %q", result.Summary)
	}
}

func TestRecommendIsolatesProviderPanic(t *testing.T) {
	svc := NewService(
		&stubMusic{rec: &music.Recommendation{Title: "Mix", Platform: "spotify"}},
		&stubMovie{panic: true},
		&stubBook{rec: &book.Recommendation{Title: "Walden"}},
	)

	result, err := svc.Recommend(context.Background(), sadAnalysis())
	if err != nil {
		t.Fatalf("Recommend error: %v", err)
	}
	if result.Movie != nil {
		t.Error("panicking provider should yield nil")
	}
	if result.Music == nil || result.Book == nil {
		t.Error("other providers should survive a panic")
	}
	if !strings.Contains(result.Summary, "music from spotify and a book.") {
		t.Errorf("summary = %q", result.Summary)
	}
}

func TestRecommendAllEmpty(t *testing.T) {
	svc := NewService(
		&stubMusic{err: errors.New("down")},
		&stubMovie{err: movie.ErrNoResults},
		&stubBook{err: errors.New("down")},
	)

	_, err := svc.Recommend(context.Background(), sadAnalysis())
	if !errors.Is(err, ErrNoRecommendations) {
		t.Errorf("err = %v, want ErrNoRecommendations", err)
	}
}

func TestRecommendSkipsNilProviders(t *testing.T) {
	svc := NewService(
		nil,
		nil,
		&stubBook{rec: &book.Recommendation{Title: "Atomic Habits", Author: "James Clear"}},
	)

	result, err := svc.Recommend(context.Background(), sadAnalysis())
	if err != nil {
		t.Fatalf("Recommend error: %v", err)
	}
	if result.Music != nil || result.Movie != nil {
		t.Error("unconfigured providers should be skipped")
	}
	if !strings.Contains(result.Summary, "we recommend a book by James Clear.") {
		t.Errorf("summary = %q", result.Summary)
	}
}
