// Package recommend orchestrates mood-based recommendations across all
// media providers.
package recommend

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/moodmatch/moodmatch-agent/internal/analyzer"
	"github.com/moodmatch/moodmatch-agent/internal/book"
	"github.com/moodmatch/moodmatch-agent/internal/mood"
	"github.com/moodmatch/moodmatch-agent/internal/movie"
	"github.com/moodmatch/moodmatch-agent/internal/music"
)

// ErrNoRecommendations is returned when every provider came back empty.
var ErrNoRecommendations = errors.New("recommend: no provider returned a recommendation")

// MusicProvider produces a music recommendation for a mood.
type MusicProvider interface {
	Recommend(ctx context.Context, analysis *analyzer.Analysis, profile mood.Profile) (*music.Recommendation, error)
}

// MovieProvider produces a movie recommendation for a mood.
type MovieProvider interface {
	Recommend(ctx context.Context, analysis *analyzer.Analysis, profile mood.Profile) (*movie.Recommendation, error)
}

// BookProvider produces a book recommendation for a mood.
type BookProvider interface {
	Recommend(ctx context.Context, analysis *analyzer.Analysis, profile mood.Profile) (*book.Recommendation, error)
}

// Result bundles the mood analysis with every recommendation the
// providers produced. Absent media types are nil.
type Result struct {
	Analysis *analyzer.Analysis    `json:"mood_analysis"`
	Music    *music.Recommendation `json:"music,omitempty"`
	Movie    *movie.Recommendation `json:"movie,omitempty"`
	Book     *book.Recommendation  `json:"book,omitempty"`
	Summary  string                `json:"summary"`
}

// Service fans a single mood analysis out to all providers.
type Service struct {
	music MusicProvider
	movie MovieProvider
	book  BookProvider
}

// NewService creates an orchestrator. Any provider may be nil when its
// credentials are not configured; that media type is then skipped.
func NewService(musicProvider MusicProvider, movieProvider MovieProvider, bookProvider BookProvider) *Service {
	return &Service{
		music: musicProvider,
		movie: movieProvider,
		book:  bookProvider,
	}
}

// Recommend merges the analyzed moods into a single preference profile
// and queries all providers in parallel. A provider failure drops that
// media type rather than failing the whole request; an error is
// returned only when every provider came back empty.
func (s *Service) Recommend(ctx context.Context, analysis *analyzer.Analysis) (*Result, error) {
	profile := mood.Merge(analysis.Moods())

	result := &Result{Analysis: analysis}

	var wg sync.WaitGroup
	if s.music != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer logPanic("music")
			rec, err := s.music.Recommend(ctx, analysis, profile)
			if err != nil {
				log.Printf("recommend: music provider failed: %v", err)
				return
			}
			result.Music = rec
		}()
	} else {
		log.Println("recommend: music provider not configured, skipping")
	}
	if s.movie != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer logPanic("movie")
			rec, err := s.movie.Recommend(ctx, analysis, profile)
			if err != nil {
				log.Printf("recommend: movie provider failed: %v", err)
				return
			}
			result.Movie = rec
		}()
	} else {
		log.Println("recommend: movie provider not configured, skipping")
	}
	if s.book != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer logPanic("book")
			rec, err := s.book.Recommend(ctx, analysis, profile)
			if err != nil {
				log.Printf("recommend: book provider failed: %v", err)
				return
			}
			result.Book = rec
		}()
	} else {
		log.Println("recommend: book provider not configured, skipping")
	}
	wg.Wait()

	log.Printf("recommend: music=%t movie=%t book=%t",
		result.Music != nil, result.Movie != nil, result.Book != nil)

	if result.Music == nil && result.Movie == nil && result.Book == nil {
		return nil, ErrNoRecommendations
	}

	result.Summary = summarize(analysis, result)
	return result, nil
}

func logPanic(provider string) {
	if r := recover(); r != nil {
		log.Printf("recommend: %s provider panicked: %v", provider, r)
	}
}

// summarize builds a one-line description of what was recommended and
// why.
func summarize(analysis *analyzer.Analysis, result *Result) string {
	label := strings.ToLower(analysis.PrimaryMood)

	var b strings.Builder
	fmt.Fprintf(&b, "For your %s mood (intensity: %d/10) ", label, analysis.Intensity)

	switch analysis.ImmediateNeed {
	case analyzer.NeedEscape:
		b.WriteString("to help you escape")
	case analyzer.NeedProcess:
		b.WriteString("to help you process your feelings")
	case analyzer.NeedUplift:
		b.WriteString("to uplift your spirits")
	case analyzer.NeedCalm:
		b.WriteString("to calm your mind")
	case analyzer.NeedMatch:
		b.WriteString("that match your current state")
	case analyzer.NeedChannel:
		b.WriteString("to channel your energy")
	default:
		b.WriteString("tailored to your needs")
	}

	var parts []string
	if result.Music != nil {
		parts = append(parts, "music from "+result.Music.Platform)
	}
	if result.Movie != nil {
		if result.Movie.Year > 0 {
			parts = append(parts, fmt.Sprintf("a %d film", result.Movie.Year))
		} else {
			parts = append(parts, "a movie")
		}
	}
	if result.Book != nil {
		if result.Book.Author != "" {
			parts = append(parts, "a book by "+result.Book.Author)
		} else {
			parts = append(parts, "a book")
		}
	}

	switch len(parts) {
	case 0:
	case 1:
		b.WriteString(", we recommend " + parts[0])
	default:
		b.WriteString(", we recommend " + strings.Join(parts[:len(parts)-1], ", "))
		b.WriteString(" and " + parts[len(parts)-1])
	}

	b.WriteString(".")
	return b.String()
}
