package book

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/moodmatch/moodmatch-agent/internal/analyzer"
	"github.com/moodmatch/moodmatch-agent/internal/mood"
)

const (
	baseURL   = "https://www.googleapis.com/books/v1/volumes"
	userAgent = "moodmatch-agent/1.0"

	// readingSpeed is the assumed pages-per-hour for time estimates.
	readingSpeed = 50

	maxResults = 20
)

// fallbackBook is a curated title used when the API yields nothing.
type fallbackBook struct {
	title  string
	author string
	themes []string
}

// fallbackBooks maps moods to curated titles.
var fallbackBooks = map[string]fallbackBook{
	"happy": {
		title:  "The Midnight Library",
		author: "Matt Haig",
		themes: []string{"hope", "second chances", "happiness"},
	},
	"sad": {
		title:  "The Kite Runner",
		author: "Khaled Hosseini",
		themes: []string{"loss", "redemption", "friendship"},
	},
	"anxious": {
		title:  "The Alchemist",
		author: "Paulo Coelho",
		themes: []string{"journey", "destiny", "peace"},
	},
	"calm": {
		title:  "Walden",
		author: "Henry David Thoreau",
		themes: []string{"nature", "simplicity", "reflection"},
	},
	"motivated": {
		title:  "Atomic Habits",
		author: "James Clear",
		themes: []string{"growth", "productivity", "success"},
	},
}

// Service finds books for a mood via the Google Books API.
type Service struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
}

// NewService creates a Google Books backed service.
func NewService(cfg *Config) *Service {
	return &Service{
		apiKey: cfg.APIKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: baseURL,
	}
}

// Recommend finds a book for the analyzed mood. A specific search is
// tried first, then a broader one, then a curated fallback title. The
// curated path still works when the API is down, so Recommend never
// fails outright.
func (s *Service) Recommend(ctx context.Context, analysis *analyzer.Analysis, profile mood.Profile) (*Recommendation, error) {
	if rec := s.search(ctx, analysis, profile, false); rec != nil {
		return rec, nil
	}
	log.Println("book: specific search found nothing, trying broader search")
	if rec := s.search(ctx, analysis, profile, true); rec != nil {
		return rec, nil
	}
	log.Println("book: no API results, using curated fallback")
	return s.fallback(ctx, analysis, profile), nil
}

func (s *Service) search(ctx context.Context, analysis *analyzer.Analysis, profile mood.Profile, broader bool) *Recommendation {
	query := buildSearchQuery(analysis, profile, broader)

	params := url.Values{
		"q":            {query},
		"langRestrict": {"en"},
		"printType":    {"books"},
		"orderBy":      {"relevance"},
		"maxResults":   {strconv.Itoa(maxResults)},
	}

	var resp volumesResponse
	if err := s.get(ctx, params, &resp); err != nil {
		log.Printf("book: search failed: %v", err)
		return nil
	}

	quality := filterQuality(resp.Items)
	if len(quality) == 0 {
		return nil
	}
	return buildRecommendation(quality[0], analysis, profile)
}

// fallback looks up the curated title for the mood via the API, and
// builds the record by hand if even that fails.
func (s *Service) fallback(ctx context.Context, analysis *analyzer.Analysis, profile mood.Profile) *Recommendation {
	fb, ok := fallbackBooks[strings.ToLower(analysis.PrimaryMood)]
	if !ok {
		fb = fallbackBooks["happy"]
	}

	params := url.Values{
		"q":            {fb.title + " " + fb.author},
		"langRestrict": {"en"},
		"maxResults":   {"1"},
	}

	var resp volumesResponse
	if err := s.get(ctx, params, &resp); err == nil && len(resp.Items) > 0 {
		return buildRecommendation(resp.Items[0], analysis, profile)
	}

	rec := &Recommendation{
		Title:       fb.title,
		Author:      fb.author,
		Themes:      fb.themes,
		ReadingTime: "Unknown",
		URLs:        buildURLs(fb.title, fb.author, "", ""),
	}
	rec.MoodMatch = moodMatch(analysis, profile, rec.Themes)
	rec.Why = explanation(analysis, profile, rec.Themes)
	return rec
}

func (s *Service) get(ctx context.Context, params url.Values, out any) error {
	if s.apiKey != "" {
		params.Set("key", s.apiKey)
	}
	reqURL := s.baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("parsing response: %w", err)
	}
	return nil
}

// buildSearchQuery combines genres, themes and a keyword into at most
// four terms; the broader variant uses the mood plus one genre.
func buildSearchQuery(analysis *analyzer.Analysis, profile mood.Profile, broader bool) string {
	var parts []string

	if broader {
		parts = append(parts, analysis.PrimaryMood)
		if len(profile.Book.Genres) > 0 {
			parts = append(parts, profile.Book.Genres[0])
		}
	} else {
		genres := profile.Book.Genres
		if len(genres) > 2 {
			genres = genres[:2]
		}
		parts = append(parts, genres...)

		themes := profile.Book.Themes
		if len(themes) > 2 {
			themes = themes[:2]
		}
		parts = append(parts, themes...)

		if len(parts) < 4 && len(profile.Book.Keywords) > 0 {
			parts = append(parts, profile.Book.Keywords[0])
		}
	}

	if len(parts) > 4 {
		parts = parts[:4]
	}
	query := strings.TrimSpace(strings.Join(parts, " "))
	if query == "" {
		return analysis.PrimaryMood
	}
	return query
}

// filterQuality drops volumes without a title, author or description,
// rejects poorly rated ones, and sorts the rest by a quality score.
func filterQuality(items []volume) []volume {
	type scored struct {
		vol   volume
		score float64
	}
	var quality []scored

	for _, item := range items {
		info := item.VolumeInfo
		if info.Title == "" || len(info.Authors) == 0 || info.Description == "" {
			continue
		}
		if info.AverageRating > 0 && info.AverageRating < 3.5 {
			continue
		}

		score := 0.0
		if info.AverageRating > 0 {
			score += info.AverageRating * 20
		}
		if info.RatingsCount > 0 {
			bonus := float64(info.RatingsCount) / 10
			if bonus > 50 {
				bonus = 50
			}
			score += bonus
		}
		if info.PreviewLink != "" {
			score += 10
		}
		if info.PageCount > 0 {
			score += 5
		}
		quality = append(quality, scored{vol: item, score: score})
	}

	sort.SliceStable(quality, func(i, j int) bool {
		return quality[i].score > quality[j].score
	})

	out := make([]volume, len(quality))
	for i, q := range quality {
		out[i] = q.vol
	}
	return out
}

func buildRecommendation(item volume, analysis *analyzer.Analysis, profile mood.Profile) *Recommendation {
	info := item.VolumeInfo

	rec := &Recommendation{
		Title:       info.Title,
		Pages:       info.PageCount,
		Rating:      info.AverageRating,
		ReadingTime: readingTime(info.PageCount),
	}
	if len(info.Authors) > 0 {
		rec.Author = info.Authors[0]
	}
	if len(info.PublishedDate) >= 4 {
		if year, err := strconv.Atoi(info.PublishedDate[:4]); err == nil {
			rec.Year = year
		}
	}

	rec.Description = info.Description
	// Truncate on rune boundaries; descriptions are arbitrary UTF-8.
	if runes := []rune(rec.Description); len(runes) > 500 {
		rec.Description = string(runes[:497]) + "..."
	}

	if info.ImageLinks.Thumbnail != "" {
		rec.CoverURL = info.ImageLinks.Thumbnail
	} else {
		rec.CoverURL = info.ImageLinks.SmallThumbnail
	}

	rec.Themes = info.Categories
	if len(rec.Themes) > 3 {
		rec.Themes = rec.Themes[:3]
	}
	if len(rec.Themes) == 0 {
		themes := profile.Book.Themes
		if len(themes) > 3 {
			themes = themes[:3]
		}
		rec.Themes = themes
	}

	rec.URLs = buildURLs(rec.Title, rec.Author, info.CanonicalVolumeLink, info.PreviewLink)
	rec.MoodMatch = moodMatch(analysis, profile, rec.Themes)
	rec.Why = explanation(analysis, profile, rec.Themes)
	return rec
}

// readingTime estimates hours at the assumed reading speed.
func readingTime(pages int) string {
	if pages <= 0 {
		return "Unknown"
	}
	hours := float64(pages) / readingSpeed
	if hours < 1 {
		return fmt.Sprintf("%dm", int(hours*60))
	}
	whole := int(hours)
	minutes := int((hours - float64(whole)) * 60)
	if minutes > 0 {
		return fmt.Sprintf("%dh %dm", whole, minutes)
	}
	return fmt.Sprintf("%dh", whole)
}

// buildURLs produces Google Books, Amazon and Goodreads links.
func buildURLs(title, author, googleLink, previewLink string) map[string]string {
	urls := make(map[string]string, 4)
	query := url.QueryEscape(strings.TrimSpace(title + " " + author))

	switch {
	case googleLink != "":
		urls["google_books"] = googleLink
	case previewLink != "":
		urls["google_books"] = previewLink
	default:
		urls["google_books"] = "https://books.google.com/books?q=" + query
	}

	urls["amazon"] = "https://www.amazon.com/s?k=" + query + "&i=stripbooks"
	urls["goodreads"] = "https://www.goodreads.com/search?q=" + query

	if previewLink != "" && previewLink != googleLink {
		urls["preview"] = previewLink
	}
	return urls
}

func moodMatch(analysis *analyzer.Analysis, profile mood.Profile, themes []string) string {
	label := strings.ToLower(analysis.PrimaryMood)
	pacing := string(profile.Book.Pacing)
	if pacing == "" {
		pacing = "moderate"
	}

	themeStr := "compelling story"
	if len(themes) > 0 {
		limit := len(themes)
		if limit > 2 {
			limit = 2
		}
		themeStr = strings.Join(themes[:limit], " and ")
	}

	switch analysis.ImmediateNeed {
	case analyzer.NeedEscape:
		return fmt.Sprintf("An immersive %s-paced read to escape your %s state", pacing, label)
	case analyzer.NeedProcess:
		return fmt.Sprintf("A thoughtful exploration of %s, perfect for processing your %s mood", themeStr, label)
	case analyzer.NeedUplift:
		return fmt.Sprintf("An uplifting story to lift you from feeling %s", label)
	case analyzer.NeedCalm:
		return fmt.Sprintf("A %s-paced book to calm your %s mind", pacing, label)
	case analyzer.NeedMatch:
		return fmt.Sprintf("Resonates perfectly with your %s mood through themes of %s", label, themeStr)
	case analyzer.NeedChannel:
		return fmt.Sprintf("An engaging read to productively channel your %s energy", label)
	default:
		return fmt.Sprintf("A meaningful read that matches your %s state", label)
	}
}

func explanation(analysis *analyzer.Analysis, profile mood.Profile, themes []string) string {
	depth := string(profile.Book.Depth)
	if depth == "" {
		depth = "moderate"
	}
	pacing := string(profile.Book.Pacing)
	if pacing == "" {
		pacing = "moderate"
	}

	var parts []string
	if len(profile.Book.Genres) > 0 {
		parts = append(parts, fmt.Sprintf("This %s book", profile.Book.Genres[0]))
	} else {
		parts = append(parts, "This book")
	}

	if len(themes) > 0 {
		limit := len(themes)
		if limit > 2 {
			limit = 2
		}
		parts = append(parts, "explores "+strings.Join(themes[:limit], ", "))
	}

	parts = append(parts, fmt.Sprintf("with %s depth and %s pacing", depth, pacing))

	switch analysis.ImmediateNeed {
	case analyzer.NeedProcess:
		parts = append(parts, "offering space for reflection and emotional processing")
	case analyzer.NeedEscape:
		parts = append(parts, "providing an engaging escape from current feelings")
	case analyzer.NeedUplift:
		parts = append(parts, "designed to inspire and elevate your mood")
	case analyzer.NeedCalm:
		parts = append(parts, "creating a calming reading experience")
	}

	return strings.Join(parts, ", ") + "."
}
