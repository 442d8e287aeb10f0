package movie

import (
	"context"
	"encoding/json"
	"errors"
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
	baseURL      = "https://api.themoviedb.org/3"
	imageBaseURL = "https://image.tmdb.org/t/p/w500"
	userAgent    = "moodmatch-agent/1.0"
)

// ErrNoResults is returned when every lookup strategy comes up empty.
var ErrNoResults = errors.New("no movies found")

// genreIDs maps lowercase genre names to TMDB genre IDs.
var genreIDs = map[string]int{
	"comedy":          35,
	"drama":           18,
	"action":          28,
	"romance":         10749,
	"thriller":        53,
	"horror":          27,
	"sci-fi":          878,
	"science fiction": 878,
	"fantasy":         14,
	"animation":       16,
	"documentary":     99,
	"mystery":         9648,
	"crime":           80,
	"adventure":       12,
	"family":          10751,
	"war":             10752,
	"western":         37,
	"music":           10402,
	"history":         36,
}

// platformSearchURLs maps streaming platforms to their search pages.
var platformSearchURLs = map[string]string{
	"netflix":     "https://www.netflix.com/search?q=%s",
	"prime video": "https://www.amazon.com/s?k=%s&i=prime-video",
	"disney+":     "https://www.disneyplus.com/search?q=%s",
	"hulu":        "https://www.hulu.com/search?q=%s",
	"hbo max":     "https://play.max.com/search?q=%s",
}

// Service finds movies for a mood via the TMDB API.
type Service struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
}

// NewService creates a TMDB-backed movie service.
func NewService(cfg *Config) *Service {
	return &Service{
		apiKey: cfg.APIKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: baseURL,
	}
}

// Recommend finds a movie for the analyzed mood. Genre discovery is
// tried first, then keyword search, then the top-rated chart.
func (s *Service) Recommend(ctx context.Context, analysis *analyzer.Analysis, profile mood.Profile) (*Recommendation, error) {
	if rec := s.discover(ctx, analysis, profile); rec != nil {
		return rec, nil
	}
	log.Println("movie: discover found nothing, trying search")
	if rec := s.search(ctx, analysis, profile); rec != nil {
		return rec, nil
	}
	log.Println("movie: search found nothing, falling back to top rated")
	if rec := s.topRated(ctx, analysis, profile); rec != nil {
		return rec, nil
	}
	return nil, ErrNoResults
}

// discover filters by the profile's genres with quality floors.
func (s *Service) discover(ctx context.Context, analysis *analyzer.Analysis, profile mood.Profile) *Recommendation {
	ids := s.genreIDsFor(profile)
	if len(ids) == 0 {
		log.Println("movie: no genre IDs matched, skipping discover")
		return nil
	}
	if len(ids) > 3 {
		ids = ids[:3]
	}

	withGenres := make([]string, len(ids))
	for i, id := range ids {
		withGenres[i] = strconv.Itoa(id)
	}

	params := url.Values{
		"with_genres":      {strings.Join(withGenres, ",")},
		"sort_by":          {sortOrder(analysis)},
		"vote_average.gte": {"7.0"},
		"vote_count.gte":   {"1000"},
		"include_adult":    {"false"},
		"language":         {"en-US"},
		"page":             {"1"},
	}

	var resp tmdbListResponse
	if err := s.get(ctx, "/discover/movie", params, &resp); err != nil {
		log.Printf("movie: discover failed: %v", err)
		return nil
	}
	if len(resp.Results) == 0 {
		return nil
	}

	best := resp.Results[0]
	return s.buildRecommendation(ctx, best, analysis, profile)
}

// search queries by keywords and themes, filtering for quality.
func (s *Service) search(ctx context.Context, analysis *analyzer.Analysis, profile mood.Profile) *Recommendation {
	query := buildSearchQuery(analysis, profile)
	if query == "" {
		return nil
	}

	params := url.Values{
		"query":         {query},
		"include_adult": {"false"},
		"language":      {"en-US"},
		"page":          {"1"},
	}

	var resp tmdbListResponse
	if err := s.get(ctx, "/search/movie", params, &resp); err != nil {
		log.Printf("movie: search failed: %v", err)
		return nil
	}
	if len(resp.Results) == 0 {
		return nil
	}

	quality := make([]tmdbMovie, 0, len(resp.Results))
	for _, m := range resp.Results {
		if m.VoteAverage >= 6.5 && m.VoteCount >= 500 {
			quality = append(quality, m)
		}
	}
	if len(quality) == 0 {
		quality = resp.Results
	}
	sort.SliceStable(quality, func(i, j int) bool {
		return quality[i].Popularity*quality[i].VoteAverage > quality[j].Popularity*quality[j].VoteAverage
	})

	return s.buildRecommendation(ctx, quality[0], analysis, profile)
}

// topRated picks from the top-rated chart, indexed by intensity so
// stronger moods land on deeper cuts.
func (s *Service) topRated(ctx context.Context, analysis *analyzer.Analysis, profile mood.Profile) *Recommendation {
	params := url.Values{
		"language": {"en-US"},
		"page":     {"1"},
	}

	var resp tmdbListResponse
	if err := s.get(ctx, "/movie/top_rated", params, &resp); err != nil {
		log.Printf("movie: top rated fetch failed: %v", err)
		return nil
	}
	if len(resp.Results) == 0 {
		return nil
	}

	idx := intensityIndex(analysis.Intensity, len(resp.Results))
	return s.buildRecommendation(ctx, resp.Results[idx], analysis, profile)
}

func (s *Service) buildRecommendation(ctx context.Context, m tmdbMovie, analysis *analyzer.Analysis, profile mood.Profile) *Recommendation {
	rec := &Recommendation{
		Title:    m.Title,
		Rating:   roundRating(m.VoteAverage),
		Overview: m.Overview,
	}
	if len(m.ReleaseDate) >= 4 {
		if year, err := strconv.Atoi(m.ReleaseDate[:4]); err == nil {
			rec.Year = year
		}
	}
	if m.PosterPath != "" {
		rec.PosterURL = imageBaseURL + m.PosterPath
	}

	// Details give the runtime and named genres; basic data has IDs only.
	if details := s.details(ctx, m.ID); details != nil {
		if details.Runtime > 0 {
			rec.Runtime = formatRuntime(details.Runtime)
		}
		for _, g := range details.Genres {
			rec.Genres = append(rec.Genres, g.Name)
		}
	}
	if len(rec.Genres) == 0 {
		rec.Genres = genreNames(m.GenreIDs)
	}

	rec.MoodMatch = moodMatch(analysis, rec.Genres)
	rec.Why = explanation(analysis, profile, rec.Genres)
	rec.Platforms = suggestPlatforms(profile)

	rec.URL = fmt.Sprintf("https://www.themoviedb.org/movie/%d", m.ID)
	if len(rec.Platforms) > 0 {
		if pattern, ok := platformSearchURLs[strings.ToLower(rec.Platforms[0])]; ok {
			rec.URL = fmt.Sprintf(pattern, url.QueryEscape(m.Title))
		}
	}
	return rec
}

func (s *Service) details(ctx context.Context, id int) *tmdbDetails {
	var details tmdbDetails
	if err := s.get(ctx, fmt.Sprintf("/movie/%d", id), url.Values{"language": {"en-US"}}, &details); err != nil {
		log.Printf("movie: details fetch failed: %v", err)
		return nil
	}
	return &details
}

// get performs an authenticated GET and decodes the JSON body.
func (s *Service) get(ctx context.Context, path string, params url.Values, out any) error {
	params.Set("api_key", s.apiKey)
	reqURL := s.baseURL + path + "?" + params.Encode()

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
		var apiErr tmdbError
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.StatusMessage != "" {
			return fmt.Errorf("API error %d: %s", apiErr.StatusCode, apiErr.StatusMessage)
		}
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("parsing response: %w", err)
	}
	return nil
}

// genreIDsFor maps the profile's genres to TMDB IDs, falling back to a
// tone-derived genre when none match.
func (s *Service) genreIDsFor(profile mood.Profile) []int {
	var ids []int
	for _, genre := range profile.Movie.Genres {
		if id, ok := genreIDs[strings.ToLower(genre)]; ok {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		switch profile.Movie.Tone {
		case mood.ToneLight, mood.ToneUplifting:
			ids = append(ids, genreIDs["comedy"])
		case mood.ToneSerious, mood.ToneDark:
			ids = append(ids, genreIDs["drama"])
		case mood.ToneIntense:
			ids = append(ids, genreIDs["thriller"])
		}
	}
	return ids
}

// sortOrder favors popular titles for high-intensity or redirecting
// moods and quality for reflective ones.
func sortOrder(analysis *analyzer.Analysis) string {
	if analysis.Intensity >= 7 || analysis.ImmediateNeed == analyzer.NeedEscape || analysis.ImmediateNeed == analyzer.NeedChannel {
		return "popularity.desc"
	}
	if analysis.ImmediateNeed == analyzer.NeedProcess || analysis.ImmediateNeed == analyzer.NeedCalm {
		return "vote_average.desc"
	}
	return "popularity.desc"
}

// buildSearchQuery joins up to two keywords, two themes and the
// primary mood, capped at three terms.
func buildSearchQuery(analysis *analyzer.Analysis, profile mood.Profile) string {
	var parts []string

	keywords := profile.Movie.Keywords
	if len(keywords) > 2 {
		keywords = keywords[:2]
	}
	parts = append(parts, keywords...)

	themes := profile.Movie.Themes
	if len(themes) > 2 {
		themes = themes[:2]
	}
	parts = append(parts, themes...)

	found := false
	for _, p := range parts {
		if p == analysis.PrimaryMood {
			found = true
			break
		}
	}
	if !found {
		parts = append(parts, analysis.PrimaryMood)
	}

	if len(parts) > 3 {
		parts = parts[:3]
	}
	return strings.Join(parts, " ")
}

// intensityIndex maps intensity 1..10 onto a chart position.
func intensityIndex(intensity, n int) int {
	idx := intensity * n / 10
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

func genreNames(ids []int) []string {
	idToName := make(map[int]string, len(genreIDs))
	for name, id := range genreIDs {
		idToName[id] = titleCase(name)
	}
	var names []string
	for _, id := range ids {
		if name, ok := idToName[id]; ok {
			names = append(names, name)
		}
	}
	return names
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func roundRating(rating float64) float64 {
	return float64(int(rating*10+0.5)) / 10
}

func formatRuntime(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	hours := minutes / 60
	mins := minutes % 60
	if mins > 0 {
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
	return fmt.Sprintf("%dh", hours)
}

func moodMatch(analysis *analyzer.Analysis, genres []string) string {
	label := strings.ToLower(analysis.PrimaryMood)
	genreStr := "movie"
	if len(genres) > 0 {
		limit := len(genres)
		if limit > 2 {
			limit = 2
		}
		genreStr = strings.Join(genres[:limit], ", ")
	}

	switch analysis.ImmediateNeed {
	case analyzer.NeedEscape:
		return fmt.Sprintf("An engaging %s to help you escape feeling %s", genreStr, label)
	case analyzer.NeedProcess:
		return fmt.Sprintf("A thoughtful %s that resonates with your %s mood", genreStr, label)
	case analyzer.NeedUplift:
		return fmt.Sprintf("An uplifting %s to lift your spirits from feeling %s", genreStr, label)
	case analyzer.NeedCalm:
		return fmt.Sprintf("A calming %s to soothe your %s state (intensity: %d/10)", genreStr, label, analysis.Intensity)
	case analyzer.NeedMatch:
		return fmt.Sprintf("Perfect %s match for your %s mood", genreStr, label)
	case analyzer.NeedChannel:
		return fmt.Sprintf("An intense %s to channel your %s energy", genreStr, label)
	default:
		return fmt.Sprintf("A %s that fits your current %s mood", genreStr, label)
	}
}

// explanation composes the longer "why" text from genres, themes, tone
// and the immediate need.
func explanation(analysis *analyzer.Analysis, profile mood.Profile, genres []string) string {
	var parts []string

	if len(genres) > 0 {
		limit := len(genres)
		if limit > 2 {
			limit = 2
		}
		parts = append(parts, fmt.Sprintf("This %s film", strings.ToLower(strings.Join(genres[:limit], ", "))))
	} else {
		parts = append(parts, "This movie")
	}

	if len(profile.Movie.Themes) > 0 {
		limit := len(profile.Movie.Themes)
		if limit > 2 {
			limit = 2
		}
		parts = append(parts, "explores "+strings.Join(profile.Movie.Themes[:limit], " and "))
	}

	if profile.Movie.Tone != "" {
		parts = append(parts, fmt.Sprintf("with a %s tone", profile.Movie.Tone))
	}

	switch analysis.ImmediateNeed {
	case analyzer.NeedProcess:
		parts = append(parts, "helping you process your emotions")
	case analyzer.NeedEscape:
		parts = append(parts, "providing an immersive escape")
	case analyzer.NeedUplift:
		parts = append(parts, "designed to uplift and inspire")
	}

	return strings.Join(parts, ", ") + "."
}

// suggestPlatforms picks two platforms, biased by genre.
func suggestPlatforms(profile mood.Profile) []string {
	platforms := []string{"Netflix", "Prime Video", "Disney+"}
	for _, genre := range profile.Movie.Genres {
		switch strings.ToLower(genre) {
		case "animation":
			platforms = []string{"Disney+", "Netflix", "Prime Video"}
		case "documentary":
			platforms = []string{"Netflix", "Prime Video", "HBO Max"}
		}
	}
	return platforms[:2]
}
