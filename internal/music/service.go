package music

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/moodmatch/moodmatch-agent/internal/analyzer"
	"github.com/moodmatch/moodmatch-agent/internal/mood"
)

const searchLimit = 10

// Recommendation is a single Spotify playlist, track or search link.
type Recommendation struct {
	Title     string   `json:"title"`
	Platform  string   `json:"platform"`
	URL       string   `json:"url"`
	MoodMatch string   `json:"mood_match"`
	Duration  string   `json:"duration,omitempty"`
	UseCase   string   `json:"use_case"`
	Artists   []string `json:"artists,omitempty"`
	ImageURL  string   `json:"image_url,omitempty"`
}

// searcher is the slice of the Spotify client the service uses.
type searcher interface {
	Search(ctx context.Context, query string, t spotify.SearchType, opts ...spotify.RequestOption) (*spotify.SearchResult, error)
}

// Service searches Spotify for mood-matched playlists and tracks,
// falling back to a search URL when nothing usable comes back.
type Service struct {
	api searcher
}

// NewService authenticates against Spotify with the client-credentials
// flow and returns a ready service.
func NewService(ctx context.Context, cfg *Config) (*Service, error) {
	creds := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     spotifyauth.TokenURL,
	}
	token, err := creds.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("requesting spotify token: %w", err)
	}

	httpClient := spotifyauth.New().Client(ctx, token)
	return &Service{api: spotify.New(httpClient)}, nil
}

// Recommend finds music for the analyzed mood. Playlists are tried
// first, then tracks; search failures degrade to a search-URL
// recommendation instead of an error.
func (s *Service) Recommend(ctx context.Context, analysis *analyzer.Analysis, profile mood.Profile) (*Recommendation, error) {
	if rec := s.searchPlaylists(ctx, analysis, profile); rec != nil {
		return rec, nil
	}
	log.Println("music: no playlists found, trying track search")
	if rec := s.searchTracks(ctx, analysis, profile); rec != nil {
		return rec, nil
	}
	log.Println("music: no tracks found, generating search URL")
	return fallbackRecommendation(analysis, profile), nil
}

func (s *Service) searchPlaylists(ctx context.Context, analysis *analyzer.Analysis, profile mood.Profile) *Recommendation {
	query := buildQuery(analysis, profile, false)

	result, err := s.api.Search(ctx, query, spotify.SearchTypePlaylist, spotify.Limit(searchLimit))
	if err != nil {
		log.Printf("music: playlist search failed: %v", err)
		return nil
	}
	if result.Playlists == nil || len(result.Playlists.Playlists) == 0 {
		return nil
	}

	playlists := result.Playlists.Playlists
	sort.SliceStable(playlists, func(i, j int) bool {
		return playlists[i].Tracks.Total > playlists[j].Tracks.Total
	})
	best := playlists[0]

	rec := &Recommendation{
		Title:     best.Name,
		Platform:  "spotify",
		URL:       best.ExternalURLs["spotify"],
		MoodMatch: moodMatch(analysis),
		Duration:  formatDuration(float64(best.Tracks.Total) * 3.5),
		UseCase:   useCase(analysis, profile),
	}
	if len(best.Images) > 0 {
		rec.ImageURL = best.Images[0].URL
	}
	return rec
}

func (s *Service) searchTracks(ctx context.Context, analysis *analyzer.Analysis, profile mood.Profile) *Recommendation {
	query := buildQuery(analysis, profile, true)

	result, err := s.api.Search(ctx, query, spotify.SearchTypeTrack, spotify.Limit(searchLimit))
	if err != nil {
		log.Printf("music: track search failed: %v", err)
		return nil
	}
	if result.Tracks == nil || len(result.Tracks.Tracks) == 0 {
		return nil
	}

	tracks := result.Tracks.Tracks
	sort.SliceStable(tracks, func(i, j int) bool {
		return tracks[i].Popularity > tracks[j].Popularity
	})
	best := tracks[0]

	artists := make([]string, 0, len(best.Artists))
	for _, a := range best.Artists {
		if a.Name != "" {
			artists = append(artists, a.Name)
		}
	}

	rec := &Recommendation{
		Title:     best.Name,
		Platform:  "spotify",
		URL:       best.ExternalURLs["spotify"],
		MoodMatch: moodMatch(analysis),
		Duration:  formatDuration(float64(best.Duration) / 60000),
		UseCase:   useCase(analysis, profile),
		Artists:   artists,
	}
	if len(best.Album.Images) > 0 {
		rec.ImageURL = best.Album.Images[0].URL
	}
	return rec
}

// fallbackRecommendation points at a Spotify search page for the query.
func fallbackRecommendation(analysis *analyzer.Analysis, profile mood.Profile) *Recommendation {
	query := buildQuery(analysis, profile, false)
	return &Recommendation{
		Title:     "Search: " + query,
		Platform:  "spotify",
		URL:       "https://open.spotify.com/search/" + strings.ReplaceAll(query, " ", "%20"),
		MoodMatch: moodMatch(analysis),
		UseCase:   useCase(analysis, profile),
	}
}

// buildQuery assembles a search query from the merged mood profile:
// up to two genres, two vibe or keyword descriptors, the primary mood,
// and the energy level for track searches. Four terms maximum.
func buildQuery(analysis *analyzer.Analysis, profile mood.Profile, forTracks bool) string {
	var parts []string

	if len(profile.Music.Genres) > 2 {
		parts = append(parts, profile.Music.Genres[:2]...)
	} else {
		parts = append(parts, profile.Music.Genres...)
	}

	descriptors := append(append([]string{}, profile.Music.Vibe...), profile.Music.Keywords...)
	if len(descriptors) > 2 {
		descriptors = descriptors[:2]
	}
	parts = append(parts, descriptors...)

	if !contains(parts, analysis.PrimaryMood) {
		parts = append(parts, analysis.PrimaryMood)
	}
	if forTracks {
		if energy := string(profile.Music.Energy); energy != "" && !contains(parts, energy) {
			parts = append(parts, energy)
		}
	}

	if len(parts) > 4 {
		parts = parts[:4]
	}
	return strings.Join(parts, " ")
}

func contains(items []string, s string) bool {
	for _, item := range items {
		if item == s {
			return true
		}
	}
	return false
}

// moodMatch explains how the recommendation serves the immediate need.
func moodMatch(analysis *analyzer.Analysis) string {
	label := strings.ToLower(analysis.PrimaryMood)
	switch analysis.ImmediateNeed {
	case analyzer.NeedEscape:
		return fmt.Sprintf("Helps you escape from feeling %s with uplifting and distracting music", label)
	case analyzer.NeedProcess:
		return fmt.Sprintf("Music that resonates with your %s mood, helping you process these feelings", label)
	case analyzer.NeedUplift:
		return fmt.Sprintf("Upbeat and energizing tracks to lift you out of feeling %s", label)
	case analyzer.NeedCalm:
		return fmt.Sprintf("Soothing music to calm your %s state (intensity: %d/10)", label, analysis.Intensity)
	case analyzer.NeedMatch:
		return fmt.Sprintf("Perfect match for your %s mood - amplify what you're feeling", label)
	case analyzer.NeedChannel:
		return fmt.Sprintf("Channel your %s energy productively with this energetic music", label)
	default:
		return fmt.Sprintf("Matches your %s mood and current emotional state", label)
	}
}

// useCase suggests when to listen, tuned by the profile's energy.
func useCase(analysis *analyzer.Analysis, profile mood.Profile) string {
	cases := map[string]string{
		analyzer.NeedEscape:  "When you need a mental break or distraction",
		analyzer.NeedProcess: "During quiet reflection or journaling time",
		analyzer.NeedUplift:  "Morning routine or workout to boost energy",
		analyzer.NeedCalm:    "Evening wind-down or meditation sessions",
		analyzer.NeedMatch:   "Anytime you want to amplify your current mood",
		analyzer.NeedChannel: "During high-energy activities or workouts",
	}

	base, ok := cases[analysis.ImmediateNeed]
	if !ok {
		base = "Anytime you want mood-appropriate music"
	}

	switch profile.Music.Energy {
	case mood.EnergyHigh, mood.EnergyVeryHigh:
		base += " - great for active listening"
	case mood.EnergyLow, mood.EnergyVeryLow:
		base += " - perfect for background listening"
	}
	return base
}

// formatDuration renders minutes as "45s", "38m" or "2h 30m".
func formatDuration(minutes float64) string {
	switch {
	case minutes < 1:
		return fmt.Sprintf("%ds", int(minutes*60))
	case minutes < 60:
		return fmt.Sprintf("%dm", int(minutes))
	default:
		hours := int(minutes) / 60
		mins := int(minutes) % 60
		if mins > 0 {
			return fmt.Sprintf("%dh %dm", hours, mins)
		}
		return fmt.Sprintf("%dh", hours)
	}
}
