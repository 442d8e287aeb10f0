package movie

// Recommendation is a single movie suggestion.
type Recommendation struct {
	Title     string   `json:"title"`
	Year      int      `json:"year,omitempty"`
	Rating    float64  `json:"rating,omitempty"`
	Runtime   string   `json:"runtime,omitempty"`
	MoodMatch string   `json:"mood_match"`
	Why       string   `json:"why"`
	Genres    []string `json:"genres"`
	Platforms []string `json:"platforms"`
	URL       string   `json:"url"`
	PosterURL string   `json:"poster_url,omitempty"`
	Overview  string   `json:"overview,omitempty"`
}

// TMDB API response shapes.

type tmdbMovie struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	ReleaseDate string  `json:"release_date"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int     `json:"vote_count"`
	Popularity  float64 `json:"popularity"`
	PosterPath  string  `json:"poster_path"`
	Overview    string  `json:"overview"`
	GenreIDs    []int   `json:"genre_ids"`
}

type tmdbListResponse struct {
	Results []tmdbMovie `json:"results"`
}

type tmdbDetails struct {
	Runtime int `json:"runtime"`
	Genres  []struct {
		Name string `json:"name"`
	} `json:"genres"`
}

type tmdbError struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
}
