package book

// Recommendation is a single book suggestion.
type Recommendation struct {
	Title       string            `json:"title"`
	Author      string            `json:"author,omitempty"`
	Year        int               `json:"year,omitempty"`
	Pages       int               `json:"pages,omitempty"`
	Rating      float64           `json:"rating,omitempty"`
	MoodMatch   string            `json:"mood_match"`
	Why         string            `json:"why"`
	Themes      []string          `json:"themes"`
	ReadingTime string            `json:"reading_time"`
	URLs        map[string]string `json:"urls"`
	CoverURL    string            `json:"cover_url,omitempty"`
	Description string            `json:"description,omitempty"`
}

// Google Books API response shapes.

type volumesResponse struct {
	Items []volume `json:"items"`
}

type volume struct {
	VolumeInfo volumeInfo `json:"volumeInfo"`
}

type volumeInfo struct {
	Title               string     `json:"title"`
	Authors             []string   `json:"authors"`
	PublishedDate       string     `json:"publishedDate"`
	Description         string     `json:"description"`
	PageCount           int        `json:"pageCount"`
	Categories          []string   `json:"categories"`
	AverageRating       float64    `json:"averageRating"`
	RatingsCount        int        `json:"ratingsCount"`
	ImageLinks          imageLinks `json:"imageLinks"`
	PreviewLink         string     `json:"previewLink"`
	CanonicalVolumeLink string     `json:"canonicalVolumeLink"`
}

type imageLinks struct {
	Thumbnail      string `json:"thumbnail"`
	SmallThumbnail string `json:"smallThumbnail"`
}
