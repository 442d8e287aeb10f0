package mood

import "math"

// primaryWeight is the share of the blend given to the first resolved
// mood; the remaining share is split evenly across the rest.
const primaryWeight = 0.6

// baselineMood substitutes for an empty label list.
const baselineMood = "peaceful"

// Truncation caps applied after merging, per field.
const (
	maxMusicGenres   = 8
	maxMusicVibe     = 5
	maxMusicKeywords = 6
	maxMovieGenres   = 4
	maxMovieThemes   = 6
	maxMovieKeywords = 5
	maxBookGenres    = 4
	maxBookThemes    = 6
	maxBookKeywords  = 5
	maxAvoidThemes   = 5
)

// Merge blends the profiles of several mood labels into one. The first
// resolvable label is the primary: it contributes primaryWeight of the
// blend and supplies the tone, pacing, depth and strategy. List fields
// are pooled with frequency proportional to weight, deduplicated in
// first-seen order, and truncated. Energy is the weighted mean of the
// ordinal levels, rounded half up.
//
// Labels that resolve to nothing are dropped. An empty input merges
// the baseline mood instead; if no label resolves at all the result is
// the zero profile. Merge never returns an error.
func Merge(labels []string) Profile {
	if len(labels) == 0 {
		labels = []string{baselineMood}
	}
	if len(labels) == 1 {
		p, _ := Resolve(labels[0])
		return p
	}

	profiles := make([]Profile, 0, len(labels))
	for _, label := range labels {
		if p, ok := Resolve(label); ok {
			profiles = append(profiles, p)
		}
	}
	switch len(profiles) {
	case 0:
		return Profile{}
	case 1:
		return profiles[0]
	}

	primary := profiles[0]
	merged := Profile{
		Key:      primary.Key,
		Category: primary.Category,
	}
	merged.Movie.Tone = primary.Movie.Tone
	merged.Book.Pacing = primary.Book.Pacing
	merged.Book.Depth = primary.Book.Depth
	merged.Strategy = primary.Strategy

	var (
		musicGenres, musicVibe, musicKeywords []string
		movieGenres, movieThemes, movieKeys   []string
		bookGenres, bookThemes, bookKeywords  []string
		avoid                                 []string
		energy                                float64
	)
	for i, p := range profiles {
		weight := primaryWeight
		if i > 0 {
			weight = (1 - primaryWeight) / float64(len(profiles)-1)
		}
		// Weight biases deduplication order via repetition.
		reps := int(weight * 10)
		if reps < 1 {
			reps = 1
		}
		musicGenres = append(musicGenres, repeat(p.Music.Genres, reps)...)
		musicVibe = append(musicVibe, repeat(p.Music.Vibe, reps)...)
		musicKeywords = append(musicKeywords, repeat(p.Music.Keywords, reps)...)
		movieGenres = append(movieGenres, repeat(p.Movie.Genres, reps)...)
		movieThemes = append(movieThemes, repeat(p.Movie.Themes, reps)...)
		movieKeys = append(movieKeys, repeat(p.Movie.Keywords, reps)...)
		bookGenres = append(bookGenres, repeat(p.Book.Genres, reps)...)
		bookThemes = append(bookThemes, repeat(p.Book.Themes, reps)...)
		bookKeywords = append(bookKeywords, repeat(p.Book.Keywords, reps)...)
		avoid = append(avoid, p.AvoidThemes...)

		level, ok := energyOrdinal[p.Music.Energy]
		if !ok {
			level = energyOrdinal[EnergyMedium]
		}
		energy += weight * float64(level)
	}

	merged.Music.Genres = dedupe(musicGenres, maxMusicGenres)
	merged.Music.Vibe = dedupe(musicVibe, maxMusicVibe)
	merged.Music.Keywords = dedupe(musicKeywords, maxMusicKeywords)
	merged.Movie.Genres = dedupe(movieGenres, maxMovieGenres)
	merged.Movie.Themes = dedupe(movieThemes, maxMovieThemes)
	merged.Movie.Keywords = dedupe(movieKeys, maxMovieKeywords)
	merged.Book.Genres = dedupe(bookGenres, maxBookGenres)
	merged.Book.Themes = dedupe(bookThemes, maxBookThemes)
	merged.Book.Keywords = dedupe(bookKeywords, maxBookKeywords)
	merged.AvoidThemes = dedupe(avoid, maxAvoidThemes)
	merged.Music.Energy = ordinalEnergy[roundHalfUp(energy)]

	return merged
}

func repeat(items []string, n int) []string {
	if n <= 1 {
		return items
	}
	out := make([]string, 0, len(items)*n)
	for i := 0; i < n; i++ {
		out = append(out, items...)
	}
	return out
}

// dedupe keeps the first occurrence of each item and caps the length.
func dedupe(items []string, limit int) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, limit)
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
		if len(out) == limit {
			break
		}
	}
	return out
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
