// Package mood implements the mood taxonomy and the mapping resolution
// engine that turns mood labels into media attribute profiles.
package mood

// Category groups taxonomy moods into fixed buckets.
type Category string

// Mood categories.
const (
	CategoryPositive    Category = "positive"
	CategoryNegative    Category = "negative"
	CategoryEnergy      Category = "energy"
	CategorySocial      Category = "social"
	CategoryExistential Category = "existential"
	CategoryComplex     Category = "complex"
	CategoryUnknown     Category = "unknown"
)

// Energy is the music energy level of a mood.
type Energy string

// Energy levels, ordered very_low..very_high.
const (
	EnergyVeryLow  Energy = "very_low"
	EnergyLow      Energy = "low"
	EnergyMedium   Energy = "medium"
	EnergyHigh     Energy = "high"
	EnergyVeryHigh Energy = "very_high"
)

// Tone describes the emotional tone of movie recommendations.
type Tone string

// Movie tones.
const (
	ToneLight     Tone = "light"
	ToneSerious   Tone = "serious"
	ToneBalanced  Tone = "balanced"
	ToneDark      Tone = "dark"
	ToneUplifting Tone = "uplifting"
	ToneIntense   Tone = "intense"
)

// Pacing describes the narrative pace of book recommendations.
type Pacing string

// Book pacing values.
const (
	PacingVerySlow      Pacing = "very_slow"
	PacingSlow          Pacing = "slow"
	PacingModerate      Pacing = "moderate"
	PacingFast          Pacing = "fast"
	PacingContemplative Pacing = "contemplative"
)

// Depth describes how demanding a book recommendation should be.
type Depth string

// Book depth values.
const (
	DepthLight    Depth = "light"
	DepthMedium   Depth = "medium"
	DepthDeep     Depth = "deep"
	DepthProfound Depth = "profound"
)

// Strategy is the high-level recommendation intent for a mood: validate it,
// shift away from it, work through it, distract from it, or redirect it.
type Strategy string

// Recommendation strategies.
const (
	StrategyMatch   Strategy = "match"
	StrategyUplift  Strategy = "uplift"
	StrategyProcess Strategy = "process"
	StrategyEscape  Strategy = "escape"
	StrategyChannel Strategy = "channel"
)

// MusicProfile holds the music attributes of a mood.
type MusicProfile struct {
	Genres   []string
	Energy   Energy
	Vibe     []string
	Keywords []string
}

// MovieProfile holds the movie attributes of a mood.
type MovieProfile struct {
	Genres   []string
	Tone     Tone
	Themes   []string
	Keywords []string
}

// BookProfile holds the book attributes of a mood.
type BookProfile struct {
	Genres   []string
	Themes   []string
	Pacing   Pacing
	Depth    Depth
	Keywords []string
}

// Profile is the full media attribute bundle for one taxonomy mood.
// Merge produces values of the same shape, with Key and Category taken
// from the primary mood.
type Profile struct {
	Key         string
	Category    Category
	Music       MusicProfile
	Movie       MovieProfile
	Book        BookProfile
	AvoidThemes []string
	Strategy    Strategy
}

// IsZero reports whether the profile carries no attributes at all,
// the degenerate result of resolving nothing.
func (p Profile) IsZero() bool {
	return p.Key == "" &&
		len(p.Music.Genres) == 0 &&
		len(p.Movie.Genres) == 0 &&
		len(p.Book.Genres) == 0
}

// copyProfile returns a deep copy so callers can never mutate the
// shared taxonomy through a returned profile.
func copyProfile(p Profile) Profile {
	out := p
	out.Music.Genres = copyStrings(p.Music.Genres)
	out.Music.Vibe = copyStrings(p.Music.Vibe)
	out.Music.Keywords = copyStrings(p.Music.Keywords)
	out.Movie.Genres = copyStrings(p.Movie.Genres)
	out.Movie.Themes = copyStrings(p.Movie.Themes)
	out.Movie.Keywords = copyStrings(p.Movie.Keywords)
	out.Book.Genres = copyStrings(p.Book.Genres)
	out.Book.Themes = copyStrings(p.Book.Themes)
	out.Book.Keywords = copyStrings(p.Book.Keywords)
	out.AvoidThemes = copyStrings(p.AvoidThemes)
	return out
}

func copyStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

// energyOrdinal maps energy levels onto a 1..5 scale for averaging.
var energyOrdinal = map[Energy]int{
	EnergyVeryLow:  1,
	EnergyLow:      2,
	EnergyMedium:   3,
	EnergyHigh:     4,
	EnergyVeryHigh: 5,
}

// ordinalEnergy is the inverse of energyOrdinal.
var ordinalEnergy = map[int]Energy{
	1: EnergyVeryLow,
	2: EnergyLow,
	3: EnergyMedium,
	4: EnergyHigh,
	5: EnergyVeryHigh,
}
