package mood

import (
	"reflect"
	"testing"
)

func TestMergeEmptyUsesBaseline(t *testing.T) {
	got := Merge(nil)
	want, _ := Resolve(baselineMood)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Merge(nil) = %+v, want baseline %q profile", got, baselineMood)
	}
}

func TestMergeSingleLabel(t *testing.T) {
	got := Merge([]string{"happy"})
	want, _ := Resolve("happy")
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Merge([happy]) differs from Resolve(happy)")
	}
}

func TestMergeSingleUnknown(t *testing.T) {
	if got := Merge([]string{"zzzzzz"}); !got.IsZero() {
		t.Errorf("Merge of one unresolvable label = %+v, want zero profile", got)
	}
}

func TestMergeAllUnresolvable(t *testing.T) {
	if got := Merge([]string{"zzzzzz", "qqqqqq"}); !got.IsZero() {
		t.Errorf("Merge of unresolvable labels = %+v, want zero profile", got)
	}
}

func TestMergeDropsUnresolvable(t *testing.T) {
	got := Merge([]string{"zzzzzz", "happy", "qqqqqq"})
	want, _ := Resolve("happy")
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Merge with one surviving label should equal Resolve of that label")
	}
}

func TestMergePrimaryDominates(t *testing.T) {
	got := Merge([]string{"happy", "energetic"})

	if got.Key != "happy" {
		t.Errorf("merged key = %q, want happy", got.Key)
	}
	if got.Category != CategoryPositive {
		t.Errorf("merged category = %q, want positive", got.Category)
	}
	if got.Movie.Tone != ToneLight {
		t.Errorf("merged tone = %q, want primary's light", got.Movie.Tone)
	}
	if got.Strategy != StrategyMatch {
		t.Errorf("merged strategy = %q, want primary's match", got.Strategy)
	}

	// Primary genres come first, secondary fill the remainder up to the cap.
	wantGenres := []string{
		"upbeat pop", "indie pop", "dance", "feel good", "sunshine",
		"electronic", "rock", "hip hop",
	}
	if !reflect.DeepEqual(got.Music.Genres, wantGenres) {
		t.Errorf("merged music genres = %v, want %v", got.Music.Genres, wantGenres)
	}

	// 0.6*high(4) + 0.4*very_high(5) = 4.4, rounds to high.
	if got.Music.Energy != EnergyHigh {
		t.Errorf("merged energy = %q, want high", got.Music.Energy)
	}
}

func TestMergeEnergyWeightedAverage(t *testing.T) {
	// 0.6*low(2) + 0.4*very_high(5) = 3.2, rounds to medium.
	got := Merge([]string{"sad", "excited"})
	if got.Music.Energy != EnergyMedium {
		t.Errorf("merged energy = %q, want medium", got.Music.Energy)
	}

	// Reversed order: 0.6*5 + 0.4*2 = 3.8, rounds to high.
	got = Merge([]string{"excited", "sad"})
	if got.Music.Energy != EnergyHigh {
		t.Errorf("merged energy = %q, want high", got.Music.Energy)
	}
}

func TestMergeThreeWay(t *testing.T) {
	got := Merge([]string{"heartbroken", "sad", "lonely"})

	if got.Strategy != StrategyProcess {
		t.Errorf("merged strategy = %q, want process", got.Strategy)
	}
	if got.Book.Pacing != PacingModerate || got.Book.Depth != DepthMedium {
		t.Errorf("book pacing/depth = %q/%q, want primary's moderate/medium", got.Book.Pacing, got.Book.Depth)
	}
	// All three moods sit at low energy.
	if got.Music.Energy != EnergyLow {
		t.Errorf("merged energy = %q, want low", got.Music.Energy)
	}
	if len(got.Movie.Genres) > maxMovieGenres {
		t.Errorf("movie genres over cap: %v", got.Movie.Genres)
	}
}

func TestMergeAvoidThemesUnion(t *testing.T) {
	got := Merge([]string{"happy", "excited"})
	want := []string{"tragedy", "dark", "depressing", "sad", "slow"}
	if !reflect.DeepEqual(got.AvoidThemes, want) {
		t.Errorf("merged avoid themes = %v, want %v", got.AvoidThemes, want)
	}
}

func TestMergeTruncationCaps(t *testing.T) {
	got := Merge([]string{"happy", "sad", "energetic", "contemplative"})
	checks := []struct {
		name  string
		items []string
		limit int
	}{
		{"music genres", got.Music.Genres, maxMusicGenres},
		{"music vibe", got.Music.Vibe, maxMusicVibe},
		{"music keywords", got.Music.Keywords, maxMusicKeywords},
		{"movie genres", got.Movie.Genres, maxMovieGenres},
		{"movie themes", got.Movie.Themes, maxMovieThemes},
		{"movie keywords", got.Movie.Keywords, maxMovieKeywords},
		{"book genres", got.Book.Genres, maxBookGenres},
		{"book themes", got.Book.Themes, maxBookThemes},
		{"book keywords", got.Book.Keywords, maxBookKeywords},
		{"avoid themes", got.AvoidThemes, maxAvoidThemes},
	}
	for _, c := range checks {
		if len(c.items) > c.limit {
			t.Errorf("%s over cap: %d > %d", c.name, len(c.items), c.limit)
		}
		seen := map[string]bool{}
		for _, item := range c.items {
			if seen[item] {
				t.Errorf("%s contains duplicate %q", c.name, item)
			}
			seen[item] = true
		}
	}
}

func TestMergeDoesNotMutateTaxonomy(t *testing.T) {
	before, _ := Resolve("happy")
	merged := Merge([]string{"happy", "sad"})
	merged.Music.Genres[0] = "mutated"
	after, _ := Resolve("happy")
	if !reflect.DeepEqual(before, after) {
		t.Error("Merge result mutation leaked into the taxonomy")
	}
}
