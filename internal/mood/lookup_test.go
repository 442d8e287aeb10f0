package mood

import (
	"reflect"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		label   string
		wantKey string
		wantOK  bool
	}{
		{name: "exact", label: "happy", wantKey: "happy", wantOK: true},
		{name: "case and whitespace", label: "  HaPPy  ", wantKey: "happy", wantOK: true},
		{name: "fuzzy typo", label: "hapy", wantKey: "happy", wantOK: true},
		{name: "fuzzy doubled letter", label: "anxiouss", wantKey: "anxious", wantOK: true},
		{name: "underscore key", label: "burnt_out", wantKey: "burnt_out", wantOK: true},
		{name: "unknown", label: "zzzzzz", wantOK: false},
		{name: "empty", label: "", wantOK: false},
		{name: "blank", label: "   ", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(tt.label)
			if ok != tt.wantOK {
				t.Fatalf("Resolve(%q) ok = %v, want %v", tt.label, ok, tt.wantOK)
			}
			if ok && got.Key != tt.wantKey {
				t.Errorf("Resolve(%q) key = %q, want %q", tt.label, got.Key, tt.wantKey)
			}
			if !ok && !got.IsZero() {
				t.Errorf("Resolve(%q) returned non-zero profile without match", tt.label)
			}
		})
	}
}

func TestResolveReturnsCopy(t *testing.T) {
	first, ok := Resolve("happy")
	if !ok {
		t.Fatal("happy did not resolve")
	}
	first.Music.Genres[0] = "mutated"
	first.AvoidThemes[0] = "mutated"

	second, _ := Resolve("happy")
	if second.Music.Genres[0] == "mutated" {
		t.Error("mutation of a resolved profile leaked into the taxonomy")
	}
	if second.AvoidThemes[0] == "mutated" {
		t.Error("mutation of avoid themes leaked into the taxonomy")
	}
}

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		label string
		want  Category
	}{
		{"happy", CategoryPositive},
		{"hapy", CategoryPositive},
		{"sad", CategoryNegative},
		{"burnt_out", CategoryEnergy},
		{"nostalgic", CategorySocial},
		{"philosophical", CategoryExistential},
		{"bittersweet", CategoryComplex},
		{"zzzzzz", CategoryUnknown},
		{"", CategoryUnknown},
	}
	for _, tt := range tests {
		if got := CategoryOf(tt.label); got != tt.want {
			t.Errorf("CategoryOf(%q) = %q, want %q", tt.label, got, tt.want)
		}
	}
}

func TestSimilarTo(t *testing.T) {
	got := SimilarTo("sad")
	want := []string{"lonely", "heartbroken", "disappointed", "empty"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SimilarTo(sad) = %v, want %v", got, want)
	}

	// Near-exact labels still match at the stricter cutoff.
	if got := SimilarTo("saad"); !reflect.DeepEqual(got, want) {
		t.Errorf("SimilarTo(saad) = %v, want %v", got, want)
	}

	if got := SimilarTo("zzzzzz"); got == nil || len(got) != 0 {
		t.Errorf("SimilarTo(zzzzzz) = %v, want empty slice", got)
	}
}

func TestSimilarToReturnsCopy(t *testing.T) {
	got := SimilarTo("sad")
	got[0] = "mutated"
	if again := SimilarTo("sad"); again[0] == "mutated" {
		t.Error("mutation of a similarity list leaked into the graph")
	}
}

func TestOppositeOf(t *testing.T) {
	tests := []struct {
		label  string
		want   string
		wantOK bool
	}{
		{label: "sad", want: "happy", wantOK: true},
		{label: "ANXIOUS", want: "peaceful", wantOK: true},
		{label: "tired", want: "energetic", wantOK: true},
		// "sadd" is 0.75 similar to "sad", under the 0.8 cutoff.
		{label: "sadd", wantOK: false},
		{label: "happy", wantOK: false},
		{label: "", wantOK: false},
	}
	for _, tt := range tests {
		got, ok := OppositeOf(tt.label)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("OppositeOf(%q) = (%q, %v), want (%q, %v)", tt.label, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestAvailableMoods(t *testing.T) {
	moods := AvailableMoods()
	if len(moods) != 52 {
		t.Fatalf("AvailableMoods returned %d moods, want 52", len(moods))
	}
	for i := 1; i < len(moods); i++ {
		if moods[i-1] >= moods[i] {
			t.Fatalf("AvailableMoods not sorted: %q before %q", moods[i-1], moods[i])
		}
	}
}

func TestMoodsInCategory(t *testing.T) {
	got := MoodsInCategory(CategoryEnergy)
	want := []string{"burnt_out", "drowsy", "energetic", "hyper", "mellow", "restless", "sluggish", "tired"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MoodsInCategory(energy) = %v, want %v", got, want)
	}
	if got := MoodsInCategory(Category("nope")); len(got) != 0 {
		t.Errorf("MoodsInCategory(nope) = %v, want empty", got)
	}
}

func TestMatchKeyTieBreak(t *testing.T) {
	// "abx" is one edit from both candidates; the lexicographically
	// smaller key must win every run.
	m := map[string]int{"abd": 1, "abc": 2}
	for i := 0; i < 20; i++ {
		key, ok := matchKey("abx", m, 0.6)
		if !ok {
			t.Fatal("matchKey found no candidate")
		}
		if key != "abc" {
			t.Fatalf("matchKey = %q, want abc", key)
		}
	}
}

func TestRatio(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"happy", "happy", 1},
		{"hapy", "happy", 0.8},
		{"", "", 1},
		{"abc", "xyz", 0},
	}
	for _, tt := range tests {
		if got := ratio(tt.a, tt.b); got != tt.want {
			t.Errorf("ratio(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
