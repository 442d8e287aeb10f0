package mood

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Fuzzy match cutoffs. Resolution and category lookups tolerate more
// distance than the similarity and opposite maps, which only fire on
// near-exact labels.
const (
	resolveCutoff  = 0.6
	similarCutoff  = 0.7
	oppositeCutoff = 0.8
)

// Resolve looks up the profile for a mood label. The label is
// lowercased and trimmed, matched exactly against the taxonomy, and
// failing that matched fuzzily at the resolve cutoff. The returned
// profile is a copy; mutating it never affects the taxonomy.
func Resolve(label string) (Profile, bool) {
	key, ok := resolveKey(label, resolveCutoff)
	if !ok {
		return Profile{}, false
	}
	return copyProfile(taxonomy[key]), true
}

// CategoryOf returns the category of a mood label, using the same
// matching rules as Resolve. Unknown labels map to CategoryUnknown.
func CategoryOf(label string) Category {
	key, ok := resolveKey(label, resolveCutoff)
	if !ok {
		return CategoryUnknown
	}
	return taxonomy[key].Category
}

// SimilarTo returns the moods related to a label. The cutoff is
// stricter than Resolve's. Labels with no entry get an empty slice,
// never nil, and the returned slice is always a copy.
func SimilarTo(label string) []string {
	key, ok := matchKey(label, similarities, similarCutoff)
	if !ok {
		return []string{}
	}
	out := make([]string, len(similarities[key]))
	copy(out, similarities[key])
	return out
}

// OppositeOf returns the uplift target for a mood label. Only
// near-exact labels match.
func OppositeOf(label string) (string, bool) {
	key, ok := matchKey(label, opposites, oppositeCutoff)
	if !ok {
		return "", false
	}
	return opposites[key], true
}

// AvailableMoods returns every taxonomy mood key, sorted.
func AvailableMoods() []string {
	out := make([]string, 0, len(taxonomy))
	for key := range taxonomy {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

// MoodsInCategory returns the sorted taxonomy keys in one category.
func MoodsInCategory(cat Category) []string {
	out := []string{}
	for key, p := range taxonomy {
		if p.Category == cat {
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out
}

func normalize(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

// resolveKey maps a raw label to a taxonomy key, exact then fuzzy.
func resolveKey(label string, cutoff float64) (string, bool) {
	return matchKey(label, taxonomy, cutoff)
}

// matchKey is resolveKey against an arbitrary string-keyed map.
func matchKey[V any](label string, m map[string]V, cutoff float64) (string, bool) {
	key := normalize(label)
	if key == "" {
		return "", false
	}
	if _, ok := m[key]; ok {
		return key, true
	}
	// Ties on ratio break toward the lexicographically smaller key so
	// matches do not depend on map iteration order.
	best, score := "", 0.0
	for candidate := range m {
		r := ratio(key, candidate)
		if r > score || (r == score && best != "" && candidate < best) {
			best, score = candidate, r
		}
	}
	if score >= cutoff {
		return best, true
	}
	return "", false
}

// ratio is a normalized edit-distance similarity in [0, 1].
func ratio(a, b string) float64 {
	if a == b {
		return 1
	}
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	if longest == 0 {
		return 1
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(longest)
}
