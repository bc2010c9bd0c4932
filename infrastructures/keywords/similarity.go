package keywords

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// skeletonWeight discounts matches made only on the initial-consonant
// skeleton; a full-syllable match always wins over a skeleton match.
const skeletonWeight = 0.9

// NameSimilarity scores two place names in [0,1]. It takes the maximum
// of edit-distance similarity, token overlap and word-set Jaccard, with
// a discounted initial-consonant skeleton comparison as fallback for
// OCR output that mangles vowels.
func NameSimilarity(a, b string) float64 {
	a = normalizeName(a)
	b = normalizeName(b)
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}

	primary := EditSimilarity(a, b)
	if s := TokenOverlap(a, b); s > primary {
		primary = s
	}
	if s := WordSetJaccard(a, b); s > primary {
		primary = s
	}

	fallback := skeletonWeight * EditSimilarity(InitialSkeleton(a), InitialSkeleton(b))
	if fallback > primary {
		primary = fallback
	}
	return primary
}

// EditSimilarity is 1 - levenshtein/maxLen over runes.
func EditSimilarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}
	la := utf8.RuneCountInString(a)
	lb := utf8.RuneCountInString(b)
	max := la
	if lb > max {
		max = lb
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(max)
}

// TokenOverlap is the share of shared whitespace tokens over the
// smaller token set.
func TokenOverlap(a, b string) float64 {
	ta := strings.Fields(a)
	tb := strings.Fields(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}

	set := make(map[string]bool, len(ta))
	for _, t := range ta {
		set[t] = true
	}
	common := 0
	seen := make(map[string]bool, len(tb))
	for _, t := range tb {
		if set[t] && !seen[t] {
			common++
			seen[t] = true
		}
	}

	min := len(ta)
	if len(tb) < min {
		min = len(tb)
	}
	return float64(common) / float64(min)
}

// WordSetJaccard is intersection over union of whitespace token sets.
func WordSetJaccard(a, b string) float64 {
	sa := tokenSet(a)
	sb := tokenSet(b)
	if len(sa) == 0 || len(sb) == 0 {
		return 0
	}

	inter := 0
	for t := range sa {
		if sb[t] {
			inter++
		}
	}
	union := len(sa) + len(sb) - inter
	return float64(inter) / float64(union)
}

func tokenSet(s string) map[string]bool {
	set := map[string]bool{}
	for _, t := range strings.Fields(s) {
		set[t] = true
	}
	return set
}

func normalizeName(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
