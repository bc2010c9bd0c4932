package keywords

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
)

// Provenance tags which pattern family produced a candidate.
type Provenance string

const (
	ProvenanceStoreLabel Provenance = "store-label"
	ProvenanceAddress    Provenance = "address"
	ProvenanceHashtag    Provenance = "hashtag"
	ProvenanceBusiness   Provenance = "business-keyword"
	ProvenanceLandmark   Provenance = "landmark-keyword"
)

// Candidate is a normalized string believed to name a place or address.
type Candidate struct {
	Text       string     `json:"text"`
	Provenance Provenance `json:"provenance"`
}

// patternRule is one entry of the declarative extraction table. All
// rules are applied independently and their matches unioned.
type patternRule struct {
	provenance Provenance
	pattern    string
	group      int // submatch index to keep, 0 for the whole match
	minLen     int // minimum rune length before normalization
	re         *regexp.Regexp
}

var patternRules = []*patternRule{
	// store name after a label token and colon, up to a break character
	{
		provenance: ProvenanceStoreLabel,
		pattern:    `(?:매장|상호|가게|브랜드|업체|스토어)\s*[:：]\s*([^\n\r▪•|#@]+)`,
		group:      1,
		minLen:     2,
	},
	// full road-style address with optional province prefix
	{
		provenance: ProvenanceAddress,
		pattern:    `(?:(?:서울|부산|대구|인천|광주|대전|울산|세종)\s*|[가-힣]+(?:특별시|광역시|시|도)\s*)?[가-힣]+(?:시|군|구)\s+[가-힣A-Za-z0-9]+(?:로|길|가)\s*[0-9]+(?:-[0-9]+)?(?:\s*(?:[0-9]+층|[0-9]+호|지하[0-9]*층?))?`,
		group:      0,
		minLen:     6,
	},
	// address after a location label, requiring a street-type+number shape
	{
		provenance: ProvenanceAddress,
		pattern:    `(?:위치|주소|장소)\s*[:：]\s*([^\n\r▪•|#@]*(?:로|길|가|동)\s*[0-9][0-9\-]*[^\n\r▪•|#@]*)`,
		group:      1,
		minLen:     6,
	},
	// simple lot-style address
	{
		provenance: ProvenanceAddress,
		pattern:    `[가-힣]+(?:시|군|구)\s+[가-힣]+(?:동|읍|면|리)\s*[0-9\-]*`,
		group:      0,
		minLen:     4,
	},
	// hashtag token, minimum length includes the marker itself
	{
		provenance: ProvenanceHashtag,
		pattern:    `#[0-9A-Za-z가-힣_]+`,
		group:      0,
		minLen:     3,
	},
	// run of text ending in a business-category keyword
	{
		provenance: ProvenanceBusiness,
		pattern:    `[가-힣A-Za-z0-9]+(?:` + businessSuffixes + `)`,
		group:      0,
		minLen:     3,
	},
	// run of text ending in a landmark keyword
	{
		provenance: ProvenanceLandmark,
		pattern:    `[가-힣A-Za-z0-9]+(?:` + landmarkSuffixes + `)`,
		group:      0,
		minLen:     3,
	},
}

var extractorLogger = logrus.New()

func init() {
	extractorLogger.SetFormatter(&logrus.JSONFormatter{})
	extractorLogger.SetLevel(logrus.WarnLevel)

	for _, rule := range patternRules {
		rule.re = regexp.MustCompile(rule.pattern)
	}
}

// ExtractCandidates scans raw text with every pattern rule and returns
// the union of matches, normalized and deduplicated. Unmatched text is
// not an error; the result is simply empty.
func ExtractCandidates(text string) []Candidate {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if len(text) > MaxInputLength {
		text = truncateAtRune(text, MaxInputLength)
		extractorLogger.WithField("limit", MaxInputLength).Warn("input truncated")
	}

	seen := map[string]bool{}
	var out []Candidate

	for _, rule := range patternRules {
		for _, m := range rule.re.FindAllStringSubmatch(text, -1) {
			raw := m[rule.group]
			if utf8.RuneCountInString(strings.TrimSpace(raw)) < rule.minLen {
				continue
			}

			norm := NormalizeCandidate(raw)
			if utf8.RuneCountInString(norm) <= 1 {
				continue
			}
			if seen[norm] {
				continue
			}
			seen[norm] = true
			out = append(out, Candidate{Text: norm, Provenance: rule.provenance})
		}
	}

	return out
}

// NormalizeCandidate collapses internal whitespace, trims, and strips a
// leading hashtag marker.
func NormalizeCandidate(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "#")
	return strings.Join(strings.Fields(s), " ")
}

// truncateAtRune cuts s to at most limit bytes without splitting a rune.
func truncateAtRune(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
