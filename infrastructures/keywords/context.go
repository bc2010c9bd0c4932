package keywords

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// ContextHints carries the auxiliary signals derived once per request
// and consumed by scoring. Immutable after construction.
type ContextHints struct {
	StrongNames  []string           `json:"strongNames"`
	AreaHints    []string           `json:"areaHints"`
	PhoneHints   []string           `json:"phoneHints"`
	TextKeywords []string           `json:"textKeywords"`
	MenuHints    []string           `json:"menuHints"`
	SourceBoost  map[string]float64 `json:"sourceBoost,omitempty"`
}

// ContextOptions are caller-supplied overrides; zero values fall back
// to the built-in vocabularies.
type ContextOptions struct {
	TextKeywords []string
	MenuHints    []string
	SourceBoost  map[string]float64
}

// maxStrongNameLen caps each strong-name candidate.
const maxStrongNameLen = 30

var (
	areaHintRe = regexp.MustCompile(`[가-힣]+(?:특별시|광역시|도)|[가-힣]{1,6}(?:시|구|군)|[가-힣A-Za-z0-9]{2,}역`)
	phoneRe    = regexp.MustCompile(`0\d{1,2}[-.\s]?\d{3,4}[-.\s]?\d{4}`)

	hashtagTokenRe = regexp.MustCompile(`#?([0-9A-Za-z가-힣_]+)`)

	// the greedy prefix capture keeps the longest brand and strips the
	// shortest trailing branch marker, so 스타벅스강남점 yields 스타벅스
	// rather than the leftmost-first over-strip
	branchNameRe = regexp.MustCompile(`^([0-9A-Za-z가-힣_]{2,})(?:` + branchSuffixes + `)$`)
	separatorRe    = regexp.MustCompile(`[:：\-–|(]`)
	nonDigitRe     = regexp.MustCompile(`\D`)
)

// BuildContext derives ContextHints from the full text and an optional
// hashtag string. opts may be nil.
func BuildContext(allText, hashtags string, opts *ContextOptions) *ContextHints {
	ctx := &ContextHints{
		TextKeywords: VenueKeywords,
		MenuHints:    MenuKeywords,
		SourceBoost:  map[string]float64{},
	}
	if opts != nil {
		if len(opts.TextKeywords) > 0 {
			ctx.TextKeywords = opts.TextKeywords
		}
		if len(opts.MenuHints) > 0 {
			ctx.MenuHints = opts.MenuHints
		}
		if len(opts.SourceBoost) > 0 {
			ctx.SourceBoost = opts.SourceBoost
		}
	}

	ctx.StrongNames = collectStrongNames(allText, hashtags, ctx.TextKeywords)
	ctx.AreaHints = dedupeMatches(areaHintRe, allText+"\n"+hashtags)
	ctx.PhoneHints = dedupeMatches(phoneRe, allText)

	return ctx
}

// collectStrongNames unions hashtag-derived names (raw and with branch
// suffixes stripped) with keyword-bearing lines and pre-separator
// tokens from each line.
func collectStrongNames(allText, hashtags string, textKeywords []string) []string {
	seen := map[string]bool{}
	var names []string

	add := func(s string) {
		s = NormalizeCandidate(s)
		if utf8.RuneCountInString(s) < 2 {
			return
		}
		if utf8.RuneCountInString(s) > maxStrongNameLen {
			s = string([]rune(s)[:maxStrongNameLen])
		}
		if !seen[s] {
			seen[s] = true
			names = append(names, s)
		}
	}

	for _, m := range hashtagTokenRe.FindAllStringSubmatch(hashtags, -1) {
		token := m[1]
		add(token)
		if bm := branchNameRe.FindStringSubmatch(token); bm != nil {
			add(bm[1])
		}
	}

	for _, line := range nonEmptyLines(allText) {
		if containsAny(line, textKeywords) {
			add(line)
		}
		if loc := separatorRe.FindStringIndex(line); loc != nil && loc[0] > 0 {
			add(line[:loc[0]])
		}
	}

	return names
}

// NormalizeDigits strips every non-digit rune, for phone comparison.
func NormalizeDigits(s string) string {
	return nonDigitRe.ReplaceAllString(s, "")
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if k != "" && strings.Contains(s, k) {
			return true
		}
	}
	return false
}

func dedupeMatches(re *regexp.Regexp, text string) []string {
	seen := map[string]bool{}
	var out []string
	for _, m := range re.FindAllString(text, -1) {
		m = strings.TrimSpace(m)
		if m != "" && !seen[m] {
			seen[m] = true
			out = append(out, m)
		}
	}
	return out
}
