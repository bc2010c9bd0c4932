package place

import (
	"fmt"
	"strings"

	"github.com/yevv0ne/placepick/infrastructures/keywords"
)

// Scoring weights. Empirically calibrated; change with care because
// the decision thresholds in ranker.go assume this scale.
const (
	NameSimilarityWeight = 50.0
	CategoryBonus        = 10.0
	AreaBonus            = 12.0
	PhoneBonus           = 8.0
	MenuBonusPerTerm     = 4.0
	MenuBonusMaxTerms    = 3

	// reasons mention name similarity only above this value
	nameReasonThreshold = 0.85
)

// Score computes the additive relevance score of a record against the
// derived context. Each signal contributes independently.
func Score(record *Record, ctx *keywords.ContextHints) (float64, []string) {
	var score float64
	var reasons []string

	// name similarity, best over all strong names
	best := 0.0
	bestName := ""
	for _, name := range ctx.StrongNames {
		if sim := keywords.NameSimilarity(name, record.Name); sim > best {
			best = sim
			bestName = name
		}
	}
	score += best * NameSimilarityWeight
	if best > nameReasonThreshold {
		reasons = append(reasons, fmt.Sprintf("name similarity %.2f with %q", best, bestName))
	}

	// category keyword match
	for _, kw := range ctx.TextKeywords {
		if kw != "" && strings.Contains(record.Category, kw) {
			score += CategoryBonus
			reasons = append(reasons, fmt.Sprintf("category matches %q", kw))
			break
		}
	}

	// area hint in address
	for _, area := range ctx.AreaHints {
		if area != "" && strings.Contains(record.Address, area) {
			score += AreaBonus
			reasons = append(reasons, fmt.Sprintf("address matches area %q", area))
			break
		}
	}

	// phone match on digits only
	if record.Phone != "" {
		recordDigits := keywords.NormalizeDigits(record.Phone)
		for _, phone := range ctx.PhoneHints {
			digits := keywords.NormalizeDigits(phone)
			if digits != "" && strings.Contains(recordDigits, digits) {
				score += PhoneBonus
				reasons = append(reasons, fmt.Sprintf("phone matches %q", phone))
				break
			}
		}
	}

	// menu keyword overlap against name and category text
	overlap := 0
	haystack := record.Name + " " + record.Category
	for _, menu := range ctx.MenuHints {
		if menu != "" && strings.Contains(haystack, menu) {
			overlap++
			if overlap == MenuBonusMaxTerms {
				break
			}
		}
	}
	if overlap > 0 {
		score += float64(overlap) * MenuBonusPerTerm
		reasons = append(reasons, fmt.Sprintf("%d menu terms overlap", overlap))
	}

	// caller-supplied boost for a pre-known name
	if boost, ok := ctx.SourceBoost[record.Name]; ok && boost != 0 {
		score += boost
		reasons = append(reasons, fmt.Sprintf("source boost %.0f", boost))
	}

	return score, reasons
}
