package place

import (
	"sort"

	"github.com/yevv0ne/placepick/infrastructures/keywords"
)

// Decision thresholds. The absolute floor avoids picking a weakly
// matched lone candidate; the relative margin avoids false confidence
// between near-identical establishments such as chain branches.
const (
	PickScoreFloor     = 45.0
	PickRelativeMargin = 0.12
	shortlistSize      = 3
)

// Rank scores every record, sorts descending, and applies the decision
// rule.
func Rank(records []Record, ctx *keywords.ContextHints) Decision {
	if len(records) == 0 {
		return Decision{Outcome: OutcomeNoCandidates}
	}

	scored := make([]ScoredRecord, 0, len(records))
	for i := range records {
		s, reasons := Score(&records[i], ctx)
		scored = append(scored, ScoredRecord{
			Record:  records[i],
			Score:   s,
			Reasons: reasons,
		})
	}

	return Decide(scored)
}

// Decide applies the decision rule to scored records: pick the top when
// it clears the absolute floor and beats the runner-up by the relative
// margin, otherwise report an ambiguous shortlist.
func Decide(scored []ScoredRecord) Decision {
	if len(scored) == 0 {
		return Decision{Outcome: OutcomeNoCandidates}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	top := scored[0]
	if len(scored) >= 2 {
		second := scored[1].Score
		denom := second
		if denom < 1 {
			denom = 1
		}
		if top.Score >= PickScoreFloor && (top.Score-second)/denom >= PickRelativeMargin {
			return Decision{Outcome: OutcomePicked, Picked: &top}
		}
	} else if top.Score >= PickScoreFloor {
		return Decision{Outcome: OutcomePicked, Picked: &top}
	}

	n := shortlistSize
	if len(scored) < n {
		n = len(scored)
	}
	return Decision{Outcome: OutcomeAmbiguous, Shortlist: scored[:n]}
}
