package place

import (
	"testing"

	"github.com/yevv0ne/placepick/infrastructures/keywords"
)

func TestDecidePickedOnClearMargin(t *testing.T) {
	scored := []ScoredRecord{
		{Record: Record{Name: "B"}, Score: 40},
		{Record: Record{Name: "A"}, Score: 60},
	}

	d := Decide(scored)
	if d.Outcome != OutcomePicked {
		t.Fatalf("expected Picked, got %s", d.Outcome)
	}
	if d.Picked == nil || d.Picked.Record.Name != "A" {
		t.Fatalf("expected top record A, got %+v", d.Picked)
	}
}

func TestDecideAmbiguousOnNarrowMargin(t *testing.T) {
	scored := []ScoredRecord{
		{Record: Record{Name: "A"}, Score: 50},
		{Record: Record{Name: "B"}, Score: 48},
	}

	d := Decide(scored)
	if d.Outcome != OutcomeAmbiguous {
		t.Fatalf("expected Ambiguous, got %s", d.Outcome)
	}
	if len(d.Shortlist) != 2 {
		t.Fatalf("expected 2-entry shortlist, got %d", len(d.Shortlist))
	}
	if d.Shortlist[0].Record.Name != "A" {
		t.Fatalf("shortlist should be sorted by score: %+v", d.Shortlist)
	}
}

func TestDecideAmbiguousBelowFloor(t *testing.T) {
	scored := []ScoredRecord{
		{Record: Record{Name: "A"}, Score: 40},
		{Record: Record{Name: "B"}, Score: 10},
	}

	if d := Decide(scored); d.Outcome != OutcomeAmbiguous {
		t.Fatalf("top below floor must not be picked, got %s", d.Outcome)
	}
}

func TestDecideSingleRecord(t *testing.T) {
	if d := Decide([]ScoredRecord{{Record: Record{Name: "A"}, Score: 46}}); d.Outcome != OutcomePicked {
		t.Fatalf("lone record above floor should be picked, got %s", d.Outcome)
	}
	if d := Decide([]ScoredRecord{{Record: Record{Name: "A"}, Score: 44}}); d.Outcome != OutcomeAmbiguous {
		t.Fatalf("lone record below floor should be ambiguous, got %s", d.Outcome)
	}
}

func TestDecideShortlistCappedAtThree(t *testing.T) {
	scored := []ScoredRecord{
		{Record: Record{Name: "A"}, Score: 30},
		{Record: Record{Name: "B"}, Score: 29},
		{Record: Record{Name: "C"}, Score: 28},
		{Record: Record{Name: "D"}, Score: 27},
	}

	d := Decide(scored)
	if d.Outcome != OutcomeAmbiguous || len(d.Shortlist) != 3 {
		t.Fatalf("expected top-3 shortlist, got %s with %d entries", d.Outcome, len(d.Shortlist))
	}
}

func TestRankEmptyRecords(t *testing.T) {
	d := Rank(nil, &keywords.ContextHints{})
	if d.Outcome != OutcomeNoCandidates {
		t.Fatalf("expected NoCandidates, got %s", d.Outcome)
	}
}

func TestRankScoresAndSorts(t *testing.T) {
	ctx := &keywords.ContextHints{
		StrongNames: []string{"스타벅스"},
		AreaHints:   []string{"강남구"},
	}
	records := []Record{
		{Name: "할리스", Address: "서울 서초구 서초대로 11"},
		{Name: "스타벅스 강남점", Address: "서울 강남구 테헤란로 101"},
	}

	d := Rank(records, ctx)
	if d.Outcome != OutcomePicked {
		t.Fatalf("expected Picked, got %s", d.Outcome)
	}
	if d.Picked.Record.Name != "스타벅스 강남점" {
		t.Fatalf("wrong record picked: %s", d.Picked.Record.Name)
	}
}
