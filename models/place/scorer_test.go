package place

import (
	"strings"
	"testing"

	"github.com/yevv0ne/placepick/infrastructures/keywords"
)

func TestScoreNameAndAreaDominate(t *testing.T) {
	ctx := &keywords.ContextHints{
		StrongNames:  []string{"스타벅스"},
		AreaHints:    []string{"강남구"},
		TextKeywords: keywords.VenueKeywords,
		MenuHints:    keywords.MenuKeywords,
	}
	record := &Record{
		Name:    "스타벅스 강남점",
		Address: "서울 강남구 테헤란로 101",
	}

	score, reasons := Score(record, ctx)

	// name similarity dominant term plus the area bonus
	want := NameSimilarityWeight*0.85 + AreaBonus
	if score < want {
		t.Fatalf("score %f below %f", score, want)
	}
	if len(reasons) == 0 {
		t.Fatalf("expected non-empty reasons")
	}
}

func TestScoreCategoryBonus(t *testing.T) {
	ctx := &keywords.ContextHints{
		TextKeywords: []string{"카페"},
	}
	record := &Record{Name: "어딘가", Category: "음식점>카페,디저트"}

	score, reasons := Score(record, ctx)
	if score != CategoryBonus {
		t.Fatalf("expected category bonus only, got %f", score)
	}
	if len(reasons) != 1 || !strings.Contains(reasons[0], "category") {
		t.Fatalf("unexpected reasons: %v", reasons)
	}
}

func TestScorePhoneBonusDigitNormalized(t *testing.T) {
	ctx := &keywords.ContextHints{
		PhoneHints: []string{"02-1234-5678"},
	}
	record := &Record{Name: "가게", Phone: "0212345678"}

	score, reasons := Score(record, ctx)
	if score != PhoneBonus {
		t.Fatalf("expected phone bonus, got %f", score)
	}
	if len(reasons) != 1 {
		t.Fatalf("unexpected reasons: %v", reasons)
	}
}

func TestScoreMenuOverlapCapped(t *testing.T) {
	ctx := &keywords.ContextHints{
		MenuHints: []string{"타르트", "케이크", "마카롱", "베이글"},
	}
	record := &Record{
		Name:     "타르트와 케이크",
		Category: "베이커리>마카롱,베이글",
	}

	score, _ := Score(record, ctx)
	// four terms overlap but the cap holds at three
	if score != MenuBonusPerTerm*MenuBonusMaxTerms {
		t.Fatalf("expected capped menu bonus %f, got %f", MenuBonusPerTerm*MenuBonusMaxTerms, score)
	}
}

func TestScoreSourceBoost(t *testing.T) {
	ctx := &keywords.ContextHints{
		SourceBoost: map[string]float64{"독립서점": 15},
	}
	record := &Record{Name: "독립서점"}

	score, reasons := Score(record, ctx)
	if score != 15 {
		t.Fatalf("expected boost 15, got %f", score)
	}
	if len(reasons) != 1 {
		t.Fatalf("unexpected reasons: %v", reasons)
	}
}

func TestScoreNoSignals(t *testing.T) {
	ctx := &keywords.ContextHints{}
	record := &Record{Name: "완전히 다른 곳", Address: "부산 해운대구"}

	score, reasons := Score(record, ctx)
	if score != 0 {
		t.Fatalf("expected zero score, got %f", score)
	}
	if len(reasons) != 0 {
		t.Fatalf("expected no reasons, got %v", reasons)
	}
}
