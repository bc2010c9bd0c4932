package keywords

import (
	"testing"
)

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}

func TestBuildContextHashtagsBecomeStrongNames(t *testing.T) {
	ctx := BuildContext("", "#스타벅스강남점 #주말나들이", nil)

	if !containsString(ctx.StrongNames, "스타벅스강남점") {
		t.Fatalf("expected raw hashtag name, got %v", ctx.StrongNames)
	}
	// branch suffix stripped variant
	if !containsString(ctx.StrongNames, "스타벅스") {
		t.Fatalf("expected branch-stripped name, got %v", ctx.StrongNames)
	}
	// only the trailing branch marker comes off, never more
	if containsString(ctx.StrongNames, "스타") || containsString(ctx.StrongNames, "스타벅") {
		t.Fatalf("brand over-stripped: %v", ctx.StrongNames)
	}
}

func TestBuildContextBranchMarkerVariants(t *testing.T) {
	cases := []struct {
		hashtag string
		want    string
	}{
		{"#할리스본점", "할리스"},
		{"#투썸플레이스지점", "투썸플레이스"},
		{"#빽다방홍대점", "빽다방"},
	}
	for _, tc := range cases {
		ctx := BuildContext("", tc.hashtag, nil)
		if !containsString(ctx.StrongNames, tc.want) {
			t.Fatalf("%s: expected %q among strong names, got %v", tc.hashtag, tc.want, ctx.StrongNames)
		}
	}

	// a bare branch token has no brand to recover
	ctx := BuildContext("", "#강남점", nil)
	for _, name := range ctx.StrongNames {
		if name != "강남점" {
			t.Fatalf("unexpected stripped variant %q from bare branch token", name)
		}
	}
}

func TestBuildContextKeywordLines(t *testing.T) {
	text := "연남동 감성 카페 추천\n빵굽는마을 - 매일 구워요"
	ctx := BuildContext(text, "", nil)

	if !containsString(ctx.StrongNames, "연남동 감성 카페 추천") {
		t.Fatalf("expected keyword-bearing line, got %v", ctx.StrongNames)
	}
	// token before the separator on the second line
	if !containsString(ctx.StrongNames, "빵굽는마을") {
		t.Fatalf("expected pre-separator token, got %v", ctx.StrongNames)
	}
}

func TestBuildContextAreaAndPhoneHints(t *testing.T) {
	text := "서울 마포구 월드컵로 12 근처, 합정역 도보 5분\n문의 02-1234-5678"
	ctx := BuildContext(text, "", nil)

	if !containsString(ctx.AreaHints, "마포구") {
		t.Fatalf("expected district hint, got %v", ctx.AreaHints)
	}
	if !containsString(ctx.AreaHints, "합정역") {
		t.Fatalf("expected station hint, got %v", ctx.AreaHints)
	}
	if !containsString(ctx.PhoneHints, "02-1234-5678") {
		t.Fatalf("expected phone hint, got %v", ctx.PhoneHints)
	}
}

func TestBuildContextDefaultsAndOverrides(t *testing.T) {
	ctx := BuildContext("텍스트", "", nil)
	if len(ctx.TextKeywords) == 0 || len(ctx.MenuHints) == 0 {
		t.Fatalf("expected built-in vocabularies by default")
	}

	override := &ContextOptions{
		TextKeywords: []string{"서점"},
		MenuHints:    []string{"시집"},
		SourceBoost:  map[string]float64{"독립서점": 15},
	}
	ctx = BuildContext("텍스트", "", override)
	if len(ctx.TextKeywords) != 1 || ctx.TextKeywords[0] != "서점" {
		t.Fatalf("keyword override not applied: %v", ctx.TextKeywords)
	}
	if ctx.SourceBoost["독립서점"] != 15 {
		t.Fatalf("source boost override not applied: %v", ctx.SourceBoost)
	}
}

func TestBuildContextStrongNameCap(t *testing.T) {
	long := "아주아주아주아주아주아주아주아주아주아주아주아주아주긴카페이름입니다정말로"
	ctx := BuildContext("", "#"+long, nil)

	for _, n := range ctx.StrongNames {
		if len([]rune(n)) > 30 {
			t.Fatalf("strong name exceeds cap: %q (%d runes)", n, len([]rune(n)))
		}
	}
	if len(ctx.StrongNames) == 0 {
		t.Fatalf("expected capped name to be kept")
	}
}

func TestNormalizeDigits(t *testing.T) {
	if got := NormalizeDigits("02-1234-5678"); got != "0212345678" {
		t.Fatalf("NormalizeDigits: got %q", got)
	}
}
