package keywords

import (
	"testing"
)

func TestExtractPairsLabelAddress(t *testing.T) {
	pairs := ExtractPairs("스타벅스\n위치: 서울 강남구 테헤란로 1")

	if len(pairs) != 1 {
		t.Fatalf("expected 1 pair, got %d: %v", len(pairs), pairs)
	}
	if pairs[0].Name != "스타벅스" {
		t.Fatalf("unexpected name: %q", pairs[0].Name)
	}
	if pairs[0].Address != "서울 강남구 테헤란로 1" {
		t.Fatalf("unexpected address: %q", pairs[0].Address)
	}
}

func TestExtractPairsScanWindow(t *testing.T) {
	// address appears 4 lines after the name, still inside the window
	text := "빵굽는마을\n영업시간 10-22\n매일 굽는 빵\n예약 환영\n주소: 서울 마포구 월드컵로 12"
	pairs := ExtractPairs(text)

	if len(pairs) == 0 {
		t.Fatalf("expected a pair inside the scan window")
	}
	if pairs[0].Name != "빵굽는마을" || pairs[0].Address != "서울 마포구 월드컵로 12" {
		t.Fatalf("unexpected pair: %+v", pairs[0])
	}
}

func TestExtractPairsWindowExceeded(t *testing.T) {
	// address is 5 lines below the name, beyond the window
	text := "빵굽는마을\na\nb\nc\nd\n주소: 서울 마포구 월드컵로 12"
	for _, p := range ExtractPairs(text) {
		if p.Name == "빵굽는마을" {
			t.Fatalf("pair found beyond scan window: %+v", p)
		}
	}
}

func TestExtractPairsNoiseLinesRejected(t *testing.T) {
	text := "@cafe_official\n#성수카페\n팔로워 1,234명\n위치: 서울 성동구 연무장길 20"
	for _, p := range ExtractPairs(text) {
		if p.Name == "@cafe_official" || p.Name == "#성수카페" {
			t.Fatalf("noise line classified as name: %+v", p)
		}
	}
}

func TestExtractPairsInlineAddress(t *testing.T) {
	pairs := ExtractPairs("온더보더\n서울 용산구 이태원로 187")

	if len(pairs) != 1 {
		t.Fatalf("expected 1 pair, got %v", pairs)
	}
	if pairs[0].Address != "서울 용산구 이태원로 187" {
		t.Fatalf("unexpected inline address: %q", pairs[0].Address)
	}
}

func TestExtractPairsShortAddressRejected(t *testing.T) {
	pairs := ExtractPairs("가게\n주소: 대로1")
	if len(pairs) != 0 {
		t.Fatalf("expected short address to be rejected, got %v", pairs)
	}
}

func TestExtractPairsDeduplicated(t *testing.T) {
	text := "스타벅스\n위치: 서울 강남구 테헤란로 1\n스타벅스\n위치: 서울 강남구 테헤란로 1"
	pairs := ExtractPairs(text)
	if len(pairs) != 1 {
		t.Fatalf("expected deduplicated pairs, got %v", pairs)
	}
}

func TestExtractPairsEmpty(t *testing.T) {
	if pairs := ExtractPairs(""); len(pairs) != 0 {
		t.Fatalf("expected no pairs for empty input")
	}
}
