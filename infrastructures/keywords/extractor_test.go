package keywords

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func candidateTexts(cands []Candidate) []string {
	out := make([]string, 0, len(cands))
	for _, c := range cands {
		out = append(out, c.Text)
	}
	return out
}

func hasCandidate(cands []Candidate, text string) bool {
	for _, c := range cands {
		if c.Text == text {
			return true
		}
	}
	return false
}

func TestExtractCandidatesLabelledStoreAndAddress(t *testing.T) {
	cands := ExtractCandidates("매장: 빵굽는마을 ▪위치: 서울 마포구 월드컵로 12")

	if !hasCandidate(cands, "빵굽는마을") {
		t.Fatalf("expected store name candidate, got %v", candidateTexts(cands))
	}

	foundAddress := false
	for _, c := range cands {
		if strings.Contains(c.Text, "마포구") && strings.Contains(c.Text, "월드컵로") {
			foundAddress = true
		}
	}
	if !foundAddress {
		t.Fatalf("expected address candidate with 마포구 and 월드컵로, got %v", candidateTexts(cands))
	}
}

func TestExtractCandidatesHashtags(t *testing.T) {
	cands := ExtractCandidates("오늘 방문! #성수카페 #소금빵맛집 #ab")

	if !hasCandidate(cands, "성수카페") {
		t.Fatalf("expected hashtag candidate, got %v", candidateTexts(cands))
	}
	if !hasCandidate(cands, "소금빵맛집") {
		t.Fatalf("expected hashtag candidate, got %v", candidateTexts(cands))
	}
	// #ab is exactly 3 characters including the marker, so it stays
	if !hasCandidate(cands, "ab") {
		t.Fatalf("expected minimum-length hashtag to survive, got %v", candidateTexts(cands))
	}

	for _, c := range cands {
		if strings.HasPrefix(c.Text, "#") {
			t.Fatalf("hashtag marker should be stripped: %q", c.Text)
		}
	}
}

func TestExtractCandidatesBusinessAndLandmarkSuffix(t *testing.T) {
	cands := ExtractCandidates("어제 홍대타르트 먹고 합정역 근처 산책")

	if !hasCandidate(cands, "홍대타르트") {
		t.Fatalf("expected business-keyword candidate, got %v", candidateTexts(cands))
	}
	if !hasCandidate(cands, "합정역") {
		t.Fatalf("expected landmark-keyword candidate, got %v", candidateTexts(cands))
	}
}

func TestExtractCandidatesRoadAddress(t *testing.T) {
	cands := ExtractCandidates("주소는 경기도 성남시 분당구 판교역로 235 5층 입니다")

	found := false
	for _, c := range cands {
		if c.Provenance == ProvenanceAddress && strings.Contains(c.Text, "판교역로 235") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected road address candidate, got %v", candidateTexts(cands))
	}
}

func TestExtractCandidatesNoPattern(t *testing.T) {
	if cands := ExtractCandidates("hello world, nothing here"); len(cands) != 0 {
		t.Fatalf("expected no candidates, got %v", candidateTexts(cands))
	}
	if cands := ExtractCandidates(""); len(cands) != 0 {
		t.Fatalf("expected no candidates for empty input")
	}
	if cands := ExtractCandidates("   \n\t  "); len(cands) != 0 {
		t.Fatalf("expected no candidates for blank input")
	}
}

func TestTruncateAtRuneKeepsValidUTF8(t *testing.T) {
	// 강 is 3 bytes; cutting at 4 or 5 would land inside the second rune
	s := "강남역"
	for limit, want := range map[int]string{
		3: "강",
		4: "강",
		5: "강",
		6: "강남",
		9: "강남역",
	} {
		got := truncateAtRune(s, limit)
		if got != want {
			t.Fatalf("truncateAtRune(%q, %d) = %q, want %q", s, limit, got, want)
		}
		if !utf8.ValidString(got) {
			t.Fatalf("truncateAtRune(%q, %d) produced invalid UTF-8", s, limit)
		}
	}
	if got := truncateAtRune("abc", 10); got != "abc" {
		t.Fatalf("short input should pass through, got %q", got)
	}
}

func TestExtractCandidatesTruncatesOnRuneBoundary(t *testing.T) {
	// pad so the length cap lands one byte into the trailing Hangul run
	prefix := "매장: 커피한잔\n"
	text := prefix + strings.Repeat("a", MaxInputLength-len(prefix)-1) + strings.Repeat("역", 20)

	cands := ExtractCandidates(text)
	if !hasCandidate(cands, "커피한잔") {
		t.Fatalf("expected store name to survive truncation, got %v", candidateTexts(cands))
	}
	for _, c := range cands {
		if !utf8.ValidString(c.Text) {
			t.Fatalf("candidate contains invalid UTF-8: %q", c.Text)
		}
	}
}

func TestExtractCandidatesNormalized(t *testing.T) {
	cands := ExtractCandidates("매장:   커피   한잔  \n#연남동  #연남동")

	seen := map[string]int{}
	for _, c := range cands {
		if c.Text != strings.TrimSpace(c.Text) {
			t.Fatalf("candidate not trimmed: %q", c.Text)
		}
		if strings.Contains(c.Text, "  ") {
			t.Fatalf("internal whitespace not collapsed: %q", c.Text)
		}
		seen[c.Text]++
	}
	for text, n := range seen {
		if n > 1 {
			t.Fatalf("candidate %q duplicated %d times", text, n)
		}
	}
	if !hasCandidate(cands, "커피 한잔") {
		t.Fatalf("expected collapsed store name, got %v", candidateTexts(cands))
	}
}
