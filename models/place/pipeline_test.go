package place

import (
	"context"
	"errors"
	"testing"

	"github.com/yevv0ne/placepick/infrastructures/keywords"
)

func TestLocatePicksFromPairedText(t *testing.T) {
	searcher := SearcherFunc(func(ctx context.Context, query string) ([]Record, error) {
		return []Record{
			{Name: "스타벅스 강남점", Category: "음식점>카페", Address: "서울 강남구 테헤란로 101", Phone: "02-1234-5678"},
			{Name: "커피빈 선릉점", Category: "음식점>카페", Address: "서울 강남구 선릉로 50"},
		}, nil
	})
	engine := NewEngine(searcher, ResolverOptions{})

	decision, err := engine.Locate(context.Background(), &LocateRequest{
		Text: "스타벅스\n위치: 서울 강남구 테헤란로 1",
	})
	if err != nil {
		t.Fatalf("Locate: %v", err)
	}

	if decision.Outcome != OutcomePicked {
		t.Fatalf("expected Picked, got %s", decision.Outcome)
	}
	if decision.Picked.Record.Name != "스타벅스 강남점" {
		t.Fatalf("wrong record picked: %s", decision.Picked.Record.Name)
	}

	trace := decision.Trace
	if trace == nil || trace.RequestID == "" {
		t.Fatalf("expected trace with request id")
	}
	if len(trace.Queries) == 0 {
		t.Fatalf("expected generated queries in trace")
	}
	if trace.StrongNames[0] != "스타벅스" {
		t.Fatalf("paired name should anchor strong names: %v", trace.StrongNames)
	}
}

func TestLocateEmptyTextFails(t *testing.T) {
	engine := NewEngine(SearcherFunc(func(ctx context.Context, q string) ([]Record, error) {
		return nil, nil
	}), ResolverOptions{})

	if _, err := engine.Locate(context.Background(), &LocateRequest{Text: "   "}); !errors.Is(err, keywords.ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}

func TestLocateNoCandidatesWhenSearchEmpty(t *testing.T) {
	engine := NewEngine(SearcherFunc(func(ctx context.Context, q string) ([]Record, error) {
		return nil, nil
	}), ResolverOptions{})

	decision, err := engine.Locate(context.Background(), &LocateRequest{
		Text: "맛집: 빵굽는마을",
	})
	if err != nil {
		t.Fatalf("Locate: %v", err)
	}
	if decision.Outcome != OutcomeNoCandidates {
		t.Fatalf("expected NoCandidates, got %s", decision.Outcome)
	}
}

func TestLocateAllQueriesFailDegrades(t *testing.T) {
	engine := NewEngine(SearcherFunc(func(ctx context.Context, q string) ([]Record, error) {
		return nil, errors.New("quota exceeded")
	}), ResolverOptions{})

	decision, err := engine.Locate(context.Background(), &LocateRequest{
		Text:     "오늘의 카페 투어",
		Hashtags: "#성수카페",
	})
	if err != nil {
		t.Fatalf("resolver failures must not abort the pipeline: %v", err)
	}
	if decision.Outcome != OutcomeNoCandidates {
		t.Fatalf("expected NoCandidates, got %s", decision.Outcome)
	}
	if decision.Trace.FailedCalls == 0 {
		t.Fatalf("expected failed calls recorded in trace")
	}
}

func TestLocateHashtagsFeedStrongNames(t *testing.T) {
	var gotQueries []string
	engine := NewEngine(SearcherFunc(func(ctx context.Context, q string) ([]Record, error) {
		gotQueries = append(gotQueries, q)
		return nil, nil
	}), ResolverOptions{MaxQueries: 1})

	_, err := engine.Locate(context.Background(), &LocateRequest{
		Text:     "주말 나들이",
		Hashtags: "#빵굽는마을",
	})
	if err != nil {
		t.Fatalf("Locate: %v", err)
	}
	if len(gotQueries) != 1 || gotQueries[0] != "빵굽는마을" {
		t.Fatalf("expected hashtag-derived query, got %v", gotQueries)
	}
}

func TestLocateSourceBoostFlowsToScoring(t *testing.T) {
	engine := NewEngine(SearcherFunc(func(ctx context.Context, q string) ([]Record, error) {
		return []Record{{Name: "숨은서점"}, {Name: "다른곳"}}, nil
	}), ResolverOptions{})

	decision, err := engine.Locate(context.Background(), &LocateRequest{
		Text:        "상호: 숨은서점",
		SourceBoost: map[string]float64{"숨은서점": 60},
	})
	if err != nil {
		t.Fatalf("Locate: %v", err)
	}
	if decision.Outcome != OutcomePicked || decision.Picked.Record.Name != "숨은서점" {
		t.Fatalf("source boost should force the pick, got %+v", decision)
	}
}
