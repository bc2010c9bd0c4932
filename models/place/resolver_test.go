package place

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/yevv0ne/placepick/infrastructures/keywords"
)

// fakeSearcher returns canned records per query and can fail selected
// queries.
type fakeSearcher struct {
	mu      sync.Mutex
	results map[string][]Record
	fail    map[string]error
	calls   []string
}

func (f *fakeSearcher) Search(ctx context.Context, query string) ([]Record, error) {
	f.mu.Lock()
	f.calls = append(f.calls, query)
	f.mu.Unlock()

	if err, ok := f.fail[query]; ok {
		return nil, err
	}
	return f.results[query], nil
}

func TestPlanQueriesNameAreaCross(t *testing.T) {
	r := NewResolver(&fakeSearcher{}, ResolverOptions{})
	ctx := &keywords.ContextHints{
		StrongNames: []string{"스타벅스", "할리스"},
		AreaHints:   []string{"강남구", "서초구"},
	}

	queries := r.PlanQueries(ctx, "본문")
	want := []string{"스타벅스 강남구", "스타벅스 서초구", "할리스 강남구", "할리스 서초구"}
	if len(queries) != len(want) {
		t.Fatalf("expected %d queries, got %v", len(want), queries)
	}
	for i, q := range want {
		if queries[i] != q {
			t.Fatalf("query %d: got %q want %q", i, queries[i], q)
		}
	}
}

func TestPlanQueriesBudget(t *testing.T) {
	r := NewResolver(&fakeSearcher{}, ResolverOptions{})
	ctx := &keywords.ContextHints{
		StrongNames: []string{"가", "나", "다", "라", "마", "바", "사"},
		AreaHints:   []string{"강남구", "서초구", "마포구"},
	}

	queries := r.PlanQueries(ctx, "본문")
	// 5 names x 2 areas, clipped to the 8-query budget
	if len(queries) != 8 {
		t.Fatalf("expected 8 queries, got %d: %v", len(queries), queries)
	}
	for _, q := range queries {
		if strings.Contains(q, "마포구") {
			t.Fatalf("third area hint should be dropped: %q", q)
		}
		if strings.HasPrefix(q, "바") || strings.HasPrefix(q, "사") {
			t.Fatalf("sixth strong name should be dropped: %q", q)
		}
	}
}

func TestPlanQueriesBareNamesWithoutAreas(t *testing.T) {
	r := NewResolver(&fakeSearcher{}, ResolverOptions{})
	ctx := &keywords.ContextHints{StrongNames: []string{"빵굽는마을"}}

	queries := r.PlanQueries(ctx, "본문")
	if len(queries) != 1 || queries[0] != "빵굽는마을" {
		t.Fatalf("expected bare name query, got %v", queries)
	}
}

func TestPlanQueriesRedundantAreaSkipped(t *testing.T) {
	r := NewResolver(&fakeSearcher{}, ResolverOptions{})
	ctx := &keywords.ContextHints{
		StrongNames: []string{"강남구맛집"},
		AreaHints:   []string{"강남구"},
	}

	queries := r.PlanQueries(ctx, "본문")
	if len(queries) != 1 || queries[0] != "강남구맛집" {
		t.Fatalf("expected name without duplicated area, got %v", queries)
	}
}

func TestPlanQueriesFallbackToText(t *testing.T) {
	r := NewResolver(&fakeSearcher{}, ResolverOptions{})
	ctx := &keywords.ContextHints{}

	words := make([]string, 30)
	for i := range words {
		words[i] = "단어"
	}
	queries := r.PlanQueries(ctx, strings.Join(words, " "))

	if len(queries) != 1 {
		t.Fatalf("expected single fallback query, got %v", queries)
	}
	if got := len(strings.Fields(queries[0])); got != fallbackQueryWords {
		t.Fatalf("fallback should keep %d words, got %d", fallbackQueryWords, got)
	}
}

func TestResolvePartialFailure(t *testing.T) {
	searcher := &fakeSearcher{
		results: map[string][]Record{
			"ok-1": {{Name: "스타벅스 강남점", Address: "서울 강남구 테헤란로 101"}},
			"ok-2": {{Name: "할리스 역삼점", Address: "서울 강남구 역삼로 5"}},
		},
		fail: map[string]error{
			"boom": errors.New("upstream exploded"),
		},
	}
	r := NewResolver(searcher, ResolverOptions{})

	records, failed := r.Resolve(context.Background(), []string{"ok-1", "boom", "ok-2"})

	if failed != 1 {
		t.Fatalf("expected 1 failed query, got %d", failed)
	}
	if len(records) != 2 {
		t.Fatalf("failing query must not block the others: got %d records", len(records))
	}
}

func TestResolveDeduplicatesByNameAddress(t *testing.T) {
	rec := Record{Name: "스타벅스 강남점", Address: "서울 강남구 테헤란로 101"}
	searcher := &fakeSearcher{
		results: map[string][]Record{
			"q1": {rec},
			"q2": {rec, {Name: "스타벅스 강남점", Address: "서울 서초구 강남대로 3"}},
		},
	}
	r := NewResolver(searcher, ResolverOptions{})

	records, _ := r.Resolve(context.Background(), []string{"q1", "q2"})
	if len(records) != 2 {
		t.Fatalf("expected dedup by (name, address), got %d records", len(records))
	}
}

func TestResolvePerQueryTimeout(t *testing.T) {
	slow := SearcherFunc(func(ctx context.Context, query string) ([]Record, error) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(5 * time.Second):
			return []Record{{Name: "too late"}}, nil
		}
	})
	r := NewResolver(slow, ResolverOptions{QueryTimeout: 20 * time.Millisecond})

	start := time.Now()
	records, failed := r.Resolve(context.Background(), []string{"q"})
	if time.Since(start) > time.Second {
		t.Fatalf("timeout not enforced")
	}
	if failed != 1 || len(records) != 0 {
		t.Fatalf("expected timed-out query to count as failed, got failed=%d records=%d", failed, len(records))
	}
}

func TestResolveEmptyQueries(t *testing.T) {
	r := NewResolver(&fakeSearcher{}, ResolverOptions{})
	records, failed := r.Resolve(context.Background(), nil)
	if records != nil || failed != 0 {
		t.Fatalf("expected empty result for no queries")
	}
}
