package place

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/yevv0ne/placepick/infrastructures/keywords"
	"github.com/yevv0ne/placepick/infrastructures/log"
	prom "github.com/yevv0ne/placepick/observe/prometheus"
)

// Searcher is the external place-search collaborator. Implementations
// must distinguish provider-level failures via error so the orchestrator
// can skip the query.
type Searcher interface {
	Search(ctx context.Context, query string) ([]Record, error)
}

// SearcherFunc adapts a function to the Searcher interface.
type SearcherFunc func(ctx context.Context, query string) ([]Record, error)

func (f SearcherFunc) Search(ctx context.Context, query string) ([]Record, error) {
	return f(ctx, query)
}

// ResolverOptions bound the query fan-out.
type ResolverOptions struct {
	MaxQueries     int
	MaxStrongNames int
	MaxAreaHints   int
	QueryTimeout   time.Duration
}

func (o *ResolverOptions) setDefaults() {
	if o.MaxQueries <= 0 {
		o.MaxQueries = 8
	}
	if o.MaxStrongNames <= 0 {
		o.MaxStrongNames = 5
	}
	if o.MaxAreaHints <= 0 {
		o.MaxAreaHints = 2
	}
	if o.QueryTimeout <= 0 {
		o.QueryTimeout = 3 * time.Second
	}
}

// fallbackQueryWords caps the significant-words fallback query.
const fallbackQueryWords = 20

// Resolver plans bounded queries against a Searcher and merges results.
type Resolver struct {
	searcher Searcher
	opts     ResolverOptions
}

func NewResolver(searcher Searcher, opts ResolverOptions) *Resolver {
	opts.setDefaults()
	return &Resolver{searcher: searcher, opts: opts}
}

// PlanQueries builds the bounded query list: strong names crossed with
// area hints, falling back to the leading significant words of the
// full text when no strong name exists.
func (r *Resolver) PlanQueries(ctx *keywords.ContextHints, fullText string) []string {
	var queries []string

	names := ctx.StrongNames
	if len(names) > r.opts.MaxStrongNames {
		names = names[:r.opts.MaxStrongNames]
	}

	areas := ctx.AreaHints
	if len(areas) > r.opts.MaxAreaHints {
		areas = areas[:r.opts.MaxAreaHints]
	}

	seen := map[string]bool{}
	add := func(q string) {
		q = strings.TrimSpace(q)
		if q == "" || seen[q] || len(queries) >= r.opts.MaxQueries {
			return
		}
		seen[q] = true
		queries = append(queries, q)
	}

	for _, name := range names {
		if len(areas) == 0 {
			add(name)
			continue
		}
		for _, area := range areas {
			// skip redundant area suffix when the name already carries it
			if strings.Contains(name, area) {
				add(name)
			} else {
				add(name + " " + area)
			}
		}
	}

	if len(queries) == 0 {
		words := strings.Fields(fullText)
		if len(words) > fallbackQueryWords {
			words = words[:fallbackQueryWords]
		}
		add(strings.Join(words, " "))
	}

	return queries
}

// queryResult is one settled query.
type queryResult struct {
	query   string
	records []Record
	err     error
}

// Resolve fans the planned queries out concurrently, enforcing the
// per-query timeout, and merges the successes. A failing query is
// dropped without affecting the others.
func (r *Resolver) Resolve(ctx context.Context, queries []string) ([]Record, int) {
	if len(queries) == 0 {
		return nil, 0
	}

	results := make([]queryResult, len(queries))
	var wg sync.WaitGroup

	for i, q := range queries {
		wg.Add(1)
		go func(i int, q string) {
			defer wg.Done()
			qctx, cancel := context.WithTimeout(ctx, r.opts.QueryTimeout)
			defer cancel()

			started := time.Now()
			records, err := r.searcher.Search(qctx, q)
			prom.ResolverQuerySeconds.Observe(time.Since(started).Seconds())
			if err != nil {
				prom.ResolverQueriesTotal.WithLabelValues("failed").Inc()
			} else {
				prom.ResolverQueriesTotal.WithLabelValues("ok").Inc()
			}
			results[i] = queryResult{query: q, records: records, err: err}
		}(i, q)
	}
	wg.Wait()

	seen := map[string]bool{}
	var merged []Record
	failed := 0

	for _, res := range results {
		if res.err != nil {
			failed++
			log.Warnf("resolver query %q failed: %v", res.query, res.err)
			continue
		}
		for _, rec := range res.records {
			key := rec.dedupeKey()
			if !seen[key] {
				seen[key] = true
				merged = append(merged, rec)
			}
		}
	}

	return merged, failed
}
