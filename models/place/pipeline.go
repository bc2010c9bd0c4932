package place

import (
	"context"
	"strings"
	"time"

	uuid "github.com/satori/go.uuid"

	"github.com/yevv0ne/placepick/infrastructures/config"
	"github.com/yevv0ne/placepick/infrastructures/keywords"
	"github.com/yevv0ne/placepick/infrastructures/log"
	prom "github.com/yevv0ne/placepick/observe/prometheus"
)

// LocateRequest is one resolution job. Text is required; everything
// else refines scoring.
type LocateRequest struct {
	Text     string
	Hashtags string
	Source   string // text, image or url, for observability only

	TextKeywords []string
	MenuHints    []string
	SourceBoost  map[string]float64
}

// Engine runs the full pipeline: extraction, context derivation,
// bounded resolver fan-out, scoring and the ranking decision.
type Engine struct {
	resolver *Resolver
}

func NewEngine(searcher Searcher, opts ResolverOptions) *Engine {
	return &Engine{resolver: NewResolver(searcher, opts)}
}

// NewEngineFromConfig builds an Engine with the configured fan-out
// bounds.
func NewEngineFromConfig(searcher Searcher) *Engine {
	cfg := config.GetInstance().Resolver
	return NewEngine(searcher, ResolverOptions{
		MaxQueries:     cfg.MaxQueries,
		MaxStrongNames: cfg.MaxStrongNames,
		MaxAreaHints:   cfg.MaxAreaHints,
		QueryTimeout:   time.Duration(cfg.QueryTimeoutMs) * time.Millisecond,
	})
}

// Locate resolves the place a text refers to. The only caller-visible
// failure is an empty text payload; every other degraded condition
// surfaces as a weaker Decision.
func (e *Engine) Locate(ctx context.Context, req *LocateRequest) (*Decision, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, keywords.ErrEmptyInput
	}

	started := time.Now()
	source := req.Source
	if source == "" {
		source = "text"
	}

	candidates := keywords.ExtractCandidates(req.Text)
	pairs := keywords.ExtractPairs(req.Text)

	hints := keywords.BuildContext(req.Text, req.Hashtags, &keywords.ContextOptions{
		TextKeywords: req.TextKeywords,
		MenuHints:    req.MenuHints,
		SourceBoost:  req.SourceBoost,
	})

	// paired names carry higher precision than bare pattern matches,
	// so they anchor the strong-name list when present
	if len(pairs) > 0 {
		hints.StrongNames = promoteNames(pairNames(pairs), hints.StrongNames)
	} else {
		hints.StrongNames = promoteNames(candidateNames(candidates), hints.StrongNames)
	}

	queries := e.resolver.PlanQueries(hints, req.Text)
	records, failed := e.resolver.Resolve(ctx, queries)

	decision := Rank(records, hints)
	decision.Trace = &Trace{
		RequestID:   uuid.NewV4().String(),
		Queries:     queries,
		StrongNames: hints.StrongNames,
		AreaHints:   hints.AreaHints,
		PhoneHints:  hints.PhoneHints,
		Candidates:  len(candidates) + len(pairs),
		Records:     len(records),
		FailedCalls: failed,
		ElapsedMs:   time.Since(started).Milliseconds(),
	}

	prom.PipelineDecisionsTotal.WithLabelValues(string(decision.Outcome)).Inc()
	prom.PipelineDurationSeconds.WithLabelValues(source).Observe(time.Since(started).Seconds())

	log.Infof("locate %s: outcome=%s queries=%d records=%d failed=%d elapsed=%dms",
		decision.Trace.RequestID, decision.Outcome, len(queries), len(records), failed, decision.Trace.ElapsedMs)

	return &decision, nil
}

func pairNames(pairs []keywords.NameAddressPair) []string {
	names := make([]string, 0, len(pairs))
	for _, p := range pairs {
		names = append(names, p.Name)
	}
	return names
}

func candidateNames(candidates []keywords.Candidate) []string {
	var names []string
	for _, c := range candidates {
		// address candidates are query fodder, not name anchors
		if c.Provenance != keywords.ProvenanceAddress {
			names = append(names, c.Text)
		}
	}
	return names
}

// promoteNames puts primary names first, then the remaining derived
// names, deduplicated in order.
func promoteNames(primary, rest []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, list := range [][]string{primary, rest} {
		for _, n := range list {
			if n != "" && !seen[n] {
				seen[n] = true
				out = append(out, n)
			}
		}
	}
	return out
}
