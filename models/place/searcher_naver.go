package place

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/yevv0ne/placepick/infrastructures/cache"
	"github.com/yevv0ne/placepick/infrastructures/config"
	"github.com/yevv0ne/placepick/infrastructures/log"
	"github.com/yevv0ne/placepick/infrastructures/naver"
	prom "github.com/yevv0ne/placepick/observe/prometheus"
)

// NaverSearcher adapts the Naver Local Search client to the Searcher
// interface.
type NaverSearcher struct {
	client  *naver.Client
	display int
}

func NewNaverSearcher() (*NaverSearcher, error) {
	client, err := naver.NewClient()
	if err != nil {
		return nil, err
	}
	display := config.GetInstance().NaverConfig.Display
	return &NaverSearcher{client: client, display: display}, nil
}

func NewNaverSearcherWithClient(client *naver.Client, display int) *NaverSearcher {
	if display <= 0 {
		display = 5
	}
	return &NaverSearcher{client: client, display: display}
}

func (s *NaverSearcher) Search(ctx context.Context, query string) ([]Record, error) {
	resp, err := s.client.LocalSearch(ctx, &naver.LocalSearchRequest{
		Query:   query,
		Display: &s.display,
	})
	if err != nil {
		result := "error"
		// auth and quota failures fail every parallel query the same
		// way; label them distinctly for alerting
		if errors.Is(err, naver.ErrUnauthorized) || errors.Is(err, naver.ErrForbidden) {
			result = "auth"
		} else if errors.Is(err, naver.ErrRateLimited) {
			result = "quota"
		}
		prom.UpstreamRequestsTotal.WithLabelValues("naver", result).Inc()
		return nil, err
	}
	prom.UpstreamRequestsTotal.WithLabelValues("naver", "ok").Inc()

	records := make([]Record, 0, len(resp.Items))
	for i := range resp.Items {
		item := &resp.Items[i]
		rec := Record{
			Name:     item.CleanTitle(),
			Category: item.Category,
			Address:  item.BestAddress(),
			Phone:    item.Telephone,
			Link:     item.Link,
		}
		if lng, lat, ok := item.Coordinates(); ok {
			rec.Coordinates = &Coordinates{Lng: lng, Lat: lat}
		}
		records = append(records, rec)
	}
	return records, nil
}

// CachedSearcher wraps a Searcher with a redis result cache so repeated
// resolutions of the same viral post hit the provider once.
type CachedSearcher struct {
	inner Searcher
	cache *cache.Cache
	ttl   time.Duration
}

func NewCachedSearcher(inner Searcher, c *cache.Cache, ttl time.Duration) *CachedSearcher {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &CachedSearcher{inner: inner, cache: c, ttl: ttl}
}

func (s *CachedSearcher) Search(ctx context.Context, query string) ([]Record, error) {
	key := searchCacheKey(query)

	var cached []Record
	if err := s.cache.Fetch(key, &cached); err == nil {
		prom.SearchCacheTotal.WithLabelValues("hit").Inc()
		return cached, nil
	}
	prom.SearchCacheTotal.WithLabelValues("miss").Inc()

	records, err := s.inner.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Store(key, records, s.ttl); err != nil {
		log.Warnf("search cache store failed for %q: %v", query, err)
	}
	return records, nil
}

func searchCacheKey(query string) string {
	return fmt.Sprintf("placepick:search:%s", query)
}
