package cache

import (
	"errors"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis, func()) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	c := NewWithClient(client)

	cleanup := func() {
		_ = client.Close()
		mr.Close()
	}
	return c, mr, cleanup
}

func TestStoreFetchRoundTrip(t *testing.T) {
	c, _, cleanup := newTestCache(t)
	defer cleanup()

	type payload struct {
		Name string `json:"name"`
		Hits int    `json:"hits"`
	}

	in := payload{Name: "스타벅스 강남점", Hits: 3}
	if err := c.Store("place:1", in, time.Minute); err != nil {
		t.Fatalf("Store: %v", err)
	}

	var out payload
	if err := c.Fetch("place:1", &out); err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if out != in {
		t.Fatalf("round trip mismatch: got %+v want %+v", out, in)
	}
}

func TestFetchMissingKey(t *testing.T) {
	c, _, cleanup := newTestCache(t)
	defer cleanup()

	var out map[string]string
	err := c.Fetch("nope", &out)
	if err == nil {
		t.Fatalf("expected error for missing key")
	}
	if !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got: %v", err)
	}
}

func TestStoreWithTokenAndFetch(t *testing.T) {
	c, _, cleanup := newTestCache(t)
	defer cleanup()

	in := map[string]string{"outcome": "picked"}
	token, err := c.StoreWithToken(in, 60)
	if err != nil {
		t.Fatalf("StoreWithToken: %v", err)
	}
	if token == "" {
		t.Fatalf("expected non-empty token")
	}

	var out map[string]string
	if err := c.FetchWithToken(token, &out); err != nil {
		t.Fatalf("FetchWithToken: %v", err)
	}
	if out["outcome"] != "picked" {
		t.Fatalf("unexpected payload: %+v", out)
	}
}

func TestFetchAndDeleteIsOneTime(t *testing.T) {
	c, _, cleanup := newTestCache(t)
	defer cleanup()

	token, err := c.StoreWithToken("once", 60)
	if err != nil {
		t.Fatalf("StoreWithToken: %v", err)
	}

	var out string
	if err := c.FetchAndDelete(token, &out); err != nil {
		t.Fatalf("FetchAndDelete: %v", err)
	}
	if out != "once" {
		t.Fatalf("unexpected value: %q", out)
	}

	if err := c.FetchWithToken(token, &out); err == nil {
		t.Fatalf("expected second fetch to fail")
	}
}

func TestTTLExpiry(t *testing.T) {
	c, mr, cleanup := newTestCache(t)
	defer cleanup()

	if err := c.StoreString("k", "v", time.Minute); err != nil {
		t.Fatalf("StoreString: %v", err)
	}

	ttl, err := c.TTL("k")
	if err != nil {
		t.Fatalf("TTL: %v", err)
	}
	if ttl <= 0 || ttl > time.Minute {
		t.Fatalf("unexpected ttl: %v", ttl)
	}

	mr.FastForward(2 * time.Minute)

	if c.Exists("k") {
		t.Fatalf("expected key to expire")
	}
}
