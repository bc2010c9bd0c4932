package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"

	"github.com/yevv0ne/placepick/infrastructures/config"
	"github.com/yevv0ne/placepick/infrastructures/log"
)

// API path constants
const (
	CurrentPath = "/v1/current.json"
)

// FallbackLocation is used when the requested location cannot be resolved.
const FallbackLocation = "Seoul"

var ErrMissingAPIKey = errors.New("weather api key is required")

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Current is the current-conditions response.
type Current struct {
	Location struct {
		Name    string `json:"name"`
		Region  string `json:"region"`
		Country string `json:"country"`
	} `json:"location"`
	Observation struct {
		TempC     float64 `json:"temp_c"`
		Humidity  int     `json:"humidity"`
		Condition struct {
			Text string `json:"text"`
			Icon string `json:"icon"`
		} `json:"condition"`
	} `json:"current"`

	// Fallback marks that the requested location failed and the
	// default location was substituted.
	Fallback bool `json:"-"`
}

// NewClient creates a weather client from global config
func NewClient() (*Client, error) {
	cfg := config.GetInstance().WeatherConfig
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	return NewClientWithConfig(cfg.APIKey, cfg.BaseURL, cfg.Timeout), nil
}

// NewClientWithConfig creates a weather client with custom parameters
func NewClientWithConfig(apiKey, baseURL string, timeoutSec int) *Client {
	if baseURL == "" {
		baseURL = "https://api.weatherapi.com"
	}
	if timeoutSec <= 0 {
		timeoutSec = 5
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: time.Duration(timeoutSec) * time.Second,
		},
	}
}

// CurrentWeather fetches conditions for a location, falling back to the
// default location when the upstream rejects the query.
func (c *Client) CurrentWeather(ctx context.Context, location string) (*Current, error) {
	if location == "" {
		location = FallbackLocation
	}

	cur, err := c.fetch(ctx, location)
	if err == nil {
		return cur, nil
	}
	if location == FallbackLocation {
		return nil, err
	}

	log.Warnf("weather lookup failed for %q, falling back to %s: %v", location, FallbackLocation, err)
	cur, err = c.fetch(ctx, FallbackLocation)
	if err != nil {
		return nil, err
	}
	cur.Fallback = true
	return cur, nil
}

func (c *Client) fetch(ctx context.Context, location string) (*Current, error) {
	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("q", location)
	params.Set("lang", "ko")

	urlStr := c.baseURL + CurrentPath + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, errors.Wrap(err, "create request failed")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "http request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read response body failed")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather api http status %d: %s", resp.StatusCode, string(body))
	}

	cur := &Current{}
	if err := json.Unmarshal(body, cur); err != nil {
		return nil, errors.Wrap(err, "unmarshal response failed")
	}
	return cur, nil
}
