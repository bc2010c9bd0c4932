package naver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/yevv0ne/placepick/infrastructures/config"
)

// API path constants
const (
	LocalSearchPath = "/v1/search/local.json"
)

type Client struct {
	clientID     string
	clientSecret string
	baseURL      string
	httpClient   *http.Client
}

// NewClient creates a Naver client from global config
func NewClient() (*Client, error) {
	cfg := config.GetInstance().NaverConfig
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, ErrMissingCredentials
	}
	return NewClientWithConfig(cfg.ClientID, cfg.ClientSecret, cfg.BaseURL, cfg.Timeout), nil
}

// NewClientWithConfig creates a Naver client with custom parameters
func NewClientWithConfig(clientID, clientSecret, baseURL string, timeoutSec int) *Client {
	if baseURL == "" {
		baseURL = "https://openapi.naver.com"
	}
	if timeoutSec <= 0 {
		timeoutSec = 5
	}
	return &Client{
		clientID:     clientID,
		clientSecret: clientSecret,
		baseURL:      baseURL,
		httpClient: &http.Client{
			Timeout: time.Duration(timeoutSec) * time.Second,
		},
	}
}

// LocalSearch queries the local search endpoint.
func (c *Client) LocalSearch(ctx context.Context, req *LocalSearchRequest) (*LocalSearchResponse, error) {
	if req.Query == "" {
		return nil, ErrEmptyQuery
	}

	params := newParamsBuilder().
		Str("query", req.Query).
		IntPtr("display", req.Display).
		IntPtr("start", req.Start).
		Str("sort", req.Sort)

	resp := &LocalSearchResponse{}
	if err := c.doGet(ctx, c.baseURL+LocalSearchPath, params, resp); err != nil {
		return nil, err
	}

	return resp, nil
}

// doGet performs GET request with API credentials and checks response status
func (c *Client) doGet(ctx context.Context, baseURL string, params *paramsBuilder, response interface{}) error {
	urlStr := params.BuildURL(baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return WrapError(err, "create request failed")
	}
	req.Header.Set("X-Naver-Client-Id", c.clientID)
	req.Header.Set("X-Naver-Client-Secret", c.clientSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return WrapError(err, "http request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return WrapError(err, "read response body failed")
	}

	if resp.StatusCode != http.StatusOK {
		return statusError(resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, response); err != nil {
		return WrapError(err, "unmarshal response failed")
	}

	return nil
}

func statusError(status int, body []byte) error {
	var apiErr errorResponse
	detail := ""
	if json.Unmarshal(body, &apiErr) == nil && apiErr.ErrorCode != "" {
		detail = fmt.Sprintf("%s - %s", apiErr.ErrorCode, apiErr.ErrorMessage)
	} else {
		detail = string(body)
	}

	switch status {
	case http.StatusUnauthorized:
		return WrapErrorf(ErrUnauthorized, "%s", detail)
	case http.StatusForbidden:
		return WrapErrorf(ErrForbidden, "%s", detail)
	case http.StatusTooManyRequests:
		return WrapErrorf(ErrRateLimited, "%s", detail)
	default:
		return fmt.Errorf("naver api http status %d: %s", status, detail)
	}
}
