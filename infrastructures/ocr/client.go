package ocr

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/yevv0ne/placepick/infrastructures/config"
)

// API path constants
const (
	ParseImagePath = "/parse/image"
)

// MaxImageBytes caps uploads; the free tier rejects anything above 1MB.
const MaxImageBytes = 1024 * 1024

var (
	ErrMissingAPIKey   = errors.New("ocr api key is required")
	ErrEmptyImage      = errors.New("image payload is empty")
	ErrImageTooLarge   = errors.New("image exceeds 1MB size limit")
	ErrProcessingError = errors.New("ocr processing failed")
)

type Client struct {
	apiKey     string
	baseURL    string
	language   string
	httpClient *http.Client
}

// ParseResponse is the OCR.space response envelope.
type ParseResponse struct {
	ParsedResults []struct {
		ParsedText       string `json:"ParsedText"`
		ErrorMessage     string `json:"ErrorMessage"`
		FileParseSuccess bool   `json:"FileParseSuccess"`
	} `json:"ParsedResults"`
	OCRExitCode           json.RawMessage `json:"OCRExitCode"`
	IsErroredOnProcessing bool            `json:"IsErroredOnProcessing"`
	ErrorMessage          json.RawMessage `json:"ErrorMessage"`
}

// Text joins all parsed fragments into one block.
func (r *ParseResponse) Text() string {
	parts := make([]string, 0, len(r.ParsedResults))
	for _, pr := range r.ParsedResults {
		if t := strings.TrimSpace(pr.ParsedText); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, "\n")
}

// NewClient creates an OCR client from global config
func NewClient() (*Client, error) {
	cfg := config.GetInstance().OCRConfig
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	return NewClientWithConfig(cfg.APIKey, cfg.BaseURL, cfg.Language, cfg.Timeout), nil
}

// NewClientWithConfig creates an OCR client with custom parameters
func NewClientWithConfig(apiKey, baseURL, language string, timeoutSec int) *Client {
	if baseURL == "" {
		baseURL = "https://api.ocr.space"
	}
	if language == "" {
		language = "kor"
	}
	if timeoutSec <= 0 {
		timeoutSec = 30
	}
	return &Client{
		apiKey:   apiKey,
		baseURL:  baseURL,
		language: language,
		httpClient: &http.Client{
			Timeout: time.Duration(timeoutSec) * time.Second,
		},
	}
}

// ParseImage extracts text from raw image bytes.
func (c *Client) ParseImage(ctx context.Context, image []byte, mimeType string) (string, error) {
	if len(image) == 0 {
		return "", ErrEmptyImage
	}
	if len(image) > MaxImageBytes {
		return "", ErrImageTooLarge
	}
	if mimeType == "" {
		mimeType = "image/png"
	}

	form := url.Values{}
	form.Set("base64Image", fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(image)))
	form.Set("language", c.language)
	form.Set("OCREngine", "2")
	form.Set("isOverlayRequired", "false")
	form.Set("scale", "true")

	return c.doParse(ctx, form)
}

// ParseImageURL extracts text from an image reachable by URL.
func (c *Client) ParseImageURL(ctx context.Context, imageURL string) (string, error) {
	if imageURL == "" {
		return "", ErrEmptyImage
	}

	form := url.Values{}
	form.Set("url", imageURL)
	form.Set("language", c.language)
	form.Set("OCREngine", "2")
	form.Set("isOverlayRequired", "false")
	form.Set("scale", "true")

	return c.doParse(ctx, form)
}

func (c *Client) doParse(ctx context.Context, form url.Values) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+ParseImagePath, strings.NewReader(form.Encode()))
	if err != nil {
		return "", errors.Wrap(err, "create request failed")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("apikey", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "http request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "read response body failed")
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ocr api http status %d: %s", resp.StatusCode, string(body))
	}

	parsed := &ParseResponse{}
	if err := json.Unmarshal(body, parsed); err != nil {
		return "", errors.Wrap(err, "unmarshal response failed")
	}

	if parsed.IsErroredOnProcessing {
		return "", errors.Wrapf(ErrProcessingError, "%s", string(parsed.ErrorMessage))
	}

	return parsed.Text(), nil
}
