package scrape

import (
	"html"
	"regexp"
	"strings"

	"github.com/k3a/html2text"
	"github.com/pkg/errors"

	"github.com/yevv0ne/placepick/infrastructures/httplib"
	"github.com/yevv0ne/placepick/infrastructures/log"
)

var (
	ErrEmptyURL  = errors.New("page url is empty")
	ErrEmptyPage = errors.New("page yielded no text")
)

// mobile headers make Instagram and most Korean platforms serve the
// lightweight page that still carries og: meta tags
var defaultHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (iPhone; CPU iPhone OS 16_6 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.6 Mobile/15E148 Safari/604.1",
	"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
	"Accept-Language": "ko-KR,ko;q=0.9,en-US;q=0.8,en;q=0.7",
}

var (
	ogDescriptionRe = regexp.MustCompile(`<meta[^>]+property=["']og:description["'][^>]+content=["']([^"']*)["']`)
	ogDescriptionR2 = regexp.MustCompile(`<meta[^>]+content=["']([^"']*)["'][^>]+property=["']og:description["']`)
	ogTitleRe       = regexp.MustCompile(`<meta[^>]+property=["']og:title["'][^>]+content=["']([^"']*)["']`)
	metaDescRe      = regexp.MustCompile(`<meta[^>]+name=["']description["'][^>]+content=["']([^"']*)["']`)
)

// Scraper fetches a social-media or blog page and extracts the text
// worth running through location extraction.
type Scraper struct {
	session *httplib.Session
}

func NewScraper() *Scraper {
	session := httplib.NewSession()
	session.SetHttpHeaders(defaultHeaders)
	return &Scraper{session: session}
}

// FetchText downloads the page and returns its caption text. Meta tags
// are tried first; full-page text conversion is the fallback.
func (s *Scraper) FetchText(pageURL string) (string, error) {
	if pageURL == "" {
		return "", ErrEmptyURL
	}

	body, err := s.session.Get(pageURL)
	if err != nil {
		return "", errors.Wrapf(err, "fetch page failed: %s", pageURL)
	}

	text := ExtractText(string(body))
	if text == "" {
		return "", errors.Wrapf(ErrEmptyPage, "%s", pageURL)
	}

	log.Debugf("scraped %d chars from %s", len(text), pageURL)
	return text, nil
}

// ExtractText pulls caption text out of raw HTML.
func ExtractText(page string) string {
	parts := []string{}

	if title := firstMatch(ogTitleRe, page); title != "" {
		parts = append(parts, title)
	}

	desc := firstMatch(ogDescriptionRe, page)
	if desc == "" {
		desc = firstMatch(ogDescriptionR2, page)
	}
	if desc == "" {
		desc = firstMatch(metaDescRe, page)
	}
	if desc != "" {
		parts = append(parts, desc)
	}

	if len(parts) == 0 {
		// no usable meta tags, convert the whole document
		if text := strings.TrimSpace(html2text.HTML2Text(page)); text != "" {
			parts = append(parts, text)
		}
	}

	return strings.TrimSpace(strings.Join(parts, "\n"))
}

func firstMatch(re *regexp.Regexp, page string) string {
	m := re.FindStringSubmatch(page)
	if len(m) < 2 {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(m[1]))
}
