package naver

import (
	"regexp"
	"strconv"
	"strings"
)

// LocalSearchRequest holds parameters for the local search endpoint.
type LocalSearchRequest struct {
	Query   string // search keyword, required
	Display *int   // results per page, 1..5
	Start   *int   // result offset, 1..1
	Sort    string // random or comment
}

// LocalSearchResponse is the local.json response envelope.
type LocalSearchResponse struct {
	LastBuildDate string      `json:"lastBuildDate"`
	Total         int         `json:"total"`
	Start         int         `json:"start"`
	Display       int         `json:"display"`
	Items         []LocalItem `json:"items"`
}

// LocalItem is a single local search result. Title carries <b> highlight
// tags around matched terms; MapX/MapY are KATECH-scaled WGS84 strings.
type LocalItem struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Telephone   string `json:"telephone"`
	Address     string `json:"address"`
	RoadAddress string `json:"roadAddress"`
	MapX        string `json:"mapx"`
	MapY        string `json:"mapy"`
}

var highlightTags = regexp.MustCompile(`</?b>`)

// CleanTitle returns the title with highlight tags stripped.
func (it *LocalItem) CleanTitle() string {
	return strings.TrimSpace(highlightTags.ReplaceAllString(it.Title, ""))
}

// Coordinates converts mapx/mapy to longitude and latitude.
// The API returns both multiplied by 1e7.
func (it *LocalItem) Coordinates() (lng, lat float64, ok bool) {
	x, errX := strconv.ParseFloat(it.MapX, 64)
	y, errY := strconv.ParseFloat(it.MapY, 64)
	if errX != nil || errY != nil {
		return 0, 0, false
	}
	return x / 1e7, y / 1e7, true
}

// BestAddress prefers the road address, falling back to the lot address.
func (it *LocalItem) BestAddress() string {
	if it.RoadAddress != "" {
		return it.RoadAddress
	}
	return it.Address
}

// errorResponse is the error envelope the API returns on failures.
type errorResponse struct {
	ErrorMessage string `json:"errorMessage"`
	ErrorCode    string `json:"errorCode"`
}
