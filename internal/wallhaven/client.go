// Package wallhaven talks to the Wallhaven search API and converts its
// listing into model.RemoteImage records.
package wallhaven

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ytget/wallpaper-gallery/internal/logger"
	"github.com/ytget/wallpaper-gallery/internal/model"
)

var log = logger.New("wallhaven")

// DefaultBaseURL is the public API root
const DefaultBaseURL = "https://wallhaven.cc/api/v1"

const (
	searchPath   = "/search"
	defaultOrder = "desc"
	// maxPages bounds paging when the server keeps reporting more pages
	maxPages = 20
)

// HTTPError is returned for non-200 responses
type HTTPError struct {
	StatusCode int
	Status     string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("unexpected HTTP status: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// Searcher fetches a remote wallpaper listing
type Searcher interface {
	Search(ctx context.Context, q model.SearchQuery) ([]model.RemoteImage, error)
}

// Client is a Wallhaven API client
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for baseURL; an empty baseURL means DefaultBaseURL
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: NewHTTPClient(),
	}
}

// NewHTTPClient returns an http.Client with bounded dial and header timeouts
func NewHTTPClient() *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = (&net.Dialer{
		Timeout:   30 * time.Second,
		KeepAlive: 30 * time.Second,
	}).DialContext
	transport.TLSHandshakeTimeout = 7 * time.Second
	transport.ResponseHeaderTimeout = 15 * time.Second
	transport.MaxIdleConnsPerHost = 20
	transport.IdleConnTimeout = 5 * time.Minute

	return &http.Client{Transport: transport}
}

type searchResponse struct {
	Data []wallpaper `json:"data"`
	Meta meta        `json:"meta"`
}

type meta struct {
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	PerPage     any `json:"per_page"` // the API sends both "24" and 24
	Total       int `json:"total"`
	Seed        any `json:"seed"`
}

type wallpaper struct {
	ID         string `json:"id"`
	URL        string `json:"url"`
	Path       string `json:"path"`
	Resolution string `json:"resolution"`
	FileType   string `json:"file_type"`
	FileSize   int64  `json:"file_size"`
	Thumbs     thumbs `json:"thumbs"`
}

type thumbs struct {
	Large    string `json:"large"`
	Original string `json:"original"`
	Small    string `json:"small"`
}

func (w wallpaper) toRemoteImage() model.RemoteImage {
	thumb := w.Thumbs.Small
	if thumb == "" {
		thumb = w.Thumbs.Large
	}
	if thumb == "" {
		thumb = w.Path
	}
	return model.RemoteImage{
		ID:         w.ID,
		Path:       w.Path,
		Thumb:      thumb,
		URL:        w.URL,
		Resolution: w.Resolution,
		FileType:   w.FileType,
		FileSize:   w.FileSize,
	}
}

// Search returns up to q.EffectiveCount() images, following pages as needed.
// Order is the server's order.
func (c *Client) Search(ctx context.Context, q model.SearchQuery) ([]model.RemoteImage, error) {
	want := q.EffectiveCount()
	images := make([]model.RemoteImage, 0, want)
	seed := ""

	for page := 1; page <= maxPages && len(images) < want; page++ {
		resp, err := c.searchPage(ctx, q, page, seed)
		if err != nil {
			return nil, err
		}

		for _, w := range resp.Data {
			if w.Path == "" {
				continue
			}
			images = append(images, w.toRemoteImage())
			if len(images) == want {
				break
			}
		}

		// random sorting needs the seed to page consistently
		if s, ok := resp.Meta.Seed.(string); ok {
			seed = s
		}

		if len(resp.Data) == 0 || page >= resp.Meta.LastPage {
			break
		}
	}

	log.Debug().
		Int("requested", want).
		Int("returned", len(images)).
		Str("sort", q.Sort).
		Msg("search finished")
	return images, nil
}

func (c *Client) searchPage(ctx context.Context, q model.SearchQuery, page int, seed string) (*searchResponse, error) {
	u, err := url.Parse(c.baseURL + searchPath)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	params := BuildParams(q, page)
	if seed != "" {
		params.Set("seed", seed)
	}
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	log.Debug().
		Str("url", redact(u)).
		Send()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			log.Err(err).Msg("Failed to close response body")
		}
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, &HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
		}
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}
	return &result, nil
}

// BuildParams maps a query onto Wallhaven search parameters
func BuildParams(q model.SearchQuery, page int) url.Values {
	params := url.Values{}

	sorting := q.Sort
	if sorting == "" {
		sorting = model.DefaultSort
	}
	params.Set("sorting", sorting)
	params.Set("order", defaultOrder)
	if sorting == model.SortToplist && q.Range != "" {
		params.Set("topRange", q.Range)
	}

	categories := q.Categories
	if categories == "" {
		categories = model.DefaultCategories
	}
	params.Set("categories", categories)

	purity := q.Purity
	if purity == "" {
		purity = model.DefaultPurity
	}
	params.Set("purity", purity)

	if q.Resolution != "" {
		params.Set("atleast", q.Resolution)
	}
	if q.Ratios != "" {
		params.Set("ratios", q.Ratios)
	}
	if q.APIKey != "" {
		params.Set("apikey", q.APIKey)
	}
	if page > 1 {
		params.Set("page", strconv.Itoa(page))
	}
	return params
}

// redact hides the API key in logged URLs
func redact(u *url.URL) string {
	params := u.Query()
	if params.Has("apikey") {
		params.Set("apikey", "***")
	}
	c := *u
	c.RawQuery = params.Encode()
	return c.String()
}
