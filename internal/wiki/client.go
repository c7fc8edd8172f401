// Package wiki provides a client for the MediaWiki action API. Pages are
// fetched as rendered article HTML through the parse endpoint; the
// client owns politeness (fixed inter-request delay, identifying
// User-Agent, per-request timeout) so callers just ask for page titles.
package wiki

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	colly "github.com/gocolly/colly/v2"

	"github.com/jonesrussell/coachtree/internal/logger"
)

// ErrPageMissing is returned when the API response carries no rendered
// text for the requested page (deleted, invalid, or redirected into
// nothing). Callers treat it like any other per-page fetch failure.
var ErrPageMissing = errors.New("page content missing from response")

// Config holds the client settings.
type Config struct {
	// APIBaseURL is the MediaWiki API endpoint, e.g. https://en.wikipedia.org/w/api.php.
	APIBaseURL string
	// UserAgent identifies the bot to the remote service.
	UserAgent string
	// Delay is the fixed pause between consecutive requests.
	Delay time.Duration
	// RequestTimeout bounds each request.
	RequestTimeout time.Duration
}

// Client fetches rendered page HTML from the MediaWiki API.
type Client struct {
	collector *colly.Collector
	apiURL    string
	log       logger.Interface

	mu       sync.Mutex
	lastBody []byte
}

// parseResponse is the envelope of an action=parse API response.
type parseResponse struct {
	Parse struct {
		Title string            `json:"title"`
		Text  map[string]string `json:"text"`
	} `json:"parse"`
	Error *struct {
		Code string `json:"code"`
		Info string `json:"info"`
	} `json:"error"`
}

// NewClient creates a wiki client. The context bounds all requests made
// through the client for its lifetime.
func NewClient(ctx context.Context, cfg *Config, log logger.Interface) (*Client, error) {
	collector := colly.NewCollector(
		colly.UserAgent(cfg.UserAgent),
		colly.AllowURLRevisit(),
		colly.StdlibContext(ctx),
	)
	collector.SetRequestTimeout(cfg.RequestTimeout)

	if err := collector.Limit(&colly.LimitRule{
		DomainGlob: "*",
		Delay:      cfg.Delay,
	}); err != nil {
		return nil, fmt.Errorf("set fetch rate limit: %w", err)
	}

	client := &Client{
		collector: collector,
		apiURL:    cfg.APIBaseURL,
		log:       log.WithComponent("wiki"),
	}

	collector.OnResponse(func(r *colly.Response) {
		client.lastBody = r.Body
	})

	return client, nil
}

// PageHTML fetches the rendered HTML of one page by title. Any transport
// error, non-200 status, malformed JSON, or missing text field is an
// error scoped to this page only; the caller decides whether to skip or
// abort.
func (c *Client) PageHTML(title string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lastBody = nil

	requestURL := c.pageURL(title)
	c.log.Debug("fetching page", "title", title)

	if err := c.collector.Visit(requestURL); err != nil {
		return "", fmt.Errorf("fetch %q: %w", title, err)
	}

	var resp parseResponse
	if err := json.Unmarshal(c.lastBody, &resp); err != nil {
		return "", fmt.Errorf("decode response for %q: %w", title, err)
	}

	if resp.Error != nil {
		return "", fmt.Errorf("page %q: %w: %s", title, ErrPageMissing, resp.Error.Info)
	}

	// The parse endpoint nests rendered markup under text["*"].
	html, ok := resp.Parse.Text["*"]
	if !ok || html == "" {
		return "", fmt.Errorf("page %q: %w", title, ErrPageMissing)
	}

	return html, nil
}

// pageURL builds the parse-endpoint query URL for a page title.
func (c *Client) pageURL(title string) string {
	q := url.Values{}
	q.Set("action", "parse")
	q.Set("page", title)
	q.Set("prop", "text")
	q.Set("format", "json")
	q.Set("redirects", "1")

	return c.apiURL + "?" + q.Encode()
}
