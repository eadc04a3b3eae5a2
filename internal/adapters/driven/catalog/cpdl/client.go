// Package cpdl provides a Catalog adapter backed by the CPDL wiki's
// MediaWiki search API. Each lookup issues two sequential calls: a
// full-text search for candidate pages, then a batch detail fetch for
// the plain-text introduction and canonical URL of each candidate.
package cpdl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/cantoria-labs/cantoria-cli/internal/core/domain"
	"github.com/cantoria-labs/cantoria-cli/internal/core/ports/driven"
	"github.com/cantoria-labs/cantoria-cli/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.Catalog = (*Client)(nil)

// Default configuration values.
const (
	// DefaultBaseURL is the CPDL MediaWiki API endpoint.
	DefaultBaseURL = "https://www.cpdl.org/wiki/api.php"

	// DefaultTimeout bounds each HTTP request. Timeouts are a normal,
	// recoverable condition handled by the finder's fallback.
	DefaultTimeout = 10 * time.Second

	// searchLimit is the maximum number of candidate pages requested.
	searchLimit = 10

	// detailLimit is how many candidates get a detail fetch.
	detailLimit = 5
)

// Conservative request rate against the public wiki.
const (
	requestsPerSecond = 2.0
	burstSize         = 4
)

// Config holds configuration for the CPDL client.
type Config struct {
	// BaseURL is the MediaWiki API endpoint (default: CPDL).
	BaseURL string

	// Timeout is the per-request timeout (default: 10s).
	Timeout time.Duration
}

// Client queries the CPDL wiki catalog.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
}

// NewClient creates a new CPDL catalog client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), burstSize),
	}
}

// searchResponse is the MediaWiki list=search response format.
type searchResponse struct {
	Query struct {
		Search []struct {
			PageID int    `json:"pageid"`
			Title  string `json:"title"`
		} `json:"search"`
	} `json:"query"`
}

// detailResponse is the MediaWiki prop=extracts|info response format.
// Pages is a mapping from page identifier to metadata; the identifier
// "-1" denotes a nonexistent page.
type detailResponse struct {
	Query struct {
		Pages map[string]pageDetail `json:"pages"`
	} `json:"query"`
}

// pageDetail is one page's metadata from the batch detail call.
type pageDetail struct {
	PageID       int    `json:"pageid"`
	Title        string `json:"title"`
	Extract      string `json:"extract"`
	FullURL      string `json:"fullurl"`
	CanonicalURL string `json:"canonicalurl"`
}

// Search looks up sheet music on CPDL. Transport failures and non-2xx
// responses surface as domain.ErrCatalogUnavailable; a response with no
// usable pages surfaces as domain.ErrNoResults. Both are recovered by
// the finder via the local fallback.
func (c *Client) Search(ctx context.Context, params domain.SearchParameters) ([]domain.SheetMusic, error) {
	terms := searchTerms(params)
	logger.Debug("CPDL search terms: %v", terms)

	pageIDs, err := c.searchPages(ctx, strings.Join(terms, " "))
	if err != nil {
		return nil, err
	}
	if len(pageIDs) == 0 {
		return nil, domain.ErrNoResults
	}
	logger.Debug("CPDL candidates: %d pages", len(pageIDs))

	if len(pageIDs) > detailLimit {
		pageIDs = pageIDs[:detailLimit]
	}

	pages, err := c.fetchDetails(ctx, pageIDs)
	if err != nil {
		return nil, err
	}

	results := make([]domain.SheetMusic, 0, len(pages))
	for _, page := range pages {
		results = append(results, mapPage(page, params))
	}
	if len(results) == 0 {
		return nil, domain.ErrNoResults
	}

	return results, nil
}

// searchPages runs the list=search call and returns candidate page IDs
// in ranking order, limited to the main content namespace.
func (c *Client) searchPages(ctx context.Context, query string) ([]int, error) {
	values := url.Values{
		"action":      {"query"},
		"format":      {"json"},
		"list":        {"search"},
		"srsearch":    {query},
		"srnamespace": {"0"},
		"srlimit":     {strconv.Itoa(searchLimit)},
	}

	var resp searchResponse
	if err := c.get(ctx, values, &resp); err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(resp.Query.Search))
	for _, hit := range resp.Query.Search {
		ids = append(ids, hit.PageID)
	}
	return ids, nil
}

// fetchDetails runs the batch prop=extracts|info call for the given
// page IDs. Nonexistent pages (identifier "-1") are skipped. Results
// come back in the order the IDs were requested.
func (c *Client) fetchDetails(ctx context.Context, pageIDs []int) ([]pageDetail, error) {
	idStrs := make([]string, len(pageIDs))
	for i, id := range pageIDs {
		idStrs[i] = strconv.Itoa(id)
	}

	values := url.Values{
		"action":      {"query"},
		"format":      {"json"},
		"pageids":     {strings.Join(idStrs, "|")},
		"prop":        {"extracts|info"},
		"exintro":     {"1"},
		"explaintext": {"1"},
		"inprop":      {"url"},
	}

	var resp detailResponse
	if err := c.get(ctx, values, &resp); err != nil {
		return nil, err
	}

	pages := make([]pageDetail, 0, len(pageIDs))
	for _, id := range idStrs {
		page, ok := resp.Query.Pages[id]
		if !ok || page.PageID <= 0 || page.Title == "" {
			continue
		}
		pages = append(pages, page)
	}
	return pages, nil
}

// get performs a rate-limited GET against the API and decodes the JSON
// response into out.
func (c *Client) get(ctx context.Context, values url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+values.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%w: status %d", domain.ErrCatalogUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", domain.ErrCatalogUnavailable, err)
	}
	return nil
}
