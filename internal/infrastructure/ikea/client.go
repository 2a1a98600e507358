package ikea

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/priceguesser/backend/internal/domain"
	"golang.org/x/time/rate"
)

// Fixed query parameters the retailer search endpoint expects
const (
	searchTypes   = "PRODUCT"
	searchChannel = "sr"
	searchVersion = "20210322"
)

// Client handles communication with the retailer search API
type Client struct {
	httpClient  *http.Client
	baseURL     string
	userAgent   string
	resultSize  int
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a new retailer search client. requestsPerSec bounds
// outbound traffic; a daily resolution pass may issue one request per
// search term in the worst case.
func NewClient(baseURL, userAgent string, resultSize int, requestsPerSec float64) *Client {
	if resultSize <= 0 {
		resultSize = 50
	}
	if requestsPerSec <= 0 {
		requestsPerSec = 5
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:     baseURL,
		userAgent:   userAgent,
		resultSize:  resultSize,
		rateLimiter: rate.NewLimiter(rate.Limit(requestsPerSec), 10),
	}
}

// SetDebug enables verbose request logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// searchURL builds the full search-result-page URL for a term and market
func (c *Client) searchURL(term, country, language string) string {
	endpoint := fmt.Sprintf("%s/%s/%s/search-result-page", c.baseURL, country, language)

	params := url.Values{}
	params.Add("q", term)
	params.Add("size", fmt.Sprintf("%d", c.resultSize))
	params.Add("types", searchTypes)
	params.Add("autocorrect", "true")
	params.Add("subcategories-style", "tree-navigation")
	params.Add("c", searchChannel)
	params.Add("v", searchVersion)

	return fmt.Sprintf("%s?%s", endpoint, params.Encode())
}

// doRequest executes an HTTP GET request with proper headers and error handling
func (c *Client) doRequest(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogFailure, err)
	}

	return resp, nil
}

// Search runs a product search for one term. A failed or non-OK request
// is returned as an error without retrying; the resolution loop treats
// that as "no candidates from this term" and moves on.
func (c *Client) Search(ctx context.Context, term, country, language string) (*domain.SearchResponse, error) {
	if c.debug {
		log.Printf("[IKEA] Search term=%q market=%s/%s", term, country, language)
	}

	body, status, err := c.SearchRaw(ctx, term, country, language)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		log.Printf("[IKEA] Search term=%q failed - status: %d", term, status)
		return nil, fmt.Errorf("%w: status %d", domain.ErrCatalogFailure, status)
	}

	var searchResp domain.SearchResponse
	if err := json.Unmarshal(body, &searchResp); err != nil {
		log.Printf("[IKEA] JSON decode error for term %q: %v", term, err)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if c.debug {
		log.Printf("[IKEA] Search term=%q returned %d items", term, len(searchResp.Items()))
	}
	return &searchResp, nil
}

// SearchRaw runs a search and returns the upstream body and status code
// untouched. Used by the proxy passthrough endpoint, which mirrors both.
func (c *Client) SearchRaw(ctx context.Context, term, country, language string) ([]byte, int, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, 0, fmt.Errorf("rate limiter error: %w", err)
	}

	resp, err := c.doRequest(ctx, c.searchURL(term, country, language))
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response: %w", err)
	}

	return body, resp.StatusCode, nil
}
