// Package search queries an external news search feed for keyword
// matches and screens candidates against an excluded-locale policy.
package search

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed/rss"

	"github.com/prismworks/newsprism/internal/config"
	"github.com/prismworks/newsprism/internal/infra"
	"github.com/prismworks/newsprism/internal/logging"
	"github.com/prismworks/newsprism/internal/metrics"
	"github.com/prismworks/newsprism/pkg/models"
	"github.com/prismworks/newsprism/pkg/utils"
)

// UserAgent identifies the collector to the search feed.
const UserAgent = "Mozilla/5.0 (compatible; NewsBot/1.0)"

// Client fetches candidate headlines from a Google News style RSS
// search endpoint.
type Client struct {
	baseURL     string
	language    string
	country     string
	overFetch   int
	scriptRatio float64
	patterns    []string

	http    *http.Client
	limiter *infra.RateLimiter
	parser  *rss.Parser
}

// NewClient builds a search client from configuration. Locale
// exclusion patterns are lowercased once up front.
func NewClient(cfg *config.Config) *Client {
	patterns := make([]string, len(cfg.Filter.LocalPatterns))
	for i, p := range cfg.Filter.LocalPatterns {
		patterns[i] = strings.ToLower(p)
	}

	rate := cfg.Search.RatePerSec
	if rate < 1 {
		rate = 1
	}
	overFetch := cfg.Search.OverFetchFactor
	if overFetch < 1 {
		overFetch = 1
	}

	return &Client{
		baseURL:     cfg.Search.BaseURL,
		language:    cfg.Search.Language,
		country:     cfg.Search.Country,
		overFetch:   overFetch,
		scriptRatio: cfg.Filter.ScriptRatio,
		patterns:    patterns,
		http: &http.Client{
			Timeout: time.Duration(cfg.Search.TimeoutSec) * time.Second,
		},
		limiter: infra.NewRateLimiter(rate, time.Second),
		parser:  &rss.Parser{},
	}
}

// Search returns up to maxResults candidates for query, screening out
// excluded-locale sources. Failures degrade to an empty result; the
// caller never sees an error.
func (c *Client) Search(ctx context.Context, query string, maxResults, days int) []models.SearchResult {
	return c.search(ctx, query, maxResults, days, true)
}

// SearchUnfiltered is Search with the locale screen disabled.
func (c *Client) SearchUnfiltered(ctx context.Context, query string, maxResults, days int) []models.SearchResult {
	return c.search(ctx, query, maxResults, days, false)
}

// Probe performs a minimal feed request for the given query to verify
// the endpoint is reachable and the payload parses. An empty query
// probes a generic term.
func (c *Client) Probe(ctx context.Context, query string) error {
	if query == "" {
		query = "news"
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}
	_, err := c.fetchFeed(ctx, query, 1)
	return err
}

func (c *Client) search(ctx context.Context, query string, maxResults, days int, excludeLocal bool) []models.SearchResult {
	if query == "" || maxResults <= 0 {
		return nil
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil
	}

	feed, err := c.fetchFeed(ctx, query, days)
	if err != nil {
		logging.Log.Warnf("search %q: %v", query, err)
		metrics.SearchRequests.WithLabelValues("error").Inc()
		return nil
	}
	metrics.SearchRequests.WithLabelValues("ok").Inc()

	// Over-fetch when screening so rejected candidates do not eat
	// into the requested count.
	fetchLimit := maxResults
	if excludeLocal {
		fetchLimit = maxResults * c.overFetch
	}
	items := feed.Items
	if len(items) > fetchLimit {
		items = items[:fetchLimit]
	}

	results := make([]models.SearchResult, 0, maxResults)
	for _, item := range items {
		r := itemToResult(item)
		if excludeLocal && c.isLocalSource(r.Source, r.URL, r.Title) {
			metrics.CandidatesFiltered.Inc()
			continue
		}
		results = append(results, r)
		if len(results) >= maxResults {
			break
		}
	}
	return results
}

// fetchFeed performs the RSS request. The freshness window is encoded
// as a when: token appended to the query, bucketed to 1, 7 or 30 days;
// anything longer runs unbounded.
func (c *Client) fetchFeed(ctx context.Context, query string, days int) (*rss.Feed, error) {
	q := query
	switch {
	case days <= 1:
		q += " when:1d"
	case days <= 7:
		q += " when:7d"
	case days <= 30:
		q += " when:30d"
	}

	params := url.Values{}
	params.Set("q", q)
	params.Set("hl", c.language)
	params.Set("gl", c.country)
	params.Set("ceid", c.country+":"+c.language)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed returned %s", resp.Status)
	}

	feed, err := c.parser.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}
	return feed, nil
}

// itemToResult maps one feed item to a candidate record. The rss
// subpackage parser is used because gofeed's universal model drops the
// <source> element search feeds rely on.
func itemToResult(item *rss.Item) models.SearchResult {
	r := models.SearchResult{
		Title:       item.Title,
		URL:         item.Link,
		PublishedAt: item.PubDate,
		Description: utils.TruncateRunes(cleanHTML(item.Description), 500),
	}
	if item.Source != nil {
		r.Source = item.Source.Title
	}
	return r
}

// isLocalSource reports whether a candidate belongs to the excluded
// locale, either by a configured source/url/title pattern or by the
// share of Hangul in the title.
func (c *Client) isLocalSource(source, link, title string) bool {
	checkText := strings.ToLower(source + " " + link + " " + title)
	for _, p := range c.patterns {
		if strings.Contains(checkText, p) {
			return true
		}
	}
	return title != "" && utils.HangulRatio(title) > c.scriptRatio
}

// cleanHTML strips markup from a feed description using goquery.
func cleanHTML(s string) string {
	if s == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<body>" + s + "</body>"))
	if err != nil {
		return s
	}
	return strings.TrimSpace(doc.Text())
}
