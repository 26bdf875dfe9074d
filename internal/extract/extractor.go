// Package extract pulls readable article text and metadata out of web
// pages, tolerating the redirect indirection used by search feeds.
package extract

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/abadojack/whatlanggo"
	readability "github.com/go-shiori/go-readability"
	"golang.org/x/time/rate"

	"github.com/prismworks/newsprism/internal/config"
	"github.com/prismworks/newsprism/internal/metrics"
	"github.com/prismworks/newsprism/pkg/models"
)

// redirectHost marks feed URLs that point at a redirector rather than
// the publisher page.
const redirectHost = "news.google.com"

// errInsufficient is the reported reason when a page yields too little
// text to count as an article body.
const errInsufficient = "본문 추출 실패 (내용 부족)"

// Extractor downloads pages and reduces them to article text. All
// failures are reported as result values; the collection loop treats
// them as degraded articles, not errors.
type Extractor struct {
	userAgent    string
	fetchTimeout time.Duration
	minTextLen   int

	limiter  *rate.Limiter
	resolver *http.Client
	fallback *http.Client

	crawled atomic.Int64
}

// NewExtractor builds an extractor from configuration.
func NewExtractor(cfg *config.Config) *Extractor {
	perSec := rate.Limit(cfg.Crawl.RatePerSec)
	if perSec <= 0 {
		perSec = rate.Inf
	}
	return &Extractor{
		userAgent:    cfg.Crawl.UserAgent,
		fetchTimeout: time.Duration(cfg.Crawl.FetchTimeoutSec) * time.Second,
		minTextLen:   cfg.Crawl.MinTextLen,
		limiter:      rate.NewLimiter(perSec, 1),
		resolver: &http.Client{
			Timeout: time.Duration(cfg.Crawl.RedirectTimeoutSec) * time.Second,
		},
		fallback: &http.Client{
			Timeout: time.Duration(cfg.Crawl.FetchTimeoutSec) * time.Second,
		},
	}
}

// Extract fetches the page behind pageURL and returns its text and
// best-effort metadata.
func (e *Extractor) Extract(ctx context.Context, pageURL string) models.ExtractResult {
	start := time.Now()
	res := e.extract(ctx, pageURL)
	metrics.CrawlDuration.Observe(time.Since(start).Seconds())

	if res.Success {
		e.crawled.Add(1)
		metrics.CrawlAttempts.WithLabelValues("ok").Inc()
	} else {
		metrics.CrawlAttempts.WithLabelValues("error").Inc()
	}
	return res
}

// CrawledCount returns the number of successful extractions since
// construction.
func (e *Extractor) CrawledCount() int64 {
	return e.crawled.Load()
}

func (e *Extractor) extract(ctx context.Context, pageURL string) models.ExtractResult {
	if err := e.limiter.Wait(ctx); err != nil {
		return models.ExtractResult{Error: err.Error()}
	}

	actualURL := e.ResolveRedirect(ctx, pageURL)

	article, err := readability.FromURL(actualURL, e.fetchTimeout)
	if err != nil {
		article, err = e.fetchDirect(ctx, actualURL)
		if err != nil {
			return models.ExtractResult{Error: err.Error()}
		}
	}
	return e.buildResult(article)
}

// ResolveRedirect follows the feed's redirector to the publisher page
// via a HEAD request. Anything else, and anything that fails to
// resolve, passes through untouched.
func (e *Extractor) ResolveRedirect(ctx context.Context, pageURL string) string {
	if !strings.Contains(pageURL, redirectHost) {
		return pageURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, pageURL, nil)
	if err != nil {
		return pageURL
	}
	req.Header.Set("User-Agent", e.userAgent)

	resp, err := e.resolver.Do(req)
	if err != nil {
		return pageURL
	}
	resp.Body.Close()
	return resp.Request.URL.String()
}

// fetchDirect downloads the page with browser-like headers and runs
// extraction on the body. Some outlets refuse the extraction library's
// default client but answer a plain GET.
func (e *Extractor) fetchDirect(ctx context.Context, pageURL string) (readability.Article, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return readability.Article{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", e.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9")
	req.Header.Set("Accept-Language", "ko-KR,ko;q=0.9,en;q=0.8")

	resp, err := e.fallback.Do(req)
	if err != nil {
		return readability.Article{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return readability.Article{}, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	parsed, err := url.Parse(pageURL)
	if err != nil {
		return readability.Article{}, err
	}
	return readability.FromReader(resp.Body, parsed)
}

// buildResult converts an extracted article into a result record.
// Partial text below the length floor is kept but reported as failure.
func (e *Extractor) buildResult(article readability.Article) models.ExtractResult {
	text := strings.TrimSpace(article.TextContent)
	res := models.ExtractResult{
		FullText: text,
		Title:    article.Title,
		Author:   article.Byline,
	}
	if article.PublishedTime != nil {
		res.Date = article.PublishedTime.Format(time.RFC3339)
	}

	runes := utf8.RuneCountInString(text)
	if runes < e.minTextLen {
		res.Error = errInsufficient
		return res
	}

	res.Success = true
	res.WordCount = runes
	res.Language = whatlanggo.Detect(text).Lang.Iso6393()
	return res
}
