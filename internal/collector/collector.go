// Package collector orchestrates keyword search, body extraction, and
// classification into deduplicated, capped article sets.
package collector

import (
	"context"
	"time"

	"github.com/prismworks/newsprism/internal/classify"
	"github.com/prismworks/newsprism/internal/config"
	"github.com/prismworks/newsprism/internal/industry"
	"github.com/prismworks/newsprism/internal/logging"
	"github.com/prismworks/newsprism/internal/metrics"
	"github.com/prismworks/newsprism/pkg/models"
	"github.com/prismworks/newsprism/pkg/utils"
)

// Searcher yields candidate headlines for a query. Implementations
// degrade failures to an empty result.
type Searcher interface {
	Search(ctx context.Context, query string, maxResults, days int) []models.SearchResult
}

// Extractor produces best-effort article body text for a URL.
type Extractor interface {
	Extract(ctx context.Context, url string) models.ExtractResult
}

// ProgressFunc observes collection milestones. Callbacks run inline
// between collection steps and must return quickly.
type ProgressFunc func(stage string, detail map[string]any)

// defaultCompetitorKeywords pad industries whose configuration lacks
// competitor query terms.
var defaultCompetitorKeywords = []string{"투자", "출시", "실적"}

// Collector drives the collection pipeline. It runs sequentially; one
// logical collection per Collector at a time.
type Collector struct {
	searcher  Searcher
	extractor Extractor
	registry  *industry.Registry

	crawlBody      bool
	topKeywords    int
	defaultDays    int
	competitorDays int
	maxPerCategory int
	maxPerCompany  int
	pauseDur       time.Duration
	progress       ProgressFunc
}

// NewCollector builds a collector around the given search and
// extraction implementations. A nil registry falls back to the
// built-in industry configuration.
func NewCollector(cfg *config.Config, searcher Searcher, extractor Extractor, registry *industry.Registry) *Collector {
	if registry == nil {
		registry = industry.NewRegistry()
	}
	return &Collector{
		searcher:       searcher,
		extractor:      extractor,
		registry:       registry,
		crawlBody:      cfg.Crawl.Enabled && extractor != nil,
		topKeywords:    cfg.Collect.TopKeywords,
		defaultDays:    cfg.Collect.DefaultDays,
		competitorDays: cfg.Collect.CompetitorDays,
		maxPerCategory: cfg.Collect.MaxPerCategory,
		maxPerCompany:  cfg.Collect.MaxPerCompany,
		pauseDur:       time.Duration(cfg.Collect.PauseMS) * time.Millisecond,
	}
}

// SetProgress installs a milestone callback. A nil fn disables
// notification.
func (c *Collector) SetProgress(fn ProgressFunc) {
	c.progress = fn
}

// ============================================================
// Public operations
// ============================================================

// CollectIndustryNews gathers trend and regulation coverage for one
// industry: up to 3 keywords per topic, 2 hits per keyword, then
// deduplication and a per-category cap. Unknown industries use the
// catch-all configuration.
func (c *Collector) CollectIndustryNews(ctx context.Context, ind string, days, maxPerCategory int) []models.Article {
	start := time.Now()
	if days <= 0 {
		days = c.defaultDays
	}
	if maxPerCategory <= 0 {
		maxPerCategory = c.maxPerCategory
	}

	kws := c.registry.Lookup(ind)
	logging.Log.Infof("collecting industry news for %s (days=%d)", ind, days)

	var all []models.Article
	all = c.collectTopic(ctx, all, kws.Trend, ind, models.CategoryIndustryTrend, days)
	all = c.collectTopic(ctx, all, kws.Regulation, ind, models.CategoryRegulation, days)

	all = deduplicate(all)
	all = limitPerGroup(all, maxPerCategory, func(a models.Article) string { return string(a.Category) })

	logging.Log.Infof("industry news collected for %s: %d articles", ind, len(all))
	c.logSummary(all)
	for _, a := range all {
		metrics.ArticlesCollected.WithLabelValues(string(a.Category)).Inc()
	}
	metrics.CollectionDuration.WithLabelValues("industry").Observe(time.Since(start).Seconds())
	return all
}

// CollectCompetitorNews gathers coverage per named competitor: the
// bare company name (3 hits) plus up to 2 keyword combinations (2 hits
// each). Hits keep the competitor category and carry the originating
// company name; the cap applies per company, not globally.
func (c *Collector) CollectCompetitorNews(ctx context.Context, competitors []string, ind string, days, maxPerCompany int) []models.Article {
	start := time.Now()
	if days <= 0 {
		days = c.competitorDays
	}
	if maxPerCompany <= 0 {
		maxPerCompany = c.maxPerCompany
	}

	kws := c.registry.Lookup(ind)
	compKws := kws.Competitor
	if len(compKws) == 0 {
		compKws = defaultCompetitorKeywords
	}

	logging.Log.Infof("collecting competitor news for %d companies (days=%d)", len(competitors), days)

	var all []models.Article
	for _, company := range competitors {
		for _, r := range c.searcher.Search(ctx, company, 3, days) {
			if a := c.processResult(ctx, r, ind, models.CategoryCompetitor, false); a != nil {
				a.Company = company
				all = append(all, *a)
			}
		}

		for _, kw := range firstN(compKws, 2) {
			for _, r := range c.searcher.Search(ctx, company+" "+kw, 2, days) {
				if a := c.processResult(ctx, r, ind, models.CategoryCompetitor, false); a != nil {
					a.Company = company
					all = append(all, *a)
				}
			}
		}

		if !c.pause(ctx) {
			break
		}
	}

	all = deduplicate(all)
	limited := limitPerGroup(all, maxPerCompany, func(a models.Article) string { return a.Company })

	logging.Log.Infof("competitor news collected: %d articles", len(limited))
	for range limited {
		metrics.ArticlesCollected.WithLabelValues(string(models.CategoryCompetitor)).Inc()
	}
	metrics.CollectionDuration.WithLabelValues("competitor").Observe(time.Since(start).Seconds())
	return limited
}

// CollectForCompany runs the composite collection: industry topics,
// optional competitor coverage at a doubled lookback, and the target
// company's own headlines. Industry hits are routed into buckets by
// their (possibly reclassified) category.
func (c *Collector) CollectForCompany(ctx context.Context, company, ind string, competitors []string, days, maxPerCategory int) *models.CollectionBundle {
	start := time.Now()
	if days <= 0 {
		days = c.defaultDays
	}

	logging.Log.Infof("collecting bundle for %s (industry=%s, competitors=%d)", company, ind, len(competitors))
	c.emit("run_started", map[string]any{"company": company, "industry": ind})

	bundle := &models.CollectionBundle{}

	for _, a := range c.CollectIndustryNews(ctx, ind, days, maxPerCategory) {
		switch a.Category {
		case models.CategoryCompetitor:
			bundle.Competitor = append(bundle.Competitor, a)
		case models.CategoryRegulation:
			bundle.Regulation = append(bundle.Regulation, a)
		default:
			bundle.IndustryTrend = append(bundle.IndustryTrend, a)
		}
	}
	c.emit("category_done", map[string]any{"category": string(models.CategoryIndustryTrend), "count": len(bundle.IndustryTrend)})
	c.emit("category_done", map[string]any{"category": string(models.CategoryRegulation), "count": len(bundle.Regulation)})

	if len(competitors) > 0 {
		comp := c.CollectCompetitorNews(ctx, competitors, ind, days*2, c.maxPerCompany)
		bundle.Competitor = append(bundle.Competitor, comp...)
	}
	c.emit("category_done", map[string]any{"category": string(models.CategoryCompetitor), "count": len(bundle.Competitor)})

	for _, r := range c.searcher.Search(ctx, company, 5, days) {
		if a := c.processResult(ctx, r, ind, models.CategoryCompany, false); a != nil {
			a.Company = company
			bundle.CompanyNews = append(bundle.CompanyNews, *a)
			metrics.ArticlesCollected.WithLabelValues(string(models.CategoryCompany)).Inc()
		}
	}
	c.emit("category_done", map[string]any{"category": string(models.CategoryCompany), "count": len(bundle.CompanyNews)})

	bundle.All = append(bundle.All, bundle.IndustryTrend...)
	bundle.All = append(bundle.All, bundle.Competitor...)
	bundle.All = append(bundle.All, bundle.Regulation...)
	bundle.All = append(bundle.All, bundle.CompanyNews...)

	logging.Log.Infof("bundle for %s: trend=%d competitor=%d regulation=%d company=%d total=%d",
		company, len(bundle.IndustryTrend), len(bundle.Competitor), len(bundle.Regulation),
		len(bundle.CompanyNews), len(bundle.All))
	c.emit("run_complete", map[string]any{"company": company, "total": len(bundle.All)})
	metrics.CollectionDuration.WithLabelValues("company").Observe(time.Since(start).Seconds())
	return bundle
}

// ============================================================
// Internal helpers
// ============================================================

// collectTopic searches the first three keywords of a topic list, two
// hits per keyword, with a politeness pause after each keyword.
func (c *Collector) collectTopic(ctx context.Context, acc []models.Article, keywords []string, ind string, cat models.Category, days int) []models.Article {
	for _, kw := range firstN(keywords, 3) {
		for _, r := range c.searcher.Search(ctx, kw, 2, days) {
			if a := c.processResult(ctx, r, ind, cat, true); a != nil {
				acc = append(acc, *a)
			}
		}
		if !c.pause(ctx) {
			break
		}
	}
	return acc
}

// processResult turns a search hit into an article, crawling the body
// when enabled. reclassify lets generic topic buckets re-score the
// category from text; structural buckets (competitor, company) keep
// the category the collector assigned.
func (c *Collector) processResult(ctx context.Context, r models.SearchResult, ind string, cat models.Category, reclassify bool) *models.Article {
	if r.URL == "" {
		return nil
	}

	a := &models.Article{
		Title:         r.Title,
		URL:           r.URL,
		Source:        r.Source,
		PublishedAt:   r.PublishedAt,
		Description:   r.Description,
		Category:      cat,
		CategoryLabel: cat.Label(),
		Industry:      ind,
		CrawledAt:     utils.FormatISOKST(utils.NowKST()),
	}

	if c.crawlBody {
		extracted := c.extractor.Extract(ctx, r.URL)
		if extracted.Success {
			a.FullText = extracted.FullText
			a.Author = extracted.Author
			a.Language = extracted.Language
			a.WordCount = extracted.WordCount
			a.CrawlSuccess = true
			a.Keywords = classify.ExtractKeywords(a.FullText, c.topKeywords)
			logging.Log.Debugf("crawled %q (%d chars)", utils.TruncateRunes(a.Title, 40), a.WordCount)
		} else {
			logging.Log.Debugf("crawl failed for %q: %s", utils.TruncateRunes(a.Title, 40), extracted.Error)
		}
	}

	if reclassify && (a.FullText != "" || a.Description != "") {
		classify.ClassifyArticle(a)
	}
	return a
}

// emit reports a milestone to the installed progress callback, if any.
func (c *Collector) emit(stage string, detail map[string]any) {
	if c.progress != nil {
		c.progress(stage, detail)
	}
}

// pause inserts the politeness delay between search batches. Returns
// false once ctx is cancelled so loops can stop early with partial
// results.
func (c *Collector) pause(ctx context.Context) bool {
	if c.pauseDur <= 0 {
		return ctx.Err() == nil
	}
	select {
	case <-ctx.Done():
		return false
	case <-time.After(c.pauseDur):
		return true
	}
}

// logSummary emits the per-category operator summary.
func (c *Collector) logSummary(articles []models.Article) {
	byLabel := make(map[string][]models.Article)
	var order []string
	for _, a := range articles {
		if _, ok := byLabel[a.CategoryLabel]; !ok {
			order = append(order, a.CategoryLabel)
		}
		byLabel[a.CategoryLabel] = append(byLabel[a.CategoryLabel], a)
	}
	for _, label := range order {
		arts := byLabel[label]
		crawled := 0
		for _, a := range arts {
			if a.CrawlSuccess {
				crawled++
			}
		}
		logging.Log.Infof("  %s: %d articles (%d with body)", label, len(arts), crawled)
	}
}

// deduplicate keeps the first article seen for each normalized URL,
// preserving order.
func deduplicate(articles []models.Article) []models.Article {
	seen := make(map[string]struct{}, len(articles))
	unique := make([]models.Article, 0, len(articles))
	for _, a := range articles {
		key := utils.NormalizeURL(a.URL)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, a)
	}
	return unique
}

// limitPerGroup caps each group to maxPer articles. Groups appear in
// the order their first article was collected; articles keep encounter
// order within a group.
func limitPerGroup(articles []models.Article, maxPer int, key func(models.Article) string) []models.Article {
	byKey := make(map[string][]models.Article)
	var order []string
	for _, a := range articles {
		k := key(a)
		if _, ok := byKey[k]; !ok {
			order = append(order, k)
		}
		byKey[k] = append(byKey[k], a)
	}

	result := make([]models.Article, 0, len(articles))
	for _, k := range order {
		group := byKey[k]
		if len(group) > maxPer {
			group = group[:maxPer]
		}
		result = append(result, group...)
	}
	return result
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
