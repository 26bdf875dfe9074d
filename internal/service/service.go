// Package service wires the collection pipeline behind a single facade
// shared by the HTTP API and the CLI. It adds per-industry result
// caching on top of the collector, mirrors exports to the store, and
// fans progress milestones out to an optional notifier.
package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/prismworks/newsprism/internal/collector"
	"github.com/prismworks/newsprism/internal/config"
	"github.com/prismworks/newsprism/internal/extract"
	"github.com/prismworks/newsprism/internal/industry"
	"github.com/prismworks/newsprism/internal/infra"
	"github.com/prismworks/newsprism/internal/logging"
	"github.com/prismworks/newsprism/internal/metrics"
	"github.com/prismworks/newsprism/internal/search"
	"github.com/prismworks/newsprism/internal/store"
	"github.com/prismworks/newsprism/pkg/models"
)

// Prober verifies that the search feed answers a query.
type Prober interface {
	Probe(ctx context.Context, query string) error
}

// CrawlCounter reports how many article bodies have been extracted.
type CrawlCounter interface {
	CrawledCount() int64
}

// Service is the collection facade. Industry results are cached per
// industry and parameters; company bundles always run fresh.
type Service struct {
	cfg       *config.Config
	collector *collector.Collector
	store     *store.Store
	cache     *infra.Cache
	registry  *industry.Registry
	prober    Prober
	counter   CrawlCounter
	progress  collector.ProgressFunc
}

// NewService assembles the production pipeline from configuration.
// Body extraction is wired only when crawling is enabled.
func NewService(cfg *config.Config) *Service {
	reg := industry.NewRegistry()
	client := search.NewClient(cfg)

	var ext collector.Extractor
	var counter CrawlCounter
	if cfg.Crawl.Enabled {
		e := extract.NewExtractor(cfg)
		ext = e
		counter = e
	}

	coll := collector.NewCollector(cfg, client, ext, reg)
	return newService(cfg, coll, reg, client, counter)
}

// NewServiceWith assembles a service around prebuilt parts. The
// registry must be the one the collector was built with; nil selects
// the built-in industry configuration. Used by tests and callers with
// custom search backends.
func NewServiceWith(cfg *config.Config, coll *collector.Collector, reg *industry.Registry, prober Prober, counter CrawlCounter) *Service {
	if reg == nil {
		reg = industry.NewRegistry()
	}
	return newService(cfg, coll, reg, prober, counter)
}

func newService(cfg *config.Config, coll *collector.Collector, reg *industry.Registry, prober Prober, counter CrawlCounter) *Service {
	return &Service{
		cfg:       cfg,
		collector: coll,
		store:     store.NewStore(cfg.Output.Dir),
		cache:     infra.NewCache(time.Duration(cfg.Collect.CacheTTLSec) * time.Second),
		registry:  reg,
		prober:    prober,
		counter:   counter,
	}
}

// SetProgress installs a milestone callback, forwarded to the
// collector for bundle runs. A nil fn disables notification.
func (s *Service) SetProgress(fn collector.ProgressFunc) {
	s.progress = fn
	s.collector.SetProgress(fn)
}

// ============================================================
// Collection operations
// ============================================================

// NormalizeIndustry resolves a raw industry label to a registry key.
// Exact keys pass through; anything else goes through the alias map
// and falls back to the catch-all industry.
func (s *Service) NormalizeIndustry(raw string) string {
	if s.registry.Has(raw) {
		return raw
	}
	return industry.MapLabel(raw)
}

// IndustryNews returns trend and regulation coverage for an industry.
// Results are cached per industry and parameters; refresh bypasses the
// cached entry and replaces it.
func (s *Service) IndustryNews(ctx context.Context, ind string, days, maxPer int, refresh bool) []models.Article {
	ind = s.NormalizeIndustry(ind)
	if days <= 0 {
		days = s.cfg.Collect.DefaultDays
	}
	if maxPer <= 0 {
		maxPer = s.cfg.Collect.MaxPerCategory
	}

	key := fmt.Sprintf("industry:%s:%d:%d", ind, days, maxPer)
	if !refresh {
		if cached, ok := s.cache.Get(key); ok {
			metrics.CacheHits.Inc()
			logging.Log.Debugf("cache hit for %s", key)
			return cached.([]models.Article)
		}
		metrics.CacheMisses.Inc()
	}

	s.emit("run_started", map[string]any{"operation": "industry", "industry": ind})
	articles := s.collector.CollectIndustryNews(ctx, ind, days, maxPer)
	s.cache.Set(key, articles)
	s.emit("run_complete", map[string]any{"operation": "industry", "industry": ind, "total": len(articles)})
	return articles
}

// CompetitorNews returns per-competitor coverage capped per company.
// Always runs fresh; competitor sets differ from call to call.
func (s *Service) CompetitorNews(ctx context.Context, competitors []string, ind string, days, maxPer int) []models.Article {
	ind = s.NormalizeIndustry(ind)
	if days <= 0 {
		days = s.cfg.Collect.CompetitorDays
	}
	if maxPer <= 0 {
		maxPer = s.cfg.Collect.MaxPerCompany
	}

	s.emit("run_started", map[string]any{"operation": "competitors", "companies": len(competitors)})
	articles := s.collector.CollectCompetitorNews(ctx, competitors, ind, days, maxPer)
	s.emit("run_complete", map[string]any{"operation": "competitors", "total": len(articles)})
	return articles
}

// CompanyBundle runs the composite collection for one company. The
// collector reports run_started, category_done, and run_complete
// milestones itself.
func (s *Service) CompanyBundle(ctx context.Context, company, ind string, competitors []string, days, maxPer int) *models.CollectionBundle {
	ind = s.NormalizeIndustry(ind)
	if days <= 0 {
		days = s.cfg.Collect.DefaultDays
	}
	if maxPer <= 0 {
		maxPer = s.cfg.Collect.MaxPerCategory
	}
	return s.collector.CollectForCompany(ctx, company, ind, competitors, days, maxPer)
}

// ============================================================
// Introspection and plumbing
// ============================================================

// Industries lists the configured industry names, sorted.
func (s *Service) Industries() []string {
	return s.registry.Names()
}

// CheckSources probes the search feed once per configured probe query,
// concurrently. The result maps each query to "ok" or the error text.
func (s *Service) CheckSources(ctx context.Context) map[string]string {
	queries := s.cfg.Search.ProbeQueries
	if len(queries) == 0 {
		queries = []string{"news"}
	}

	out := make(map[string]string, len(queries))
	if s.prober == nil {
		for _, q := range queries {
			out[q] = "unconfigured"
		}
		return out
	}

	statuses := make([]string, len(queries))
	g, gctx := errgroup.WithContext(ctx)
	for i, q := range queries {
		g.Go(func() error {
			if err := s.prober.Probe(gctx, q); err != nil {
				statuses[i] = err.Error()
				return nil // non-fatal, reported per query
			}
			statuses[i] = "ok"
			return nil
		})
	}
	_ = g.Wait()

	for i, q := range queries {
		out[q] = statuses[i]
	}
	return out
}

// CrawledCount returns the number of successful body extractions since
// startup, or zero when crawling is disabled.
func (s *Service) CrawledCount() int64 {
	if s.counter == nil {
		return 0
	}
	return s.counter.CrawledCount()
}

// CacheSize returns the number of cached collection results.
func (s *Service) CacheSize() int {
	return s.cache.Len()
}

// FlushCache drops all cached collection results.
func (s *Service) FlushCache() {
	s.cache.Flush()
}

// Export writes articles as JSON under the configured output
// directory. An empty path generates a timestamped file name. Returns
// the path written.
func (s *Service) Export(articles []models.Article, path string) (string, error) {
	return s.store.Export(articles, path)
}

func (s *Service) emit(stage string, detail map[string]any) {
	if s.progress != nil {
		s.progress(stage, detail)
	}
}
