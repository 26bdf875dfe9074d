package config

import (
	"os"
	"path/filepath"
	"testing"
)

// ── Load / Defaults ──

func TestLoadReturnsDefaults(t *testing.T) {
	// Unset any env vars that would interfere
	envVars := []string{
		"NEWSPRISM_SEARCH_LANGUAGE", "NEWSPRISM_SEARCH_COUNTRY",
		"NEWSPRISM_OUTPUT_DIR", "NEWSPRISM_API_PORT", "NEWSPRISM_LOGGING_LEVEL",
	}
	for _, e := range envVars {
		os.Unsetenv(e)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	// Search defaults
	if cfg.Search.BaseURL != "https://news.google.com/rss/search" {
		t.Errorf("Search.BaseURL: got %q", cfg.Search.BaseURL)
	}
	if cfg.Search.Language != "en" {
		t.Errorf("Search.Language: got %q, want %q", cfg.Search.Language, "en")
	}
	if cfg.Search.Country != "US" {
		t.Errorf("Search.Country: got %q, want %q", cfg.Search.Country, "US")
	}
	if cfg.Search.TimeoutSec != 15 {
		t.Errorf("Search.TimeoutSec: got %d, want 15", cfg.Search.TimeoutSec)
	}
	if cfg.Search.OverFetchFactor != 3 {
		t.Errorf("Search.OverFetchFactor: got %d, want 3", cfg.Search.OverFetchFactor)
	}
	if len(cfg.Search.ProbeQueries) != 2 || cfg.Search.ProbeQueries[0] != "economy" {
		t.Errorf("Search.ProbeQueries: got %v", cfg.Search.ProbeQueries)
	}

	// Filter defaults
	if len(cfg.Filter.LocalPatterns) == 0 {
		t.Error("Filter.LocalPatterns should have default entries")
	}
	if cfg.Filter.ScriptRatio != 0.3 {
		t.Errorf("Filter.ScriptRatio: got %f, want 0.3", cfg.Filter.ScriptRatio)
	}

	// Crawl defaults
	if !cfg.Crawl.Enabled {
		t.Error("Crawl.Enabled should be true by default")
	}
	if cfg.Crawl.MinTextLen != 100 {
		t.Errorf("Crawl.MinTextLen: got %d, want 100", cfg.Crawl.MinTextLen)
	}
	if cfg.Crawl.FetchTimeoutSec != 15 {
		t.Errorf("Crawl.FetchTimeoutSec: got %d, want 15", cfg.Crawl.FetchTimeoutSec)
	}
	if cfg.Crawl.RedirectTimeoutSec != 10 {
		t.Errorf("Crawl.RedirectTimeoutSec: got %d, want 10", cfg.Crawl.RedirectTimeoutSec)
	}
	if cfg.Crawl.UserAgent == "" {
		t.Error("Crawl.UserAgent should have a default")
	}

	// Collect defaults
	if cfg.Collect.DefaultDays != 7 {
		t.Errorf("Collect.DefaultDays: got %d, want 7", cfg.Collect.DefaultDays)
	}
	if cfg.Collect.CompetitorDays != 14 {
		t.Errorf("Collect.CompetitorDays: got %d, want 14", cfg.Collect.CompetitorDays)
	}
	if cfg.Collect.MaxPerCategory != 3 {
		t.Errorf("Collect.MaxPerCategory: got %d, want 3", cfg.Collect.MaxPerCategory)
	}
	if cfg.Collect.MaxPerCompany != 3 {
		t.Errorf("Collect.MaxPerCompany: got %d, want 3", cfg.Collect.MaxPerCompany)
	}
	if cfg.Collect.PauseMS != 500 {
		t.Errorf("Collect.PauseMS: got %d, want 500", cfg.Collect.PauseMS)
	}
	if cfg.Collect.TopKeywords != 5 {
		t.Errorf("Collect.TopKeywords: got %d, want 5", cfg.Collect.TopKeywords)
	}

	// Output defaults
	if cfg.Output.Dir != "output" {
		t.Errorf("Output.Dir: got %q, want %q", cfg.Output.Dir, "output")
	}

	// API defaults
	if cfg.API.Host != "0.0.0.0" {
		t.Errorf("API.Host: got %q, want %q", cfg.API.Host, "0.0.0.0")
	}
	if cfg.API.Port != 8080 {
		t.Errorf("API.Port: got %d, want 8080", cfg.API.Port)
	}

	// Logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level: got %q, want %q", cfg.Logging.Level, "info")
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("Logging.Format: got %q, want %q", cfg.Logging.Format, "text")
	}
	if cfg.Logging.MaxSizeMB != 50 {
		t.Errorf("Logging.MaxSizeMB: got %d, want 50", cfg.Logging.MaxSizeMB)
	}
}

func TestDefaultLocalPatternsContent(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	// Spot-check a domain, a publisher name, and the trailing exception.
	wantPresent := []string{".kr", "naver.com", "조선일보", "연합뉴스", "Vietnam.vn"}
	for _, want := range wantPresent {
		found := false
		for _, p := range cfg.Filter.LocalPatterns {
			if p == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Filter.LocalPatterns missing %q", want)
		}
	}
}

// ── LoadFromFile ──

func TestLoadFromFile(t *testing.T) {
	// Create a temp config file
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "test_config.yaml")
	content := []byte(`
search:
  language: "en"
  country: "GB"
  timeout_sec: 20
filter:
  script_ratio: 0.5
crawl:
  enabled: false
  min_text_len: 200
collect:
  default_days: 3
  max_per_category: 5
  pause_ms: 100
output:
  dir: "/tmp/news-exports"
api:
  port: 9090
logging:
  level: "debug"
  format: "json"
`)
	if err := os.WriteFile(cfgPath, content, 0644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := LoadFromFile(cfgPath)
	if err != nil {
		t.Fatalf("LoadFromFile() error: %v", err)
	}
	if cfg.Search.Country != "GB" {
		t.Errorf("Search.Country: got %q, want %q", cfg.Search.Country, "GB")
	}
	if cfg.Search.TimeoutSec != 20 {
		t.Errorf("Search.TimeoutSec: got %d, want 20", cfg.Search.TimeoutSec)
	}
	if cfg.Filter.ScriptRatio != 0.5 {
		t.Errorf("Filter.ScriptRatio: got %f, want 0.5", cfg.Filter.ScriptRatio)
	}
	if cfg.Crawl.Enabled {
		t.Error("Crawl.Enabled should be false from file")
	}
	if cfg.Crawl.MinTextLen != 200 {
		t.Errorf("Crawl.MinTextLen: got %d, want 200", cfg.Crawl.MinTextLen)
	}
	if cfg.Collect.DefaultDays != 3 {
		t.Errorf("Collect.DefaultDays: got %d, want 3", cfg.Collect.DefaultDays)
	}
	if cfg.Collect.MaxPerCategory != 5 {
		t.Errorf("Collect.MaxPerCategory: got %d, want 5", cfg.Collect.MaxPerCategory)
	}
	if cfg.Output.Dir != "/tmp/news-exports" {
		t.Errorf("Output.Dir: got %q", cfg.Output.Dir)
	}
	if cfg.API.Port != 9090 {
		t.Errorf("API.Port: got %d, want 9090", cfg.API.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level: got %q, want %q", cfg.Logging.Level, "debug")
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format: got %q, want %q", cfg.Logging.Format, "json")
	}

	// Values absent from the file keep their defaults.
	if cfg.Collect.TopKeywords != 5 {
		t.Errorf("Collect.TopKeywords should keep default 5, got %d", cfg.Collect.TopKeywords)
	}
	if cfg.Search.BaseURL != "https://news.google.com/rss/search" {
		t.Errorf("Search.BaseURL should keep default, got %q", cfg.Search.BaseURL)
	}
}

func TestLoadFromFileNotFound(t *testing.T) {
	_, err := LoadFromFile("/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("LoadFromFile() with nonexistent path should return error")
	}
}

// ── Environment overrides ──

func TestEnvOverride(t *testing.T) {
	os.Setenv("NEWSPRISM_API_PORT", "9999")
	os.Setenv("NEWSPRISM_OUTPUT_DIR", "env-output")
	os.Setenv("NEWSPRISM_SEARCH_COUNTRY", "KR")
	defer func() {
		os.Unsetenv("NEWSPRISM_API_PORT")
		os.Unsetenv("NEWSPRISM_OUTPUT_DIR")
		os.Unsetenv("NEWSPRISM_SEARCH_COUNTRY")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.API.Port != 9999 {
		t.Errorf("API.Port from env: got %d, want 9999", cfg.API.Port)
	}
	if cfg.Output.Dir != "env-output" {
		t.Errorf("Output.Dir from env: got %q, want %q", cfg.Output.Dir, "env-output")
	}
	if cfg.Search.Country != "KR" {
		t.Errorf("Search.Country from env: got %q, want %q", cfg.Search.Country, "KR")
	}
}

// ── homeDir ──

func TestHomeDirReturnsNonEmpty(t *testing.T) {
	h := homeDir()
	if h == "" {
		t.Error("homeDir() should not return empty string")
	}
}
