// Package config handles configuration loading for newsprism.
// It supports YAML config files with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Search  SearchConfig  `mapstructure:"search"  yaml:"search"`
	Filter  FilterConfig  `mapstructure:"filter"  yaml:"filter"`
	Crawl   CrawlConfig   `mapstructure:"crawl"   yaml:"crawl"`
	Collect CollectConfig `mapstructure:"collect" yaml:"collect"`
	Output  OutputConfig  `mapstructure:"output"  yaml:"output"`
	API     APIConfig     `mapstructure:"api"     yaml:"api"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// SearchConfig holds search feed settings.
type SearchConfig struct {
	BaseURL         string   `mapstructure:"base_url"          yaml:"base_url"`
	Language        string   `mapstructure:"language"          yaml:"language"`           // hl parameter, e.g. "en"
	Country         string   `mapstructure:"country"           yaml:"country"`            // gl parameter, e.g. "US"
	TimeoutSec      int      `mapstructure:"timeout_sec"       yaml:"timeout_sec"`
	OverFetchFactor int      `mapstructure:"over_fetch_factor" yaml:"over_fetch_factor"`  // fetch N× max_results when locale filtering
	RatePerSec      int      `mapstructure:"rate_per_sec"      yaml:"rate_per_sec"`
	ProbeQueries    []string `mapstructure:"probe_queries"     yaml:"probe_queries"`      // health-check queries
}

// FilterConfig holds locale-exclusion settings. The pipeline searches in
// English and screens out articles attributable to Korean outlets; both the
// pattern list and the script-ratio threshold are retargetable here.
type FilterConfig struct {
	LocalPatterns []string `mapstructure:"local_patterns" yaml:"local_patterns"` // domain/publisher substrings
	ScriptRatio   float64  `mapstructure:"script_ratio"   yaml:"script_ratio"`   // reject titles above this Hangul ratio
}

// CrawlConfig holds body-extraction settings.
type CrawlConfig struct {
	Enabled            bool    `mapstructure:"enabled"              yaml:"enabled"`
	UserAgent          string  `mapstructure:"user_agent"           yaml:"user_agent"`
	FetchTimeoutSec    int     `mapstructure:"fetch_timeout_sec"    yaml:"fetch_timeout_sec"`
	RedirectTimeoutSec int     `mapstructure:"redirect_timeout_sec" yaml:"redirect_timeout_sec"`
	MinTextLen         int     `mapstructure:"min_text_len"         yaml:"min_text_len"` // runes required for crawl_success
	RatePerSec         float64 `mapstructure:"rate_per_sec"         yaml:"rate_per_sec"`
}

// CollectConfig holds orchestration settings.
type CollectConfig struct {
	DefaultDays    int `mapstructure:"default_days"     yaml:"default_days"`
	CompetitorDays int `mapstructure:"competitor_days"  yaml:"competitor_days"`
	MaxPerCategory int `mapstructure:"max_per_category" yaml:"max_per_category"`
	MaxPerCompany  int `mapstructure:"max_per_company"  yaml:"max_per_company"`
	PauseMS        int `mapstructure:"pause_ms"         yaml:"pause_ms"`       // politeness delay between keyword searches
	TopKeywords    int `mapstructure:"top_keywords"     yaml:"top_keywords"`   // keywords extracted per article
	CacheTTLSec    int `mapstructure:"cache_ttl_sec"    yaml:"cache_ttl_sec"`  // collection result cache
}

// OutputConfig holds export settings.
type OutputConfig struct {
	Dir string `mapstructure:"dir" yaml:"dir"`
}

// APIConfig holds HTTP API server settings.
type APIConfig struct {
	Host        string   `mapstructure:"host"         yaml:"host"`
	Port        int      `mapstructure:"port"         yaml:"port"`
	CORSOrigins []string `mapstructure:"cors_origins" yaml:"cors_origins"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `mapstructure:"level"       yaml:"level"`  // "debug", "info", "warn", "error"
	Format     string `mapstructure:"format"      yaml:"format"` // "text" or "json"
	File       string `mapstructure:"file"        yaml:"file"`   // empty = stderr only
	MaxSizeMB  int    `mapstructure:"max_size_mb" yaml:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days" yaml:"max_age_days"`
	Compress   bool   `mapstructure:"compress"    yaml:"compress"`
}

// Load reads the configuration from file and environment variables.
// Config file search order:
//  1. ./config/config.yaml (project root)
//  2. ~/.newsprism/config.yaml (home directory)
//  3. /etc/newsprism/config.yaml (system)
//
// Environment variables override config file values.
// Format: NEWSPRISM_<SECTION>_<KEY>, e.g., NEWSPRISM_OUTPUT_DIR
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	setDefaults(v)

	// Config file settings
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(filepath.Join(homeDir(), ".newsprism"))
	v.AddConfigPath("/etc/newsprism")

	// Environment variable settings
	v.SetEnvPrefix("NEWSPRISM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required to exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found — that's fine, use defaults + env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetEnvPrefix("NEWSPRISM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets sensible defaults for all config values.
func setDefaults(v *viper.Viper) {
	// Search defaults
	v.SetDefault("search.base_url", "https://news.google.com/rss/search")
	v.SetDefault("search.language", "en")
	v.SetDefault("search.country", "US")
	v.SetDefault("search.timeout_sec", 15)
	v.SetDefault("search.over_fetch_factor", 3)
	v.SetDefault("search.rate_per_sec", 2)
	v.SetDefault("search.probe_queries", []string{"economy", "technology"})

	// Filter defaults
	v.SetDefault("filter.local_patterns", defaultLocalPatterns)
	v.SetDefault("filter.script_ratio", 0.3)

	// Crawl defaults
	v.SetDefault("crawl.enabled", true)
	v.SetDefault("crawl.user_agent", DefaultUserAgent)
	v.SetDefault("crawl.fetch_timeout_sec", 15)
	v.SetDefault("crawl.redirect_timeout_sec", 10)
	v.SetDefault("crawl.min_text_len", 100)
	v.SetDefault("crawl.rate_per_sec", 2.0)

	// Collect defaults
	v.SetDefault("collect.default_days", 7)
	v.SetDefault("collect.competitor_days", 14)
	v.SetDefault("collect.max_per_category", 3)
	v.SetDefault("collect.max_per_company", 3)
	v.SetDefault("collect.pause_ms", 500)
	v.SetDefault("collect.top_keywords", 5)
	v.SetDefault("collect.cache_ttl_sec", 1800) // 30 minutes

	// Output defaults
	v.SetDefault("output.dir", "output")

	// API defaults
	v.SetDefault("api.host", "0.0.0.0")
	v.SetDefault("api.port", 8080)
	v.SetDefault("api.cors_origins", []string{"http://localhost:3000"})

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("logging.file", "")
	v.SetDefault("logging.max_size_mb", 50)
	v.SetDefault("logging.max_backups", 3)
	v.SetDefault("logging.max_age_days", 28)
	v.SetDefault("logging.compress", false)
}

// homeDir returns the user's home directory.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
