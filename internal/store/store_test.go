package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prismworks/newsprism/pkg/models"
)

func sampleArticles() []models.Article {
	return []models.Article{
		{
			Title:         "배터리 시장 전망",
			URL:           "https://example.com/a1",
			Source:        "Example Wire",
			Category:      models.CategoryIndustryTrend,
			CategoryLabel: "산업 트렌드",
			Industry:      "에너지",
			Keywords:      []string{"배터리", "시장"},
			WordCount:     240,
			CrawlSuccess:  true,
		},
		{
			Title:         "Alpha acquires Beta",
			URL:           "https://example.com/a2",
			Category:      models.CategoryCompetitor,
			CategoryLabel: "경쟁사 동향",
			Company:       "알파사",
		},
	}
}

func TestExportAndLoad(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)

	path := filepath.Join(dir, "sub", "news.json")
	got, err := s.Export(sampleArticles(), path)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if got != path {
		t.Errorf("expected returned path %q, got %q", path, got)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	if !strings.Contains(string(raw), "배터리 시장 전망") {
		t.Error("expected Korean text kept literal in export")
	}
	if !strings.Contains(string(raw), "  \"title\"") {
		t.Error("expected two-space indentation")
	}

	loaded, err := s.Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(loaded))
	}
	if loaded[0].Title != "배터리 시장 전망" || loaded[0].Category != models.CategoryIndustryTrend {
		t.Errorf("unexpected first article %+v", loaded[0])
	}
	if loaded[1].Company != "알파사" {
		t.Errorf("expected company preserved, got %q", loaded[1].Company)
	}
	if len(loaded[0].Keywords) != 2 || loaded[0].Keywords[0] != "배터리" {
		t.Errorf("expected keywords preserved, got %v", loaded[0].Keywords)
	}
}

func TestExportDefaultPath(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)

	path, err := s.Export(sampleArticles(), "")
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	base := filepath.Base(path)
	if !strings.HasPrefix(base, "news_") || !strings.HasSuffix(base, ".json") {
		t.Errorf("expected timestamped name news_*.json, got %q", base)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("expected export under store dir %q, got %q", dir, path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected export file on disk: %v", err)
	}
}

func TestExportEmptyList(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)

	path, err := s.Export(nil, "")
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	loaded, err := s.Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(loaded) != 0 {
		t.Errorf("expected empty export to round-trip, got %d articles", len(loaded))
	}
}

func TestLoadMissingFile(t *testing.T) {
	s := NewStore(t.TempDir())
	if _, err := s.Load("does-not-exist.json"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadMalformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := NewStore(dir)
	if _, err := s.Load(path); err == nil {
		t.Error("expected error for malformed export")
	}
}
