// Package store persists collection results as timestamped JSON
// exports and reads them back.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/prismworks/newsprism/internal/logging"
	"github.com/prismworks/newsprism/pkg/models"
	"github.com/prismworks/newsprism/pkg/utils"
)

// Store writes article exports under a base directory.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir. The directory is created
// lazily on first export.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Export writes articles to path as indented JSON with Korean text
// kept literal. An empty path derives news_<yyyymmdd_hhmm>.json under
// the store directory. Returns the path written.
func (s *Store) Export(articles []models.Article, path string) (string, error) {
	if path == "" {
		path = filepath.Join(s.dir, fmt.Sprintf("news_%s.json", utils.ExportStamp(utils.NowKST())))
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create export dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(articles); err != nil {
		return "", fmt.Errorf("encode articles: %w", err)
	}

	logging.Log.Infof("exported %d articles to %s", len(articles), path)
	return path, nil
}

// Load reads a previous export back into memory.
func (s *Store) Load(path string) ([]models.Article, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open export: %w", err)
	}
	defer f.Close()

	var articles []models.Article
	if err := json.NewDecoder(f).Decode(&articles); err != nil {
		return nil, fmt.Errorf("decode export %s: %w", path, err)
	}
	return articles, nil
}
