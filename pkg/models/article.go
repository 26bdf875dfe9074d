package models

// Category identifies the topical bucket an article is filed under.
type Category string

const (
	CategoryIndustryTrend Category = "industry_trend"
	CategoryCompetitor    Category = "competitor"
	CategoryRegulation    Category = "regulation"
	CategoryCompany       Category = "company"
)

// Label returns the Korean display name for the category.
func (c Category) Label() string {
	switch c {
	case CategoryRegulation:
		return "규제 변화"
	case CategoryCompetitor:
		return "경쟁사 동향"
	case CategoryCompany:
		return "기업 뉴스"
	default:
		return "산업 트렌드"
	}
}

// Valid reports whether c is one of the four known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryIndustryTrend, CategoryCompetitor, CategoryRegulation, CategoryCompany:
		return true
	}
	return false
}

// Article represents a single collected news article. It is created from a
// search hit and filled in as extraction and classification complete.
type Article struct {
	Title         string   `json:"title"`
	URL           string   `json:"url"`
	Source        string   `json:"source,omitempty"`
	PublishedAt   string   `json:"published_at,omitempty"` // feed-reported, not always parseable
	Description   string   `json:"description,omitempty"`
	FullText      string   `json:"full_text,omitempty"`
	Author        string   `json:"author,omitempty"`
	Category      Category `json:"category"`
	CategoryLabel string   `json:"category_label"`
	Industry      string   `json:"industry,omitempty"`
	Company       string   `json:"company,omitempty"`
	Language      string   `json:"language,omitempty"` // ISO 639-3 code detected from body text
	Keywords      []string `json:"keywords,omitempty"`
	WordCount     int      `json:"word_count"` // rune count of FullText
	CrawlSuccess  bool     `json:"crawl_success"`
	CrawledAt     string   `json:"crawled_at,omitempty"` // ISO-8601, stamped when the article is built from a search hit
}

// SearchResult is a raw candidate returned by the search feed, prior to
// extraction and classification.
type SearchResult struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Source      string `json:"source,omitempty"`
	PublishedAt string `json:"published_at,omitempty"`
	Description string `json:"description,omitempty"`
}

// ExtractResult is the outcome of a body-extraction attempt. Failures are
// values, not errors: the collector keeps the article either way.
type ExtractResult struct {
	FullText  string `json:"full_text,omitempty"`
	Title     string `json:"title,omitempty"`
	Author    string `json:"author,omitempty"`
	Date      string `json:"date,omitempty"`
	Language  string `json:"language,omitempty"`
	WordCount int    `json:"word_count"`
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
}

// CollectionBundle is the per-company result keyed by category. All is the
// concatenation of the four lists in collection order.
type CollectionBundle struct {
	IndustryTrend []Article `json:"industry_trend"`
	Competitor    []Article `json:"competitor"`
	Regulation    []Article `json:"regulation"`
	CompanyNews   []Article `json:"company_news"`
	All           []Article `json:"all"`
}

// Count returns the total number of articles across the four category lists.
func (b *CollectionBundle) Count() int {
	return len(b.IndustryTrend) + len(b.Competitor) + len(b.Regulation) + len(b.CompanyNews)
}
