package utils

import "strings"

// NormalizeURL returns the deduplication key for an article URL: the query
// string (everything from the first "?") is dropped and trailing slashes
// are removed.
func NormalizeURL(rawURL string) string {
	normalized, _, _ := strings.Cut(rawURL, "?")
	return strings.TrimRight(normalized, "/")
}
