package utils

// HangulRatio returns the fraction of runes in s that are Hangul syllables
// (U+AC00..U+D7A3). Spaces and punctuation count toward the denominator.
// Returns 0 for an empty string.
func HangulRatio(s string) float64 {
	total := 0
	hangul := 0
	for _, r := range s {
		total++
		if r >= 0xAC00 && r <= 0xD7A3 {
			hangul++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(hangul) / float64(total)
}

// TruncateRunes returns s truncated to at most n runes.
func TruncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
