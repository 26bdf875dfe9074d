package utils

import (
	"time"
)

// KST is the Korea Standard Time location (UTC+9).
var KST *time.Location

func init() {
	var err error
	KST, err = time.LoadLocation("Asia/Seoul")
	if err != nil {
		// Fallback: create fixed zone if tz database is not available
		KST = time.FixedZone("KST", 9*60*60)
	}
}

// NowKST returns the current time in KST.
func NowKST() time.Time {
	return time.Now().In(KST)
}

// ToKST converts a time.Time to KST.
func ToKST(t time.Time) time.Time {
	return t.In(KST)
}

// ParseDateKST parses a date string in "2006-01-02" format and returns it in KST.
func ParseDateKST(dateStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, KST)
}

// FormatDateKST formats a time.Time to "2006-01-02" in KST.
func FormatDateKST(t time.Time) string {
	return t.In(KST).Format("2006-01-02")
}

// FormatDateTimeKST formats a time.Time to "2006-01-02 15:04:05 KST".
func FormatDateTimeKST(t time.Time) string {
	return t.In(KST).Format("2006-01-02 15:04:05 KST")
}

// FormatISOKST formats a time.Time as ISO-8601 in KST,
// e.g. "2026-08-23T14:05:00+09:00". Used for crawl timestamps.
func FormatISOKST(t time.Time) string {
	return t.In(KST).Format(time.RFC3339)
}

// ExportStamp formats a time.Time as the compact "YYYYMMDD_HHMM" stamp
// embedded in export file names.
func ExportStamp(t time.Time) string {
	return t.In(KST).Format("20060102_1504")
}
