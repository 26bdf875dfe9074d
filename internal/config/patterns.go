package config

// DefaultUserAgent is the browser-like user agent sent on body-extraction
// fetches. Some outlets serve bot UAs a paywall interstitial.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// defaultLocalPatterns lists domain and publisher-name substrings used to
// screen out Korean outlets when searching international coverage. Matched
// case-insensitively against "source url title".
var defaultLocalPatterns = []string{
	// Korean domains
	".kr", "daum.net", "naver.com", "chosun.com", "joongang.co",
	"donga.com", "hankyung.com", "mk.co", "sedaily.com", "etnews.com",
	"zdnet.co.kr", "bloter.net", "platum.kr", "venturesquare.net",
	"aitimes.com", "aitimes.kr", "techm.kr", "byline.network",
	// Korean publisher names
	"조선일보", "중앙일보", "동아일보", "한국경제", "매일경제",
	"서울경제", "전자신문", "지디넷코리아", "블로터", "플래텀",
	"벤처스퀘어", "AI타임스", "테크엠", "바이라인네트워크",
	"연합뉴스", "KBS", "MBC", "SBS", "JTBC", "YTN",
	"v.daum.net", "news.naver.com", "n.news.naver.com",
	"Vietnam.vn", // Vietnamese-language source, also excluded
}
