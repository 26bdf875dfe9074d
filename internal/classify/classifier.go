package classify

import (
	"regexp"
	"sort"
	"strings"

	"github.com/prismworks/newsprism/pkg/models"
	"github.com/prismworks/newsprism/pkg/utils"
)

// ------------------------------------------------------------------
// Keyword-based article classifier (offline, deterministic).
// An article lands in whichever of the three coverage buckets its
// headline, description, and leading body text match most strongly.
// ------------------------------------------------------------------

// regulationKeywords flag legal and compliance coverage (bilingual,
// matched case-insensitively as substrings).
var regulationKeywords = []string{
	"규제", "법안", "법률", "의무화", "허가", "인허가", "금지",
	"과징금", "제재", "준수", "컴플라이언스", "감독", "감사",
	"regulation", "compliance", "ban", "mandate", "policy",
	"개정", "시행", "위반", "처벌", "가이드라인",
}

// competitorKeywords flag business-move coverage: earnings, deals,
// launches, funding.
var competitorKeywords = []string{
	"실적", "매출", "영업이익", "투자", "인수", "합병", "m&a",
	"출시", "런칭", "서비스 시작", "제휴", "파트너십", "협업",
	"ipo", "상장", "유치", "확장", "진출", "채용",
	"revenue", "acquisition", "launch", "partnership",
}

// trendKeywords flag market outlook and analysis coverage.
var trendKeywords = []string{
	"트렌드", "전망", "성장", "혁신", "미래", "변화", "동향",
	"시장", "분석", "보고서", "리포트", "예측", "확대",
	"trend", "forecast", "market", "growth", "innovation",
	"전환", "도입", "부상", "주목",
}

// ScoreText counts how many keywords from each category list appear in
// the text. Matching is case-insensitive; a keyword counts at most once
// per text regardless of repetition.
func ScoreText(text string) (regulation, competitor, trend int) {
	lower := strings.ToLower(text)
	regulation = countMatches(lower, regulationKeywords)
	competitor = countMatches(lower, competitorKeywords)
	trend = countMatches(lower, trendKeywords)
	return regulation, competitor, trend
}

func countMatches(lower string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			n++
		}
	}
	return n
}

// Classify assigns a category from the article's title, description,
// and the first 500 runes of its body. Regulation wins only when it
// strictly beats both other scores; competitor wins when it strictly
// beats trend; everything else, including an all-zero score, falls
// through to industry trend.
func Classify(title, description, fullText string) models.Category {
	combined := title + " " + description + " " + utils.TruncateRunes(fullText, 500)
	reg, comp, trend := ScoreText(combined)

	switch {
	case reg > comp && reg > trend:
		return models.CategoryRegulation
	case comp > trend:
		return models.CategoryCompetitor
	default:
		return models.CategoryIndustryTrend
	}
}

// ClassifyArticle scores the article's own text and stamps the
// resulting category and display label onto it.
func ClassifyArticle(a *models.Article) {
	a.Category = Classify(a.Title, a.Description, a.FullText)
	a.CategoryLabel = a.Category.Label()
}

// hangulWord matches runs of two or more Hangul syllables. Single
// syllables are almost always particles or fragments.
var hangulWord = regexp.MustCompile(`[가-힣]{2,}`)

// stopwords are particles, endings, and filler words frequent enough
// in news prose to crowd out real subject terms.
var stopwords = map[string]struct{}{
	"것이": {}, "하는": {}, "있는": {}, "이번": {}, "대한": {},
	"통해": {}, "위해": {}, "에서": {}, "으로": {}, "까지": {},
	"부터": {}, "에게": {}, "이라": {}, "하고": {}, "되는": {},
	"했다": {}, "한다": {}, "있다": {}, "된다": {}, "이다": {},
	"라고": {}, "에는": {},
}

// ExtractKeywords returns the topN most frequent word tokens in text,
// most frequent first. Ties keep the order in which the tokens first
// appeared in the text.
func ExtractKeywords(text string, topN int) []string {
	if text == "" || topN <= 0 {
		return nil
	}

	counts := make(map[string]int)
	var order []string
	for _, tok := range hangulWord.FindAllString(text, -1) {
		if _, skip := stopwords[tok]; skip {
			continue
		}
		if _, seen := counts[tok]; !seen {
			order = append(order, tok)
		}
		counts[tok]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > topN {
		order = order[:topN]
	}
	return order
}
