package industry

import "strings"

// aliases maps external CRM industry labels (and Korean synonyms) onto
// configured industry keys. Declaration order matters: partial matching
// scans the list top to bottom.
var aliases = []struct {
	label    string
	industry string
}{
	// ── 화학 및 재료 ──
	{"chemicals", "화학 및 재료"},
	{"materials", "화학 및 재료"},
	{"mining & metals", "화학 및 재료"},
	{"plastics", "화학 및 재료"},
	{"화학", "화학 및 재료"},
	{"재료", "화학 및 재료"},
	{"소재", "화학 및 재료"},
	// ── 정보통신기술(ICT) ──
	{"information technology", "정보통신기술(ICT)"},
	{"computer software", "정보통신기술(ICT)"},
	{"internet", "정보통신기술(ICT)"},
	{"telecommunications", "정보통신기술(ICT)"},
	{"computer networking", "정보통신기술(ICT)"},
	{"it", "정보통신기술(ICT)"},
	{"소프트웨어", "정보통신기술(ICT)"},
	{"정보기술", "정보통신기술(ICT)"},
	{"통신", "정보통신기술(ICT)"},
	{"ict", "정보통신기술(ICT)"},
	// ── 전자(반도체 등) ──
	{"semiconductors", "전자(반도체 등)"},
	{"computer hardware", "전자(반도체 등)"},
	{"electrical/electronic manufacturing", "전자(반도체 등)"},
	{"consumer electronics", "전자(반도체 등)"},
	{"반도체", "전자(반도체 등)"},
	{"전자", "전자(반도체 등)"},
	{"디스플레이", "전자(반도체 등)"},
	// ── 자동화 ──
	{"industrial automation", "자동화"},
	{"machinery", "자동화"},
	{"manufacturing", "자동화"},
	{"로봇", "자동화"},
	{"자동화", "자동화"},
	{"제조", "자동화"},
	{"제조업", "자동화"},
	// ── 자동차 ──
	{"automotive", "자동차"},
	{"자동차", "자동차"},
	// ── 우주 및 국방 ──
	{"defense & space", "우주 및 국방"},
	{"military", "우주 및 국방"},
	{"aviation & aerospace", "우주 및 국방"},
	{"국방", "우주 및 국방"},
	{"우주", "우주 및 국방"},
	{"항공", "우주 및 국방"},
	{"방위", "우주 및 국방"},
	// ── 에너지 ──
	{"oil & energy", "에너지"},
	{"renewables & environment", "에너지"},
	{"utilities", "에너지"},
	{"에너지", "에너지"},
	{"전력", "에너지"},
	{"신재생", "에너지"},
	// ── 식음료 ──
	{"food & beverages", "식음료"},
	{"food production", "식음료"},
	{"restaurants", "식음료"},
	{"식품", "식음료"},
	{"음료", "식음료"},
	{"식음료", "식음료"},
	{"외식", "식음료"},
	// ── 소비재 및 서비스 ──
	{"retail", "소비재 및 서비스"},
	{"consumer goods", "소비재 및 서비스"},
	{"wholesale", "소비재 및 서비스"},
	{"e-commerce", "소비재 및 서비스"},
	{"marketing and advertising", "소비재 및 서비스"},
	{"online media", "소비재 및 서비스"},
	{"public relations", "소비재 및 서비스"},
	{"hospitality", "소비재 및 서비스"},
	{"luxury goods & jewelry", "소비재 및 서비스"},
	{"유통", "소비재 및 서비스"},
	{"이커머스", "소비재 및 서비스"},
	{"소매", "소비재 및 서비스"},
	{"소비재", "소비재 및 서비스"},
	{"마케팅", "소비재 및 서비스"},
	{"광고", "소비재 및 서비스"},
	{"서비스", "소비재 및 서비스"},
	// ── 생명과학 및 헬스케어 ──
	{"health care", "생명과학 및 헬스케어"},
	{"hospital & health care", "생명과학 및 헬스케어"},
	{"pharmaceuticals", "생명과학 및 헬스케어"},
	{"biotechnology", "생명과학 및 헬스케어"},
	{"medical devices", "생명과학 및 헬스케어"},
	{"헬스케어", "생명과학 및 헬스케어"},
	{"의료", "생명과학 및 헬스케어"},
	{"바이오", "생명과학 및 헬스케어"},
	{"제약", "생명과학 및 헬스케어"},
	{"생명과학", "생명과학 및 헬스케어"},
	// ── 교육 ──
	{"education management", "교육"},
	{"e-learning", "교육"},
	{"higher education", "교육"},
	{"primary/secondary education", "교육"},
	{"교육", "교육"},
	{"에듀테크", "교육"},
	// ── 농업 ──
	{"farming", "농업"},
	{"agriculture", "농업"},
	{"dairy", "농업"},
	{"fishery", "농업"},
	{"농업", "농업"},
	{"축산", "농업"},
	{"수산", "농업"},
	// ── 금융 (table has no finance bucket; route to consumer/services) ──
	{"financial services", "소비재 및 서비스"},
	{"banking", "소비재 및 서비스"},
	{"insurance", "소비재 및 서비스"},
	{"capital markets", "소비재 및 서비스"},
	{"investment management", "소비재 및 서비스"},
	{"금융", "소비재 및 서비스"},
	{"은행", "소비재 및 서비스"},
	{"보험", "소비재 및 서비스"},
}

// MapLabel converts a raw industry label from an external source (CRM
// enrichment data, user input) into a configured industry key. Falls back
// to the catch-all bucket when nothing matches.
func MapLabel(raw string) string {
	if raw == "" {
		return FallbackIndustry
	}
	rawLower := strings.TrimSpace(strings.ToLower(raw))
	if rawLower == "" {
		return FallbackIndustry
	}
	// Exact match first
	for _, a := range aliases {
		if a.label == rawLower {
			return a.industry
		}
	}
	// Partial match, either direction
	for _, a := range aliases {
		if strings.Contains(rawLower, a.label) || strings.Contains(a.label, rawLower) {
			return a.industry
		}
	}
	return FallbackIndustry
}
