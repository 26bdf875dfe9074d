package industry

// FallbackIndustry is the catch-all bucket substituted for unknown industries.
const FallbackIndustry = "기타"

// builtinOrder preserves the table's declaration order for display.
var builtinOrder = []string{
	"화학 및 재료",
	"정보통신기술(ICT)",
	"전자(반도체 등)",
	"자동화",
	"자동차",
	"우주 및 국방",
	"에너지",
	"식음료",
	"소비재 및 서비스",
	"생명과학 및 헬스케어",
	"교육",
	"농업",
	FallbackIndustry,
}

// builtinIndustries maps the twelve deta.kr industry buckets plus the
// catch-all to English search queries targeting international sources.
var builtinIndustries = map[string]Keywords{
	"화학 및 재료": {
		Trend: []string{
			"chemical industry trend 2026", "advanced materials innovation",
			"specialty chemicals market", "green chemistry", "polymer technology",
		},
		Regulation: []string{
			"REACH regulation", "chemical safety regulation", "PFAS ban",
			"hazardous substance regulation", "carbon border adjustment",
		},
		Competitor: []string{"chemical plant", "materials acquisition", "R&D investment", "partnership"},
	},
	"정보통신기술(ICT)": {
		Trend: []string{
			"AI industry trend 2026", "enterprise SaaS market", "cloud transformation",
			"generative AI enterprise adoption", "software industry outlook",
		},
		Regulation: []string{
			"AI regulation policy", "EU AI Act enforcement", "data protection law",
			"tech platform regulation", "digital privacy regulation",
		},
		Competitor: []string{"funding", "product launch", "acquisition", "earnings"},
	},
	"전자(반도체 등)": {
		Trend: []string{
			"semiconductor market trend 2026", "chip manufacturing expansion",
			"AI chip demand", "display technology OLED", "consumer electronics outlook",
		},
		Regulation: []string{
			"CHIPS Act", "semiconductor export control", "rare earth regulation",
			"electronics waste regulation", "trade restriction semiconductor",
		},
		Competitor: []string{"fab construction", "chip revenue", "technology node", "foundry"},
	},
	"자동화": {
		Trend: []string{
			"industrial automation trend 2026", "smart factory robotics",
			"Industry 4.0 adoption", "collaborative robot cobot", "manufacturing AI",
		},
		Regulation: []string{
			"robot safety regulation", "industrial safety standard",
			"automation labor regulation", "machine directive EU",
		},
		Competitor: []string{"factory expansion", "automation contract", "new technology", "partnership"},
	},
	"자동차": {
		Trend: []string{
			"electric vehicle market 2026", "autonomous driving technology",
			"EV battery innovation", "connected car trend", "automotive supply chain",
		},
		Regulation: []string{
			"EV subsidy policy", "emission regulation Euro 7", "autonomous vehicle regulation",
			"battery recycling mandate", "vehicle safety standard",
		},
		Competitor: []string{"vehicle sales", "EV launch", "auto partnership", "factory investment"},
	},
	"우주 및 국방": {
		Trend: []string{
			"space industry commercial 2026", "defense technology trend",
			"satellite constellation", "hypersonic technology", "space launch market",
		},
		Regulation: []string{
			"defense procurement policy", "ITAR regulation", "space debris regulation",
			"arms export control", "dual use technology regulation",
		},
		Competitor: []string{"defense contract", "satellite launch", "space funding", "military acquisition"},
	},
	"에너지": {
		Trend: []string{
			"renewable energy trend 2026", "hydrogen economy", "energy storage battery",
			"carbon capture technology", "nuclear energy revival",
		},
		Regulation: []string{
			"carbon emission regulation", "renewable energy mandate", "ESG compliance",
			"energy transition policy", "carbon tax regulation",
		},
		Competitor: []string{"energy project", "solar wind investment", "power plant", "clean energy funding"},
	},
	"식음료": {
		Trend: []string{
			"food technology trend 2026", "alternative protein market",
			"food safety innovation", "beverage industry outlook", "sustainable packaging food",
		},
		Regulation: []string{
			"food labeling regulation", "FDA food safety", "sugar tax policy",
			"food additive regulation", "organic certification standard",
		},
		Competitor: []string{"food brand launch", "beverage acquisition", "F&B revenue", "restaurant chain"},
	},
	"소비재 및 서비스": {
		Trend: []string{
			"consumer goods trend 2026", "retail technology innovation",
			"D2C brand growth", "ecommerce market outlook", "luxury market trend",
		},
		Regulation: []string{
			"consumer protection regulation", "ecommerce platform regulation",
			"product safety standard", "cross-border commerce regulation",
		},
		Competitor: []string{"brand revenue", "retail expansion", "marketplace growth", "consumer spending"},
	},
	"생명과학 및 헬스케어": {
		Trend: []string{
			"digital health trend 2026", "biotech drug pipeline", "precision medicine",
			"AI in healthcare", "gene therapy advancement",
		},
		Regulation: []string{
			"FDA approval drug", "medical device regulation", "clinical trial regulation",
			"health data privacy HIPAA", "telehealth regulation",
		},
		Competitor: []string{"clinical trial results", "FDA approval", "biotech funding", "pharma acquisition"},
	},
	"교육": {
		Trend: []string{
			"edtech market trend 2026", "AI in education", "online learning platform",
			"corporate training technology", "education technology innovation",
		},
		Regulation: []string{
			"education data privacy", "AI education regulation", "online learning accreditation",
			"student data protection FERPA",
		},
		Competitor: []string{"edtech funding", "education platform launch", "university partnership", "LMS"},
	},
	"농업": {
		Trend: []string{
			"agritech trend 2026", "precision agriculture", "smart farming technology",
			"agricultural drone", "vertical farming market",
		},
		Regulation: []string{
			"agricultural subsidy policy", "pesticide regulation", "GMO regulation",
			"sustainable agriculture standard", "food supply chain regulation",
		},
		Competitor: []string{"agritech investment", "farm equipment", "crop technology", "agriculture acquisition"},
	},
	FallbackIndustry: {
		Trend: []string{
			"global business trend 2026", "digital transformation", "industry outlook",
		},
		Regulation: []string{
			"corporate regulation change", "ESG regulation", "antitrust regulation",
		},
		Competitor: []string{"growth", "investment", "innovation"},
	},
}
