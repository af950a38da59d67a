package geo

// coreCities is the curated gazetteer of provincial capitals and popular
// travel destinations with authoritative weather identifiers. Anything not in
// here goes through region inference or the external probes.
var coreCities = map[string]string{
	// Provincial capitals.
	"北京": "101010100", "上海": "101020100", "天津": "101030100",
	"重庆": "101040100", "哈尔滨": "101050101", "长春": "101060101",
	"沈阳": "101070101", "呼和浩特": "101080101", "石家庄": "101090101",
	"太原": "101100101", "西安": "101110101", "济南": "101120101",
	"郑州": "101180101", "南京": "101190101", "合肥": "101220101",
	"杭州": "101210101", "福州": "101230101", "南昌": "101240101",
	"武汉": "101200101", "长沙": "101250101", "广州": "101280101",
	"南宁": "101300101", "海口": "101310101", "成都": "101270101",
	"贵阳": "101260101", "昆明": "101290101", "拉萨": "101140101",
	"兰州": "101160101", "西宁": "101150101", "银川": "101170101",
	"乌鲁木齐": "101130101",

	// Popular travel destinations.
	"深圳": "101280601", "厦门": "101230201", "青岛": "101120201",
	"大连": "101070201", "苏州": "101190401", "宁波": "101210401",
	"三亚": "101310201", "桂林": "101300501", "丽江": "101291401",
	"张家界": "101251101", "黄山": "101221001", "敦煌": "101160801",
	"大理": "101290201", "西双版纳": "101291601", "九寨沟": "101271906",
	"伊犁": "101131001",
}

// lookupGazetteer resolves a normalized name against the curated table. Names
// that picked up the default "市" suffix during normalization are also tried
// bare, since the table stores the customary short forms.
func lookupGazetteer(normalized string) (string, bool) {
	if id, ok := coreCities[normalized]; ok {
		return id, true
	}
	if bare, trimmed := trimCitySuffix(normalized); trimmed {
		if id, ok := coreCities[bare]; ok {
			return id, true
		}
	}
	return "", false
}

func trimCitySuffix(name string) (string, bool) {
	runes := []rune(name)
	if len(runes) > 1 && runes[len(runes)-1] == '市' {
		return string(runes[:len(runes)-1]), true
	}
	return name, false
}
