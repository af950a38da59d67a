package geo

import (
	"regexp"
	"strings"
)

// ClimateProfile describes a macro-region's expected weather character, used
// to bias synthetic generation.
type ClimateProfile struct {
	Type    string // e.g. "温带大陆性"
	TempMin int    // °C, lower bound of the plausible band
	TempMax int    // °C, upper bound of the plausible band
	Dry     bool
	Humid   bool
	Cold    bool
}

// RegionProfile is the result of classifying a place name into a macro-region.
type RegionProfile struct {
	Region   string
	BaseCity string
	Climate  ClimateProfile
}

// regionSignature pairs a region label with the pattern of city and prefecture
// names that identify it. Order matters: first match wins.
type regionSignature struct {
	region  string
	pattern *regexp.Regexp
}

var regionSignatures = []regionSignature{
	{"新疆", regexp.MustCompile(`新疆|乌鲁木齐|喀什|伊犁|阿勒泰|和田|阿克苏|吐鲁番|哈密|克拉玛依|石河子|昌吉|巴音郭楞|博尔塔拉|克孜勒苏`)},
	{"西藏", regexp.MustCompile(`西藏|拉萨|日喀则|林芝|昌都|那曲|阿里|山南`)},
	{"云南", regexp.MustCompile(`云南|昆明|大理|丽江|西双版纳|香格里拉|腾冲|普洱|玉溪|曲靖`)},
	{"四川", regexp.MustCompile(`四川|成都|九寨沟|峨眉山|乐山|都江堰|稻城|亚丁|甘孜|阿坝`)},
	{"内蒙古", regexp.MustCompile(`内蒙古|呼和浩特|呼伦贝尔|鄂尔多斯|包头|锡林郭勒|阿拉善`)},
	{"黑龙江", regexp.MustCompile(`黑龙江|哈尔滨|漠河|雪乡|牡丹江|齐齐哈尔|大庆`)},
}

// defaultClimate is the temperate-monsoon profile applied to unmatched regions.
var defaultClimate = ClimateProfile{Type: "温带季风", TempMin: -5, TempMax: 35, Humid: true}

var regionClimates = map[string]ClimateProfile{
	"新疆":  {Type: "温带大陆性", TempMin: -20, TempMax: 35, Dry: true},
	"西藏":  {Type: "高原山地", TempMin: -15, TempMax: 25, Dry: true},
	"云南":  {Type: "亚热带高原", TempMin: 5, TempMax: 28, Humid: true},
	"四川":  {Type: "亚热带湿润", TempMin: 5, TempMax: 32, Humid: true},
	"内蒙古": {Type: "温带大陆性", TempMin: -25, TempMax: 30, Dry: true},
	"黑龙江": {Type: "寒温带", TempMin: -30, TempMax: 28, Cold: true},
	"青海":  {Type: "高原大陆性", TempMin: -15, TempMax: 25, Dry: true},
	"甘肃":  {Type: "温带大陆性", TempMin: -10, TempMax: 32, Dry: true},
	"宁夏":  {Type: "温带大陆性", TempMin: -15, TempMax: 30, Dry: true},
}

// regionBaseCities maps each region to its capital or hub, kept as a
// human-readable provenance annotation only.
var regionBaseCities = map[string]string{
	"新疆": "乌鲁木齐", "西藏": "拉萨", "云南": "昆明",
	"四川": "成都", "内蒙古": "呼和浩特", "黑龙江": "哈尔滨",
	"青海": "西宁", "甘肃": "兰州", "宁夏": "银川",
	"陕西": "西安", "山西": "太原", "河北": "石家庄",
	"河南": "郑州", "山东": "济南", "江苏": "南京",
	"浙江": "杭州", "安徽": "合肥", "福建": "福州",
	"江西": "南昌", "湖北": "武汉", "湖南": "长沙",
	"广东": "广州", "广西": "南宁", "海南": "海口",
	"贵州": "贵阳", "辽宁": "沈阳", "吉林": "长春",
}

// provinceKeywords lists ethnic-group and prefecture markers that hint at a
// province when no signature matched directly.
var provinceKeywords = map[string][]string{
	"新疆":  {"维吾尔", "哈萨克", "柯尔克孜", "塔吉克", "乌孜别克", "塔塔尔", "俄罗斯"},
	"西藏":  {"藏族", "拉萨", "日喀则", "林芝", "昌都", "那曲", "阿里"},
	"云南":  {"彝族", "白族", "哈尼族", "傣族", "傈僳族", "拉祜族", "佤族"},
	"四川":  {"藏族", "彝族", "羌族", "甘孜", "阿坝", "凉山"},
	"青海":  {"藏族", "回族", "土族", "撒拉族", "海北", "海西", "黄南"},
	"甘肃":  {"回族", "藏族", "东乡族", "保安族", "裕固族", "甘南", "临夏"},
	"内蒙古": {"蒙古族", "鄂伦春族", "鄂温克族", "达斡尔族", "呼伦贝尔", "锡林郭勒"},
}

// keywordProvinces fixes the order candidate provinces are tried in the
// secondary heuristic.
var keywordProvinces = []string{"新疆", "西藏", "云南", "四川", "青海", "甘肃", "内蒙古"}

var provinceShortForms = map[string]string{
	"新疆": "新", "西藏": "藏", "云南": "云", "四川": "川",
	"青海": "青", "甘肃": "甘", "内蒙古": "蒙",
}

// regionPrefixes is the forward region→identifier-prefix table. The reverse
// mapping used when recovering a region from an identifier is derived from it
// at init, so the two cannot drift apart.
var regionPrefixes = map[string]string{
	"新疆": "13", "西藏": "14", "云南": "29", "四川": "27",
	"内蒙古": "08", "黑龙江": "05", "青海": "15", "甘肃": "16",
	"宁夏": "17", "陕西": "11", "山西": "10", "河北": "09",
	"河南": "18", "山东": "12", "江苏": "19", "浙江": "21",
	"安徽": "22", "福建": "23", "江西": "24", "湖北": "20",
	"湖南": "25", "广东": "28", "广西": "30", "海南": "31",
	"贵州": "26", "辽宁": "07", "吉林": "06",
}

var prefixRegions = make(map[string]string, len(regionPrefixes))

func init() {
	for region, prefix := range regionPrefixes {
		prefixRegions[prefix] = region
	}
}

// IdentifyRegion classifies a normalized place name into a macro-region.
// Signature patterns are tried first; failing that, autonomous-division names
// are matched against per-province ethnic and prefecture keywords. Returns nil
// when nothing matches.
func IdentifyRegion(name string) *RegionProfile {
	for _, sig := range regionSignatures {
		if sig.pattern.MatchString(name) {
			return profileFor(sig.region)
		}
	}

	// Autonomous divisions are usually in the western provinces; try to place
	// them by their ethnic or prefecture markers.
	if strings.Contains(name, "自治州") || strings.Contains(name, "自治县") || strings.Contains(name, "地区") {
		for _, province := range keywordProvinces {
			if likelyInProvince(name, province) {
				return profileFor(province)
			}
		}
	}

	return nil
}

func profileFor(region string) *RegionProfile {
	return &RegionProfile{
		Region:   region,
		BaseCity: RegionBaseCity(region),
		Climate:  RegionClimate(region),
	}
}

func likelyInProvince(name, province string) bool {
	for _, keyword := range provinceKeywords[province] {
		if strings.Contains(name, keyword) {
			return true
		}
	}
	if short, ok := provinceShortForms[province]; ok && strings.Contains(name, short) {
		return true
	}
	return false
}

// RegionClimate returns the climate profile for a region label, defaulting to
// a temperate-monsoon profile for unknown labels.
func RegionClimate(region string) ClimateProfile {
	if c, ok := regionClimates[region]; ok {
		return c
	}
	return defaultClimate
}

// RegionBaseCity returns the region's representative hub city.
func RegionBaseCity(region string) string {
	if city, ok := regionBaseCities[region]; ok {
		return city
	}
	return "北京"
}

// RegionPrefix returns the 2-digit identifier prefix for a region, or the
// synthetic prefix "99" when the region has none.
func RegionPrefix(region string) string {
	if p, ok := regionPrefixes[region]; ok {
		return p
	}
	return PureSyntheticPrefix
}

// RegionForPrefix reverses RegionPrefix; ok is false for unknown prefixes.
func RegionForPrefix(prefix string) (string, bool) {
	region, ok := prefixRegions[prefix]
	return region, ok
}
