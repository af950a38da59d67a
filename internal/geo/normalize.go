package geo

import (
	"regexp"
	"strings"

	"github.com/i474232898/smart-weather/internal/common"
)

var whitespacePattern = regexp.MustCompile(`\s+`)

// cityAliases maps informal or municipal short names to the official
// administrative-division form used for region matching and identity.
var cityAliases = map[string]string{
	"阿勒泰":  "阿勒泰地区",
	"阿勒泰市": "阿勒泰地区",
	"喀什":   "喀什地区",
	"喀什市":  "喀什地区",
	"伊宁":   "伊犁哈萨克自治州",
	"伊宁市":  "伊犁哈萨克自治州",
	"库尔勒":  "巴音郭楞蒙古自治州",
	"库尔勒市": "巴音郭楞蒙古自治州",
	"景洪":   "西双版纳傣族自治州",
	"景洪市":  "西双版纳傣族自治州",
}

// adminSuffixes are the recognized administrative-division markers.
var adminSuffixes = []string{"市", "县", "区", "地区", "自治州", "自治县"}

// autonomyMarkers disqualify a short name from getting the default suffix.
var autonomyMarkers = []string{"自治", "地区", "州", "盟"}

// NormalizeCityName canonicalizes a raw place name: whitespace is stripped,
// known aliases are expanded to their official form, and short names without
// an administrative suffix get the default "市" marker. Deterministic, no I/O.
func NormalizeCityName(raw string) string {
	name := strings.TrimSpace(raw)
	name = whitespacePattern.ReplaceAllString(name, "")

	if official, ok := cityAliases[name]; ok {
		return official
	}

	for _, suffix := range adminSuffixes {
		if strings.HasSuffix(name, suffix) {
			return name
		}
	}

	// Short bare names are almost always prefecture-level cities.
	if name != "" && len([]rune(name)) <= 3 && !common.HasAny(name, autonomyMarkers...) {
		name += "市"
	}

	return name
}
