package weather

import (
	"crypto/md5"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/i474232898/smart-weather/internal/common"
	"github.com/i474232898/smart-weather/internal/geo"
)

// GeneratedSourceLabel marks forecasts that were fabricated rather than
// fetched, so downstream display can disclaim them.
const GeneratedSourceLabel = "智能天气生成"

type season string

const (
	seasonWinter season = "winter"
	seasonSpring season = "spring"
	seasonSummer season = "summer"
	seasonAutumn season = "autumn"
)

func seasonOf(month time.Month) season {
	switch month {
	case time.December, time.January, time.February:
		return seasonWinter
	case time.March, time.April, time.May:
		return seasonSpring
	case time.June, time.July, time.August:
		return seasonSummer
	default:
		return seasonAutumn
	}
}

// Seasonal shifts applied to the climate band midpoint and to each day.
var (
	seasonBaseAdjust  = map[season]int{seasonWinter: -8, seasonSpring: 2, seasonSummer: 10, seasonAutumn: 5}
	seasonDailyAdjust = map[season]int{seasonWinter: -5, seasonSpring: 2, seasonSummer: 8, seasonAutumn: 3}
)

// Weather category rotations per climate flavor. Dry regions bias toward
// clear skies, humid toward overcast and rain, cold toward snow.
var (
	dryCategories     = []string{"晴", "多云", "晴", "多云", "阴", "晴转多云"}
	humidCategories   = []string{"多云", "阴", "小雨", "阵雨", "晴", "多云转阴"}
	coldCategories    = []string{"晴", "多云", "阴", "小雪", "多云", "晴转多云"}
	defaultCategories = []string{"晴", "多云", "阴", "小雨", "阵雨", "晴转多云"}
)

var categoryTempAdjust = map[string]int{
	"晴": 3, "多云": 0, "阴": -2, "小雨": -3,
	"阵雨": -2, "中雨": -4, "大雨": -5,
	"小雪": -8, "中雪": -10, "大雪": -12,
}

var windDirections = []string{"东风", "南风", "西风", "北风", "东南风", "东北风", "西南风", "西北风"}

var weekdayLabels = [...]string{"周日", "周一", "周二", "周三", "周四", "周五", "周六"}

// categoryIcons is ordered: the first key contained in the category label
// wins, so compound labels like 晴转多云 map to their leading phase.
var categoryIcons = []struct {
	key  string
	icon string
}{
	{"晴", "☀️"}, {"多云", "⛅"}, {"阴", "☁️"},
	{"小雨", "🌦️"}, {"中雨", "🌧️"}, {"大雨", "💦"}, {"暴雨", "🌧️"},
	{"阵雨", "🌦️"}, {"雷阵雨", "⛈️"}, {"雷雨", "⛈️"},
	{"小雪", "🌨️"}, {"中雪", "❄️"}, {"大雪", "☃️"}, {"暴雪", "❄️"},
	{"雾", "🌫️"}, {"霾", "😷"}, {"沙尘", "💨"}, {"大风", "💨"},
	{"雨夹雪", "🌨️"}, {"冻雨", "🌨️"}, {"扬沙", "💨"},
}

func categoryIcon(category string) string {
	for _, entry := range categoryIcons {
		if common.HasAny(category, entry.key) {
			return entry.icon
		}
	}
	return "🌈"
}

// baseParams captures the per-call generation inputs derived from climate and
// season.
type baseParams struct {
	tempBase   int
	tempMin    int
	tempMax    int
	categories []string
	dry        bool
	humid      bool
	cold       bool
}

func paramsFor(climate geo.ClimateProfile, s season) baseParams {
	p := baseParams{
		tempBase: (climate.TempMin+climate.TempMax)/2 + seasonBaseAdjust[s],
		tempMin:  climate.TempMin,
		tempMax:  climate.TempMax,
		dry:      climate.Dry,
		humid:    climate.Humid,
		cold:     climate.Cold,
	}

	switch {
	case climate.Dry:
		p.categories = dryCategories
	case climate.Humid:
		p.categories = humidCategories
	case climate.Cold:
		p.categories = coldCategories
	default:
		p.categories = defaultCategories
	}

	return p
}

// identitySeed derives the identifier-level RNG seed. Kept separate from
// daySeed so the two can never collide on overlapping inputs.
func identitySeed(cityID string) int64 {
	sum := md5.Sum([]byte(cityID))
	n, err := strconv.ParseUint(hex.EncodeToString(sum[:])[:8], 16, 64)
	if err != nil {
		n = 0
	}
	return int64(n)
}

// daySeed derives the per-day RNG seed. It mixes in the city identifier so
// two cities sharing a climate profile still get distinct day sequences.
func daySeed(cityID string, tempBase, dayOffset int) int64 {
	sum := md5.Sum([]byte(fmt.Sprintf("%s|%d|%d", cityID, tempBase, dayOffset)))
	return int64(binary.BigEndian.Uint64(sum[:8]) >> 1)
}

// Generator fabricates physically-plausible multi-day forecasts. Output is
// fully deterministic given (identifier, days, current date).
type Generator struct {
	now func() time.Time
}

// NewGenerator creates a Generator on the wall clock.
func NewGenerator() *Generator {
	return &Generator{now: time.Now}
}

// NewGeneratorWithClock creates a Generator with an explicit clock, letting
// tests pin the season and the forecast dates.
func NewGeneratorWithClock(now func() time.Time) *Generator {
	return &Generator{now: now}
}

// Generate fabricates a days-long forecast for cityID. regionHint, when
// non-empty, names the macro-region the identifier was derived from;
// otherwise the region is recovered from the identifier's 2-digit prefix, and
// failing that a generic temperate profile applies.
func (g *Generator) Generate(cityID string, days int, regionHint string) ForecastBundle {
	if days < 1 {
		days = 1
	}

	now := g.now()
	s := seasonOf(now.Month())
	climate := climateFor(cityID, regionHint)
	params := paramsFor(climate, s)

	idRNG := rand.New(rand.NewSource(identitySeed(cityID)))

	forecast := make([]ForecastDay, 0, days)
	for i := 0; i < days; i++ {
		date := now.AddDate(0, 0, i)
		forecast = append(forecast, generateDay(cityID, params, i, s, date))
	}

	return ForecastBundle{
		Current: CurrentWeather{
			Temp:      params.tempBase,
			FeelsLike: params.tempBase + idRNG.Intn(4),
			Text:      forecast[0].TextDay,
			Humidity:  forecast[0].Humidity,
		},
		Forecast:   forecast,
		UpdateTime: now.Format("2006-01-02 15:04:05"),
		Source:     GeneratedSourceLabel,
	}
}

func climateFor(cityID, regionHint string) geo.ClimateProfile {
	if regionHint != "" {
		return geo.RegionClimate(regionHint)
	}
	if region, ok := geo.RegionForPrefix(geo.IdentifierPrefix(cityID)); ok {
		return geo.RegionClimate(region)
	}
	return geo.RegionClimate("")
}

func generateDay(cityID string, params baseParams, dayOffset int, s season, date time.Time) ForecastDay {
	rng := rand.New(rand.NewSource(daySeed(cityID, params.tempBase, dayOffset)))

	category := params.categories[(dayOffset*7)%len(params.categories)]
	nightOptions := []string{category, "晴", "多云", "阴"}
	nightCategory := nightOptions[rng.Intn(len(nightOptions))]

	adjust := categoryTempAdjust[category] + seasonDailyAdjust[s]

	dailyMax := params.tempBase + adjust + rng.Intn(6)
	dailyMin := dailyMax - (5 + rng.Intn(11))

	dailyMax = common.ClampInt(dailyMax, params.tempMin, params.tempMax)
	dailyMin = common.ClampInt(dailyMin, params.tempMin-5, params.tempMax-10)

	var humidity int
	switch {
	case common.HasAny(category, "雨"):
		humidity = 70 + rng.Intn(26)
	case params.dry:
		humidity = 30 + rng.Intn(31)
	case params.humid:
		humidity = 60 + rng.Intn(26)
	default:
		humidity = 50 + rng.Intn(26)
	}

	precip := "0"
	switch {
	case common.HasAny(category, "雨"):
		switch {
		case common.HasAny(category, "小"):
			precip = strconv.Itoa(1 + rng.Intn(10))
		case common.HasAny(category, "中"):
			precip = strconv.Itoa(10 + rng.Intn(16))
		case common.HasAny(category, "大"):
			precip = strconv.Itoa(25 + rng.Intn(26))
		default:
			precip = strconv.Itoa(1 + rng.Intn(5))
		}
	case common.HasAny(category, "雪"):
		precip = strconv.Itoa(1 + rng.Intn(20))
	}

	windDir := windDirections[rng.Intn(len(windDirections))]

	var windScale string
	if common.HasAny(category, "雨", "雪") {
		windScale = strconv.Itoa(2 + rng.Intn(4))
	} else {
		windScale = strconv.Itoa(1 + rng.Intn(3))
	}

	var uvIndex string
	switch {
	case category == "晴":
		uvIndex = strconv.Itoa(6 + rng.Intn(5))
	case common.HasAny(category, "多云"):
		uvIndex = strconv.Itoa(4 + rng.Intn(4))
	default:
		uvIndex = strconv.Itoa(2 + rng.Intn(4))
	}

	return ForecastDay{
		Date:      date.Format("2006-01-02"),
		Weekday:   weekdayLabels[date.Weekday()],
		TempMax:   dailyMax,
		TempMin:   dailyMin,
		TextDay:   category,
		TextNight: nightCategory,
		IconDay:   categoryIcon(category),
		Humidity:  humidity,
		WindDir:   windDir,
		WindScale: windScale,
		Precip:    precip,
		UVIndex:   uvIndex,
		Sunrise:   "06:30",
		Sunset:    "18:30",
	}
}
