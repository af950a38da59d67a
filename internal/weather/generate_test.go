package weather

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/smart-weather/internal/geo"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

var testNow = time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)

func TestGenerateDeterministic(t *testing.T) {
	g := NewGeneratorWithClock(fixedClock(testNow))

	a := g.Generate("13a1b2c3d4", 7, "新疆")
	b := g.Generate("13a1b2c3d4", 7, "新疆")
	assert.Equal(t, a, b, "same identifier, days and date must reproduce the forecast")
}

func TestGenerateDayCountAndDates(t *testing.T) {
	g := NewGeneratorWithClock(fixedClock(testNow))

	bundle := g.Generate("99123456", 10, "")
	require.Len(t, bundle.Forecast, 10)

	for i, day := range bundle.Forecast {
		assert.Equal(t, testNow.AddDate(0, 0, i).Format("2006-01-02"), day.Date)
		assert.NotEmpty(t, day.Weekday)
		assert.Equal(t, "06:30", day.Sunrise)
		assert.Equal(t, "18:30", day.Sunset)
	}
}

func TestGenerateCurrentMirrorsDayZero(t *testing.T) {
	g := NewGeneratorWithClock(fixedClock(testNow))

	bundle := g.Generate("101010100", 7, "")
	assert.Equal(t, bundle.Forecast[0].TextDay, bundle.Current.Text)
	assert.Equal(t, bundle.Forecast[0].Humidity, bundle.Current.Humidity)
	assert.GreaterOrEqual(t, bundle.Current.FeelsLike, bundle.Current.Temp)
	assert.Equal(t, GeneratedSourceLabel, bundle.Source)
}

func TestGenerateHonorsDryClimate(t *testing.T) {
	g := NewGeneratorWithClock(fixedClock(testNow))
	climate := geo.RegionClimate("新疆")

	bundle := g.Generate("13a1b2c3d4", 30, "新疆")
	require.Len(t, bundle.Forecast, 30)

	var humiditySum int
	for _, day := range bundle.Forecast {
		humiditySum += day.Humidity

		assert.GreaterOrEqual(t, day.TempMax, climate.TempMin)
		assert.LessOrEqual(t, day.TempMax, climate.TempMax)
		assert.GreaterOrEqual(t, day.TempMin, climate.TempMin-5)
		assert.LessOrEqual(t, day.TempMin, day.TempMax)
		assert.Equal(t, "0", day.Precip, "dry rotation has no rain days")
	}

	mean := float64(humiditySum) / float64(len(bundle.Forecast))
	assert.Less(t, mean, 65.0, "dry climate must skew humidity low")
}

func TestGenerateRecoversRegionFromPrefix(t *testing.T) {
	g := NewGeneratorWithClock(fixedClock(testNow))

	// 05 is the cold 黑龙江 prefix; no hint supplied.
	bundle := g.Generate("05deadbeef", 6, "")

	// Cold rotation: index (offset*7) mod 6 walks the list one step per day.
	for i, day := range bundle.Forecast {
		assert.Equal(t, coldCategories[(i*7)%len(coldCategories)], day.TextDay)
	}
}

func TestGenerateUnknownPrefixUsesDefaultClimate(t *testing.T) {
	g := NewGeneratorWithClock(fixedClock(testNow))

	bundle := g.Generate("99123456", 6, "")
	for i, day := range bundle.Forecast {
		assert.Equal(t, humidCategories[(i*7)%len(humidCategories)], day.TextDay)
	}
}

func TestGenerateDistinctCitiesDiverge(t *testing.T) {
	g := NewGeneratorWithClock(fixedClock(testNow))

	a := g.Generate("13a1b2c3d4", 7, "新疆")
	b := g.Generate("13ffee0011", 7, "新疆")
	assert.NotEqual(t, a.Forecast, b.Forecast, "different identifiers must not share a day sequence")
}

func TestGenerateRainDaysAreWet(t *testing.T) {
	g := NewGeneratorWithClock(fixedClock(testNow))

	bundle := g.Generate("29c0ffee00", 30, "云南")
	var sawRain bool
	for _, day := range bundle.Forecast {
		if day.TextDay == "小雨" || day.TextDay == "阵雨" {
			sawRain = true
			assert.GreaterOrEqual(t, day.Humidity, 70)
			assert.NotEqual(t, "0", day.Precip)
		}
	}
	require.True(t, sawRain, "humid rotation must include rain days")
}

func TestSeasonOf(t *testing.T) {
	assert.Equal(t, seasonWinter, seasonOf(time.December))
	assert.Equal(t, seasonWinter, seasonOf(time.February))
	assert.Equal(t, seasonSpring, seasonOf(time.March))
	assert.Equal(t, seasonSummer, seasonOf(time.July))
	assert.Equal(t, seasonAutumn, seasonOf(time.September))
	assert.Equal(t, seasonAutumn, seasonOf(time.November))
}

func TestSeedDerivationsAreIndependent(t *testing.T) {
	assert.NotEqual(t, identitySeed("13a1b2c3d4"), daySeed("13a1b2c3d4", 12, 0))
	assert.NotEqual(t, daySeed("13a1b2c3d4", 12, 0), daySeed("13a1b2c3d4", 12, 1))
	assert.NotEqual(t, daySeed("13a1b2c3d4", 12, 0), daySeed("13ffee0011", 12, 0))
}
