package weather

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/smart-weather/internal/cache"
	"github.com/i474232898/smart-weather/internal/geo"
)

func newTestService() *Service {
	resolver := geo.NewResolver(cache.New[geo.Resolution](24*time.Hour), nil, time.Second)
	return NewService(resolver, NewGenerator(), cache.New[ForecastBundle](time.Hour))
}

func TestForecastByNameDeterministicWithinTTL(t *testing.T) {
	svc := newTestService()

	resA, bundleA := svc.ForecastByName(context.Background(), "喀什", 7)
	resB, bundleB := svc.ForecastByName(context.Background(), "喀什", 7)

	assert.Equal(t, resA.CityID, resB.CityID)
	assert.Equal(t, bundleA, bundleB, "cached forecast must be returned byte-identical")
}

func TestGetWeatherForecastKeyedByDays(t *testing.T) {
	svc := newTestService()

	short := svc.GetWeatherForecast("13a1b2c3d4", "新疆", 3)
	long := svc.GetWeatherForecast("13a1b2c3d4", "新疆", 7)

	assert.Len(t, short.Forecast, 3)
	assert.Len(t, long.Forecast, 7)
	assert.Equal(t, short.Forecast, long.Forecast[:3], "shared prefix days must agree")
}

func TestTripForecastHappyPath(t *testing.T) {
	svc := newTestService()

	start := time.Now().Format("2006-01-02")
	end := time.Now().AddDate(0, 0, 2).Format("2006-01-02")

	display, err := svc.TripForecast(context.Background(), "北京", start, end)
	require.NoError(t, err)

	assert.Equal(t, "北京市", display.City)
	require.Len(t, display.Forecast, 3)
	assert.Equal(t, start, display.Forecast[0].Date)
	for _, day := range display.Forecast {
		assert.NotEmpty(t, day.Suggestions)
	}
}

// The generation window must be sized from the generator's clock, not the
// wall clock, so a pinned clock yields the full travel window regardless of
// when the test runs.
func TestTripForecastSizesWindowFromGeneratorClock(t *testing.T) {
	resolver := geo.NewResolver(cache.New[geo.Resolution](24*time.Hour), nil, time.Second)
	svc := NewService(resolver, NewGeneratorWithClock(fixedClock(testNow)), cache.New[ForecastBundle](time.Hour))

	display, err := svc.TripForecast(context.Background(), "北京", "2026-09-03", "2026-09-05")
	require.NoError(t, err)

	require.Len(t, display.Forecast, 3)
	assert.Equal(t, "2026-09-03", display.Forecast[0].Date)
	assert.Equal(t, "2026-09-05", display.Forecast[2].Date)
}

func TestTripForecastRejectsBadWindows(t *testing.T) {
	svc := newTestService()

	_, err := svc.TripForecast(context.Background(), "北京", "2026-09-10", "2026-09-01")
	assert.Error(t, err, "end before start must be rejected")

	_, err = svc.TripForecast(context.Background(), "北京", "not-a-date", "2026-09-01")
	assert.Error(t, err)
}
