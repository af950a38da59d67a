package weather

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/i474232898/smart-weather/internal/cache"
	"github.com/i474232898/smart-weather/internal/geo"
)

// Service orchestrates name resolution, synthetic generation and display
// formatting. Forecasts are memoized per (identifier, day count).
type Service struct {
	resolver  *geo.Resolver
	generator *Generator
	forecasts *cache.TTLCache[ForecastBundle]
}

// NewService creates a new Service.
func NewService(resolver *geo.Resolver, generator *Generator, forecasts *cache.TTLCache[ForecastBundle]) *Service {
	return &Service{
		resolver:  resolver,
		generator: generator,
		forecasts: forecasts,
	}
}

// SearchCityID resolves a raw destination string. It never fails.
func (s *Service) SearchCityID(ctx context.Context, destination string) geo.Resolution {
	return s.resolver.Resolve(ctx, destination)
}

// GetWeatherForecast returns a days-long forecast for an already-resolved
// place, consulting the forecast cache first. regionHint is the region the
// resolution carried, empty when unknown.
func (s *Service) GetWeatherForecast(cityID, regionHint string, days int) ForecastBundle {
	key := fmt.Sprintf("%s_%d", cityID, days)

	bundle, err := s.forecasts.GetOrCompute(key, func() (ForecastBundle, error) {
		return s.generator.Generate(cityID, days, regionHint), nil
	})
	if err != nil {
		// The compute path cannot fail; this is belt and braces.
		return s.generator.Generate(cityID, days, regionHint)
	}
	return bundle
}

// FormatForDisplay packages a raw forecast for the given travel window.
func (s *Service) FormatForDisplay(bundle ForecastBundle, cityName, startDate, endDate string) DisplayForecast {
	return FormatForWindow(bundle, cityName, startDate, endDate)
}

// ForecastByName resolves a destination and returns its forecast in one call.
func (s *Service) ForecastByName(ctx context.Context, destination string, days int) (geo.Resolution, ForecastBundle) {
	res := s.SearchCityID(ctx, destination)
	return res, s.GetWeatherForecast(res.CityID, res.Region, days)
}

// TripForecast produces the display forecast for a travel window. The number
// of generated days covers the generator's today through endDate so the
// window filter has material to work with; the window math reads the same
// clock the generator dates its days from.
func (s *Service) TripForecast(ctx context.Context, destination, startDate, endDate string) (DisplayForecast, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return DisplayForecast{}, fmt.Errorf("invalid start date %q: %w", startDate, err)
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return DisplayForecast{}, fmt.Errorf("invalid end date %q: %w", endDate, err)
	}
	if end.Before(start) {
		return DisplayForecast{}, fmt.Errorf("end date %s is before start date %s", endDate, startDate)
	}

	days := int(end.Sub(s.generator.now()).Hours()/24) + 2
	if days < 1 {
		days = 1
	}
	if days > 30 {
		days = 30
	}

	res, bundle := s.ForecastByName(ctx, destination, days)
	return s.FormatForDisplay(bundle, res.CityName, startDate, endDate), nil
}

// Warm resolves a destination and fills the forecast cache for it. Used by
// the background refresh job.
func (s *Service) Warm(ctx context.Context, destination string, days int) {
	res, _ := s.ForecastByName(ctx, destination, days)
	log.Printf("weather: warmed %q (%s, %s)", destination, res.CityID, res.Source)
}
