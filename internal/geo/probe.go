package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/kelvins/geocoder"
	"github.com/sony/gobreaker"
)

// Probe is a public lookup endpoint that may know an authoritative identifier
// for a place name. Probes are best-effort: any failure means "no result".
type Probe interface {
	Name() string
	Lookup(ctx context.Context, cityName string) (string, error)
}

func newProbeBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})
}

// Probes get exactly one attempt each; the resolver falls through to the
// deterministic path instead of retrying.
func probeHTTPConfig(client *http.Client) HTTPClientConfig {
	return HTTPClientConfig{
		Client: client,
		Backoff: BackoffConfig{
			MaxRetries:      0,
			InitialInterval: 500 * time.Millisecond,
			MaxInterval:     5 * time.Second,
		},
	}
}

// HeWeatherSearchProbe queries the HeWeather public search mirror.
type HeWeatherSearchProbe struct {
	name    string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewHeWeatherSearchProbe(client *http.Client) *HeWeatherSearchProbe {
	return &HeWeatherSearchProbe{
		name:    "heweather-search",
		baseURL: "https://search.heweather.com/find",
		httpCfg: probeHTTPConfig(client),
		circuit: newProbeBreaker("heweather-search"),
	}
}

func (p *HeWeatherSearchProbe) Name() string {
	return p.name
}

func (p *HeWeatherSearchProbe) Lookup(ctx context.Context, cityName string) (string, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("location", cityName)

		req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s?%s", p.baseURL, values.Encode()), nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
		return req, nil
	}

	resp, err := doRequestWithResilience(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var payload struct {
		HeWeather6 []struct {
			Status string `json:"status"`
			Basic  []struct {
				CID string `json:"cid"`
			} `json:"basic"`
		} `json:"HeWeather6"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", err
	}

	if len(payload.HeWeather6) == 0 || payload.HeWeather6[0].Status != "ok" || len(payload.HeWeather6[0].Basic) == 0 {
		return "", fmt.Errorf("heweather-search: no match for %q", cityName)
	}

	return payload.HeWeather6[0].Basic[0].CID, nil
}

// QWeatherGeoProbe queries the QWeather public geocoding API.
type QWeatherGeoProbe struct {
	name    string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewQWeatherGeoProbe(client *http.Client) *QWeatherGeoProbe {
	return &QWeatherGeoProbe{
		name:    "qweather-geo",
		baseURL: "https://geoapi.qweather.com/v2/city/lookup",
		httpCfg: probeHTTPConfig(client),
		circuit: newProbeBreaker("qweather-geo"),
	}
}

func (p *QWeatherGeoProbe) Name() string {
	return p.name
}

func (p *QWeatherGeoProbe) Lookup(ctx context.Context, cityName string) (string, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("location", cityName)

		return http.NewRequest(http.MethodGet, fmt.Sprintf("%s?%s", p.baseURL, values.Encode()), nil)
	}

	resp, err := doRequestWithResilience(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var payload struct {
		Code     string `json:"code"`
		Location []struct {
			ID string `json:"id"`
		} `json:"location"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", err
	}

	if payload.Code != "200" || len(payload.Location) == 0 {
		return "", fmt.Errorf("qweather-geo: no match for %q", cityName)
	}

	return payload.Location[0].ID, nil
}

// ItboyWeatherProbe queries the itboy public city-weather API.
type ItboyWeatherProbe struct {
	name    string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewItboyWeatherProbe(client *http.Client) *ItboyWeatherProbe {
	return &ItboyWeatherProbe{
		name:    "itboy-weather",
		baseURL: "http://t.weather.itboy.net/api/weather/city",
		httpCfg: probeHTTPConfig(client),
		circuit: newProbeBreaker("itboy-weather"),
	}
}

func (p *ItboyWeatherProbe) Name() string {
	return p.name
}

func (p *ItboyWeatherProbe) Lookup(ctx context.Context, cityName string) (string, error) {
	buildRequest := func() (*http.Request, error) {
		return http.NewRequest(http.MethodGet, fmt.Sprintf("%s/%s", p.baseURL, url.PathEscape(cityName)), nil)
	}

	resp, err := doRequestWithResilience(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var payload struct {
		Status   int `json:"status"`
		CityInfo struct {
			CityKey string `json:"cityKey"`
		} `json:"cityInfo"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", err
	}

	if payload.Status != 200 || payload.CityInfo.CityKey == "" {
		return "", fmt.Errorf("itboy-weather: no match for %q", cityName)
	}

	return payload.CityInfo.CityKey, nil
}

// GeocoderProbe confirms a place through the Google geocoding API and derives
// a coordinate-based identifier. Requires an API key, so it is only wired when
// one is configured.
type GeocoderProbe struct {
	name    string
	circuit *gobreaker.CircuitBreaker
	geocode func(geocoder.Address) (geocoder.Location, error)
}

func NewGeocoderProbe(apiKey string) *GeocoderProbe {
	geocoder.ApiKey = apiKey
	return &GeocoderProbe{
		name:    "google-geocoder",
		circuit: newProbeBreaker("google-geocoder"),
		geocode: geocoder.Geocoding,
	}
}

func (p *GeocoderProbe) Name() string {
	return p.name
}

// Lookup geocodes cityName under the resolver's per-probe deadline. The
// geocoder library offers no client or context injection, so the call runs in
// a goroutine and the deadline is enforced on the receiving side; an abandoned
// call finishes in the background and exits through the buffered channel.
func (p *GeocoderProbe) Lookup(ctx context.Context, cityName string) (string, error) {
	type geocodeResult struct {
		location geocoder.Location
		err      error
	}

	done := make(chan geocodeResult, 1)
	go func() {
		loc, err := p.geocode(geocoder.Address{City: cityName, Country: "China"})
		done <- geocodeResult{location: loc, err: err}
	}()

	result, err := p.circuit.Execute(func() (interface{}, error) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case r := <-done:
			if r.err != nil {
				return nil, r.err
			}
			return r.location, nil
		}
	})
	if err != nil {
		return "", err
	}

	location, ok := result.(geocoder.Location)
	if !ok {
		return "", fmt.Errorf("unexpected result type from circuit breaker")
	}

	// Tenth-of-a-degree grid cell; stable for the same place across calls.
	latCell := int(location.Latitude*10) % 1000
	lngCell := int(location.Longitude*10) % 1000
	if latCell < 0 {
		latCell = -latCell
	}
	if lngCell < 0 {
		lngCell = -lngCell
	}

	return fmt.Sprintf("90%03d%03d", latCell, lngCell), nil
}
