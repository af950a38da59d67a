package weather

// ForecastDay is one calendar day of synthetic weather. JSON field names keep
// the wire shape of the upstream weather vendors so existing consumers can
// read the output unchanged.
type ForecastDay struct {
	Date      string `json:"fxDate"`
	Weekday   string `json:"weekday"`
	TempMax   int    `json:"tempMax"`
	TempMin   int    `json:"tempMin"`
	TextDay   string `json:"textDay"`
	TextNight string `json:"textNight"`
	IconDay   string `json:"iconDay"`
	Humidity  int    `json:"humidity"`
	WindDir   string `json:"windDirDay"`
	WindScale string `json:"windScaleDay"`
	Precip    string `json:"precip"`
	UVIndex   string `json:"uvIndex"`
	Sunrise   string `json:"sunrise"`
	Sunset    string `json:"sunset"`
}

// CurrentWeather is the day-0 snapshot returned alongside a forecast.
type CurrentWeather struct {
	Temp      int    `json:"temp"`
	FeelsLike int    `json:"feelsLike"`
	Text      string `json:"text"`
	Humidity  int    `json:"humidity"`
}

// ForecastBundle is the raw output of the synthetic generator.
type ForecastBundle struct {
	Current    CurrentWeather `json:"current"`
	Forecast   []ForecastDay  `json:"forecast"`
	UpdateTime string         `json:"updateTime"`
	Source     string         `json:"source"`
}

// DisplayDay is a forecast day enriched with travel advisories.
type DisplayDay struct {
	ForecastDay
	Suggestions []string `json:"suggestions"`
}

// DisplayForecast is the presentation-ready forecast for a travel window.
// IsReal/IsSmart let the UI flag the data as non-authoritative.
type DisplayForecast struct {
	Status     string         `json:"status"`
	City       string         `json:"city"`
	StartDate  string         `json:"start_date"`
	EndDate    string         `json:"end_date"`
	Current    CurrentWeather `json:"current_weather"`
	Forecast   []DisplayDay   `json:"forecast"`
	UpdateTime string         `json:"update_time"`
	Source     string         `json:"source"`
	IsReal     bool           `json:"is_real"`
	IsSmart    bool           `json:"is_smart"`
}
