package weather

import (
	"strconv"
	"time"

	"github.com/i474232898/smart-weather/internal/common"
)

// DisplaySourceLabel is the fixed label attached to formatted forecasts.
const DisplaySourceLabel = "智能天气系统"

// FormatForWindow filters a generated forecast to the inclusive travel window
// [startDate, endDate] (ISO YYYY-MM-DD; lexical comparison is valid because
// the dates are zero-padded) and attaches travel advisories. When the window
// does not overlap the generated range at all, the first generated day is
// relabelled to startDate so the caller never gets an empty forecast.
func FormatForWindow(bundle ForecastBundle, cityName, startDate, endDate string) DisplayForecast {
	days := make([]DisplayDay, 0, len(bundle.Forecast))
	for _, day := range bundle.Forecast {
		if day.Date >= startDate && day.Date <= endDate {
			days = append(days, DisplayDay{
				ForecastDay: day,
				Suggestions: suggestionsFor(day),
			})
		}
	}

	if len(days) == 0 && len(bundle.Forecast) > 0 {
		first := bundle.Forecast[0]
		first.Date = startDate
		if t, err := time.Parse("2006-01-02", startDate); err == nil {
			first.Weekday = weekdayLabels[t.Weekday()]
		}
		days = append(days, DisplayDay{
			ForecastDay: first,
			Suggestions: suggestionsFor(first),
		})
	}

	return DisplayForecast{
		Status:     "success",
		City:       cityName,
		StartDate:  startDate,
		EndDate:    endDate,
		Current:    bundle.Current,
		Forecast:   days,
		UpdateTime: bundle.UpdateTime,
		Source:     DisplaySourceLabel,
		IsReal:     false,
		IsSmart:    true,
	}
}

// suggestionsFor derives travel advisories from a day's temperature, weather
// category and UV index. Every threshold stands alone; a day can collect
// several advisories.
func suggestionsFor(day ForecastDay) []string {
	var suggestions []string

	switch {
	case day.TempMax >= 35:
		suggestions = append(suggestions, "天气酷热，避免户外活动，注意补水")
	case day.TempMax >= 30:
		suggestions = append(suggestions, "天气炎热，建议早晚出行，注意防暑")
	case day.TempMax >= 25:
		suggestions = append(suggestions, "天气温暖，适合户外活动和拍照")
	case day.TempMin <= -10:
		suggestions = append(suggestions, "天气严寒，穿戴保暖衣物，注意防冻")
	case day.TempMin <= 0:
		suggestions = append(suggestions, "天气寒冷，建议穿羽绒服等保暖衣物")
	case day.TempMin <= 10:
		suggestions = append(suggestions, "天气较冷，建议添加外套")
	}

	category := day.TextDay
	if common.HasAny(category, "雨") {
		if common.HasAny(category, "大", "暴") {
			suggestions = append(suggestions, "有强降雨，建议调整行程，避免外出")
		} else {
			suggestions = append(suggestions, "有降雨，建议携带雨具，选择室内活动")
		}
	}
	if common.HasAny(category, "雪") {
		suggestions = append(suggestions, "有降雪，路面可能湿滑，注意行走安全")
	}
	if common.HasAny(category, "雷") {
		suggestions = append(suggestions, "有雷电活动，避免登山和在空旷处活动")
	}
	if common.HasAny(category, "雾", "霾", "沙尘") {
		suggestions = append(suggestions, "能见度较低，注意交通安全，建议佩戴口罩")
	}
	if common.HasAny(category, "大风") {
		suggestions = append(suggestions, "风力较大，注意防风，避免在高处停留")
	}

	if uv, err := strconv.Atoi(day.UVIndex); err == nil {
		if uv >= 8 {
			suggestions = append(suggestions, "紫外线非常强，必须使用高倍数防晒霜")
		} else if uv >= 6 {
			suggestions = append(suggestions, "紫外线较强，建议做好防晒措施")
		}
	}

	if len(suggestions) == 0 && day.TempMax <= 28 && day.TempMin >= 10 {
		suggestions = append(suggestions, "天气适宜，是出行的好时机")
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions, "天气条件良好，适合旅行")
	}

	return suggestions
}
