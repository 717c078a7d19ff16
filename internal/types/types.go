package types

// Location is the best geocoding match for a city query.
type Location struct {
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// OpenMeteoGeocodingResponse represents the geocoding search response.
// Results is absent when nothing matched.
type OpenMeteoGeocodingResponse struct {
	Results []Location `json:"results"`
}

// DailyWeatherSeries holds per-day forecast values aligned by index with Time.
// Values are nil where the provider returned null.
type DailyWeatherSeries struct {
	Time             []string   `json:"time"`
	Temperature2mMax []*float64 `json:"temperature_2m_max"`
	Temperature2mMin []*float64 `json:"temperature_2m_min"`
	UVIndexMax       []*float64 `json:"uv_index_max"`
	PrecipitationSum []*float64 `json:"precipitation_sum"`
	WindSpeed10mMax  []*float64 `json:"wind_speed_10m_max"`
}

// Aligned reports whether every field has one entry per day.
func (d *DailyWeatherSeries) Aligned() bool {
	n := len(d.Time)
	return len(d.Temperature2mMax) == n &&
		len(d.Temperature2mMin) == n &&
		len(d.UVIndexMax) == n &&
		len(d.PrecipitationSum) == n &&
		len(d.WindSpeed10mMax) == n
}

// HourlyWeatherSeries holds hourly forecast values aligned by index with Time.
type HourlyWeatherSeries struct {
	Time                     []string   `json:"time"`
	PrecipitationProbability []*float64 `json:"precipitation_probability"`
	CloudCover               []*float64 `json:"cloud_cover"`
}

// OpenMeteoForecastResponse represents the forecast API response.
type OpenMeteoForecastResponse struct {
	Latitude  float64              `json:"latitude"`
	Longitude float64              `json:"longitude"`
	Timezone  string               `json:"timezone"`
	Daily     *DailyWeatherSeries  `json:"daily"`
	Hourly    *HourlyWeatherSeries `json:"hourly"`
}

// ArchiveDailySeries holds historical daily temperatures.
type ArchiveDailySeries struct {
	Time             []string   `json:"time"`
	Temperature2mMax []*float64 `json:"temperature_2m_max"`
	Temperature2mMin []*float64 `json:"temperature_2m_min"`
}

// OpenMeteoArchiveResponse represents the historical archive API response.
type OpenMeteoArchiveResponse struct {
	Daily *ArchiveDailySeries `json:"daily"`
}

// PollutionSeries holds hourly particulate concentrations in µg/m³.
type PollutionSeries struct {
	Time []string   `json:"time"`
	PM25 []*float64 `json:"pm2_5"`
	PM10 []*float64 `json:"pm10"`
}

// OpenMeteoAirQualityResponse represents the air quality API response.
type OpenMeteoAirQualityResponse struct {
	Hourly *PollutionSeries `json:"hourly"`
}

// AnalyzeRequest is the body of an analyze call.
type AnalyzeRequest struct {
	City string `json:"city"`
}
