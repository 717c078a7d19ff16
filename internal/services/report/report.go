package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/shuv1824/envhealth/internal/chart"
	"github.com/shuv1824/envhealth/internal/metrics"
	"github.com/shuv1824/envhealth/internal/types"
)

// AirQuality summarises the next 24 hours of particulate readings.
type AirQuality struct {
	AvgPM25   float64       `json:"avg_pm25"`
	AvgPM10   float64       `json:"avg_pm10"`
	Level     metrics.Level `json:"level"`
	Color     string        `json:"color"`
	Advice    string        `json:"advice"`
	Available bool          `json:"available"`
}

// Exposure is today's outdoor exposure risk and its inputs.
type Exposure struct {
	Risk          metrics.Risk `json:"risk"`
	Color         string       `json:"color"`
	UVIndex       float64      `json:"uv_index"`
	WindSpeed     float64      `json:"wind_speed_kmh"`
	Precipitation float64      `json:"precipitation_mm"`
}

// Baseline is the historical window the anomaly is measured against.
type Baseline struct {
	Start  string  `json:"start_date"`
	End    string  `json:"end_date"`
	AvgMax float64 `json:"avg_max_celsius"`
	AvgMin float64 `json:"avg_min_celsius"`
}

// Report is the complete result of one analysis.
type Report struct {
	ID          string                     `json:"id"`
	GeneratedAt time.Time                  `json:"generated_at"`
	Location    types.Location             `json:"location"`
	AirQuality  AirQuality                 `json:"air_quality"`
	Exposure    Exposure                   `json:"exposure"`
	Anomaly     metrics.TemperatureAnomaly `json:"temperature_anomaly"`
	Baseline    Baseline                   `json:"baseline"`
	AQITrend    []int                      `json:"aqi_trend"`
	Outlook     []DayOutlook               `json:"outlook"`
	Charts      []chart.Spec               `json:"charts"`
}

// Chart returns the spec for slot.
func (r *Report) Chart(slot chart.Slot) (chart.Spec, bool) {
	for _, spec := range r.Charts {
		if spec.Slot == slot {
			return spec, true
		}
	}
	return chart.Spec{}, false
}

// Text renders the location and metrics panel as plain text.
func (r *Report) Text() string {
	var b strings.Builder

	fmt.Fprintf(&b, "City: %s, %s\n", r.Location.Name, r.Location.Country)
	fmt.Fprintf(&b, "Coordinates: %g°N, %g°E\n", r.Location.Latitude, r.Location.Longitude)
	b.WriteString("\n")

	aq := r.AirQuality
	fmt.Fprintf(&b, "Current Air Quality Index: %s\n", aq.Level)
	if aq.Available {
		fmt.Fprintf(&b, "PM2.5: %.2f µg/m³ (WHO guideline: ≤%g µg/m³)\n", aq.AvgPM25, metrics.WHOPM25.Good)
		fmt.Fprintf(&b, "PM10: %.2f µg/m³ (WHO guideline: ≤%g µg/m³)\n", aq.AvgPM10, metrics.WHOPM10.Good)
	} else {
		b.WriteString("PM2.5 / PM10: insufficient data for the next 24 hours\n")
	}
	fmt.Fprintf(&b, "Health Advisory: %s\n", aq.Advice)
	b.WriteString("\n")

	ex := r.Exposure
	fmt.Fprintf(&b, "Outdoor Exposure Risk: %s\n", ex.Risk)
	fmt.Fprintf(&b, "Current UV Index: %g | Wind: %.1f km/h | Precipitation: %.1f mm\n",
		ex.UVIndex, ex.WindSpeed, ex.Precipitation)
	b.WriteString("\n")

	fmt.Fprintf(&b, "Temperature Anomaly: %s\n", r.Anomaly)
	fmt.Fprintf(&b, "Baseline: Past year average (%s to %s)\n", r.Baseline.Start, r.Baseline.End)

	return b.String()
}
