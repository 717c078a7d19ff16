package chart

import (
	"github.com/shuv1824/envhealth/internal/metrics"
)

// Temperature charts daily max/min temperatures against flat historical
// baselines.
func Temperature(days []string, maxTemps, minTemps []*float64, baselineMax, baselineMin float64) Spec {
	return Spec{
		Slot:   SlotTemperature,
		Type:   TypeLine,
		Title:  SlotTemperature.Title(),
		Labels: days,
		Datasets: []Dataset{
			{
				Label:           "Max Temperature (°C)",
				Data:            maxTemps,
				BorderColor:     "#FF6384",
				BackgroundColor: "rgba(255, 99, 132, 0.1)",
				BorderWidth:     2,
				Fill:            true,
			},
			{
				Label:           "Min Temperature (°C)",
				Data:            minTemps,
				BorderColor:     "#36A2EB",
				BackgroundColor: "rgba(54, 162, 235, 0.1)",
				BorderWidth:     2,
				Fill:            true,
			},
			{
				Label:       "Historical Avg Max",
				Data:        constant(len(days), baselineMax),
				BorderColor: "#FF6384",
				BorderWidth: 1,
				BorderDash:  []float64{5, 5},
				HidePoints:  true,
			},
			{
				Label:       "Historical Avg Min",
				Data:        constant(len(days), baselineMin),
				BorderColor: "#36A2EB",
				BorderWidth: 1,
				BorderDash:  []float64{5, 5},
				HidePoints:  true,
			},
		},
	}
}

// AirPollution charts hourly PM2.5 and PM10 as bars colored by WHO band.
func AirPollution(hours []string, pm25, pm10 []*float64) Spec {
	return Spec{
		Slot:     SlotAir,
		Type:     TypeBar,
		Title:    SlotAir.Title(),
		Subtitle: "Air Pollution Concentration (Next 24 Hours) - Color coded by WHO guidelines",
		Labels:   hourLabels(hours),
		Datasets: []Dataset{
			{
				Label:       "PM2.5 (µg/m³)",
				Data:        pm25,
				BarColors:   bandColors(pm25, metrics.WHOPM25, 0.6),
				BorderColor: "rgba(255, 99, 132, 1)",
				BorderWidth: 1,
			},
			{
				Label:       "PM10 (µg/m³)",
				Data:        pm10,
				BarColors:   bandColors(pm10, metrics.WHOPM10, 0.4),
				BorderColor: "rgba(54, 162, 235, 1)",
				BorderWidth: 1,
			},
		},
	}
}

// Exposure charts the daily UV index, precipitation, wind and cloud cover.
func Exposure(days []string, uv, precip, wind, cloud []*float64) Spec {
	return Spec{
		Slot:     SlotExposure,
		Type:     TypeLine,
		Title:    SlotExposure.Title(),
		Subtitle: "Combined Environmental Exposure Factors",
		Labels:   days,
		Datasets: []Dataset{
			{
				Label:           "UV Index",
				Data:            uv,
				BorderColor:     "#FF6B6B",
				BackgroundColor: "rgba(255, 107, 107, 0.2)",
				BorderWidth:     2,
				Fill:            true,
				Axis:            "y",
			},
			{
				Label:           "Precipitation (mm)",
				Data:            precip,
				BorderColor:     "#4ECDC4",
				BackgroundColor: "rgba(78, 205, 196, 0.2)",
				BorderWidth:     2,
				Fill:            true,
				Axis:            "y1",
			},
			{
				Label:           "Wind Speed (km/h)",
				Data:            wind,
				BorderColor:     "#95E1D3",
				BackgroundColor: "rgba(149, 225, 211, 0.2)",
				BorderWidth:     2,
				Axis:            "y1",
			},
			{
				Label:           "Cloud Cover (%)",
				Data:            cloud,
				BorderColor:     "#B0B0B0",
				BackgroundColor: "rgba(176, 176, 176, 0.1)",
				BorderWidth:     2,
				BorderDash:      []float64{5, 5},
				Axis:            "y2",
			},
		},
		Axes: []Axis{
			{ID: "y", Title: "UV Index", Position: "left"},
			{ID: "y1", Title: "Precipitation (mm) / Wind (km/h)", Position: "right"},
			{ID: "y2", Position: "right", Hidden: true, Min: floatPtr(0), Max: floatPtr(100)},
		},
	}
}

// AQITrend charts the hourly combined AQI ordinal as a stepped line.
func AQITrend(hours []string, ordinals []int) Spec {
	data := make([]*float64, len(ordinals))
	for i, o := range ordinals {
		data[i] = floatPtr(float64(o))
	}

	ticks := map[int]string{}
	for _, l := range metrics.Levels {
		ticks[l.Ordinal()] = l.ShortLabel()
	}

	return Spec{
		Slot:   SlotAQI,
		Type:   TypeLine,
		Title:  SlotAQI.Title(),
		Labels: hourLabels(hours),
		Datasets: []Dataset{
			{
				Label:           "AQI Level",
				Data:            data,
				BorderColor:     "#4BC0C0",
				BackgroundColor: "rgba(75, 192, 192, 0.2)",
				BorderWidth:     2,
				Fill:            true,
				Stepped:         true,
			},
		},
		Axes: []Axis{
			{ID: "y", Position: "left", Min: floatPtr(0), Max: floatPtr(6), TickStep: 1, TickLabels: ticks},
		},
	}
}

func constant(n int, v float64) []*float64 {
	out := make([]*float64, n)
	for i := range out {
		out[i] = floatPtr(v)
	}
	return out
}

func hourLabels(hours []string) []string {
	labels := make([]string, len(hours))
	for i, h := range hours {
		labels[i] = HourLabel(h)
	}
	return labels
}

// bandColors colors each bar by its WHO band. Gaps are treated as 0.
func bandColors(values []*float64, t metrics.Thresholds, alpha float64) []string {
	colors := make([]string, len(values))
	for i, v := range values {
		colors[i] = metrics.BandColor(metrics.ValueOr(v, 0), t, alpha)
	}
	return colors
}
