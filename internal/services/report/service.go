package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shuv1824/envhealth/internal/chart"
	"github.com/shuv1824/envhealth/internal/metrics"
	"github.com/shuv1824/envhealth/internal/types"
)

var (
	ErrEmptyCity             = errors.New("city is required")
	ErrCityNotFound          = errors.New("city not found")
	ErrWeatherUnavailable    = errors.New("weather data unavailable")
	ErrAirQualityUnavailable = errors.New("air quality data unavailable")
)

// Provider is the upstream data source. weather.Client implements it.
type Provider interface {
	Geocode(ctx context.Context, name string) (*types.Location, error)
	Forecast(ctx context.Context, lat, long float64) (types.OpenMeteoForecastResponse, error)
	Archive(ctx context.Context, lat, long float64, start, end time.Time) (types.OpenMeteoArchiveResponse, error)
	AirQuality(ctx context.Context, lat, long float64) (types.OpenMeteoAirQualityResponse, error)
}

// DayOutlook is the hourly forecast averaged per day.
type DayOutlook struct {
	Date                     string   `json:"date"`
	CloudCover               *float64 `json:"cloud_cover_pct"`
	PrecipitationProbability *float64 `json:"precipitation_probability_pct"`
}

type Service struct {
	provider Provider
	now      func() time.Time
}

// NewService creates a report service backed by provider.
func NewService(provider Provider) *Service {
	return &Service{
		provider: provider,
		now:      time.Now,
	}
}

// Build fetches everything for city and derives the report. Requests run one
// after another: geocoding, forecast, archive, air quality. Any failure
// returns no report.
func (s *Service) Build(ctx context.Context, city string) (*Report, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, ErrEmptyCity
	}

	loc, err := s.provider.Geocode(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("geocode %q: %w", city, err)
	}
	if loc == nil {
		return nil, fmt.Errorf("%w: %s", ErrCityNotFound, city)
	}

	forecast, err := s.provider.Forecast(ctx, loc.Latitude, loc.Longitude)
	if err != nil {
		return nil, fmt.Errorf("forecast: %w", err)
	}
	daily := forecast.Daily
	if daily == nil || len(daily.Time) == 0 || !daily.Aligned() {
		return nil, ErrWeatherUnavailable
	}

	end := s.now()
	start := end.AddDate(-1, 0, 0)
	baseline := s.baseline(ctx, loc, start, end)

	air, err := s.provider.AirQuality(ctx, loc.Latitude, loc.Longitude)
	if err != nil {
		return nil, fmt.Errorf("air quality: %w", err)
	}
	// an absent pollutant field stops the report; all-null readings do not
	if air.Hourly == nil || air.Hourly.PM25 == nil || air.Hourly.PM10 == nil {
		return nil, ErrAirQualityUnavailable
	}

	return s.derive(*loc, forecast, baseline, air.Hourly), nil
}

// historical holds the archive series used for the anomaly baseline. Both
// slices are empty when the archive could not be used.
type historical struct {
	start, end time.Time
	max, min   []*float64
}

// baseline fetches the trailing year of daily temperatures. The archive is
// optional: on failure the anomaly falls back to a zero placeholder.
func (s *Service) baseline(ctx context.Context, loc *types.Location, start, end time.Time) historical {
	h := historical{start: start, end: end}

	archive, err := s.provider.Archive(ctx, loc.Latitude, loc.Longitude, start, end)
	if err != nil {
		slog.Warn("historical archive unavailable, using placeholder baseline",
			"city", loc.Name, "error", err)
		return h
	}
	if archive.Daily == nil {
		slog.Warn("historical archive returned no daily data, using placeholder baseline", "city", loc.Name)
		return h
	}

	h.max = archive.Daily.Temperature2mMax
	h.min = archive.Daily.Temperature2mMin
	return h
}

func (s *Service) derive(loc types.Location, forecast types.OpenMeteoForecastResponse, hist historical, pollution *types.PollutionSeries) *Report {
	daily := forecast.Daily

	pm25 := metrics.FirstN(pollution.PM25, metrics.TrendHours)
	pm10 := metrics.FirstN(pollution.PM10, metrics.TrendHours)
	hours := firstTimes(pollution.Time, metrics.TrendHours)

	airQuality := summariseAir(pm25, pm10)

	uv := metrics.ValueOr(daily.UVIndexMax[0], 0)
	wind := metrics.ValueOr(daily.WindSpeed10mMax[0], 0)
	precip := metrics.ValueOr(daily.PrecipitationSum[0], 0)
	risk := metrics.ExposureRisk(uv, wind, precip)

	var anomaly metrics.TemperatureAnomaly
	if current := daily.Temperature2mMax[0]; current != nil {
		anomaly = metrics.Anomaly(*current, hist.max)
	}

	// baselines are drawn even when today's max is missing; no archive data
	// means a zero line
	avgMax, err := metrics.Average(hist.max)
	if err != nil {
		avgMax = 0
	}
	avgMin, err := metrics.Average(hist.min)
	if err != nil {
		avgMin = 0
	}

	var cloudHourly, precipProbHourly []*float64
	if forecast.Hourly != nil {
		cloudHourly = forecast.Hourly.CloudCover
		precipProbHourly = forecast.Hourly.PrecipitationProbability
	}
	days := len(daily.Time)
	cloud := metrics.DailyFromHourly(cloudHourly, days, metrics.MissingAsZero)
	precipProb := metrics.DailyFromHourly(precipProbHourly, days, metrics.MissingAsZero)

	outlook := make([]DayOutlook, days)
	for i, d := range daily.Time {
		outlook[i] = DayOutlook{Date: d, CloudCover: cloud[i], PrecipitationProbability: precipProb[i]}
	}

	trend := metrics.HourlyAQITrend(pm25, pm10)

	r := &Report{
		ID:          uuid.NewString(),
		GeneratedAt: s.now(),
		Location:    loc,
		AirQuality:  airQuality,
		Exposure: Exposure{
			Risk:          risk,
			Color:         risk.Color(),
			UVIndex:       uv,
			WindSpeed:     metrics.Round(wind, 1),
			Precipitation: metrics.Round(precip, 1),
		},
		Anomaly: anomaly,
		Baseline: Baseline{
			Start:  hist.start.Format(time.DateOnly),
			End:    hist.end.Format(time.DateOnly),
			AvgMax: metrics.Round(avgMax, 1),
			AvgMin: metrics.Round(avgMin, 1),
		},
		AQITrend: trend,
		Outlook:  outlook,
	}

	r.Charts = []chart.Spec{
		chart.Temperature(daily.Time, daily.Temperature2mMax, daily.Temperature2mMin, r.Baseline.AvgMax, r.Baseline.AvgMin),
		chart.AirPollution(hours, pm25, pm10),
		chart.Exposure(daily.Time, daily.UVIndexMax, daily.PrecipitationSum, daily.WindSpeed10mMax, cloud),
		chart.AQITrend(hours, trend),
	}

	return r
}

// summariseAir averages both pollutants and classifies the raw averages.
// Without data for both pollutants the level is unknown.
func summariseAir(pm25, pm10 []*float64) AirQuality {
	avg25, err25 := metrics.Average(pm25)
	avg10, err10 := metrics.Average(pm10)
	if err25 != nil || err10 != nil {
		return AirQuality{
			Level:  metrics.LevelUnknown,
			Color:  metrics.LevelUnknown.Color(),
			Advice: metrics.LevelUnknown.Advice(),
		}
	}

	level := metrics.CombinedAQI(avg25, avg10)
	return AirQuality{
		AvgPM25:   metrics.Round(avg25, 2),
		AvgPM10:   metrics.Round(avg10, 2),
		Level:     level,
		Color:     level.Color(),
		Advice:    level.Advice(),
		Available: true,
	}
}

func firstTimes(times []string, n int) []string {
	if len(times) > n {
		return times[:n]
	}
	return times
}
