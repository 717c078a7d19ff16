package metrics

import "fmt"

// Thresholds is a four-step ladder of upper bounds (µg/m³). Bounds must be
// non-negative and strictly increasing.
type Thresholds struct {
	Good               float64 `json:"good"`
	Moderate           float64 `json:"moderate"`
	UnhealthySensitive float64 `json:"unhealthy_sensitive"`
	Unhealthy          float64 `json:"unhealthy"`
}

// WHO air quality guideline bands (24-hour mean).
var (
	WHOPM25 = Thresholds{Good: 15, Moderate: 25, UnhealthySensitive: 37.5, Unhealthy: 75}
	WHOPM10 = Thresholds{Good: 45, Moderate: 75, UnhealthySensitive: 112.5, Unhealthy: 225}
)

// Classify returns the first band whose upper bound is >= value, falling
// through to LevelVeryUnhealthy. Bounds are inclusive.
func Classify(value float64, t Thresholds) Level {
	switch {
	case value <= t.Good:
		return LevelGood
	case value <= t.Moderate:
		return LevelModerate
	case value <= t.UnhealthySensitive:
		return LevelUnhealthyForSensitive
	case value <= t.Unhealthy:
		return LevelUnhealthy
	default:
		return LevelVeryUnhealthy
	}
}

// Combined returns the worse of the two levels.
func Combined(a, b Level) Level {
	if a.Ordinal() >= b.Ordinal() {
		return a
	}
	return b
}

// CombinedAQI classifies both pollutants against the WHO bands and returns the
// worse level.
func CombinedAQI(pm25, pm10 float64) Level {
	return Combined(Classify(pm25, WHOPM25), Classify(pm10, WHOPM10))
}

// BandColor returns a CSS rgba() color for the band value falls into.
func BandColor(value float64, t Thresholds, alpha float64) string {
	r, g, b := Classify(value, t).rgb()
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", r, g, b, alpha)
}
