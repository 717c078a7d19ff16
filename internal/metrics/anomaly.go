package metrics

import "fmt"

// TemperatureAnomaly compares today's maximum with a historical average.
// When Available is false the baseline is a zero placeholder and Delta is not
// meaningful.
type TemperatureAnomaly struct {
	Current   float64 `json:"current_max_celsius"`
	Baseline  float64 `json:"baseline_max_celsius"`
	Delta     float64 `json:"delta_celsius"`
	Available bool    `json:"available"`
}

// Anomaly computes the deviation of currentMax from the mean of historical.
func Anomaly(currentMax float64, historical []*float64) TemperatureAnomaly {
	baseline, err := Average(historical)
	if err != nil {
		return TemperatureAnomaly{Current: currentMax}
	}

	delta := Round(currentMax-baseline, 1)
	if delta == 0 {
		// normalise -0 so the label never reads "-0.0°C"
		delta = 0
	}

	return TemperatureAnomaly{
		Current:   currentMax,
		Baseline:  Round(baseline, 1),
		Delta:     delta,
		Available: true,
	}
}

// Label returns "+5.0°C above" or "-3.0°C below".
func (a TemperatureAnomaly) Label() string {
	if a.Delta > 0 {
		return fmt.Sprintf("+%.1f°C above", a.Delta)
	}
	return fmt.Sprintf("%.1f°C below", a.Delta)
}

func (a TemperatureAnomaly) String() string {
	if !a.Available {
		return "historical baseline unavailable (placeholder 0.0°C)"
	}
	return fmt.Sprintf("%s historical average (%.1f°C)", a.Label(), a.Baseline)
}
