package metrics

// Risk is the outdoor exposure risk tier.
type Risk int

const (
	RiskLow Risk = iota
	RiskModerate
	RiskHigh
)

func (r Risk) String() string {
	switch r {
	case RiskHigh:
		return "High"
	case RiskModerate:
		return "Moderate"
	default:
		return "Low"
	}
}

// MarshalText encodes the risk as its display label.
func (r Risk) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Color returns the display color for the tier.
func (r Risk) Color() string {
	switch r {
	case RiskHigh:
		return "#FF0000"
	case RiskModerate:
		return "#FFFF00"
	default:
		return "#00E400"
	}
}

// ExposureRisk scores outdoor exposure from the UV index, wind (km/h) and
// precipitation (mm). The first matching tier wins, High before Moderate.
func ExposureRisk(uv, wind, precip float64) Risk {
	if uv > 8 || wind > 40 {
		return RiskHigh
	}
	if uv > 5 || wind > 25 || precip > 10 {
		return RiskModerate
	}
	return RiskLow
}
