package metrics

// Level is an air quality band. The zero value is LevelUnknown, used when there
// is not enough data to classify.
type Level int

const (
	LevelUnknown Level = iota
	LevelGood
	LevelModerate
	LevelUnhealthyForSensitive
	LevelUnhealthy
	LevelVeryUnhealthy
)

// Levels lists the known bands from best to worst.
var Levels = []Level{
	LevelGood,
	LevelModerate,
	LevelUnhealthyForSensitive,
	LevelUnhealthy,
	LevelVeryUnhealthy,
}

// Ordinal returns 1 (Good) through 5 (Very Unhealthy), or 0 for an unknown level.
func (l Level) Ordinal() int {
	if l < LevelGood || l > LevelVeryUnhealthy {
		return 0
	}
	return int(l)
}

func (l Level) String() string {
	switch l {
	case LevelGood:
		return "Good"
	case LevelModerate:
		return "Moderate"
	case LevelUnhealthyForSensitive:
		return "Unhealthy for Sensitive Groups"
	case LevelUnhealthy:
		return "Unhealthy"
	case LevelVeryUnhealthy:
		return "Very Unhealthy"
	default:
		return "Unknown"
	}
}

// ShortLabel is the compact label used on chart axes.
func (l Level) ShortLabel() string {
	if l == LevelUnhealthyForSensitive {
		return "Unhealthy (Sensitive)"
	}
	return l.String()
}

// MarshalText encodes the level as its display label.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// Color returns the display color for the level. Unknown levels get grey.
func (l Level) Color() string {
	switch l {
	case LevelGood:
		return "#00E400"
	case LevelModerate:
		return "#FFFF00"
	case LevelUnhealthyForSensitive:
		return "#FF7E00"
	case LevelUnhealthy:
		return "#FF0000"
	case LevelVeryUnhealthy:
		return "#8F3F97"
	default:
		return "#808080"
	}
}

// Advice returns the health advisory for the level.
func (l Level) Advice() string {
	switch l {
	case LevelGood:
		return "Air quality is satisfactory, and air pollution poses little or no risk."
	case LevelModerate:
		return "Air quality is acceptable. However, there may be a risk for some people, particularly those who are unusually sensitive to air pollution."
	case LevelUnhealthyForSensitive:
		return "Members of sensitive groups may experience health effects. The general public is less likely to be affected."
	case LevelUnhealthy:
		return "Some members of the general public may experience health effects; members of sensitive groups may experience more serious health effects."
	case LevelVeryUnhealthy:
		return "Health alert: The risk of health effects is increased for everyone."
	default:
		return "Data unavailable"
	}
}

// rgb returns the band's base color as red, green, blue components.
func (l Level) rgb() (int, int, int) {
	switch l {
	case LevelGood:
		return 0, 228, 0
	case LevelModerate:
		return 255, 255, 0
	case LevelUnhealthyForSensitive:
		return 255, 126, 0
	case LevelUnhealthy:
		return 255, 0, 0
	case LevelVeryUnhealthy:
		return 143, 63, 151
	default:
		return 128, 128, 128
	}
}
