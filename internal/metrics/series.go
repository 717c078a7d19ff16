package metrics

// TrendHours is the number of hourly readings in the AQI trend.
const TrendHours = 24

// HoursPerDay is the width of a daily aggregation window.
const HoursPerDay = 24

// HourlyAQITrend returns the combined AQI ordinal (1-5) for each of the first
// 24 hourly readings. Missing readings are classified as 0 µg/m³, which biases
// gaps toward Good.
func HourlyAQITrend(pm25, pm10 []*float64) []int {
	n := len(pm25)
	if len(pm10) > n {
		n = len(pm10)
	}
	if n > TrendHours {
		n = TrendHours
	}

	trend := make([]int, n)
	for i := 0; i < n; i++ {
		level := CombinedAQI(ValueOr(At(pm25, i), 0), ValueOr(At(pm10, i), 0))
		trend[i] = level.Ordinal()
	}
	return trend
}

// DailyFromHourly averages hourly values into days. Day i covers hours
// [i*24, min(i*24+24, len(hourly))). Days with no usable hours are nil.
func DailyFromHourly(hourly []*float64, days int, policy MissingPolicy) []*float64 {
	daily := make([]*float64, days)
	for i := 0; i < days; i++ {
		start := i * HoursPerDay
		if start >= len(hourly) {
			continue
		}
		end := min(start+HoursPerDay, len(hourly))

		avg, err := averageWith(hourly[start:end], policy)
		if err != nil {
			continue
		}
		v := Round(avg, 0)
		daily[i] = &v
	}
	return daily
}

// FirstN returns at most the first n values.
func FirstN(values []*float64, n int) []*float64 {
	if len(values) > n {
		return values[:n]
	}
	return values
}
