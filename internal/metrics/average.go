package metrics

import (
	"errors"
	"math"
)

// ErrInsufficientData is returned when a series has no usable values.
var ErrInsufficientData = errors.New("insufficient data")

// MissingPolicy controls how nil readings count toward an average.
type MissingPolicy int

const (
	// SkipMissing drops nil readings from both the sum and the denominator.
	SkipMissing MissingPolicy = iota
	// MissingAsZero adds nil readings as 0 and keeps them in the denominator.
	MissingAsZero
)

// Average returns the mean of the non-nil values.
func Average(values []*float64) (float64, error) {
	return averageWith(values, SkipMissing)
}

func averageWith(values []*float64, policy MissingPolicy) (float64, error) {
	var sum float64
	var n int
	for _, v := range values {
		if v == nil {
			if policy == MissingAsZero {
				n++
			}
			continue
		}
		sum += *v
		n++
	}
	if n == 0 {
		return 0, ErrInsufficientData
	}
	return sum / float64(n), nil
}

// Round rounds v to the given number of decimal places. Use it for display
// only; classification works on unrounded values.
func Round(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}

// ValueOr dereferences v, or returns fallback when v is nil.
func ValueOr(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}

// At returns values[i], or nil when i is out of range.
func At(values []*float64, i int) *float64 {
	if i < 0 || i >= len(values) {
		return nil
	}
	return values[i]
}
