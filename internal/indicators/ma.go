package indicators

// SMA returns the arithmetic mean of the last period values, or 0 when
// fewer than period values are available.
func SMA(values []float64, period int) float64 {
	if period <= 0 || len(values) < period {
		return 0
	}
	sum := 0.0
	for _, v := range values[len(values)-period:] {
		sum += v
	}
	return sum / float64(period)
}
