package series

// #region moving-average

// MovingAverage smooths values with a symmetric sliding-window mean and
// returns a series of the same length. window <= 1 is a passthrough that
// returns values unchanged.
//
// The boundary convention is zero-padding: the divisor is always the window
// size, so positions near the ends average in implicit zeros and attenuate.
// Callers comparing against recorded reference series rely on this exact
// behavior; do not swap in a clamped or truncated-window variant.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 {
		return values
	}

	n := len(values)
	out := make([]float64, n)
	offset := (window - 1) / 2

	for i := 0; i < n; i++ {
		lo := i + offset - window + 1
		hi := i + offset
		if lo < 0 {
			lo = 0
		}
		if hi > n-1 {
			hi = n - 1
		}
		var sum float64
		for m := lo; m <= hi; m++ {
			sum += values[m]
		}
		out[i] = sum / float64(window)
	}
	return out
}

// #endregion moving-average
