package series

import (
	"math"
	"testing"
)

// #region helpers

func seriesEqual(t *testing.T, got, want []float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("index %d: got %v, want %v (full: %v)", i, got[i], want[i], got)
		}
	}
}

// #endregion helpers

// #region passthrough-tests

func TestMovingAverage_WindowOneIsIdentity(t *testing.T) {
	in := []float64{3.5, -1.0, 0.0, 42.0}
	out := MovingAverage(in, 1)
	seriesEqual(t, out, in)

	out = MovingAverage(in, 0)
	seriesEqual(t, out, in)

	out = MovingAverage(in, -3)
	seriesEqual(t, out, in)
}

// #endregion passthrough-tests

// #region length-tests

func TestMovingAverage_PreservesLength(t *testing.T) {
	for _, n := range []int{0, 1, 2, 5, 17} {
		for _, w := range []int{1, 2, 3, 4, 5, 20} {
			in := make([]float64, n)
			out := MovingAverage(in, w)
			if len(out) != n {
				t.Errorf("n=%d w=%d: output length %d", n, w, len(out))
			}
		}
	}
}

// #endregion length-tests

// #region boundary-tests

func TestMovingAverage_OddWindow(t *testing.T) {
	// Zero-padded symmetric window: edges attenuate.
	got := MovingAverage([]float64{1, 2, 3}, 3)
	seriesEqual(t, got, []float64{1.0, 2.0, 5.0 / 3.0})
}

func TestMovingAverage_EvenWindow(t *testing.T) {
	// Even windows bias the extra tap toward trailing samples.
	got := MovingAverage([]float64{1, 1, 1, 1}, 4)
	seriesEqual(t, got, []float64{0.5, 0.75, 1.0, 0.75})
}

func TestMovingAverage_ConstantSeriesEdgeAttenuation(t *testing.T) {
	got := MovingAverage([]float64{2, 2, 2, 2, 2}, 5)
	// Interior is the true mean; edges average in implicit zeros.
	seriesEqual(t, got, []float64{1.2, 1.6, 2.0, 1.6, 1.2})
}

func TestMovingAverage_WindowLargerThanInput(t *testing.T) {
	got := MovingAverage([]float64{6, 6}, 5)
	// Every position sees all samples plus padding.
	seriesEqual(t, got, []float64{2.4, 2.4})
}

// #endregion boundary-tests
