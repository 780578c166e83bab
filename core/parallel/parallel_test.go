package parallel

import (
	"math"
	"sync/atomic"
	"testing"
)

func TestForCoversEveryIndexOnce(t *testing.T) {
	for _, n := range []int{0, 1, 7, 1000, 12345} {
		counts := make([]int32, n)
		For(n, 0, func(start, end int) {
			for i := start; i < end; i++ {
				atomic.AddInt32(&counts[i], 1)
			}
		})

		for i, c := range counts {
			if c != 1 {
				t.Fatalf("n=%d: index %d visited %d times", n, i, c)
			}
		}
	}
}

func TestForBelowThresholdRunsOnce(t *testing.T) {
	var calls int32
	For(100, 1000, func(start, end int) {
		atomic.AddInt32(&calls, 1)
		if start != 0 || end != 100 {
			t.Errorf("expected a single range [0, 100), got [%d, %d)", start, end)
		}
	})
	if calls != 1 {
		t.Errorf("expected one sequential call, got %d", calls)
	}
}

func TestForNegative(t *testing.T) {
	For(-1, 0, func(start, end int) {
		t.Errorf("fn called with [%d, %d)", start, end)
	})
}

func TestWorkers(t *testing.T) {
	if got := Workers(1); got != 1 {
		t.Errorf("Workers(1) = %d, want 1", got)
	}
	if got := Workers(1 << 20); got < 1 {
		t.Errorf("Workers(1<<20) = %d, want >= 1", got)
	}
}

func TestApplyMatchesSequential(t *testing.T) {
	const n = 5000
	src := make([]float64, n)
	for i := range src {
		src[i] = float64(i) * 0.37
	}
	f := func(x float64) float64 { return 3*x + 4 }

	got := make([]float64, n)
	Apply(got, src, 10, f)

	for i, x := range src {
		if want := f(x); math.Float64bits(got[i]) != math.Float64bits(want) {
			t.Fatalf("dst[%d] = %v, want %v", i, got[i], want)
		}
	}
}

func TestApplyShorterDst(t *testing.T) {
	dst := make([]float64, 2)
	Apply(dst, []float64{1, 2, 3}, 0, func(x float64) float64 { return -x })
	if dst[0] != -1 || dst[1] != -2 {
		t.Errorf("dst = %v, want [-1 -2]", dst)
	}
}
