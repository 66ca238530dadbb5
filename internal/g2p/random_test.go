package g2p

import (
	"math"
	"sort"
	"testing"

	"gonum.org/v1/gonum/stat"
)

func TestRandUniform(t *testing.T) {
	r := NewRand(1)
	for i := 0; i < 100000; i++ {
		if u := r.Uniform(); u <= 0 || u >= 1 {
			t.Fatalf("Uniform = %g", u)
		}
	}
}

func TestRandGaus(t *testing.T) {
	r := NewRand(2)
	xs := make([]Real, 50000)
	for i := range xs {
		xs[i] = r.Gaus(3, 0.5)
	}
	mean, std := stat.MeanStdDev(xs, nil)
	if math.Abs(mean-3) > 0.02 || math.Abs(std-0.5) > 0.02 {
		t.Fatalf("Gaus mean=%g std=%g", mean, std)
	}
}

func TestRandLandau(t *testing.T) {
	r := NewRand(3)
	if r.Landau(1, 0) != 0 || r.Landau(1, -1) != 0 {
		t.Fatal("non-positive sigma must give 0")
	}
	xs := make([]Real, 40000)
	for i := range xs {
		xs[i] = r.Landau(0, 1)
		if math.IsNaN(xs[i]) || math.IsInf(xs[i], 0) {
			t.Fatalf("draw %d not finite", i)
		}
	}
	sort.Float64s(xs)
	// standard Landau median is about 1.3558
	if med := stat.Quantile(0.5, stat.Empirical, xs, nil); med < 1.2 || med > 1.55 {
		t.Fatalf("median %g", med)
	}
	// long right tail
	if xs[len(xs)-1] < 50 {
		t.Fatalf("max %g, expected a long tail", xs[len(xs)-1])
	}
}

func TestRandDeterministic(t *testing.T) {
	a, b := NewRand(42), NewRand(42)
	for i := 0; i < 1000; i++ {
		if a.Landau(1, 2) != b.Landau(1, 2) || a.Gaus(0, 1) != b.Gaus(0, 1) {
			t.Fatalf("draw %d differs for equal seeds", i)
		}
	}
}
