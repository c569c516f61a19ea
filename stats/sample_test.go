// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"
)

func TestSampleQuantile(t *testing.T) {
	s := Sample{Xs: []float64{15, 20, 35, 40, 50}}
	testFunc(t, "Quantile", s.Quantile, map[float64]float64{
		-1:  15,
		0:   15,
		.05: 15,
		.30: 19.666666666666666,
		.40: 27,
		.95: 50,
		1:   50,
		2:   50,
	})

	// Unsorted input is not modified.
	s = Sample{Xs: []float64{50, 15, 40, 20, 35}}
	testFunc(t, "Quantile", s.Quantile, map[float64]float64{.40: 27})
	if s.Xs[0] != 50 {
		t.Errorf("Quantile modified its receiver: %v", s.Xs)
	}

	if q := (Sample{}).Quantile(0.5); !math.IsNaN(q) {
		t.Errorf("Quantile of empty sample = %v, want NaN", q)
	}
}

func TestSampleWeighted(t *testing.T) {
	s := Sample{Xs: []float64{3, 1, 2}, Weights: []float64{1, 2, 1}}
	if w := s.Weight(); w != 4 {
		t.Errorf("Weight = %v, want 4", w)
	}
	if sum := s.Sum(); sum != 7 {
		t.Errorf("Sum = %v, want 7", sum)
	}
	if m := s.Mean(); !aeq(1.75, m) {
		t.Errorf("Mean = %v, want 1.75", m)
	}
	if q := s.Quantile(0.5); q != 1 {
		t.Errorf("Quantile(0.5) = %v, want 1", q)
	}

	c := s.Copy().Sort()
	if !c.Sorted || c.Xs[0] != 1 || c.Weights[0] != 2 || c.Xs[2] != 3 || c.Weights[2] != 1 {
		t.Errorf("sorted copy = %+v", c)
	}
	if s.Xs[0] != 3 {
		t.Errorf("Sort of copy modified original: %v", s.Xs)
	}
}

func TestSampleMoments(t *testing.T) {
	s := Sample{Xs: []float64{2, 4, 4, 4, 5, 5, 7, 9}}
	if m := s.Mean(); m != 5 {
		t.Errorf("Mean = %v, want 5", m)
	}
	if sd := s.StdDev(); !aeq(math.Sqrt(32.0/7), sd) {
		t.Errorf("StdDev = %v, want %v", sd, math.Sqrt(32.0/7))
	}
	if lo, hi := s.Bounds(); lo != 2 || hi != 9 {
		t.Errorf("Bounds = %v, %v, want 2, 9", lo, hi)
	}
	if sd := (Sample{Xs: []float64{1}}).StdDev(); !math.IsNaN(sd) {
		t.Errorf("StdDev of one value = %v, want NaN", sd)
	}
}

func TestMeanCI(t *testing.T) {
	var xs []float64
	naneq := func(a, b float64) bool {
		return aeq(a, b) || a == b || (math.IsNaN(a) && math.IsNaN(b))
	}
	check := func(conf, wmean, wlo, whi float64) {
		t.Helper()
		mean, lo, hi := MeanCI(xs, conf)
		if !(naneq(mean, wmean) && naneq(lo, wlo) && naneq(hi, whi)) {
			t.Errorf("for %v, want %v@[%v,%v], got %v@[%v,%v]", xs, wmean, wlo, whi, mean, lo, hi)
		}
	}

	xs = []float64{-8, 2, 3, 4, 5, 6}
	check(0, 2, 2, 2)
	check(0.95, 2, -3.351092806089359, 7.351092806089359)
	check(0.99, 2, -6.39357495385287, 10.39357495385287)
	check(1, 2, -inf, inf)

	xs = []float64{1}
	check(0, 1, 1, 1)
	check(0.95, 1, -inf, inf)
	check(1, 1, -inf, inf)

	xs = nil
	check(0, math.NaN(), math.NaN(), math.NaN())
	check(0.95, math.NaN(), math.NaN(), math.NaN())
	check(1, math.NaN(), math.NaN(), math.NaN())
}
