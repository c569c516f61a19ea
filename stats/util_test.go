// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"
	"testing"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

// testFunc checks f against the expected values in vals.
func testFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64) {
	t.Helper()
	xs := make([]float64, 0, len(vals))
	for x := range vals {
		xs = append(xs, x)
	}
	sort.Float64s(xs)

	for _, x := range xs {
		want, got := vals[x], f(x)
		if math.IsNaN(want) && math.IsNaN(got) || aeq(want, got) {
			continue
		}
		t.Errorf("%s(%v) = %v, want %v", name, x, got, want)
	}
}

func TestBisect(t *testing.T) {
	x, ok := bisect(func(x float64) float64 { return x*x - 2 }, 0, 2, 1e-12)
	if !ok || !aeq(math.Sqrt2, x) {
		t.Errorf("want %v, true, got %v, %v", math.Sqrt2, x, ok)
	}

	step := func(x float64) float64 {
		if x < 0.5 {
			return -1
		}
		return 1
	}
	x, ok = bisect(step, 0, 1, 0.1)
	if ok || !aeq(0.5, x) {
		t.Errorf("want 0.5, false, got %v, %v", x, ok)
	}
}

func TestSeries(t *testing.T) {
	got := series(func(n float64) float64 { return math.Pow(0.5, n) })
	if !aeq(2, got) {
		t.Errorf("want 2, got %v", got)
	}
}
