// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// CauchyDist is a Cauchy distribution with location Loc and scale
// Scale. Its tails are heavy enough that it has no mean.
type CauchyDist struct {
	Loc, Scale float64
}

func (c CauchyDist) PDF(x float64) float64 {
	z := (x - c.Loc) / c.Scale
	return 1 / (math.Pi * c.Scale * (1 + z*z))
}

func (c CauchyDist) CDF(x float64) float64 {
	z := (x - c.Loc) / c.Scale
	if z < 0 {
		// Avoid cancellation in the left tail.
		return math.Atan2(1, -z) / math.Pi
	}
	return 0.5 + math.Atan(z)/math.Pi
}

func (c CauchyDist) Bounds() (float64, float64) {
	// The quantiles at 5% and 95%. Anything wider is dominated
	// by the tails.
	w := c.Scale * math.Tan(0.45*math.Pi)
	return c.Loc - w, c.Loc + w
}

func (c CauchyDist) Domain() (float64, float64) {
	return -inf, inf
}

func (c CauchyDist) Center() float64 {
	return c.Loc
}
