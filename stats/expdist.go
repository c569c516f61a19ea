// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// ExponentialDist is an exponential distribution with the given Rate.
type ExponentialDist struct {
	Rate float64
}

func (e ExponentialDist) PDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	return e.Rate * math.Exp(-e.Rate*x)
}

func (e ExponentialDist) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return -math.Expm1(-e.Rate * x)
}

func (e ExponentialDist) Bounds() (float64, float64) {
	// 99.9% of the weight.
	return 0, -math.Log(0.001) / e.Rate
}

func (e ExponentialDist) Domain() (float64, float64) {
	return 0, inf
}

func (e ExponentialDist) Center() float64 {
	return 0
}
