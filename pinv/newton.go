// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pinv

import "math"

// chebyshevPoints fills pc with order+1 construction points in [0, 1].
// They are the Chebyshev points of the first kind, rescaled so that
// the first and last point lie on 0 and 1:
//
//	pc[k] = sin(kφ) sin((k+1)φ) / cos(φ),  φ = π / (2(order+1))
//
// The points cluster towards both ends, which keeps the interpolation
// error small near the interval boundaries.
func chebyshevPoints(order int, pc []float64) {
	phi := math.Pi / float64(2*(order+1))
	pc[0] = 0
	for k := 1; k < order; k++ {
		pc[k] = math.Sin(float64(k)*phi) * math.Sin(float64(k+1)*phi) / math.Cos(phi)
	}
	pc[order] = 1
}

// dividedDifferences turns the first-order divided differences z[i] of
// x over the nodes 0, u[0], ..., u[order-1] into the coefficients of
// the Newton interpolating polynomial. It works in place.
//
// On entry, z[i] = (x_{i+1} - x_i) / (u_{i+1} - u_i), with u_0 = 0.
// On exit, z[k] is the divided difference over u_0, ..., u_{k+1}.
func dividedDifferences(u, z *[MaxOrder]float64, order int) {
	for k := 1; k < order; k++ {
		for i := order - 1; i > k; i-- {
			z[i] = (z[i] - z[i-1]) / (u[i] - u[i-k-1])
		}
		z[k] = (z[k] - z[k-1]) / u[k]
	}
}

// newtonEval evaluates the Newton polynomial with nodes
// 0, u[0], ..., u[order-2] and coefficients z at q. The polynomial
// has no constant term, so newtonEval(0, ...) = 0.
func newtonEval(q float64, u, z *[MaxOrder]float64, order int) float64 {
	chi := z[order-1]
	for i := order - 2; i >= 0; i-- {
		chi = chi*(q-u[i]) + z[i]
	}
	return chi * q
}

// testPoints fills ut with the points where the interpolation error
// is expected to be largest: the local extrema of the node polynomial
//
//	w(t) = t (t - u[0]) ... (t - u[order-1])
//
// one between each pair of consecutive nodes. Each extremum is a zero
// of w'/w = Σ 1/(t - u_i), found by two Newton steps from the
// midpoint. A step that leaves the bracketing nodes is discarded.
func testPoints(u *[MaxOrder]float64, order int, ut []float64) {
	lo := 0.0
	for k := 0; k < order; k++ {
		hi := u[k]
		t := lo/2 + hi/2
		for it := 0; it < 2; it++ {
			s1, s2 := 1/t, 1/(t*t)
			for i := 0; i < order; i++ {
				d := t - u[i]
				s1 += 1 / d
				s2 += 1 / (d * d)
			}
			tn := t + s1/s2
			if !(tn > lo && tn < hi) {
				break
			}
			t = tn
		}
		ut[k] = t
		lo = hi
	}
}
