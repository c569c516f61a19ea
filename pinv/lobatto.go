// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pinv

import "math"

// Nodes of the 5-point Gauss-Lobatto rule on [0, 1] besides 0, 1/2
// and 1. lobattoW1 = 1/2 - sqrt(3/28).
const (
	lobattoW1 = 0.17267316464601146
	lobattoW2 = 1 - lobattoW1
)

const (
	// lobattoMaxDepth bounds the recursion of integrator.refine.
	lobattoMaxDepth = 50

	// lobattoMaxSplits bounds the number of interval halvings in
	// a single call to integrator.integrate.
	lobattoMaxSplits = 1 << 14
)

// lobatto5 returns the 5-point Gauss-Lobatto estimate of the integral
// of f over [x, x+h], given fl = f(x), fc = f(x+h/2) and fr = f(x+h).
func lobatto5(f func(float64) float64, x, h, fl, fc, fr float64) float64 {
	return (9*(fl+fr) + 49*(f(x+h*lobattoW1)+f(x+h*lobattoW2)) + 64*fc) * h / 180
}

// An integrator computes integrals of f by adaptive 5-point
// Gauss-Lobatto quadrature.
type integrator struct {
	f func(float64) float64

	// area is the approximate integral of f over its whole
	// domain. Differences below area*machEps are treated as
	// converged regardless of the requested tolerance.
	area float64

	// warnings counts integrals that were returned without
	// reaching the requested tolerance.
	warnings int

	splits    int
	imprecise bool
}

// integrate returns the integral of f over [x, x+h]. The result is
// accepted once a single Lobatto estimate and the sum of the two
// half-interval estimates differ by at most tol.
//
// If an interval can no longer be halved in floating point, or the
// recursion or halving budget is exhausted, integrate returns the
// best available estimate and counts a precision warning.
func (q *integrator) integrate(x, h, tol float64) float64 {
	if h == 0 {
		return 0
	}
	q.splits, q.imprecise = 0, false
	fl, fc, fr := q.f(x), q.f(x+h/2), q.f(x+h)
	int1 := lobatto5(q.f, x, h, fl, fc, fr)
	res := q.refine(x, h, tol, int1, fl, fc, fr, 0)
	if q.imprecise {
		q.warnings++
		log.Warningf("integral over [%g, %g] may not reach tolerance %g", x, x+h, tol)
	}
	return res
}

func (q *integrator) refine(x, h, tol, int1, fl, fc, fr float64, depth int) float64 {
	flc, frc := q.f(x+h/4), q.f(x+3*h/4)
	left := lobatto5(q.f, x, h/2, fl, flc, fc)
	right := lobatto5(q.f, x+h/2, h/2, fc, frc, fr)
	int2 := left + right

	diff := math.Abs(int1 - int2)
	if diff <= tol || diff <= q.area*machEps {
		return int2
	}
	if x+h/2 == x || depth >= lobattoMaxDepth || q.splits >= lobattoMaxSplits {
		q.imprecise = true
		return int2
	}
	q.splits++
	return q.refine(x, h/2, tol, left, fl, flc, fc, depth+1) +
		q.refine(x+h/2, h/2, tol, right, fc, frc, fr, depth+1)
}
