// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pinv

import "math"

//go:generate mockgen -source=dist.go -destination=dist_mock.go -package=pinv

// A Dist is a continuous distribution given by its density.
//
// The PDF need not be normalized. It must be non-negative and finite
// on the domain and positive at the center. The method assumes that
// the density is non-negligible on a single interval around the
// center and decays towards any unbounded end of the domain.
type Dist interface {
	// PDF returns the value of the probability density function
	// at x. It is only called for x within Domain.
	PDF(x float64) float64

	// Domain returns the support of the distribution. Either end
	// may be infinite.
	Domain() (lo, hi float64)

	// Center returns a point where the density is not
	// negligible, typically the mode or the median. Searches for
	// the relevant part of the domain start here.
	Center() float64
}

// A Source is a source of uniformly distributed variates in [0, 1).
// *math/rand.Rand is a Source.
type Source interface {
	Float64() float64
}

// DistFunc adapts a density function to Dist.
type DistFunc struct {
	// F is the density. It need not be normalized.
	F func(x float64) float64

	// Lo and Hi are the domain of F. The zero value of both
	// stands for the whole real line, so a degenerate domain
	// [0, 0] cannot be expressed; it would be rejected by New in
	// any case. For a half-bounded domain, set the other end to
	// math.Inf(-1) or math.Inf(1).
	Lo, Hi float64

	// Mode is returned by Center.
	Mode float64
}

func (d DistFunc) PDF(x float64) float64 {
	return d.F(x)
}

func (d DistFunc) Domain() (float64, float64) {
	if d.Lo == 0 && d.Hi == 0 {
		return math.Inf(-1), math.Inf(1)
	}
	return d.Lo, d.Hi
}

func (d DistFunc) Center() float64 {
	return d.Mode
}

// density evaluates the PDF during setup. It treats the density as 0
// outside of [lo, hi] and remembers the first contract violation it
// sees, so that a stage can evaluate many points and check once.
type density struct {
	dist   Dist
	lo, hi float64
	err    error
}

func (d *density) pdf(x float64) float64 {
	if x < d.lo || x > d.hi {
		return 0
	}
	fx := d.dist.PDF(x)
	if !(fx >= 0) || math.IsInf(fx, 1) {
		if d.err == nil {
			d.err = contractErrorf("PDF(%g) = %g", x, fx)
		}
		return 0
	}
	return fx
}

// quietPDF is like density.pdf, but maps contract violations to 0
// without recording them. It is used after setup, where a Generator
// must remain safe for concurrent use.
func quietPDF(dist Dist, lo, hi float64) func(float64) float64 {
	return func(x float64) float64 {
		if x < lo || x > hi {
			return 0
		}
		fx := dist.PDF(x)
		if !(fx >= 0) || math.IsInf(fx, 1) {
			return 0
		}
		return fx
	}
}
