// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pinv

import "math"

// An Interval is one piece of the approximate inverse CDF.
//
// On [X, next X], the inverse CDF is approximated by
//
//	x(u) = X + p(u - CDF)
//
// where p is the Newton polynomial with nodes 0, U[0], ..., U[order-2]
// and coefficients Z[0], ..., Z[order-1]. U[order-1] is the probability
// mass of the interval. Only the first order entries of U and Z are
// used.
type Interval struct {
	// X is the left boundary of the interval.
	X float64

	// CDF is the probability mass left of X within the
	// computational domain, in the units of the PDF.
	CDF float64

	U, Z [MaxOrder]float64
}

const (
	// massFloor is the smallest mass of a sub-interval that is
	// accepted. Less means the PDF vanishes inside the domain.
	massFloor = 1e-50

	// quadTolFactor is the quadrature tolerance relative to the
	// interpolation tolerance.
	quadTolFactor = 0.05

	// Step size control. A rejected step shrinks by stepShrinkFar
	// if the error exceeds stepFarOver times the tolerance, and by
	// stepShrink otherwise. An accepted step grows by stepGrowFast
	// if the error is below stepFastBelow times the tolerance, and
	// by stepGrow otherwise.
	stepShrinkFar = 0.81
	stepShrink    = 0.9
	stepFarOver   = 4
	stepGrow      = 1.2
	stepGrowFast  = 2
	stepFastBelow = 0.01

	initialSteps = 128
)

// A builder partitions the computational domain into intervals.
type builder struct {
	d     *density
	q     integrator
	order int

	// utol is the tolerated u-error of an interval; itol is the
	// tolerance of each integral. Both are in units of the PDF.
	utol, itol float64

	maxIntervals int

	pc   []float64 // construction points on [0, 1]
	xval []float64 // construction points of the current candidate
	ut   []float64 // test points of the current candidate
}

func newBuilder(d *density, area float64, cfg Config) *builder {
	b := &builder{
		d:            d,
		q:            integrator{f: d.pdf, area: area},
		order:        cfg.Order,
		utol:         cfg.UResolution * area * uerrorCorrection,
		maxIntervals: cfg.MaxIntervals,
		pc:           make([]float64, cfg.Order+1),
		xval:         make([]float64, cfg.Order+1),
		ut:           make([]float64, cfg.Order),
	}
	b.itol = b.utol * quadTolFactor
	chebyshevPoints(b.order, b.pc)
	return b
}

// create computes the interpolating polynomial of iv over the
// construction points b.xval.
func (b *builder) create(iv *Interval) error {
	for i := 0; i < b.order; i++ {
		dx := b.xval[i+1] - b.xval[i]
		mass := b.q.integrate(b.xval[i], dx, b.itol)
		if b.d.err != nil {
			return b.d.err
		}
		if !(mass >= massFloor) {
			return convergenceErrorf("PDF integrates to %g on [%g, %g]", mass, b.xval[i], b.xval[i+1])
		}
		iv.U[i] = mass
		if i > 0 {
			iv.U[i] += iv.U[i-1]
		}
		iv.Z[i] = dx / mass
	}
	dividedDifferences(&iv.U, &iv.Z, b.order)
	return nil
}

// mass returns the integral of the PDF from a to b, which is negative
// if b < a.
func (b *builder) mass(a, c float64) float64 {
	if c < a {
		return -b.q.integrate(c, a-c, b.itol)
	}
	return b.q.integrate(a, c-a, b.itol)
}

// maxError estimates the u-error of iv, whose construction points
// are b.xval. At each test point t, the polynomial gives x(t); the
// PDF integrated from the preceding construction point to x(t) gives
// the u-value actually reached there.
func (b *builder) maxError(iv *Interval) float64 {
	testPoints(&iv.U, b.order, b.ut)
	x0 := b.xval[0]
	maxErr := 0.0
	uk := 0.0
	for k, t := range b.ut {
		x := x0 + newtonEval(t, &iv.U, &iv.Z, b.order)
		if math.IsNaN(x) {
			return inf
		}
		err := math.Abs(uk + b.mass(b.xval[k], x) - t)
		if !(err <= maxErr) {
			maxErr = err
		}
		uk = iv.U[k]
	}
	return maxErr
}

// build partitions [left, right] into intervals with u-error below
// b.utol. The returned slice ends with a sentinel interval holding
// right and the total mass.
func (b *builder) build(left, right float64) ([]Interval, error) {
	ivs := make([]Interval, 0, initialSteps)
	h := (right - left) / initialSteps
	x, cdf := left, 0.0
	var cand Interval
	for iter := 0; x < right; iter++ {
		if iter >= 10*b.maxIntervals {
			return nil, convergenceErrorf("no interval accepted at %g after %d attempts", x, iter)
		}
		if len(ivs) >= b.maxIntervals {
			return nil, convergenceErrorf("more than %d intervals needed, stopped at %g of [%g, %g]", b.maxIntervals, x, left, right)
		}

		end := x + h
		if end >= right {
			end, h = right, right-x
		}
		for i, p := range b.pc {
			b.xval[i] = x + h*p
		}
		b.xval[b.order] = end
		if !(b.xval[1] > x && end > b.xval[b.order-1]) {
			return nil, convergenceErrorf("step size %g underflows at %g", h, x)
		}

		cand = Interval{X: x, CDF: cdf}
		if err := b.create(&cand); err != nil {
			return nil, err
		}
		maxErr := b.maxError(&cand)
		if b.d.err != nil {
			return nil, b.d.err
		}

		if !(maxErr <= b.utol) {
			if maxErr > stepFarOver*b.utol {
				h *= stepShrinkFar
			} else {
				h *= stepShrink
			}
			continue
		}

		ivs = append(ivs, cand)
		cdf += cand.U[b.order-1]
		x = end
		if maxErr < stepFastBelow*b.utol {
			h *= stepGrowFast
		} else {
			h *= stepGrow
		}
	}
	ivs = append(ivs, Interval{X: right, CDF: cdf})
	if b.q.warnings > 0 {
		log.Warningf("%d integrals did not reach their tolerance; the u-error may be larger than requested", b.q.warnings)
	}
	log.Debugf("%d intervals, total mass %g", len(ivs)-1, cdf)
	return ivs[:len(ivs):len(ivs)], nil
}
