// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pinv

import "math"

const (
	// pdfLowerLimit is the PDF value, relative to the PDF at the
	// center, below which the density is considered negligible.
	pdfLowerLimit = 1e-13

	borderMaxSteps  = 100
	borderMaxBisect = 200
)

// support is the result of the boundary search: the part of the
// domain where the PDF is not negligible.
type support struct {
	center float64

	// lo and hi are the usable domain: the declared domain,
	// narrowed by user overrides and by points where the PDF was
	// found to be exactly zero.
	lo, hi float64

	// left and right are the points where the PDF drops below
	// pdfLowerLimit relative to the center.
	left, right float64

	// fixedLeft and fixedRight are set if left and right were
	// given rather than searched for. No tail is cut off there.
	fixedLeft, fixedRight bool
}

// arcmean returns the mean of x0 and x1 on the arctan scale, which
// moves geometrically towards an infinite end. For large arguments of
// the same sign it returns the harmonic mean.
func arcmean(x0, x1 float64) float64 {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if x1 < -1e3 || x0 > 1e3 {
		return 2 / (1/x0 + 1/x1)
	}
	a0, a1 := math.Atan(x0), math.Atan(x1)
	if math.Abs(a0-a1) < 1 && !math.IsInf(x0, 0) && !math.IsInf(x1, 0) {
		return x0/2 + x1/2
	}
	return math.Tan((a0 + a1) / 2)
}

// fpSame reports whether a and b are equal up to a few ulps. Next to
// 0 the tolerance is absolute.
func fpSame(a, b float64) bool {
	if a == b {
		return true
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}
	scale := math.Max(math.Abs(a), math.Abs(b))
	if a == 0 || b == 0 {
		scale = 1
	}
	return math.Abs(a-b) <= 4*machEps*scale
}

// searchBorder searches from center towards bound for the point where
// the PDF drops below pdfLowerLimit*PDF(center). It returns that point
// and the end of the usable domain on that side, which is bound
// unless the PDF was found to be exactly 0 closer to the center.
func (d *density) searchBorder(center, bound float64) (border, end float64, err error) {
	end = bound
	if center == bound {
		return bound, bound, nil
	}
	flim := d.pdf(center) * pdfLowerLimit

	// Step outwards until the PDF is negligible. On exit,
	// PDF(xl) > flim >= PDF(x).
	xl, x := center, arcmean(center, bound)
	for i := 0; ; i++ {
		if i >= borderMaxSteps {
			return math.NaN(), end, contractErrorf("PDF does not decay between %g and %g", center, bound)
		}
		fx := d.pdf(x)
		if d.err != nil {
			return math.NaN(), end, d.err
		}
		if fx == 0 {
			end = x
		}
		if fx <= flim {
			break
		}
		if fpSame(x, bound) {
			return bound, end, nil
		}
		xl, x = x, arcmean(x, bound)
	}

	// Bisect to land just below flim.
	for i := 0; i < borderMaxBisect && !fpSame(xl, x); i++ {
		xs := xl/2 + x/2
		fs := d.pdf(xs)
		switch {
		case fs == 0:
			end, x = xs, xs
		case fs <= flim:
			x = xs
		default:
			xl = xs
		}
	}
	return x, end, d.err
}

// findSupport runs the boundary search on each side of center that
// is not fixed by cfg. lo and hi are the declared domain.
func findSupport(d *density, center, lo, hi float64, cfg Config) (support, error) {
	s := support{center: center, lo: lo, hi: hi}

	switch {
	case cfg.Left != nil:
		s.lo, s.left, s.fixedLeft = *cfg.Left, *cfg.Left, true
	case cfg.NoSearchLeft:
		s.left, s.fixedLeft = lo, true
	}
	switch {
	case cfg.Right != nil:
		s.hi, s.right, s.fixedRight = *cfg.Right, *cfg.Right, true
	case cfg.NoSearchRight:
		s.right, s.fixedRight = hi, true
	}
	d.lo, d.hi = s.lo, s.hi

	if !s.fixedLeft {
		border, end, err := d.searchBorder(center, s.lo)
		if err != nil {
			return s, err
		}
		s.left, s.lo = border, end
	}
	if !s.fixedRight {
		border, end, err := d.searchBorder(center, s.hi)
		if err != nil {
			return s, err
		}
		s.right, s.hi = border, end
	}
	d.lo, d.hi = s.lo, s.hi

	if !(s.left < s.right) {
		return s, contractErrorf("empty support [%g, %g] around center %g", s.left, s.right, center)
	}
	log.Debugf("support [%g, %g], PDF negligible outside [%g, %g]", s.lo, s.hi, s.left, s.right)
	return s, nil
}
