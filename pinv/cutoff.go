// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pinv

import "math"

const (
	// uerrorCorrection scales the u-resolution into the tolerance
	// actually targeted, leaving room for quadrature error.
	uerrorCorrection = 0.9

	// The tolerated tail probability is tailCutoffFactor times the
	// u-resolution, capped at tailCutoffMax. Heavy-tailed
	// distributions need the larger tailCutoffFactorFine at very
	// small resolutions, or their tails become too long to
	// interpolate.
	tailCutoffFactor     = 0.1
	tailCutoffFactorFine = 0.5
	tailCutoffFineBelow  = 1e-12
	tailCutoffMax        = 1e-10

	cutoffMaxSteps  = 1000
	cutoffWarmup    = 32
	cutoffMaxRoot   = 2048
	cutoffRelTol    = 1e-7
	cutoffDiffScale = 1e-4
)

// tailThreshold returns the tolerated probability of each cut-off
// tail, in units of the PDF.
func tailThreshold(uRes, area float64) float64 {
	factor := tailCutoffFactor
	if uRes < tailCutoffFineBelow {
		factor = tailCutoffFactorFine
	}
	return math.Min(uRes*factor, tailCutoffMax) * area * uerrorCorrection
}

// tailArea estimates the probability of the tail beyond x, away from
// center, without integrating. For a density with local concavity
//
//	lc(x) = 1 - f(x) f''(x) / f'(x)²
//
// the tail probability is approximately f(x)² / ((lc(x)+1) |f'(x)|),
// which is exact for exponential and power-law tails. Derivatives are
// central differences.
//
// tailArea returns +Inf where the approximation does not apply, for
// example where the density is flat or increasing away from the
// center. It also returns f(x).
func (d *density) tailArea(x, center float64) (area, fx float64) {
	fx = d.pdf(x)
	if fx == 0 {
		return 0, 0
	}
	dx := cutoffDiffScale * math.Abs(x-center)
	if dx == 0 {
		return inf, fx
	}
	fl, fr := d.pdf(x-dx), d.pdf(x+dx)
	df := (fr - fl) / (2 * dx)
	if x < center {
		df = -df
	}
	if !(df < 0) {
		return inf, fx
	}
	ddf := (fr - 2*fx + fl) / (dx * dx)
	lc := 1 - fx*ddf/(df*df)
	if !(lc+1 > 0) {
		return inf, fx
	}
	return fx * fx / ((lc + 1) * -df), fx
}

// cutTail searches from center towards limit for the point where the
// estimated tail probability falls to crit. dw is the initial step;
// its sign is ignored. Points beyond limit are never returned.
func (d *density) cutTail(center, limit, dw, crit float64) (float64, error) {
	if center == limit || dw == 0 {
		return limit, nil
	}
	sgn := 1.0
	if limit < center {
		sgn = -1
	}
	dw = math.Abs(dw)
	beyond := func(x float64) bool { return sgn*(x-limit) >= 0 }

	// Step outwards until the tail estimate is below crit. On
	// exit, tail(xa) >= crit > tail(xb).
	xa, aa := center, inf
	var xb, ab, fb float64
	for i := 0; ; i++ {
		if i >= cutoffMaxSteps {
			return math.NaN(), convergenceErrorf("tail beyond %g does not fall below %g", xa, crit)
		}
		if i >= cutoffWarmup {
			dw *= 2
		}
		xb = xa + sgn*dw
		if beyond(xb) {
			return limit, nil
		}
		if math.IsInf(xb, 0) {
			return math.NaN(), convergenceErrorf("tail search from %g overflows", center)
		}
		ab, fb = d.tailArea(xb, center)
		if d.err != nil {
			return math.NaN(), d.err
		}
		if ab < crit {
			break
		}
		xa, aa = xb, ab
	}

	// Find tail(x) = crit with the Illinois variant of regula
	// falsi on 1/tail(x), which is close to linear for
	// exponential and power-law tails.
	ya, yb := 1/aa-1/crit, 1/ab-1/crit
	side := 0
	for i := 0; i < cutoffMaxRoot; i++ {
		var xs float64
		if math.IsInf(yb, 1) || ya == yb {
			xs = xa/2 + xb/2
		} else {
			xs = xa + (xb-xa)*ya/(ya-yb)
		}
		if fpSame(xa, xb) || xs == xa || xs == xb {
			break
		}
		as, fs := d.tailArea(xs, center)
		if d.err != nil {
			return math.NaN(), d.err
		}
		switch {
		case as == 0 && fs > 0:
			// The estimate underflowed, so the
			// relevant part of the tail ends here.
			return xs, nil
		case math.Abs(as/crit-1) < cutoffRelTol:
			return xs, nil
		case as >= crit:
			xa, ya = xs, 1/as-1/crit
			if side == -1 {
				yb /= 2
			}
			side = -1
		default:
			xb, yb, fb = xs, 1/as-1/crit, fs
			if side == 1 {
				ya /= 2
			}
			side = 1
		}
		if i == cutoffMaxRoot-1 {
			return math.NaN(), convergenceErrorf("tail cutoff between %g and %g did not converge", xa, xb)
		}
	}
	if fb == 0 {
		// xb is outside the support. Stay inside.
		return xa, nil
	}
	return xb, nil
}

// cutTails narrows s to the computational domain [left, right] by
// cutting off tails with probability below the tail threshold.
func cutTails(d *density, s support, area, uRes float64) (left, right float64, err error) {
	crit := tailThreshold(uRes, area)
	left, right = s.left, s.right
	if !s.fixedLeft {
		left, err = d.cutTail(s.center, s.lo, (s.left-s.center)/128, crit)
		if err != nil {
			return
		}
		if left < s.left {
			left = d.trimTail(left, s.left, area, crit)
		}
	}
	if !s.fixedRight {
		right, err = d.cutTail(s.center, s.hi, (s.right-s.center)/128, crit)
		if err != nil {
			return
		}
		if right > s.right {
			right = d.trimTail(right, s.right, area, crit)
		}
	}
	if d.err != nil {
		return left, right, d.err
	}
	if !(left < right) {
		return left, right, contractErrorf("empty computational domain [%g, %g]", left, right)
	}
	log.Debugf("computational domain [%g, %g], tail threshold %g", left, right, crit)
	return left, right, nil
}

// trimTail returns the cut point x, or border if the mass between
// them is below crit. Past the border the PDF is negligible, and
// towards a finite end of the domain it may decay faster than the
// tail estimate of cutTail can follow.
func (d *density) trimTail(x, border, area, crit float64) float64 {
	a, b := math.Min(x, border), math.Max(x, border)
	q := integrator{f: d.pdf, area: area}
	if mass := q.integrate(a, b-a, crit); mass < crit {
		log.Debugf("mass %g on [%g, %g] beyond the border is negligible", mass, a, b)
		return border
	}
	return x
}
