// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pinv

import (
	"math"
	"sort"

	"github.com/cockroachdb/errors"
)

// A Generator samples from the approximate inverse CDF of a
// distribution. It is immutable once New returns, so its methods may
// be called concurrently.
type Generator struct {
	dist  Dist
	order int
	uRes  float64

	domain  [2]float64 // declared by the distribution
	support [2]float64 // usable part of domain
	bounds  [2]float64 // computational domain
	area    float64

	// ivs ends with a sentinel holding the right end of the
	// computational domain and the total mass.
	ivs   []Interval
	guide []int
	umax  float64

	// itol is the quadrature tolerance used during setup.
	itol float64
}

// New constructs a Generator for dist.
//
// Setup runs in stages, each depending on the result of the previous
// one: the support where the PDF is not negligible, the approximate
// area below the PDF, the computational domain after cutting off the
// tails, the intervals, and the guide table. If any stage fails, New
// returns an error wrapping ErrInvalidConfig, ErrContract or
// ErrNonConvergence.
func New(dist Dist, cfg Config) (*Generator, error) {
	cfg, err := cfg.normalize()
	if err != nil {
		return nil, err
	}

	lo, hi := dist.Domain()
	if math.IsNaN(lo) || math.IsNaN(hi) || !(lo < hi) {
		return nil, configErrorf("invalid domain [%g, %g]", lo, hi)
	}
	l, r := lo, hi
	if cfg.Left != nil {
		if *cfg.Left < lo || *cfg.Left >= hi {
			return nil, configErrorf("left boundary %g outside domain [%g, %g)", *cfg.Left, lo, hi)
		}
		l = *cfg.Left
	} else if cfg.NoSearchLeft && math.IsInf(lo, 0) {
		return nil, configErrorf("cannot disable the left search on domain [%g, %g]", lo, hi)
	}
	if cfg.Right != nil {
		if *cfg.Right > hi || *cfg.Right <= lo {
			return nil, configErrorf("right boundary %g outside domain (%g, %g]", *cfg.Right, lo, hi)
		}
		r = *cfg.Right
	} else if cfg.NoSearchRight && math.IsInf(hi, 0) {
		return nil, configErrorf("cannot disable the right search on domain [%g, %g]", lo, hi)
	}
	if !(l < r) {
		return nil, configErrorf("empty domain [%g, %g]", l, r)
	}

	center := dist.Center()
	if cfg.Center != nil {
		center = *cfg.Center
	}
	if math.IsNaN(center) {
		return nil, contractErrorf("center is NaN")
	}
	center = math.Min(math.Max(center, l), r)

	d := &density{dist: dist, lo: l, hi: r}
	fc := d.pdf(center)
	if d.err != nil {
		return nil, d.err
	}
	if !(fc > 0) {
		return nil, contractErrorf("PDF(%g) = %g at the center is not positive", center, fc)
	}

	s, err := findSupport(d, center, lo, hi, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "searching support")
	}
	area, err := approxArea(d, s, cfg.UResolution)
	if err != nil {
		return nil, errors.Wrap(err, "estimating area")
	}
	left, right, err := cutTails(d, s, area, cfg.UResolution)
	if err != nil {
		return nil, errors.Wrap(err, "cutting off tails")
	}
	b := newBuilder(d, area, cfg)
	ivs, err := b.build(left, right)
	if err != nil {
		return nil, errors.Wrap(err, "building intervals")
	}

	g := &Generator{
		dist:    dist,
		order:   cfg.Order,
		uRes:    cfg.UResolution,
		domain:  [2]float64{lo, hi},
		support: [2]float64{s.lo, s.hi},
		bounds:  [2]float64{left, right},
		area:    area,
		ivs:     ivs,
		guide:   makeGuide(ivs, cfg.GuideFactor),
		umax:    ivs[len(ivs)-1].CDF,
		itol:    b.itol,
	}
	log.Debugf("generator ready: order %d, u-resolution %g, %d intervals on [%g, %g], mass %g",
		g.order, g.uRes, g.NumIntervals(), left, right, g.umax)
	return g, nil
}

// locate returns the index of the interval containing the cumulative
// mass u*UMax, together with that mass. u must be in [0, 1).
func (g *Generator) locate(u float64) (int, float64) {
	un := u * g.umax
	j := int(u * float64(len(g.guide)))
	if j >= len(g.guide) {
		j = len(g.guide) - 1
	}
	i := g.guide[j]
	last := len(g.ivs) - 2
	for i < last && g.ivs[i+1].CDF <= un {
		i++
	}
	// Only reachable through rounding of u*UMax.
	for i > 0 && g.ivs[i].CDF > un {
		i--
	}
	return i, un
}

// InvCDF returns the approximate inverse CDF at u. Values of u
// outside [0, 1) are clamped.
func (g *Generator) InvCDF(u float64) float64 {
	if !(u > 0) {
		u = 0
	} else if u >= 1 {
		u = oneBelow
	}
	i, un := g.locate(u)
	iv := &g.ivs[i]
	x := iv.X + newtonEval(un-iv.CDF, &iv.U, &iv.Z, g.order)
	return math.Min(math.Max(x, g.support[0]), g.support[1])
}

// oneBelow is the largest float64 less than 1.
var oneBelow = math.Nextafter(1, 0)

// Sample returns a random variate using a uniform variate from src.
func (g *Generator) Sample(src Source) float64 {
	return g.InvCDF(src.Float64())
}

// ApproxCDF returns the CDF of the approximated distribution at x,
// relative to the computational domain: 0 left of it, 1 right of it,
// and ApproxCDF(InvCDF(u)) ≈ u in between. Unlike InvCDF, it evaluates
// the PDF.
func (g *Generator) ApproxCDF(x float64) float64 {
	n := len(g.ivs) - 1
	if !(x > g.ivs[0].X) {
		return 0
	}
	if x >= g.ivs[n].X {
		return 1
	}
	i := sort.Search(n, func(i int) bool { return g.ivs[i+1].X > x })
	q := integrator{f: quietPDF(g.dist, g.support[0], g.support[1]), area: g.area}
	u := (g.ivs[i].CDF + q.integrate(g.ivs[i].X, x-g.ivs[i].X, g.itol)) / g.umax
	return math.Min(math.Max(u, 0), 1)
}

// NumIntervals returns the number of intervals.
func (g *Generator) NumIntervals() int {
	return len(g.ivs) - 1
}

// Intervals returns a copy of the intervals, followed by a sentinel
// whose X is the right end of the computational domain and whose CDF
// is UMax.
func (g *Generator) Intervals() []Interval {
	return append([]Interval(nil), g.ivs...)
}

// Order returns the order of the interpolating polynomials.
func (g *Generator) Order() int {
	return g.order
}

// UResolution returns the u-resolution g was built for.
func (g *Generator) UResolution() float64 {
	return g.uRes
}

// Domain returns the domain declared by the distribution.
func (g *Generator) Domain() (lo, hi float64) {
	return g.domain[0], g.domain[1]
}

// Support returns the part of the domain that variates are clamped
// to: the declared domain, narrowed by Config.Left and Config.Right
// and by points where the PDF is exactly 0.
func (g *Generator) Support() (lo, hi float64) {
	return g.support[0], g.support[1]
}

// Bounds returns the computational domain. The tails outside of it
// were cut off.
func (g *Generator) Bounds() (lo, hi float64) {
	return g.bounds[0], g.bounds[1]
}

// Area returns the approximate area below the PDF estimated during
// setup.
func (g *Generator) Area() float64 {
	return g.area
}

// UMax returns the probability mass covered by the intervals, in the
// units of the PDF. For a normalized PDF it is at most 1.
func (g *Generator) UMax() float64 {
	return g.umax
}

// Clone returns a deep copy of g.
func (g *Generator) Clone() *Generator {
	c := *g
	c.ivs = append([]Interval(nil), g.ivs...)
	c.guide = append([]int(nil), g.guide...)
	return &c
}
