// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pinv

import "math"

const (
	// MinOrder and MaxOrder bound the order of the interpolating
	// polynomials.
	MinOrder = 2
	MaxOrder = 19

	// DefaultOrder is the polynomial order used when Config.Order
	// is 0.
	DefaultOrder = 5

	// MinUResolution and MaxUResolution bound the u-resolution.
	// Requests outside this range are clamped.
	MinUResolution = 5 * machEps
	MaxUResolution = 1e-2

	// DefaultUResolution is the u-resolution used when
	// Config.UResolution is 0.
	DefaultUResolution = 1e-10

	// DefaultMaxIntervals is the interval budget used when
	// Config.MaxIntervals is 0.
	DefaultMaxIntervals = 10000

	minMaxIntervals = 100
	maxMaxIntervals = 1000000

	// DefaultGuideFactor is the guide table size relative to the
	// number of intervals used when Config.GuideFactor is 0.
	DefaultGuideFactor = 1

	maxGuideFactor = 100
)

// Config represents options for constructing a Generator.
//
// The default (zero) value of Config is a reasonable default
// configuration: order 5 polynomials, a u-resolution of 1e-10, and
// automatic search for the computational domain on both sides.
type Config struct {
	// Order is the order of the interpolating polynomials. Higher
	// orders need fewer intervals but are more sensitive to
	// rounding. It must be in [MinOrder, MaxOrder].
	Order int

	// UResolution is the maximal tolerated u-error. Finite
	// positive values outside [MinUResolution, MaxUResolution]
	// are clamped.
	UResolution float64

	// Left and Right, if non-nil, fix the corresponding end of the
	// computational domain and disable the boundary and tail
	// searches on that side. They must lie within the domain of
	// the distribution. This can also be used to sample from a
	// truncated distribution.
	Left, Right *float64

	// NoSearchLeft and NoSearchRight disable the searches on the
	// corresponding side and use the end of the distribution's
	// domain instead, which then must be finite.
	NoSearchLeft, NoSearchRight bool

	// Center, if non-nil, overrides the distribution's Center.
	Center *float64

	// MaxIntervals limits the number of intervals. Setup fails if
	// more are needed. The number of construction attempts is
	// limited to 10*MaxIntervals.
	MaxIntervals int

	// GuideFactor is the size of the guide table relative to the
	// number of intervals. Larger tables shorten the linear scan
	// during sampling.
	GuideFactor float64
}

// normalize returns a copy of c with defaults filled in, or an error
// if c is invalid.
func (c Config) normalize() (Config, error) {
	if c.Order == 0 {
		c.Order = DefaultOrder
	}
	if c.Order < MinOrder || c.Order > MaxOrder {
		return c, configErrorf("order %d not in [%d, %d]", c.Order, MinOrder, MaxOrder)
	}

	switch {
	case c.UResolution == 0:
		c.UResolution = DefaultUResolution
	case math.IsNaN(c.UResolution) || c.UResolution < 0:
		return c, configErrorf("u-resolution %g is not positive", c.UResolution)
	case c.UResolution < MinUResolution:
		log.Warningf("u-resolution %g too small, using %g", c.UResolution, MinUResolution)
		c.UResolution = MinUResolution
	case c.UResolution > MaxUResolution:
		log.Warningf("u-resolution %g too large, using %g", c.UResolution, MaxUResolution)
		c.UResolution = MaxUResolution
	}

	if c.MaxIntervals == 0 {
		c.MaxIntervals = DefaultMaxIntervals
	}
	if c.MaxIntervals < minMaxIntervals || c.MaxIntervals > maxMaxIntervals {
		return c, configErrorf("maximum number of intervals %d not in [%d, %d]", c.MaxIntervals, minMaxIntervals, maxMaxIntervals)
	}

	if c.GuideFactor == 0 {
		c.GuideFactor = DefaultGuideFactor
	}
	if !(c.GuideFactor > 0 && c.GuideFactor <= maxGuideFactor) {
		return c, configErrorf("guide factor %g not in (0, %d]", c.GuideFactor, maxGuideFactor)
	}

	if c.Left != nil && !isFinite(*c.Left) {
		return c, configErrorf("left boundary %g is not finite", *c.Left)
	}
	if c.Right != nil && !isFinite(*c.Right) {
		return c, configErrorf("right boundary %g is not finite", *c.Right)
	}
	if c.Left != nil && c.Right != nil && !(*c.Left < *c.Right) {
		return c, configErrorf("left boundary %g not less than right boundary %g", *c.Left, *c.Right)
	}
	if c.Center != nil && !isFinite(*c.Center) {
		return c, configErrorf("center %g is not finite", *c.Center)
	}
	return c, nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
