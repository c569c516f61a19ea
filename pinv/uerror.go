// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pinv

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// UErrorResult summarizes the observed u-error of a Generator.
type UErrorResult struct {
	// N is the number of u-values tested.
	N int

	// Max and Mean are the largest and the mean observed u-error
	// |u - CDF(InvCDF(u))|.
	Max, Mean float64

	// ArgMax is the u-value at which Max was observed.
	ArgMax float64
}

// UError estimates the u-error of g against cdf, the exact CDF of the
// distribution g was built for, normalized to 1.
//
// If src is nil, UError tests the n midpoints of an equidistant grid
// on [0, 1]. Otherwise it draws n u-values from src.
func UError(g *Generator, cdf func(float64) float64, n int, src Source) UErrorResult {
	if n <= 0 {
		panic("UError: n must be positive")
	}
	us := make([]float64, n)
	errs := make([]float64, n)
	for i := range us {
		var u float64
		if src == nil {
			u = (float64(i) + 0.5) / float64(n)
		} else {
			u = src.Float64()
		}
		us[i] = u
		errs[i] = math.Abs(u - cdf(g.InvCDF(u)))
	}
	imax := floats.MaxIdx(errs)
	return UErrorResult{
		N:      n,
		Max:    errs[imax],
		Mean:   stat.Mean(errs, nil),
		ArgMax: us[imax],
	}
}
