// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pinv generates random variates from a continuous univariate
// distribution given only its probability density function.
//
// The method is numerical inversion by polynomial interpolation. New
// locates the region where the density is non-negligible, cuts off
// tails whose probability is below the requested u-resolution, and
// partitions the remaining domain into intervals. On each interval the
// inverse CDF is approximated by a Newton interpolating polynomial
// whose nodes are computed by Gauss-Lobatto integration of the PDF.
// Intervals are subdivided until the estimated u-error
//
//	|U - CDF(InvCDF(U))|
//
// is below the u-resolution. After setup, sampling costs a guide table
// lookup and the evaluation of one low-degree polynomial.
//
// The method is approximate by construction. It assumes the density
// is non-negligible on a single connected region.
package pinv // import "github.com/moremath/go-pinv/pinv"

import (
	"math"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("pinv")

// machEps is the difference between 1 and the next larger float64.
const machEps = 0x1p-52

var inf = math.Inf(1)
