// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pinv

import (
	"math"
	"os"
	"testing"

	"github.com/op/go-logging"
)

func TestMain(m *testing.M) {
	// Precision warnings are expected in some tests.
	logging.SetLevel(logging.ERROR, "pinv")
	os.Exit(m.Run())
}

func normalPDF(x float64) float64 {
	return math.Exp(-x * x / 2)
}

func normalCDF(x float64) float64 {
	return math.Erfc(-x/math.Sqrt2) / 2
}

// stdNormal is an unnormalized standard normal density.
var stdNormal = DistFunc{F: normalPDF}

var stdExp = DistFunc{
	F:  func(x float64) float64 { return math.Exp(-x) },
	Lo: 0, Hi: math.Inf(1),
}

func expCDF(x float64) float64 {
	return -math.Expm1(-x)
}

func ptr(x float64) *float64 {
	return &x
}

// logNormal returns an unnormalized log-normal density with parameters
// mu and sigma and its CDF. The density vanishes faster than any
// power at 0, the end of its domain.
func logNormal(mu, sigma float64) (Dist, func(float64) float64) {
	pdf := func(x float64) float64 {
		if x <= 0 {
			return 0
		}
		z := (math.Log(x) - mu) / sigma
		return math.Exp(-z*z/2) / x
	}
	cdf := func(x float64) float64 {
		if x <= 0 {
			return 0
		}
		return normalCDF((math.Log(x) - mu) / sigma)
	}
	mode := math.Exp(mu - sigma*sigma)
	return DistFunc{F: pdf, Lo: 0, Hi: math.Inf(1), Mode: mode}, cdf
}
