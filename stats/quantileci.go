// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/combin"
	"gonum.org/v1/gonum/stat/distuv"
)

// QuantileCIResult is a distribution-free confidence interval for a
// quantile, expressed in order statistics of a sample.
type QuantileCIResult struct {
	// Quantile and N are the arguments to QuantileCI.
	Quantile float64
	N        int

	// Confidence is the achieved confidence level. It is at least
	// the requested one.
	Confidence float64

	// LoOrder and HiOrder are the 1-based order statistics
	// bounding the interval. LoOrder 0 stands for -Inf and
	// HiOrder N+1 for +Inf.
	LoOrder, HiOrder int

	// Ambiguous is set if the interval shifted right by one order
	// statistic has the same confidence.
	Ambiguous bool
}

// FromSample returns the interval in terms of the values of s, which
// must be an unweighted sample of size q.N.
func (q QuantileCIResult) FromSample(s Sample) (lo, hi float64) {
	if s.Weights != nil {
		panic("quantile CI of a weighted sample")
	}
	if len(s.Xs) != q.N {
		panic("sample size differs from quantile CI")
	}
	if !s.Sorted {
		s = *s.Copy().Sort()
	}
	lo, hi = math.Inf(-1), math.Inf(1)
	if q.LoOrder >= 1 {
		lo = s.Xs[q.LoOrder-1]
	}
	if q.HiOrder <= len(s.Xs) {
		hi = s.Xs[q.HiOrder-1]
	}
	return
}

// quantileCIApproxThreshold is the sample size above which QuantileCI
// uses the normal approximation. It is a variable for testing.
var quantileCIApproxThreshold = 30

// binomialPMF returns the probability of k successes in n trials with
// success probability p. It is exact for p = 1/2 and small n.
func binomialPMF(n, k int, p float64) float64 {
	if k < 0 || k > n {
		return 0
	}
	return float64(combin.Binomial(n, k)) * math.Pow(p, float64(k)) * math.Pow(1-p, float64(n-k))
}

// QuantileCI returns the confidence interval of the q'th quantile for
// a sample of size n.
//
// The number of sample values below the q'th population quantile is
// binomially distributed, so order statistics k and k+1 bracket the
// quantile with probability PMF(k). The interval collects the most
// likely brackets until it reaches the confidence level, preferring
// the left one on ties.
func QuantileCI(n int, q, confidence float64) QuantileCIResult {
	res := QuantileCIResult{Quantile: q, N: n}
	switch {
	case confidence >= 1:
		res.Confidence, res.LoOrder, res.HiOrder = 1, 0, n+1
		return res
	case q <= 0:
		res.Confidence, res.LoOrder, res.HiOrder = 1, 0, 1
		return res
	case q >= 1:
		res.Confidence, res.LoOrder, res.HiOrder = 1, n, n+1
		return res
	}

	var l, r int
	if n <= quantileCIApproxThreshold {
		pmf := func(k int) float64 { return binomialPMF(n, k, q) }

		// Grow [l, r) outward from the lower mode. The PMF
		// decreases monotonically away from it.
		mode := int(math.Ceil(float64(n+1)*q) - 1)
		l, r = mode, mode+1
		acc := pmf(mode)
		lp, rp := pmf(l-1), pmf(r)
		res.Ambiguous = rp == acc
		for acc < confidence && (lp > 0 || rp > 0) {
			res.Ambiguous = lp == rp
			if lp >= rp {
				acc += lp
				l--
				lp = pmf(l - 1)
			} else {
				acc += rp
				r++
				rp = pmf(r)
			}
		}
		res.Confidence = acc
	} else {
		// Normal approximation with continuity correction: order
		// statistic k covers [k-0.5, k+0.5].
		mu := float64(n) * q
		norm := distuv.Normal{Mu: mu, Sigma: math.Sqrt(mu * (1 - q))}
		x0 := norm.Quantile((1 - confidence) / 2)
		x1 := 2*mu - x0
		l = int(math.Floor(math.Floor(x0-0.5)+0.5)) + 1
		r = int(math.Floor(math.Ceil(x1-0.5)+0.5)) + 1

		mass := func(l, r int) float64 {
			return norm.CDF(float64(r)-0.5) - norm.CDF(float64(l)-0.5)
		}
		res.Confidence = mass(l, r)
		// The band is symmetric; dropping its right end may
		// still satisfy the confidence level.
		if c := mass(l, r-1); c >= confidence && c < res.Confidence {
			res.Confidence, res.Ambiguous = c, true
			r--
		}
		if l <= 0 && r >= n+1 {
			// Everything is covered, but the normal tails
			// beyond the sample make the mass fall short of 1.
			res.Confidence, res.Ambiguous = 1, false
		}
	}

	res.LoOrder, res.HiOrder = max(l, 0), min(r, n+1)
	return res
}
