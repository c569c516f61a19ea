// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// The distributions in this file delegate to gonum's distuv. The
// wrappers fix the density at the ends of the domain, where distuv
// may return NaN or +Inf, and supply Domain and Center.

// Bounds of the gonum-backed distributions cover this much weight.
const (
	boundsLo = 0.001
	boundsHi = 0.999
)

// GammaDist is a gamma distribution with shape Alpha and rate Beta.
type GammaDist struct {
	Alpha, Beta float64
}

func (g GammaDist) dist() distuv.Gamma {
	return distuv.Gamma{Alpha: g.Alpha, Beta: g.Beta}
}

func (g GammaDist) PDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return g.dist().Prob(x)
}

func (g GammaDist) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return g.dist().CDF(x)
}

func (g GammaDist) Bounds() (float64, float64) {
	return 0, g.dist().Quantile(boundsHi)
}

func (g GammaDist) Domain() (float64, float64) {
	return 0, inf
}

// Center returns the mode, or the mean if the density is unbounded
// at 0.
func (g GammaDist) Center() float64 {
	if g.Alpha > 1 {
		return (g.Alpha - 1) / g.Beta
	}
	return g.Alpha / g.Beta
}

// BetaDist is a beta distribution on [0, 1].
type BetaDist struct {
	Alpha, Beta float64
}

func (b BetaDist) dist() distuv.Beta {
	return distuv.Beta{Alpha: b.Alpha, Beta: b.Beta}
}

func (b BetaDist) PDF(x float64) float64 {
	if x <= 0 || x >= 1 {
		return 0
	}
	return b.dist().Prob(x)
}

func (b BetaDist) CDF(x float64) float64 {
	switch {
	case x <= 0:
		return 0
	case x >= 1:
		return 1
	}
	return b.dist().CDF(x)
}

func (b BetaDist) Bounds() (float64, float64) {
	return 0, 1
}

func (b BetaDist) Domain() (float64, float64) {
	return 0, 1
}

func (b BetaDist) Center() float64 {
	if b.Alpha > 1 && b.Beta > 1 {
		return (b.Alpha - 1) / (b.Alpha + b.Beta - 2)
	}
	return b.Alpha / (b.Alpha + b.Beta)
}

// StudentsTDist is a Student's t-distribution with Nu degrees of
// freedom, location Mu and scale Sigma.
type StudentsTDist struct {
	Nu, Mu, Sigma float64
}

func (s StudentsTDist) dist() distuv.StudentsT {
	return distuv.StudentsT{Mu: s.Mu, Sigma: s.Sigma, Nu: s.Nu}
}

func (s StudentsTDist) PDF(x float64) float64 {
	return s.dist().Prob(x)
}

func (s StudentsTDist) CDF(x float64) float64 {
	return s.dist().CDF(x)
}

func (s StudentsTDist) Bounds() (float64, float64) {
	d := s.dist()
	return d.Quantile(boundsLo), d.Quantile(boundsHi)
}

func (s StudentsTDist) Domain() (float64, float64) {
	return -inf, inf
}

func (s StudentsTDist) Center() float64 {
	return s.Mu
}

// LogNormalDist is a distribution whose logarithm is normal with mean
// Mu and standard deviation Sigma.
type LogNormalDist struct {
	Mu, Sigma float64
}

func (l LogNormalDist) dist() distuv.LogNormal {
	return distuv.LogNormal{Mu: l.Mu, Sigma: l.Sigma}
}

func (l LogNormalDist) PDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return l.dist().Prob(x)
}

func (l LogNormalDist) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return l.dist().CDF(x)
}

func (l LogNormalDist) Bounds() (float64, float64) {
	d := l.dist()
	return 0, d.Quantile(boundsHi)
}

func (l LogNormalDist) Domain() (float64, float64) {
	return 0, inf
}

func (l LogNormalDist) Center() float64 {
	return math.Exp(l.Mu - l.Sigma*l.Sigma)
}

// WeibullDist is a Weibull distribution with shape K and scale Lambda.
type WeibullDist struct {
	K, Lambda float64
}

func (w WeibullDist) dist() distuv.Weibull {
	return distuv.Weibull{K: w.K, Lambda: w.Lambda}
}

func (w WeibullDist) PDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return w.dist().Prob(x)
}

func (w WeibullDist) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return w.dist().CDF(x)
}

func (w WeibullDist) Bounds() (float64, float64) {
	return 0, w.dist().Quantile(boundsHi)
}

func (w WeibullDist) Domain() (float64, float64) {
	return 0, inf
}

// Center returns the mode, or the median if the density is unbounded
// at 0.
func (w WeibullDist) Center() float64 {
	if w.K > 1 {
		return w.Lambda * math.Pow((w.K-1)/w.K, 1/w.K)
	}
	return w.Lambda * math.Pow(math.Ln2, 1/w.K)
}
