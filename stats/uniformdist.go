// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// UniformDist is a continuous uniform distribution on [Lo, Hi].
type UniformDist struct {
	Lo, Hi float64
}

func (u UniformDist) PDF(x float64) float64 {
	if x < u.Lo || x > u.Hi {
		return 0
	}
	return 1 / (u.Hi - u.Lo)
}

func (u UniformDist) CDF(x float64) float64 {
	switch {
	case x <= u.Lo:
		return 0
	case x >= u.Hi:
		return 1
	}
	return (x - u.Lo) / (u.Hi - u.Lo)
}

func (u UniformDist) Bounds() (float64, float64) {
	return u.Lo, u.Hi
}

func (u UniformDist) Domain() (float64, float64) {
	return u.Lo, u.Hi
}

func (u UniformDist) Center() float64 {
	return u.Lo/2 + u.Hi/2
}
