// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pinv

import "math"

// areaPlausible is the smallest area for which the first estimate,
// computed with an absolute tolerance that assumes a normalized PDF,
// is accepted.
const areaPlausible = 0.1

// approxArea estimates the integral of the PDF over [s.left, s.right].
// The estimate only needs to be good enough to scale the absolute
// tolerances of the later stages.
func approxArea(d *density, s support, uRes float64) (float64, error) {
	tol, scale := uRes, 1.0
	var area float64
	for try := 0; try < 2; try++ {
		q := integrator{f: d.pdf, area: scale}
		area = q.integrate(s.left, s.center-s.left, tol) +
			q.integrate(s.center, s.right-s.center, tol)
		if d.err != nil {
			return math.NaN(), d.err
		}
		if !(area > 0) || math.IsInf(area, 0) {
			return math.NaN(), contractErrorf("area below PDF on [%g, %g] is %g", s.left, s.right, area)
		}
		if area >= areaPlausible {
			break
		}
		tol, scale = uRes*area, area
	}
	log.Debugf("approximate area %g", area)
	return area, nil
}
