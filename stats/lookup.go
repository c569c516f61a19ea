// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrUnknownDist is returned by Lookup for an unknown family name.
var ErrUnknownDist = errors.New("unknown distribution")

// ErrBadParams is returned by Lookup for parameters that do not
// define a distribution.
var ErrBadParams = errors.New("bad distribution parameters")

type family struct {
	params   []string
	defaults []float64
	valid    func(p []float64) bool
	make     func(p []float64) Dist
}

// shapes returns a check that p[i] >= 1 for the given shape parameters
// and p[j] > 0 for the rest. Shapes below 1 give the density a pole at
// the end of its domain.
func shapes(shape []int, scale ...int) func([]float64) bool {
	return func(p []float64) bool {
		for _, j := range shape {
			if !(p[j] >= 1) {
				return false
			}
		}
		return positive(scale...)(p)
	}
}

func positive(i ...int) func([]float64) bool {
	return func(p []float64) bool {
		for _, j := range i {
			if !(p[j] > 0) {
				return false
			}
		}
		return true
	}
}

var families = map[string]family{
	"normal": {
		[]string{"mu", "sigma"}, []float64{0, 1}, positive(1),
		func(p []float64) Dist { return NormalDist{p[0], p[1]} },
	},
	"exponential": {
		[]string{"rate"}, []float64{1}, positive(0),
		func(p []float64) Dist { return ExponentialDist{p[0]} },
	},
	"cauchy": {
		[]string{"loc", "scale"}, []float64{0, 1}, positive(1),
		func(p []float64) Dist { return CauchyDist{p[0], p[1]} },
	},
	"uniform": {
		[]string{"lo", "hi"}, []float64{0, 1},
		func(p []float64) bool { return p[0] < p[1] },
		func(p []float64) Dist { return UniformDist{p[0], p[1]} },
	},
	"gamma": {
		[]string{"alpha", "beta"}, []float64{2, 1}, shapes([]int{0}, 1),
		func(p []float64) Dist { return GammaDist{p[0], p[1]} },
	},
	"beta": {
		[]string{"alpha", "beta"}, []float64{2, 2}, shapes([]int{0, 1}),
		func(p []float64) Dist { return BetaDist{p[0], p[1]} },
	},
	"t": {
		[]string{"nu", "mu", "sigma"}, []float64{3, 0, 1}, positive(0, 2),
		func(p []float64) Dist { return StudentsTDist{p[0], p[1], p[2]} },
	},
	"lognormal": {
		[]string{"mu", "sigma"}, []float64{0, 1}, positive(1),
		func(p []float64) Dist { return LogNormalDist{p[0], p[1]} },
	},
	"weibull": {
		[]string{"k", "lambda"}, []float64{1.5, 1}, shapes([]int{0}, 1),
		func(p []float64) Dist { return WeibullDist{p[0], p[1]} },
	},
}

// Names returns the distribution families known to Lookup, sorted.
func Names() []string {
	names := make([]string, 0, len(families))
	for name := range families {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Usage returns a short description of the parameters of the family
// called name, such as "normal(mu=0, sigma=1)".
func Usage(name string) string {
	f, ok := families[name]
	if !ok {
		return name
	}
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('(')
	for i, p := range f.params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p)
		b.WriteByte('=')
		b.WriteString(strconv.FormatFloat(f.defaults[i], 'g', -1, 64))
	}
	b.WriteByte(')')
	return b.String()
}

// Lookup returns the distribution of the family called name with the
// given parameters. Missing trailing parameters take their default
// values.
//
// Lookup only returns bounded densities: the shape parameters of
// gamma, beta and weibull must be at least 1. Other parameters must be
// finite, and scales positive.
func Lookup(name string, params []float64) (Dist, error) {
	f, ok := families[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownDist, "%q (known: %s)", name, strings.Join(Names(), ", "))
	}
	if len(params) > len(f.params) {
		return nil, errors.Wrapf(ErrBadParams, "%s takes at most %d parameters, got %d", Usage(name), len(f.params), len(params))
	}
	p := append([]float64(nil), f.defaults...)
	copy(p, params)
	for i, x := range p {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, errors.Wrapf(ErrBadParams, "%s: %s = %v", name, f.params[i], x)
		}
	}
	if !f.valid(p) {
		return nil, errors.Wrapf(ErrBadParams, "%s%v", name, p)
	}
	return f.make(p), nil
}
