// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pinv

import (
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gonum.org/v1/gonum/integrate/quad"
)

func newGenerator(t *testing.T, dist Dist, cfg Config) *Generator {
	t.Helper()
	g, err := New(dist, cfg)
	require.NoError(t, err)
	return g
}

func checkIntervals(t *testing.T, g *Generator, pdf func(float64) float64) {
	t.Helper()
	ivs := g.Intervals()
	require.Len(t, ivs, g.NumIntervals()+1)
	lo, hi := g.Bounds()
	assert.Equal(t, lo, ivs[0].X)
	assert.Equal(t, hi, ivs[len(ivs)-1].X)
	assert.Equal(t, 0.0, ivs[0].CDF)
	assert.Equal(t, g.UMax(), ivs[len(ivs)-1].CDF)
	for i := 0; i+1 < len(ivs); i++ {
		a, b := ivs[i], ivs[i+1]
		if !(a.X < b.X) {
			t.Fatalf("interval %d: [%v, %v] is empty", i, a.X, b.X)
		}
		// Intervals are contiguous in u.
		if !aeq(a.CDF+a.U[g.Order()-1], b.CDF) {
			t.Errorf("interval %d: CDF %v + mass %v != next CDF %v", i, a.CDF, a.U[g.Order()-1], b.CDF)
		}
		mass := quad.Fixed(pdf, a.X, b.X, 30, nil, 0)
		assert.InDelta(t, mass, b.CDF-a.CDF, 1e-10, "mass of interval %d", i)
	}
}

// extremeUs are u-values deep in the tails, beyond the reach of a
// moderate UError grid.
var extremeUs = []float64{1e-15, 1e-12, 1e-10, 1e-8, 1 - 1e-8, 1 - 1e-10, 1 - 1e-12, 1 - 1e-15}

func checkExtremeTails(t *testing.T, g *Generator, cdf func(float64) float64, tol float64) {
	t.Helper()
	for _, u := range extremeUs {
		x := g.InvCDF(u)
		assert.InDelta(t, u, cdf(x), tol, "u=%v x=%v", u, x)
	}
}

func TestNormal(t *testing.T) {
	g := newGenerator(t, stdNormal, Config{})
	assert.Equal(t, DefaultOrder, g.Order())
	assert.Equal(t, DefaultUResolution, g.UResolution())
	assert.Greater(t, g.NumIntervals(), 10)
	assert.Less(t, g.NumIntervals(), 1000)
	assert.InEpsilon(t, math.Sqrt(2*math.Pi), g.Area(), 1e-8)
	assert.InEpsilon(t, math.Sqrt(2*math.Pi), g.UMax(), 1e-9)

	blo, bhi := g.Bounds()
	assert.InDelta(t, -6.7, blo, 0.3)
	assert.InDelta(t, 6.7, bhi, 0.3)
	lo, hi := g.Domain()
	assert.True(t, math.IsInf(lo, -1) && math.IsInf(hi, 1))

	checkIntervals(t, g, normalPDF)

	res := UError(g, normalCDF, 10000, nil)
	assert.Less(t, res.Max, 2e-10, "u-error %+v", res)
	checkExtremeTails(t, g, normalCDF, 2e-10)

	prev := math.Inf(-1)
	for i := 0; i <= 10000; i++ {
		x := g.InvCDF(float64(i) / 10000)
		if x < prev {
			t.Fatalf("InvCDF not monotone at u=%v: %v < %v", float64(i)/10000, x, prev)
		}
		prev = x
	}
	assert.InDelta(t, 0, g.InvCDF(0.5), 1e-9)
	assert.Equal(t, blo, g.InvCDF(0))
	assert.Equal(t, g.InvCDF(-1), g.InvCDF(0))
	assert.Equal(t, g.InvCDF(1), g.InvCDF(2))
	assert.Equal(t, g.InvCDF(math.NaN()), g.InvCDF(0))
}

func TestDeterministic(t *testing.T) {
	g1 := newGenerator(t, stdNormal, Config{})
	g2 := newGenerator(t, stdNormal, Config{})
	assert.Equal(t, g1.Intervals(), g2.Intervals())
	for _, u := range []float64{0, 0.001, 0.3, 0.5, 0.999999} {
		assert.Equal(t, g1.InvCDF(u), g2.InvCDF(u))
	}
}

func TestExponential(t *testing.T) {
	g := newGenerator(t, stdExp, Config{})
	lo, hi := g.Bounds()
	assert.Equal(t, 0.0, lo)
	assert.GreaterOrEqual(t, hi, 20.0)
	assert.LessOrEqual(t, hi, 30.0)
	lo, hi = g.Support()
	assert.Equal(t, 0.0, lo)
	assert.True(t, math.IsInf(hi, 1))

	checkIntervals(t, g, stdExp.F)

	res := UError(g, expCDF, 10000, nil)
	assert.Less(t, res.Max, 2e-10, "u-error %+v", res)
	checkExtremeTails(t, g, expCDF, 2e-10)
	assert.Equal(t, 0.0, g.InvCDF(0))
}

func TestLogNormal(t *testing.T) {
	for _, p := range []struct{ mu, sigma float64 }{{0, 1}, {0, 0.3}, {2, 1}} {
		dist, cdf := logNormal(p.mu, p.sigma)
		g, err := New(dist, Config{})
		require.NoError(t, err, "lognormal(%v, %v)", p.mu, p.sigma)

		lo, _ := g.Bounds()
		assert.Greater(t, lo, 0.0)
		res := UError(g, cdf, 10000, nil)
		assert.Less(t, res.Max, 2e-10, "lognormal(%v, %v): u-error %+v", p.mu, p.sigma, res)
		checkExtremeTails(t, g, cdf, 2e-10)
	}
}

func TestUnnormalized(t *testing.T) {
	scaled := DistFunc{F: func(x float64) float64 { return 1e-3 * normalPDF(x) }}
	g := newGenerator(t, scaled, Config{})
	assert.InEpsilon(t, 1e-3*math.Sqrt(2*math.Pi), g.UMax(), 1e-8)
	res := UError(g, normalCDF, 1000, nil)
	assert.Less(t, res.Max, 2e-10, "u-error %+v", res)
}

func TestTruncated(t *testing.T) {
	g := newGenerator(t, stdNormal, Config{Left: ptr(-1), Right: ptr(2)})
	lo, hi := g.Bounds()
	assert.Equal(t, -1.0, lo)
	assert.Equal(t, 2.0, hi)
	lo, hi = g.Support()
	assert.Equal(t, -1.0, lo)
	assert.Equal(t, 2.0, hi)

	plo, phi := normalCDF(-1), normalCDF(2)
	cdf := func(x float64) float64 { return (normalCDF(x) - plo) / (phi - plo) }
	res := UError(g, cdf, 10000, nil)
	assert.Less(t, res.Max, 2e-10, "u-error %+v", res)
	assert.Equal(t, -1.0, g.InvCDF(0))
	assert.InDelta(t, 2, g.InvCDF(1), 1e-6)
	assert.LessOrEqual(t, g.InvCDF(1), 2.0)
}

func TestNoSearch(t *testing.T) {
	uniform := DistFunc{F: func(float64) float64 { return 2 }, Lo: 0, Hi: 1, Mode: 0.5}
	g := newGenerator(t, uniform, Config{NoSearchLeft: true, NoSearchRight: true})
	lo, hi := g.Bounds()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 1.0, hi)
	for _, u := range []float64{0, 0.25, 0.5, 0.9} {
		assert.InDelta(t, u, g.InvCDF(u), 1e-12)
	}

	// The searches find the same bounds.
	g = newGenerator(t, uniform, Config{})
	lo, hi = g.Bounds()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 1.0, hi)
}

func TestCenterOverride(t *testing.T) {
	shifted := DistFunc{F: func(x float64) float64 { return normalPDF(x - 50) }, Mode: 0}
	// PDF(0) underflows to 0, so the declared center is unusable.
	_, err := New(shifted, Config{})
	assert.ErrorIs(t, err, ErrContract)

	g := newGenerator(t, shifted, Config{Center: ptr(49)})
	assert.InDelta(t, 50, g.InvCDF(0.5), 1e-9)
}

func TestOrders(t *testing.T) {
	cfg := Config{UResolution: 1e-8, MaxIntervals: 100000}
	cfg.Order = MinOrder
	g2 := newGenerator(t, stdNormal, cfg)
	cfg.Order = MaxOrder
	g19 := newGenerator(t, stdNormal, cfg)
	assert.Less(t, g19.NumIntervals(), g2.NumIntervals())

	for _, g := range []*Generator{g2, g19} {
		res := UError(g, normalCDF, 2000, nil)
		assert.Less(t, res.Max, 2e-8, "order %d: u-error %+v", g.Order(), res)
	}
}

func TestCauchyFine(t *testing.T) {
	if testing.Short() {
		t.Skip("slow")
	}
	// Below u-resolution 1e-12 the larger tail cutoff factor applies.
	cauchy := DistFunc{F: func(x float64) float64 { return 1 / (1 + x*x) }}
	cdf := func(x float64) float64 { return 0.5 + math.Atan(x)/math.Pi }
	g, err := New(cauchy, Config{UResolution: 1e-13})
	require.NoError(t, err)
	assert.Less(t, g.NumIntervals(), DefaultMaxIntervals)
	assert.InDelta(t, 0, g.InvCDF(0.5), 1e-6)
	lo, hi := g.Bounds()
	assert.Less(t, lo, -1e6)
	assert.Greater(t, hi, 1e6)

	res := UError(g, cdf, 10000, nil)
	assert.Less(t, res.Max, 2e-13, "u-error %+v", res)
}

func TestInvalidConfig(t *testing.T) {
	for _, test := range []struct {
		name string
		dist Dist
		cfg  Config
	}{
		{"order too small", stdNormal, Config{Order: 1}},
		{"order too large", stdNormal, Config{Order: 20}},
		{"negative order", stdNormal, Config{Order: -5}},
		{"NaN resolution", stdNormal, Config{UResolution: math.NaN()}},
		{"negative resolution", stdNormal, Config{UResolution: -1e-10}},
		{"too few intervals", stdNormal, Config{MaxIntervals: 50}},
		{"too many intervals", stdNormal, Config{MaxIntervals: 2000000}},
		{"negative guide factor", stdNormal, Config{GuideFactor: -1}},
		{"large guide factor", stdNormal, Config{GuideFactor: 200}},
		{"infinite left", stdNormal, Config{Left: ptr(math.Inf(-1))}},
		{"NaN right", stdNormal, Config{Right: ptr(math.NaN())}},
		{"left above right", stdNormal, Config{Left: ptr(1), Right: ptr(0)}},
		{"NaN center", stdNormal, Config{Center: ptr(math.NaN())}},
		{"left outside domain", stdExp, Config{Left: ptr(-1)}},
		{"right outside domain", stdExp, Config{Right: ptr(0)}},
		{"no search on infinite side", stdNormal, Config{NoSearchRight: true}},
		{"reversed domain", DistFunc{F: normalPDF, Lo: 1, Hi: -1}, Config{}},
		{"NaN domain", DistFunc{F: normalPDF, Lo: math.NaN(), Hi: 1}, Config{}},
	} {
		t.Run(test.name, func(t *testing.T) {
			g, err := New(test.dist, test.cfg)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.NotErrorIs(t, err, ErrContract)
		})
	}
}

func TestClampResolution(t *testing.T) {
	c, err := Config{UResolution: 1}.normalize()
	require.NoError(t, err)
	assert.Equal(t, MaxUResolution, c.UResolution)

	c, err = Config{UResolution: 1e-20}.normalize()
	require.NoError(t, err)
	assert.Equal(t, MinUResolution, c.UResolution)

	c, err = Config{}.normalize()
	require.NoError(t, err)
	assert.Equal(t, Config{
		Order:        DefaultOrder,
		UResolution:  DefaultUResolution,
		MaxIntervals: DefaultMaxIntervals,
		GuideFactor:  DefaultGuideFactor,
	}, c)
}

func TestContractViolations(t *testing.T) {
	for _, test := range []struct {
		name   string
		center float64
		pdf    func(float64) float64
	}{
		{"NaN", 0, func(float64) float64 { return math.NaN() }},
		{"zero at center", 0, func(float64) float64 { return 0 }},
		{"NaN center", math.NaN(), normalPDF},
		{"negative tail", 0, func(x float64) float64 {
			if x > 2 {
				return -1
			}
			return normalPDF(x)
		}},
		{"infinite", 0, func(x float64) float64 {
			if x < -1.5 {
				return math.Inf(1)
			}
			return normalPDF(x)
		}},
		{"no decay", 0, func(float64) float64 { return 1 }},
	} {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			d := NewMockDist(ctrl)
			d.EXPECT().Domain().Return(math.Inf(-1), math.Inf(1)).AnyTimes()
			d.EXPECT().Center().Return(test.center).AnyTimes()
			d.EXPECT().PDF(gomock.Any()).DoAndReturn(test.pdf).AnyTimes()

			g, err := New(d, Config{})
			assert.Nil(t, g)
			assert.ErrorIs(t, err, ErrContract)
		})
	}
}

func TestPDFOnlyInsideDomain(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := NewMockDist(ctrl)
	d.EXPECT().Domain().Return(0.0, 1.0).AnyTimes()
	d.EXPECT().Center().Return(0.5).AnyTimes()
	d.EXPECT().PDF(gomock.Any()).DoAndReturn(func(x float64) float64 {
		if x < 0 || x > 1 {
			t.Errorf("PDF(%v) called outside of domain", x)
		}
		return 6 * x * (1 - x)
	}).AnyTimes()

	g, err := New(d, Config{UResolution: 1e-8})
	require.NoError(t, err)
	lo, hi := g.Support()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 1.0, hi)
	assert.InDelta(t, 0.5, g.InvCDF(0.5), 1e-7)
}

func TestSample(t *testing.T) {
	g := newGenerator(t, stdNormal, Config{})

	ctrl := gomock.NewController(t)
	src := NewMockSource(ctrl)
	gomock.InOrder(
		src.EXPECT().Float64().Return(0.5),
		src.EXPECT().Float64().Return(normalCDF(1)),
		src.EXPECT().Float64().Return(normalCDF(-2)),
	)
	assert.InDelta(t, 0, g.Sample(src), 1e-9)
	assert.InDelta(t, 1, g.Sample(src), 1e-8)
	assert.InDelta(t, -2, g.Sample(src), 1e-8)
}

func TestApproxCDF(t *testing.T) {
	g := newGenerator(t, stdNormal, Config{})
	lo, hi := g.Bounds()
	assert.Equal(t, 0.0, g.ApproxCDF(lo))
	assert.Equal(t, 0.0, g.ApproxCDF(lo-1))
	assert.Equal(t, 1.0, g.ApproxCDF(hi))
	assert.Equal(t, 1.0, g.ApproxCDF(math.Inf(1)))
	for _, x := range []float64{-3, -0.5, 0, 1, 2.5} {
		assert.InDelta(t, normalCDF(x), g.ApproxCDF(x), 1e-9, "at %v", x)
	}
	for _, u := range []float64{0.01, 0.3, 0.77} {
		assert.InDelta(t, u, g.ApproxCDF(g.InvCDF(u)), 1e-9, "at %v", u)
	}
}

func TestClone(t *testing.T) {
	g := newGenerator(t, stdNormal, Config{})
	c := g.Clone()
	assert.Equal(t, g.Intervals(), c.Intervals())
	assert.Equal(t, g.InvCDF(0.3), c.InvCDF(0.3))

	c.ivs[0].X = 100
	c.guide[0] = 5
	assert.NotEqual(t, 100.0, g.ivs[0].X)
	assert.Equal(t, 0, g.guide[0])
}

func TestIntervalsCopy(t *testing.T) {
	g := newGenerator(t, stdNormal, Config{})
	ivs := g.Intervals()
	x := g.InvCDF(0.3)
	for i := range ivs {
		ivs[i].X = 0
		ivs[i].CDF = 0
	}
	assert.Equal(t, x, g.InvCDF(0.3))
}

func TestGuideFactor(t *testing.T) {
	g1 := newGenerator(t, stdNormal, Config{})
	g8 := newGenerator(t, stdNormal, Config{GuideFactor: 8})
	assert.Len(t, g8.guide, 8*g8.NumIntervals())
	for i := 0; i <= 1000; i++ {
		u := float64(i) / 1000
		assert.Equal(t, g1.InvCDF(u), g8.InvCDF(u))
	}
}

func TestConcurrent(t *testing.T) {
	g := newGenerator(t, stdNormal, Config{})
	const n = 1000
	want := make([]float64, n)
	for i := range want {
		want[i] = g.InvCDF(float64(i) / n)
	}

	var wg sync.WaitGroup
	got := make([][]float64, 4)
	for w := range got {
		got[w] = make([]float64, n)
		wg.Add(1)
		go func(out []float64) {
			defer wg.Done()
			for i := range out {
				out[i] = g.InvCDF(float64(i) / n)
				g.ApproxCDF(out[i])
			}
		}(got[w])
	}
	wg.Wait()
	for _, out := range got {
		assert.Equal(t, want, out)
	}
}

func BenchmarkNew(b *testing.B) {
	for _, order := range []int{3, 5, 9} {
		b.Run(fmt.Sprintf("order=%d", order), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := New(stdNormal, Config{Order: order}); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkInvCDF(b *testing.B) {
	g, err := New(stdNormal, Config{})
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.InvCDF(float64(i%1000) / 1000)
	}
}
