// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"

	"github.com/moremath/go-pinv/pinv"
	"github.com/moremath/go-pinv/stats"
)

var summaryFlag = cli.BoolFlag{
	Name:  "summary",
	Usage: "print the mean and median with their 95% confidence intervals instead of the variates",
}

var sampleCommand = cli.Command{
	Name:      "sample",
	Usage:     "draw random variates from a distribution",
	ArgsUsage: "<dist> [param...]",
	Flags: []cli.Flag{
		&countFlag,
		&seedFlag,
		&leftFlag,
		&rightFlag,
		&summaryFlag,
	},
	Action: sampleAction,
}

func sampleAction(ctx *cli.Context) error {
	d, err := distFromArgs(ctx)
	if err != nil {
		return err
	}
	g, err := newGenerator(ctx, d)
	if err != nil {
		return err
	}
	return writeSample(ctx, g)
}

// writeSample draws --count variates from g and writes them, or their
// summary, to the app's writer.
func writeSample(ctx *cli.Context, g *pinv.Generator) error {
	n := ctx.Int(countFlag.Name)
	summary := ctx.Bool(summaryFlag.Name)
	if n < 0 || summary && n == 0 {
		return errors.Newf("bad count %d", n)
	}
	src := rand.New(rand.NewSource(ctx.Int64(seedFlag.Name)))
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = g.Sample(src)
	}

	w := bufio.NewWriter(ctx.App.Writer)
	if summary {
		s := stats.Sample{Xs: xs}
		s.Sort()
		mean, mlo, mhi := stats.MeanCI(xs, 0.95)
		qlo, qhi := stats.QuantileCI(n, 0.5, 0.95).FromSample(s)
		min, max := s.Bounds()
		fmt.Fprintf(w, "N %d  min %.6g  max %.6g\n", n, min, max)
		fmt.Fprintf(w, "mean %.6g  95%% CI [%.6g, %.6g]\n", mean, mlo, mhi)
		fmt.Fprintf(w, "median %.6g  95%% CI [%.6g, %.6g]\n", s.Quantile(0.5), qlo, qhi)
	} else {
		for _, x := range xs {
			w.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
			w.WriteByte('\n')
		}
	}
	return w.Flush()
}
