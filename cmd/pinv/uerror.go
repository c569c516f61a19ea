// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"math/rand"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"

	"github.com/moremath/go-pinv/pinv"
)

var uerrorCountFlag = cli.IntFlag{
	Name:    countFlag.Name,
	Aliases: countFlag.Aliases,
	Usage:   "number of tested u-values",
	Value:   100000,
}

var gridFlag = cli.BoolFlag{
	Name:  "grid",
	Usage: "test an equidistant grid of u-values instead of random ones",
}

var uerrorCommand = cli.Command{
	Name:      "uerror",
	Usage:     "estimate the u-error of the generator against the exact CDF",
	ArgsUsage: "<dist> [param...]",
	Flags: []cli.Flag{
		&uerrorCountFlag,
		&seedFlag,
		&gridFlag,
	},
	Action: uerrorAction,
}

func uerrorAction(ctx *cli.Context) error {
	d, err := distFromArgs(ctx)
	if err != nil {
		return err
	}
	g, err := newGenerator(ctx, d)
	if err != nil {
		return err
	}
	n := ctx.Int(countFlag.Name)
	if n <= 0 {
		return errors.Newf("bad count %d", n)
	}
	var src pinv.Source
	if !ctx.Bool(gridFlag.Name) {
		src = rand.New(rand.NewSource(ctx.Int64(seedFlag.Name)))
	}
	res := pinv.UError(g, d.CDF, n, src)

	t := table.NewWriter()
	t.SetOutputMirror(ctx.App.Writer)
	t.SetStyle(table.StyleLight)
	t.AppendRows([]table.Row{
		{"distribution", ctx.Args().First()},
		{"order", g.Order()},
		{"u-resolution", fmtFloat(g.UResolution())},
		{"intervals", g.NumIntervals()},
		{"tested", res.N},
		{"max u-error", fmtFloat(res.Max)},
		{"mean u-error", fmtFloat(res.Mean)},
		{"at u", fmtFloat(res.ArgMax)},
	})
	t.Render()
	if res.Max > g.UResolution() {
		log.Warningf("u-error %g exceeds the requested resolution %g", res.Max, g.UResolution())
	}
	return nil
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', 8, 64)
}
