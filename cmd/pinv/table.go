// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"
)

var tableCommand = cli.Command{
	Name:      "table",
	Usage:     "print the intervals of the generator",
	ArgsUsage: "<dist> [param...]",
	Flags: []cli.Flag{
		&leftFlag,
		&rightFlag,
	},
	Action: tableAction,
}

func tableAction(ctx *cli.Context) error {
	d, err := distFromArgs(ctx)
	if err != nil {
		return err
	}
	g, err := newGenerator(ctx, d)
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(ctx.App.Writer)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "X", "CDF", "Mass", "Width"})
	ivs := g.Intervals()
	for i := 0; i+1 < len(ivs); i++ {
		iv, next := ivs[i], ivs[i+1]
		t.AppendRow(table.Row{
			i,
			fmtFloat(iv.X),
			fmtFloat(iv.CDF),
			fmtFloat(next.CDF - iv.CDF),
			fmtFloat(next.X - iv.X),
		})
	}
	last := ivs[len(ivs)-1]
	t.AppendFooter(table.Row{"end", fmtFloat(last.X), fmtFloat(g.UMax()), "", ""})
	t.Render()
	return nil
}
