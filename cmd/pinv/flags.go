// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"

	"github.com/moremath/go-pinv/pinv"
	"github.com/moremath/go-pinv/stats"
)

var (
	orderFlag = cli.IntFlag{
		Name:  "order",
		Usage: "order of the interpolating polynomials",
		Value: pinv.DefaultOrder,
	}
	resolutionFlag = cli.Float64Flag{
		Name:    "resolution",
		Aliases: []string{"u"},
		Usage:   "maximal tolerated u-error",
		Value:   pinv.DefaultUResolution,
	}
	maxIntervalsFlag = cli.IntFlag{
		Name:  "max-intervals",
		Usage: "maximal number of intervals",
		Value: pinv.DefaultMaxIntervals,
	}
	logLevelFlag = cli.StringFlag{
		Name:    "log-level",
		Aliases: []string{"l"},
		Usage:   "level of the logging (\"critical\", \"error\", \"warning\", \"notice\", \"info\", \"debug\")",
		Value:   "WARNING",
	}

	countFlag = cli.IntFlag{
		Name:    "count",
		Aliases: []string{"n"},
		Usage:   "number of variates",
		Value:   10,
	}
	seedFlag = cli.Int64Flag{
		Name:  "seed",
		Usage: "seed of the uniform random source",
		Value: 1,
	}
	leftFlag = cli.Float64Flag{
		Name:  "left",
		Usage: "truncate the distribution on the left",
	}
	rightFlag = cli.Float64Flag{
		Name:  "right",
		Usage: "truncate the distribution on the right",
	}
)

// distFromArgs returns the distribution named by the first argument,
// with the remaining arguments as parameters.
func distFromArgs(ctx *cli.Context) (stats.Dist, error) {
	args := ctx.Args().Slice()
	if len(args) == 0 {
		return nil, errors.New("missing distribution name")
	}
	params := make([]float64, len(args)-1)
	for i, arg := range args[1:] {
		p, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "parameter %d of %s", i+1, args[0])
		}
		params[i] = p
	}
	return stats.Lookup(args[0], params)
}
