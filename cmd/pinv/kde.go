// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"

	"github.com/moremath/go-pinv/stats"
)

var (
	kernelFlag = cli.StringFlag{
		Name:  "kernel",
		Usage: "KDE kernel (\"gaussian\" or \"epanechnikov\")",
		Value: stats.GaussianKernel.String(),
	}
	bandwidthFlag = cli.Float64Flag{
		Name:  "bandwidth",
		Usage: "KDE bandwidth; 0 estimates it from the data",
	}
	boundaryMinFlag = cli.Float64Flag{
		Name:  "boundary-min",
		Usage: "lower end of the KDE support, reflected at",
	}
	boundaryMaxFlag = cli.Float64Flag{
		Name:  "boundary-max",
		Usage: "upper end of the KDE support, reflected at",
	}
)

var kdeCommand = cli.Command{
	Name:  "kde",
	Usage: "read numbers from stdin and sample from their kernel density estimate",
	Flags: []cli.Flag{
		&countFlag,
		&seedFlag,
		&kernelFlag,
		&bandwidthFlag,
		&boundaryMinFlag,
		&boundaryMaxFlag,
		&summaryFlag,
	},
	Action: kdeAction,
}

func kdeAction(ctx *cli.Context) error {
	s, err := readInput(ctx.App.Reader)
	if err != nil {
		return err
	}
	if len(s.Xs) < 2 {
		return errors.Newf("need at least 2 values, got %d", len(s.Xs))
	}
	kernel, err := stats.ParseKDEKernel(ctx.String(kernelFlag.Name))
	if err != nil {
		return err
	}

	kde := stats.KDE{
		Kernel:    kernel,
		Bandwidth: ctx.Float64(bandwidthFlag.Name),
	}
	if ctx.IsSet(boundaryMinFlag.Name) || ctx.IsSet(boundaryMaxFlag.Name) {
		kde.BoundaryMin, kde.BoundaryMax = math.Inf(-1), math.Inf(1)
		if ctx.IsSet(boundaryMinFlag.Name) {
			kde.BoundaryMin = ctx.Float64(boundaryMinFlag.Name)
		}
		if ctx.IsSet(boundaryMaxFlag.Name) {
			kde.BoundaryMax = ctx.Float64(boundaryMaxFlag.Name)
		}
		if min, max := s.Bounds(); min < kde.BoundaryMin || max >= kde.BoundaryMax {
			return errors.Newf("data [%g, %g] outside the KDE boundaries [%g, %g)", min, max, kde.BoundaryMin, kde.BoundaryMax)
		}
	}
	if kde.Bandwidth < 0 {
		return errors.Newf("negative bandwidth %g", kde.Bandwidth)
	}
	if s.StdDev() == 0 && kde.Bandwidth == 0 {
		return errors.New("cannot estimate the bandwidth of constant data; set --bandwidth")
	}
	log.Infof("KDE of %d values with %s kernel", len(s.Xs), kernel)

	g, err := newGenerator(ctx, kde.From(s))
	if err != nil {
		return err
	}
	return writeSample(ctx, g)
}

// readInput reads newline-separated numbers from r. Blank lines are
// skipped.
func readInput(r io.Reader) (sample stats.Sample, err error) {
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		l := strings.TrimSpace(scanner.Text())
		if l == "" {
			continue
		}
		value, err := strconv.ParseFloat(l, 64)
		if err != nil {
			return sample, errors.Wrapf(err, "line %d", line)
		}
		sample.Xs = append(sample.Xs, value)
	}
	return sample, scanner.Err()
}
