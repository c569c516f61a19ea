// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// pinv builds inverse-CDF generators for continuous distributions and
// samples from them.
//
// Usage:
//
//	pinv [global options] sample [options] <dist> [param...]
//	pinv [global options] table <dist> [param...]
//	pinv [global options] uerror [options] <dist> [param...]
//	pinv [global options] kde [options] < data
//
// Run "pinv help" for the list of distributions and options.
package main

import (
	"os"
	"strings"

	"github.com/op/go-logging"
	"github.com/urfave/cli/v2"

	"github.com/moremath/go-pinv/pinv"
	"github.com/moremath/go-pinv/stats"
)

var log = logging.MustGetLogger("cmd")

const logFormat = "%{time:2006-01-02 15:04:05.000} [%{level:.4s}] %{module}: %{message}"

func newApp() *cli.App {
	return &cli.App{
		Name:  "pinv",
		Usage: "sample continuous distributions by polynomial inversion",
		Description: "Distributions: " + strings.Join(usages(), ", ") +
			".\nMissing parameters take the defaults shown.",
		Flags: []cli.Flag{
			&orderFlag,
			&resolutionFlag,
			&maxIntervalsFlag,
			&logLevelFlag,
		},
		Before: setupLogging,
		Commands: []*cli.Command{
			&sampleCommand,
			&tableCommand,
			&uerrorCommand,
			&kdeCommand,
		},
	}
}

func usages() []string {
	var us []string
	for _, name := range stats.Names() {
		us = append(us, stats.Usage(name))
	}
	return us
}

// setupLogging directs all log output to the app's error writer at
// the level given by --log-level.
func setupLogging(ctx *cli.Context) error {
	level, err := logging.LogLevel(ctx.String(logLevelFlag.Name))
	if err != nil {
		return err
	}
	backend := logging.AddModuleLevel(
		logging.NewBackendFormatter(
			logging.NewLogBackend(ctx.App.ErrWriter, "", 0),
			logging.MustStringFormatter(logFormat),
		),
	)
	backend.SetLevel(level, "")
	logging.SetBackend(backend)
	return nil
}

// newGenerator builds a generator for d configured by the global and
// command flags.
func newGenerator(ctx *cli.Context, d pinv.Dist) (*pinv.Generator, error) {
	cfg := pinv.Config{
		Order:        ctx.Int(orderFlag.Name),
		UResolution:  ctx.Float64(resolutionFlag.Name),
		MaxIntervals: ctx.Int(maxIntervalsFlag.Name),
	}
	if ctx.IsSet(leftFlag.Name) {
		left := ctx.Float64(leftFlag.Name)
		cfg.Left = &left
	}
	if ctx.IsSet(rightFlag.Name) {
		right := ctx.Float64(rightFlag.Name)
		cfg.Right = &right
	}
	g, err := pinv.New(d, cfg)
	if err != nil {
		return nil, err
	}
	lo, hi := g.Bounds()
	log.Infof("%d intervals of order %d on [%g, %g]", g.NumIntervals(), g.Order(), lo, hi)
	return g, nil
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
