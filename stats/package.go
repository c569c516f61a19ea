// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats provides continuous distributions and density
// estimates in the form package pinv samples from.
//
// Every Dist has a PDF, so it can be passed to pinv.New directly. The
// closed-form CDFs serve as references when measuring the u-error of
// a generator.
package stats // import "github.com/moremath/go-pinv/stats"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()
