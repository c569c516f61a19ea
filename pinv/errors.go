// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pinv

import "github.com/cockroachdb/errors"

// Errors returned by New. Every error returned by New wraps exactly one
// of these and can be tested with errors.Is.
var (
	// ErrInvalidConfig indicates a Config or a declared domain that
	// was rejected before any setup stage ran.
	ErrInvalidConfig = errors.New("pinv: invalid configuration")

	// ErrContract indicates that the distribution violates the
	// contract required by the method: the PDF is not positive at
	// the center, returns negative, infinite or NaN values, or does
	// not decay towards an unbounded end of the domain.
	ErrContract = errors.New("pinv: distribution contract violated")

	// ErrNonConvergence indicates that a search or the interval
	// construction exceeded its iteration budget, or that the PDF
	// integrates to (almost) zero on a part of the domain where
	// it should not.
	ErrNonConvergence = errors.New("pinv: construction did not converge")
)

func configErrorf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidConfig, format, args...)
}

func contractErrorf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrContract, format, args...)
}

func convergenceErrorf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrNonConvergence, format, args...)
}
