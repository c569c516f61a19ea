// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pinv

// makeGuide returns the guide table for ivs, which ends with a sentinel
// interval. Slot j holds the first interval i that reaches the
// cumulative mass UMax*j/size, that is, CDF[i+1] >= UMax*j/size. A
// lookup for u starts at slot int(u*size) and scans forward.
func makeGuide(ivs []Interval, factor float64) []int {
	n := len(ivs) - 1
	size := int(factor * float64(n))
	if size < 1 {
		size = 1
	}
	guide := make([]int, size)
	umax := ivs[n].CDF

	i := 0
	j := 0
	for ; j < size; j++ {
		target := umax * float64(j) / float64(size)
		for i < n && ivs[i+1].CDF < target {
			i++
		}
		if i >= n {
			break
		}
		guide[j] = i
	}
	// Rounding in the cumulative sums can leave the last slots
	// without an interval.
	for ; j < size; j++ {
		guide[j] = n - 1
	}
	return guide
}
