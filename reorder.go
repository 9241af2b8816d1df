// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package utf8proc

import "github.com/AliKet/utf8proc/internal/ucd"

// canonicalReorder sorts each maximal run of non-starter codepoints
// (combining class != 0) into non-decreasing combining-class order, in
// place, leaving starters (combining class 0) exactly where they are.
// The sort must be stable: two marks sharing a combining class keep
// their relative input order, since swapping them can change what they
// visually render as.
func canonicalReorder(buf []rune) {
	ccc := make([]uint8, len(buf))
	for i, cp := range buf {
		ccc[i] = ucd.Of(cp).CombiningClass
	}

	start := 0
	for start < len(buf) {
		if ccc[start] == 0 {
			start++
			continue
		}
		end := start
		for end < len(buf) && ccc[end] != 0 {
			end++
		}
		insertionSortRun(buf, ccc, start, end)
		start = end
	}
}

// insertionSortRun stably sorts buf[lo:hi] by the parallel ccc slice.
// Insertion sort is the natural choice for runs this short (almost
// always two or three combining marks) and is stable by construction.
func insertionSortRun(buf []rune, ccc []uint8, lo, hi int) {
	for i := lo + 1; i < hi; i++ {
		cp, c := buf[i], ccc[i]
		j := i - 1
		for j >= lo && ccc[j] > c {
			buf[j+1] = buf[j]
			ccc[j+1] = ccc[j]
			j--
		}
		buf[j+1] = cp
		ccc[j+1] = c
	}
}
