// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ucd

// Compose looks up the canonical composite of a valid comb1stIndex/
// comb2ndIndex pair. It returns ok == false if either index is invalid
// (< 0) or the pair has no registered composite: a valid (i,j) with
// i>=0, j>=0 yields at most one composite codepoint.
func Compose(comb1stIndex, comb2ndIndex int32) (rune, bool) {
	if comb1stIndex < 0 || comb2ndIndex < 0 {
		return 0, false
	}
	r, ok := composeTable[[2]int32{comb1stIndex, comb2ndIndex}]
	return r, ok
}
