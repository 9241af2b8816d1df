// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package utf8proc

import "github.com/AliKet/utf8proc/internal/ucd"

// Charwidth returns the display cell width of cp, in {0, 1, 2}, analogous
// to wcwidth except that non-printable codepoints report 0 rather than
// -1. Combining marks and other zero-width codepoints are already
// recorded as width 0 in the property table; there is nothing to
// special-case here beyond returning the oracle's CharWidth field.
func Charwidth(cp rune) int {
	return int(ucd.Of(cp).CharWidth)
}
