// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ucd

// lumpTable is the fixed set of "lump certain characters together"
// mappings applied under the LUMP option (e.g. HYPHEN and MINUS SIGN both
// lump to ASCII '-'). It does not include the line/paragraph separator
// case, which depends on the NLF2LF option and is therefore resolved by
// the caller (decompose.go), not here — the oracle itself carries no
// option-dependent state.
var lumpTable = map[rune]rune{
	0x2010: '-', // HYPHEN
	0x2011: '-', // NON-BREAKING HYPHEN
	0x2012: '-', // FIGURE DASH
	0x2013: '-', // EN DASH
	0x2212: '-', // MINUS SIGN
	0x00A0: ' ', // NO-BREAK SPACE
	0x2000: ' ', // EN QUAD
	0x2001: ' ', // EM QUAD
	0x2002: ' ', // EN SPACE
	0x2003: ' ', // EM SPACE
	0x2004: ' ', // THREE-PER-EM SPACE
	0x2005: ' ', // FOUR-PER-EM SPACE
	0x2006: ' ', // SIX-PER-EM SPACE
	0x2007: ' ', // FIGURE SPACE
	0x2008: ' ', // PUNCTUATION SPACE
	0x2009: ' ', // THIN SPACE
	0x200A: ' ', // HAIR SPACE
	0x202F: ' ', // NARROW NO-BREAK SPACE
	0x00B7: '.', // MIDDLE DOT
	0x2027: '.', // HYPHENATION POINT
	0x00D7: '*', // MULTIPLICATION SIGN
	0x2022: '*', // BULLET
}

// Lump returns the fixed lump-table mapping for cp, if any.
func Lump(cp rune) (rune, bool) {
	r, ok := lumpTable[cp]
	return r, ok
}
