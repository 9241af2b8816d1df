// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package utf8proc

import "github.com/AliKet/utf8proc/internal/ucd"

// GraphemeBreak reports whether a grapheme-cluster boundary is permitted
// between cp1 and cp2, applying the UAX #29 extended rules over the two
// codepoints' boundary classes. A precomposed Hangul syllable is classed
// LV or LVT by hangulBoundClass.
//
// Because this is a pairwise interface, it cannot distinguish a run of
// more than two Regional_Indicator codepoints from a single flag pair:
// every RI|RI boundary reports "no break", so three or more consecutive
// RIs are reported as one unbroken cluster instead of clustering in
// pairs. A full UAX #29 implementation would thread RI-parity state
// through the call sequence instead of just the previous boundclass.
func GraphemeBreak(cp1, cp2 rune) bool {
	bc1, bc2 := ucd.Of(cp1).BoundClass, ucd.Of(cp2).BoundClass
	if isHangulSyllable(cp1) {
		bc1 = hangulBoundClass(cp1)
	}
	if isHangulSyllable(cp2) {
		bc2 = hangulBoundClass(cp2)
	}
	return breakBetween(bc1, bc2)
}

// breakBetween is the boundary-class-level rule table CHARBOUND and
// GraphemeBreak both drive: a pairwise switch table restricted to a
// 13-value boundclass enumeration (no InCB/GB9c conjunct-cluster
// tracking).
func breakBetween(a, b BoundClass) bool {
	switch {
	case a == ucd.BoundCR && b == ucd.BoundLF:
		return false // GB3: CR x LF
	case a == ucd.BoundCR || a == ucd.BoundLF || a == ucd.BoundControl:
		return true // GB4: (Control|CR|LF) ÷
	case b == ucd.BoundCR || b == ucd.BoundLF || b == ucd.BoundControl:
		return true // GB5: ÷ (Control|CR|LF)
	case b == ucd.BoundExtend || b == ucd.BoundSpacingMark:
		return false // GB9/GB9a
	case a == ucd.BoundL && (b == ucd.BoundL || b == ucd.BoundV || b == ucd.BoundLV || b == ucd.BoundLVT):
		return false // GB6
	case (a == ucd.BoundV || a == ucd.BoundLV) && (b == ucd.BoundV || b == ucd.BoundT):
		return false // GB7
	case (a == ucd.BoundLVT || a == ucd.BoundT) && b == ucd.BoundT:
		return false // GB8
	case a == ucd.BoundRegionalIndicator && b == ucd.BoundRegionalIndicator:
		return false // GB12/GB13, pairwise-only approximation
	default:
		return true // GB999
	}
}

// hangulBoundClass computes the boundclass of a precomposed Hangul
// syllable directly from its codepoint, rather than from a table entry,
// since the entire 11,172-codepoint syllable block is regular: every
// syllable whose trailing-consonant index is zero is an LV syllable,
// every other one is LVT.
func hangulBoundClass(cp rune) BoundClass {
	s := cp - hangulSBase
	if s%hangulTCount == 0 {
		return ucd.BoundLV
	}
	return ucd.BoundLVT
}
